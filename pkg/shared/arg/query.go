package arg

import "strings"

// HandleQuery joins the positional arguments into a single query, so
// `search blue razz` and `search "blue razz"` behave the same.
func HandleQuery(args []string) string {
	return strings.TrimSpace(strings.Join(args, " "))
}
