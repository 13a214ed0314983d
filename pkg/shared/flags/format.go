package flags

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"
)

const (
	FormatTable    = "table"
	FormatPlain    = "plain"
	FormatJSON     = "json"
	FormatMarkdown = "markdown"
)

var formats = []string{FormatTable, FormatPlain, FormatJSON, FormatMarkdown}

func AddFormat(cmd *cobra.Command) {
	cmd.Flags().StringP(
		"format",
		"f",
		"",
		"Output format: "+strings.Join(formats, ", ")+". Defaults to table on a terminal, plain otherwise.",
	)
}

// HandleFormat returns the requested format, or "" when none was given.
func HandleFormat(cmd *cobra.Command) (string, error) {
	format, err := cmd.Flags().GetString("format")
	if err != nil {
		return "", err
	}

	format = strings.ToLower(strings.TrimSpace(format))
	if format == "" {
		return "", nil
	}
	for _, f := range formats {
		if f == format {
			return format, nil
		}
	}
	return "", fmt.Errorf("unknown format %q, expected one of %s", format, strings.Join(formats, ", "))
}
