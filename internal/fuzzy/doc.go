// Package fuzzy ranks catalog entries against a typed query.
//
// Matching is tiered. A candidate is first classified by how the query
// relates to its comparison text, and each class owns a score band:
//
//   - exact: the text equals the query
//   - starts_with: the text begins with the query
//   - contains: the query appears somewhere in the text
//   - word_match: a query word is found inside a text word
//   - similar: everything else, scored by edit-distance similarity alone
//
// Inside a band, candidates are ordered by their edit-distance similarity to
// the query plus a small bonus for short texts. exact always outranks
// starts_with, starts_with always outranks contains, and word_match always
// outranks similar. contains and word_match can overlap: a short word_match
// text may score above a long contains text. Every candidate receives a
// result unless the caller asks for a threshold.
//
// # Usage
//
//	results := fuzzy.SearchStrings("straw", []string{
//	    "Strawberry Kiwi",
//	    "Strawberry Banana",
//	    "Kiwi Mango",
//	}, fuzzy.DefaultOptions())
//	for _, r := range results {
//	    fmt.Printf("%s (%s, %.2f)\n", r.Text, fuzzy.Describe(r.MatchType).Label, r.Score)
//	}
//
// Records decoded from a catalog are matched on one of their fields:
//
//	results := fuzzy.SearchRecords(query, records, "name", fuzzy.Options{Limit: 5})
//
// # Empty queries
//
// A blank query short-circuits: the first Limit candidates come back in
// input order, tagged MatchAll with a score of 1.
//
// # Thread Safety
//
// The package holds no state. All functions are safe for concurrent use.
package fuzzy
