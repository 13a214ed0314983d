package fuzzy

import "sort"

// DefaultLimit is used when Options.Limit is not positive.
const DefaultLimit = 10

// Options configures a search.
type Options struct {
	// Limit is the maximum number of results. Values <= 0 mean DefaultLimit.
	Limit int

	// Threshold drops results scoring below it. The default of 0 keeps every
	// candidate.
	Threshold float64
}

// DefaultOptions returns the options used by the dashboard search boxes.
func DefaultOptions() Options {
	return Options{
		Limit:     DefaultLimit,
		Threshold: 0,
	}
}

func (o Options) limit() int {
	if o.Limit <= 0 {
		return DefaultLimit
	}
	return o.Limit
}

// Result is one ranked candidate.
type Result[T any] struct {
	// Item is the candidate as supplied by the caller.
	Item T

	// Score orders results, higher is better. Its range depends on the band
	// selected by MatchType.
	Score float64

	// Similarity is the edit-distance similarity in [0, 1].
	Similarity float64

	MatchType MatchType

	// Text is the comparison text as extracted, original casing kept.
	Text string
}

// Search ranks items against query. text extracts the comparison string of
// each item; when nil, string and *string items are compared directly and
// any other item compares as the empty string.
//
// Results are ordered by score, then by shorter text, then by input order,
// and cut to the configured limit only after the whole set is ranked.
func Search[T any](query string, items []T, text func(T) string, opts Options) []Result[T] {
	if text == nil {
		text = itemText[T]
	}
	limit := opts.limit()

	q := normalize(query)
	if q == "" {
		return leading(items, text, limit)
	}

	results := make([]Result[T], 0, len(items))
	lengths := make([]int, 0, len(items))
	for _, item := range items {
		raw := text(item)
		norm := normalize(raw)

		mt, score, sim := Classify(q, norm)
		if opts.Threshold > 0 && score < opts.Threshold {
			continue
		}

		results = append(results, Result[T]{
			Item:       item,
			Score:      score,
			Similarity: sim,
			MatchType:  mt,
			Text:       raw,
		})
		lengths = append(lengths, runeLen(norm))
	}

	sort.Stable(byRank[T]{results: results, lengths: lengths})

	if len(results) > limit {
		results = results[:limit]
	}
	return results
}

// SearchStrings ranks plain strings.
func SearchStrings(query string, items []string, opts Options) []Result[string] {
	return Search(query, items, nil, opts)
}

// SearchRecords ranks decoded records on the value stored under key.
func SearchRecords(query string, records []map[string]any, key string, opts Options) []Result[map[string]any] {
	return Search(query, records, Field(key), opts)
}

// Field returns an extractor reading key from a record. Missing keys, nil
// records and non-string values all yield "".
func Field(key string) func(map[string]any) string {
	return func(record map[string]any) string {
		if record == nil {
			return ""
		}
		return stringValue(record[key])
	}
}

// leading serves blank queries: the first limit items in input order.
func leading[T any](items []T, text func(T) string, limit int) []Result[T] {
	count := min(len(items), limit)

	results := make([]Result[T], count)
	for i := 0; i < count; i++ {
		results[i] = Result[T]{
			Item:       items[i],
			Score:      1,
			Similarity: 1,
			MatchType:  MatchAll,
			Text:       text(items[i]),
		}
	}
	return results
}

func itemText[T any](item T) string {
	return stringValue(any(item))
}

func stringValue(v any) string {
	switch s := v.(type) {
	case string:
		return s
	case *string:
		if s != nil {
			return *s
		}
	}
	return ""
}

// byRank sorts results together with the rune length of their normalized
// text.
type byRank[T any] struct {
	results []Result[T]
	lengths []int
}

func (r byRank[T]) Len() int { return len(r.results) }

func (r byRank[T]) Less(i, j int) bool {
	if r.results[i].Score != r.results[j].Score {
		return r.results[i].Score > r.results[j].Score
	}
	return r.lengths[i] < r.lengths[j]
}

func (r byRank[T]) Swap(i, j int) {
	r.results[i], r.results[j] = r.results[j], r.results[i]
	r.lengths[i], r.lengths[j] = r.lengths[j], r.lengths[i]
}
