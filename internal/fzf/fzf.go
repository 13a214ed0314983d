package fzf

import (
	"errors"
	"fmt"
	"sort"
	"strings"

	"github.com/ktr0731/go-fuzzyfinder"

	"github.com/Paintersrp/prodsearch/internal/catalog"
	"github.com/Paintersrp/prodsearch/internal/fuzzy"
	"github.com/Paintersrp/prodsearch/utils"
)

// ErrNoSelection is returned when the finder is closed without a choice.
var ErrNoSelection = errors.New("no product selected")

type findFunc func(slice interface{}, itemFunc func(i int) string, opts ...fuzzyfinder.Option) (int, error)

// FuzzyFinder shows ranked catalog results in an interactive finder.
type FuzzyFinder struct {
	Header  string
	Query   string
	results []fuzzy.Result[catalog.Record]
	find    findFunc
}

func NewFuzzyFinder(header, query string) *FuzzyFinder {
	return &FuzzyFinder{Header: header, Query: query, find: fuzzyfinder.Find}
}

// Select lets the user choose one of results, which are shown in the order
// given.
func (f *FuzzyFinder) Select(results []fuzzy.Result[catalog.Record]) (fuzzy.Result[catalog.Record], error) {
	var none fuzzy.Result[catalog.Record]
	if len(results) == 0 {
		return none, ErrNoSelection
	}
	f.results = results

	options := []fuzzyfinder.Option{
		fuzzyfinder.WithPreviewWindow(f.renderPreview),
	}
	if f.Header != "" {
		options = append(options, fuzzyfinder.WithHeader(f.Header))
	}

	idx, err := f.find(f.results, f.Label, options...)
	if err != nil {
		if errors.Is(err, fuzzyfinder.ErrAbort) {
			return none, ErrNoSelection
		}
		return none, fmt.Errorf("fzf: select product: %w", err)
	}
	if idx < 0 || idx >= len(f.results) {
		return none, ErrNoSelection
	}

	return f.results[idx], nil
}

// Label is the finder line for result i.
func (f *FuzzyFinder) Label(i int) string {
	r := f.results[i]
	return fmt.Sprintf("%s [%s %.2f] ", displayText(r.Text), fuzzy.Describe(r.MatchType).Label, r.Score)
}

func (f *FuzzyFinder) renderPreview(i, w, h int) string {
	if i == -1 {
		return ""
	}

	md := PreviewMarkdown(f.results[i])
	if f.Query != "" {
		md += fmt.Sprintf("\n_Ranked for %q_\n", f.Query)
	}

	markdown, err := utils.RenderMarkdown(md, max(w-4, 20), true)
	if err != nil {
		return "Error rendering preview"
	}

	return markdown
}

// PreviewMarkdown describes a result and every field of its record.
func PreviewMarkdown(r fuzzy.Result[catalog.Record]) string {
	var b strings.Builder

	p := fuzzy.Describe(r.MatchType)
	fmt.Fprintf(&b, "# %s\n\n", displayText(r.Text))
	fmt.Fprintf(&b, "**%s** · score %.2f · similarity %.0f%% (%s)\n\n",
		p.Label, r.Score, r.Similarity*100, fuzzy.QualityOf(r.Similarity))

	if len(r.Item) == 0 {
		b.WriteString("_No fields_\n")
		return b.String()
	}

	keys := make([]string, 0, len(r.Item))
	for k := range r.Item {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	b.WriteString("| Field | Value |\n| --- | --- |\n")
	for _, k := range keys {
		fmt.Fprintf(&b, "| %s | %s |\n", escapeCell(k), escapeCell(fmt.Sprint(r.Item[k])))
	}
	return b.String()
}

func displayText(text string) string {
	if strings.TrimSpace(text) == "" {
		return "(untitled)"
	}
	return text
}

func escapeCell(s string) string {
	s = strings.ReplaceAll(s, "|", `\|`)
	return strings.ReplaceAll(s, "\n", " ")
}
