// Package browse implements the search-as-you-type product browser.
package browse

import (
	"context"
	"fmt"
	"strings"

	"github.com/atotto/clipboard"
	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/Paintersrp/prodsearch/internal/cache"
	"github.com/Paintersrp/prodsearch/internal/catalog"
	"github.com/Paintersrp/prodsearch/internal/fuzzy"
	"github.com/Paintersrp/prodsearch/internal/state"
)

const memoSize = 64

type result = fuzzy.Result[catalog.Record]

type Model struct {
	state    *state.State
	input    textinput.Model
	help     help.Model
	keys     keyMap
	memo     *cache.LRU[string, []result]
	opts     fuzzy.Options
	results  []result
	cursor   int
	selected *result
	status   string
	width    int
	height   int
	copy     func(string) error
}

func NewModel(s *state.State) (*Model, error) {
	if s == nil || s.Catalog == nil || s.Config == nil {
		return nil, fmt.Errorf("browse model requires a loaded catalog")
	}

	memo, err := cache.New[string, []result](memoSize)
	if err != nil {
		return nil, err
	}

	ti := textinput.New()
	ti.Placeholder = "Search products"
	ti.Prompt = "› "
	ti.Focus()

	m := &Model{
		state: s,
		input: ti,
		help:  help.New(),
		keys:  newKeyMap(),
		memo:  memo,
		opts:  s.Config.Search.Options(),
		copy:  clipboard.WriteAll,
	}
	m.refresh()
	return m, nil
}

func (m *Model) Init() tea.Cmd {
	cmds := []tea.Cmd{textinput.Blink}
	if m.state.Watcher != nil {
		cmds = append(cmds, m.state.Watcher.Start())
	}
	return tea.Batch(cmds...)
}

func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.input.Width = max(msg.Width-12, 10)
		m.help.Width = msg.Width
		return m, nil

	case state.CatalogChangedMsg:
		if _, err := m.state.ReloadCatalog(context.Background()); err != nil {
			m.status = fmt.Sprintf("reload failed: %v", err)
		} else {
			m.memo.Purge()
			m.refresh()
			m.status = "catalog reloaded"
		}
		return m, m.state.Watcher.Start()

	case state.CatalogWatcherErrMsg:
		m.status = fmt.Sprintf("watch error: %v", msg.Err)
		return m, m.state.Watcher.Start()

	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.quit):
			return m, tea.Quit
		case key.Matches(msg, m.keys.selectItem):
			if len(m.results) == 0 {
				return m, nil
			}
			chosen := m.results[m.cursor]
			m.selected = &chosen
			return m, tea.Quit
		case key.Matches(msg, m.keys.up):
			if m.cursor > 0 {
				m.cursor--
			}
			return m, nil
		case key.Matches(msg, m.keys.down):
			if m.cursor < len(m.results)-1 {
				m.cursor++
			}
			return m, nil
		case key.Matches(msg, m.keys.copy):
			m.handleCopy()
			return m, nil
		}
	}

	before := m.input.Value()
	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	if m.input.Value() != before {
		m.refresh()
	}
	return m, cmd
}

// refresh ranks the catalog for the current query, reusing earlier rankings
// of the same normalized query.
func (m *Model) refresh() {
	q := strings.ToLower(strings.TrimSpace(m.input.Value()))

	if cached, ok := m.memo.Get(q); ok {
		m.results = cached
	} else {
		m.results = m.state.Catalog.Search(q, m.opts)
		m.memo.Put(q, m.results)
	}

	m.cursor = 0
	m.status = ""
}

func (m *Model) handleCopy() {
	if len(m.results) == 0 {
		return
	}
	text := m.results[m.cursor].Text
	if err := m.copy(text); err != nil {
		m.status = fmt.Sprintf("copy failed: %v", err)
		return
	}
	m.status = fmt.Sprintf("copied %q", text)
}

// Selected returns the result chosen with enter, if any.
func (m *Model) Selected() (fuzzy.Result[catalog.Record], bool) {
	if m.selected == nil {
		return fuzzy.Result[catalog.Record]{}, false
	}
	return *m.selected, true
}

func (m *Model) Results() []fuzzy.Result[catalog.Record] {
	return m.results
}

func (m *Model) View() string {
	var b strings.Builder

	b.WriteString(titleStyle.Render("Products"))
	if line := m.state.StatusLine(); line != "" {
		b.WriteString(" " + statusStyle.Render(line))
	}
	b.WriteString("\n")
	b.WriteString(inputStyle.Render(m.input.View()))
	b.WriteString("\n")

	if len(m.results) == 0 {
		b.WriteString(emptyStyle.Render("No products match"))
		b.WriteString("\n")
	}
	rows, offset := m.visible()
	for i, r := range rows {
		b.WriteString(m.renderRow(r, offset+i == m.cursor))
		b.WriteString("\n")
	}

	if m.status != "" {
		b.WriteString(statusStyle.Render(m.status))
		b.WriteString("\n")
	}
	b.WriteString(m.help.View(m.keys))

	return appStyle.Render(b.String())
}

// visible trims the results to the rows that fit the window and returns the
// index of the first row shown.
func (m *Model) visible() ([]result, int) {
	if m.height <= 0 {
		return m.results, 0
	}
	rows := max(m.height-10, 1)
	if len(m.results) <= rows {
		return m.results, 0
	}
	start := max(m.cursor-rows+1, 0)
	return m.results[start : start+rows], start
}

func (m *Model) renderRow(r result, selected bool) string {
	p := fuzzy.Describe(r.MatchType)
	q := fuzzy.QualityOf(r.Similarity)

	text := r.Text
	if strings.TrimSpace(text) == "" {
		text = "(untitled)"
	}
	if selected {
		text = selectedItemStyle.Render("> " + text)
	} else {
		text = "  " + text
	}

	return fmt.Sprintf("%s %s %s %s",
		text,
		badgeStyle(p.Hint).Render(p.Label),
		scoreStyle.Render(fmt.Sprintf("%.2f", r.Score)),
		qualityStyle(q).Render(fmt.Sprintf("%.0f%%", r.Similarity*100)),
	)
}

// Run shows the browser and returns the chosen result. ok is false when the
// user quits without choosing.
func Run(s *state.State) (fuzzy.Result[catalog.Record], bool, error) {
	m, err := NewModel(s)
	if err != nil {
		return fuzzy.Result[catalog.Record]{}, false, err
	}

	final, err := tea.NewProgram(m, tea.WithAltScreen()).Run()
	if err != nil {
		return fuzzy.Result[catalog.Record]{}, false, fmt.Errorf("browse: %w", err)
	}

	chosen, ok := final.(*Model).Selected()
	return chosen, ok, nil
}
