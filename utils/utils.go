package utils

import (
	"io"
	"os"

	"github.com/charmbracelet/glamour"
	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
	"golang.org/x/term"
)

const defaultWrapWidth = 80

// IsTerminal reports whether w writes to an interactive terminal.
func IsTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	if !ok {
		return false
	}
	return term.IsTerminal(int(f.Fd()))
}

// ColorProfile is the color profile to use for w. Anything that is not a
// terminal gets plain text.
func ColorProfile(w io.Writer) termenv.Profile {
	if !IsTerminal(w) {
		return termenv.Ascii
	}
	return termenv.NewOutput(w).EnvColorProfile()
}

// NewRenderer returns a lipgloss renderer writing styles suited to w.
func NewRenderer(w io.Writer) *lipgloss.Renderer {
	return lipgloss.NewRenderer(w, termenv.WithProfile(ColorProfile(w)))
}

// RenderMarkdown renders markdown with glamour. Styled output uses the
// dracula theme; unstyled output uses glamour's notty style so it stays
// readable when piped.
func RenderMarkdown(markdown string, width int, styled bool) (string, error) {
	if width <= 0 {
		width = defaultWrapWidth
	}

	opts := []glamour.TermRendererOption{glamour.WithWordWrap(width)}
	if styled {
		opts = append(opts,
			glamour.WithStandardStyle("dracula"),
			glamour.WithColorProfile(termenv.ANSI256),
		)
	} else {
		opts = append(opts,
			glamour.WithStandardStyle("notty"),
			glamour.WithColorProfile(termenv.Ascii),
		)
	}

	r, err := glamour.NewTermRenderer(opts...)
	if err != nil {
		return "", err
	}
	return r.Render(markdown)
}
