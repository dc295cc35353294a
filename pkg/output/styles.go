package output

import (
	"io"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
)

// Styles holds the lipgloss styles used by the text renderers.
type Styles struct {
	Directory lipgloss.Style
	File      lipgloss.Style
	Header    lipgloss.Style
	Label     lipgloss.Style
	Muted     lipgloss.Style
	Error     lipgloss.Style
}

// NewStyles creates styles bound to a renderer for w. With color disabled
// every style renders plain text.
func NewStyles(w io.Writer, color bool) Styles {
	r := lipgloss.NewRenderer(w)
	switch {
	case !color:
		r.SetColorProfile(termenv.Ascii)
	case r.ColorProfile() == termenv.Ascii:
		r.SetColorProfile(termenv.ANSI256)
	}

	return Styles{
		Directory: r.NewStyle().Bold(true).Foreground(lipgloss.AdaptiveColor{Light: "#005FAF", Dark: "#5FAFFF"}),
		File:      r.NewStyle(),
		Header:    r.NewStyle().Bold(true).Underline(true),
		Label:     r.NewStyle().Foreground(lipgloss.AdaptiveColor{Light: "#5F5F5F", Dark: "#A8A8A8"}),
		Muted:     r.NewStyle().Faint(true),
		Error:     r.NewStyle().Bold(true).Foreground(lipgloss.AdaptiveColor{Light: "#D70000", Dark: "#FF5F5F"}),
	}
}
