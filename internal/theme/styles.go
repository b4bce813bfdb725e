package theme

import (
	"io"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
)

// Styles groups the styles used when printing the PR graph
type Styles struct {
	Connector lipgloss.Style // Tree glyphs
	Error     lipgloss.Style
	Number    lipgloss.Style // [#123]
	Repo      lipgloss.Style
	Root      lipgloss.Style // Root branch names
	Success   lipgloss.Style
	Title     lipgloss.Style
}

// NewStyles builds the graph styles bound to a lipgloss renderer
func NewStyles(r *lipgloss.Renderer) Styles {
	return Styles{
		Connector: r.NewStyle().
			Foreground(ColorConnector).
			Bold(true),
		Error: r.NewStyle().
			Foreground(ColorError),
		Number: r.NewStyle().
			Foreground(ColorMuted).
			Faint(true),
		Repo: r.NewStyle().
			Foreground(ColorRepo).
			Bold(true),
		Root: r.NewStyle().
			Foreground(ColorConnector).
			Bold(true),
		Success: r.NewStyle().
			Foreground(ColorSuccess),
		Title: r.NewStyle().
			Foreground(ColorMuted).
			Faint(true),
	}
}

// DefaultStyles returns styles for the given writer, letting lipgloss
// detect the terminal color profile
func DefaultStyles(w io.Writer) Styles {
	return NewStyles(lipgloss.NewRenderer(w))
}

// ForcedStyles returns styles that always emit 256-color escape sequences,
// regardless of whether w is a terminal
func ForcedStyles(w io.Writer) Styles {
	r := lipgloss.NewRenderer(w)
	r.SetColorProfile(termenv.ANSI256)
	return NewStyles(r)
}
