package presentation

import (
	"io"

	"github.com/charmbracelet/lipgloss"
)

var (
	primaryColor   = lipgloss.Color("#85DCB0") // mint green
	secondaryColor = lipgloss.Color("#7FD1F5") // sky
	accentColor    = lipgloss.Color("#C38D9E") // dusty rose
	warningColor   = lipgloss.Color("#F6AE2D") // amber
	errorColor     = lipgloss.Color("#E85D75") // soft red
	dimTextColor   = lipgloss.Color("#9CA3AF") // dim text
)

// styles are bound to a renderer so colour is only emitted when the
// destination writer is a terminal.
type styles struct {
	title   lipgloss.Style
	rule    lipgloss.Style
	prompt  lipgloss.Style
	path    lipgloss.Style
	copied  lipgloss.Style
	notice  lipgloss.Style
	warning lipgloss.Style
	err     lipgloss.Style
	dim     lipgloss.Style
	value   lipgloss.Style
}

func newStyles(w io.Writer) styles {
	r := lipgloss.NewRenderer(w)
	return styles{
		title:   r.NewStyle().Bold(true).Foreground(secondaryColor),
		rule:    r.NewStyle().Foreground(secondaryColor),
		prompt:  r.NewStyle().Foreground(primaryColor),
		path:    r.NewStyle().Foreground(secondaryColor),
		copied:  r.NewStyle().Foreground(accentColor),
		notice:  r.NewStyle().Foreground(primaryColor),
		warning: r.NewStyle().Foreground(warningColor),
		err:     r.NewStyle().Foreground(errorColor).Bold(true),
		dim:     r.NewStyle().Foreground(dimTextColor),
		value:   r.NewStyle().Bold(true),
	}
}
