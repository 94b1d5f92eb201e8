package prompt

import "github.com/charmbracelet/lipgloss"

// styles are bound to the renderer of a Terminal's output, so color is
// dropped when the output is not a terminal.
type styles struct {
	label   lipgloss.Style
	hint    lipgloss.Style
	warning lipgloss.Style
	success lipgloss.Style
	failure lipgloss.Style
}

func newStyles(r *lipgloss.Renderer) styles {
	fg := func(c string) lipgloss.Style {
		return r.NewStyle().Foreground(lipgloss.Color(c))
	}

	return styles{
		label:   fg("6").Bold(true),
		hint:    fg("8"),
		warning: fg("3"),
		success: fg("2"),
		failure: fg("1"),
	}
}
