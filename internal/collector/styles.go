package collector

import (
	"io"

	"github.com/charmbracelet/lipgloss"
)

// styles holds the lipgloss styles used for console output.
// They are bound to a renderer for the collector's writer, so output that
// is not a color terminal (pipes, files, test buffers) is written without
// escape sequences.
type styles struct {
	title   lipgloss.Style
	device  lipgloss.Style
	hint    lipgloss.Style
	success lipgloss.Style
	failure lipgloss.Style
	skipped lipgloss.Style
}

func newStyles(w io.Writer) styles {
	r := lipgloss.NewRenderer(w)
	return styles{
		title:   r.NewStyle().Bold(true).Foreground(lipgloss.Color("39")),
		device:  r.NewStyle().Bold(true),
		hint:    r.NewStyle().Foreground(lipgloss.Color("252")),
		success: r.NewStyle().Foreground(lipgloss.Color("42")),
		failure: r.NewStyle().Foreground(lipgloss.Color("196")),
		skipped: r.NewStyle().Foreground(lipgloss.Color("242")),
	}
}
