// Package style wraps lipgloss styles into plain string renderers.
package style

import (
	"github.com/apod-cli/apod/color"
	"github.com/charmbracelet/lipgloss"
)

// New returns an empty style.
func New() lipgloss.Style {
	return lipgloss.NewStyle()
}

func colored(fg, bg lipgloss.Color) lipgloss.Style {
	return New().Foreground(fg).Background(bg)
}

// Fg returns a renderer painting its input with c.
func Fg(c lipgloss.Color) func(string) string {
	return func(s string) string { return colored(c, "").Render(s) }
}

// Truncate returns a renderer constraining its input to width cells. Zero means unconstrained.
func Truncate(width int) func(string) string {
	return func(s string) string { return New().Width(width).Render(s) }
}

var (
	Faint = func(s string) string { return New().Faint(true).Render(s) }
	Bold  = func(s string) string { return New().Bold(true).Render(s) }
)

// Title renders a screen heading.
var Title = func(s string) string {
	return colored(color.New("230"), color.New("62")).Padding(0, 1).Render(s)
}

// ErrorTitle renders the heading of the error screen.
var ErrorTitle = func(s string) string {
	return colored(color.New("230"), color.Red).Padding(0, 1).Render(s)
}
