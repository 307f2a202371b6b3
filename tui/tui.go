// Package tui provides the interactive terminal interface.
package tui

import (
	"context"

	"github.com/apod-cli/apod/apod"
	"github.com/apod-cli/apod/library"
	tea "github.com/charmbracelet/bubbletea"
)

// Library is what the interface needs from library.Library.
type Library interface {
	Today(ctx context.Context) (*library.Picture, error)
	Archive(ctx context.Context) ([]*apod.Entry, error)
	Details(ctx context.Context, entry *apod.Entry) (*apod.Entry, error)
	Image(ctx context.Context, entry *apod.Entry, force bool) (string, error)
	Search(entries []*apod.Entry, term string) []*apod.Entry
}

// Options encapsulates the runtime configuration for the terminal user interface.
type Options struct {
	Library Library
	// SkipSplash opens the archive list directly.
	SkipSplash bool
}

// Run starts the interface and blocks until the user quits.
func Run(ctx context.Context, options *Options) error {
	bubble := newBubble(ctx, options)
	_, err := tea.NewProgram(bubble, tea.WithAltScreen(), tea.WithContext(ctx)).Run()
	return err
}
