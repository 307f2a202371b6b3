package tui

import (
	tea "github.com/charmbracelet/bubbletea"
)

// Init fetches the picture of the day, or the archive when the splash is skipped.
func (b *statefulBubble) Init() tea.Cmd {
	b.setState(loadingState)
	b.loading = true

	if b.options.SkipSplash {
		b.progressStatus = "Fetching the archive..."
		b.waitingForArchive = true
		return tea.Batch(b.spinnerC.Tick, b.loadArchive())
	}

	b.progressStatus = "Fetching today's picture..."
	return tea.Batch(b.spinnerC.Tick, b.loadToday())
}
