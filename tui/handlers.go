package tui

import (
	"time"

	"github.com/apod-cli/apod/apod"
	"github.com/apod-cli/apod/key"
	"github.com/apod-cli/apod/library"
	"github.com/apod-cli/apod/log"
	"github.com/apod-cli/apod/open"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/viper"
)

type (
	todayMsg struct {
		picture *library.Picture
	}

	// archiveMsg carries the list and, when it is stale or empty, the fetch error.
	archiveMsg struct {
		entries []*apod.Entry
		err     error
	}

	detailsMsg struct {
		entry *apod.Entry
	}

	imageMsg struct {
		entry *apod.Entry
		path  string
		open  bool
	}

	splashTimeoutMsg struct{}
)

func (b *statefulBubble) loadToday() tea.Cmd {
	return func() tea.Msg {
		picture, err := b.lib.Today(b.ctx)
		if err != nil {
			return err
		}
		return todayMsg{picture: picture}
	}
}

// loadArchive fetches the list in the background. Failures never leave the current screen:
// they are delivered with whatever list is available so the user gets a notice instead.
func (b *statefulBubble) loadArchive() tea.Cmd {
	return func() tea.Msg {
		entries, err := b.lib.Archive(b.ctx)
		if entries == nil {
			entries = []*apod.Entry{}
		}
		return archiveMsg{entries: entries, err: err}
	}
}

func (b *statefulBubble) loadDetails(entry *apod.Entry) tea.Cmd {
	return func() tea.Msg {
		full, err := b.lib.Details(b.ctx, entry)
		if err != nil {
			return err
		}
		return detailsMsg{entry: full}
	}
}

// loadImage downloads the picture of entry, replacing the cached copy when force is set,
// and opens it afterwards when openAfter is set.
func (b *statefulBubble) loadImage(entry *apod.Entry, force, openAfter bool) tea.Cmd {
	return func() tea.Msg {
		path, err := b.lib.Image(b.ctx, entry, force)
		if err != nil {
			return err
		}
		return imageMsg{entry: entry, path: path, open: openAfter}
	}
}

// splashTimeout fires after tui.splash_seconds. Zero waits for a key press.
func (b *statefulBubble) splashTimeout() tea.Cmd {
	seconds := viper.GetInt(key.TUISplashSeconds)
	if seconds <= 0 {
		return nil
	}

	return tea.Tick(time.Duration(seconds)*time.Second, func(time.Time) tea.Msg {
		return splashTimeoutMsg{}
	})
}

// openPath opens a local picture in the viewer, reporting failures as a notification.
func (b *statefulBubble) openPath(path string) tea.Cmd {
	if err := open.Image(path); err != nil {
		log.Error(err)
		return b.notify("Could not open viewer: " + err.Error())
	}
	return nil
}

func (b *statefulBubble) openVideo(entry *apod.Entry) tea.Cmd {
	if entry.Kind() != apod.KindVideo {
		return b.notify("Not a video")
	}

	if err := open.URL(entry.WatchURL()); err != nil {
		log.Error(err)
		return b.notify("Could not open browser: " + err.Error())
	}
	return nil
}
