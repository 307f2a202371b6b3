package tui

import (
	"fmt"

	"github.com/apod-cli/apod/apod"
	"github.com/apod-cli/apod/internal/ui"
	"github.com/apod-cli/apod/query"
	"github.com/apod-cli/apod/util"
	"github.com/apod-cli/apod/where"
	bubblesKey "github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/samber/mo"
)

func (b *statefulBubble) notify(msg string) tea.Cmd {
	return ui.Notify(msg)
}

func (b *statefulBubble) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmds []tea.Cmd

	if cmd := b.notifier.Update(msg); cmd != nil {
		cmds = append(cmds, cmd)
	}

	switch msg := msg.(type) {
	case error:
		b.raiseError(msg)
		return b, tea.Batch(cmds...)
	case tea.WindowSizeMsg:
		b.resize(msg.Width, msg.Height)
	case spinner.TickMsg:
		if !b.loading {
			return b, tea.Batch(cmds...)
		}
		var cmd tea.Cmd
		b.spinnerC, cmd = b.spinnerC.Update(msg)
		return b, tea.Batch(append(cmds, cmd)...)
	case archiveMsg:
		// The archive is fetched in the background while the splash is shown.
		b.entries = msg.entries
		cmds = append(cmds, b.setEntries(msg.entries))
		if msg.err != nil {
			cmds = append(cmds, b.notify(msg.err.Error()))
		}
		if b.waitingForArchive {
			b.waitingForArchive = false
			b.stopLoading()
			b.previousState()
			b.newState(archiveState)
		}
		return b, tea.Batch(cmds...)
	case tea.KeyMsg:
		if bubblesKey.Matches(msg, b.keymap.forceQuit) {
			return b, tea.Quit
		}

		if b.loading && !bubblesKey.Matches(msg, b.keymap.back) {
			return b, tea.Batch(cmds...)
		}
	}

	var (
		model tea.Model
		cmd   tea.Cmd
	)

	switch b.state {
	case loadingState:
		model, cmd = b.updateLoading(msg)
	case splashState:
		model, cmd = b.updateSplash(msg)
	case archiveState:
		model, cmd = b.updateArchive(msg)
	case searchState:
		model, cmd = b.updateSearch(msg)
	case detailState:
		model, cmd = b.updateDetail(msg)
	case errorState:
		model, cmd = b.updateError(msg)
	default:
		model = b
	}

	return model, tea.Batch(append(cmds, cmd)...)
}

func (b *statefulBubble) updateLoading(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		if bubblesKey.Matches(msg, b.keymap.back) {
			b.stopLoading()
			b.waitingForArchive = false
			if b.statesHistory.Len() == 0 {
				return b, tea.Quit
			}
			b.previousState()
		}
	case todayMsg:
		b.today = msg.picture
		b.stopLoading()
		b.newState(splashState)

		cmds := []tea.Cmd{b.splashTimeout(), b.loadArchive()}
		if msg.picture.Fallback && msg.picture.Err != nil {
			cmds = append(cmds, b.notify(fmt.Sprintf("Offline, showing a cached picture: %s", msg.picture.Err)))
		}
		return b, tea.Batch(cmds...)
	case detailsMsg:
		b.stopLoading()
		b.previousState()
		return b, b.showDetail(msg.entry)
	case imageMsg:
		b.stopLoading()
		b.previousState()
		return b, b.imageLoaded(msg)
	}

	return b, nil
}

func (b *statefulBubble) updateSplash(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case splashTimeoutMsg:
		return b, b.toArchive()
	case tea.KeyMsg:
		switch {
		case bubblesKey.Matches(msg, b.keymap.quit):
			return b, tea.Quit
		case bubblesKey.Matches(msg, b.keymap.confirm):
			return b, b.toArchive()
		case bubblesKey.Matches(msg, b.keymap.openImage):
			if b.today != nil && b.today.Path != "" {
				return b, b.openPath(b.today.Path)
			}
			return b, b.notify("Nothing to open")
		case bubblesKey.Matches(msg, b.keymap.playVideo):
			if b.today != nil {
				return b, b.openVideo(b.today.Entry)
			}
		}
	}

	return b, nil
}

// toArchive leaves the splash for the list, waiting for it if it is still being fetched.
func (b *statefulBubble) toArchive() tea.Cmd {
	if b.entries == nil {
		b.waitingForArchive = true
		return b.startLoading("Fetching the archive...")
	}

	b.newState(archiveState)
	return nil
}

func (b *statefulBubble) updateArchive(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd

	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch {
		case bubblesKey.Matches(msg, b.keymap.up):
			if n := len(b.archiveC.Items()); n > 0 && b.archiveC.Index() == 0 {
				b.archiveC.Select(n - 1)
				return b, nil
			}
		case bubblesKey.Matches(msg, b.keymap.down):
			if n := len(b.archiveC.Items()); n > 0 && b.archiveC.Index() == n-1 {
				b.archiveC.Select(0)
				return b, nil
			}
		case bubblesKey.Matches(msg, b.keymap.confirm):
			entry, ok := b.selectedEntry()
			if !ok {
				return b, nil
			}
			if entry.URL == "" && entry.Explanation == "" {
				return b, tea.Batch(b.startLoading(fmt.Sprintf("Loading %s...", entry.DisplayDate())), b.loadDetails(entry))
			}
			return b, b.showDetail(entry)
		case bubblesKey.Matches(msg, b.keymap.search):
			b.inputC.SetValue("")
			b.searchSuggestion = mo.None[string]()
			b.inputC.Focus()
			b.setState(searchState)
			return b, textinput.Blink
		case bubblesKey.Matches(msg, b.keymap.configHint):
			return b, b.notify("Config: " + where.Config())
		case bubblesKey.Matches(msg, b.keymap.back):
			if b.searchTerm != "" {
				b.searchTerm = ""
				return b, b.setEntries(b.entries)
			}
			b.previousState()
			return b, nil
		}
	}

	b.archiveC, cmd = b.archiveC.Update(msg)
	return b, cmd
}

func (b *statefulBubble) updateSearch(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd

	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch {
		case bubblesKey.Matches(msg, b.keymap.confirm) && b.inputC.Value() != "":
			term := b.inputC.Value()
			found := b.lib.Search(b.entries, term)

			b.inputC.Blur()
			b.searchTerm = term
			b.setState(archiveState)

			status := b.archiveC.NewStatusMessage(fmt.Sprintf("Found %s", util.Quantify(len(found), "picture", "pictures")))
			return b, tea.Batch(b.setEntries(found), status)
		case bubblesKey.Matches(msg, b.keymap.acceptSearchSuggestion) && b.searchSuggestion.IsPresent():
			b.inputC.SetValue(b.searchSuggestion.MustGet())
			b.searchSuggestion = mo.None[string]()
			b.inputC.SetCursor(len(b.inputC.Value()))
			return b, nil
		case bubblesKey.Matches(msg, b.keymap.back):
			b.inputC.Blur()
			b.setState(archiveState)
			return b, nil
		}
	}

	b.inputC, cmd = b.inputC.Update(msg)

	if b.inputC.Value() != "" {
		if suggestion, ok := query.Suggest(b.inputC.Value()).Get(); ok && suggestion != b.inputC.Value() {
			b.searchSuggestion = mo.Some(suggestion)
		} else {
			b.searchSuggestion = mo.None[string]()
		}
	} else if b.searchSuggestion.IsPresent() {
		b.searchSuggestion = mo.None[string]()
	}

	return b, cmd
}

func (b *statefulBubble) showDetail(entry *apod.Entry) tea.Cmd {
	b.selected = entry
	b.selectedImage = ""
	b.expanded = false
	b.newState(detailState)
	return nil
}

func (b *statefulBubble) imageLoaded(msg imageMsg) tea.Cmd {
	if b.selected == msg.entry {
		b.selectedImage = msg.path
	}

	if msg.open {
		return b.openPath(msg.path)
	}
	return b.notify("Image reloaded")
}

func (b *statefulBubble) updateDetail(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		entry := b.selected
		switch {
		case bubblesKey.Matches(msg, b.keymap.openImage):
			if !entry.IsPicture() {
				return b, b.notify("Not an image")
			}
			if b.selectedImage != "" {
				return b, b.openPath(b.selectedImage)
			}
			return b, tea.Batch(b.startLoading("Downloading image..."), b.loadImage(entry, false, true))
		case bubblesKey.Matches(msg, b.keymap.reload):
			if !entry.IsPicture() {
				return b, b.notify("Not an image")
			}
			return b, tea.Batch(b.startLoading("Reloading image..."), b.loadImage(entry, true, false))
		case bubblesKey.Matches(msg, b.keymap.playVideo):
			return b, b.openVideo(entry)
		case bubblesKey.Matches(msg, b.keymap.explain):
			b.expanded = !b.expanded
		case bubblesKey.Matches(msg, b.keymap.back):
			b.previousState()
		case bubblesKey.Matches(msg, b.keymap.quit):
			return b, tea.Quit
		}
	}

	return b, nil
}

func (b *statefulBubble) updateError(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch {
		case bubblesKey.Matches(msg, b.keymap.quit):
			return b, tea.Quit
		case bubblesKey.Matches(msg, b.keymap.back):
			if b.statesHistory.Len() == 0 {
				return b, tea.Quit
			}
			b.previousState()
		}
	}
	return b, nil
}
