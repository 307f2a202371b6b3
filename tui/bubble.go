package tui

import (
	"context"
	"fmt"
	"time"

	"github.com/apod-cli/apod/apod"
	"github.com/apod-cli/apod/constant"
	"github.com/apod-cli/apod/internal/ui"
	"github.com/apod-cli/apod/key"
	"github.com/apod-cli/apod/library"
	"github.com/apod-cli/apod/style"
	"github.com/apod-cli/apod/util"
	"github.com/charmbracelet/bubbles/help"
	bubblesKey "github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/list"
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/samber/lo"
	"github.com/samber/mo"
	"github.com/spf13/viper"
)

// statefulBubble holds the interface state: the current screen, its components and the loaded data.
type statefulBubble struct {
	ctx context.Context

	state         state
	statesHistory util.Stack[state]
	loading       bool

	keymap *statefulKeymap

	// components
	spinnerC spinner.Model
	inputC   textinput.Model
	archiveC list.Model
	helpC    help.Model

	lib Library

	today   *library.Picture
	entries []*apod.Entry
	// searchTerm is set while the list shows search results.
	searchTerm        string
	waitingForArchive bool

	selected      *apod.Entry
	selectedImage string
	expanded      bool

	progressStatus string
	lastError      error

	width, height    int
	searchSuggestion mo.Option[string]
	notifier         *ui.Model

	options *Options
}

// raiseError dispatches a terminal error and transitions the application to the failure view.
func (b *statefulBubble) raiseError(err error) {
	b.lastError = err
	b.stopLoading()
	b.newState(errorState)
}

// setState switches the screen and the keymap together.
func (b *statefulBubble) setState(s state) {
	b.state = s
	b.keymap.setState(s)
}

// newState switches to s, remembering the current screen so back returns to it.
// Loading, search and error screens are transient and never remembered.
func (b *statefulBubble) newState(s state) {
	if b.state == s {
		return
	}

	if !lo.Contains([]state{
		loadingState,
		searchState,
		errorState,
	}, b.state) {
		b.statesHistory.Push(b.state)
	}

	b.setState(s)
}

// previousState restores the application to its immediate predecessor in the navigation stack.
func (b *statefulBubble) previousState() {
	if s, ok := b.statesHistory.Pop(); ok {
		b.setState(s)
	}
}

// resize propagates terminal dimension changes to all child component models.
func (b *statefulBubble) resize(width, height int) {
	x, y := paddingStyle.GetFrameSize()
	xx, yy := listExtraPaddingStyle.GetFrameSize()

	listWidth := width - xx
	listHeight := height - yy

	b.archiveC.SetSize(listWidth, listHeight)
	b.archiveC.Help.Width = listWidth

	b.inputC.Width = listWidth

	b.width = width - x
	b.height = height - y
	b.helpC.Width = listWidth
}

func (b *statefulBubble) startLoading(status string) tea.Cmd {
	b.loading = true
	b.progressStatus = status
	b.newState(loadingState)
	return b.spinnerC.Tick
}

func (b *statefulBubble) stopLoading() {
	b.loading = false
	b.progressStatus = ""
}

// setEntries fills the archive list. The title tells whether search results are shown.
func (b *statefulBubble) setEntries(entries []*apod.Entry) tea.Cmd {
	items := lo.Map(entries, func(e *apod.Entry, _ int) list.Item {
		return &listItem{internal: e}
	})

	if b.searchTerm != "" {
		b.archiveC.Title = fmt.Sprintf("Search: %s", b.searchTerm)
	} else {
		b.archiveC.Title = "Archive"
	}

	b.archiveC.ResetSelected()
	return b.archiveC.SetItems(items)
}

func (b *statefulBubble) selectedEntry() (*apod.Entry, bool) {
	item, ok := b.archiveC.SelectedItem().(*listItem)
	if !ok {
		return nil, false
	}
	return item.internal, true
}

func newBubble(ctx context.Context, options *Options) *statefulBubble {
	keymap := newStatefulKeymap()
	bubble := statefulBubble{
		ctx:           ctx,
		statesHistory: util.Stack[state]{},
		keymap:        keymap,
		lib:           options.Library,
		notifier:      &ui.Model{},
		options:       options,
	}

	delegate := list.NewDefaultDelegate()
	delegate.SetSpacing(viper.GetInt(key.TUIItemSpacing))
	delegate.ShowDescription = true
	delegate.Styles.SelectedTitle = lipgloss.NewStyle().
		Border(lipgloss.ThickBorder(), false, false, false, true).
		BorderForeground(style.AccentColor).
		Foreground(style.AccentColor).
		Padding(0, 0, 0, 1)
	delegate.Styles.NormalTitle = delegate.Styles.NormalTitle.Foreground(lipgloss.Color("7"))
	delegate.Styles.SelectedDesc = delegate.Styles.SelectedTitle

	bubble.archiveC = list.New([]list.Item{}, delegate, 0, 0)
	bubble.archiveC.KeyMap = keymap.forList()
	bubble.archiveC.AdditionalShortHelpKeys = keymap.ShortHelp
	bubble.archiveC.AdditionalFullHelpKeys = func() []bubblesKey.Binding {
		return keymap.FullHelp()[0]
	}
	bubble.archiveC.Title = "Archive"
	bubble.archiveC.Styles.Title = lipgloss.NewStyle().Foreground(style.Base).Background(style.Lavender).Padding(0, 1)
	bubble.archiveC.Styles.NoItems = paddingStyle
	bubble.archiveC.StatusMessageLifetime = time.Second * 5
	bubble.archiveC.SetFilteringEnabled(false)
	bubble.archiveC.SetShowPagination(false)
	bubble.archiveC.SetStatusBarItemName("picture", "pictures")

	bubble.helpC = help.New()

	bubble.spinnerC = spinner.New()
	bubble.spinnerC.Spinner = spinner.Dot
	bubble.spinnerC.Style = lipgloss.NewStyle().Foreground(lipgloss.Color("205"))

	bubble.inputC = textinput.New()
	bubble.inputC.Placeholder = fmt.Sprintf("Search titles (v%s)", constant.Version)
	bubble.inputC.CharLimit = 60
	bubble.inputC.Prompt = viper.GetString(key.TUISearchPromptString)

	if w, h, err := util.TerminalSize(); err == nil {
		bubble.resize(w, h)
	}

	return &bubble
}
