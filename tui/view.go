package tui

import (
	"fmt"
	"strings"

	"github.com/apod-cli/apod/apod"
	"github.com/apod-cli/apod/color"
	"github.com/apod-cli/apod/icon"
	"github.com/apod-cli/apod/inline"
	"github.com/apod-cli/apod/style"
	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/reflow/wordwrap"
	"github.com/muesli/reflow/wrap"
)

var (
	listExtraPaddingStyle = lipgloss.NewStyle().Padding(1, 2, 1, 0)
	paddingStyle          = lipgloss.NewStyle().Padding(1, 2)
)

// collapsedLines is how many explanation lines are shown before it is expanded.
const collapsedLines = 3

func (b *statefulBubble) View() string {
	var output string

	switch b.state {
	case loadingState:
		output = b.viewLoading()
	case splashState:
		output = b.viewSplash()
	case archiveState:
		output = b.viewArchive()
	case searchState:
		output = b.viewSearch()
	case detailState:
		output = b.viewDetail()
	case errorState:
		output = b.viewError()
	default:
		output = "Unknown state"
	}

	return b.notifier.View(output)
}

func (b *statefulBubble) viewLoading() string {
	return b.renderLines(
		true,
		[]string{
			style.Title("Loading"),
			"",
			b.spinnerC.View() + " " + b.progressStatus,
		},
	)
}

func (b *statefulBubble) viewSplash() string {
	if b.today == nil {
		return b.renderLines(true, []string{style.Title("Astronomy Picture of the Day")})
	}

	lines := append([]string{style.Title("Astronomy Picture of the Day"), ""}, b.entryLines(b.today.Entry, b.today.Path, false)...)
	if b.today.Fallback {
		lines = append(lines, "", style.Fg(color.Yellow)(icon.Get(icon.Cached)+" cached picture"))
	}

	return b.renderLines(true, lines)
}

func (b *statefulBubble) viewArchive() string {
	return listExtraPaddingStyle.Render(b.archiveC.View())
}

func (b *statefulBubble) viewSearch() string {
	lines := []string{
		style.Title("Search Archive"),
		"",
		b.inputC.View(),
	}

	if suggestion, ok := b.searchSuggestion.Get(); ok {
		lines = append(lines, "", style.Faint(fmt.Sprintf("%s %s", icon.Get(icon.Search), suggestion)))
	}

	return b.renderLines(true, lines)
}

func (b *statefulBubble) viewDetail() string {
	lines := append([]string{style.Title(b.selected.DisplayDate()), ""}, b.entryLines(b.selected, b.selectedImage, b.expanded)...)
	return b.renderLines(true, lines)
}

// entryLines renders the title, credits, media and explanation of entry.
func (b *statefulBubble) entryLines(entry *apod.Entry, path string, expanded bool) []string {
	truncate := style.Truncate(b.width)

	lines := []string{
		truncate(style.Bold(entry.DisplayTitle())),
		truncate(style.Faint(fmt.Sprintf("%s %s • %s", icon.ForKind(entry.Kind()), entry.DisplayDate(), entry.Kind()))),
	}

	if c := strings.TrimSpace(entry.Copyright); c != "" {
		lines = append(lines, truncate(style.Faint("© "+c)))
	}

	lines = append(lines, "")
	switch {
	case path != "":
		lines = append(lines, truncate(fmt.Sprintf("%s %s", icon.Get(icon.Image), style.Fg(color.Purple)(path))))
	case entry.Kind() == apod.KindVideo:
		lines = append(lines, truncate(fmt.Sprintf("%s %s", icon.Get(icon.Video), style.Fg(color.Purple)(entry.WatchURL()))))
	case inline.URL(entry) != "":
		lines = append(lines, truncate(fmt.Sprintf("%s %s", icon.Get(icon.Link), style.Faint(inline.URL(entry)))))
	}

	if entry.Explanation != "" {
		explanation := strings.Split(wordwrap.String(entry.Explanation, max(b.width, 20)), "\n")
		if !expanded && len(explanation) > collapsedLines {
			explanation = append(explanation[:collapsedLines], style.Faint("…"))
		}
		lines = append(lines, "")
		lines = append(lines, explanation...)
	}

	return lines
}

func (b *statefulBubble) viewError() string {
	errorStyle := lipgloss.NewStyle().Foreground(style.ErrorColor).Bold(true)
	errorMsg := wrap.String(errorStyle.Render(b.lastError.Error()), b.width)
	return b.renderLines(
		true,
		[]string{
			style.ErrorTitle("Error"),
			"",
			icon.Get(icon.Fail) + " An error occurred:",
			"",
			errorMsg,
		},
	)
}

func (b *statefulBubble) renderLines(addHelp bool, lines []string) string {
	h := len(lines)
	l := strings.Join(lines, "\n")
	if addHelp {
		if b.height > h {
			l += strings.Repeat("\n", b.height-h)
		}
		l += b.helpC.View(b.keymap)
	}

	return paddingStyle.Render(l)
}
