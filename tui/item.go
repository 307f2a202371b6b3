package tui

import (
	"strings"

	"github.com/apod-cli/apod/apod"
	"github.com/apod-cli/apod/icon"
	"github.com/apod-cli/apod/inline"
	"github.com/apod-cli/apod/key"
	"github.com/apod-cli/apod/style"
	"github.com/spf13/viper"
)

// listItem implements the list.Item interface for archive entries.
type listItem struct {
	internal *apod.Entry
}

// Title is the entry title prefixed by its media kind icon.
func (t *listItem) Title() string {
	return icon.ForKind(t.internal.Kind()) + " " + t.internal.DisplayTitle()
}

// Description shows the date, the kind and, when enabled, the URL.
func (t *listItem) Description() string {
	parts := []string{t.internal.DisplayDate(), t.internal.Kind()}
	if viper.GetBool(key.TUIShowURLs) {
		if u := inline.URL(t.internal); u != "" {
			parts = append(parts, style.Faint(u))
		}
	}
	return strings.Join(parts, " • ")
}

func (t *listItem) FilterValue() string {
	return t.internal.Title
}
