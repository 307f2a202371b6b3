// Package icon renders status and media symbols in the variant chosen by icons.variant:
// emoji, nerd font glyphs, plain ASCII, kaomoji or squares. An unknown variant renders nothing.
package icon

import (
	"github.com/apod-cli/apod/apod"
	"github.com/apod-cli/apod/key"
	"github.com/spf13/viper"
)

const (
	emoji   = "emoji"
	nerd    = "nerd"
	plain   = "plain"
	kaomoji = "kaomoji"
	squares = "squares"
)

// AvailableVariants lists the accepted icons.variant values.
func AvailableVariants() []string {
	return []string{emoji, nerd, plain, kaomoji, squares}
}

type iconDef struct {
	emoji   string
	nerd    string
	plain   string
	kaomoji string
	squares string
}

func (d *iconDef) variant(name string) string {
	switch name {
	case emoji:
		return d.emoji
	case nerd:
		return d.nerd
	case plain:
		return d.plain
	case kaomoji:
		return d.kaomoji
	case squares:
		return d.squares
	default:
		return ""
	}
}

// Get renders i in the configured variant.
func Get(i Icon) string {
	d, ok := icons[i]
	if !ok {
		return ""
	}
	return d.variant(viper.GetString(key.IconsVariant))
}

// ForKind returns the symbol for a media kind as reported by apod.Entry.Kind.
func ForKind(kind string) string {
	switch kind {
	case apod.KindImage:
		return Get(Image)
	case apod.KindVideo:
		return Get(Video)
	case apod.KindGIF:
		return Get(Gif)
	default:
		return Get(Unknown)
	}
}
