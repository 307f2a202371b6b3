// Package inline provides the application's non-interactive, scriptable output mode.
package inline

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/apod-cli/apod/apod"
	"github.com/apod-cli/apod/key"
	"github.com/apod-cli/apod/library"
	"github.com/apod-cli/apod/log"
	"github.com/samber/lo"
	"github.com/spf13/viper"
)

// Source provides the entries to list.
type Source interface {
	Archive(ctx context.Context) ([]*apod.Entry, error)
	Search(entries []*apod.Entry, term string) []*apod.Entry
}

// Run lists archive entries according to options.
func Run(ctx context.Context, src Source, options *Options) error {
	if options.Out == nil {
		options.Out = os.Stdout
	}

	entries, err := src.Archive(ctx)
	if err != nil {
		var stale *library.StaleError
		if !errors.As(err, &stale) || len(entries) == 0 {
			return err
		}
		log.Warn(err)
	}

	if options.Search != "" {
		entries = src.Search(entries, options.Search)
	}

	if order, ok := options.Sort.Get(); ok {
		apod.Sort(entries, order)
	}

	if options.Count > 0 {
		entries = lo.Slice(entries, 0, options.Count)
	}

	if picker, ok := options.Picker.Get(); ok {
		if choice := picker(entries); choice != nil {
			entries = []*apod.Entry{choice}
		} else {
			entries = nil
		}
	}

	if options.Json {
		return writeJson(options.Out, entries, options)
	}

	return writeText(options.Out, entries)
}

// writeText prints one entry per line: date, kind, title and the URL to open.
func writeText(out io.Writer, entries []*apod.Entry) error {
	for _, e := range entries {
		if _, err := fmt.Fprintf(out, "%s  %s  %s  %s\n", e.DisplayDate(), e.Kind(), e.DisplayTitle(), URL(e)); err != nil {
			return err
		}
	}
	return nil
}

// URL returns what a user would open for entry: the image for pictures, the watch page for videos.
func URL(e *apod.Entry) string {
	if e.IsPicture() {
		return e.ImageURL(viper.GetBool(key.ImagesPreferHD))
	}
	return e.WatchURL()
}
