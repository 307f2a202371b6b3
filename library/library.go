// Package library fetches pictures and records and keeps them on disk,
// falling back to cached copies when NASA cannot be reached.
package library

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/apod-cli/apod/apod"
	"github.com/apod-cli/apod/archive"
	"github.com/apod-cli/apod/auth"
	"github.com/apod-cli/apod/key"
	"github.com/apod-cli/apod/log"
	"github.com/apod-cli/apod/query"
	"github.com/samber/lo"
	"github.com/spf13/viper"
)

// ErrNotImage is returned when a picture is requested for a record that is not an image.
var ErrNotImage = errors.New("record is not an image")

// StaleError reports that a fetch failed and cached data was served instead.
type StaleError struct {
	Err       error
	FetchedAt time.Time
}

func (e *StaleError) Error() string {
	return fmt.Sprintf("showing cached list from %s: %s", e.FetchedAt.Format(time.DateTime), e.Err)
}

func (e *StaleError) Unwrap() error {
	return e.Err
}

// Picture is the picture of the day ready to be shown.
type Picture struct {
	Entry *apod.Entry
	// Path is a local file to render. Empty for records with nothing to show, such as videos without thumbnails.
	Path string
	// Fallback is set when Path is a cached or bundled picture rather than the one just fetched.
	Fallback bool
	Err      error
}

// Library is the single entry point the front ends use.
// It talks to the JSON API when a key is available and scrapes the HTML archive otherwise.
type Library struct {
	api     *apod.Client
	scraper *archive.Scraper
	source  auth.Source
}

// New resolves the API key and builds a library.
// Without a key it scrapes the HTML archive, unless that is disabled, in which case auth.ErrNoKey is returned.
func New() (*Library, error) {
	lib, err := NewKeyless()
	if err != nil {
		return nil, err
	}

	apiKey, source, err := auth.Resolve()
	switch {
	case err == nil:
		lib.source = source
		lib.api = apod.NewClient(
			apiKey,
			apod.WithEndpoint(viper.GetString(key.APIEndpoint)),
			apod.WithThumbs(viper.GetBool(key.APIThumbs)),
		)
		log.Infof("Using API key from %s", source)
	case errors.Is(err, auth.ErrNoKey) && viper.GetBool(key.ArchiveKeyless):
		log.Info("No API key, scraping the HTML archive")
	default:
		return nil, err
	}

	return lib, nil
}

// NewKeyless builds a library that only scrapes the HTML archive, ignoring any configured key.
func NewKeyless() (*Library, error) {
	scraper, err := archive.New(viper.GetString(key.ArchiveBaseURL), nil)
	if err != nil {
		return nil, err
	}
	return &Library{scraper: scraper}, nil
}

// Keyless reports whether the library scrapes the HTML archive instead of calling the API.
func (l *Library) Keyless() bool {
	return l.api == nil
}

// KeySource reports where the API key was found. Empty when keyless.
func (l *Library) KeySource() auth.Source {
	return l.source
}

// Day returns the record published on day.
func (l *Library) Day(ctx context.Context, day time.Time) (*apod.Entry, error) {
	if l.Keyless() {
		if err := apod.CheckDate(day, time.Now()); err != nil {
			return nil, err
		}
		return l.scraper.Day(ctx, day)
	}
	return l.api.ByDate(ctx, day)
}

// Details fills in a record that only carries a date and title, as listed by the scraped index.
func (l *Library) Details(ctx context.Context, entry *apod.Entry) (*apod.Entry, error) {
	if entry.URL != "" || entry.Explanation != "" {
		return entry, nil
	}

	full, err := l.Day(ctx, entry.Time())
	if err != nil {
		return entry, err
	}
	*entry = *full
	return entry, nil
}

// Search filters entries by title and remembers the term for suggestions.
func (l *Library) Search(entries []*apod.Entry, term string) []*apod.Entry {
	found := apod.Search(entries, term)
	if err := query.Remember(term, 1); err != nil {
		log.Warn(err)
	}
	return found
}

// ArchiveCount returns the configured archive size, clamped to 50..1000 and rounded down to a multiple of 50.
func ArchiveCount() int {
	n := lo.Clamp(viper.GetInt(key.ArchiveCount), 50, 1000)
	return n - n%50
}
