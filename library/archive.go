package library

import (
	"context"

	"github.com/apod-cli/apod/apod"
	"github.com/apod-cli/apod/archive"
	"github.com/apod-cli/apod/key"
	"github.com/apod-cli/apod/log"
	"github.com/samber/lo"
	"github.com/spf13/viper"
)

// Archive returns ArchiveCount records ordered by archive.sort.
// With a key they are random picks from the API, without one the latest entries of the HTML index.
//
// A successful fetch replaces the cached list. On failure the cached list is returned with a *StaleError,
// or an empty list and the fetch error when nothing is cached.
func (l *Library) Archive(ctx context.Context) ([]*apod.Entry, error) {
	order := apod.ParseSortOrder(viper.GetString(key.ArchiveSort))

	entries, err := l.fetchArchive(ctx, ArchiveCount())
	if err != nil {
		log.Error(err)

		cached, fetchedAt, ok := apod.CachedArchive()
		if !ok {
			return []*apod.Entry{}, err
		}

		apod.Sort(cached, order)
		return cached, &StaleError{Err: err, FetchedAt: fetchedAt}
	}

	if err := apod.StoreArchive(entries); err != nil {
		log.Warn(err)
	}

	apod.Sort(entries, order)
	return entries, nil
}

func (l *Library) fetchArchive(ctx context.Context, count int) ([]*apod.Entry, error) {
	if !l.Keyless() {
		return l.api.Random(ctx, count)
	}

	links, err := l.scraper.CachedIndex(ctx)
	if err != nil {
		return nil, err
	}

	return lo.Map(lo.Slice(links, 0, count), func(link *archive.Link, _ int) *apod.Entry {
		return &apod.Entry{Date: link.Date, Title: link.Title}
	}), nil
}
