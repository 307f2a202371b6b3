package archive

import (
	"context"
	"sync"
	"time"

	"github.com/apod-cli/apod/filesystem"
	"github.com/apod-cli/apod/log"
	"github.com/apod-cli/apod/where"
	"github.com/metafates/gache"
)

var indexCacher = sync.OnceValue(func() *gache.Cache[[]*Link] {
	return gache.New[[]*Link](&gache.Options{
		Path:       where.Index(),
		Lifetime:   time.Hour * 24,
		FileSystem: &filesystem.GacheFs{},
	})
})

// CachedIndex returns the archive index, scraping it again once the cached copy expires.
// A failed scrape falls back to an expired copy when one exists.
func (s *Scraper) CachedIndex(ctx context.Context) ([]*Link, error) {
	cached, expired, err := indexCacher().Get()
	if err == nil && !expired && len(cached) > 0 {
		return cached, nil
	}

	links, err := s.Index(ctx)
	if err != nil {
		if len(cached) > 0 {
			log.Warnf("using stale archive index: %s", err)
			return cached, nil
		}
		return nil, err
	}

	if err := indexCacher().Set(links); err != nil {
		log.Warn(err)
	}
	return links, nil
}
