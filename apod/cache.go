package apod

import (
	"sync"
	"time"

	"github.com/apod-cli/apod/filesystem"
	"github.com/apod-cli/apod/where"
	"github.com/metafates/gache"
	"github.com/samber/mo"
)

// archiveData is the on-disk shape of the archive list cache.
type archiveData struct {
	Entries   []*Entry  `json:"entries"`
	FetchedAt time.Time `json:"fetched_at"`
}

var (
	todayCacher = sync.OnceValue(func() *gache.Cache[*Entry] {
		return gache.New[*Entry](&gache.Options{
			Path:       where.Today(),
			Lifetime:   time.Hour * 12,
			FileSystem: &filesystem.GacheFs{},
		})
	})

	archiveCacher = sync.OnceValue(func() *gache.Cache[*archiveData] {
		return gache.New[*archiveData](&gache.Options{
			Path:       where.Archive(),
			FileSystem: &filesystem.GacheFs{},
		})
	})
)

// CachedToday returns the last stored picture of the day if it has not expired.
func CachedToday() mo.Option[*Entry] {
	entry, expired, err := todayCacher().Get()
	if err != nil || expired || entry == nil {
		return mo.None[*Entry]()
	}
	return mo.Some(entry)
}

// StoreToday persists the picture of the day.
func StoreToday(entry *Entry) error {
	return todayCacher().Set(entry)
}

// CachedArchive returns the last stored archive list and when it was fetched.
func CachedArchive() (entries []*Entry, fetchedAt time.Time, ok bool) {
	data, _, err := archiveCacher().Get()
	if err != nil || data == nil || len(data.Entries) == 0 {
		return nil, time.Time{}, false
	}
	return data.Entries, data.FetchedAt, true
}

// StoreArchive persists an archive list, replacing the previous one.
func StoreArchive(entries []*Entry) error {
	return archiveCacher().Set(&archiveData{
		Entries:   entries,
		FetchedAt: time.Now(),
	})
}
