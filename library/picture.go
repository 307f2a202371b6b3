package library

import (
	"context"
	"errors"

	"github.com/apod-cli/apod/apod"
	"github.com/apod-cli/apod/internal/cache"
	"github.com/apod-cli/apod/key"
	"github.com/apod-cli/apod/log"
	"github.com/spf13/viper"
)

// Today fetches the picture of the day and downloads its image.
// Failures are not returned: the picture falls back to the cached one, or to the bundled image,
// with the cause kept in Picture.Err. The returned error is only set when even the fallback fails.
//
// The cached record is only replaced once its image is on disk, so the two always match.
func (l *Library) Today(ctx context.Context) (*Picture, error) {
	entry, err := l.fetchToday(ctx)
	if err != nil {
		log.Error(err)
		return l.fallback(err)
	}

	if !entry.IsPicture() {
		cache.ClearToday("")
		l.storeToday(entry)
		return &Picture{Entry: entry}, nil
	}

	preferHD := viper.GetBool(key.ImagesPreferHD)
	path := cache.TodayPath(entry.Ext(preferHD))

	if prev, ok := apod.CachedToday().Get(); ok && prev.Date == entry.Date {
		if cached, ok := cache.CachedToday(); ok && cached == path {
			log.Infof("Using cached picture %s", path)
			return &Picture{Entry: entry, Path: path}, nil
		}
	}

	if err := cache.Download(ctx, entry.ImageURL(preferHD), path); err != nil {
		pic, ferr := l.fallback(err)
		if pic != nil && pic.Entry.Date == "" {
			pic.Entry = entry
		}
		return pic, ferr
	}

	cache.ClearToday(path)
	l.storeToday(entry)
	return &Picture{Entry: entry, Path: path}, nil
}

func (l *Library) storeToday(entry *apod.Entry) {
	if err := apod.StoreToday(entry); err != nil {
		log.Warn(err)
	}
}

func (l *Library) fetchToday(ctx context.Context) (*apod.Entry, error) {
	if l.Keyless() {
		return l.scraper.Today(ctx)
	}
	return l.api.Today(ctx)
}

// fallback returns the cached picture of the day if it is still fresh, or the bundled image.
func (l *Library) fallback(cause error) (*Picture, error) {
	if entry, ok := apod.CachedToday().Get(); ok {
		if path, ok := cache.CachedToday(); ok {
			log.Infof("Falling back to cached picture %s", path)
			return &Picture{Entry: entry, Path: path, Fallback: true, Err: cause}, nil
		}
	}

	path, err := cache.DefaultImage()
	if err != nil {
		return nil, errors.Join(cause, err)
	}

	log.Info("Falling back to the default picture")
	return &Picture{Entry: &apod.Entry{}, Path: path, Fallback: true, Err: cause}, nil
}

// Image returns the local path of the picture of entry, downloading it unless it is cached.
// With force set the cached copy is replaced.
func (l *Library) Image(ctx context.Context, entry *apod.Entry, force bool) (string, error) {
	entry, err := l.Details(ctx, entry)
	if err != nil {
		return "", err
	}

	if !entry.IsPicture() {
		return "", ErrNotImage
	}

	path := cache.ImagePath(entry)
	if !force && cache.Exists(path) {
		log.Infof("Using cached picture %s", path)
		return path, nil
	}

	if err := cache.Download(ctx, entry.ImageURL(viper.GetBool(key.ImagesPreferHD)), path); err != nil {
		return "", err
	}
	return path, nil
}
