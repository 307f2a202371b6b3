// Package cache manages downloaded pictures on disk.
package cache

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"time"

	"github.com/apod-cli/apod/apod"
	"github.com/apod-cli/apod/constant"
	"github.com/apod-cli/apod/filesystem"
	"github.com/apod-cli/apod/key"
	"github.com/apod-cli/apod/log"
	"github.com/apod-cli/apod/network"
	"github.com/apod-cli/apod/util"
	"github.com/apod-cli/apod/where"
	"github.com/samber/lo"
	"github.com/spf13/viper"
)

// partialAge is how long a partial download may sit before it counts as abandoned.
// It is well past network.Client.Timeout, so no running download is that old.
const partialAge = time.Hour

const partialExt = ".tmp"

// todayExts are probed in order when looking for a cached picture of the day.
var todayExts = []string{".jpg", ".png", ".gif"}

// ImagePath returns where the picture of entry is stored, named after its date.
func ImagePath(entry *apod.Entry) string {
	name := util.SanitizeFilename(entry.Date) + entry.Ext(viper.GetBool(key.ImagesPreferHD))
	return filepath.Join(where.Images(), name)
}

// TodayPath returns where the picture of the day is stored for the given extension.
func TodayPath(ext string) string {
	return filepath.Join(where.Images(), "today"+ext)
}

// CachedToday returns the stored picture of the day, if any.
func CachedToday() (string, bool) {
	for _, ext := range todayExts {
		path := TodayPath(ext)
		if exists, _ := filesystem.API().Exists(path); exists {
			return path, true
		}
	}
	return "", false
}

// ClearToday removes every stored picture of the day except keep.
func ClearToday(keep string) {
	for _, ext := range todayExts {
		if path := TodayPath(ext); path != keep {
			_ = filesystem.API().Remove(path)
		}
	}
}

// Exists reports whether path holds a non-empty file.
func Exists(path string) bool {
	info, err := filesystem.API().Stat(path)
	return err == nil && !info.IsDir() && info.Size() > 0
}

// Download fetches url into path. Partially downloaded files are never left at path.
func Download(ctx context.Context, url, path string) error {
	log.Infof("Downloading %s to %s", url, path)

	body, err := network.Get(ctx, nil, url)
	if err != nil {
		log.Error(err)
		return err
	}
	defer body.Close()

	n, err := filesystem.WriteAtomic(path, body, os.ModePerm)
	if err != nil {
		log.Error(err)
		return err
	}

	log.Infof("Downloaded %s", util.Bytes(n))
	return nil
}

// DefaultImage writes the bundled fallback picture once and returns its path.
func DefaultImage() (string, error) {
	path := filepath.Join(where.Images(), "default.gif")
	if Exists(path) {
		return path, nil
	}

	if err := filesystem.API().WriteFile(path, constant.DefaultImage, os.ModePerm); err != nil {
		return "", err
	}
	return path, nil
}

type file struct {
	path string
	size int64
	mod  time.Time
}

// Prune removes pictures older than ttl, then the oldest ones until the directory holds at most maxBytes.
// A zero ttl or maxBytes disables that limit. The fallback picture is kept.
// Partial downloads are left alone until they are abandoned.
func Prune(ttl time.Duration, maxBytes int64) (removed int, freed int64, err error) {
	infos, err := filesystem.API().ReadDir(where.Images())
	if err != nil {
		return 0, 0, err
	}

	files := lo.FilterMap(infos, func(info os.FileInfo, _ int) (file, bool) {
		if info.IsDir() || info.Name() == "default.gif" {
			return file{}, false
		}
		return file{
			path: filepath.Join(where.Images(), info.Name()),
			size: info.Size(),
			mod:  info.ModTime(),
		}, true
	})

	sort.Slice(files, func(i, j int) bool {
		return files[i].mod.Before(files[j].mod)
	})

	remove := func(f file) {
		if err := filesystem.API().Remove(f.path); err != nil {
			log.Warn(err)
			return
		}
		removed++
		freed += f.size
	}

	var kept []file
	for _, f := range files {
		switch {
		case strings.HasSuffix(f.path, partialExt):
			if time.Since(f.mod) > partialAge {
				remove(f)
			}
		case ttl > 0 && time.Since(f.mod) > ttl:
			remove(f)
		default:
			kept = append(kept, f)
		}
	}

	if maxBytes > 0 {
		total := lo.SumBy(kept, func(f file) int64 { return f.size })
		for _, f := range kept {
			if total <= maxBytes {
				break
			}
			remove(f)
			total -= f.size
		}
	}

	if removed > 0 {
		log.Infof("Pruned %s, %s freed", util.Quantify(removed, "picture", "pictures"), util.Bytes(freed))
	}
	return removed, freed, nil
}

// CollectGarbage prunes the picture directory in the background using the configured limits.
func CollectGarbage() {
	go func() {
		ttl := time.Duration(viper.GetInt(key.CacheTTLHours)) * time.Hour
		maxBytes := viper.GetInt64(key.CacheMaxSize) * 1024 * 1024
		if _, _, err := Prune(ttl, maxBytes); err != nil {
			log.Warn(err)
		}
	}()
}

// StalePartials lists abandoned partial downloads in the picture directory.
func StalePartials() []string {
	infos, err := filesystem.API().ReadDir(where.Images())
	if err != nil {
		return nil
	}

	return lo.FilterMap(infos, func(info os.FileInfo, _ int) (string, bool) {
		stale := !info.IsDir() &&
			strings.HasSuffix(info.Name(), partialExt) &&
			time.Since(info.ModTime()) > partialAge
		return filepath.Join(where.Images(), info.Name()), stale
	})
}

// CleanTransient removes abandoned partial downloads.
func CleanTransient() error {
	for _, path := range StalePartials() {
		if err := filesystem.API().Remove(path); err != nil && !errors.Is(err, os.ErrNotExist) {
			return err
		}
	}
	return nil
}
