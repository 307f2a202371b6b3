// Package version provides unified mechanisms for application version tracking and update discovery.
package version

import (
	"context"
	"encoding/json"
	"errors"
	"path/filepath"
	"strings"
	"sync"
	"time"

	"github.com/apod-cli/apod/filesystem"
	"github.com/apod-cli/apod/network"
	"github.com/apod-cli/apod/util"
	"github.com/apod-cli/apod/where"
	"github.com/metafates/gache"
)

// releaseURL is the GitHub API endpoint describing the latest release.
var releaseURL = "https://api.github.com/repos/apod-cli/apod/releases/latest"

var versionCacher = sync.OnceValue(func() *gache.Cache[string] {
	return gache.New[string](&gache.Options{
		Path:       filepath.Join(where.Cache(), "version.json"),
		Lifetime:   time.Hour * 24 * 2,
		FileSystem: &filesystem.GacheFs{},
	})
})

// Latest returns the most recent released version, without the leading "v".
// The answer is cached for two days to stay clear of GitHub rate limits.
func Latest(ctx context.Context) (version string, err error) {
	ver, expired, err := versionCacher().Get()
	if err != nil {
		return "", err
	}

	if !expired && ver != "" {
		return ver, nil
	}

	body, err := network.Get(ctx, nil, releaseURL)
	if err != nil {
		return
	}

	defer util.Ignore(body.Close)

	var release struct {
		TagName string `json:"tag_name"`
	}

	err = json.NewDecoder(body).Decode(&release)
	if err != nil {
		return
	}

	if release.TagName == "" {
		err = errors.New("empty tag name")
		return
	}

	version = strings.TrimPrefix(release.TagName, "v")
	_ = versionCacher().Set(version)
	return
}
