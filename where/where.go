// Package where implements a cross-platform resolver for application-specific filesystem paths.
package where

import (
	"os"
	"path/filepath"

	"github.com/apod-cli/apod/constant"
	"github.com/apod-cli/apod/filesystem"
	"github.com/apod-cli/apod/key"
	"github.com/samber/lo"
	"github.com/spf13/viper"
)

// EnvConfigPath is the environment variable identifier used to override the default configuration directory.
const EnvConfigPath = "APOD_CONFIG_PATH"

// ensureDir guarantees the existence of a directory at the specified path, creating it if necessary.
func ensureDir(path string) string {
	lo.Must0(filesystem.API().MkdirAll(path, os.ModePerm))
	return path
}

// Config resolves the absolute path to the primary application configuration directory.
// The path can be overridden with the APOD_CONFIG_PATH environment variable.
func Config() string {
	if custom, ok := os.LookupEnv(EnvConfigPath); ok {
		return ensureDir(custom)
	}

	base := lo.Must(os.UserConfigDir())
	return ensureDir(filepath.Join(base, constant.App))
}

// Cache resolves the absolute path to the application's persistent cache directory.
func Cache() string {
	base, err := os.UserCacheDir()
	if err != nil {
		base = filepath.Join(".", "cache")
	}
	return ensureDir(filepath.Join(base, constant.App))
}

// Images resolves the directory holding downloaded pictures.
func Images() string {
	return ensureDir(filepath.Join(Cache(), "images"))
}

// Logs resolves the absolute path to the directory used for application diagnostic logs.
func Logs() string {
	return ensureDir(filepath.Join(Config(), "logs"))
}

// Today resolves the cached record of the current picture.
func Today() string {
	return filepath.Join(Cache(), "today.json")
}

// Archive resolves the cached list of fetched records, used when the network is unavailable.
func Archive() string {
	return filepath.Join(Cache(), "archive.json")
}

// Index resolves the cached scrape of the HTML archive index.
func Index() string {
	return filepath.Join(Cache(), "index.json")
}

// Queries resolves the absolute path to the search query suggestion registry.
func Queries() string {
	return filepath.Join(Cache(), "queries.json")
}

// KeyFile resolves the plain-text API key file.
func KeyFile() string {
	if path := viper.GetString(key.APIKeyFile); path != "" {
		return path
	}
	return constant.KeyFile
}

