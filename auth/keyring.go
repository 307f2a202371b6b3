// Package auth resolves and persists the NASA API key.
//
// Keys are looked up in the configuration, then the system keyring, then a plain-text key file.
package auth

import (
	"errors"
	"fmt"
	"os"
	"regexp"
	"strings"

	"github.com/apod-cli/apod/constant"
	"github.com/apod-cli/apod/filesystem"
	"github.com/apod-cli/apod/key"
	"github.com/apod-cli/apod/log"
	"github.com/apod-cli/apod/where"
	"github.com/spf13/viper"
	"github.com/zalando/go-keyring"
)

const (
	service = constant.App + "-cli"
	user    = "nasa-api-key"
)

// ErrNoKey is returned when no valid key could be found.
var ErrNoKey = errors.New("no valid NASA API key found")

// ErrInvalidKey is returned when a key does not look like a NASA API key.
var ErrInvalidKey = errors.New("API key must be 40 letters or digits")

var keyPattern = regexp.MustCompile(`^[A-Za-z0-9]{40}$`)

// Source names where a key was found.
type Source string

const (
	SourceConfig  Source = "config"
	SourceKeyring Source = "keyring"
	SourceFile    Source = "file"
)

// Valid reports whether key is a usable API key. The public demo key is rejected.
func Valid(key string) bool {
	return key != constant.DemoKey && keyPattern.MatchString(key)
}

// Resolve returns the first valid key and where it came from.
func Resolve() (string, Source, error) {
	if k := strings.TrimSpace(viper.GetString(key.APIKey)); k != "" {
		if Valid(k) {
			return k, SourceConfig, nil
		}
		log.Warnf("ignoring invalid key from %s", key.APIKey)
	}

	if k, err := keyring.Get(service, user); err == nil {
		if Valid(k) {
			return k, SourceKeyring, nil
		}
		log.Warn("ignoring invalid key from keyring")
	} else if !errors.Is(err, keyring.ErrNotFound) {
		log.Warn(err)
	}

	if k, err := LoadFile(where.KeyFile()); err == nil {
		return k, SourceFile, nil
	} else if !errors.Is(err, os.ErrNotExist) {
		log.Warn(err)
	}

	return "", "", ErrNoKey
}

// Save validates key and stores it in the keyring.
// When the keyring is unavailable the key file is written instead, readable by the owner only.
func Save(k string) (Source, error) {
	k = strings.TrimSpace(k)
	if !Valid(k) {
		return "", ErrInvalidKey
	}

	err := keyring.Set(service, user, k)
	if err == nil {
		return SourceKeyring, nil
	}
	log.Warnf("keyring unavailable, writing key file: %s", err)

	if _, err := filesystem.WriteAtomic(where.KeyFile(), strings.NewReader(k+"\n"), 0o600); err != nil {
		return "", fmt.Errorf("write key file: %w", err)
	}
	return SourceFile, nil
}

// Delete removes the key from the keyring. A missing entry is not an error.
func Delete() error {
	err := keyring.Delete(service, user)
	if errors.Is(err, keyring.ErrNotFound) {
		return nil
	}
	return err
}

// LoadFile reads a key file and validates its trimmed content.
func LoadFile(path string) (string, error) {
	data, err := filesystem.API().ReadFile(path)
	if err != nil {
		return "", err
	}

	k := strings.TrimSpace(string(data))
	if !Valid(k) {
		return "", fmt.Errorf("%s: %w", path, ErrInvalidKey)
	}
	return k, nil
}
