// Package config registers every setting with its default and loads them through viper
// from <config>/apod.toml and APOD_* environment variables.
package config

import (
	"errors"
	"path/filepath"
	"strings"

	"github.com/apod-cli/apod/constant"
	"github.com/apod-cli/apod/filesystem"
	"github.com/apod-cli/apod/where"
	"github.com/spf13/viper"
)

// EnvKeyReplacer maps config keys to environment variable suffixes: api.key becomes API_KEY.
var EnvKeyReplacer = strings.NewReplacer(".", "_")

// Path returns the location of the config file, whether or not it exists.
func Path() string {
	return filepath.Join(where.Config(), constant.App+".toml")
}

// Setup registers defaults and environment bindings, then reads the config file if there is one.
func Setup() error {
	viper.SetConfigName(constant.App)
	viper.SetConfigType("toml")
	viper.SetFs(filesystem.API())
	viper.AddConfigPath(where.Config())

	viper.SetEnvPrefix(constant.App)
	viper.SetEnvKeyReplacer(EnvKeyReplacer)
	for _, env := range EnvExposed {
		viper.MustBindEnv(env)
	}

	viper.SetTypeByDefaultValue(true)
	for name, field := range Default {
		viper.SetDefault(name, field.Value)
	}

	var notFound viper.ConfigFileNotFoundError
	if err := viper.ReadInConfig(); err != nil && !errors.As(err, &notFound) {
		return err
	}

	return nil
}
