package where

import (
	"path/filepath"
	"testing"

	"github.com/apod-cli/apod/constant"
	"github.com/apod-cli/apod/filesystem"
	"github.com/apod-cli/apod/key"
	"github.com/samber/lo"
	. "github.com/smartystreets/goconvey/convey"
	"github.com/spf13/viper"
)

func init() {
	// Use in-memory filesystem for tests to avoid creating real directories
	filesystem.SetMemMapFs()
}

func TestPaths(t *testing.T) {
	Convey("Path functions", t, func() {
		Convey("Config()", func() {
			path := Config()
			So(path, ShouldNotBeEmpty)
			So(lo.Must(filesystem.API().IsDir(path)), ShouldBeTrue)
		})

		Convey("Cache()", func() {
			path := Cache()
			So(path, ShouldNotBeEmpty)
			So(lo.Must(filesystem.API().IsDir(path)), ShouldBeTrue)
		})

		Convey("Images() lives inside the cache", func() {
			path := Images()
			So(lo.Must(filesystem.API().IsDir(path)), ShouldBeTrue)
			So(filepath.Dir(path), ShouldEqual, Cache())
		})

		Convey("Logs()", func() {
			path := Logs()
			So(path, ShouldNotBeEmpty)
			So(lo.Must(filesystem.API().IsDir(path)), ShouldBeTrue)
		})

		Convey("Record caches are json files in the cache", func() {
			for _, p := range []string{Today(), Archive(), Index(), Queries()} {
				So(filepath.Dir(p), ShouldEqual, Cache())
				So(filepath.Ext(p), ShouldEqual, ".json")
			}
		})

		Convey("KeyFile()", func() {
			viper.Set(key.APIKeyFile, "")
			So(KeyFile(), ShouldEqual, constant.KeyFile)

			viper.Set(key.APIKeyFile, "/tmp/key")
			So(KeyFile(), ShouldEqual, "/tmp/key")
			viper.Set(key.APIKeyFile, "")
		})
	})
}
