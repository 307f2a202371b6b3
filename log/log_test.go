package log

import (
	"path/filepath"
	"testing"
	"time"

	"github.com/apod-cli/apod/filesystem"
	"github.com/apod-cli/apod/key"
	"github.com/apod-cli/apod/where"
	. "github.com/smartystreets/goconvey/convey"
	"github.com/spf13/viper"
)

func TestSetup(t *testing.T) {
	Convey("Given an in-memory filesystem", t, func() {
		filesystem.SetMemMapFs()
		defer viper.Set(key.LogsWrite, false)

		Convey("Nothing is written when logging is disabled", func() {
			viper.Set(key.LogsWrite, false)
			So(Setup(), ShouldBeNil)
			infos, _ := filesystem.API().ReadDir(where.Logs())
			So(infos, ShouldBeEmpty)
		})

		Convey("When logging is enabled", func() {
			viper.Set(key.LogsWrite, true)
			viper.Set(key.LogsLevel, "info")

			old := filepath.Join(where.Logs(), "2001-01-01.log")
			So(filesystem.API().WriteFile(old, []byte("old"), 0o644), ShouldBeNil)

			So(Setup(), ShouldBeNil)
			Info("hello")

			Convey("Today's file receives the entry", func() {
				today := filepath.Join(where.Logs(), time.Now().Format("2006-01-02")+".log")
				data, err := filesystem.API().ReadFile(today)
				So(err, ShouldBeNil)
				So(string(data), ShouldContainSubstring, "hello")
			})

			Convey("Old files are removed", func() {
				exists, _ := filesystem.API().Exists(old)
				So(exists, ShouldBeFalse)
			})
		})
	})
}
