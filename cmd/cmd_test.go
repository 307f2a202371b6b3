package cmd

import (
	"errors"
	"fmt"
	"io"
	"testing"
	"time"

	"github.com/apod-cli/apod/auth"
	"github.com/apod-cli/apod/filesystem"
	"github.com/apod-cli/apod/key"
	"github.com/apod-cli/apod/where"
	. "github.com/smartystreets/goconvey/convey"
)

func init() {
	filesystem.SetMemMapFs()
}

func TestParseDay(t *testing.T) {
	Convey("Given a fixed now", t, func() {
		now := time.Date(2024, 3, 10, 15, 0, 0, 0, time.UTC)

		Convey("Dates are parsed", func() {
			day, err := parseDay("2004-12-25", now)
			So(err, ShouldBeNil)
			So(day.Format("2006-01-02"), ShouldEqual, "2004-12-25")
		})

		Convey("Relative words are accepted", func() {
			day, err := parseDay("Yesterday", now)
			So(err, ShouldBeNil)
			So(day.Format("2006-01-02"), ShouldEqual, "2024-03-09")

			day, err = parseDay("today", now)
			So(err, ShouldBeNil)
			So(day, ShouldEqual, now)
		})

		Convey("Anything else is rejected", func() {
			_, err := parseDay("25/12/2004", now)
			So(err, ShouldNotBeNil)
		})
	})
}

func TestMaskKey(t *testing.T) {
	Convey("Keys are masked but recognizable", t, func() {
		So(maskKey("abcdefghijABCDEFGHIJ0123456789abcdefghij"), ShouldEqual, "abcd********************************ghij")
		So(maskKey("short"), ShouldEqual, "*****")
	})
}

func TestParseConfigValue(t *testing.T) {
	Convey("Given config values from the command line", t, func() {
		Convey("Values take the type of their default", func() {
			v, err := parseConfigValue(key.ArchiveCount, []string{"100"})
			So(err, ShouldBeNil)
			So(v, ShouldEqual, 100)

			v, err = parseConfigValue(key.ImagesPreferHD, []string{"false"})
			So(err, ShouldBeNil)
			So(v, ShouldEqual, false)
		})

		Convey("Malformed values are rejected", func() {
			_, err := parseConfigValue(key.ImagesPreferHD, []string{"maybe"})
			So(err, ShouldNotBeNil)
		})

		Convey("Validators apply", func() {
			_, err := parseConfigValue(key.ArchiveCount, []string{"75"})
			So(err, ShouldNotBeNil)

			_, err = parseConfigValue(key.ArchiveSort, []string{"random"})
			So(err, ShouldNotBeNil)

			_, err = parseConfigValue(key.APIKey, []string{"DEMO_KEY"})
			So(err, ShouldEqual, auth.ErrInvalidKey)

			_, err = parseConfigValue(key.ArchiveSort, []string{"ascending"})
			So(err, ShouldBeNil)
		})

		Convey("Unknown keys suggest the closest one", func() {
			_, err := parseConfigValue("archive.cont", []string{"50"})
			So(err, ShouldNotBeNil)
			So(err.Error(), ShouldContainSubstring, key.ArchiveCount)
		})

		Convey("A value is required", func() {
			_, err := parseConfigValue(key.ArchiveSort, nil)
			So(err, ShouldNotBeNil)
		})
	})
}

func TestEnvNames(t *testing.T) {
	Convey("Environment variables are prefixed and sorted", t, func() {
		names := envNames()
		So(names, ShouldContain, "APOD_API_KEY")
		So(names, ShouldContain, "APOD_ARCHIVE_BASE_URL")
		So(names, ShouldContain, where.EnvConfigPath)
		for i := 1; i < len(names); i++ {
			So(names[i-1] <= names[i], ShouldBeTrue)
		}
	})
}

func TestWithOutput(t *testing.T) {
	Convey("Given an output file", t, func() {
		filesystem.SetMemMapFs()
		path := "/out/list.txt"
		So(filesystem.API().MkdirAll("/out", 0o755), ShouldBeNil)

		var used io.Writer

		Convey("The output is written and the file closed", func() {
			err := withOutput(path, func(w io.Writer) error {
				used = w
				_, err := fmt.Fprint(w, "2024-03-10 Eclipse")
				return err
			})
			So(err, ShouldBeNil)

			data, err := filesystem.API().ReadFile(path)
			So(err, ShouldBeNil)
			So(string(data), ShouldEqual, "2024-03-10 Eclipse")

			_, err = fmt.Fprint(used, "more")
			So(err, ShouldNotBeNil)
		})

		Convey("The file is closed when listing fails", func() {
			failure := errors.New("archive unavailable")
			err := withOutput(path, func(w io.Writer) error {
				used = w
				_, _ = fmt.Fprint(w, "partial")
				return failure
			})
			So(errors.Is(err, failure), ShouldBeTrue)

			_, err = fmt.Fprint(used, "more")
			So(err, ShouldNotBeNil)

			data, _ := filesystem.API().ReadFile(path)
			So(string(data), ShouldEqual, "partial")
		})
	})
}
