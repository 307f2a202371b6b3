package cache

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/apod-cli/apod/apod"
	"github.com/apod-cli/apod/constant"
	"github.com/apod-cli/apod/filesystem"
	"github.com/apod-cli/apod/where"
	. "github.com/smartystreets/goconvey/convey"
)

func write(name string, size int, age time.Duration) string {
	path := filepath.Join(where.Images(), name)
	So(filesystem.API().WriteFile(path, []byte(strings.Repeat("x", size)), 0o644), ShouldBeNil)
	mod := time.Now().Add(-age)
	So(filesystem.API().Chtimes(path, mod, mod), ShouldBeNil)
	return path
}

func exists(path string) bool {
	ok, _ := filesystem.API().Exists(path)
	return ok
}

func TestPaths(t *testing.T) {
	Convey("Given an in-memory filesystem", t, func() {
		filesystem.SetMemMapFs()

		Convey("ImagePath is named after the date", func() {
			path := ImagePath(&apod.Entry{Date: "2024-03-10", URL: "https://example.com/a.png"})
			So(filepath.Base(path), ShouldEqual, "2024-03-10.png")
			So(filepath.Dir(path), ShouldEqual, where.Images())
		})

		Convey("CachedToday probes jpg, png then gif", func() {
			_, ok := CachedToday()
			So(ok, ShouldBeFalse)

			write("today.gif", 1, 0)
			write("today.png", 1, 0)

			path, ok := CachedToday()
			So(ok, ShouldBeTrue)
			So(path, ShouldEqual, TodayPath(".png"))

			ClearToday(TodayPath(".gif"))
			path, ok = CachedToday()
			So(ok, ShouldBeTrue)
			So(path, ShouldEqual, TodayPath(".gif"))

			ClearToday("")
			_, ok = CachedToday()
			So(ok, ShouldBeFalse)
		})

		Convey("DefaultImage writes the bundled picture", func() {
			path, err := DefaultImage()
			So(err, ShouldBeNil)

			data, err := filesystem.API().ReadFile(path)
			So(err, ShouldBeNil)
			So(data, ShouldResemble, constant.DefaultImage)
		})
	})
}

func TestDownload(t *testing.T) {
	Convey("Given an image server", t, func() {
		filesystem.SetMemMapFs()
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if r.URL.Path != "/ok.jpg" {
				http.NotFound(w, r)
				return
			}
			_, _ = fmt.Fprint(w, "jpeg bytes")
		}))
		defer srv.Close()

		path := filepath.Join(where.Images(), "2024-03-10.jpg")

		Convey("Download stores the body", func() {
			So(Download(context.Background(), srv.URL+"/ok.jpg", path), ShouldBeNil)
			So(Exists(path), ShouldBeTrue)

			data, _ := filesystem.API().ReadFile(path)
			So(string(data), ShouldEqual, "jpeg bytes")
		})

		Convey("A failed download leaves nothing behind", func() {
			So(Download(context.Background(), srv.URL+"/missing.jpg", path), ShouldNotBeNil)
			So(exists(path), ShouldBeFalse)
			So(exists(path+".tmp"), ShouldBeFalse)
		})
	})
}

func TestPrune(t *testing.T) {
	Convey("Given cached pictures of different ages", t, func() {
		filesystem.SetMemMapFs()

		old := write("1999-01-01.jpg", 100, 30*24*time.Hour)
		older := write("2000-01-01.jpg", 100, 10*24*time.Hour)
		recent := write("2024-01-01.jpg", 100, time.Hour)
		fresh := write("2024-01-02.jpg", 100, time.Minute)
		def, err := DefaultImage()
		So(err, ShouldBeNil)
		So(filesystem.API().Chtimes(def, time.Unix(0, 0), time.Unix(0, 0)), ShouldBeNil)

		Convey("Expired pictures are removed", func() {
			removed, freed, err := Prune(7*24*time.Hour, 0)
			So(err, ShouldBeNil)
			So(removed, ShouldEqual, 2)
			So(freed, ShouldEqual, 200)
			So(exists(old), ShouldBeFalse)
			So(exists(older), ShouldBeFalse)
			So(exists(recent), ShouldBeTrue)
		})

		Convey("The oldest pictures go first when over the size cap", func() {
			removed, _, err := Prune(0, 150)
			So(err, ShouldBeNil)
			So(removed, ShouldEqual, 3)
			So(exists(fresh), ShouldBeTrue)
			So(exists(recent), ShouldBeFalse)
		})

		Convey("The fallback picture is kept", func() {
			_, _, err := Prune(time.Hour, 1)
			So(err, ShouldBeNil)
			So(exists(def), ShouldBeTrue)
		})

		Convey("A download in progress survives", func() {
			partial := write("today.jpg.tmp", 100, time.Second)
			removed, _, err := Prune(time.Hour, 1)
			So(err, ShouldBeNil)
			So(removed, ShouldEqual, 4)
			So(exists(partial), ShouldBeTrue)
		})

		Convey("An abandoned partial download is removed", func() {
			partial := write("2024-01-03.jpg.tmp", 100, 2*time.Hour)
			_, _, err := Prune(0, 0)
			So(err, ShouldBeNil)
			So(exists(partial), ShouldBeFalse)
			So(exists(fresh), ShouldBeTrue)
		})
	})
}

func TestCleanTransient(t *testing.T) {
	Convey("Given partial downloads of different ages", t, func() {
		filesystem.SetMemMapFs()

		abandoned := write("2024-01-03.jpg.tmp", 10, 2*time.Hour)
		running := write("today.jpg.tmp", 10, time.Second)
		picture := write("2024-01-03.jpg", 10, 2*time.Hour)

		Convey("Only abandoned ones are listed", func() {
			So(StalePartials(), ShouldResemble, []string{abandoned})
		})

		Convey("CleanTransient removes them and nothing else", func() {
			So(CleanTransient(), ShouldBeNil)
			So(exists(abandoned), ShouldBeFalse)
			So(exists(running), ShouldBeTrue)
			So(exists(picture), ShouldBeTrue)
		})
	})
}

func TestDownloadDuringPrune(t *testing.T) {
	Convey("Given a download held mid-body", t, func() {
		filesystem.SetMemMapFs()
		started := make(chan struct{})
		release := make(chan struct{})
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			_, _ = fmt.Fprint(w, "jpeg ")
			w.(http.Flusher).Flush()
			close(started)
			<-release
			_, _ = fmt.Fprint(w, "bytes")
		}))
		defer srv.Close()
		defer func() {
			select {
			case <-release:
			default:
				close(release)
			}
		}()

		path := TodayPath(".jpg")
		done := make(chan error, 1)
		go func() { done <- Download(context.Background(), srv.URL+"/today.jpg", path) }()

		<-started
		deadline := time.Now().Add(5 * time.Second)
		for !exists(path+partialExt) && time.Now().Before(deadline) {
			time.Sleep(time.Millisecond)
		}
		So(exists(path+partialExt), ShouldBeTrue)

		Convey("Prune leaves it to finish", func() {
			_, _, err := Prune(168*time.Hour, 200<<20)
			So(err, ShouldBeNil)

			close(release)
			So(<-done, ShouldBeNil)

			data, err := filesystem.API().ReadFile(path)
			So(err, ShouldBeNil)
			So(string(data), ShouldEqual, "jpeg bytes")
		})
	})
}
