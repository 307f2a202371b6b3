package archive

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/apod-cli/apod/apod"
	"github.com/apod-cli/apod/filesystem"
	. "github.com/smartystreets/goconvey/convey"
)

func init() {
	filesystem.SetMemMapFs()
}

const indexPage = `<html><body><b>
2024 March 10:  <a href="ap240310.html">Total Eclipse over   Mexico</a><br>
2024 March 09:  <a href="ap240309.html">Orion in Infrared</a><br>
1995 June 16:  <a href="ap950616.html">Neutron Star Earth</a><br>
<a href="calendar/allyears.html">Calendar</a>
</b></body></html>`

const imagePage = `<html><head><title>APOD: 2024 March 10 - Total Eclipse</title></head><body>
<center>
<h1> Astronomy Picture of the Day </h1>
<p>
2024 March 10
<br>
<a href="image/2403/eclipse_big.jpg">
<img src="image/2403/eclipse_small.jpg" alt="eclipse">
</a>
</center>
<center>
<b> Total Eclipse over Mexico </b> <br>
<b>Image Credit &amp; Copyright:</b> <a href="https://example.com">Jane Doe</a>
</center>
<p> <b> Explanation: </b> The Moon covered the <a href="sun.html">Sun</a>
over northern Mexico.
Tomorrow's picture: more eclipse
<p> <center> footer </center>
</body></html>`

const videoPage = `<html><head><title>APOD: Orion</title></head><body>
<center>
2024 March 9<br>
<iframe width="960" height="540" src="https://www.youtube.com/embed/abc_DEF-12?rel=0"></iframe>
</center>
<center><b>Orion in Infrared</b><br>Video Credit: NASA</center>
<p><b> Explanation: </b> What's that in the <a href="sky.html">sky</a>? A flight through <i>Orion</i>.</p>
</body></html>`

func newServer() *httptest.Server {
	return httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/apod/archivepix.html":
			_, _ = fmt.Fprint(w, indexPage)
		case "/apod/ap240310.html", "/apod/astropix.html":
			_, _ = fmt.Fprint(w, imagePage)
		case "/apod/ap240309.html":
			_, _ = fmt.Fprint(w, videoPage)
		default:
			http.NotFound(w, r)
		}
	}))
}

func TestDateFromPage(t *testing.T) {
	Convey("Given archive page names", t, func() {
		Convey("Years from 95 belong to the 1900s", func() {
			day, ok := DateFromPage("ap950616.html")
			So(ok, ShouldBeTrue)
			So(day.Year(), ShouldEqual, 1995)
		})

		Convey("Other years belong to the 2000s", func() {
			day, ok := DateFromPage("ap240310.html")
			So(ok, ShouldBeTrue)
			So(day, ShouldEqual, time.Date(2024, 3, 10, 0, 0, 0, 0, time.UTC))
		})

		Convey("Impossible dates are rejected", func() {
			_, ok := DateFromPage("ap240231.html")
			So(ok, ShouldBeFalse)
		})

		Convey("Unrelated links are rejected", func() {
			_, ok := DateFromPage("calendar/allyears.html")
			So(ok, ShouldBeFalse)
		})

		Convey("PageName is the inverse", func() {
			So(PageName(time.Date(1999, 12, 31, 0, 0, 0, 0, time.UTC)), ShouldEqual, "ap991231.html")
		})
	})
}

func TestScraper(t *testing.T) {
	Convey("Given a scraper over a local archive", t, func() {
		srv := newServer()
		defer srv.Close()

		scraper, err := New(srv.URL+"/apod", srv.Client())
		So(err, ShouldBeNil)

		ctx := context.Background()

		Convey("Index lists dated pages only", func() {
			links, err := scraper.Index(ctx)
			So(err, ShouldBeNil)
			So(links, ShouldHaveLength, 3)
			So(links[0].Date, ShouldEqual, "2024-03-10")
			So(links[0].Title, ShouldEqual, "Total Eclipse over Mexico")
			So(links[2].Date, ShouldEqual, "1995-06-16")
		})

		Convey("Day parses an image page", func() {
			entry, err := scraper.Day(ctx, time.Date(2024, 3, 10, 0, 0, 0, 0, time.UTC))
			So(err, ShouldBeNil)
			So(entry.Date, ShouldEqual, "2024-03-10")
			So(entry.Kind(), ShouldEqual, apod.KindImage)
			So(entry.Title, ShouldEqual, "Total Eclipse over Mexico")
			So(entry.URL, ShouldEqual, srv.URL+"/apod/image/2403/eclipse_small.jpg")
			So(entry.HDURL, ShouldEqual, srv.URL+"/apod/image/2403/eclipse_big.jpg")
			So(entry.Copyright, ShouldEqual, "Jane Doe")
			So(entry.Explanation, ShouldEqual, "The Moon covered the Sun over northern Mexico.")
		})

		Convey("Day parses a video page", func() {
			entry, err := scraper.Day(ctx, time.Date(2024, 3, 9, 0, 0, 0, 0, time.UTC))
			So(err, ShouldBeNil)
			So(entry.Kind(), ShouldEqual, apod.KindVideo)
			id, ok := entry.YouTubeID()
			So(ok, ShouldBeTrue)
			So(id, ShouldEqual, "abc_DEF-12")
			So(entry.Explanation, ShouldEqual, "What's that in the sky? A flight through Orion.")
		})

		Convey("Today reads the date from the page", func() {
			entry, err := scraper.Today(ctx)
			So(err, ShouldBeNil)
			So(entry.Date, ShouldEqual, "2024-03-10")
		})

		Convey("Missing pages report the status", func() {
			_, err := scraper.Day(ctx, time.Date(2001, 1, 1, 0, 0, 0, 0, time.UTC))
			So(err, ShouldNotBeNil)
		})

		Convey("CachedIndex serves later calls from the cache", func() {
			links, err := scraper.CachedIndex(ctx)
			So(err, ShouldBeNil)
			So(links, ShouldHaveLength, 3)

			srv.Close()
			links, err = scraper.CachedIndex(ctx)
			So(err, ShouldBeNil)
			So(links, ShouldHaveLength, 3)
		})
	})
}
