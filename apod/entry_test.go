package apod

import (
	"testing"

	. "github.com/smartystreets/goconvey/convey"
)

func TestEntryKind(t *testing.T) {
	Convey("Given entries of different media types", t, func() {
		Convey("A gif url is reported as gif regardless of media type", func() {
			e := &Entry{MediaType: KindImage, URL: "https://apod.nasa.gov/apod/image/2401/Comet.GIF"}
			So(e.Kind(), ShouldEqual, KindGIF)
			So(e.IsPicture(), ShouldBeTrue)
		})

		Convey("Missing media type defaults to image", func() {
			e := &Entry{URL: "https://example.com/a.jpg"}
			So(e.Kind(), ShouldEqual, KindImage)
		})

		Convey("Videos are not pictures", func() {
			e := &Entry{MediaType: KindVideo, URL: "https://www.youtube.com/embed/abc_DEF-1?rel=0"}
			So(e.Kind(), ShouldEqual, KindVideo)
			So(e.IsPicture(), ShouldBeFalse)
		})
	})
}

func TestEntryImageURL(t *testing.T) {
	Convey("Given an image with both resolutions", t, func() {
		e := &Entry{MediaType: KindImage, URL: "https://x/low.jpg", HDURL: "https://x/high.png"}

		Convey("HD is preferred when asked", func() {
			So(e.ImageURL(true), ShouldEqual, "https://x/high.png")
			So(e.Ext(true), ShouldEqual, ".png")
		})

		Convey("Low resolution otherwise", func() {
			So(e.ImageURL(false), ShouldEqual, "https://x/low.jpg")
			So(e.Ext(false), ShouldEqual, ".jpg")
		})
	})

	Convey("Given an image with only an HD url", t, func() {
		e := &Entry{MediaType: KindImage, HDURL: "https://x/high.jpg"}
		So(e.ImageURL(false), ShouldEqual, "https://x/high.jpg")
	})

	Convey("Given a video with a thumbnail", t, func() {
		e := &Entry{MediaType: KindVideo, URL: "https://youtu.be/xyz", ThumbnailURL: "https://img.youtube.com/vi/xyz/0.jpg"}
		So(e.ImageURL(true), ShouldEqual, e.ThumbnailURL)
	})

	Convey("Unknown or missing extensions default to .jpg", t, func() {
		So((&Entry{URL: "https://x/image?id=3"}).Ext(false), ShouldEqual, ".jpg")
		So((&Entry{URL: "https://x/a.tiff"}).Ext(false), ShouldEqual, ".jpg")
		So((&Entry{URL: "https://x/a.jpeg?size=1"}).Ext(false), ShouldEqual, ".jpeg")
	})
}

func TestEntryDisplay(t *testing.T) {
	Convey("Placeholders are used for missing values", t, func() {
		e := &Entry{}
		So(e.DisplayTitle(), ShouldEqual, "Untitled")
		So(e.DisplayDate(), ShouldEqual, "N/A")
		So(e.Time().IsZero(), ShouldBeTrue)
	})

	Convey("Dates are parsed", t, func() {
		e := &Entry{Date: "2024-01-02"}
		So(e.Time().Year(), ShouldEqual, 2024)
		So(e.Time().Day(), ShouldEqual, 2)
	})
}

func TestYouTubeID(t *testing.T) {
	Convey("YouTubeID", t, func() {
		cases := map[string]string{
			"https://www.youtube.com/embed/dQw4w9WgXcQ?rel=0": "dQw4w9WgXcQ",
			"https://www.youtube.com/watch?v=a-b_c":           "a-b_c",
			"https://youtu.be/XYZ123":                         "XYZ123",
		}
		for url, id := range cases {
			got, ok := (&Entry{URL: url}).YouTubeID()
			So(ok, ShouldBeTrue)
			So(got, ShouldEqual, id)
		}

		_, ok := (&Entry{URL: "https://vimeo.com/12345"}).YouTubeID()
		So(ok, ShouldBeFalse)
	})

	Convey("WatchURL turns embeds into watch links", t, func() {
		So((&Entry{URL: "https://www.youtube.com/embed/abc?rel=0"}).WatchURL(), ShouldEqual, "https://www.youtube.com/watch?v=abc")
		So((&Entry{URL: "https://vimeo.com/12345"}).WatchURL(), ShouldEqual, "https://vimeo.com/12345")
	})
}
