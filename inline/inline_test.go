package inline

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/apod-cli/apod/apod"
	"github.com/apod-cli/apod/library"
	"github.com/samber/mo"
	. "github.com/smartystreets/goconvey/convey"
)

type fakeSource struct {
	entries []*apod.Entry
	err     error
}

func (f *fakeSource) Archive(context.Context) ([]*apod.Entry, error) {
	return f.entries, f.err
}

func (f *fakeSource) Search(entries []*apod.Entry, term string) []*apod.Entry {
	return apod.Search(entries, term)
}

func sample() []*apod.Entry {
	return []*apod.Entry{
		{Date: "2024-03-10", Title: "Total Eclipse", MediaType: apod.KindImage, URL: "https://example.com/e.jpg"},
		{Date: "1999-01-01", Title: "Orion Nebula", MediaType: apod.KindImage, URL: "https://example.com/o.gif"},
		{Date: "2010-05-05", Title: "Eclipse Timelapse", MediaType: apod.KindVideo, URL: "https://www.youtube.com/embed/abc123"},
	}
}

func TestRun(t *testing.T) {
	Convey("Given an archive", t, func() {
		var buf bytes.Buffer
		src := &fakeSource{entries: sample()}
		ctx := context.Background()

		Convey("Text mode prints one line per entry", func() {
			So(Run(ctx, src, &Options{Out: &buf}), ShouldBeNil)

			lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
			So(lines, ShouldHaveLength, 3)
			So(lines[1], ShouldEqual, "1999-01-01  gif  Orion Nebula  https://example.com/o.gif")
			So(lines[2], ShouldEndWith, "https://www.youtube.com/watch?v=abc123")
		})

		Convey("Search, sort and count are applied in order", func() {
			So(Run(ctx, src, &Options{
				Out:    &buf,
				Search: "eclipse",
				Sort:   mo.Some(apod.SortAscending),
				Count:  1,
			}), ShouldBeNil)
			So(strings.TrimSpace(buf.String()), ShouldStartWith, "2010-05-05")
		})

		Convey("JSON mode wraps the result", func() {
			So(Run(ctx, src, &Options{Out: &buf, Json: true, Search: "orion"}), ShouldBeNil)

			var output Output
			So(json.Unmarshal(buf.Bytes(), &output), ShouldBeNil)
			So(output.Search, ShouldEqual, "orion")
			So(output.Result, ShouldHaveLength, 1)
		})

		Convey("JSON mode writes an empty list when nothing matches", func() {
			So(Run(ctx, src, &Options{Out: &buf, Json: true, Search: "quasar"}), ShouldBeNil)
			So(buf.String(), ShouldContainSubstring, `"result": []`)
		})

		Convey("Pickers select one entry", func() {
			picker, err := ParsePicker("date:1999-01-01")
			So(err, ShouldBeNil)
			So(Run(ctx, src, &Options{Out: &buf, Picker: mo.Some(picker)}), ShouldBeNil)
			So(buf.String(), ShouldStartWith, "1999-01-01")
		})

		Convey("Stale lists are still printed", func() {
			src.err = &library.StaleError{Err: errors.New("offline"), FetchedAt: time.Now()}
			So(Run(ctx, src, &Options{Out: &buf}), ShouldBeNil)
			So(buf.String(), ShouldNotBeEmpty)
		})

		Convey("Other errors are returned", func() {
			src.entries, src.err = nil, errors.New("offline")
			So(Run(ctx, src, &Options{Out: &buf}), ShouldNotBeNil)
		})
	})
}

func TestParsePicker(t *testing.T) {
	Convey("Given picker descriptions", t, func() {
		entries := sample()

		for description, want := range map[string]string{
			"first":    "2024-03-10",
			"last":     "2010-05-05",
			"index:1":  "1999-01-01",
			"1":        "1999-01-01",
			"index:99": "2010-05-05",
		} {
			picker, err := ParsePicker(description)
			So(err, ShouldBeNil)
			So(picker(entries).Date, ShouldEqual, want)
		}

		Convey("Unknown dates pick nothing", func() {
			picker, err := ParsePicker("date:2000-01-01")
			So(err, ShouldBeNil)
			So(picker(entries), ShouldBeNil)
		})

		Convey("Empty lists pick nothing", func() {
			picker, _ := ParsePicker("first")
			So(picker(nil), ShouldBeNil)
		})

		Convey("Invalid descriptions are rejected", func() {
			for _, description := range []string{"middle", "index:x", "date:yesterday"} {
				_, err := ParsePicker(description)
				So(err, ShouldNotBeNil)
			}
		})
	})
}

func TestSchema(t *testing.T) {
	Convey("The schema describes the output", t, func() {
		data, err := json.Marshal(Schema())
		So(err, ShouldBeNil)
		So(string(data), ShouldContainSubstring, "media_type")
		So(string(data), ShouldContainSubstring, "search")
	})
}
