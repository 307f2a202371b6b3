package util

import (
	"regexp"
	"testing"

	"github.com/apod-cli/apod/filesystem"

	. "github.com/smartystreets/goconvey/convey"
)

func TestSanitizeFilename(t *testing.T) {
	Convey("SanitizeFilename", t, func() {
		Convey("Should replace invalid chars", func() {
			So(SanitizeFilename("file:name?.txt"), ShouldEqual, "file_name_.txt")
		})
		Convey("Should collapse underscores", func() {
			So(SanitizeFilename("file__name.txt"), ShouldEqual, "file_name.txt")
		})
		Convey("Should trim separators", func() {
			So(SanitizeFilename("-file-name-"), ShouldEqual, "file-name")
		})
	})
}

func TestQuantify(t *testing.T) {
	Convey("Quantify", t, func() {
		So(Quantify(1, "file", "files"), ShouldEqual, "1 file")
		So(Quantify(2, "file", "files"), ShouldEqual, "2 files")
	})
}

func TestCapitalize(t *testing.T) {
	Convey("Capitalize", t, func() {
		So(Capitalize("hello"), ShouldEqual, "Hello")
		So(Capitalize(""), ShouldEqual, "")
	})
}

func TestReGroups(t *testing.T) {
	Convey("ReGroups", t, func() {
		re := regexp.MustCompile(`(?P<first>\w+)\s(?P<last>\w+)`)
		groups := ReGroups(re, "John Doe")
		So(groups["first"], ShouldEqual, "John")
		So(groups["last"], ShouldEqual, "Doe")
	})
}

func TestMin(t *testing.T) {
	Convey("Min", t, func() {
		So(Min(3, 5, 2), ShouldEqual, 2)
		So(Min[int](), ShouldEqual, 0)
	})
}

func TestStack(t *testing.T) {
	Convey("Stack", t, func() {
		var s Stack[int]
		s.Push(1)
		s.Push(2)
		So(s.Len(), ShouldEqual, 2)

		item, ok := s.Pop()
		So(ok, ShouldBeTrue)
		So(item, ShouldEqual, 2)

		item, ok = s.Pop()
		So(ok, ShouldBeTrue)
		So(item, ShouldEqual, 1)

		item, ok = s.Pop()
		So(ok, ShouldBeFalse)
		So(item, ShouldEqual, 0)
		So(s.Len(), ShouldEqual, 0)
	})
}

func TestBytes(t *testing.T) {
	Convey("Bytes", t, func() {
		So(Bytes(512), ShouldEqual, "512 B")
		So(Bytes(2048), ShouldEqual, "2.0 KiB")
		So(Bytes(5*1024*1024), ShouldEqual, "5.0 MiB")
	})
}

func TestDelete(t *testing.T) {
	Convey("Given files on an in-memory filesystem", t, func() {
		filesystem.SetMemMapFs()
		fs := filesystem.API()
		So(fs.WriteFile("/d/a.txt", []byte("a"), 0o644), ShouldBeNil)
		So(fs.WriteFile("/d/sub/b.txt", []byte("b"), 0o644), ShouldBeNil)

		Convey("Delete removes a single file", func() {
			So(Delete("/d/a.txt"), ShouldBeNil)
			exists, _ := fs.Exists("/d/a.txt")
			So(exists, ShouldBeFalse)
		})

		Convey("Delete removes directories recursively", func() {
			So(Delete("/d"), ShouldBeNil)
			exists, _ := fs.Exists("/d/sub/b.txt")
			So(exists, ShouldBeFalse)
		})

		Convey("Delete reports missing paths", func() {
			So(Delete("/nope"), ShouldNotBeNil)
		})
	})
}
