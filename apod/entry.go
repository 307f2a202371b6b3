// Package apod models Astronomy Picture of the Day records and talks to NASA's JSON API.
package apod

import (
	"path"
	"regexp"
	"strings"
	"time"

	"github.com/apod-cli/apod/constant"
)

// Media kinds. NASA only sends image, video and other; gif is derived from the URL.
const (
	KindImage = "image"
	KindVideo = "video"
	KindGIF   = "gif"
	KindOther = "other"
)

// Entry is a single APOD record as returned by the API.
type Entry struct {
	Date           string `json:"date" jsonschema:"description=Publication date (YYYY-MM-DD)"`
	Title          string `json:"title"`
	Explanation    string `json:"explanation"`
	MediaType      string `json:"media_type" jsonschema:"enum=image,enum=video,enum=other"`
	URL            string `json:"url"`
	HDURL          string `json:"hdurl,omitempty"`
	Copyright      string `json:"copyright,omitempty"`
	ThumbnailURL   string `json:"thumbnail_url,omitempty"`
	ServiceVersion string `json:"service_version,omitempty"`
}

// Kind returns the display kind of the entry. URLs ending in .gif are reported as gif.
func (e *Entry) Kind() string {
	if strings.HasSuffix(strings.ToLower(e.URL), ".gif") {
		return KindGIF
	}
	if e.MediaType == "" {
		return KindImage
	}
	return e.MediaType
}

// IsPicture reports whether the entry can be downloaded as a still or animated image.
func (e *Entry) IsPicture() bool {
	k := e.Kind()
	return k == KindImage || k == KindGIF
}

// ImageURL returns the URL to download. The HD variant is used when preferred and present.
// Videos yield their thumbnail, if any.
func (e *Entry) ImageURL(preferHD bool) string {
	if !e.IsPicture() {
		return e.ThumbnailURL
	}
	if preferHD && e.HDURL != "" {
		return e.HDURL
	}
	if e.URL != "" {
		return e.URL
	}
	return e.HDURL
}

// Ext returns the file extension of the image URL, defaulting to .jpg.
func (e *Entry) Ext(preferHD bool) string {
	u := e.ImageURL(preferHD)
	if i := strings.IndexAny(u, "?#"); i >= 0 {
		u = u[:i]
	}
	ext := strings.ToLower(path.Ext(u))
	switch ext {
	case ".jpg", ".jpeg", ".png", ".gif", ".webp":
		return ext
	default:
		return ".jpg"
	}
}

// Time parses the entry date. The zero time is returned for malformed dates.
func (e *Entry) Time() time.Time {
	t, err := time.Parse(constant.DateLayout, e.Date)
	if err != nil {
		return time.Time{}
	}
	return t
}

// DisplayTitle returns the title or a placeholder.
func (e *Entry) DisplayTitle() string {
	if t := strings.TrimSpace(e.Title); t != "" {
		return t
	}
	return "Untitled"
}

// DisplayDate returns the date or a placeholder.
func (e *Entry) DisplayDate() string {
	if e.Date == "" {
		return "N/A"
	}
	return e.Date
}

var youtubeID = regexp.MustCompile(`(?:v=|youtu\.be/|embed/)([\w-]+)`)

// YouTubeID extracts the video identifier from a YouTube watch, short or embed URL.
func (e *Entry) YouTubeID() (string, bool) {
	m := youtubeID.FindStringSubmatch(e.URL)
	if m == nil {
		return "", false
	}
	return m[1], true
}

// WatchURL returns a URL suitable for a browser. YouTube embeds are turned into watch links.
func (e *Entry) WatchURL() string {
	if id, ok := e.YouTubeID(); ok && strings.Contains(e.URL, "youtu") {
		return "https://www.youtube.com/watch?v=" + id
	}
	return e.URL
}
