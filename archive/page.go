package archive

import (
	"context"
	"net/url"
	"regexp"
	"strings"
	"time"

	"github.com/PuerkitoBio/goquery"
	"github.com/apod-cli/apod/apod"
	"github.com/apod-cli/apod/constant"
	"golang.org/x/net/html"
)

// Today scrapes the current picture from astropix.html.
func (s *Scraper) Today(ctx context.Context) (*apod.Entry, error) {
	doc, u, err := s.document(ctx, "astropix.html")
	if err != nil {
		return nil, err
	}

	entry := parsePage(doc, u)
	if entry.Date == "" {
		entry.Date = time.Now().Format(constant.DateLayout)
	}
	return entry, nil
}

// Day scrapes the picture published on day.
func (s *Scraper) Day(ctx context.Context, day time.Time) (*apod.Entry, error) {
	doc, u, err := s.document(ctx, PageName(day))
	if err != nil {
		return nil, err
	}

	entry := parsePage(doc, u)
	entry.Date = day.Format(constant.DateLayout)
	return entry, nil
}

var (
	whitespace  = regexp.MustCompile(`\s+`)
	datePattern = regexp.MustCompile(`(\d{4})\s+([A-Z][a-z]+)\s+(\d{1,2})`)
	creditLabel = regexp.MustCompile(`(?i)(?:credit|copyright)[^:]*:\s*`)
)

func collapse(s string) string {
	return strings.TrimSpace(whitespace.ReplaceAllString(s, " "))
}

// parsePage extracts a record from a day page. The markup has been stable since 1995:
// the first center holds the date and media, the second the title and credits,
// and the explanation follows a bold "Explanation:" label.
func parsePage(doc *goquery.Document, page *url.URL) *apod.Entry {
	entry := &apod.Entry{MediaType: apod.KindOther}

	resolve := func(ref string) string {
		ref = strings.TrimSpace(ref)
		if ref == "" {
			return ""
		}
		r, err := url.Parse(ref)
		if err != nil {
			return ref
		}
		return page.ResolveReference(r).String()
	}

	centers := doc.Find("center")
	media := centers.First()

	if m := datePattern.FindStringSubmatch(media.Text()); m != nil {
		if t, err := time.Parse("2006 January 2", m[1]+" "+m[2]+" "+m[3]); err == nil {
			entry.Date = t.Format(constant.DateLayout)
		}
	}

	if img := media.Find("img").First(); img.Length() > 0 {
		entry.MediaType = apod.KindImage
		src, _ := img.Attr("src")
		entry.URL = resolve(src)

		if href, ok := img.Closest("a").Attr("href"); ok {
			entry.HDURL = resolve(href)
		}
	} else if frame := doc.Find("iframe[src]").First(); frame.Length() > 0 {
		entry.MediaType = apod.KindVideo
		src, _ := frame.Attr("src")
		entry.URL = resolve(src)
	} else if video := doc.Find("video source[src], video[src]").First(); video.Length() > 0 {
		entry.MediaType = apod.KindVideo
		src, _ := video.Attr("src")
		entry.URL = resolve(src)
	}

	if centers.Length() > 1 {
		credits := centers.Eq(1)
		entry.Title = collapse(credits.Find("b").First().Text())

		text := collapse(credits.Text())
		if loc := creditLabel.FindStringIndex(text); loc != nil {
			entry.Copyright = strings.TrimSpace(text[loc[1]:])
		}
	}
	if entry.Title == "" {
		entry.Title = collapse(strings.TrimPrefix(doc.Find("title").Text(), "APOD:"))
	}

	entry.Explanation = explanation(doc)
	return entry
}

// explanation returns the text following the "Explanation:" label up to the next paragraph.
func explanation(doc *goquery.Document) string {
	label := doc.Find("b").FilterFunction(func(_ int, b *goquery.Selection) bool {
		return strings.HasPrefix(collapse(b.Text()), "Explanation")
	}).First()
	if label.Length() == 0 {
		return ""
	}

	var sb strings.Builder
	for n := label.Nodes[0].NextSibling; n != nil; n = n.NextSibling {
		if n.Type == html.ElementNode && (n.Data == "p" || n.Data == "center") {
			break
		}
		sb.WriteString(goquery.NewDocumentFromNode(n).Text())
	}

	text := collapse(sb.String())
	if text == "" {
		text = collapse(strings.TrimPrefix(collapse(label.Parent().Text()), "Explanation:"))
	}
	if i := strings.Index(text, "Tomorrow's picture:"); i >= 0 {
		text = strings.TrimSpace(text[:i])
	}
	return text
}
