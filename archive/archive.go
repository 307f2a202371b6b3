// Package archive scrapes the static HTML archive at apod.nasa.gov.
//
// It needs no API key, so it backs the key-free mode and the archive index command.
package archive

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"regexp"
	"strconv"
	"strings"
	"time"

	"github.com/PuerkitoBio/goquery"
	"github.com/apod-cli/apod/constant"
	"github.com/apod-cli/apod/log"
	"github.com/apod-cli/apod/network"
	"github.com/apod-cli/apod/util"
	"golang.org/x/net/html"
)

// Link is one line of the archive index.
type Link struct {
	Date  string `json:"date"`
	Title string `json:"title"`
	Page  string `json:"page"`
}

// Scraper reads the HTML archive.
type Scraper struct {
	base *url.URL
	http *http.Client
}

// New returns a scraper rooted at baseURL. An empty baseURL uses the public archive.
func New(baseURL string, client *http.Client) (*Scraper, error) {
	if baseURL == "" {
		baseURL = constant.ArchiveBaseURL
	}
	if !strings.HasSuffix(baseURL, "/") {
		baseURL += "/"
	}

	base, err := url.Parse(baseURL)
	if err != nil {
		return nil, fmt.Errorf("parse archive url: %w", err)
	}

	if client == nil {
		client = network.Client
	}

	return &Scraper{base: base, http: client}, nil
}

// PageName returns the archive page name for a day, e.g. ap240102.html.
func PageName(day time.Time) string {
	return "ap" + day.Format("060102") + ".html"
}

var pagePattern = regexp.MustCompile(`ap(?P<yy>\d{2})(?P<mm>\d{2})(?P<dd>\d{2})\.html$`)

// DateFromPage decodes the date embedded in an archive page name.
// Two-digit years from 95 to 99 belong to the twentieth century.
func DateFromPage(page string) (time.Time, bool) {
	groups := util.ReGroups(pagePattern, page)
	if len(groups) != 3 {
		return time.Time{}, false
	}

	yy, _ := strconv.Atoi(groups["yy"])
	mm, _ := strconv.Atoi(groups["mm"])
	dd, _ := strconv.Atoi(groups["dd"])

	year := 2000 + yy
	if yy >= 95 {
		year = 1900 + yy
	}

	t := time.Date(year, time.Month(mm), dd, 0, 0, 0, 0, time.UTC)
	if t.Month() != time.Month(mm) || t.Day() != dd {
		return time.Time{}, false
	}
	return t, true
}

// document fetches a page relative to the base and parses it.
func (s *Scraper) document(ctx context.Context, page string) (*goquery.Document, *url.URL, error) {
	u := s.base.ResolveReference(&url.URL{Path: page})
	log.Infof("Scraping %s", u)

	body, err := network.Get(ctx, s.http, u.String())
	if err != nil {
		log.Error(err)
		return nil, nil, err
	}
	defer body.Close()

	root, err := html.Parse(body)
	if err != nil {
		return nil, nil, fmt.Errorf("parse %s: %w", page, err)
	}

	return goquery.NewDocumentFromNode(root), u, nil
}

// Index scrapes archivepix.html, newest first as published.
func (s *Scraper) Index(ctx context.Context) ([]*Link, error) {
	doc, _, err := s.document(ctx, "archivepix.html")
	if err != nil {
		return nil, err
	}

	return parseIndex(doc), nil
}

func parseIndex(doc *goquery.Document) []*Link {
	var links []*Link
	doc.Find("a[href]").Each(func(_ int, a *goquery.Selection) {
		href, _ := a.Attr("href")
		day, ok := DateFromPage(href)
		if !ok {
			return
		}

		links = append(links, &Link{
			Date:  day.Format(constant.DateLayout),
			Title: collapse(a.Text()),
			Page:  href,
		})
	})
	return links
}
