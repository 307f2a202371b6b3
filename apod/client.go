package apod

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"github.com/apod-cli/apod/constant"
	"github.com/apod-cli/apod/log"
	"github.com/apod-cli/apod/network"
)

// MaxCount is the largest count NASA accepts in a single request.
const MaxCount = 100

// Client queries the APOD JSON API.
type Client struct {
	apiKey   string
	endpoint string
	thumbs   bool
	http     *http.Client
	now      func() time.Time
}

// Option configures a Client.
type Option func(*Client)

// WithEndpoint overrides the API endpoint.
func WithEndpoint(endpoint string) Option {
	return func(c *Client) {
		if endpoint != "" {
			c.endpoint = endpoint
		}
	}
}

// WithHTTPClient replaces the shared network client.
func WithHTTPClient(h *http.Client) Option {
	return func(c *Client) {
		c.http = h
	}
}

// WithThumbs asks the API for thumbnails of video entries.
func WithThumbs(thumbs bool) Option {
	return func(c *Client) {
		c.thumbs = thumbs
	}
}

// WithClock replaces time.Now, used to validate dates.
func WithClock(now func() time.Time) Option {
	return func(c *Client) {
		c.now = now
	}
}

// NewClient returns a client authenticated with apiKey.
func NewClient(apiKey string, options ...Option) *Client {
	c := &Client{
		apiKey:   apiKey,
		endpoint: constant.APIEndpoint,
		http:     network.Client,
		now:      time.Now,
	}
	for _, o := range options {
		o(c)
	}
	return c
}

// Today returns the current picture.
func (c *Client) Today(ctx context.Context) (*Entry, error) {
	var entry Entry
	if err := c.get(ctx, url.Values{}, &entry); err != nil {
		return nil, err
	}
	return &entry, nil
}

// ByDate returns the picture published on the given day.
func (c *Client) ByDate(ctx context.Context, day time.Time) (*Entry, error) {
	if err := c.checkDate(day); err != nil {
		return nil, err
	}

	var entry Entry
	params := url.Values{"date": {day.Format(constant.DateLayout)}}
	if err := c.get(ctx, params, &entry); err != nil {
		return nil, err
	}
	return &entry, nil
}

// Range returns every picture between start and end, inclusive.
func (c *Client) Range(ctx context.Context, start, end time.Time) ([]*Entry, error) {
	if start.After(end) {
		return nil, fmt.Errorf("%w: start %s is after end %s", ErrDateOutOfRange,
			start.Format(constant.DateLayout), end.Format(constant.DateLayout))
	}
	for _, d := range []time.Time{start, end} {
		if err := c.checkDate(d); err != nil {
			return nil, err
		}
	}

	var entries []*Entry
	params := url.Values{
		"start_date": {start.Format(constant.DateLayout)},
		"end_date":   {end.Format(constant.DateLayout)},
	}
	if err := c.get(ctx, params, &entries); err != nil {
		return nil, err
	}
	return entries, nil
}

// Random returns count randomly chosen pictures. Counts above MaxCount are
// fetched in several requests and de-duplicated by date, so fewer entries
// than requested may come back.
func (c *Client) Random(ctx context.Context, count int) ([]*Entry, error) {
	if count <= 0 {
		return nil, fmt.Errorf("count must be positive, got %d", count)
	}

	var all []*Entry
	for remaining := count; remaining > 0; remaining -= MaxCount {
		batch := min(remaining, MaxCount)
		log.Infof("Requesting %d random pictures", batch)

		var entries []*Entry
		if err := c.get(ctx, url.Values{"count": {strconv.Itoa(batch)}}, &entries); err != nil {
			return nil, err
		}
		all = append(all, entries...)
	}

	return Dedupe(all), nil
}

func (c *Client) checkDate(day time.Time) error {
	return CheckDate(day, c.now())
}

// CheckDate reports ErrDateOutOfRange unless day falls between the first picture and now, inclusive.
func CheckDate(day, now time.Time) error {
	first, _ := time.Parse(constant.DateLayout, constant.FirstDate)
	y, m, d := now.Date()
	today := time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
	day = time.Date(day.Year(), day.Month(), day.Day(), 0, 0, 0, 0, time.UTC)

	if day.Before(first) || day.After(today) {
		return fmt.Errorf("%w: %s is not between %s and %s", ErrDateOutOfRange,
			day.Format(constant.DateLayout), constant.FirstDate, today.Format(constant.DateLayout))
	}
	return nil
}

func (c *Client) get(ctx context.Context, params url.Values, target any) error {
	params.Set("api_key", c.apiKey)
	if c.thumbs {
		params.Set("thumbs", "true")
	}

	u, err := url.Parse(c.endpoint)
	if err != nil {
		return fmt.Errorf("parse endpoint: %w", err)
	}
	u.RawQuery = params.Encode()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u.String(), nil)
	if err != nil {
		return fmt.Errorf("create request: %w", err)
	}

	params.Del("api_key")
	log.Debugf("GET %s?%s", c.endpoint, params.Encode())

	resp, err := c.http.Do(req)
	if err != nil {
		log.Error(err)
		return fmt.Errorf("apod api: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		var body errorBody
		_ = json.NewDecoder(resp.Body).Decode(&body)
		apiErr := body.toAPIError(resp.StatusCode)
		log.Error(apiErr)
		return apiErr
	}

	if err := json.NewDecoder(resp.Body).Decode(target); err != nil {
		log.Error(err)
		return fmt.Errorf("decode apod response: %w", err)
	}

	return nil
}
