package fetcher

import (
	"context"
	"fmt"
	"log"
	"time"

	"github.com/gocolly/colly/v2"
)

// CollyOptions configures a CollyFetcher
type CollyOptions struct {
	UserAgent string
	// Cookie is sent verbatim as the Cookie header
	Cookie string
	// Timeout of zero means a request may block indefinitely
	Timeout time.Duration
}

// CollyFetcher fetches raw HTML one request at a time using colly
type CollyFetcher struct {
	collector *colly.Collector
	cookie    string
}

// NewCollyFetcher creates a new CollyFetcher instance
func NewCollyFetcher(opts CollyOptions) *CollyFetcher {
	c := colly.NewCollector(
		colly.AllowURLRevisit(),
	)
	if opts.UserAgent != "" {
		c.UserAgent = opts.UserAgent
	}
	c.SetRequestTimeout(opts.Timeout)

	return &CollyFetcher{
		collector: c,
		cookie:    opts.Cookie,
	}
}

// Fetch implements the Fetcher interface
func (cf *CollyFetcher) Fetch(ctx context.Context, url string) (string, error) {
	c := cf.collector.Clone()
	c.Context = ctx

	// Clone drops callbacks, so headers are attached per fetch
	c.OnRequest(func(r *colly.Request) {
		r.Headers.Set("Accept", "text/html,application/xhtml+xml")
		if cf.cookie != "" {
			r.Headers.Set("Cookie", cf.cookie)
		}
	})
	var body string
	var fetchErr error

	c.OnResponse(func(r *colly.Response) {
		body = string(r.Body)
	})
	c.OnError(func(r *colly.Response, err error) {
		log.Printf("Error fetching %s: %v\n", r.Request.URL, err)
		fetchErr = fmt.Errorf("fetch %s: status %d: %w", r.Request.URL, r.StatusCode, err)
	})

	if err := c.Visit(url); err != nil {
		if fetchErr != nil {
			return "", fetchErr
		}
		return "", fmt.Errorf("failed to visit URL: %w", err)
	}
	if fetchErr != nil {
		return "", fetchErr
	}

	return body, nil
}
