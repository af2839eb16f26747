package scraper

import (
	"context"
	"fmt"
	"log"
	"strings"
	"time"

	"booth-extractor/fetcher"
	"booth-extractor/models"
	"booth-extractor/parser"
)

// DefaultPageDelay is the pause after every non-empty list page
const DefaultPageDelay = 1000 * time.Millisecond

// SleepFunc pauses between page fetches. It must return early when ctx is done.
type SleepFunc func(ctx context.Context, d time.Duration) error

// ContextSleep waits for d or until ctx is done
func ContextSleep(ctx context.Context, d time.Duration) error {
	if d <= 0 {
		return ctx.Err()
	}
	timer := time.NewTimer(d)
	defer timer.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}

// Options configures an Extractor
type Options struct {
	// BaseURL is the origin serving the section, e.g. https://accounts.booth.pm
	BaseURL string
	// Section is the list path, /library or /library/gifts
	Section string
	Delay   time.Duration
	// Sleep defaults to ContextSleep
	Sleep SleepFunc
	// Status defaults to a Status without observer
	Status *Status
}

// Extractor walks the library list pages of one section, strictly one page at a time
type Extractor struct {
	fetcher fetcher.Fetcher
	parser  *parser.Parser
	baseURL string
	section string
	delay   time.Duration
	sleep   SleepFunc
	status  *Status
}

// NewExtractor creates a new Extractor
func NewExtractor(f fetcher.Fetcher, p *parser.Parser, opts Options) *Extractor {
	if opts.Sleep == nil {
		opts.Sleep = ContextSleep
	}
	if opts.Status == nil {
		opts.Status = NewStatus(nil)
	}
	if opts.Delay < 0 {
		opts.Delay = 0
	}
	return &Extractor{
		fetcher: f,
		parser:  p,
		baseURL: strings.TrimRight(opts.BaseURL, "/"),
		section: opts.Section,
		delay:   opts.Delay,
		sleep:   opts.Sleep,
		status:  opts.Status,
	}
}

// Status returns the control state owned by this extractor
func (e *Extractor) Status() *Status {
	return e.status
}

func (e *Extractor) sectionURL() string {
	return e.baseURL + e.section
}

func (e *Extractor) pageURL(page int) string {
	return fmt.Sprintf("%s?page=%d", e.sectionURL(), page)
}

// ExtractListPage fetches and parses one list page.
// found is false when the page contains no item container.
func (e *Extractor) ExtractListPage(ctx context.Context, page int) (records []models.ItemRecord, found bool, err error) {
	pageURL := e.pageURL(page)
	html, err := e.fetcher.Fetch(ctx, pageURL)
	if err != nil {
		return nil, false, fmt.Errorf("failed to fetch page %d: %w", page, err)
	}

	records, found, err = e.parser.ParseListPage(html, pageURL)
	if err != nil {
		return nil, false, fmt.Errorf("failed to parse page %d: %w", page, err)
	}
	return records, found, nil
}

// LastPageNumber reads the last page number from the first page of the section
func (e *Extractor) LastPageNumber(ctx context.Context) (int, error) {
	html, err := e.fetcher.Fetch(ctx, e.sectionURL())
	if err != nil {
		return 1, fmt.Errorf("failed to fetch %s: %w", e.sectionURL(), err)
	}
	return e.parser.ParseLastPage(html)
}

// ExtractAllPages extracts pages 1 through the last page in order.
// It stops at the first page without records. On error it returns the records
// gathered so far together with the error; callers should not publish them.
func (e *Extractor) ExtractAllPages(ctx context.Context) ([]models.ItemRecord, error) {
	release := e.status.Acquire()
	defer release()

	var all []models.ItemRecord

	lastPage, err := e.LastPageNumber(ctx)
	if err != nil {
		return nil, err
	}
	log.Printf("Section %s has %d page(s)\n", e.section, lastPage)

	for page := 1; page <= lastPage; page++ {
		e.status.SetProgress(page, lastPage)

		records, found, err := e.ExtractListPage(ctx, page)
		if err != nil {
			log.Printf("Extraction aborted on page %d/%d with %d records collected\n", page, lastPage, len(all))
			return all, err
		}
		if !found || len(records) == 0 {
			log.Printf("No more items found on page %d, stopping\n", page)
			break
		}

		all = append(all, records...)
		log.Printf("Extracted %d items from page %d/%d\n", len(records), page, lastPage)

		if err := e.sleep(ctx, e.delay); err != nil {
			return all, err
		}
	}

	return all, nil
}

// ExtractCurrentPage extracts the first page of the section
func (e *Extractor) ExtractCurrentPage(ctx context.Context) ([]models.ItemRecord, error) {
	records, _, err := e.ExtractListPage(ctx, 1)
	if err != nil {
		return nil, err
	}
	return records, nil
}
