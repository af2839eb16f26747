package parser

import (
	"fmt"
	"net/url"
	"regexp"
	"strconv"
	"strings"

	"booth-extractor/config"
	"booth-extractor/models"

	"github.com/PuerkitoBio/goquery"
)

var pageParamRegex = regexp.MustCompile(`page=(\d+)`)

// Parser extracts item records from Booth HTML
type Parser struct {
	sel config.Selectors
}

// NewParser creates a new Parser using the given selector table
func NewParser(sel config.Selectors) *Parser {
	return &Parser{sel: sel}
}

// ParseListPage extracts every item container on a library list page, in document order.
// found is false when the page has no item container at all, which marks the end of the listing.
// A container without a header is skipped.
func (p *Parser) ParseListPage(htmlContent, pageURL string) (records []models.ItemRecord, found bool, err error) {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(htmlContent))
	if err != nil {
		return nil, false, fmt.Errorf("failed to parse HTML: %w", err)
	}

	containers := doc.Find(p.sel.List.Container)
	if containers.Length() == 0 {
		return nil, false, nil
	}

	base, _ := url.Parse(pageURL)
	records = make([]models.ItemRecord, 0, containers.Length())

	containers.Each(func(i int, container *goquery.Selection) {
		header := container.Find(p.sel.List.Header).First()
		if header.Length() == 0 {
			return
		}
		records = append(records, p.extractRecord(header, base))
	})

	return records, true, nil
}

// extractRecord reads the four fields from a container header
func (p *Parser) extractRecord(header *goquery.Selection, base *url.URL) models.ItemRecord {
	record := models.ItemRecord{}

	if title := header.Find(p.sel.List.Title).First(); title.Length() > 0 {
		record.Title = strings.TrimSpace(title.Text())
	}
	if link := header.Find(p.sel.List.Link).First(); link.Length() > 0 {
		record.URL = resolveURL(base, link.AttrOr("href", ""))
	}
	if image := header.Find(p.sel.List.Image).First(); image.Length() > 0 {
		record.ImageURL = resolveURL(base, image.AttrOr("src", ""))
	}
	if shop := header.Find(p.sel.List.Shop).First(); shop.Length() > 0 {
		record.Shop = strings.TrimSpace(shop.Text())
	}

	return record
}

// ParseLastPage returns the page number of the "last page" pagination link,
// or 1 when the link or its page parameter is missing.
func (p *Parser) ParseLastPage(htmlContent string) (int, error) {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(htmlContent))
	if err != nil {
		return 1, fmt.Errorf("failed to parse HTML: %w", err)
	}

	link := doc.Find(p.sel.List.LastPage).First()
	if link.Length() == 0 {
		return 1, nil
	}

	match := pageParamRegex.FindStringSubmatch(link.AttrOr("href", ""))
	if match == nil {
		return 1, nil
	}

	last, err := strconv.Atoi(match[1])
	if err != nil || last < 1 {
		return 1, nil
	}
	return last, nil
}

// resolveURL makes ref absolute against base. Empty refs stay empty.
func resolveURL(base *url.URL, ref string) string {
	ref = strings.TrimSpace(ref)
	if ref == "" {
		return ""
	}
	u, err := url.Parse(ref)
	if err != nil || base == nil {
		return ref
	}
	return base.ResolveReference(u).String()
}
