package scraper

import (
	"context"
	"fmt"
	"log"

	"booth-extractor/fetcher"
	"booth-extractor/models"
	"booth-extractor/parser"
)

// ExtractItem loads one product page and extracts its record.
// Any failure, including a panic during extraction, comes back as an error
// and no record is produced.
func ExtractItem(ctx context.Context, f fetcher.Fetcher, p *parser.Parser, pageURL string) (record *models.ItemRecord, err error) {
	defer func() {
		if r := recover(); r != nil {
			log.Printf("Panic while extracting %s: %v\n", pageURL, r)
			record = nil
			err = fmt.Errorf("panic while extracting item: %v", r)
		}
	}()

	html, err := f.Fetch(ctx, pageURL)
	if err != nil {
		return nil, fmt.Errorf("failed to load item page: %w", err)
	}

	rec, err := p.ParseItemPage(html, pageURL)
	if err != nil {
		return nil, err
	}
	return &rec, nil
}
