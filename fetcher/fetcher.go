package fetcher

import "context"

// Fetcher retrieves the HTML of a single page
type Fetcher interface {
	Fetch(ctx context.Context, url string) (string, error)
}
