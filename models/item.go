package models

// ItemRecord represents one item scraped from a Booth page
type ItemRecord struct {
	Title    string `json:"title"`
	URL      string `json:"url"`
	ImageURL string `json:"imageUrl"`
	Shop     string `json:"shop"`
}
