package parser

import (
	"fmt"
	"net/url"
	"strings"

	"booth-extractor/config"
	"booth-extractor/models"

	"github.com/antchfx/htmlquery"
	"golang.org/x/net/html"
)

// ParseItemPage extracts a single record from a product detail page.
// Each field falls back to an empty string on its own; URL is always pageURL.
func (p *Parser) ParseItemPage(htmlContent, pageURL string) (models.ItemRecord, error) {
	doc, err := htmlquery.Parse(strings.NewReader(htmlContent))
	if err != nil {
		return models.ItemRecord{}, fmt.Errorf("failed to parse HTML: %w", err)
	}

	base, _ := url.Parse(pageURL)

	return models.ItemRecord{
		Title:    queryField(doc, p.sel.Item.Title, base),
		URL:      pageURL,
		ImageURL: queryField(doc, p.sel.Item.Image, base),
		Shop:     queryField(doc, p.sel.Item.Shop, base),
	}, nil
}

func queryField(doc *html.Node, field config.XPathField, base *url.URL) string {
	node, err := htmlquery.Query(doc, field.XPath)
	if err != nil || node == nil {
		return ""
	}

	switch field.Attr {
	case "":
		return strings.TrimSpace(htmlquery.InnerText(node))
	case "src", "href":
		return resolveURL(base, htmlquery.SelectAttr(node, field.Attr))
	default:
		return strings.TrimSpace(htmlquery.SelectAttr(node, field.Attr))
	}
}
