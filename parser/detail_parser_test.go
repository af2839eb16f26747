package parser

import (
	"testing"

	"booth-extractor/config"
	"booth-extractor/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const itemPageURL = "https://booth.pm/ja/items/1234567"

const itemPageHTML = `<html><body>
<main>
  <header>
    <a href="https://example-shop.booth.pm/"><img src="/icon.png"><span>Example Shop</span></a>
  </header>
  <div class="primary-image-area">
    <img class="market-item-detail-item-image" src="https://booth.pximg.net/c/620x620/1234567.jpg">
    <img src="https://booth.pximg.net/second.jpg">
  </div>
  <h2 class="font-bold">
    Sample Avatar Costume
  </h2>
  <h2>Related items</h2>
</main>
</body></html>`

const itemPageWithoutShopHTML = `<html><body>
<main>
  <div class="primary-image-area"><img src="/images/1234567.jpg"></div>
  <h2>Sample Avatar Costume</h2>
</main>
</body></html>`

func TestParseItemPage(t *testing.T) {
	p := NewParser(config.DefaultSelectors())

	record, err := p.ParseItemPage(itemPageHTML, itemPageURL)
	require.NoError(t, err)
	assert.Equal(t, models.ItemRecord{
		Title:    "Sample Avatar Costume",
		URL:      itemPageURL,
		ImageURL: "https://booth.pximg.net/c/620x620/1234567.jpg",
		Shop:     "Example Shop",
	}, record)
}

func TestParseItemPageMissingShop(t *testing.T) {
	p := NewParser(config.DefaultSelectors())

	record, err := p.ParseItemPage(itemPageWithoutShopHTML, itemPageURL)
	require.NoError(t, err)
	assert.Equal(t, "", record.Shop)
	assert.Equal(t, "Sample Avatar Costume", record.Title)
	assert.Equal(t, "https://booth.pm/images/1234567.jpg", record.ImageURL)
	assert.Equal(t, itemPageURL, record.URL)
}

func TestParseItemPageEmptyDocument(t *testing.T) {
	p := NewParser(config.DefaultSelectors())

	record, err := p.ParseItemPage("", itemPageURL)
	require.NoError(t, err)
	assert.Equal(t, models.ItemRecord{URL: itemPageURL}, record)
}

func TestParseItemPageCustomAttr(t *testing.T) {
	sel := config.DefaultSelectors()
	sel.Item.Title = config.XPathField{XPath: "//meta[@property='og:title']", Attr: "content"}
	p := NewParser(sel)

	record, err := p.ParseItemPage(`<html><head><meta property="og:title" content=" OG Title "></head><body></body></html>`, itemPageURL)
	require.NoError(t, err)
	assert.Equal(t, "OG Title", record.Title)
}
