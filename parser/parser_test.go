package parser

import (
	"fmt"
	"strings"
	"testing"

	"booth-extractor/config"
	"booth-extractor/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const listPageURL = "https://accounts.booth.pm/library?page=1"

func container(id int, shop string) string {
	return fmt.Sprintf(`
<div class="mb-16 bg-white rounded-8">
  <div class="flex gap-8 items-start">
    <a href="https://booth.pm/ja/items/%[1]d">
      <img class="l-library-item-thumbnail" src="https://booth.pximg.net/c/72x72/%[1]d.jpg">
    </a>
    <div>
      <a href="/ja/items/%[1]d"><div class="text-text-default font-bold">  Item %[1]d
      </div></a>
      <div class="typography-14 text-text-gray600">%[2]s</div>
    </div>
  </div>
  <div class="downloads">download links</div>
</div>`, id, shop)
}

func listPage(containers ...string) string {
	return `<html><body><main>` + strings.Join(containers, "\n") + `</main></body></html>`
}

func TestParseListPage(t *testing.T) {
	p := NewParser(config.DefaultSelectors())

	records, found, err := p.ParseListPage(listPage(container(1, " Shop A "), container(2, "Shop B"), container(3, "Shop C")), listPageURL)
	require.NoError(t, err)
	require.True(t, found)
	require.Len(t, records, 3)

	assert.Equal(t, models.ItemRecord{
		Title:    "Item 1",
		URL:      "https://booth.pm/ja/items/1",
		ImageURL: "https://booth.pximg.net/c/72x72/1.jpg",
		Shop:     "Shop A",
	}, records[0])
	assert.Equal(t, "Item 2", records[1].Title)
	assert.Equal(t, "Item 3", records[2].Title)
	assert.Equal(t, "Shop C", records[2].Shop)
}

func TestParseListPageNoContainers(t *testing.T) {
	p := NewParser(config.DefaultSelectors())

	records, found, err := p.ParseListPage(`<html><body><p>No items</p></body></html>`, listPageURL)
	require.NoError(t, err)
	assert.False(t, found)
	assert.Nil(t, records)
}

func TestParseListPageSkipsContainerWithoutHeader(t *testing.T) {
	p := NewParser(config.DefaultSelectors())
	html := listPage(
		container(1, "Shop A"),
		`<div class="mb-16 bg-white"><p>broken card</p></div>`,
		container(3, "Shop C"),
	)

	records, found, err := p.ParseListPage(html, listPageURL)
	require.NoError(t, err)
	assert.True(t, found)
	require.Len(t, records, 2)
	assert.Equal(t, "Item 1", records[0].Title)
	assert.Equal(t, "Item 3", records[1].Title)
}

func TestParseListPageOnlyHeaderlessContainers(t *testing.T) {
	p := NewParser(config.DefaultSelectors())

	records, found, err := p.ParseListPage(listPage(`<div class="mb-16 bg-white"></div>`), listPageURL)
	require.NoError(t, err)
	assert.True(t, found)
	assert.Empty(t, records)
}

func TestParseListPageMissingFields(t *testing.T) {
	p := NewParser(config.DefaultSelectors())
	html := listPage(`<div class="mb-16 bg-white"><div class="flex gap-8"><span>bare</span></div></div>`)

	records, _, err := p.ParseListPage(html, listPageURL)
	require.NoError(t, err)
	require.Len(t, records, 1)
	assert.Equal(t, models.ItemRecord{}, records[0])
}

func TestParseListPageResolvesRelativeURLs(t *testing.T) {
	p := NewParser(config.DefaultSelectors())
	html := listPage(`
<div class="mb-16 bg-white"><div class="flex gap-8">
  <a href="/items/99"><img class="l-library-item-thumbnail" src="//booth.pximg.net/99.jpg"></a>
</div></div>`)

	records, _, err := p.ParseListPage(html, listPageURL)
	require.NoError(t, err)
	require.Len(t, records, 1)
	assert.Equal(t, "https://accounts.booth.pm/items/99", records[0].URL)
	assert.Equal(t, "https://booth.pximg.net/99.jpg", records[0].ImageURL)
}

func TestParseListPageCustomSelectors(t *testing.T) {
	sel := config.DefaultSelectors()
	sel.List.Container = ".card"
	sel.List.Header = ".card-head"
	p := NewParser(sel)

	html := `<div class="card"><div class="card-head"><div class="text-text-default font-bold">Renamed</div></div></div>`
	records, found, err := p.ParseListPage(html, listPageURL)
	require.NoError(t, err)
	assert.True(t, found)
	require.Len(t, records, 1)
	assert.Equal(t, "Renamed", records[0].Title)
}

func TestParseLastPage(t *testing.T) {
	tests := []struct {
		name     string
		html     string
		expected int
	}{
		{"no pagination", `<div>only page</div>`, 1},
		{"relative query", `<a class="last-page" href="?page=7">Last</a>`, 7},
		{"full path", `<a class="last-page" href="/library/gifts?page=12&sort=new">Last</a>`, 12},
		{"link without page param", `<a class="last-page" href="/library">Last</a>`, 1},
		{"link without href", `<a class="last-page">Last</a>`, 1},
		{"page zero", `<a class="last-page" href="?page=0">Last</a>`, 1},
		{"other links ignored", `<a class="next-page" href="?page=2">Next</a>`, 1},
	}

	p := NewParser(config.DefaultSelectors())
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := p.ParseLastPage(tt.html)
			require.NoError(t, err)
			assert.Equal(t, tt.expected, got)
		})
	}
}
