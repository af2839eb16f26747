package config

import (
	"fmt"

	"github.com/andybalholm/cascadia"
	"github.com/antchfx/xpath"
)

// Selectors is the single place that knows the host markup.
type Selectors struct {
	List ListSelectors `yaml:"list"`
	Item ItemPaths     `yaml:"item"`
}

// ListSelectors are CSS selectors for the library list view.
// Link, Image, Title and Shop are matched inside Header, Header inside Container.
type ListSelectors struct {
	Container string `yaml:"container"`
	Header    string `yaml:"header"`
	Link      string `yaml:"link"`
	Image     string `yaml:"image"`
	Title     string `yaml:"title"`
	Shop      string `yaml:"shop"`
	LastPage  string `yaml:"last_page"`
}

// XPathField locates one field on the item page. An empty Attr means text content.
type XPathField struct {
	XPath string `yaml:"xpath"`
	Attr  string `yaml:"attr"`
}

// ItemPaths are positional XPath queries for the product detail view
type ItemPaths struct {
	Title XPathField `yaml:"title"`
	Image XPathField `yaml:"image"`
	Shop  XPathField `yaml:"shop"`
}

// DefaultSelectors returns the selectors matching the current Booth markup
func DefaultSelectors() Selectors {
	return Selectors{
		List: ListSelectors{
			Container: ".mb-16.bg-white",
			Header:    ".flex.gap-8",
			Link:      `a[href*="/items/"]`,
			Image:     "img.l-library-item-thumbnail",
			Title:     ".text-text-default.font-bold",
			Shop:      ".typography-14.text-text-gray600",
			LastPage:  "a.last-page",
		},
		Item: ItemPaths{
			Title: XPathField{XPath: "(//main//h2)[1]"},
			Image: XPathField{XPath: "(//main//div[contains(@class,'primary-image-area')]//img)[1]", Attr: "src"},
			Shop:  XPathField{XPath: "(//main//header//a[contains(@href,'.booth.pm')])[1]//span[1]"},
		},
	}
}

// Validate compiles every selector so a typo fails at load time rather than
// silently producing empty records.
func (s Selectors) Validate() error {
	css := map[string]string{
		"list.container": s.List.Container,
		"list.header":    s.List.Header,
		"list.link":      s.List.Link,
		"list.image":     s.List.Image,
		"list.title":     s.List.Title,
		"list.shop":      s.List.Shop,
		"list.last_page": s.List.LastPage,
	}
	for name, sel := range css {
		if _, err := cascadia.Compile(sel); err != nil {
			return fmt.Errorf("%s %q: %w", name, sel, err)
		}
	}

	paths := map[string]string{
		"item.title": s.Item.Title.XPath,
		"item.image": s.Item.Image.XPath,
		"item.shop":  s.Item.Shop.XPath,
	}
	for name, expr := range paths {
		if _, err := xpath.Compile(expr); err != nil {
			return fmt.Errorf("%s %q: %w", name, expr, err)
		}
	}
	return nil
}
