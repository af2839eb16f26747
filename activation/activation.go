package activation

import (
	"net/url"
	"strings"

	"github.com/gobwas/glob"
)

// Mode is what the extractor offers on a given page
type Mode int

const (
	// Inert pages get no controls
	Inert Mode = iota
	// List pages offer "Extract All Pages" and "Extract Current Page"
	List
	// Item pages offer "Extract One Item"
	Item
)

func (m Mode) String() string {
	switch m {
	case List:
		return "list"
	case Item:
		return "item"
	default:
		return "inert"
	}
}

// Section paths of the two library list views
const (
	SectionLibrary = "/library"
	SectionGifts   = "/library/gifts"
)

var (
	listPatterns = compile(
		"https://accounts.booth.pm/library*",
		"https://accounts.booth.pm/library/gifts*",
	)
	itemPatterns = compile(
		"https://booth.pm/*/items/*",
		"https://*.booth.pm/items/*",
	)
)

func compile(patterns ...string) []glob.Glob {
	globs := make([]glob.Glob, 0, len(patterns))
	for _, p := range patterns {
		globs = append(globs, glob.MustCompile(p))
	}
	return globs
}

// Match returns the mode for rawURL. Anything outside the fixed patterns is Inert.
func Match(rawURL string) Mode {
	rawURL = strings.TrimSpace(rawURL)
	for _, g := range listPatterns {
		if g.Match(rawURL) {
			return List
		}
	}
	for _, g := range itemPatterns {
		if g.Match(rawURL) {
			return Item
		}
	}
	return Inert
}

// SectionPath returns the list section the URL belongs to
func SectionPath(rawURL string) string {
	path := rawURL
	if u, err := url.Parse(rawURL); err == nil {
		path = u.Path
	}
	if strings.HasPrefix(path, SectionGifts) {
		return SectionGifts
	}
	return SectionLibrary
}

// Origin returns scheme://host of rawURL, or "" when it cannot be parsed
func Origin(rawURL string) string {
	u, err := url.Parse(rawURL)
	if err != nil || u.Scheme == "" || u.Host == "" {
		return ""
	}
	return u.Scheme + "://" + u.Host
}
