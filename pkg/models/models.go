package models

import "html/template"

// CatalogEntry is one image/caption pair eligible for featured display.
// Caption may embed inline markup (e.g. <em>) and is rendered as-is.
type CatalogEntry struct {
	Image   string `json:"image" yaml:"image"`
	Caption string `json:"caption" yaml:"caption"`
}

// Page represents a single documentation page scanned from the docs tree.
type Page struct {
	Title   string   `json:"title"`
	Path    string   `json:"-"`
	URL     string   `json:"url"`
	Tags    []string `json:"tags,omitempty"`
	Section string   `json:"section,omitempty"`

	Meta map[string]any `json:"-"`
}

// Section groups pages that share a section title on an index page.
type Section struct {
	Title string `json:"title"`
	Pages []Page `json:"pages"`
}

// Feed is the JSON feed payload: all pages plus the featured catalog.
type Feed struct {
	Title   string         `json:"title"`
	Pages   []Page         `json:"pages"`
	Catalog []CatalogEntry `json:"catalog"`
}

// Document is the data passed to the page view template.
type Document struct {
	Title   string
	Site    string
	Content template.HTML
}

// Home is the data passed to the front page view template.
type Home struct {
	Title    string
	Sections []Section
	Content  template.HTML
}
