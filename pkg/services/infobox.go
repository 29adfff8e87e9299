package services

import (
	"fmt"
	"html/template"
	"strings"
)

// infoboxLinks maps frontmatter keys to their link labels, in display order.
var infoboxLinks = []struct {
	key   string
	label string
}{
	{"resource_link", "Resource"},
	{"support_link", "Support"},
	{"repository", "Git Repo"},
	{"quick_start", "Quick Start"},
}

// Infobox renders a collapsible infobox from page frontmatter: tagline,
// authors, config file and external links. Returns "" when the metadata
// carries none of the infobox fields.
func Infobox(title string, meta map[string]any, expanded bool) string {
	if meta == nil {
		return ""
	}

	var rows []string

	if tagline, ok := meta["tagline"].(string); ok && tagline != "" {
		rows = append(rows, fmt.Sprintf("  <p><em>%s</em></p>", template.HTMLEscapeString(tagline)))
	}

	if authors := metaAuthors(meta); authors != "" {
		rows = append(rows, fmt.Sprintf("  <p><strong>Authors:</strong> %s</p>", template.HTMLEscapeString(authors)))
	}

	if cfg, ok := meta["config"].(string); ok && cfg != "" {
		rows = append(rows, fmt.Sprintf("  <p><strong>Config:</strong> <code>%s</code></p>", template.HTMLEscapeString(cfg)))
	}

	var links []string
	for _, link := range infoboxLinks {
		if url, ok := meta[link.key].(string); ok && url != "" {
			links = append(links, fmt.Sprintf(`<a href="%s">%s</a>`, template.HTMLEscapeString(url), link.label))
		}
	}
	if len(links) > 0 {
		rows = append(rows, fmt.Sprintf("  <p><strong>Links:</strong> %s</p>", strings.Join(links, " · ")))
	}

	if len(rows) == 0 {
		return ""
	}

	open := ""
	if expanded {
		open = " open"
	}
	if title == "" {
		title = "Info"
	}

	parts := []string{
		fmt.Sprintf(`<details class="info inline end"%s>`, open),
		fmt.Sprintf("  <summary>%s</summary>", template.HTMLEscapeString(title)),
	}
	parts = append(parts, rows...)
	parts = append(parts, "</details>")

	return strings.Join(parts, "\n")
}

// metaAuthors joins the authors field, which may be a string or a list.
func metaAuthors(meta map[string]any) string {
	switch v := meta["authors"].(type) {
	case string:
		return v
	case []any:
		var names []string
		for _, item := range v {
			if s, ok := item.(string); ok {
				names = append(names, s)
			}
		}
		return strings.Join(names, ", ")
	}
	return ""
}

// InjectInfobox inserts the infobox right after the first H1 of rendered
// page HTML. Pages without an H1 or without infobox metadata pass through
// unchanged.
func InjectInfobox(html, title string, meta map[string]any) string {
	box := Infobox(title, meta, true)
	if box == "" {
		return html
	}

	idx := strings.Index(html, "</h1>")
	if idx == -1 {
		return html
	}

	at := idx + len("</h1>")
	return html[:at] + "\n" + box + html[at:]
}
