package services

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/patrickmn/go-cache"

	"docs-gallery/pkg/config"
	"docs-gallery/pkg/models"
)

// newTestService builds a Service over a throwaway docs dir, bypassing the
// package singleton so each test gets fresh caches.
func newTestService(docsDir string, site *config.Site) *Service {
	if site == nil {
		site = &config.Site{
			Title: "Test Docs",
			Featured: config.Featured{
				Width:  300,
				Images: []models.CatalogEntry{{Image: "/images/one.png", Caption: "One"}},
			},
		}
	}

	return &Service{
		config:     &config.Config{DocsDir: docsDir, Site: site},
		pageCache:  cache.New(time.Minute, time.Minute),
		imageCache: cache.New(time.Minute, time.Minute),
	}
}

// writePage writes one markdown file under the docs dir.
func writePage(t *testing.T, docsDir, rel, content string) {
	t.Helper()
	path := filepath.Join(docsDir, rel)
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
}

func TestGetPages_ScanTitlesAndOrder(t *testing.T) {
	docs := t.TempDir()
	writePage(t, docs, "index.md", "# Home\n\nWelcome.\n")
	writePage(t, docs, "guide/index.md", "# User Guide\n\nIntro.\n")
	writePage(t, docs, "guide/getting-started.md", "---\ntitle: Getting Started\ntags:\n  - command\n---\n# Ignored H1\n")
	writePage(t, docs, "guide/topic2.md", "# Topic 2\n")
	writePage(t, docs, "guide/topic10.md", "# Topic 10\n")

	s := newTestService(docs, nil)
	pages := s.GetPagesInternal()

	want := []string{"Getting Started", "Home", "Topic 2", "Topic 10", "User Guide"}
	if len(pages) != len(want) {
		t.Fatalf("len(pages) = %d, want %d", len(pages), len(want))
	}
	for i, title := range want {
		if pages[i].Title != title {
			t.Errorf("pages[%d].Title = %q, want %q", i, pages[i].Title, title)
		}
	}
}

func TestGetPages_URLsAndSections(t *testing.T) {
	docs := t.TempDir()
	writePage(t, docs, "index.md", "# Home\n")
	writePage(t, docs, "guide/index.md", "# User Guide\n")
	writePage(t, docs, "guide/getting-started.md", "# Getting Started\n")

	s := newTestService(docs, nil)

	page, err := s.GetPageInternal("/guide/getting-started/")
	if err != nil {
		t.Fatalf("GetPageInternal() error = %v", err)
	}
	if page.Section != "User Guide" {
		t.Errorf("Section = %q, want User Guide", page.Section)
	}

	// the root index page sections under its own heading
	home, err := s.GetPageInternal("/")
	if err != nil {
		t.Fatalf("GetPageInternal(/) error = %v", err)
	}
	if home.Section != "Home" {
		t.Errorf("home Section = %q, want Home", home.Section)
	}

	if _, err := s.GetPageInternal("/missing/"); err == nil {
		t.Error("GetPageInternal() expected error for unknown URL")
	}
}

func TestGetSections_Grouping(t *testing.T) {
	docs := t.TempDir()
	writePage(t, docs, "guide/index.md", "# User Guide\n")
	writePage(t, docs, "guide/a.md", "# Alpha\n")
	writePage(t, docs, "reference/index.md", "# Reference\n")
	writePage(t, docs, "reference/b.md", "# Beta\n")

	s := newTestService(docs, nil)
	sections := s.GetSectionsInternal()

	if len(sections) != 2 {
		t.Fatalf("len(sections) = %d, want 2", len(sections))
	}
	if sections[0].Title != "Reference" || sections[1].Title != "User Guide" {
		t.Errorf("section order = %q, %q", sections[0].Title, sections[1].Title)
	}
	if len(sections[1].Pages) != 2 {
		t.Errorf("User Guide pages = %d, want 2", len(sections[1].Pages))
	}
}

func TestPageURL(t *testing.T) {
	tests := []struct {
		rel  string
		want string
	}{
		{"index.md", "/"},
		{"README.md", "/"},
		{"guide/index.md", "/guide/"},
		{"guide/README.md", "/guide/"},
		{"guide/getting-started.md", "/guide/getting-started/"},
		{"a/b/c.md", "/a/b/c/"},
	}

	for _, tt := range tests {
		if got := pageURL(tt.rel); got != tt.want {
			t.Errorf("pageURL(%q) = %q, want %q", tt.rel, got, tt.want)
		}
	}
}

func TestNaturalLess(t *testing.T) {
	tests := []struct {
		a, b string
		want bool
	}{
		{"file2", "file10", true},
		{"file10", "file2", false},
		{"alpha", "beta", true},
		{"page1a", "page1b", true},
		{"same", "same", false},
		{"short", "shorter", true},
		{"2 things", "10 things", true},
	}

	for _, tt := range tests {
		if got := naturalLess(tt.a, tt.b); got != tt.want {
			t.Errorf("naturalLess(%q, %q) = %v, want %v", tt.a, tt.b, got, tt.want)
		}
	}
}

func TestSplitFrontmatter(t *testing.T) {
	meta, body := splitFrontmatter([]byte("---\ntitle: Hello\ntags:\n  - plugin\n---\n# Body\n"))
	if meta["title"] != "Hello" {
		t.Errorf("meta[title] = %v, want Hello", meta["title"])
	}
	if tags := metaTags(meta); len(tags) != 1 || tags[0] != "plugin" {
		t.Errorf("metaTags() = %v, want [plugin]", tags)
	}
	if !strings.HasPrefix(string(body), "# Body") {
		t.Errorf("body = %q, frontmatter not stripped", body)
	}

	// no frontmatter: content passes through untouched
	meta, body = splitFrontmatter([]byte("# Plain\n"))
	if meta != nil {
		t.Errorf("meta = %v, want nil", meta)
	}
	if string(body) != "# Plain\n" {
		t.Errorf("body = %q, want unchanged", body)
	}
}

func TestRenderPage_MarkdownAndPlaceholder(t *testing.T) {
	docs := t.TempDir()
	writePage(t, docs, "index.md", "# Home\n\nSome *emphasis*.\n\n<div id=\"featured-image\"></div>\n")

	s := newTestService(docs, nil)
	page, err := s.GetPageInternal("/")
	if err != nil {
		t.Fatalf("GetPageInternal() error = %v", err)
	}

	html, err := s.RenderPageInternal(page)
	if err != nil {
		t.Fatalf("RenderPageInternal() error = %v", err)
	}

	if !strings.Contains(html, "<h1") {
		t.Error("rendered page missing h1")
	}
	if !strings.Contains(html, "<em>emphasis</em>") {
		t.Error("rendered page missing emphasis markup")
	}
	// raw HTML must pass through so the widget can find its render target
	if !strings.Contains(html, `<div id="featured-image"></div>`) {
		t.Error("placeholder element was escaped or dropped")
	}
}

func TestRenderPage_InfoboxInjected(t *testing.T) {
	docs := t.TempDir()
	writePage(t, docs, "plugin.md", "---\ntitle: My Plugin\ntagline: Does things\n---\n# My Plugin\n\nBody.\n")

	s := newTestService(docs, nil)
	page, err := s.GetPageInternal("/plugin/")
	if err != nil {
		t.Fatalf("GetPageInternal() error = %v", err)
	}

	html, err := s.RenderPageInternal(page)
	if err != nil {
		t.Fatalf("RenderPageInternal() error = %v", err)
	}

	if !strings.Contains(html, "<details") {
		t.Error("infobox not injected")
	}
	if strings.Index(html, "<details") < strings.Index(html, "</h1>") {
		t.Error("infobox injected before the first heading")
	}
}

func TestFeaturedWidget_FromConfig(t *testing.T) {
	s := newTestService(t.TempDir(), &config.Site{
		Title: "Test Docs",
		Featured: config.Featured{
			Group: "front",
			Width: 300,
			Images: []models.CatalogEntry{
				{Image: "/images/a.png", Caption: "A"},
				{Image: "/images/b.png", Caption: "B"},
			},
		},
		Lightbox: config.Lightbox{CloseEffect: "fade", SlideEffect: "slide"},
	})

	w, err := s.FeaturedWidgetInternal()
	if err != nil {
		t.Fatalf("FeaturedWidgetInternal() error = %v", err)
	}
	if w.Group() != "front" {
		t.Errorf("Group() = %q, want front", w.Group())
	}

	frag, err := w.Fragment()
	if err != nil {
		t.Fatalf("Fragment() error = %v", err)
	}
	if !strings.Contains(string(frag), `data-gallery="front"`) {
		t.Error("fragment missing configured gallery group")
	}
}
