package services

import (
	"bytes"
	"fmt"
	"io/fs"
	"log"
	"os"
	"path"
	"path/filepath"
	"regexp"
	"sort"
	"strconv"
	"strings"
	"unicode"

	"github.com/patrickmn/go-cache"
	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/extension"
	goldmarkhtml "github.com/yuin/goldmark/renderer/html"
	"gopkg.in/yaml.v3"

	"docs-gallery/pkg/models"
)

// markdown converts page bodies to HTML. Raw HTML passes through unchanged
// so pages can embed the widget placeholder and caption markup.
var markdown = goldmark.New(
	goldmark.WithExtensions(extension.GFM),
	goldmark.WithRendererOptions(goldmarkhtml.WithUnsafe()),
)

// h1Pattern matches the first ATX H1 of a markdown body.
var h1Pattern = regexp.MustCompile(`(?m)^#\s+(.+?)\s*$`)

// naturalLess compares strings treating digit runs as numbers, so
// "page2" sorts before "page10"
func naturalLess(s1, s2 string) bool {
	for len(s1) > 0 && len(s2) > 0 {
		if unicode.IsDigit(rune(s1[0])) && unicode.IsDigit(rune(s2[0])) {
			n1, rest1 := takeNumber(s1)
			n2, rest2 := takeNumber(s2)
			if n1 != n2 {
				return n1 < n2
			}
			s1, s2 = rest1, rest2
			continue
		}
		if s1[0] != s2[0] {
			return s1[0] < s2[0]
		}
		s1, s2 = s1[1:], s2[1:]
	}
	return len(s1) < len(s2)
}

// takeNumber splits a leading digit run off a string.
func takeNumber(s string) (int, string) {
	i := 0
	for i < len(s) && unicode.IsDigit(rune(s[i])) {
		i++
	}
	n, _ := strconv.Atoi(s[:i])
	return n, s[i:]
}

// splitFrontmatter separates a YAML frontmatter block from the body.
// Content without a leading "---" line has no frontmatter.
func splitFrontmatter(content []byte) (map[string]any, []byte) {
	text := strings.ReplaceAll(string(content), "\r\n", "\n")
	if !strings.HasPrefix(text, "---\n") {
		return nil, []byte(text)
	}

	rest := text[len("---\n"):]
	end := strings.Index(rest, "\n---")
	if end == -1 {
		return nil, []byte(text)
	}

	var meta map[string]any
	if err := yaml.Unmarshal([]byte(rest[:end]), &meta); err != nil {
		return nil, []byte(text)
	}

	body := rest[end+len("\n---"):]
	body = strings.TrimPrefix(body, "\n")
	return meta, []byte(body)
}

// metaTags extracts the frontmatter tag list, tolerating single strings.
func metaTags(meta map[string]any) []string {
	raw, ok := meta["tags"]
	if !ok {
		return nil
	}

	switch v := raw.(type) {
	case string:
		return []string{v}
	case []any:
		tags := make([]string, 0, len(v))
		for _, item := range v {
			if s, ok := item.(string); ok {
				tags = append(tags, s)
			}
		}
		return tags
	}
	return nil
}

// pageURL derives the site URL for a markdown file path relative to the
// docs dir. Index and readme files collapse to their directory URL.
func pageURL(rel string) string {
	rel = filepath.ToSlash(rel)
	base := strings.ToLower(path.Base(rel))

	if base == "index.md" || base == "readme.md" {
		dir := path.Dir(rel)
		if dir == "." {
			return "/"
		}
		return "/" + dir + "/"
	}
	return "/" + strings.TrimSuffix(rel, ".md") + "/"
}

// pageTitle picks the page title: frontmatter first, then the first H1,
// then the file name.
func pageTitle(meta map[string]any, body []byte, rel string) string {
	if t, ok := meta["title"].(string); ok && t != "" {
		return t
	}
	if m := h1Pattern.FindSubmatch(body); m != nil {
		return string(m[1])
	}

	name := strings.TrimSuffix(filepath.Base(rel), ".md")
	return titleCase(strings.NewReplacer("-", " ", "_", " ").Replace(name))
}

// titleCase uppercases the first letter of each space-separated word.
func titleCase(s string) string {
	words := strings.Fields(s)
	for i, word := range words {
		r := []rune(word)
		r[0] = unicode.ToUpper(r[0])
		words[i] = string(r)
	}
	return strings.Join(words, " ")
}

// GetPagesInternal returns all documentation pages under the docs dir
func (s *Service) GetPagesInternal() []models.Page {
	s.mu.RLock()
	if cached, found := s.pageCache.Get("pages"); found {
		s.mu.RUnlock()
		log.Println("Using Cached Pages")
		return cached.([]models.Page)
	}
	s.mu.RUnlock()

	log.Println("Scanning Pages")

	var pages []models.Page
	root := s.config.DocsDir

	err := filepath.WalkDir(root, func(p string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() || !strings.HasSuffix(d.Name(), ".md") {
			return nil
		}

		content, err := os.ReadFile(p)
		if err != nil {
			log.Printf("Error reading page %s: %v", p, err)
			return nil
		}

		rel, err := filepath.Rel(root, p)
		if err != nil {
			return err
		}

		meta, body := splitFrontmatter(content)
		pages = append(pages, models.Page{
			Title: pageTitle(meta, body, rel),
			Path:  p,
			URL:   pageURL(rel),
			Tags:  metaTags(meta),
			Meta:  meta,
		})
		return nil
	})
	if err != nil {
		log.Printf("Error scanning docs dir: %v", err)
		return []models.Page{}
	}

	// Natural sort keeps numbered pages in reading order
	sort.Slice(pages, func(i, j int) bool {
		return naturalLess(pages[i].Title, pages[j].Title)
	})

	for i := range pages {
		pages[i].Section = s.sectionTitle(pages[i])
	}

	s.mu.Lock()
	s.pageCache.Set("pages", pages, cache.DefaultExpiration)
	s.mu.Unlock()

	return pages
}

// GetPageInternal returns a page by its site URL
func (s *Service) GetPageInternal(url string) (models.Page, error) {
	for _, page := range s.GetPagesInternal() {
		if page.URL == url {
			return page, nil
		}
	}
	return models.Page{}, fmt.Errorf("page not found: %s", url)
}

// GetSectionsInternal returns all pages grouped by section
func (s *Service) GetSectionsInternal() []models.Section {
	pages := s.GetPagesInternal()
	sectionMap := make(map[string]*models.Section)

	for _, page := range pages {
		if sec, exists := sectionMap[page.Section]; exists {
			sec.Pages = append(sec.Pages, page)
		} else {
			sectionMap[page.Section] = &models.Section{
				Title: page.Section,
				Pages: []models.Page{page},
			}
		}
	}

	sections := make([]models.Section, 0, len(sectionMap))
	for _, section := range sectionMap {
		sections = append(sections, *section)
	}

	sort.Slice(sections, func(i, j int) bool {
		return naturalLess(sections[i].Title, sections[j].Title)
	})

	return sections
}

// sectionTitle determines a page's section: the H1 of its directory's
// index or readme page, falling back to the directory name.
func (s *Service) sectionTitle(page models.Page) string {
	dir := filepath.Dir(page.Path)

	for _, name := range []string{"README.md", "index.md"} {
		content, err := os.ReadFile(filepath.Join(dir, name))
		if err != nil {
			continue
		}
		_, body := splitFrontmatter(content)
		if m := h1Pattern.FindSubmatch(body); m != nil {
			return string(m[1])
		}
	}

	if dir == s.config.DocsDir || dir == "." {
		return s.config.Site.Title
	}
	return titleCase(strings.NewReplacer("-", " ", "_", " ").Replace(filepath.Base(dir)))
}

// RenderPageInternal renders a page's markdown content to HTML, with the
// frontmatter infobox injected after the first heading when metadata exists
func (s *Service) RenderPageInternal(page models.Page) (string, error) {
	cacheKey := "render:" + page.Path

	s.mu.RLock()
	if cached, found := s.pageCache.Get(cacheKey); found {
		s.mu.RUnlock()
		return cached.(string), nil
	}
	s.mu.RUnlock()

	content, err := os.ReadFile(page.Path)
	if err != nil {
		return "", fmt.Errorf("failed to read page %s: %w", page.Path, err)
	}

	_, body := splitFrontmatter(content)

	var buf bytes.Buffer
	if err := markdown.Convert(body, &buf); err != nil {
		return "", fmt.Errorf("failed to render page %s: %w", page.Path, err)
	}

	html := InjectInfobox(buf.String(), page.Title, page.Meta)

	s.mu.Lock()
	s.pageCache.Set(cacheKey, html, cache.DefaultExpiration)
	s.mu.Unlock()

	return html, nil
}
