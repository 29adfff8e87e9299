package services

import (
	"fmt"
	"log"
	"os"
	"path/filepath"
	"regexp"
	"sort"
	"strings"

	"docs-gallery/pkg/config"
	"docs-gallery/pkg/models"
)

// generatedComment warns editors away from the spliced block.
const generatedComment = "<!-- Content between these markers is automatically generated. Do not edit this section manually. -->"

// indexMarkers returns the begin/end markers for a tag's generated block.
func indexMarkers(tag string) (string, string) {
	upper := strings.ToUpper(tag)
	return fmt.Sprintf("<!-- BEGIN GENERATED %s -->", upper),
		fmt.Sprintf("<!-- END GENERATED %s -->", upper)
}

// GenerateIndexesInternal regenerates all configured index pages and
// returns the number of files written
func (s *Service) GenerateIndexesInternal() (int, error) {
	written := 0

	for _, idx := range s.config.Site.Indexes {
		log.Printf("Generating index for tag %q -> %s", idx.Tag, idx.Output)

		if err := s.writeIndex(idx); err != nil {
			return written, fmt.Errorf("index %q: %w", idx.Tag, err)
		}
		written++
	}

	return written, nil
}

// writeIndex builds one index listing and splices it into the output file.
func (s *Service) writeIndex(idx config.Index) error {
	tagged := s.taggedPages(idx.Tag)
	outputPath := filepath.Join(s.config.DocsDir, idx.Output)

	var content string
	if len(tagged) == 0 {
		content = fmt.Sprintf("No %s pages found to index.", idx.Tag)
	} else {
		content = s.indexListing(tagged, outputPath)
	}

	start, end := indexMarkers(idx.Tag)
	existing, err := os.ReadFile(outputPath)
	if err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("failed to read %s: %w", outputPath, err)
	}

	final := SpliceGenerated(string(existing), content, start, end)

	if err := os.MkdirAll(filepath.Dir(outputPath), 0o755); err != nil {
		return fmt.Errorf("failed to create %s: %w", filepath.Dir(outputPath), err)
	}
	if err := os.WriteFile(outputPath, []byte(final), 0o644); err != nil {
		return fmt.Errorf("failed to write %s: %w", outputPath, err)
	}

	return nil
}

// taggedPages returns pages carrying the given frontmatter tag.
func (s *Service) taggedPages(tag string) []models.Page {
	var tagged []models.Page

	for _, page := range s.GetPagesInternal() {
		for _, t := range page.Tags {
			if strings.EqualFold(t, tag) {
				tagged = append(tagged, page)
				break
			}
		}
	}

	return tagged
}

// indexListing renders the grouped markdown listing for an index page.
// Sections and their entries both use natural title order; entry links are
// relative to the output file so the listing survives directory moves.
func (s *Service) indexListing(pages []models.Page, outputPath string) string {
	sections := make(map[string][]models.Page)
	for _, page := range pages {
		sections[page.Section] = append(sections[page.Section], page)
	}

	titles := make([]string, 0, len(sections))
	for title := range sections {
		titles = append(titles, title)
	}
	sort.Slice(titles, func(i, j int) bool {
		return naturalLess(titles[i], titles[j])
	})

	outputDir := filepath.Dir(outputPath)

	var parts []string
	for _, title := range titles {
		if len(parts) > 0 {
			parts = append(parts, "")
		}
		parts = append(parts, fmt.Sprintf("## %s", title))

		entries := sections[title]
		sort.Slice(entries, func(i, j int) bool {
			return naturalLess(entries[i].Title, entries[j].Title)
		})

		for _, page := range entries {
			link, err := filepath.Rel(outputDir, page.Path)
			if err != nil {
				link = page.URL
			}
			parts = append(parts, fmt.Sprintf("### [%s](%s)", page.Title, filepath.ToSlash(link)))
		}
	}

	return strings.Join(parts, "\n")
}

// SpliceGenerated replaces the block between the start and end markers with
// freshly generated content, leaving everything outside the markers intact.
// Files without markers get the block appended; empty files become the block.
func SpliceGenerated(existing, content, start, end string) string {
	block := start + "\n" + generatedComment
	if strings.TrimSpace(content) != "" {
		block += "\n" + strings.TrimSpace(content)
	}
	block += "\n" + end

	markerPattern := regexp.MustCompile(regexp.QuoteMeta(start) + `(?s).*?` + regexp.QuoteMeta(end))

	if loc := markerPattern.FindStringIndex(existing); loc != nil {
		return existing[:loc[0]] + block + existing[loc[1]:]
	}

	if strings.TrimSpace(existing) == "" {
		return block + "\n"
	}
	return strings.TrimRight(existing, "\n") + "\n\n" + block + "\n"
}
