package config

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestParseSite_MinimalConfig(t *testing.T) {
	yaml := `
featured:
  images:
    - image: /images/one.png
      caption: One
`
	site, err := ParseSite([]byte(yaml))
	if err != nil {
		t.Fatalf("ParseSite() error = %v", err)
	}

	// check defaults applied
	if site.Title != "Documentation" {
		t.Errorf("Title = %q, want Documentation", site.Title)
	}
	if site.Featured.Width != 300 {
		t.Errorf("Featured.Width = %d, want 300", site.Featured.Width)
	}
	if site.Lightbox.CloseEffect != "fade" {
		t.Errorf("Lightbox.CloseEffect = %q, want fade", site.Lightbox.CloseEffect)
	}
	if site.Lightbox.SlideEffect != "slide" {
		t.Errorf("Lightbox.SlideEffect = %q, want slide", site.Lightbox.SlideEffect)
	}
	if !site.Lightbox.LoopEnabled() {
		t.Error("LoopEnabled() = false, want true by default")
	}
	if !site.Lightbox.TouchEnabled() {
		t.Error("TouchEnabled() = false, want true by default")
	}
}

func TestParseSite_FullConfig(t *testing.T) {
	yaml := `
title: Example Docs
featured:
  group: showcase
  width: 480
  images:
    - image: /images/one.png
      caption: The <em>first</em> image
    - image: /images/two.png
      caption: The second image
lightbox:
  loop: false
  touch_navigation: false
  close_effect: zoom
  slide_effect: fade
indexes:
  - tag: command
    output: commands/index.md
`
	site, err := ParseSite([]byte(yaml))
	if err != nil {
		t.Fatalf("ParseSite() error = %v", err)
	}

	if site.Title != "Example Docs" {
		t.Errorf("Title = %q, want Example Docs", site.Title)
	}
	if site.Featured.Group != "showcase" {
		t.Errorf("Featured.Group = %q, want showcase", site.Featured.Group)
	}
	if site.Featured.Width != 480 {
		t.Errorf("Featured.Width = %d, want 480", site.Featured.Width)
	}
	if len(site.Featured.Images) != 2 {
		t.Fatalf("len(Featured.Images) = %d, want 2", len(site.Featured.Images))
	}
	if site.Featured.Images[0].Caption != "The <em>first</em> image" {
		t.Errorf("Images[0].Caption = %q, caption markup should survive parsing", site.Featured.Images[0].Caption)
	}
	if site.Lightbox.LoopEnabled() {
		t.Error("LoopEnabled() = true, want false")
	}
	if site.Lightbox.TouchEnabled() {
		t.Error("TouchEnabled() = true, want false")
	}
	if site.Lightbox.CloseEffect != "zoom" {
		t.Errorf("Lightbox.CloseEffect = %q, want zoom", site.Lightbox.CloseEffect)
	}
	if len(site.Indexes) != 1 || site.Indexes[0].Tag != "command" {
		t.Errorf("Indexes = %+v, want one command index", site.Indexes)
	}
}

func TestParseSite_EmptyCatalog(t *testing.T) {
	tests := []struct {
		name string
		yaml string
	}{
		{"no featured block", `title: Docs`},
		{"empty images list", "featured:\n  images: []"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ParseSite([]byte(tt.yaml))
			if !errors.Is(err, ErrEmptyCatalog) {
				t.Errorf("ParseSite() error = %v, want ErrEmptyCatalog", err)
			}
		})
	}
}

func TestParseSite_ValidationErrors(t *testing.T) {
	tests := []struct {
		name        string
		yaml        string
		wantErrLike string
	}{
		{
			name: "entry missing image",
			yaml: `
featured:
  images:
    - caption: Orphan caption
`,
			wantErrLike: "featured.images[0]: image is required",
		},
		{
			name: "entry missing caption",
			yaml: `
featured:
  images:
    - image: /images/one.png
`,
			wantErrLike: "caption is required",
		},
		{
			name: "negative width",
			yaml: `
featured:
  width: -10
  images:
    - image: /images/one.png
      caption: One
`,
			wantErrLike: "featured.width cannot be negative",
		},
		{
			name: "index missing tag",
			yaml: `
featured:
  images:
    - image: /images/one.png
      caption: One
indexes:
  - output: commands/index.md
`,
			wantErrLike: "indexes[0]: tag is required",
		},
		{
			name: "index missing output",
			yaml: `
featured:
  images:
    - image: /images/one.png
      caption: One
indexes:
  - tag: command
`,
			wantErrLike: "output is required",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ParseSite([]byte(tt.yaml))
			if err == nil {
				t.Fatal("ParseSite() expected error, got nil")
			}
			if !strings.Contains(err.Error(), tt.wantErrLike) {
				t.Errorf("error = %q, want to contain %q", err.Error(), tt.wantErrLike)
			}
		})
	}
}

func TestParseSite_InvalidYAML(t *testing.T) {
	yaml := `
this is not: valid: yaml: at all
  - broken
`
	_, err := ParseSite([]byte(yaml))
	if err == nil {
		t.Fatal("ParseSite() expected error for invalid YAML, got nil")
	}
}

func TestLoad_Defaults(t *testing.T) {
	siteFile := filepath.Join(t.TempDir(), "site.yml")
	yaml := `
featured:
  images:
    - image: /images/one.png
      caption: One
`
	if err := os.WriteFile(siteFile, []byte(yaml), 0o644); err != nil {
		t.Fatal(err)
	}

	t.Setenv("SITE_FILE", siteFile)
	t.Setenv("DOCS_DIR", "")
	t.Setenv("PORT", "")
	t.Setenv("BUCKET_NAME", "")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}

	if cfg.DocsDir != "docs" {
		t.Errorf("DocsDir = %q, want docs", cfg.DocsDir)
	}
	if cfg.Port != "8080" {
		t.Errorf("Port = %q, want 8080", cfg.Port)
	}
	if cfg.ServerAddress() != ":8080" {
		t.Errorf("ServerAddress() = %q, want :8080", cfg.ServerAddress())
	}
	if cfg.Site == nil || len(cfg.Site.Featured.Images) != 1 {
		t.Errorf("Site not loaded: %+v", cfg.Site)
	}
}

func TestLoad_MissingSiteFile(t *testing.T) {
	t.Setenv("SITE_FILE", filepath.Join(t.TempDir(), "absent.yml"))

	_, err := Load()
	if !errors.Is(err, ErrSiteFileNotSet) {
		t.Fatalf("Load() error = %v, want ErrSiteFileNotSet", err)
	}
}
