package config

import (
	"errors"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"docs-gallery/pkg/models"
)

// Config holds all configuration for the application
type Config struct {
	SiteFile   string
	DocsDir    string
	BucketName string
	Port       string

	Site *Site
}

// ErrSiteFileNotSet is returned when no site file exists at the configured path
var ErrSiteFileNotSet = errors.New("site file not found (set SITE_FILE or create site.yml)")

// ErrEmptyCatalog is returned when the featured catalog has no entries.
// An empty catalog makes random selection undefined, so it is rejected at
// load time rather than at render time.
var ErrEmptyCatalog = errors.New("featured catalog must contain at least one image")

// Site is the root structure of the YAML site file.
type Site struct {
	// Title is the site title shown in views. Defaults to "Documentation".
	Title string `yaml:"title"`

	// Featured configures the front-page featured-image widget.
	Featured Featured `yaml:"featured"`

	// Lightbox configures the lightbox controller activation.
	Lightbox Lightbox `yaml:"lightbox"`

	// Indexes defines generated index pages (tag scan -> output file).
	Indexes []Index `yaml:"indexes"`
}

// Featured configures the featured-image catalog.
type Featured struct {
	// Group is the lightbox gallery-group identifier. When empty the widget
	// generates a unique group per instance.
	Group string `yaml:"group"`

	// Width is the display width of the visible image in pixels. Defaults to 300.
	Width int `yaml:"width"`

	// Images is the ordered catalog of image/caption pairs. Must not be empty.
	Images []models.CatalogEntry `yaml:"images"`
}

// Lightbox mirrors the lightbox controller options.
type Lightbox struct {
	Loop            *bool  `yaml:"loop"`
	TouchNavigation *bool  `yaml:"touch_navigation"`
	CloseEffect     string `yaml:"close_effect"`
	SlideEffect     string `yaml:"slide_effect"`
}

// Index defines one generated index page.
type Index struct {
	// Tag selects pages whose frontmatter tags include this value.
	Tag string `yaml:"tag"`

	// Output is the index file path, relative to the docs dir.
	Output string `yaml:"output"`
}

// Load loads configuration from environment variables and the site file
func Load() (*Config, error) {
	siteFile := os.Getenv("SITE_FILE")
	if siteFile == "" {
		siteFile = "site.yml"
	}

	docsDir := os.Getenv("DOCS_DIR")
	if docsDir == "" {
		docsDir = "docs"
	}

	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}

	data, err := os.ReadFile(siteFile)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, ErrSiteFileNotSet
		}
		return nil, fmt.Errorf("failed to read site file: %w", err)
	}

	site, err := ParseSite(data)
	if err != nil {
		return nil, err
	}

	return &Config{
		SiteFile:   siteFile,
		DocsDir:    docsDir,
		BucketName: os.Getenv("BUCKET_NAME"),
		Port:       port,
		Site:       site,
	}, nil
}

// ParseSite parses and validates the YAML site file.
//
// Defaults are applied for Title ("Documentation"), Featured.Width (300) and
// the lightbox options (loop, touch navigation, fade close, slide advance).
func ParseSite(data []byte) (*Site, error) {
	var site Site
	if err := yaml.Unmarshal(data, &site); err != nil {
		return nil, fmt.Errorf("failed to parse site file: %w", err)
	}

	if site.Title == "" {
		site.Title = "Documentation"
	}
	if site.Featured.Width == 0 {
		site.Featured.Width = 300
	}
	if site.Lightbox.CloseEffect == "" {
		site.Lightbox.CloseEffect = "fade"
	}
	if site.Lightbox.SlideEffect == "" {
		site.Lightbox.SlideEffect = "slide"
	}

	if err := site.validate(); err != nil {
		return nil, err
	}

	return &site, nil
}

// validate rejects configurations the widget cannot render.
func (s *Site) validate() error {
	if len(s.Featured.Images) == 0 {
		return ErrEmptyCatalog
	}

	for i, entry := range s.Featured.Images {
		if entry.Image == "" {
			return fmt.Errorf("featured.images[%d]: image is required", i)
		}
		if entry.Caption == "" {
			return fmt.Errorf("featured.images[%d] (%s): caption is required", i, entry.Image)
		}
	}

	if s.Featured.Width < 0 {
		return fmt.Errorf("featured.width cannot be negative, got %d", s.Featured.Width)
	}

	for i, idx := range s.Indexes {
		if idx.Tag == "" {
			return fmt.Errorf("indexes[%d]: tag is required", i)
		}
		if idx.Output == "" {
			return fmt.Errorf("indexes[%d] (%s): output is required", i, idx.Tag)
		}
	}

	return nil
}

// LoopEnabled returns the loop option, defaulting to true.
func (l Lightbox) LoopEnabled() bool {
	return l.Loop == nil || *l.Loop
}

// TouchEnabled returns the touch navigation option, defaulting to true.
func (l Lightbox) TouchEnabled() bool {
	return l.TouchNavigation == nil || *l.TouchNavigation
}

// ServerAddress returns the server address with port
func (c *Config) ServerAddress() string {
	return fmt.Sprintf(":%s", c.Port)
}

// PrintServerStartMessage prints a message when the server starts
func (c *Config) PrintServerStartMessage() {
	fmt.Printf("Starting server at port %s\n", c.Port)
	fmt.Printf("Site URL: http://localhost:%s/\n", c.Port)
	fmt.Printf("Feed URL: http://localhost:%s/feed\n", c.Port)
}
