package services

import (
	"sync"
	"time"

	"github.com/patrickmn/go-cache"

	"docs-gallery/pkg/config"
	"docs-gallery/pkg/models"
	"docs-gallery/pkg/widget"
)

// Service handles operations related to documentation pages and the
// featured-image catalog
type Service struct {
	config     *config.Config
	pageCache  *cache.Cache
	imageCache *cache.Cache
	mu         sync.RWMutex
}

var (
	// defaultService is the singleton instance of Service
	defaultService *Service
	once           sync.Once
)

// InitService initializes the service with the given configuration
func InitService(cfg *config.Config) {
	once.Do(func() {
		defaultService = &Service{
			config:     cfg,
			pageCache:  cache.New(5*time.Minute, 10*time.Minute),
			imageCache: cache.New(5*time.Minute, 10*time.Minute),
		}
	})
}

// SiteTitle returns the configured site title
func SiteTitle() string {
	return defaultService.config.Site.Title
}

// GetPages returns all documentation pages under the docs dir
func GetPages() []models.Page {
	return defaultService.GetPagesInternal()
}

// GetPage returns a page by its site URL
func GetPage(url string) (models.Page, error) {
	return defaultService.GetPageInternal(url)
}

// GetSections returns all pages grouped by section
func GetSections() []models.Section {
	return defaultService.GetSectionsInternal()
}

// RenderPage renders a page's markdown content to HTML
func RenderPage(page models.Page) (string, error) {
	return defaultService.RenderPageInternal(page)
}

// ResolveCatalog returns the featured catalog with image references
// resolved against the storage bucket when one is configured
func ResolveCatalog() []models.CatalogEntry {
	return defaultService.ResolveCatalogInternal()
}

// FeaturedWidget builds the featured-image widget from the site configuration
func FeaturedWidget() (*widget.Widget, error) {
	return defaultService.FeaturedWidgetInternal()
}

// GenerateIndexes regenerates all configured index pages and returns the
// number of pages written
func GenerateIndexes() (int, error) {
	return defaultService.GenerateIndexesInternal()
}

// FeaturedWidgetInternal builds the featured-image widget from the site
// configuration. The widget itself re-validates the catalog, but config
// loading already rejects an empty one.
func (s *Service) FeaturedWidgetInternal() (*widget.Widget, error) {
	site := s.config.Site

	return widget.New(s.ResolveCatalogInternal(),
		widget.WithGroup(site.Featured.Group),
		widget.WithWidth(site.Featured.Width),
		widget.WithOptions(widget.Options{
			Loop:            site.Lightbox.LoopEnabled(),
			TouchNavigation: site.Lightbox.TouchEnabled(),
			CloseEffect:     site.Lightbox.CloseEffect,
			SlideEffect:     site.Lightbox.SlideEffect,
		}),
	)
}
