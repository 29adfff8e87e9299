package services

import (
	"context"
	"errors"
	"log"
	"strings"
	"time"

	"cloud.google.com/go/storage"
	"github.com/patrickmn/go-cache"
	"google.golang.org/api/iterator"

	"docs-gallery/pkg/models"
)

// imageExtensions are the object suffixes treated as catalog images.
var imageExtensions = []string{".jpg", ".jpeg", ".png", ".webp", ".gif"}

// ResolveCatalogInternal returns the featured catalog. When a bucket is
// configured, image references matching bucket objects are replaced by
// 24-hour signed URLs; unmatched references pass through untouched.
func (s *Service) ResolveCatalogInternal() []models.CatalogEntry {
	catalog := s.config.Site.Featured.Images
	if s.config.BucketName == "" {
		return catalog
	}

	s.mu.RLock()
	if cached, found := s.imageCache.Get("catalog"); found {
		s.mu.RUnlock()
		log.Println("Using Cached Catalog")
		return cached.([]models.CatalogEntry)
	}
	s.mu.RUnlock()

	log.Println("Resolving Catalog Images")

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	storageClient, err := storage.NewClient(ctx)
	if err != nil {
		log.Printf("Failed to create storage client: %v", err)
		return catalog
	}
	defer storageClient.Close()

	bucket := storageClient.Bucket(s.config.BucketName)
	it := bucket.Objects(ctx, nil)
	objects := make(map[string]bool)

	// Iterate through files
	for {
		file, err := it.Next()
		if errors.Is(err, iterator.Done) {
			break
		}
		if err != nil {
			log.Printf("Error iterating objects: %v", err)
			continue
		}

		for _, ext := range imageExtensions {
			if strings.HasSuffix(file.Name, ext) {
				objects[file.Name] = true
				break
			}
		}
	}

	resolved := make([]models.CatalogEntry, len(catalog))
	for i, entry := range catalog {
		resolved[i] = entry
		if !objects[entry.Image] {
			continue
		}

		// Create a Signed 24-Hour URL
		signedURL, err := bucket.SignedURL(entry.Image, &storage.SignedURLOptions{
			Expires: time.Now().Add(24 * time.Hour),
			Method:  "GET",
		})
		if err != nil {
			log.Printf("Error creating signed URL for %s: %v", entry.Image, err)
			continue
		}
		resolved[i].Image = signedURL
	}

	s.mu.Lock()
	s.imageCache.Set("catalog", resolved, cache.DefaultExpiration)
	s.mu.Unlock()

	return resolved
}
