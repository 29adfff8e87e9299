package cmd

import (
	"fmt"
	"log"

	"github.com/spf13/cobra"

	"docs-gallery/pkg/services"
)

// newShowCatalogCmd creates a new command for showing the featured catalog
func newShowCatalogCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "show-catalog",
		Short: "Show the featured-image catalog",
		Long: `Show the featured-image catalog entries with their resolved image
references. When a bucket is configured the references are signed URLs.`,
		Run: func(cmd *cobra.Command, args []string) {
			cfg, err := LoadConfig()
			if err != nil {
				log.Fatalf("Failed to load configuration: %v", err)
			}
			services.InitService(cfg)
			showCatalog()
		},
	}
}

// showCatalog displays the featured catalog entries
func showCatalog() {
	catalog := services.ResolveCatalog()

	fmt.Printf("Featured Catalog: %d entries\n", len(catalog))
	fmt.Println("================")

	for i, entry := range catalog {
		fmt.Printf("%d. %s\n", i+1, entry.Caption)
		fmt.Printf("   Image: %s\n", entry.Image)
		fmt.Println()
	}
}
