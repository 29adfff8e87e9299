package cmd

import (
	"fmt"
	"log"

	"github.com/spf13/cobra"

	"docs-gallery/pkg/services"
)

// newGenerateIndexesCmd creates a new command for regenerating index pages
func newGenerateIndexesCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "generate-indexes",
		Short: "Regenerate tagged index pages",
		Long: `Regenerate all configured index pages by scanning the docs tree for
tagged pages and splicing the grouped listings between the generated-content
markers in each output file.`,
		Run: func(cmd *cobra.Command, args []string) {
			cfg, err := LoadConfig()
			if err != nil {
				log.Fatalf("Failed to load configuration: %v", err)
			}
			services.InitService(cfg)

			written, err := services.GenerateIndexes()
			if err != nil {
				log.Fatalf("Failed to generate indexes: %v", err)
			}

			fmt.Printf("Generated %d index pages\n", written)
		},
	}
}
