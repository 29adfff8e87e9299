package cmd

import (
	"fmt"
	"log"

	"github.com/spf13/cobra"

	"docs-gallery/pkg/services"
)

// newListPagesCmd creates a new command for listing documentation pages
func newListPagesCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "list-pages",
		Short: "List all documentation pages",
		Long:  `List all documentation pages organized by section with their site URLs.`,
		Run: func(cmd *cobra.Command, args []string) {
			cfg, err := LoadConfig()
			if err != nil {
				log.Fatalf("Failed to load configuration: %v", err)
			}
			services.InitService(cfg)
			listPages()
		},
	}
}

// listPages displays all pages and their sections
func listPages() {
	sections := services.GetSections()
	totalPages := 0

	fmt.Println("Documentation Pages:")
	fmt.Println("===================")

	for _, section := range sections {
		fmt.Printf("Section: %s\n", section.Title)

		for _, page := range section.Pages {
			fmt.Printf("  - %s\n", page.Title)
			fmt.Printf("    URL: %s\n", page.URL)
			if len(page.Tags) > 0 {
				fmt.Printf("    Tags: %v\n", page.Tags)
			}
			totalPages++
		}

		fmt.Println()
	}

	fmt.Printf("Total: %d pages across %d sections\n", totalPages, len(sections))
}
