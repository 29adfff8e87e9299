package cmd

import (
	"encoding/json"
	"fmt"
	"log"
	"os"

	"github.com/spf13/cobra"

	"docs-gallery/pkg/models"
	"docs-gallery/pkg/services"
)

// newExportCmd creates a new command for exporting site data
func newExportCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "export [format]",
		Short: "Export site data",
		Long:  `Export the page listing and featured catalog in the specified format. Currently supported formats: json.`,
		Args:  cobra.MaximumNArgs(1),
		Run: func(cmd *cobra.Command, args []string) {
			cfg, err := LoadConfig()
			if err != nil {
				log.Fatalf("Failed to load configuration: %v", err)
			}
			services.InitService(cfg)

			format := "json"
			if len(args) > 0 {
				format = args[0]
			}
			exportData(format)
		},
	}
}

// exportData exports site data in the specified format
func exportData(format string) {
	if format != "json" {
		fmt.Printf("Unsupported export format: %s\n", format)
		fmt.Println("Supported formats: json")
		os.Exit(1)
	}

	feed := models.Feed{
		Title:   services.SiteTitle(),
		Pages:   services.GetPages(),
		Catalog: services.ResolveCatalog(),
	}

	data, err := json.MarshalIndent(feed, "", "  ")
	if err != nil {
		fmt.Printf("Error marshaling data: %v\n", err)
		os.Exit(1)
	}

	fmt.Println(string(data))
}
