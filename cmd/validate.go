package cmd

import (
	"fmt"
	"log"

	"github.com/spf13/cobra"
)

// newValidateCmd creates a new command for validating the site configuration
func newValidateCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "validate",
		Short: "Validate the site configuration",
		Long: `Validate the site configuration file. This is the build-time gate that
rejects configurations the widget cannot render, such as an empty featured
catalog.`,
		Run: func(cmd *cobra.Command, args []string) {
			cfg, err := LoadConfig()
			if err != nil {
				log.Fatalf("Invalid configuration: %v", err)
			}

			fmt.Printf("Configuration OK: %s\n", cfg.SiteFile)
			fmt.Printf("  Title: %s\n", cfg.Site.Title)
			fmt.Printf("  Featured images: %d\n", len(cfg.Site.Featured.Images))
			fmt.Printf("  Index pages: %d\n", len(cfg.Site.Indexes))
		},
	}
}
