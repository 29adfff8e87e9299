package cmd

import (
	"github.com/spf13/cobra"
	"os"

	"docs-gallery/pkg/config"
)

// Configuration flags
var (
	siteFile   string
	docsDir    string
	bucketName string
	portNumber string
)

// NewRootCmd creates and returns the root command
func NewRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "docs-gallery",
		Short: "Docs Gallery is a tool for managing and serving a documentation site",
		Long: `Docs Gallery is a command line application that serves a Markdown documentation
site with a featured-image gallery on the front page. It can also regenerate
the site's tagged index pages and validate the site configuration.`,
	}

	// Define persistent flags that will be available for all commands
	rootCmd.PersistentFlags().StringVarP(&siteFile, "site", "s", "", "Set the SITE_FILE (overrides environment variable)")
	rootCmd.PersistentFlags().StringVarP(&docsDir, "docs-dir", "d", "", "Set the DOCS_DIR (overrides environment variable)")
	rootCmd.PersistentFlags().StringVarP(&bucketName, "bucket", "b", "", "Set the BUCKET_NAME (overrides environment variable)")
	rootCmd.PersistentFlags().StringVarP(&portNumber, "port", "p", "", "Set the PORT (overrides environment variable)")

	// Add commands to root
	rootCmd.AddCommand(newListPagesCmd())
	rootCmd.AddCommand(newShowCatalogCmd())
	rootCmd.AddCommand(newExportCmd())
	rootCmd.AddCommand(newServeCmd())
	rootCmd.AddCommand(newGenerateIndexesCmd())
	rootCmd.AddCommand(newValidateCmd())

	return rootCmd
}

// LoadConfig loads configuration with respect to command line flags
func LoadConfig() (*config.Config, error) {
	// Set environment variables from flags if provided
	if siteFile != "" {
		os.Setenv("SITE_FILE", siteFile)
	}

	if docsDir != "" {
		os.Setenv("DOCS_DIR", docsDir)
	}

	if bucketName != "" {
		os.Setenv("BUCKET_NAME", bucketName)
	}

	if portNumber != "" {
		os.Setenv("PORT", portNumber)
	}

	// Load configuration from environment variables (potentially set above)
	return config.Load()
}
