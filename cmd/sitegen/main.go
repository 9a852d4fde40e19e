// Package main provides the entry point for the marketpulse site generator CLI.
package main

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"github.com/jonathan/marketpulse/internal/schemas"
)

var rootCmd = &cobra.Command{
	Use:   "sitegen",
	Short: "MarketPulse static site generator",
	Long:  "MarketPulse generates the AI job-board site from an item catalog: thin-content classification, related-item blocks, in-content auto-links and paginated listings.",
}

// resolveSchema picks the catalog schema: an explicit path wins, otherwise the
// bundled schema is located if present. Empty means schema validation is
// skipped.
func resolveSchema(explicit string) string {
	if explicit != "" {
		return explicit
	}
	return schemas.ResolveSchemaPath(schemas.ItemCatalogSchema)
}

func main() {
	// Load .env file if it exists
	_ = godotenv.Load()

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
