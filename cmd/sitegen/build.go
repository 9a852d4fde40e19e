package main

import (
	"context"
	"encoding/xml"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/jonathan/marketpulse/internal/catalog"
	"github.com/jonathan/marketpulse/internal/config"
	"github.com/jonathan/marketpulse/internal/db"
	"github.com/jonathan/marketpulse/internal/indexing"
	"github.com/jonathan/marketpulse/internal/observability"
	"github.com/jonathan/marketpulse/internal/pipeline"
	"github.com/jonathan/marketpulse/internal/seoaudit"
	"github.com/jonathan/marketpulse/internal/types"
)

var buildCommand = &cobra.Command{
	Use:   "build",
	Short: "Generate the full site from the item catalog",
	Long: `Runs the whole generation pipeline over every catalog item: thin-content classification, related-item selection and in-content auto-linking.

Configuration can be loaded from a JSON file using --config. Command-line arguments override config file values.`,
	RunE: runBuildCmd,
}

var (
	buildConfigPath  string
	buildCatalog     string
	buildSchema      string
	buildOutDir      string
	buildNumRelated  int
	buildMaxLinks    int
	buildWorkers     int
	buildAudit       bool
	buildFromDB      bool
	buildVerbose     bool
	buildDatabaseURL string
)

func init() {
	// Config file flag (processed first)
	buildCommand.Flags().StringVar(&buildConfigPath, "config", "", "Path to config.json file (values can be overridden by other flags)")

	buildCommand.Flags().StringVarP(&buildCatalog, "catalog", "c", "", "Path to the item catalog JSON file")
	buildCommand.Flags().StringVar(&buildSchema, "schema", "", "Path to the catalog JSON schema (empty skips schema validation)")
	buildCommand.Flags().StringVarP(&buildOutDir, "out", "o", "", "Output directory for generated pages (empty skips writing files)")
	buildCommand.Flags().IntVar(&buildNumRelated, "num-related", 0, "Related items per page")
	buildCommand.Flags().IntVar(&buildMaxLinks, "max-links", 0, "Auto-link budget per page")
	buildCommand.Flags().IntVar(&buildWorkers, "workers", 0, "Concurrent page workers")
	buildCommand.Flags().BoolVar(&buildAudit, "audit", false, "Run the SEO quality audit on every page")
	buildCommand.Flags().BoolVar(&buildFromDB, "from-db", false, "Load the catalog from the database instead of a file")
	buildCommand.Flags().BoolVarP(&buildVerbose, "verbose", "v", false, "Print detailed debug information")

	// Database URL for catalog loading and run history
	buildCommand.Flags().StringVar(&buildDatabaseURL, "db-url", "", "PostgreSQL connection URL (optional, defaults to DATABASE_URL env var)")

	rootCmd.AddCommand(buildCommand)
}

func runBuildCmd(cmd *cobra.Command, _ []string) error {
	ctx := context.Background()

	cfg, err := loadBuildConfig(cmd, buildConfigPath)
	if err != nil {
		return err
	}

	if cfg.DatabaseURL == "" {
		cfg.DatabaseURL = os.Getenv("DATABASE_URL")
	}
	if !buildFromDB && cfg.Catalog == "" {
		return fmt.Errorf("either --catalog or --from-db must be provided (via flag or config)")
	}
	if buildFromDB && cfg.DatabaseURL == "" {
		return fmt.Errorf("--from-db requires DATABASE_URL environment variable or --db-url flag")
	}

	logger, err := newLogger(cfg.Verbose)
	if err != nil {
		return fmt.Errorf("failed to initialize logger: %w", err)
	}
	defer func() { _ = logger.Sync() }()

	cat, err := loadCatalog(ctx, cfg)
	if err != nil {
		return err
	}

	report, err := pipeline.RunBuild(ctx, cat, pipeline.BuildOptions{
		CatalogPath: cfg.Catalog,
		Policy:      cfg.Policy(),
		NumRelated:  cfg.NumRelated,
		MaxLinks:    cfg.MaxLinks,
		PageSize:    cfg.PageSize,
		Workers:     cfg.Workers,
		Audit:       buildAudit,
		AuditLimits: seoaudit.DefaultLimits(),
		DatabaseURL: cfg.DatabaseURL,
		Logger:      logger,
	})
	if err != nil {
		return fmt.Errorf("build failed: %w", err)
	}

	if cfg.OutDir != "" {
		if err := writePages(cfg.OutDir, report); err != nil {
			return err
		}
		if cfg.BaseURL != "" {
			if err := writeSitemap(cfg.OutDir, cfg.BaseURL, report); err != nil {
				return err
			}
		}
	}

	printer := observability.NewPrinter(os.Stdout)
	printer.PrintClassificationSummary(report.DirectiveCounts)
	if cfg.Verbose {
		for i := range report.Pages {
			page := &report.Pages[i]
			if page.Skipped {
				continue
			}
			title := page.ItemID
			if item := cat.Get(page.ItemID); item != nil {
				title = item.Title
			}
			printer.PrintRelatedItems(title, page.Related)
			if len(page.Violations) > 0 {
				printer.PrintViolations(&types.Violations{Violations: page.Violations})
			}
		}
	}

	fmt.Printf("Build %s: %d pages, %d links inserted, %d skipped, %d malformed.\n",
		report.RunID, len(report.Pages), report.LinksInserted, report.PagesSkipped, report.MalformedPages)

	if report.PagesSkipped > 0 {
		return fmt.Errorf("%d pages failed to generate", report.PagesSkipped)
	}
	return nil
}

// loadCatalog reads catalog items from the configured source.
func loadCatalog(ctx context.Context, cfg config.Config) (*catalog.Catalog, error) {
	if buildFromDB {
		database, err := db.Connect(ctx, cfg.DatabaseURL)
		if err != nil {
			return nil, fmt.Errorf("failed to connect to database: %w", err)
		}
		defer database.Close()

		items, err := database.LoadItems(ctx)
		if err != nil {
			return nil, fmt.Errorf("failed to load catalog from database: %w", err)
		}
		return catalog.New(items)
	}
	return catalog.LoadFile(cfg.Catalog, resolveSchema(cfg.Schema))
}

// writePages persists each generated page body under its site path.
func writePages(outDir string, report *pipeline.BuildReport) error {
	for i := range report.Pages {
		page := &report.Pages[i]
		if page.Skipped || page.URL == "" {
			continue
		}
		dir := filepath.Join(outDir, filepath.FromSlash(strings.Trim(page.URL, "/")))
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("failed to create output directory %s: %w", dir, err)
		}
		path := filepath.Join(dir, "index.html")
		if err := os.WriteFile(path, []byte(page.Content), 0o644); err != nil {
			return fmt.Errorf("failed to write page %s: %w", path, err)
		}
	}
	return nil
}

// writeSitemap emits sitemap.xml with every indexable page. Noindex pages are
// deliberately left out so crawlers never get mixed signals.
func writeSitemap(outDir, baseURL string, report *pipeline.BuildReport) error {
	var sb strings.Builder
	sb.WriteString(xml.Header)
	sb.WriteString(`<urlset xmlns="http://www.sitemaps.org/schemas/sitemap/0.9">` + "\n")

	base := strings.TrimSuffix(baseURL, "/")
	for i := range report.Pages {
		page := &report.Pages[i]
		if page.Skipped || page.URL == "" || page.Directive != indexing.DirectiveIndex {
			continue
		}
		var loc strings.Builder
		if err := xml.EscapeText(&loc, []byte(base+page.URL)); err != nil {
			return fmt.Errorf("failed to encode sitemap URL %s: %w", page.URL, err)
		}
		sb.WriteString("  <url><loc>" + loc.String() + "</loc></url>\n")
	}
	sb.WriteString("</urlset>\n")

	path := filepath.Join(outDir, "sitemap.xml")
	if err := os.WriteFile(path, []byte(sb.String()), 0o644); err != nil {
		return fmt.Errorf("failed to write sitemap: %w", err)
	}
	return nil
}

// loadBuildConfig loads the optional config file and applies flag overrides
// and built-in defaults.
func loadBuildConfig(cmd *cobra.Command, configPath string) (config.Config, error) {
	var cfg config.Config
	if configPath != "" {
		loaded, err := config.LoadConfig(configPath)
		if err != nil {
			return cfg, fmt.Errorf("failed to load config: %w", err)
		}
		if err := loaded.Validate(); err != nil {
			return cfg, err
		}
		cfg = *loaded
	}

	// Only override if the flag was explicitly set
	if cmd.Flags().Changed("catalog") {
		cfg.Catalog = buildCatalog
	}
	if cmd.Flags().Changed("schema") {
		cfg.Schema = buildSchema
	}
	if cmd.Flags().Changed("out") {
		cfg.OutDir = buildOutDir
	}
	if cmd.Flags().Changed("num-related") {
		cfg.NumRelated = buildNumRelated
	}
	if cmd.Flags().Changed("max-links") {
		cfg.MaxLinks = buildMaxLinks
	}
	if cmd.Flags().Changed("workers") {
		cfg.Workers = buildWorkers
	}
	if cmd.Flags().Changed("verbose") {
		cfg.Verbose = buildVerbose
	}
	if cmd.Flags().Changed("db-url") {
		cfg.DatabaseURL = buildDatabaseURL
	}

	defaults := config.Config{
		NumRelated: pipeline.DefaultNumRelated,
		MaxLinks:   5,
		Workers:    pipeline.DefaultWorkers,
		PageSize:   pipeline.DefaultPageSize,
	}
	cfg = cfg.MergeWithDefaults(defaults)

	if err := cfg.Validate(); err != nil {
		return cfg, err
	}
	return cfg, nil
}

// newLogger builds the process logger; verbose runs get development output.
func newLogger(verbose bool) (*zap.Logger, error) {
	if verbose {
		return zap.NewDevelopment()
	}
	return zap.NewProduction()
}
