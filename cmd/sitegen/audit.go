package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/jonathan/marketpulse/internal/catalog"
	"github.com/jonathan/marketpulse/internal/observability"
	"github.com/jonathan/marketpulse/internal/seoaudit"
)

var auditCommand = &cobra.Command{
	Use:   "audit",
	Short: "Audit catalog pages against on-page SEO quality rules",
	Long:  "Checks every catalog item for thin bodies, out-of-range titles and meta descriptions, missing slugs and duplicate titles, then prints a summary.",
	RunE:  runAuditCmd,
}

var (
	auditCatalog  string
	auditSchema   string
	auditMinWords int
	auditStrict   bool
)

func init() {
	auditCommand.Flags().StringVarP(&auditCatalog, "catalog", "c", "", "Path to the item catalog JSON file")
	auditCommand.Flags().StringVar(&auditSchema, "schema", "", "Path to the catalog JSON schema (empty skips schema validation)")
	auditCommand.Flags().IntVar(&auditMinWords, "min-words", 0, "Minimum body word count (0 uses the default)")
	auditCommand.Flags().BoolVar(&auditStrict, "strict", false, "Exit non-zero on warnings, not just errors")

	_ = auditCommand.MarkFlagRequired("catalog")

	rootCmd.AddCommand(auditCommand)
}

func runAuditCmd(_ *cobra.Command, _ []string) error {
	cat, err := catalog.LoadFile(auditCatalog, resolveSchema(auditSchema))
	if err != nil {
		return err
	}

	limits := seoaudit.DefaultLimits()
	if auditMinWords > 0 {
		limits.MinWords = auditMinWords
	}

	report, err := seoaudit.AuditAll(cat.Items(), limits)
	if err != nil {
		return err
	}

	printer := observability.NewPrinter(os.Stdout)
	printer.PrintAuditReport(report)

	if report.HasErrors() {
		return fmt.Errorf("audit found %d violations with errors", len(report.Violations))
	}
	if auditStrict && len(report.Violations) > 0 {
		return fmt.Errorf("audit found %d violations (strict mode)", len(report.Violations))
	}
	return nil
}
