package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/jonathan/marketpulse/internal/catalog"
	"github.com/jonathan/marketpulse/internal/indexing"
)

var classifyCommand = &cobra.Command{
	Use:   "classify",
	Short: "Print the robots directive for every catalog page",
	Long:  "Classifies each catalog item as indexable or thin from its child-record count and prints the resulting robots directive, one page per line.",
	RunE:  runClassifyCmd,
}

var (
	classifyCatalog  string
	classifySchema   string
	classifyThinOnly bool
)

func init() {
	classifyCommand.Flags().StringVarP(&classifyCatalog, "catalog", "c", "", "Path to the item catalog JSON file")
	classifyCommand.Flags().StringVar(&classifySchema, "schema", "", "Path to the catalog JSON schema (empty skips schema validation)")
	classifyCommand.Flags().BoolVar(&classifyThinOnly, "thin-only", false, "Only print pages that get noindex")

	_ = classifyCommand.MarkFlagRequired("catalog")

	rootCmd.AddCommand(classifyCommand)
}

func runClassifyCmd(_ *cobra.Command, _ []string) error {
	cat, err := catalog.LoadFile(classifyCatalog, resolveSchema(classifySchema))
	if err != nil {
		return err
	}

	policy := indexing.DefaultPolicy()
	items := cat.Items()
	for i := range items {
		item := &items[i]

		directive := indexing.DirectiveIndex
		if _, ok := policy[item.Type]; ok {
			classification, err := indexing.ClassifyItem(policy, item)
			if err != nil {
				return err
			}
			directive = classification.Directive
		}

		if classifyThinOnly && directive != indexing.DirectiveNoindex {
			continue
		}
		fmt.Printf("%-18s %-40s %s\n", item.Type, item.URLPath(), directive)
	}
	return nil
}
