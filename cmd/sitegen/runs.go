package main

import (
	"context"
	"fmt"
	"os"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"github.com/jonathan/marketpulse/internal/db"
)

var runsCommand = &cobra.Command{
	Use:   "runs [run-id]",
	Short: "Show recent build runs from the history store",
	Long:  "Lists recent build runs recorded in the database, newest first. Pass a run ID to show a single run.",
	Args:  cobra.MaximumNArgs(1),
	RunE:  runRunsCmd,
}

var (
	runsLimit       int
	runsDatabaseURL string
)

func init() {
	runsCommand.Flags().IntVar(&runsLimit, "limit", 10, "Maximum number of runs to list")
	runsCommand.Flags().StringVar(&runsDatabaseURL, "db-url", "", "PostgreSQL connection URL (optional, defaults to DATABASE_URL env var)")

	rootCmd.AddCommand(runsCommand)
}

func runRunsCmd(_ *cobra.Command, args []string) error {
	ctx := context.Background()

	dbURL := runsDatabaseURL
	if dbURL == "" {
		dbURL = os.Getenv("DATABASE_URL")
	}
	if dbURL == "" {
		return fmt.Errorf("run history requires DATABASE_URL environment variable or --db-url flag")
	}

	database, err := db.Connect(ctx, dbURL)
	if err != nil {
		return fmt.Errorf("failed to connect to database: %w", err)
	}
	defer database.Close()

	if len(args) == 1 {
		runID, err := uuid.Parse(args[0])
		if err != nil {
			return fmt.Errorf("invalid run ID %q: %w", args[0], err)
		}
		run, err := database.GetBuildRun(ctx, runID)
		if err != nil {
			return err
		}
		if run == nil {
			return fmt.Errorf("build run %s not found", runID)
		}
		printRun(run)
		return nil
	}

	runs, err := database.ListBuildRuns(ctx, runsLimit)
	if err != nil {
		return err
	}
	if len(runs) == 0 {
		fmt.Println("No build runs recorded.")
		return nil
	}
	for i := range runs {
		printRun(&runs[i])
	}
	return nil
}

func printRun(run *db.BuildRun) {
	completed := "-"
	if run.CompletedAt != nil {
		completed = run.CompletedAt.Format("2006-01-02 15:04:05")
	}
	fmt.Printf("%s  %-22s %4d pages  started %s  completed %s  %s\n",
		run.ID, run.Status, run.PagesTotal,
		run.CreatedAt.Format("2006-01-02 15:04:05"), completed, run.CatalogPath)
}
