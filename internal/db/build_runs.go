package db

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"github.com/jonathan/marketpulse/internal/types"
)

// BuildRun represents one invocation of the site generator.
type BuildRun struct {
	ID          uuid.UUID  `json:"id"`
	CatalogPath string     `json:"catalog_path"`
	Status      string     `json:"status"`
	PagesTotal  int        `json:"pages_total"`
	CreatedAt   time.Time  `json:"created_at"`
	CompletedAt *time.Time `json:"completed_at,omitempty"`
}

// PageRecord is the persisted outcome for a single generated page.
type PageRecord struct {
	ItemID        string            `json:"item_id"`
	URL           string            `json:"url"`
	Directive     string            `json:"directive"`
	RelatedCount  int               `json:"related_count"`
	LinksInserted int               `json:"links_inserted"`
	Violations    []types.Violation `json:"violations,omitempty"`
}

// CreateBuildRun creates a new build run record and returns its ID
func (db *DB) CreateBuildRun(ctx context.Context, catalogPath string, pagesTotal int) (uuid.UUID, error) {
	var id uuid.UUID
	err := db.pool.QueryRow(ctx,
		`INSERT INTO build_runs (catalog_path, pages_total, status)
		 VALUES ($1, $2, 'running')
		 RETURNING id`,
		catalogPath, pagesTotal,
	).Scan(&id)
	if err != nil {
		return uuid.Nil, fmt.Errorf("failed to create build run: %w", err)
	}
	return id, nil
}

// CompleteBuildRun marks a build run as completed
func (db *DB) CompleteBuildRun(ctx context.Context, runID uuid.UUID, status string) error {
	_, err := db.pool.Exec(ctx,
		`UPDATE build_runs SET status = $1, completed_at = NOW() WHERE id = $2`,
		status, runID,
	)
	if err != nil {
		return fmt.Errorf("failed to complete build run: %w", err)
	}
	return nil
}

// SavePageResult stores the outcome for one page of a build run
func (db *DB) SavePageResult(ctx context.Context, runID uuid.UUID, page PageRecord) error {
	violationsJSON, err := json.Marshal(page.Violations)
	if err != nil {
		return fmt.Errorf("failed to marshal violations: %w", err)
	}

	_, err = db.pool.Exec(ctx,
		`INSERT INTO page_results (run_id, item_id, url, directive, related_count, links_inserted, violations)
		 VALUES ($1, $2, $3, $4, $5, $6, $7)
		 ON CONFLICT (run_id, item_id) DO UPDATE
		 SET url = $3, directive = $4, related_count = $5, links_inserted = $6, violations = $7`,
		runID, page.ItemID, page.URL, page.Directive, page.RelatedCount, page.LinksInserted, violationsJSON,
	)
	if err != nil {
		return fmt.Errorf("failed to save page result %s: %w", page.ItemID, err)
	}
	return nil
}

// GetBuildRun retrieves a build run by ID
func (db *DB) GetBuildRun(ctx context.Context, runID uuid.UUID) (*BuildRun, error) {
	var run BuildRun
	err := db.pool.QueryRow(ctx,
		`SELECT id, catalog_path, status, pages_total, created_at, completed_at
		 FROM build_runs WHERE id = $1`,
		runID,
	).Scan(&run.ID, &run.CatalogPath, &run.Status, &run.PagesTotal, &run.CreatedAt, &run.CompletedAt)
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get build run: %w", err)
	}
	return &run, nil
}

// ListBuildRuns retrieves recent build runs
func (db *DB) ListBuildRuns(ctx context.Context, limit int) ([]BuildRun, error) {
	rows, err := db.pool.Query(ctx,
		`SELECT id, catalog_path, status, pages_total, created_at, completed_at
		 FROM build_runs ORDER BY created_at DESC LIMIT $1`,
		limit,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to list build runs: %w", err)
	}
	defer rows.Close()

	var runs []BuildRun
	for rows.Next() {
		var run BuildRun
		if err := rows.Scan(&run.ID, &run.CatalogPath, &run.Status, &run.PagesTotal, &run.CreatedAt, &run.CompletedAt); err != nil {
			return nil, fmt.Errorf("failed to scan build run: %w", err)
		}
		runs = append(runs, run)
	}
	return runs, nil
}
