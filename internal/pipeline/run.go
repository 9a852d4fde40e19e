// Package pipeline provides the high-level orchestration for full-site generation runs.
package pipeline

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/jonathan/marketpulse/internal/autolink"
	"github.com/jonathan/marketpulse/internal/catalog"
	"github.com/jonathan/marketpulse/internal/db"
	"github.com/jonathan/marketpulse/internal/indexing"
	"github.com/jonathan/marketpulse/internal/pagination"
	"github.com/jonathan/marketpulse/internal/relevance"
	"github.com/jonathan/marketpulse/internal/seoaudit"
	"github.com/jonathan/marketpulse/internal/termdict"
	"github.com/jonathan/marketpulse/internal/types"
)

// Default worker-pool and linking settings used when BuildOptions leaves them
// unset.
const (
	DefaultWorkers    = 4
	DefaultNumRelated = 5
	DefaultPageSize   = 20

	// navRadius is how many sibling page numbers the pagination nav shows on
	// each side of the current page.
	navRadius = 2
)

// BuildOptions holds configuration for one generation run.
type BuildOptions struct {
	CatalogPath string
	Policy      indexing.Policy
	NumRelated  int
	MaxLinks    int
	PageSize    int
	Workers     int
	Audit       bool
	AuditLimits seoaudit.Limits
	DatabaseURL string
	Logger      *zap.Logger
}

// PageResult is the generation outcome for a single page.
type PageResult struct {
	ItemID        string
	URL           string
	Directive     string
	TotalPages    int
	Links         *pagination.PageLinks
	Nav           []pagination.WindowEntry
	Related       []relevance.ScoredItem
	Content       string
	LinksInserted int
	Violations    []types.Violation
	Skipped       bool
	Err           error
}

// BuildReport aggregates the outcome of a full run.
type BuildReport struct {
	RunID           uuid.UUID
	Pages           []PageResult
	DirectiveCounts map[string]int
	LinksInserted   int
	PagesSkipped    int
	MalformedPages  int
}

// GeneratePage produces the page for one catalog item: the robots directive,
// the related-items block and the auto-linked body.
//
// Malformed item content is recoverable: the body passes through unlinked with
// a violation recorded. Anything else fails the page.
func GeneratePage(item *types.Item, cat *catalog.Catalog, dict *autolink.Dictionary, opts *BuildOptions, logger *zap.Logger) (*PageResult, error) {
	result := &PageResult{ItemID: item.ID, URL: item.URLPath()}

	// Content pages without a threshold entry are always indexable; only the
	// page families named in the policy can go thin.
	if _, ok := opts.Policy[item.Type]; ok {
		classification, err := indexing.ClassifyItem(opts.Policy, item)
		if err != nil {
			return nil, &PageError{ItemID: item.ID, Cause: err}
		}
		result.Directive = classification.Directive

		// Listing families paginate their child records; the item itself is
		// page 1 of the sequence.
		if opts.PageSize > 0 && result.URL != "" {
			totalPages := (item.RelatedChildCount + opts.PageSize - 1) / opts.PageSize
			if totalPages < 1 {
				totalPages = 1
			}
			links, err := pagination.Canonicalize(result.URL, 1, totalPages, opts.PageSize)
			if err != nil {
				return nil, &PageError{ItemID: item.ID, Cause: err}
			}
			result.TotalPages = totalPages
			result.Links = &links
			result.Nav = pagination.Window(1, totalPages, navRadius)
		}
	} else {
		result.Directive = indexing.DirectiveIndex
	}

	related, err := relevance.FindRelated(item, cat.ItemsOfType(item.Type), opts.NumRelated)
	if err != nil {
		return nil, &PageError{ItemID: item.ID, Cause: err}
	}
	result.Related = related

	content, inserted, err := dict.RewriteCounted(item.Content, []string{item.URLPath()}, opts.MaxLinks)
	if err != nil {
		var malformed *autolink.MalformedContentError
		if !errors.As(err, &malformed) {
			return nil, &PageError{ItemID: item.ID, Cause: err}
		}
		logger.Warn("malformed content, publishing without auto-links",
			zap.String("item_id", item.ID),
			zap.Error(err),
		)
		content = item.Content
		inserted = 0
		result.Violations = append(result.Violations, types.Violation{
			Type:     "malformed_content",
			Severity: "warning",
			Details:  err.Error(),
			Page:     result.URL,
		})
	}
	result.Content = content
	result.LinksInserted = inserted

	if opts.Audit {
		violations, err := seoaudit.AuditItem(item, opts.AuditLimits)
		if err != nil {
			return nil, &PageError{ItemID: item.ID, Cause: err}
		}
		result.Violations = append(result.Violations, violations.Violations...)
	}

	return result, nil
}

// RunBuild generates every page in the catalog with a bounded worker pool and
// returns the aggregated report. A failing page is skipped and recorded; only
// setup failures (bad link dictionary, cancelled context) abort the run.
func RunBuild(ctx context.Context, cat *catalog.Catalog, opts BuildOptions) (*BuildReport, error) {
	logger := opts.Logger
	if logger == nil {
		logger = zap.NewNop()
	}
	if opts.Workers <= 0 {
		opts.Workers = DefaultWorkers
	}
	if opts.NumRelated <= 0 {
		opts.NumRelated = DefaultNumRelated
	}
	if opts.Policy == nil {
		opts.Policy = indexing.DefaultPolicy()
	}
	if opts.MaxLinks == 0 {
		opts.MaxLinks = autolink.DefaultMaxLinks
	}
	if opts.PageSize <= 0 {
		opts.PageSize = DefaultPageSize
	}

	dict, err := autolink.NewDictionary(termdict.BuildTerms(cat))
	if err != nil {
		return nil, err
	}

	// Database persistence is best effort; a build must not fail because the
	// history store is down.
	var database *db.DB
	runID := uuid.New()
	if opts.DatabaseURL != "" {
		database, err = db.Connect(ctx, opts.DatabaseURL)
		if err != nil {
			logger.Warn("database unavailable, continuing without run history", zap.Error(err))
			database = nil
		} else {
			defer database.Close()
			if id, err := database.CreateBuildRun(ctx, opts.CatalogPath, cat.Len()); err != nil {
				logger.Warn("failed to create build run record", zap.Error(err))
			} else {
				runID = id
			}
		}
	}

	items := cat.Items()
	results := make([]PageResult, len(items))

	logger.Info("starting build",
		zap.String("run_id", runID.String()),
		zap.Int("pages", len(items)),
		zap.Int("workers", opts.Workers),
	)

	g, gCtx := errgroup.WithContext(ctx)
	g.SetLimit(opts.Workers)
	for i := range items {
		g.Go(func() error {
			if err := gCtx.Err(); err != nil {
				return err
			}
			item := &items[i]
			page, err := GeneratePage(item, cat, dict, &opts, logger)
			if err != nil {
				logger.Error("skipping page", zap.String("item_id", item.ID), zap.Error(err))
				results[i] = PageResult{ItemID: item.ID, URL: item.URLPath(), Skipped: true, Err: err}
				return nil
			}
			results[i] = *page
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		if database != nil {
			if dbErr := database.CompleteBuildRun(ctx, runID, "aborted"); dbErr != nil {
				logger.Warn("failed to complete build run record", zap.Error(dbErr))
			}
		}
		return nil, err
	}

	report := &BuildReport{
		RunID:           runID,
		Pages:           results,
		DirectiveCounts: make(map[string]int),
	}
	for i := range results {
		page := &results[i]
		if page.Skipped {
			report.PagesSkipped++
			continue
		}
		report.DirectiveCounts[page.Directive]++
		report.LinksInserted += page.LinksInserted
		for _, v := range page.Violations {
			if v.Type == "malformed_content" {
				report.MalformedPages++
				break
			}
		}
		if database != nil {
			err := database.SavePageResult(ctx, runID, db.PageRecord{
				ItemID:        page.ItemID,
				URL:           page.URL,
				Directive:     page.Directive,
				RelatedCount:  len(page.Related),
				LinksInserted: page.LinksInserted,
				Violations:    page.Violations,
			})
			if err != nil {
				logger.Warn("failed to save page record",
					zap.String("item_id", page.ItemID), zap.Error(err))
			}
		}
	}

	if database != nil {
		status := "completed"
		if report.PagesSkipped > 0 {
			status = "completed_with_errors"
		}
		if err := database.CompleteBuildRun(ctx, runID, status); err != nil {
			logger.Warn("failed to complete build run record", zap.Error(err))
		}
	}

	logger.Info("build finished",
		zap.String("run_id", runID.String()),
		zap.Int("links_inserted", report.LinksInserted),
		zap.Int("pages_skipped", report.PagesSkipped),
		zap.Int("malformed_pages", report.MalformedPages),
	)

	return report, nil
}
