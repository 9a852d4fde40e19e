package db

import (
	"context"
	"fmt"
	"time"

	"github.com/jonathan/marketpulse/internal/types"
)

// itemRow mirrors one row of the items table with its nullable columns.
type itemRow struct {
	ID                string
	Type              string
	Title             string
	Description       *string
	Slug              *string
	Category          *string
	Tags              []string
	CompanyRef        *string
	Skills            []string
	Location          *string
	SalaryMin         *int
	SalaryMax         *int
	PublishDate       *time.Time
	Content           *string
	RelatedChildCount int
}

// toItem converts a scanned row into the catalog item shape.
func (r *itemRow) toItem() types.Item {
	item := types.Item{
		ID:                r.ID,
		Type:              types.ItemType(r.Type),
		Title:             r.Title,
		Tags:              r.Tags,
		Skills:            r.Skills,
		PublishDate:       r.PublishDate,
		RelatedChildCount: r.RelatedChildCount,
	}
	if r.Description != nil {
		item.Description = *r.Description
	}
	if r.Slug != nil {
		item.Slug = *r.Slug
	}
	if r.Category != nil {
		item.Category = *r.Category
	}
	if r.CompanyRef != nil {
		item.CompanyRef = *r.CompanyRef
	}
	if r.Location != nil {
		item.Location = *r.Location
	}
	if r.Content != nil {
		item.Content = *r.Content
	}
	if r.SalaryMin != nil && r.SalaryMax != nil {
		item.SalaryBand = &types.SalaryBand{Min: *r.SalaryMin, Max: *r.SalaryMax}
	}
	return item
}

// LoadItems retrieves every catalog item in insertion order. The returned
// slice feeds catalog.New, which performs validation.
func (db *DB) LoadItems(ctx context.Context) ([]types.Item, error) {
	rows, err := db.pool.Query(ctx,
		`SELECT id, type, title, description, slug, category, tags, company_ref,
		        skills, location, salary_min, salary_max, publish_date, content,
		        related_child_count
		 FROM items ORDER BY inserted_at ASC, id ASC`,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to load items: %w", err)
	}
	defer rows.Close()

	var items []types.Item
	for rows.Next() {
		var r itemRow
		if err := rows.Scan(
			&r.ID, &r.Type, &r.Title, &r.Description, &r.Slug, &r.Category,
			&r.Tags, &r.CompanyRef, &r.Skills, &r.Location, &r.SalaryMin,
			&r.SalaryMax, &r.PublishDate, &r.Content, &r.RelatedChildCount,
		); err != nil {
			return nil, fmt.Errorf("failed to scan item: %w", err)
		}
		items = append(items, r.toItem())
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read items: %w", err)
	}
	return items, nil
}
