// Package types provides type definitions for structured data used throughout the marketpulse generator.
//
//nolint:revive // types is a standard Go package name pattern
package types

import (
	"time"

	"github.com/go-playground/validator/v10"
)

// ItemType identifies which kind of generated page a catalog item backs.
type ItemType string

// Catalog item types. Each type maps to one page family on the generated site
// and selects which thin-content threshold and relevance weights apply.
const (
	ItemTypeJob             ItemType = "job"
	ItemTypeCompany         ItemType = "company"
	ItemTypeArticle         ItemType = "article"
	ItemTypeTool            ItemType = "tool"
	ItemTypeSalaryPage      ItemType = "salary_page"
	ItemTypeLocationLanding ItemType = "location_landing"
	ItemTypeSkillLanding    ItemType = "skill_landing"
	ItemTypeTagPage         ItemType = "tag_page"
)

// SalaryBand represents a disclosed compensation range in whole dollars.
type SalaryBand struct {
	Min int `json:"min"`
	Max int `json:"max"`
}

// Overlaps reports whether two bands share any part of their numeric range.
func (b SalaryBand) Overlaps(other SalaryBand) bool {
	return b.Min <= other.Max && other.Min <= b.Max
}

// Item is a single content record produced by the upstream ingestion step.
// Items are immutable once the catalog is loaded; the generator only reads them.
type Item struct {
	ID          string      `json:"id" validate:"required"`
	Type        ItemType    `json:"type" validate:"required"`
	Title       string      `json:"title" validate:"required"`
	Description string      `json:"description,omitempty"`
	Slug        string      `json:"slug,omitempty"`
	Category    string      `json:"category,omitempty"`
	Tags        []string    `json:"tags,omitempty"`
	CompanyRef  string      `json:"company_ref,omitempty"`
	Skills      []string    `json:"skills,omitempty"`
	Location    string      `json:"location,omitempty"`
	SalaryBand  *SalaryBand `json:"salary_band,omitempty"`
	PublishDate *time.Time  `json:"publish_date,omitempty"`

	// Content is the free-form HTML prose for the page body (job description,
	// article body, tool review). The auto-linker rewrites this field.
	Content string `json:"content,omitempty"`

	// RelatedChildCount is the number of child records behind this page,
	// e.g. jobs under a location landing page or samples behind a salary page.
	// It drives the thin-content classification.
	RelatedChildCount int `json:"related_child_count"`
}

// Validate validates the Item using the validator.
func (i *Item) Validate() error {
	validate := validator.New()
	return validate.Struct(i)
}

// URLPath returns the site-relative path for the page this item backs.
// Returns "" when the slug is missing.
func (i *Item) URLPath() string {
	if i.Slug == "" {
		return ""
	}
	switch i.Type {
	case ItemTypeJob:
		return "/jobs/" + i.Slug + "/"
	case ItemTypeCompany:
		return "/companies/" + i.Slug + "/"
	case ItemTypeArticle:
		return "/articles/" + i.Slug + "/"
	case ItemTypeTool:
		return "/tools/" + i.Slug + "/"
	case ItemTypeSalaryPage:
		return "/salaries/" + i.Slug + "/"
	case ItemTypeLocationLanding:
		return "/jobs/" + i.Slug + "/"
	case ItemTypeSkillLanding:
		return "/skills/" + i.Slug + "/"
	case ItemTypeTagPage:
		return "/articles/tags/" + i.Slug + "/"
	default:
		return "/" + i.Slug + "/"
	}
}
