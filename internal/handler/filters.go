package handler

import (
	"net/url"
	"strings"

	"gorm.io/gorm"

	"meroprofile/internal/model"
)

// Filters is the search filter set. All filters are optional and combine
// with AND semantics; Query alone matches name OR description.
type Filters struct {
	Query    string
	Category string // category slug
	City     string
	Price    string
	Tag      string // tag slug
}

// ParseFilters extracts search filters from URL query parameters
func ParseFilters(query url.Values) Filters {
	return Filters{
		Query:    strings.TrimSpace(query.Get("q")),
		Category: strings.TrimSpace(query.Get("category")),
		City:     strings.TrimSpace(query.Get("city")),
		Price:    strings.TrimSpace(query.Get("price")),
		Tag:      strings.TrimSpace(query.Get("tag")),
	}
}

// ApplyFilters narrows a businesses query by the given filter set. Category
// and tag slugs must already be resolved to ids by the caller; a nil id means
// the filter was unresolvable and is skipped rather than failing the search.
func ApplyFilters(db *gorm.DB, f Filters, categoryID *uint, tagID *uint) *gorm.DB {
	q := db.Where("is_published = ?", true)

	if f.Query != "" {
		pattern := "%" + f.Query + "%"
		q = q.Where("name ILIKE ? OR description ILIKE ?", pattern, pattern)
	}
	if f.City != "" {
		q = q.Where("city = ?", f.City)
	}
	if f.Price != "" {
		q = q.Where("price_range = ?", f.Price)
	}
	if categoryID != nil {
		q = q.Where("category_id = ?", *categoryID)
	}
	if tagID != nil {
		q = q.Where("id IN (?)", db.Session(&gorm.Session{NewDB: true}).
			Model(&model.BusinessTag{}).
			Select("business_id").
			Where("tag_id = ?", *tagID))
	}

	// Fixed two-key ordering: featured listings first, newest first within
	return q.Order("is_featured DESC").Order("created_at DESC")
}

// resolveCategoryID looks up a category id by slug. An unknown slug yields
// nil so the caller can skip the filter instead of erroring.
func resolveCategoryID(db *gorm.DB, slug string) *uint {
	if slug == "" {
		return nil
	}
	var category model.Category
	if err := db.Select("id").Where("slug = ?", slug).First(&category).Error; err != nil {
		return nil
	}
	return &category.ID
}

// resolveTagID looks up a tag id by slug, nil when unknown
func resolveTagID(db *gorm.DB, slug string) *uint {
	if slug == "" {
		return nil
	}
	var tag model.Tag
	if err := db.Select("id").Where("slug = ?", slug).First(&tag).Error; err != nil {
		return nil
	}
	return &tag.ID
}
