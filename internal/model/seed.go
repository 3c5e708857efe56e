package model

import (
	"fmt"

	"gorm.io/gorm"

	"meroprofile/pkg/textutil"
)

// SeedCategories inserts the fixed category vocabulary, keyed by slug.
// Idempotent: existing slugs are left alone.
func SeedCategories(db *gorm.DB) error {
	for _, name := range Categories {
		slug := textutil.GenerateSlug(name)
		var existing Category
		err := db.Where("slug = ?", slug).First(&existing).Error
		if err == nil {
			continue
		}
		if err != gorm.ErrRecordNotFound {
			return fmt.Errorf("failed to check category %q: %w", slug, err)
		}
		if err := db.Create(&Category{Name: name, Slug: slug}).Error; err != nil {
			return fmt.Errorf("failed to seed category %q: %w", slug, err)
		}
	}
	return nil
}
