package handler

import (
	"net/http"
	"time"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"meroprofile/internal/model"
	"meroprofile/pkg/database"
	"meroprofile/pkg/logger"
	"meroprofile/prometheus"
)

// SearchListings runs a filtered listing search. Filters come from the URL
// (q, category, city, price, tag) and combine with AND semantics; results
// are ordered featured-first, then newest-first.
func SearchListings(c echo.Context) error {
	log := logger.FromEcho(c)
	prometheus.SearchCounter.Inc()

	filters := ParseFilters(c.QueryParams())
	log.Info("Searching listings",
		zap.String("query", filters.Query),
		zap.String("category", filters.Category),
		zap.String("city", filters.City),
		zap.String("price", filters.Price),
		zap.String("tag", filters.Tag))

	db := database.GetDB()

	// Slug filters resolve to ids first; an unknown slug skips the filter
	// rather than failing the search.
	categoryID := resolveCategoryID(db, filters.Category)
	if filters.Category != "" && categoryID == nil {
		log.Warn("Unknown category slug, skipping filter", zap.String("slug", filters.Category))
	}
	tagID := resolveTagID(db, filters.Tag)
	if filters.Tag != "" && tagID == nil {
		log.Warn("Unknown tag slug, skipping filter", zap.String("slug", filters.Tag))
	}

	defer prometheus.TrackDBOperation("query")(time.Now())
	var businesses []model.Business
	result := ApplyFilters(db.Model(&model.Business{}), filters, categoryID, tagID).
		Preload("Category").
		Find(&businesses)
	if result.Error != nil {
		log.Error("Failed to search listings", zap.Error(result.Error))
		return c.JSON(http.StatusInternalServerError, echo.Map{
			"error": "Failed to load search results",
		})
	}

	log.Info("Search completed", zap.Int("count", len(businesses)))
	return c.JSON(http.StatusOK, echo.Map{
		"count":   len(businesses),
		"results": NewProfileCards(businesses),
	})
}
