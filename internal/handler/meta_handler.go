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

// Stats returns directory-wide counters for the homepage
func Stats(c echo.Context) error {
	log := logger.FromEcho(c)

	defer prometheus.TrackDBOperation("query")(time.Now())
	var businessCount int64
	err := database.GetDB().Model(&model.Business{}).
		Where("is_published = ?", true).
		Count(&businessCount).Error
	if err != nil {
		log.Error("Failed to load stats", zap.Error(err))
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "Failed to load stats"})
	}

	return c.JSON(http.StatusOK, echo.Map{
		"total_businesses": businessCount,
	})
}

// Meta exposes the fixed vocabularies used to populate filter dropdowns
func Meta(c echo.Context) error {
	return c.JSON(http.StatusOK, echo.Map{
		"categories":   model.Categories,
		"cities":       model.Cities,
		"price_ranges": model.PriceRanges,
	})
}
