package handler

import (
	"net/http"
	"sync"
	"time"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"meroprofile/internal/model"
	"meroprofile/pkg/database"
	"meroprofile/pkg/logger"
	"meroprofile/prometheus"
)

// CategoryWithCount pairs a category with its published listing count
type CategoryWithCount struct {
	model.Category
	Count int64 `json:"count"`
}

// ListCategories returns all categories with per-category counts of
// published businesses. The counts are independent reads, so they run
// concurrently and the handler waits for all of them.
func ListCategories(c echo.Context) error {
	log := logger.FromEcho(c)

	defer prometheus.TrackDBOperation("query")(time.Now())
	var categories []model.Category
	result := database.GetDB().Order("name").Find(&categories)
	if result.Error != nil {
		log.Error("Failed to retrieve categories", zap.Error(result.Error))
		return c.JSON(http.StatusInternalServerError, echo.Map{
			"error": "Failed to retrieve categories",
		})
	}

	withCounts := make([]CategoryWithCount, len(categories))
	var wg sync.WaitGroup
	for i := range categories {
		withCounts[i].Category = categories[i]
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			var count int64
			err := database.GetDB().Model(&model.Business{}).
				Where("category_id = ? AND is_published = ?", categories[i].ID, true).
				Count(&count).Error
			if err != nil {
				log.Warn("Failed to count businesses for category",
					zap.Uint("category_id", categories[i].ID),
					zap.Error(err))
				return
			}
			withCounts[i].Count = count
		}(i)
	}
	wg.Wait()

	log.Info("Categories retrieved successfully", zap.Int("count", len(withCounts)))
	return c.JSON(http.StatusOK, withCounts)
}
