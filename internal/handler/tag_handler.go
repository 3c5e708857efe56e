package handler

import (
	"net/http"
	"sort"
	"sync"
	"time"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"meroprofile/internal/model"
	"meroprofile/pkg/database"
	"meroprofile/pkg/logger"
	"meroprofile/prometheus"
)

const (
	tagSampleLimit  = 20
	popularTagLimit = 15
)

// TagWithCount pairs a tag with the number of businesses linked to it
type TagWithCount struct {
	model.Tag
	Count int64 `json:"count"`
}

// PopularTags returns the most-used tags with their business counts
func PopularTags(c echo.Context) error {
	log := logger.FromEcho(c)

	defer prometheus.TrackDBOperation("query")(time.Now())
	var tags []model.Tag
	result := database.GetDB().Limit(tagSampleLimit).Find(&tags)
	if result.Error != nil {
		log.Error("Failed to retrieve tags", zap.Error(result.Error))
		return c.JSON(http.StatusInternalServerError, echo.Map{
			"error": "Failed to retrieve popular tags",
		})
	}

	withCounts := make([]TagWithCount, len(tags))
	var wg sync.WaitGroup
	for i := range tags {
		withCounts[i].Tag = tags[i]
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			var count int64
			err := database.GetDB().Model(&model.BusinessTag{}).
				Where("tag_id = ?", tags[i].ID).
				Count(&count).Error
			if err != nil {
				log.Warn("Failed to count businesses for tag",
					zap.Uint("tag_id", tags[i].ID),
					zap.Error(err))
				return
			}
			withCounts[i].Count = count
		}(i)
	}
	wg.Wait()

	sort.SliceStable(withCounts, func(i, j int) bool {
		return withCounts[i].Count > withCounts[j].Count
	})
	if len(withCounts) > popularTagLimit {
		withCounts = withCounts[:popularTagLimit]
	}

	return c.JSON(http.StatusOK, withCounts)
}
