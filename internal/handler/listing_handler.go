package handler

import (
	"net/http"
	"sort"
	"strconv"
	"time"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"meroprofile/internal/model"
	"meroprofile/pkg/database"
	"meroprofile/pkg/geo"
	"meroprofile/pkg/logger"
	"meroprofile/prometheus"
)

const homeSectionLimit = 6

// FeaturedBusinesses returns the current featured section. Expired featured
// listings drop out here but remain in general results.
func FeaturedBusinesses(c echo.Context) error {
	log := logger.FromEcho(c)

	defer prometheus.TrackDBOperation("query")(time.Now())
	var businesses []model.Business
	result := database.GetDB().
		Where("is_published = ? AND is_featured = ? AND featured_until >= ?", true, true, time.Now()).
		Order("created_at DESC").
		Limit(homeSectionLimit).
		Preload("Category").
		Find(&businesses)
	if result.Error != nil {
		log.Error("Failed to load featured listings", zap.Error(result.Error))
		return c.JSON(http.StatusInternalServerError, echo.Map{
			"error": "Failed to load featured profiles",
		})
	}

	return c.JSON(http.StatusOK, echo.Map{
		"count":   len(businesses),
		"results": NewProfileCards(businesses),
	})
}

// RecentBusinesses returns the newest published listings
func RecentBusinesses(c echo.Context) error {
	log := logger.FromEcho(c)

	defer prometheus.TrackDBOperation("query")(time.Now())
	var businesses []model.Business
	result := database.GetDB().
		Where("is_published = ?", true).
		Order("created_at DESC").
		Limit(homeSectionLimit).
		Preload("Category").
		Find(&businesses)
	if result.Error != nil {
		log.Error("Failed to load recent listings", zap.Error(result.Error))
		return c.JSON(http.StatusInternalServerError, echo.Map{
			"error": "Failed to load recent businesses",
		})
	}

	return c.JSON(http.StatusOK, echo.Map{
		"count":   len(businesses),
		"results": NewProfileCards(businesses),
	})
}

// GetBusiness returns one published listing with its gallery, services and
// tags. Optional lat/lon parameters add the distance from the caller.
func GetBusiness(c echo.Context) error {
	log := logger.FromEcho(c)
	id := c.Param("id")

	defer prometheus.TrackDBOperation("query")(time.Now())
	var business model.Business
	result := database.GetDB().
		Where("id = ? AND is_published = ?", id, true).
		Preload("Category").
		Preload("Images", func(db *gorm.DB) *gorm.DB { return db.Order("display_order ASC") }).
		Preload("Services").
		Preload("Tags").
		First(&business)
	if result.Error != nil {
		log.Warn("Business not found", zap.String("business_id", id))
		return c.JSON(http.StatusNotFound, echo.Map{"error": "Business not found"})
	}

	response := echo.Map{"business": business}

	latStr, lonStr := c.QueryParam("lat"), c.QueryParam("lon")
	if latStr != "" && lonStr != "" && business.Latitude != nil && business.Longitude != nil {
		lat, latErr := strconv.ParseFloat(latStr, 64)
		lon, lonErr := strconv.ParseFloat(lonStr, 64)
		if latErr == nil && lonErr == nil {
			km := geo.Distance(lat, lon, *business.Latitude, *business.Longitude)
			response["distance_km"] = km
			response["distance"] = geo.FormatDistance(km)
		}
	}

	return c.JSON(http.StatusOK, response)
}

// NearbyBusinesses returns published listings within radius_km of the given
// point, nearest first. Listings without coordinates are excluded.
func NearbyBusinesses(c echo.Context) error {
	log := logger.FromEcho(c)

	lat, latErr := strconv.ParseFloat(c.QueryParam("lat"), 64)
	lon, lonErr := strconv.ParseFloat(c.QueryParam("lon"), 64)
	if latErr != nil || lonErr != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "lat and lon are required"})
	}

	radiusKm := 10.0
	if r := c.QueryParam("radius_km"); r != "" {
		if parsed, err := strconv.ParseFloat(r, 64); err == nil && parsed > 0 {
			radiusKm = parsed
		}
	}

	defer prometheus.TrackDBOperation("query")(time.Now())
	var businesses []model.Business
	result := database.GetDB().
		Where("is_published = ? AND latitude IS NOT NULL AND longitude IS NOT NULL", true).
		Preload("Category").
		Find(&businesses)
	if result.Error != nil {
		log.Error("Failed to load listings for nearby search", zap.Error(result.Error))
		return c.JSON(http.StatusInternalServerError, echo.Map{
			"error": "Failed to load nearby businesses",
		})
	}

	type nearbyResult struct {
		ProfileCard
		DistanceKm float64 `json:"distance_km"`
		Distance   string  `json:"distance"`
	}

	var results []nearbyResult
	for i := range businesses {
		b := &businesses[i]
		km := geo.Distance(lat, lon, *b.Latitude, *b.Longitude)
		if km <= radiusKm {
			results = append(results, nearbyResult{
				ProfileCard: NewProfileCard(b),
				DistanceKm:  km,
				Distance:    geo.FormatDistance(km),
			})
		}
	}
	sort.Slice(results, func(i, j int) bool { return results[i].DistanceKm < results[j].DistanceKm })

	return c.JSON(http.StatusOK, echo.Map{
		"count":   len(results),
		"results": results,
	})
}
