package handler

import (
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"meroprofile/internal/model"
	"meroprofile/pkg/database"
	"meroprofile/pkg/logger"
	"meroprofile/pkg/storage"
	"meroprofile/pkg/textutil"
	"meroprofile/pkg/validate"
	"meroprofile/prometheus"
)

// ProfessionalHandler implements the professional profile creation workflow,
// the reduced variant of the business one: a single photo upload, no gallery,
// services or tags.
type ProfessionalHandler struct {
	store *storage.Store
}

// NewProfessionalHandler creates a ProfessionalHandler
func NewProfessionalHandler(store *storage.Store) *ProfessionalHandler {
	return &ProfessionalHandler{store: store}
}

// Create builds a professional profile from a multipart form
func (h *ProfessionalHandler) Create(c echo.Context) error {
	log := logger.FromEcho(c)

	userID, ok := c.Get("user_id").(uint)
	if !ok {
		prometheus.RecordAuthError("missing_user_context")
		return c.JSON(http.StatusUnauthorized, echo.Map{"error": "Please login to create a profile"})
	}

	name := strings.TrimSpace(c.FormValue("name"))
	if name == "" {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "name is required"})
	}

	photoFile, err := c.FormFile("photo")
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "Please upload a photo"})
	}
	if err := validate.Image(detectContentType(photoFile), photoFile.Size); err != nil {
		log.Warn("Photo rejected", zap.Error(err))
		return c.JSON(http.StatusBadRequest, echo.Map{"error": err.Error()})
	}

	photoResult, err := uploadMultipart(h.store, photoFile, "professionals")
	if err != nil {
		log.Error("Failed to upload photo", zap.Error(err))
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "Failed to upload photo"})
	}

	db := database.GetDB()

	categorySlug := c.FormValue("category")
	if categorySlug == "" {
		categorySlug = "doctor"
	}
	categoryID := resolveCategoryID(db, categorySlug)

	professional := model.Professional{
		UserID:          userID,
		Name:            textutil.SanitizeHTML(name),
		Slug:            textutil.GenerateSlug(name),
		CategoryID:      categoryID,
		Specialization:  textutil.SanitizeHTML(c.FormValue("specialization")),
		Description:     textutil.SanitizeHTML(c.FormValue("description")),
		PhotoURL:        photoResult.URL,
		Qualification:   c.FormValue("qualification"),
		ExperienceYears: parseYears(c.FormValue("experience_years")),
		ClinicName:      textutil.SanitizeHTML(c.FormValue("clinic_name")),
		ClinicAddress:   textutil.SanitizeHTML(c.FormValue("clinic_address")),
		City:            c.FormValue("city"),
		ConsultationFee: c.FormValue("consultation_fee"),
		Phone:           c.FormValue("phone"),
		Email:           c.FormValue("email"),
	}

	defer prometheus.TrackDBOperation("insert")(time.Now())
	if result := db.Create(&professional); result.Error != nil {
		log.Error("Failed to create professional profile",
			zap.Error(result.Error),
			zap.String("orphaned_photo", photoResult.Path))
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "Failed to create professional profile"})
	}

	prometheus.RecordListingCreated("professional")
	log.Info("Professional profile created",
		zap.Uint("professional_id", professional.ID),
		zap.String("slug", professional.Slug),
		zap.Uint("user_id", userID))

	return c.JSON(http.StatusCreated, echo.Map{
		"message":      "Professional profile created successfully",
		"professional": professional,
	})
}

func parseYears(value string) *int {
	if value == "" {
		return nil
	}
	n, err := strconv.Atoi(value)
	if err != nil {
		return nil
	}
	return &n
}
