package handler

import (
	"mime/multipart"
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

const maxGalleryImages = 10

// BusinessHandler implements the business profile creation workflow
type BusinessHandler struct {
	store *storage.Store
}

// NewBusinessHandler creates a BusinessHandler
func NewBusinessHandler(store *storage.Store) *BusinessHandler {
	return &BusinessHandler{store: store}
}

// Create runs the multi-step business creation workflow from a multipart
// form. The steps are strictly ordered and non-transactional: banner and
// logo must upload before the row is inserted, gallery and tag steps are
// best-effort afterwards. A failed insert after successful uploads leaves
// the uploaded files behind; that gap is logged, not compensated.
func (h *BusinessHandler) Create(c echo.Context) error {
	log := logger.FromEcho(c)

	userID, ok := c.Get("user_id").(uint)
	if !ok {
		prometheus.RecordAuthError("missing_user_context")
		return c.JSON(http.StatusUnauthorized, echo.Map{"error": "Please login to create a profile"})
	}

	name := strings.TrimSpace(c.FormValue("name"))
	if name == "" {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "business name is required"})
	}

	// All file validation happens before any upload so a bad submission
	// creates no partial state.
	bannerFile, err := c.FormFile("banner")
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "Please upload a banner image"})
	}
	if err := validate.Image(detectContentType(bannerFile), bannerFile.Size); err != nil {
		log.Warn("Banner rejected", zap.Error(err))
		return c.JSON(http.StatusBadRequest, echo.Map{"error": err.Error()})
	}

	logoFile, err := c.FormFile("logo")
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "Please upload a logo"})
	}
	if err := validate.Image(detectContentType(logoFile), logoFile.Size); err != nil {
		log.Warn("Logo rejected", zap.Error(err))
		return c.JSON(http.StatusBadRequest, echo.Map{"error": err.Error()})
	}

	form, err := c.MultipartForm()
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid form data"})
	}
	galleryFiles := form.File["gallery"]
	if len(galleryFiles) > maxGalleryImages {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "Maximum 10 images allowed"})
	}

	// Banner then logo, sequentially. Either failure aborts the whole
	// submission with the specific cause.
	bannerResult, err := h.uploadFile(bannerFile, "banners")
	if err != nil {
		log.Error("Failed to upload banner", zap.Error(err))
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "Failed to upload banner"})
	}
	logoResult, err := h.uploadFile(logoFile, "logos")
	if err != nil {
		log.Error("Failed to upload logo",
			zap.Error(err),
			zap.String("orphaned_banner", bannerResult.Path))
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "Failed to upload logo"})
	}

	db := database.GetDB()

	// Best-effort category resolution: a missing category leaves the
	// reference null instead of aborting.
	categoryID := resolveCategoryID(db, c.FormValue("category"))

	business := model.Business{
		UserID:      userID,
		Name:        textutil.SanitizeHTML(name),
		Slug:        textutil.GenerateSlug(name),
		CategoryID:  categoryID,
		Description: textutil.SanitizeHTML(c.FormValue("description")),
		BannerURL:   bannerResult.URL,
		LogoURL:     logoResult.URL,
		PriceRange:  c.FormValue("price_range"),
		Address:     textutil.SanitizeHTML(c.FormValue("address")),
		City:        c.FormValue("city"),
		Latitude:    parseCoord(c.FormValue("latitude")),
		Longitude:   parseCoord(c.FormValue("longitude")),
		Phone:       c.FormValue("phone"),
		Email:       c.FormValue("email"),
		Website:     c.FormValue("website"),
		Facebook:    c.FormValue("facebook"),
		Instagram:   c.FormValue("instagram"),
		WhatsApp:    c.FormValue("whatsapp"),
		IsPublished: true,
	}

	defer prometheus.TrackDBOperation("insert")(time.Now())
	if result := db.Create(&business); result.Error != nil {
		log.Error("Failed to create business",
			zap.Error(result.Error),
			zap.String("orphaned_banner", bannerResult.Path),
			zap.String("orphaned_logo", logoResult.Path))
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "Failed to create business profile"})
	}

	// Gallery uploads stay sequential so display_order follows the owner's
	// selection order. Per-image failures are skipped, not fatal.
	for i, file := range galleryFiles {
		result, err := h.uploadFile(file, "gallery")
		if err != nil {
			log.Warn("Skipping failed gallery upload",
				zap.Int("index", i),
				zap.Error(err))
			continue
		}
		image := model.Image{
			BusinessID:   business.ID,
			URL:          result.URL,
			DisplayOrder: i,
		}
		if err := db.Create(&image).Error; err != nil {
			log.Warn("Failed to record gallery image",
				zap.Int("index", i),
				zap.Error(err))
		}
	}

	// Services pair by position; empty names are skipped
	serviceNames := form.Value["service_name"]
	servicePrices := form.Value["service_price"]
	for i, svcName := range serviceNames {
		if strings.TrimSpace(svcName) == "" {
			continue
		}
		price := ""
		if i < len(servicePrices) {
			price = servicePrices[i]
		}
		service := model.Service{
			BusinessID: business.ID,
			Name:       textutil.SanitizeHTML(svcName),
			Price:      price,
		}
		if err := db.Create(&service).Error; err != nil {
			log.Warn("Failed to record service",
				zap.String("name", svcName),
				zap.Error(err))
		}
	}

	// Tags: lookup-or-create by slug, then link. The lookup and create are
	// not atomic; concurrent submissions of the same new tag can race.
	for _, tagName := range strings.Split(c.FormValue("tags"), ",") {
		tagName = strings.TrimSpace(tagName)
		if tagName == "" {
			continue
		}
		tagSlug := textutil.GenerateSlug(tagName)

		var tag model.Tag
		if err := db.Where("slug = ?", tagSlug).First(&tag).Error; err != nil {
			tag = model.Tag{Name: tagName, Slug: tagSlug}
			if err := db.Create(&tag).Error; err != nil {
				log.Warn("Failed to create tag",
					zap.String("slug", tagSlug),
					zap.Error(err))
				continue
			}
		}

		link := model.BusinessTag{BusinessID: business.ID, TagID: tag.ID}
		if err := db.Create(&link).Error; err != nil {
			log.Warn("Failed to link tag",
				zap.String("slug", tagSlug),
				zap.Error(err))
		}
	}

	prometheus.RecordListingCreated("business")
	log.Info("Business profile created",
		zap.Uint("business_id", business.ID),
		zap.String("slug", business.Slug),
		zap.Uint("user_id", userID))

	return c.JSON(http.StatusCreated, echo.Map{
		"message":  "Business profile created successfully",
		"business": business,
	})
}

// uploadFile opens a multipart file header and stores it under prefix
func (h *BusinessHandler) uploadFile(fh *multipart.FileHeader, prefix string) (*storage.UploadResult, error) {
	return uploadMultipart(h.store, fh, prefix)
}

func uploadMultipart(store *storage.Store, fh *multipart.FileHeader, prefix string) (*storage.UploadResult, error) {
	src, err := fh.Open()
	if err != nil {
		prometheus.RecordUpload(prefix, "error")
		return nil, err
	}
	defer src.Close()

	result, err := store.Upload(fh.Filename, detectContentType(fh), fh.Size, src, prefix)
	if err != nil {
		prometheus.RecordUpload(prefix, "error")
		return nil, err
	}
	prometheus.RecordUpload(prefix, "ok")
	return result, nil
}

func detectContentType(fh *multipart.FileHeader) string {
	ct := fh.Header.Get("Content-Type")
	if idx := strings.Index(ct, ";"); idx >= 0 {
		ct = ct[:idx]
	}
	return strings.TrimSpace(ct)
}

func parseCoord(value string) *float64 {
	if value == "" {
		return nil
	}
	f, err := strconv.ParseFloat(value, 64)
	if err != nil {
		return nil
	}
	return &f
}
