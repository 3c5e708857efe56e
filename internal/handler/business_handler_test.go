package handler

import (
	"bytes"
	"fmt"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"net/textproto"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/labstack/echo/v4"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"meroprofile/pkg/config"
	"meroprofile/pkg/database"
	"meroprofile/pkg/storage"
)

// mockDB swaps the global DB for a sqlmock-backed gorm handle for one test.
// Default transactions are skipped so each insert maps to one statement.
func mockDB(t *testing.T) sqlmock.Sqlmock {
	t.Helper()
	conn, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("failed to create sqlmock: %v", err)
	}
	db, err := gorm.Open(postgres.New(postgres.Config{
		Conn:                 conn,
		PreferSimpleProtocol: true,
	}), &gorm.Config{SkipDefaultTransaction: true})
	if err != nil {
		t.Fatalf("failed to open gorm: %v", err)
	}

	prev := database.GetDB()
	database.SetDB(db)
	t.Cleanup(func() {
		database.SetDB(prev)
		conn.Close()
	})
	return mock
}

func handlerStore(t *testing.T) *storage.Store {
	t.Helper()
	s, err := storage.NewStore(&config.StorageConfig{
		Dir:          t.TempDir(),
		Bucket:       "meroprofile",
		BaseURL:      "http://localhost:8080/storage",
		MaxFileSize:  5 * 1024 * 1024,
		AllowedTypes: []string{"image/jpeg", "image/jpg", "image/png", "image/webp"},
	})
	if err != nil {
		t.Fatalf("failed to create store: %v", err)
	}
	return s
}

type formFile struct {
	field       string
	filename    string
	contentType string
	content     []byte
}

// buildProfileForm assembles a multipart body with explicit per-part content
// types, since multipart.Writer.CreateFormFile always writes octet-stream.
func buildProfileForm(t *testing.T, fields map[string]string, files []formFile) (*bytes.Buffer, string) {
	t.Helper()
	var buf bytes.Buffer
	w := multipart.NewWriter(&buf)
	for name, value := range fields {
		if err := w.WriteField(name, value); err != nil {
			t.Fatalf("failed to write field %q: %v", name, err)
		}
	}
	for _, f := range files {
		h := textproto.MIMEHeader{}
		h.Set("Content-Disposition",
			fmt.Sprintf(`form-data; name=%q; filename=%q`, f.field, f.filename))
		h.Set("Content-Type", f.contentType)
		part, err := w.CreatePart(h)
		if err != nil {
			t.Fatalf("failed to create part %q: %v", f.field, err)
		}
		if _, err := part.Write(f.content); err != nil {
			t.Fatalf("failed to write part %q: %v", f.field, err)
		}
	}
	if err := w.Close(); err != nil {
		t.Fatalf("failed to close multipart writer: %v", err)
	}
	return &buf, w.FormDataContentType()
}

func createBusinessContext(t *testing.T, body *bytes.Buffer, contentType string) (echo.Context, *httptest.ResponseRecorder) {
	t.Helper()
	e := echo.New()
	req := httptest.NewRequest(http.MethodPost, "/api/businesses", body)
	req.Header.Set(echo.HeaderContentType, contentType)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.Set("user_id", uint(7))
	return c, rec
}

func TestCreateBusinessAbortsWhenBannerUploadFails(t *testing.T) {
	mock := mockDB(t)
	store := handlerStore(t)

	// A regular file where the banners directory belongs makes the banner
	// upload fail after validation has already passed.
	if err := os.WriteFile(filepath.Join(store.Root(), "banners"), []byte("x"), 0o644); err != nil {
		t.Fatalf("failed to block banners directory: %v", err)
	}

	body, contentType := buildProfileForm(t,
		map[string]string{"name": "Himalayan Cafe"},
		[]formFile{
			{"banner", "banner.png", "image/png", []byte("banner")},
			{"logo", "logo.png", "image/png", []byte("logo")},
		})
	c, rec := createBusinessContext(t, body, contentType)

	h := NewBusinessHandler(store)
	if err := h.Create(c); err != nil {
		t.Fatalf("Create returned error: %v", err)
	}
	if rec.Code != http.StatusInternalServerError {
		t.Fatalf("expected 500, got %d: %s", rec.Code, rec.Body.String())
	}
	if !strings.Contains(rec.Body.String(), "banner") {
		t.Errorf("response does not name the failed step: %s", rec.Body.String())
	}
	// No business, image, service or tag row may exist after the abort.
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Errorf("database was touched after upload failure: %v", err)
	}
}

func TestCreateBusinessRejectsBadBannerBeforeAnyUpload(t *testing.T) {
	mock := mockDB(t)
	store := handlerStore(t)

	body, contentType := buildProfileForm(t,
		map[string]string{"name": "Himalayan Cafe"},
		[]formFile{
			{"banner", "banner.pdf", "application/pdf", []byte("pdf")},
			{"logo", "logo.png", "image/png", []byte("logo")},
		})
	c, rec := createBusinessContext(t, body, contentType)

	h := NewBusinessHandler(store)
	if err := h.Create(c); err != nil {
		t.Fatalf("Create returned error: %v", err)
	}
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d: %s", rec.Code, rec.Body.String())
	}
	if entries, err := os.ReadDir(store.Root()); err != nil || len(entries) != 0 {
		t.Errorf("bucket not empty after rejected submission: %v (err %v)", entries, err)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Errorf("database was touched for a rejected submission: %v", err)
	}
}

func TestCreateBusinessSkipsFailedGalleryUploadsKeepingOrder(t *testing.T) {
	mock := mockDB(t)
	store := handlerStore(t)

	body, contentType := buildProfileForm(t,
		map[string]string{"name": "Himalayan Cafe", "description": "Best coffee in town"},
		[]formFile{
			{"banner", "banner.png", "image/png", []byte("banner")},
			{"logo", "logo.png", "image/png", []byte("logo")},
			{"gallery", "one.png", "image/png", []byte("one")},
			{"gallery", "two.pdf", "application/pdf", []byte("two")},
			{"gallery", "three.png", "image/png", []byte("three")},
		})
	c, rec := createBusinessContext(t, body, contentType)

	mock.ExpectQuery(`INSERT INTO "businesses"`).
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(42))
	// The rejected middle upload keeps its selection index, so the two
	// surviving images insert with display_order 0 and 2.
	mock.ExpectQuery(`INSERT INTO "images"`).
		WithArgs(sqlmock.AnyArg(), sqlmock.AnyArg(), 0, sqlmock.AnyArg()).
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(1))
	mock.ExpectQuery(`INSERT INTO "images"`).
		WithArgs(sqlmock.AnyArg(), sqlmock.AnyArg(), 2, sqlmock.AnyArg()).
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(2))

	h := NewBusinessHandler(store)
	if err := h.Create(c); err != nil {
		t.Fatalf("Create returned error: %v", err)
	}
	if rec.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d: %s", rec.Code, rec.Body.String())
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Errorf("unexpected insert sequence: %v", err)
	}
}

func TestCreateBusinessRejectsOversizedGallery(t *testing.T) {
	mock := mockDB(t)
	store := handlerStore(t)

	files := []formFile{
		{"banner", "banner.png", "image/png", []byte("banner")},
		{"logo", "logo.png", "image/png", []byte("logo")},
	}
	for i := 0; i < maxGalleryImages+1; i++ {
		files = append(files, formFile{"gallery", fmt.Sprintf("g%d.png", i), "image/png", []byte("x")})
	}
	body, contentType := buildProfileForm(t, map[string]string{"name": "Himalayan Cafe"}, files)
	c, rec := createBusinessContext(t, body, contentType)

	h := NewBusinessHandler(store)
	if err := h.Create(c); err != nil {
		t.Fatalf("Create returned error: %v", err)
	}
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d: %s", rec.Code, rec.Body.String())
	}
	if entries, err := os.ReadDir(store.Root()); err != nil || len(entries) != 0 {
		t.Errorf("bucket not empty after rejected submission: %v (err %v)", entries, err)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Errorf("database was touched for a rejected submission: %v", err)
	}
}
