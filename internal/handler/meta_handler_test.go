package handler

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
)

func TestMeta(t *testing.T) {
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/api/meta", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	if err := Meta(c); err != nil {
		t.Fatalf("Meta returned error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}

	var body struct {
		Categories  []string `json:"categories"`
		Cities      []string `json:"cities"`
		PriceRanges []string `json:"price_ranges"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}
	if len(body.Categories) != 16 || len(body.Cities) != 5 || len(body.PriceRanges) != 4 {
		t.Fatalf("unexpected vocabulary sizes: %d/%d/%d",
			len(body.Categories), len(body.Cities), len(body.PriceRanges))
	}
}

func TestHealthCheck(t *testing.T) {
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	if err := HealthCheck(c); err != nil {
		t.Fatalf("HealthCheck returned error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
}
