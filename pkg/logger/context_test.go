package logger

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"
)

func TestEchoLoggerRoundTrip(t *testing.T) {
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	c := e.NewContext(req, httptest.NewRecorder())

	scoped := zap.NewNop().With(zap.String("request_id", "abc"))
	WithEcho(c, scoped)
	if got := FromEcho(c); got != scoped {
		t.Errorf("FromEcho returned a different logger than WithEcho stored")
	}
}

func TestFromEchoFallsBackToGlobal(t *testing.T) {
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	c := e.NewContext(req, httptest.NewRecorder())

	if FromEcho(c) == nil {
		t.Errorf("FromEcho returned nil without an attached logger")
	}
}

func TestContextRoundTrip(t *testing.T) {
	scoped := zap.NewNop()
	ctx := WithContext(context.Background(), scoped)
	if got := FromContext(ctx); got != scoped {
		t.Errorf("FromContext returned a different logger than WithContext stored")
	}
	if FromContext(context.Background()) == nil {
		t.Errorf("FromContext returned nil for a bare context")
	}
}
