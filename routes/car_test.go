package routes

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-playground/validator/v10"
	"github.com/kataras/iris/v12"
)

func buildCarTestApp(t *testing.T) *iris.Application {
	t.Helper()
	app := iris.New()
	app.Validator = validator.New()

	cars := app.Party("/api/cars")
	{
		cars.Get("/{id:uint}/calendar", GetCarCalendar)
	}

	if err := app.Build(); err != nil {
		t.Fatalf("build app: %v", err)
	}
	return app
}

func TestCarCalendarRejectsBadParams(t *testing.T) {
	app := buildCarTestApp(t)

	// Parameter validation runs before any storage access
	req := httptest.NewRequest(http.MethodGet, "/api/cars/1/calendar?month=June", nil)
	resp := httptest.NewRecorder()
	app.ServeHTTP(resp, req)
	if resp.Code != http.StatusBadRequest {
		t.Fatalf("expected 400 for malformed month, got %d", resp.Code)
	}

	req2 := httptest.NewRequest(http.MethodGet, "/api/cars/1/calendar?month=2024-06&anchor=12-06-2024", nil)
	resp2 := httptest.NewRecorder()
	app.ServeHTTP(resp2, req2)
	if resp2.Code != http.StatusBadRequest {
		t.Fatalf("expected 400 for malformed anchor, got %d", resp2.Code)
	}
}
