package handler

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
)

type stubPinger struct {
	err error
}

func (s stubPinger) Ping(context.Context) error {
	return s.err
}

func serveHealth(h *HealthHandler) *httptest.ResponseRecorder {
	e := echo.New()
	e.GET("/health", h.Handle)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/health", nil))
	return rec
}

func TestHealthHandler_OK(t *testing.T) {
	rec := serveHealth(NewHealthHandler(stubPinger{}))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"status":"ok"`)
	assert.Contains(t, rec.Body.String(), `"service":"user-hub"`)
}

func TestHealthHandler_DatabaseDown(t *testing.T) {
	rec := serveHealth(NewHealthHandler(stubPinger{err: errors.New("dial refused")}))

	assert.Equal(t, http.StatusServiceUnavailable, rec.Code)
	assert.Contains(t, rec.Body.String(), `"status":"degraded"`)
}

func TestHealthHandler_NoPinger(t *testing.T) {
	rec := serveHealth(NewHealthHandler(nil))

	assert.Equal(t, http.StatusOK, rec.Code)
}
