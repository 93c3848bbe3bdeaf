package middleware

import (
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	domainerrors "dispatch/internal/domain/errors"
	"dispatch/internal/errors"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
)

func newErrorTestContext(t *testing.T) (echo.Context, *httptest.ResponseRecorder) {
	t.Helper()

	e := echo.New()
	req := httptest.NewRequest(http.MethodPost, "/v1/routes/optimize", nil)
	rec := httptest.NewRecorder()

	return e.NewContext(req, rec), rec
}

func newErrorMiddleware() *ErrorMiddleware {
	return NewErrorMiddleware(slog.New(slog.NewTextHandler(io.Discard, nil)))
}

func TestHandleHTTPError_AppErrorMapsToItsStatus(t *testing.T) {
	c, rec := newErrorTestContext(t)

	newErrorMiddleware().HandleHTTPError(domainerrors.ErrValidationFailed.WithDetails("stops is required"), c)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	body := rec.Body.String()
	assert.Contains(t, body, `"success":false`)
	assert.Contains(t, body, "VALIDATION_FAILED")
	assert.Contains(t, body, "stops is required")
}

func TestHandleHTTPError_CacheUnavailableMapsTo503(t *testing.T) {
	c, rec := newErrorTestContext(t)

	newErrorMiddleware().HandleHTTPError(domainerrors.ErrCacheUnavailable, c)

	assert.Equal(t, http.StatusServiceUnavailable, rec.Code)
	assert.Contains(t, rec.Body.String(), "CACHE_UNAVAILABLE")
}

func TestHandleHTTPError_EchoHTTPErrorPassesThrough(t *testing.T) {
	c, rec := newErrorTestContext(t)

	newErrorMiddleware().HandleHTTPError(echo.NewHTTPError(http.StatusNotFound, "route not found"), c)

	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Contains(t, rec.Body.String(), "HTTP_ERROR")
}

func TestHandleHTTPError_UnknownErrorIsInternal(t *testing.T) {
	c, rec := newErrorTestContext(t)

	newErrorMiddleware().HandleHTTPError(errors.New("boom"), c)

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	body := rec.Body.String()
	assert.Contains(t, body, "INTERNAL_ERROR")
	assert.Contains(t, body, "boom")
}
