package handler

import (
	"context"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"dispatch/internal/delivery/http/validator"
	"dispatch/internal/domain/entity"
	domainerrors "dispatch/internal/domain/errors"
	"dispatch/internal/errors"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type mockOptimizerUsecase struct {
	mock.Mock
}

func (m *mockOptimizerUsecase) Optimize(ctx context.Context, req *entity.OptimizeRequest) (*entity.OptimizeResponse, error) {
	args := m.Called(ctx, req)
	if res := args.Get(0); res != nil {
		return res.(*entity.OptimizeResponse), args.Error(1)
	}

	return nil, args.Error(1)
}

func newTestContext(t *testing.T, body string) (echo.Context, *httptest.ResponseRecorder) {
	t.Helper()

	e := echo.New()
	e.Validator = validator.New()

	req := httptest.NewRequest(http.MethodPost, "/v1/routes/optimize", strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()

	return e.NewContext(req, rec), rec
}

func TestOptimizeHandler_Success(t *testing.T) {
	uc := &mockOptimizerUsecase{}
	uc.On("Optimize", mock.Anything, mock.MatchedBy(func(req *entity.OptimizeRequest) bool {
		return len(req.Stops) == 2 && req.VehicleCount == 2 &&
			req.Stops[0].ID == "a" && req.Depot != nil && req.Depot.Lat == 40.0
	})).Return(&entity.OptimizeResponse{ID: "res-1", VehicleCount: 2}, nil)

	handler := NewOptimizeHandler(uc, slog.New(slog.NewTextHandler(io.Discard, nil)))

	body := `{
		"stops": [
			{"id": "a", "lat": 40.73, "lng": -74.00},
			{"id": "b", "lat": 40.75, "lng": -73.99, "priority": 2}
		],
		"vehicles": 2,
		"depot": {"lat": 40.0, "lng": -74.0}
	}`
	c, rec := newTestContext(t, body)

	require.NoError(t, handler.Optimize(c))

	assert.Equal(t, http.StatusOK, rec.Code)
	responseBody := rec.Body.String()
	assert.Contains(t, responseBody, `"success":true`)
	assert.Contains(t, responseBody, `"res-1"`)
	uc.AssertExpectations(t)
}

func TestOptimizeHandler_MissingStopsFailsValidation(t *testing.T) {
	uc := &mockOptimizerUsecase{}
	handler := NewOptimizeHandler(uc, slog.New(slog.NewTextHandler(io.Discard, nil)))

	c, _ := newTestContext(t, `{"stops": []}`)

	err := handler.Optimize(c)
	require.Error(t, err)

	var appErr domainerrors.AppError
	require.True(t, errors.As(err, &appErr))
	assert.Equal(t, "VALIDATION_FAILED", appErr.ErrorCode())
	assert.Equal(t, http.StatusBadRequest, appErr.HTTPCode())
	uc.AssertNotCalled(t, "Optimize", mock.Anything, mock.Anything)
}

func TestOptimizeHandler_OutOfRangeLatFailsValidation(t *testing.T) {
	uc := &mockOptimizerUsecase{}
	handler := NewOptimizeHandler(uc, slog.New(slog.NewTextHandler(io.Discard, nil)))

	c, _ := newTestContext(t, `{"stops": [{"id": "a", "lat": 120.0, "lng": 10.0}]}`)

	err := handler.Optimize(c)
	require.Error(t, err)

	var appErr domainerrors.AppError
	require.True(t, errors.As(err, &appErr))
	assert.Equal(t, "VALIDATION_FAILED", appErr.ErrorCode())
	uc.AssertNotCalled(t, "Optimize", mock.Anything, mock.Anything)
}

func TestOptimizeHandler_MalformedBodyIsBindingError(t *testing.T) {
	uc := &mockOptimizerUsecase{}
	handler := NewOptimizeHandler(uc, slog.New(slog.NewTextHandler(io.Discard, nil)))

	c, rec := newTestContext(t, `{"stops": "not-an-array"`)

	require.NoError(t, handler.Optimize(c))

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "INVALID_INPUT")
}

func TestOptimizeHandler_UsecaseErrorPropagates(t *testing.T) {
	uc := &mockOptimizerUsecase{}
	uc.On("Optimize", mock.Anything, mock.Anything).Return(nil, assert.AnError)

	handler := NewOptimizeHandler(uc, slog.New(slog.NewTextHandler(io.Discard, nil)))

	c, _ := newTestContext(t, `{"stops": [{"id": "a", "lat": 40.0, "lng": -74.0}]}`)

	// The error bubbles up so the HTTPErrorHandler can map it.
	err := handler.Optimize(c)
	require.Error(t, err)
	assert.ErrorIs(t, err, assert.AnError)
}
