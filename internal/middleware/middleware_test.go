package middleware

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"careerpath/internal/domain"

	"github.com/gofiber/fiber/v2"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestApp(handler fiber.Handler) *fiber.App {
	app := fiber.New(fiber.Config{ErrorHandler: ErrorHandler()})
	app.Use(RequestID())
	app.Get("/test", handler)
	return app
}

func TestErrorHandler_StatusMapping(t *testing.T) {
	tests := []struct {
		name       string
		err        error
		wantStatus int
		wantCode   string
	}{
		{"NotFound", domain.NewNotFoundError("no roadmap"), http.StatusNotFound, "NOT_FOUND"},
		{"InvalidInput", domain.NewInvalidInputError("bad"), http.StatusBadRequest, "INVALID_INPUT"},
		{"StoreError", domain.NewStoreError("get", "roadmap", errors.New("dial tcp")), http.StatusServiceUnavailable, "STORE_ERROR"},
		{"CorruptData", domain.NewCorruptDataError("quizHistory", errors.New("bad json")), http.StatusInternalServerError, "CORRUPT_DATA"},
		{"Internal", domain.NewInternalError("boom", nil), http.StatusInternalServerError, "INTERNAL_ERROR"},
		{"WrappedDomainError", errorsJoin(domain.NewNotFoundError("topic")), http.StatusNotFound, "NOT_FOUND"},
		{"FiberError", fiber.NewError(http.StatusMethodNotAllowed, "nope"), http.StatusMethodNotAllowed, "HTTP_ERROR"},
		{"Unknown", errors.New("unexpected"), http.StatusInternalServerError, "INTERNAL_ERROR"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			app := newTestApp(func(c *fiber.Ctx) error { return tt.err })

			resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/test", nil))
			require.NoError(t, err)
			assert.Equal(t, tt.wantStatus, resp.StatusCode)

			var body ErrorResponse
			require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
			assert.Equal(t, tt.wantCode, body.Code)
			assert.Equal(t, tt.wantStatus, body.Status)
			assert.Equal(t, resp.Header.Get(HeaderRequestID), body.RequestID)
		})
	}
}

func errorsJoin(err error) error {
	return errors.Join(errors.New("context"), err)
}

func TestErrorHandler_ValidationErrors(t *testing.T) {
	app := newTestApp(func(c *fiber.Ctx) error {
		return domain.ValidationErrors{
			domain.NewMissingFieldError("topic"),
			domain.NewOutOfRangeError("answers", 99, 0, 50),
		}
	})

	resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/test", nil))
	require.NoError(t, err)
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)

	var body ValidationErrorResponse
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.Equal(t, "VALIDATION_ERROR", body.Code)
	require.Len(t, body.Errors, 2)
	assert.Equal(t, "topic", body.Errors[0].Field)
	assert.Equal(t, domain.CodeOutOfRange, body.Errors[1].Code)
}

func TestErrorHandler_Details(t *testing.T) {
	app := newTestApp(func(c *fiber.Ctx) error {
		return domain.NewNotFoundError("topic not found").WithContext("topic", "Docker")
	})

	resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/test", nil))
	require.NoError(t, err)

	var body ErrorResponse
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.Equal(t, "Docker", body.Details["topic"])
}

func TestRequestID(t *testing.T) {
	var seen string
	app := newTestApp(func(c *fiber.Ctx) error {
		seen = RequestIDFromCtx(c)
		return c.SendString("ok")
	})

	t.Run("Generated", func(t *testing.T) {
		resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/test", nil))
		require.NoError(t, err)
		id := resp.Header.Get(HeaderRequestID)
		assert.Len(t, id, 26)
		assert.Equal(t, id, seen)
	})

	t.Run("PropagatesValidClientID", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/test", nil)
		req.Header.Set(HeaderRequestID, "01ARZ3NDEKTSV4RRFFQ69G5FAV")
		resp, err := app.Test(req)
		require.NoError(t, err)
		assert.Equal(t, "01ARZ3NDEKTSV4RRFFQ69G5FAV", resp.Header.Get(HeaderRequestID))
	})

	t.Run("ReplacesInvalidClientID", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/test", nil)
		req.Header.Set(HeaderRequestID, "<script>")
		resp, err := app.Test(req)
		require.NoError(t, err)
		assert.NotEqual(t, "<script>", resp.Header.Get(HeaderRequestID))
		assert.Len(t, resp.Header.Get(HeaderRequestID), 26)
	})
}

func TestValidateTopicQuery(t *testing.T) {
	app := fiber.New(fiber.Config{ErrorHandler: ErrorHandler()})
	app.Get("/quiz", NewValidationMiddleware().ValidateTopicQuery(), func(c *fiber.Ctx) error {
		return c.SendString(c.Locals(LocalValidatedTopic).(string))
	})

	resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/quiz?topic=React", nil))
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	body, _ := io.ReadAll(resp.Body)
	assert.Equal(t, "React", string(body))

	resp, err = app.Test(httptest.NewRequest(http.MethodGet, "/quiz", nil))
	require.NoError(t, err)
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
}

func TestHTTPMetrics(t *testing.T) {
	reg := prometheus.NewRegistry()
	metrics := NewHTTPMetrics(reg)

	app := fiber.New(fiber.Config{ErrorHandler: ErrorHandler()})
	app.Use(metrics.Handler())
	app.Get("/roadmap/topics/:name", func(c *fiber.Ctx) error {
		if c.Params("name") == "missing" {
			return domain.NewNotFoundError("topic not found")
		}
		return c.SendString("ok")
	})
	app.Get("/metrics", PrometheusHandler(reg))

	for _, path := range []string{"/roadmap/topics/a", "/roadmap/topics/b", "/roadmap/topics/missing"} {
		resp, err := app.Test(httptest.NewRequest(http.MethodGet, path, nil))
		require.NoError(t, err)
		_ = resp.Body.Close()
	}

	assert.Equal(t, float64(2), testutil.ToFloat64(metrics.requests.WithLabelValues("GET", "/roadmap/topics/:name", "200")))
	assert.Equal(t, float64(1), testutil.ToFloat64(metrics.requests.WithLabelValues("GET", "/roadmap/topics/:name", "404")))

	resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/metrics", nil))
	require.NoError(t, err)
	body, _ := io.ReadAll(resp.Body)
	assert.True(t, strings.Contains(string(body), "careerpath_http_requests_total"))
}
