package handler

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"apparelstore/internal/logger"
	"apparelstore/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zapcore"
)

const testBaseURL = "https://api.apparelstore.com/errors"

func newProblemEcho(t *testing.T, log *logger.Logger) *echo.Echo {
	t.Helper()
	e := echo.New()
	e.Validator = NewRequestValidator()
	e.HTTPErrorHandler = NewHTTPErrorHandler(testBaseURL, log)
	return e
}

func serve(e *echo.Echo, method, path, body string) *httptest.ResponseRecorder {
	var req *http.Request
	if body != "" {
		req = httptest.NewRequest(method, path, strings.NewReader(body))
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	} else {
		req = httptest.NewRequest(method, path, nil)
	}
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)
	return rec
}

func decodeProblem(t *testing.T, rec *httptest.ResponseRecorder) ProblemDetails {
	t.Helper()
	assert.Equal(t, MIMEApplicationProblemJSON, rec.Header().Get(echo.HeaderContentType))
	var p ProblemDetails
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &p), "body=%s", rec.Body.String())
	return p
}

func TestHTTPErrorHandler(t *testing.T) {
	log, logs := logger.Observed(zapcore.ErrorLevel)
	e := newProblemEcho(t, log)

	e.GET("/validation", func(c echo.Context) error {
		return usecase.ValidationError(map[string]string{"price": "Price must be positive"})
	})
	e.GET("/not-found", func(c echo.Context) error {
		return usecase.NotFound("Apparel not found with id: %d", 99)
	})
	e.GET("/order", func(c echo.Context) error {
		return usecase.ApparelOrderError("Customer not found with id: %d", 5)
	})
	e.GET("/conflict", func(c echo.Context) error {
		return usecase.NewHTTPError(http.StatusConflict, usecase.CodeConflict, "stale")
	})
	e.GET("/boom", func(c echo.Context) error {
		return errors.New("pq: connection refused")
	})
	e.GET("/only-get", func(c echo.Context) error { return c.NoContent(http.StatusOK) })

	tests := []struct {
		name       string
		method     string
		path       string
		wantStatus int
		wantType   string
		wantTitle  string
		wantDetail string
	}{
		{"validation", http.MethodGet, "/validation", 400, "validation-error", "Validation Error", "Input validation failed"},
		{"not found", http.MethodGet, "/not-found", 404, "not-found", "Resource Not Found", "Apparel not found with id: 99"},
		{"apparel order", http.MethodGet, "/order", 400, "apparel-order-error", "Apparel Order Error", "Customer not found with id: 5"},
		{"conflict", http.MethodGet, "/conflict", 409, "conflict", "Conflict", "stale"},
		{"unknown error hides details", http.MethodGet, "/boom", 500, "internal-error", "Internal Server Error", "An unexpected error occurred"},
		{"unknown route", http.MethodGet, "/nope", 404, "not-found", "Resource Not Found", ""},
		{"wrong method", http.MethodPost, "/only-get", 405, "method-not-allowed", "Method Not Allowed", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := serve(e, tt.method, tt.path, "")
			require.Equal(t, tt.wantStatus, rec.Code)

			p := decodeProblem(t, rec)
			assert.Equal(t, testBaseURL+"/"+tt.wantType, p.Type)
			assert.Equal(t, tt.wantTitle, p.Title)
			assert.Equal(t, tt.wantStatus, p.Status)
			assert.Equal(t, tt.path, p.Instance)
			if tt.wantDetail != "" {
				assert.Equal(t, tt.wantDetail, p.Detail)
			}
		})
	}

	t.Run("validation fields become extensions", func(t *testing.T) {
		p := decodeProblem(t, serve(e, http.MethodGet, "/validation", ""))
		assert.Equal(t, map[string]string{"price": "Price must be positive"}, p.Extensions)
	})

	t.Run("only server errors are logged", func(t *testing.T) {
		logs.TakeAll()
		serve(e, http.MethodGet, "/not-found", "")
		assert.Zero(t, logs.Len())

		serve(e, http.MethodGet, "/boom", "")
		entries := logs.TakeAll()
		require.Len(t, entries, 1)
		assert.Equal(t, "/boom", entries[0].ContextMap()["path"])
	})
}

func TestParams(t *testing.T) {
	e := newProblemEcho(t, logger.Nop())

	e.GET("/items/:id", func(c echo.Context) error {
		id, err := pathID(c, "id")
		if err != nil {
			return err
		}
		page, err := queryInt(c, "page", 0)
		if err != nil {
			return err
		}
		name := queryString(c, "name")
		return c.JSON(http.StatusOK, map[string]interface{}{"id": id, "page": page, "name": name})
	})
	e.POST("/items", func(c echo.Context) error {
		var d struct {
			Name string `json:"name" validate:"notblank"`
		}
		if err := bindAndValidate(c, &d); err != nil {
			return err
		}
		return c.NoContent(http.StatusNoContent)
	})

	t.Run("parses path and query", func(t *testing.T) {
		rec := serve(e, http.MethodGet, "/items/7?page=2&name=", "")
		require.Equal(t, http.StatusOK, rec.Code)
		assert.JSONEq(t, `{"id":7,"page":2,"name":""}`, rec.Body.String())
	})

	t.Run("absent query string is null", func(t *testing.T) {
		rec := serve(e, http.MethodGet, "/items/7", "")
		require.Equal(t, http.StatusOK, rec.Code)
		assert.JSONEq(t, `{"id":7,"page":0,"name":null}`, rec.Body.String())
	})

	t.Run("non numeric path id", func(t *testing.T) {
		rec := serve(e, http.MethodGet, "/items/abc", "")
		require.Equal(t, http.StatusBadRequest, rec.Code)
		p := decodeProblem(t, rec)
		assert.Equal(t, testBaseURL+"/constraint-violation", p.Type)
		assert.Equal(t, map[string]string{"id": "must be an integer"}, p.Extensions)
	})

	t.Run("non numeric page", func(t *testing.T) {
		rec := serve(e, http.MethodGet, "/items/1?page=x", "")
		require.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Equal(t, map[string]string{"page": "must be an integer"}, decodeProblem(t, rec).Extensions)
	})

	t.Run("malformed body", func(t *testing.T) {
		rec := serve(e, http.MethodPost, "/items", `{"name":`)
		require.Equal(t, http.StatusBadRequest, rec.Code)
		p := decodeProblem(t, rec)
		assert.Equal(t, testBaseURL+"/constraint-violation", p.Type)
		assert.Equal(t, "Malformed request body", p.Detail)
	})

	t.Run("invalid body", func(t *testing.T) {
		rec := serve(e, http.MethodPost, "/items", `{"name":" "}`)
		require.Equal(t, http.StatusBadRequest, rec.Code)
		p := decodeProblem(t, rec)
		assert.Equal(t, testBaseURL+"/validation-error", p.Type)
		assert.Equal(t, map[string]string{"name": "Name is required"}, p.Extensions)
	})
}
