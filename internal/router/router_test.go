package router

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"regexp"
	"testing"

	"github.com/JorgeEduardo17/invoicing-microservice/internal/config"
	"github.com/JorgeEduardo17/invoicing-microservice/internal/infra"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var nonWord = regexp.MustCompile(`\W+`)

func newTestRouter(t *testing.T, opts ...func(*config.Config)) (*gin.Engine, *config.Config) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	cfg := &config.Config{
		Env:                "test",
		AppName:            "Invoicing Microservice",
		DBDriver:           "sqlite",
		DatabaseURL:        "file:" + nonWord.ReplaceAllString(t.Name(), "_") + "?mode=memory&cache=shared",
		DBMaxOpenConns:     1,
		LogLevel:           "error",
		ImagesDirectory:    t.TempDir(),
		RateLimitPerMinute: 1000,
	}
	for _, opt := range opts {
		opt(cfg)
	}
	db, err := infra.NewDatabase(cfg)
	require.NoError(t, err)
	t.Cleanup(func() {
		if sqlDB, err := db.DB(); err == nil {
			_ = sqlDB.Close()
		}
	})
	return New(cfg, db), cfg
}

func call(t *testing.T, r http.Handler, method, path string, body any) *httptest.ResponseRecorder {
	t.Helper()
	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func decode(t *testing.T, w *httptest.ResponseRecorder) map[string]any {
	t.Helper()
	var out map[string]any
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &out), w.Body.String())
	return out
}

func TestInvoiceLifecycle(t *testing.T) {
	r, _ := newTestRouter(t)

	w := call(t, r, http.MethodPost, "/person/", map[string]any{
		"name": "Ana", "surname": "Diaz", "document_type": "CC", "document": "123",
	})
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	assert.EqualValues(t, 1, decode(t, w)["id"])

	w = call(t, r, http.MethodPost, "/product/", map[string]any{
		"description": "Widget", "price": 10.5, "cost": 7, "unit_of_measure": "unit",
	})
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	product := decode(t, w)
	assert.EqualValues(t, 1, product["id"])
	assert.EqualValues(t, 10.5, product["price"])

	w = call(t, r, http.MethodPost, "/invoice/", map[string]any{
		"number": 1001, "date": "2024-01-01", "person_id": 1,
	})
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	header := decode(t, w)
	assert.EqualValues(t, 1, header["id"])
	assert.Equal(t, "2024-01-01", header["date"])
	assert.Empty(t, header["details"])

	w = call(t, r, http.MethodPost, "/invoice_detail/", map[string]any{
		"invoice_header_id": 1, "product_id": 1, "quantity": 3,
	})
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	assert.EqualValues(t, 3, decode(t, w)["quantity"])

	w = call(t, r, http.MethodGet, "/invoice/1", nil)
	require.Equal(t, http.StatusOK, w.Code)
	header = decode(t, w)
	details, ok := header["details"].([]any)
	require.True(t, ok)
	require.Len(t, details, 1)
	assert.EqualValues(t, 1, details[0].(map[string]any)["product_id"])

	// Duplicate invoice number
	w = call(t, r, http.MethodPost, "/invoice/", map[string]any{
		"number": 1001, "date": "2024-02-01", "person_id": 1,
	})
	assert.Equal(t, http.StatusConflict, w.Code)

	// Detail pointing at a product that does not exist
	w = call(t, r, http.MethodPost, "/invoice_detail/", map[string]any{
		"invoice_header_id": 1, "product_id": 999, "quantity": 1,
	})
	assert.Equal(t, http.StatusConflict, w.Code)

	// Referenced rows cannot be deleted
	assert.Equal(t, http.StatusConflict, call(t, r, http.MethodDelete, "/person/1", nil).Code)
	assert.Equal(t, http.StatusConflict, call(t, r, http.MethodDelete, "/product/1", nil).Code)

	// Deleting the header removes its lines
	assert.Equal(t, http.StatusNoContent, call(t, r, http.MethodDelete, "/invoice/1", nil).Code)
	assert.Equal(t, http.StatusNotFound, call(t, r, http.MethodGet, "/invoice/1", nil).Code)
	assert.Equal(t, http.StatusNotFound, call(t, r, http.MethodGet, "/invoice_detail/1", nil).Code)

	assert.Equal(t, http.StatusNoContent, call(t, r, http.MethodDelete, "/person/1", nil).Code)
	w = call(t, r, http.MethodGet, "/person/1", nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Equal(t, "Person not found", decode(t, w)["detail"])
}

func TestPartialUpdate(t *testing.T) {
	r, _ := newTestRouter(t)

	w := call(t, r, http.MethodPost, "/product/", map[string]any{
		"description": "Widget", "price": 10.5, "cost": 7, "unit_of_measure": "unit",
	})
	require.Equal(t, http.StatusCreated, w.Code)

	w = call(t, r, http.MethodPut, "/product/1", map[string]any{"price": 0})
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	product := decode(t, w)
	assert.EqualValues(t, 0, product["price"])
	assert.EqualValues(t, 7, product["cost"])
	assert.Equal(t, "Widget", product["description"])

	w = call(t, r, http.MethodPut, "/product/1", map[string]any{})
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "Widget", decode(t, w)["description"])

	assert.Equal(t, http.StatusNotFound, call(t, r, http.MethodPut, "/product/42", map[string]any{"price": 1}).Code)
}

func TestListPagination(t *testing.T) {
	r, _ := newTestRouter(t)

	w := call(t, r, http.MethodGet, "/person/", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `[]`, w.Body.String())

	for _, doc := range []string{"1", "2", "3"} {
		w = call(t, r, http.MethodPost, "/person/", map[string]any{
			"name": "P" + doc, "surname": "S", "document_type": "CC", "document": doc,
		})
		require.Equal(t, http.StatusCreated, w.Code)
	}

	w = call(t, r, http.MethodGet, "/person/?skip=1&limit=1", nil)
	require.Equal(t, http.StatusOK, w.Code)
	var page []map[string]any
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &page))
	require.Len(t, page, 1)
	assert.Equal(t, "2", page[0]["document"])

	w = call(t, r, http.MethodGet, "/person/?skip=10", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `[]`, w.Body.String())
}

func TestAmbientEndpoints(t *testing.T) {
	r, cfg := newTestRouter(t)

	w := call(t, r, http.MethodGet, "/health", nil)
	require.Equal(t, http.StatusOK, w.Code)
	health := decode(t, w)
	assert.Equal(t, true, health["ok"])
	assert.Equal(t, "Invoicing Microservice", health["service"])
	assert.Equal(t, "connected", health["db"])
	assert.NotEmpty(t, w.Header().Get("X-Request-ID"))

	call(t, r, http.MethodGet, "/person/", nil)
	w = call(t, r, http.MethodGet, "/metrics", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `invoicing_http_requests_total{method="GET",route="/person/",status="200"}`)

	require.NoError(t, os.WriteFile(filepath.Join(cfg.ImagesDirectory, "logo.txt"), []byte("logo"), 0o600))
	w = call(t, r, http.MethodGet, "/images/logo.txt", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "logo", w.Body.String())

	w = call(t, r, http.MethodGet, "/swagger/doc.json", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "/invoice_detail/{id}")
}

func TestProductDecimalsRoundTrip(t *testing.T) {
	r, _ := newTestRouter(t)

	w := call(t, r, http.MethodPost, "/product/", map[string]any{
		"description": "Widget", "price": 9.999, "cost": 7, "unit_of_measure": "unit",
	})
	assert.Equal(t, http.StatusUnprocessableEntity, w.Code, w.Body.String())

	w = call(t, r, http.MethodPost, "/product/", map[string]any{
		"description": "Widget", "price": 1e11, "cost": 7, "unit_of_measure": "unit",
	})
	assert.Equal(t, http.StatusUnprocessableEntity, w.Code, w.Body.String())

	w = call(t, r, http.MethodPost, "/product/", map[string]any{
		"description": "Widget", "price": 9.99, "cost": 7, "unit_of_measure": "unit",
	})
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	created := decode(t, w)

	w = call(t, r, http.MethodGet, "/product/1", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, created, decode(t, w))

	w = call(t, r, http.MethodPut, "/product/1", map[string]any{"cost": 0.125})
	assert.Equal(t, http.StatusUnprocessableEntity, w.Code)
}

func TestHealth_StoreUnreachable(t *testing.T) {
	gin.SetMode(gin.TestMode)
	cfg := &config.Config{
		Env:         "test",
		AppName:     "Invoicing Microservice",
		DBDriver:    "sqlite",
		DatabaseURL: "file:health_down?mode=memory&cache=shared",
		LogLevel:    "error",
	}
	db, err := infra.NewDatabase(cfg)
	require.NoError(t, err)
	r := New(cfg, db)

	sqlDB, err := db.DB()
	require.NoError(t, err)
	require.NoError(t, sqlDB.Close())

	w := call(t, r, http.MethodGet, "/health", nil)
	assert.Equal(t, http.StatusServiceUnavailable, w.Code)
	health := decode(t, w)
	assert.Equal(t, false, health["ok"])
	assert.Equal(t, "unreachable", health["db"])
}

func rateLimitedTo(n int) func(*config.Config) {
	return func(cfg *config.Config) { cfg.RateLimitPerMinute = n }
}

func TestRateLimit_SpoofedForwardedForIsIgnored(t *testing.T) {
	r, _ := newTestRouter(t, rateLimitedTo(2))

	for i, ip := range []string{"1.1.1.1", "2.2.2.2", "3.3.3.3"} {
		req := httptest.NewRequest(http.MethodGet, "/person/", nil)
		req.Header.Set("X-Forwarded-For", ip)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)
		if i < 2 {
			assert.Equal(t, http.StatusOK, w.Code)
		} else {
			assert.Equal(t, http.StatusTooManyRequests, w.Code)
		}
	}
}

func TestRateLimit_TrustedProxyForwardsClientIP(t *testing.T) {
	r, _ := newTestRouter(t, rateLimitedTo(1), func(cfg *config.Config) {
		// httptest requests come from 192.0.2.1
		cfg.TrustedProxies = "192.0.2.0/24"
	})

	for _, ip := range []string{"1.1.1.1", "2.2.2.2"} {
		req := httptest.NewRequest(http.MethodGet, "/person/", nil)
		req.Header.Set("X-Forwarded-For", ip)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)
		assert.Equal(t, http.StatusOK, w.Code, "client %s", ip)
	}
}

func TestInvalidTrustedProxiesFallsBackToNone(t *testing.T) {
	r, _ := newTestRouter(t, rateLimitedTo(1), func(cfg *config.Config) {
		cfg.TrustedProxies = "not-an-address"
	})

	codes := make([]int, 0, 2)
	for _, ip := range []string{"1.1.1.1", "2.2.2.2"} {
		req := httptest.NewRequest(http.MethodGet, "/person/", nil)
		req.Header.Set("X-Forwarded-For", ip)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)
		codes = append(codes, w.Code)
	}
	assert.Equal(t, []int{http.StatusOK, http.StatusTooManyRequests}, codes)
}
