package middleware

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func serve(r *gin.Engine, method, path string, header http.Header) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, path, nil)
	for k, vs := range header {
		for _, v := range vs {
			req.Header.Add(k, v)
		}
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestRequestID_GeneratesAndPropagates(t *testing.T) {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(RequestID())
	r.GET("/", func(c *gin.Context) { c.String(http.StatusOK, c.GetString(RequestIDKey)) })

	w := serve(r, http.MethodGet, "/", nil)
	generated := w.Header().Get(RequestIDHeader)
	require.Len(t, generated, 36)
	assert.Equal(t, generated, w.Body.String())

	w = serve(r, http.MethodGet, "/", http.Header{RequestIDHeader: {"abc-123"}})
	assert.Equal(t, "abc-123", w.Header().Get(RequestIDHeader))
	assert.Equal(t, "abc-123", w.Body.String())

	w = serve(r, http.MethodGet, "/", http.Header{RequestIDHeader: {strings.Repeat("x", 200)}})
	assert.Len(t, w.Header().Get(RequestIDHeader), 36)
}

func TestRateLimiter_FixedWindow(t *testing.T) {
	now := time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC)
	l := newRateLimiter(2, time.Minute)
	l.now = func() time.Time { return now }

	ok, _ := l.allow("10.0.0.1")
	assert.True(t, ok)
	ok, _ = l.allow("10.0.0.1")
	assert.True(t, ok)
	ok, _ = l.allow("10.0.0.1")
	assert.False(t, ok)

	// other clients have their own budget
	ok, _ = l.allow("10.0.0.2")
	assert.True(t, ok)

	now = now.Add(time.Minute + time.Second)
	ok, _ = l.allow("10.0.0.1")
	assert.True(t, ok)
}

func TestRateLimiter_PurgesExpiredEntries(t *testing.T) {
	now := time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC)
	l := newRateLimiter(5, time.Minute)
	l.now = func() time.Time { return now }

	l.allow("10.0.0.1")
	l.allow("10.0.0.2")
	require.Len(t, l.entries, 2)

	now = now.Add(purgeInterval + time.Second)
	l.allow("10.0.0.3")
	assert.Len(t, l.entries, 1)
}

func TestRateLimiter_Middleware(t *testing.T) {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(RateLimiter(1, time.Minute))
	r.GET("/", func(c *gin.Context) { c.Status(http.StatusOK) })

	assert.Equal(t, http.StatusOK, serve(r, http.MethodGet, "/", nil).Code)
	w := serve(r, http.MethodGet, "/", nil)
	assert.Equal(t, http.StatusTooManyRequests, w.Code)
	assert.NotEmpty(t, w.Header().Get("Retry-After"))
}

func TestRateLimiter_DisabledWhenLimitNotPositive(t *testing.T) {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(RateLimiter(0, time.Minute))
	r.GET("/", func(c *gin.Context) { c.Status(http.StatusOK) })

	for i := 0; i < 5; i++ {
		assert.Equal(t, http.StatusOK, serve(r, http.MethodGet, "/", nil).Code)
	}
}

func TestRecovery_PanicBecomes500(t *testing.T) {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(Recovery())
	r.GET("/boom", func(c *gin.Context) { panic("boom") })

	w := serve(r, http.MethodGet, "/boom", nil)

	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.JSONEq(t, `{"detail":"internal server error"}`, w.Body.String())
}

func TestCORS_Preflight(t *testing.T) {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(CORS([]string{"*"}))
	r.PUT("/person/:id", func(c *gin.Context) { c.Status(http.StatusOK) })

	w := serve(r, http.MethodOptions, "/person/1", nil)

	assert.Equal(t, http.StatusNoContent, w.Code)
	assert.Equal(t, "*", w.Header().Get("Access-Control-Allow-Origin"))
	assert.Contains(t, w.Header().Get("Access-Control-Allow-Methods"), "PUT")
	assert.Contains(t, w.Header().Get("Access-Control-Allow-Methods"), "DELETE")
}

func TestCORS_AllowList(t *testing.T) {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(CORS([]string{"https://app.example.com/"}))
	r.GET("/product/", func(c *gin.Context) { c.Status(http.StatusOK) })

	w := serve(r, http.MethodGet, "/product/", http.Header{"Origin": {"https://app.example.com"}})
	assert.Equal(t, "https://app.example.com", w.Header().Get("Access-Control-Allow-Origin"))
	assert.Equal(t, "Origin", w.Header().Get("Vary"))

	w = serve(r, http.MethodGet, "/product/", http.Header{"Origin": {"https://evil.example.com"}})
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Empty(t, w.Header().Get("Access-Control-Allow-Origin"))
}

func TestRateLimiter_IgnoresForwardedForFromUntrustedPeers(t *testing.T) {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	require.NoError(t, r.SetTrustedProxies(nil))
	r.Use(RateLimiter(1, time.Minute))
	r.GET("/", func(c *gin.Context) { c.Status(http.StatusOK) })

	assert.Equal(t, http.StatusOK, serve(r, http.MethodGet, "/", http.Header{"X-Forwarded-For": {"1.1.1.1"}}).Code)
	// a new spoofed address does not buy a fresh budget
	w := serve(r, http.MethodGet, "/", http.Header{"X-Forwarded-For": {"2.2.2.2"}})
	assert.Equal(t, http.StatusTooManyRequests, w.Code)
}

func TestMetrics_CountsByRouteAndStatus(t *testing.T) {
	gin.SetMode(gin.TestMode)
	reg := prometheus.NewRegistry()
	r := gin.New()
	r.Use(Metrics(reg))
	r.GET("/person/:id", func(c *gin.Context) { c.Status(http.StatusOK) })

	serve(r, http.MethodGet, "/person/1", nil)
	serve(r, http.MethodGet, "/person/2", nil)
	serve(r, http.MethodGet, "/nowhere", nil)

	n, err := testutil.GatherAndCount(reg, "invoicing_http_requests_total")
	require.NoError(t, err)
	assert.Equal(t, 2, n) // one series per route/method/status

	expected := `
# HELP invoicing_http_requests_total HTTP requests processed, by route, method and status.
# TYPE invoicing_http_requests_total counter
invoicing_http_requests_total{method="GET",route="/person/:id",status="200"} 2
invoicing_http_requests_total{method="GET",route="unmatched",status="404"} 1
`
	assert.NoError(t, testutil.GatherAndCompare(reg, strings.NewReader(expected), "invoicing_http_requests_total"))
}
