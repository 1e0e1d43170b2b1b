package security

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
)

func TestLimiterPerKey(t *testing.T) {
	l := NewLimiter(2, time.Minute)
	now := time.Now()

	if !l.Allow("a", now) || !l.Allow("a", now) {
		t.Fatalf("expected the first two requests to pass")
	}
	if l.Allow("a", now) {
		t.Fatalf("expected the third request to be limited")
	}
	if !l.Allow("b", now) {
		t.Fatalf("expected another client to have its own budget")
	}
}

func TestLimiterSweep(t *testing.T) {
	l := NewLimiter(1, time.Minute)
	now := time.Now()
	l.Allow("a", now)
	l.Allow("b", now.Add(2*time.Minute))

	l.Sweep(now.Add(4 * time.Minute))
	if _, ok := l.visitors["a"]; ok {
		t.Fatalf("expected idle visitor to be swept")
	}
	if _, ok := l.visitors["b"]; !ok {
		t.Fatalf("expected recent visitor to be kept")
	}
}

func TestCORS(t *testing.T) {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(CORS([]string{"http://allowed.example"}))
	r.GET("/", func(c *gin.Context) { c.Status(http.StatusOK) })

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("Origin", "http://allowed.example")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	if got := w.Header().Get("Access-Control-Allow-Origin"); got != "http://allowed.example" {
		t.Fatalf("expected allowed origin echoed, got %q", got)
	}

	req = httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("Origin", "http://other.example")
	w = httptest.NewRecorder()
	r.ServeHTTP(w, req)
	if got := w.Header().Get("Access-Control-Allow-Origin"); got != "" {
		t.Fatalf("expected no allow-origin for unknown origin, got %q", got)
	}

	req = httptest.NewRequest(http.MethodOptions, "/", nil)
	w = httptest.NewRecorder()
	r.ServeHTTP(w, req)
	if w.Code != http.StatusNoContent {
		t.Fatalf("expected preflight 204, got %d", w.Code)
	}
}

func TestRateLimiterMiddleware(t *testing.T) {
	gin.SetMode(gin.TestMode)
	done := make(chan struct{})
	defer close(done)

	r := gin.New()
	r.Use(RateLimiter(NewLimiter(1, time.Minute), done))
	r.GET("/", func(c *gin.Context) { c.Status(http.StatusOK) })

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/", nil))
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
	w = httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/", nil))
	if w.Code != http.StatusTooManyRequests {
		t.Fatalf("expected 429, got %d", w.Code)
	}
}
