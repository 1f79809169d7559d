package middleware

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
)

func TestErrorHandler(t *testing.T) {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(ErrorHandler)
	r.GET("/", func(c *gin.Context) { _ = c.Error(assertErr{}) })
	r.GET("/written", func(c *gin.Context) {
		_ = c.Error(assertErr{})
		c.String(http.StatusTeapot, "handled")
	})

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/", nil))
	if w.Code != 500 {
		t.Fatalf("code=%d", w.Code)
	}

	w = httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/written", nil))
	if w.Code != http.StatusTeapot {
		t.Fatalf("handler response overwritten: code=%d", w.Code)
	}
}

type assertErr struct{}

func (assertErr) Error() string { return "boom" }

func TestRecoveryMiddleware(t *testing.T) {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(RequestID(), RecoveryMiddleware())
	r.GET("/panic", func(c *gin.Context) { panic("boom") })
	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/panic", nil))
	if w.Code != 500 {
		t.Fatalf("code=%d", w.Code)
	}
}

func TestRateLimiter(t *testing.T) {
	cases := []struct {
		name   string
		reqs   int
		lim    int
		expect int
	}{
		{name: "within limit", reqs: 2, lim: 3, expect: http.StatusOK},
		{name: "at limit", reqs: 3, lim: 3, expect: http.StatusOK},
		{name: "exceed limit", reqs: 5, lim: 3, expect: http.StatusTooManyRequests},
		{name: "disabled", reqs: 10, lim: 0, expect: http.StatusOK},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			gin.SetMode(gin.TestMode)
			r := gin.New()
			r.Use(RateLimiter(tc.lim, time.Minute))
			r.GET("/", func(c *gin.Context) { c.String(200, "ok") })
			var last int
			for i := 0; i < tc.reqs; i++ {
				w := httptest.NewRecorder()
				r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/", nil))
				last = w.Code
			}
			if last != tc.expect {
				t.Fatalf("expected %d, got %d", tc.expect, last)
			}
		})
	}
}

func TestRateLimiter_WindowResets(t *testing.T) {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(RateLimiter(1, 20*time.Millisecond))
	r.GET("/", func(c *gin.Context) { c.String(200, "ok") })

	do := func() int {
		w := httptest.NewRecorder()
		r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/", nil))
		return w.Code
	}
	if code := do(); code != 200 {
		t.Fatalf("first request: %d", code)
	}
	if code := do(); code != http.StatusTooManyRequests {
		t.Fatalf("second request: %d", code)
	}
	time.Sleep(40 * time.Millisecond)
	if code := do(); code != 200 {
		t.Fatalf("after window: %d", code)
	}
}

func TestLimiter_PrunesExpiredClients(t *testing.T) {
	l := newLimiter(1, time.Minute)
	t0 := time.Date(2024, 12, 2, 10, 0, 0, 0, time.UTC)

	for i, ip := range []string{"10.0.0.1", "10.0.0.2", "10.0.0.3"} {
		if !l.allow(ip, t0.Add(time.Duration(i)*time.Second)) {
			t.Fatalf("first request from %s rejected", ip)
		}
	}
	if n := l.size(); n != 3 {
		t.Fatalf("expected 3 tracked clients, got %d", n)
	}

	// all three windows expired; only the new caller remains
	if !l.allow("10.0.0.4", t0.Add(2*time.Minute)) {
		t.Fatalf("request after sweep rejected")
	}
	if n := l.size(); n != 1 {
		t.Fatalf("expected expired clients pruned, got %d tracked", n)
	}

	// limited inside its window, then pruned once the window has passed
	if l.allow("10.0.0.4", t0.Add(2*time.Minute+30*time.Second)) {
		t.Fatalf("second request inside window must be limited")
	}
	if !l.allow("10.0.0.5", t0.Add(3*time.Minute+30*time.Second)) {
		t.Fatalf("request from new client rejected")
	}
	if n := l.size(); n != 1 {
		t.Fatalf("expected only the newest client tracked, got %d", n)
	}
}

func TestAbortWithError(t *testing.T) {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.GET("/err", func(c *gin.Context) {
		AbortWithError(c, http.StatusBadRequest, "bad stuff", assertErr{})
	})
	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/err", nil))
	if w.Code != http.StatusBadRequest {
		t.Fatalf("code=%d", w.Code)
	}
	if ct := w.Header().Get("Content-Type"); ct == "" {
		t.Fatalf("expected content-type set")
	}
}

func TestTimeout(t *testing.T) {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(Timeout(50 * time.Millisecond))
	var hasDeadline bool
	r.GET("/", func(c *gin.Context) {
		_, hasDeadline = c.Request.Context().Deadline()
		select {
		case <-c.Request.Context().Done():
			c.Status(http.StatusGatewayTimeout)
		case <-time.After(time.Second):
			c.Status(http.StatusOK)
		}
	})
	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/", nil).WithContext(context.Background()))
	if !hasDeadline || w.Code != http.StatusGatewayTimeout {
		t.Fatalf("deadline=%v code=%d", hasDeadline, w.Code)
	}
}

func TestCORS(t *testing.T) {
	cases := []struct {
		name       string
		origins    []string
		origin     string
		wantHeader string
	}{
		{name: "allowed origin", origins: []string{"http://localhost:3000"}, origin: "http://localhost:3000", wantHeader: "http://localhost:3000"},
		{name: "wildcard", origins: []string{"*"}, origin: "http://example.com", wantHeader: "*"},
		{name: "same origin request", origins: nil, origin: "", wantHeader: ""},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			gin.SetMode(gin.TestMode)
			r := gin.New()
			r.Use(CORS(tc.origins))
			r.GET("/", func(c *gin.Context) { c.String(200, "ok") })

			req := httptest.NewRequest(http.MethodGet, "/", nil)
			if tc.origin != "" {
				req.Header.Set("Origin", tc.origin)
			}
			w := httptest.NewRecorder()
			r.ServeHTTP(w, req)
			if w.Code != http.StatusOK {
				t.Fatalf("code=%d", w.Code)
			}
			if got := w.Header().Get("Access-Control-Allow-Origin"); got != tc.wantHeader {
				t.Fatalf("allow-origin=%q, want %q", got, tc.wantHeader)
			}
		})
	}
}
