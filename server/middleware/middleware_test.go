package middleware

import (
	"bytes"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"

	"github.com/kbukum/bukku-go/httpclient"
	"github.com/kbukum/bukku-go/logger"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func newEngine(mw ...gin.HandlerFunc) *gin.Engine {
	r := gin.New()
	r.Use(mw...)
	return r
}

func TestRequestID(t *testing.T) {
	r := newEngine(RequestID())
	var seen string
	r.GET("/x", func(c *gin.Context) {
		seen = logger.RequestIDFromContext(c.Request.Context())
		c.Status(http.StatusOK)
	})

	t.Run("keeps caller id", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/x", nil)
		req.Header.Set(httpclient.HeaderRequestID, "req-42")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if got := w.Header().Get(httpclient.HeaderRequestID); got != "req-42" {
			t.Errorf("response id = %q", got)
		}
		if seen != "req-42" {
			t.Errorf("context id = %q", seen)
		}
	})

	t.Run("assigns new id", func(t *testing.T) {
		w := httptest.NewRecorder()
		r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/x", nil))

		got := w.Header().Get(httpclient.HeaderRequestID)
		if len(got) != 36 {
			t.Errorf("expected uuid, got %q", got)
		}
		if seen != got {
			t.Errorf("context id %q differs from header %q", seen, got)
		}
	})
}

func TestRecovery(t *testing.T) {
	var buf bytes.Buffer
	log := logger.NewWithWriter(&logger.Config{Level: "debug", Format: "json"}, "bukku", &buf)

	r := newEngine(Recovery(log))
	r.GET("/boom", func(c *gin.Context) { panic("kaboom") })

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/boom", nil))

	if w.Code != http.StatusInternalServerError {
		t.Fatalf("status = %d", w.Code)
	}
	if !strings.Contains(w.Body.String(), `"message":"Internal server error"`) {
		t.Errorf("body = %s", w.Body.String())
	}
	if !strings.Contains(buf.String(), "kaboom") {
		t.Errorf("panic not logged: %s", buf.String())
	}
}

func TestBodySizeLimit(t *testing.T) {
	r := newEngine(BodySizeLimit(8))
	r.POST("/upload", func(c *gin.Context) {
		if _, err := io.ReadAll(c.Request.Body); err != nil {
			c.Status(http.StatusRequestEntityTooLarge)
			return
		}
		c.Status(http.StatusOK)
	})

	tests := []struct {
		name string
		body string
		want int
	}{
		{name: "within limit", body: "small", want: http.StatusOK},
		{name: "over limit", body: "this body is too large", want: http.StatusRequestEntityTooLarge},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := httptest.NewRecorder()
			r.ServeHTTP(w, httptest.NewRequest(http.MethodPost, "/upload", strings.NewReader(tt.body)))
			if w.Code != tt.want {
				t.Errorf("status = %d, want %d", w.Code, tt.want)
			}
		})
	}
}

func TestRequestLogger(t *testing.T) {
	var buf bytes.Buffer
	log := logger.NewWithWriter(&logger.Config{Level: "debug", Format: "json"}, "bukku", &buf)

	r := newEngine(RequestID(), RequestLogger(log))
	r.GET("/contacts/:id", func(c *gin.Context) {
		c.JSON(http.StatusNotFound, gin.H{"message": "Record not found."})
	})
	r.GET("/health", func(c *gin.Context) { c.Status(http.StatusOK) })

	req := httptest.NewRequest(http.MethodGet, "/contacts/9?include=all", nil)
	req.Header.Set(httpclient.HeaderRequestID, "req-7")
	req.Header.Set("Company-Subdomain", "acme")
	r.ServeHTTP(httptest.NewRecorder(), req)
	r.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/health", nil))

	out := buf.String()
	for _, want := range []string{
		`"level":"warn"`,
		`"path":"/contacts/9?include=all"`,
		`"status":404`,
		`"request_id":"req-7"`,
		`"company_subdomain":"acme"`,
	} {
		if !strings.Contains(out, want) {
			t.Errorf("log output missing %s:\n%s", want, out)
		}
	}
	if strings.Contains(out, `"/health"`) {
		t.Errorf("health check was logged:\n%s", out)
	}
}
