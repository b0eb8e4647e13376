package middleware

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"

	"github.com/yungbote/edusphere-backend/internal/observability"
	"github.com/yungbote/edusphere-backend/internal/platform/ctxutil"
	"github.com/yungbote/edusphere-backend/internal/platform/logger"
)

type stubTokens struct{}

func (stubTokens) TokensEnabled() bool { return true }

func (stubTokens) ParseAccessToken(tok string) (string, error) {
	if tok == "good" {
		return "uid-1", nil
	}
	return "", errors.New("bad token")
}

func TestOptionalAuthAttachesUserID(t *testing.T) {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(NewAuthMiddleware(logger.Nop(), stubTokens{}).OptionalAuth())
	r.GET("/", func(c *gin.Context) {
		rd := ctxutil.GetRequestData(c.Request.Context())
		if rd == nil {
			c.String(http.StatusOK, "anonymous")
			return
		}
		c.String(http.StatusOK, rd.UserID)
	})

	for header, want := range map[string]string{
		"":             "anonymous",
		"Bearer good":  "uid-1",
		"Bearer nope":  "anonymous",
		"Basic abcdef": "anonymous",
	} {
		req := httptest.NewRequest(http.MethodGet, "/", nil)
		if header != "" {
			req.Header.Set("Authorization", header)
		}
		rec := httptest.NewRecorder()
		r.ServeHTTP(rec, req)
		if rec.Code != http.StatusOK || rec.Body.String() != want {
			t.Fatalf("header %q: got %d %q want %q", header, rec.Code, rec.Body.String(), want)
		}
	}
}

func TestTraceContextEchoesRequestID(t *testing.T) {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(AttachTraceContext())
	r.GET("/", func(c *gin.Context) {
		td := ctxutil.GetTraceData(c.Request.Context())
		c.String(http.StatusOK, td.RequestID)
	})

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("X-Request-Id", "req-42")
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)
	if rec.Body.String() != "req-42" || rec.Header().Get("X-Request-Id") != "req-42" {
		t.Fatalf("request id not propagated: body=%q header=%q", rec.Body.String(), rec.Header().Get("X-Request-Id"))
	}
	if rec.Header().Get("X-Trace-Id") == "" {
		t.Fatal("expected generated trace id")
	}
}

func TestMetricsMiddlewareRecordsRoute(t *testing.T) {
	gin.SetMode(gin.TestMode)
	m := observability.New(nil)
	r := gin.New()
	r.Use(Metrics(m))
	r.GET("/community/:community_id", func(c *gin.Context) { c.Status(http.StatusNotFound) })

	r.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/community/abc", nil))

	rec := httptest.NewRecorder()
	m.Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/metrics", nil))
	want := `edusphere_http_requests_total{method="GET",route="/community/:community_id",status="404"} 1`
	if !strings.Contains(rec.Body.String(), want) {
		t.Fatalf("missing %q in metrics output", want)
	}
}

func TestTraceContextReplacesUnsafeRequestID(t *testing.T) {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(AttachTraceContext())
	r.GET("/", func(c *gin.Context) {
		c.String(http.StatusOK, ctxutil.GetTraceData(c.Request.Context()).RequestID)
	})

	for _, bad := range []string{"evil\tinjected=1", strings.Repeat("a", 65), "a b"} {
		req := httptest.NewRequest(http.MethodGet, "/", nil)
		req.Header.Set("X-Request-Id", bad)
		rec := httptest.NewRecorder()
		r.ServeHTTP(rec, req)
		got := rec.Body.String()
		if got == bad || len(got) != 32 {
			t.Fatalf("header %q: expected generated id, got %q", bad, got)
		}
		if rec.Header().Get("X-Request-Id") != got {
			t.Fatalf("response header %q does not match context id %q", rec.Header().Get("X-Request-Id"), got)
		}
	}
}

func TestMetricsMiddlewareBoundsLabels(t *testing.T) {
	gin.SetMode(gin.TestMode)
	m := observability.New(nil)
	r := gin.New()
	r.Use(Metrics(m))
	r.GET("/metrics", gin.WrapH(m.Handler()))
	r.Handle("PROPFIND", "/", func(c *gin.Context) { c.Status(http.StatusOK) })

	r.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/wp-admin/x.php", nil))
	r.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest("PROPFIND", "/", nil))
	r.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/metrics", nil))

	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/metrics", nil))
	out := rec.Body.String()
	for _, want := range []string{
		`edusphere_http_requests_total{method="GET",route="unmatched",status="404"} 1`,
		`edusphere_http_requests_total{method="OTHER",route="/",status="200"} 1`,
	} {
		if !strings.Contains(out, want) {
			t.Fatalf("missing %q in metrics output", want)
		}
	}
	if strings.Contains(out, `route="/metrics"`) {
		t.Fatal("metrics scrapes should not be counted")
	}
	if strings.Contains(out, "wp-admin") {
		t.Fatal("raw path leaked into labels")
	}
}
