package middleware

import (
	"regexp"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"

	"github.com/yungbote/edusphere-backend/internal/platform/ctxutil"
)

const (
	headerTraceID   = "X-Trace-Id"
	headerRequestID = "X-Request-Id"
)

// Client-supplied ids end up in request logs, so only short token-like
// values are accepted.
var idPattern = regexp.MustCompile(`^[A-Za-z0-9._-]{1,64}$`)

func clientID(c *gin.Context, header string) string {
	v := strings.TrimSpace(c.GetHeader(header))
	if !idPattern.MatchString(v) {
		return ""
	}
	return v
}

func newID() string {
	return strings.ReplaceAll(uuid.NewString(), "-", "")
}

// AttachTraceContext gives every request a request id and a trace id, echoes
// both in response headers and stores them for the request logger. An active
// otel span decides the trace id; otherwise X-Trace-Id is honored.
func AttachTraceContext() gin.HandlerFunc {
	return func(c *gin.Context) {
		reqID := clientID(c, headerRequestID)
		if reqID == "" {
			reqID = newID()
		}

		span := trace.SpanFromContext(c.Request.Context())
		var traceID string
		if sc := span.SpanContext(); sc.HasTraceID() {
			traceID = sc.TraceID().String()
		} else if traceID = clientID(c, headerTraceID); traceID == "" {
			traceID = newID()
		}
		span.SetAttributes(attribute.String("http.request_id", reqID))

		ctx := ctxutil.WithTraceData(c.Request.Context(), &ctxutil.TraceData{
			TraceID:   traceID,
			RequestID: reqID,
		})
		c.Request = c.Request.WithContext(ctx)
		c.Writer.Header().Set(headerTraceID, traceID)
		c.Writer.Header().Set(headerRequestID, reqID)
		c.Next()
	}
}
