package httpx

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/Gunvolt24/product_wizard/internal/ports"
	"github.com/Gunvolt24/product_wizard/pkg/ctxmeta"
)

// служебные маршруты опрашиваются часто и в логах не нужны
var quietRoutes = map[string]struct{}{
	"/metrics": {},
	"/ping":    {},
}

// RequestLogger — строка лога на запрос. Уровень по статусу ответа:
// 5xx → error, 4xx → warn, остальное → info.
func RequestLogger(log ports.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()

		route := c.FullPath()
		if _, quiet := quietRoutes[route]; quiet {
			return
		}
		if route == "" {
			route = c.Request.URL.Path
		}

		ctx := c.Request.Context()
		rid, _ := ctxmeta.RequestIDFromContext(ctx)
		traceID, _ := ctxmeta.TraceIDFromContext(ctx)
		spanID, _ := ctxmeta.SpanIDFromContext(ctx)
		shop, _ := ctxmeta.ShopFromContext(ctx)
		status := c.Writer.Status()

		logf := log.Infof
		switch {
		case status >= http.StatusInternalServerError:
			logf = log.Errorf
		case status >= http.StatusBadRequest:
			logf = log.Warnf
		}
		logf(ctx,
			"request id=%s trace=%s span=%s shop=%s method=%s route=%s status=%d ip=%s took=%s bytes=%d",
			rid, traceID, spanID, shop, c.Request.Method, route, status,
			c.ClientIP(), time.Since(start), c.Writer.Size(),
		)
	}
}
