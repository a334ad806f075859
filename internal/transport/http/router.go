package rest

import (
	"context"
	"net/http"
	"path/filepath"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.opentelemetry.io/contrib/instrumentation/github.com/gin-gonic/gin/otelgin"

	"github.com/Gunvolt24/product_wizard/internal/ports"
	"github.com/Gunvolt24/product_wizard/pkg/ctxmeta"
	"github.com/Gunvolt24/product_wizard/pkg/httpx"
)

// Services — зависимости HTTP-слоя.
type Services struct {
	Catalog  ports.CatalogReader
	Variants ports.VariantPlanner
	Cache    ports.CacheAdmin
	Events   ports.EventApplier
}

// Handler — HTTP-обработчики мастера товаров.
type Handler struct {
	svc           Services
	log           ports.Logger
	timeout       time.Duration
	webhookSecret string
}

// HandlerOption — настройка Handler.
type HandlerOption func(*Handler)

// WithWebhookSecret — секрет приложения для проверки подписи вебхуков Shopify.
func WithWebhookSecret(secret string) HandlerOption {
	return func(h *Handler) { h.webhookSecret = secret }
}

// NewHandler — timeout <= 0 → без ограничения на обработку запроса.
func NewHandler(svc Services, log ports.Logger, timeout time.Duration, opts ...HandlerOption) *Handler {
	h := &Handler{svc: svc, log: log, timeout: timeout}
	for _, opt := range opts {
		opt(h)
	}
	return h
}

// NewRouter — gin-движок со всеми маршрутами. otelServiceName == "" → без otelgin.
func NewRouter(h *Handler, staticDir, otelServiceName string) *gin.Engine {
	r := gin.New()
	r.HandleMethodNotAllowed = true
	r.Use(gin.Recovery())
	if otelServiceName != "" {
		r.Use(otelgin.Middleware(otelServiceName))
	}
	r.Use(httpx.RequestIDMiddleware())
	r.Use(httpx.RequestLogger(h.log))

	r.NoRoute(func(c *gin.Context) {
		c.JSON(http.StatusNotFound, gin.H{"error": "not found"})
	})
	r.NoMethod(func(c *gin.Context) {
		c.JSON(http.StatusMethodNotAllowed, gin.H{"error": "method not allowed"})
	})

	r.GET("/ping", func(c *gin.Context) { c.String(http.StatusOK, "pong") })
	r.GET("/metrics", gin.WrapH(promhttp.Handler()))

	shops := r.Group("/shops/:shop", withShop())
	{
		shops.GET("/catalog/:dataType", h.getCatalog)
		shops.POST("/catalog/warmup", h.warmUpCatalog)
		shops.DELETE("/cache/:dataType", h.invalidateKey)
		shops.DELETE("/cache", h.invalidateShop)
		shops.POST("/variants/plan", h.planVariants)
		shops.POST("/variants/sync", h.syncVariants)
	}

	r.GET("/cache/stats", h.getStats)
	r.DELETE("/cache/stats", h.clearStats)
	r.GET("/cache/expiring", h.listExpiring)

	r.POST("/webhooks/shopify", h.shopifyWebhook)

	if staticDir != "" {
		r.Static("/static", staticDir)
		r.StaticFile("/", filepath.Join(staticDir, "index.html"))
	}

	return r
}

// withShop — домен магазина из пути в контекст запроса (для логов).
func withShop() gin.HandlerFunc {
	return func(c *gin.Context) {
		if shop := c.Param("shop"); shop != "" {
			c.Request = c.Request.WithContext(ctxmeta.WithShop(c.Request.Context(), shop))
		}
		c.Next()
	}
}

// reqCtx — контекст запроса с таймаутом обработчика.
func (h *Handler) reqCtx(c *gin.Context) (context.Context, context.CancelFunc) {
	if h.timeout > 0 {
		return context.WithTimeout(c.Request.Context(), h.timeout)
	}
	return context.WithCancel(c.Request.Context())
}
