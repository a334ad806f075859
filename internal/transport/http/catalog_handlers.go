package rest

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/Gunvolt24/product_wizard/internal/domain"
	"github.com/Gunvolt24/product_wizard/pkg/httpx"
)

const (
	defaultExpiringLimit = 50
	maxExpiringLimit     = 500
)

func (h *Handler) getCatalog(c *gin.Context) {
	dt, err := domain.ParseDataType(c.Param("dataType"))
	if err != nil {
		h.fail(c, "catalog", err)
		return
	}
	ctx, cancel := h.reqCtx(c)
	defer cancel()

	list, err := h.svc.Catalog.List(ctx, c.Param("shop"), dt)
	if err != nil {
		h.fail(c, "catalog", err)
		return
	}
	c.JSON(http.StatusOK, list)
}

func (h *Handler) warmUpCatalog(c *gin.Context) {
	ctx, cancel := h.reqCtx(c)
	defer cancel()

	if err := h.svc.Catalog.WarmUp(ctx, c.Param("shop")); err != nil {
		h.fail(c, "catalog warm-up", err)
		return
	}
	c.Status(http.StatusNoContent)
}

func (h *Handler) invalidateKey(c *gin.Context) {
	dt, err := domain.ParseDataType(c.Param("dataType"))
	if err != nil {
		h.fail(c, "cache invalidate", err)
		return
	}
	ctx, cancel := h.reqCtx(c)
	defer cancel()

	if err := h.svc.Cache.Invalidate(ctx, c.Param("shop"), dt); err != nil {
		h.fail(c, "cache invalidate", err)
		return
	}
	c.Status(http.StatusNoContent)
}

func (h *Handler) invalidateShop(c *gin.Context) {
	ctx, cancel := h.reqCtx(c)
	defer cancel()

	if err := h.svc.Cache.InvalidateShop(ctx, c.Param("shop")); err != nil {
		h.fail(c, "cache invalidate shop", err)
		return
	}
	c.Status(http.StatusNoContent)
}

func (h *Handler) getStats(c *gin.Context) {
	stats := h.svc.Cache.GetAllStats()
	out := make(map[string]gin.H, len(stats))
	for key, s := range stats {
		out[key] = gin.H{"hits": s.Hits, "misses": s.Misses, "hitRate": s.HitRate()}
	}
	c.JSON(http.StatusOK, out)
}

func (h *Handler) clearStats(c *gin.Context) {
	h.svc.Cache.ClearStats()
	c.Status(http.StatusNoContent)
}

// listExpiring — записи с expiresAt < before (RFC3339, по умолчанию сейчас).
func (h *Handler) listExpiring(c *gin.Context) {
	before, err := httpx.ParseTime(c, "before", time.Now())
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	page := httpx.ParsePage(c, defaultExpiringLimit, maxExpiringLimit)

	ctx, cancel := h.reqCtx(c)
	defer cancel()

	rows, err := h.svc.Cache.Expiring(ctx, before, page.Limit, page.Offset)
	if err != nil {
		h.fail(c, "cache expiring", err)
		return
	}

	out := make([]gin.H, 0, len(rows))
	for _, r := range rows {
		out = append(out, gin.H{"shop": r.Shop, "dataType": r.DataType, "expiresAt": r.ExpiresAt})
	}
	c.JSON(http.StatusOK, out)
}
