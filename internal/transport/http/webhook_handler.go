package rest

import (
	"io"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/Gunvolt24/product_wizard/internal/domain"
	"github.com/Gunvolt24/product_wizard/internal/shopify"
	"github.com/Gunvolt24/product_wizard/pkg/ctxmeta"
)

// shopifyWebhook — подписанное уведомление Shopify. Тело не разбирается:
// топик и магазин берутся из заголовков. Подпись считается по всему телу,
// поэтому тело больше лимита отклоняется целиком (413).
func (h *Handler) shopifyWebhook(c *gin.Context) {
	body, err := io.ReadAll(io.LimitReader(c.Request.Body, maxBodyBytes+1))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "cannot read body"})
		return
	}
	if len(body) > maxBodyBytes {
		h.log.Warnf(c.Request.Context(), "webhook rejected: body over %d bytes topic=%s",
			maxBodyBytes, c.GetHeader(shopify.HeaderTopic))
		c.JSON(http.StatusRequestEntityTooLarge, gin.H{"error": "body too large"})
		return
	}
	if !shopify.VerifyWebhook(h.webhookSecret, body, c.GetHeader(shopify.HeaderHMAC)) {
		h.log.Warnf(c.Request.Context(), "webhook rejected: bad signature topic=%s", c.GetHeader(shopify.HeaderTopic))
		c.JSON(http.StatusUnauthorized, gin.H{"error": "invalid signature"})
		return
	}

	ev := domain.CatalogEvent{
		Shop:  c.GetHeader(shopify.HeaderShopDomain),
		Topic: c.GetHeader(shopify.HeaderTopic),
	}
	c.Request = c.Request.WithContext(ctxmeta.WithShop(c.Request.Context(), ev.Shop))

	ctx, cancel := h.reqCtx(c)
	defer cancel()

	if err := h.svc.Events.HandleEvent(ctx, ev); err != nil {
		h.fail(c, "webhook", err)
		return
	}
	c.Status(http.StatusOK)
}
