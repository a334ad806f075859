package rest

import (
	"context"
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/Gunvolt24/product_wizard/internal/domain"
	"github.com/Gunvolt24/product_wizard/internal/usecase"
	"github.com/Gunvolt24/product_wizard/pkg/validate"
)

// statusFor — HTTP-статус и публичное сообщение для ошибки сервиса.
func statusFor(err error) (int, string) {
	switch {
	case errors.Is(err, validate.ErrInvalidRequest),
		errors.Is(err, domain.ErrUnknownDataType),
		errors.Is(err, domain.ErrEmptyShop):
		return http.StatusBadRequest, err.Error()
	case errors.Is(err, domain.ErrShopNotConfigured):
		return http.StatusNotFound, "shop is not configured"
	case errors.Is(err, context.DeadlineExceeded):
		return http.StatusGatewayTimeout, "request timeout"
	case errors.Is(err, domain.ErrUpstream), errors.Is(err, usecase.ErrPagination):
		return http.StatusBadGateway, "shopify api unavailable"
	default:
		return http.StatusInternalServerError, "internal server error"
	}
}

// fail — ответ с ошибкой; 5xx логируются с причиной.
func (h *Handler) fail(c *gin.Context, op string, err error) {
	code, msg := statusFor(err)
	if code >= http.StatusInternalServerError {
		h.log.Errorf(c.Request.Context(), "%s failed err=%v", op, err)
	} else {
		h.log.Warnf(c.Request.Context(), "%s rejected status=%d err=%v", op, code, err)
	}
	c.JSON(code, gin.H{"error": msg})
}
