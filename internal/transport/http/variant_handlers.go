package rest

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/Gunvolt24/product_wizard/internal/domain"
	"github.com/Gunvolt24/product_wizard/pkg/validate"
)

const maxBodyBytes = 1 << 20

func (h *Handler) planVariants(c *gin.Context) {
	req, err := decodeVariantRequest(c)
	if err != nil {
		h.fail(c, "variant plan", err)
		return
	}
	ctx, cancel := h.reqCtx(c)
	defer cancel()

	plan, err := h.svc.Variants.Plan(ctx, c.Param("shop"), req)
	if err != nil {
		h.fail(c, "variant plan", err)
		return
	}
	c.JSON(http.StatusOK, plan)
}

func (h *Handler) syncVariants(c *gin.Context) {
	req, err := decodeVariantRequest(c)
	if err != nil {
		h.fail(c, "variant sync", err)
		return
	}
	ctx, cancel := h.reqCtx(c)
	defer cancel()

	res, err := h.svc.Variants.Sync(ctx, c.Param("shop"), req)
	if err != nil {
		h.fail(c, "variant sync", err)
		return
	}
	status := http.StatusOK
	if len(res.UpdateUserErrors) > 0 || len(res.CreateUserErrors) > 0 {
		status = http.StatusUnprocessableEntity
	}
	c.JSON(status, res)
}

// decodeVariantRequest — строгий разбор тела: неизвестные поля и хвост запрещены.
func decodeVariantRequest(c *gin.Context) (domain.VariantRequest, error) {
	var req domain.VariantRequest
	body, err := io.ReadAll(io.LimitReader(c.Request.Body, maxBodyBytes+1))
	if err != nil {
		return req, fmt.Errorf("%w: read body: %v", validate.ErrInvalidRequest, err)
	}
	if len(body) > maxBodyBytes {
		return req, fmt.Errorf("%w: body too large", validate.ErrInvalidRequest)
	}
	dec := json.NewDecoder(bytes.NewReader(body))
	dec.DisallowUnknownFields()
	if err := dec.Decode(&req); err != nil {
		return req, fmt.Errorf("%w: invalid json: %v", validate.ErrInvalidRequest, err)
	}
	if err := dec.Decode(new(struct{})); err != io.EOF {
		return req, fmt.Errorf("%w: invalid json: trailing data", validate.ErrInvalidRequest)
	}
	return req, nil
}
