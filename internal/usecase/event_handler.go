package usecase

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"

	"github.com/Gunvolt24/product_wizard/internal/domain"
	"github.com/Gunvolt24/product_wizard/internal/ports"
	"github.com/Gunvolt24/product_wizard/pkg/validate"
)

// EventHandler — инвалидация кэша по событиям магазина (Kafka, webhooks).
type EventHandler struct {
	cache ports.CacheAdmin
	log   ports.Logger
}

// NewEventHandler — DI-конструктор.
func NewEventHandler(cache ports.CacheAdmin, log ports.Logger) *EventHandler {
	return &EventHandler{cache: cache, log: log}
}

// HandleMessage — событие из Kafka (raw JSON).
// Некорректное сообщение → validate.ErrInvalidRequest (сообщение пропускается),
// ошибка хранилища → возвращается как есть (повторная обработка).
func (h *EventHandler) HandleMessage(ctx context.Context, raw []byte) error {
	var ev domain.CatalogEvent
	dec := json.NewDecoder(bytes.NewReader(raw))
	dec.DisallowUnknownFields()
	if err := dec.Decode(&ev); err != nil {
		h.log.Warnf(ctx, "invalid event json err=%v", err)
		return fmt.Errorf("%w: invalid json: %v", validate.ErrInvalidRequest, err)
	}
	if err := dec.Decode(new(struct{})); err != io.EOF {
		h.log.Warnf(ctx, "invalid event json: trailing data")
		return fmt.Errorf("%w: invalid json: trailing data", validate.ErrInvalidRequest)
	}
	return h.HandleEvent(ctx, ev)
}

// HandleEvent — инвалидировать ключи, затронутые событием. Неизвестный топик — не ошибка.
func (h *EventHandler) HandleEvent(ctx context.Context, ev domain.CatalogEvent) error {
	if ev.Shop == "" {
		return fmt.Errorf("%w: shop обязателен", validate.ErrInvalidRequest)
	}
	for _, dt := range ev.DataTypes {
		if _, err := domain.ParseDataType(string(dt)); err != nil {
			return fmt.Errorf("%w: %v", validate.ErrInvalidRequest, err)
		}
	}

	if ev.Topic == domain.TopicAppUninstalled && len(ev.DataTypes) == 0 {
		return h.cache.InvalidateShop(ctx, ev.Shop)
	}

	affected := ev.AffectedDataTypes()
	if len(affected) == 0 {
		h.log.Infof(ctx, "event ignored shop=%s topic=%s", ev.Shop, ev.Topic)
		return nil
	}

	var errs []error
	for _, dt := range affected {
		if err := h.cache.Invalidate(ctx, ev.Shop, dt); err != nil {
			errs = append(errs, err)
		}
	}
	if err := errors.Join(errs...); err != nil {
		h.log.Errorf(ctx, "event invalidation failed shop=%s topic=%s err=%v", ev.Shop, ev.Topic, err)
		return err
	}
	h.log.Infof(ctx, "event applied shop=%s topic=%s data_types=%v", ev.Shop, ev.Topic, affected)
	return nil
}
