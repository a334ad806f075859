package usecase_test

import (
	"context"
	"errors"
	"testing"

	"github.com/golang/mock/gomock"

	"github.com/Gunvolt24/product_wizard/internal/domain"
	"github.com/Gunvolt24/product_wizard/internal/ports/mocks"
	"github.com/Gunvolt24/product_wizard/internal/usecase"
	"github.com/Gunvolt24/product_wizard/pkg/validate"
)

func TestHandleMessage_ProductsTopicInvalidatesCatalog(t *testing.T) {
	ctrl := gomock.NewController(t)
	admin := mocks.NewMockCacheAdmin(ctrl)

	for _, dt := range domain.CatalogDataTypes() {
		admin.EXPECT().Invalidate(gomock.Any(), shopA, dt).Return(nil)
	}

	h := usecase.NewEventHandler(admin, noopLogger{})
	raw := []byte(`{"shop":"a.myshopify.com","topic":"products/update"}`)
	if err := h.HandleMessage(context.Background(), raw); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestHandleMessage_ExplicitDataTypes(t *testing.T) {
	ctrl := gomock.NewController(t)
	admin := mocks.NewMockCacheAdmin(ctrl)
	admin.EXPECT().Invalidate(gomock.Any(), shopA, domain.DataTypeScopeCheck).Return(nil)

	h := usecase.NewEventHandler(admin, noopLogger{})
	raw := []byte(`{"shop":"a.myshopify.com","topic":"custom","dataTypes":["scopeCheck"]}`)
	if err := h.HandleMessage(context.Background(), raw); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestHandleMessage_Invalid(t *testing.T) {
	ctrl := gomock.NewController(t)
	admin := mocks.NewMockCacheAdmin(ctrl)
	h := usecase.NewEventHandler(admin, noopLogger{})

	for _, raw := range []string{
		`{`,
		`{"shop":"a.myshopify.com","topic":"products/update","extra":1}`,
		`{"topic":"products/update"}`,
		`{"shop":"a.myshopify.com","dataTypes":["orders"]}`,
		`{"shop":"a.myshopify.com","topic":"shop/update"} {}`,
	} {
		if err := h.HandleMessage(context.Background(), []byte(raw)); !errors.Is(err, validate.ErrInvalidRequest) {
			t.Fatalf("%s: want ErrInvalidRequest, got %v", raw, err)
		}
	}
}

func TestHandleEvent_UnknownTopicIgnored(t *testing.T) {
	ctrl := gomock.NewController(t)
	admin := mocks.NewMockCacheAdmin(ctrl)
	h := usecase.NewEventHandler(admin, noopLogger{})

	if err := h.HandleEvent(context.Background(), domain.CatalogEvent{Shop: shopA, Topic: "orders/create"}); err != nil {
		t.Fatalf("unknown topic must be ignored, got %v", err)
	}
}

func TestHandleEvent_UninstallDropsShop(t *testing.T) {
	ctrl := gomock.NewController(t)
	admin := mocks.NewMockCacheAdmin(ctrl)
	admin.EXPECT().InvalidateShop(gomock.Any(), shopA).Return(nil)

	h := usecase.NewEventHandler(admin, noopLogger{})
	if err := h.HandleEvent(context.Background(), domain.CatalogEvent{Shop: shopA, Topic: domain.TopicAppUninstalled}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestHandleEvent_AccessTopicsInvalidateScopeCheck(t *testing.T) {
	for _, topic := range []string{domain.TopicScopesUpdate, domain.TopicSubscriptionsUpdate} {
		t.Run(topic, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			admin := mocks.NewMockCacheAdmin(ctrl)
			admin.EXPECT().Invalidate(gomock.Any(), shopA, domain.DataTypeScopeCheck).Return(nil)

			h := usecase.NewEventHandler(admin, noopLogger{})
			if err := h.HandleEvent(context.Background(), domain.CatalogEvent{Shop: shopA, Topic: topic}); err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
		})
	}
}

func TestHandleEvent_StoreErrorIsTransient(t *testing.T) {
	ctrl := gomock.NewController(t)
	admin := mocks.NewMockCacheAdmin(ctrl)
	admin.EXPECT().Invalidate(gomock.Any(), shopA, domain.DataTypeStoreSettings).Return(errors.New("db down"))

	h := usecase.NewEventHandler(admin, noopLogger{})
	err := h.HandleEvent(context.Background(), domain.CatalogEvent{Shop: shopA, Topic: domain.TopicShopUpdate})
	if err == nil || errors.Is(err, validate.ErrInvalidRequest) {
		t.Fatalf("store failure must be a retryable error, got %v", err)
	}
}
