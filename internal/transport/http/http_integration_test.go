//go:build integration

package rest_test

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/Gunvolt24/product_wizard/internal/cache"
	"github.com/Gunvolt24/product_wizard/internal/domain"
	pgrepo "github.com/Gunvolt24/product_wizard/internal/repo/postgres"
	"github.com/Gunvolt24/product_wizard/internal/shopify"
	"github.com/Gunvolt24/product_wizard/internal/testutil"
	rest "github.com/Gunvolt24/product_wizard/internal/transport/http"
	"github.com/Gunvolt24/product_wizard/internal/usecase"
	"github.com/Gunvolt24/product_wizard/pkg/logger"
	"github.com/Gunvolt24/product_wizard/pkg/validate"
)

const productsBody = `{"data":{"products":{"nodes":[
	{"vendor":"Zeta","productType":"Shirts","category":{"name":"Apparel"}},
	{"vendor":"Acme","productType":"Hats","category":null}
],"pageInfo":{"hasNextPage":false,"endCursor":"c1"}}}}`

// fakeShopify — Admin API с одной страницей товаров; считает запросы.
func fakeShopify(t *testing.T, delay time.Duration) (*httptest.Server, *atomic.Int32) {
	t.Helper()
	var calls atomic.Int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls.Add(1)
		if delay > 0 {
			select {
			case <-time.After(delay):
			case <-r.Context().Done():
				return
			}
		}
		_, _ = io.WriteString(w, productsBody)
	}))
	t.Cleanup(srv.Close)
	return srv, &calls
}

// newStackTC — postgres + сервисы + роутер. Возвращает адрес HTTP-сервера.
func newStackTC(t *testing.T, shop string, shopifyURL string, reqTimeout time.Duration) string {
	t.Helper()
	ctx, cancel := context.WithTimeout(context.Background(), 60*time.Second)
	defer cancel()

	pg, stop, err := testutil.StartPostgresTC(ctx)
	require.NoError(t, err)
	t.Cleanup(func() { _ = stop(context.Background()) })

	logg, cleanup, err := logger.NewZapLogger(false)
	require.NoError(t, err)
	t.Cleanup(func() { _ = cleanup() })

	cacheSvc := usecase.NewCacheService(pgrepo.NewCacheStore(pg.Pool), cache.NewMemoryStats(), logg)
	t.Cleanup(func() { cacheSvc.Drain(context.Background()) })

	client := shopify.NewClient(shopify.Config{
		Tokens:  map[string]string{shop: "shpat_test"},
		BaseURL: shopifyURL,
	}, logg, nil)

	h := rest.NewHandler(rest.Services{
		Catalog:  usecase.NewCatalogService(cacheSvc, client, logg, nil, 0),
		Variants: usecase.NewVariantService(client, validate.NewRequestValidator(validate.MaxVariants), nil, logg),
		Cache:    cacheSvc,
		Events:   usecase.NewEventHandler(cacheSvc, logg),
	}, logg, reqTimeout, rest.WithWebhookSecret("hush"))

	ts := httptest.NewServer(rest.NewRouter(h, "", ""))
	t.Cleanup(ts.Close)
	return ts.URL
}

func getCatalog(t *testing.T, url string) (int, domain.CatalogList) {
	t.Helper()
	resp, err := http.Get(url)
	require.NoError(t, err)
	defer resp.Body.Close()
	var got domain.CatalogList
	if resp.StatusCode == http.StatusOK {
		require.NoError(t, json.NewDecoder(resp.Body).Decode(&got))
	}
	return resp.StatusCode, got
}

// 1) промах → обход каталога, повтор → кэш с метаданными; вебхук сбрасывает агрегаты
func TestHTTP_CatalogCacheAndWebhook_TC(t *testing.T) {
	shop := testutil.MakeShop()
	srv, calls := fakeShopify(t, 0)
	base := newStackTC(t, shop, srv.URL, 5*time.Second)

	code, first := getCatalog(t, base+"/shops/"+shop+"/catalog/vendors")
	require.Equal(t, http.StatusOK, code)
	require.Equal(t, []string{"Acme", "Zeta"}, first.Values)
	require.Nil(t, first.Cache)

	code, second := getCatalog(t, base+"/shops/"+shop+"/catalog/categories")
	require.Equal(t, http.StatusOK, code)
	require.Equal(t, []string{"Apparel"}, second.Values)
	require.NotNil(t, second.Cache)
	require.False(t, second.Cache.IsStale)
	require.EqualValues(t, 1, calls.Load())

	body := `{"id":42}`
	req, _ := http.NewRequest(http.MethodPost, base+"/webhooks/shopify", strings.NewReader(body))
	req.Header.Set(shopify.HeaderHMAC, shopify.SignWebhook("hush", []byte(body)))
	req.Header.Set(shopify.HeaderTopic, domain.TopicProductsUpdate)
	req.Header.Set(shopify.HeaderShopDomain, shop)
	resp, err := http.DefaultClient.Do(req)
	require.NoError(t, err)
	resp.Body.Close()
	require.Equal(t, http.StatusOK, resp.StatusCode)

	code, third := getCatalog(t, base+"/shops/"+shop+"/catalog/vendors")
	require.Equal(t, http.StatusOK, code)
	require.Nil(t, third.Cache)
	require.EqualValues(t, 2, calls.Load())
}

// 2) магазин без токена → 404, кэш не трогается
func TestHTTP_UnknownShop_404_TC(t *testing.T) {
	srv, calls := fakeShopify(t, 0)
	base := newStackTC(t, testutil.MakeShop(), srv.URL, 5*time.Second)

	code, _ := getCatalog(t, base+"/shops/stranger.myshopify.com/catalog/vendors")
	require.Equal(t, http.StatusNotFound, code)
	require.EqualValues(t, 0, calls.Load())
}

// 3) медленный Admin API и короткий таймаут обработчика → 504
func TestHTTP_Catalog_Timeout_504_TC(t *testing.T) {
	shop := testutil.MakeShop()
	srv, _ := fakeShopify(t, 2*time.Second)
	base := newStackTC(t, shop, srv.URL, 50*time.Millisecond)

	code, _ := getCatalog(t, base+"/shops/"+shop+"/catalog/vendors")
	require.Equal(t, http.StatusGatewayTimeout, code)
}

// 4) /cache/expiring видит только записи с истёкшим сроком
func TestHTTP_Expiring_TC(t *testing.T) {
	shop := testutil.MakeShop()
	srv, _ := fakeShopify(t, 0)
	base := newStackTC(t, shop, srv.URL, 5*time.Second)

	code, _ := getCatalog(t, base+"/shops/"+shop+"/catalog/vendors")
	require.Equal(t, http.StatusOK, code)

	before := time.Now().Add(time.Hour).UTC().Format(time.RFC3339)
	resp, err := http.Get(base + "/cache/expiring?limit=10&before=" + before)
	require.NoError(t, err)
	defer resp.Body.Close()
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var rows []map[string]any
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&rows))
	mine := 0
	for _, r := range rows {
		if r["shop"] == shop {
			mine++
		}
	}
	require.Equal(t, 3, mine)
}
