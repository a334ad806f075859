// Package shopify — клиент Admin GraphQL API: постраничное чтение каталога,
// чтение и массовая запись вариантов товара, проверка подписи вебхуков.
package shopify

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"

	"github.com/Gunvolt24/product_wizard/internal/domain"
	"github.com/Gunvolt24/product_wizard/internal/ports"
	"github.com/Gunvolt24/product_wizard/pkg/metrics"
)

const (
	DefaultAPIVersion = "2024-10"
	defaultTimeout    = 30 * time.Second
	// maxBodyBytes — ответы больше считаем ошибкой апстрима.
	maxBodyBytes = 16 << 20
)

var (
	_ ports.CatalogAPI     = (*Client)(nil)
	_ ports.VariantGateway = (*Client)(nil)
)

// Config — параметры клиента.
type Config struct {
	APIVersion string
	// Tokens — access token по домену магазина (OAuth вне сервиса).
	Tokens map[string]string
	// BaseURL — подмена https://{shop} (тесты, прокси). Пусто → домен магазина.
	BaseURL string
	Timeout time.Duration
}

// Client — тонкий GraphQL-клиент поверх net/http.
type Client struct {
	cfg  Config
	http *http.Client
	log  ports.Logger
}

// NewClient — httpClient == nil → клиент с таймаутом и otel-транспортом.
func NewClient(cfg Config, log ports.Logger, httpClient *http.Client) *Client {
	if cfg.APIVersion == "" {
		cfg.APIVersion = DefaultAPIVersion
	}
	if cfg.Timeout <= 0 {
		cfg.Timeout = defaultTimeout
	}
	if httpClient == nil {
		httpClient = &http.Client{
			Timeout:   cfg.Timeout,
			Transport: otelhttp.NewTransport(http.DefaultTransport),
		}
	}
	return &Client{cfg: cfg, http: httpClient, log: log}
}

type gqlRequest struct {
	Query     string         `json:"query"`
	Variables map[string]any `json:"variables,omitempty"`
}

type gqlResponse struct {
	Data   json.RawMessage `json:"data"`
	Errors []gqlError      `json:"errors,omitempty"`
}

type gqlError struct {
	Message string `json:"message"`
}

// Execute — выполнить GraphQL-операцию и разобрать data в out.
// Нет токена → domain.ErrShopNotConfigured; сеть, статус не 200, errors → domain.ErrUpstream.
func (c *Client) Execute(ctx context.Context, shop, operation, query string, vars map[string]any, out any) (err error) {
	start := time.Now()
	defer func() {
		result := "ok"
		if err != nil {
			result = "error"
		}
		metrics.ShopifyRequests.WithLabelValues(operation, result).Inc()
		metrics.ShopifyRequestDuration.WithLabelValues(operation).Observe(time.Since(start).Seconds())
	}()

	token, ok := c.cfg.Tokens[shop]
	if !ok || token == "" {
		return fmt.Errorf("%w: %s", domain.ErrShopNotConfigured, shop)
	}

	body, err := json.Marshal(gqlRequest{Query: query, Variables: vars})
	if err != nil {
		return fmt.Errorf("marshal %s: %w", operation, err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.endpoint(shop), bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("build %s request: %w", operation, err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("X-Shopify-Access-Token", token)

	resp, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("%w: %s: %w", domain.ErrUpstream, operation, err)
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(io.LimitReader(resp.Body, maxBodyBytes))
	if err != nil {
		return fmt.Errorf("%w: read %s: %v", domain.ErrUpstream, operation, err)
	}
	if resp.StatusCode != http.StatusOK {
		c.log.Warnf(ctx, "shopify non-200 shop=%s op=%s status=%d", shop, operation, resp.StatusCode)
		return fmt.Errorf("%w: %s: status %d", domain.ErrUpstream, operation, resp.StatusCode)
	}

	var gr gqlResponse
	if err := json.Unmarshal(raw, &gr); err != nil {
		return fmt.Errorf("%w: decode %s: %v", domain.ErrUpstream, operation, err)
	}
	if len(gr.Errors) > 0 {
		msgs := make([]string, 0, len(gr.Errors))
		for _, e := range gr.Errors {
			msgs = append(msgs, e.Message)
		}
		return fmt.Errorf("%w: %s: %s", domain.ErrUpstream, operation, strings.Join(msgs, "; "))
	}
	if out == nil {
		return nil
	}
	if len(gr.Data) == 0 || string(gr.Data) == "null" {
		return fmt.Errorf("%w: %s: empty data", domain.ErrUpstream, operation)
	}
	if err := json.Unmarshal(gr.Data, out); err != nil {
		return fmt.Errorf("%w: decode %s data: %v", domain.ErrUpstream, operation, err)
	}
	return nil
}

func (c *Client) endpoint(shop string) string {
	base := c.cfg.BaseURL
	if base == "" {
		base = "https://" + shop
	}
	return strings.TrimRight(base, "/") + "/admin/api/" + c.cfg.APIVersion + "/graphql.json"
}
