package telemetry

import (
	"context"
	"fmt"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/exporters/otlp/otlptrace/otlptracehttp"
	"go.opentelemetry.io/otel/propagation"
	"go.opentelemetry.io/otel/sdk/resource"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	semconv "go.opentelemetry.io/otel/semconv/v1.17.0"
)

const defaultEndpoint = "localhost:4318"

// TracingConfig — параметры экспорта трасс.
type TracingConfig struct {
	ServiceName string
	Version     string
	Environment string
	Endpoint    string
	SampleRatio float64
	// Insecure — OTLP/HTTP без TLS (локальный коллектор).
	Insecure bool
}

// Normalize — копия конфига с дефолтным endpoint и долей семплинга в [0, 1].
func (c TracingConfig) Normalize() TracingConfig {
	if c.Endpoint == "" {
		c.Endpoint = defaultEndpoint
	}
	c.SampleRatio = max(0, min(1, c.SampleRatio))
	return c
}

// Sampler — родительское решение приоритетнее собственной доли.
// Входящие из Shopify запросы без трассы семплируются по ratio.
func (c TracingConfig) Sampler() sdktrace.Sampler {
	return sdktrace.ParentBased(sdktrace.TraceIDRatioBased(c.SampleRatio))
}

// Resource — атрибуты сервиса для всех спанов.
func (c TracingConfig) Resource() *resource.Resource {
	attrs := []attribute.KeyValue{
		semconv.ServiceName(c.ServiceName),
		attribute.String("telemetry.sdk", "opentelemetry"),
	}
	if c.Version != "" {
		attrs = append(attrs, semconv.ServiceVersion(c.Version))
	}
	if c.Environment != "" {
		attrs = append(attrs, semconv.DeploymentEnvironment(c.Environment))
	}
	return resource.NewWithAttributes(semconv.SchemaURL, attrs...)
}

// SetupTracing — OTLP/HTTP экспорт, глобальный провайдер и пропагаторы.
// Возвращает Shutdown провайдера.
func SetupTracing(ctx context.Context, c TracingConfig) (func(context.Context) error, error) {
	c = c.Normalize()

	opts := []otlptracehttp.Option{otlptracehttp.WithEndpoint(c.Endpoint)}
	if c.Insecure {
		opts = append(opts, otlptracehttp.WithInsecure())
	}
	exporter, err := otlptracehttp.New(ctx, opts...)
	if err != nil {
		return nil, fmt.Errorf("otlp exporter %s: %w", c.Endpoint, err)
	}

	provider := sdktrace.NewTracerProvider(
		sdktrace.WithBatcher(exporter),
		sdktrace.WithSampler(c.Sampler()),
		sdktrace.WithResource(c.Resource()),
	)

	otel.SetTracerProvider(provider)
	otel.SetTextMapPropagator(propagation.NewCompositeTextMapPropagator(
		propagation.TraceContext{}, propagation.Baggage{},
	))
	return provider.Shutdown, nil
}
