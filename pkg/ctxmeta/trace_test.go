package ctxmeta_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"

	"github.com/Gunvolt24/product_wizard/pkg/ctxmeta"
)

func TestTraceIDs_FromActiveSpan(t *testing.T) {
	tp := sdktrace.NewTracerProvider()
	t.Cleanup(func() { _ = tp.Shutdown(context.Background()) })

	ctx, span := tp.Tracer("catalog").Start(context.Background(), "GET /shops/:shop/catalog/:dataType")
	defer span.End()

	traceID, ok := ctxmeta.TraceIDFromContext(ctx)
	assert.True(t, ok)
	assert.Equal(t, span.SpanContext().TraceID().String(), traceID)

	spanID, ok := ctxmeta.SpanIDFromContext(ctx)
	assert.True(t, ok)
	assert.Equal(t, span.SpanContext().SpanID().String(), spanID)
}

func TestTraceIDs_NoSpan(t *testing.T) {
	var nilCtx context.Context
	for _, ctx := range []context.Context{context.Background(), nilCtx} {
		id, ok := ctxmeta.TraceIDFromContext(ctx)
		assert.False(t, ok)
		assert.Empty(t, id)
		id, ok = ctxmeta.SpanIDFromContext(ctx)
		assert.False(t, ok)
		assert.Empty(t, id)
	}
}
