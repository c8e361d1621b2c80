package tracing

import (
	"context"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
)

// InstrumentationName identifies spans produced by this module.
const InstrumentationName = "github.com/vaultsandbox/sealedbox-go"

// OTel adapts an OpenTelemetry tracer provider to Tracer.
type OTel struct {
	tracer trace.Tracer
}

// NewOTel creates a tracer from provider. A nil provider uses the global one
// registered with otel.SetTracerProvider.
func NewOTel(provider trace.TracerProvider) *OTel {
	if provider == nil {
		provider = otel.GetTracerProvider()
	}
	return &OTel{
		tracer: provider.Tracer(InstrumentationName),
	}
}

// Start starts an OpenTelemetry span.
func (t *OTel) Start(ctx context.Context, name string, attrs ...attribute.KeyValue) (context.Context, End) {
	ctx, span := t.tracer.Start(ctx, name,
		trace.WithSpanKind(trace.SpanKindInternal),
		trace.WithAttributes(attrs...),
	)
	return ctx, func(err error) {
		if err != nil {
			span.RecordError(err)
			span.SetStatus(codes.Error, err.Error())
		} else {
			span.SetStatus(codes.Ok, "")
		}
		span.End()
	}
}
