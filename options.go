package sealedbox

import (
	"io"

	"go.opentelemetry.io/otel/trace"

	"github.com/vaultsandbox/sealedbox-go/internal/tracing"
)

// codecConfig holds configuration for a Codec.
type codecConfig struct {
	tracer tracing.Tracer
	rand   io.Reader
}

// Option configures a Codec.
type Option func(*codecConfig)

// WithTracerProvider sets the OpenTelemetry tracer provider used for
// keygen, seal and open spans. A nil provider uses the global provider.
// Spans carry message and box sizes only.
func WithTracerProvider(provider trace.TracerProvider) Option {
	return func(c *codecConfig) {
		c.tracer = tracing.NewOTel(provider)
	}
}

// WithoutTracing disables span creation.
func WithoutTracing() Option {
	return func(c *codecConfig) {
		c.tracer = tracing.NoOp{}
	}
}

// WithRandReader sets the random source for key generation and ephemeral
// keys. The default is crypto/rand. A reader that fails makes
// GenerateKeypair and Seal panic with a *FatalError.
func WithRandReader(r io.Reader) Option {
	return func(c *codecConfig) {
		c.rand = r
	}
}
