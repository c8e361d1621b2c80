// Package tracing wraps the span handling used around sealed box operations.
//
// Spans carry sizes only. Key material, plaintext and failure details never
// become span attributes; a failed open is recorded with the same opaque
// error the caller receives.
package tracing

import (
	"context"
	"sync"
	"time"

	"go.opentelemetry.io/otel/attribute"
)

// Span names for sealedbox operations.
const (
	SpanKeygen = "sealedbox.keygen"
	SpanSeal   = "sealedbox.seal"
	SpanOpen   = "sealedbox.open"
)

// Attribute keys for sealedbox spans.
const (
	AttrMessageSize = attribute.Key("sealedbox.message.size")
	AttrBoxSize     = attribute.Key("sealedbox.box.size")
)

// Tracer starts spans.
type Tracer interface {
	// Start starts a span with the given name and returns a context carrying
	// it together with the function that ends it.
	Start(ctx context.Context, name string, attrs ...attribute.KeyValue) (context.Context, End)
}

// End ends a span. Pass nil for success or the returned error on failure.
type End func(err error)

// NoOp is a tracer that does nothing.
type NoOp struct{}

// Start returns the context unchanged and a no-op end function.
func (NoOp) Start(ctx context.Context, name string, attrs ...attribute.KeyValue) (context.Context, End) {
	return ctx, func(error) {}
}

// Recorder keeps finished spans in memory. Useful for tests.
type Recorder struct {
	mu    sync.Mutex
	spans []RecordedSpan
}

// RecordedSpan is a finished span.
type RecordedSpan struct {
	Name       string
	Attributes []attribute.KeyValue
	Duration   time.Duration
	Err        error
}

// NewRecorder creates an empty Recorder.
func NewRecorder() *Recorder {
	return &Recorder{}
}

// Start starts a span that is recorded when ended.
func (r *Recorder) Start(ctx context.Context, name string, attrs ...attribute.KeyValue) (context.Context, End) {
	start := time.Now()
	return ctx, func(err error) {
		span := RecordedSpan{
			Name:       name,
			Attributes: append([]attribute.KeyValue(nil), attrs...),
			Duration:   time.Since(start),
			Err:        err,
		}

		r.mu.Lock()
		r.spans = append(r.spans, span)
		r.mu.Unlock()
	}
}

// Spans returns all recorded spans.
func (r *Recorder) Spans() []RecordedSpan {
	r.mu.Lock()
	defer r.mu.Unlock()
	result := make([]RecordedSpan, len(r.spans))
	copy(result, r.spans)
	return result
}

// Reset clears all recorded spans.
func (r *Recorder) Reset() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.spans = r.spans[:0]
}
