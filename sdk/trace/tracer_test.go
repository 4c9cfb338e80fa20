// Copyright The OpenTelemetry Authors
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package trace

import (
	"context"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"go.opentelemetry.io/otelcore/attribute"
	"go.opentelemetry.io/otelcore/internal/global"
	coretrace "go.opentelemetry.io/otelcore/trace"
)

// memoryExporter collects every exported span for assertions. It is the
// in-memory SpanExporter used across sdk/trace's own tests.
type memoryExporter struct {
	mu       sync.Mutex
	spans    []ReadOnlySpan
	shutdown bool
}

func (e *memoryExporter) ExportSpans(_ context.Context, spans []ReadOnlySpan) error {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.spans = append(e.spans, spans...)
	return nil
}

func (e *memoryExporter) Shutdown(context.Context) error {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.shutdown = true
	return nil
}

func (e *memoryExporter) getSpans() []ReadOnlySpan {
	e.mu.Lock()
	defer e.mu.Unlock()
	return append([]ReadOnlySpan(nil), e.spans...)
}

func TestTracerStartEndRecordsSpan(t *testing.T) {
	exp := &memoryExporter{}
	tp := NewTracerProvider(WithSpanProcessor(NewSimpleSpanProcessor(exp)))
	tr := tp.Tracer("test")

	_, span := tr.Start(context.Background(), "op", coretrace.WithSpanKind(coretrace.SpanKindServer))
	assert.True(t, span.IsRecording())
	assert.True(t, span.SpanContext().IsValid())
	span.End()
	assert.False(t, span.IsRecording())

	spans := exp.getSpans()
	require.Len(t, spans, 1)
	assert.Equal(t, "op", spans[0].Name())
	assert.Equal(t, coretrace.SpanKindServer, spans[0].SpanKind())
}

func TestTracerChildInheritsTraceID(t *testing.T) {
	exp := &memoryExporter{}
	tp := NewTracerProvider(WithSpanProcessor(NewSimpleSpanProcessor(exp)))
	tr := tp.Tracer("test")

	ctx, parent := tr.Start(context.Background(), "parent")
	_, child := tr.Start(ctx, "child")

	assert.Equal(t, parent.SpanContext().TraceID(), child.SpanContext().TraceID())
	assert.Equal(t, parent.SpanContext().SpanID(), coretrace.SpanContextFromContext(ctx).SpanID())
	assert.NotEqual(t, parent.SpanContext().SpanID(), child.SpanContext().SpanID())
}

func TestTracerNewRootIgnoresParent(t *testing.T) {
	tp := NewTracerProvider()
	tr := tp.Tracer("test")

	ctx, parent := tr.Start(context.Background(), "parent")
	_, root := tr.Start(ctx, "root", coretrace.WithNewRoot())

	assert.NotEqual(t, parent.SpanContext().TraceID(), root.SpanContext().TraceID())
}

func TestTracerNeverSampleProducesNonRecordingSpan(t *testing.T) {
	tp := NewTracerProvider(WithSampler(NeverSample()))
	tr := tp.Tracer("test")

	_, span := tr.Start(context.Background(), "op")
	assert.False(t, span.IsRecording())
	assert.True(t, span.SpanContext().IsValid())
	assert.False(t, span.SpanContext().IsSampled())
}

func TestSpanAttributeLimitDropsExcessAndCounts(t *testing.T) {
	exp := &memoryExporter{}
	tp := NewTracerProvider(
		WithSpanProcessor(NewSimpleSpanProcessor(exp)),
		WithSpanLimits(SpanLimits{AttributePerSpan: 2, EventPerSpan: 128, LinkPerSpan: 128, AttributePerEvent: 128, AttributePerLink: 128}),
	)
	tr := tp.Tracer("test")

	_, span := tr.Start(context.Background(), "op")
	span.SetAttributes(
		attribute.Int("a", 1),
		attribute.Int("b", 2),
		attribute.Int("c", 3),
	)
	span.End()

	spans := exp.getSpans()
	require.Len(t, spans, 1)
	assert.Len(t, spans[0].Attributes(), 2)
	assert.Equal(t, 1, spans[0].DroppedAttributes())
}

func TestSpanEndIsIdempotent(t *testing.T) {
	exp := &memoryExporter{}
	tp := NewTracerProvider(WithSpanProcessor(NewSimpleSpanProcessor(exp)))
	tr := tp.Tracer("test")

	_, span := tr.Start(context.Background(), "op")
	span.End()
	span.End()

	assert.Len(t, exp.getSpans(), 1)
}

func TestProviderShutdownIsIdempotent(t *testing.T) {
	exp := &memoryExporter{}
	tp := NewTracerProvider(WithSpanProcessor(NewSimpleSpanProcessor(exp)))

	require.NoError(t, tp.Shutdown(context.Background()))
	assert.True(t, exp.shutdown)
	assert.Error(t, tp.Shutdown(context.Background()))
}

func TestTracerStartAfterShutdownIsNonRecording(t *testing.T) {
	exp := &memoryExporter{}
	tp := NewTracerProvider(WithSpanProcessor(NewSimpleSpanProcessor(exp)))
	tr := tp.Tracer("test")

	require.NoError(t, tp.Shutdown(context.Background()))

	_, span := tr.Start(context.Background(), "op")
	assert.False(t, span.IsRecording())
	span.End()

	assert.Empty(t, exp.getSpans())
}

func TestTracerStartSkipsRecordingWhenSelfTelemetrySuppressed(t *testing.T) {
	exp := &memoryExporter{}
	tp := NewTracerProvider(WithSpanProcessor(NewSimpleSpanProcessor(exp)))
	tr := tp.Tracer("test")

	ctx := global.ContextWithoutSelfTelemetry(context.Background())
	_, span := tr.Start(ctx, "op")
	assert.False(t, span.IsRecording())
	span.End()

	assert.Empty(t, exp.getSpans())
}

func TestProviderTracerIsCachedPerScope(t *testing.T) {
	tp := NewTracerProvider()
	a := tp.Tracer("scope-a")
	b := tp.Tracer("scope-a")
	c := tp.Tracer("scope-b")

	assert.Same(t, a, b)
	assert.NotSame(t, a, c)
}
