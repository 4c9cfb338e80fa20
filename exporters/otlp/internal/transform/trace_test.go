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

package transform

import (
	"context"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"go.opentelemetry.io/otelcore/attribute"
	"go.opentelemetry.io/otelcore/codes"
	"go.opentelemetry.io/otelcore/resource"
	sdktrace "go.opentelemetry.io/otelcore/sdk/trace"
	coretrace "go.opentelemetry.io/otelcore/trace"

	tracepb "go.opentelemetry.io/proto/otlp/trace/v1"
)

type captureExporter struct {
	mu    sync.Mutex
	spans []sdktrace.ReadOnlySpan
}

func (e *captureExporter) ExportSpans(ctx context.Context, spans []sdktrace.ReadOnlySpan) error {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.spans = append(e.spans, spans...)
	return nil
}

func (e *captureExporter) Shutdown(ctx context.Context) error { return nil }

func recordedSpans(t *testing.T, res *resource.Resource, build func(coretrace.Span)) []sdktrace.ReadOnlySpan {
	t.Helper()
	exp := &captureExporter{}
	tp := sdktrace.NewTracerProvider(
		sdktrace.WithSpanProcessor(sdktrace.NewSimpleSpanProcessor(exp)),
		sdktrace.WithResource(res),
	)
	ctx, span := tp.Tracer("test").Start(context.Background(), "op",
		coretrace.WithSpanKind(coretrace.SpanKindServer),
		coretrace.WithAttributes(attribute.String("k", "v")),
	)
	span.AddEvent("ev", coretrace.WithAttributes(attribute.Int("n", 1)))
	build(span)
	span.SetStatus(codes.Error, "boom")
	span.End()
	_ = ctx
	require.NoError(t, tp.Shutdown(context.Background()))
	return exp.spans
}

func TestSpansGroupsByResourceAndScope(t *testing.T) {
	res := resource.NewSchemaless(attribute.String("service.name", "svc"))
	spans := recordedSpans(t, res, func(coretrace.Span) {})
	require.Len(t, spans, 1)

	rss := Spans(spans)
	require.Len(t, rss, 1)
	require.Len(t, rss[0].ScopeSpans, 1)
	require.Len(t, rss[0].ScopeSpans[0].Spans, 1)
	assert.Equal(t, "test", rss[0].ScopeSpans[0].Scope.Name)
}

func TestSpanCarriesCoreFields(t *testing.T) {
	res := resource.NewSchemaless()
	spans := recordedSpans(t, res, func(coretrace.Span) {})
	pb := Span(spans[0])

	assert.Equal(t, "op", pb.Name)
	assert.Equal(t, tracepb.Span_SPAN_KIND_SERVER, pb.Kind)
	assert.Equal(t, tracepb.Status_STATUS_CODE_ERROR, pb.Status.Code)
	assert.Equal(t, "boom", pb.Status.Message)
	require.Len(t, pb.Attributes, 1)
	assert.Equal(t, "k", pb.Attributes[0].Key)
	require.Len(t, pb.Events, 1)
	assert.Equal(t, "ev", pb.Events[0].Name)
	assert.Len(t, pb.TraceId, 16)
	assert.Len(t, pb.SpanId, 8)
}

func TestSpanOmitsParentSpanIDWhenRoot(t *testing.T) {
	res := resource.NewSchemaless()
	spans := recordedSpans(t, res, func(coretrace.Span) {})
	pb := Span(spans[0])
	assert.Empty(t, pb.ParentSpanId)
}
