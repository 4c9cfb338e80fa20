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

package trace // import "go.opentelemetry.io/otelcore/trace"

import (
	"context"
	"time"

	"go.opentelemetry.io/otelcore/attribute"
	"go.opentelemetry.io/otelcore/codes"
)

// SpanKind describes the relationship between a span and its callers/callees.
type SpanKind int

const (
	SpanKindUnspecified SpanKind = iota
	SpanKindInternal
	SpanKindServer
	SpanKindClient
	SpanKindProducer
	SpanKindConsumer
)

// Status is the status of a completed Span.
type Status struct {
	Code        codes.Code
	Description string
}

// Link is a reference from a span to a causally-related span, elsewhere in
// the same trace or in a different trace.
type Link struct {
	SpanContext           SpanContext
	Attributes             []attribute.KeyValue
	DroppedAttributeCount int
}

// Event is a timestamped annotation recorded on a span.
type Event struct {
	Name                  string
	Time                  time.Time
	Attributes            []attribute.KeyValue
	DroppedAttributeCount int
}

// Span is the mutable handle instrumented code uses to record a unit of
// work. A Span obtained from a non-sampling Tracer still propagates context
// but silently discards every mutation.
type Span interface {
	// End completes the span. Only the first call has an effect.
	End(opts ...SpanEndOption)
	// AddEvent records an event on the span.
	AddEvent(name string, opts ...EventOption)
	// AddLink records a link on the span.
	AddLink(link Link)
	// IsRecording reports whether the span is recording events.
	IsRecording() bool
	// RecordError records err as an exception event.
	RecordError(err error, opts ...EventOption)
	// SpanContext returns the SpanContext identifying this span.
	SpanContext() SpanContext
	// SetStatus sets the span's status.
	SetStatus(code codes.Code, description string)
	// SetName updates the span's name.
	SetName(name string)
	// SetAttributes sets attributes on the span.
	SetAttributes(kv ...attribute.KeyValue)
	// TracerProvider returns a TracerProvider that can create a Tracer for
	// the same provider as this span was created in.
	TracerProvider() TracerProvider
}

// SpanStartOption configures a new span at start time.
type SpanStartOption interface{ applySpanStart(*SpanStartConfig) }

// SpanEndOption configures the moment a span ends.
type SpanEndOption interface{ applySpanEnd(*SpanEndConfig) }

// EventOption configures a recorded event.
type EventOption interface{ applyEvent(*EventConfig) }

// SpanStartConfig is built up by a chain of SpanStartOptions.
type SpanStartConfig struct {
	Timestamp  time.Time
	Attributes []attribute.KeyValue
	Links      []Link
	Kind       SpanKind
	NewRoot    bool
}

// SpanEndConfig is built up by a chain of SpanEndOptions.
type SpanEndConfig struct {
	Timestamp time.Time
}

// EventConfig is built up by a chain of EventOptions.
type EventConfig struct {
	Timestamp  time.Time
	Attributes []attribute.KeyValue
}

// Tracer creates Spans for a single instrumentation scope.
type Tracer interface {
	Start(ctx context.Context, spanName string, opts ...SpanStartOption) (context.Context, Span)
}

// TracerProvider supplies Tracers, one per instrumentation scope.
type TracerProvider interface {
	Tracer(name string, opts ...TracerOption) Tracer
}

// TracerOption configures a Tracer obtained from a TracerProvider.
type TracerOption interface{ applyTracer(*TracerConfig) }

// TracerConfig is built up by a chain of TracerOptions.
type TracerConfig struct {
	InstrumentationVersion string
	SchemaURL              string
	Attributes              []attribute.KeyValue
}

type spanContextKey struct{}

// ContextWithSpanContext returns a copy of ctx with sc set as the active
// span context, for use by code that does not also need a live Span handle.
func ContextWithSpanContext(ctx context.Context, sc SpanContext) context.Context {
	return context.WithValue(ctx, spanContextKey{}, sc)
}

// SpanContextFromContext extracts the active SpanContext from ctx, if any.
func SpanContextFromContext(ctx context.Context) SpanContext {
	sc, _ := ctx.Value(spanContextKey{}).(SpanContext)
	return sc
}

type spanKey struct{}

// ContextWithSpan returns a copy of ctx carrying span as the active Span.
func ContextWithSpan(ctx context.Context, span Span) context.Context {
	ctx = ContextWithSpanContext(ctx, span.SpanContext())
	return context.WithValue(ctx, spanKey{}, span)
}

// SpanFromContext returns the active Span in ctx, or a non-recording
// no-op Span if none is set.
func SpanFromContext(ctx context.Context) Span {
	if s, ok := ctx.Value(spanKey{}).(Span); ok {
		return s
	}
	return noopSpan{}
}

type noopSpan struct{}

func (noopSpan) End(...SpanEndOption)                {}
func (noopSpan) AddEvent(string, ...EventOption)     {}
func (noopSpan) AddLink(Link)                        {}
func (noopSpan) IsRecording() bool                   { return false }
func (noopSpan) RecordError(error, ...EventOption)   {}
func (noopSpan) SpanContext() SpanContext            { return SpanContext{} }
func (noopSpan) SetStatus(codes.Code, string)        {}
func (noopSpan) SetName(string)                      {}
func (noopSpan) SetAttributes(...attribute.KeyValue) {}
func (noopSpan) TracerProvider() TracerProvider      { return noopProvider{} }

type noopProvider struct{}

func (noopProvider) Tracer(string, ...TracerOption) Tracer { return noopTracer{} }

type noopTracer struct{}

func (noopTracer) Start(ctx context.Context, _ string, _ ...SpanStartOption) (context.Context, Span) {
	return ContextWithSpan(ctx, noopSpan{}), noopSpan{}
}

// NewNoopTracerProvider returns a TracerProvider whose Tracers produce only
// non-recording Spans.
func NewNoopTracerProvider() TracerProvider { return noopProvider{} }
