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

package trace // import "go.opentelemetry.io/otelcore/sdk/trace"

import (
	"context"
	"time"

	"go.opentelemetry.io/otelcore/attribute"
	"go.opentelemetry.io/otelcore/instrumentation"
	"go.opentelemetry.io/otelcore/internal/global"
	coretrace "go.opentelemetry.io/otelcore/trace"
)

// tracer is the SDK's coretrace.Tracer implementation for a single
// instrumentation scope. All tracers obtained from the same TracerProvider
// share its sampler, id generator, span limits and processor chain.
type tracer struct {
	provider *TracerProvider
	scope    instrumentation.Scope
}

var _ coretrace.Tracer = (*tracer)(nil)

// Start creates a span as a child of any Span found in ctx, runs it through
// the provider's Sampler, and notifies every SpanProcessor's OnStart before
// returning the new context and Span.
func (t *tracer) Start(ctx context.Context, name string, opts ...coretrace.SpanStartOption) (context.Context, coretrace.Span) {
	if t.provider.shutdown.Load() || global.IsSelfTelemetrySuppressed(ctx) {
		psc := coretrace.SpanContextFromContext(ctx)
		span := nonRecordingSpan{sc: psc, provider: t.provider}
		return coretrace.ContextWithSpan(ctx, span), span
	}

	cfg := coretrace.NewSpanStartConfig(opts...)

	psc := coretrace.SpanContextFromContext(ctx)
	if cfg.NewRoot {
		ctx = coretrace.ContextWithSpanContext(ctx, coretrace.SpanContext{})
		psc = coretrace.SpanContext{}
	}

	traceID := psc.TraceID()
	var spanID coretrace.SpanID
	if psc.IsValid() {
		spanID = t.provider.idGenerator.NewSpanID(ctx, traceID)
	} else {
		traceID, spanID = t.provider.idGenerator.NewIDs(ctx)
	}

	result := t.provider.sampler.ShouldSample(SamplingParameters{
		ParentContext: ctx,
		TraceID:       traceID,
		Name:          name,
		Kind:          cfg.Kind,
		Attributes:    cfg.Attributes,
		Links:         cfg.Links,
	})

	sc := coretrace.NewSpanContext(coretrace.SpanContextConfig{
		TraceID:    traceID,
		SpanID:     spanID,
		TraceFlags: psc.TraceFlags().WithSampled(result.Decision == RecordAndSample),
		TraceState: result.Tracestate,
	})

	if result.Decision == Drop {
		span := nonRecordingSpan{sc: sc, provider: t.provider}
		return coretrace.ContextWithSpan(ctx, span), span
	}

	startTime := cfg.Timestamp
	if startTime.IsZero() {
		startTime = time.Now()
	}

	attrs, droppedAttrs := truncateAttributes(append(append([]attribute.KeyValue(nil), result.Attributes...), cfg.Attributes...), t.provider.spanLimits.AttributePerSpan)
	links, droppedLinks := truncateLinks(cfg.Links, t.provider.spanLimits.LinkPerSpan, t.provider.spanLimits.AttributePerLink)

	s := &recordingSpan{
		name:              name,
		spanContext:       sc,
		parent:            psc,
		kind:              cfg.Kind,
		startTime:         startTime,
		attributes:        attrs,
		droppedAttributes: droppedAttrs,
		links:             links,
		droppedLinks:      droppedLinks,
		limits:            t.provider.spanLimits,
		scope:             t.scope,
		resource:          t.provider.resource,
		tracer:            t,
	}

	ctx = coretrace.ContextWithSpan(ctx, s)
	for _, sp := range t.provider.spanProcessors() {
		sp.OnStart(ctx, s)
	}
	return ctx, s
}

// truncateLinks keeps the first limit links supplied at span start,
// matching the FIFO drop semantics AddLink applies after start, and
// truncates each kept link's own attributes to attrLimit.
func truncateLinks(links []coretrace.Link, limit, attrLimit int) ([]coretrace.Link, int) {
	dropped := 0
	if len(links) > limit {
		dropped = len(links) - limit
		links = links[:limit]
	}
	out := make([]coretrace.Link, len(links))
	for i, l := range links {
		attrs, droppedAttrs := truncateAttributes(l.Attributes, attrLimit)
		l.Attributes = attrs
		l.DroppedAttributeCount += droppedAttrs
		out[i] = l
	}
	return out, dropped
}
