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
	"go.opentelemetry.io/otelcore/codes"
	"go.opentelemetry.io/otelcore/resource"
	sdktrace "go.opentelemetry.io/otelcore/sdk/trace"
	coretrace "go.opentelemetry.io/otelcore/trace"

	tracepb "go.opentelemetry.io/proto/otlp/trace/v1"
)

// Spans groups spans by (resource, instrumentation scope) pair and converts
// each group into a ResourceSpans, the shape an OTLP trace export request
// carries. A TracerProvider hands every span the same *resource.Resource,
// so grouping by that pointer is equivalent to grouping by resource
// identity.
func Spans(spans []sdktrace.ReadOnlySpan) []*tracepb.ResourceSpans {
	type scopeKey struct {
		name, version string
	}

	order := make([]*resource.Resource, 0)
	byResource := make(map[*resource.Resource]*tracepb.ResourceSpans)
	scopesByResource := make(map[*resource.Resource]map[scopeKey]*tracepb.ScopeSpans)

	for _, s := range spans {
		res := s.Resource()
		rs, ok := byResource[res]
		if !ok {
			rs = &tracepb.ResourceSpans{Resource: Resource(res)}
			byResource[res] = rs
			scopesByResource[res] = make(map[scopeKey]*tracepb.ScopeSpans)
			order = append(order, res)
		}

		sc := s.InstrumentationScope()
		key := scopeKey{name: sc.Name, version: sc.Version}
		ss, ok := scopesByResource[res][key]
		if !ok {
			ss = &tracepb.ScopeSpans{Scope: Scope(sc), SchemaUrl: sc.SchemaURL}
			scopesByResource[res][key] = ss
			rs.ScopeSpans = append(rs.ScopeSpans, ss)
		}
		ss.Spans = append(ss.Spans, Span(s))
	}

	out := make([]*tracepb.ResourceSpans, 0, len(order))
	for _, res := range order {
		out = append(out, byResource[res])
	}
	return out
}

// Span converts a single ReadOnlySpan into the OTLP wire representation.
func Span(s sdktrace.ReadOnlySpan) *tracepb.Span {
	sc := s.SpanContext()
	traceID := sc.TraceID()
	spanID := sc.SpanID()
	parent := s.Parent()

	out := &tracepb.Span{
		TraceId:                traceID[:],
		SpanId:                 spanID[:],
		TraceState:             sc.TraceState().String(),
		Name:                   s.Name(),
		Kind:                   spanKind(s.SpanKind()),
		StartTimeUnixNano:      uint64(s.StartTime().UnixNano()),
		EndTimeUnixNano:        uint64(s.EndTime().UnixNano()),
		Attributes:             KeyValues(s.Attributes()),
		DroppedAttributesCount: uint32(s.DroppedAttributes()),
		DroppedEventsCount:     uint32(s.DroppedEvents()),
		DroppedLinksCount:      uint32(s.DroppedLinks()),
		Status:                 status(s.Status()),
	}
	if parent.IsValid() {
		parentID := parent.SpanID()
		out.ParentSpanId = parentID[:]
	}
	for _, ev := range s.Events() {
		out.Events = append(out.Events, &tracepb.Span_Event{
			TimeUnixNano:           uint64(ev.Time.UnixNano()),
			Name:                   ev.Name,
			Attributes:             KeyValues(ev.Attributes),
			DroppedAttributesCount: uint32(ev.DroppedAttributeCount),
		})
	}
	for _, link := range s.Links() {
		lsc := link.SpanContext
		lTraceID := lsc.TraceID()
		lSpanID := lsc.SpanID()
		out.Links = append(out.Links, &tracepb.Span_Link{
			TraceId:                lTraceID[:],
			SpanId:                 lSpanID[:],
			TraceState:             lsc.TraceState().String(),
			Attributes:             KeyValues(link.Attributes),
			DroppedAttributesCount: uint32(link.DroppedAttributeCount),
		})
	}
	return out
}

func spanKind(k coretrace.SpanKind) tracepb.Span_SpanKind {
	switch k {
	case coretrace.SpanKindInternal:
		return tracepb.Span_SPAN_KIND_INTERNAL
	case coretrace.SpanKindServer:
		return tracepb.Span_SPAN_KIND_SERVER
	case coretrace.SpanKindClient:
		return tracepb.Span_SPAN_KIND_CLIENT
	case coretrace.SpanKindProducer:
		return tracepb.Span_SPAN_KIND_PRODUCER
	case coretrace.SpanKindConsumer:
		return tracepb.Span_SPAN_KIND_CONSUMER
	default:
		return tracepb.Span_SPAN_KIND_UNSPECIFIED
	}
}

func status(s coretrace.Status) *tracepb.Status {
	out := &tracepb.Status{Message: s.Description}
	switch s.Code {
	case codes.Ok:
		out.Code = tracepb.Status_STATUS_CODE_OK
	case codes.Error:
		out.Code = tracepb.Status_STATUS_CODE_ERROR
	default:
		out.Code = tracepb.Status_STATUS_CODE_UNSET
	}
	return out
}
