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
	"fmt"
	"sync"
	"time"

	"go.opentelemetry.io/otelcore/attribute"
	"go.opentelemetry.io/otelcore/codes"
	"go.opentelemetry.io/otelcore/instrumentation"
	"go.opentelemetry.io/otelcore/resource"
	coretrace "go.opentelemetry.io/otelcore/trace"
)

// ReadOnlySpan is the immutable view of a span handed to SpanProcessors once
// it has ended. Implementations must not be mutated by processors; a
// processor that wants to retain data past the call must copy it.
type ReadOnlySpan interface {
	Name() string
	SpanContext() coretrace.SpanContext
	Parent() coretrace.SpanContext
	SpanKind() coretrace.SpanKind
	StartTime() time.Time
	EndTime() time.Time
	Attributes() []attribute.KeyValue
	DroppedAttributes() int
	Links() []coretrace.Link
	DroppedLinks() int
	Events() []coretrace.Event
	DroppedEvents() int
	Status() coretrace.Status
	InstrumentationScope() instrumentation.Scope
	Resource() *resource.Resource
}

// spanSnapshot is the concrete, immutable ReadOnlySpan built at End.
type spanSnapshot struct {
	name                string
	spanContext         coretrace.SpanContext
	parent              coretrace.SpanContext
	kind                coretrace.SpanKind
	startTime, endTime  time.Time
	attributes          []attribute.KeyValue
	droppedAttributes   int
	links               []coretrace.Link
	droppedLinks        int
	events              []coretrace.Event
	droppedEvents       int
	status              coretrace.Status
	instrumentationScope instrumentation.Scope
	resource            *resource.Resource
}

func (s *spanSnapshot) Name() string                                { return s.name }
func (s *spanSnapshot) SpanContext() coretrace.SpanContext          { return s.spanContext }
func (s *spanSnapshot) Parent() coretrace.SpanContext               { return s.parent }
func (s *spanSnapshot) SpanKind() coretrace.SpanKind                { return s.kind }
func (s *spanSnapshot) StartTime() time.Time                        { return s.startTime }
func (s *spanSnapshot) EndTime() time.Time                          { return s.endTime }
func (s *spanSnapshot) Attributes() []attribute.KeyValue             { return s.attributes }
func (s *spanSnapshot) DroppedAttributes() int                      { return s.droppedAttributes }
func (s *spanSnapshot) Links() []coretrace.Link                     { return s.links }
func (s *spanSnapshot) DroppedLinks() int                           { return s.droppedLinks }
func (s *spanSnapshot) Events() []coretrace.Event                   { return s.events }
func (s *spanSnapshot) DroppedEvents() int                          { return s.droppedEvents }
func (s *spanSnapshot) Status() coretrace.Status                    { return s.status }
func (s *spanSnapshot) InstrumentationScope() instrumentation.Scope { return s.instrumentationScope }
func (s *spanSnapshot) Resource() *resource.Resource                { return s.resource }

// recordingSpan is the mutable span state held between Start and End.
type recordingSpan struct {
	mu sync.Mutex

	name        string
	spanContext coretrace.SpanContext
	parent      coretrace.SpanContext
	kind        coretrace.SpanKind
	startTime   time.Time
	endTime     time.Time
	ended       bool

	attributes        []attribute.KeyValue
	droppedAttributes int
	links             []coretrace.Link
	droppedLinks      int
	events            []coretrace.Event
	droppedEvents     int
	status            coretrace.Status

	limits   SpanLimits
	scope    instrumentation.Scope
	resource *resource.Resource
	tracer   *tracer
}

var _ coretrace.Span = (*recordingSpan)(nil)
var _ ReadOnlySpan = (*recordingSpan)(nil)

func (s *recordingSpan) SpanContext() coretrace.SpanContext { return s.spanContext }

func (s *recordingSpan) Name() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.name
}
func (s *recordingSpan) Parent() coretrace.SpanContext { return s.parent }
func (s *recordingSpan) SpanKind() coretrace.SpanKind  { return s.kind }
func (s *recordingSpan) StartTime() time.Time          { return s.startTime }
func (s *recordingSpan) EndTime() time.Time {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.endTime
}
func (s *recordingSpan) Attributes() []attribute.KeyValue {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]attribute.KeyValue(nil), s.attributes...)
}
func (s *recordingSpan) DroppedAttributes() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.droppedAttributes
}
func (s *recordingSpan) Links() []coretrace.Link {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]coretrace.Link(nil), s.links...)
}
func (s *recordingSpan) DroppedLinks() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.droppedLinks
}
func (s *recordingSpan) Events() []coretrace.Event {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]coretrace.Event(nil), s.events...)
}
func (s *recordingSpan) DroppedEvents() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.droppedEvents
}
func (s *recordingSpan) Status() coretrace.Status {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.status
}
func (s *recordingSpan) InstrumentationScope() instrumentation.Scope { return s.scope }
func (s *recordingSpan) Resource() *resource.Resource                { return s.resource }

func (s *recordingSpan) IsRecording() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return !s.ended
}

func (s *recordingSpan) SetStatus(code codes.Code, description string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.ended {
		return
	}
	// Do not allow a later Unset call to downgrade a previously set Error/Ok.
	if code == codes.Unset && s.status.Code != codes.Unset {
		return
	}
	if code == codes.Ok {
		description = ""
	}
	s.status = coretrace.Status{Code: code, Description: description}
}

func (s *recordingSpan) SetName(name string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.ended {
		return
	}
	s.name = name
}

func (s *recordingSpan) SetAttributes(kvs ...attribute.KeyValue) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.ended {
		return
	}
	for _, kv := range kvs {
		if !kv.Valid() {
			continue
		}
		if len(s.attributes) >= s.limits.AttributePerSpan {
			s.droppedAttributes++
			continue
		}
		s.attributes = append(s.attributes, kv)
	}
}

func (s *recordingSpan) AddEvent(name string, opts ...coretrace.EventOption) {
	cfg := coretrace.NewEventConfig(opts...)
	ts := cfg.Timestamp
	if ts.IsZero() {
		ts = time.Now()
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.ended {
		return
	}
	if len(s.events) >= s.limits.EventPerSpan {
		s.droppedEvents++
		return
	}
	attrs, dropped := truncateAttributes(cfg.Attributes, s.limits.AttributePerEvent)
	s.events = append(s.events, coretrace.Event{
		Name: name, Time: ts, Attributes: attrs, DroppedAttributeCount: dropped,
	})
}

func (s *recordingSpan) RecordError(err error, opts ...coretrace.EventOption) {
	if err == nil {
		return
	}
	cfg := coretrace.NewEventConfig(opts...)
	attrs := append([]attribute.KeyValue{
		attribute.String("exception.message", err.Error()),
		attribute.String("exception.type", fmt.Sprintf("%T", err)),
	}, cfg.Attributes...)
	s.AddEvent("exception", coretrace.WithAttributes(attrs...), coretrace.WithTimestamp(cfg.Timestamp))
}

func (s *recordingSpan) AddLink(link coretrace.Link) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.ended {
		return
	}
	if len(s.links) >= s.limits.LinkPerSpan {
		s.droppedLinks++
		return
	}
	attrs, dropped := truncateAttributes(link.Attributes, s.limits.AttributePerLink)
	link.Attributes = attrs
	link.DroppedAttributeCount += dropped
	s.links = append(s.links, link)
}

func (s *recordingSpan) TracerProvider() coretrace.TracerProvider { return s.tracer.provider }

func (s *recordingSpan) End(opts ...coretrace.SpanEndOption) {
	s.mu.Lock()
	if s.ended {
		s.mu.Unlock()
		return
	}
	s.ended = true
	cfg := coretrace.NewSpanEndConfig(opts...)
	endTime := cfg.Timestamp
	if endTime.IsZero() {
		endTime = time.Now()
	}
	if endTime.Before(s.startTime) {
		endTime = s.startTime
	}
	s.endTime = endTime
	snap := &spanSnapshot{
		name:                 s.name,
		spanContext:          s.spanContext,
		parent:               s.parent,
		kind:                 s.kind,
		startTime:            s.startTime,
		endTime:              s.endTime,
		attributes:           append([]attribute.KeyValue(nil), s.attributes...),
		droppedAttributes:    s.droppedAttributes,
		links:                append([]coretrace.Link(nil), s.links...),
		droppedLinks:         s.droppedLinks,
		events:               append([]coretrace.Event(nil), s.events...),
		droppedEvents:        s.droppedEvents,
		status:               s.status,
		instrumentationScope: s.scope,
		resource:             s.resource,
	}
	s.mu.Unlock()

	for _, sp := range s.tracer.provider.spanProcessors() {
		sp.OnEnd(snap)
	}
}

func truncateAttributes(attrs []attribute.KeyValue, limit int) ([]attribute.KeyValue, int) {
	valid := make([]attribute.KeyValue, 0, len(attrs))
	for _, a := range attrs {
		if a.Valid() {
			valid = append(valid, a)
		}
	}
	if len(valid) <= limit {
		return valid, 0
	}
	return valid[:limit], len(valid) - limit
}

// nonRecordingSpan is returned when the sampler decision is Drop. It still
// propagates its SpanContext but discards every mutation.
type nonRecordingSpan struct {
	sc       coretrace.SpanContext
	provider *TracerProvider
}

var _ coretrace.Span = nonRecordingSpan{}

func (s nonRecordingSpan) SpanContext() coretrace.SpanContext          { return s.sc }
func (nonRecordingSpan) IsRecording() bool                             { return false }
func (nonRecordingSpan) SetStatus(codes.Code, string)                  {}
func (nonRecordingSpan) SetName(string)                                {}
func (nonRecordingSpan) SetAttributes(...attribute.KeyValue)           {}
func (nonRecordingSpan) AddEvent(string, ...coretrace.EventOption)     {}
func (nonRecordingSpan) RecordError(error, ...coretrace.EventOption)   {}
func (nonRecordingSpan) AddLink(coretrace.Link)                       {}
func (nonRecordingSpan) End(...coretrace.SpanEndOption)                {}
func (s nonRecordingSpan) TracerProvider() coretrace.TracerProvider {
	return s.provider
}
