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
	"time"

	"go.opentelemetry.io/otelcore/attribute"
)

type attributeOption []attribute.KeyValue

func (o attributeOption) applySpanStart(c *SpanStartConfig) { c.Attributes = append(c.Attributes, o...) }
func (o attributeOption) applyEvent(c *EventConfig)         { c.Attributes = append(c.Attributes, o...) }
func (o attributeOption) applyTracer(c *TracerConfig)       { c.Attributes = append(c.Attributes, o...) }

// WithAttributes sets attributes at span-start, event-recording, or
// tracer-acquisition time, depending on where it is passed.
func WithAttributes(kv ...attribute.KeyValue) interface {
	SpanStartOption
	EventOption
	TracerOption
} {
	return attributeOption(kv)
}

type spanKindOption SpanKind

func (o spanKindOption) applySpanStart(c *SpanStartConfig) { c.Kind = SpanKind(o) }

// WithSpanKind sets the SpanKind of a new span.
func WithSpanKind(kind SpanKind) SpanStartOption { return spanKindOption(kind) }

type timestampOption time.Time

func (o timestampOption) applySpanStart(c *SpanStartConfig) { c.Timestamp = time.Time(o) }
func (o timestampOption) applySpanEnd(c *SpanEndConfig)     { c.Timestamp = time.Time(o) }
func (o timestampOption) applyEvent(c *EventConfig)         { c.Timestamp = time.Time(o) }

// WithTimestamp sets an explicit timestamp for span start/end or an event,
// depending on where it is passed.
func WithTimestamp(t time.Time) interface {
	SpanStartOption
	SpanEndOption
	EventOption
} {
	return timestampOption(t)
}

type linksOption []Link

func (o linksOption) applySpanStart(c *SpanStartConfig) { c.Links = append(c.Links, o...) }

// WithLinks sets links on a new span.
func WithLinks(links ...Link) SpanStartOption { return linksOption(links) }

type newRootOption bool

func (o newRootOption) applySpanStart(c *SpanStartConfig) { c.NewRoot = bool(o) }

// WithNewRoot specifies that a new span should be a root span, ignoring any
// existing parent in its context.
func WithNewRoot() SpanStartOption { return newRootOption(true) }

type instrumentationVersionOption string

func (o instrumentationVersionOption) applyTracer(c *TracerConfig) {
	c.InstrumentationVersion = string(o)
}

// WithInstrumentationVersion sets the instrumentation scope version.
func WithInstrumentationVersion(v string) TracerOption { return instrumentationVersionOption(v) }

type schemaURLOption string

func (o schemaURLOption) applyTracer(c *TracerConfig) { c.SchemaURL = string(o) }

// WithSchemaURL sets the instrumentation scope's schema URL.
func WithSchemaURL(url string) TracerOption { return schemaURLOption(url) }

// NewSpanStartConfig applies opts and returns the resulting SpanStartConfig.
func NewSpanStartConfig(opts ...SpanStartOption) SpanStartConfig {
	var c SpanStartConfig
	for _, o := range opts {
		o.applySpanStart(&c)
	}
	return c
}

// NewSpanEndConfig applies opts and returns the resulting SpanEndConfig.
func NewSpanEndConfig(opts ...SpanEndOption) SpanEndConfig {
	var c SpanEndConfig
	for _, o := range opts {
		o.applySpanEnd(&c)
	}
	return c
}

// NewEventConfig applies opts and returns the resulting EventConfig.
func NewEventConfig(opts ...EventOption) EventConfig {
	var c EventConfig
	for _, o := range opts {
		o.applyEvent(&c)
	}
	return c
}

// NewTracerConfig applies opts and returns the resulting TracerConfig.
func NewTracerConfig(opts ...TracerOption) TracerConfig {
	var c TracerConfig
	for _, o := range opts {
		o.applyTracer(&c)
	}
	return c
}
