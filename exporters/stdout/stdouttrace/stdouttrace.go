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

// Package stdouttrace implements a SpanExporter that writes spans as
// newline-delimited JSON, for local debugging and examples.
package stdouttrace // import "go.opentelemetry.io/otelcore/exporters/stdout/stdouttrace"

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"sync"
	"time"

	"go.opentelemetry.io/otelcore/attribute"
	"go.opentelemetry.io/otelcore/codes"
	sdktrace "go.opentelemetry.io/otelcore/sdk/trace"
	coretrace "go.opentelemetry.io/otelcore/trace"
)

// Option configures the exporter.
type Option func(*config)

type config struct {
	writer      io.Writer
	prettyPrint bool
}

// WithWriter sets the destination. Defaults to os.Stdout.
func WithWriter(w io.Writer) Option { return func(c *config) { c.writer = w } }

// WithPrettyPrint indents each JSON record.
func WithPrettyPrint() Option { return func(c *config) { c.prettyPrint = true } }

// Exporter writes spans to an io.Writer as JSON, one object per span.
type Exporter struct {
	mu       sync.Mutex
	cfg      config
	shutdown bool
}

var _ sdktrace.SpanExporter = (*Exporter)(nil)

// New returns a stdouttrace Exporter.
func New(opts ...Option) (*Exporter, error) {
	cfg := config{writer: os.Stdout}
	for _, o := range opts {
		o(&cfg)
	}
	return &Exporter{cfg: cfg}, nil
}

// ExportSpans writes each span to the configured writer. The first encoding
// or write error stops the batch and is returned; spans after it are not
// written.
func (e *Exporter) ExportSpans(ctx context.Context, spans []sdktrace.ReadOnlySpan) error {
	e.mu.Lock()
	defer e.mu.Unlock()
	if e.shutdown {
		return nil
	}
	for _, s := range spans {
		if err := ctx.Err(); err != nil {
			return err
		}
		rec := toJSONSpan(s)
		var (
			b   []byte
			err error
		)
		if e.cfg.prettyPrint {
			b, err = json.MarshalIndent(rec, "", "  ")
		} else {
			b, err = json.Marshal(rec)
		}
		if err != nil {
			return err
		}
		if _, err := e.cfg.writer.Write(append(b, '\n')); err != nil {
			return err
		}
	}
	return nil
}

// Shutdown marks the exporter closed; subsequent ExportSpans calls are
// no-ops.
func (e *Exporter) Shutdown(context.Context) error {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.shutdown = true
	return nil
}

type jsonSpan struct {
	Name               string            `json:"Name"`
	SpanContext        jsonSpanContext   `json:"SpanContext"`
	Parent             jsonSpanContext   `json:"Parent"`
	SpanKind           string            `json:"SpanKind"`
	StartTime          time.Time         `json:"StartTime"`
	EndTime             time.Time        `json:"EndTime"`
	Attributes          []jsonKeyValue   `json:"Attributes"`
	DroppedAttributes   int              `json:"DroppedAttributes"`
	Events              []jsonEvent      `json:"Events"`
	DroppedEvents       int              `json:"DroppedEvents"`
	Links               []jsonLink       `json:"Links"`
	DroppedLinks        int              `json:"DroppedLinks"`
	Status              jsonStatus       `json:"Status"`
	InstrumentationScope jsonScope       `json:"InstrumentationScope"`
	Resource             []jsonKeyValue  `json:"Resource"`
}

type jsonSpanContext struct {
	TraceID    string `json:"TraceID"`
	SpanID     string `json:"SpanID"`
	TraceFlags string `json:"TraceFlags"`
}

type jsonKeyValue struct {
	Key   string      `json:"Key"`
	Value interface{} `json:"Value"`
}

type jsonEvent struct {
	Name       string         `json:"Name"`
	Time       time.Time      `json:"Time"`
	Attributes []jsonKeyValue `json:"Attributes"`
}

type jsonLink struct {
	SpanContext jsonSpanContext `json:"SpanContext"`
	Attributes  []jsonKeyValue  `json:"Attributes"`
}

type jsonStatus struct {
	Code        string `json:"Code"`
	Description string `json:"Description"`
}

type jsonScope struct {
	Name    string `json:"Name"`
	Version string `json:"Version"`
}

func toJSONSpanContext(sc coretrace.SpanContext) jsonSpanContext {
	traceID := sc.TraceID()
	spanID := sc.SpanID()
	return jsonSpanContext{
		TraceID:    fmt.Sprintf("%x", traceID[:]),
		SpanID:     fmt.Sprintf("%x", spanID[:]),
		TraceFlags: fmt.Sprintf("%02x", byte(sc.TraceFlags())),
	}
}

func toJSONAttrs(attrs []attribute.KeyValue) []jsonKeyValue {
	out := make([]jsonKeyValue, 0, len(attrs))
	for _, a := range attrs {
		out = append(out, jsonKeyValue{Key: string(a.Key), Value: a.Value.AsInterface()})
	}
	return out
}

func toJSONSpan(s sdktrace.ReadOnlySpan) jsonSpan {
	events := make([]jsonEvent, 0, len(s.Events()))
	for _, ev := range s.Events() {
		events = append(events, jsonEvent{Name: ev.Name, Time: ev.Time, Attributes: toJSONAttrs(ev.Attributes)})
	}
	links := make([]jsonLink, 0, len(s.Links()))
	for _, l := range s.Links() {
		links = append(links, jsonLink{SpanContext: toJSONSpanContext(l.SpanContext), Attributes: toJSONAttrs(l.Attributes)})
	}
	var resAttrs []jsonKeyValue
	if r := s.Resource(); r != nil {
		resAttrs = toJSONAttrs(r.Attributes())
	}
	return jsonSpan{
		Name:                 s.Name(),
		SpanContext:          toJSONSpanContext(s.SpanContext()),
		Parent:               toJSONSpanContext(s.Parent()),
		SpanKind:             spanKindString(s.SpanKind()),
		StartTime:            s.StartTime(),
		EndTime:              s.EndTime(),
		Attributes:           toJSONAttrs(s.Attributes()),
		DroppedAttributes:    s.DroppedAttributes(),
		Events:               events,
		DroppedEvents:        s.DroppedEvents(),
		Links:                links,
		DroppedLinks:         s.DroppedLinks(),
		Status:               jsonStatus{Code: statusCodeString(s.Status().Code), Description: s.Status().Description},
		InstrumentationScope: jsonScope{Name: s.InstrumentationScope().Name, Version: s.InstrumentationScope().Version},
		Resource:             resAttrs,
	}
}

func spanKindString(k coretrace.SpanKind) string {
	switch k {
	case coretrace.SpanKindInternal:
		return "internal"
	case coretrace.SpanKindServer:
		return "server"
	case coretrace.SpanKindClient:
		return "client"
	case coretrace.SpanKindProducer:
		return "producer"
	case coretrace.SpanKindConsumer:
		return "consumer"
	default:
		return "unspecified"
	}
}

func statusCodeString(c codes.Code) string {
	switch c {
	case codes.Ok:
		return "Ok"
	case codes.Error:
		return "Error"
	default:
		return "Unset"
	}
}
