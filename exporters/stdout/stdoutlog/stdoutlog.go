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

// Package stdoutlog implements a log Exporter that writes records as
// newline-delimited JSON, for local debugging and examples.
package stdoutlog // import "go.opentelemetry.io/otelcore/exporters/stdout/stdoutlog"

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"sync"
	"time"

	"go.opentelemetry.io/otelcore/attribute"
	sdklog "go.opentelemetry.io/otelcore/sdk/log"
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

// Exporter writes log records to an io.Writer as JSON, one object per
// record.
type Exporter struct {
	mu       sync.Mutex
	cfg      config
	shutdown bool
}

var _ sdklog.Exporter = (*Exporter)(nil)

// New returns a stdoutlog Exporter.
func New(opts ...Option) (*Exporter, error) {
	cfg := config{writer: os.Stdout}
	for _, o := range opts {
		o(&cfg)
	}
	return &Exporter{cfg: cfg}, nil
}

type jsonRecord struct {
	Timestamp         time.Time      `json:"Timestamp"`
	ObservedTimestamp time.Time      `json:"ObservedTimestamp"`
	Severity          int            `json:"Severity"`
	SeverityText      string         `json:"SeverityText"`
	Body              interface{}    `json:"Body"`
	EventName         string         `json:"EventName,omitempty"`
	Attributes        []jsonKeyValue `json:"Attributes"`
	TraceID           string         `json:"TraceID,omitempty"`
	SpanID            string         `json:"SpanID,omitempty"`
	Scope             jsonScope      `json:"Scope"`
}

type jsonKeyValue struct {
	Key   string      `json:"Key"`
	Value interface{} `json:"Value"`
}

type jsonScope struct {
	Name    string `json:"Name"`
	Version string `json:"Version"`
}

func toJSONRecord(r *sdklog.Record) jsonRecord {
	attrs := make([]jsonKeyValue, 0, r.AttributesLen())
	r.WalkAttributes(func(kv attribute.KeyValue) bool {
		attrs = append(attrs, jsonKeyValue{Key: string(kv.Key), Value: kv.Value.AsInterface()})
		return true
	})
	traceID := r.TraceID()
	spanID := r.SpanID()
	var traceIDStr, spanIDStr string
	if traceID != ([16]byte{}) {
		traceIDStr = fmt.Sprintf("%x", traceID[:])
	}
	if spanID != ([8]byte{}) {
		spanIDStr = fmt.Sprintf("%x", spanID[:])
	}
	scope := r.InstrumentationScope()
	return jsonRecord{
		Timestamp:         r.Timestamp(),
		ObservedTimestamp: r.ObservedTimestamp(),
		Severity:          int(r.Severity()),
		SeverityText:      r.SeverityText(),
		Body:              r.Body().AsInterface(),
		EventName:         r.EventName(),
		Attributes:        attrs,
		TraceID:           traceIDStr,
		SpanID:            spanIDStr,
		Scope:             jsonScope{Name: scope.Name, Version: scope.Version},
	}
}

// Export writes each record to the configured writer.
func (e *Exporter) Export(ctx context.Context, records []*sdklog.Record) error {
	e.mu.Lock()
	defer e.mu.Unlock()
	if e.shutdown {
		return nil
	}
	for _, r := range records {
		if err := ctx.Err(); err != nil {
			return err
		}
		rec := toJSONRecord(r)
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

// Shutdown marks the exporter closed; subsequent Export calls are no-ops.
func (e *Exporter) Shutdown(context.Context) error {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.shutdown = true
	return nil
}

// ForceFlush is a no-op: Export already writes synchronously.
func (e *Exporter) ForceFlush(context.Context) error { return nil }
