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

// Package memory provides in-memory exporters for the trace, metric, and
// log signals, the role the teacher's (now-empty) oteltest package and
// its controllertest sibling play: a test double that lets a scenario
// test assert on exactly what a provider produced without standing up a
// collector.
package memory // import "go.opentelemetry.io/otelcore/exporters/memory"

import (
	"context"
	"sync"

	sdktrace "go.opentelemetry.io/otelcore/sdk/trace"
)

// TraceExporter records every span handed to it by ExportSpans, in order.
type TraceExporter struct {
	mu       sync.Mutex
	spans    []sdktrace.ReadOnlySpan
	shutdown bool
}

var _ sdktrace.SpanExporter = (*TraceExporter)(nil)

// NewTraceExporter returns an empty TraceExporter.
func NewTraceExporter() *TraceExporter { return &TraceExporter{} }

func (e *TraceExporter) ExportSpans(ctx context.Context, spans []sdktrace.ReadOnlySpan) error {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.spans = append(e.spans, spans...)
	return nil
}

func (e *TraceExporter) Shutdown(ctx context.Context) error {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.shutdown = true
	return nil
}

// Spans returns a snapshot of every span recorded so far.
func (e *TraceExporter) Spans() []sdktrace.ReadOnlySpan {
	e.mu.Lock()
	defer e.mu.Unlock()
	out := make([]sdktrace.ReadOnlySpan, len(e.spans))
	copy(out, e.spans)
	return out
}

// Reset clears recorded spans without resetting the shutdown flag.
func (e *TraceExporter) Reset() {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.spans = nil
}

// ShutdownCalled reports whether Shutdown has run.
func (e *TraceExporter) ShutdownCalled() bool {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.shutdown
}
