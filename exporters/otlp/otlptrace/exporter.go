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

package otlptrace

import (
	"context"
	"sync"

	"go.opentelemetry.io/otelcore/exporters/otlp/internal/transform"
	sdktrace "go.opentelemetry.io/otelcore/sdk/trace"
)

// Exporter implements sdktrace.SpanExporter by converting spans to OTLP and
// handing them to a Client, which owns the actual wire transport.
type Exporter struct {
	client Client

	mu       sync.RWMutex
	shutdown bool
}

var _ sdktrace.SpanExporter = (*Exporter)(nil)

// New starts client and returns an Exporter backed by it.
func New(ctx context.Context, client Client) (*Exporter, error) {
	if err := client.Start(ctx); err != nil {
		return nil, err
	}
	return &Exporter{client: client}, nil
}

func (e *Exporter) ExportSpans(ctx context.Context, spans []sdktrace.ReadOnlySpan) error {
	e.mu.RLock()
	defer e.mu.RUnlock()
	if e.shutdown {
		return nil
	}
	if len(spans) == 0 {
		return nil
	}
	return e.client.UploadTraces(ctx, transform.Spans(spans))
}

func (e *Exporter) Shutdown(ctx context.Context) error {
	e.mu.Lock()
	defer e.mu.Unlock()
	if e.shutdown {
		return nil
	}
	e.shutdown = true
	return e.client.Stop(ctx)
}
