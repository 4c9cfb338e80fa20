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
	"sync"

	"go.opentelemetry.io/otelcore/internal/global"
)

// simpleSpanProcessor synchronously exports each span as it ends. It
// exists for debugging: it blocks the calling goroutine on every export and
// should not be used for production traffic.
type simpleSpanProcessor struct {
	exporter SpanExporter

	mu        sync.Mutex
	shutdown  bool
}

// NewSimpleSpanProcessor returns a SpanProcessor that calls
// exporter.ExportSpans synchronously, one span at a time, from OnEnd.
func NewSimpleSpanProcessor(exporter SpanExporter) SpanProcessor {
	return &simpleSpanProcessor{exporter: exporter}
}

func (p *simpleSpanProcessor) OnStart(context.Context, ReadWriteSpan) {}

func (p *simpleSpanProcessor) OnEnd(s ReadOnlySpan) {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.shutdown {
		return
	}
	if err := p.exporter.ExportSpans(context.Background(), []ReadOnlySpan{s}); err != nil {
		global.Handle(nil, err)
	}
}

func (p *simpleSpanProcessor) Shutdown(ctx context.Context) error {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.shutdown {
		return global.ErrAlreadyShutdown
	}
	p.shutdown = true
	return p.exporter.Shutdown(ctx)
}

func (p *simpleSpanProcessor) ForceFlush(context.Context) error { return nil }
