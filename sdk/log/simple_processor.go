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

package log // import "go.opentelemetry.io/otelcore/sdk/log"

import (
	"context"
	"sync"

	"go.opentelemetry.io/otelcore/internal/global"
)

// simpleProcessor synchronously exports each record as it is emitted. It
// exists for debugging: it blocks the calling goroutine on every export and
// should not be used for production traffic.
type simpleProcessor struct {
	exporter Exporter

	mu       sync.Mutex
	shutdown bool
}

// NewSimpleProcessor returns a Processor that calls exporter.Export
// synchronously, one record at a time, from OnEmit.
func NewSimpleProcessor(exporter Exporter) Processor {
	return &simpleProcessor{exporter: exporter}
}

func (p *simpleProcessor) OnEmit(ctx context.Context, r *Record) error {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.shutdown {
		return nil
	}
	return p.exporter.Export(ctx, []*Record{r})
}

func (p *simpleProcessor) Shutdown(ctx context.Context) error {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.shutdown {
		return global.ErrAlreadyShutdown
	}
	p.shutdown = true
	return p.exporter.Shutdown(ctx)
}

func (p *simpleProcessor) ForceFlush(context.Context) error { return nil }
