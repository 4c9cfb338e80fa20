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

package otlplog

import (
	"context"
	"sync"

	"go.opentelemetry.io/otelcore/exporters/otlp/internal/transform"
	sdklog "go.opentelemetry.io/otelcore/sdk/log"
)

// Exporter implements sdklog.Exporter by converting records to OTLP and
// handing them to a Client, which owns the actual wire transport.
type Exporter struct {
	client Client

	mu       sync.RWMutex
	shutdown bool
}

var _ sdklog.Exporter = (*Exporter)(nil)

// New starts client and returns an Exporter backed by it.
func New(ctx context.Context, client Client) (*Exporter, error) {
	if err := client.Start(ctx); err != nil {
		return nil, err
	}
	return &Exporter{client: client}, nil
}

func (e *Exporter) Export(ctx context.Context, records []*sdklog.Record) error {
	e.mu.RLock()
	defer e.mu.RUnlock()
	if e.shutdown || len(records) == 0 {
		return nil
	}
	return e.client.UploadLogs(ctx, transform.LogRecords(records))
}

func (e *Exporter) ForceFlush(ctx context.Context) error {
	return nil
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
