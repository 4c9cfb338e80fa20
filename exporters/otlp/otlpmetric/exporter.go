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

package otlpmetric

import (
	"context"
	"sync"

	"go.opentelemetry.io/otelcore/exporters/otlp/internal/transform"
	coremetric "go.opentelemetry.io/otelcore/metric"
	sdkmetric "go.opentelemetry.io/otelcore/sdk/metric"
	"go.opentelemetry.io/otelcore/sdk/metric/metricdata"
)

// Exporter implements sdkmetric.Exporter by converting a collection to
// OTLP and handing it to a Client, which owns the actual wire transport.
// Every OTLP metric exporter reports cumulative temporality for every
// instrument kind, matching the OTLP spec's recommended default.
type Exporter struct {
	client Client

	mu       sync.RWMutex
	shutdown bool
}

var _ sdkmetric.Exporter = (*Exporter)(nil)

// New starts client and returns an Exporter backed by it.
func New(ctx context.Context, client Client) (*Exporter, error) {
	if err := client.Start(ctx); err != nil {
		return nil, err
	}
	return &Exporter{client: client}, nil
}

func (e *Exporter) Export(ctx context.Context, rm metricdata.ResourceMetrics) error {
	e.mu.RLock()
	defer e.mu.RUnlock()
	if e.shutdown {
		return nil
	}
	return e.client.UploadMetrics(ctx, transform.ResourceMetrics(rm))
}

func (e *Exporter) Temporality(coremetric.InstrumentKind) metricdata.Temporality {
	return metricdata.CumulativeTemporality
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
