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

package memory

import (
	"context"
	"sync"

	coremetric "go.opentelemetry.io/otelcore/metric"
	sdkmetric "go.opentelemetry.io/otelcore/sdk/metric"
	"go.opentelemetry.io/otelcore/sdk/metric/metricdata"
)

// MetricExporter records every ResourceMetrics collection handed to it.
type MetricExporter struct {
	mu           sync.Mutex
	collections  []metricdata.ResourceMetrics
	temporality  func(coremetric.InstrumentKind) metricdata.Temporality
	shutdown     bool
	forceFlushes int
}

var _ sdkmetric.Exporter = (*MetricExporter)(nil)

// NewMetricExporter returns an empty MetricExporter reporting cumulative
// temporality for every instrument kind.
func NewMetricExporter() *MetricExporter {
	return &MetricExporter{temporality: func(coremetric.InstrumentKind) metricdata.Temporality {
		return metricdata.CumulativeTemporality
	}}
}

func (e *MetricExporter) Export(ctx context.Context, rm metricdata.ResourceMetrics) error {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.collections = append(e.collections, rm)
	return nil
}

func (e *MetricExporter) Temporality(kind coremetric.InstrumentKind) metricdata.Temporality {
	return e.temporality(kind)
}

func (e *MetricExporter) ForceFlush(ctx context.Context) error {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.forceFlushes++
	return nil
}

func (e *MetricExporter) Shutdown(ctx context.Context) error {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.shutdown = true
	return nil
}

// Collections returns every ResourceMetrics exported so far.
func (e *MetricExporter) Collections() []metricdata.ResourceMetrics {
	e.mu.Lock()
	defer e.mu.Unlock()
	out := make([]metricdata.ResourceMetrics, len(e.collections))
	copy(out, e.collections)
	return out
}
