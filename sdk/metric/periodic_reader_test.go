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

package metric

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	coremetric "go.opentelemetry.io/otelcore/metric"
	"go.opentelemetry.io/otelcore/sdk/metric/metricdata"
)

// memoryMetricExporter collects every exported ResourceMetrics snapshot,
// the in-memory Exporter used across sdk/metric's own tests.
type memoryMetricExporter struct {
	mu       sync.Mutex
	exports  []metricdata.ResourceMetrics
	shutdown bool
}

func (e *memoryMetricExporter) Export(_ context.Context, rm metricdata.ResourceMetrics) error {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.exports = append(e.exports, rm)
	return nil
}

func (e *memoryMetricExporter) Temporality(coremetric.InstrumentKind) metricdata.Temporality {
	return metricdata.CumulativeTemporality
}

func (e *memoryMetricExporter) Shutdown(context.Context) error {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.shutdown = true
	return nil
}

func (e *memoryMetricExporter) ForceFlush(context.Context) error { return nil }

func (e *memoryMetricExporter) exportCount() int {
	e.mu.Lock()
	defer e.mu.Unlock()
	return len(e.exports)
}

func TestPeriodicReaderForceFlushExportsImmediately(t *testing.T) {
	exp := &memoryMetricExporter{}
	reader := NewPeriodicReader(exp, WithExportInterval(time.Hour))
	provider := NewMeterProvider(WithReader(reader))
	meter := provider.Meter("test")

	counter, err := meter.Int64Counter("requests")
	require.NoError(t, err)
	counter.Add(context.Background(), 1)

	require.NoError(t, reader.ForceFlush(context.Background()))
	assert.Equal(t, 1, exp.exportCount())
}

func TestPeriodicReaderExportsOnSchedule(t *testing.T) {
	exp := &memoryMetricExporter{}
	reader := NewPeriodicReader(exp, WithExportInterval(10*time.Millisecond))
	provider := NewMeterProvider(WithReader(reader))
	meter := provider.Meter("test")

	counter, err := meter.Int64Counter("requests")
	require.NoError(t, err)
	counter.Add(context.Background(), 1)

	require.Eventually(t, func() bool { return exp.exportCount() > 0 }, time.Second, 5*time.Millisecond)

	require.NoError(t, provider.Shutdown(context.Background()))
}

func TestPeriodicReaderShutdownStopsExporterAndIsIdempotent(t *testing.T) {
	exp := &memoryMetricExporter{}
	reader := NewPeriodicReader(exp, WithExportInterval(time.Hour))
	provider := NewMeterProvider(WithReader(reader))
	_ = provider.Meter("test")

	require.NoError(t, reader.Shutdown(context.Background()))
	assert.True(t, exp.shutdown)

	err := reader.Shutdown(context.Background())
	assert.Error(t, err)
}
