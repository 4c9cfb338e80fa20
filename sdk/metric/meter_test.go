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
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"go.opentelemetry.io/otelcore/internal/global"
	coremetric "go.opentelemetry.io/otelcore/metric"
	"go.opentelemetry.io/otelcore/sdk/metric/metricdata"
)

func TestCounterBasicAggregation(t *testing.T) {
	reader := NewManualReader()
	provider := NewMeterProvider(WithReader(reader))
	meter := provider.Meter("test")

	counter, err := meter.Int64Counter("requests")
	require.NoError(t, err)

	ctx := context.Background()
	counter.Add(ctx, 1)
	counter.Add(ctx, 2)
	counter.Add(ctx, 3)

	rm, err := reader.Collect(ctx)
	require.NoError(t, err)
	require.Len(t, rm.ScopeMetrics, 1)
	require.Len(t, rm.ScopeMetrics[0].Metrics, 1)

	m := rm.ScopeMetrics[0].Metrics[0]
	assert.Equal(t, "requests", m.Name)
	sum, ok := m.Data.(metricdata.Sum[int64])
	require.True(t, ok)
	require.Len(t, sum.DataPoints, 1)
	assert.Equal(t, int64(6), sum.DataPoints[0].Value)
	assert.True(t, sum.IsMonotonic)
}

func TestUpDownCounterIsNotMonotonic(t *testing.T) {
	reader := NewManualReader()
	provider := NewMeterProvider(WithReader(reader))
	meter := provider.Meter("test")

	c, err := meter.Int64UpDownCounter("inflight")
	require.NoError(t, err)

	c.Add(context.Background(), 5)
	c.Add(context.Background(), -2)

	rm, err := reader.Collect(context.Background())
	require.NoError(t, err)
	sum := rm.ScopeMetrics[0].Metrics[0].Data.(metricdata.Sum[int64])
	assert.False(t, sum.IsMonotonic)
	assert.Equal(t, int64(3), sum.DataPoints[0].Value)
}

func TestCounterAddSkipsWhenSelfTelemetrySuppressed(t *testing.T) {
	reader := NewManualReader()
	provider := NewMeterProvider(WithReader(reader))
	meter := provider.Meter("test")

	counter, err := meter.Int64Counter("requests")
	require.NoError(t, err)

	ctx := global.ContextWithoutSelfTelemetry(context.Background())
	counter.Add(ctx, 5)

	rm, err := reader.Collect(context.Background())
	require.NoError(t, err)
	require.Len(t, rm.ScopeMetrics, 1)
	require.Len(t, rm.ScopeMetrics[0].Metrics, 1)
	sum := rm.ScopeMetrics[0].Metrics[0].Data.(metricdata.Sum[int64])
	assert.Empty(t, sum.DataPoints, "a suppressed measurement must not create a data point")
}

func TestMeterIsCachedPerScope(t *testing.T) {
	provider := NewMeterProvider()
	a := provider.Meter("scope-a")
	b := provider.Meter("scope-a")
	c := provider.Meter("scope-b")
	assert.Same(t, a, b)
	assert.NotSame(t, a, c)
}

func TestInvalidInstrumentNameBecomesNoop(t *testing.T) {
	reader := NewManualReader()
	provider := NewMeterProvider(WithReader(reader))
	meter := provider.Meter("test")

	counter, err := meter.Int64Counter("1-invalid-leading-digit")
	require.NoError(t, err)
	counter.Add(context.Background(), 5)

	rm, err := reader.Collect(context.Background())
	require.NoError(t, err)
	assert.Empty(t, rm.ScopeMetrics, "an invalid-name instrument must produce no stream at all")
}

func TestObservableGaugeReportsCallbackValue(t *testing.T) {
	reader := NewManualReader()
	provider := NewMeterProvider(WithReader(reader))
	meter := provider.Meter("test")

	gauge, err := meter.Int64ObservableGauge("queue_depth")
	require.NoError(t, err)

	_, err = meter.RegisterCallback(func(_ context.Context, o coremetric.Observer) error {
		o.ObserveInt64(gauge, 42)
		return nil
	}, gauge)
	require.NoError(t, err)

	rm, err := reader.Collect(context.Background())
	require.NoError(t, err)
	require.Len(t, rm.ScopeMetrics, 1)
	require.Len(t, rm.ScopeMetrics[0].Metrics, 1)
	assert.Equal(t, "queue_depth", rm.ScopeMetrics[0].Metrics[0].Name)
	gaugeData := rm.ScopeMetrics[0].Metrics[0].Data.(metricdata.Gauge[int64])
	require.Len(t, gaugeData.DataPoints, 1)
	assert.Equal(t, int64(42), gaugeData.DataPoints[0].Value)
}

func TestRegisterCallbackUnregisterStopsObservations(t *testing.T) {
	reader := NewManualReader()
	provider := NewMeterProvider(WithReader(reader))
	meter := provider.Meter("test")

	calls := 0
	reg, err := meter.RegisterCallback(func(_ context.Context, o coremetric.Observer) error {
		calls++
		return nil
	})
	require.NoError(t, err)

	_, _ = reader.Collect(context.Background())
	require.NoError(t, reg.Unregister())
	_, _ = reader.Collect(context.Background())

	assert.Equal(t, 1, calls)
}

func TestTwoReadersIndependentTemporality(t *testing.T) {
	deltaReader := NewManualReader(WithTemporalitySelector(func(coremetric.InstrumentKind) metricdata.Temporality {
		return metricdata.DeltaTemporality
	}))
	cumulativeReader := NewManualReader()

	provider := NewMeterProvider(WithReader(deltaReader), WithReader(cumulativeReader))
	meter := provider.Meter("test")

	counter, err := meter.Int64Counter("events")
	require.NoError(t, err)
	counter.Add(context.Background(), 1)

	rmDelta, err := deltaReader.Collect(context.Background())
	require.NoError(t, err)
	rmCumulative, err := cumulativeReader.Collect(context.Background())
	require.NoError(t, err)

	deltaSum := rmDelta.ScopeMetrics[0].Metrics[0].Data.(metricdata.Sum[int64])
	cumulativeSum := rmCumulative.ScopeMetrics[0].Metrics[0].Data.(metricdata.Sum[int64])
	assert.Equal(t, metricdata.DeltaTemporality, deltaSum.Temporality)
	assert.Equal(t, metricdata.CumulativeTemporality, cumulativeSum.Temporality)

	counter.Add(context.Background(), 1)
	rmDelta2, err := deltaReader.Collect(context.Background())
	require.NoError(t, err)
	rmCumulative2, err := cumulativeReader.Collect(context.Background())
	require.NoError(t, err)

	assert.Equal(t, int64(1), rmDelta2.ScopeMetrics[0].Metrics[0].Data.(metricdata.Sum[int64]).DataPoints[0].Value)
	assert.Equal(t, int64(2), rmCumulative2.ScopeMetrics[0].Metrics[0].Data.(metricdata.Sum[int64]).DataPoints[0].Value)
}
