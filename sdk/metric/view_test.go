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

	"go.opentelemetry.io/otelcore/sdk/metric/metricdata"
)

func TestViewRenamesMatchedInstrument(t *testing.T) {
	reader := NewManualReader()
	view := NewView(Criteria{Name: "http.server.*"}, Stream{Name: "http_requests"})
	provider := NewMeterProvider(WithReader(reader), WithView(view))
	meter := provider.Meter("test")

	counter, err := meter.Int64Counter("http.server.request_count")
	require.NoError(t, err)
	counter.Add(context.Background(), 1)

	rm, err := reader.Collect(context.Background())
	require.NoError(t, err)
	require.Len(t, rm.ScopeMetrics[0].Metrics, 1)
	assert.Equal(t, "http_requests", rm.ScopeMetrics[0].Metrics[0].Name)
}

func TestViewDropAggregationDiscardsInstrument(t *testing.T) {
	reader := NewManualReader()
	view := NewView(Criteria{Name: "internal.*"}, Stream{AggregationKind: AggregationDrop})
	provider := NewMeterProvider(WithReader(reader), WithView(view))
	meter := provider.Meter("test")

	counter, err := meter.Int64Counter("internal.debug_counter")
	require.NoError(t, err)
	counter.Add(context.Background(), 1)

	rm, err := reader.Collect(context.Background())
	require.NoError(t, err)
	assert.Empty(t, rm.ScopeMetrics)
}

func TestViewOverridesAggregationToHistogram(t *testing.T) {
	reader := NewManualReader()
	view := NewView(Criteria{Name: "latency"}, Stream{
		AggregationKind:    AggregationExplicitHistogram,
		ExplicitBoundaries: []float64{10, 100},
	})
	provider := NewMeterProvider(WithReader(reader), WithView(view))
	meter := provider.Meter("test")

	counter, err := meter.Int64Counter("latency")
	require.NoError(t, err)
	counter.Add(context.Background(), 5)
	counter.Add(context.Background(), 50)

	rm, err := reader.Collect(context.Background())
	require.NoError(t, err)
	hist, ok := rm.ScopeMetrics[0].Metrics[0].Data.(metricdata.Histogram[int64])
	require.True(t, ok)
	require.Len(t, hist.DataPoints, 1)
	assert.Equal(t, uint64(2), hist.DataPoints[0].Count)
}

func TestUnmatchedInstrumentKeepsOwnIdentity(t *testing.T) {
	reader := NewManualReader()
	view := NewView(Criteria{Name: "other.*"}, Stream{Name: "renamed"})
	provider := NewMeterProvider(WithReader(reader), WithView(view))
	meter := provider.Meter("test")

	counter, err := meter.Int64Counter("untouched")
	require.NoError(t, err)
	counter.Add(context.Background(), 1)

	rm, err := reader.Collect(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "untouched", rm.ScopeMetrics[0].Metrics[0].Name)
}
