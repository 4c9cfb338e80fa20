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

package transform

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"go.opentelemetry.io/otelcore/attribute"
	"go.opentelemetry.io/otelcore/resource"
	sdkmetric "go.opentelemetry.io/otelcore/sdk/metric"
	"go.opentelemetry.io/otelcore/sdk/metric/metricdata"

	metricpb "go.opentelemetry.io/proto/otlp/metrics/v1"
)

func collectOneMetric(t *testing.T) metricdata.ResourceMetrics {
	t.Helper()
	reader := sdkmetric.NewManualReader()
	res := resource.NewSchemaless(attribute.String("service.name", "svc"))
	provider := sdkmetric.NewMeterProvider(sdkmetric.WithReader(reader), sdkmetric.WithResource(res))

	counter, err := provider.Meter("test").Int64Counter("requests")
	require.NoError(t, err)
	counter.Add(context.Background(), 3)

	var rm metricdata.ResourceMetrics
	require.NoError(t, reader.Collect(context.Background(), &rm))
	return rm
}

func TestResourceMetricsCarriesScopeAndMetric(t *testing.T) {
	rm := collectOneMetric(t)
	pb := ResourceMetrics(rm)

	require.Len(t, pb.Resource.Attributes, 1)
	require.Len(t, pb.ScopeMetrics, 1)
	require.Len(t, pb.ScopeMetrics[0].Metrics, 1)
	assert.Equal(t, "requests", pb.ScopeMetrics[0].Metrics[0].Name)

	sum, ok := pb.ScopeMetrics[0].Metrics[0].Data.(*metricpb.Metric_Sum)
	require.True(t, ok)
	require.Len(t, sum.Sum.DataPoints, 1)
	assert.Equal(t, int64(3), sum.Sum.DataPoints[0].GetAsInt())
}
