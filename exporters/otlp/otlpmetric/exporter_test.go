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
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	coremetric "go.opentelemetry.io/otelcore/metric"
	"go.opentelemetry.io/otelcore/sdk/metric/metricdata"

	metricpb "go.opentelemetry.io/proto/otlp/metrics/v1"
)

type fakeClient struct {
	mu       sync.Mutex
	started  bool
	stopped  bool
	uploaded []*metricpb.ResourceMetrics
}

func (c *fakeClient) Start(ctx context.Context) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.started = true
	return nil
}

func (c *fakeClient) Stop(ctx context.Context) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.stopped = true
	return nil
}

func (c *fakeClient) UploadMetrics(ctx context.Context, protoMetrics *metricpb.ResourceMetrics) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.uploaded = append(c.uploaded, protoMetrics)
	return nil
}

func TestExporterReportsCumulativeTemporalityAlways(t *testing.T) {
	exp, err := New(context.Background(), &fakeClient{})
	require.NoError(t, err)
	assert.Equal(t, metricdata.CumulativeTemporality, exp.Temporality(coremetric.InstrumentKindCounter))
	assert.Equal(t, metricdata.CumulativeTemporality, exp.Temporality(coremetric.InstrumentKindHistogram))
}

func TestExporterExportUploadsViaClient(t *testing.T) {
	client := &fakeClient{}
	exp, err := New(context.Background(), client)
	require.NoError(t, err)
	assert.True(t, client.started)

	require.NoError(t, exp.Export(context.Background(), metricdata.ResourceMetrics{}))
	assert.Len(t, client.uploaded, 1)
}

func TestExporterExportAfterShutdownIsNoop(t *testing.T) {
	client := &fakeClient{}
	exp, err := New(context.Background(), client)
	require.NoError(t, err)
	require.NoError(t, exp.Shutdown(context.Background()))
	assert.True(t, client.stopped)

	require.NoError(t, exp.Export(context.Background(), metricdata.ResourceMetrics{}))
	assert.Empty(t, client.uploaded)
}
