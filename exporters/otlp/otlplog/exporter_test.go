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
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"go.opentelemetry.io/otelcore/attribute"
	corelog "go.opentelemetry.io/otelcore/log"
	sdklog "go.opentelemetry.io/otelcore/sdk/log"

	logspb "go.opentelemetry.io/proto/otlp/logs/v1"
)

type fakeClient struct {
	mu       sync.Mutex
	started  bool
	stopped  bool
	uploaded []*logspb.ResourceLogs
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

func (c *fakeClient) UploadLogs(ctx context.Context, protoLogs []*logspb.ResourceLogs) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.uploaded = append(c.uploaded, protoLogs...)
	return nil
}

func TestExporterExportUploadsRecordsViaClient(t *testing.T) {
	client := &fakeClient{}
	exp, err := New(context.Background(), client)
	require.NoError(t, err)
	assert.True(t, client.started)

	capture := &captureProcessor{}
	provider := sdklog.NewLoggerProvider(sdklog.WithProcessor(capture))
	provider.Logger("test").Emit(context.Background(), corelog.Record{Body: attribute.StringValue("hi")})
	require.NoError(t, provider.Shutdown(context.Background()))

	require.NoError(t, exp.Export(context.Background(), capture.records))
	assert.Len(t, client.uploaded, 1)
}

func TestExporterExportAfterShutdownIsNoop(t *testing.T) {
	client := &fakeClient{}
	exp, err := New(context.Background(), client)
	require.NoError(t, err)
	require.NoError(t, exp.Shutdown(context.Background()))
	assert.True(t, client.stopped)

	capture := &captureProcessor{}
	provider := sdklog.NewLoggerProvider(sdklog.WithProcessor(capture))
	provider.Logger("test").Emit(context.Background(), corelog.Record{Body: attribute.StringValue("hi")})
	require.NoError(t, provider.Shutdown(context.Background()))

	require.NoError(t, exp.Export(context.Background(), capture.records))
	assert.Empty(t, client.uploaded)
}

type captureProcessor struct {
	mu      sync.Mutex
	records []*sdklog.Record
}

func (p *captureProcessor) OnEmit(ctx context.Context, r *sdklog.Record) error {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.records = append(p.records, r.Clone())
	return nil
}
func (p *captureProcessor) Shutdown(ctx context.Context) error   { return nil }
func (p *captureProcessor) ForceFlush(ctx context.Context) error { return nil }
