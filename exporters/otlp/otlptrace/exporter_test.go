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

package otlptrace

import (
	"context"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	sdktrace "go.opentelemetry.io/otelcore/sdk/trace"

	tracepb "go.opentelemetry.io/proto/otlp/trace/v1"
)

type fakeClient struct {
	mu       sync.Mutex
	started  bool
	stopped  bool
	uploaded []*tracepb.ResourceSpans
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

func (c *fakeClient) UploadTraces(ctx context.Context, protoSpans []*tracepb.ResourceSpans) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.uploaded = append(c.uploaded, protoSpans...)
	return nil
}

func newTestSpan(t *testing.T) sdktrace.ReadOnlySpan {
	t.Helper()
	var captured sdktrace.ReadOnlySpan
	tp := sdktrace.NewTracerProvider(sdktrace.WithSpanProcessor(&captureProcessor{onEnd: func(s sdktrace.ReadOnlySpan) { captured = s }}))
	_, span := tp.Tracer("test").Start(context.Background(), "op")
	span.End()
	require.NotNil(t, captured)
	return captured
}

type captureProcessor struct {
	onEnd func(sdktrace.ReadOnlySpan)
}

func (p *captureProcessor) OnStart(context.Context, sdktrace.ReadWriteSpan) {}
func (p *captureProcessor) OnEnd(s sdktrace.ReadOnlySpan)                   { p.onEnd(s) }
func (p *captureProcessor) Shutdown(context.Context) error                  { return nil }
func (p *captureProcessor) ForceFlush(context.Context) error                { return nil }

func TestExporterStartsClientAndUploadsOnExport(t *testing.T) {
	client := &fakeClient{}
	exp, err := New(context.Background(), client)
	require.NoError(t, err)
	assert.True(t, client.started)

	span := newTestSpan(t)
	require.NoError(t, exp.ExportSpans(context.Background(), []sdktrace.ReadOnlySpan{span}))
	assert.Len(t, client.uploaded, 1)
}

func TestExporterExportAfterShutdownIsNoop(t *testing.T) {
	client := &fakeClient{}
	exp, err := New(context.Background(), client)
	require.NoError(t, err)
	require.NoError(t, exp.Shutdown(context.Background()))
	assert.True(t, client.stopped)

	span := newTestSpan(t)
	require.NoError(t, exp.ExportSpans(context.Background(), []sdktrace.ReadOnlySpan{span}))
	assert.Empty(t, client.uploaded)
}

func TestExporterShutdownIsIdempotent(t *testing.T) {
	client := &fakeClient{}
	exp, err := New(context.Background(), client)
	require.NoError(t, err)
	require.NoError(t, exp.Shutdown(context.Background()))
	require.NoError(t, exp.Shutdown(context.Background()))
}
