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

package trace

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"go.opentelemetry.io/otelcore/internal/global"
)

func TestBatchSpanProcessorForceFlushExportsBufferedSpans(t *testing.T) {
	exp := &memoryExporter{}
	bsp := NewBatchSpanProcessor(exp, WithBatchTimeout(time.Hour), WithMaxExportBatchSize(100))
	defer bsp.Shutdown(context.Background())

	tp := NewTracerProvider(WithSpanProcessor(bsp))
	tr := tp.Tracer("test")
	for i := 0; i < 10; i++ {
		_, span := tr.Start(context.Background(), "op")
		span.End()
	}

	require.NoError(t, bsp.ForceFlush(context.Background()))
	assert.Len(t, exp.getSpans(), 10)
}

func TestBatchSpanProcessorExportsOnBatchSizeReached(t *testing.T) {
	exp := &memoryExporter{}
	bsp := NewBatchSpanProcessor(exp, WithBatchTimeout(time.Hour), WithMaxExportBatchSize(5))
	defer bsp.Shutdown(context.Background())

	tp := NewTracerProvider(WithSpanProcessor(bsp))
	tr := tp.Tracer("test")
	for i := 0; i < 5; i++ {
		_, span := tr.Start(context.Background(), "op")
		span.End()
	}

	require.Eventually(t, func() bool {
		return len(exp.getSpans()) == 5
	}, time.Second, 10*time.Millisecond)
}

// blockingExporter stalls its first export until release is closed, so the
// worker goroutine is pinned inside ExportSpans while the test fills the
// queue past capacity.
type blockingExporter struct {
	release chan struct{}
}

func (e *blockingExporter) ExportSpans(ctx context.Context, _ []ReadOnlySpan) error {
	select {
	case <-e.release:
	case <-ctx.Done():
	}
	return nil
}

func (e *blockingExporter) Shutdown(context.Context) error { return nil }

func TestBatchSpanProcessorDropsWhenQueueFull(t *testing.T) {
	exp := &blockingExporter{release: make(chan struct{})}
	bsp := NewBatchSpanProcessor(exp, WithMaxQueueSize(1), WithMaxExportBatchSize(1), WithBatchTimeout(time.Millisecond))
	sp := bsp.(*batchSpanProcessor)

	// The first span is picked up by the worker and triggers a flush that
	// blocks in ExportSpans, so the queue (capacity 1) is never drained
	// while the remaining spans are offered.
	sp.OnEnd(&spanSnapshot{name: "op-0"})
	require.Eventually(t, func() bool {
		for i := 0; i < 49; i++ {
			sp.OnEnd(&spanSnapshot{name: "op"})
		}
		return sp.DroppedCount() > 0
	}, time.Second, time.Millisecond)

	close(exp.release)
	require.NoError(t, bsp.Shutdown(context.Background()))
}

func TestBatchSpanProcessorShutdownIsIdempotentAndStopsAcceptingSpans(t *testing.T) {
	exp := &memoryExporter{}
	bsp := NewBatchSpanProcessor(exp)

	require.NoError(t, bsp.Shutdown(context.Background()))
	assert.True(t, exp.shutdown)
	assert.ErrorIs(t, bsp.Shutdown(context.Background()), global.ErrAlreadyShutdown)

	sp := bsp.(*batchSpanProcessor)
	sp.OnEnd(&spanSnapshot{name: "after-shutdown"})
	assert.Empty(t, exp.getSpans())
}
