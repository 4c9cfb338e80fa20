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

package log

import (
	"context"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"go.opentelemetry.io/otelcore/attribute"
	"go.opentelemetry.io/otelcore/internal/global"
	corelog "go.opentelemetry.io/otelcore/log"
	coretrace "go.opentelemetry.io/otelcore/trace"
)

// memoryExporter collects every exported record. It is the in-memory
// Exporter used across sdk/log's own tests.
type memoryExporter struct {
	mu       sync.Mutex
	records  []*Record
	shutdown bool
}

func (e *memoryExporter) Export(_ context.Context, records []*Record) error {
	e.mu.Lock()
	defer e.mu.Unlock()
	for _, r := range records {
		e.records = append(e.records, r.Clone())
	}
	return nil
}

func (e *memoryExporter) Shutdown(context.Context) error {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.shutdown = true
	return nil
}

func (e *memoryExporter) ForceFlush(context.Context) error { return nil }

func (e *memoryExporter) getRecords() []*Record {
	e.mu.Lock()
	defer e.mu.Unlock()
	return append([]*Record(nil), e.records...)
}

func TestLoggerEmitReachesProcessorInOrder(t *testing.T) {
	exp := &memoryExporter{}
	lp := NewLoggerProvider(WithProcessor(NewSimpleProcessor(exp)))
	l := lp.Logger("test")

	l.Emit(context.Background(), corelog.Record{
		Body:       attribute.StringValue("hello"),
		Severity:   corelog.SeverityInfo1,
		Attributes: []attribute.KeyValue{attribute.String("k", "v")},
	})

	records := exp.getRecords()
	require.Len(t, records, 1)
	assert.Equal(t, corelog.SeverityInfo1, records[0].Severity())
	assert.Equal(t, 1, records[0].AttributesLen())
	assert.False(t, records[0].ObservedTimestamp().IsZero())
}

func TestLoggerEmitFillsTraceContextFromSpan(t *testing.T) {
	exp := &memoryExporter{}
	lp := NewLoggerProvider(WithProcessor(NewSimpleProcessor(exp)))
	l := lp.Logger("test")

	sc := coretrace.NewSpanContext(coretrace.SpanContextConfig{
		TraceID:    coretrace.TraceID{1, 2, 3},
		SpanID:     coretrace.SpanID{4, 5, 6},
		TraceFlags: coretrace.FlagsSampled,
	})
	ctx := coretrace.ContextWithSpanContext(context.Background(), sc)

	l.Emit(ctx, corelog.Record{Body: attribute.StringValue("hi")})

	records := exp.getRecords()
	require.Len(t, records, 1)
	assert.Equal(t, [16]byte(sc.TraceID()), records[0].TraceID())
	assert.Equal(t, [8]byte(sc.SpanID()), records[0].SpanID())
}

func TestLoggerEmitKeepsExplicitTraceContext(t *testing.T) {
	exp := &memoryExporter{}
	lp := NewLoggerProvider(WithProcessor(NewSimpleProcessor(exp)))
	l := lp.Logger("test")

	sc := coretrace.NewSpanContext(coretrace.SpanContextConfig{
		TraceID: coretrace.TraceID{9, 9, 9},
		SpanID:  coretrace.SpanID{8, 8, 8},
	})
	ctx := coretrace.ContextWithSpanContext(context.Background(), sc)

	want := [16]byte{1, 1, 1}
	l.Emit(ctx, corelog.Record{TraceID: want})

	records := exp.getRecords()
	require.Len(t, records, 1)
	assert.Equal(t, want, records[0].TraceID())
}

func TestLoggerEmitSkipsWhenSelfTelemetrySuppressed(t *testing.T) {
	exp := &memoryExporter{}
	lp := NewLoggerProvider(WithProcessor(NewSimpleProcessor(exp)))
	l := lp.Logger("test")

	ctx := global.ContextWithoutSelfTelemetry(context.Background())
	l.Emit(ctx, corelog.Record{Body: attribute.StringValue("hi")})

	assert.Empty(t, exp.getRecords())
}

func TestLoggerEnabledFalseWithoutProcessors(t *testing.T) {
	lp := NewLoggerProvider()
	l := lp.Logger("test")
	assert.False(t, l.Enabled(context.Background(), corelog.EnabledParameters{}))
}

func TestProviderShutdownIsIdempotent(t *testing.T) {
	exp := &memoryExporter{}
	lp := NewLoggerProvider(WithProcessor(NewSimpleProcessor(exp)))

	require.NoError(t, lp.Shutdown(context.Background()))
	assert.True(t, exp.shutdown)
	assert.ErrorIs(t, lp.Shutdown(context.Background()), global.ErrAlreadyShutdown)
}

func TestProviderLoggerIsCachedPerScope(t *testing.T) {
	lp := NewLoggerProvider()
	a := lp.Logger("svc")
	b := lp.Logger("svc")
	c := lp.Logger("other")
	assert.Same(t, a, b)
	assert.NotSame(t, a, c)
}
