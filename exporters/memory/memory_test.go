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
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"go.opentelemetry.io/otelcore/attribute"
	corelog "go.opentelemetry.io/otelcore/log"
	coremetric "go.opentelemetry.io/otelcore/metric"
	sdklog "go.opentelemetry.io/otelcore/sdk/log"
	sdkmetric "go.opentelemetry.io/otelcore/sdk/metric"
	"go.opentelemetry.io/otelcore/sdk/metric/metricdata"
	sdktrace "go.opentelemetry.io/otelcore/sdk/trace"
)

func TestTraceExporterRecordsSpansInOrder(t *testing.T) {
	exp := NewTraceExporter()
	tp := sdktrace.NewTracerProvider(sdktrace.WithSpanProcessor(sdktrace.NewSimpleSpanProcessor(exp)))
	_, s1 := tp.Tracer("test").Start(context.Background(), "one")
	s1.End()
	_, s2 := tp.Tracer("test").Start(context.Background(), "two")
	s2.End()
	require.NoError(t, tp.Shutdown(context.Background()))

	spans := exp.Spans()
	require.Len(t, spans, 2)
	assert.Equal(t, "one", spans[0].Name())
	assert.Equal(t, "two", spans[1].Name())
	assert.True(t, exp.ShutdownCalled())
}

func TestMetricExporterRecordsCollections(t *testing.T) {
	exp := NewMetricExporter()
	assert.Equal(t, metricdata.CumulativeTemporality, exp.Temporality(coremetric.InstrumentKindCounter))

	provider := sdkmetric.NewMeterProvider(sdkmetric.WithReader(sdkmetric.NewPeriodicReader(exp)))
	counter, err := provider.Meter("test").Int64Counter("c")
	require.NoError(t, err)
	counter.Add(context.Background(), 1)
	require.NoError(t, provider.ForceFlush(context.Background()))
	require.NoError(t, provider.Shutdown(context.Background()))

	require.Len(t, exp.Collections(), 1)
}

func TestLogExporterClonesRecords(t *testing.T) {
	exp := NewLogExporter()
	provider := sdklog.NewLoggerProvider(sdklog.WithProcessor(sdklog.NewSimpleProcessor(exp)))
	provider.Logger("test").Emit(context.Background(), corelog.Record{Body: attribute.StringValue("hi")})
	require.NoError(t, provider.Shutdown(context.Background()))

	require.Len(t, exp.Records(), 1)
	assert.Equal(t, "hi", exp.Records()[0].Body().AsString())
}
