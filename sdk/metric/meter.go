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

package metric // import "go.opentelemetry.io/otelcore/sdk/metric"

import (
	"context"
	"fmt"

	"go.opentelemetry.io/otelcore/attribute"
	"go.opentelemetry.io/otelcore/instrumentation"
	"go.opentelemetry.io/otelcore/internal/global"
	coremetric "go.opentelemetry.io/otelcore/metric"
)

// meter is the SDK's coremetric.Meter: one per instrumentation scope,
// shared across every Reader's pipeline.
type meter struct {
	provider *MeterProvider
	scope    instrumentation.Scope
}

var _ coremetric.Meter = (*meter)(nil)

// syncInstrument is the generic synchronous instrument handle: Add and
// Record are both defined so the same type satisfies every counter, gauge
// and histogram interface regardless of which method the facade calls.
type syncInstrument[N int64 | float64] struct {
	streams []*typedStream[N]
}

func (i *syncInstrument[N]) Add(ctx context.Context, incr N, opts ...coremetric.RecordOption) {
	if global.IsSelfTelemetrySuppressed(ctx) {
		return
	}
	i.record(incr, opts...)
}

func (i *syncInstrument[N]) Record(ctx context.Context, v N, opts ...coremetric.RecordOption) {
	if global.IsSelfTelemetrySuppressed(ctx) {
		return
	}
	i.record(v, opts...)
}

func (i *syncInstrument[N]) record(v N, opts ...coremetric.RecordOption) {
	cfg := coremetric.NewRecordConfig(opts...)
	aggregateInto(i.streams, v, attribute.NewSet(cfg.Attributes...))
}

// newSyncInstrument validates name, logging and disabling the instrument
// (an instrument with no streams silently discards every measurement) if
// it fails, then builds one stream set per registered Reader's pipeline.
func newSyncInstrument[N int64 | float64](m *meter, name string, kind coremetric.InstrumentKind, opts ...coremetric.InstrumentOption) *syncInstrument[N] {
	if !validInstrumentName(name) {
		global.WarnOnce("invalid-instrument-name:"+m.scope.Key()+":"+name,
			"instrument name failed validation, instrument disabled", "name", name)
		return &syncInstrument[N]{}
	}
	cfg := coremetric.NewInstrumentConfig(opts...)
	inst := Instrument{
		Name:        name,
		Description: cfg.Description,
		Unit:        cfg.Unit,
		Kind:        kind,
		Scope:       m.scope,
	}
	var streams []*typedStream[N]
	for _, pl := range m.provider.pipelines {
		streams = append(streams, streamsFor[N](pl, inst, kind)...)
	}
	return &syncInstrument[N]{streams: streams}
}

func (m *meter) Int64Counter(name string, opts ...coremetric.InstrumentOption) (coremetric.Int64Counter, error) {
	return newSyncInstrument[int64](m, name, coremetric.InstrumentKindCounter, opts...), nil
}

func (m *meter) Float64Counter(name string, opts ...coremetric.InstrumentOption) (coremetric.Float64Counter, error) {
	return newSyncInstrument[float64](m, name, coremetric.InstrumentKindCounter, opts...), nil
}

func (m *meter) Int64UpDownCounter(name string, opts ...coremetric.InstrumentOption) (coremetric.Int64UpDownCounter, error) {
	return newSyncInstrument[int64](m, name, coremetric.InstrumentKindUpDownCounter, opts...), nil
}

func (m *meter) Float64UpDownCounter(name string, opts ...coremetric.InstrumentOption) (coremetric.Float64UpDownCounter, error) {
	return newSyncInstrument[float64](m, name, coremetric.InstrumentKindUpDownCounter, opts...), nil
}

func (m *meter) Int64Gauge(name string, opts ...coremetric.InstrumentOption) (coremetric.Int64Gauge, error) {
	return newSyncInstrument[int64](m, name, coremetric.InstrumentKindGauge, opts...), nil
}

func (m *meter) Float64Gauge(name string, opts ...coremetric.InstrumentOption) (coremetric.Float64Gauge, error) {
	return newSyncInstrument[float64](m, name, coremetric.InstrumentKindGauge, opts...), nil
}

func (m *meter) Int64Histogram(name string, opts ...coremetric.InstrumentOption) (coremetric.Int64Histogram, error) {
	return newSyncInstrument[int64](m, name, coremetric.InstrumentKindHistogram, opts...), nil
}

func (m *meter) Float64Histogram(name string, opts ...coremetric.InstrumentOption) (coremetric.Float64Histogram, error) {
	return newSyncInstrument[float64](m, name, coremetric.InstrumentKindHistogram, opts...), nil
}

// newObservableInt64 mirrors newSyncInstrument for int64-valued async
// instruments: the returned token carries one stream set per pipeline,
// looked up by a pipelineObserver during that pipeline's collection.
func newObservableInt64(m *meter, name string, kind coremetric.InstrumentKind, opts ...coremetric.InstrumentOption) *observableInt64 {
	if !validInstrumentName(name) {
		global.WarnOnce("invalid-instrument-name:"+m.scope.Key()+":"+name,
			"instrument name failed validation, instrument disabled", "name", name)
		return &observableInt64{}
	}
	cfg := coremetric.NewInstrumentConfig(opts...)
	inst := Instrument{Name: name, Description: cfg.Description, Unit: cfg.Unit, Kind: kind, Scope: m.scope}
	byPipeline := make(map[*pipeline][]*typedStream[int64], len(m.provider.pipelines))
	for _, pl := range m.provider.pipelines {
		byPipeline[pl] = streamsFor[int64](pl, inst, kind)
	}
	return &observableInt64{inst: inst, byPipeline: byPipeline}
}

func newObservableFloat64(m *meter, name string, kind coremetric.InstrumentKind, opts ...coremetric.InstrumentOption) *observableFloat64 {
	if !validInstrumentName(name) {
		global.WarnOnce("invalid-instrument-name:"+m.scope.Key()+":"+name,
			"instrument name failed validation, instrument disabled", "name", name)
		return &observableFloat64{}
	}
	cfg := coremetric.NewInstrumentConfig(opts...)
	inst := Instrument{Name: name, Description: cfg.Description, Unit: cfg.Unit, Kind: kind, Scope: m.scope}
	byPipeline := make(map[*pipeline][]*typedStream[float64], len(m.provider.pipelines))
	for _, pl := range m.provider.pipelines {
		byPipeline[pl] = streamsFor[float64](pl, inst, kind)
	}
	return &observableFloat64{inst: inst, byPipeline: byPipeline}
}

func (m *meter) Int64ObservableCounter(name string, opts ...coremetric.InstrumentOption) (coremetric.Int64Observable, error) {
	return newObservableInt64(m, name, coremetric.InstrumentKindObservableCounter, opts...), nil
}

func (m *meter) Float64ObservableCounter(name string, opts ...coremetric.InstrumentOption) (coremetric.Float64Observable, error) {
	return newObservableFloat64(m, name, coremetric.InstrumentKindObservableCounter, opts...), nil
}

func (m *meter) Int64ObservableUpDownCounter(name string, opts ...coremetric.InstrumentOption) (coremetric.Int64Observable, error) {
	return newObservableInt64(m, name, coremetric.InstrumentKindObservableUpDownCounter, opts...), nil
}

func (m *meter) Float64ObservableUpDownCounter(name string, opts ...coremetric.InstrumentOption) (coremetric.Float64Observable, error) {
	return newObservableFloat64(m, name, coremetric.InstrumentKindObservableUpDownCounter, opts...), nil
}

func (m *meter) Int64ObservableGauge(name string, opts ...coremetric.InstrumentOption) (coremetric.Int64Observable, error) {
	return newObservableInt64(m, name, coremetric.InstrumentKindObservableGauge, opts...), nil
}

func (m *meter) Float64ObservableGauge(name string, opts ...coremetric.InstrumentOption) (coremetric.Float64Observable, error) {
	return newObservableFloat64(m, name, coremetric.InstrumentKindObservableGauge, opts...), nil
}

// RegisterCallback registers f to run once per collection, for every
// pipeline, before that pipeline's streams are snapshotted. instruments is
// accepted for interface-compatibility with other SDKs' RegisterCallback
// signatures but is not required to scope f's observations: f may observe
// into any observable instrument token it closes over.
func (m *meter) RegisterCallback(f coremetric.Callback, instruments ...interface{}) (coremetric.Registration, error) {
	if f == nil {
		return nil, fmt.Errorf("otelcore/sdk/metric: nil callback")
	}
	return m.provider.callbacks.register(f), nil
}
