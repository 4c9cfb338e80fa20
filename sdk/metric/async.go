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
	"sync"

	"go.opentelemetry.io/otelcore/attribute"
	"go.opentelemetry.io/otelcore/internal/global"
	coremetric "go.opentelemetry.io/otelcore/metric"
)

// observableInt64 is the token handed back by an Int64Observable
// constructor and accepted back by Observer.ObserveInt64. It carries one
// set of streams per registered Reader's pipeline.
type observableInt64 struct {
	inst      Instrument
	byPipeline map[*pipeline][]*typedStream[int64]
}

func (o *observableInt64) int64Observable() {}

// observableFloat64 mirrors observableInt64 for float64-valued instruments.
type observableFloat64 struct {
	inst      Instrument
	byPipeline map[*pipeline][]*typedStream[float64]
}

func (o *observableFloat64) float64Observable() {}

// pipelineObserver routes ObserveInt64/ObserveFloat64 calls made during one
// pipeline's callback pass into that pipeline's own streams, leaving every
// other reader's aggregation untouched.
type pipelineObserver struct {
	p *pipeline
}

func (o pipelineObserver) ObserveInt64(obsrv coremetric.Int64Observable, value int64, opts ...coremetric.RecordOption) {
	t, ok := obsrv.(*observableInt64)
	if !ok {
		return
	}
	cfg := coremetric.NewRecordConfig(opts...)
	aggregateInto(t.byPipeline[o.p], value, attribute.NewSet(cfg.Attributes...))
}

func (o pipelineObserver) ObserveFloat64(obsrv coremetric.Float64Observable, value float64, opts ...coremetric.RecordOption) {
	t, ok := obsrv.(*observableFloat64)
	if !ok {
		return
	}
	cfg := coremetric.NewRecordConfig(opts...)
	aggregateInto(t.byPipeline[o.p], value, attribute.NewSet(cfg.Attributes...))
}

// registeredCallback is one Meter.RegisterCallback registration, held by
// the MeterProvider and invoked once per pipeline collection.
type registeredCallback struct {
	id int64
	f  coremetric.Callback
}

// callbackRegistry is the MeterProvider-wide set of registered observable
// callbacks; every pipeline's collect runs the full set through an Observer
// scoped to that pipeline.
type callbackRegistry struct {
	mu      sync.Mutex
	nextID  int64
	entries map[int64]registeredCallback
}

func newCallbackRegistry() *callbackRegistry {
	return &callbackRegistry{entries: make(map[int64]registeredCallback)}
}

func (r *callbackRegistry) register(f coremetric.Callback) coremetric.Registration {
	r.mu.Lock()
	id := r.nextID
	r.nextID++
	r.entries[id] = registeredCallback{id: id, f: f}
	r.mu.Unlock()
	return &callbackRegistration{registry: r, id: id}
}

// run invokes every registered callback with an Observer bound to p,
// recovering panics and logging errors: one misbehaving instrumentation
// callback must not abort a collection for every other instrument.
func (r *callbackRegistry) run(ctx context.Context, p *pipeline) {
	r.mu.Lock()
	callbacks := make([]registeredCallback, 0, len(r.entries))
	for _, c := range r.entries {
		callbacks = append(callbacks, c)
	}
	r.mu.Unlock()

	obs := pipelineObserver{p: p}
	for _, c := range callbacks {
		runCallbackSafely(ctx, c.f, obs)
	}
}

func runCallbackSafely(ctx context.Context, f coremetric.Callback, obs coremetric.Observer) {
	defer func() {
		if r := recover(); r != nil {
			global.Error(fmt.Errorf("panic: %v", r), "metric callback panicked")
		}
	}()
	if err := f(ctx, obs); err != nil {
		global.Error(err, "metric callback returned an error")
	}
}

type callbackRegistration struct {
	registry *callbackRegistry
	id       int64
}

func (c *callbackRegistration) Unregister() error {
	c.registry.mu.Lock()
	delete(c.registry.entries, c.id)
	c.registry.mu.Unlock()
	return nil
}
