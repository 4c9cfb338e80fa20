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

// Package metric is the public facade instrumented code is written
// against: the Meter interface and the instrument handles it returns. The
// SDK implements Meter; this package only fixes that shape.
package metric // import "go.opentelemetry.io/otelcore/metric"

import (
	"context"

	"go.opentelemetry.io/otelcore/attribute"
)

// InstrumentKind identifies the kind of a metric instrument.
type InstrumentKind int

const (
	InstrumentKindUndefined InstrumentKind = iota
	InstrumentKindCounter
	InstrumentKindUpDownCounter
	InstrumentKindGauge
	InstrumentKindHistogram
	InstrumentKindObservableCounter
	InstrumentKindObservableGauge
	InstrumentKindObservableUpDownCounter
)

// Descriptor describes an instrument to the aggregation engine.
type Descriptor struct {
	Name        string
	Unit        string
	Description string
	Kind        InstrumentKind
}

// Int64Counter records monotonically increasing int64 values.
type Int64Counter interface {
	Add(ctx context.Context, incr int64, opts ...RecordOption)
}

// Float64Counter records monotonically increasing float64 values.
type Float64Counter interface {
	Add(ctx context.Context, incr float64, opts ...RecordOption)
}

// Int64UpDownCounter records int64 values that may rise or fall.
type Int64UpDownCounter interface {
	Add(ctx context.Context, incr int64, opts ...RecordOption)
}

// Float64UpDownCounter records float64 values that may rise or fall.
type Float64UpDownCounter interface {
	Add(ctx context.Context, incr float64, opts ...RecordOption)
}

// Int64Gauge records the current value of an int64 quantity.
type Int64Gauge interface {
	Record(ctx context.Context, value int64, opts ...RecordOption)
}

// Float64Gauge records the current value of a float64 quantity.
type Float64Gauge interface {
	Record(ctx context.Context, value float64, opts ...RecordOption)
}

// Int64Histogram records a distribution of int64 values.
type Int64Histogram interface {
	Record(ctx context.Context, value int64, opts ...RecordOption)
}

// Float64Histogram records a distribution of float64 values.
type Float64Histogram interface {
	Record(ctx context.Context, value float64, opts ...RecordOption)
}

// Int64Observable is the token returned by an observable instrument
// constructor and passed back to an Observer inside a callback.
type Int64Observable interface{ int64Observable() }

// Float64Observable is the token returned by an observable instrument
// constructor and passed back to an Observer inside a callback.
type Float64Observable interface{ float64Observable() }

// Int64Observer receives callback-reported values for one Int64Observable.
type Int64Observer interface {
	Observe(value int64, opts ...RecordOption)
}

// Float64Observer receives callback-reported values for one Float64Observable.
type Float64Observer interface {
	Observe(value float64, opts ...RecordOption)
}

// Observer is passed to a registered multi-instrument callback.
type Observer interface {
	ObserveInt64(obsrv Int64Observable, value int64, opts ...RecordOption)
	ObserveFloat64(obsrv Float64Observable, value float64, opts ...RecordOption)
}

// Int64Callback reports observations for one or more Int64Observables.
type Int64Callback func(ctx context.Context, observer Int64Observer) error

// Float64Callback reports observations for one or more Float64Observables.
type Float64Callback func(ctx context.Context, observer Float64Observer) error

// Callback reports observations for any number of registered observables.
type Callback func(ctx context.Context, observer Observer) error

// Registration is returned by Meter.RegisterCallback and can be used to
// unregister the callback.
type Registration interface {
	Unregister() error
}

// RecordOption configures a single measurement.
type RecordOption interface{ applyRecord(*RecordConfig) }

// RecordConfig is built up by a chain of RecordOptions.
type RecordConfig struct {
	Attributes []attribute.KeyValue
}

type recordAttrOption []attribute.KeyValue

func (o recordAttrOption) applyRecord(c *RecordConfig) { c.Attributes = append(c.Attributes, o...) }

// WithAttributes sets the attributes associated with a measurement.
func WithAttributes(kv ...attribute.KeyValue) RecordOption { return recordAttrOption(kv) }

// NewRecordConfig applies opts and returns the resulting RecordConfig.
func NewRecordConfig(opts ...RecordOption) RecordConfig {
	var c RecordConfig
	for _, o := range opts {
		o.applyRecord(&c)
	}
	return c
}
