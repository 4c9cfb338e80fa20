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

package metric // import "go.opentelemetry.io/otelcore/metric"

import "go.opentelemetry.io/otelcore/attribute"

// Meter provides access to instrument constructors for a single
// instrumentation scope.
type Meter interface {
	Int64Counter(name string, opts ...InstrumentOption) (Int64Counter, error)
	Float64Counter(name string, opts ...InstrumentOption) (Float64Counter, error)
	Int64UpDownCounter(name string, opts ...InstrumentOption) (Int64UpDownCounter, error)
	Float64UpDownCounter(name string, opts ...InstrumentOption) (Float64UpDownCounter, error)
	Int64Gauge(name string, opts ...InstrumentOption) (Int64Gauge, error)
	Float64Gauge(name string, opts ...InstrumentOption) (Float64Gauge, error)
	Int64Histogram(name string, opts ...InstrumentOption) (Int64Histogram, error)
	Float64Histogram(name string, opts ...InstrumentOption) (Float64Histogram, error)

	Int64ObservableCounter(name string, opts ...InstrumentOption) (Int64Observable, error)
	Float64ObservableCounter(name string, opts ...InstrumentOption) (Float64Observable, error)
	Int64ObservableUpDownCounter(name string, opts ...InstrumentOption) (Int64Observable, error)
	Float64ObservableUpDownCounter(name string, opts ...InstrumentOption) (Float64Observable, error)
	Int64ObservableGauge(name string, opts ...InstrumentOption) (Int64Observable, error)
	Float64ObservableGauge(name string, opts ...InstrumentOption) (Float64Observable, error)

	// RegisterCallback registers f to be invoked during every collection,
	// before any instrument it observes into is snapshotted.
	RegisterCallback(f Callback, instruments ...interface{}) (Registration, error)
}

// MeterProvider supplies Meters, one per instrumentation scope.
type MeterProvider interface {
	Meter(name string, opts ...MeterOption) Meter
}

// MeterOption configures a Meter obtained from a MeterProvider.
type MeterOption interface{ applyMeter(*MeterConfig) }

// MeterConfig is built up by a chain of MeterOptions.
type MeterConfig struct {
	InstrumentationVersion string
	SchemaURL              string
	Attributes             []attribute.KeyValue
}

type meterAttrOption []attribute.KeyValue

func (o meterAttrOption) applyMeter(c *MeterConfig) { c.Attributes = append(c.Attributes, o...) }

// WithInstrumentationAttributes sets attributes describing the
// instrumentation scope itself.
func WithInstrumentationAttributes(attrs ...attribute.KeyValue) MeterOption {
	return meterAttrOption(attrs)
}

type meterVersionOption string

func (o meterVersionOption) applyMeter(c *MeterConfig) { c.InstrumentationVersion = string(o) }

// WithInstrumentationVersion sets the instrumentation scope version.
func WithInstrumentationVersion(v string) MeterOption { return meterVersionOption(v) }

type meterSchemaOption string

func (o meterSchemaOption) applyMeter(c *MeterConfig) { c.SchemaURL = string(o) }

// WithSchemaURL sets the instrumentation scope's schema URL.
func WithSchemaURL(url string) MeterOption { return meterSchemaOption(url) }

// NewMeterConfig applies opts and returns the resulting MeterConfig.
func NewMeterConfig(opts ...MeterOption) MeterConfig {
	var c MeterConfig
	for _, o := range opts {
		o.applyMeter(&c)
	}
	return c
}

// InstrumentOption configures an instrument at creation time.
type InstrumentOption interface{ applyInstrument(*InstrumentConfig) }

// InstrumentConfig is built up by a chain of InstrumentOptions.
type InstrumentConfig struct {
	Description string
	Unit        string
}

type descriptionOption string

func (o descriptionOption) applyInstrument(c *InstrumentConfig) { c.Description = string(o) }

// WithDescription sets an instrument's human-readable description.
func WithDescription(desc string) InstrumentOption { return descriptionOption(desc) }

type unitOption string

func (o unitOption) applyInstrument(c *InstrumentConfig) { c.Unit = string(o) }

// WithUnit sets an instrument's unit of measure.
func WithUnit(unit string) InstrumentOption { return unitOption(unit) }

// NewInstrumentConfig applies opts and returns the resulting InstrumentConfig.
func NewInstrumentConfig(opts ...InstrumentOption) InstrumentConfig {
	var c InstrumentConfig
	for _, o := range opts {
		o.applyInstrument(&c)
	}
	return c
}
