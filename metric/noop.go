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

import "context"

type noopInstrument struct{}

func (noopInstrument) Add(context.Context, int64, ...RecordOption)    {}
func (noopInstrument) AddFloat(context.Context, float64, ...RecordOption) {}

type noopInt64Instrument struct{}

func (noopInt64Instrument) Add(context.Context, int64, ...RecordOption)    {}
func (noopInt64Instrument) Record(context.Context, int64, ...RecordOption) {}

type noopFloat64Instrument struct{}

func (noopFloat64Instrument) Add(context.Context, float64, ...RecordOption)    {}
func (noopFloat64Instrument) Record(context.Context, float64, ...RecordOption) {}

type noopInt64Observable struct{}

func (noopInt64Observable) int64Observable() {}

type noopFloat64Observable struct{}

func (noopFloat64Observable) float64Observable() {}

type noopRegistration struct{}

func (noopRegistration) Unregister() error { return nil }

type noopMeter struct{}

func (noopMeter) Int64Counter(string, ...InstrumentOption) (Int64Counter, error) {
	return noopInt64Instrument{}, nil
}
func (noopMeter) Float64Counter(string, ...InstrumentOption) (Float64Counter, error) {
	return noopFloat64Instrument{}, nil
}
func (noopMeter) Int64UpDownCounter(string, ...InstrumentOption) (Int64UpDownCounter, error) {
	return noopInt64Instrument{}, nil
}
func (noopMeter) Float64UpDownCounter(string, ...InstrumentOption) (Float64UpDownCounter, error) {
	return noopFloat64Instrument{}, nil
}
func (noopMeter) Int64Gauge(string, ...InstrumentOption) (Int64Gauge, error) {
	return noopInt64Instrument{}, nil
}
func (noopMeter) Float64Gauge(string, ...InstrumentOption) (Float64Gauge, error) {
	return noopFloat64Instrument{}, nil
}
func (noopMeter) Int64Histogram(string, ...InstrumentOption) (Int64Histogram, error) {
	return noopInt64Instrument{}, nil
}
func (noopMeter) Float64Histogram(string, ...InstrumentOption) (Float64Histogram, error) {
	return noopFloat64Instrument{}, nil
}
func (noopMeter) Int64ObservableCounter(string, ...InstrumentOption) (Int64Observable, error) {
	return noopInt64Observable{}, nil
}
func (noopMeter) Float64ObservableCounter(string, ...InstrumentOption) (Float64Observable, error) {
	return noopFloat64Observable{}, nil
}
func (noopMeter) Int64ObservableUpDownCounter(string, ...InstrumentOption) (Int64Observable, error) {
	return noopInt64Observable{}, nil
}
func (noopMeter) Float64ObservableUpDownCounter(string, ...InstrumentOption) (Float64Observable, error) {
	return noopFloat64Observable{}, nil
}
func (noopMeter) Int64ObservableGauge(string, ...InstrumentOption) (Int64Observable, error) {
	return noopInt64Observable{}, nil
}
func (noopMeter) Float64ObservableGauge(string, ...InstrumentOption) (Float64Observable, error) {
	return noopFloat64Observable{}, nil
}
func (noopMeter) RegisterCallback(Callback, ...interface{}) (Registration, error) {
	return noopRegistration{}, nil
}

type noopProvider struct{}

func (noopProvider) Meter(string, ...MeterOption) Meter { return noopMeter{} }

// NewNoopMeterProvider returns a MeterProvider whose Meters discard every
// measurement.
func NewNoopMeterProvider() MeterProvider { return noopProvider{} }
