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

// Package metricdata holds the point-in-time data types produced by a
// collection pass: the shapes a Reader hands to an exporter.
package metricdata // import "go.opentelemetry.io/otelcore/sdk/metric/metricdata"

import (
	"time"

	"go.opentelemetry.io/otelcore/attribute"
	"go.opentelemetry.io/otelcore/instrumentation"
	"go.opentelemetry.io/otelcore/resource"
)

// Temporality distinguishes a cumulative-since-start data point from a
// delta-since-last-collection one.
type Temporality int

const (
	CumulativeTemporality Temporality = iota
	DeltaTemporality
)

func (t Temporality) String() string {
	if t == DeltaTemporality {
		return "delta"
	}
	return "cumulative"
}

// ResourceMetrics is everything collected from one MeterProvider.
type ResourceMetrics struct {
	Resource     *resource.Resource
	ScopeMetrics []ScopeMetrics
}

// ScopeMetrics is everything collected from one instrumentation scope.
type ScopeMetrics struct {
	Scope   instrumentation.Scope
	Metrics []Metrics
}

// Metrics is one instrument's collected data for this pass.
type Metrics struct {
	Name        string
	Description string
	Unit        string
	Data        Aggregation
}

// Aggregation is implemented by Sum, Gauge, Histogram, and
// ExponentialHistogram.
type Aggregation interface {
	privateAggregation()
}

// DataPoint is one attribute-set's value within a Sum or Gauge.
type DataPoint[N int64 | float64] struct {
	Attributes attribute.Set
	StartTime  time.Time
	Time       time.Time
	Value      N
}

// Sum is the aggregation of a Counter, UpDownCounter, or ObservableCounter.
type Sum[N int64 | float64] struct {
	DataPoints  []DataPoint[N]
	Temporality Temporality
	IsMonotonic bool
}

func (Sum[N]) privateAggregation() {}

// Gauge is the aggregation of a synchronous or observable Gauge.
type Gauge[N int64 | float64] struct {
	DataPoints []DataPoint[N]
}

func (Gauge[N]) privateAggregation() {}

// HistogramDataPoint is one attribute-set's bucketed distribution.
type HistogramDataPoint[N int64 | float64] struct {
	Attributes   attribute.Set
	StartTime    time.Time
	Time         time.Time
	Count        uint64
	Sum          N
	Min          *N
	Max          *N
	Bounds       []float64
	BucketCounts []uint64
}

// Histogram is the aggregation of an explicit-bucket Histogram instrument.
type Histogram[N int64 | float64] struct {
	DataPoints  []HistogramDataPoint[N]
	Temporality Temporality
}

func (Histogram[N]) privateAggregation() {}

// ExponentialHistogramDataPoint is one attribute-set's base-2 exponential
// bucketed distribution.
type ExponentialHistogramDataPoint[N int64 | float64] struct {
	Attributes    attribute.Set
	StartTime     time.Time
	Time          time.Time
	Count         uint64
	Sum           N
	Min           *N
	Max           *N
	Scale         int32
	ZeroCount     uint64
	PositiveBucket ExponentialBucket
	NegativeBucket ExponentialBucket
}

// ExponentialBucket is one signed side of an exponential histogram: counts
// indexed contiguously starting at Offset.
type ExponentialBucket struct {
	Offset int32
	Counts []uint64
}

// ExponentialHistogram is the aggregation of a base-2 exponential Histogram
// instrument.
type ExponentialHistogram[N int64 | float64] struct {
	DataPoints  []ExponentialHistogramDataPoint[N]
	Temporality Temporality
}

func (ExponentialHistogram[N]) privateAggregation() {}
