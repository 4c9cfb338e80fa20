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
	"time"

	"go.opentelemetry.io/otelcore/attribute"
	coremetric "go.opentelemetry.io/otelcore/metric"
	"go.opentelemetry.io/otelcore/sdk/metric/internal/aggregate"
	"go.opentelemetry.io/otelcore/sdk/metric/metricdata"
)

// aggregator is the narrow interface a stream's underlying
// internal/aggregate type must satisfy so the pipeline can drive it without
// knowing which aggregation kind it wraps.
type aggregator[N int64 | float64] interface {
	Aggregate(value N, attrs attribute.Set)
	Collect(now time.Time) metricdata.Aggregation
}

type sumAggregator[N int64 | float64] struct{ *aggregate.Sum[N] }

func (a sumAggregator[N]) Collect(now time.Time) metricdata.Aggregation { return a.Sum.Collect(now) }

type lastValueAggregator[N int64 | float64] struct{ *aggregate.LastValue[N] }

func (a lastValueAggregator[N]) Collect(now time.Time) metricdata.Aggregation {
	return a.LastValue.Collect(now)
}

type histogramAggregator[N int64 | float64] struct{ *aggregate.Histogram[N] }

func (a histogramAggregator[N]) Collect(now time.Time) metricdata.Aggregation {
	return a.Histogram.Collect(now)
}

type expHistogramAggregator[N int64 | float64] struct{ *aggregate.ExponentialHistogram[N] }

func (a expHistogramAggregator[N]) Collect(now time.Time) metricdata.Aggregation {
	return a.ExponentialHistogram.Collect(now)
}

// newAggregator builds the aggregator a Stream's chosen kind requires.
func newAggregator[N int64 | float64](kind AggregationKind, instKind coremetric.InstrumentKind, temporality metricdata.Temporality, bounds []float64, cardinalityLimit int) aggregator[N] {
	if kind == AggregationDefault {
		kind = defaultAggregationFor(instKind)
	}
	switch kind {
	case AggregationLastValue:
		return lastValueAggregator[N]{aggregate.NewLastValue[N](cardinalityLimit)}
	case AggregationExplicitHistogram:
		return histogramAggregator[N]{aggregate.NewHistogram[N](bounds, temporality, cardinalityLimit)}
	case AggregationExponentialHistogram:
		return expHistogramAggregator[N]{aggregate.NewExponentialHistogram[N](0, temporality, cardinalityLimit)}
	default:
		return sumAggregator[N]{aggregate.NewSum[N](isMonotonic(instKind), temporality, cardinalityLimit)}
	}
}

func isMonotonic(kind coremetric.InstrumentKind) bool {
	switch kind {
	case coremetric.InstrumentKindUpDownCounter, coremetric.InstrumentKindObservableUpDownCounter:
		return false
	default:
		return true
	}
}

func defaultAggregationFor(kind coremetric.InstrumentKind) AggregationKind {
	switch kind {
	case coremetric.InstrumentKindGauge, coremetric.InstrumentKindObservableGauge:
		return AggregationLastValue
	case coremetric.InstrumentKindHistogram:
		return AggregationExplicitHistogram
	default:
		return AggregationSum
	}
}
