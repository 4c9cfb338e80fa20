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

package transform

import (
	"go.opentelemetry.io/otelcore/sdk/metric/metricdata"

	metricpb "go.opentelemetry.io/proto/otlp/metrics/v1"
)

// ResourceMetrics converts a collected ResourceMetrics snapshot into the
// OTLP wire representation.
func ResourceMetrics(rm metricdata.ResourceMetrics) *metricpb.ResourceMetrics {
	out := &metricpb.ResourceMetrics{Resource: Resource(rm.Resource)}
	for _, sm := range rm.ScopeMetrics {
		out.ScopeMetrics = append(out.ScopeMetrics, scopeMetrics(sm))
	}
	return out
}

func scopeMetrics(sm metricdata.ScopeMetrics) *metricpb.ScopeMetrics {
	out := &metricpb.ScopeMetrics{Scope: Scope(sm.Scope), SchemaUrl: sm.Scope.SchemaURL}
	for _, m := range sm.Metrics {
		if pbm := metric(m); pbm != nil {
			out.Metrics = append(out.Metrics, pbm)
		}
	}
	return out
}

func metric(m metricdata.Metrics) *metricpb.Metric {
	out := &metricpb.Metric{Name: m.Name, Description: m.Description, Unit: m.Unit}
	switch a := m.Data.(type) {
	case metricdata.Sum[int64]:
		out.Data = &metricpb.Metric_Sum{Sum: sumInt(a)}
	case metricdata.Sum[float64]:
		out.Data = &metricpb.Metric_Sum{Sum: sumFloat(a)}
	case metricdata.Gauge[int64]:
		out.Data = &metricpb.Metric_Gauge{Gauge: gaugeInt(a)}
	case metricdata.Gauge[float64]:
		out.Data = &metricpb.Metric_Gauge{Gauge: gaugeFloat(a)}
	case metricdata.Histogram[int64]:
		out.Data = &metricpb.Metric_Histogram{Histogram: histogramInt(a)}
	case metricdata.Histogram[float64]:
		out.Data = &metricpb.Metric_Histogram{Histogram: histogramFloat(a)}
	case metricdata.ExponentialHistogram[int64]:
		out.Data = &metricpb.Metric_ExponentialHistogram{ExponentialHistogram: expHistogramInt(a)}
	case metricdata.ExponentialHistogram[float64]:
		out.Data = &metricpb.Metric_ExponentialHistogram{ExponentialHistogram: expHistogramFloat(a)}
	default:
		return nil
	}
	return out
}

func temporality(t metricdata.Temporality) metricpb.AggregationTemporality {
	if t == metricdata.DeltaTemporality {
		return metricpb.AggregationTemporality_AGGREGATION_TEMPORALITY_DELTA
	}
	return metricpb.AggregationTemporality_AGGREGATION_TEMPORALITY_CUMULATIVE
}

func sumInt(s metricdata.Sum[int64]) *metricpb.Sum {
	out := &metricpb.Sum{AggregationTemporality: temporality(s.Temporality), IsMonotonic: s.IsMonotonic}
	for _, dp := range s.DataPoints {
		out.DataPoints = append(out.DataPoints, &metricpb.NumberDataPoint{
			Attributes:        AttributeSet(dp.Attributes),
			StartTimeUnixNano: uint64(dp.StartTime.UnixNano()),
			TimeUnixNano:      uint64(dp.Time.UnixNano()),
			Value:             &metricpb.NumberDataPoint_AsInt{AsInt: dp.Value},
		})
	}
	return out
}

func sumFloat(s metricdata.Sum[float64]) *metricpb.Sum {
	out := &metricpb.Sum{AggregationTemporality: temporality(s.Temporality), IsMonotonic: s.IsMonotonic}
	for _, dp := range s.DataPoints {
		out.DataPoints = append(out.DataPoints, &metricpb.NumberDataPoint{
			Attributes:        AttributeSet(dp.Attributes),
			StartTimeUnixNano: uint64(dp.StartTime.UnixNano()),
			TimeUnixNano:      uint64(dp.Time.UnixNano()),
			Value:             &metricpb.NumberDataPoint_AsDouble{AsDouble: dp.Value},
		})
	}
	return out
}

func gaugeInt(g metricdata.Gauge[int64]) *metricpb.Gauge {
	out := &metricpb.Gauge{}
	for _, dp := range g.DataPoints {
		out.DataPoints = append(out.DataPoints, &metricpb.NumberDataPoint{
			Attributes:        AttributeSet(dp.Attributes),
			StartTimeUnixNano: uint64(dp.StartTime.UnixNano()),
			TimeUnixNano:      uint64(dp.Time.UnixNano()),
			Value:             &metricpb.NumberDataPoint_AsInt{AsInt: dp.Value},
		})
	}
	return out
}

func gaugeFloat(g metricdata.Gauge[float64]) *metricpb.Gauge {
	out := &metricpb.Gauge{}
	for _, dp := range g.DataPoints {
		out.DataPoints = append(out.DataPoints, &metricpb.NumberDataPoint{
			Attributes:        AttributeSet(dp.Attributes),
			StartTimeUnixNano: uint64(dp.StartTime.UnixNano()),
			TimeUnixNano:      uint64(dp.Time.UnixNano()),
			Value:             &metricpb.NumberDataPoint_AsDouble{AsDouble: dp.Value},
		})
	}
	return out
}

func histogramInt(h metricdata.Histogram[int64]) *metricpb.Histogram {
	out := &metricpb.Histogram{AggregationTemporality: temporality(h.Temporality)}
	for _, dp := range h.DataPoints {
		pdp := &metricpb.HistogramDataPoint{
			Attributes:        AttributeSet(dp.Attributes),
			StartTimeUnixNano: uint64(dp.StartTime.UnixNano()),
			TimeUnixNano:      uint64(dp.Time.UnixNano()),
			Count:             dp.Count,
			Sum:               float64Ptr(float64(dp.Sum)),
			ExplicitBounds:    dp.Bounds,
			BucketCounts:      dp.BucketCounts,
		}
		if dp.Min != nil {
			pdp.Min = float64Ptr(float64(*dp.Min))
		}
		if dp.Max != nil {
			pdp.Max = float64Ptr(float64(*dp.Max))
		}
		out.DataPoints = append(out.DataPoints, pdp)
	}
	return out
}

func histogramFloat(h metricdata.Histogram[float64]) *metricpb.Histogram {
	out := &metricpb.Histogram{AggregationTemporality: temporality(h.Temporality)}
	for _, dp := range h.DataPoints {
		pdp := &metricpb.HistogramDataPoint{
			Attributes:        AttributeSet(dp.Attributes),
			StartTimeUnixNano: uint64(dp.StartTime.UnixNano()),
			TimeUnixNano:      uint64(dp.Time.UnixNano()),
			Count:             dp.Count,
			Sum:               float64Ptr(dp.Sum),
			ExplicitBounds:    dp.Bounds,
			BucketCounts:      dp.BucketCounts,
		}
		if dp.Min != nil {
			pdp.Min = float64Ptr(*dp.Min)
		}
		if dp.Max != nil {
			pdp.Max = float64Ptr(*dp.Max)
		}
		out.DataPoints = append(out.DataPoints, pdp)
	}
	return out
}

func expHistogramInt(h metricdata.ExponentialHistogram[int64]) *metricpb.ExponentialHistogram {
	out := &metricpb.ExponentialHistogram{AggregationTemporality: temporality(h.Temporality)}
	for _, dp := range h.DataPoints {
		pdp := &metricpb.ExponentialHistogramDataPoint{
			Attributes:        AttributeSet(dp.Attributes),
			StartTimeUnixNano: uint64(dp.StartTime.UnixNano()),
			TimeUnixNano:      uint64(dp.Time.UnixNano()),
			Count:             dp.Count,
			Sum:               float64Ptr(float64(dp.Sum)),
			Scale:             dp.Scale,
			ZeroCount:         dp.ZeroCount,
			Positive:          expBucket(dp.PositiveBucket),
			Negative:          expBucket(dp.NegativeBucket),
		}
		if dp.Min != nil {
			pdp.Min = float64Ptr(float64(*dp.Min))
		}
		if dp.Max != nil {
			pdp.Max = float64Ptr(float64(*dp.Max))
		}
		out.DataPoints = append(out.DataPoints, pdp)
	}
	return out
}

func expHistogramFloat(h metricdata.ExponentialHistogram[float64]) *metricpb.ExponentialHistogram {
	out := &metricpb.ExponentialHistogram{AggregationTemporality: temporality(h.Temporality)}
	for _, dp := range h.DataPoints {
		pdp := &metricpb.ExponentialHistogramDataPoint{
			Attributes:        AttributeSet(dp.Attributes),
			StartTimeUnixNano: uint64(dp.StartTime.UnixNano()),
			TimeUnixNano:      uint64(dp.Time.UnixNano()),
			Count:             dp.Count,
			Sum:               float64Ptr(dp.Sum),
			Scale:             dp.Scale,
			ZeroCount:         dp.ZeroCount,
			Positive:          expBucket(dp.PositiveBucket),
			Negative:          expBucket(dp.NegativeBucket),
		}
		if dp.Min != nil {
			pdp.Min = float64Ptr(*dp.Min)
		}
		if dp.Max != nil {
			pdp.Max = float64Ptr(*dp.Max)
		}
		out.DataPoints = append(out.DataPoints, pdp)
	}
	return out
}

func expBucket(b metricdata.ExponentialBucket) *metricpb.ExponentialHistogramDataPoint_Buckets {
	return &metricpb.ExponentialHistogramDataPoint_Buckets{Offset: b.Offset, BucketCounts: b.Counts}
}

func float64Ptr(f float64) *float64 { return &f }
