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

package stdoutmetric

import (
	"time"

	"go.opentelemetry.io/otelcore/attribute"
	"go.opentelemetry.io/otelcore/sdk/metric/metricdata"
)

type jsonResourceMetricsT struct {
	Resource     []jsonKeyValue      `json:"Resource"`
	ScopeMetrics []jsonScopeMetrics `json:"ScopeMetrics"`
}

type jsonScopeMetrics struct {
	Scope   jsonScope     `json:"Scope"`
	Metrics []jsonMetrics `json:"Metrics"`
}

type jsonScope struct {
	Name    string `json:"Name"`
	Version string `json:"Version"`
}

type jsonMetrics struct {
	Name        string      `json:"Name"`
	Description string      `json:"Description"`
	Unit        string      `json:"Unit"`
	Data        interface{} `json:"Data"`
}

type jsonKeyValue struct {
	Key   string      `json:"Key"`
	Value interface{} `json:"Value"`
}

type jsonDataPoint struct {
	Attributes []jsonKeyValue `json:"Attributes"`
	StartTime  time.Time      `json:"StartTime"`
	Time       time.Time      `json:"Time"`
	Value      interface{}    `json:"Value"`
}

type jsonHistogramDataPoint struct {
	Attributes   []jsonKeyValue `json:"Attributes"`
	StartTime    time.Time      `json:"StartTime"`
	Time         time.Time      `json:"Time"`
	Count        uint64         `json:"Count"`
	Sum          interface{}    `json:"Sum"`
	Min          interface{}    `json:"Min,omitempty"`
	Max          interface{}    `json:"Max,omitempty"`
	Bounds       []float64      `json:"Bounds"`
	BucketCounts []uint64       `json:"BucketCounts"`
}

type jsonSum struct {
	DataPoints  []jsonDataPoint `json:"DataPoints"`
	Temporality string          `json:"Temporality"`
	IsMonotonic bool            `json:"IsMonotonic"`
}

type jsonGauge struct {
	DataPoints []jsonDataPoint `json:"DataPoints"`
}

type jsonHistogram struct {
	DataPoints  []jsonHistogramDataPoint `json:"DataPoints"`
	Temporality string                   `json:"Temporality"`
}

func toJSONAttrs(set attribute.Set) []jsonKeyValue {
	kvs := set.ToSlice()
	out := make([]jsonKeyValue, 0, len(kvs))
	for _, kv := range kvs {
		out = append(out, jsonKeyValue{Key: string(kv.Key), Value: kv.Value.AsInterface()})
	}
	return out
}

func jsonResourceMetrics(rm metricdata.ResourceMetrics) jsonResourceMetricsT {
	var resAttrs []jsonKeyValue
	if rm.Resource != nil {
		resAttrs = toJSONAttrs(attribute.NewSet(rm.Resource.Attributes()...))
	}
	sms := make([]jsonScopeMetrics, 0, len(rm.ScopeMetrics))
	for _, sm := range rm.ScopeMetrics {
		ms := make([]jsonMetrics, 0, len(sm.Metrics))
		for _, m := range sm.Metrics {
			ms = append(ms, jsonMetrics{
				Name:        m.Name,
				Description: m.Description,
				Unit:        m.Unit,
				Data:        jsonAggregation(m.Data),
			})
		}
		sms = append(sms, jsonScopeMetrics{
			Scope:   jsonScope{Name: sm.Scope.Name, Version: sm.Scope.Version},
			Metrics: ms,
		})
	}
	return jsonResourceMetricsT{Resource: resAttrs, ScopeMetrics: sms}
}

func jsonAggregation(agg metricdata.Aggregation) interface{} {
	switch a := agg.(type) {
	case metricdata.Sum[int64]:
		return toJSONSum(a)
	case metricdata.Sum[float64]:
		return toJSONSum(a)
	case metricdata.Gauge[int64]:
		return toJSONGauge(a)
	case metricdata.Gauge[float64]:
		return toJSONGauge(a)
	case metricdata.Histogram[int64]:
		return toJSONHistogram(a)
	case metricdata.Histogram[float64]:
		return toJSONHistogram(a)
	case metricdata.ExponentialHistogram[int64]:
		return toJSONExpHistogram(a)
	case metricdata.ExponentialHistogram[float64]:
		return toJSONExpHistogram(a)
	default:
		return nil
	}
}

func toJSONSum[N int64 | float64](s metricdata.Sum[N]) jsonSum {
	dps := make([]jsonDataPoint, 0, len(s.DataPoints))
	for _, dp := range s.DataPoints {
		dps = append(dps, jsonDataPoint{
			Attributes: toJSONAttrs(dp.Attributes),
			StartTime:  dp.StartTime,
			Time:       dp.Time,
			Value:      dp.Value,
		})
	}
	return jsonSum{DataPoints: dps, Temporality: s.Temporality.String(), IsMonotonic: s.IsMonotonic}
}

func toJSONGauge[N int64 | float64](g metricdata.Gauge[N]) jsonGauge {
	dps := make([]jsonDataPoint, 0, len(g.DataPoints))
	for _, dp := range g.DataPoints {
		dps = append(dps, jsonDataPoint{
			Attributes: toJSONAttrs(dp.Attributes),
			StartTime:  dp.StartTime,
			Time:       dp.Time,
			Value:      dp.Value,
		})
	}
	return jsonGauge{DataPoints: dps}
}

func toJSONHistogram[N int64 | float64](h metricdata.Histogram[N]) jsonHistogram {
	dps := make([]jsonHistogramDataPoint, 0, len(h.DataPoints))
	for _, dp := range h.DataPoints {
		jdp := jsonHistogramDataPoint{
			Attributes:   toJSONAttrs(dp.Attributes),
			StartTime:    dp.StartTime,
			Time:         dp.Time,
			Count:        dp.Count,
			Sum:          dp.Sum,
			Bounds:       dp.Bounds,
			BucketCounts: dp.BucketCounts,
		}
		if dp.Min != nil {
			jdp.Min = *dp.Min
		}
		if dp.Max != nil {
			jdp.Max = *dp.Max
		}
		dps = append(dps, jdp)
	}
	return jsonHistogram{DataPoints: dps, Temporality: h.Temporality.String()}
}

// toJSONExpHistogram renders an exponential histogram using the same
// bucket-count/sum/min/max shape as an explicit-bucket one, since the
// stdout format is for human inspection, not round-tripping.
func toJSONExpHistogram[N int64 | float64](h metricdata.ExponentialHistogram[N]) jsonHistogram {
	dps := make([]jsonHistogramDataPoint, 0, len(h.DataPoints))
	for _, dp := range h.DataPoints {
		jdp := jsonHistogramDataPoint{
			Attributes:   toJSONAttrs(dp.Attributes),
			StartTime:    dp.StartTime,
			Time:         dp.Time,
			Count:        dp.Count,
			Sum:          dp.Sum,
			BucketCounts: append(append([]uint64(nil), dp.PositiveBucket.Counts...), dp.NegativeBucket.Counts...),
		}
		if dp.Min != nil {
			jdp.Min = *dp.Min
		}
		if dp.Max != nil {
			jdp.Max = *dp.Max
		}
		dps = append(dps, jdp)
	}
	return jsonHistogram{DataPoints: dps, Temporality: h.Temporality.String()}
}
