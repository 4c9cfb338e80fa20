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

package aggregate // import "go.opentelemetry.io/otelcore/sdk/metric/internal/aggregate"

import (
	"sort"
	"sync"
	"time"

	"go.opentelemetry.io/otelcore/attribute"
	"go.opentelemetry.io/otelcore/sdk/metric/metricdata"
)

// DefaultHistogramBoundaries are the explicit-bucket boundaries applied to a
// Histogram instrument unless a View overrides them.
var DefaultHistogramBoundaries = []float64{0, 5, 10, 25, 50, 75, 100, 250, 500, 750, 1000, 2500, 5000, 7500, 10000}

// Histogram aggregates Histogram measurements into explicit-bucket
// distributions, one per admitted attribute set.
type Histogram[N int64 | float64] struct {
	mu          sync.Mutex
	limiter     *limiter
	bounds      []float64
	temporality metricdata.Temporality
	start       time.Time
	values      map[string]*histogramEntry[N]
}

type histogramEntry[N int64 | float64] struct {
	attrs  attribute.Set
	count  uint64
	sum    N
	min    N
	max    N
	hasMin bool
	buckets []uint64
}

// NewHistogram returns a Histogram aggregator. An empty bounds slice uses
// DefaultHistogramBoundaries.
func NewHistogram[N int64 | float64](bounds []float64, temporality metricdata.Temporality, cardinalityLimit int) *Histogram[N] {
	if len(bounds) == 0 {
		bounds = DefaultHistogramBoundaries
	}
	sorted := append([]float64(nil), bounds...)
	sort.Float64s(sorted)
	return &Histogram[N]{
		limiter:     newLimiter(cardinalityLimit),
		bounds:      sorted,
		temporality: temporality,
		start:       time.Now(),
		values:      make(map[string]*histogramEntry[N]),
	}
}

// Aggregate folds value into the bucketed distribution for attrs.
func (h *Histogram[N]) Aggregate(value N, attrs attribute.Set) {
	if !h.limiter.admit(attrs) {
		attrs = OverflowSet
	}
	key := attrs.Equivalent()
	idx := bucketIndex(h.bounds, float64(value))

	h.mu.Lock()
	defer h.mu.Unlock()
	e, ok := h.values[key]
	if !ok {
		e = &histogramEntry[N]{attrs: attrs, buckets: make([]uint64, len(h.bounds)+1)}
		h.values[key] = e
	}
	e.count++
	e.sum += value
	e.buckets[idx]++
	if !e.hasMin || value < e.min {
		e.min = value
		e.hasMin = true
	}
	if e.count == 1 || value > e.max {
		e.max = value
	}
}

// bucketIndex returns which of len(bounds)+1 buckets v falls into: bucket i
// holds (bounds[i-1], bounds[i]], with bucket 0 holding (-inf, bounds[0]].
func bucketIndex(bounds []float64, v float64) int {
	return sort.Search(len(bounds), func(i int) bool { return v <= bounds[i] })
}

// Collect produces a metricdata.Histogram snapshot, resetting accumulated
// state under delta temporality.
func (h *Histogram[N]) Collect(now time.Time) metricdata.Histogram[N] {
	h.mu.Lock()
	defer h.mu.Unlock()

	out := metricdata.Histogram[N]{
		Temporality: h.temporality,
		DataPoints:  make([]metricdata.HistogramDataPoint[N], 0, len(h.values)),
	}
	for _, e := range h.values {
		min, max := e.min, e.max
		dp := metricdata.HistogramDataPoint[N]{
			Attributes:   e.attrs,
			StartTime:    h.start,
			Time:         now,
			Count:        e.count,
			Sum:          e.sum,
			Bounds:       append([]float64(nil), h.bounds...),
			BucketCounts: append([]uint64(nil), e.buckets...),
		}
		if e.hasMin {
			dp.Min, dp.Max = &min, &max
		}
		out.DataPoints = append(out.DataPoints, dp)
	}
	if h.temporality == metricdata.DeltaTemporality {
		h.values = make(map[string]*histogramEntry[N])
		h.start = now
		h.limiter.reset()
	}
	return out
}
