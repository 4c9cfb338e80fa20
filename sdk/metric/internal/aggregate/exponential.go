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
	"math"
	"sync"
	"time"

	"go.opentelemetry.io/otelcore/attribute"
	"go.opentelemetry.io/otelcore/sdk/metric/metricdata"
)

const (
	maxExpScale = 20
	minExpScale = -10
)

// ExponentialHistogram aggregates measurements into base-2 exponential
// buckets. A point starts at maxExpScale and halves its resolution (lowers
// the scale, rescaling existing buckets) when the configured bucket budget
// would otherwise be exceeded; the scale is never raised again.
type ExponentialHistogram[N int64 | float64] struct {
	mu          sync.Mutex
	limiter     *limiter
	maxSize     int
	temporality metricdata.Temporality
	start       time.Time
	values      map[string]*expEntry[N]
}

type expEntry[N int64 | float64] struct {
	attrs     attribute.Set
	count     uint64
	zeroCount uint64
	sum       N
	min, max  N
	hasMin    bool
	scale     int32
	pos, neg  expBuckets
}

type expBuckets struct {
	offset int32
	counts []uint64
}

// NewExponentialHistogram returns an ExponentialHistogram aggregator.
// maxSize bounds the number of buckets kept per side (default 160, matching
// the upstream OTel SDK's default).
func NewExponentialHistogram[N int64 | float64](maxSize int, temporality metricdata.Temporality, cardinalityLimit int) *ExponentialHistogram[N] {
	if maxSize <= 0 {
		maxSize = 160
	}
	return &ExponentialHistogram[N]{
		limiter:     newLimiter(cardinalityLimit),
		maxSize:     maxSize,
		temporality: temporality,
		start:       time.Now(),
		values:      make(map[string]*expEntry[N]),
	}
}

// Aggregate folds value into the exponential distribution for attrs.
func (h *ExponentialHistogram[N]) Aggregate(value N, attrs attribute.Set) {
	if !h.limiter.admit(attrs) {
		attrs = OverflowSet
	}
	key := attrs.Equivalent()

	h.mu.Lock()
	defer h.mu.Unlock()
	e, ok := h.values[key]
	if !ok {
		e = &expEntry[N]{attrs: attrs, scale: maxExpScale}
		h.values[key] = e
	}
	e.count++
	e.sum += value
	if !e.hasMin || value < e.min {
		e.min = value
		e.hasMin = true
	}
	if e.count == 1 || value > e.max {
		e.max = value
	}

	f := float64(value)
	if f == 0 {
		e.zeroCount++
		return
	}
	bucket := &e.pos
	if f < 0 {
		bucket = &e.neg
		f = -f
	}
	index := expIndex(f, e.scale)
	for !bucket.fits(index, h.maxSize) && e.scale > minExpScale {
		e.scale--
		e.pos.downscale()
		e.neg.downscale()
		index = expIndex(f, e.scale)
	}
	bucket.increment(index)
}

// expIndex returns the bucket index for v at the given scale: the base is
// 2^(2^-scale), and index(v) = ceil(log_base(v)) - 1.
func expIndex(v float64, scale int32) int32 {
	return int32(math.Ceil(math.Ldexp(math.Log2(v), int(scale))) - 1)
}

func (b *expBuckets) fits(index int32, maxSize int) bool {
	if len(b.counts) == 0 {
		return true
	}
	lo, hi := b.offset, b.offset+int32(len(b.counts))-1
	if index < lo {
		lo = index
	}
	if index > hi {
		hi = index
	}
	return int(hi-lo)+1 <= maxSize
}

func (b *expBuckets) increment(index int32) {
	if len(b.counts) == 0 {
		b.offset = index
		b.counts = []uint64{1}
		return
	}
	if index < b.offset {
		grown := make([]uint64, len(b.counts)+int(b.offset-index))
		copy(grown[b.offset-index:], b.counts)
		b.counts = grown
		b.offset = index
	} else if i := int(index - b.offset); i >= len(b.counts) {
		grown := make([]uint64, i+1)
		copy(grown, b.counts)
		b.counts = grown
	}
	b.counts[index-b.offset]++
}

func (b *expBuckets) downscale() {
	if len(b.counts) == 0 {
		return
	}
	newOffset := b.offset / 2
	merged := make([]uint64, len(b.counts)/2+2)
	for i, c := range b.counts {
		idx := (b.offset+int32(i))/2 - newOffset
		merged[idx] += c
	}
	b.offset = newOffset
	b.counts = merged
}

// Collect produces a metricdata.ExponentialHistogram snapshot, resetting
// accumulated state under delta temporality.
func (h *ExponentialHistogram[N]) Collect(now time.Time) metricdata.ExponentialHistogram[N] {
	h.mu.Lock()
	defer h.mu.Unlock()

	out := metricdata.ExponentialHistogram[N]{
		Temporality: h.temporality,
		DataPoints:  make([]metricdata.ExponentialHistogramDataPoint[N], 0, len(h.values)),
	}
	for _, e := range h.values {
		min, max := e.min, e.max
		dp := metricdata.ExponentialHistogramDataPoint[N]{
			Attributes: e.attrs,
			StartTime:  h.start,
			Time:       now,
			Count:      e.count,
			Sum:        e.sum,
			Scale:      e.scale,
			ZeroCount:  e.zeroCount,
			PositiveBucket: metricdata.ExponentialBucket{
				Offset: e.pos.offset,
				Counts: append([]uint64(nil), e.pos.counts...),
			},
			NegativeBucket: metricdata.ExponentialBucket{
				Offset: e.neg.offset,
				Counts: append([]uint64(nil), e.neg.counts...),
			},
		}
		if e.hasMin {
			dp.Min, dp.Max = &min, &max
		}
		out.DataPoints = append(out.DataPoints, dp)
	}
	if h.temporality == metricdata.DeltaTemporality {
		h.values = make(map[string]*expEntry[N])
		h.start = now
		h.limiter.reset()
	}
	return out
}
