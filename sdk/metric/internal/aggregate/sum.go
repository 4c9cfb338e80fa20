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
	"sync"
	"time"

	"go.opentelemetry.io/otelcore/attribute"
	"go.opentelemetry.io/otelcore/sdk/metric/metricdata"
)

// Sum aggregates Counter/UpDownCounter measurements into one data point per
// admitted attribute set, folding rejected sets into a singleton overflow
// point. The zero value is not usable; construct with NewSum.
type Sum[N int64 | float64] struct {
	mu          sync.Mutex
	limiter     *limiter
	monotonic   bool
	temporality metricdata.Temporality
	start       time.Time
	values      map[string]*sumEntry[N]
}

type sumEntry[N int64 | float64] struct {
	attrs attribute.Set
	value N
}

// NewSum returns a Sum aggregator with the given cardinality limit (0 uses
// DefaultCardinalityLimit).
func NewSum[N int64 | float64](monotonic bool, temporality metricdata.Temporality, cardinalityLimit int) *Sum[N] {
	return &Sum[N]{
		limiter:     newLimiter(cardinalityLimit),
		monotonic:   monotonic,
		temporality: temporality,
		start:       time.Now(),
		values:      make(map[string]*sumEntry[N]),
	}
}

// Aggregate folds value into the data point for attrs, or into the overflow
// point if attrs is new and the cardinality limit has been reached.
func (s *Sum[N]) Aggregate(value N, attrs attribute.Set) {
	if !s.limiter.admit(attrs) {
		attrs = OverflowSet
	}
	key := attrs.Equivalent()

	s.mu.Lock()
	defer s.mu.Unlock()
	e, ok := s.values[key]
	if !ok {
		e = &sumEntry[N]{attrs: attrs}
		s.values[key] = e
	}
	e.value += value
}

// Collect produces a metricdata.Sum snapshot of the current state. For
// delta temporality, the accumulated state and cardinality budget are reset
// so the next collection window starts empty.
func (s *Sum[N]) Collect(now time.Time) metricdata.Sum[N] {
	s.mu.Lock()
	defer s.mu.Unlock()

	out := metricdata.Sum[N]{
		Temporality: s.temporality,
		IsMonotonic: s.monotonic,
		DataPoints:  make([]metricdata.DataPoint[N], 0, len(s.values)),
	}
	for _, e := range s.values {
		out.DataPoints = append(out.DataPoints, metricdata.DataPoint[N]{
			Attributes: e.attrs,
			StartTime:  s.start,
			Time:       now,
			Value:      e.value,
		})
	}
	if s.temporality == metricdata.DeltaTemporality {
		s.values = make(map[string]*sumEntry[N])
		s.start = now
		s.limiter.reset()
	}
	return out
}
