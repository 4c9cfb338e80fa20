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

// LastValue aggregates Gauge measurements: each attribute set keeps only
// its most recently reported value.
type LastValue[N int64 | float64] struct {
	mu      sync.Mutex
	limiter *limiter
	values  map[string]*gaugeEntry[N]
}

type gaugeEntry[N int64 | float64] struct {
	attrs attribute.Set
	value N
	time  time.Time
}

// NewLastValue returns a LastValue aggregator with the given cardinality
// limit (0 uses DefaultCardinalityLimit).
func NewLastValue[N int64 | float64](cardinalityLimit int) *LastValue[N] {
	return &LastValue[N]{
		limiter: newLimiter(cardinalityLimit),
		values:  make(map[string]*gaugeEntry[N]),
	}
}

// Aggregate records value as the latest observation for attrs.
func (g *LastValue[N]) Aggregate(value N, attrs attribute.Set) {
	if !g.limiter.admit(attrs) {
		attrs = OverflowSet
	}
	key := attrs.Equivalent()
	now := time.Now()

	g.mu.Lock()
	defer g.mu.Unlock()
	g.values[key] = &gaugeEntry[N]{attrs: attrs, value: value, time: now}
}

// Collect produces a metricdata.Gauge snapshot. Gauges have no cumulative
// or delta distinction; the last reported value per attribute set is always
// reported, and the set of known attribute sets persists across collects so
// a gauge that stops being observed keeps reporting its last value.
func (g *LastValue[N]) Collect(now time.Time) metricdata.Gauge[N] {
	g.mu.Lock()
	defer g.mu.Unlock()

	out := metricdata.Gauge[N]{DataPoints: make([]metricdata.DataPoint[N], 0, len(g.values))}
	for _, e := range g.values {
		out.DataPoints = append(out.DataPoints, metricdata.DataPoint[N]{
			Attributes: e.attrs,
			Time:       now,
			Value:      e.value,
		})
	}
	return out
}
