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

// Package aggregate is the metric engine: it maps (instrument, attribute
// set) to an aggregation point under a per-instrument cardinality limit,
// folding excess distinct sets into a single overflow point.
package aggregate // import "go.opentelemetry.io/otelcore/sdk/metric/internal/aggregate"

import (
	"sync"
	"sync/atomic"

	"go.opentelemetry.io/otelcore/attribute"
)

// DefaultCardinalityLimit is applied to every instrument unless a View
// overrides it.
const DefaultCardinalityLimit = 2000

// OverflowAttribute is set on the synthetic data point that absorbs
// measurements once an instrument's cardinality limit is reached.
var OverflowAttribute = attribute.Bool("otel.metric.overflow", true)

// OverflowSet is the attribute.Set carried by the overflow data point.
var OverflowSet = attribute.NewSet(OverflowAttribute)

// limiter tracks the distinct attribute sets seen for one instrument and
// decides whether a newly observed set is admitted or must fold into
// overflow. The seen-set is striped by attribute.Set.Fingerprint so
// measurements against attribute sets that land in different shards never
// contend on the same lock; only the shared admitted-count is atomic.
type limiter struct {
	limit   int
	count   atomic.Int64
	shards  [shardCount]struct {
		mu   sync.Mutex
		seen map[string]struct{}
	}
}

func newLimiter(limit int) *limiter {
	if limit <= 0 {
		limit = DefaultCardinalityLimit
	}
	l := &limiter{limit: limit}
	for i := range l.shards {
		l.shards[i].seen = make(map[string]struct{})
	}
	return l
}

// admit reports whether set is (already, or newly) within the cardinality
// limit. Once the limit is reached, previously admitted sets remain
// admitted; only new sets are rejected to overflow.
func (l *limiter) admit(set attribute.Set) bool {
	shard := &l.shards[shardFor(set)]
	key := set.Equivalent()

	shard.mu.Lock()
	defer shard.mu.Unlock()
	if _, ok := shard.seen[key]; ok {
		return true
	}
	if l.count.Load() >= int64(l.limit) {
		return false
	}
	shard.seen[key] = struct{}{}
	l.count.Add(1)
	return true
}

// reset clears the set of admitted attribute sets, called after a delta
// collection cycle so the next cycle gets a fresh cardinality budget.
func (l *limiter) reset() {
	for i := range l.shards {
		l.shards[i].mu.Lock()
		l.shards[i].seen = make(map[string]struct{})
		l.shards[i].mu.Unlock()
	}
	l.count.Store(0)
}
