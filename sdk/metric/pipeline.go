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
	"context"
	"sync"
	"time"

	"go.opentelemetry.io/otelcore/attribute"
	"go.opentelemetry.io/otelcore/instrumentation"
	coremetric "go.opentelemetry.io/otelcore/metric"
	"go.opentelemetry.io/otelcore/resource"
	"go.opentelemetry.io/otelcore/sdk/metric/metricdata"
)

// pipeline is one reader's view of every instrument created across every
// Meter: it owns the aggregators that reader's Collect drains.
type pipeline struct {
	resource    *resource.Resource
	views       []View
	temporality func(coremetric.InstrumentKind) metricdata.Temporality

	// runCallbacks invokes every registered observable callback with an
	// Observer bound to this pipeline, just before a collection snapshots
	// it. Set by the owning MeterProvider once at pipeline construction.
	runCallbacks func(ctx context.Context, p *pipeline)

	mu     sync.Mutex
	scopes map[string]*scopeStreams
}

type scopeStreams struct {
	scope   instrumentation.Scope
	streams map[string][]streamHandle
}

// streamHandle is the pipeline's record of one (instrument, matched-view)
// stream: enough to collect it generically regardless of N.
type streamHandle interface {
	name() string
	description() string
	unit() string
	collect(now time.Time) metricdata.Aggregation
}

type typedStream[N int64 | float64] struct {
	streamName, streamDesc, streamUnit string
	attrFilter                         func(attribute.Key) bool
	agg                                aggregator[N]
}

func (s *typedStream[N]) name() string        { return s.streamName }
func (s *typedStream[N]) description() string { return s.streamDesc }
func (s *typedStream[N]) unit() string        { return s.streamUnit }
func (s *typedStream[N]) collect(now time.Time) metricdata.Aggregation {
	return s.agg.Collect(now)
}

func newPipeline(r *resource.Resource, views []View, temporality func(coremetric.InstrumentKind) metricdata.Temporality) *pipeline {
	return &pipeline{
		resource:    r,
		views:       views,
		temporality: temporality,
		scopes:      make(map[string]*scopeStreams),
	}
}

// streamsFor returns the streams an instrument should record into,
// creating them (and the aggregators behind them) on first use. Each
// matching View yields an independent stream; an instrument matched by no
// View gets exactly one stream under its own identity.
func streamsFor[N int64 | float64](p *pipeline, inst Instrument, hint coremetric.InstrumentKind) []*typedStream[N] {
	p.mu.Lock()
	defer p.mu.Unlock()

	ss, ok := p.scopes[inst.Scope.Key()]
	if !ok {
		ss = &scopeStreams{scope: inst.Scope, streams: make(map[string][]streamHandle)}
		p.scopes[inst.Scope.Key()] = ss
	}
	key := inst.Name
	if existing, ok := ss.streams[key]; ok {
		out := make([]*typedStream[N], 0, len(existing))
		for _, h := range existing {
			if t, ok := h.(*typedStream[N]); ok {
				out = append(out, t)
			}
		}
		return out
	}

	var matched []Stream
	for _, v := range p.views {
		if s, ok := v(inst); ok {
			matched = append(matched, s)
		}
	}
	if len(matched) == 0 {
		matched = []Stream{{Name: inst.Name, Description: inst.Description, Unit: inst.Unit}}
	}

	out := make([]*typedStream[N], 0, len(matched))
	handles := make([]streamHandle, 0, len(matched))
	for _, m := range matched {
		if m.AggregationKind == AggregationDrop {
			continue
		}
		var filter func(attribute.Key) bool
		if m.AttributeFilter != nil {
			f := m.AttributeFilter
			filter = func(k attribute.Key) bool { return f(string(k)) }
		}
		ts := &typedStream[N]{
			streamName: m.Name,
			streamDesc: m.Description,
			streamUnit: m.Unit,
			attrFilter: filter,
			agg:        newAggregator[N](m.AggregationKind, hint, p.temporality(hint), m.ExplicitBoundaries, m.CardinalityLimit),
		}
		out = append(out, ts)
		handles = append(handles, ts)
	}
	ss.streams[key] = handles
	return out
}

// collect runs any registered observable callbacks, then drains every
// stream the pipeline has created into a metricdata.ResourceMetrics
// snapshot.
func (p *pipeline) collect(ctx context.Context, now time.Time) metricdata.ResourceMetrics {
	if p.runCallbacks != nil {
		p.runCallbacks(ctx, p)
	}

	p.mu.Lock()
	defer p.mu.Unlock()

	rm := metricdata.ResourceMetrics{Resource: p.resource}
	for _, ss := range p.scopes {
		sm := metricdata.ScopeMetrics{Scope: ss.scope}
		for _, handles := range ss.streams {
			for _, h := range handles {
				sm.Metrics = append(sm.Metrics, metricdata.Metrics{
					Name:        h.name(),
					Description: h.description(),
					Unit:        h.unit(),
					Data:        h.collect(now),
				})
			}
		}
		if len(sm.Metrics) > 0 {
			rm.ScopeMetrics = append(rm.ScopeMetrics, sm)
		}
	}
	return rm
}

// aggregateInto records value against attrs, filtered per-stream when the
// matching View dropped attribute keys.
func aggregateInto[N int64 | float64](streams []*typedStream[N], value N, attrs attribute.Set) {
	for _, s := range streams {
		a := attrs
		if s.attrFilter != nil {
			a = attrs.Filter(s.attrFilter)
		}
		s.agg.Aggregate(value, a)
	}
}
