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
	"path/filepath"

	"go.opentelemetry.io/otelcore/instrumentation"
	coremetric "go.opentelemetry.io/otelcore/metric"
)

// Instrument describes an instrument a View may match against.
type Instrument struct {
	Name        string
	Description string
	Unit        string
	Kind        coremetric.InstrumentKind
	Scope       instrumentation.Scope
}

// Stream is the (possibly transformed) identity and aggregation an
// instrument is collected under once a View has matched it.
type Stream struct {
	Name             string
	Description      string
	Unit             string
	AttributeFilter  func(string) bool
	AggregationKind   AggregationKind
	ExplicitBoundaries []float64
	CardinalityLimit int
}

// AggregationKind overrides the aggregation a matched instrument collects
// under; AggregationDefault keeps the instrument kind's natural aggregation.
type AggregationKind int

const (
	AggregationDefault AggregationKind = iota
	AggregationSum
	AggregationLastValue
	AggregationExplicitHistogram
	AggregationExponentialHistogram
	AggregationDrop
)

// View matches instruments and produces the Stream they should be
// collected under. A View that returns ok=false does not apply; an
// instrument with no matching View keeps its own name, description, unit,
// and default aggregation.
type View func(Instrument) (Stream, bool)

// Criteria selects which instruments a View applies to. An empty field
// matches everything for that dimension.
type Criteria struct {
	Name      string
	Kind      coremetric.InstrumentKind
	ScopeName string
}

func (c Criteria) matches(i Instrument) bool {
	if c.Name != "" {
		if ok, _ := filepath.Match(c.Name, i.Name); !ok {
			return false
		}
	}
	if c.Kind != coremetric.InstrumentKindUndefined && c.Kind != i.Kind {
		return false
	}
	if c.ScopeName != "" && c.ScopeName != i.Scope.Name {
		return false
	}
	return true
}

// NewView returns a View that applies mask to every Instrument matching
// criteria. Zero-value fields in mask leave the corresponding Stream field
// at the instrument's own value.
func NewView(criteria Criteria, mask Stream) View {
	return func(i Instrument) (Stream, bool) {
		if !criteria.matches(i) {
			return Stream{}, false
		}
		s := Stream{
			Name:               i.Name,
			Description:        i.Description,
			Unit:               i.Unit,
			CardinalityLimit:   mask.CardinalityLimit,
			AggregationKind:    mask.AggregationKind,
			ExplicitBoundaries: mask.ExplicitBoundaries,
			AttributeFilter:    mask.AttributeFilter,
		}
		if mask.Name != "" {
			s.Name = mask.Name
		}
		if mask.Description != "" {
			s.Description = mask.Description
		}
		if mask.Unit != "" {
			s.Unit = mask.Unit
		}
		return s, true
	}
}
