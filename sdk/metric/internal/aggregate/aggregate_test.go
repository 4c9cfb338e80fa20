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

package aggregate

import (
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"go.opentelemetry.io/otelcore/attribute"
	"go.opentelemetry.io/otelcore/sdk/metric/metricdata"
)

func TestSumCardinalityOverflowPreservesTotal(t *testing.T) {
	s := NewSum[int64](true, metricdata.CumulativeTemporality, 3)
	sets := []attribute.Set{
		attribute.NewSet(attribute.String("k", "A")),
		attribute.NewSet(attribute.String("k", "B")),
		attribute.NewSet(attribute.String("k", "C")),
		attribute.NewSet(attribute.String("k", "D")),
	}
	for _, set := range sets {
		s.Aggregate(1, set)
	}

	data := s.Collect(time.Now())
	require.Len(t, data.DataPoints, 4)

	var total int64
	var sawOverflow bool
	for _, dp := range data.DataPoints {
		total += dp.Value
		if dp.Attributes.Equivalent() == OverflowSet.Equivalent() {
			sawOverflow = true
			assert.Equal(t, int64(1), dp.Value)
		}
	}
	assert.True(t, sawOverflow)
	assert.Equal(t, int64(4), total)
}

func TestSumDeltaResetsBetweenCollections(t *testing.T) {
	s := NewSum[int64](true, metricdata.DeltaTemporality, 0)
	set := attribute.NewSet(attribute.String("k", "v"))
	s.Aggregate(5, set)
	first := s.Collect(time.Now())
	require.Len(t, first.DataPoints, 1)
	assert.Equal(t, int64(5), first.DataPoints[0].Value)

	second := s.Collect(time.Now())
	assert.Empty(t, second.DataPoints)
}

func TestHistogramBasicDistribution(t *testing.T) {
	h := NewHistogram[int64](nil, metricdata.CumulativeTemporality, 0)
	set := attribute.NewSet()
	for _, v := range []int64{1, 5, 10, 25, 100} {
		h.Aggregate(v, set)
	}

	data := h.Collect(time.Now())
	require.Len(t, data.DataPoints, 1)
	dp := data.DataPoints[0]
	assert.Equal(t, uint64(5), dp.Count)
	assert.Equal(t, int64(141), dp.Sum)
	require.NotNil(t, dp.Min)
	require.NotNil(t, dp.Max)
	assert.Equal(t, int64(1), *dp.Min)
	assert.Equal(t, int64(100), *dp.Max)

	var bucketTotal uint64
	for _, c := range dp.BucketCounts {
		bucketTotal += c
	}
	assert.Equal(t, dp.Count, bucketTotal)
}

func TestLastValueKeepsMostRecent(t *testing.T) {
	g := NewLastValue[float64](0)
	set := attribute.NewSet(attribute.String("k", "v"))
	g.Aggregate(1.0, set)
	g.Aggregate(2.0, set)

	data := g.Collect(time.Now())
	require.Len(t, data.DataPoints, 1)
	assert.Equal(t, 2.0, data.DataPoints[0].Value)
}

func TestExponentialHistogramPreservesCountAndSum(t *testing.T) {
	h := NewExponentialHistogram[float64](0, metricdata.CumulativeTemporality, 0)
	set := attribute.NewSet()
	values := []float64{0, 1, 2, 4, 8, -1, -2}
	var wantSum float64
	for _, v := range values {
		h.Aggregate(v, set)
		wantSum += v
	}

	data := h.Collect(time.Now())
	require.Len(t, data.DataPoints, 1)
	dp := data.DataPoints[0]
	assert.Equal(t, uint64(len(values)), dp.Count)
	assert.InDelta(t, wantSum, float64(dp.Sum), 1e-9)
	assert.Equal(t, uint64(1), dp.ZeroCount)

	var bucketed uint64
	for _, c := range dp.PositiveBucket.Counts {
		bucketed += c
	}
	for _, c := range dp.NegativeBucket.Counts {
		bucketed += c
	}
	assert.Equal(t, dp.Count-dp.ZeroCount, bucketed)
}

func TestLimiterAdmitsUpToLimitThenOverflows(t *testing.T) {
	l := newLimiter(2)
	sets := make([]attribute.Set, 5)
	for i := range sets {
		sets[i] = attribute.NewSet(attribute.String("k", fmt.Sprintf("v%d", i)))
	}

	admitted := 0
	for _, s := range sets {
		if l.admit(s) {
			admitted++
		}
	}
	assert.Equal(t, 2, admitted)

	l.reset()
	assert.True(t, l.admit(sets[0]))
}
