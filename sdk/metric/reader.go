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

	coremetric "go.opentelemetry.io/otelcore/metric"
	"go.opentelemetry.io/otelcore/sdk/metric/metricdata"
)

// Reader is the pull side of the metric pipeline: it is registered with
// exactly one MeterProvider and drives Collect either on demand (a
// ManualReader, typically paired with a pull exporter) or on a schedule (a
// PeriodicReader, which pushes to a push exporter).
type Reader interface {
	register(p *pipeline)
	temporalityFor(kind coremetric.InstrumentKind) metricdata.Temporality
	Collect(ctx context.Context) (metricdata.ResourceMetrics, error)
	Shutdown(ctx context.Context) error
	ForceFlush(ctx context.Context) error
}

// TemporalitySelector chooses the temporality a Reader requests for a
// given instrument kind. DefaultTemporalitySelector reports cumulative for
// every kind, matching spec default.
type TemporalitySelector func(coremetric.InstrumentKind) metricdata.Temporality

// DefaultTemporalitySelector always selects cumulative temporality.
func DefaultTemporalitySelector(coremetric.InstrumentKind) metricdata.Temporality {
	return metricdata.CumulativeTemporality
}
