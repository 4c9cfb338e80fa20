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
	"sync/atomic"
	"time"

	"go.opentelemetry.io/otelcore/internal/global"
	coremetric "go.opentelemetry.io/otelcore/metric"
	"go.opentelemetry.io/otelcore/sdk/metric/metricdata"
)

// ManualReader is a Reader that only collects when Collect is called
// directly, for pull-model exporters (a Prometheus scrape handler, a test).
type ManualReader struct {
	pipeline    *pipeline
	temporality TemporalitySelector
	shutdown    atomic.Bool
}

// ManualReaderOption configures a ManualReader.
type ManualReaderOption func(*ManualReader)

// WithTemporalitySelector overrides DefaultTemporalitySelector.
func WithTemporalitySelector(s TemporalitySelector) ManualReaderOption {
	return func(r *ManualReader) { r.temporality = s }
}

// NewManualReader returns a Reader that only produces data on an explicit
// Collect call.
func NewManualReader(opts ...ManualReaderOption) *ManualReader {
	r := &ManualReader{temporality: DefaultTemporalitySelector}
	for _, o := range opts {
		o(r)
	}
	return r
}

func (r *ManualReader) register(p *pipeline) { r.pipeline = p }

func (r *ManualReader) temporalityFor(kind coremetric.InstrumentKind) metricdata.Temporality {
	return r.temporality(kind)
}

// Collect returns the current state of every instrument this reader's
// provider has created.
func (r *ManualReader) Collect(ctx context.Context) (metricdata.ResourceMetrics, error) {
	if r.shutdown.Load() {
		return metricdata.ResourceMetrics{}, global.ErrAlreadyShutdown
	}
	return r.pipeline.collect(ctx, time.Now()), nil
}

// ForceFlush is a no-op: ManualReader has no buffered state beyond the
// pipeline's own aggregators, which Collect always reads live.
func (r *ManualReader) ForceFlush(context.Context) error { return nil }

// Shutdown marks the reader unusable; subsequent Collect calls return
// ErrAlreadyShutdown.
func (r *ManualReader) Shutdown(context.Context) error {
	if r.shutdown.Swap(true) {
		return global.ErrAlreadyShutdown
	}
	return nil
}
