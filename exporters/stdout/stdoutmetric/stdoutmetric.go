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

// Package stdoutmetric implements a metric Exporter that writes collected
// metrics as JSON, for local debugging and examples.
package stdoutmetric // import "go.opentelemetry.io/otelcore/exporters/stdout/stdoutmetric"

import (
	"context"
	"encoding/json"
	"io"
	"os"
	"sync"

	coremetric "go.opentelemetry.io/otelcore/metric"
	"go.opentelemetry.io/otelcore/sdk/metric/metricdata"
)

// Option configures the exporter.
type Option func(*config)

type config struct {
	writer             io.Writer
	prettyPrint        bool
	temporalitySelector func(coremetric.InstrumentKind) metricdata.Temporality
}

// WithWriter sets the destination. Defaults to os.Stdout.
func WithWriter(w io.Writer) Option { return func(c *config) { c.writer = w } }

// WithPrettyPrint indents each JSON record.
func WithPrettyPrint() Option { return func(c *config) { c.prettyPrint = true } }

// WithTemporalitySelector overrides the default (cumulative for every
// instrument kind) temporality choice.
func WithTemporalitySelector(f func(coremetric.InstrumentKind) metricdata.Temporality) Option {
	return func(c *config) { c.temporalitySelector = f }
}

// Exporter writes ResourceMetrics snapshots to an io.Writer as JSON.
type Exporter struct {
	mu       sync.Mutex
	cfg      config
	shutdown bool
}

// New returns a stdoutmetric Exporter.
func New(opts ...Option) (*Exporter, error) {
	cfg := config{writer: os.Stdout, temporalitySelector: defaultTemporality}
	for _, o := range opts {
		o(&cfg)
	}
	return &Exporter{cfg: cfg}, nil
}

func defaultTemporality(coremetric.InstrumentKind) metricdata.Temporality {
	return metricdata.CumulativeTemporality
}

// Export writes rm to the configured writer.
func (e *Exporter) Export(ctx context.Context, rm metricdata.ResourceMetrics) error {
	e.mu.Lock()
	defer e.mu.Unlock()
	if e.shutdown {
		return nil
	}
	if err := ctx.Err(); err != nil {
		return err
	}
	var (
		b   []byte
		err error
	)
	if e.cfg.prettyPrint {
		b, err = json.MarshalIndent(jsonResourceMetrics(rm), "", "  ")
	} else {
		b, err = json.Marshal(jsonResourceMetrics(rm))
	}
	if err != nil {
		return err
	}
	_, err = e.cfg.writer.Write(append(b, '\n'))
	return err
}

// Temporality reports the temporality this exporter asks readers to use for
// the given instrument kind.
func (e *Exporter) Temporality(kind coremetric.InstrumentKind) metricdata.Temporality {
	return e.cfg.temporalitySelector(kind)
}

// Shutdown marks the exporter closed; subsequent Export calls are no-ops.
func (e *Exporter) Shutdown(context.Context) error {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.shutdown = true
	return nil
}

// ForceFlush is a no-op: Export already writes synchronously.
func (e *Exporter) ForceFlush(context.Context) error { return nil }
