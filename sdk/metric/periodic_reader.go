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
	"os"
	"strconv"
	"sync"
	"sync/atomic"
	"time"

	coremetric "go.opentelemetry.io/otelcore/metric"

	"go.opentelemetry.io/otelcore/internal/global"
	"go.opentelemetry.io/otelcore/sdk/metric/metricdata"
)

const (
	defaultExportInterval = 60 * time.Second
	defaultExportTimeout  = 30 * time.Second
)

// PeriodicReaderOption configures a PeriodicReader.
type PeriodicReaderOption func(*periodicReaderConfig)

type periodicReaderConfig struct {
	interval    time.Duration
	timeout     time.Duration
	temporality TemporalitySelector
}

func newPeriodicReaderConfig(opts []PeriodicReaderOption) periodicReaderConfig {
	cfg := periodicReaderConfig{
		interval:    envDuration("OTEL_METRIC_EXPORT_INTERVAL", defaultExportInterval),
		timeout:     envDuration("OTEL_METRIC_EXPORT_TIMEOUT", defaultExportTimeout),
		temporality: DefaultTemporalitySelector,
	}
	for _, o := range opts {
		o(&cfg)
	}
	return cfg
}

func envDuration(key string, def time.Duration) time.Duration {
	if v, ok := os.LookupEnv(key); ok {
		if n, err := strconv.Atoi(v); err == nil {
			return time.Duration(n) * time.Millisecond
		}
	}
	return def
}

// WithExportInterval overrides OTEL_METRIC_EXPORT_INTERVAL / the 60s default.
func WithExportInterval(d time.Duration) PeriodicReaderOption {
	return func(c *periodicReaderConfig) { c.interval = d }
}

// WithExportTimeout bounds a single collect-and-export cycle.
func WithExportTimeout(d time.Duration) PeriodicReaderOption {
	return func(c *periodicReaderConfig) { c.timeout = d }
}

// WithReaderTemporalitySelector overrides DefaultTemporalitySelector for
// this reader.
func WithReaderTemporalitySelector(s TemporalitySelector) PeriodicReaderOption {
	return func(c *periodicReaderConfig) { c.temporality = s }
}

type periodicSentinel struct {
	done     chan error
	shutdown bool
}

// PeriodicReader collects from its pipeline on a fixed interval and pushes
// the result to an Exporter, mirroring the batch span processor's
// dedicated-goroutine, sentinel-coordinated shutdown/force_flush pattern.
type PeriodicReader struct {
	exporter Exporter
	cfg      periodicReaderConfig
	pipeline *pipeline

	sentinels chan periodicSentinel
	stopWait  sync.WaitGroup

	stopped atomic.Bool
}

// NewPeriodicReader returns a Reader that periodically exports through exp.
func NewPeriodicReader(exp Exporter, opts ...PeriodicReaderOption) *PeriodicReader {
	r := &PeriodicReader{
		exporter:  exp,
		cfg:       newPeriodicReaderConfig(opts),
		sentinels: make(chan periodicSentinel),
	}
	return r
}

func (r *PeriodicReader) register(p *pipeline) {
	r.pipeline = p
	r.stopWait.Add(1)
	go r.run()
}

func (r *PeriodicReader) temporalityFor(kind coremetric.InstrumentKind) metricdata.Temporality {
	return r.cfg.temporality(kind)
}

// Collect forces an immediate, synchronous collection outside the
// scheduled cadence, without touching the background timer.
func (r *PeriodicReader) Collect(ctx context.Context) (metricdata.ResourceMetrics, error) {
	if r.stopped.Load() {
		return metricdata.ResourceMetrics{}, global.ErrAlreadyShutdown
	}
	return r.pipeline.collect(ctx, time.Now()), nil
}

func (r *PeriodicReader) ForceFlush(ctx context.Context) error {
	if r.stopped.Load() {
		return global.ErrAlreadyShutdown
	}
	done := make(chan error, 1)
	select {
	case r.sentinels <- periodicSentinel{done: done}:
	case <-ctx.Done():
		return ctx.Err()
	}
	select {
	case err := <-done:
		return err
	case <-ctx.Done():
		return ctx.Err()
	}
}

func (r *PeriodicReader) Shutdown(ctx context.Context) error {
	if r.stopped.Swap(true) {
		return global.ErrAlreadyShutdown
	}
	done := make(chan error, 1)
	select {
	case r.sentinels <- periodicSentinel{done: done, shutdown: true}:
	case <-ctx.Done():
		return ctx.Err()
	}
	var result error
	select {
	case result = <-done:
	case <-ctx.Done():
		return ctx.Err()
	}
	r.stopWait.Wait()
	return result
}

func (r *PeriodicReader) run() {
	defer r.stopWait.Done()

	timer := time.NewTimer(r.cfg.interval)
	defer timer.Stop()

	export := func() error {
		ctx, cancel := context.WithTimeout(context.Background(), r.cfg.timeout)
		defer cancel()
		rm := r.pipeline.collect(ctx, time.Now())
		if err := r.exporter.Export(ctx, rm); err != nil {
			global.Handle(nil, err)
			return err
		}
		return nil
	}

	for {
		select {
		case <-timer.C:
			_ = export()
			timer.Reset(r.cfg.interval)
		case sn := <-r.sentinels:
			err := export()
			if sn.shutdown {
				if shutdownErr := r.exporter.Shutdown(context.Background()); shutdownErr != nil {
					err = shutdownErr
				}
			}
			sn.done <- err
			if sn.shutdown {
				return
			}
			resetTimer(timer, r.cfg.interval)
		}
	}
}

func resetTimer(t *time.Timer, d time.Duration) {
	if !t.Stop() {
		select {
		case <-t.C:
		default:
		}
	}
	t.Reset(d)
}
