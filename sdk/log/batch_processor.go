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

package log // import "go.opentelemetry.io/otelcore/sdk/log"

import (
	"context"
	"os"
	"strconv"
	"sync"
	"sync/atomic"
	"time"

	"go.opentelemetry.io/otelcore/internal/global"
)

const (
	defaultMaxQueueSize       = 2048
	defaultMaxExportBatchSize = 512
	defaultScheduleDelay      = 1 * time.Second
	defaultExportTimeout      = 30 * time.Second
)

// BatchProcessorOption configures a BatchProcessor.
type BatchProcessorOption func(*batchProcessorConfig)

type batchProcessorConfig struct {
	maxQueueSize       int
	maxExportBatchSize int
	scheduleDelay      time.Duration
	exportTimeout      time.Duration
}

func newBatchProcessorConfig(opts []BatchProcessorOption) batchProcessorConfig {
	cfg := batchProcessorConfig{
		maxQueueSize:       envInt("OTEL_BLRP_MAX_QUEUE_SIZE", defaultMaxQueueSize),
		maxExportBatchSize: envInt("OTEL_BLRP_MAX_EXPORT_BATCH_SIZE", defaultMaxExportBatchSize),
		scheduleDelay:      envDuration("OTEL_BLRP_SCHEDULE_DELAY", defaultScheduleDelay),
		exportTimeout:      envDuration("OTEL_BLRP_EXPORT_TIMEOUT", defaultExportTimeout),
	}
	for _, o := range opts {
		o(&cfg)
	}
	if cfg.maxExportBatchSize > cfg.maxQueueSize {
		cfg.maxExportBatchSize = cfg.maxQueueSize
	}
	return cfg
}

func envInt(key string, def int) int {
	if v, ok := os.LookupEnv(key); ok {
		if n, err := strconv.Atoi(v); err == nil {
			return n
		}
	}
	return def
}

func envDuration(key string, def time.Duration) time.Duration {
	if v, ok := os.LookupEnv(key); ok {
		if n, err := strconv.Atoi(v); err == nil {
			return time.Duration(n) * time.Millisecond
		}
	}
	return def
}

// WithMaxQueueSize sets the bounded queue's capacity.
func WithMaxQueueSize(n int) BatchProcessorOption {
	return func(c *batchProcessorConfig) { c.maxQueueSize = n }
}

// WithMaxExportBatchSize sets the maximum number of records exported per call.
func WithMaxExportBatchSize(n int) BatchProcessorOption {
	return func(c *batchProcessorConfig) { c.maxExportBatchSize = n }
}

// WithBatchTimeout sets the delay between consecutive exports when the
// buffer isn't yet full.
func WithBatchTimeout(d time.Duration) BatchProcessorOption {
	return func(c *batchProcessorConfig) { c.scheduleDelay = d }
}

// WithExportTimeout bounds a single batch export call.
func WithExportTimeout(d time.Duration) BatchProcessorOption {
	return func(c *batchProcessorConfig) { c.exportTimeout = d }
}

// sentinel is enqueued to request a flush or shutdown at a specific point
// in the queue, so the worker drains everything queued before it.
type sentinel struct {
	done     chan error
	shutdown bool
}

// batchProcessor is the shipping path: a bounded channel between producers
// and a single background goroutine that batches and exports. Producers
// that find the queue full drop the record and never block.
type batchProcessor struct {
	exporter Exporter
	cfg      batchProcessorConfig

	queue     chan *Record
	sentinels chan sentinel
	stopWait  sync.WaitGroup

	dropped atomic.Uint64
	stopped atomic.Bool
}

// NewBatchProcessor returns a Processor that batches records and exports
// them from a dedicated background goroutine.
func NewBatchProcessor(exporter Exporter, opts ...BatchProcessorOption) Processor {
	cfg := newBatchProcessorConfig(opts)
	bp := &batchProcessor{
		exporter:  exporter,
		cfg:       cfg,
		queue:     make(chan *Record, cfg.maxQueueSize),
		sentinels: make(chan sentinel),
	}
	bp.stopWait.Add(1)
	go bp.run()
	return bp
}

func (p *batchProcessor) OnEmit(_ context.Context, r *Record) error {
	if p.stopped.Load() {
		return nil
	}
	select {
	case p.queue <- r.Clone():
	default:
		p.dropped.Add(1)
	}
	return nil
}

// DroppedCount returns the number of records dropped because the queue was
// observed full at enqueue time.
func (p *batchProcessor) DroppedCount() uint64 { return p.dropped.Load() }

func (p *batchProcessor) ForceFlush(ctx context.Context) error {
	if p.stopped.Load() {
		return global.ErrAlreadyShutdown
	}
	done := make(chan error, 1)
	select {
	case p.sentinels <- sentinel{done: done}:
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

func (p *batchProcessor) Shutdown(ctx context.Context) error {
	if p.stopped.Swap(true) {
		return global.ErrAlreadyShutdown
	}
	done := make(chan error, 1)
	select {
	case p.sentinels <- sentinel{done: done, shutdown: true}:
	case <-ctx.Done():
		return ctx.Err()
	}
	var result error
	select {
	case result = <-done:
	case <-ctx.Done():
		return ctx.Err()
	}
	p.stopWait.Wait()
	return result
}

// run is the dedicated background worker: it buffers records up to
// maxExportBatchSize, exporting whenever the buffer fills, the schedule
// delay timer fires, or a sentinel arrives.
func (p *batchProcessor) run() {
	defer p.stopWait.Done()

	buf := make([]*Record, 0, p.cfg.maxExportBatchSize)
	timer := time.NewTimer(p.cfg.scheduleDelay)
	defer timer.Stop()

	flush := func() {
		if len(buf) == 0 {
			return
		}
		ctx, cancel := context.WithTimeout(context.Background(), p.cfg.exportTimeout)
		if err := p.exporter.Export(ctx, buf); err != nil {
			global.Handle(nil, err)
		}
		cancel()
		buf = buf[:0]
	}

	for {
		select {
		case r := <-p.queue:
			buf = append(buf, r)
			if len(buf) >= p.cfg.maxExportBatchSize {
				flush()
				resetTimer(timer, p.cfg.scheduleDelay)
			}
		case <-timer.C:
			flush()
			timer.Reset(p.cfg.scheduleDelay)
		case sn := <-p.sentinels:
			p.drainQueue(&buf, flush)
			flush()
			var err error
			if sn.shutdown {
				err = p.exporter.Shutdown(context.Background())
			}
			sn.done <- err
			if sn.shutdown {
				return
			}
			resetTimer(timer, p.cfg.scheduleDelay)
		}
	}
}

// drainQueue empties whatever is currently queued, without blocking for
// new arrivals, calling flush each time buf reaches maxExportBatchSize, so
// a sentinel flushes exactly what was pending.
func (p *batchProcessor) drainQueue(buf *[]*Record, flush func()) {
	for pending := len(p.queue); pending > 0; pending-- {
		*buf = append(*buf, <-p.queue)
		if len(*buf) >= p.cfg.maxExportBatchSize {
			flush()
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
