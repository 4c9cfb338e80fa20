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
	"sync/atomic"

	"golang.org/x/sync/errgroup"

	"go.opentelemetry.io/otelcore/attribute"
	"go.opentelemetry.io/otelcore/instrumentation"
	"go.opentelemetry.io/otelcore/internal/global"
	coremetric "go.opentelemetry.io/otelcore/metric"
	"go.opentelemetry.io/otelcore/resource"
)

// MeterProvider owns the metric pipeline's resource, registered Views and
// Readers, and hands out scoped Meters. Every Reader gets its own
// pipeline: an instrument recorded once is aggregated independently per
// reader, so two readers may observe the same instrument under different
// temporalities or views.
type MeterProvider struct {
	mu     sync.Mutex
	meters map[string]*meter

	resource  *resource.Resource
	views     []View
	readers   []Reader
	pipelines []*pipeline
	callbacks *callbackRegistry

	shutdown atomic.Bool
}

var _ coremetric.MeterProvider = (*MeterProvider)(nil)

// NewMeterProvider builds a MeterProvider from opts, constructing one
// pipeline per registered Reader.
func NewMeterProvider(opts ...Option) *MeterProvider {
	cfg := meterProviderConfig{resource: resource.Default()}
	for _, o := range opts {
		o.apply(&cfg)
	}

	p := &MeterProvider{
		meters:    make(map[string]*meter),
		resource:  cfg.resource,
		views:     cfg.views,
		readers:   cfg.readers,
		callbacks: newCallbackRegistry(),
	}

	for _, r := range cfg.readers {
		pl := newPipeline(cfg.resource, cfg.views, r.temporalityFor)
		pl.runCallbacks = p.callbacks.run
		r.register(pl)
		p.pipelines = append(p.pipelines, pl)
	}
	return p
}

// Meter returns the Meter for the named instrumentation scope. Equal
// scopes always return the same *meter handle.
func (p *MeterProvider) Meter(name string, opts ...coremetric.MeterOption) coremetric.Meter {
	if p.shutdown.Load() {
		return coremetric.NewNoopMeterProvider().Meter(name)
	}
	cfg := coremetric.NewMeterConfig(opts...)
	scope := instrumentation.Scope{
		Name:       name,
		Version:    cfg.InstrumentationVersion,
		SchemaURL:  cfg.SchemaURL,
		Attributes: attribute.NewSet(cfg.Attributes...),
	}

	p.mu.Lock()
	defer p.mu.Unlock()
	key := scope.Key()
	if m, ok := p.meters[key]; ok {
		return m
	}
	m := &meter{provider: p, scope: scope}
	p.meters[key] = m
	return m
}

// ForceFlush drains every registered Reader, returning the first error
// encountered; every error is logged via internal/global, not just the one
// errgroup surfaces.
func (p *MeterProvider) ForceFlush(ctx context.Context) error {
	g, ctx := errgroup.WithContext(ctx)
	for _, r := range p.readers {
		r := r
		g.Go(func() error { return logAndReturn(r.ForceFlush(ctx)) })
	}
	return g.Wait()
}

// Shutdown is idempotent: the first call shuts down every Reader and
// returns the aggregate result; subsequent calls return ErrAlreadyShutdown.
func (p *MeterProvider) Shutdown(ctx context.Context) error {
	if p.shutdown.Swap(true) {
		return global.ErrAlreadyShutdown
	}
	g, ctx := errgroup.WithContext(ctx)
	for _, r := range p.readers {
		r := r
		g.Go(func() error { return logAndReturn(r.Shutdown(ctx)) })
	}
	return g.Wait()
}

// logAndReturn reports err through internal/global before handing it back to
// errgroup, which keeps only the first non-nil error and discards the rest.
func logAndReturn(err error) error {
	global.Handle(nil, err)
	return err
}
