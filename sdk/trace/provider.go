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

package trace // import "go.opentelemetry.io/otelcore/sdk/trace"

import (
	"context"
	"sync"
	"sync/atomic"

	"golang.org/x/sync/errgroup"

	"go.opentelemetry.io/otelcore/attribute"
	"go.opentelemetry.io/otelcore/instrumentation"
	"go.opentelemetry.io/otelcore/internal/global"
	"go.opentelemetry.io/otelcore/resource"
	coretrace "go.opentelemetry.io/otelcore/trace"
)

// TracerProvider owns the trace pipeline's resource, sampler, span limits
// and ordered processor chain, and hands out scoped Tracers.
type TracerProvider struct {
	mu        sync.Mutex
	tracers   map[string]*tracer
	processors []SpanProcessor

	resource    *resource.Resource
	sampler     Sampler
	idGenerator IDGenerator
	spanLimits  SpanLimits

	shutdown atomic.Bool
}

var _ coretrace.TracerProvider = (*TracerProvider)(nil)

// NewTracerProvider builds a TracerProvider from opts.
func NewTracerProvider(opts ...TracerProviderOption) *TracerProvider {
	cfg := tracerProviderConfig{
		resource:    resource.Default(),
		sampler:     ParentBased(AlwaysSample()),
		idGenerator: defaultIDGenerator(),
		spanLimits:  DefaultSpanLimits(),
	}
	for _, o := range opts {
		o.apply(&cfg)
	}
	return &TracerProvider{
		tracers:     make(map[string]*tracer),
		processors:  cfg.processors,
		resource:    cfg.resource,
		sampler:     cfg.sampler,
		idGenerator: cfg.idGenerator,
		spanLimits:  cfg.spanLimits,
	}
}

// Tracer returns the Tracer for the named instrumentation scope. Equal
// scopes always return the same *tracer handle.
func (p *TracerProvider) Tracer(name string, opts ...coretrace.TracerOption) coretrace.Tracer {
	if p.shutdown.Load() {
		return coretrace.NewNoopTracerProvider().Tracer(name)
	}
	cfg := coretrace.NewTracerConfig(opts...)
	scope := instrumentation.Scope{
		Name:       name,
		Version:    cfg.InstrumentationVersion,
		SchemaURL:  cfg.SchemaURL,
		Attributes: attribute.NewSet(cfg.Attributes...),
	}

	p.mu.Lock()
	defer p.mu.Unlock()
	key := scope.Key()
	if t, ok := p.tracers[key]; ok {
		return t
	}
	t := &tracer{provider: p, scope: scope}
	p.tracers[key] = t
	return t
}

func (p *TracerProvider) spanProcessors() []SpanProcessor {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.processors
}

// ForceFlush drains every registered SpanProcessor, returning the first
// error encountered; every error, including the one returned, is logged via
// internal/global so a flush failure in a processor other than the one
// errgroup happens to surface first is never silently dropped.
func (p *TracerProvider) ForceFlush(ctx context.Context) error {
	procs := p.spanProcessors()
	g, ctx := errgroup.WithContext(ctx)
	for _, sp := range procs {
		sp := sp
		g.Go(func() error { return logAndReturn(sp.ForceFlush(ctx)) })
	}
	return g.Wait()
}

// Shutdown is idempotent: the first call shuts down every processor and
// returns the aggregate result; subsequent calls return ErrAlreadyShutdown.
func (p *TracerProvider) Shutdown(ctx context.Context) error {
	if p.shutdown.Swap(true) {
		return global.ErrAlreadyShutdown
	}
	procs := p.spanProcessors()
	g, ctx := errgroup.WithContext(ctx)
	for _, sp := range procs {
		sp := sp
		g.Go(func() error { return logAndReturn(sp.Shutdown(ctx)) })
	}
	return g.Wait()
}

// logAndReturn reports err through internal/global before handing it back to
// errgroup, which keeps only the first non-nil error and silently discards
// the rest: this is what makes "others logged" true at the provider rather
// than relying on each processor to log its own failure.
func logAndReturn(err error) error {
	global.Handle(nil, err)
	return err
}
