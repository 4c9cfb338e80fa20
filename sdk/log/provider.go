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
	"sync"
	"sync/atomic"

	"golang.org/x/sync/errgroup"

	"go.opentelemetry.io/otelcore/attribute"
	"go.opentelemetry.io/otelcore/instrumentation"
	"go.opentelemetry.io/otelcore/internal/global"
	corelog "go.opentelemetry.io/otelcore/log"
	"go.opentelemetry.io/otelcore/resource"
)

// LoggerProvider owns the resource and ordered processor chain shared by
// every Logger it hands out.
type LoggerProvider struct {
	mu      sync.Mutex
	loggers map[string]*logger

	processors []Processor
	resource   *resource.Resource

	shutdown atomic.Bool
}

var _ corelog.LoggerProvider = (*LoggerProvider)(nil)

// NewLoggerProvider builds a LoggerProvider from opts.
func NewLoggerProvider(opts ...LoggerProviderOption) *LoggerProvider {
	cfg := loggerProviderConfig{resource: resource.Default()}
	for _, o := range opts {
		o.apply(&cfg)
	}
	return &LoggerProvider{
		loggers:    make(map[string]*logger),
		processors: cfg.processors,
		resource:   cfg.resource,
	}
}

// Logger returns the Logger for the named instrumentation scope. Equal
// scopes always return the same handle.
func (p *LoggerProvider) Logger(name string, opts ...corelog.LoggerOption) corelog.Logger {
	if p.shutdown.Load() {
		return corelog.NewNoopLoggerProvider().Logger(name)
	}
	cfg := corelog.NewLoggerConfig(opts...)
	scope := instrumentation.Scope{
		Name:       name,
		Version:    cfg.InstrumentationVersion,
		SchemaURL:  cfg.SchemaURL,
		Attributes: attribute.NewSet(cfg.Attributes...),
	}

	p.mu.Lock()
	defer p.mu.Unlock()
	key := scope.Key()
	if l, ok := p.loggers[key]; ok {
		return l
	}
	l := &logger{provider: p, scope: scope}
	p.loggers[key] = l
	return l
}

// ForceFlush drains every registered Processor, returning the first error
// encountered; every error is logged via internal/global, not just the one
// errgroup surfaces.
func (p *LoggerProvider) ForceFlush(ctx context.Context) error {
	g, ctx := errgroup.WithContext(ctx)
	for _, proc := range p.processors {
		proc := proc
		g.Go(func() error { return logAndReturn(proc.ForceFlush(ctx)) })
	}
	return g.Wait()
}

// Shutdown is idempotent: the first call shuts down every processor;
// subsequent calls return ErrAlreadyShutdown.
func (p *LoggerProvider) Shutdown(ctx context.Context) error {
	if p.shutdown.Swap(true) {
		return global.ErrAlreadyShutdown
	}
	g, ctx := errgroup.WithContext(ctx)
	for _, proc := range p.processors {
		proc := proc
		g.Go(func() error { return logAndReturn(proc.Shutdown(ctx)) })
	}
	return g.Wait()
}

// logAndReturn reports err through internal/global before handing it back to
// errgroup, which keeps only the first non-nil error and discards the rest.
func logAndReturn(err error) error {
	global.Handle(nil, err)
	return err
}
