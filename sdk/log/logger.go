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

	"go.opentelemetry.io/otelcore/instrumentation"
	"go.opentelemetry.io/otelcore/internal/global"
	corelog "go.opentelemetry.io/otelcore/log"
	coretrace "go.opentelemetry.io/otelcore/trace"
)

// logger is the SDK's corelog.Logger: it turns a producer-facing
// log.Record into an SDK Record and offers it to every processor
// registered on the provider, in registration order.
type logger struct {
	provider *LoggerProvider
	scope    instrumentation.Scope
}

var _ corelog.Logger = (*logger)(nil)

// Emit fills in ObservedTimestamp and any unset trace context from ctx,
// then calls OnEmit on every processor in order. A processor's error is
// handled via internal/global and does not stop the remaining processors
// from seeing the record.
func (l *logger) Emit(ctx context.Context, r corelog.Record) {
	if l.provider.shutdown.Load() || global.IsSelfTelemetrySuppressed(ctx) {
		return
	}
	if r.TraceID == ([16]byte{}) && r.SpanID == ([8]byte{}) {
		if sc := coretrace.SpanContextFromContext(ctx); sc.IsValid() {
			r.TraceID = sc.TraceID()
			r.SpanID = sc.SpanID()
			r.TraceFlags = byte(sc.TraceFlags())
		}
	}
	rec := newRecord(r, l.scope, l.provider.resource)
	for _, p := range l.provider.processors {
		if err := p.OnEmit(ctx, rec); err != nil {
			global.Handle(nil, err)
		}
	}
}

// Enabled reports whether the provider has any processor at all. The SDK
// does not otherwise filter by severity; that's left to producers and any
// severity-aware processor.
func (l *logger) Enabled(context.Context, corelog.EnabledParameters) bool {
	return !l.provider.shutdown.Load() && len(l.provider.processors) > 0
}
