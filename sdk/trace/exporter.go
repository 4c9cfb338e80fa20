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

	coretrace "go.opentelemetry.io/otelcore/trace"
)

// SpanExporter transmits completed spans out of process. Implementations
// must be safe for concurrent use and must return promptly after Shutdown.
type SpanExporter interface {
	ExportSpans(ctx context.Context, spans []ReadOnlySpan) error
	Shutdown(ctx context.Context) error
}

// SpanProcessor is notified of span lifecycle events in provider
// registration order. OnEnd implementations must not mutate the span.
type SpanProcessor interface {
	OnStart(parent context.Context, s ReadWriteSpan)
	OnEnd(s ReadOnlySpan)
	Shutdown(ctx context.Context) error
	ForceFlush(ctx context.Context) error
}

// ReadWriteSpan is passed to SpanProcessor.OnStart, giving processors a
// chance to enrich a span before any user code runs.
type ReadWriteSpan interface {
	ReadOnlySpan
	coretrace.Span
}
