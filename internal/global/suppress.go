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

package global // import "go.opentelemetry.io/otelcore/internal/global"

import "context"

type suppressKey struct{}

// ContextWithoutSelfTelemetry marks ctx as carrying the SDK's own outbound
// activity (the OTLP exporters stamp it on the context passed to their
// gRPC/HTTP transport before every export call). sdk/trace's Tracer.Start,
// sdk/log's Logger.Emit and sdk/metric's synchronous instruments all check
// IsSelfTelemetrySuppressed and no-op when it's set, so an instrumented
// transport wired into an exporter's own client cannot feed spans, logs or
// measurements for the export call back into the pipeline it is draining.
func ContextWithoutSelfTelemetry(ctx context.Context) context.Context {
	return context.WithValue(ctx, suppressKey{}, true)
}

// IsSelfTelemetrySuppressed reports whether ctx was marked by
// ContextWithoutSelfTelemetry. External libraries that do not propagate ctx
// across their own async boundaries will not preserve this flag; that is a
// known limitation, not a bug in this check.
func IsSelfTelemetrySuppressed(ctx context.Context) bool {
	v, _ := ctx.Value(suppressKey{}).(bool)
	return v
}
