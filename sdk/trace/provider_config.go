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

import "go.opentelemetry.io/otelcore/resource"

type tracerProviderConfig struct {
	processors  []SpanProcessor
	resource    *resource.Resource
	sampler     Sampler
	idGenerator IDGenerator
	spanLimits  SpanLimits
}

// TracerProviderOption configures a TracerProvider.
type TracerProviderOption interface {
	apply(*tracerProviderConfig)
}

type tracerProviderOptionFunc func(*tracerProviderConfig)

func (f tracerProviderOptionFunc) apply(cfg *tracerProviderConfig) { f(cfg) }

// WithSpanProcessor appends sp to the provider's processor chain. Spans are
// offered to processors in the order they were added.
func WithSpanProcessor(sp SpanProcessor) TracerProviderOption {
	return tracerProviderOptionFunc(func(cfg *tracerProviderConfig) {
		cfg.processors = append(cfg.processors, sp)
	})
}

// WithResource sets the Resource describing the entity producing spans.
func WithResource(r *resource.Resource) TracerProviderOption {
	return tracerProviderOptionFunc(func(cfg *tracerProviderConfig) {
		cfg.resource = r
	})
}

// WithSampler sets the root Sampler consulted for every new span.
func WithSampler(s Sampler) TracerProviderOption {
	return tracerProviderOptionFunc(func(cfg *tracerProviderConfig) {
		cfg.sampler = s
	})
}

// WithIDGenerator overrides the default crypto/rand-backed IDGenerator.
func WithIDGenerator(g IDGenerator) TracerProviderOption {
	return tracerProviderOptionFunc(func(cfg *tracerProviderConfig) {
		cfg.idGenerator = g
	})
}

// WithSpanLimits overrides the default per-span limits.
func WithSpanLimits(l SpanLimits) TracerProviderOption {
	return tracerProviderOptionFunc(func(cfg *tracerProviderConfig) {
		cfg.spanLimits = l
	})
}
