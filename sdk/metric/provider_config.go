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

import "go.opentelemetry.io/otelcore/resource"

type meterProviderConfig struct {
	resource *resource.Resource
	views    []View
	readers  []Reader
}

// Option configures a MeterProvider.
type Option interface {
	apply(*meterProviderConfig)
}

type optionFunc func(*meterProviderConfig)

func (f optionFunc) apply(cfg *meterProviderConfig) { f(cfg) }

// WithResource sets the Resource describing the entity producing metrics.
func WithResource(r *resource.Resource) Option {
	return optionFunc(func(cfg *meterProviderConfig) { cfg.resource = r })
}

// WithView registers v; every matched instrument is collected under the
// Stream v returns instead of its own identity and default aggregation.
// Multiple Views may match the same instrument, producing multiple streams.
func WithView(v View) Option {
	return optionFunc(func(cfg *meterProviderConfig) { cfg.views = append(cfg.views, v) })
}

// WithReader registers r; r gets its own pipeline, independent of every
// other registered Reader.
func WithReader(r Reader) Option {
	return optionFunc(func(cfg *meterProviderConfig) { cfg.readers = append(cfg.readers, r) })
}
