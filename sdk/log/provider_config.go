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

import "go.opentelemetry.io/otelcore/resource"

type loggerProviderConfig struct {
	processors []Processor
	resource   *resource.Resource
}

// LoggerProviderOption configures a LoggerProvider.
type LoggerProviderOption interface {
	apply(*loggerProviderConfig)
}

type loggerProviderOptionFunc func(*loggerProviderConfig)

func (f loggerProviderOptionFunc) apply(cfg *loggerProviderConfig) { f(cfg) }

// WithProcessor appends p to the provider's processor chain. Records are
// offered to processors in the order they were added.
func WithProcessor(p Processor) LoggerProviderOption {
	return loggerProviderOptionFunc(func(cfg *loggerProviderConfig) {
		cfg.processors = append(cfg.processors, p)
	})
}

// WithResource sets the Resource describing the entity producing logs.
func WithResource(r *resource.Resource) LoggerProviderOption {
	return loggerProviderOptionFunc(func(cfg *loggerProviderConfig) {
		cfg.resource = r
	})
}
