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

package resource // import "go.opentelemetry.io/otelcore/resource"

import "go.opentelemetry.io/otelcore/attribute"

type config struct {
	attrs            []attribute.KeyValue
	detectors        []Detector
	schemaURL        string
	withTelemetrySDK bool
}

// Option configures a call to New.
type Option interface {
	apply(*config)
}

type optionFunc func(*config)

func (f optionFunc) apply(c *config) { f(c) }

// WithAttributes adds attrs to the resource. Among WithAttributes calls, a
// later value for the same key wins. New merges these attributes after
// every Detector's result, so they override detected attributes whatever
// the order of the options.
func WithAttributes(attrs ...attribute.KeyValue) Option {
	return optionFunc(func(c *config) { c.attrs = append(c.attrs, attrs...) })
}

// WithSchemaURL sets the schema URL for the resource.
func WithSchemaURL(schemaURL string) Option {
	return optionFunc(func(c *config) { c.schemaURL = schemaURL })
}

// WithDetectors adds ds to the list of Detectors that run, in order, to
// build the resource.
func WithDetectors(ds ...Detector) Option {
	return optionFunc(func(c *config) { c.detectors = append(c.detectors, ds...) })
}

// WithTelemetrySDK adds the mandatory telemetry.sdk.{name,version,language}
// attributes identifying this SDK.
func WithTelemetrySDK() Option {
	return optionFunc(func(c *config) { c.withTelemetrySDK = true })
}

// WithFromEnv adds the FromEnv detector, which reads OTEL_RESOURCE_ATTRIBUTES
// and OTEL_SERVICE_NAME.
func WithFromEnv() Option {
	return WithDetectors(FromEnv{})
}
