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

// Package resource provides the immutable description of the entity
// producing telemetry, built once per provider from a chain of Detectors.
package resource // import "go.opentelemetry.io/otelcore/resource"

import (
	"context"
	"errors"

	"go.opentelemetry.io/otelcore/attribute"
)

const (
	sdkNameKey     = attribute.Key("telemetry.sdk.name")
	sdkLanguageKey = attribute.Key("telemetry.sdk.language")
	sdkVersionKey  = attribute.Key("telemetry.sdk.version")

	// SDKName is this SDK's telemetry.sdk.name value.
	SDKName = "otelcore"
	// SDKLanguage is this SDK's telemetry.sdk.language value.
	SDKLanguage = "go"
	// SDKVersion is this SDK's telemetry.sdk.version value.
	SDKVersion = "1.0.0"
)

// Resource describes the entity producing telemetry, as an immutable,
// unordered set of attributes plus an optional schema URL.
type Resource struct {
	attrs     attribute.Set
	schemaURL string
}

// Empty returns an instance of Resource with no attributes.
func Empty() *Resource { return &Resource{attrs: attribute.NewSet()} }

// NewSchemaless creates a resource from attrs with no associated schema URL.
// Attributes earlier in the list are overridden by attributes later in the
// list, matching attribute.NewSet's last-wins rule.
func NewSchemaless(attrs ...attribute.KeyValue) *Resource {
	return &Resource{attrs: attribute.NewSet(attrs...)}
}

// New creates a Resource by applying opts in order and running any
// registered Detectors, merging their results with "later overrides
// earlier" precedence, then merging the WithAttributes attributes over
// them, then folding in the mandatory telemetry.sdk.* attributes.
func New(ctx context.Context, opts ...Option) (*Resource, error) {
	cfg := config{}
	for _, o := range opts {
		o.apply(&cfg)
	}

	res := Empty()
	var errs []error
	for _, d := range cfg.detectors {
		r, err := d.Detect(ctx)
		if err != nil {
			errs = append(errs, err)
			continue
		}
		res = Merge(res, r)
	}
	if cfg.schemaURL != "" {
		res.schemaURL = cfg.schemaURL
	}
	if len(cfg.attrs) > 0 {
		res = Merge(res, NewSchemaless(cfg.attrs...))
	}
	if cfg.withTelemetrySDK {
		res = Merge(res, NewSchemaless(
			sdkNameKey.String(SDKName),
			sdkLanguageKey.String(SDKLanguage),
			sdkVersionKey.String(SDKVersion),
		))
	}
	if len(errs) > 0 {
		return res, errors.Join(errs...)
	}
	return res, nil
}

// Default returns a Resource describing this SDK, with the mandatory
// telemetry.sdk.* attributes and any OTEL_RESOURCE_ATTRIBUTES/
// OTEL_SERVICE_NAME entries from the environment.
func Default() *Resource {
	res, _ := New(context.Background(), WithTelemetrySDK(), WithFromEnv())
	return res
}

// Merge combines a and b, with attributes in b taking precedence over a.
// The resulting schema URL is b's if set, else a's.
func Merge(a, b *Resource) *Resource {
	if a == nil {
		a = Empty()
	}
	if b == nil {
		b = Empty()
	}
	merged := append(a.attrs.ToSlice(), b.attrs.ToSlice()...)
	schema := a.schemaURL
	if b.schemaURL != "" {
		schema = b.schemaURL
	}
	return &Resource{attrs: attribute.NewSet(merged...), schemaURL: schema}
}

// Attributes returns the Resource's key/value pairs sorted by key.
func (r *Resource) Attributes() []attribute.KeyValue {
	if r == nil {
		return nil
	}
	return r.attrs.ToSlice()
}

// Set returns the Resource's attributes as an attribute.Set.
func (r *Resource) Set() attribute.Set {
	if r == nil {
		return attribute.NewSet()
	}
	return r.attrs
}

// SchemaURL returns the schema URL associated with the Resource, if any.
func (r *Resource) SchemaURL() string {
	if r == nil {
		return ""
	}
	return r.schemaURL
}

// Equal reports whether r and other describe the same entity.
func (r *Resource) Equal(other *Resource) bool {
	if r == nil || other == nil {
		return r == other
	}
	return r.attrs.Equivalent() == other.attrs.Equivalent() && r.schemaURL == other.schemaURL
}

// Detector detects resource information and returns it as a Resource.
type Detector interface {
	Detect(ctx context.Context) (*Resource, error)
}
