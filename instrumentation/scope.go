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

// Package instrumentation provides the identifier of the library producing
// a piece of telemetry, shared by the trace, metric and log providers.
package instrumentation // import "go.opentelemetry.io/otelcore/instrumentation"

import "go.opentelemetry.io/otelcore/attribute"

// Scope represents the instrumentation library: the name, version, schema
// URL, and any attributes describing the code that produced a span, log
// record, or measurement. Two Scopes are Equal iff every field matches;
// equal scopes MUST resolve to the same emitter from the same provider.
type Scope struct {
	Name       string
	Version    string
	SchemaURL  string
	Attributes attribute.Set
}

// Equal reports whether s and other identify the same instrumentation scope.
func (s Scope) Equal(other Scope) bool {
	return s.Name == other.Name &&
		s.Version == other.Version &&
		s.SchemaURL == other.SchemaURL &&
		s.Attributes.Equivalent() == other.Attributes.Equivalent()
}

// key returns a comparable value suitable for use as a map key in a
// provider's scope registry.
func (s Scope) key() string {
	return s.Name + "\x00" + s.Version + "\x00" + s.SchemaURL + "\x00" + s.Attributes.Equivalent()
}

// Key returns the comparable registry key for s.
func (s Scope) Key() string { return s.key() }
