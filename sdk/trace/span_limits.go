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

// Package trace is the SDK implementation of the go.opentelemetry.io/otelcore/trace
// facade: the TracerProvider, Sampler, and span processing pipeline.
package trace // import "go.opentelemetry.io/otelcore/sdk/trace"

// SpanLimits bounds the amount of data a single span may accumulate.
type SpanLimits struct {
	AttributePerSpan     int
	EventPerSpan         int
	LinkPerSpan          int
	AttributePerEvent    int
	AttributePerLink     int
}

// DefaultSpanLimits returns the SDK's default SpanLimits, as specified:
// 128 attributes/events/links per span, 128 attributes per event or link.
func DefaultSpanLimits() SpanLimits {
	return SpanLimits{
		AttributePerSpan:  128,
		EventPerSpan:      128,
		LinkPerSpan:       128,
		AttributePerEvent: 128,
		AttributePerLink:  128,
	}
}
