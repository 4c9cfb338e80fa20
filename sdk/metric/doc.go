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

// Package metric implements the metric.MeterProvider and metric.Meter
// interfaces.
//
// A MeterProvider owns one pipeline per registered Reader: the same
// instrument recorded once is aggregated independently for each Reader,
// so two Readers may observe it under different temporalities or Views.
// Views transform an instrument's name, unit, description or aggregation
// before its pipeline creates a stream for it; an instrument matched by no
// View keeps its own identity and a kind-appropriate default aggregation.
//
// The aggregation engine itself lives in internal/aggregate: one type per
// aggregation kind (sum, last-value, explicit-histogram, exponential
// histogram), each cardinality-limited and keyed by attribute.Set identity.
//
// Readers pull (ManualReader, typically paired with a pull exporter) or
// push on a schedule (PeriodicReader, which exports to an Exporter on a
// fixed interval from a dedicated goroutine, mirroring how sdk/trace's
// batch span processor drains its queue).
package metric // import "go.opentelemetry.io/otelcore/sdk/metric"
