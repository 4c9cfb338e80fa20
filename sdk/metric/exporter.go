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

import (
	"context"

	coremetric "go.opentelemetry.io/otelcore/metric"
	"go.opentelemetry.io/otelcore/sdk/metric/metricdata"
)

// Exporter is the push side of a metric pipeline: it transmits a
// collection's ResourceMetrics out of process.
type Exporter interface {
	Export(ctx context.Context, metrics metricdata.ResourceMetrics) error
	Temporality(coremetric.InstrumentKind) metricdata.Temporality
	Shutdown(ctx context.Context) error
	ForceFlush(ctx context.Context) error
}
