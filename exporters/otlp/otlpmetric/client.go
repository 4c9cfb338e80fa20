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

// Package otlpmetric is the transport-agnostic half of the OTLP metric
// exporter: it holds the sdkmetric.Exporter adapter that otlpmetricgrpc
// and otlpmetrichttp each plug a Client into.
package otlpmetric // import "go.opentelemetry.io/otelcore/exporters/otlp/otlpmetric"

import (
	"context"

	metricpb "go.opentelemetry.io/proto/otlp/metrics/v1"
)

// Client is the transport seam between Exporter and a concrete wire
// protocol (gRPC or HTTP).
type Client interface {
	Start(ctx context.Context) error
	Stop(ctx context.Context) error
	UploadMetrics(ctx context.Context, protoMetrics *metricpb.ResourceMetrics) error
}
