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

// Package otlplog is the transport-agnostic half of the OTLP log
// exporter: it holds the sdklog.Exporter adapter that otlploggrpc and
// otlploghttp each plug a Client into. There is no upstream name clash
// to avoid here (logs only reached OTLP GA after traces and metrics), so
// this package exists purely to complete the three-signal OTLP surface.
package otlplog // import "go.opentelemetry.io/otelcore/exporters/otlp/otlplog"

import (
	"context"

	logspb "go.opentelemetry.io/proto/otlp/logs/v1"
)

// Client is the transport seam between Exporter and a concrete wire
// protocol (gRPC or HTTP).
type Client interface {
	Start(ctx context.Context) error
	Stop(ctx context.Context) error
	UploadLogs(ctx context.Context, protoLogs []*logspb.ResourceLogs) error
}
