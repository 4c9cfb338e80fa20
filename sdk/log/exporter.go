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

import "context"

// Exporter transmits log records out of process. Implementations must be
// safe for concurrent use and must return promptly after Shutdown.
type Exporter interface {
	Export(ctx context.Context, records []*Record) error
	Shutdown(ctx context.Context) error
	ForceFlush(ctx context.Context) error
}

// Processor is notified of every emitted log record in provider
// registration order. OnEmit implementations must not retain record past
// the call without calling Record.Clone.
type Processor interface {
	OnEmit(ctx context.Context, record *Record) error
	Shutdown(ctx context.Context) error
	ForceFlush(ctx context.Context) error
}
