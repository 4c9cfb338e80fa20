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

package memory

import (
	"context"
	"sync"

	sdklog "go.opentelemetry.io/otelcore/sdk/log"
)

// LogExporter records every log Record handed to it, cloning each so
// later mutation by the producer can't corrupt the recording.
type LogExporter struct {
	mu       sync.Mutex
	records  []*sdklog.Record
	shutdown bool
}

var _ sdklog.Exporter = (*LogExporter)(nil)

// NewLogExporter returns an empty LogExporter.
func NewLogExporter() *LogExporter { return &LogExporter{} }

func (e *LogExporter) Export(ctx context.Context, records []*sdklog.Record) error {
	e.mu.Lock()
	defer e.mu.Unlock()
	for _, r := range records {
		e.records = append(e.records, r.Clone())
	}
	return nil
}

func (e *LogExporter) ForceFlush(ctx context.Context) error { return nil }

func (e *LogExporter) Shutdown(ctx context.Context) error {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.shutdown = true
	return nil
}

// Records returns a snapshot of every record recorded so far.
func (e *LogExporter) Records() []*sdklog.Record {
	e.mu.Lock()
	defer e.mu.Unlock()
	out := make([]*sdklog.Record, len(e.records))
	copy(out, e.records)
	return out
}
