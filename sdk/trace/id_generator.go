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

package trace // import "go.opentelemetry.io/otelcore/sdk/trace"

import (
	"context"
	"crypto/rand"
	"encoding/binary"
	"sync"

	coretrace "go.opentelemetry.io/otelcore/trace"
)

// IDGenerator assigns trace and span ids to new spans.
type IDGenerator interface {
	NewIDs(ctx context.Context) (coretrace.TraceID, coretrace.SpanID)
	NewSpanID(ctx context.Context, traceID coretrace.TraceID) coretrace.SpanID
}

// randomIDGenerator generates non-zero, cryptographically random ids, the
// default IDGenerator.
type randomIDGenerator struct {
	mu sync.Mutex
}

func defaultIDGenerator() IDGenerator { return &randomIDGenerator{} }

func (g *randomIDGenerator) NewSpanID(context.Context, coretrace.TraceID) coretrace.SpanID {
	g.mu.Lock()
	defer g.mu.Unlock()
	var sid coretrace.SpanID
	for {
		_, _ = rand.Read(sid[:])
		if sid.IsValid() {
			return sid
		}
	}
}

func (g *randomIDGenerator) NewIDs(context.Context) (coretrace.TraceID, coretrace.SpanID) {
	g.mu.Lock()
	defer g.mu.Unlock()
	var tid coretrace.TraceID
	var sid coretrace.SpanID
	for {
		_, _ = rand.Read(tid[:])
		_, _ = rand.Read(sid[:])
		if tid.IsValid() && sid.IsValid() {
			return tid, sid
		}
	}
}

// traceIDUint64 returns the low 64 bits of a TraceID, used by
// TraceIDRatioBased for its deterministic sampling decision.
func traceIDUint64(t coretrace.TraceID) uint64 {
	return binary.BigEndian.Uint64(t[8:])
}
