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

package trace // import "go.opentelemetry.io/otelcore/trace"

import (
	"errors"
	"strings"
)

// MaxTraceStateEntries is the maximum number of list-members a TraceState
// may carry.
const MaxTraceStateEntries = 32

// TraceState carries vendor-specific tracing information, as an ordered
// list of key=value members, immutable once built.
type TraceState struct {
	members []member
}

type member struct {
	key, value string
}

// ErrTraceStateFull is returned by Insert when the entry limit is reached.
var ErrTraceStateFull = errors.New("trace: tracestate entry limit reached")

// Get returns the value associated with key, or "" if absent.
func (ts TraceState) Get(key string) string {
	for _, m := range ts.members {
		if m.key == key {
			return m.value
		}
	}
	return ""
}

// Len returns the number of list-members.
func (ts TraceState) Len() int { return len(ts.members) }

// Insert adds or updates key=value, moving it to the front of the list per
// the W3C tracestate update rule, and returns an error without mutating ts
// if this would exceed MaxTraceStateEntries.
func (ts TraceState) Insert(key, value string) (TraceState, error) {
	next := make([]member, 0, len(ts.members)+1)
	next = append(next, member{key, value})
	for _, m := range ts.members {
		if m.key != key {
			next = append(next, m)
		}
	}
	if len(next) > MaxTraceStateEntries {
		return ts, ErrTraceStateFull
	}
	return TraceState{members: next}, nil
}

// Delete removes key if present.
func (ts TraceState) Delete(key string) TraceState {
	next := make([]member, 0, len(ts.members))
	for _, m := range ts.members {
		if m.key != key {
			next = append(next, m)
		}
	}
	return TraceState{members: next}
}

// String renders ts in W3C tracestate wire format.
func (ts TraceState) String() string {
	parts := make([]string, 0, len(ts.members))
	for _, m := range ts.members {
		parts = append(parts, m.key+"="+m.value)
	}
	return strings.Join(parts, ",")
}
