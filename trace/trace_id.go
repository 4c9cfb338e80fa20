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

// Package trace is the public facade the SDK implements: SpanContext, the
// Span/Tracer/TracerProvider interfaces instrumented code is written
// against, and the propagation-facing value types (TraceID, SpanID,
// TraceState). Context propagation codecs and the no-op instrumentation
// traits themselves are out of this repository's scope; only the shape the
// SDK must satisfy lives here.
package trace // import "go.opentelemetry.io/otelcore/trace"

import (
	"encoding/hex"
	"errors"
)

// TraceID is a unique identity of a trace: 16 bytes, 128 bits.
type TraceID [16]byte

// SpanID is a unique identity of a span within a trace: 8 bytes, 64 bits.
type SpanID [8]byte

var (
	nilTraceID TraceID
	nilSpanID  SpanID
)

// IsValid reports whether t is not the all-zero TraceID.
func (t TraceID) IsValid() bool { return t != nilTraceID }

// String returns the lowercase hex encoding of t.
func (t TraceID) String() string { return hex.EncodeToString(t[:]) }

// IsValid reports whether s is not the all-zero SpanID.
func (s SpanID) IsValid() bool { return s != nilSpanID }

// String returns the lowercase hex encoding of s.
func (s SpanID) String() string { return hex.EncodeToString(s[:]) }

// TraceIDFromHex decodes a lowercase-hex TraceID.
func TraceIDFromHex(h string) (TraceID, error) {
	var t TraceID
	if len(h) != 32 {
		return t, errors.New("trace: invalid trace id length")
	}
	if _, err := hex.Decode(t[:], []byte(h)); err != nil {
		return t, err
	}
	return t, nil
}

// SpanIDFromHex decodes a lowercase-hex SpanID.
func SpanIDFromHex(h string) (SpanID, error) {
	var s SpanID
	if len(h) != 16 {
		return s, errors.New("trace: invalid span id length")
	}
	if _, err := hex.Decode(s[:], []byte(h)); err != nil {
		return s, err
	}
	return s, nil
}
