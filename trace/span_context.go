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

// TraceFlags represent the 8-bit trace options, the low bit of which is the
// W3C-defined "sampled" flag.
type TraceFlags byte

const FlagsSampled = TraceFlags(0x01)

// IsSampled reports whether the sampled flag is set.
func (f TraceFlags) IsSampled() bool { return f&FlagsSampled == FlagsSampled }

// WithSampled returns a copy of f with the sampled flag set to sampled.
func (f TraceFlags) WithSampled(sampled bool) TraceFlags {
	if sampled {
		return f | FlagsSampled
	}
	return f &^ FlagsSampled
}

// SpanContext contains the identifying information about a span required to
// propagate it, but none of its mutable state.
type SpanContext struct {
	traceID    TraceID
	spanID     SpanID
	traceFlags TraceFlags
	traceState TraceState
	remote     bool
}

// NewSpanContext builds a SpanContext from its components.
func NewSpanContext(cfg SpanContextConfig) SpanContext {
	return SpanContext{
		traceID:    cfg.TraceID,
		spanID:     cfg.SpanID,
		traceFlags: cfg.TraceFlags,
		traceState: cfg.TraceState,
		remote:     cfg.Remote,
	}
}

// SpanContextConfig is the set of fields used by NewSpanContext.
type SpanContextConfig struct {
	TraceID    TraceID
	SpanID     SpanID
	TraceFlags TraceFlags
	TraceState TraceState
	Remote     bool
}

func (sc SpanContext) TraceID() TraceID       { return sc.traceID }
func (sc SpanContext) SpanID() SpanID         { return sc.spanID }
func (sc SpanContext) TraceFlags() TraceFlags { return sc.traceFlags }
func (sc SpanContext) TraceState() TraceState { return sc.traceState }
func (sc SpanContext) IsRemote() bool         { return sc.remote }
func (sc SpanContext) IsSampled() bool        { return sc.traceFlags.IsSampled() }

// IsValid reports whether sc has a valid, non-zero trace id and span id.
func (sc SpanContext) IsValid() bool {
	return sc.traceID.IsValid() && sc.spanID.IsValid()
}

// WithRemote returns a copy of sc with the remote flag set to remote.
func (sc SpanContext) WithRemote(remote bool) SpanContext {
	sc.remote = remote
	return sc
}

// WithTraceState returns a copy of sc carrying ts.
func (sc SpanContext) WithTraceState(ts TraceState) SpanContext {
	sc.traceState = ts
	return sc
}

// Equal reports whether sc and other refer to the same span.
func (sc SpanContext) Equal(other SpanContext) bool {
	return sc.traceID == other.traceID &&
		sc.spanID == other.spanID &&
		sc.traceFlags == other.traceFlags &&
		sc.traceState.String() == other.traceState.String() &&
		sc.remote == other.remote
}
