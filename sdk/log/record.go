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

import (
	"time"

	"go.opentelemetry.io/otelcore/attribute"
	"go.opentelemetry.io/otelcore/instrumentation"
	corelog "go.opentelemetry.io/otelcore/log"
	"go.opentelemetry.io/otelcore/resource"
)

// inlineAttrs is the number of attributes a Record stores without
// allocating: the first 5 attributes on a log record are by far the
// common case, and storing them inline avoids a slice allocation on every
// emitted record, the single biggest hot-path allocation the log pipeline
// can save (mirrors the upstream SDK's LogRecord representation).
const inlineAttrs = 5

// Record is the SDK's log record: the mutable value passed through
// Processor.OnEmit, and the same *Record type an Exporter receives.
// Processors that want to retain a Record past the call must call Clone.
type Record struct {
	timestamp         time.Time
	observedTimestamp time.Time
	severity          corelog.Severity
	severityText      string
	body              attribute.Value
	eventName         string

	front      [inlineAttrs]attribute.KeyValue
	frontCount int
	overflow   []attribute.KeyValue
	dropped    int

	traceID    [16]byte
	spanID     [8]byte
	traceFlags byte

	scope    instrumentation.Scope
	resource *resource.Resource
}

// newRecord builds a Record from a producer-facing log.Record, filling
// ObservedTimestamp if the producer left it unset.
func newRecord(r corelog.Record, scope instrumentation.Scope, res *resource.Resource) *Record {
	observed := r.ObservedTimestamp
	if observed.IsZero() {
		observed = time.Now()
	}
	rec := &Record{
		timestamp:         r.Timestamp,
		observedTimestamp: observed,
		severity:          r.Severity,
		severityText:      r.SeverityText,
		body:              r.Body,
		eventName:         r.EventName,
		traceID:           r.TraceID,
		spanID:            r.SpanID,
		traceFlags:        r.TraceFlags,
		scope:             scope,
		resource:          res,
	}
	rec.AddAttributes(r.Attributes...)
	return rec
}

// AddAttributes appends attrs, filling the inline slots first.
func (r *Record) AddAttributes(attrs ...attribute.KeyValue) {
	for _, a := range attrs {
		if !a.Valid() {
			continue
		}
		if r.frontCount < inlineAttrs {
			r.front[r.frontCount] = a
			r.frontCount++
			continue
		}
		r.overflow = append(r.overflow, a)
	}
}

// SetAttributes replaces every attribute currently on the record.
func (r *Record) SetAttributes(attrs ...attribute.KeyValue) {
	r.frontCount = 0
	r.overflow = nil
	r.AddAttributes(attrs...)
}

// AttributesLen returns the total attribute count, inline plus overflow.
func (r *Record) AttributesLen() int { return r.frontCount + len(r.overflow) }

// WalkAttributes calls f for every attribute in insertion order, stopping
// early if f returns false.
func (r *Record) WalkAttributes(f func(attribute.KeyValue) bool) {
	for i := 0; i < r.frontCount; i++ {
		if !f(r.front[i]) {
			return
		}
	}
	for _, a := range r.overflow {
		if !f(a) {
			return
		}
	}
}

// Attributes returns every attribute on the record as a single slice. This
// allocates; exporters on the hot path should prefer WalkAttributes.
func (r *Record) Attributes() []attribute.KeyValue {
	out := make([]attribute.KeyValue, 0, r.AttributesLen())
	r.WalkAttributes(func(kv attribute.KeyValue) bool {
		out = append(out, kv)
		return true
	})
	return out
}

func (r *Record) Timestamp() time.Time         { return r.timestamp }
func (r *Record) ObservedTimestamp() time.Time { return r.observedTimestamp }
func (r *Record) Severity() corelog.Severity   { return r.severity }
func (r *Record) SeverityText() string         { return r.severityText }
func (r *Record) Body() attribute.Value        { return r.body }
func (r *Record) EventName() string            { return r.eventName }
func (r *Record) TraceID() [16]byte            { return r.traceID }
func (r *Record) SpanID() [8]byte              { return r.spanID }
func (r *Record) TraceFlags() byte             { return r.traceFlags }
func (r *Record) InstrumentationScope() instrumentation.Scope { return r.scope }
func (r *Record) Resource() *resource.Resource                { return r.resource }

// Clone returns a deep copy, safe for a processor to retain past the
// OnEmit call that handed it the original.
func (r *Record) Clone() *Record {
	clone := *r
	clone.overflow = append([]attribute.KeyValue(nil), r.overflow...)
	return &clone
}
