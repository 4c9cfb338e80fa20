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

package transform

import (
	"go.opentelemetry.io/otelcore/attribute"
	"go.opentelemetry.io/otelcore/resource"
	sdklog "go.opentelemetry.io/otelcore/sdk/log"

	logspb "go.opentelemetry.io/proto/otlp/logs/v1"
)

// LogRecords groups records by (resource, instrumentation scope) pair and
// converts each group into a ResourceLogs, the shape an OTLP log export
// request carries. A LoggerProvider hands every record the same
// *resource.Resource, so grouping by that pointer is equivalent to
// grouping by resource identity.
func LogRecords(records []*sdklog.Record) []*logspb.ResourceLogs {
	order := make([]*resource.Resource, 0)
	byResource := make(map[*resource.Resource]*logspb.ResourceLogs)
	scopesByResource := make(map[*resource.Resource]map[string]*logspb.ScopeLogs)

	for _, r := range records {
		res := r.Resource()
		rl, ok := byResource[res]
		if !ok {
			rl = &logspb.ResourceLogs{Resource: Resource(res)}
			byResource[res] = rl
			scopesByResource[res] = make(map[string]*logspb.ScopeLogs)
			order = append(order, res)
		}

		scope := r.InstrumentationScope()
		sl, ok := scopesByResource[res][scope.Key()]
		if !ok {
			sl = &logspb.ScopeLogs{Scope: Scope(scope), SchemaUrl: scope.SchemaURL}
			scopesByResource[res][scope.Key()] = sl
			rl.ScopeLogs = append(rl.ScopeLogs, sl)
		}
		sl.LogRecords = append(sl.LogRecords, LogRecord(r))
	}

	out := make([]*logspb.ResourceLogs, 0, len(order))
	for _, res := range order {
		out = append(out, byResource[res])
	}
	return out
}

// LogRecord converts a single SDK Record into the OTLP wire representation.
func LogRecord(r *sdklog.Record) *logspb.LogRecord {
	traceID := r.TraceID()
	spanID := r.SpanID()
	out := &logspb.LogRecord{
		TimeUnixNano:         uint64(r.Timestamp().UnixNano()),
		ObservedTimeUnixNano: uint64(r.ObservedTimestamp().UnixNano()),
		SeverityNumber:       logspb.SeverityNumber(r.Severity()),
		SeverityText:         r.SeverityText(),
		Body:                 Value(r.Body()),
		EventName:            r.EventName(),
		Flags:                uint32(r.TraceFlags()),
	}
	r.WalkAttributes(func(kv attribute.KeyValue) bool {
		out.Attributes = append(out.Attributes, KeyValue(kv))
		return true
	})
	if traceID != ([16]byte{}) {
		out.TraceId = traceID[:]
	}
	if spanID != ([8]byte{}) {
		out.SpanId = spanID[:]
	}
	return out
}
