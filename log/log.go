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

// Package log is the public facade a log-bridge/appender is written
// against: Logger.Emit is the only operation a producer calls. The SDK
// implements Logger; this package only fixes that shape.
package log // import "go.opentelemetry.io/otelcore/log"

import (
	"context"
	"time"

	"go.opentelemetry.io/otelcore/attribute"
)

// Severity is a log record's severity number, 1-24, per the data model.
type Severity int

const (
	SeverityUndefined Severity = 0
	SeverityTrace1    Severity = 1
	SeverityDebug1    Severity = 5
	SeverityInfo1     Severity = 9
	SeverityWarn1     Severity = 13
	SeverityError1    Severity = 17
	SeverityFatal1    Severity = 21
)

// Record is the value a producer builds and hands to Logger.Emit. It
// mirrors the SDK's internal record but is the producer-facing shape: a
// plain struct, not yet carrying inline-attribute storage or an observed
// timestamp default.
type Record struct {
	Timestamp         time.Time
	ObservedTimestamp time.Time
	Severity          Severity
	SeverityText      string
	Body              attribute.Value
	Attributes        []attribute.KeyValue
	TraceID           [16]byte
	SpanID            [8]byte
	TraceFlags        byte
	EventName         string
}

// AddAttributes appends attrs to the record's attribute list.
func (r *Record) AddAttributes(attrs ...attribute.KeyValue) {
	r.Attributes = append(r.Attributes, attrs...)
}

// Logger emits LogRecords for a single instrumentation scope.
type Logger interface {
	// Emit emits record. The SDK fills ObservedTimestamp and trace context
	// fields left unset by the caller.
	Emit(ctx context.Context, record Record)
	// Enabled reports whether any processor is interested in a record with
	// the given severity/event name, letting producers skip record
	// construction entirely. The result MAY vary over time.
	Enabled(ctx context.Context, param EnabledParameters) bool
}

// EnabledParameters is passed to Logger.Enabled.
type EnabledParameters struct {
	Severity  Severity
	EventName string
}

// LoggerProvider supplies Loggers, one per instrumentation scope.
type LoggerProvider interface {
	Logger(name string, opts ...LoggerOption) Logger
}

// LoggerOption configures a Logger obtained from a LoggerProvider.
type LoggerOption interface{ applyLogger(*LoggerConfig) }

// LoggerConfig is built up by a chain of LoggerOptions.
type LoggerConfig struct {
	InstrumentationVersion string
	SchemaURL              string
	Attributes             []attribute.KeyValue
}

type loggerAttrOption []attribute.KeyValue

func (o loggerAttrOption) applyLogger(c *LoggerConfig) { c.Attributes = append(c.Attributes, o...) }

// WithInstrumentationAttributes sets attributes describing the
// instrumentation scope itself.
func WithInstrumentationAttributes(attrs ...attribute.KeyValue) LoggerOption {
	return loggerAttrOption(attrs)
}

type loggerVersionOption string

func (o loggerVersionOption) applyLogger(c *LoggerConfig) { c.InstrumentationVersion = string(o) }

// WithInstrumentationVersion sets the instrumentation scope version.
func WithInstrumentationVersion(v string) LoggerOption { return loggerVersionOption(v) }

type loggerSchemaOption string

func (o loggerSchemaOption) applyLogger(c *LoggerConfig) { c.SchemaURL = string(o) }

// WithSchemaURL sets the instrumentation scope's schema URL.
func WithSchemaURL(url string) LoggerOption { return loggerSchemaOption(url) }

// NewLoggerConfig applies opts and returns the resulting LoggerConfig.
func NewLoggerConfig(opts ...LoggerOption) LoggerConfig {
	var c LoggerConfig
	for _, o := range opts {
		o.applyLogger(&c)
	}
	return c
}

type noopLogger struct{}

func (noopLogger) Emit(context.Context, Record)                     {}
func (noopLogger) Enabled(context.Context, EnabledParameters) bool { return false }

type noopProvider struct{}

func (noopProvider) Logger(string, ...LoggerOption) Logger { return noopLogger{} }

// NewNoopLoggerProvider returns a LoggerProvider whose Loggers discard every
// record.
func NewNoopLoggerProvider() LoggerProvider { return noopProvider{} }
