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

// Package attribute provides the key/value pairs attached to spans, log
// records, events, links and metric measurements.
package attribute // import "go.opentelemetry.io/otelcore/attribute"

import (
	"fmt"
	"strconv"
)

// Type describes the type of a Value's underlying data.
type Type int

const (
	INVALID Type = iota
	BOOL
	INT64
	FLOAT64
	STRING
	BOOLSLICE
	INT64SLICE
	FLOAT64SLICE
	STRINGSLICE
)

// Value represents the value part of a key/value pair. Only one of the
// fields is meaningful, selected by Type.
type Value struct {
	vtype    Type
	numeric  uint64
	stringly string
	slice    interface{}
}

// BoolValue creates a BOOL Value.
func BoolValue(v bool) Value {
	var n uint64
	if v {
		n = 1
	}
	return Value{vtype: BOOL, numeric: n}
}

// Int64Value creates an INT64 Value.
func Int64Value(v int64) Value {
	return Value{vtype: INT64, numeric: uint64(v)}
}

// IntValue creates an INT64 Value from an int.
func IntValue(v int) Value { return Int64Value(int64(v)) }

// Float64Value creates a FLOAT64 Value.
func Float64Value(v float64) Value {
	return Value{vtype: FLOAT64, numeric: floatBits(v)}
}

// StringValue creates a STRING Value.
func StringValue(v string) Value {
	return Value{vtype: STRING, stringly: v}
}

// BoolSliceValue creates a BOOLSLICE Value.
func BoolSliceValue(v []bool) Value {
	cp := append([]bool(nil), v...)
	return Value{vtype: BOOLSLICE, slice: cp}
}

// Int64SliceValue creates an INT64SLICE Value.
func Int64SliceValue(v []int64) Value {
	cp := append([]int64(nil), v...)
	return Value{vtype: INT64SLICE, slice: cp}
}

// Float64SliceValue creates a FLOAT64SLICE Value.
func Float64SliceValue(v []float64) Value {
	cp := append([]float64(nil), v...)
	return Value{vtype: FLOAT64SLICE, slice: cp}
}

// StringSliceValue creates a STRINGSLICE Value.
func StringSliceValue(v []string) Value {
	cp := append([]string(nil), v...)
	return Value{vtype: STRINGSLICE, slice: cp}
}

// Type returns the type of value.
func (v Value) Type() Type { return v.vtype }

func (v Value) AsBool() bool          { return v.numeric == 1 }
func (v Value) AsInt64() int64        { return int64(v.numeric) }
func (v Value) AsFloat64() float64    { return bitsToFloat(v.numeric) }
func (v Value) AsString() string      { return v.stringly }
func (v Value) AsBoolSlice() []bool   { return v.slice.([]bool) }
func (v Value) AsInt64Slice() []int64 { return v.slice.([]int64) }
func (v Value) AsFloat64Slice() []float64 {
	return v.slice.([]float64)
}
func (v Value) AsStringSlice() []string { return v.slice.([]string) }

// AsInterface returns the value held as the equivalent Go interface{}.
func (v Value) AsInterface() interface{} {
	switch v.vtype {
	case BOOL:
		return v.AsBool()
	case INT64:
		return v.AsInt64()
	case FLOAT64:
		return v.AsFloat64()
	case STRING:
		return v.AsString()
	case BOOLSLICE:
		return v.AsBoolSlice()
	case INT64SLICE:
		return v.AsInt64Slice()
	case FLOAT64SLICE:
		return v.AsFloat64Slice()
	case STRINGSLICE:
		return v.AsStringSlice()
	default:
		return nil
	}
}

// Emit returns a string representation of the value suitable for exporters
// that serialize attribute values as text (e.g. the stdout exporters).
func (v Value) Emit() string {
	switch v.vtype {
	case BOOL:
		return strconv.FormatBool(v.AsBool())
	case INT64:
		return strconv.FormatInt(v.AsInt64(), 10)
	case FLOAT64:
		return strconv.FormatFloat(v.AsFloat64(), 'g', -1, 64)
	case STRING:
		return v.stringly
	default:
		return fmt.Sprint(v.AsInterface())
	}
}
