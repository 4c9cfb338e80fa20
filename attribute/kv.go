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

package attribute // import "go.opentelemetry.io/otelcore/attribute"

// Key is the first part of a key/value attribute pair.
type Key string

// KeyValue holds a key and value pair.
type KeyValue struct {
	Key   Key
	Value Value
}

// Valid reports whether the key is non-empty, per the data model's rule
// that empty-string keys are invalid and must be dropped.
func (kv KeyValue) Valid() bool { return kv.Key != "" }

func (k Key) Bool(v bool) KeyValue            { return KeyValue{Key: k, Value: BoolValue(v)} }
func (k Key) Int64(v int64) KeyValue          { return KeyValue{Key: k, Value: Int64Value(v)} }
func (k Key) Int(v int) KeyValue              { return KeyValue{Key: k, Value: IntValue(v)} }
func (k Key) Float64(v float64) KeyValue      { return KeyValue{Key: k, Value: Float64Value(v)} }
func (k Key) String(v string) KeyValue        { return KeyValue{Key: k, Value: StringValue(v)} }
func (k Key) BoolSlice(v []bool) KeyValue     { return KeyValue{Key: k, Value: BoolSliceValue(v)} }
func (k Key) Int64Slice(v []int64) KeyValue   { return KeyValue{Key: k, Value: Int64SliceValue(v)} }
func (k Key) Float64Slice(v []float64) KeyValue {
	return KeyValue{Key: k, Value: Float64SliceValue(v)}
}
func (k Key) StringSlice(v []string) KeyValue {
	return KeyValue{Key: k, Value: StringSliceValue(v)}
}

// Bool creates a KeyValue with a BOOL Value type.
func Bool(k string, v bool) KeyValue { return Key(k).Bool(v) }

// Int64 creates a KeyValue with an INT64 Value type.
func Int64(k string, v int64) KeyValue { return Key(k).Int64(v) }

// Int creates a KeyValue with an INT64 Value type from an int.
func Int(k string, v int) KeyValue { return Key(k).Int(v) }

// Float64 creates a KeyValue with a FLOAT64 Value type.
func Float64(k string, v float64) KeyValue { return Key(k).Float64(v) }

// String creates a KeyValue with a STRING Value type.
func String(k string, v string) KeyValue { return Key(k).String(v) }

// BoolSlice creates a KeyValue with a BOOLSLICE Value type.
func BoolSlice(k string, v []bool) KeyValue { return Key(k).BoolSlice(v) }

// Int64Slice creates a KeyValue with an INT64SLICE Value type.
func Int64Slice(k string, v []int64) KeyValue { return Key(k).Int64Slice(v) }

// Float64Slice creates a KeyValue with a FLOAT64SLICE Value type.
func Float64Slice(k string, v []float64) KeyValue { return Key(k).Float64Slice(v) }

// StringSlice creates a KeyValue with a STRINGSLICE Value type.
func StringSlice(k string, v []string) KeyValue { return Key(k).StringSlice(v) }
