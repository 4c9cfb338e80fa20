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

import (
	"hash/fnv"
	"sort"
	"strconv"
)

// Set is an immutable, unordered-by-construction collection of KeyValues,
// used wherever attribute-set *identity* matters (metric streams, resources).
// Two Sets built from the same key/value pairs, in any order, compare equal
// and hash equal.
//
// The zero value is an empty Set.
type Set struct {
	kvs         []KeyValue // sorted ascending by Key, de-duplicated (last wins)
	equivalent  string     // exact identity key, safe for use as a Go map key
	fingerprint uint64     // fast, collision-prone hash for sharded lookups
}

// NewSet constructs a Set from kvs, dropping invalid (empty-key) attributes
// and resolving duplicate keys in favor of the last occurrence, matching the
// "unordered mapping" semantics of the data model.
func NewSet(kvs ...KeyValue) Set {
	filtered := make([]KeyValue, 0, len(kvs))
	for _, kv := range kvs {
		if kv.Valid() {
			filtered = append(filtered, kv)
		}
	}
	sort.SliceStable(filtered, func(i, j int) bool { return filtered[i].Key < filtered[j].Key })
	// Resolve duplicates, keeping the last value for each key, in place.
	out := filtered[:0]
	for i, kv := range filtered {
		if i+1 < len(filtered) && filtered[i+1].Key == kv.Key {
			continue
		}
		out = append(out, kv)
	}
	s := Set{kvs: out}
	s.equivalent, s.fingerprint = encode(out)
	return s
}

// Len returns the number of distinct key/value pairs in the Set.
func (s Set) Len() int { return len(s.kvs) }

// ToSlice returns the Set's key/value pairs in sorted-by-key order.
func (s Set) ToSlice() []KeyValue {
	out := make([]KeyValue, len(s.kvs))
	copy(out, s.kvs)
	return out
}

// Value looks up the value for key, reporting whether it was present.
func (s Set) Value(k Key) (Value, bool) {
	i := sort.Search(len(s.kvs), func(i int) bool { return s.kvs[i].Key >= k })
	if i < len(s.kvs) && s.kvs[i].Key == k {
		return s.kvs[i].Value, true
	}
	return Value{}, false
}

// Equivalent is a comparable, map-key-safe token identifying this Set's
// contents exactly. Two Sets are equal iff their Equivalent values are equal.
func (s Set) Equivalent() string { return s.equivalent }

// Fingerprint is a fast (collision-prone) hash of the Set's contents, for use
// as a shard/bucket selector in the metric engine's hot path. Callers MUST
// still confirm identity via Equivalent before treating a lookup as a hit.
func (s Set) Fingerprint() uint64 { return s.fingerprint }

// Filter returns the subset of kvs for which keep returns true, used by
// metric views to project away dropped attribute keys before aggregation.
func (s Set) Filter(keep func(Key) bool) Set {
	filtered := make([]KeyValue, 0, len(s.kvs))
	for _, kv := range s.kvs {
		if keep(kv.Key) {
			filtered = append(filtered, kv)
		}
	}
	out := Set{kvs: filtered}
	out.equivalent, out.fingerprint = encode(filtered)
	return out
}

func encode(kvs []KeyValue) (string, uint64) {
	h := fnv.New64a()
	buf := make([]byte, 0, 64)
	full := make([]byte, 0, 64*len(kvs))
	for _, kv := range kvs {
		buf = buf[:0]
		buf = strconv.AppendInt(buf, int64(len(kv.Key)), 10)
		buf = append(buf, ':')
		buf = append(buf, kv.Key...)
		buf = append(buf, '=')
		buf = appendValue(buf, kv.Value)
		buf = append(buf, ';')
		_, _ = h.Write(buf)
		full = strconv.AppendInt(full, int64(len(buf)), 10)
		full = append(full, ':')
		full = append(full, buf...)
	}
	return string(full), h.Sum64()
}

func appendValue(buf []byte, v Value) []byte {
	buf = append(buf, byte(v.Type()))
	buf = append(buf, ':')
	switch v.Type() {
	case STRING:
		return append(buf, v.AsString()...)
	case BOOL:
		return strconv.AppendBool(buf, v.AsBool())
	case INT64:
		return strconv.AppendInt(buf, v.AsInt64(), 10)
	case FLOAT64:
		return strconv.AppendFloat(buf, v.AsFloat64(), 'g', -1, 64)
	case STRINGSLICE:
		for _, e := range v.AsStringSlice() {
			buf = strconv.AppendInt(buf, int64(len(e)), 10)
			buf = append(buf, ':')
			buf = append(buf, e...)
			buf = append(buf, ',')
		}
		return buf
	case BOOLSLICE:
		for _, e := range v.AsBoolSlice() {
			buf = strconv.AppendBool(buf, e)
			buf = append(buf, ',')
		}
		return buf
	case INT64SLICE:
		for _, e := range v.AsInt64Slice() {
			buf = strconv.AppendInt(buf, e, 10)
			buf = append(buf, ',')
		}
		return buf
	case FLOAT64SLICE:
		for _, e := range v.AsFloat64Slice() {
			buf = strconv.AppendFloat(buf, e, 'g', -1, 64)
			buf = append(buf, ',')
		}
		return buf
	default:
		return buf
	}
}
