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
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"go.opentelemetry.io/otelcore/attribute"
	"go.opentelemetry.io/otelcore/instrumentation"
	"go.opentelemetry.io/otelcore/resource"

	commonpb "go.opentelemetry.io/proto/otlp/common/v1"
)

func TestValueConvertsEveryType(t *testing.T) {
	cases := []struct {
		name string
		v    attribute.Value
		want func(*testing.T, *commonpb.AnyValue)
	}{
		{"bool", attribute.BoolValue(true), func(t *testing.T, v *commonpb.AnyValue) {
			assert.Equal(t, true, v.GetBoolValue())
		}},
		{"int64", attribute.Int64Value(7), func(t *testing.T, v *commonpb.AnyValue) {
			assert.Equal(t, int64(7), v.GetIntValue())
		}},
		{"float64", attribute.Float64Value(1.5), func(t *testing.T, v *commonpb.AnyValue) {
			assert.Equal(t, 1.5, v.GetDoubleValue())
		}},
		{"string", attribute.StringValue("x"), func(t *testing.T, v *commonpb.AnyValue) {
			assert.Equal(t, "x", v.GetStringValue())
		}},
		{"string slice", attribute.StringSliceValue([]string{"a", "b"}), func(t *testing.T, v *commonpb.AnyValue) {
			require.NotNil(t, v.GetArrayValue())
			assert.Len(t, v.GetArrayValue().Values, 2)
			assert.Equal(t, "a", v.GetArrayValue().Values[0].GetStringValue())
		}},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			tc.want(t, Value(tc.v))
		})
	}
}

func TestKeyValuesPreservesOrder(t *testing.T) {
	kvs := []attribute.KeyValue{attribute.String("a", "1"), attribute.Int("b", 2)}
	got := KeyValues(kvs)
	require.Len(t, got, 2)
	assert.Equal(t, "a", got[0].Key)
	assert.Equal(t, "b", got[1].Key)
}

func TestResourceNilIsEmpty(t *testing.T) {
	pb := Resource(nil)
	require.NotNil(t, pb)
	assert.Empty(t, pb.Attributes)
}

func TestResourceCarriesAttributes(t *testing.T) {
	res := resource.NewSchemaless(attribute.String("service.name", "svc"))
	pb := Resource(res)
	require.Len(t, pb.Attributes, 1)
	assert.Equal(t, "service.name", pb.Attributes[0].Key)
	assert.Equal(t, "svc", pb.Attributes[0].Value.GetStringValue())
}

func TestScopeCarriesNameAndVersion(t *testing.T) {
	s := instrumentation.Scope{Name: "test-lib", Version: "v1.2.3"}
	pb := Scope(s)
	assert.Equal(t, "test-lib", pb.Name)
	assert.Equal(t, "v1.2.3", pb.Version)
}
