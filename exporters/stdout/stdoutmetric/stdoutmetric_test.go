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

package stdoutmetric

import (
	"bytes"
	"context"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	sdkmetric "go.opentelemetry.io/otelcore/sdk/metric"
)

func TestExportWritesJSONPerCollection(t *testing.T) {
	var buf bytes.Buffer
	exp, err := New(WithWriter(&buf))
	require.NoError(t, err)

	reader := sdkmetric.NewManualReader()
	provider := sdkmetric.NewMeterProvider(sdkmetric.WithReader(reader))
	counter, err := provider.Meter("test").Int64Counter("requests")
	require.NoError(t, err)
	counter.Add(context.Background(), 5)

	rm, err := reader.Collect(context.Background())
	require.NoError(t, err)
	require.NoError(t, exp.Export(context.Background(), rm))

	var out map[string]interface{}
	require.NoError(t, json.Unmarshal(bytes.TrimRight(buf.Bytes(), "\n"), &out))
	assert.Contains(t, out, "ScopeMetrics")
}

func TestExportAfterShutdownIsNoop(t *testing.T) {
	var buf bytes.Buffer
	exp, err := New(WithWriter(&buf))
	require.NoError(t, err)
	require.NoError(t, exp.Shutdown(context.Background()))

	reader := sdkmetric.NewManualReader()
	_ = sdkmetric.NewMeterProvider(sdkmetric.WithReader(reader))
	rm, err := reader.Collect(context.Background())
	require.NoError(t, err)
	require.NoError(t, exp.Export(context.Background(), rm))

	assert.Empty(t, buf.Bytes())
}
