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

package otlpconfig

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestNewDefaultConfigUsesDefaultEndpointWithoutEnv(t *testing.T) {
	cfg := NewDefaultConfig(SignalTraces, DefaultGRPCEndpoint)
	assert.Equal(t, DefaultGRPCEndpoint, cfg.Endpoint)
	assert.False(t, cfg.Insecure)
}

func TestNewDefaultConfigPrefersSignalSpecificEndpoint(t *testing.T) {
	t.Setenv("OTEL_EXPORTER_OTLP_ENDPOINT", "http://generic:4317")
	t.Setenv("OTEL_EXPORTER_OTLP_TRACES_ENDPOINT", "http://traces-only:4317")

	cfg := NewDefaultConfig(SignalTraces, DefaultGRPCEndpoint)
	assert.Equal(t, "traces-only:4317", cfg.Endpoint)
	assert.True(t, cfg.Insecure)

	metricsCfg := NewDefaultConfig(SignalMetrics, DefaultGRPCEndpoint)
	assert.Equal(t, "generic:4317", metricsCfg.Endpoint)
}

func TestNewDefaultConfigParsesHeadersAndCompressionAndTimeout(t *testing.T) {
	t.Setenv("OTEL_EXPORTER_OTLP_HEADERS", "a=1,b=2")
	t.Setenv("OTEL_EXPORTER_OTLP_COMPRESSION", "gzip")
	t.Setenv("OTEL_EXPORTER_OTLP_TIMEOUT", "5000")

	cfg := NewDefaultConfig(SignalLogs, DefaultHTTPEndpoint)
	assert.Equal(t, map[string]string{"a": "1", "b": "2"}, cfg.Headers)
	assert.Equal(t, GzipCompression, cfg.Compression)
	assert.Equal(t, 5*time.Second, cfg.Timeout)
}

func TestOptionsApplyOverrideEnv(t *testing.T) {
	t.Setenv("OTEL_EXPORTER_OTLP_ENDPOINT", "env-endpoint:4317")

	cfg := NewDefaultClientConfig(SignalTraces, DefaultGRPCEndpoint)
	cfg.Apply([]Option{WithEndpoint("explicit:4317"), WithInsecure()})

	assert.Equal(t, "explicit:4317", cfg.Endpoint)
	assert.True(t, cfg.Insecure)
}
