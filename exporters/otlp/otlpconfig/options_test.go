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
	"crypto/tls"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"go.opentelemetry.io/otelcore/exporters/otlp/internal/retry"
)

func TestWithHeadersSetsHeaders(t *testing.T) {
	cfg := NewDefaultClientConfig(SignalTraces, DefaultGRPCEndpoint)
	cfg.Apply([]Option{WithHeaders(map[string]string{"x-api-key": "secret"})})
	assert.Equal(t, map[string]string{"x-api-key": "secret"}, cfg.Headers)
}

func TestWithCompressionSetsCompression(t *testing.T) {
	cfg := NewDefaultClientConfig(SignalMetrics, DefaultGRPCEndpoint)
	cfg.Apply([]Option{WithCompression(ZstdCompression)})
	assert.Equal(t, ZstdCompression, cfg.Compression)
}

func TestWithTimeoutSetsTimeout(t *testing.T) {
	cfg := NewDefaultClientConfig(SignalLogs, DefaultHTTPEndpoint)
	cfg.Apply([]Option{WithTimeout(2 * time.Second)})
	assert.Equal(t, 2*time.Second, cfg.Timeout)
}

func TestWithJSONProtocolSetsFlag(t *testing.T) {
	cfg := NewDefaultClientConfig(SignalTraces, DefaultHTTPEndpoint)
	assert.False(t, cfg.JSONProtocol)
	cfg.Apply([]Option{WithJSONProtocol()})
	assert.True(t, cfg.JSONProtocol)
}

func TestWithTLSClientConfigSetsTLSConfig(t *testing.T) {
	tlsCfg := &tls.Config{ServerName: "collector.example.com"}
	cfg := NewDefaultClientConfig(SignalTraces, DefaultGRPCEndpoint)
	cfg.Apply([]Option{WithTLSClientConfig(tlsCfg)})
	assert.Same(t, tlsCfg, cfg.TLSConfig)
}

func TestWithRetryOverridesDefault(t *testing.T) {
	cfg := NewDefaultClientConfig(SignalTraces, DefaultGRPCEndpoint)
	custom := retry.Config{Enabled: false}
	cfg.Apply([]Option{WithRetry(custom)})
	assert.Equal(t, custom, cfg.Retry)
}
