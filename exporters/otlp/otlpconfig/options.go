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
	"time"

	"go.opentelemetry.io/otelcore/exporters/otlp/internal/retry"
)

// Option configures a ClientConfig. The grpc and http client packages
// take these Options directly; they define no Option type of their own.
type Option interface {
	apply(*ClientConfig)
}

// ClientConfig is the full configuration surface shared by the grpc and
// http clients: Config plus TLS and the retry decorator's Config, which
// only clients (not the bare wire Config) need.
type ClientConfig struct {
	Config
	TLSConfig *tls.Config
	Retry     retry.Config
}

// NewDefaultClientConfig layers ClientConfig-only defaults (TLS, retry)
// on top of NewDefaultConfig's env-resolved Config.
func NewDefaultClientConfig(signal Signal, defaultEndpoint string) ClientConfig {
	return ClientConfig{
		Config: NewDefaultConfig(signal, defaultEndpoint),
		Retry:  retry.DefaultConfig(),
	}
}

type optionFunc func(*ClientConfig)

func (f optionFunc) apply(c *ClientConfig) { f(c) }

// WithEndpoint overrides the collector address (host:port, no scheme).
func WithEndpoint(endpoint string) Option {
	return optionFunc(func(c *ClientConfig) { c.Endpoint = endpoint })
}

// WithInsecure disables transport security.
func WithInsecure() Option {
	return optionFunc(func(c *ClientConfig) { c.Insecure = true })
}

// WithHeaders sets headers sent with every export request.
func WithHeaders(headers map[string]string) Option {
	return optionFunc(func(c *ClientConfig) { c.Headers = headers })
}

// WithCompression sets the payload compression.
func WithCompression(compression Compression) Option {
	return optionFunc(func(c *ClientConfig) { c.Compression = compression })
}

// WithTimeout bounds an export. The gRPC clients apply it to the whole
// export call, retries included; the HTTP clients apply it to each
// request attempt.
func WithTimeout(duration time.Duration) Option {
	return optionFunc(func(c *ClientConfig) { c.Timeout = duration })
}

// WithJSONProtocol switches the HTTP clients from protobuf-binary to
// canonical-JSON request bodies (Content-Type: application/json). No
// effect on gRPC clients, which always speak protobuf.
func WithJSONProtocol() Option {
	return optionFunc(func(c *ClientConfig) { c.JSONProtocol = true })
}

// WithTLSClientConfig sets the TLS configuration used when Insecure is
// false.
func WithTLSClientConfig(tlsCfg *tls.Config) Option {
	return optionFunc(func(c *ClientConfig) { c.TLSConfig = tlsCfg })
}

// WithRetry overrides the upload retry decorator's Config.
func WithRetry(retryCfg retry.Config) Option {
	return optionFunc(func(c *ClientConfig) { c.Retry = retryCfg })
}

// Apply applies opts atop cfg in place.
func (c *ClientConfig) Apply(opts []Option) {
	for _, opt := range opts {
		opt.apply(c)
	}
}
