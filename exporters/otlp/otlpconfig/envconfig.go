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

// Package otlpconfig is the Config shared by every OTLP exporter
// (trace/metric/log, grpc/http): endpoint, headers, compression, timeout
// and TLS, resolved from options layered over the OTEL_EXPORTER_OTLP_*
// environment variables, with signal-specific variables taking precedence
// per spec.md §6's env table.
package otlpconfig // import "go.opentelemetry.io/otelcore/exporters/otlp/otlpconfig"

import (
	"os"
	"strconv"
	"strings"
	"time"
)

// Compression names the payload compression an exporter applies.
type Compression int

const (
	NoCompression Compression = iota
	GzipCompression
	ZstdCompression
)

// Signal distinguishes the three telemetry signals for per-signal env var
// lookups (OTEL_EXPORTER_OTLP_TRACES_*, _METRICS_, _LOGS_).
type Signal string

const (
	SignalTraces  Signal = "TRACES"
	SignalMetrics Signal = "METRICS"
	SignalLogs    Signal = "LOGS"
)

// Config is the resolved configuration for one exporter instance.
type Config struct {
	Endpoint     string
	Insecure     bool
	Headers      map[string]string
	Compression  Compression
	Timeout      time.Duration
	JSONProtocol bool
}

// DefaultEndpoint per signal protocol, used when neither an option nor an
// env var sets one.
const (
	DefaultGRPCEndpoint = "localhost:4317"
	DefaultHTTPEndpoint = "localhost:4318"
)

// NewDefaultConfig builds a Config from OTEL_EXPORTER_OTLP_* (and the
// per-signal override) environment variables, defaulting the endpoint to
// defaultEndpoint if unset anywhere.
func NewDefaultConfig(signal Signal, defaultEndpoint string) Config {
	cfg := Config{
		Endpoint:    defaultEndpoint,
		Headers:     map[string]string{},
		Compression: NoCompression,
		Timeout:     10 * time.Second,
	}

	if v := lookupEnv(signal, "ENDPOINT"); v != "" {
		cfg.Endpoint = strings.TrimPrefix(strings.TrimPrefix(v, "https://"), "http://")
		cfg.Insecure = strings.HasPrefix(v, "http://")
	}
	if v := lookupEnv(signal, "INSECURE"); v != "" {
		if b, err := strconv.ParseBool(v); err == nil {
			cfg.Insecure = b
		}
	}
	if v := lookupEnv(signal, "HEADERS"); v != "" {
		cfg.Headers = parseHeaders(v)
	}
	if v := lookupEnv(signal, "COMPRESSION"); v != "" {
		cfg.Compression = parseCompression(v)
	}
	if v := lookupEnv(signal, "TIMEOUT"); v != "" {
		if ms, err := strconv.Atoi(v); err == nil {
			cfg.Timeout = time.Duration(ms) * time.Millisecond
		}
	}
	return cfg
}

// lookupEnv checks OTEL_EXPORTER_OTLP_<SIGNAL>_<NAME> first, falling back
// to the signal-agnostic OTEL_EXPORTER_OTLP_<NAME>.
func lookupEnv(signal Signal, name string) string {
	if v, ok := os.LookupEnv("OTEL_EXPORTER_OTLP_" + string(signal) + "_" + name); ok {
		return v
	}
	return os.Getenv("OTEL_EXPORTER_OTLP_" + name)
}

func parseHeaders(v string) map[string]string {
	out := map[string]string{}
	for _, pair := range strings.Split(v, ",") {
		pair = strings.TrimSpace(pair)
		if pair == "" {
			continue
		}
		kv := strings.SplitN(pair, "=", 2)
		if len(kv) != 2 {
			continue
		}
		out[strings.TrimSpace(kv[0])] = strings.TrimSpace(kv[1])
	}
	return out
}

func parseCompression(v string) Compression {
	switch strings.ToLower(v) {
	case "gzip":
		return GzipCompression
	case "zstd":
		return ZstdCompression
	default:
		return NoCompression
	}
}
