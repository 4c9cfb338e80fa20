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

// Package otlpmetrichttp exports metrics over HTTP to an OTLP-compatible
// collector, POSTing protobuf-encoded ExportMetricsServiceRequest
// messages to Config.Endpoint + "/v1/metrics".
package otlpmetrichttp // import "go.opentelemetry.io/otelcore/exporters/otlp/otlpmetric/otlpmetrichttp"

import (
	"bytes"
	"compress/gzip"
	"context"
	"crypto/tls"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strconv"
	"sync"
	"time"

	"github.com/klauspost/compress/zstd"
	"google.golang.org/protobuf/encoding/protojson"
	"google.golang.org/protobuf/proto"

	"go.opentelemetry.io/otelcore/exporters/otlp/internal/retry"
	"go.opentelemetry.io/otelcore/exporters/otlp/otlpconfig"
	"go.opentelemetry.io/otelcore/exporters/otlp/otlpmetric"
	"go.opentelemetry.io/otelcore/internal/global"

	colmetricpb "go.opentelemetry.io/proto/otlp/collector/metrics/v1"
	metricpb "go.opentelemetry.io/proto/otlp/metrics/v1"
)

const metricsPath = "/v1/metrics"

type client struct {
	cfg        otlpconfig.ClientConfig
	httpClient *http.Client

	mu       sync.Mutex
	shutdown bool
}

var _ otlpmetric.Client = (*client)(nil)

// NewClient builds a Client that POSTs protobuf-encoded export requests to
// cfg.Endpoint+"/v1/metrics".
func NewClient(opts ...otlpconfig.Option) otlpmetric.Client {
	cfg := otlpconfig.NewDefaultClientConfig(otlpconfig.SignalMetrics, otlpconfig.DefaultHTTPEndpoint)
	cfg.Apply(opts)

	transport := &http.Transport{}
	if !cfg.Insecure {
		tlsCfg := cfg.TLSConfig
		if tlsCfg == nil {
			tlsCfg = &tls.Config{}
		}
		transport.TLSClientConfig = tlsCfg
	}

	return &client{
		cfg:        cfg,
		httpClient: &http.Client{Transport: transport, Timeout: cfg.Timeout},
	}
}

// New creates an Exporter backed by an HTTP Client, starting it
// immediately against ctx.
func New(ctx context.Context, opts ...otlpconfig.Option) (*otlpmetric.Exporter, error) {
	return otlpmetric.New(ctx, NewClient(opts...))
}

func (c *client) Start(ctx context.Context) error { return nil }

func (c *client) Stop(ctx context.Context) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.shutdown = true
	c.httpClient.CloseIdleConnections()
	return nil
}

func (c *client) UploadMetrics(ctx context.Context, protoMetrics *metricpb.ResourceMetrics) error {
	c.mu.Lock()
	shutdown := c.shutdown
	c.mu.Unlock()
	if shutdown {
		return fmt.Errorf("otlpmetrichttp: client is shut down")
	}

	req := &colmetricpb.ExportMetricsServiceRequest{
		ResourceMetrics: []*metricpb.ResourceMetrics{protoMetrics},
	}
	body, contentType, err := marshalRequest(req, c.cfg.JSONProtocol)
	if err != nil {
		return fmt.Errorf("otlpmetrichttp: marshal request: %w", err)
	}

	ctx = global.ContextWithoutSelfTelemetry(ctx)

	scheme := "https"
	if c.cfg.Insecure {
		scheme = "http"
	}
	url := scheme + "://" + c.cfg.Endpoint + metricsPath

	return retry.Upload(ctx, c.cfg.Retry, evaluate, func(ctx context.Context) error {
		return c.post(ctx, url, contentType, body)
	})
}

func marshalRequest(req *colmetricpb.ExportMetricsServiceRequest, asJSON bool) (body []byte, contentType string, err error) {
	if asJSON {
		b, err := protojson.Marshal(req)
		return b, "application/json", err
	}
	b, err := proto.Marshal(req)
	return b, "application/x-protobuf", err
}

func (c *client) post(ctx context.Context, url, contentType string, body []byte) error {
	encoded, contentEncoding, err := c.encode(body)
	if err != nil {
		return err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(encoded))
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", contentType)
	if contentEncoding != "" {
		req.Header.Set("Content-Encoding", contentEncoding)
	}
	for k, v := range c.cfg.Headers {
		req.Header.Set(k, v)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()
	respBody, _ := io.ReadAll(resp.Body)

	if resp.StatusCode == http.StatusOK {
		return nil
	}
	if _, retryable := retryableStatus(resp.StatusCode); retryable {
		if d, has := parseRetryAfter(resp.Header.Get("Retry-After")); has {
			return retryableError{delay: d}
		}
		return retryableError{}
	}
	return fmt.Errorf("otlpmetrichttp: export failed with status %d: %s", resp.StatusCode, string(respBody))
}

func (c *client) encode(body []byte) (encoded []byte, contentEncoding string, err error) {
	switch c.cfg.Compression {
	case otlpconfig.GzipCompression:
		var buf bytes.Buffer
		gw := gzip.NewWriter(&buf)
		if _, err := gw.Write(body); err != nil {
			return nil, "", err
		}
		if err := gw.Close(); err != nil {
			return nil, "", err
		}
		return buf.Bytes(), "gzip", nil
	case otlpconfig.ZstdCompression:
		var buf bytes.Buffer
		zw, err := zstd.NewWriter(&buf)
		if err != nil {
			return nil, "", err
		}
		if _, err := zw.Write(body); err != nil {
			return nil, "", err
		}
		if err := zw.Close(); err != nil {
			return nil, "", err
		}
		return buf.Bytes(), "zstd", nil
	default:
		return body, "", nil
	}
}

type retryableError struct{ delay time.Duration }

func (e retryableError) Error() string { return "otlpmetrichttp: retryable response" }

func retryableStatus(code int) (time.Duration, bool) {
	switch code {
	case http.StatusRequestTimeout, http.StatusTooManyRequests, http.StatusServiceUnavailable, http.StatusBadGateway, http.StatusGatewayTimeout:
		return 0, true
	default:
		return 0, false
	}
}

func parseRetryAfter(v string) (time.Duration, bool) {
	if v == "" {
		return 0, false
	}
	if secs, err := strconv.Atoi(v); err == nil {
		return time.Duration(secs) * time.Second, true
	}
	return 0, false
}

func evaluate(err error) (ok bool, throttle time.Duration) {
	var rerr retryableError
	if errors.As(err, &rerr) {
		return true, rerr.delay
	}
	return false, 0
}
