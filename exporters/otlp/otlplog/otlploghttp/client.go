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

// Package otlploghttp exports log records over HTTP to an OTLP-compatible
// collector, POSTing protobuf-encoded ExportLogsServiceRequest messages
// to Config.Endpoint + "/v1/logs".
package otlploghttp // import "go.opentelemetry.io/otelcore/exporters/otlp/otlplog/otlploghttp"

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
	"go.opentelemetry.io/otelcore/exporters/otlp/otlplog"
	"go.opentelemetry.io/otelcore/exporters/otlp/otlpconfig"
	"go.opentelemetry.io/otelcore/internal/global"

	collogspb "go.opentelemetry.io/proto/otlp/collector/logs/v1"
	logspb "go.opentelemetry.io/proto/otlp/logs/v1"
)

const logsPath = "/v1/logs"

type client struct {
	cfg        otlpconfig.ClientConfig
	httpClient *http.Client

	mu       sync.Mutex
	shutdown bool
}

var _ otlplog.Client = (*client)(nil)

// NewClient builds a Client that POSTs protobuf-encoded export requests to
// cfg.Endpoint+"/v1/logs".
func NewClient(opts ...otlpconfig.Option) otlplog.Client {
	cfg := otlpconfig.NewDefaultClientConfig(otlpconfig.SignalLogs, otlpconfig.DefaultHTTPEndpoint)
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
func New(ctx context.Context, opts ...otlpconfig.Option) (*otlplog.Exporter, error) {
	return otlplog.New(ctx, NewClient(opts...))
}

func (c *client) Start(ctx context.Context) error { return nil }

func (c *client) Stop(ctx context.Context) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.shutdown = true
	c.httpClient.CloseIdleConnections()
	return nil
}

func (c *client) UploadLogs(ctx context.Context, protoLogs []*logspb.ResourceLogs) error {
	c.mu.Lock()
	shutdown := c.shutdown
	c.mu.Unlock()
	if shutdown {
		return fmt.Errorf("otlploghttp: client is shut down")
	}

	req := &collogspb.ExportLogsServiceRequest{ResourceLogs: protoLogs}
	body, contentType, err := marshalRequest(req, c.cfg.JSONProtocol)
	if err != nil {
		return fmt.Errorf("otlploghttp: marshal request: %w", err)
	}

	ctx = global.ContextWithoutSelfTelemetry(ctx)

	scheme := "https"
	if c.cfg.Insecure {
		scheme = "http"
	}
	url := scheme + "://" + c.cfg.Endpoint + logsPath

	return retry.Upload(ctx, c.cfg.Retry, evaluate, func(ctx context.Context) error {
		return c.post(ctx, url, contentType, body)
	})
}

func marshalRequest(req *collogspb.ExportLogsServiceRequest, asJSON bool) (body []byte, contentType string, err error) {
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
	return fmt.Errorf("otlploghttp: export failed with status %d: %s", resp.StatusCode, string(respBody))
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

func (e retryableError) Error() string { return "otlploghttp: retryable response" }

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
