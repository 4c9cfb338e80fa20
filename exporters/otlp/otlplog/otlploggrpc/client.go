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

// Package otlploggrpc exports log records over gRPC to an OTLP-compatible
// collector, using the generated LogsServiceClient from
// go.opentelemetry.io/proto/otlp/collector/logs/v1.
package otlploggrpc // import "go.opentelemetry.io/otelcore/exporters/otlp/otlplog/otlploggrpc"

import (
	"context"
	"fmt"
	"sync"
	"time"

	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/credentials"
	"google.golang.org/grpc/credentials/insecure"
	"google.golang.org/grpc/metadata"
	"google.golang.org/grpc/status"

	"go.opentelemetry.io/otelcore/exporters/otlp/internal/retry"
	"go.opentelemetry.io/otelcore/exporters/otlp/otlplog"
	"go.opentelemetry.io/otelcore/exporters/otlp/otlpconfig"
	"go.opentelemetry.io/otelcore/internal/global"

	collogspb "go.opentelemetry.io/proto/otlp/collector/logs/v1"
	logspb "go.opentelemetry.io/proto/otlp/logs/v1"
)

type client struct {
	cfg otlpconfig.ClientConfig

	mu     sync.Mutex
	conn   *grpc.ClientConn
	logsSC collogspb.LogsServiceClient
}

var _ otlplog.Client = (*client)(nil)

// NewClient builds a Client that dials cfg.Endpoint and speaks the OTLP
// logs collector gRPC service.
func NewClient(opts ...otlpconfig.Option) otlplog.Client {
	cfg := otlpconfig.NewDefaultClientConfig(otlpconfig.SignalLogs, otlpconfig.DefaultGRPCEndpoint)
	cfg.Apply(opts)
	return &client{cfg: cfg}
}

// New creates an Exporter backed by a gRPC Client, starting it
// immediately against ctx.
func New(ctx context.Context, opts ...otlpconfig.Option) (*otlplog.Exporter, error) {
	return otlplog.New(ctx, NewClient(opts...))
}

func (c *client) Start(ctx context.Context) error {
	creds := credentials.NewTLS(c.cfg.TLSConfig)
	if c.cfg.Insecure {
		creds = insecure.NewCredentials()
	}

	conn, err := grpc.NewClient(c.cfg.Endpoint, grpc.WithTransportCredentials(creds))
	if err != nil {
		return fmt.Errorf("otlploggrpc: dial %s: %w", c.cfg.Endpoint, err)
	}

	c.mu.Lock()
	c.conn = conn
	c.logsSC = collogspb.NewLogsServiceClient(conn)
	c.mu.Unlock()
	return nil
}

func (c *client) Stop(ctx context.Context) error {
	c.mu.Lock()
	conn := c.conn
	c.conn = nil
	c.mu.Unlock()
	if conn == nil {
		return nil
	}
	return conn.Close()
}

func (c *client) UploadLogs(ctx context.Context, protoLogs []*logspb.ResourceLogs) error {
	c.mu.Lock()
	sc := c.logsSC
	c.mu.Unlock()
	if sc == nil {
		return fmt.Errorf("otlploggrpc: client not started")
	}

	ctx = global.ContextWithoutSelfTelemetry(ctx)

	if len(c.cfg.Headers) > 0 {
		ctx = metadata.NewOutgoingContext(ctx, metadata.New(c.cfg.Headers))
	}
	if c.cfg.Timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, c.cfg.Timeout)
		defer cancel()
	}

	return retry.Upload(ctx, c.cfg.Retry, evaluate, func(ctx context.Context) error {
		_, err := sc.Export(ctx, &collogspb.ExportLogsServiceRequest{ResourceLogs: protoLogs})
		return err
	})
}

func evaluate(err error) (ok bool, throttle time.Duration) {
	s, isStatus := status.FromError(err)
	if !isStatus {
		return false, 0
	}
	switch s.Code() {
	case codes.Unavailable, codes.ResourceExhausted, codes.DeadlineExceeded, codes.Aborted:
		return true, 0
	default:
		return false, 0
	}
}
