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

// Package otlptracegrpc exports spans over gRPC to an OTLP-compatible
// collector, using the generated TraceServiceClient from
// go.opentelemetry.io/proto/otlp/collector/trace/v1.
package otlptracegrpc // import "go.opentelemetry.io/otelcore/exporters/otlp/otlptrace/otlptracegrpc"

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
	"go.opentelemetry.io/otelcore/exporters/otlp/otlpconfig"
	"go.opentelemetry.io/otelcore/exporters/otlp/otlptrace"
	"go.opentelemetry.io/otelcore/internal/global"

	coltracepb "go.opentelemetry.io/proto/otlp/collector/trace/v1"
	tracepb "go.opentelemetry.io/proto/otlp/trace/v1"
)

type client struct {
	cfg otlpconfig.ClientConfig

	mu      sync.Mutex
	conn    *grpc.ClientConn
	traceSC coltracepb.TraceServiceClient
}

var _ otlptrace.Client = (*client)(nil)

// NewClient returns a Client that dials cfg.Endpoint and speaks the OTLP
// trace collector gRPC service. Dialing is lazy: Start only builds the
// connection, it does not block waiting for it to become ready.
func NewClient(opts ...otlpconfig.Option) otlptrace.Client {
	cfg := otlpconfig.NewDefaultClientConfig(otlpconfig.SignalTraces, otlpconfig.DefaultGRPCEndpoint)
	cfg.Apply(opts)
	return &client{cfg: cfg}
}

// New creates an Exporter backed by a gRPC Client, starting it
// immediately against ctx.
func New(ctx context.Context, opts ...otlpconfig.Option) (*otlptrace.Exporter, error) {
	return otlptrace.New(ctx, NewClient(opts...))
}

func (c *client) Start(ctx context.Context) error {
	creds := credentials.NewTLS(c.cfg.TLSConfig)
	if c.cfg.Insecure {
		creds = insecure.NewCredentials()
	}

	dialOpts := []grpc.DialOption{grpc.WithTransportCredentials(creds)}
	conn, err := grpc.NewClient(c.cfg.Endpoint, dialOpts...)
	if err != nil {
		return fmt.Errorf("otlptracegrpc: dial %s: %w", c.cfg.Endpoint, err)
	}

	c.mu.Lock()
	c.conn = conn
	c.traceSC = coltracepb.NewTraceServiceClient(conn)
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

func (c *client) UploadTraces(ctx context.Context, protoSpans []*tracepb.ResourceSpans) error {
	c.mu.Lock()
	sc := c.traceSC
	c.mu.Unlock()
	if sc == nil {
		return fmt.Errorf("otlptracegrpc: client not started")
	}

	// Mark this context as carrying the exporter's own outbound call so any
	// instrumented transport the caller wired up doesn't feed its own
	// export traffic back into the pipeline it's draining.
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
		_, err := sc.Export(ctx, &coltracepb.ExportTraceServiceRequest{ResourceSpans: protoSpans})
		return err
	})
}

// evaluate classifies a gRPC status error for the retry decorator: OK and
// the collector's partial-success responses aren't errors at all by the
// time they reach here; Unavailable, ResourceExhausted, DeadlineExceeded
// and Aborted are retryable, everything else is permanent.
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
