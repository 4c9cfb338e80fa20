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

// Package retry decorates an OTLP upload with bounded exponential backoff,
// the "implementers may add a retry decorator" behavior named for the
// OTLP exporter.
package retry // import "go.opentelemetry.io/otelcore/exporters/otlp/internal/retry"

import (
	"context"
	"time"

	"github.com/cenkalti/backoff/v5"
)

// Config controls retry behavior. A zero Config disables retrying: Enabled
// defaults to false so callers must opt in.
type Config struct {
	Enabled         bool
	InitialInterval time.Duration
	MaxInterval     time.Duration
	MaxElapsedTime  time.Duration
}

// DefaultConfig matches upstream OTLP exporters' defaults.
func DefaultConfig() Config {
	return Config{
		Enabled:         true,
		InitialInterval: 5 * time.Second,
		MaxInterval:     30 * time.Second,
		MaxElapsedTime:  time.Minute,
	}
}

// EvaluateFunc classifies an upload error: ok reports whether the caller
// should retry, and throttleDelay, when non-zero, overrides the backoff's
// own computed delay (the server's "retry after" signal).
type EvaluateFunc func(error) (ok bool, throttleDelay time.Duration)

// Upload runs fn, retrying per cfg when evaluate reports the returned error
// is retryable, until it succeeds, evaluate reports a permanent failure, or
// MaxElapsedTime/ctx is exhausted.
func Upload(ctx context.Context, cfg Config, evaluate EvaluateFunc, fn func(context.Context) error) error {
	if !cfg.Enabled {
		return fn(ctx)
	}

	op := func() (struct{}, error) {
		err := fn(ctx)
		if err == nil {
			return struct{}{}, nil
		}
		ok, throttle := evaluate(err)
		if !ok {
			return struct{}{}, backoff.Permanent(err)
		}
		if throttle > 0 {
			return struct{}{}, backoff.RetryAfter(int(throttle / time.Second))
		}
		return struct{}{}, err
	}

	bo := backoff.NewExponentialBackOff()
	bo.InitialInterval = cfg.InitialInterval
	bo.MaxInterval = cfg.MaxInterval

	_, err := backoff.Retry(ctx, op,
		backoff.WithBackOff(bo),
		backoff.WithMaxElapsedTime(cfg.MaxElapsedTime),
	)
	return err
}
