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

package global // import "go.opentelemetry.io/otelcore/internal/global"

import "errors"

// ErrorHandler handles errors that can't be returned to application code,
// e.g. those surfaced from a background export goroutine.
type ErrorHandler interface {
	Handle(error)
}

// ErrorHandlerFunc is a function adapter for ErrorHandler.
type ErrorHandlerFunc func(error)

func (f ErrorHandlerFunc) Handle(err error) { f(err) }

// defaultErrorHandler logs through the package logger.
type defaultErrorHandler struct{}

func (defaultErrorHandler) Handle(err error) { Error(err, "otelcore error") }

// DefaultErrorHandler is the ErrorHandler used when none is configured.
var DefaultErrorHandler ErrorHandler = defaultErrorHandler{}

// Handle routes err to h, defaulting to DefaultErrorHandler if h is nil, and
// is a no-op for a nil error.
func Handle(h ErrorHandler, err error) {
	if err == nil {
		return
	}
	if h == nil {
		h = DefaultErrorHandler
	}
	h.Handle(err)
}

// Sentinel errors shared across providers, processors and exporters.
var (
	ErrAlreadyShutdown   = errors.New("already shut down")
	ErrInvalidConfig     = errors.New("invalid configuration")
	ErrFlushTimeout      = errors.New("force_flush: deadline exceeded")
	ErrShutdownTimeout   = errors.New("shutdown: deadline exceeded")
)
