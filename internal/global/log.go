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

// Package global holds the SDK's own diagnostic logger and error handler.
// This is internal self-telemetry plumbing, distinct from the public
// instrumentation facade: nothing here is meant to be called by
// instrumented application code.
package global // import "go.opentelemetry.io/otelcore/internal/global"

import (
	"log"
	"os"
	"strconv"
	"strings"
	"sync"
	"sync/atomic"

	"github.com/go-logr/logr"
	"github.com/go-logr/stdr"
)

var (
	globalLogger atomic.Pointer[logr.Logger]
	setOnce      sync.Once
)

func init() {
	stdr.SetVerbosity(verbosityFromEnv())
	l := stdr.New(log.New(os.Stderr, "", log.LstdFlags))
	globalLogger.Store(&l)
}

// verbosityFromEnv maps OTEL_LOG_LEVEL to a stdr verbosity level: stdr (like
// logr) treats higher V-levels as more verbose, the opposite of a severity
// scale, so "debug" maps to the highest verbosity.
func verbosityFromEnv() int {
	switch strings.ToLower(os.Getenv("OTEL_LOG_LEVEL")) {
	case "debug":
		return 8
	case "info":
		return 4
	case "warn", "warning":
		return 1
	case "error", "":
		return 0
	default:
		if n, err := strconv.Atoi(os.Getenv("OTEL_LOG_LEVEL")); err == nil {
			return n
		}
		return 0
	}
}

// SetLogger sets the SDK's internal diagnostic logger. Call before
// constructing any provider; the default is an stdr logger writing to
// stderr at the verbosity named by OTEL_LOG_LEVEL.
func SetLogger(l logr.Logger) {
	setOnce.Do(func() {
		globalLogger.Store(&l)
	})
}

// Info logs an internal informational message.
func Info(msg string, keysAndValues ...interface{}) {
	globalLogger.Load().Info(msg, keysAndValues...)
}

// Error logs an internal error.
func Error(err error, msg string, keysAndValues ...interface{}) {
	globalLogger.Load().Error(err, msg, keysAndValues...)
}

var (
	warnOnceMu   sync.Mutex
	warnedOnce   = map[string]struct{}{}
)

// WarnOnce logs msg at most once per distinct key, for the "log a warning
// once" failure modes named throughout the spec (invalid instrument names,
// dropped limits, etc).
func WarnOnce(key, msg string, keysAndValues ...interface{}) {
	warnOnceMu.Lock()
	_, seen := warnedOnce[key]
	if !seen {
		warnedOnce[key] = struct{}{}
	}
	warnOnceMu.Unlock()
	if !seen {
		Info(msg, keysAndValues...)
	}
}
