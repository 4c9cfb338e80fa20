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

// Package codes defines the canonical status codes used by the trace API.
package codes // import "go.opentelemetry.io/otelcore/codes"

// Code is the status of a Span.
type Code uint32

const (
	// Unset is the default status of a Span.
	Unset Code = 0
	// Error indicates the operation associated with a Span failed.
	Error Code = 1
	// Ok indicates the operation associated with a Span succeeded.
	Ok Code = 2
)

// String returns the Code as a string.
func (c Code) String() string {
	switch c {
	case Ok:
		return "Ok"
	case Error:
		return "Error"
	default:
		return "Unset"
	}
}
