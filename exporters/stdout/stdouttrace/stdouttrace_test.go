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

package stdouttrace

import (
	"bytes"
	"context"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	sdktrace "go.opentelemetry.io/otelcore/sdk/trace"
)

func TestExportSpansWritesOneJSONObjectPerLine(t *testing.T) {
	var buf bytes.Buffer
	exp, err := New(WithWriter(&buf))
	require.NoError(t, err)

	tp := sdktrace.NewTracerProvider(sdktrace.WithSpanProcessor(sdktrace.NewSimpleSpanProcessor(exp)))
	tr := tp.Tracer("test")
	_, span := tr.Start(context.Background(), "op")
	span.End()

	lines := bytes.Split(bytes.TrimRight(buf.Bytes(), "\n"), []byte("\n"))
	require.Len(t, lines, 1)

	var out map[string]interface{}
	require.NoError(t, json.Unmarshal(lines[0], &out))
	assert.Equal(t, "op", out["Name"])
}

func TestExportSpansAfterShutdownIsNoop(t *testing.T) {
	var buf bytes.Buffer
	exp, err := New(WithWriter(&buf))
	require.NoError(t, err)
	require.NoError(t, exp.Shutdown(context.Background()))

	tp := sdktrace.NewTracerProvider(sdktrace.WithSpanProcessor(sdktrace.NewSimpleSpanProcessor(exp)))
	_, span := tp.Tracer("test").Start(context.Background(), "op")
	span.End()

	assert.Empty(t, buf.Bytes())
}
