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

package otlpmetrichttp

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	"go.opentelemetry.io/otelcore/exporters/otlp/otlpconfig"
)

func TestNewClientStartIsANoopStopClosesIdleConns(t *testing.T) {
	c := NewClient(otlpconfig.WithEndpoint("127.0.0.1:0"), otlpconfig.WithInsecure())
	require.NoError(t, c.Start(context.Background()))
	require.NoError(t, c.Stop(context.Background()))
}

func TestUploadMetricsAfterShutdownFails(t *testing.T) {
	c := NewClient(otlpconfig.WithEndpoint("127.0.0.1:0"), otlpconfig.WithInsecure())
	require.NoError(t, c.Stop(context.Background()))
	err := c.UploadMetrics(context.Background(), nil)
	require.Error(t, err)
}
