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

package metric

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"go.opentelemetry.io/otelcore/internal/global"
)

func TestProviderShutdownIsIdempotent(t *testing.T) {
	reader := NewManualReader()
	provider := NewMeterProvider(WithReader(reader))

	require.NoError(t, provider.Shutdown(context.Background()))
	err := provider.Shutdown(context.Background())
	assert.ErrorIs(t, err, global.ErrAlreadyShutdown)
}

func TestProviderMeterAfterShutdownIsNoop(t *testing.T) {
	provider := NewMeterProvider()
	require.NoError(t, provider.Shutdown(context.Background()))

	meter := provider.Meter("test")
	counter, err := meter.Int64Counter("requests")
	require.NoError(t, err)
	counter.Add(context.Background(), 1)
}

func TestProviderForceFlushFansOutAcrossReaders(t *testing.T) {
	r1 := NewManualReader()
	r2 := NewManualReader()
	provider := NewMeterProvider(WithReader(r1), WithReader(r2))

	require.NoError(t, provider.ForceFlush(context.Background()))
}

func TestProviderShutdownAfterReaderShutdownReturnsError(t *testing.T) {
	reader := NewManualReader()
	provider := NewMeterProvider(WithReader(reader))

	require.NoError(t, reader.Shutdown(context.Background()))
	err := provider.Shutdown(context.Background())
	assert.Error(t, err)
}
