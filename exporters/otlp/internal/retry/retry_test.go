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

package retry

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUploadDisabledCallsOnce(t *testing.T) {
	calls := 0
	err := Upload(context.Background(), Config{Enabled: false}, func(error) (bool, time.Duration) {
		t.Fatal("evaluate should not be called when retry is disabled")
		return false, 0
	}, func(context.Context) error {
		calls++
		return errors.New("boom")
	})
	require.Error(t, err)
	assert.Equal(t, 1, calls)
}

func TestUploadRetriesUntilSuccess(t *testing.T) {
	cfg := Config{Enabled: true, InitialInterval: time.Millisecond, MaxInterval: 2 * time.Millisecond, MaxElapsedTime: time.Second}
	calls := 0
	err := Upload(context.Background(), cfg, func(error) (bool, time.Duration) {
		return true, 0
	}, func(context.Context) error {
		calls++
		if calls < 3 {
			return errors.New("transient")
		}
		return nil
	})
	require.NoError(t, err)
	assert.Equal(t, 3, calls)
}

func TestUploadStopsOnPermanentError(t *testing.T) {
	cfg := Config{Enabled: true, InitialInterval: time.Millisecond, MaxInterval: time.Millisecond, MaxElapsedTime: time.Second}
	calls := 0
	permanent := errors.New("permanent")
	err := Upload(context.Background(), cfg, func(error) (bool, time.Duration) {
		return false, 0
	}, func(context.Context) error {
		calls++
		return permanent
	})
	require.Error(t, err)
	assert.ErrorIs(t, err, permanent)
	assert.Equal(t, 1, calls)
}
