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

package global

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIsSelfTelemetrySuppressedDefaultsFalse(t *testing.T) {
	assert.False(t, IsSelfTelemetrySuppressed(context.Background()))
}

func TestContextWithoutSelfTelemetryMarksContext(t *testing.T) {
	ctx := ContextWithoutSelfTelemetry(context.Background())
	assert.True(t, IsSelfTelemetrySuppressed(ctx))
}

func TestContextWithoutSelfTelemetryDoesNotLeakToParent(t *testing.T) {
	parent := context.Background()
	ContextWithoutSelfTelemetry(parent)
	assert.False(t, IsSelfTelemetrySuppressed(parent))
}
