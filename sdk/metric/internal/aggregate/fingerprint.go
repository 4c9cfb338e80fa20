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

package aggregate // import "go.opentelemetry.io/otelcore/sdk/metric/internal/aggregate"

import "go.opentelemetry.io/otelcore/attribute"

// shardCount is the number of stripes the cardinality limiter splits its
// locking across, keyed by attribute.Set.Fingerprint. Measurements
// against different attribute sets that happen to hash to different shards
// never contend with each other on the hot path.
const shardCount = 32

func shardFor(set attribute.Set) uint64 {
	return set.Fingerprint() % shardCount
}
