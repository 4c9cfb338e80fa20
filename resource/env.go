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

package resource // import "go.opentelemetry.io/otelcore/resource"

import (
	"context"
	"net/url"
	"os"
	"strings"

	"go.opentelemetry.io/otelcore/attribute"
)

// FromEnv is a Detector that reads OTEL_RESOURCE_ATTRIBUTES (a
// comma-separated list of key=value pairs, URL-decoded) and OTEL_SERVICE_NAME
// (which overrides any service.name entry from OTEL_RESOURCE_ATTRIBUTES).
type FromEnv struct{}

func (FromEnv) Detect(context.Context) (*Resource, error) {
	var attrs []attribute.KeyValue
	if raw, ok := os.LookupEnv("OTEL_RESOURCE_ATTRIBUTES"); ok {
		attrs = append(attrs, parseResourceAttributes(raw)...)
	}
	if name, ok := os.LookupEnv("OTEL_SERVICE_NAME"); ok && name != "" {
		attrs = append(attrs, attribute.String("service.name", name))
	}
	return NewSchemaless(attrs...), nil
}

func parseResourceAttributes(raw string) []attribute.KeyValue {
	var out []attribute.KeyValue
	for _, pair := range strings.Split(raw, ",") {
		pair = strings.TrimSpace(pair)
		if pair == "" {
			continue
		}
		k, v, found := strings.Cut(pair, "=")
		if !found {
			continue
		}
		k = strings.TrimSpace(k)
		if k == "" {
			continue
		}
		if decoded, err := url.QueryUnescape(strings.TrimSpace(v)); err == nil {
			v = decoded
		}
		out = append(out, attribute.String(k, v))
	}
	return out
}
