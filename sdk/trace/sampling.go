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

package trace // import "go.opentelemetry.io/otelcore/sdk/trace"

import (
	"context"
	"fmt"
	"math"

	"go.opentelemetry.io/otelcore/attribute"
	coretrace "go.opentelemetry.io/otelcore/trace"
)

// SamplingDecision indicates whether and how a span should be processed.
type SamplingDecision int

const (
	// Drop discards the span entirely; it is never recorded nor exported.
	Drop SamplingDecision = iota
	// RecordOnly records the span locally but does not set the sampled
	// trace flag, so it is not exported by processors that filter on it.
	RecordOnly
	// RecordAndSample records the span and sets the sampled trace flag.
	RecordAndSample
)

// SamplingParameters is passed to Sampler.ShouldSample.
type SamplingParameters struct {
	ParentContext context.Context
	TraceID       coretrace.TraceID
	Name          string
	Kind          coretrace.SpanKind
	Attributes    []attribute.KeyValue
	Links         []coretrace.Link
}

// SamplingResult is returned by Sampler.ShouldSample.
type SamplingResult struct {
	Decision   SamplingDecision
	Attributes []attribute.KeyValue
	Tracestate coretrace.TraceState
}

// Sampler decides whether a span should be recorded and/or exported.
type Sampler interface {
	ShouldSample(parameters SamplingParameters) SamplingResult
	Description() string
}

type alwaysOnSampler struct{}

func (alwaysOnSampler) ShouldSample(p SamplingParameters) SamplingResult {
	return SamplingResult{Decision: RecordAndSample, Tracestate: parentTraceState(p)}
}
func (alwaysOnSampler) Description() string { return "AlwaysOnSampler" }

// AlwaysSample returns a Sampler that samples every trace.
func AlwaysSample() Sampler { return alwaysOnSampler{} }

type alwaysOffSampler struct{}

func (alwaysOffSampler) ShouldSample(p SamplingParameters) SamplingResult {
	return SamplingResult{Decision: Drop, Tracestate: parentTraceState(p)}
}
func (alwaysOffSampler) Description() string { return "AlwaysOffSampler" }

// NeverSample returns a Sampler that drops every trace.
func NeverSample() Sampler { return alwaysOffSampler{} }

type traceIDRatioSampler struct {
	ratio     float64
	threshold uint64
}

// TraceIDRatioBased returns a Sampler that samples a given fraction of
// traces, deterministically on trace id: a trace is sampled iff
// (trace id mod 2^64) < ratio * 2^64.
func TraceIDRatioBased(ratio float64) Sampler {
	if ratio < 0 {
		ratio = 0
	}
	if ratio > 1 {
		ratio = 1
	}
	return &traceIDRatioSampler{
		ratio:     ratio,
		threshold: uint64(ratio * math.MaxUint64),
	}
}

func (s *traceIDRatioSampler) ShouldSample(p SamplingParameters) SamplingResult {
	result := SamplingResult{Tracestate: parentTraceState(p)}
	if s.ratio >= 1 || traceIDUint64(p.TraceID) < s.threshold {
		result.Decision = RecordAndSample
	} else {
		result.Decision = Drop
	}
	return result
}

func (s *traceIDRatioSampler) Description() string {
	return fmt.Sprintf("TraceIDRatioBased{%g}", s.ratio)
}

// ParentBasedConfig configures ParentBased's behavior for non-root spans.
type ParentBasedConfig struct {
	Root                     Sampler
	RemoteParentSampled      Sampler
	RemoteParentNotSampled   Sampler
	LocalParentSampled       Sampler
	LocalParentNotSampled    Sampler
}

type parentBasedSampler struct {
	cfg ParentBasedConfig
}

// ParentBased returns a Sampler that respects the sampling decision of the
// parent span, falling back to root for spans without a valid parent.
// Unset fields in cfg default to: remote-sampled/local-sampled to
// AlwaysSample, remote-not-sampled/local-not-sampled to NeverSample.
func ParentBased(root Sampler, opts ...ParentBasedOption) Sampler {
	cfg := ParentBasedConfig{
		Root:                   root,
		RemoteParentSampled:    alwaysOnSampler{},
		RemoteParentNotSampled: alwaysOffSampler{},
		LocalParentSampled:     alwaysOnSampler{},
		LocalParentNotSampled:  alwaysOffSampler{},
	}
	for _, o := range opts {
		o(&cfg)
	}
	return &parentBasedSampler{cfg: cfg}
}

// ParentBasedOption configures ParentBased.
type ParentBasedOption func(*ParentBasedConfig)

func WithRemoteParentSampled(s Sampler) ParentBasedOption {
	return func(c *ParentBasedConfig) { c.RemoteParentSampled = s }
}
func WithRemoteParentNotSampled(s Sampler) ParentBasedOption {
	return func(c *ParentBasedConfig) { c.RemoteParentNotSampled = s }
}
func WithLocalParentSampled(s Sampler) ParentBasedOption {
	return func(c *ParentBasedConfig) { c.LocalParentSampled = s }
}
func WithLocalParentNotSampled(s Sampler) ParentBasedOption {
	return func(c *ParentBasedConfig) { c.LocalParentNotSampled = s }
}

func (s *parentBasedSampler) ShouldSample(p SamplingParameters) SamplingResult {
	psc := coretrace.SpanContextFromContext(p.ParentContext)
	if !psc.IsValid() {
		return s.cfg.Root.ShouldSample(p)
	}
	if psc.IsRemote() {
		if psc.IsSampled() {
			return s.cfg.RemoteParentSampled.ShouldSample(p)
		}
		return s.cfg.RemoteParentNotSampled.ShouldSample(p)
	}
	if psc.IsSampled() {
		return s.cfg.LocalParentSampled.ShouldSample(p)
	}
	return s.cfg.LocalParentNotSampled.ShouldSample(p)
}

func (s *parentBasedSampler) Description() string {
	return fmt.Sprintf("ParentBased{root:%s}", s.cfg.Root.Description())
}

func parentTraceState(p SamplingParameters) coretrace.TraceState {
	return coretrace.SpanContextFromContext(p.ParentContext).TraceState()
}
