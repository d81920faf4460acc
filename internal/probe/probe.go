/*
Copyright 2025.

Licensed under the Apache License, Version 2.0 (the "License");
you may not use this file except in compliance with the License.
You may obtain a copy of the License at

    http://www.apache.org/licenses/LICENSE-2.0

Unless required by applicable law or agreed to in writing, software
distributed under the License is distributed on an "AS IS" BASIS,
WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
See the License for the specific language governing permissions and
limitations under the License.
*/

// Package probe defines the probe executor contract. The probe
// implementations themselves are explicitly out of scope (see SPEC_FULL.md
// §1 non-goals): only the result contract and one reference implementation
// (HTTPExecutor) live here. Every other monitor type is a stub returning
// ErrNotImplemented, present so the scheduler driver and the registry of
// executors-by-type are exercised end to end without claiming coverage of
// protocols this repo doesn't implement.
package probe

import (
	"context"
	"errors"
	"time"

	"github.com/yuptime-io/yuptime-operator/api/v1alpha1"
)

// ErrNotImplemented is returned by stub executors for probe types this repo
// does not implement.
var ErrNotImplemented = errors.New("probe: executor not implemented")

// State is the outcome of a single probe attempt.
type State string

const (
	StateUp      State = "up"
	StateDown    State = "down"
	StatePending State = "pending"
)

// Result is what an Executor produces for one probe attempt.
type Result struct {
	State     State
	LatencyMs int64
	Reason    string
	Message   string
}

// Executor runs one probe attempt against a Monitor's target and must
// respect the given timeout, returning promptly after it elapses rather than
// blocking the caller's concurrency-budget slot indefinitely.
type Executor interface {
	Execute(ctx context.Context, monitor *v1alpha1.Monitor, timeout time.Duration) (Result, error)
}

// Registry resolves a Monitor's ProbeType to the Executor responsible for it.
type Registry struct {
	executors map[v1alpha1.ProbeType]Executor
}

// NewRegistry builds a registry with the reference HTTP executor wired in
// and every other known probe type mapped to a stub that returns
// ErrNotImplemented, so dispatch never panics on an unrecognized type.
func NewRegistry() *Registry {
	r := &Registry{executors: make(map[v1alpha1.ProbeType]Executor)}
	r.executors[v1alpha1.ProbeTypeHTTP] = &HTTPExecutor{}
	for _, t := range []v1alpha1.ProbeType{
		v1alpha1.ProbeTypeTCP,
		v1alpha1.ProbeTypeDNS,
		v1alpha1.ProbeTypeICMP,
		v1alpha1.ProbeTypeWebSocket,
		v1alpha1.ProbeTypeGRPC,
		v1alpha1.ProbeTypePush,
		v1alpha1.ProbeTypeGameServer,
		v1alpha1.ProbeTypeK8sResource,
	} {
		r.executors[t] = stubExecutor{probeType: t}
	}
	return r
}

// Register overrides (or adds) the executor for a probe type.
func (r *Registry) Register(t v1alpha1.ProbeType, e Executor) {
	r.executors[t] = e
}

// For returns the executor for a Monitor's declared type.
func (r *Registry) For(t v1alpha1.ProbeType) (Executor, bool) {
	e, ok := r.executors[t]
	return e, ok
}

type stubExecutor struct {
	probeType v1alpha1.ProbeType
}

func (s stubExecutor) Execute(ctx context.Context, monitor *v1alpha1.Monitor, timeout time.Duration) (Result, error) {
	return Result{}, ErrNotImplemented
}
