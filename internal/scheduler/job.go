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

// Package scheduler implements the probe scheduler: a job registry, a
// min-heap priority queue keyed on next-run time, and a singleton leased
// driver loop that pops due jobs under a concurrency budget and reschedules
// them with deterministic jitter.
package scheduler

import (
	"fmt"
	"sync"
	"time"
)

// ConcurrencyClass selects which counting semaphore a job's dispatch draws
// from. Network probes (HTTP/TCP/DNS/WebSocket/gRPC) use Net; probes that
// require elevated privilege (ICMP) use Priv.
type ConcurrencyClass int

const (
	ClassNet ConcurrencyClass = iota
	ClassPriv
)

// Job is the canonical scheduled unit: one Monitor's next probe.
type Job struct {
	ID              string // namespace/name
	Namespace       string
	Name            string
	IntervalSec     int32
	TimeoutSec      int32
	JitterPercent   int32
	Class           ConcurrencyClass
	NextRunAt       time.Time
}

// Registry holds the canonical set of scheduled probes, keyed by job ID.
// It is the source of truth for "what should be scheduled"; the priority
// queue is a derived ordering over the same jobs.
type Registry struct {
	mu   sync.RWMutex
	jobs map[string]*Job
}

// NewRegistry builds an empty job registry.
func NewRegistry() *Registry {
	return &Registry{jobs: make(map[string]*Job)}
}

// JobID computes the canonical registry/queue key for a namespaced resource.
func JobID(namespace, name string) string {
	return fmt.Sprintf("%s/%s", namespace, name)
}

// Get returns the job for id, if registered.
func (r *Registry) Get(id string) (*Job, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	j, ok := r.jobs[id]
	return j, ok
}

// Put registers or replaces a job.
func (r *Registry) Put(j *Job) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.jobs[j.ID] = j
}

// Delete removes a job from the registry.
func (r *Registry) Delete(id string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.jobs, id)
}

// Len returns the number of registered jobs.
func (r *Registry) Len() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.jobs)
}

// IDs returns every registered job ID, for parity checks against the queue.
func (r *Registry) IDs() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()
	ids := make([]string, 0, len(r.jobs))
	for id := range r.jobs {
		ids = append(ids, id)
	}
	return ids
}
