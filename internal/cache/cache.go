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

// Package cache provides a typed, in-process secondary index over the
// resources controller-runtime's own informer cache already watches. It does
// not duplicate the informer's storage; it exists so components off the
// reconcile hot path (the alert engine, the suppression index) can look up
// the last-observed document for a resource synchronously, without issuing a
// client.Client read that would itself just hit the informer cache again,
// and so they can react to change events without each registering their own
// watch.
package cache

import (
	"sort"
	"sync"

	"k8s.io/apimachinery/pkg/runtime"
)

// Key identifies a resource by kind and namespaced name. Cluster-scoped
// resources (e.g. YuptimeSettings) use an empty Namespace.
type Key struct {
	Kind      string
	Namespace string
	Name      string
}

// ResourceSnapshot is the last-observed state of one resource.
type ResourceSnapshot struct {
	Key             Key
	Object          runtime.Object
	ResourceVersion string
	Generation      int64
}

// ChangeEvent describes an upsert or removal delivered to subscribers.
// Old is nil on first observation; New is nil on removal.
type ChangeEvent struct {
	Key Key
	Old *ResourceSnapshot
	New *ResourceSnapshot
}

// Subscriber receives change events. Implementations must not block;
// Cache delivers synchronously from the caller of Upsert/Remove.
type Subscriber func(ChangeEvent)

// Cache is a typed, concurrency-safe map of (kind, namespace, name) to the
// last-observed resource document, plus an allowlist of recognized kinds.
type Cache struct {
	mu             sync.RWMutex
	snapshots      map[Key]ResourceSnapshot
	recognizedKind map[string]bool
	subscribers    []Subscriber
}

// New builds an empty Cache recognizing the given kinds.
func New(recognizedKinds ...string) *Cache {
	c := &Cache{
		snapshots:      make(map[Key]ResourceSnapshot),
		recognizedKind: make(map[string]bool, len(recognizedKinds)),
	}
	for _, k := range recognizedKinds {
		c.recognizedKind[k] = true
	}
	return c
}

// Recognizes reports whether kind is in the cache's allowlist.
func (c *Cache) Recognizes(kind string) bool {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.recognizedKind[kind]
}

// Subscribe registers a subscriber for future change events. Not safe to
// call concurrently with Upsert/Remove from the same Cache; callers
// subscribe during startup before watches begin delivering events.
func (c *Cache) Subscribe(s Subscriber) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.subscribers = append(c.subscribers, s)
}

// Upsert records a resource observation. Last-writer-wins is enforced by
// resourceVersion: an Upsert carrying a resourceVersion that is not newer
// than what's on file (and not empty, which always wins) is dropped
// silently rather than overwriting newer state with stale data delivered
// out of order by a slow watch re-list.
func (c *Cache) Upsert(key Key, obj runtime.Object, resourceVersion string, generation int64) {
	c.mu.Lock()
	old, had := c.snapshots[key]
	if had && resourceVersion != "" && !resourceVersionNewer(resourceVersion, old.ResourceVersion) {
		c.mu.Unlock()
		return
	}
	next := ResourceSnapshot{Key: key, Object: obj, ResourceVersion: resourceVersion, Generation: generation}
	c.snapshots[key] = next
	subs := append([]Subscriber(nil), c.subscribers...)
	c.mu.Unlock()

	var oldPtr *ResourceSnapshot
	if had {
		oldCopy := old
		oldPtr = &oldCopy
	}
	event := ChangeEvent{Key: key, Old: oldPtr, New: &next}
	for _, s := range subs {
		s(event)
	}
}

// Remove deletes a resource from the cache and notifies subscribers with a
// nil New. A no-op if the key was never observed.
func (c *Cache) Remove(key Key) {
	c.mu.Lock()
	old, had := c.snapshots[key]
	if !had {
		c.mu.Unlock()
		return
	}
	delete(c.snapshots, key)
	subs := append([]Subscriber(nil), c.subscribers...)
	c.mu.Unlock()

	oldCopy := old
	event := ChangeEvent{Key: key, Old: &oldCopy, New: nil}
	for _, s := range subs {
		s(event)
	}
}

// Get returns the last-observed snapshot for key, if any.
func (c *Cache) Get(key Key) (ResourceSnapshot, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	s, ok := c.snapshots[key]
	return s, ok
}

// ListByKind returns all snapshots of the given kind, ordered by namespace
// then name for deterministic iteration.
func (c *Cache) ListByKind(kind string) []ResourceSnapshot {
	c.mu.RLock()
	defer c.mu.RUnlock()
	out := make([]ResourceSnapshot, 0)
	for k, v := range c.snapshots {
		if k.Kind == kind {
			out = append(out, v)
		}
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Key.Namespace != out[j].Key.Namespace {
			return out[i].Key.Namespace < out[j].Key.Namespace
		}
		return out[i].Key.Name < out[j].Key.Name
	})
	return out
}

// resourceVersionNewer reports whether a is a strictly newer resourceVersion
// than b. Kubernetes resourceVersions are opaque strings but in every
// shipping implementation (etcd-backed) they are monotonically increasing
// decimal integers; this compares as integers when possible and otherwise
// treats any version that differs from b as newer, so a malformed/opaque
// version never gets stuck rejecting all future updates.
func resourceVersionNewer(a, b string) bool {
	if b == "" {
		return true
	}
	if a == b {
		return false
	}
	an, aok := parseUint(a)
	bn, bok := parseUint(b)
	if aok && bok {
		return an > bn
	}
	return a != b
}

func parseUint(s string) (uint64, bool) {
	var n uint64
	if s == "" {
		return 0, false
	}
	for _, r := range s {
		if r < '0' || r > '9' {
			return 0, false
		}
		n = n*10 + uint64(r-'0')
	}
	return n, true
}
