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

// Package delivery drives the delivery queue worker: it pops pending
// store.DeliveryRecord rows, resolves the NotificationProvider they name,
// and calls that provider's deliver(title, body) capability through a
// per-provider circuit breaker.
package delivery

import (
	"context"
	"fmt"
	"sync"
	"time"

	corev1 "k8s.io/api/core/v1"
	"k8s.io/apimachinery/pkg/types"
	"sigs.k8s.io/controller-runtime/pkg/client"

	"github.com/yuptime-io/yuptime-operator/api/v1alpha1"
)

// secretCacheTTL bounds how long a resolved secret value is reused before
// re-reading from the API server, so a rotated credential is picked up
// without restarting the operator.
const secretCacheTTL = 5 * time.Minute

type secretCacheEntry struct {
	value     string
	expiresAt time.Time
}

// secretResolver caches NamespacedSecretKeyRef lookups for secretCacheTTL,
// generalizing the teacher's uncached getValueFromSecret: delivery is on the
// hot path of every alert dispatch, and a credential rarely changes.
type secretResolver struct {
	client client.Client

	mu    sync.Mutex
	cache map[string]secretCacheEntry
}

func newSecretResolver(c client.Client) *secretResolver {
	return &secretResolver{client: c, cache: make(map[string]secretCacheEntry)}
}

// keyValue resolves a key in a namespaced Secret.
func (r *secretResolver) keyValue(ctx context.Context, ref v1alpha1.NamespacedSecretKeyRef) (string, error) {
	cacheKey := ref.Namespace + "/" + ref.Name + "#" + ref.Key
	if v, ok := r.lookup(cacheKey); ok {
		return v, nil
	}

	secret := &corev1.Secret{}
	if err := r.client.Get(ctx, types.NamespacedName{Namespace: ref.Namespace, Name: ref.Name}, secret); err != nil {
		return "", fmt.Errorf("failed to get secret: %w", err)
	}

	value, ok := secret.Data[ref.Key]
	if !ok {
		return "", fmt.Errorf("key %s not found in secret", ref.Key)
	}

	r.store(cacheKey, string(value))
	return string(value), nil
}

// secretValues resolves every key of a namespaced Secret, used by the email
// provider which needs host/port/username/password together.
func (r *secretResolver) secretValues(ctx context.Context, ref v1alpha1.NamespacedSecretRef) (map[string][]byte, error) {
	secret := &corev1.Secret{}
	if err := r.client.Get(ctx, types.NamespacedName{Namespace: ref.Namespace, Name: ref.Name}, secret); err != nil {
		return nil, fmt.Errorf("failed to get secret: %w", err)
	}
	return secret.Data, nil
}

func (r *secretResolver) lookup(key string) (string, bool) {
	r.mu.Lock()
	defer r.mu.Unlock()
	entry, ok := r.cache[key]
	if !ok || time.Now().After(entry.expiresAt) {
		return "", false
	}
	return entry.value, true
}

func (r *secretResolver) store(key, value string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.cache[key] = secretCacheEntry{value: value, expiresAt: time.Now().Add(secretCacheTTL)}
}
