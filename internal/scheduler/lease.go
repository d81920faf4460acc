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

package scheduler

import (
	"context"
	"time"

	"github.com/redis/go-redis/v9"
)

// LeaseBackend is the scheduler driver's cluster-wide singleton lock. Exactly
// one driver replica holds the lease at a time; only the holder pops the
// queue.
type LeaseBackend interface {
	// Run blocks, invoking onAcquired when this replica becomes the holder
	// and onLost when it stops being the holder (lease expired, renewal
	// failed, or ctx was cancelled). Run returns when ctx is done.
	Run(ctx context.Context, onAcquired func(context.Context), onLost func())
}

// KubernetesLeaseBackend defers entirely to controller-runtime's own manager
// leader election (a coordination.k8s.io/v1 Lease), reusing the teacher's
// existing leader-election wiring verbatim rather than introducing a second
// locking mechanism. Elected is manager.Manager.Elected().
type KubernetesLeaseBackend struct {
	Elected <-chan struct{}
}

func (b *KubernetesLeaseBackend) Run(ctx context.Context, onAcquired func(context.Context), onLost func()) {
	select {
	case <-ctx.Done():
		return
	case <-b.Elected:
		onAcquired(ctx)
		<-ctx.Done()
		onLost()
	}
}

// NoopLeaseBackend runs without a holder, for dev mode where leasing is
// unavailable: the driver proceeds unconditionally as if it always holds the
// lease, logging a warning is the caller's responsibility.
type NoopLeaseBackend struct{}

func (NoopLeaseBackend) Run(ctx context.Context, onAcquired func(context.Context), onLost func()) {
	onAcquired(ctx)
	<-ctx.Done()
	onLost()
}

// RedisLeaseBackend acquires the lease against Redis via `SET NX PX` and
// renews it with a periodic `EXPIRE`, for clusters that would rather not
// grant this operator coordination.k8s.io RBAC. It does not delete the key
// when the lease is lost or Run returns; the key lapses after TTL.
type RedisLeaseBackend struct {
	Client   redis.UniversalClient
	Key      string
	Holder   string
	TTL      time.Duration
	Interval time.Duration
}

// NewRedisLeaseBackend builds a Redis-backed lease with a 15s TTL and a 3s
// poll interval.
func NewRedisLeaseBackend(client redis.UniversalClient, key, holder string) *RedisLeaseBackend {
	return &RedisLeaseBackend{
		Client:   client,
		Key:      key,
		Holder:   holder,
		TTL:      15 * time.Second,
		Interval: 3 * time.Second,
	}
}

func (b *RedisLeaseBackend) Run(ctx context.Context, onAcquired func(context.Context), onLost func()) {
	ticker := time.NewTicker(b.Interval)
	defer ticker.Stop()

	held := false
	var cancelHolder context.CancelFunc
	holderCtx := ctx

	stopHolding := func() {
		if held {
			if cancelHolder != nil {
				cancelHolder()
			}
			onLost()
			held = false
		}
	}
	defer stopHolding()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			if held {
				ok, err := b.Client.Expire(ctx, b.Key, b.TTL).Result()
				if err != nil || !ok {
					stopHolding()
					continue
				}
				continue
			}
			ok, err := b.Client.SetNX(ctx, b.Key, b.Holder, b.TTL).Result()
			if err != nil || !ok {
				continue
			}
			held = true
			holderCtx, cancelHolder = context.WithCancel(ctx)
			go onAcquired(holderCtx)
		}
	}
}
