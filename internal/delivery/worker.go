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

package delivery

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/sony/gobreaker"
	"sigs.k8s.io/controller-runtime/pkg/client"
	"sigs.k8s.io/controller-runtime/pkg/log"

	"github.com/yuptime-io/yuptime-operator/api/v1alpha1"
	"github.com/yuptime-io/yuptime-operator/internal/cache"
	"github.com/yuptime-io/yuptime-operator/internal/metrics"
	"github.com/yuptime-io/yuptime-operator/internal/store"
)

const kindNotificationProvider = "NotificationProvider"

// Worker is the background loop that drains pending deliveries, one batch
// per tick, calling each provider's deliver capability through a per-provider
// circuit breaker. A failed delivery never poisons the loop: every record is
// attempted independently and the worker moves on regardless of outcome.
type Worker struct {
	Store store.Store
	Cache *cache.Cache

	// Tick bounds how often the worker polls for pending deliveries.
	Tick time.Duration

	// BatchSize bounds how many pending records are drained per tick.
	BatchSize int

	secrets *secretResolver

	mu       sync.Mutex
	breakers map[string]*gobreaker.CircuitBreaker
}

// NewWorker builds a Worker. Call once and reuse.
func NewWorker(c client.Client, st store.Store, ch *cache.Cache) *Worker {
	return &Worker{
		Store:     st,
		Cache:     ch,
		Tick:      5 * time.Second,
		BatchSize: 50,
		secrets:   newSecretResolver(c),
		breakers:  make(map[string]*gobreaker.CircuitBreaker),
	}
}

// Start implements manager.Runnable.
func (w *Worker) Start(ctx context.Context) error {
	logger := log.FromContext(ctx).WithName("delivery-worker")
	ticker := time.NewTicker(w.Tick)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return nil
		case <-ticker.C:
			w.drain(ctx, logger)
		}
	}
}

type workerLogger interface {
	Info(msg string, keysAndValues ...any)
	Error(err error, msg string, keysAndValues ...any)
}

func (w *Worker) drain(ctx context.Context, logger workerLogger) {
	recs, err := w.Store.ListPendingDeliveries(ctx, w.BatchSize)
	if err != nil {
		logger.Error(err, "failed to list pending deliveries")
		return
	}

	for _, rec := range recs {
		w.attempt(ctx, rec, logger)
	}
}

func (w *Worker) attempt(ctx context.Context, rec store.DeliveryRecord, logger workerLogger) {
	snap, ok := w.Cache.Get(cache.Key{Kind: kindNotificationProvider, Namespace: rec.MonitorNS, Name: rec.Provider})
	if !ok {
		w.fail(ctx, rec, fmt.Sprintf("notification provider %s not found", rec.Provider), logger)
		return
	}
	providerCRD, ok := snap.Object.(*v1alpha1.NotificationProvider)
	if !ok {
		w.fail(ctx, rec, fmt.Sprintf("unexpected object for provider %s", rec.Provider), logger)
		return
	}

	provider, err := newProvider(providerCRD, w.secrets)
	if err != nil {
		w.fail(ctx, rec, err.Error(), logger)
		return
	}

	breaker := w.breakerFor(rec.Provider)
	_, err = breaker.Execute(func() (interface{}, error) {
		return nil, provider.Deliver(ctx, rec.Title, rec.Body)
	})

	if err != nil {
		reason := err.Error()
		if err == gobreaker.ErrOpenState {
			reason = "circuit open"
		}
		w.fail(ctx, rec, reason, logger)
		return
	}

	if err := w.Store.UpdateDeliveryStatus(ctx, rec.ID, store.DeliverySent, ""); err != nil {
		logger.Error(err, "failed to mark delivery sent", "id", rec.ID)
	}
	metrics.RecordDelivery(rec.Provider, "sent")
	w.recordStats(ctx, rec.Provider, true, "")
}

func (w *Worker) fail(ctx context.Context, rec store.DeliveryRecord, reason string, logger workerLogger) {
	if err := w.Store.UpdateDeliveryStatus(ctx, rec.ID, store.DeliveryFailed, reason); err != nil {
		logger.Error(err, "failed to mark delivery failed", "id", rec.ID)
	}
	metrics.RecordDelivery(rec.Provider, "failed")
	w.recordStats(ctx, rec.Provider, false, reason)
}

func (w *Worker) recordStats(ctx context.Context, providerName string, success bool, lastErr string) {
	existing, _ := w.Store.GetProviderStats(ctx, providerName)
	stats := store.ProviderStatsRecord{ProviderName: providerName}
	if existing != nil {
		stats = *existing
	}

	now := time.Now()
	if success {
		stats.DeliveredTotal++
		stats.LastDeliveredAt = &now
		stats.ConsecutiveFailures = 0
	} else {
		stats.FailedTotal++
		stats.LastFailedAt = &now
		stats.LastError = lastErr
		stats.ConsecutiveFailures++
	}

	_ = w.Store.SaveProviderStats(ctx, stats)
}

func (w *Worker) breakerFor(providerName string) *gobreaker.CircuitBreaker {
	w.mu.Lock()
	defer w.mu.Unlock()

	if b, ok := w.breakers[providerName]; ok {
		return b
	}

	b := gobreaker.NewCircuitBreaker(gobreaker.Settings{
		Name:        providerName,
		MaxRequests: 2,
		Interval:    time.Minute,
		Timeout:     30 * time.Second,
		ReadyToTrip: func(counts gobreaker.Counts) bool {
			return counts.ConsecutiveFailures >= 5
		},
	})
	w.breakers[providerName] = b
	return b
}
