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

package alertengine

import (
	"context"
	"net/http"
	"sort"
	"sync"
	"time"

	"github.com/google/uuid"
	"golang.org/x/time/rate"
	"k8s.io/apimachinery/pkg/types"
	"sigs.k8s.io/controller-runtime/pkg/client"
	"sigs.k8s.io/controller-runtime/pkg/log"

	"github.com/yuptime-io/yuptime-operator/api/v1alpha1"
	"github.com/yuptime-io/yuptime-operator/internal/cache"
	"github.com/yuptime-io/yuptime-operator/internal/metrics"
	"github.com/yuptime-io/yuptime-operator/internal/selector"
	"github.com/yuptime-io/yuptime-operator/internal/store"
	"github.com/yuptime-io/yuptime-operator/internal/suppression"
)

const kindNotificationPolicy = "NotificationPolicy"

// Engine matches a probe-driven AlertEvent against every NotificationPolicy,
// renders alert content, and queues one delivery per (policy, provider)
// pair that survives suppression, dedup and rate-limit gating. Incident
// bookkeeping is the caller's responsibility: Evaluate only cares whether
// the event it was handed represents a state change or a flapping episode,
// not how that was derived.
type Engine struct {
	Client      client.Client
	Cache       *cache.Cache
	Store       store.Store
	Suppression *suppression.Index

	// DefaultMaxAlertsPerMinute seeds every per-provider global rate
	// limiter. A NotificationProvider's own spec.rateLimiting is not read.
	DefaultMaxAlertsPerMinute int

	httpClient *http.Client

	mu       sync.Mutex
	limiters map[string]*rate.Limiter
}

// New builds an Engine. Call once and reuse; Engine is safe for concurrent use.
func New(c client.Client, ch *cache.Cache, st store.Store, supp *suppression.Index, defaultMaxAlertsPerMinute int) *Engine {
	return &Engine{
		Client:                    c,
		Cache:                     ch,
		Store:                     st,
		Suppression:               supp,
		DefaultMaxAlertsPerMinute: defaultMaxAlertsPerMinute,
		httpClient:                &http.Client{Timeout: 10 * time.Second},
		limiters:                  make(map[string]*rate.Limiter),
	}
}

// Evaluate runs ev against every matching NotificationPolicy and queues
// deliveries for the providers each fired policy lists.
func (e *Engine) Evaluate(ctx context.Context, monitor *v1alpha1.Monitor, ev AlertEvent) {
	logger := log.FromContext(ctx).WithName("alertengine")

	triggers := firedTriggers(ev)
	if len(triggers) == 0 {
		return
	}

	if monitor.Spec.AlertmanagerURL != "" && ev.IsStateChange {
		go postToAlertmanager(context.WithoutCancel(ctx), e.httpClient, monitor.Spec.AlertmanagerURL, ev, monitor.Spec.Tags)
	}

	policies := e.matchingPolicies(monitor)
	now := ev.Timestamp
	if now.IsZero() {
		now = time.Now()
	}

	for _, policy := range policies {
		for _, trig := range triggers {
			if !triggerEnabled(policy.Spec.Triggers, trig) {
				continue
			}

			data := renderData{
				MonitorName:      monitor.Name,
				MonitorNamespace: monitor.Namespace,
				MonitorID:        string(monitor.UID),
				State:            ev.CurrState,
				Reason:           ev.Reason,
				Message:          ev.Message,
				Latency:          ev.Latency,
			}
			title := render(policy.Spec.Formatting.TitleTemplate, defaultTitleTemplate, data)
			body := render(policy.Spec.Formatting.BodyTemplate, defaultBodyTemplate, data)
			dk := dedupKey(policy.Spec.Dedup.KeyTemplate, data.MonitorID, data.MonitorName, policy.Name)

			for _, providerName := range policy.Spec.Providers {
				status, reason := e.gate(ctx, monitor, policy, dk, now)

				rec := store.DeliveryRecord{
					ID:          uuid.NewString(),
					MonitorNS:   monitor.Namespace,
					MonitorName: monitor.Name,
					PolicyName:  policy.Name,
					Provider:    providerName,
					Title:       title,
					Body:        body,
					DedupKey:    dk,
					Status:      string(status),
					LastError:   reason,
					CreatedAt:   now,
				}

				if err := e.Store.QueueDelivery(ctx, rec); err != nil {
					logger.Error(err, "failed to queue delivery", "monitor", monitor.Name, "policy", policy.Name, "provider", providerName)
					continue
				}

				outcome := outcomeQueued
				if status == store.DeliveryDeduped {
					outcome = dedupOutcome(reason)
				}
				metrics.RecordAlert(monitor.Namespace, monitor.Name, string(trig), outcome)
			}
		}
	}
}

// gate runs the suppression -> dedup -> rate-limit sequence and returns the
// resulting status plus (when deduped) the human-readable reason stored in
// the delivery record's LastError field.
func (e *Engine) gate(ctx context.Context, monitor *v1alpha1.Monitor, policy v1alpha1.NotificationPolicy, dk string, now time.Time) (store.DeliveryStatus, string) {
	if suppressed, why := e.Suppression.IsSuppressed(monitor, now); suppressed {
		if why.Kind == "Silence" {
			return store.DeliveryDeduped, "Silenced by: " + why.Namespace + "/" + why.Name
		}
		return store.DeliveryDeduped, "In maintenance window: " + why.Namespace + "/" + why.Name
	}

	if windowMin := policy.Spec.Dedup.WindowMinutes; windowMin > 0 {
		since := now.Add(-time.Duration(windowMin) * time.Minute)
		dup, err := e.Store.HasSentWithDedupKey(ctx, dk, since)
		if err == nil && dup {
			return store.DeliveryDeduped, "duplicate_in_window"
		}
	}

	if minBetween := policy.Spec.RateLimit.MinMinutesBetweenAlerts; minBetween > 0 {
		since := now.Add(-time.Duration(minBetween) * time.Minute)
		limited, err := e.Store.HasSentForPolicy(ctx, types.NamespacedName{Namespace: monitor.Namespace, Name: monitor.Name}, policy.Name, since)
		if err == nil && limited {
			return store.DeliveryDeduped, "rate_limited"
		}
	}

	for _, providerName := range policy.Spec.Providers {
		if !e.providerLimiter(providerName).Allow() {
			return store.DeliveryDeduped, "rate_limited"
		}
	}

	return store.DeliveryPending, ""
}

// providerLimiter returns (creating if needed) the global per-provider
// limiter, sized from the engine-wide DefaultMaxAlertsPerMinute (60 when
// unset). The NotificationProvider's spec.rateLimiting is not consulted.
func (e *Engine) providerLimiter(providerName string) *rate.Limiter {
	e.mu.Lock()
	defer e.mu.Unlock()

	if l, ok := e.limiters[providerName]; ok {
		return l
	}

	maxPerMinute := e.DefaultMaxAlertsPerMinute
	if maxPerMinute <= 0 {
		maxPerMinute = 60
	}
	l := rate.NewLimiter(rate.Limit(float64(maxPerMinute)/60), maxPerMinute)
	e.limiters[providerName] = l
	return l
}

// matchingPolicies returns every NotificationPolicy matching monitor,
// ordered by priority descending (stable across equal priorities, so
// iteration order is deterministic).
func (e *Engine) matchingPolicies(monitor *v1alpha1.Monitor) []v1alpha1.NotificationPolicy {
	var matched []v1alpha1.NotificationPolicy
	for _, snap := range e.Cache.ListByKind(kindNotificationPolicy) {
		policy, ok := snap.Object.(*v1alpha1.NotificationPolicy)
		if !ok {
			continue
		}
		if selector.Matches(&policy.Spec.Match, monitor) {
			matched = append(matched, *policy)
		}
	}
	sort.SliceStable(matched, func(i, j int) bool {
		return matched[i].Spec.Priority > matched[j].Spec.Priority
	})
	return matched
}

func firedTriggers(ev AlertEvent) []trigger {
	var out []trigger
	if ev.IsStateChange && ev.CurrState == "down" {
		out = append(out, triggerDown)
	}
	if ev.IsStateChange && ev.CurrState == "up" {
		out = append(out, triggerUp)
	}
	if ev.Flapping {
		out = append(out, triggerFlapping)
	}
	return out
}

func triggerEnabled(t v1alpha1.PolicyTriggers, trig trigger) bool {
	switch trig {
	case triggerDown:
		return t.OnDown
	case triggerUp:
		return t.OnUp
	case triggerFlapping:
		return t.OnFlapping
	}
	return false
}

func dedupOutcome(reason string) string {
	if reason == "rate_limited" {
		return outcomeRateLimited
	}
	if reason == "duplicate_in_window" {
		return outcomeDeduped
	}
	return outcomeSuppressed
}
