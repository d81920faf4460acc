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

// Package alertengine evaluates NotificationPolicy matches against a probe
// result, renders per-policy alert content, and queues deliveries. It does
// not deliver anything itself; that is internal/delivery's job, driven by
// the store.DeliveryRecord rows this package queues.
package alertengine

import (
	"time"

	"k8s.io/apimachinery/pkg/types"
)

// AlertEvent is one probe-driven observation for a monitor, already
// classified by the caller as a bare heartbeat or a state change.
type AlertEvent struct {
	Monitor       types.NamespacedName
	PrevState     string
	CurrState     string
	Reason        string
	Message       string
	Latency       time.Duration
	Timestamp     time.Time
	IsStateChange bool
	Flapping      bool
}

// trigger identifies which PolicyTriggers field gated an evaluation, used
// both for template rendering and for the alerts-evaluated metric.
type trigger string

const (
	triggerDown     trigger = "onDown"
	triggerUp       trigger = "onUp"
	triggerFlapping trigger = "onFlapping"
)

// outcome labels how an evaluated (policy, provider) pair was resolved,
// shared with metrics.RecordAlert.
const (
	outcomeQueued      = "queued"
	outcomeSuppressed  = "suppressed"
	outcomeDeduped     = "deduped"
	outcomeRateLimited = "rate-limited"
)
