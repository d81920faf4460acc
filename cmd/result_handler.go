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

package main

import (
	"context"
	"time"

	metav1 "k8s.io/apimachinery/pkg/apis/meta/v1"
	"k8s.io/apimachinery/pkg/types"
	"k8s.io/client-go/util/retry"
	"sigs.k8s.io/controller-runtime/pkg/client"
	"sigs.k8s.io/controller-runtime/pkg/log"

	"github.com/yuptime-io/yuptime-operator/api/v1alpha1"
	"github.com/yuptime-io/yuptime-operator/internal/alertengine"
	"github.com/yuptime-io/yuptime-operator/internal/config"
	"github.com/yuptime-io/yuptime-operator/internal/probe"
	"github.com/yuptime-io/yuptime-operator/internal/scheduler"
	"github.com/yuptime-io/yuptime-operator/internal/store"
)

// newResultHandler closes over the collaborators every completed probe
// needs: persist the heartbeat, open or close the monitor's incident,
// classify flapping, and hand the outcome to the alert engine. This is the
// one place the scheduler driver's probe-only view of the world meets the
// incident/alert state machine.
func newResultHandler(c client.Client, st store.Store, engine *alertengine.Engine, cfg *config.Config) scheduler.ResultHandler {
	return func(ctx context.Context, namespace, name string, result probe.Result) {
		logger := log.FromContext(ctx).WithValues("monitor", namespace+"/"+name)
		key := types.NamespacedName{Namespace: namespace, Name: name}
		now := time.Now()

		if err := st.RecordHeartbeat(ctx, store.Heartbeat{
			MonitorNS:   namespace,
			MonitorName: name,
			State:       string(result.State),
			LatencyMs:   result.LatencyMs,
			Reason:      result.Reason,
			Message:     result.Message,
			CheckedAt:   now,
		}); err != nil {
			logger.Error(err, "failed to record heartbeat")
		}

		var monitor v1alpha1.Monitor
		if err := c.Get(ctx, key, &monitor); err != nil {
			logger.Error(err, "failed to fetch monitor for result handling")
			return
		}

		prevState := monitor.Status.State
		if prevState == "" {
			prevState = string(probe.StatePending)
		}
		currState := string(result.State)
		isStateChange := prevState != currState

		if err := handleIncident(ctx, st, key, currState, now, result); err != nil {
			logger.Error(err, "failed to update incident state")
		}

		flapping := false
		if isStateChange {
			var err error
			flapping, err = alertengine.DetectFlapping(ctx, st, key, cfg.Flapping)
			if err != nil {
				logger.Error(err, "failed to evaluate flapping")
			}
		}

		if err := updateMonitorStatus(ctx, c, key, currState, now, result); err != nil {
			logger.Error(err, "failed to update monitor status")
		}

		engine.Evaluate(ctx, &monitor, alertengine.AlertEvent{
			Monitor:       key,
			PrevState:     prevState,
			CurrState:     currState,
			Reason:        result.Reason,
			Message:       result.Message,
			Latency:       time.Duration(result.LatencyMs) * time.Millisecond,
			Timestamp:     now,
			IsStateChange: isStateChange,
			Flapping:      flapping,
		})
	}
}

// handleIncident opens an incident on a transition into "down" and closes
// the open one on the next "up" result (other states leave it open). A monitor with no open incident
// on a down result starting a fresh incident is the common case (first
// failure); a down result while one is already open is a no-op (the
// incident is already tracking the outage).
func handleIncident(ctx context.Context, st store.Store, key types.NamespacedName, currState string, at time.Time, result probe.Result) error {
	open, err := st.GetOpenIncident(ctx, key)
	if err != nil {
		return err
	}

	switch {
	case currState == string(probe.StateDown) && open == nil:
		_, err := st.OpenIncident(ctx, key, at, result.Reason, result.Message)
		return err
	case currState == string(probe.StateUp) && open != nil:
		return st.CloseIncident(ctx, open.ID, at)
	default:
		return nil
	}
}

func updateMonitorStatus(ctx context.Context, c client.Client, key types.NamespacedName, currState string, at time.Time, result probe.Result) error {
	return retry.RetryOnConflict(retry.DefaultRetry, func() error {
		var latest v1alpha1.Monitor
		if err := c.Get(ctx, key, &latest); err != nil {
			return err
		}
		latest.Status.State = currState
		checked := metav1.NewTime(at)
		latest.Status.LastCheckedAt = &checked
		latest.Status.LastLatencyMs = result.LatencyMs
		if currState == string(probe.StateDown) && latest.Status.OpenIncidentStartedAt == nil {
			latest.Status.OpenIncidentStartedAt = &checked
		} else if currState == string(probe.StateUp) {
			latest.Status.OpenIncidentStartedAt = nil
		}
		return c.Status().Update(ctx, &latest)
	})
}
