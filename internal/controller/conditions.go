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

package controller

import (
	"context"
	"time"

	"github.com/google/uuid"
	metav1 "k8s.io/apimachinery/pkg/apis/meta/v1"
	"sigs.k8s.io/controller-runtime/pkg/log"

	"github.com/yuptime-io/yuptime-operator/internal/store"
)

// finalizerName is set on every reconciled kind that owns cluster-external
// state (scheduler registration, cache membership) that must be cleaned up
// before Kubernetes deletes the object.
const finalizerName = "yuptime.io/finalizer"

// Cache kind strings, mirrored from the packages that read these snapshots
// (internal/alertengine, internal/suppression, internal/delivery) so the
// reconcilers writing them and the consumers reading them never drift.
const (
	kindNotificationProvider = "NotificationProvider"
	kindNotificationPolicy   = "NotificationPolicy"
	kindSilence              = "Silence"
	kindMaintenanceWindow    = "MaintenanceWindow"
)

// setCondition finds-or-appends condType in conditions, generalizing the
// per-reconciler setCondition method the teacher repeats on every
// controller (cronjobmonitor_controller.go, alertchannel_controller.go,
// guardianconfig_controller.go) into one shared helper operating on the
// condition slice directly, since every reconciled kind's Status embeds the
// same StandardStatus shape.
func setCondition(conditions *[]metav1.Condition, condType string, status metav1.ConditionStatus, reason, message string) {
	now := metav1.Now()
	condition := metav1.Condition{
		Type:               condType,
		Status:             status,
		LastTransitionTime: now,
		Reason:             reason,
		Message:            message,
	}

	for i, c := range *conditions {
		if c.Type == condType {
			if c.Status != status {
				(*conditions)[i] = condition
			}
			return
		}
	}
	*conditions = append(*conditions, condition)
}

// appendAudit records one reconciler outcome to the audit trail. A nil st
// (a reconciler wired without a store) is a silent no-op;
// a write failure is logged rather than failing reconciliation, since the
// audit trail is a secondary record of what the reconciler already did, not
// a gate on doing it.
func appendAudit(ctx context.Context, st store.Store, kind, namespace, name, verb, detail string) {
	if st == nil {
		return
	}
	if err := st.AppendAudit(ctx, store.AuditRecord{
		ID:        uuid.NewString(),
		Timestamp: time.Now(),
		Actor:     "controller",
		Verb:      verb,
		Kind:      kind,
		Namespace: namespace,
		Name:      name,
		Detail:    detail,
	}); err != nil {
		log.FromContext(ctx).Error(err, "failed to append audit record", "kind", kind, "namespace", namespace, "name", name)
	}
}
