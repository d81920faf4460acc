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

package v1alpha1

import (
	metav1 "k8s.io/apimachinery/pkg/apis/meta/v1"
)

// Selector is the conjunction selector shared by NotificationPolicy, Silence
// and MaintenanceWindow: matchNamespaces, matchLabels (equality map),
// matchExpressions (In|NotIn|Exists|DoesNotExist), matchTags and explicit
// matchNames. All non-empty dimensions must match (AND).
type Selector struct {
	// +optional
	MatchNamespaces []string `json:"matchNamespaces,omitempty"`

	// +optional
	MatchNames []string `json:"matchNames,omitempty"`

	// +optional
	MatchLabels map[string]string `json:"matchLabels,omitempty"`

	// +optional
	MatchExpressions []metav1.LabelSelectorRequirement `json:"matchExpressions,omitempty"`

	// +optional
	MatchTags []string `json:"matchTags,omitempty"`
}

// ScheduleSpec is a Monitor's probing schedule.
type ScheduleSpec struct {
	// IntervalSec is the nominal period between probes. Must be >= the
	// cluster-wide configured minimum (YuptimeSettings.spec.scheduler.minIntervalSec).
	// +kubebuilder:validation:Minimum=20
	IntervalSec int32 `json:"intervalSec"`

	// TimeoutSec must be strictly less than IntervalSec.
	TimeoutSec int32 `json:"timeoutSec"`

	// +optional
	// +kubebuilder:validation:Minimum=0
	Retries int32 `json:"retries,omitempty"`

	// +optional
	InitialDelaySec int32 `json:"initialDelaySec,omitempty"`

	// +optional
	// +kubebuilder:validation:Minimum=0
	// +kubebuilder:validation:Maximum=100
	JitterPercent int32 `json:"jitterPercent,omitempty"`
}

// Condition type/reason constants shared across all reconciled kinds.
const (
	ConditionValid      = "Valid"
	ConditionReconciled = "Reconciled"
	ConditionReady      = "Ready"

	ReasonValidationFailed = "ValidationFailed"
	ReasonReconcileError   = "ReconcileError"
	ReasonReconciled       = "Reconciled"
)

// StandardStatus is Go-embedded (with `json:",inline"`) in every reconciled
// kind's status.
type StandardStatus struct {
	// +optional
	Conditions []metav1.Condition `json:"conditions,omitempty"`

	// +optional
	ObservedGeneration int64 `json:"observedGeneration,omitempty"`
}
