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

// PolicyTriggers controls which state transitions a policy fires on.
type PolicyTriggers struct {
	// +optional
	OnDown bool `json:"onDown,omitempty"`
	// +optional
	OnUp bool `json:"onUp,omitempty"`
	// +optional
	OnFlapping bool `json:"onFlapping,omitempty"`
	// OnCertExpiring is reserved: parsed and stored but never fired by the
	// alert engine (see onCertExpiring decision in design notes).
	// +optional
	OnCertExpiring bool `json:"onCertExpiring,omitempty"`
}

// DedupConfig controls the dedup key and window used to collapse repeated alerts.
type DedupConfig struct {
	// KeyTemplate supports {monitorName} and {monitorId}. Defaults to
	// "{monitorId}:<policy name>" when empty.
	// +optional
	KeyTemplate string `json:"keyTemplate,omitempty"`

	// +optional
	WindowMinutes int32 `json:"windowMinutes,omitempty"`
}

// RateLimitSpec bounds delivery rate per (monitor, policy).
type RateLimitSpec struct {
	// MinMinutesBetweenAlerts == 0 disables rate limiting.
	// +optional
	MinMinutesBetweenAlerts int32 `json:"minMinutesBetweenAlerts,omitempty"`
}

// ResendConfig holds a re-delivery interval for a still-open incident. No
// component re-delivers alerts from it; it is accepted and stored only.
type ResendConfig struct {
	// +optional
	IntervalMinutes int32 `json:"intervalMinutes,omitempty"`
}

// FormattingConfig provides Go-template strings rendered for each alert.
type FormattingConfig struct {
	// +optional
	TitleTemplate string `json:"titleTemplate,omitempty"`
	// +optional
	BodyTemplate string `json:"bodyTemplate,omitempty"`
}

// NotificationPolicySpec defines the desired state of a NotificationPolicy.
type NotificationPolicySpec struct {
	Match Selector `json:"match"`

	// +optional
	Priority int32 `json:"priority,omitempty"`

	Triggers PolicyTriggers `json:"triggers"`

	// Providers is a list of NotificationProvider names.
	Providers []string `json:"providers"`

	// +optional
	Dedup DedupConfig `json:"dedup,omitempty"`

	// +optional
	RateLimit RateLimitSpec `json:"rateLimit,omitempty"`

	// +optional
	Resend ResendConfig `json:"resend,omitempty"`

	// +optional
	Formatting FormattingConfig `json:"formatting,omitempty"`
}

// NotificationPolicyStatus defines the observed state of a NotificationPolicy.
type NotificationPolicyStatus struct {
	StandardStatus `json:",inline"`
}

// +kubebuilder:object:root=true
// +kubebuilder:subresource:status
// +kubebuilder:printcolumn:name="Priority",type=integer,JSONPath=`.spec.priority`
// +kubebuilder:printcolumn:name="Age",type=date,JSONPath=`.metadata.creationTimestamp`

// NotificationPolicy is the Schema for the notificationpolicies API.
type NotificationPolicy struct {
	metav1.TypeMeta   `json:",inline"`
	metav1.ObjectMeta `json:"metadata,omitempty"`

	Spec   NotificationPolicySpec   `json:"spec,omitempty"`
	Status NotificationPolicyStatus `json:"status,omitempty"`
}

// +kubebuilder:object:root=true

// NotificationPolicyList contains a list of NotificationPolicy.
type NotificationPolicyList struct {
	metav1.TypeMeta `json:",inline"`
	metav1.ListMeta `json:"metadata,omitempty"`
	Items           []NotificationPolicy `json:"items"`
}

func init() {
	SchemeBuilder.Register(&NotificationPolicy{}, &NotificationPolicyList{})
}
