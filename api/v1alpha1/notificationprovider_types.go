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

// NotificationProviderSpec defines the desired state of a NotificationProvider:
// the single `deliver(title, body) -> result` capability, type-discriminated.
type NotificationProviderSpec struct {
	// +kubebuilder:validation:Enum=slack;pagerduty;webhook;email
	Type string `json:"type"`

	// +optional
	Slack *SlackConfig `json:"slack,omitempty"`

	// +optional
	PagerDuty *PagerDutyConfig `json:"pagerduty,omitempty"`

	// +optional
	Webhook *WebhookConfig `json:"webhook,omitempty"`

	// +optional
	Email *EmailConfig `json:"email,omitempty"`

	// +optional
	RateLimiting *RateLimitConfig `json:"rateLimiting,omitempty"`

	// TestOnSave sends a test alert when saved.
	// +optional
	TestOnSave bool `json:"testOnSave,omitempty"`
}

// SlackConfig configures the Slack notification provider.
type SlackConfig struct {
	WebhookSecretRef NamespacedSecretKeyRef `json:"webhookSecretRef"`

	// +optional
	DefaultChannel string `json:"defaultChannel,omitempty"`
}

// PagerDutyConfig configures the PagerDuty notification provider.
type PagerDutyConfig struct {
	RoutingKeySecretRef NamespacedSecretKeyRef `json:"routingKeySecretRef"`

	// +kubebuilder:validation:Enum=critical;error;warning;info
	// +optional
	Severity string `json:"severity,omitempty"`
}

// WebhookConfig configures the generic webhook notification provider.
type WebhookConfig struct {
	URLSecretRef NamespacedSecretKeyRef `json:"urlSecretRef"`

	// +kubebuilder:validation:Enum=POST;PUT
	// +optional
	Method string `json:"method,omitempty"`

	// +optional
	Headers map[string]string `json:"headers,omitempty"`
}

// EmailConfig configures the email notification provider.
type EmailConfig struct {
	SMTPSecretRef NamespacedSecretRef `json:"smtpSecretRef"`

	From string   `json:"from"`
	To   []string `json:"to"`
}

// NamespacedSecretKeyRef references a key in a namespaced Secret.
type NamespacedSecretKeyRef struct {
	Name      string `json:"name"`
	Namespace string `json:"namespace"`
	Key       string `json:"key"`
}

// NamespacedSecretRef references a namespaced Secret.
type NamespacedSecretRef struct {
	Name      string `json:"name"`
	Namespace string `json:"namespace"`
}

// RateLimitConfig describes a per-provider delivery rate. The alert engine
// does not read it; its per-provider limiter uses the operator-wide default.
type RateLimitConfig struct {
	// +optional
	MaxAlertsPerHour *int32 `json:"maxAlertsPerHour,omitempty"`

	// +optional
	BurstLimit *int32 `json:"burstLimit,omitempty"`
}

// NotificationProviderStatus defines the observed state of a NotificationProvider.
type NotificationProviderStatus struct {
	StandardStatus `json:",inline"`

	Ready bool `json:"ready"`

	// +optional
	LastTestTime *metav1.Time `json:"lastTestTime,omitempty"`

	// +kubebuilder:validation:Enum=success;failed
	// +optional
	LastTestResult string `json:"lastTestResult,omitempty"`

	// +optional
	LastTestError string `json:"lastTestError,omitempty"`

	AlertsSentTotal int64 `json:"alertsSentTotal"`

	// +optional
	LastAlertTime *metav1.Time `json:"lastAlertTime,omitempty"`

	AlertsFailedTotal int64 `json:"alertsFailedTotal"`

	// +optional
	LastFailedTime *metav1.Time `json:"lastFailedTime,omitempty"`

	// +optional
	LastFailedError string `json:"lastFailedError,omitempty"`

	ConsecutiveFailures int32 `json:"consecutiveFailures"`
}

// +kubebuilder:object:root=true
// +kubebuilder:subresource:status
// +kubebuilder:printcolumn:name="Type",type=string,JSONPath=`.spec.type`
// +kubebuilder:printcolumn:name="Ready",type=boolean,JSONPath=`.status.ready`
// +kubebuilder:printcolumn:name="Age",type=date,JSONPath=`.metadata.creationTimestamp`

// NotificationProvider is the Schema for the notificationproviders API.
type NotificationProvider struct {
	metav1.TypeMeta   `json:",inline"`
	metav1.ObjectMeta `json:"metadata,omitempty"`

	Spec   NotificationProviderSpec   `json:"spec,omitempty"`
	Status NotificationProviderStatus `json:"status,omitempty"`
}

// +kubebuilder:object:root=true

// NotificationProviderList contains a list of NotificationProvider.
type NotificationProviderList struct {
	metav1.TypeMeta `json:",inline"`
	metav1.ListMeta `json:"metadata,omitempty"`
	Items           []NotificationProvider `json:"items"`
}

func init() {
	SchemeBuilder.Register(&NotificationProvider{}, &NotificationProviderList{})
}
