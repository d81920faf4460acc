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

// YuptimeSettingsName is the reserved singleton object name; a YuptimeSettings
// with any other name fails validation (Valid=False).
const YuptimeSettingsName = "cluster"

// SchedulerConfig controls the scheduler driver's minimums and budgets.
type SchedulerConfig struct {
	// MinIntervalSec is the cluster-wide floor for Monitor.spec.schedule.intervalSec.
	// +optional
	MinIntervalSec *int32 `json:"minIntervalSec,omitempty"`

	// MaxConcurrentNetChecks bounds in-flight network probes (default: 50).
	// +optional
	MaxConcurrentNetChecks *int32 `json:"maxConcurrentNetChecks,omitempty"`

	// MaxConcurrentPrivChecks bounds in-flight privileged probes, e.g. ICMP
	// (default: 10).
	// +optional
	MaxConcurrentPrivChecks *int32 `json:"maxConcurrentPrivChecks,omitempty"`

	// LeaseBackend selects the scheduler driver's cluster-wide lock
	// implementation (default: kubernetes).
	// +kubebuilder:validation:Enum=kubernetes;redis
	// +optional
	LeaseBackend string `json:"leaseBackend,omitempty"`

	// PollTickMs bounds the driver's idle poll tick (default: 100).
	// +optional
	PollTickMs *int32 `json:"pollTickMs,omitempty"`
}

// FlappingConfig controls the window used to classify a monitor as flapping.
type FlappingConfig struct {
	// WindowSize is the number of recent heartbeats considered (default: 5).
	// +optional
	WindowSize *int32 `json:"windowSize,omitempty"`

	// MinTransitions is the number of state changes within the window
	// required to classify as flapping (default: 3).
	// +optional
	MinTransitions *int32 `json:"minTransitions,omitempty"`
}

// YuptimeSettingsSpec defines the desired state of YuptimeSettings, the
// cluster-wide singleton configuration object.
type YuptimeSettingsSpec struct {
	// +optional
	Scheduler *SchedulerConfig `json:"scheduler,omitempty"`

	// +optional
	Flapping *FlappingConfig `json:"flapping,omitempty"`

	// +optional
	HistoryRetention *HistoryRetentionConfig `json:"historyRetention,omitempty"`

	// +optional
	Storage *StorageConfig `json:"storage,omitempty"`

	// +optional
	MetricsExport *MetricsExportConfig `json:"metricsExport,omitempty"`

	// +optional
	GlobalRateLimits *GlobalRateLimitsConfig `json:"globalRateLimits,omitempty"`

	// +optional
	IgnoredNamespaces []string `json:"ignoredNamespaces,omitempty"`

	// +optional
	LeaderElection *LeaderElectionConfig `json:"leaderElection,omitempty"`
}

// HistoryRetentionConfig configures retention of heartbeats/delivery records.
type HistoryRetentionConfig struct {
	// +optional
	DefaultDays *int32 `json:"defaultDays,omitempty"`
	// +optional
	MaxDays *int32 `json:"maxDays,omitempty"`
}

// StorageConfig configures the persisted-state backend.
type StorageConfig struct {
	// +kubebuilder:validation:Enum=sqlite;postgres;mysql
	// +optional
	Type string `json:"type,omitempty"`

	// +optional
	SQLite *SQLiteConfig `json:"sqlite,omitempty"`

	// +optional
	PostgreSQL *PostgreSQLConfig `json:"postgres,omitempty"`

	// +optional
	MySQL *MySQLConfig `json:"mysql,omitempty"`
}

type SQLiteConfig struct {
	// +optional
	Path string `json:"path,omitempty"`
}

type PostgreSQLConfig struct {
	Host string `json:"host"`
	// +optional
	Port *int32 `json:"port,omitempty"`
	Database string `json:"database"`
	CredentialsSecretRef NamespacedSecretRef `json:"credentialsSecretRef"`
	// +optional
	SSLMode string `json:"sslMode,omitempty"`
}

type MySQLConfig struct {
	Host string `json:"host"`
	// +optional
	Port *int32 `json:"port,omitempty"`
	Database string `json:"database"`
	CredentialsSecretRef NamespacedSecretRef `json:"credentialsSecretRef"`
}

// MetricsExportConfig configures Prometheus metrics.
type MetricsExportConfig struct {
	// +optional
	Enabled *bool `json:"enabled,omitempty"`
	// +optional
	Port *int32 `json:"port,omitempty"`
	// +optional
	Path string `json:"path,omitempty"`
}

// GlobalRateLimitsConfig bounds alert delivery cluster-wide.
type GlobalRateLimitsConfig struct {
	// +optional
	MaxAlertsPerMinute *int32 `json:"maxAlertsPerMinute,omitempty"`
}

// LeaderElectionConfig configures the controller-runtime manager's leader election.
type LeaderElectionConfig struct {
	// +optional
	Enabled *bool `json:"enabled,omitempty"`
	// +optional
	LeaseDuration *metav1.Duration `json:"leaseDuration,omitempty"`
	// +optional
	RenewDeadline *metav1.Duration `json:"renewDeadline,omitempty"`
	// +optional
	RetryPeriod *metav1.Duration `json:"retryPeriod,omitempty"`
}

// YuptimeSettingsStatus defines the observed state of YuptimeSettings.
type YuptimeSettingsStatus struct {
	StandardStatus `json:",inline"`

	// +optional
	ActiveLeader string `json:"activeLeader,omitempty"`

	TotalMonitors int32 `json:"totalMonitors"`

	TotalAlertsSent24h int32 `json:"totalAlertsSent24h"`

	// +optional
	StorageStatus string `json:"storageStatus,omitempty"`

	// +optional
	LastReconcileTime *metav1.Time `json:"lastReconcileTime,omitempty"`
}

// +kubebuilder:object:root=true
// +kubebuilder:subresource:status
// +kubebuilder:resource:scope=Cluster
// +kubebuilder:printcolumn:name="Monitors",type=integer,JSONPath=`.status.totalMonitors`
// +kubebuilder:printcolumn:name="Storage",type=string,JSONPath=`.status.storageStatus`
// +kubebuilder:printcolumn:name="Age",type=date,JSONPath=`.metadata.creationTimestamp`

// YuptimeSettings is the Schema for the yuptimesettings API.
type YuptimeSettings struct {
	metav1.TypeMeta   `json:",inline"`
	metav1.ObjectMeta `json:"metadata,omitempty"`

	Spec   YuptimeSettingsSpec   `json:"spec,omitempty"`
	Status YuptimeSettingsStatus `json:"status,omitempty"`
}

// +kubebuilder:object:root=true

// YuptimeSettingsList contains a list of YuptimeSettings.
type YuptimeSettingsList struct {
	metav1.TypeMeta `json:",inline"`
	metav1.ListMeta `json:"metadata,omitempty"`
	Items           []YuptimeSettings `json:"items"`
}

func init() {
	SchemeBuilder.Register(&YuptimeSettings{}, &YuptimeSettingsList{})
}
