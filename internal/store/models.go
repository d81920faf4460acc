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

package store

import "time"

// Heartbeat is a single probe outcome (GORM model).
type Heartbeat struct {
	ID          int64     `gorm:"primaryKey;autoIncrement"`
	MonitorNS   string    `gorm:"column:monitor_ns;size:253;not null;index:idx_monitor_time,priority:1"`
	MonitorName string    `gorm:"column:monitor_name;size:253;not null;index:idx_monitor_time,priority:2"`
	State       string    `gorm:"column:state;size:16;not null"`
	LatencyMs   int64     `gorm:"column:latency_ms"`
	Reason      string    `gorm:"column:reason;size:64"`
	Message     string    `gorm:"column:message;size:1024"`
	CheckedAt   time.Time `gorm:"column:checked_at;not null;index:idx_monitor_time,priority:3,sort:desc"`
	CreatedAt   time.Time `gorm:"column:created_at;autoCreateTime"`
}

// TableName specifies the table name for Heartbeat.
func (*Heartbeat) TableName() string { return "heartbeats" }

// Incident tracks one continuous down period for a monitor.
type Incident struct {
	ID          int64      `gorm:"primaryKey;autoIncrement"`
	MonitorNS   string     `gorm:"column:monitor_ns;size:253;not null;index:idx_incident_monitor,priority:1"`
	MonitorName string     `gorm:"column:monitor_name;size:253;not null;index:idx_incident_monitor,priority:2"`
	StartedAt   time.Time  `gorm:"column:started_at;not null;index:idx_incident_monitor,priority:3,sort:desc"`
	EndedAt     *time.Time `gorm:"column:ended_at;index:idx_incident_open"`
	DurationSec *float64   `gorm:"column:duration_sec"`
	Reason      string     `gorm:"column:reason;size:64"`
	Message     string     `gorm:"column:message;size:1024"`
}

// TableName specifies the table name for Incident.
func (*Incident) TableName() string { return "incidents" }

// IsOpen reports whether the incident has not yet closed.
func (i *Incident) IsOpen() bool { return i.EndedAt == nil }

// Close sets EndedAt/DurationSec from the given instant.
func (i *Incident) Close(at time.Time) {
	i.EndedAt = &at
	d := at.Sub(i.StartedAt).Seconds()
	i.DurationSec = &d
}

// DeliveryStatus is a DeliveryRecord's state machine value.
type DeliveryStatus string

const (
	DeliveryPending DeliveryStatus = "pending"
	DeliverySent    DeliveryStatus = "sent"
	DeliveryFailed  DeliveryStatus = "failed"
	DeliveryDeduped DeliveryStatus = "deduped"
)

// DeliveryRecord is one queued alert delivery attempt, persisted so the
// worker survives a restart without losing in-flight alerts.
type DeliveryRecord struct {
	ID          string     `gorm:"primaryKey;size:36"`
	MonitorNS   string     `gorm:"column:monitor_ns;size:253;index"`
	MonitorName string     `gorm:"column:monitor_name;size:253;index"`
	PolicyName  string     `gorm:"column:policy_name;size:253"`
	Provider    string     `gorm:"column:provider;size:253;index:idx_delivery_status,priority:2"`
	Title       string     `gorm:"column:title;size:512"`
	Body        string     `gorm:"column:body;type:text"`
	DedupKey    string     `gorm:"column:dedup_key;size:512;index"`
	Status      string     `gorm:"column:status;size:16;not null;index:idx_delivery_status,priority:1"`
	LastError   string     `gorm:"column:last_error;type:text"`
	CreatedAt   time.Time  `gorm:"column:created_at;not null;index"`
	SentAt      *time.Time `gorm:"column:sent_at"`
}

// TableName specifies the table name for DeliveryRecord.
func (*DeliveryRecord) TableName() string { return "delivery_records" }

// SilenceRecord is a persisted history copy of a Silence resource. The live
// suppression index rebuilds from the resource cache on restart; this table
// exists only so "was monitor X silenced at time T" can still be answered
// once the Silence itself has expired and been pruned from the cluster.
type SilenceRecord struct {
	ID        int64     `gorm:"primaryKey;autoIncrement"`
	Namespace string    `gorm:"column:namespace;size:253;index"`
	Name      string    `gorm:"column:name;size:253"`
	Reason    string    `gorm:"column:reason;size:1024"`
	CreatedAt time.Time `gorm:"column:created_at"`
	ExpiresAt time.Time `gorm:"column:expires_at;index"`
}

// TableName specifies the table name for SilenceRecord.
func (*SilenceRecord) TableName() string { return "silences" }

// MaintenanceWindowRecord is a persisted history copy of a single
// MaintenanceWindow occurrence, for the same reason as SilenceRecord.
type MaintenanceWindowRecord struct {
	ID        int64     `gorm:"primaryKey;autoIncrement"`
	Namespace string    `gorm:"column:namespace;size:253;index"`
	Name      string    `gorm:"column:name;size:253"`
	Start     time.Time `gorm:"column:start_time"`
	End       time.Time `gorm:"column:end_time"`
	CreatedAt time.Time `gorm:"column:created_at"`
}

// TableName specifies the table name for MaintenanceWindowRecord.
func (*MaintenanceWindowRecord) TableName() string { return "maintenance_windows" }

// AuditRecord is appended by the reconciler registry on every
// validate/reconcile/delete outcome that changes cluster state.
type AuditRecord struct {
	ID        string    `gorm:"primaryKey;size:36"`
	Timestamp time.Time `gorm:"column:timestamp;not null;index"`
	Actor     string    `gorm:"column:actor;size:253"`
	Verb      string    `gorm:"column:verb;size:32"`
	Kind      string    `gorm:"column:kind;size:64;index:idx_audit_resource,priority:1"`
	Namespace string    `gorm:"column:namespace;size:253;index:idx_audit_resource,priority:2"`
	Name      string    `gorm:"column:name;size:253;index:idx_audit_resource,priority:3"`
	Detail    string    `gorm:"column:detail;type:text"`
}

// TableName specifies the table name for AuditRecord.
func (*AuditRecord) TableName() string { return "audit_trail" }

// ProviderStatsRecord persists per-NotificationProvider delivery counters
// across restarts (GORM model), generalized from the teacher's per-channel
// stats table.
type ProviderStatsRecord struct {
	ProviderName        string     `gorm:"primaryKey;size:253;column:provider_name"`
	DeliveredTotal      int64      `gorm:"column:delivered_total;default:0"`
	FailedTotal         int64      `gorm:"column:failed_total;default:0"`
	LastDeliveredAt     *time.Time `gorm:"column:last_delivered_at"`
	LastFailedAt        *time.Time `gorm:"column:last_failed_at"`
	LastError           string     `gorm:"column:last_error;type:text"`
	ConsecutiveFailures int32      `gorm:"column:consecutive_failures;default:0"`
	UpdatedAt           time.Time  `gorm:"column:updated_at;autoUpdateTime"`
}

// TableName specifies the table name for ProviderStatsRecord.
func (*ProviderStatsRecord) TableName() string { return "provider_stats" }

// UptimeSummary is an aggregated query result, not a persisted model.
type UptimeSummary struct {
	WindowDays      int32
	TotalHeartbeats int32
	UpHeartbeats    int32
	DownHeartbeats  int32
	UptimePercent   float64
	AvgLatencySec   float64
	P50LatencySec   float64
	P95LatencySec   float64
	P99LatencySec   float64
}

// HeartbeatQuery parameters a filtered/paginated heartbeat listing.
type HeartbeatQuery struct {
	Since  time.Time
	State  string // "" (any), "up", "down"
	Limit  int
	Offset int
}
