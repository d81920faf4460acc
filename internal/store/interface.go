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

import (
	"context"
	"time"

	"k8s.io/apimachinery/pkg/types"
)

// Store defines the persisted-state backend used by the alert engine,
// scheduler driver, and reconciler registry. Exactly one of
// sqlite/postgres/mysql backs a given cluster, selected at startup by the
// operator config's storage.type.
type Store interface {
	// Init initializes the store (creates tables via auto-migration).
	Init() error

	// Close closes the store and releases resources.
	Close() error

	// RecordHeartbeat stores a single probe outcome.
	RecordHeartbeat(ctx context.Context, hb Heartbeat) error

	// GetHeartbeats returns heartbeats for a monitor since a given time,
	// newest first.
	GetHeartbeats(ctx context.Context, monitor types.NamespacedName, since time.Time) ([]Heartbeat, error)

	// GetHeartbeatsPaginated returns heartbeats with database-level
	// pagination and an optional state filter.
	GetHeartbeatsPaginated(ctx context.Context, monitor types.NamespacedName, q HeartbeatQuery) ([]Heartbeat, int64, error)

	// GetLastHeartbeat returns the most recent heartbeat for a monitor.
	GetLastHeartbeat(ctx context.Context, monitor types.NamespacedName) (*Heartbeat, error)

	// GetLastUpHeartbeat returns the most recent "up" heartbeat.
	GetLastUpHeartbeat(ctx context.Context, monitor types.NamespacedName) (*Heartbeat, error)

	// GetUptimeSummary aggregates uptime percent and latency percentiles
	// over a trailing window.
	GetUptimeSummary(ctx context.Context, monitor types.NamespacedName, windowDays int) (*UptimeSummary, error)

	// GetLatencyPercentile computes a single latency percentile using
	// database-level LIMIT/OFFSET, avoiding loading the full window into
	// memory.
	GetLatencyPercentile(ctx context.Context, monitor types.NamespacedName, p int, windowDays int) (time.Duration, error)

	// GetUptimePercent computes the fraction of "up" heartbeats in a
	// trailing window; a monitor with no heartbeats yet reads as 100
	// (assume healthy until proven otherwise).
	GetUptimePercent(ctx context.Context, monitor types.NamespacedName, windowDays int) (float64, error)

	// OpenIncident creates a new open incident for a monitor.
	OpenIncident(ctx context.Context, monitor types.NamespacedName, startedAt time.Time, reason, message string) (*Incident, error)

	// GetOpenIncident returns the monitor's current open incident, if any.
	GetOpenIncident(ctx context.Context, monitor types.NamespacedName) (*Incident, error)

	// CloseIncident closes an open incident.
	CloseIncident(ctx context.Context, incidentID int64, endedAt time.Time) error

	// ListIncidents returns incidents for a monitor since a given time,
	// newest first, with pagination.
	ListIncidents(ctx context.Context, monitor types.NamespacedName, since time.Time, limit, offset int) ([]Incident, int64, error)

	// QueueDelivery persists a pending delivery for the worker to pick up.
	QueueDelivery(ctx context.Context, rec DeliveryRecord) error

	// HasSentWithDedupKey reports whether a delivery with the given dedup
	// key reached status=sent since the given time.
	HasSentWithDedupKey(ctx context.Context, dedupKey string, since time.Time) (bool, error)

	// HasSentForPolicy reports whether a delivery for the given monitor and
	// policy reached status=sent since the given time.
	HasSentForPolicy(ctx context.Context, monitor types.NamespacedName, policyName string, since time.Time) (bool, error)

	// ListPendingDeliveries returns up to limit pending deliveries, oldest
	// first.
	ListPendingDeliveries(ctx context.Context, limit int) ([]DeliveryRecord, error)

	// UpdateDeliveryStatus transitions a delivery record's status.
	UpdateDeliveryStatus(ctx context.Context, id string, status DeliveryStatus, lastErr string) error

	// AppendAudit records one audit trail entry.
	AppendAudit(ctx context.Context, rec AuditRecord) error

	// ListAudit returns audit entries for a resource, newest first.
	ListAudit(ctx context.Context, kind, namespace, name string, limit int) ([]AuditRecord, error)

	// RecordSilence persists a history copy of an applied Silence.
	RecordSilence(ctx context.Context, rec SilenceRecord) error

	// RecordMaintenanceWindow persists a history copy of a window
	// occurrence.
	RecordMaintenanceWindow(ctx context.Context, rec MaintenanceWindowRecord) error

	// SaveProviderStats upserts a NotificationProvider's delivery counters.
	SaveProviderStats(ctx context.Context, stats ProviderStatsRecord) error

	// GetProviderStats retrieves a single provider's counters.
	GetProviderStats(ctx context.Context, providerName string) (*ProviderStatsRecord, error)

	// GetAllProviderStats retrieves every provider's counters.
	GetAllProviderStats(ctx context.Context) (map[string]*ProviderStatsRecord, error)

	// Prune removes heartbeats, closed incidents, and terminal delivery
	// records older than the given cutoff.
	Prune(ctx context.Context, olderThan time.Time) (int64, error)

	// Health checks if the store is reachable.
	Health(ctx context.Context) error
}
