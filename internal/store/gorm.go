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
	"errors"
	"fmt"
	"time"

	"github.com/glebarez/sqlite" // pure Go SQLite driver, no CGO required
	"gorm.io/driver/mysql"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
	"gorm.io/gorm/logger"
	"k8s.io/apimachinery/pkg/types"
)

// GormStore implements Store using GORM, dialect-switching internally
// between sqlite, postgres, and mysql. It is the sole storage
// implementation; there is deliberately no separate hand-rolled
// database/sql backend per dialect (see DESIGN.md).
type GormStore struct {
	db      *gorm.DB
	dialect string
}

// ConnectionPoolConfig holds connection pool settings.
type ConnectionPoolConfig struct {
	MaxIdleConns    int
	MaxOpenConns    int
	ConnMaxLifetime time.Duration
	ConnMaxIdleTime time.Duration
}

// NewGormStore creates a new GORM-based store.
func NewGormStore(dialect string, dsn string) (*GormStore, error) {
	return NewGormStoreWithPool(dialect, dsn, ConnectionPoolConfig{})
}

// NewGormStoreWithPool creates a new GORM-based store with connection pool
// settings.
func NewGormStoreWithPool(dialect string, dsn string, pool ConnectionPoolConfig) (*GormStore, error) {
	var dialector gorm.Dialector
	switch dialect {
	case "sqlite":
		dialector = sqlite.Open(dsn)
	case "postgres":
		dialector = postgres.Open(dsn)
	case "mysql":
		dialector = mysql.Open(dsn)
	default:
		return nil, fmt.Errorf("unsupported dialect: %s", dialect)
	}

	db, err := gorm.Open(dialector, &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	if dialect != "sqlite" && (pool.MaxIdleConns > 0 || pool.MaxOpenConns > 0 || pool.ConnMaxLifetime > 0 || pool.ConnMaxIdleTime > 0) {
		sqlDB, err := db.DB()
		if err != nil {
			return nil, fmt.Errorf("failed to get sql.DB for pool config: %w", err)
		}
		if pool.MaxIdleConns > 0 {
			sqlDB.SetMaxIdleConns(pool.MaxIdleConns)
		}
		if pool.MaxOpenConns > 0 {
			sqlDB.SetMaxOpenConns(pool.MaxOpenConns)
		}
		if pool.ConnMaxLifetime > 0 {
			sqlDB.SetConnMaxLifetime(pool.ConnMaxLifetime)
		}
		if pool.ConnMaxIdleTime > 0 {
			sqlDB.SetConnMaxIdleTime(pool.ConnMaxIdleTime)
		}
	}

	return &GormStore{db: db, dialect: dialect}, nil
}

// Init initializes the store (creates tables via auto-migration).
func (s *GormStore) Init() error {
	return s.db.AutoMigrate(
		&Heartbeat{},
		&Incident{},
		&DeliveryRecord{},
		&SilenceRecord{},
		&MaintenanceWindowRecord{},
		&AuditRecord{},
		&ProviderStatsRecord{},
	)
}

// Close closes the store and releases resources.
func (s *GormStore) Close() error {
	sqlDB, err := s.db.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}

// RecordHeartbeat stores a single probe outcome.
func (s *GormStore) RecordHeartbeat(ctx context.Context, hb Heartbeat) error {
	return s.db.WithContext(ctx).Create(&hb).Error
}

// GetHeartbeats returns heartbeats for a monitor since a given time, newest
// first.
func (s *GormStore) GetHeartbeats(ctx context.Context, monitor types.NamespacedName, since time.Time) ([]Heartbeat, error) {
	var hbs []Heartbeat
	err := s.db.WithContext(ctx).
		Where("monitor_ns = ? AND monitor_name = ? AND checked_at >= ?", monitor.Namespace, monitor.Name, since).
		Order("checked_at DESC").
		Find(&hbs).Error
	return hbs, err
}

// GetHeartbeatsPaginated returns heartbeats with database-level pagination
// and an optional state filter.
func (s *GormStore) GetHeartbeatsPaginated(ctx context.Context, monitor types.NamespacedName, q HeartbeatQuery) ([]Heartbeat, int64, error) {
	var hbs []Heartbeat
	var total int64

	query := s.db.WithContext(ctx).Model(&Heartbeat{}).
		Where("monitor_ns = ? AND monitor_name = ? AND checked_at >= ?", monitor.Namespace, monitor.Name, q.Since)
	if q.State != "" {
		query = query.Where("state = ?", q.State)
	}

	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	err := query.Order("checked_at DESC").Limit(q.Limit).Offset(q.Offset).Find(&hbs).Error
	return hbs, total, err
}

// GetLastHeartbeat returns the most recent heartbeat for a monitor.
func (s *GormStore) GetLastHeartbeat(ctx context.Context, monitor types.NamespacedName) (*Heartbeat, error) {
	var hb Heartbeat
	err := s.db.WithContext(ctx).
		Where("monitor_ns = ? AND monitor_name = ?", monitor.Namespace, monitor.Name).
		Order("checked_at DESC").
		First(&hb).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &hb, nil
}

// GetLastUpHeartbeat returns the most recent "up" heartbeat.
func (s *GormStore) GetLastUpHeartbeat(ctx context.Context, monitor types.NamespacedName) (*Heartbeat, error) {
	var hb Heartbeat
	err := s.db.WithContext(ctx).
		Where("monitor_ns = ? AND monitor_name = ? AND state = ?", monitor.Namespace, monitor.Name, "up").
		Order("checked_at DESC").
		First(&hb).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &hb, nil
}

// GetUptimeSummary aggregates uptime percent and latency percentiles over a
// trailing window. PostgreSQL uses native PERCENTILE_CONT for O(1) memory;
// sqlite/mysql fall back to in-memory percentile over the plucked column.
func (s *GormStore) GetUptimeSummary(ctx context.Context, monitor types.NamespacedName, windowDays int) (*UptimeSummary, error) {
	since := time.Now().AddDate(0, 0, -windowDays)

	type countResult struct {
		Total int64
		Up    int64
		Down  int64
	}
	var cr countResult
	err := s.db.WithContext(ctx).Model(&Heartbeat{}).
		Where("monitor_ns = ? AND monitor_name = ? AND checked_at >= ?", monitor.Namespace, monitor.Name, since).
		Select("COUNT(*) as total, "+
			"SUM(CASE WHEN state = ? THEN 1 ELSE 0 END) as up, "+
			"SUM(CASE WHEN state = ? THEN 1 ELSE 0 END) as down",
			"up", "down").
		Scan(&cr).Error
	if err != nil {
		return nil, err
	}

	summary := &UptimeSummary{
		WindowDays:      int32(windowDays),
		TotalHeartbeats: int32(cr.Total),
		UpHeartbeats:    int32(cr.Up),
		DownHeartbeats:  int32(cr.Down),
	}
	if cr.Total > 0 {
		summary.UptimePercent = float64(cr.Up) / float64(cr.Total) * 100
	} else {
		summary.UptimePercent = 100
	}

	if s.dialect == "postgres" {
		type percentileResult struct {
			Avg float64
			P50 float64
			P95 float64
			P99 float64
		}
		var pr percentileResult
		err = s.db.WithContext(ctx).Model(&Heartbeat{}).
			Where("monitor_ns = ? AND monitor_name = ? AND checked_at >= ?", monitor.Namespace, monitor.Name, since).
			Select(`
				AVG(latency_ms) as avg,
				PERCENTILE_CONT(0.50) WITHIN GROUP (ORDER BY latency_ms) as p50,
				PERCENTILE_CONT(0.95) WITHIN GROUP (ORDER BY latency_ms) as p95,
				PERCENTILE_CONT(0.99) WITHIN GROUP (ORDER BY latency_ms) as p99
			`).
			Scan(&pr).Error
		if err == nil {
			summary.AvgLatencySec = pr.Avg / 1000
			summary.P50LatencySec = pr.P50 / 1000
			summary.P95LatencySec = pr.P95 / 1000
			summary.P99LatencySec = pr.P99 / 1000
		}
	} else {
		var latencies []float64
		err = s.db.WithContext(ctx).Model(&Heartbeat{}).
			Where("monitor_ns = ? AND monitor_name = ? AND checked_at >= ?", monitor.Namespace, monitor.Name, since).
			Order("latency_ms").
			Pluck("latency_ms", &latencies).Error
		if err != nil {
			return nil, err
		}
		if len(latencies) > 0 {
			var sum float64
			for _, l := range latencies {
				sum += l
			}
			summary.AvgLatencySec = sum / float64(len(latencies)) / 1000
			summary.P50LatencySec = percentile(latencies, 50) / 1000
			summary.P95LatencySec = percentile(latencies, 95) / 1000
			summary.P99LatencySec = percentile(latencies, 99) / 1000
		}
	}

	return summary, nil
}

// GetLatencyPercentile computes a single latency percentile using
// database-level LIMIT/OFFSET, avoiding loading the full window into memory.
func (s *GormStore) GetLatencyPercentile(ctx context.Context, monitor types.NamespacedName, p int, windowDays int) (time.Duration, error) {
	since := time.Now().AddDate(0, 0, -windowDays)

	var count int64
	if err := s.db.WithContext(ctx).Model(&Heartbeat{}).
		Where("monitor_ns = ? AND monitor_name = ? AND checked_at >= ?", monitor.Namespace, monitor.Name, since).
		Count(&count).Error; err != nil {
		return 0, err
	}
	if count == 0 {
		return 0, nil
	}

	offset := int(float64(count-1) * float64(p) / 100)

	var latencyMs int64
	err := s.db.WithContext(ctx).Model(&Heartbeat{}).
		Where("monitor_ns = ? AND monitor_name = ? AND checked_at >= ?", monitor.Namespace, monitor.Name, since).
		Order("latency_ms").
		Offset(offset).
		Limit(1).
		Pluck("latency_ms", &latencyMs).Error
	if err != nil {
		return 0, err
	}

	return time.Duration(latencyMs) * time.Millisecond, nil
}

// GetUptimePercent computes the fraction of "up" heartbeats in a trailing
// window; a monitor with no heartbeats yet reads as 100 (assume healthy
// until proven otherwise).
func (s *GormStore) GetUptimePercent(ctx context.Context, monitor types.NamespacedName, windowDays int) (float64, error) {
	since := time.Now().AddDate(0, 0, -windowDays)

	type countResult struct {
		Total int64
		Up    int64
	}
	var cr countResult
	err := s.db.WithContext(ctx).Model(&Heartbeat{}).
		Where("monitor_ns = ? AND monitor_name = ? AND checked_at >= ?", monitor.Namespace, monitor.Name, since).
		Select("COUNT(*) as total, SUM(CASE WHEN state = ? THEN 1 ELSE 0 END) as up", "up").
		Scan(&cr).Error
	if err != nil {
		return 0, err
	}
	if cr.Total == 0 {
		return 100, nil
	}
	return float64(cr.Up) / float64(cr.Total) * 100, nil
}

// OpenIncident creates a new open incident for a monitor.
func (s *GormStore) OpenIncident(ctx context.Context, monitor types.NamespacedName, startedAt time.Time, reason, message string) (*Incident, error) {
	inc := Incident{
		MonitorNS:   monitor.Namespace,
		MonitorName: monitor.Name,
		StartedAt:   startedAt,
		Reason:      reason,
		Message:     message,
	}
	if err := s.db.WithContext(ctx).Create(&inc).Error; err != nil {
		return nil, err
	}
	return &inc, nil
}

// GetOpenIncident returns the monitor's current open incident, if any.
func (s *GormStore) GetOpenIncident(ctx context.Context, monitor types.NamespacedName) (*Incident, error) {
	var inc Incident
	err := s.db.WithContext(ctx).
		Where("monitor_ns = ? AND monitor_name = ? AND ended_at IS NULL", monitor.Namespace, monitor.Name).
		Order("started_at DESC").
		First(&inc).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &inc, nil
}

// CloseIncident closes an open incident.
func (s *GormStore) CloseIncident(ctx context.Context, incidentID int64, endedAt time.Time) error {
	var inc Incident
	if err := s.db.WithContext(ctx).First(&inc, incidentID).Error; err != nil {
		return err
	}
	inc.Close(endedAt)
	return s.db.WithContext(ctx).Save(&inc).Error
}

// ListIncidents returns incidents for a monitor since a given time, newest
// first, with pagination.
func (s *GormStore) ListIncidents(ctx context.Context, monitor types.NamespacedName, since time.Time, limit, offset int) ([]Incident, int64, error) {
	var incs []Incident
	var total int64

	query := s.db.WithContext(ctx).Model(&Incident{}).
		Where("monitor_ns = ? AND monitor_name = ? AND started_at >= ?", monitor.Namespace, monitor.Name, since)

	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	err := query.Order("started_at DESC").Limit(limit).Offset(offset).Find(&incs).Error
	return incs, total, err
}

// QueueDelivery persists a pending delivery for the worker to pick up.
func (s *GormStore) QueueDelivery(ctx context.Context, rec DeliveryRecord) error {
	return s.db.WithContext(ctx).Create(&rec).Error
}

// HasSentWithDedupKey reports whether a delivery with the given dedup key
// reached status=sent since the given time.
func (s *GormStore) HasSentWithDedupKey(ctx context.Context, dedupKey string, since time.Time) (bool, error) {
	var count int64
	err := s.db.WithContext(ctx).Model(&DeliveryRecord{}).
		Where("dedup_key = ? AND status = ? AND created_at >= ?", dedupKey, string(DeliverySent), since).
		Count(&count).Error
	return count > 0, err
}

// HasSentForPolicy reports whether a delivery for the given monitor and
// policy reached status=sent since the given time.
func (s *GormStore) HasSentForPolicy(ctx context.Context, monitor types.NamespacedName, policyName string, since time.Time) (bool, error) {
	var count int64
	err := s.db.WithContext(ctx).Model(&DeliveryRecord{}).
		Where("monitor_ns = ? AND monitor_name = ? AND policy_name = ? AND status = ? AND created_at >= ?",
			monitor.Namespace, monitor.Name, policyName, string(DeliverySent), since).
		Count(&count).Error
	return count > 0, err
}

// ListPendingDeliveries returns up to limit pending deliveries, oldest
// first.
func (s *GormStore) ListPendingDeliveries(ctx context.Context, limit int) ([]DeliveryRecord, error) {
	var recs []DeliveryRecord
	err := s.db.WithContext(ctx).
		Where("status = ?", string(DeliveryPending)).
		Order("created_at").
		Limit(limit).
		Find(&recs).Error
	return recs, err
}

// UpdateDeliveryStatus transitions a delivery record's status.
func (s *GormStore) UpdateDeliveryStatus(ctx context.Context, id string, status DeliveryStatus, lastErr string) error {
	updates := map[string]interface{}{"status": string(status), "last_error": lastErr}
	if status == DeliverySent {
		now := time.Now()
		updates["sent_at"] = &now
	}
	return s.db.WithContext(ctx).Model(&DeliveryRecord{}).Where("id = ?", id).Updates(updates).Error
}

// AppendAudit records one audit trail entry.
func (s *GormStore) AppendAudit(ctx context.Context, rec AuditRecord) error {
	return s.db.WithContext(ctx).Create(&rec).Error
}

// ListAudit returns audit entries for a resource, newest first.
func (s *GormStore) ListAudit(ctx context.Context, kind, namespace, name string, limit int) ([]AuditRecord, error) {
	var recs []AuditRecord
	err := s.db.WithContext(ctx).
		Where("kind = ? AND namespace = ? AND name = ?", kind, namespace, name).
		Order("timestamp DESC").
		Limit(limit).
		Find(&recs).Error
	return recs, err
}

// RecordSilence persists a history copy of an applied Silence.
func (s *GormStore) RecordSilence(ctx context.Context, rec SilenceRecord) error {
	return s.db.WithContext(ctx).Create(&rec).Error
}

// RecordMaintenanceWindow persists a history copy of a window occurrence.
func (s *GormStore) RecordMaintenanceWindow(ctx context.Context, rec MaintenanceWindowRecord) error {
	return s.db.WithContext(ctx).Create(&rec).Error
}

// SaveProviderStats upserts a NotificationProvider's delivery counters.
func (s *GormStore) SaveProviderStats(ctx context.Context, stats ProviderStatsRecord) error {
	return s.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "provider_name"}},
			UpdateAll: true,
		}).Create(&stats).Error
}

// GetProviderStats retrieves a single provider's counters.
func (s *GormStore) GetProviderStats(ctx context.Context, providerName string) (*ProviderStatsRecord, error) {
	var stats ProviderStatsRecord
	err := s.db.WithContext(ctx).Where("provider_name = ?", providerName).First(&stats).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &stats, nil
}

// GetAllProviderStats retrieves every provider's counters.
func (s *GormStore) GetAllProviderStats(ctx context.Context) (map[string]*ProviderStatsRecord, error) {
	var records []ProviderStatsRecord
	if err := s.db.WithContext(ctx).Find(&records).Error; err != nil {
		return nil, err
	}
	result := make(map[string]*ProviderStatsRecord, len(records))
	for i := range records {
		result[records[i].ProviderName] = &records[i]
	}
	return result, nil
}

// Prune removes heartbeats, closed incidents, and terminal delivery records
// older than the given cutoff. Open incidents and pending deliveries are
// never pruned regardless of age.
func (s *GormStore) Prune(ctx context.Context, olderThan time.Time) (int64, error) {
	var total int64

	hbResult := s.db.WithContext(ctx).Where("checked_at < ?", olderThan).Delete(&Heartbeat{})
	if hbResult.Error != nil {
		return total, hbResult.Error
	}
	total += hbResult.RowsAffected

	incResult := s.db.WithContext(ctx).
		Where("ended_at IS NOT NULL AND ended_at < ?", olderThan).
		Delete(&Incident{})
	if incResult.Error != nil {
		return total, incResult.Error
	}
	total += incResult.RowsAffected

	delResult := s.db.WithContext(ctx).
		Where("status != ? AND created_at < ?", string(DeliveryPending), olderThan).
		Delete(&DeliveryRecord{})
	if delResult.Error != nil {
		return total, delResult.Error
	}
	total += delResult.RowsAffected

	return total, nil
}

// Health checks if the store is reachable.
func (s *GormStore) Health(ctx context.Context) error {
	sqlDB, err := s.db.DB()
	if err != nil {
		return err
	}
	return sqlDB.PingContext(ctx)
}

// percentile calculates the p-th percentile from pre-sorted data.
// The input must already be sorted ascending (the query's ORDER BY does
// this); no additional sort happens here.
func percentile(sortedData []float64, p int) float64 {
	if len(sortedData) == 0 {
		return 0
	}
	idx := int(float64(len(sortedData)-1) * float64(p) / 100)
	return sortedData[idx]
}
