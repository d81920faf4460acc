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
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
	"k8s.io/apimachinery/pkg/types"
)

// StoreTestSuite runs all store tests against SQLite.
type StoreTestSuite struct {
	suite.Suite
	store *GormStore
	ctx   context.Context
}

func (s *StoreTestSuite) SetupTest() {
	var err error
	s.store, err = NewGormStore("sqlite", "file::memory:?cache=shared")
	require.NoError(s.T(), err)
	require.NoError(s.T(), s.store.Init())
	s.ctx = context.Background()
}

func (s *StoreTestSuite) TearDownTest() {
	if s.store != nil {
		_ = s.store.Close()
	}
}

func TestStoreSuite(t *testing.T) {
	suite.Run(t, new(StoreTestSuite))
}

// =============================================================================
// Heartbeat recording
// =============================================================================

func (s *StoreTestSuite) TestRecordHeartbeat_Success() {
	monitor := types.NamespacedName{Namespace: "default", Name: "api"}
	hb := Heartbeat{
		MonitorNS:   monitor.Namespace,
		MonitorName: monitor.Name,
		State:       "up",
		LatencyMs:   120,
		CheckedAt:   time.Now(),
	}
	require.NoError(s.T(), s.store.RecordHeartbeat(s.ctx, hb))

	last, err := s.store.GetLastHeartbeat(s.ctx, monitor)
	require.NoError(s.T(), err)
	require.NotNil(s.T(), last)
	assert.Equal(s.T(), "up", last.State)
	assert.Equal(s.T(), int64(120), last.LatencyMs)
}

func (s *StoreTestSuite) TestRecordHeartbeat_DownWithReason() {
	monitor := types.NamespacedName{Namespace: "default", Name: "api"}
	hb := Heartbeat{
		MonitorNS:   monitor.Namespace,
		MonitorName: monitor.Name,
		State:       "down",
		Reason:      "unexpected_status",
		Message:     "got 503",
		CheckedAt:   time.Now(),
	}
	require.NoError(s.T(), s.store.RecordHeartbeat(s.ctx, hb))

	last, err := s.store.GetLastHeartbeat(s.ctx, monitor)
	require.NoError(s.T(), err)
	assert.Equal(s.T(), "unexpected_status", last.Reason)
}

func (s *StoreTestSuite) TestGetHeartbeats_FilterByTimeRange() {
	monitor := types.NamespacedName{Namespace: "default", Name: "api"}
	now := time.Now()

	require.NoError(s.T(), s.store.RecordHeartbeat(s.ctx, Heartbeat{MonitorNS: monitor.Namespace, MonitorName: monitor.Name, State: "up", CheckedAt: now.Add(-48 * time.Hour)}))
	require.NoError(s.T(), s.store.RecordHeartbeat(s.ctx, Heartbeat{MonitorNS: monitor.Namespace, MonitorName: monitor.Name, State: "up", CheckedAt: now.Add(-1 * time.Hour)}))

	hbs, err := s.store.GetHeartbeats(s.ctx, monitor, now.Add(-24*time.Hour))
	require.NoError(s.T(), err)
	assert.Len(s.T(), hbs, 1)
}

func (s *StoreTestSuite) TestGetHeartbeatsPaginated_FilterByState() {
	monitor := types.NamespacedName{Namespace: "default", Name: "api"}
	now := time.Now()

	for i := 0; i < 3; i++ {
		require.NoError(s.T(), s.store.RecordHeartbeat(s.ctx, Heartbeat{MonitorNS: monitor.Namespace, MonitorName: monitor.Name, State: "up", CheckedAt: now}))
	}
	require.NoError(s.T(), s.store.RecordHeartbeat(s.ctx, Heartbeat{MonitorNS: monitor.Namespace, MonitorName: monitor.Name, State: "down", CheckedAt: now}))

	hbs, total, err := s.store.GetHeartbeatsPaginated(s.ctx, monitor, HeartbeatQuery{Since: now.Add(-time.Hour), State: "down", Limit: 10})
	require.NoError(s.T(), err)
	assert.Equal(s.T(), int64(1), total)
	assert.Len(s.T(), hbs, 1)
}

func (s *StoreTestSuite) TestGetLastHeartbeat_NoRecords() {
	last, err := s.store.GetLastHeartbeat(s.ctx, types.NamespacedName{Namespace: "default", Name: "ghost"})
	require.NoError(s.T(), err)
	assert.Nil(s.T(), last)
}

func (s *StoreTestSuite) TestGetLastUpHeartbeat() {
	monitor := types.NamespacedName{Namespace: "default", Name: "api"}
	now := time.Now()
	require.NoError(s.T(), s.store.RecordHeartbeat(s.ctx, Heartbeat{MonitorNS: monitor.Namespace, MonitorName: monitor.Name, State: "up", CheckedAt: now.Add(-2 * time.Hour)}))
	require.NoError(s.T(), s.store.RecordHeartbeat(s.ctx, Heartbeat{MonitorNS: monitor.Namespace, MonitorName: monitor.Name, State: "down", CheckedAt: now.Add(-time.Hour)}))

	last, err := s.store.GetLastUpHeartbeat(s.ctx, monitor)
	require.NoError(s.T(), err)
	require.NotNil(s.T(), last)
	assert.Equal(s.T(), "up", last.State)
}

// =============================================================================
// Uptime / latency aggregation
// =============================================================================

func (s *StoreTestSuite) TestGetUptimeSummary_EmptyHistory() {
	summary, err := s.store.GetUptimeSummary(s.ctx, types.NamespacedName{Namespace: "default", Name: "ghost"}, 7)
	require.NoError(s.T(), err)
	assert.Equal(s.T(), float64(100), summary.UptimePercent)
	assert.Equal(s.T(), int32(0), summary.TotalHeartbeats)
}

func (s *StoreTestSuite) TestGetUptimeSummary_MixedResults() {
	monitor := types.NamespacedName{Namespace: "default", Name: "api"}
	now := time.Now()
	for i := 0; i < 8; i++ {
		require.NoError(s.T(), s.store.RecordHeartbeat(s.ctx, Heartbeat{MonitorNS: monitor.Namespace, MonitorName: monitor.Name, State: "up", LatencyMs: 100, CheckedAt: now}))
	}
	for i := 0; i < 2; i++ {
		require.NoError(s.T(), s.store.RecordHeartbeat(s.ctx, Heartbeat{MonitorNS: monitor.Namespace, MonitorName: monitor.Name, State: "down", LatencyMs: 0, CheckedAt: now}))
	}

	summary, err := s.store.GetUptimeSummary(s.ctx, monitor, 7)
	require.NoError(s.T(), err)
	assert.Equal(s.T(), int32(10), summary.TotalHeartbeats)
	assert.Equal(s.T(), float64(80), summary.UptimePercent)
}

func (s *StoreTestSuite) TestGetLatencyPercentile_P50() {
	monitor := types.NamespacedName{Namespace: "default", Name: "api"}
	now := time.Now()
	for _, ms := range []int64{10, 20, 30, 40, 50} {
		require.NoError(s.T(), s.store.RecordHeartbeat(s.ctx, Heartbeat{MonitorNS: monitor.Namespace, MonitorName: monitor.Name, State: "up", LatencyMs: ms, CheckedAt: now}))
	}

	p50, err := s.store.GetLatencyPercentile(s.ctx, monitor, 50, 7)
	require.NoError(s.T(), err)
	assert.Equal(s.T(), 30*time.Millisecond, p50)
}

func (s *StoreTestSuite) TestGetLatencyPercentile_NoHeartbeats() {
	p50, err := s.store.GetLatencyPercentile(s.ctx, types.NamespacedName{Namespace: "default", Name: "ghost"}, 50, 7)
	require.NoError(s.T(), err)
	assert.Equal(s.T(), time.Duration(0), p50)
}

func (s *StoreTestSuite) TestGetUptimePercent_WindowBoundary() {
	monitor := types.NamespacedName{Namespace: "default", Name: "api"}
	now := time.Now()
	require.NoError(s.T(), s.store.RecordHeartbeat(s.ctx, Heartbeat{MonitorNS: monitor.Namespace, MonitorName: monitor.Name, State: "down", CheckedAt: now.Add(-30 * 24 * time.Hour)}))
	require.NoError(s.T(), s.store.RecordHeartbeat(s.ctx, Heartbeat{MonitorNS: monitor.Namespace, MonitorName: monitor.Name, State: "up", CheckedAt: now.Add(-time.Hour)}))

	pct, err := s.store.GetUptimePercent(s.ctx, monitor, 7)
	require.NoError(s.T(), err)
	assert.Equal(s.T(), float64(100), pct)
}

// =============================================================================
// Incidents
// =============================================================================

func (s *StoreTestSuite) TestOpenAndCloseIncident() {
	monitor := types.NamespacedName{Namespace: "default", Name: "api"}
	started := time.Now().Add(-time.Minute)

	inc, err := s.store.OpenIncident(s.ctx, monitor, started, "probe_down", "connection refused")
	require.NoError(s.T(), err)
	require.NotNil(s.T(), inc)
	assert.True(s.T(), inc.IsOpen())

	open, err := s.store.GetOpenIncident(s.ctx, monitor)
	require.NoError(s.T(), err)
	require.NotNil(s.T(), open)
	assert.Equal(s.T(), inc.ID, open.ID)

	require.NoError(s.T(), s.store.CloseIncident(s.ctx, inc.ID, time.Now()))

	open, err = s.store.GetOpenIncident(s.ctx, monitor)
	require.NoError(s.T(), err)
	assert.Nil(s.T(), open)
}

func (s *StoreTestSuite) TestListIncidents_Pagination() {
	monitor := types.NamespacedName{Namespace: "default", Name: "api"}
	now := time.Now()
	for i := 0; i < 3; i++ {
		_, err := s.store.OpenIncident(s.ctx, monitor, now.Add(time.Duration(-i)*time.Hour), "probe_down", "")
		require.NoError(s.T(), err)
	}

	incs, total, err := s.store.ListIncidents(s.ctx, monitor, now.Add(-24*time.Hour), 2, 0)
	require.NoError(s.T(), err)
	assert.Equal(s.T(), int64(3), total)
	assert.Len(s.T(), incs, 2)
}

// =============================================================================
// Delivery queue
// =============================================================================

func (s *StoreTestSuite) TestQueueAndListPendingDeliveries() {
	rec := DeliveryRecord{
		ID:          "11111111-1111-1111-1111-111111111111",
		MonitorNS:   "default",
		MonitorName: "api",
		Provider:    "slack-ops",
		Title:       "api is down",
		Status:      string(DeliveryPending),
		CreatedAt:   time.Now(),
	}
	require.NoError(s.T(), s.store.QueueDelivery(s.ctx, rec))

	pending, err := s.store.ListPendingDeliveries(s.ctx, 10)
	require.NoError(s.T(), err)
	require.Len(s.T(), pending, 1)
	assert.Equal(s.T(), rec.ID, pending[0].ID)
}

func (s *StoreTestSuite) TestUpdateDeliveryStatus_SentSetsTimestamp() {
	rec := DeliveryRecord{ID: "22222222-2222-2222-2222-222222222222", Status: string(DeliveryPending), CreatedAt: time.Now()}
	require.NoError(s.T(), s.store.QueueDelivery(s.ctx, rec))

	require.NoError(s.T(), s.store.UpdateDeliveryStatus(s.ctx, rec.ID, DeliverySent, ""))

	pending, err := s.store.ListPendingDeliveries(s.ctx, 10)
	require.NoError(s.T(), err)
	assert.Empty(s.T(), pending)

	var got DeliveryRecord
	require.NoError(s.T(), s.store.db.First(&got, "id = ?", rec.ID).Error)
	assert.NotNil(s.T(), got.SentAt)
}

func (s *StoreTestSuite) TestUpdateDeliveryStatus_FailedRecordsError() {
	rec := DeliveryRecord{ID: "33333333-3333-3333-3333-333333333333", Status: string(DeliveryPending), CreatedAt: time.Now()}
	require.NoError(s.T(), s.store.QueueDelivery(s.ctx, rec))
	require.NoError(s.T(), s.store.UpdateDeliveryStatus(s.ctx, rec.ID, DeliveryFailed, "dial tcp: timeout"))

	var got DeliveryRecord
	require.NoError(s.T(), s.store.db.First(&got, "id = ?", rec.ID).Error)
	assert.Equal(s.T(), string(DeliveryFailed), got.Status)
	assert.Equal(s.T(), "dial tcp: timeout", got.LastError)
}

func (s *StoreTestSuite) TestHasSentWithDedupKey() {
	since := time.Now().Add(-time.Hour)

	has, err := s.store.HasSentWithDedupKey(s.ctx, "api:down-policy", since)
	require.NoError(s.T(), err)
	assert.False(s.T(), has)

	rec := DeliveryRecord{ID: "44444444-4444-4444-4444-444444444444", DedupKey: "api:down-policy", Status: string(DeliveryPending), CreatedAt: time.Now()}
	require.NoError(s.T(), s.store.QueueDelivery(s.ctx, rec))
	require.NoError(s.T(), s.store.UpdateDeliveryStatus(s.ctx, rec.ID, DeliverySent, ""))

	has, err = s.store.HasSentWithDedupKey(s.ctx, "api:down-policy", since)
	require.NoError(s.T(), err)
	assert.True(s.T(), has)
}

func (s *StoreTestSuite) TestHasSentForPolicy() {
	monitor := types.NamespacedName{Namespace: "default", Name: "api"}
	since := time.Now().Add(-time.Hour)

	has, err := s.store.HasSentForPolicy(s.ctx, monitor, "critical-pages", since)
	require.NoError(s.T(), err)
	assert.False(s.T(), has)

	rec := DeliveryRecord{
		ID: "55555555-5555-5555-5555-555555555555", MonitorNS: monitor.Namespace, MonitorName: monitor.Name,
		PolicyName: "critical-pages", Status: string(DeliveryPending), CreatedAt: time.Now(),
	}
	require.NoError(s.T(), s.store.QueueDelivery(s.ctx, rec))
	require.NoError(s.T(), s.store.UpdateDeliveryStatus(s.ctx, rec.ID, DeliverySent, ""))

	has, err = s.store.HasSentForPolicy(s.ctx, monitor, "critical-pages", since)
	require.NoError(s.T(), err)
	assert.True(s.T(), has)
}

// =============================================================================
// Audit trail
// =============================================================================

func (s *StoreTestSuite) TestAppendAndListAudit() {
	rec := AuditRecord{
		ID:        "44444444-4444-4444-4444-444444444444",
		Timestamp: time.Now(),
		Actor:     "reconciler",
		Verb:      "reconcile",
		Kind:      "Monitor",
		Namespace: "default",
		Name:      "api",
		Detail:    "scheduled",
	}
	require.NoError(s.T(), s.store.AppendAudit(s.ctx, rec))

	entries, err := s.store.ListAudit(s.ctx, "Monitor", "default", "api", 10)
	require.NoError(s.T(), err)
	require.Len(s.T(), entries, 1)
	assert.Equal(s.T(), "reconcile", entries[0].Verb)
}

// =============================================================================
// Provider stats
// =============================================================================

func (s *StoreTestSuite) TestSaveAndGetProviderStats() {
	stats := ProviderStatsRecord{ProviderName: "slack-ops", DeliveredTotal: 5}
	require.NoError(s.T(), s.store.SaveProviderStats(s.ctx, stats))

	got, err := s.store.GetProviderStats(s.ctx, "slack-ops")
	require.NoError(s.T(), err)
	require.NotNil(s.T(), got)
	assert.Equal(s.T(), int64(5), got.DeliveredTotal)
}

func (s *StoreTestSuite) TestSaveProviderStats_Upsert() {
	require.NoError(s.T(), s.store.SaveProviderStats(s.ctx, ProviderStatsRecord{ProviderName: "slack-ops", DeliveredTotal: 1}))
	require.NoError(s.T(), s.store.SaveProviderStats(s.ctx, ProviderStatsRecord{ProviderName: "slack-ops", DeliveredTotal: 2}))

	got, err := s.store.GetProviderStats(s.ctx, "slack-ops")
	require.NoError(s.T(), err)
	assert.Equal(s.T(), int64(2), got.DeliveredTotal)
}

func (s *StoreTestSuite) TestGetAllProviderStats() {
	require.NoError(s.T(), s.store.SaveProviderStats(s.ctx, ProviderStatsRecord{ProviderName: "slack-ops"}))
	require.NoError(s.T(), s.store.SaveProviderStats(s.ctx, ProviderStatsRecord{ProviderName: "pagerduty-oncall"}))

	all, err := s.store.GetAllProviderStats(s.ctx)
	require.NoError(s.T(), err)
	assert.Len(s.T(), all, 2)
}

// =============================================================================
// Pruning, health, migration
// =============================================================================

func (s *StoreTestSuite) TestPrune_RemovesOldHeartbeatsAndKeepsRecent() {
	monitor := types.NamespacedName{Namespace: "default", Name: "api"}
	now := time.Now()
	require.NoError(s.T(), s.store.RecordHeartbeat(s.ctx, Heartbeat{MonitorNS: monitor.Namespace, MonitorName: monitor.Name, State: "up", CheckedAt: now.Add(-60 * 24 * time.Hour)}))
	require.NoError(s.T(), s.store.RecordHeartbeat(s.ctx, Heartbeat{MonitorNS: monitor.Namespace, MonitorName: monitor.Name, State: "up", CheckedAt: now}))

	n, err := s.store.Prune(s.ctx, now.Add(-30*24*time.Hour))
	require.NoError(s.T(), err)
	assert.Equal(s.T(), int64(1), n)

	hbs, err := s.store.GetHeartbeats(s.ctx, monitor, now.Add(-365*24*time.Hour))
	require.NoError(s.T(), err)
	assert.Len(s.T(), hbs, 1)
}

func (s *StoreTestSuite) TestPrune_NeverRemovesOpenIncidents() {
	monitor := types.NamespacedName{Namespace: "default", Name: "api"}
	_, err := s.store.OpenIncident(s.ctx, monitor, time.Now().Add(-60*24*time.Hour), "probe_down", "")
	require.NoError(s.T(), err)

	_, err = s.store.Prune(s.ctx, time.Now())
	require.NoError(s.T(), err)

	open, err := s.store.GetOpenIncident(s.ctx, monitor)
	require.NoError(s.T(), err)
	assert.NotNil(s.T(), open)
}

func (s *StoreTestSuite) TestHealth_ReturnsOK() {
	assert.NoError(s.T(), s.store.Health(s.ctx))
}

func (s *StoreTestSuite) TestInit_AutoMigration() {
	require.True(s.T(), s.store.db.Migrator().HasTable(&Heartbeat{}))
	require.True(s.T(), s.store.db.Migrator().HasTable(&Incident{}))
	require.True(s.T(), s.store.db.Migrator().HasTable(&DeliveryRecord{}))
	require.True(s.T(), s.store.db.Migrator().HasTable(&AuditRecord{}))
}

func TestIncident_CloseSetsDuration(t *testing.T) {
	started := time.Now().Add(-90 * time.Second)
	inc := Incident{StartedAt: started}
	inc.Close(started.Add(90 * time.Second))
	require.NotNil(t, inc.DurationSec)
	assert.InDelta(t, 90, *inc.DurationSec, 1)
	assert.False(t, inc.IsOpen())
}
