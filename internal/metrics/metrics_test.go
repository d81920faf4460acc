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

package metrics

import (
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
)

// Note: the metrics are registered globally in init(), so we test them
// directly without re-registering. These tests verify the wrapper functions.

func TestRecordHeartbeat_Increments(t *testing.T) {
	HeartbeatsTotal.Reset()

	RecordHeartbeat("default", "api", "up")

	labels := prometheus.Labels{"namespace": "default", "monitor": "api", "state": "up"}
	assert.Equal(t, float64(1), testutil.ToFloat64(HeartbeatsTotal.With(labels)))

	RecordHeartbeat("default", "api", "up")
	assert.Equal(t, float64(2), testutil.ToFloat64(HeartbeatsTotal.With(labels)))
}

func TestRecordHeartbeat_DifferentStates(t *testing.T) {
	HeartbeatsTotal.Reset()

	RecordHeartbeat("default", "api", "up")
	RecordHeartbeat("default", "api", "down")
	RecordHeartbeat("prod", "api", "up")

	assert.Equal(t, float64(1), testutil.ToFloat64(HeartbeatsTotal.With(prometheus.Labels{
		"namespace": "default", "monitor": "api", "state": "up",
	})))
	assert.Equal(t, float64(1), testutil.ToFloat64(HeartbeatsTotal.With(prometheus.Labels{
		"namespace": "default", "monitor": "api", "state": "down",
	})))
	assert.Equal(t, float64(1), testutil.ToFloat64(HeartbeatsTotal.With(prometheus.Labels{
		"namespace": "prod", "monitor": "api", "state": "up",
	})))
}

func TestRecordAlert_Increments(t *testing.T) {
	AlertsTotal.Reset()

	RecordAlert("default", "api", "onDown", "queued")

	labels := prometheus.Labels{
		"namespace": "default", "monitor": "api", "trigger": "onDown", "outcome": "queued",
	}
	assert.Equal(t, float64(1), testutil.ToFloat64(AlertsTotal.With(labels)))

	RecordAlert("default", "api", "onDown", "queued")
	assert.Equal(t, float64(2), testutil.ToFloat64(AlertsTotal.With(labels)))
}

func TestRecordAlert_DifferentOutcomes(t *testing.T) {
	AlertsTotal.Reset()

	RecordAlert("default", "api", "onDown", "queued")
	RecordAlert("default", "api", "onDown", "suppressed")
	RecordAlert("default", "api", "onUp", "deduped")

	assert.Equal(t, float64(1), testutil.ToFloat64(AlertsTotal.With(prometheus.Labels{
		"namespace": "default", "monitor": "api", "trigger": "onDown", "outcome": "queued",
	})))
	assert.Equal(t, float64(1), testutil.ToFloat64(AlertsTotal.With(prometheus.Labels{
		"namespace": "default", "monitor": "api", "trigger": "onDown", "outcome": "suppressed",
	})))
	assert.Equal(t, float64(1), testutil.ToFloat64(AlertsTotal.With(prometheus.Labels{
		"namespace": "default", "monitor": "api", "trigger": "onUp", "outcome": "deduped",
	})))
}

func TestRecordDelivery(t *testing.T) {
	DeliveriesTotal.Reset()

	RecordDelivery("slack-main", "sent")
	RecordDelivery("slack-main", "failed")

	assert.Equal(t, float64(1), testutil.ToFloat64(DeliveriesTotal.With(prometheus.Labels{
		"provider": "slack-main", "outcome": "sent",
	})))
	assert.Equal(t, float64(1), testutil.ToFloat64(DeliveriesTotal.With(prometheus.Labels{
		"provider": "slack-main", "outcome": "failed",
	})))
}

func TestUpdateUptimePercent(t *testing.T) {
	MonitorUptimePercent.Reset()

	UpdateUptimePercent("default", "api", 99.95)
	labels := prometheus.Labels{"namespace": "default", "monitor": "api"}
	assert.Equal(t, 99.95, testutil.ToFloat64(MonitorUptimePercent.With(labels)))

	UpdateUptimePercent("default", "api", 80.0)
	assert.Equal(t, 80.0, testutil.ToFloat64(MonitorUptimePercent.With(labels)))
}

func TestUpdateLatency_AllPercentiles(t *testing.T) {
	MonitorLatencySeconds.Reset()

	UpdateLatency("default", "api", "p50", 0.1)
	UpdateLatency("default", "api", "p95", 0.4)
	UpdateLatency("default", "api", "p99", 0.9)

	assert.Equal(t, 0.1, testutil.ToFloat64(MonitorLatencySeconds.With(prometheus.Labels{
		"namespace": "default", "monitor": "api", "percentile": "p50",
	})))
	assert.Equal(t, 0.4, testutil.ToFloat64(MonitorLatencySeconds.With(prometheus.Labels{
		"namespace": "default", "monitor": "api", "percentile": "p95",
	})))
	assert.Equal(t, 0.9, testutil.ToFloat64(MonitorLatencySeconds.With(prometheus.Labels{
		"namespace": "default", "monitor": "api", "percentile": "p99",
	})))
}

func TestUpdateActiveIncidents(t *testing.T) {
	ActiveIncidents.Reset()

	UpdateActiveIncidents("default", "api", 1.0)
	labels := prometheus.Labels{"namespace": "default", "monitor": "api"}
	assert.Equal(t, 1.0, testutil.ToFloat64(ActiveIncidents.With(labels)))

	UpdateActiveIncidents("default", "api", 0.0)
	assert.Equal(t, 0.0, testutil.ToFloat64(ActiveIncidents.With(labels)))
}

func TestUpdateQueueDepth(t *testing.T) {
	UpdateQueueDepth(12)
	assert.Equal(t, 12.0, testutil.ToFloat64(SchedulerQueueDepth))

	UpdateQueueDepth(0)
	assert.Equal(t, 0.0, testutil.ToFloat64(SchedulerQueueDepth))
}

func TestUpdateProbesInFlight(t *testing.T) {
	ProbesInFlight.Reset()

	UpdateProbesInFlight("net", 3)
	UpdateProbesInFlight("priv", 1)

	assert.Equal(t, 3.0, testutil.ToFloat64(ProbesInFlight.With(prometheus.Labels{"class": "net"})))
	assert.Equal(t, 1.0, testutil.ToFloat64(ProbesInFlight.With(prometheus.Labels{"class": "priv"})))
}

func TestResetMonitorMetrics(t *testing.T) {
	MonitorUptimePercent.Reset()
	MonitorLatencySeconds.Reset()
	ActiveIncidents.Reset()

	UpdateUptimePercent("default", "delete-me", 95.0)
	UpdateLatency("default", "delete-me", "p50", 0.3)
	UpdateActiveIncidents("default", "delete-me", 1.0)

	UpdateUptimePercent("default", "keep-me", 99.0)
	UpdateLatency("default", "keep-me", "p50", 0.2)
	UpdateActiveIncidents("default", "keep-me", 0.0)

	ResetMonitorMetrics("default", "delete-me")

	assert.Equal(t, 99.0, testutil.ToFloat64(MonitorUptimePercent.With(prometheus.Labels{
		"namespace": "default", "monitor": "keep-me",
	})))
	assert.Equal(t, 0.2, testutil.ToFloat64(MonitorLatencySeconds.With(prometheus.Labels{
		"namespace": "default", "monitor": "keep-me", "percentile": "p50",
	})))
	assert.Equal(t, 0.0, testutil.ToFloat64(ActiveIncidents.With(prometheus.Labels{
		"namespace": "default", "monitor": "keep-me",
	})))
}

func TestResetMonitorMetrics_DifferentNamespaces(t *testing.T) {
	MonitorUptimePercent.Reset()

	UpdateUptimePercent("ns1", "same-name", 95.0)
	UpdateUptimePercent("ns2", "same-name", 99.0)

	ResetMonitorMetrics("ns1", "same-name")

	assert.Equal(t, 99.0, testutil.ToFloat64(MonitorUptimePercent.With(prometheus.Labels{
		"namespace": "ns2", "monitor": "same-name",
	})))
}

func TestMetricLabels(t *testing.T) {
	assert.NotNil(t, HeartbeatsTotal.WithLabelValues("ns", "mon", "up").Desc())
	assert.NotNil(t, AlertsTotal.WithLabelValues("ns", "mon", "onDown", "queued").Desc())
	assert.NotNil(t, DeliveriesTotal.WithLabelValues("provider", "sent").Desc())
	assert.NotNil(t, MonitorUptimePercent.WithLabelValues("ns", "mon").Desc())
	assert.NotNil(t, MonitorLatencySeconds.WithLabelValues("ns", "mon", "p50").Desc())
	assert.NotNil(t, ActiveIncidents.WithLabelValues("ns", "mon").Desc())
	assert.NotNil(t, ProbesInFlight.WithLabelValues("net").Desc())
}
