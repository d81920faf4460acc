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
	"github.com/prometheus/client_golang/prometheus"
	"sigs.k8s.io/controller-runtime/pkg/metrics"
)

var (
	// MonitorUptimePercent tracks the trailing-window uptime percentage of a monitor.
	MonitorUptimePercent = prometheus.NewGaugeVec(
		prometheus.GaugeOpts{
			Name: "yuptime_monitor_uptime_percent",
			Help: "Uptime percentage of a monitor over its configured window (0-100)",
		},
		[]string{"namespace", "monitor"},
	)

	// MonitorLatencySeconds tracks latency percentile gauges for a monitor.
	MonitorLatencySeconds = prometheus.NewGaugeVec(
		prometheus.GaugeOpts{
			Name: "yuptime_monitor_latency_seconds",
			Help: "Latency percentile of a monitor's probes",
		},
		[]string{"namespace", "monitor", "percentile"},
	)

	// HeartbeatsTotal tracks the total number of recorded probe heartbeats.
	HeartbeatsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "yuptime_heartbeats_total",
			Help: "Total number of recorded probe heartbeats",
		},
		[]string{"namespace", "monitor", "state"},
	)

	// ActiveIncidents tracks the number of currently open incidents.
	ActiveIncidents = prometheus.NewGaugeVec(
		prometheus.GaugeOpts{
			Name: "yuptime_active_incidents",
			Help: "Number of currently open incidents",
		},
		[]string{"namespace", "monitor"},
	)

	// AlertsTotal tracks alert events evaluated by the alert engine, regardless
	// of whether they resulted in a queued delivery.
	AlertsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "yuptime_alerts_total",
			Help: "Total number of alert events evaluated, by trigger and outcome",
		},
		[]string{"namespace", "monitor", "trigger", "outcome"},
	)

	// DeliveriesTotal tracks delivery attempts per provider and outcome.
	DeliveriesTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "yuptime_deliveries_total",
			Help: "Total number of alert delivery attempts, by provider and outcome",
		},
		[]string{"provider", "outcome"},
	)

	// SchedulerQueueDepth tracks the number of jobs currently queued for probing.
	SchedulerQueueDepth = prometheus.NewGauge(
		prometheus.GaugeOpts{
			Name: "yuptime_scheduler_queue_depth",
			Help: "Number of monitors currently queued for a probe",
		},
	)

	// ProbesInFlight tracks the number of probes currently executing, by class
	// (net vs priv), mirroring the scheduler's concurrency budgets.
	ProbesInFlight = prometheus.NewGaugeVec(
		prometheus.GaugeOpts{
			Name: "yuptime_probes_in_flight",
			Help: "Number of probes currently executing",
		},
		[]string{"class"},
	)
)

func init() {
	metrics.Registry.MustRegister(
		MonitorUptimePercent,
		MonitorLatencySeconds,
		HeartbeatsTotal,
		ActiveIncidents,
		AlertsTotal,
		DeliveriesTotal,
		SchedulerQueueDepth,
		ProbesInFlight,
	)
}

// RecordHeartbeat records a single probe outcome.
func RecordHeartbeat(namespace, monitor, state string) {
	HeartbeatsTotal.WithLabelValues(namespace, monitor, state).Inc()
}

// RecordAlert records an alert event evaluated by the alert engine. outcome
// is one of "queued", "suppressed", "deduped", "rate-limited".
func RecordAlert(namespace, monitor, trigger, outcome string) {
	AlertsTotal.WithLabelValues(namespace, monitor, trigger, outcome).Inc()
}

// RecordDelivery records a delivery attempt outcome ("sent" or "failed").
func RecordDelivery(provider, outcome string) {
	DeliveriesTotal.WithLabelValues(provider, outcome).Inc()
}

// UpdateUptimePercent updates the uptime gauge for a monitor.
func UpdateUptimePercent(namespace, monitor string, percent float64) {
	MonitorUptimePercent.WithLabelValues(namespace, monitor).Set(percent)
}

// UpdateLatency updates a latency percentile gauge for a monitor.
func UpdateLatency(namespace, monitor, percentile string, seconds float64) {
	MonitorLatencySeconds.WithLabelValues(namespace, monitor, percentile).Set(seconds)
}

// UpdateActiveIncidents updates the open-incidents gauge for a monitor (0 or 1
// in practice, since a monitor has at most one open incident at a time).
func UpdateActiveIncidents(namespace, monitor string, count float64) {
	ActiveIncidents.WithLabelValues(namespace, monitor).Set(count)
}

// UpdateQueueDepth updates the scheduler queue depth gauge.
func UpdateQueueDepth(depth float64) {
	SchedulerQueueDepth.Set(depth)
}

// UpdateProbesInFlight updates the in-flight probe gauge for a concurrency class.
func UpdateProbesInFlight(class string, count float64) {
	ProbesInFlight.WithLabelValues(class).Set(count)
}

// ResetMonitorMetrics resets all per-monitor metrics (e.g. when a Monitor is deleted).
func ResetMonitorMetrics(namespace, monitor string) {
	MonitorUptimePercent.DeletePartialMatch(prometheus.Labels{"namespace": namespace, "monitor": monitor})
	MonitorLatencySeconds.DeletePartialMatch(prometheus.Labels{"namespace": namespace, "monitor": monitor})
	ActiveIncidents.DeletePartialMatch(prometheus.Labels{"namespace": namespace, "monitor": monitor})
}
