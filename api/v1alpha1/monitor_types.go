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

// ProbeType is the discriminator for a Monitor's target union.
// +kubebuilder:validation:Enum=http;tcp;dns;icmp;websocket;grpc;push;gameserver;k8sresource
type ProbeType string

const (
	ProbeTypeHTTP       ProbeType = "http"
	ProbeTypeTCP        ProbeType = "tcp"
	ProbeTypeDNS        ProbeType = "dns"
	ProbeTypeICMP       ProbeType = "icmp"
	ProbeTypeWebSocket  ProbeType = "websocket"
	ProbeTypeGRPC       ProbeType = "grpc"
	ProbeTypePush       ProbeType = "push"
	ProbeTypeGameServer ProbeType = "gameserver"
	ProbeTypeK8sResource ProbeType = "k8sresource"
)

// MonitorTarget is a type-discriminated union; exactly one field matching
// Spec.Type should be set. Only the fields the probe executor contract
// actually needs are modeled; deeper per-protocol options are treated as
// probe-executor-internal, per the non-goal on probe implementations.
type MonitorTarget struct {
	// +optional
	HTTP *HTTPTarget `json:"http,omitempty"`
	// +optional
	TCP *TCPTarget `json:"tcp,omitempty"`
	// +optional
	DNS *DNSTarget `json:"dns,omitempty"`
	// +optional
	ICMP *ICMPTarget `json:"icmp,omitempty"`
	// +optional
	WebSocket *WebSocketTarget `json:"websocket,omitempty"`
	// +optional
	GRPC *GRPCTarget `json:"grpc,omitempty"`
	// +optional
	Push *PushTarget `json:"push,omitempty"`
	// +optional
	GameServer *GameServerTarget `json:"gameserver,omitempty"`
	// +optional
	K8sResource *K8sResourceTarget `json:"k8sresource,omitempty"`
}

type HTTPTarget struct {
	URL string `json:"url"`
	// +optional
	Method string `json:"method,omitempty"`
	// +optional
	ExpectedStatusCodes []int32 `json:"expectedStatusCodes,omitempty"`
	// +optional
	ExpectedBodyContains string `json:"expectedBodyContains,omitempty"`
}

type TCPTarget struct {
	Host string `json:"host"`
	Port int32  `json:"port"`
}

type DNSTarget struct {
	Hostname string `json:"hostname"`
	// +optional
	RecordType string `json:"recordType,omitempty"`
	// +optional
	Resolver string `json:"resolver,omitempty"`
}

type ICMPTarget struct {
	Host string `json:"host"`
}

type WebSocketTarget struct {
	URL string `json:"url"`
}

type GRPCTarget struct {
	Target string `json:"target"`
	// +optional
	Service string `json:"service,omitempty"`
}

type PushTarget struct {
	// PushToken identifies the heartbeat-push endpoint this monitor listens on.
	PushToken string `json:"pushToken"`
}

type GameServerTarget struct {
	Host string `json:"host"`
	Port int32  `json:"port"`
	// +optional
	Protocol string `json:"protocol,omitempty"`
}

type K8sResourceTarget struct {
	Kind      string `json:"kind"`
	Namespace string `json:"namespace"`
	Name      string `json:"name"`
}

// MonitorSpec defines the desired state of a Monitor.
type MonitorSpec struct {
	Type ProbeType `json:"type"`

	Target MonitorTarget `json:"target"`

	Schedule ScheduleSpec `json:"schedule"`

	// +optional
	SuccessCriteria string `json:"successCriteria,omitempty"`

	// +optional
	Tags []string `json:"tags,omitempty"`

	// Enabled defaults to true when nil.
	// +optional
	Enabled *bool `json:"enabled,omitempty"`

	// AlertmanagerURL switches this monitor's alert engine output to the
	// Alertmanager bridge in addition to (not instead of) NotificationPolicy
	// delivery.
	// +optional
	AlertmanagerURL string `json:"alertmanagerUrl,omitempty"`
}

// MonitorStatus defines the observed state of a Monitor.
type MonitorStatus struct {
	StandardStatus `json:",inline"`

	// +optional
	// +kubebuilder:validation:Enum=up;down;pending;flapping;paused
	State string `json:"state,omitempty"`

	// +optional
	LastCheckedAt *metav1.Time `json:"lastCheckedAt,omitempty"`

	// +optional
	LastLatencyMs int64 `json:"lastLatencyMs,omitempty"`

	// +optional
	NextRunAt *metav1.Time `json:"nextRunAt,omitempty"`

	// +optional
	OpenIncidentStartedAt *metav1.Time `json:"openIncidentStartedAt,omitempty"`
}

// +kubebuilder:object:root=true
// +kubebuilder:subresource:status
// +kubebuilder:printcolumn:name="Type",type=string,JSONPath=`.spec.type`
// +kubebuilder:printcolumn:name="State",type=string,JSONPath=`.status.state`
// +kubebuilder:printcolumn:name="Interval",type=integer,JSONPath=`.spec.schedule.intervalSec`
// +kubebuilder:printcolumn:name="Age",type=date,JSONPath=`.metadata.creationTimestamp`

// Monitor is the Schema for the monitors API.
type Monitor struct {
	metav1.TypeMeta   `json:",inline"`
	metav1.ObjectMeta `json:"metadata,omitempty"`

	Spec   MonitorSpec   `json:"spec,omitempty"`
	Status MonitorStatus `json:"status,omitempty"`
}

// +kubebuilder:object:root=true

// MonitorList contains a list of Monitor.
type MonitorList struct {
	metav1.TypeMeta `json:",inline"`
	metav1.ListMeta `json:"metadata,omitempty"`
	Items           []Monitor `json:"items"`
}

func init() {
	SchemeBuilder.Register(&Monitor{}, &MonitorList{})
}
