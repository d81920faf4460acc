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

// MonitorSetTarget is one template entry that the MonitorSet reconciler
// expands into a generated Monitor.
type MonitorSetTarget struct {
	// Name is appended to the MonitorSet name to form the generated
	// Monitor's name: `<set-name>-<name>`.
	Name string `json:"name"`

	Type ProbeType `json:"type"`

	Target MonitorTarget `json:"target"`

	// Schedule overrides the set-level ScheduleDefaults for this entry.
	// +optional
	Schedule *ScheduleSpec `json:"schedule,omitempty"`
}

// MonitorSetSpec defines the desired state of a MonitorSet.
type MonitorSetSpec struct {
	Targets []MonitorSetTarget `json:"targets"`

	// ScheduleDefaults is used for any target that doesn't set its own Schedule.
	ScheduleDefaults ScheduleSpec `json:"scheduleDefaults"`

	// +optional
	Tags []string `json:"tags,omitempty"`

	// +optional
	Enabled *bool `json:"enabled,omitempty"`
}

// MonitorSetStatus defines the observed state of a MonitorSet.
type MonitorSetStatus struct {
	StandardStatus `json:",inline"`

	// GeneratedMonitors lists the names of Monitors currently owned by this set.
	// +optional
	GeneratedMonitors []string `json:"generatedMonitors,omitempty"`
}

// +kubebuilder:object:root=true
// +kubebuilder:subresource:status
// +kubebuilder:printcolumn:name="Targets",type=integer,JSONPath=`.spec.targets.length`
// +kubebuilder:printcolumn:name="Age",type=date,JSONPath=`.metadata.creationTimestamp`

// MonitorSet is the Schema for the monitorsets API.
type MonitorSet struct {
	metav1.TypeMeta   `json:",inline"`
	metav1.ObjectMeta `json:"metadata,omitempty"`

	Spec   MonitorSetSpec   `json:"spec,omitempty"`
	Status MonitorSetStatus `json:"status,omitempty"`
}

// +kubebuilder:object:root=true

// MonitorSetList contains a list of MonitorSet.
type MonitorSetList struct {
	metav1.TypeMeta `json:",inline"`
	metav1.ListMeta `json:"metadata,omitempty"`
	Items           []MonitorSet `json:"items"`
}

func init() {
	SchemeBuilder.Register(&MonitorSet{}, &MonitorSetList{})
}
