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

// RecurrenceSpec holds an optional RFC 5545 RRULE string.
type RecurrenceSpec struct {
	// +optional
	RRule string `json:"rrule,omitempty"`
}

// WindowScheduleSpec is the window's start/end and optional recurrence.
type WindowScheduleSpec struct {
	Start metav1.Time `json:"start"`
	End   metav1.Time `json:"end"`

	// +optional
	Recurrence RecurrenceSpec `json:"recurrence,omitempty"`
}

// MaintenanceWindowSpec defines the desired state of a MaintenanceWindow.
type MaintenanceWindowSpec struct {
	// +optional
	Enabled *bool `json:"enabled,omitempty"`

	Schedule WindowScheduleSpec `json:"schedule"`

	Match Selector `json:"match"`
}

// MaintenanceWindowStatus defines the observed state of a MaintenanceWindow.
type MaintenanceWindowStatus struct {
	StandardStatus `json:",inline"`

	// +optional
	NextOccurrence *metav1.Time `json:"nextOccurrence,omitempty"`
}

// +kubebuilder:object:root=true
// +kubebuilder:subresource:status
// +kubebuilder:printcolumn:name="Next",type=date,JSONPath=`.status.nextOccurrence`
// +kubebuilder:printcolumn:name="Age",type=date,JSONPath=`.metadata.creationTimestamp`

// MaintenanceWindow is the Schema for the maintenancewindows API.
type MaintenanceWindow struct {
	metav1.TypeMeta   `json:",inline"`
	metav1.ObjectMeta `json:"metadata,omitempty"`

	Spec   MaintenanceWindowSpec   `json:"spec,omitempty"`
	Status MaintenanceWindowStatus `json:"status,omitempty"`
}

// +kubebuilder:object:root=true

// MaintenanceWindowList contains a list of MaintenanceWindow.
type MaintenanceWindowList struct {
	metav1.TypeMeta `json:",inline"`
	metav1.ListMeta `json:"metadata,omitempty"`
	Items           []MaintenanceWindow `json:"items"`
}

func init() {
	SchemeBuilder.Register(&MaintenanceWindow{}, &MaintenanceWindowList{})
}
