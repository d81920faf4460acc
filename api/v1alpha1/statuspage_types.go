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

// StatusPageSpec defines the desired state of a StatusPage. Rendering the
// page itself is out of scope (non-goal: static asset serving, status-page
// renderer); the reconciler only validates that referenced Monitors exist
// and keeps the condition surface current.
type StatusPageSpec struct {
	Title string `json:"title"`

	// MonitorRefs names the Monitors shown on this page.
	MonitorRefs []string `json:"monitorRefs"`

	// +optional
	Public bool `json:"public,omitempty"`
}

// StatusPageStatus defines the observed state of a StatusPage.
type StatusPageStatus struct {
	StandardStatus `json:",inline"`

	// +optional
	MissingMonitors []string `json:"missingMonitors,omitempty"`
}

// +kubebuilder:object:root=true
// +kubebuilder:subresource:status
// +kubebuilder:printcolumn:name="Title",type=string,JSONPath=`.spec.title`
// +kubebuilder:printcolumn:name="Age",type=date,JSONPath=`.metadata.creationTimestamp`

// StatusPage is the Schema for the statuspages API.
type StatusPage struct {
	metav1.TypeMeta   `json:",inline"`
	metav1.ObjectMeta `json:"metadata,omitempty"`

	Spec   StatusPageSpec   `json:"spec,omitempty"`
	Status StatusPageStatus `json:"status,omitempty"`
}

// +kubebuilder:object:root=true

// StatusPageList contains a list of StatusPage.
type StatusPageList struct {
	metav1.TypeMeta `json:",inline"`
	metav1.ListMeta `json:"metadata,omitempty"`
	Items           []StatusPage `json:"items"`
}

func init() {
	SchemeBuilder.Register(&StatusPage{}, &StatusPageList{})
}
