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

// LocalUserSpec defines the desired state of a LocalUser. Authentication
// itself is out of scope (non-goal); the reconciler only validates the
// reference and surfaces conditions, never reading the secret's contents.
type LocalUserSpec struct {
	Username string `json:"username"`

	PasswordHashSecretRef NamespacedSecretKeyRef `json:"passwordHashSecretRef"`

	// +optional
	Roles []string `json:"roles,omitempty"`
}

// LocalUserStatus defines the observed state of a LocalUser.
type LocalUserStatus struct {
	StandardStatus `json:",inline"`
}

// +kubebuilder:object:root=true
// +kubebuilder:subresource:status
// +kubebuilder:printcolumn:name="Username",type=string,JSONPath=`.spec.username`
// +kubebuilder:printcolumn:name="Age",type=date,JSONPath=`.metadata.creationTimestamp`

// LocalUser is the Schema for the localusers API.
type LocalUser struct {
	metav1.TypeMeta   `json:",inline"`
	metav1.ObjectMeta `json:"metadata,omitempty"`

	Spec   LocalUserSpec   `json:"spec,omitempty"`
	Status LocalUserStatus `json:"status,omitempty"`
}

// +kubebuilder:object:root=true

// LocalUserList contains a list of LocalUser.
type LocalUserList struct {
	metav1.TypeMeta `json:",inline"`
	metav1.ListMeta `json:"metadata,omitempty"`
	Items           []LocalUser `json:"items"`
}

func init() {
	SchemeBuilder.Register(&LocalUser{}, &LocalUserList{})
}
