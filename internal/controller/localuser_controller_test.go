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

package controller

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	corev1 "k8s.io/api/core/v1"
	metav1 "k8s.io/apimachinery/pkg/apis/meta/v1"
	"sigs.k8s.io/controller-runtime/pkg/client"
	"sigs.k8s.io/controller-runtime/pkg/client/fake"

	"github.com/yuptime-io/yuptime-operator/api/v1alpha1"
)

func newLocalUserReconciler(t *testing.T, objs ...client.Object) *LocalUserReconciler {
	t.Helper()
	scheme := newTestScheme(t)
	fakeClient := fake.NewClientBuilder().
		WithScheme(scheme).
		WithObjects(objs...).
		WithStatusSubresource(&v1alpha1.LocalUser{}).
		Build()
	return &LocalUserReconciler{
		Client: fakeClient,
		Scheme: scheme,
		Store:  newTestStore(t),
	}
}

func TestLocalUserReconcileSecretResolves(t *testing.T) {
	secret := &corev1.Secret{
		ObjectMeta: metav1.ObjectMeta{Namespace: "default", Name: "operators"},
		Data:       map[string][]byte{"hash": []byte("$2a$10$hash")},
	}
	user := &v1alpha1.LocalUser{
		ObjectMeta: metav1.ObjectMeta{Namespace: "default", Name: "alice"},
		Spec: v1alpha1.LocalUserSpec{
			Username:              "alice",
			PasswordHashSecretRef: v1alpha1.NamespacedSecretKeyRef{Name: "operators", Namespace: "default", Key: "hash"},
		},
	}
	r := newLocalUserReconciler(t, secret, user)

	_, err := r.Reconcile(context.Background(), reconcileRequestFor(user))
	require.NoError(t, err)

	var latest v1alpha1.LocalUser
	require.NoError(t, r.Get(context.Background(), client.ObjectKeyFromObject(user), &latest))
	valid := findCondition(latest.Status.Conditions, v1alpha1.ConditionValid)
	require.NotNil(t, valid)
	assert.Equal(t, metav1.ConditionTrue, valid.Status)
}

func TestLocalUserReconcileMissingSecretFailsValidation(t *testing.T) {
	user := &v1alpha1.LocalUser{
		ObjectMeta: metav1.ObjectMeta{Namespace: "default", Name: "bob"},
		Spec: v1alpha1.LocalUserSpec{
			Username:              "bob",
			PasswordHashSecretRef: v1alpha1.NamespacedSecretKeyRef{Name: "missing", Namespace: "default", Key: "hash"},
		},
	}
	r := newLocalUserReconciler(t, user)

	_, err := r.Reconcile(context.Background(), reconcileRequestFor(user))
	require.NoError(t, err)

	var latest v1alpha1.LocalUser
	require.NoError(t, r.Get(context.Background(), client.ObjectKeyFromObject(user), &latest))
	valid := findCondition(latest.Status.Conditions, v1alpha1.ConditionValid)
	require.NotNil(t, valid)
	assert.Equal(t, metav1.ConditionFalse, valid.Status)
}
