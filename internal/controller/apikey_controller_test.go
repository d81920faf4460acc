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
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	corev1 "k8s.io/api/core/v1"
	metav1 "k8s.io/apimachinery/pkg/apis/meta/v1"
	"sigs.k8s.io/controller-runtime/pkg/client"
	"sigs.k8s.io/controller-runtime/pkg/client/fake"

	"github.com/yuptime-io/yuptime-operator/api/v1alpha1"
)

func newApiKeyReconciler(t *testing.T, objs ...client.Object) *ApiKeyReconciler {
	t.Helper()
	scheme := newTestScheme(t)
	fakeClient := fake.NewClientBuilder().
		WithScheme(scheme).
		WithObjects(objs...).
		WithStatusSubresource(&v1alpha1.ApiKey{}).
		Build()
	return &ApiKeyReconciler{
		Client: fakeClient,
		Scheme: scheme,
		Store:  newTestStore(t),
	}
}

func TestApiKeyReconcileValidAndNotExpired(t *testing.T) {
	secret := &corev1.Secret{
		ObjectMeta: metav1.ObjectMeta{Namespace: "default", Name: "ci-key"},
		Data:       map[string][]byte{"hash": []byte("deadbeef")},
	}
	expires := metav1.NewTime(time.Now().Add(24 * time.Hour))
	key := &v1alpha1.ApiKey{
		ObjectMeta: metav1.ObjectMeta{Namespace: "default", Name: "ci"},
		Spec: v1alpha1.ApiKeySpec{
			Owner:         "ci-bot",
			HashSecretRef: v1alpha1.NamespacedSecretKeyRef{Name: "ci-key", Namespace: "default", Key: "hash"},
			ExpiresAt:     &expires,
		},
	}
	r := newApiKeyReconciler(t, secret, key)

	res, err := r.Reconcile(context.Background(), reconcileRequestFor(key))
	require.NoError(t, err)
	assert.Greater(t, res.RequeueAfter, time.Duration(0))

	var latest v1alpha1.ApiKey
	require.NoError(t, r.Get(context.Background(), client.ObjectKeyFromObject(key), &latest))
	assert.False(t, latest.Status.Expired)
	valid := findCondition(latest.Status.Conditions, v1alpha1.ConditionValid)
	require.NotNil(t, valid)
	assert.Equal(t, metav1.ConditionTrue, valid.Status)
}

func TestApiKeyReconcileExpired(t *testing.T) {
	secret := &corev1.Secret{
		ObjectMeta: metav1.ObjectMeta{Namespace: "default", Name: "ci-key"},
		Data:       map[string][]byte{"hash": []byte("deadbeef")},
	}
	expired := metav1.NewTime(time.Now().Add(-time.Hour))
	key := &v1alpha1.ApiKey{
		ObjectMeta: metav1.ObjectMeta{Namespace: "default", Name: "ci"},
		Spec: v1alpha1.ApiKeySpec{
			Owner:         "ci-bot",
			HashSecretRef: v1alpha1.NamespacedSecretKeyRef{Name: "ci-key", Namespace: "default", Key: "hash"},
			ExpiresAt:     &expired,
		},
	}
	r := newApiKeyReconciler(t, secret, key)

	res, err := r.Reconcile(context.Background(), reconcileRequestFor(key))
	require.NoError(t, err)
	assert.Equal(t, time.Duration(0), res.RequeueAfter)

	var latest v1alpha1.ApiKey
	require.NoError(t, r.Get(context.Background(), client.ObjectKeyFromObject(key), &latest))
	assert.True(t, latest.Status.Expired)
}

func TestApiKeyReconcileMissingSecretFailsValidation(t *testing.T) {
	key := &v1alpha1.ApiKey{
		ObjectMeta: metav1.ObjectMeta{Namespace: "default", Name: "ci"},
		Spec: v1alpha1.ApiKeySpec{
			Owner:         "ci-bot",
			HashSecretRef: v1alpha1.NamespacedSecretKeyRef{Name: "missing", Namespace: "default", Key: "hash"},
		},
	}
	r := newApiKeyReconciler(t, key)

	_, err := r.Reconcile(context.Background(), reconcileRequestFor(key))
	require.NoError(t, err)

	var latest v1alpha1.ApiKey
	require.NoError(t, r.Get(context.Background(), client.ObjectKeyFromObject(key), &latest))
	valid := findCondition(latest.Status.Conditions, v1alpha1.ConditionValid)
	require.NotNil(t, valid)
	assert.Equal(t, metav1.ConditionFalse, valid.Status)
}
