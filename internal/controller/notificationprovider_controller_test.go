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
	apierrors "k8s.io/apimachinery/pkg/api/errors"
	metav1 "k8s.io/apimachinery/pkg/apis/meta/v1"
	"sigs.k8s.io/controller-runtime/pkg/client"
	"sigs.k8s.io/controller-runtime/pkg/client/fake"

	"github.com/yuptime-io/yuptime-operator/api/v1alpha1"
	"github.com/yuptime-io/yuptime-operator/internal/cache"
)

func newNotificationProviderReconciler(t *testing.T, objs ...client.Object) *NotificationProviderReconciler {
	t.Helper()
	scheme := newTestScheme(t)
	fakeClient := fake.NewClientBuilder().
		WithScheme(scheme).
		WithObjects(objs...).
		WithStatusSubresource(&v1alpha1.NotificationProvider{}).
		Build()
	return &NotificationProviderReconciler{
		Client: fakeClient,
		Scheme: scheme,
		Cache:  cache.New(kindNotificationProvider),
		Store:  newTestStore(t),
	}
}

func TestNotificationProviderReconcileAddsFinalizer(t *testing.T) {
	provider := &v1alpha1.NotificationProvider{
		ObjectMeta: metav1.ObjectMeta{Namespace: "default", Name: "slack-oncall"},
		Spec: v1alpha1.NotificationProviderSpec{
			Type:  "slack",
			Slack: &v1alpha1.SlackConfig{WebhookSecretRef: v1alpha1.NamespacedSecretKeyRef{Name: "slack", Key: "url"}},
		},
	}
	r := newNotificationProviderReconciler(t, provider)

	res, err := r.Reconcile(context.Background(), reconcileRequestFor(provider))
	require.NoError(t, err)
	assert.True(t, res.Requeue)
}

func TestNotificationProviderReconcileMissingConfigFailsValidation(t *testing.T) {
	provider := &v1alpha1.NotificationProvider{
		ObjectMeta: metav1.ObjectMeta{Namespace: "default", Name: "slack-oncall", Finalizers: []string{finalizerName}},
		Spec:       v1alpha1.NotificationProviderSpec{Type: "slack"},
	}
	r := newNotificationProviderReconciler(t, provider)

	_, err := r.Reconcile(context.Background(), reconcileRequestFor(provider))
	require.NoError(t, err)

	var latest v1alpha1.NotificationProvider
	require.NoError(t, r.Get(context.Background(), client.ObjectKeyFromObject(provider), &latest))
	assert.False(t, latest.Status.Ready)
	valid := findCondition(latest.Status.Conditions, v1alpha1.ConditionValid)
	require.NotNil(t, valid)
	assert.Equal(t, metav1.ConditionFalse, valid.Status)
}

func TestNotificationProviderReconcileReadyWithoutTest(t *testing.T) {
	provider := &v1alpha1.NotificationProvider{
		ObjectMeta: metav1.ObjectMeta{Namespace: "default", Name: "slack-oncall", Finalizers: []string{finalizerName}},
		Spec: v1alpha1.NotificationProviderSpec{
			Type:  "slack",
			Slack: &v1alpha1.SlackConfig{WebhookSecretRef: v1alpha1.NamespacedSecretKeyRef{Name: "slack", Key: "url"}},
		},
	}
	r := newNotificationProviderReconciler(t, provider)

	_, err := r.Reconcile(context.Background(), reconcileRequestFor(provider))
	require.NoError(t, err)

	var latest v1alpha1.NotificationProvider
	require.NoError(t, r.Get(context.Background(), client.ObjectKeyFromObject(provider), &latest))
	assert.True(t, latest.Status.Ready)
	assert.Empty(t, latest.Status.LastTestResult)

	_, cached := r.Cache.Get(cache.Key{Kind: kindNotificationProvider, Namespace: "default", Name: "slack-oncall"})
	assert.True(t, cached)
}

func TestNotificationProviderReconcileTestOnSaveRecordsFailure(t *testing.T) {
	provider := &v1alpha1.NotificationProvider{
		ObjectMeta: metav1.ObjectMeta{Namespace: "default", Name: "slack-oncall", Finalizers: []string{finalizerName}},
		Spec: v1alpha1.NotificationProviderSpec{
			Type:       "slack",
			Slack:      &v1alpha1.SlackConfig{WebhookSecretRef: v1alpha1.NamespacedSecretKeyRef{Name: "missing", Key: "url"}},
			TestOnSave: true,
		},
	}
	r := newNotificationProviderReconciler(t, provider)

	_, err := r.Reconcile(context.Background(), reconcileRequestFor(provider))
	require.NoError(t, err)

	var latest v1alpha1.NotificationProvider
	require.NoError(t, r.Get(context.Background(), client.ObjectKeyFromObject(provider), &latest))
	assert.Equal(t, "failed", latest.Status.LastTestResult)
	assert.NotEmpty(t, latest.Status.LastTestError)
	require.NotNil(t, latest.Status.LastTestTime)
}

func TestNotificationProviderReconcileFinalizeClearsCache(t *testing.T) {
	now := metav1.Now()
	provider := &v1alpha1.NotificationProvider{
		ObjectMeta: metav1.ObjectMeta{
			Namespace:         "default",
			Name:              "slack-oncall",
			Finalizers:        []string{finalizerName},
			DeletionTimestamp: &now,
		},
	}
	r := newNotificationProviderReconciler(t, provider)
	r.Cache.Upsert(cache.Key{Kind: kindNotificationProvider, Namespace: "default", Name: "slack-oncall"}, provider, "1", 1)

	_, err := r.Reconcile(context.Background(), reconcileRequestFor(provider))
	require.NoError(t, err)

	_, cached := r.Cache.Get(cache.Key{Kind: kindNotificationProvider, Namespace: "default", Name: "slack-oncall"})
	assert.False(t, cached)

	var gone v1alpha1.NotificationProvider
	err = r.Get(context.Background(), client.ObjectKeyFromObject(provider), &gone)
	assert.True(t, apierrors.IsNotFound(err))
}
