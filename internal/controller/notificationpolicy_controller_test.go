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
	metav1 "k8s.io/apimachinery/pkg/apis/meta/v1"
	"sigs.k8s.io/controller-runtime/pkg/client"
	"sigs.k8s.io/controller-runtime/pkg/client/fake"

	"github.com/yuptime-io/yuptime-operator/api/v1alpha1"
	"github.com/yuptime-io/yuptime-operator/internal/cache"
)

func newNotificationPolicyReconciler(t *testing.T, objs ...client.Object) *NotificationPolicyReconciler {
	t.Helper()
	scheme := newTestScheme(t)
	fakeClient := fake.NewClientBuilder().
		WithScheme(scheme).
		WithObjects(objs...).
		WithStatusSubresource(&v1alpha1.NotificationPolicy{}).
		Build()
	return &NotificationPolicyReconciler{
		Client: fakeClient,
		Scheme: scheme,
		Cache:  cache.New(kindNotificationPolicy),
		Store:  newTestStore(t),
	}
}

func TestNotificationPolicyReconcileMissingProvider(t *testing.T) {
	policy := &v1alpha1.NotificationPolicy{
		ObjectMeta: metav1.ObjectMeta{Namespace: "default", Name: "page-oncall", Finalizers: []string{finalizerName}},
		Spec: v1alpha1.NotificationPolicySpec{
			Triggers:  v1alpha1.PolicyTriggers{OnDown: true},
			Providers: []string{"missing-provider"},
		},
	}
	r := newNotificationPolicyReconciler(t, policy)

	_, err := r.Reconcile(context.Background(), reconcileRequestFor(policy))
	require.NoError(t, err)

	var latest v1alpha1.NotificationPolicy
	require.NoError(t, r.Get(context.Background(), client.ObjectKeyFromObject(policy), &latest))
	valid := findCondition(latest.Status.Conditions, v1alpha1.ConditionValid)
	require.NotNil(t, valid)
	assert.Equal(t, metav1.ConditionFalse, valid.Status)

	_, cached := r.Cache.Get(cache.Key{Kind: kindNotificationPolicy, Namespace: "default", Name: "page-oncall"})
	assert.False(t, cached)
}

func TestNotificationPolicyReconcileResolvesProviders(t *testing.T) {
	provider := &v1alpha1.NotificationProvider{
		ObjectMeta: metav1.ObjectMeta{Namespace: "default", Name: "slack-oncall"},
		Spec:       v1alpha1.NotificationProviderSpec{Type: "slack"},
	}
	policy := &v1alpha1.NotificationPolicy{
		ObjectMeta: metav1.ObjectMeta{Namespace: "default", Name: "page-oncall", Finalizers: []string{finalizerName}},
		Spec: v1alpha1.NotificationPolicySpec{
			Triggers:  v1alpha1.PolicyTriggers{OnDown: true},
			Providers: []string{"slack-oncall"},
		},
	}
	r := newNotificationPolicyReconciler(t, provider, policy)

	_, err := r.Reconcile(context.Background(), reconcileRequestFor(policy))
	require.NoError(t, err)

	var latest v1alpha1.NotificationPolicy
	require.NoError(t, r.Get(context.Background(), client.ObjectKeyFromObject(policy), &latest))
	valid := findCondition(latest.Status.Conditions, v1alpha1.ConditionValid)
	require.NotNil(t, valid)
	assert.Equal(t, metav1.ConditionTrue, valid.Status)

	_, cached := r.Cache.Get(cache.Key{Kind: kindNotificationPolicy, Namespace: "default", Name: "page-oncall"})
	assert.True(t, cached)
}

func TestNotificationPolicyReconcileFinalizeClearsCache(t *testing.T) {
	now := metav1.Now()
	policy := &v1alpha1.NotificationPolicy{
		ObjectMeta: metav1.ObjectMeta{
			Namespace:         "default",
			Name:              "page-oncall",
			Finalizers:        []string{finalizerName},
			DeletionTimestamp: &now,
		},
	}
	r := newNotificationPolicyReconciler(t, policy)
	r.Cache.Upsert(cache.Key{Kind: kindNotificationPolicy, Namespace: "default", Name: "page-oncall"}, policy, "1", 1)

	_, err := r.Reconcile(context.Background(), reconcileRequestFor(policy))
	require.NoError(t, err)

	_, cached := r.Cache.Get(cache.Key{Kind: kindNotificationPolicy, Namespace: "default", Name: "page-oncall"})
	assert.False(t, cached)
}
