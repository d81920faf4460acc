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
	metav1 "k8s.io/apimachinery/pkg/apis/meta/v1"
	"sigs.k8s.io/controller-runtime/pkg/client"
	"sigs.k8s.io/controller-runtime/pkg/client/fake"

	"github.com/yuptime-io/yuptime-operator/api/v1alpha1"
	"github.com/yuptime-io/yuptime-operator/internal/cache"
)

func newSilenceReconciler(t *testing.T, objs ...client.Object) *SilenceReconciler {
	t.Helper()
	scheme := newTestScheme(t)
	fakeClient := fake.NewClientBuilder().
		WithScheme(scheme).
		WithObjects(objs...).
		WithStatusSubresource(&v1alpha1.Silence{}).
		Build()
	return &SilenceReconciler{
		Client: fakeClient,
		Scheme: scheme,
		Cache:  cache.New(kindSilence),
		Store:  newTestStore(t),
	}
}

func TestSilenceReconcileActiveIsCachedAndRequeued(t *testing.T) {
	silence := &v1alpha1.Silence{
		ObjectMeta: metav1.ObjectMeta{Namespace: "default", Name: "deploy-window", Finalizers: []string{finalizerName}},
		Spec: v1alpha1.SilenceSpec{
			ExpiresAt: metav1.NewTime(time.Now().Add(time.Hour)),
			Reason:    "planned deploy",
		},
	}
	r := newSilenceReconciler(t, silence)

	res, err := r.Reconcile(context.Background(), reconcileRequestFor(silence))
	require.NoError(t, err)
	assert.Greater(t, res.RequeueAfter, time.Duration(0))

	var latest v1alpha1.Silence
	require.NoError(t, r.Get(context.Background(), client.ObjectKeyFromObject(silence), &latest))
	assert.True(t, latest.Status.Active)

	_, cached := r.Cache.Get(cache.Key{Kind: kindSilence, Namespace: "default", Name: "deploy-window"})
	assert.True(t, cached)
}

func TestSilenceReconcileExpiredIsRemovedFromCache(t *testing.T) {
	silence := &v1alpha1.Silence{
		ObjectMeta: metav1.ObjectMeta{Namespace: "default", Name: "old-window", Finalizers: []string{finalizerName}},
		Spec: v1alpha1.SilenceSpec{
			ExpiresAt: metav1.NewTime(time.Now().Add(-time.Hour)),
		},
	}
	r := newSilenceReconciler(t, silence)
	r.Cache.Upsert(cache.Key{Kind: kindSilence, Namespace: "default", Name: "old-window"}, silence, "1", 1)

	res, err := r.Reconcile(context.Background(), reconcileRequestFor(silence))
	require.NoError(t, err)
	assert.Equal(t, time.Duration(0), res.RequeueAfter)

	var latest v1alpha1.Silence
	require.NoError(t, r.Get(context.Background(), client.ObjectKeyFromObject(silence), &latest))
	assert.False(t, latest.Status.Active)

	_, cached := r.Cache.Get(cache.Key{Kind: kindSilence, Namespace: "default", Name: "old-window"})
	assert.False(t, cached)
}

func TestSilenceReconcileAddsFinalizer(t *testing.T) {
	silence := &v1alpha1.Silence{
		ObjectMeta: metav1.ObjectMeta{Namespace: "default", Name: "deploy-window"},
		Spec:       v1alpha1.SilenceSpec{ExpiresAt: metav1.NewTime(time.Now().Add(time.Hour))},
	}
	r := newSilenceReconciler(t, silence)

	res, err := r.Reconcile(context.Background(), reconcileRequestFor(silence))
	require.NoError(t, err)
	assert.True(t, res.Requeue)
}
