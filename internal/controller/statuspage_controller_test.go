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
)

func newStatusPageReconciler(t *testing.T, objs ...client.Object) *StatusPageReconciler {
	t.Helper()
	scheme := newTestScheme(t)
	fakeClient := fake.NewClientBuilder().
		WithScheme(scheme).
		WithObjects(objs...).
		WithStatusSubresource(&v1alpha1.StatusPage{}).
		Build()
	return &StatusPageReconciler{
		Client: fakeClient,
		Scheme: scheme,
		Store:  newTestStore(t),
	}
}

func TestStatusPageReconcileMissingMonitors(t *testing.T) {
	page := &v1alpha1.StatusPage{
		ObjectMeta: metav1.ObjectMeta{Namespace: "default", Name: "public"},
		Spec: v1alpha1.StatusPageSpec{
			Title:       "Public status",
			MonitorRefs: []string{"missing-monitor"},
		},
	}
	r := newStatusPageReconciler(t, page)

	_, err := r.Reconcile(context.Background(), reconcileRequestFor(page))
	require.NoError(t, err)

	var latest v1alpha1.StatusPage
	require.NoError(t, r.Get(context.Background(), client.ObjectKeyFromObject(page), &latest))
	assert.Equal(t, []string{"missing-monitor"}, latest.Status.MissingMonitors)
	valid := findCondition(latest.Status.Conditions, v1alpha1.ConditionValid)
	require.NotNil(t, valid)
	assert.Equal(t, metav1.ConditionFalse, valid.Status)
}

func TestStatusPageReconcileAllMonitorsResolve(t *testing.T) {
	monitor := newTestMonitor("web")
	page := &v1alpha1.StatusPage{
		ObjectMeta: metav1.ObjectMeta{Namespace: "default", Name: "public"},
		Spec: v1alpha1.StatusPageSpec{
			Title:       "Public status",
			MonitorRefs: []string{"web"},
		},
	}
	r := newStatusPageReconciler(t, monitor, page)

	_, err := r.Reconcile(context.Background(), reconcileRequestFor(page))
	require.NoError(t, err)

	var latest v1alpha1.StatusPage
	require.NoError(t, r.Get(context.Background(), client.ObjectKeyFromObject(page), &latest))
	assert.Empty(t, latest.Status.MissingMonitors)
	valid := findCondition(latest.Status.Conditions, v1alpha1.ConditionValid)
	require.NotNil(t, valid)
	assert.Equal(t, metav1.ConditionTrue, valid.Status)
}
