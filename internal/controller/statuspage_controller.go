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
	"fmt"

	apierrors "k8s.io/apimachinery/pkg/api/errors"
	metav1 "k8s.io/apimachinery/pkg/apis/meta/v1"
	"k8s.io/apimachinery/pkg/runtime"
	"k8s.io/client-go/util/retry"
	ctrl "sigs.k8s.io/controller-runtime"
	"sigs.k8s.io/controller-runtime/pkg/builder"
	"sigs.k8s.io/controller-runtime/pkg/client"
	"sigs.k8s.io/controller-runtime/pkg/predicate"

	"github.com/yuptime-io/yuptime-operator/api/v1alpha1"
	"github.com/yuptime-io/yuptime-operator/internal/store"
)

const kindStatusPage = "StatusPage"

// StatusPageReconciler validates that every Monitor a StatusPage references
// exists. Rendering the page is out of scope; this only keeps
// status.missingMonitors and the Valid condition current.
type StatusPageReconciler struct {
	client.Client
	Scheme *runtime.Scheme

	Store store.Store
}

// +kubebuilder:rbac:groups=yuptime.io,resources=statuspages,verbs=get;list;watch;update;patch
// +kubebuilder:rbac:groups=yuptime.io,resources=statuspages/status,verbs=get;update;patch
// +kubebuilder:rbac:groups=yuptime.io,resources=monitors,verbs=get;list;watch

func (r *StatusPageReconciler) Reconcile(ctx context.Context, req ctrl.Request) (ctrl.Result, error) {
	var page v1alpha1.StatusPage
	if err := r.Get(ctx, req.NamespacedName, &page); err != nil {
		if apierrors.IsNotFound(err) {
			return ctrl.Result{}, nil
		}
		return ctrl.Result{}, err
	}

	var missing []string
	for _, name := range page.Spec.MonitorRefs {
		var m v1alpha1.Monitor
		if err := r.Get(ctx, client.ObjectKey{Namespace: page.Namespace, Name: name}, &m); err != nil {
			if apierrors.IsNotFound(err) {
				missing = append(missing, name)
				continue
			}
			return ctrl.Result{}, err
		}
	}

	status, reason, message := metav1.ConditionTrue, v1alpha1.ReasonReconciled, "all referenced monitors exist"
	if len(missing) > 0 {
		status, reason, message = metav1.ConditionFalse, v1alpha1.ReasonValidationFailed, fmt.Sprintf("monitors not found: %v", missing)
	}

	err := retry.RetryOnConflict(retry.DefaultRetry, func() error {
		var latest v1alpha1.StatusPage
		if err := r.Get(ctx, client.ObjectKeyFromObject(&page), &latest); err != nil {
			return err
		}
		latest.Status.MissingMonitors = missing
		setCondition(&latest.Status.Conditions, v1alpha1.ConditionValid, status, reason, message)
		latest.Status.ObservedGeneration = latest.Generation
		return r.Status().Update(ctx, &latest)
	})
	appendAudit(ctx, r.Store, kindStatusPage, page.Namespace, page.Name, "reconcile", message)
	return ctrl.Result{}, err
}

func (r *StatusPageReconciler) SetupWithManager(mgr ctrl.Manager) error {
	return ctrl.NewControllerManagedBy(mgr).
		For(&v1alpha1.StatusPage{}, builder.WithPredicates(predicate.GenerationChangedPredicate{})).
		Complete(r)
}
