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
	"time"

	"github.com/teambition/rrule-go"
	apierrors "k8s.io/apimachinery/pkg/api/errors"
	metav1 "k8s.io/apimachinery/pkg/apis/meta/v1"
	"k8s.io/apimachinery/pkg/runtime"
	"k8s.io/client-go/util/retry"
	ctrl "sigs.k8s.io/controller-runtime"
	"sigs.k8s.io/controller-runtime/pkg/builder"
	"sigs.k8s.io/controller-runtime/pkg/client"
	"sigs.k8s.io/controller-runtime/pkg/controller/controllerutil"
	"sigs.k8s.io/controller-runtime/pkg/predicate"

	"github.com/yuptime-io/yuptime-operator/api/v1alpha1"
	"github.com/yuptime-io/yuptime-operator/internal/cache"
	"github.com/yuptime-io/yuptime-operator/internal/store"
)

// MaintenanceWindowReconciler mirrors MaintenanceWindow objects into the
// resource cache and computes status.nextOccurrence for both one-shot and
// RRULE-recurring windows.
type MaintenanceWindowReconciler struct {
	client.Client
	Scheme *runtime.Scheme

	Cache *cache.Cache
	Store store.Store
}

// +kubebuilder:rbac:groups=yuptime.io,resources=maintenancewindows,verbs=get;list;watch;update;patch
// +kubebuilder:rbac:groups=yuptime.io,resources=maintenancewindows/status,verbs=get;update;patch
// +kubebuilder:rbac:groups=yuptime.io,resources=maintenancewindows/finalizers,verbs=update

func (r *MaintenanceWindowReconciler) Reconcile(ctx context.Context, req ctrl.Request) (ctrl.Result, error) {
	var window v1alpha1.MaintenanceWindow
	if err := r.Get(ctx, req.NamespacedName, &window); err != nil {
		if apierrors.IsNotFound(err) {
			r.Cache.Remove(cache.Key{Kind: kindMaintenanceWindow, Namespace: req.Namespace, Name: req.Name})
			return ctrl.Result{}, nil
		}
		return ctrl.Result{}, err
	}

	if !window.DeletionTimestamp.IsZero() {
		if controllerutil.ContainsFinalizer(&window, finalizerName) {
			r.Cache.Remove(cache.Key{Kind: kindMaintenanceWindow, Namespace: window.Namespace, Name: window.Name})
			controllerutil.RemoveFinalizer(&window, finalizerName)
			if err := r.Update(ctx, &window); err != nil {
				return ctrl.Result{}, err
			}
			appendAudit(ctx, r.Store, kindMaintenanceWindow, window.Namespace, window.Name, "delete", "finalized")
		}
		return ctrl.Result{}, nil
	}

	if !controllerutil.ContainsFinalizer(&window, finalizerName) {
		controllerutil.AddFinalizer(&window, finalizerName)
		if err := r.Update(ctx, &window); err != nil {
			return ctrl.Result{}, err
		}
		return ctrl.Result{Requeue: true}, nil
	}

	enabled := window.Spec.Enabled == nil || *window.Spec.Enabled
	if enabled {
		r.Cache.Upsert(cache.Key{Kind: kindMaintenanceWindow, Namespace: window.Namespace, Name: window.Name}, &window, window.ResourceVersion, window.Generation)
	} else {
		r.Cache.Remove(cache.Key{Kind: kindMaintenanceWindow, Namespace: window.Namespace, Name: window.Name})
	}

	next := nextOccurrence(&window.Spec, time.Now())

	if err := r.Store.RecordMaintenanceWindow(ctx, store.MaintenanceWindowRecord{
		Namespace: window.Namespace,
		Name:      window.Name,
		Start:     window.Spec.Schedule.Start.Time,
		End:       window.Spec.Schedule.End.Time,
		CreatedAt: window.CreationTimestamp.Time,
	}); err != nil {
		return ctrl.Result{}, err
	}

	if err := r.updateStatus(ctx, &window, next); err != nil {
		return ctrl.Result{}, err
	}
	appendAudit(ctx, r.Store, kindMaintenanceWindow, window.Namespace, window.Name, "reconcile", "applied")
	return ctrl.Result{}, nil
}

// nextOccurrence returns, for a one-shot window, its start until the window
// has ended (a start in the past while the window is in progress); for an
// RRULE window, the first occurrence starting at or after now. It returns
// nil when there is no such occurrence.
func nextOccurrence(spec *v1alpha1.MaintenanceWindowSpec, now time.Time) *time.Time {
	if spec.Schedule.Recurrence.RRule == "" {
		if spec.Schedule.Start.Time.After(now) || !now.After(spec.Schedule.End.Time) {
			start := spec.Schedule.Start.Time
			return &start
		}
		return nil
	}

	option, err := rrule.StrToROption(spec.Schedule.Recurrence.RRule)
	if err != nil {
		return nil
	}
	option.Dtstart = spec.Schedule.Start.Time

	rule, err := rrule.NewRRule(*option)
	if err != nil {
		return nil
	}

	occurrence := rule.After(now, true)
	if occurrence.IsZero() {
		return nil
	}
	return &occurrence
}

func (r *MaintenanceWindowReconciler) updateStatus(ctx context.Context, window *v1alpha1.MaintenanceWindow, next *time.Time) error {
	return retry.RetryOnConflict(retry.DefaultRetry, func() error {
		var latest v1alpha1.MaintenanceWindow
		if err := r.Get(ctx, client.ObjectKeyFromObject(window), &latest); err != nil {
			return err
		}
		if next != nil {
			t := metav1.NewTime(*next)
			latest.Status.NextOccurrence = &t
		} else {
			latest.Status.NextOccurrence = nil
		}
		setCondition(&latest.Status.Conditions, v1alpha1.ConditionReconciled, metav1.ConditionTrue, v1alpha1.ReasonReconciled, "applied")
		latest.Status.ObservedGeneration = latest.Generation
		return r.Status().Update(ctx, &latest)
	})
}

func (r *MaintenanceWindowReconciler) SetupWithManager(mgr ctrl.Manager) error {
	return ctrl.NewControllerManagedBy(mgr).
		For(&v1alpha1.MaintenanceWindow{}, builder.WithPredicates(predicate.GenerationChangedPredicate{})).
		Complete(r)
}
