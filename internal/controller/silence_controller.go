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
	"time"

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

// SilenceReconciler mirrors Silence objects into the resource cache (where
// internal/suppression.Index reads them) and marks expired silences
// Active=false without deleting them, so they remain in audit history.
type SilenceReconciler struct {
	client.Client
	Scheme *runtime.Scheme

	Cache *cache.Cache
	Store store.Store
}

// +kubebuilder:rbac:groups=yuptime.io,resources=silences,verbs=get;list;watch;update;patch
// +kubebuilder:rbac:groups=yuptime.io,resources=silences/status,verbs=get;update;patch
// +kubebuilder:rbac:groups=yuptime.io,resources=silences/finalizers,verbs=update

func (r *SilenceReconciler) Reconcile(ctx context.Context, req ctrl.Request) (ctrl.Result, error) {
	var silence v1alpha1.Silence
	if err := r.Get(ctx, req.NamespacedName, &silence); err != nil {
		if apierrors.IsNotFound(err) {
			r.Cache.Remove(cache.Key{Kind: kindSilence, Namespace: req.Namespace, Name: req.Name})
			return ctrl.Result{}, nil
		}
		return ctrl.Result{}, err
	}

	if !silence.DeletionTimestamp.IsZero() {
		if controllerutil.ContainsFinalizer(&silence, finalizerName) {
			r.Cache.Remove(cache.Key{Kind: kindSilence, Namespace: silence.Namespace, Name: silence.Name})
			controllerutil.RemoveFinalizer(&silence, finalizerName)
			if err := r.Update(ctx, &silence); err != nil {
				return ctrl.Result{}, err
			}
			appendAudit(ctx, r.Store, kindSilence, silence.Namespace, silence.Name, "delete", "finalized")
		}
		return ctrl.Result{}, nil
	}

	if !controllerutil.ContainsFinalizer(&silence, finalizerName) {
		controllerutil.AddFinalizer(&silence, finalizerName)
		if err := r.Update(ctx, &silence); err != nil {
			return ctrl.Result{}, err
		}
		return ctrl.Result{Requeue: true}, nil
	}

	active := time.Now().Before(silence.Spec.ExpiresAt.Time)
	if active {
		r.Cache.Upsert(cache.Key{Kind: kindSilence, Namespace: silence.Namespace, Name: silence.Name}, &silence, silence.ResourceVersion, silence.Generation)
	} else {
		r.Cache.Remove(cache.Key{Kind: kindSilence, Namespace: silence.Namespace, Name: silence.Name})
	}

	if err := r.Store.RecordSilence(ctx, store.SilenceRecord{
		Namespace: silence.Namespace,
		Name:      silence.Name,
		Reason:    silence.Spec.Reason,
		ExpiresAt: silence.Spec.ExpiresAt.Time,
		CreatedAt: silence.CreationTimestamp.Time,
	}); err != nil {
		return ctrl.Result{}, err
	}

	if err := r.updateStatus(ctx, &silence, active); err != nil {
		return ctrl.Result{}, err
	}
	appendAudit(ctx, r.Store, kindSilence, silence.Namespace, silence.Name, "reconcile", fmt.Sprintf("active=%t", active))

	if active {
		return ctrl.Result{RequeueAfter: time.Until(silence.Spec.ExpiresAt.Time)}, nil
	}
	return ctrl.Result{}, nil
}

func (r *SilenceReconciler) updateStatus(ctx context.Context, silence *v1alpha1.Silence, active bool) error {
	return retry.RetryOnConflict(retry.DefaultRetry, func() error {
		var latest v1alpha1.Silence
		if err := r.Get(ctx, client.ObjectKeyFromObject(silence), &latest); err != nil {
			return err
		}
		latest.Status.Active = active
		setCondition(&latest.Status.Conditions, v1alpha1.ConditionReconciled, metav1.ConditionTrue, v1alpha1.ReasonReconciled, "applied")
		latest.Status.ObservedGeneration = latest.Generation
		return r.Status().Update(ctx, &latest)
	})
}

func (r *SilenceReconciler) SetupWithManager(mgr ctrl.Manager) error {
	return ctrl.NewControllerManagedBy(mgr).
		For(&v1alpha1.Silence{}, builder.WithPredicates(predicate.GenerationChangedPredicate{})).
		Complete(r)
}
