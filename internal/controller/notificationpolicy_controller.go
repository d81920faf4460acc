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
	"sigs.k8s.io/controller-runtime/pkg/controller/controllerutil"
	"sigs.k8s.io/controller-runtime/pkg/predicate"

	"github.com/yuptime-io/yuptime-operator/api/v1alpha1"
	"github.com/yuptime-io/yuptime-operator/internal/cache"
	"github.com/yuptime-io/yuptime-operator/internal/store"
)

// NotificationPolicyReconciler keeps NotificationPolicy objects in the
// resource cache for the alert engine to read, after validating that every
// referenced NotificationProvider exists.
type NotificationPolicyReconciler struct {
	client.Client
	Scheme *runtime.Scheme

	Cache *cache.Cache
	Store store.Store
}

// +kubebuilder:rbac:groups=yuptime.io,resources=notificationpolicies,verbs=get;list;watch;update;patch
// +kubebuilder:rbac:groups=yuptime.io,resources=notificationpolicies/status,verbs=get;update;patch
// +kubebuilder:rbac:groups=yuptime.io,resources=notificationpolicies/finalizers,verbs=update

func (r *NotificationPolicyReconciler) Reconcile(ctx context.Context, req ctrl.Request) (ctrl.Result, error) {
	var policy v1alpha1.NotificationPolicy
	if err := r.Get(ctx, req.NamespacedName, &policy); err != nil {
		if apierrors.IsNotFound(err) {
			r.Cache.Remove(cache.Key{Kind: kindNotificationPolicy, Namespace: req.Namespace, Name: req.Name})
			return ctrl.Result{}, nil
		}
		return ctrl.Result{}, err
	}

	if !policy.DeletionTimestamp.IsZero() {
		if controllerutil.ContainsFinalizer(&policy, finalizerName) {
			r.Cache.Remove(cache.Key{Kind: kindNotificationPolicy, Namespace: policy.Namespace, Name: policy.Name})
			controllerutil.RemoveFinalizer(&policy, finalizerName)
			if err := r.Update(ctx, &policy); err != nil {
				return ctrl.Result{}, err
			}
			appendAudit(ctx, r.Store, kindNotificationPolicy, policy.Namespace, policy.Name, "delete", "finalized")
		}
		return ctrl.Result{}, nil
	}

	if !controllerutil.ContainsFinalizer(&policy, finalizerName) {
		controllerutil.AddFinalizer(&policy, finalizerName)
		if err := r.Update(ctx, &policy); err != nil {
			return ctrl.Result{}, err
		}
		return ctrl.Result{Requeue: true}, nil
	}

	var missing []string
	for _, name := range policy.Spec.Providers {
		var p v1alpha1.NotificationProvider
		if err := r.Get(ctx, client.ObjectKey{Namespace: policy.Namespace, Name: name}, &p); err != nil {
			if apierrors.IsNotFound(err) {
				missing = append(missing, name)
				continue
			}
			return ctrl.Result{}, err
		}
	}

	if len(missing) > 0 {
		message := fmt.Sprintf("providers not found: %v", missing)
		err := r.updateStatus(ctx, &policy, metav1.ConditionFalse, v1alpha1.ReasonValidationFailed, message)
		appendAudit(ctx, r.Store, kindNotificationPolicy, policy.Namespace, policy.Name, "reconcile", message)
		return ctrl.Result{}, err
	}

	r.Cache.Upsert(cache.Key{Kind: kindNotificationPolicy, Namespace: policy.Namespace, Name: policy.Name}, &policy, policy.ResourceVersion, policy.Generation)

	err := r.updateStatus(ctx, &policy, metav1.ConditionTrue, v1alpha1.ReasonReconciled, "all providers resolved")
	appendAudit(ctx, r.Store, kindNotificationPolicy, policy.Namespace, policy.Name, "reconcile", "all providers resolved")
	return ctrl.Result{}, err
}

func (r *NotificationPolicyReconciler) updateStatus(ctx context.Context, policy *v1alpha1.NotificationPolicy, status metav1.ConditionStatus, reason, message string) error {
	return retry.RetryOnConflict(retry.DefaultRetry, func() error {
		var latest v1alpha1.NotificationPolicy
		if err := r.Get(ctx, client.ObjectKeyFromObject(policy), &latest); err != nil {
			return err
		}
		setCondition(&latest.Status.Conditions, v1alpha1.ConditionValid, status, reason, message)
		latest.Status.ObservedGeneration = latest.Generation
		return r.Status().Update(ctx, &latest)
	})
}

func (r *NotificationPolicyReconciler) SetupWithManager(mgr ctrl.Manager) error {
	return ctrl.NewControllerManagedBy(mgr).
		For(&v1alpha1.NotificationPolicy{}, builder.WithPredicates(predicate.GenerationChangedPredicate{})).
		Complete(r)
}
