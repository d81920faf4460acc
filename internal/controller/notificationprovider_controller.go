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
	"sigs.k8s.io/controller-runtime/pkg/log"
	"sigs.k8s.io/controller-runtime/pkg/predicate"

	"github.com/yuptime-io/yuptime-operator/api/v1alpha1"
	"github.com/yuptime-io/yuptime-operator/internal/cache"
	"github.com/yuptime-io/yuptime-operator/internal/delivery"
	"github.com/yuptime-io/yuptime-operator/internal/store"
)

// NotificationProviderReconciler validates a NotificationProvider's config
// against its declared type, optionally sends a test delivery
// (spec.testOnSave), and keeps it in the resource cache so the delivery
// worker can resolve it at send time.
type NotificationProviderReconciler struct {
	client.Client
	Scheme *runtime.Scheme

	Cache *cache.Cache
	Store store.Store
}

// +kubebuilder:rbac:groups=yuptime.io,resources=notificationproviders,verbs=get;list;watch;update;patch
// +kubebuilder:rbac:groups=yuptime.io,resources=notificationproviders/status,verbs=get;update;patch
// +kubebuilder:rbac:groups=yuptime.io,resources=notificationproviders/finalizers,verbs=update

func (r *NotificationProviderReconciler) Reconcile(ctx context.Context, req ctrl.Request) (ctrl.Result, error) {
	logger := log.FromContext(ctx)

	var provider v1alpha1.NotificationProvider
	if err := r.Get(ctx, req.NamespacedName, &provider); err != nil {
		if apierrors.IsNotFound(err) {
			r.Cache.Remove(cache.Key{Kind: kindNotificationProvider, Namespace: req.Namespace, Name: req.Name})
			return ctrl.Result{}, nil
		}
		return ctrl.Result{}, err
	}

	if !provider.DeletionTimestamp.IsZero() {
		if controllerutil.ContainsFinalizer(&provider, finalizerName) {
			r.Cache.Remove(cache.Key{Kind: kindNotificationProvider, Namespace: provider.Namespace, Name: provider.Name})
			controllerutil.RemoveFinalizer(&provider, finalizerName)
			if err := r.Update(ctx, &provider); err != nil {
				return ctrl.Result{}, err
			}
			appendAudit(ctx, r.Store, kindNotificationProvider, provider.Namespace, provider.Name, "delete", "finalized")
		}
		return ctrl.Result{}, nil
	}

	if !controllerutil.ContainsFinalizer(&provider, finalizerName) {
		controllerutil.AddFinalizer(&provider, finalizerName)
		if err := r.Update(ctx, &provider); err != nil {
			return ctrl.Result{}, err
		}
		return ctrl.Result{Requeue: true}, nil
	}

	concreteProvider, err := delivery.NewProvider(r.Client, &provider)
	if err != nil {
		statusErr := r.updateStatus(ctx, &provider, func(status *v1alpha1.NotificationProviderStatus) {
			setCondition(&status.Conditions, v1alpha1.ConditionValid, metav1.ConditionFalse, v1alpha1.ReasonValidationFailed, err.Error())
			status.Ready = false
		})
		appendAudit(ctx, r.Store, kindNotificationProvider, provider.Namespace, provider.Name, "reconcile", err.Error())
		return ctrl.Result{}, statusErr
	}

	r.Cache.Upsert(cache.Key{Kind: kindNotificationProvider, Namespace: provider.Namespace, Name: provider.Name}, &provider, provider.ResourceVersion, provider.Generation)

	var testErr error
	if provider.Spec.TestOnSave {
		testErr = concreteProvider.Deliver(ctx, "yuptime test alert", fmt.Sprintf("test delivery triggered by reconciling %s/%s", provider.Namespace, provider.Name))
		if testErr != nil {
			logger.Error(testErr, "test delivery failed", "provider", provider.Name)
		}
	}

	statusErr := r.updateStatus(ctx, &provider, func(status *v1alpha1.NotificationProviderStatus) {
		setCondition(&status.Conditions, v1alpha1.ConditionValid, metav1.ConditionTrue, v1alpha1.ReasonReconciled, "config is valid for declared type")
		status.Ready = true
		status.ObservedGeneration = provider.Generation

		if !provider.Spec.TestOnSave {
			return
		}
		now := metav1.Now()
		status.LastTestTime = &now
		if testErr != nil {
			status.LastTestResult = "failed"
			status.LastTestError = testErr.Error()
		} else {
			status.LastTestResult = "success"
			status.LastTestError = ""
		}
	})
	appendAudit(ctx, r.Store, kindNotificationProvider, provider.Namespace, provider.Name, "reconcile", "config is valid for declared type")
	return ctrl.Result{}, statusErr
}

func (r *NotificationProviderReconciler) updateStatus(ctx context.Context, provider *v1alpha1.NotificationProvider, mutate func(*v1alpha1.NotificationProviderStatus)) error {
	return retry.RetryOnConflict(retry.DefaultRetry, func() error {
		var latest v1alpha1.NotificationProvider
		if err := r.Get(ctx, client.ObjectKeyFromObject(provider), &latest); err != nil {
			return err
		}
		mutate(&latest.Status)
		return r.Status().Update(ctx, &latest)
	})
}

func (r *NotificationProviderReconciler) SetupWithManager(mgr ctrl.Manager) error {
	return ctrl.NewControllerManagedBy(mgr).
		For(&v1alpha1.NotificationProvider{}, builder.WithPredicates(predicate.GenerationChangedPredicate{})).
		Complete(r)
}
