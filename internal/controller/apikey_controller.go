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

const kindApiKey = "ApiKey"

// ApiKeyReconciler validates an ApiKey's hash secret reference and tracks
// expiry. Auth itself is out of scope; this only keeps status current.
type ApiKeyReconciler struct {
	client.Client
	Scheme *runtime.Scheme

	Store store.Store
}

// +kubebuilder:rbac:groups=yuptime.io,resources=apikeys,verbs=get;list;watch;update;patch
// +kubebuilder:rbac:groups=yuptime.io,resources=apikeys/status,verbs=get;update;patch
// +kubebuilder:rbac:groups="",resources=secrets,verbs=get

func (r *ApiKeyReconciler) Reconcile(ctx context.Context, req ctrl.Request) (ctrl.Result, error) {
	var key v1alpha1.ApiKey
	if err := r.Get(ctx, req.NamespacedName, &key); err != nil {
		if apierrors.IsNotFound(err) {
			return ctrl.Result{}, nil
		}
		return ctrl.Result{}, err
	}

	status, reason, message := metav1.ConditionTrue, v1alpha1.ReasonReconciled, "hash secret resolves"
	if err := checkSecretKeyRef(ctx, r.Client, key.Namespace, key.Spec.HashSecretRef); err != nil {
		status, reason, message = metav1.ConditionFalse, v1alpha1.ReasonValidationFailed, err.Error()
	}

	expired := key.Spec.ExpiresAt != nil && key.Spec.ExpiresAt.Time.Before(time.Now())

	if err := retry.RetryOnConflict(retry.DefaultRetry, func() error {
		var latest v1alpha1.ApiKey
		if err := r.Get(ctx, client.ObjectKeyFromObject(&key), &latest); err != nil {
			return err
		}
		latest.Status.Expired = expired
		setCondition(&latest.Status.Conditions, v1alpha1.ConditionValid, status, reason, message)
		latest.Status.ObservedGeneration = latest.Generation
		return r.Status().Update(ctx, &latest)
	}); err != nil {
		return ctrl.Result{}, err
	}
	appendAudit(ctx, r.Store, kindApiKey, key.Namespace, key.Name, "reconcile", message)

	if key.Spec.ExpiresAt != nil && !expired {
		return ctrl.Result{RequeueAfter: time.Until(key.Spec.ExpiresAt.Time)}, nil
	}
	return ctrl.Result{}, nil
}

func (r *ApiKeyReconciler) SetupWithManager(mgr ctrl.Manager) error {
	return ctrl.NewControllerManagedBy(mgr).
		For(&v1alpha1.ApiKey{}, builder.WithPredicates(predicate.GenerationChangedPredicate{})).
		Complete(r)
}
