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

	corev1 "k8s.io/api/core/v1"
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

const kindLocalUser = "LocalUser"

// LocalUserReconciler validates that a LocalUser's password hash secret
// reference resolves, without ever reading the secret's value: auth itself
// is out of scope, this only keeps the Valid condition current.
type LocalUserReconciler struct {
	client.Client
	Scheme *runtime.Scheme

	Store store.Store
}

// +kubebuilder:rbac:groups=yuptime.io,resources=localusers,verbs=get;list;watch;update;patch
// +kubebuilder:rbac:groups=yuptime.io,resources=localusers/status,verbs=get;update;patch
// +kubebuilder:rbac:groups="",resources=secrets,verbs=get

func (r *LocalUserReconciler) Reconcile(ctx context.Context, req ctrl.Request) (ctrl.Result, error) {
	var user v1alpha1.LocalUser
	if err := r.Get(ctx, req.NamespacedName, &user); err != nil {
		if apierrors.IsNotFound(err) {
			return ctrl.Result{}, nil
		}
		return ctrl.Result{}, err
	}

	status, reason, message := metav1.ConditionTrue, v1alpha1.ReasonReconciled, "password hash secret resolves"
	if err := checkSecretKeyRef(ctx, r.Client, user.Namespace, user.Spec.PasswordHashSecretRef); err != nil {
		status, reason, message = metav1.ConditionFalse, v1alpha1.ReasonValidationFailed, err.Error()
	}

	err := retry.RetryOnConflict(retry.DefaultRetry, func() error {
		var latest v1alpha1.LocalUser
		if err := r.Get(ctx, client.ObjectKeyFromObject(&user), &latest); err != nil {
			return err
		}
		setCondition(&latest.Status.Conditions, v1alpha1.ConditionValid, status, reason, message)
		latest.Status.ObservedGeneration = latest.Generation
		return r.Status().Update(ctx, &latest)
	})
	appendAudit(ctx, r.Store, kindLocalUser, user.Namespace, user.Name, "reconcile", message)
	return ctrl.Result{}, err
}

// checkSecretKeyRef resolves a NamespacedSecretKeyRef without reading its
// value, shared by LocalUserReconciler and ApiKeyReconciler since neither is
// meant to ever see the credential itself (non-goal: authentication).
func checkSecretKeyRef(ctx context.Context, c client.Client, fallbackNamespace string, ref v1alpha1.NamespacedSecretKeyRef) error {
	ns := ref.Namespace
	if ns == "" {
		ns = fallbackNamespace
	}
	var secret corev1.Secret
	if err := c.Get(ctx, client.ObjectKey{Namespace: ns, Name: ref.Name}, &secret); err != nil {
		return fmt.Errorf("secret %s/%s: %w", ns, ref.Name, err)
	}
	if _, ok := secret.Data[ref.Key]; !ok {
		return fmt.Errorf("secret %s/%s has no key %q", ns, ref.Name, ref.Key)
	}
	return nil
}

func (r *LocalUserReconciler) SetupWithManager(mgr ctrl.Manager) error {
	return ctrl.NewControllerManagedBy(mgr).
		For(&v1alpha1.LocalUser{}, builder.WithPredicates(predicate.GenerationChangedPredicate{})).
		Complete(r)
}
