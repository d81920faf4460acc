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
	"github.com/yuptime-io/yuptime-operator/internal/store"
)

// MonitorSetReconciler expands Spec.Targets into owned child Monitor
// objects, named "<set-name>-<target-name>", and prunes Monitors whose
// target entry was removed from the set.
type MonitorSetReconciler struct {
	client.Client
	Scheme *runtime.Scheme

	Store store.Store
}

// +kubebuilder:rbac:groups=yuptime.io,resources=monitorsets,verbs=get;list;watch;create;update;patch;delete
// +kubebuilder:rbac:groups=yuptime.io,resources=monitorsets/status,verbs=get;update;patch
// +kubebuilder:rbac:groups=yuptime.io,resources=monitorsets/finalizers,verbs=update
// +kubebuilder:rbac:groups=yuptime.io,resources=monitors,verbs=get;list;watch;create;update;patch;delete

const kindMonitorSet = "MonitorSet"

func generatedMonitorName(setName, targetName string) string {
	return fmt.Sprintf("%s-%s", setName, targetName)
}

func (r *MonitorSetReconciler) Reconcile(ctx context.Context, req ctrl.Request) (ctrl.Result, error) {
	logger := log.FromContext(ctx)

	var set v1alpha1.MonitorSet
	if err := r.Get(ctx, req.NamespacedName, &set); err != nil {
		if apierrors.IsNotFound(err) {
			return ctrl.Result{}, nil
		}
		return ctrl.Result{}, err
	}

	if !set.DeletionTimestamp.IsZero() {
		return r.finalize(ctx, &set)
	}

	if !controllerutil.ContainsFinalizer(&set, finalizerName) {
		controllerutil.AddFinalizer(&set, finalizerName)
		if err := r.Update(ctx, &set); err != nil {
			return ctrl.Result{}, err
		}
		return ctrl.Result{Requeue: true}, nil
	}

	generated, err := r.reconcileTargets(ctx, &set)
	if err != nil {
		logger.Error(err, "failed to reconcile monitorset targets")
		return ctrl.Result{}, err
	}

	if err := r.pruneRemoved(ctx, &set, generated); err != nil {
		logger.Error(err, "failed to prune removed targets")
		return ctrl.Result{}, err
	}

	if err := r.updateStatus(ctx, &set, generated); err != nil {
		return ctrl.Result{}, err
	}
	appendAudit(ctx, r.Store, kindMonitorSet, set.Namespace, set.Name, "reconcile", fmt.Sprintf("%d monitors generated", len(generated)))
	return ctrl.Result{}, nil
}

func (r *MonitorSetReconciler) finalize(ctx context.Context, set *v1alpha1.MonitorSet) (ctrl.Result, error) {
	if controllerutil.ContainsFinalizer(set, finalizerName) {
		for _, name := range set.Status.GeneratedMonitors {
			m := &v1alpha1.Monitor{ObjectMeta: metav1.ObjectMeta{Namespace: set.Namespace, Name: name}}
			if err := r.Delete(ctx, m); err != nil && !apierrors.IsNotFound(err) {
				return ctrl.Result{}, err
			}
		}
		controllerutil.RemoveFinalizer(set, finalizerName)
		if err := r.Update(ctx, set); err != nil {
			return ctrl.Result{}, err
		}
		appendAudit(ctx, r.Store, kindMonitorSet, set.Namespace, set.Name, "delete", "finalized")
	}
	return ctrl.Result{}, nil
}

func (r *MonitorSetReconciler) reconcileTargets(ctx context.Context, set *v1alpha1.MonitorSet) ([]string, error) {
	generated := make([]string, 0, len(set.Spec.Targets))

	for _, target := range set.Spec.Targets {
		name := generatedMonitorName(set.Name, target.Name)
		generated = append(generated, name)

		schedule := set.Spec.ScheduleDefaults
		if target.Schedule != nil {
			schedule = *target.Schedule
		}

		monitor := &v1alpha1.Monitor{
			ObjectMeta: metav1.ObjectMeta{Namespace: set.Namespace, Name: name},
		}
		_, err := controllerutil.CreateOrUpdate(ctx, r.Client, monitor, func() error {
			monitor.Spec = v1alpha1.MonitorSpec{
				Type:     target.Type,
				Target:   target.Target,
				Schedule: schedule,
				Tags:     set.Spec.Tags,
				Enabled:  set.Spec.Enabled,
			}
			return controllerutil.SetControllerReference(set, monitor, r.Scheme)
		})
		if err != nil {
			return generated, fmt.Errorf("monitor %s: %w", name, err)
		}
	}

	return generated, nil
}

// pruneRemoved deletes previously generated Monitors whose target entry is
// no longer present in set.Spec.Targets.
func (r *MonitorSetReconciler) pruneRemoved(ctx context.Context, set *v1alpha1.MonitorSet, current []string) error {
	want := make(map[string]bool, len(current))
	for _, name := range current {
		want[name] = true
	}

	for _, prev := range set.Status.GeneratedMonitors {
		if want[prev] {
			continue
		}
		m := &v1alpha1.Monitor{ObjectMeta: metav1.ObjectMeta{Namespace: set.Namespace, Name: prev}}
		if err := r.Delete(ctx, m); err != nil && !apierrors.IsNotFound(err) {
			return err
		}
	}

	return nil
}

func (r *MonitorSetReconciler) updateStatus(ctx context.Context, set *v1alpha1.MonitorSet, generated []string) error {
	return retry.RetryOnConflict(retry.DefaultRetry, func() error {
		var latest v1alpha1.MonitorSet
		if err := r.Get(ctx, client.ObjectKeyFromObject(set), &latest); err != nil {
			return err
		}
		latest.Status.GeneratedMonitors = generated
		setCondition(&latest.Status.Conditions, v1alpha1.ConditionReconciled, metav1.ConditionTrue, v1alpha1.ReasonReconciled, fmt.Sprintf("%d monitors generated", len(generated)))
		latest.Status.ObservedGeneration = latest.Generation
		return r.Status().Update(ctx, &latest)
	})
}

func (r *MonitorSetReconciler) SetupWithManager(mgr ctrl.Manager) error {
	return ctrl.NewControllerManagedBy(mgr).
		For(&v1alpha1.MonitorSet{}, builder.WithPredicates(predicate.GenerationChangedPredicate{})).
		Owns(&v1alpha1.Monitor{}, builder.WithPredicates(predicate.GenerationChangedPredicate{})).
		Complete(r)
}
