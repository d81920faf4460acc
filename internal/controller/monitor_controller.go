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
	"sigs.k8s.io/controller-runtime/pkg/log"
	"sigs.k8s.io/controller-runtime/pkg/predicate"

	"github.com/yuptime-io/yuptime-operator/api/v1alpha1"
	"github.com/yuptime-io/yuptime-operator/internal/cache"
	"github.com/yuptime-io/yuptime-operator/internal/scheduler"
	"github.com/yuptime-io/yuptime-operator/internal/store"
)

const kindMonitor = "Monitor"

// MonitorReconciler keeps the scheduler registry/queue and the resource
// cache in sync with Monitor objects. It owns no child resources; its whole
// job is translating spec.schedule into a scheduler.Job and spec.target's
// validity into the Valid condition.
type MonitorReconciler struct {
	client.Client
	Scheme *runtime.Scheme

	Cache    *cache.Cache
	Registry *scheduler.Registry
	Queue    *scheduler.Queue
	Store    store.Store

	// MinIntervalSec is the cluster-wide floor, copied from the operator
	// config at startup; later YuptimeSettings overrides do not change it.
	MinIntervalSec int32
}

// +kubebuilder:rbac:groups=yuptime.io,resources=monitors,verbs=get;list;watch;create;update;patch;delete
// +kubebuilder:rbac:groups=yuptime.io,resources=monitors/status,verbs=get;update;patch
// +kubebuilder:rbac:groups=yuptime.io,resources=monitors/finalizers,verbs=update

func (r *MonitorReconciler) Reconcile(ctx context.Context, req ctrl.Request) (ctrl.Result, error) {
	logger := log.FromContext(ctx)
	id := scheduler.JobID(req.Namespace, req.Name)

	var monitor v1alpha1.Monitor
	if err := r.Get(ctx, req.NamespacedName, &monitor); err != nil {
		if apierrors.IsNotFound(err) {
			r.Registry.Delete(id)
			r.Queue.Remove(id)
			r.Cache.Remove(cache.Key{Kind: kindMonitor, Namespace: req.Namespace, Name: req.Name})
			return ctrl.Result{}, nil
		}
		return ctrl.Result{}, err
	}

	if !monitor.DeletionTimestamp.IsZero() {
		return r.finalize(ctx, &monitor, id)
	}

	if !controllerutil.ContainsFinalizer(&monitor, finalizerName) {
		controllerutil.AddFinalizer(&monitor, finalizerName)
		if err := r.Update(ctx, &monitor); err != nil {
			return ctrl.Result{}, err
		}
		return ctrl.Result{Requeue: true}, nil
	}

	if err := r.reconcileMonitor(ctx, &monitor, id); err != nil {
		logger.Error(err, "reconcile failed")
		appendAudit(ctx, r.Store, kindMonitor, monitor.Namespace, monitor.Name, "reconcile", err.Error())
		return ctrl.Result{}, err
	}
	appendAudit(ctx, r.Store, kindMonitor, monitor.Namespace, monitor.Name, "reconcile", "reconciled")

	return ctrl.Result{}, nil
}

func (r *MonitorReconciler) finalize(ctx context.Context, monitor *v1alpha1.Monitor, id string) (ctrl.Result, error) {
	if controllerutil.ContainsFinalizer(monitor, finalizerName) {
		r.Registry.Delete(id)
		r.Queue.Remove(id)
		r.Cache.Remove(cache.Key{Kind: kindMonitor, Namespace: monitor.Namespace, Name: monitor.Name})

		controllerutil.RemoveFinalizer(monitor, finalizerName)
		if err := r.Update(ctx, monitor); err != nil {
			return ctrl.Result{}, err
		}
		appendAudit(ctx, r.Store, kindMonitor, monitor.Namespace, monitor.Name, "delete", "finalized")
	}
	return ctrl.Result{}, nil
}

func (r *MonitorReconciler) reconcileMonitor(ctx context.Context, monitor *v1alpha1.Monitor, id string) error {
	if reason := r.validate(monitor); reason != "" {
		r.Registry.Delete(id)
		r.Queue.Remove(id)
		return r.updateStatus(ctx, monitor, func(status *v1alpha1.MonitorStatus) {
			setCondition(&status.Conditions, v1alpha1.ConditionValid, metav1.ConditionFalse, v1alpha1.ReasonValidationFailed, reason)
			setCondition(&status.Conditions, v1alpha1.ConditionReady, metav1.ConditionFalse, v1alpha1.ReasonValidationFailed, reason)
			status.ObservedGeneration = monitor.Generation
		})
	}

	r.Cache.Upsert(cache.Key{Kind: kindMonitor, Namespace: monitor.Namespace, Name: monitor.Name}, monitor, monitor.ResourceVersion, monitor.Generation)

	enabled := monitor.Spec.Enabled == nil || *monitor.Spec.Enabled

	if !enabled {
		r.Registry.Delete(id)
		r.Queue.Remove(id)
		return r.updateStatus(ctx, monitor, func(status *v1alpha1.MonitorStatus) {
			setCondition(&status.Conditions, v1alpha1.ConditionValid, metav1.ConditionTrue, v1alpha1.ReasonReconciled, "spec is valid")
			setCondition(&status.Conditions, v1alpha1.ConditionReady, metav1.ConditionFalse, "Paused", "monitor is disabled")
			status.State = "paused"
			status.ObservedGeneration = monitor.Generation
		})
	}

	class := scheduler.ClassNet
	if monitor.Spec.Type == v1alpha1.ProbeTypeICMP {
		class = scheduler.ClassPriv
	}

	job, existed := r.Registry.Get(id)
	if !existed {
		initialDelay := time.Duration(monitor.Spec.Schedule.InitialDelaySec) * time.Second
		job = &scheduler.Job{
			ID:        id,
			Namespace: monitor.Namespace,
			Name:      monitor.Name,
			NextRunAt: time.Now().Add(initialDelay).Add(scheduler.Jitter(monitor.Namespace, monitor.Name, monitor.Spec.Schedule.IntervalSec, monitor.Spec.Schedule.JitterPercent)),
		}
	}
	job.IntervalSec = monitor.Spec.Schedule.IntervalSec
	job.TimeoutSec = monitor.Spec.Schedule.TimeoutSec
	job.JitterPercent = monitor.Spec.Schedule.JitterPercent
	job.Class = class

	r.Registry.Put(job)
	r.Queue.Update(job)

	return r.updateStatus(ctx, monitor, func(status *v1alpha1.MonitorStatus) {
		setCondition(&status.Conditions, v1alpha1.ConditionValid, metav1.ConditionTrue, v1alpha1.ReasonReconciled, "spec is valid")
		setCondition(&status.Conditions, v1alpha1.ConditionReconciled, metav1.ConditionTrue, v1alpha1.ReasonReconciled, "scheduled")
		setCondition(&status.Conditions, v1alpha1.ConditionReady, metav1.ConditionTrue, v1alpha1.ReasonReconciled, "scheduled")
		if status.State == "" {
			status.State = "pending"
		}
		next := metav1.NewTime(job.NextRunAt)
		status.NextRunAt = &next
		status.ObservedGeneration = monitor.Generation
	})
}

// validate checks invariants not already enforced by CRD validation markers
// (cross-field checks the OpenAPI schema can't express): timeout strictly
// less than interval, and the interval respecting the cluster-wide floor.
func (r *MonitorReconciler) validate(monitor *v1alpha1.Monitor) string {
	sched := monitor.Spec.Schedule
	if r.MinIntervalSec > 0 && sched.IntervalSec < r.MinIntervalSec {
		return fmt.Sprintf("intervalSec %d is below the cluster minimum %d", sched.IntervalSec, r.MinIntervalSec)
	}
	if sched.TimeoutSec <= 0 || sched.TimeoutSec >= sched.IntervalSec {
		return fmt.Sprintf("timeoutSec %d must be positive and less than intervalSec %d", sched.TimeoutSec, sched.IntervalSec)
	}
	return ""
}

func (r *MonitorReconciler) updateStatus(ctx context.Context, monitor *v1alpha1.Monitor, mutate func(*v1alpha1.MonitorStatus)) error {
	return retry.RetryOnConflict(retry.DefaultRetry, func() error {
		var latest v1alpha1.Monitor
		if err := r.Get(ctx, client.ObjectKeyFromObject(monitor), &latest); err != nil {
			return err
		}
		mutate(&latest.Status)
		return r.Status().Update(ctx, &latest)
	})
}

func (r *MonitorReconciler) SetupWithManager(mgr ctrl.Manager) error {
	return ctrl.NewControllerManagedBy(mgr).
		For(&v1alpha1.Monitor{}, builder.WithPredicates(predicate.GenerationChangedPredicate{})).
		Complete(r)
}
