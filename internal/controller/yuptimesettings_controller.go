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
	"sigs.k8s.io/controller-runtime/pkg/log"
	"sigs.k8s.io/controller-runtime/pkg/predicate"

	"github.com/yuptime-io/yuptime-operator/api/v1alpha1"
	"github.com/yuptime-io/yuptime-operator/internal/config"
	"github.com/yuptime-io/yuptime-operator/internal/store"
)

const kindYuptimeSettings = "YuptimeSettings"

// requeueInterval bounds how often YuptimeSettingsReconciler refreshes the
// status aggregate counts even with no spec change.
const requeueInterval = 5 * time.Minute

// YuptimeSettingsReconciler applies the cluster-wide singleton's overrides
// onto the shared *config.Config and reports aggregate counts on status.
// There is exactly one object this reconciler ever acts on in full: the one
// named v1alpha1.YuptimeSettingsName.
type YuptimeSettingsReconciler struct {
	client.Client
	Scheme *runtime.Scheme

	Config *config.Config
	Store  store.Store
}

// +kubebuilder:rbac:groups=yuptime.io,resources=yuptimesettings,verbs=get;list;watch;update;patch
// +kubebuilder:rbac:groups=yuptime.io,resources=yuptimesettings/status,verbs=get;update;patch
// +kubebuilder:rbac:groups=yuptime.io,resources=monitors,verbs=get;list;watch

func (r *YuptimeSettingsReconciler) Reconcile(ctx context.Context, req ctrl.Request) (ctrl.Result, error) {
	logger := log.FromContext(ctx)

	var settings v1alpha1.YuptimeSettings
	if err := r.Get(ctx, req.NamespacedName, &settings); err != nil {
		if apierrors.IsNotFound(err) {
			return ctrl.Result{}, nil
		}
		return ctrl.Result{}, err
	}

	if settings.Name != v1alpha1.YuptimeSettingsName {
		message := fmt.Sprintf("YuptimeSettings singleton must be named %q", v1alpha1.YuptimeSettingsName)
		err := r.updateStatus(ctx, &settings, func(status *v1alpha1.YuptimeSettingsStatus) {
			setCondition(&status.Conditions, v1alpha1.ConditionValid, metav1.ConditionFalse, v1alpha1.ReasonValidationFailed, message)
		})
		appendAudit(ctx, r.Store, kindYuptimeSettings, settings.Namespace, settings.Name, "reconcile", message)
		return ctrl.Result{}, err
	}

	r.applyOverrides(&settings.Spec)

	var monitors v1alpha1.MonitorList
	if err := r.List(ctx, &monitors); err != nil {
		logger.Error(err, "failed to list monitors for status aggregate")
		return ctrl.Result{}, err
	}

	if err := r.updateStatus(ctx, &settings, func(status *v1alpha1.YuptimeSettingsStatus) {
		setCondition(&status.Conditions, v1alpha1.ConditionValid, metav1.ConditionTrue, v1alpha1.ReasonReconciled, "applied")
		setCondition(&status.Conditions, v1alpha1.ConditionReconciled, metav1.ConditionTrue, v1alpha1.ReasonReconciled, "applied")
		status.TotalMonitors = int32(len(monitors.Items))
		status.StorageStatus = r.Config.Storage.Type
		now := metav1.Now()
		status.LastReconcileTime = &now
		status.ObservedGeneration = settings.Generation
	}); err != nil {
		return ctrl.Result{}, err
	}
	appendAudit(ctx, r.Store, kindYuptimeSettings, settings.Namespace, settings.Name, "reconcile", "applied")

	return ctrl.Result{RequeueAfter: requeueInterval}, nil
}

// applyOverrides copies the set scheduler, flapping, history-retention,
// global-rate-limit and leader-election fields of spec onto r.Config,
// leaving cluster defaults in place for anything left nil. spec.storage,
// spec.metricsExport and spec.ignoredNamespaces are not copied. Mirrors the teacher's
// GuardianConfig-onto-Config application, generalized from one flat struct
// to YuptimeSettings' nested optional sections.
func (r *YuptimeSettingsReconciler) applyOverrides(spec *v1alpha1.YuptimeSettingsSpec) {
	if s := spec.Scheduler; s != nil {
		if s.MinIntervalSec != nil {
			r.Config.Scheduler.MinIntervalSec = int(*s.MinIntervalSec)
		}
		if s.MaxConcurrentNetChecks != nil {
			r.Config.Scheduler.MaxConcurrentNetChecks = int(*s.MaxConcurrentNetChecks)
		}
		if s.MaxConcurrentPrivChecks != nil {
			r.Config.Scheduler.MaxConcurrentPrivChecks = int(*s.MaxConcurrentPrivChecks)
		}
		if s.LeaseBackend != "" {
			r.Config.Scheduler.LeaseBackend = s.LeaseBackend
		}
		if s.PollTickMs != nil {
			r.Config.Scheduler.PollTickMs = int(*s.PollTickMs)
		}
	}

	if f := spec.Flapping; f != nil {
		if f.WindowSize != nil {
			r.Config.Flapping.WindowSize = int(*f.WindowSize)
		}
		if f.MinTransitions != nil {
			r.Config.Flapping.MinTransitions = int(*f.MinTransitions)
		}
	}

	if h := spec.HistoryRetention; h != nil {
		if h.DefaultDays != nil {
			r.Config.HistoryRetention.DefaultDays = int(*h.DefaultDays)
		}
		if h.MaxDays != nil {
			r.Config.HistoryRetention.MaxDays = int(*h.MaxDays)
		}
	}

	if rl := spec.GlobalRateLimits; rl != nil && rl.MaxAlertsPerMinute != nil {
		r.Config.RateLimits.MaxAlertsPerMinute = int(*rl.MaxAlertsPerMinute)
	}

	if le := spec.LeaderElection; le != nil {
		if le.Enabled != nil {
			r.Config.LeaderElection.Enabled = *le.Enabled
		}
		if le.LeaseDuration != nil {
			r.Config.LeaderElection.LeaseDuration = le.LeaseDuration.Duration
		}
		if le.RenewDeadline != nil {
			r.Config.LeaderElection.RenewDeadline = le.RenewDeadline.Duration
		}
		if le.RetryPeriod != nil {
			r.Config.LeaderElection.RetryPeriod = le.RetryPeriod.Duration
		}
	}

	// Storage backend swaps (sqlite/postgres/mysql) are deliberately not
	// applied live: the store is wired once at startup from r.Config before
	// this reconciler ever runs, and switching backends at runtime would
	// orphan whatever's already open. status.storageStatus reports the
	// backend type actually in use (r.Config.Storage.Type), not spec.storage.
}

func (r *YuptimeSettingsReconciler) updateStatus(ctx context.Context, settings *v1alpha1.YuptimeSettings, mutate func(*v1alpha1.YuptimeSettingsStatus)) error {
	return retry.RetryOnConflict(retry.DefaultRetry, func() error {
		var latest v1alpha1.YuptimeSettings
		if err := r.Get(ctx, client.ObjectKeyFromObject(settings), &latest); err != nil {
			return err
		}
		mutate(&latest.Status)
		return r.Status().Update(ctx, &latest)
	})
}

func (r *YuptimeSettingsReconciler) SetupWithManager(mgr ctrl.Manager) error {
	return ctrl.NewControllerManagedBy(mgr).
		For(&v1alpha1.YuptimeSettings{}, builder.WithPredicates(predicate.GenerationChangedPredicate{})).
		Complete(r)
}
