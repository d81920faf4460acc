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

package main

import (
	"context"
	"crypto/tls"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/go-logr/zerologr"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
	"github.com/spf13/pflag"

	// Import all Kubernetes client auth plugins (e.g. Azure, GCP, OIDC, etc.)
	// to ensure that exec-entrypoint and run can make use of them.
	_ "k8s.io/client-go/plugin/pkg/client/auth"

	"k8s.io/apimachinery/pkg/runtime"
	"k8s.io/apimachinery/pkg/types"
	utilruntime "k8s.io/apimachinery/pkg/util/runtime"
	clientgoscheme "k8s.io/client-go/kubernetes/scheme"
	ctrl "sigs.k8s.io/controller-runtime"
	"sigs.k8s.io/controller-runtime/pkg/certwatcher"
	"sigs.k8s.io/controller-runtime/pkg/healthz"
	"sigs.k8s.io/controller-runtime/pkg/metrics/filters"
	metricsserver "sigs.k8s.io/controller-runtime/pkg/metrics/server"
	"sigs.k8s.io/controller-runtime/pkg/webhook"

	"github.com/yuptime-io/yuptime-operator/api/v1alpha1"
	"github.com/yuptime-io/yuptime-operator/internal/alertengine"
	"github.com/yuptime-io/yuptime-operator/internal/cache"
	"github.com/yuptime-io/yuptime-operator/internal/config"
	"github.com/yuptime-io/yuptime-operator/internal/controller"
	"github.com/yuptime-io/yuptime-operator/internal/delivery"
	"github.com/yuptime-io/yuptime-operator/internal/probe"
	"github.com/yuptime-io/yuptime-operator/internal/scheduler"
	"github.com/yuptime-io/yuptime-operator/internal/store"
	"github.com/yuptime-io/yuptime-operator/internal/suppression"
	// +kubebuilder:scaffold:imports
)

var (
	scheme   = runtime.NewScheme()
	setupLog = ctrl.Log.WithName("setup")
)

func init() {
	utilruntime.Must(clientgoscheme.AddToScheme(scheme))

	utilruntime.Must(v1alpha1.AddToScheme(scheme))
	// +kubebuilder:scaffold:scheme
}

// nolint:gocyclo
func main() {
	flags := pflag.NewFlagSet("yuptime-operator", pflag.ExitOnError)
	config.BindFlags(flags)

	if err := flags.Parse(os.Args[1:]); err != nil {
		setupLog.Error(err, "failed to parse flags")
		os.Exit(1)
	}

	cfg, err := config.Load(flags)
	if err != nil {
		setupLog.Error(err, "failed to load configuration")
		os.Exit(1)
	}

	level, err := zerolog.ParseLevel(cfg.LogLevel)
	if err != nil {
		level = zerolog.InfoLevel
	}
	zerolog.SetGlobalLevel(level)
	zl := zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.RFC3339}).
		With().
		Timestamp().
		Logger()
	logger := zerologr.New(&zl)
	ctrl.SetLogger(logger)

	setupLog = ctrl.Log.WithName("setup")
	if cfg.ConfigFileUsed() != "" {
		setupLog.Info("configuration loaded", "file", cfg.ConfigFileUsed(), "level", cfg.LogLevel)
	} else {
		setupLog.Info("no config file found, using defaults and flags", "level", cfg.LogLevel)
	}

	var tlsOpts []func(*tls.Config)
	disableHTTP2 := func(c *tls.Config) {
		setupLog.Info("disabling http/2")
		c.NextProtos = []string{"http/1.1"}
	}
	if !cfg.Webhook.EnableHTTP2 {
		tlsOpts = append(tlsOpts, disableHTTP2)
	}

	var metricsCertWatcher, webhookCertWatcher *certwatcher.CertWatcher
	webhookTLSOpts := tlsOpts

	if len(cfg.Webhook.CertPath) > 0 {
		setupLog.Info("Initializing webhook certificate watcher using provided certificates",
			"webhook-cert-path", cfg.Webhook.CertPath,
			"webhook-cert-name", cfg.Webhook.CertName,
			"webhook-cert-key", cfg.Webhook.CertKey)

		var err error
		webhookCertWatcher, err = certwatcher.New(
			filepath.Join(cfg.Webhook.CertPath, cfg.Webhook.CertName),
			filepath.Join(cfg.Webhook.CertPath, cfg.Webhook.CertKey),
		)
		if err != nil {
			setupLog.Error(err, "Failed to initialize webhook certificate watcher")
			os.Exit(1)
		}

		webhookTLSOpts = append(webhookTLSOpts, func(config *tls.Config) {
			config.GetCertificate = webhookCertWatcher.GetCertificate
		})
	}

	webhookServer := webhook.NewServer(webhook.Options{
		TLSOpts: webhookTLSOpts,
	})

	metricsServerOptions := metricsserver.Options{
		BindAddress:   cfg.Metrics.BindAddress,
		SecureServing: cfg.Metrics.Secure,
		TLSOpts:       tlsOpts,
	}

	if cfg.Metrics.Secure {
		metricsServerOptions.FilterProvider = filters.WithAuthenticationAndAuthorization
	}

	if len(cfg.Metrics.CertPath) > 0 {
		setupLog.Info("Initializing metrics certificate watcher using provided certificates",
			"metrics-cert-path", cfg.Metrics.CertPath,
			"metrics-cert-name", cfg.Metrics.CertName,
			"metrics-cert-key", cfg.Metrics.CertKey)

		var err error
		metricsCertWatcher, err = certwatcher.New(
			filepath.Join(cfg.Metrics.CertPath, cfg.Metrics.CertName),
			filepath.Join(cfg.Metrics.CertPath, cfg.Metrics.CertKey),
		)
		if err != nil {
			setupLog.Error(err, "to initialize metrics certificate watcher", "error", err)
			os.Exit(1)
		}

		metricsServerOptions.TLSOpts = append(metricsServerOptions.TLSOpts, func(config *tls.Config) {
			config.GetCertificate = metricsCertWatcher.GetCertificate
		})
	}

	mgr, err := ctrl.NewManager(ctrl.GetConfigOrDie(), ctrl.Options{
		Scheme:                 scheme,
		Metrics:                metricsServerOptions,
		WebhookServer:          webhookServer,
		HealthProbeBindAddress: cfg.Probes.BindAddress,
		LeaderElection:         cfg.LeaderElection.Enabled,
		LeaderElectionID:       "b9c27e41.yuptime.io",
		LeaseDuration:          &cfg.LeaderElection.LeaseDuration,
		RenewDeadline:          &cfg.LeaderElection.RenewDeadline,
		RetryPeriod:            &cfg.LeaderElection.RetryPeriod,
	})
	if err != nil {
		setupLog.Error(err, "unable to start manager")
		os.Exit(1)
	}

	// Storage backend.
	var dsn string
	switch cfg.Storage.Type {
	case "sqlite":
		dsn = cfg.Storage.SQLite.Path + "?_journal_mode=WAL&_busy_timeout=5000"
	case "postgres":
		dsn = fmt.Sprintf("host=%s port=%d user=%s password=%s dbname=%s sslmode=%s",
			cfg.Storage.PostgreSQL.Host, cfg.Storage.PostgreSQL.Port,
			cfg.Storage.PostgreSQL.Username, cfg.Storage.PostgreSQL.Password,
			cfg.Storage.PostgreSQL.Database, cfg.Storage.PostgreSQL.SSLMode)
	case "mysql":
		dsn = fmt.Sprintf("%s:%s@tcp(%s:%d)/%s?parseTime=true",
			cfg.Storage.MySQL.Username, cfg.Storage.MySQL.Password,
			cfg.Storage.MySQL.Host, cfg.Storage.MySQL.Port,
			cfg.Storage.MySQL.Database)
	default:
		setupLog.Error(nil, "unsupported storage type", "type", cfg.Storage.Type)
		os.Exit(1)
	}

	dataStore, err := store.NewGormStore(cfg.Storage.Type, dsn)
	if err != nil {
		setupLog.Error(err, "unable to create store")
		os.Exit(1)
	}
	if err := dataStore.Init(); err != nil {
		setupLog.Error(err, "unable to initialize store")
		os.Exit(1)
	}
	defer func() { _ = dataStore.Close() }()
	setupLog.Info("initialized store", "type", cfg.Storage.Type)

	// Resource cache, kept current by the reconciler registry below and read
	// by the alert engine, the delivery worker and the suppression index.
	// The scheduler's monitor lookup reads through the manager's client.
	resourceCache := cache.New(
		"Monitor",
		"NotificationProvider",
		"NotificationPolicy",
		"Silence",
		"MaintenanceWindow",
	)

	suppressionIndex := suppression.New(resourceCache)
	alertEngine := alertengine.New(mgr.GetClient(), resourceCache, dataStore, suppressionIndex, cfg.RateLimits.MaxAlertsPerMinute)

	deliveryWorker := delivery.NewWorker(mgr.GetClient(), dataStore, resourceCache)
	if err := mgr.Add(deliveryWorker); err != nil {
		setupLog.Error(err, "unable to add delivery worker to manager")
		os.Exit(1)
	}

	jobRegistry := scheduler.NewRegistry()
	jobQueue := scheduler.NewQueue()

	var lease scheduler.LeaseBackend
	switch cfg.Scheduler.LeaseBackend {
	case "redis":
		if cfg.Scheduler.RedisAddr == "" {
			setupLog.Error(nil, "scheduler.lease-backend is redis but scheduler.redis-addr is empty")
			os.Exit(1)
		}
		redisClient := redis.NewClient(&redis.Options{Addr: cfg.Scheduler.RedisAddr})
		lease = scheduler.NewRedisLeaseBackend(redisClient, "yuptime-scheduler-driver", podName())
	case "none":
		lease = scheduler.NoopLeaseBackend{}
	default:
		lease = &scheduler.KubernetesLeaseBackend{Elected: mgr.Elected()}
	}

	driver := &scheduler.Driver{
		Registry:  jobRegistry,
		Queue:     jobQueue,
		Lease:     lease,
		Executors: probe.NewRegistry(),
		Lookup: func(namespace, name string) (*v1alpha1.Monitor, bool) {
			var monitor v1alpha1.Monitor
			if err := mgr.GetClient().Get(context.Background(), types.NamespacedName{Namespace: namespace, Name: name}, &monitor); err != nil {
				return nil, false
			}
			return &monitor, true
		},
		OnResult:                newResultHandler(mgr.GetClient(), dataStore, alertEngine, cfg),
		MaxConcurrentNetChecks:  cfg.Scheduler.MaxConcurrentNetChecks,
		MaxConcurrentPrivChecks: cfg.Scheduler.MaxConcurrentPrivChecks,
		PollTick:                time.Duration(cfg.Scheduler.PollTickMs) * time.Millisecond,
		ShutdownGrace:           cfg.Scheduler.ShutdownGracePeriod,
	}
	if err := mgr.Add(driver); err != nil {
		setupLog.Error(err, "unable to add scheduler driver to manager")
		os.Exit(1)
	}

	if err := (&controller.MonitorReconciler{
		Client:         mgr.GetClient(),
		Scheme:         mgr.GetScheme(),
		Cache:          resourceCache,
		Registry:       jobRegistry,
		Queue:          jobQueue,
		Store:          dataStore,
		MinIntervalSec: int32(cfg.Scheduler.MinIntervalSec),
	}).SetupWithManager(mgr); err != nil {
		setupLog.Error(err, "unable to create controller", "controller", "Monitor")
		os.Exit(1)
	}
	if err := (&controller.MonitorSetReconciler{
		Client: mgr.GetClient(),
		Scheme: mgr.GetScheme(),
		Store:  dataStore,
	}).SetupWithManager(mgr); err != nil {
		setupLog.Error(err, "unable to create controller", "controller", "MonitorSet")
		os.Exit(1)
	}
	if err := (&controller.YuptimeSettingsReconciler{
		Client: mgr.GetClient(),
		Scheme: mgr.GetScheme(),
		Config: cfg,
		Store:  dataStore,
	}).SetupWithManager(mgr); err != nil {
		setupLog.Error(err, "unable to create controller", "controller", "YuptimeSettings")
		os.Exit(1)
	}
	if err := (&controller.NotificationProviderReconciler{
		Client: mgr.GetClient(),
		Scheme: mgr.GetScheme(),
		Cache:  resourceCache,
		Store:  dataStore,
	}).SetupWithManager(mgr); err != nil {
		setupLog.Error(err, "unable to create controller", "controller", "NotificationProvider")
		os.Exit(1)
	}
	if err := (&controller.NotificationPolicyReconciler{
		Client: mgr.GetClient(),
		Scheme: mgr.GetScheme(),
		Cache:  resourceCache,
		Store:  dataStore,
	}).SetupWithManager(mgr); err != nil {
		setupLog.Error(err, "unable to create controller", "controller", "NotificationPolicy")
		os.Exit(1)
	}
	if err := (&controller.SilenceReconciler{
		Client: mgr.GetClient(),
		Scheme: mgr.GetScheme(),
		Cache:  resourceCache,
		Store:  dataStore,
	}).SetupWithManager(mgr); err != nil {
		setupLog.Error(err, "unable to create controller", "controller", "Silence")
		os.Exit(1)
	}
	if err := (&controller.MaintenanceWindowReconciler{
		Client: mgr.GetClient(),
		Scheme: mgr.GetScheme(),
		Cache:  resourceCache,
		Store:  dataStore,
	}).SetupWithManager(mgr); err != nil {
		setupLog.Error(err, "unable to create controller", "controller", "MaintenanceWindow")
		os.Exit(1)
	}
	if err := (&controller.StatusPageReconciler{
		Client: mgr.GetClient(),
		Scheme: mgr.GetScheme(),
		Store:  dataStore,
	}).SetupWithManager(mgr); err != nil {
		setupLog.Error(err, "unable to create controller", "controller", "StatusPage")
		os.Exit(1)
	}
	if err := (&controller.LocalUserReconciler{
		Client: mgr.GetClient(),
		Scheme: mgr.GetScheme(),
		Store:  dataStore,
	}).SetupWithManager(mgr); err != nil {
		setupLog.Error(err, "unable to create controller", "controller", "LocalUser")
		os.Exit(1)
	}
	if err := (&controller.ApiKeyReconciler{
		Client: mgr.GetClient(),
		Scheme: mgr.GetScheme(),
		Store:  dataStore,
	}).SetupWithManager(mgr); err != nil {
		setupLog.Error(err, "unable to create controller", "controller", "ApiKey")
		os.Exit(1)
	}
	// +kubebuilder:scaffold:builder

	if metricsCertWatcher != nil {
		setupLog.Info("Adding metrics certificate watcher to manager")
		if err := mgr.Add(metricsCertWatcher); err != nil {
			setupLog.Error(err, "unable to add metrics certificate watcher to manager")
			os.Exit(1)
		}
	}

	if webhookCertWatcher != nil {
		setupLog.Info("Adding webhook certificate watcher to manager")
		if err := mgr.Add(webhookCertWatcher); err != nil {
			setupLog.Error(err, "unable to add webhook certificate watcher to manager")
			os.Exit(1)
		}
	}

	if err := mgr.AddHealthzCheck("healthz", healthz.Ping); err != nil {
		setupLog.Error(err, "unable to set up health check")
		os.Exit(1)
	}
	if err := mgr.AddReadyzCheck("readyz", healthz.Ping); err != nil {
		setupLog.Error(err, "unable to set up ready check")
		os.Exit(1)
	}

	setupLog.Info("starting manager")
	if err := mgr.Start(ctrl.SetupSignalHandler()); err != nil {
		setupLog.Error(err, "problem running manager")
		os.Exit(1)
	}
}

// podName identifies this replica to the Redis lease backend. POD_NAME is
// set via the downward API in the deployment manifest; falling back to the
// hostname keeps `go run` usable outside a cluster.
func podName() string {
	if name := os.Getenv("POD_NAME"); name != "" {
		return name
	}
	host, err := os.Hostname()
	if err != nil {
		return "yuptime-operator"
	}
	return host
}
