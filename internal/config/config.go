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

package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

// Config holds all configuration for the operator. Fields here are cluster
// defaults; the YuptimeSettings reconciler (see internal/controller) writes a
// singleton's overrides onto this struct at runtime. Only the flapping
// window is read from it on every use. Scheduler budgets and poll tick, the
// monitor interval floor, the alert rate limit and leader election are
// copied out at startup and keep their startup values; history retention
// is not read by any component.
type Config struct {
	// configFileUsed is the path to the config file that was loaded (empty if none)
	configFileUsed string

	// LogLevel is the logging level (debug, info, warn, error)
	LogLevel string `mapstructure:"log-level"`

	// Scheduler configuration
	Scheduler SchedulerConfig `mapstructure:"scheduler"`

	// Flapping window configuration
	Flapping FlappingConfig `mapstructure:"flapping"`

	// Storage configuration
	Storage StorageConfig `mapstructure:"storage"`

	// HistoryRetention configuration
	HistoryRetention HistoryRetentionConfig `mapstructure:"history-retention"`

	// RateLimits for alert delivery
	RateLimits RateLimitsConfig `mapstructure:"rate-limits"`

	// UI configuration (parsed; no component of this binary reads it)
	UI UIConfig `mapstructure:"ui"`

	// Metrics server configuration
	Metrics MetricsConfig `mapstructure:"metrics"`

	// Probes configuration
	Probes ProbesConfig `mapstructure:"probes"`

	// LeaderElection configuration
	LeaderElection LeaderElectionConfig `mapstructure:"leader-election"`

	// Webhook configuration
	Webhook WebhookConfig `mapstructure:"webhook"`
}

// SchedulerConfig configures the probe scheduler driver.
type SchedulerConfig struct {
	// MinIntervalSec is the cluster-wide floor for Monitor.spec.schedule.intervalSec.
	MinIntervalSec int `mapstructure:"min-interval-sec" json:"minIntervalSec"`

	// MaxConcurrentNetChecks bounds in-flight network probes.
	MaxConcurrentNetChecks int `mapstructure:"max-concurrent-net-checks" json:"maxConcurrentNetChecks"`

	// MaxConcurrentPrivChecks bounds in-flight privileged probes (e.g. ICMP).
	MaxConcurrentPrivChecks int `mapstructure:"max-concurrent-priv-checks" json:"maxConcurrentPrivChecks"`

	// LeaseBackend selects the driver's singleton lock implementation.
	LeaseBackend string `mapstructure:"lease-backend" json:"leaseBackend"`

	// PollTickMs bounds the driver's idle poll tick.
	PollTickMs int `mapstructure:"poll-tick-ms" json:"pollTickMs"`

	// RedisAddr is the Redis endpoint used when LeaseBackend is "redis".
	RedisAddr string `mapstructure:"redis-addr" json:"redisAddr,omitempty"`

	// ShutdownGracePeriod bounds how long the driver waits for in-flight
	// probes to finish before releasing its lease on shutdown.
	ShutdownGracePeriod time.Duration `mapstructure:"shutdown-grace-period" json:"shutdownGracePeriod"`
}

// FlappingConfig controls the window used to classify a monitor as flapping.
type FlappingConfig struct {
	// WindowSize is the number of recent heartbeats considered.
	WindowSize int `mapstructure:"window-size" json:"windowSize"`

	// MinTransitions is the number of state changes within the window
	// required to classify as flapping.
	MinTransitions int `mapstructure:"min-transitions" json:"minTransitions"`
}

// StorageConfig configures the storage backend.
type StorageConfig struct {
	// Type is the storage backend type (sqlite, postgres, mysql)
	Type string `mapstructure:"type" json:"type"`

	// SQLite configuration
	SQLite SQLiteConfig `mapstructure:"sqlite" json:"sqlite,omitempty"`

	// PostgreSQL configuration
	PostgreSQL PostgreSQLConfig `mapstructure:"postgres" json:"postgres,omitempty"`

	// MySQL configuration
	MySQL MySQLConfig `mapstructure:"mysql" json:"mysql,omitempty"`
}

// SQLiteConfig configures SQLite storage
type SQLiteConfig struct {
	Path string `mapstructure:"path" json:"path"`
}

// PostgreSQLConfig configures PostgreSQL storage
type PostgreSQLConfig struct {
	Host     string `mapstructure:"host" json:"host,omitempty"`
	Port     int    `mapstructure:"port" json:"port,omitempty"`
	Database string `mapstructure:"database" json:"database,omitempty"`
	Username string `mapstructure:"username" json:"username,omitempty"`
	Password string `mapstructure:"password" json:"-"`
	SSLMode  string `mapstructure:"ssl-mode" json:"sslMode,omitempty"`
}

// MySQLConfig configures MySQL/MariaDB storage
type MySQLConfig struct {
	Host     string `mapstructure:"host" json:"host,omitempty"`
	Port     int    `mapstructure:"port" json:"port,omitempty"`
	Database string `mapstructure:"database" json:"database,omitempty"`
	Username string `mapstructure:"username" json:"username,omitempty"`
	Password string `mapstructure:"password" json:"-"`
}

// HistoryRetentionConfig configures retention of heartbeats/delivery records.
type HistoryRetentionConfig struct {
	DefaultDays int `mapstructure:"default-days" json:"defaultDays"`
	MaxDays     int `mapstructure:"max-days" json:"maxDays"`
}

// RateLimitsConfig configures global alert-delivery rate limits.
type RateLimitsConfig struct {
	MaxAlertsPerMinute int `mapstructure:"max-alerts-per-minute" json:"maxAlertsPerMinute"`
}

// UIConfig holds the ui.* settings. This binary starts no UI or status API
// server, so nothing reads them.
type UIConfig struct {
	Enabled bool `mapstructure:"enabled" json:"enabled"`
	Port    int  `mapstructure:"port" json:"port"`
}

// MetricsConfig configures the metrics server
type MetricsConfig struct {
	BindAddress string `mapstructure:"bind-address"`
	Secure      bool   `mapstructure:"secure"`
	CertPath    string `mapstructure:"cert-path"`
	CertName    string `mapstructure:"cert-name"`
	CertKey     string `mapstructure:"cert-key"`
}

// ProbesConfig configures health probes
type ProbesConfig struct {
	BindAddress string `mapstructure:"bind-address"`
}

// LeaderElectionConfig configures leader election
type LeaderElectionConfig struct {
	Enabled       bool          `mapstructure:"enabled"`
	LeaseDuration time.Duration `mapstructure:"lease-duration"`
	RenewDeadline time.Duration `mapstructure:"renew-deadline"`
	RetryPeriod   time.Duration `mapstructure:"retry-period"`
}

// WebhookConfig configures webhook server TLS
type WebhookConfig struct {
	CertPath    string `mapstructure:"cert-path"`
	CertName    string `mapstructure:"cert-name"`
	CertKey     string `mapstructure:"cert-key"`
	EnableHTTP2 bool   `mapstructure:"enable-http2"`
}

// DefaultConfig returns the default configuration
func DefaultConfig() *Config {
	return &Config{
		LogLevel: "info",
		Scheduler: SchedulerConfig{
			MinIntervalSec:          20,
			MaxConcurrentNetChecks:  50,
			MaxConcurrentPrivChecks: 10,
			LeaseBackend:            "kubernetes",
			PollTickMs:              100,
			ShutdownGracePeriod:     10 * time.Second,
		},
		Flapping: FlappingConfig{
			WindowSize:     5,
			MinTransitions: 3,
		},
		Storage: StorageConfig{
			Type: "sqlite",
			SQLite: SQLiteConfig{
				Path: "/data/yuptime.db",
			},
			PostgreSQL: PostgreSQLConfig{
				Port:    5432,
				SSLMode: "require",
			},
			MySQL: MySQLConfig{
				Port: 3306,
			},
		},
		HistoryRetention: HistoryRetentionConfig{
			DefaultDays: 30,
			MaxDays:     90,
		},
		RateLimits: RateLimitsConfig{
			MaxAlertsPerMinute: 50,
		},
		UI: UIConfig{
			Enabled: true,
			Port:    8080,
		},
		Metrics: MetricsConfig{
			BindAddress: "0",
			Secure:      true,
			CertName:    "tls.crt",
			CertKey:     "tls.key",
		},
		Probes: ProbesConfig{
			BindAddress: ":8081",
		},
		LeaderElection: LeaderElectionConfig{
			Enabled:       false,
			LeaseDuration: 15 * time.Second,
			RenewDeadline: 10 * time.Second,
			RetryPeriod:   2 * time.Second,
		},
		Webhook: WebhookConfig{
			CertName:    "tls.crt",
			CertKey:     "tls.key",
			EnableHTTP2: false,
		},
	}
}

// BindFlags binds configuration flags to pflags
func BindFlags(flags *pflag.FlagSet) {
	flags.String("config", "", "Path to config file")
	flags.String("log-level", "info", "Log level (debug, info, warn, error)")

	flags.Int("scheduler.min-interval-sec", 20, "Cluster-wide floor for monitor check intervals, in seconds")
	flags.Int("scheduler.max-concurrent-net-checks", 50, "Max in-flight network probes")
	flags.Int("scheduler.max-concurrent-priv-checks", 10, "Max in-flight privileged probes (e.g. ICMP)")
	flags.String("scheduler.lease-backend", "kubernetes", "Scheduler driver lease backend (kubernetes, redis)")
	flags.Int("scheduler.poll-tick-ms", 100, "Scheduler driver idle poll tick, in milliseconds")
	flags.String("scheduler.redis-addr", "", "Redis address, used when scheduler.lease-backend is redis")
	flags.Duration("scheduler.shutdown-grace-period", 10*time.Second, "Grace period for in-flight probes on shutdown")

	flags.Int("flapping.window-size", 5, "Number of recent heartbeats considered for flap detection")
	flags.Int("flapping.min-transitions", 3, "State transitions within the window required to classify as flapping")

	flags.String("storage.type", "sqlite", "Storage backend type (sqlite, postgres, mysql)")
	flags.String("storage.sqlite.path", "/data/yuptime.db", "Path to SQLite database file")
	flags.String("storage.postgres.host", "", "PostgreSQL host")
	flags.Int("storage.postgres.port", 5432, "PostgreSQL port")
	flags.String("storage.postgres.database", "", "PostgreSQL database name")
	flags.String("storage.postgres.username", "", "PostgreSQL username")
	flags.String("storage.postgres.password", "", "PostgreSQL password")
	flags.String("storage.postgres.ssl-mode", "require", "PostgreSQL SSL mode")
	flags.String("storage.mysql.host", "", "MySQL host")
	flags.Int("storage.mysql.port", 3306, "MySQL port")
	flags.String("storage.mysql.database", "", "MySQL database name")
	flags.String("storage.mysql.username", "", "MySQL username")
	flags.String("storage.mysql.password", "", "MySQL password")

	flags.Int("history-retention.default-days", 30, "Default retention period in days")
	flags.Int("history-retention.max-days", 90, "Maximum retention period in days")

	flags.Int("rate-limits.max-alerts-per-minute", 50, "Maximum alerts delivered per minute to each provider")

	flags.Bool("ui.enabled", true, "UI enabled setting (not read by this binary)")
	flags.Int("ui.port", 8080, "UI port setting (not read by this binary)")

	flags.String("metrics.bind-address", "0", "Metrics endpoint bind address (0 to disable)")
	flags.Bool("metrics.secure", true, "Enable HTTPS for metrics")
	flags.String("metrics.cert-path", "", "Path to metrics TLS certificate directory")
	flags.String("metrics.cert-name", "tls.crt", "Metrics TLS certificate file name")
	flags.String("metrics.cert-key", "tls.key", "Metrics TLS key file name")

	flags.String("probes.bind-address", ":8081", "Health probes bind address")

	flags.Bool("leader-election.enabled", false, "Enable leader election")
	flags.Duration("leader-election.lease-duration", 15*time.Second, "Leader lease duration")
	flags.Duration("leader-election.renew-deadline", 10*time.Second, "Leader renew deadline")
	flags.Duration("leader-election.retry-period", 2*time.Second, "Leader retry period")

	flags.String("webhook.cert-path", "", "Path to webhook TLS certificate directory")
	flags.String("webhook.cert-name", "tls.crt", "Webhook TLS certificate file name")
	flags.String("webhook.cert-key", "tls.key", "Webhook TLS key file name")
	flags.Bool("webhook.enable-http2", false, "Enable HTTP/2 for webhook server")
}

// Load loads configuration from flags, environment, and config file
func Load(flags *pflag.FlagSet) (*Config, error) {
	v := viper.New()

	defaults := DefaultConfig()
	v.SetDefault("log-level", defaults.LogLevel)
	v.SetDefault("scheduler.min-interval-sec", defaults.Scheduler.MinIntervalSec)
	v.SetDefault("scheduler.max-concurrent-net-checks", defaults.Scheduler.MaxConcurrentNetChecks)
	v.SetDefault("scheduler.max-concurrent-priv-checks", defaults.Scheduler.MaxConcurrentPrivChecks)
	v.SetDefault("scheduler.lease-backend", defaults.Scheduler.LeaseBackend)
	v.SetDefault("scheduler.poll-tick-ms", defaults.Scheduler.PollTickMs)
	v.SetDefault("scheduler.shutdown-grace-period", defaults.Scheduler.ShutdownGracePeriod)
	v.SetDefault("flapping.window-size", defaults.Flapping.WindowSize)
	v.SetDefault("flapping.min-transitions", defaults.Flapping.MinTransitions)
	v.SetDefault("storage.type", defaults.Storage.Type)
	v.SetDefault("storage.sqlite.path", defaults.Storage.SQLite.Path)
	v.SetDefault("storage.postgres.port", defaults.Storage.PostgreSQL.Port)
	v.SetDefault("storage.postgres.ssl-mode", defaults.Storage.PostgreSQL.SSLMode)
	v.SetDefault("storage.mysql.port", defaults.Storage.MySQL.Port)
	v.SetDefault("history-retention.default-days", defaults.HistoryRetention.DefaultDays)
	v.SetDefault("history-retention.max-days", defaults.HistoryRetention.MaxDays)
	v.SetDefault("rate-limits.max-alerts-per-minute", defaults.RateLimits.MaxAlertsPerMinute)
	v.SetDefault("ui.enabled", defaults.UI.Enabled)
	v.SetDefault("ui.port", defaults.UI.Port)
	v.SetDefault("metrics.bind-address", defaults.Metrics.BindAddress)
	v.SetDefault("metrics.secure", defaults.Metrics.Secure)
	v.SetDefault("metrics.cert-name", defaults.Metrics.CertName)
	v.SetDefault("metrics.cert-key", defaults.Metrics.CertKey)
	v.SetDefault("probes.bind-address", defaults.Probes.BindAddress)
	v.SetDefault("leader-election.enabled", defaults.LeaderElection.Enabled)
	v.SetDefault("leader-election.lease-duration", defaults.LeaderElection.LeaseDuration)
	v.SetDefault("leader-election.renew-deadline", defaults.LeaderElection.RenewDeadline)
	v.SetDefault("leader-election.retry-period", defaults.LeaderElection.RetryPeriod)
	v.SetDefault("webhook.cert-name", defaults.Webhook.CertName)
	v.SetDefault("webhook.cert-key", defaults.Webhook.CertKey)
	v.SetDefault("webhook.enable-http2", defaults.Webhook.EnableHTTP2)

	if err := v.BindPFlags(flags); err != nil {
		return nil, fmt.Errorf("binding flags: %w", err)
	}

	v.SetEnvPrefix("YUPTIME")
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_", ".", "_"))
	v.AutomaticEnv()

	var configFileUsed string
	if configFile, _ := flags.GetString("config"); configFile != "" {
		v.SetConfigFile(configFile)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("reading config file: %w", err)
		}
		configFileUsed = v.ConfigFileUsed()
	} else {
		v.SetConfigName("config")
		v.SetConfigType("yaml")
		v.AddConfigPath("/etc/yuptime-operator")
		v.AddConfigPath(".")
		if err := v.ReadInConfig(); err == nil {
			configFileUsed = v.ConfigFileUsed()
		}
	}

	cfg := &Config{}
	if err := v.Unmarshal(cfg); err != nil {
		return nil, fmt.Errorf("unmarshaling config: %w", err)
	}

	cfg.configFileUsed = configFileUsed

	return cfg, nil
}

// ConfigFileUsed returns the path to the config file that was loaded (empty if none)
func (c *Config) ConfigFileUsed() string {
	return c.configFileUsed
}
