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

package store

import (
	"context"
	"fmt"

	corev1 "k8s.io/api/core/v1"
	"k8s.io/apimachinery/pkg/types"
	"sigs.k8s.io/controller-runtime/pkg/client"

	"github.com/yuptime-io/yuptime-operator/api/v1alpha1"
)

const defaultSQLitePath = "/data/yuptime.db"

// NewStore builds a store from a StorageConfig that needs no secret
// resolution (sqlite, or postgres/mysql with credentials already known to
// the caller). Use NewStoreWithCredentials when postgres/mysql credentials
// live in a Secret.
func NewStore(config *v1alpha1.StorageConfig) (Store, error) {
	dialect, dsn, err := resolveDSN(config, "", "")
	if err != nil {
		return nil, err
	}
	return NewGormStore(dialect, dsn)
}

// NewStoreWithCredentials builds a store, resolving postgres/mysql
// credentials from the Secret referenced by the config.
func NewStoreWithCredentials(ctx context.Context, c client.Client, config *v1alpha1.StorageConfig) (Store, error) {
	var username, password string
	var secretRef *v1alpha1.NamespacedSecretRef

	if config != nil {
		switch config.Type {
		case "postgres":
			if config.PostgreSQL != nil {
				secretRef = &config.PostgreSQL.CredentialsSecretRef
			}
		case "mysql":
			if config.MySQL != nil {
				secretRef = &config.MySQL.CredentialsSecretRef
			}
		}
	}

	if secretRef != nil {
		var err error
		username, password, err = getCredentialsFromSecret(ctx, c, *secretRef)
		if err != nil {
			return nil, fmt.Errorf("failed to resolve storage credentials: %w", err)
		}
	}

	dialect, dsn, err := resolveDSN(config, username, password)
	if err != nil {
		return nil, err
	}
	return NewGormStore(dialect, dsn)
}

// resolveDSN turns a StorageConfig into a GORM dialect name and DSN.
func resolveDSN(config *v1alpha1.StorageConfig, username, password string) (dialect, dsn string, err error) {
	if config == nil {
		return "sqlite", defaultSQLitePath, nil
	}

	switch config.Type {
	case "sqlite", "":
		path := defaultSQLitePath
		if config.SQLite != nil && config.SQLite.Path != "" {
			path = config.SQLite.Path
		}
		return "sqlite", path, nil

	case "postgres":
		if config.PostgreSQL == nil {
			return "", "", fmt.Errorf("postgres config required when storage type is postgres")
		}
		pg := config.PostgreSQL
		port := int32(5432)
		if pg.Port != nil {
			port = *pg.Port
		}
		sslMode := pg.SSLMode
		if sslMode == "" {
			sslMode = "require"
		}
		dsn := fmt.Sprintf("host=%s port=%d user=%s password=%s dbname=%s sslmode=%s",
			pg.Host, port, username, password, pg.Database, sslMode)
		return "postgres", dsn, nil

	case "mysql":
		if config.MySQL == nil {
			return "", "", fmt.Errorf("mysql config required when storage type is mysql")
		}
		my := config.MySQL
		port := int32(3306)
		if my.Port != nil {
			port = *my.Port
		}
		dsn := fmt.Sprintf("%s:%s@tcp(%s:%d)/%s?charset=utf8mb4&parseTime=True&loc=Local",
			username, password, my.Host, port, my.Database)
		return "mysql", dsn, nil

	default:
		return "", "", fmt.Errorf("unknown storage type: %s", config.Type)
	}
}

// getCredentialsFromSecret retrieves username and password from a secret.
func getCredentialsFromSecret(ctx context.Context, c client.Client, ref v1alpha1.NamespacedSecretRef) (string, string, error) {
	secret := &corev1.Secret{}
	err := c.Get(ctx, types.NamespacedName{
		Namespace: ref.Namespace,
		Name:      ref.Name,
	}, secret)
	if err != nil {
		return "", "", fmt.Errorf("failed to get secret %s/%s: %w", ref.Namespace, ref.Name, err)
	}

	username, ok := secret.Data["username"]
	if !ok {
		return "", "", fmt.Errorf("secret %s/%s missing 'username' key", ref.Namespace, ref.Name)
	}
	password, ok := secret.Data["password"]
	if !ok {
		return "", "", fmt.Errorf("secret %s/%s missing 'password' key", ref.Namespace, ref.Name)
	}

	return string(username), string(password), nil
}
