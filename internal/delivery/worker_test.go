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

package delivery

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/go-logr/logr/testr"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
	metav1 "k8s.io/apimachinery/pkg/apis/meta/v1"

	"github.com/yuptime-io/yuptime-operator/api/v1alpha1"
	"github.com/yuptime-io/yuptime-operator/internal/cache"
	"github.com/yuptime-io/yuptime-operator/internal/store"
)

type WorkerTestSuite struct {
	suite.Suite
	store  *store.GormStore
	cache  *cache.Cache
	worker *Worker
	ctx    context.Context
	server *httptest.Server
}

func (s *WorkerTestSuite) SetupTest() {
	var err error
	s.store, err = store.NewGormStore("sqlite", "file::memory:?cache=shared")
	require.NoError(s.T(), err)
	require.NoError(s.T(), s.store.Init())

	s.cache = cache.New(kindNotificationProvider)
	s.worker = NewWorker(nil, s.store, s.cache)
	s.worker.secrets = &secretResolver{cache: make(map[string]secretCacheEntry)}
	s.ctx = context.Background()
}

func (s *WorkerTestSuite) TearDownTest() {
	_ = s.store.Close()
	if s.server != nil {
		s.server.Close()
		s.server = nil
	}
}

func TestWorkerSuite(t *testing.T) {
	suite.Run(t, new(WorkerTestSuite))
}

func (s *WorkerTestSuite) putWebhookProvider(name, url string) {
	p := v1alpha1.NotificationProvider{
		ObjectMeta: metav1.ObjectMeta{Namespace: "default", Name: name},
		Spec: v1alpha1.NotificationProviderSpec{
			Type: "webhook",
			Webhook: &v1alpha1.WebhookConfig{
				URLSecretRef: v1alpha1.NamespacedSecretKeyRef{Namespace: "default", Name: "whsec", Key: "url"},
			},
		},
	}
	s.cache.Upsert(cache.Key{Kind: kindNotificationProvider, Namespace: "default", Name: name}, &p, "1", 1)
	s.worker.secrets.store("default/whsec#url", url)
}

func (s *WorkerTestSuite) queueDelivery(provider string) store.DeliveryRecord {
	rec := store.DeliveryRecord{
		ID:          "rec-" + provider,
		MonitorNS:   "default",
		MonitorName: "api",
		PolicyName:  "page-oncall",
		Provider:    provider,
		Title:       "api is DOWN",
		Body:        "probe timed out",
		DedupKey:    "dk-" + provider,
		Status:      string(store.DeliveryPending),
		CreatedAt:   time.Now(),
	}
	require.NoError(s.T(), s.store.QueueDelivery(s.ctx, rec))
	return rec
}

func (s *WorkerTestSuite) logger() workerLogger {
	l := testr.New(s.T())
	return &l
}

func (s *WorkerTestSuite) TestDrain_DeliversSuccessfully() {
	var hits int
	s.server = httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		hits++
		w.WriteHeader(http.StatusOK)
	}))

	s.putWebhookProvider("webhook-main", s.server.URL)
	s.queueDelivery("webhook-main")

	s.worker.drain(s.ctx, s.logger())

	s.Equal(1, hits)
	recs, err := s.store.ListPendingDeliveries(s.ctx, 10)
	require.NoError(s.T(), err)
	s.Empty(recs)

	stats, err := s.store.GetProviderStats(s.ctx, "webhook-main")
	require.NoError(s.T(), err)
	s.Require().NotNil(stats)
	s.EqualValues(1, stats.DeliveredTotal)
	s.Zero(stats.ConsecutiveFailures)
}

func (s *WorkerTestSuite) TestDrain_MarksFailedOnNon2xx() {
	s.server = httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))

	s.putWebhookProvider("webhook-main", s.server.URL)
	s.queueDelivery("webhook-main")

	s.worker.drain(s.ctx, s.logger())

	stats, err := s.store.GetProviderStats(s.ctx, "webhook-main")
	require.NoError(s.T(), err)
	s.Require().NotNil(stats)
	s.EqualValues(1, stats.FailedTotal)
	s.EqualValues(1, stats.ConsecutiveFailures)
	s.NotEmpty(stats.LastError)
}

func (s *WorkerTestSuite) TestDrain_UnknownProviderFailsWithoutPanicking() {
	s.queueDelivery("does-not-exist")

	s.NotPanics(func() {
		s.worker.drain(s.ctx, s.logger())
	})

	stats, err := s.store.GetProviderStats(s.ctx, "does-not-exist")
	require.NoError(s.T(), err)
	s.Require().NotNil(stats)
	s.EqualValues(1, stats.FailedTotal)
}

func (s *WorkerTestSuite) TestDrain_OneFailureDoesNotBlockOthers() {
	goodServer := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	}))
	defer goodServer.Close()

	s.putWebhookProvider("good", goodServer.URL)
	s.queueDelivery("does-not-exist")
	s.queueDelivery("good")

	s.worker.drain(s.ctx, s.logger())

	recs, err := s.store.ListPendingDeliveries(s.ctx, 10)
	require.NoError(s.T(), err)
	s.Empty(recs)

	goodStats, err := s.store.GetProviderStats(s.ctx, "good")
	require.NoError(s.T(), err)
	s.Require().NotNil(goodStats)
	s.EqualValues(1, goodStats.DeliveredTotal)
}
