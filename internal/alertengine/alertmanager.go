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

package alertengine

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"sigs.k8s.io/controller-runtime/pkg/log"
)

// alertmanagerAlert is the wire shape of a single entry in the JSON array
// Alertmanager's /api/v2/alerts (and the v1 POST /alerts endpoint) accepts.
type alertmanagerAlert struct {
	Labels       map[string]string `json:"labels"`
	Annotations  map[string]string `json:"annotations"`
	GeneratorURL string            `json:"generatorURL,omitempty"`
	StartsAt     string            `json:"startsAt,omitempty"`
}

// postToAlertmanager bridges an alert event to a monitor's declared
// alertmanagerUrl in addition to (not instead of) NotificationPolicy
// delivery. A non-2xx response is logged and swallowed: the bridge is
// best-effort and must never block or fail the primary delivery path.
func postToAlertmanager(ctx context.Context, httpClient *http.Client, url string, ev AlertEvent, tags []string) {
	state := "firing"
	if ev.CurrState == "up" {
		state = "resolved"
	}

	labels := map[string]string{
		"monitor":   ev.Monitor.Name,
		"namespace": ev.Monitor.Namespace,
		"state":     state,
	}
	if len(tags) > 0 {
		labels["tags"] = joinTags(tags)
	}

	annotations := map[string]string{
		"summary":     fmt.Sprintf("%s/%s is %s", ev.Monitor.Namespace, ev.Monitor.Name, ev.CurrState),
		"description": ev.Message,
	}

	alert := alertmanagerAlert{
		Labels:       labels,
		Annotations:  annotations,
		GeneratorURL: fmt.Sprintf("yuptime://%s/%s", ev.Monitor.Namespace, ev.Monitor.Name),
		StartsAt:     ev.Timestamp.Format(time.RFC3339),
	}

	body, err := json.Marshal([]alertmanagerAlert{alert})
	if err != nil {
		return
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(body))
	if err != nil {
		return
	}
	req.Header.Set("Content-Type", "application/json")

	logger := log.FromContext(ctx).WithName("alertmanager-bridge")
	resp, err := httpClient.Do(req)
	if err != nil {
		logger.Info("alertmanager bridge request failed", "url", url, "error", err.Error())
		return
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		logger.Info("alertmanager bridge returned non-2xx", "url", url, "status", resp.StatusCode)
	}
}

func joinTags(tags []string) string {
	out := ""
	for i, t := range tags {
		if i > 0 {
			out += ","
		}
		out += t
	}
	return out
}
