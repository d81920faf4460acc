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
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/yuptime-io/yuptime-operator/api/v1alpha1"
)

const pagerDutyEventsURL = "https://events.pagerduty.com/v2/enqueue"

// pagerDutyProvider POSTs to the PagerDuty Events v2 API directly: no
// PagerDuty SDK appears anywhere in the corpus, so this follows the
// teacher's plain net/http style used for every channel that isn't backed
// by a library (see internal/alerting/pagerduty.go).
type pagerDutyProvider struct {
	cfg     *v1alpha1.PagerDutyConfig
	secrets *secretResolver
}

func (p *pagerDutyProvider) Deliver(ctx context.Context, title, body string) error {
	routingKey, err := p.secrets.keyValue(ctx, p.cfg.RoutingKeySecretRef)
	if err != nil {
		return err
	}

	severity := p.cfg.Severity
	if severity == "" {
		severity = "critical"
	}

	payload := map[string]interface{}{
		"routing_key":  routingKey,
		"event_action": "trigger",
		"dedup_key":    title,
		"payload": map[string]interface{}{
			"summary":  title,
			"source":   "yuptime",
			"severity": severity,
			"custom_details": map[string]interface{}{
				"body": body,
			},
		},
	}

	jsonPayload, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("failed to marshal pagerduty payload: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, pagerDutyEventsURL, bytes.NewReader(jsonPayload))
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := deliveryHTTPClient.Do(req)
	if err != nil {
		return fmt.Errorf("failed to send pagerduty event: %w", err)
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode != http.StatusAccepted {
		return fmt.Errorf("pagerduty returned status %d", resp.StatusCode)
	}
	return nil
}
