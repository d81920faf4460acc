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

	"github.com/slack-go/slack"

	"github.com/yuptime-io/yuptime-operator/api/v1alpha1"
)

// slackProvider posts a rendered alert to a Slack incoming webhook.
type slackProvider struct {
	cfg     *v1alpha1.SlackConfig
	secrets *secretResolver
}

func (s *slackProvider) Deliver(ctx context.Context, title, body string) error {
	webhookURL, err := s.secrets.keyValue(ctx, s.cfg.WebhookSecretRef)
	if err != nil {
		return err
	}

	msg := &slack.WebhookMessage{
		Text: "*" + title + "*\n" + body,
	}
	if s.cfg.DefaultChannel != "" {
		msg.Channel = s.cfg.DefaultChannel
	}

	return slack.PostWebhookContext(ctx, webhookURL, msg)
}
