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
	"fmt"

	"sigs.k8s.io/controller-runtime/pkg/client"

	"github.com/yuptime-io/yuptime-operator/api/v1alpha1"
)

// Provider is the single deliver(title, body) capability a
// NotificationProvider resource backs. Non-goal scope stops here: the only
// providers implemented are the four type-discriminated ones the
// NotificationProvider CRD supports.
type Provider interface {
	Deliver(ctx context.Context, title, body string) error
}

// newProvider builds the concrete Provider for a NotificationProvider
// resource's declared type.
func newProvider(p *v1alpha1.NotificationProvider, secrets *secretResolver) (Provider, error) {
	switch p.Spec.Type {
	case "slack":
		if p.Spec.Slack == nil {
			return nil, fmt.Errorf("slack config required for provider %s", p.Name)
		}
		return &slackProvider{cfg: p.Spec.Slack, secrets: secrets}, nil
	case "pagerduty":
		if p.Spec.PagerDuty == nil {
			return nil, fmt.Errorf("pagerduty config required for provider %s", p.Name)
		}
		return &pagerDutyProvider{cfg: p.Spec.PagerDuty, secrets: secrets}, nil
	case "webhook":
		if p.Spec.Webhook == nil {
			return nil, fmt.Errorf("webhook config required for provider %s", p.Name)
		}
		return &webhookProvider{cfg: p.Spec.Webhook, secrets: secrets}, nil
	case "email":
		if p.Spec.Email == nil {
			return nil, fmt.Errorf("email config required for provider %s", p.Name)
		}
		return &emailProvider{cfg: p.Spec.Email, secrets: secrets}, nil
	default:
		return nil, fmt.Errorf("unknown provider type %q for provider %s", p.Spec.Type, p.Name)
	}
}

// NewProvider builds the Provider for p using a fresh, uncached secret
// resolver bound to c. It is the reconciler registry's entry point for
// NotificationProvider's TestOnSave validation path, so the test delivery
// exercises the exact same Provider construction and secret resolution the
// worker uses, instead of the controller duplicating it.
func NewProvider(c client.Client, p *v1alpha1.NotificationProvider) (Provider, error) {
	return newProvider(p, newSecretResolver(c))
}
