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
	"net/smtp"
	"strings"

	"github.com/yuptime-io/yuptime-operator/api/v1alpha1"
)

// emailProvider sends plain-text mail via net/smtp, matching the teacher's
// email channel shape (internal/alerting/email.go).
type emailProvider struct {
	cfg     *v1alpha1.EmailConfig
	secrets *secretResolver
}

func (e *emailProvider) Deliver(ctx context.Context, title, body string) error {
	data, err := e.secrets.secretValues(ctx, e.cfg.SMTPSecretRef)
	if err != nil {
		return err
	}

	host, ok := data["host"]
	if !ok {
		return fmt.Errorf("SMTP secret missing 'host' key")
	}
	username, ok := data["username"]
	if !ok {
		return fmt.Errorf("SMTP secret missing 'username' key")
	}
	password, ok := data["password"]
	if !ok {
		return fmt.Errorf("SMTP secret missing 'password' key")
	}
	port := "587"
	if p, ok := data["port"]; ok {
		port = string(p)
	}

	msg := fmt.Sprintf("From: %s\r\nTo: %s\r\nSubject: %s\r\nMIME-Version: 1.0\r\nContent-Type: text/plain; charset=utf-8\r\n\r\n%s",
		e.cfg.From, strings.Join(e.cfg.To, ", "), title, body)

	auth := smtp.PlainAuth("", string(username), string(password), string(host))
	addr := fmt.Sprintf("%s:%s", host, port)

	return smtp.SendMail(addr, auth, e.cfg.From, e.cfg.To, []byte(msg))
}
