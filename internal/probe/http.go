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

package probe

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/yuptime-io/yuptime-operator/api/v1alpha1"
)

// HTTPExecutor is the one reference probe implementation this repo ships: a
// plain net/http GET/HEAD check against Monitor.spec.target.http. It exists
// so the scheduler driver has something concrete to dispatch in tests and
// examples; the other eight probe types remain contract-only stubs.
type HTTPExecutor struct {
	// Client is reused across calls; defaults to a fresh client per call if nil.
	Client *http.Client
}

func (e *HTTPExecutor) Execute(ctx context.Context, monitor *v1alpha1.Monitor, timeout time.Duration) (Result, error) {
	target := monitor.Spec.Target.HTTP
	if target == nil {
		return Result{State: StateDown, Reason: "invalid_target", Message: "monitor has no http target"}, nil
	}

	method := target.Method
	if method == "" {
		method = http.MethodGet
	}

	reqCtx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	req, err := http.NewRequestWithContext(reqCtx, method, target.URL, nil)
	if err != nil {
		return Result{State: StateDown, Reason: "invalid_request", Message: err.Error()}, nil
	}

	client := e.Client
	if client == nil {
		client = &http.Client{}
	}

	start := time.Now()
	resp, err := client.Do(req)
	latency := time.Since(start)
	if err != nil {
		if errors.Is(err, context.DeadlineExceeded) {
			return Result{
				State:     StateDown,
				LatencyMs: latency.Milliseconds(),
				Reason:    "TIMEOUT",
				Message:   err.Error(),
			}, nil
		}
		return Result{
			State:     StateDown,
			LatencyMs: latency.Milliseconds(),
			Reason:    "request_failed",
			Message:   err.Error(),
		}, nil
	}
	defer resp.Body.Close()

	body, _ := io.ReadAll(io.LimitReader(resp.Body, 64*1024))

	if !statusMatches(resp.StatusCode, target.ExpectedStatusCodes) {
		return Result{
			State:     StateDown,
			LatencyMs: latency.Milliseconds(),
			Reason:    "unexpected_status",
			Message:   fmt.Sprintf("got status %d", resp.StatusCode),
		}, nil
	}

	if target.ExpectedBodyContains != "" && !strings.Contains(string(body), target.ExpectedBodyContains) {
		return Result{
			State:     StateDown,
			LatencyMs: latency.Milliseconds(),
			Reason:    "body_mismatch",
			Message:   "response body did not contain expected substring",
		}, nil
	}

	return Result{
		State:     StateUp,
		LatencyMs: latency.Milliseconds(),
		Reason:    "ok",
		Message:   fmt.Sprintf("status %d", resp.StatusCode),
	}, nil
}

func statusMatches(status int, expected []int32) bool {
	if len(expected) == 0 {
		return status >= 200 && status < 300
	}
	for _, code := range expected {
		if int32(status) == code {
			return true
		}
	}
	return false
}
