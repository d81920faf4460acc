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

// Package suppression answers "should this monitor's alerts be suppressed
// right now" by evaluating live Silence and MaintenanceWindow resources
// against a Monitor. It rebuilds entirely from the resource cache on every
// query and every restart; nothing here is itself persisted.
package suppression

import (
	"time"

	"github.com/yuptime-io/yuptime-operator/api/v1alpha1"
	"github.com/yuptime-io/yuptime-operator/internal/selector"
)

// silenceActive reports whether sil currently silences monitor.
func silenceActive(sil *v1alpha1.Silence, monitor *v1alpha1.Monitor, now time.Time) bool {
	if now.After(sil.Spec.ExpiresAt.Time) {
		return false
	}
	return selector.Matches(&sil.Spec.Match, monitor)
}
