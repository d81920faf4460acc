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

package suppression

import (
	"time"

	"github.com/teambition/rrule-go"

	"github.com/yuptime-io/yuptime-operator/api/v1alpha1"
	"github.com/yuptime-io/yuptime-operator/internal/selector"
)

// maxRRuleOccurrences bounds how many occurrences a single RRULE expansion
// may produce when locating the most recent occurrence start at or before
// now; a malformed high-frequency rule (e.g. SECONDLY over a multi-year
// span) fails closed (window treated as inactive) rather than iterating
// unbounded.
const maxRRuleOccurrences = 10000

// windowActive reports whether w currently covers monitor at now.
func windowActive(w *v1alpha1.MaintenanceWindow, monitor *v1alpha1.Monitor, now time.Time) bool {
	if w.Spec.Enabled != nil && !*w.Spec.Enabled {
		return false
	}
	if !selector.Matches(&w.Spec.Match, monitor) {
		return false
	}

	sched := w.Spec.Schedule
	duration := sched.End.Time.Sub(sched.Start.Time)
	if duration <= 0 {
		return false
	}

	if sched.Recurrence.RRule == "" {
		return !now.Before(sched.Start.Time) && !now.After(sched.End.Time)
	}

	occurrenceStart, ok := lastOccurrenceAtOrBefore(sched.Start.Time, sched.Recurrence.RRule, now)
	if !ok {
		return false
	}
	return !now.After(occurrenceStart.Add(duration))
}

// lastOccurrenceAtOrBefore parses rruleStr anchored at dtstart and returns
// the latest occurrence start at or before now.
func lastOccurrenceAtOrBefore(dtstart time.Time, rruleStr string, now time.Time) (time.Time, bool) {
	if now.Before(dtstart) {
		return time.Time{}, false
	}

	option, err := rrule.StrToROption(rruleStr)
	if err != nil {
		return time.Time{}, false
	}
	option.Dtstart = dtstart
	if option.Count == 0 {
		option.Count = maxRRuleOccurrences
	}

	rule, err := rrule.NewRRule(*option)
	if err != nil {
		return time.Time{}, false
	}

	occurrence := rule.Before(now, true)
	if occurrence.IsZero() {
		return time.Time{}, false
	}
	return occurrence, true
}
