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

package scheduler

import (
	"hash/fnv"
	"time"
)

// Jitter computes the deterministic per-job jitter duration applied on every
// reschedule: jitter = (hash(namespace, name) mod (2J+1) - J) * intervalSec / 100,
// where J is jitterPercent. Deterministic in (namespace, name) so the same
// job always lands at the same offset within its window, which is what lets
// the driver rederive schedule phase after a restart without a persisted
// nextRunAt (see DESIGN.md's "scheduler phase across restarts" decision).
func Jitter(namespace, name string, intervalSec int32, jitterPercent int32) time.Duration {
	if jitterPercent <= 0 || intervalSec <= 0 {
		return 0
	}
	h := fnv.New64a()
	_, _ = h.Write([]byte(namespace))
	_, _ = h.Write([]byte{0})
	_, _ = h.Write([]byte(name))
	sum := h.Sum64()

	span := int64(2*jitterPercent + 1)
	offset := int64(sum%uint64(span)) - int64(jitterPercent)

	// offset is a signed percentage point in [-J, J]; convert to a
	// fraction of intervalSec, scaled in nanoseconds to preserve precision
	// for small intervals.
	intervalNs := int64(intervalSec) * int64(time.Second)
	jitterNs := intervalNs * offset / 100
	return time.Duration(jitterNs)
}

// NextRunAt computes the next scheduled instant for a job given the last run
// time (or now, for initial scheduling).
func NextRunAt(from time.Time, namespace, name string, intervalSec int32, jitterPercent int32) time.Time {
	base := from.Add(time.Duration(intervalSec) * time.Second)
	return base.Add(Jitter(namespace, name, intervalSec, jitterPercent))
}
