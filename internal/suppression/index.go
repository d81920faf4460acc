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

	"github.com/yuptime-io/yuptime-operator/api/v1alpha1"
	"github.com/yuptime-io/yuptime-operator/internal/cache"
)

const (
	kindSilence           = "Silence"
	kindMaintenanceWindow = "MaintenanceWindow"
)

// Index answers suppression queries by reading Silence and
// MaintenanceWindow snapshots straight out of the resource cache. It holds
// no state of its own; a restart rebuilds it for free as soon as the cache
// is warm again.
type Index struct {
	Cache *cache.Cache
}

// New builds an Index backed by c.
func New(c *cache.Cache) *Index {
	return &Index{Cache: c}
}

// Reason describes why a monitor is currently suppressed.
type Reason struct {
	Kind      string // "Silence" or "MaintenanceWindow"
	Namespace string
	Name      string
}

// IsSuppressed reports whether monitor's alerts should be suppressed at
// now, and if so, the first matching silence or window found (silences are
// checked before windows; within a kind, cache iteration order is the
// deterministic namespace/name order ListByKind already provides).
func (idx *Index) IsSuppressed(monitor *v1alpha1.Monitor, now time.Time) (bool, *Reason) {
	for _, snap := range idx.Cache.ListByKind(kindSilence) {
		sil, ok := snap.Object.(*v1alpha1.Silence)
		if !ok {
			continue
		}
		if silenceActive(sil, monitor, now) {
			return true, &Reason{Kind: kindSilence, Namespace: sil.Namespace, Name: sil.Name}
		}
	}

	for _, snap := range idx.Cache.ListByKind(kindMaintenanceWindow) {
		win, ok := snap.Object.(*v1alpha1.MaintenanceWindow)
		if !ok {
			continue
		}
		if windowActive(win, monitor, now) {
			return true, &Reason{Kind: kindMaintenanceWindow, Namespace: win.Namespace, Name: win.Name}
		}
	}

	return false, nil
}
