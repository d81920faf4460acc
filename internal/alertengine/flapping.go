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
	"context"
	"time"

	"k8s.io/apimachinery/pkg/types"

	"github.com/yuptime-io/yuptime-operator/internal/config"
	"github.com/yuptime-io/yuptime-operator/internal/store"
)

// flappingLookback bounds how far back DetectFlapping searches for a
// monitor's recent heartbeats. Any monitor whose schedule can't produce
// cfg.WindowSize heartbeats inside a day is too slow-probing to usefully
// classify as flapping anyway.
const flappingLookback = 24 * time.Hour

// DetectFlapping reports whether a monitor's most recent heartbeats contain
// at least cfg.MinTransitions state changes within the trailing
// cfg.WindowSize heartbeats.
func DetectFlapping(ctx context.Context, st store.Store, monitor types.NamespacedName, cfg config.FlappingConfig) (bool, error) {
	if cfg.WindowSize <= 0 || cfg.MinTransitions <= 0 {
		return false, nil
	}

	heartbeats, err := st.GetHeartbeats(ctx, monitor, time.Now().Add(-flappingLookback))
	if err != nil {
		return false, err
	}
	if len(heartbeats) > cfg.WindowSize {
		heartbeats = heartbeats[:cfg.WindowSize]
	}
	if len(heartbeats) < 2 {
		return false, nil
	}

	transitions := 0
	for i := 0; i+1 < len(heartbeats); i++ {
		if heartbeats[i].State != heartbeats[i+1].State {
			transitions++
		}
	}
	return transitions >= cfg.MinTransitions, nil
}
