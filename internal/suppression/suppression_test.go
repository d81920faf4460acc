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
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	metav1 "k8s.io/apimachinery/pkg/apis/meta/v1"

	"github.com/yuptime-io/yuptime-operator/api/v1alpha1"
	"github.com/yuptime-io/yuptime-operator/internal/cache"
)

func testMonitor() *v1alpha1.Monitor {
	return &v1alpha1.Monitor{
		ObjectMeta: metav1.ObjectMeta{Namespace: "default", Name: "api"},
	}
}

func TestSilenceActive_BeforeExpiry(t *testing.T) {
	now := time.Now()
	sil := &v1alpha1.Silence{
		Spec: v1alpha1.SilenceSpec{
			ExpiresAt: metav1.NewTime(now.Add(time.Hour)),
			Match:     v1alpha1.Selector{MatchNames: []string{"api"}},
		},
	}
	assert.True(t, silenceActive(sil, testMonitor(), now))
}

func TestSilenceActive_AfterExpiry(t *testing.T) {
	now := time.Now()
	sil := &v1alpha1.Silence{
		Spec: v1alpha1.SilenceSpec{
			ExpiresAt: metav1.NewTime(now.Add(-time.Hour)),
			Match:     v1alpha1.Selector{MatchNames: []string{"api"}},
		},
	}
	assert.False(t, silenceActive(sil, testMonitor(), now))
}

func TestSilenceActive_SelectorMismatch(t *testing.T) {
	now := time.Now()
	sil := &v1alpha1.Silence{
		Spec: v1alpha1.SilenceSpec{
			ExpiresAt: metav1.NewTime(now.Add(time.Hour)),
			Match:     v1alpha1.Selector{MatchNames: []string{"web"}},
		},
	}
	assert.False(t, silenceActive(sil, testMonitor(), now))
}

func TestWindowActive_NonRecurringWithinRange(t *testing.T) {
	now := time.Now()
	win := &v1alpha1.MaintenanceWindow{
		Spec: v1alpha1.MaintenanceWindowSpec{
			Schedule: v1alpha1.WindowScheduleSpec{
				Start: metav1.NewTime(now.Add(-time.Hour)),
				End:   metav1.NewTime(now.Add(time.Hour)),
			},
			Match: v1alpha1.Selector{MatchNames: []string{"api"}},
		},
	}
	assert.True(t, windowActive(win, testMonitor(), now))
}

func TestWindowActive_NonRecurringOutsideRange(t *testing.T) {
	now := time.Now()
	win := &v1alpha1.MaintenanceWindow{
		Spec: v1alpha1.MaintenanceWindowSpec{
			Schedule: v1alpha1.WindowScheduleSpec{
				Start: metav1.NewTime(now.Add(-2 * time.Hour)),
				End:   metav1.NewTime(now.Add(-time.Hour)),
			},
			Match: v1alpha1.Selector{MatchNames: []string{"api"}},
		},
	}
	assert.False(t, windowActive(win, testMonitor(), now))
}

func TestWindowActive_Disabled(t *testing.T) {
	now := time.Now()
	disabled := false
	win := &v1alpha1.MaintenanceWindow{
		Spec: v1alpha1.MaintenanceWindowSpec{
			Enabled: &disabled,
			Schedule: v1alpha1.WindowScheduleSpec{
				Start: metav1.NewTime(now.Add(-time.Hour)),
				End:   metav1.NewTime(now.Add(time.Hour)),
			},
			Match: v1alpha1.Selector{MatchNames: []string{"api"}},
		},
	}
	assert.False(t, windowActive(win, testMonitor(), now))
}

func TestWindowActive_WeeklyRRuleRecurs(t *testing.T) {
	now := time.Now()
	// a 1-hour window starting a week ago, recurring weekly; "now" should
	// fall inside this week's occurrence.
	anchorStart := now.Truncate(time.Hour).AddDate(0, 0, -7)
	win := &v1alpha1.MaintenanceWindow{
		Spec: v1alpha1.MaintenanceWindowSpec{
			Schedule: v1alpha1.WindowScheduleSpec{
				Start:      metav1.NewTime(anchorStart),
				End:        metav1.NewTime(anchorStart.Add(time.Hour)),
				Recurrence: v1alpha1.RecurrenceSpec{RRule: "FREQ=WEEKLY;INTERVAL=1"},
			},
			Match: v1alpha1.Selector{MatchNames: []string{"api"}},
		},
	}
	assert.True(t, windowActive(win, testMonitor(), now.Truncate(time.Hour)))
}

func TestWindowActive_WeeklyRRuleOutsideOccurrence(t *testing.T) {
	now := time.Now()
	anchorStart := now.Truncate(time.Hour).AddDate(0, 0, -7).Add(3 * time.Hour)
	win := &v1alpha1.MaintenanceWindow{
		Spec: v1alpha1.MaintenanceWindowSpec{
			Schedule: v1alpha1.WindowScheduleSpec{
				Start:      metav1.NewTime(anchorStart),
				End:        metav1.NewTime(anchorStart.Add(time.Hour)),
				Recurrence: v1alpha1.RecurrenceSpec{RRule: "FREQ=WEEKLY;INTERVAL=1"},
			},
			Match: v1alpha1.Selector{MatchNames: []string{"api"}},
		},
	}
	// "now" falls well outside the +3h..+4h weekly occurrence slice.
	assert.False(t, windowActive(win, testMonitor(), now.Truncate(time.Hour)))
}

func TestIndex_IsSuppressed_BySilence(t *testing.T) {
	c := cache.New("Silence", "MaintenanceWindow")
	now := time.Now()
	sil := &v1alpha1.Silence{
		ObjectMeta: metav1.ObjectMeta{Namespace: "default", Name: "incident-123"},
		Spec: v1alpha1.SilenceSpec{
			ExpiresAt: metav1.NewTime(now.Add(time.Hour)),
			Match:     v1alpha1.Selector{MatchNames: []string{"api"}},
		},
	}
	c.Upsert(cache.Key{Kind: "Silence", Namespace: "default", Name: "incident-123"}, sil, "1", 1)

	idx := New(c)
	suppressed, reason := idx.IsSuppressed(testMonitor(), now)
	require.True(t, suppressed)
	assert.Equal(t, "Silence", reason.Kind)
	assert.Equal(t, "incident-123", reason.Name)
}

func TestIndex_IsSuppressed_NoneActive(t *testing.T) {
	c := cache.New("Silence", "MaintenanceWindow")
	idx := New(c)
	suppressed, reason := idx.IsSuppressed(testMonitor(), time.Now())
	assert.False(t, suppressed)
	assert.Nil(t, reason)
}
