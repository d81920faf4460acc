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
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestQueuePopOrder(t *testing.T) {
	q := NewQueue()
	now := time.Now()
	q.Add(&Job{ID: "b", NextRunAt: now.Add(2 * time.Second)})
	q.Add(&Job{ID: "a", NextRunAt: now.Add(1 * time.Second)})
	q.Add(&Job{ID: "c", NextRunAt: now.Add(3 * time.Second)})

	var order []string
	for q.Len() > 0 {
		j, ok := q.Pop()
		require.True(t, ok)
		order = append(order, j.ID)
	}
	assert.Equal(t, []string{"a", "b", "c"}, order)
}

func TestQueueTieBreakByID(t *testing.T) {
	q := NewQueue()
	same := time.Now()
	q.Add(&Job{ID: "z", NextRunAt: same})
	q.Add(&Job{ID: "a", NextRunAt: same})

	j, ok := q.Pop()
	require.True(t, ok)
	assert.Equal(t, "a", j.ID)
}

func TestQueueUpdateResifts(t *testing.T) {
	q := NewQueue()
	now := time.Now()
	q.Add(&Job{ID: "a", NextRunAt: now.Add(5 * time.Second)})
	q.Add(&Job{ID: "b", NextRunAt: now.Add(1 * time.Second)})

	q.Update(&Job{ID: "a", NextRunAt: now.Add(0 * time.Second)})

	j, ok := q.Peek()
	require.True(t, ok)
	assert.Equal(t, "a", j.ID)
}

func TestQueueRemove(t *testing.T) {
	q := NewQueue()
	q.Add(&Job{ID: "a", NextRunAt: time.Now()})
	q.Add(&Job{ID: "b", NextRunAt: time.Now().Add(time.Second)})

	q.Remove("a")
	assert.False(t, q.Contains("a"))
	assert.Equal(t, 1, q.Len())

	j, ok := q.Pop()
	require.True(t, ok)
	assert.Equal(t, "b", j.ID)
}

func TestQueueEmptyPeekPop(t *testing.T) {
	q := NewQueue()
	_, ok := q.Peek()
	assert.False(t, ok)
	_, ok = q.Pop()
	assert.False(t, ok)
}
