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
	"container/heap"
	"sync"
)

// item is one heap slot. index is maintained by heap.Interface's Swap so
// Remove/Update can locate an entry by job ID in O(1) instead of scanning.
type item struct {
	job   *Job
	index int
}

// innerHeap implements container/heap.Interface, ordered by NextRunAt with
// ties broken by job ID for a deterministic pop order.
type innerHeap []*item

func (h innerHeap) Len() int { return len(h) }

func (h innerHeap) Less(i, j int) bool {
	if h[i].job.NextRunAt.Equal(h[j].job.NextRunAt) {
		return h[i].job.ID < h[j].job.ID
	}
	return h[i].job.NextRunAt.Before(h[j].job.NextRunAt)
}

func (h innerHeap) Swap(i, j int) {
	h[i], h[j] = h[j], h[i]
	h[i].index = i
	h[j].index = j
}

func (h *innerHeap) Push(x any) {
	it := x.(*item)
	it.index = len(*h)
	*h = append(*h, it)
}

func (h *innerHeap) Pop() any {
	old := *h
	n := len(old)
	it := old[n-1]
	old[n-1] = nil
	it.index = -1
	*h = old[:n-1]
	return it
}

// Queue is a min-heap of Jobs keyed on NextRunAt, with O(1) lookup by job ID
// for Remove/Update. Safe for concurrent use.
type Queue struct {
	mu    sync.Mutex
	heap  innerHeap
	index map[string]*item
}

// NewQueue builds an empty priority queue.
func NewQueue() *Queue {
	return &Queue{index: make(map[string]*item)}
}

// Add inserts a new job. If a job with the same ID is already queued, Add
// replaces it (equivalent to Update).
func (q *Queue) Add(j *Job) {
	q.mu.Lock()
	defer q.mu.Unlock()
	q.upsertLocked(j)
}

// Update replaces the queued job for j.ID, re-sifting its heap position.
// A no-op-turned-insert if the job wasn't already queued, so callers don't
// need to special-case first scheduling.
func (q *Queue) Update(j *Job) {
	q.mu.Lock()
	defer q.mu.Unlock()
	q.upsertLocked(j)
}

func (q *Queue) upsertLocked(j *Job) {
	if it, ok := q.index[j.ID]; ok {
		it.job = j
		heap.Fix(&q.heap, it.index)
		return
	}
	it := &item{job: j}
	heap.Push(&q.heap, it)
	q.index[j.ID] = it
}

// Remove drops the job with the given ID, if present.
func (q *Queue) Remove(id string) {
	q.mu.Lock()
	defer q.mu.Unlock()
	it, ok := q.index[id]
	if !ok {
		return
	}
	heap.Remove(&q.heap, it.index)
	delete(q.index, id)
}

// Peek returns the earliest-due job without removing it.
func (q *Queue) Peek() (*Job, bool) {
	q.mu.Lock()
	defer q.mu.Unlock()
	if len(q.heap) == 0 {
		return nil, false
	}
	return q.heap[0].job, true
}

// Pop removes and returns the earliest-due job.
func (q *Queue) Pop() (*Job, bool) {
	q.mu.Lock()
	defer q.mu.Unlock()
	if len(q.heap) == 0 {
		return nil, false
	}
	it := heap.Pop(&q.heap).(*item)
	delete(q.index, it.job.ID)
	return it.job, true
}

// Len returns the number of queued jobs.
func (q *Queue) Len() int {
	q.mu.Lock()
	defer q.mu.Unlock()
	return len(q.heap)
}

// Contains reports whether a job with the given ID is currently queued.
func (q *Queue) Contains(id string) bool {
	q.mu.Lock()
	defer q.mu.Unlock()
	_, ok := q.index[id]
	return ok
}
