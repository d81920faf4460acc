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
	"context"
	"sync"
	"time"

	"sigs.k8s.io/controller-runtime/pkg/log"

	"github.com/yuptime-io/yuptime-operator/api/v1alpha1"
	"github.com/yuptime-io/yuptime-operator/internal/probe"
)

// MonitorLookup resolves a job's namespace/name to its current Monitor spec,
// or ok=false if it no longer exists (a missing monitor at dispatch time is
// a soft skip, not an error).
type MonitorLookup func(namespace, name string) (*v1alpha1.Monitor, bool)

// ResultHandler is invoked with every completed probe's outcome. The driver
// itself has no opinion on incidents/alerts/persistence; it just dispatches
// and reschedules. Errors returned by the executor are reported as a down
// result with reason "executor_error" before being handed to the handler.
type ResultHandler func(ctx context.Context, namespace, name string, result probe.Result)

// Driver is the singleton, leased probe scheduler loop: pop the due head,
// acquire a concurrency-budget slot, dispatch asynchronously, synchronously
// recompute nextRunAt and reinsert. Exactly one replica drives the queue
// cluster-wide; other replicas keep Registry/Queue warm but idle pending a
// lease transition (see LeaseBackend).
type Driver struct {
	Registry  *Registry
	Queue     *Queue
	Lease     LeaseBackend
	Executors *probe.Registry
	Lookup    MonitorLookup
	OnResult  ResultHandler

	// MaxConcurrentNet/PrivChecks size the two counting semaphores that
	// bound in-flight probes of each concurrency class.
	MaxConcurrentNetChecks  int
	MaxConcurrentPrivChecks int

	// PollTick bounds the idle wait when the queue is empty or its head
	// isn't due yet.
	PollTick time.Duration

	// ShutdownGrace bounds how long Start waits for in-flight probes to
	// finish once ctx is cancelled, before returning.
	ShutdownGrace time.Duration

	initOnce sync.Once
	netSem   chan struct{}
	privSem  chan struct{}
	inFlight sync.WaitGroup
}

// driverLogger is the minimal subset of logr.Logger the driver needs; kept
// as a local interface so the loop/dispatch/execute helpers don't each
// repeat the full logr type.
type driverLogger interface {
	Info(msg string, keysAndValues ...any)
	Error(err error, msg string, keysAndValues ...any)
}

func (d *Driver) init() {
	d.initOnce.Do(func() {
		if d.MaxConcurrentNetChecks <= 0 {
			d.MaxConcurrentNetChecks = 50
		}
		if d.MaxConcurrentPrivChecks <= 0 {
			d.MaxConcurrentPrivChecks = 10
		}
		if d.PollTick <= 0 {
			d.PollTick = 100 * time.Millisecond
		}
		if d.ShutdownGrace <= 0 {
			d.ShutdownGrace = 10 * time.Second
		}
		d.netSem = make(chan struct{}, d.MaxConcurrentNetChecks)
		d.privSem = make(chan struct{}, d.MaxConcurrentPrivChecks)
	})
}

// Start implements manager.Runnable. It blocks until ctx is cancelled,
// running the driver loop only while this replica holds the lease.
func (d *Driver) Start(ctx context.Context) error {
	d.init()
	logger := log.FromContext(ctx).WithName("scheduler-driver")

	d.Lease.Run(ctx,
		func(leaseCtx context.Context) {
			logger.Info("acquired scheduler lease, driving queue")
			d.loop(leaseCtx, logger)
		},
		func() {
			logger.Info("lost scheduler lease, idling")
		},
	)

	waitCh := make(chan struct{})
	go func() {
		d.inFlight.Wait()
		close(waitCh)
	}()
	select {
	case <-waitCh:
	case <-time.After(d.ShutdownGrace):
		logger.Info("shutdown grace period elapsed with probes still in flight")
	}
	return nil
}

func (d *Driver) loop(ctx context.Context, logger driverLogger) {
	for {
		select {
		case <-ctx.Done():
			return
		default:
		}

		job, ok := d.Queue.Peek()
		if !ok {
			d.sleep(ctx, d.PollTick)
			continue
		}

		now := time.Now()
		if job.NextRunAt.After(now) {
			wait := job.NextRunAt.Sub(now)
			if wait > d.PollTick {
				wait = d.PollTick
			}
			d.sleep(ctx, wait)
			continue
		}

		job, ok = d.Queue.Pop()
		if !ok {
			continue
		}
		d.dispatch(ctx, job, logger)
	}
}

func (d *Driver) sleep(ctx context.Context, dur time.Duration) {
	t := time.NewTimer(dur)
	defer t.Stop()
	select {
	case <-ctx.Done():
	case <-t.C:
	}
}

func (d *Driver) dispatch(ctx context.Context, job *Job, logger driverLogger) {
	sem := d.netSem
	if job.Class == ClassPriv {
		sem = d.privSem
	}

	select {
	case sem <- struct{}{}:
	case <-ctx.Done():
		// Put the job back so it isn't lost if leadership flips right at
		// shutdown; the next holder will pick it up.
		d.Queue.Add(job)
		return
	}

	d.inFlight.Add(1)
	go func() {
		defer d.inFlight.Done()
		defer func() { <-sem }()
		d.execute(ctx, job, logger)
	}()

	next := NextRunAt(time.Now(), job.Namespace, job.Name, job.IntervalSec, job.JitterPercent)
	job.NextRunAt = next
	d.Queue.Add(job)
}

func (d *Driver) execute(ctx context.Context, job *Job, logger driverLogger) {
	monitor, ok := d.Lookup(job.Namespace, job.Name)
	if !ok {
		logger.Info("monitor not found at dispatch time, skipping", "namespace", job.Namespace, "name", job.Name)
		return
	}

	executor, ok := d.Executors.For(monitor.Spec.Type)
	if !ok {
		logger.Info("no executor registered for probe type", "type", monitor.Spec.Type)
		return
	}

	timeout := time.Duration(job.TimeoutSec) * time.Second
	result, err := executor.Execute(ctx, monitor, timeout)
	if err != nil {
		result = probe.Result{State: probe.StateDown, Reason: "executor_error", Message: err.Error()}
	}

	if d.OnResult != nil {
		d.OnResult(ctx, job.Namespace, job.Name, result)
	}
}
