// Package scheduler drives the simulation clock: on every interval it fans
// one tick job per village out to the worker pool.
package scheduler

import (
	"context"
	"sync"
	"time"

	"github.com/aldermoor/villageforge/internal/logger"
	"github.com/aldermoor/villageforge/internal/simulation"
	"github.com/aldermoor/villageforge/internal/worker"
)

// Scheduler manages scheduled jobs
type Scheduler struct {
	workerPool *worker.Pool
	quit       chan struct{}
	wg         sync.WaitGroup
}

// New creates a new scheduler
func New(pool *worker.Pool) *Scheduler {
	return &Scheduler{
		workerPool: pool,
		quit:       make(chan struct{}),
	}
}

// Schedule registers a job to run at a fixed interval. Enqueueing is
// non-blocking: when the pool's queue is full the run is skipped and the
// next interval tries again.
func (s *Scheduler) Schedule(interval time.Duration, job worker.Job) {
	s.wg.Add(1)
	go func() {
		defer s.wg.Done()
		ticker := time.NewTicker(interval)
		defer ticker.Stop()

		for {
			select {
			case <-ticker.C:
				s.workerPool.TryEnqueue(job)
			case <-s.quit:
				return
			}
		}
	}()
}

// ScheduleVillageTicks enqueues one tick job per known village on every
// interval. deltaHours is the simulated time each tick advances.
func (s *Scheduler) ScheduleVillageTicks(interval time.Duration, sim simulation.Service, deltaHours float64) {
	s.Schedule(interval, worker.JobFunc(func(ctx context.Context) error {
		ids, err := sim.ListVillages(ctx)
		if err != nil {
			return err
		}
		for _, id := range ids {
			job := &worker.TickJob{Sim: sim, VillageID: id, DeltaHours: deltaHours}
			if !s.workerPool.TryEnqueue(job) {
				logger.FromContext(ctx).Warn("tick queue full, village skipped this pass",
					"village_id", id)
			}
		}
		return nil
	}))
}

// Stop stops all scheduled jobs
func (s *Scheduler) Stop() {
	close(s.quit)
	s.wg.Wait()
}
