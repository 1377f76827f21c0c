package worker

import (
	"context"
	"sync"
	"time"

	"github.com/aldermoor/villageforge/internal/concurrency"
	"github.com/aldermoor/villageforge/internal/logger"
	"github.com/aldermoor/villageforge/internal/repository"
)

// TradeResetWorker zeroes every trade route's monthly counter at the first
// midnight UTC of each month.
type TradeResetWorker struct {
	store    repository.Store
	locks    *concurrency.LockManager
	timer    *time.Timer
	shutdown chan struct{}
	wg       sync.WaitGroup
	mu       sync.Mutex
}

// NewTradeResetWorker creates a new TradeResetWorker
func NewTradeResetWorker(store repository.Store, locks *concurrency.LockManager) *TradeResetWorker {
	if locks == nil {
		locks = concurrency.NewLockManager()
	}
	return &TradeResetWorker{
		store:    store,
		locks:    locks,
		shutdown: make(chan struct{}),
	}
}

// Start initializes the worker and schedules the first reset
func (w *TradeResetWorker) Start() {
	w.scheduleNext()
}

// scheduleNext calculates the time until the next month boundary and arms
// the timer. Two-stage scheduling prevents tight-loop rescheduling when the
// timer fires early.
func (w *TradeResetWorker) scheduleNext() {
	duration := timeUntilNextMonthReset()
	log := logger.FromContext(context.Background())

	w.mu.Lock()
	if w.timer != nil {
		w.timer.Stop()
	}

	if duration > 1*time.Hour {
		// Standby: wake up 45 minutes before the boundary.
		waitDuration := duration - 45*time.Minute
		w.timer = time.AfterFunc(waitDuration, func() {
			w.scheduleNext()
		})
		w.mu.Unlock()

		log.Info(LogMsgTradeResetStandby, "next_check_at", time.Now().UTC().Add(waitDuration))
		return
	}

	// Final approach: schedule the actual reset.
	w.timer = time.AfterFunc(duration, func() {
		select {
		case <-w.shutdown:
			return
		default:
		}

		// If the timer triggered early, reschedule for the remaining time.
		rem := timeUntilNextMonthReset()
		if rem > 10*time.Second && rem < 27*24*time.Hour {
			w.scheduleNext()
			return
		}

		w.executeReset()
		w.scheduleNext()
	})
	w.mu.Unlock()

	log.Info(LogMsgTradeResetApproach, "next_reset_at", time.Now().UTC().Add(duration))
}

// executeReset performs the reset in a tracked goroutine
func (w *TradeResetWorker) executeReset() {
	w.wg.Add(1)
	go func() {
		defer w.wg.Done()

		ctx := context.Background()
		log := logger.FromContext(ctx)
		log.Info(LogMsgTradeResetStarting)

		affected, err := w.ResetAll(ctx)
		if err != nil {
			log.Error(LogMsgTradeResetFailed, "error", err)
			return
		}

		log.Info(LogMsgTradeResetCompleted, "routes_reset", affected)
	}()
}

// ResetAll zeroes TradesThisMonth on every route of every village, one
// village at a time under its writer lock. It returns the number of routes
// touched.
func (w *TradeResetWorker) ResetAll(ctx context.Context) (int, error) {
	ids, err := w.store.ListVillageIDs(ctx)
	if err != nil {
		return 0, err
	}

	total := 0
	for _, id := range ids {
		err := w.locks.WithLock(concurrency.VillageKey(id), func() error {
			village, err := w.store.GetVillage(ctx, id)
			if err != nil {
				return err
			}
			changed := false
			for i := range village.TradeRoutes {
				if village.TradeRoutes[i].TradesThisMonth != 0 {
					village.TradeRoutes[i].TradesThisMonth = 0
					changed = true
					total++
				}
			}
			if !changed {
				return nil
			}
			return w.store.SaveVillage(ctx, village)
		})
		if err != nil {
			return total, err
		}
	}
	return total, nil
}

// Shutdown cancels the pending timer and waits for an in-flight reset.
func (w *TradeResetWorker) Shutdown(ctx context.Context) error {
	log := logger.FromContext(ctx)
	log.Info("Shutting down trade reset worker")

	select {
	case <-w.shutdown:
	default:
		close(w.shutdown)
	}

	w.mu.Lock()
	if w.timer != nil {
		w.timer.Stop()
	}
	w.mu.Unlock()

	done := make(chan struct{})
	go func() {
		w.wg.Wait()
		close(done)
	}()

	select {
	case <-done:
		log.Info("Trade reset worker shutdown complete")
		return nil
	case <-ctx.Done():
		log.Warn("Trade reset worker shutdown timeout")
		return ctx.Err()
	}
}

// timeUntilNextMonthReset calculates the duration until the next first-of-
// month midnight UTC.
func timeUntilNextMonthReset() time.Duration {
	now := time.Now().UTC()
	next := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, time.UTC).AddDate(0, 1, 0)
	return next.Sub(now)
}
