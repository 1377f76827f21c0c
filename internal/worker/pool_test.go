package worker

import (
	"context"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aldermoor/villageforge/internal/concurrency"
	"github.com/aldermoor/villageforge/internal/domain"
	"github.com/aldermoor/villageforge/internal/repository"
)

type countJob struct {
	executed *int32
}

func (j *countJob) Process(ctx context.Context) error {
	atomic.AddInt32(j.executed, 1)
	return nil
}

func TestPool(t *testing.T) {
	var executed int32
	pool := NewPool(2, 10)
	pool.Start()

	job := &countJob{executed: &executed}
	pool.Enqueue(job)
	pool.Enqueue(job)

	assert.Eventually(t, func() bool {
		return atomic.LoadInt32(&executed) == 2
	}, time.Second, 5*time.Millisecond)

	pool.Stop()
}

func TestPool_TryEnqueue(t *testing.T) {
	var executed int32
	pool := NewPool(1, 1)
	// Not started: the queue holds exactly one job.

	job := &countJob{executed: &executed}
	assert.True(t, pool.TryEnqueue(job))
	assert.False(t, pool.TryEnqueue(job), "full queue should drop the job")
}

func TestTradeResetWorker_ResetAll(t *testing.T) {
	store := repository.NewMemory()
	ctx := context.Background()

	village := &domain.Village{
		ID:   "v1",
		Name: "Aldermoor",
		TradeRoutes: []domain.TradeRoute{
			{ID: "route-1", TradesThisMonth: 3},
			{ID: "route-2", TradesThisMonth: 0},
			{ID: "route-3", TradesThisMonth: 1},
		},
	}
	require.NoError(t, store.SaveVillage(ctx, village))

	w := NewTradeResetWorker(store, concurrency.NewLockManager())
	affected, err := w.ResetAll(ctx)
	require.NoError(t, err)
	assert.Equal(t, 2, affected)

	reloaded, err := store.GetVillage(ctx, "v1")
	require.NoError(t, err)
	for _, route := range reloaded.TradeRoutes {
		assert.Zero(t, route.TradesThisMonth)
	}
}

func TestTimeUntilNextMonthReset(t *testing.T) {
	d := timeUntilNextMonthReset()
	assert.Greater(t, d, time.Duration(0))
	assert.LessOrEqual(t, d, 32*24*time.Hour)
}
