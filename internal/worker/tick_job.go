package worker

import (
	"context"
	"time"

	"github.com/aldermoor/villageforge/internal/logger"
	"github.com/aldermoor/villageforge/internal/metrics"
	"github.com/aldermoor/villageforge/internal/simulation"
)

// TickJob advances one village by DeltaHours. One job per village per
// scheduler pass; the simulation's per-village lock serializes overlapping
// runs.
type TickJob struct {
	Sim        simulation.Service
	VillageID  string
	DeltaHours float64
}

// Process runs the tick and records its latency.
func (j *TickJob) Process(ctx context.Context) error {
	log := logger.FromContext(ctx)
	log.Debug(LogMsgTickJobStarting, "village_id", j.VillageID, "delta_hours", j.DeltaHours)

	start := time.Now()
	_, err := j.Sim.Tick(ctx, j.VillageID, j.DeltaHours)
	metrics.TickDuration.Observe(time.Since(start).Seconds())

	if err != nil {
		log.Error(LogMsgTickJobFailed, "village_id", j.VillageID, "error", err)
		return err
	}
	return nil
}
