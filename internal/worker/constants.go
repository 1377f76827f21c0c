package worker

// ============================================================================
// Log Messages - Worker Pool
// ============================================================================

// LogMsgWorkerJobFailed is logged when a worker fails to process a job
const LogMsgWorkerJobFailed = "Worker job failed"

// ============================================================================
// Log Messages - Tick Jobs
// ============================================================================

// Log messages for tick job execution
const (
	LogMsgTickJobStarting = "Tick job starting"
	LogMsgTickJobFailed   = "Tick job failed"
)

// ============================================================================
// Log Messages - Monthly Trade Reset Worker
// ============================================================================

// Log messages for monthly trade reset operations
const (
	LogMsgTradeResetStarting  = "Monthly trade reset starting"
	LogMsgTradeResetCompleted = "Monthly trade reset completed"
	LogMsgTradeResetFailed    = "Monthly trade reset failed"
	LogMsgTradeResetStandby   = "Monthly trade reset in standby"
	LogMsgTradeResetApproach  = "Monthly trade reset scheduled"
)
