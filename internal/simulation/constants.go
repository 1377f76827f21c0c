package simulation

// DefaultTickHours is the simulated time one tick advances when the caller
// does not say otherwise.
const DefaultTickHours = 24.0

// DefaultHistoryLimit bounds chronicle reads when the caller passes no limit.
const DefaultHistoryLimit = 50

// maxChainEvents bounds how many events one tick may process, counting
// chain reactions. Guards against a pathological catalog cycle.
const maxChainEvents = 32

// Starting aggregate values for a freshly founded village.
const (
	StartingHappiness  = 50.0
	StartingStability  = 50.0
	StartingProsperity = 50.0
	StartingDefense    = 50.0
)

// Log messages
const (
	LogMsgTickCompleted    = "tick completed"
	LogMsgVillageCreated   = "village created"
	LogMsgVillageDeleted   = "village deleted"
	LogMsgActionSubmitted  = "action submitted"
	LogMsgScheduledDropped = "scheduled event dropped"
)
