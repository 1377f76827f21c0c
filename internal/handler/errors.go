package handler

// Generic HTTP error messages for client responses.
// These messages intentionally do not expose internal error details.
// Both handlers and tests should reference these constants to maintain consistency.
const (
	// HTTP status messages
	ErrMsgMethodNotAllowed      = "Method not allowed"
	ErrMsgInvalidRequest        = "Invalid request body"
	ErrMsgInvalidRequestSummary = "Invalid request"

	// Query parameter error messages
	ErrMsgMissingQueryParam = "Missing %s query parameter"

	// Village operation error messages
	ErrMsgCreateVillageFailed = "Failed to create village"
	ErrMsgGetVillageFailed    = "Failed to get village"
	ErrMsgListVillagesFailed  = "Failed to list villages"
	ErrMsgDeleteVillageFailed = "Failed to delete village"

	// Simulation operation error messages
	ErrMsgTickFailed         = "Failed to advance simulation"
	ErrMsgSubmitActionFailed = "Failed to submit action"

	// Report operation error messages
	ErrMsgGetHistoryFailed      = "Failed to retrieve event history"
	ErrMsgGetCrisesFailed       = "Failed to retrieve crises"
	ErrMsgGetTradeOppsFailed    = "Failed to retrieve trade opportunities"
	ErrMsgGetOptimizationFailed = "Failed to compute distribution plan"

	// Parameter validation error messages
	ErrMsgInvalidLimit      = "Invalid limit parameter"
	ErrMsgInvalidDeltaHours = "Invalid delta_hours parameter"
)

// Success messages for API responses
const (
	MsgVillageCreatedSuccess = "Village founded successfully"
	MsgVillageDeletedSuccess = "Village deleted successfully"
	MsgActionAcceptedSuccess = "Action applied successfully"
)
