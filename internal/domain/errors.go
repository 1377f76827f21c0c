package domain

import "errors"

// Error message string constants - single source of truth for error messages
// Use these in assert.Contains() checks when testing error messages
const (
	ErrMsgVillageNotFound      = "village not found"
	ErrMsgEventNotFound        = "event not found"
	ErrMsgEventNotActive       = "event is not active"
	ErrMsgEventAlreadyResolved = "event already resolved"
	ErrMsgChoiceNotFound       = "choice not found"
	ErrMsgRouteNotFound        = "trade route not found"
	ErrMsgRouteInactive        = "trade route is inactive"
	ErrMsgInsufficientStock    = "insufficient stock"
	ErrMsgInsufficientFunds    = "insufficient funds"
	ErrMsgInsufficientStorage  = "insufficient storage"
	ErrMsgQualityBelowRequired = "quality below required"
	ErrMsgUnknownResource      = "unknown resource type"
	ErrMsgInvalidInput         = "invalid input"
	ErrMsgUnknownAction        = "unknown action"
	ErrMsgNarrativeUnavailable = "narrative service unavailable"
)

// Common domain errors
// These errors should be used consistently across all layers of the application.
// Wrap these errors with fmt.Errorf("%w: %s", domain.ErrXxx, details) for additional context.
var (
	ErrVillageNotFound      = errors.New(ErrMsgVillageNotFound)
	ErrEventNotFound        = errors.New(ErrMsgEventNotFound)
	ErrEventNotActive       = errors.New(ErrMsgEventNotActive)
	ErrEventAlreadyResolved = errors.New(ErrMsgEventAlreadyResolved)
	ErrChoiceNotFound       = errors.New(ErrMsgChoiceNotFound)
	ErrRouteNotFound        = errors.New(ErrMsgRouteNotFound)
	ErrRouteInactive        = errors.New(ErrMsgRouteInactive)
	ErrInsufficientStock    = errors.New(ErrMsgInsufficientStock)
	ErrInsufficientFunds    = errors.New(ErrMsgInsufficientFunds)
	ErrInsufficientStorage  = errors.New(ErrMsgInsufficientStorage)
	ErrQualityBelowRequired = errors.New(ErrMsgQualityBelowRequired)
	ErrUnknownResource      = errors.New(ErrMsgUnknownResource)
	ErrInvalidInput         = errors.New(ErrMsgInvalidInput)
	ErrUnknownAction        = errors.New(ErrMsgUnknownAction)
	ErrNarrativeUnavailable = errors.New(ErrMsgNarrativeUnavailable)
)
