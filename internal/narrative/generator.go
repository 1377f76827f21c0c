// Package narrative talks to the content-generation collaborator that turns
// simulation state into prose for event descriptions, choice outcomes and
// chronicle entries. Generation is best-effort: callers always carry a
// deterministic fallback and must never surface a narrative failure to the
// player.
package narrative

import "context"

// Prompt kinds understood by the collaborator.
const (
	KindEventDescription = "event_description"
	KindChoiceOutcome    = "choice_outcome"
	KindChronicle        = "chronicle"
)

// Vars is the JSON-shaped context sent alongside a prompt kind.
type Vars map[string]any

// Generator produces one piece of narrative text for a prompt kind.
type Generator interface {
	Generate(ctx context.Context, kind string, vars Vars) (string, error)
}
