package sandbox

import (
	"github.com/mind-engage/mindengage-sandbox/internal/evaluation"
)

// Attempt is one scored submission against an interaction. A new record is
// created for every submit; callers decide whether to keep all or only the
// latest.
type Attempt struct {
	ID               string                     `json:"id"`
	InteractionID    string                     `json:"interaction_id"`
	ConceptID        string                     `json:"concept_id"`
	UserID           string                     `json:"user_id"`
	UserState        evaluation.UserState       `json:"user_state"`
	Score            float64                    `json:"score"`
	Passed           bool                       `json:"passed"`
	AttemptCount     int                        `json:"attempt_count"`
	HintsUsed        int                        `json:"hints_used"`
	TimeToCompleteMs int64                      `json:"time_to_complete_ms"`
	Rating           evaluation.FSRSRating      `json:"rating"`
	Feedback         string                     `json:"feedback"`
	ElementResults   []evaluation.ElementResult `json:"element_results,omitempty"`
	CreatedAt        int64                      `json:"created_at,omitempty"`
}

// Submission is the learner-supplied half of an evaluation: final canvas
// state plus caller-measured telemetry.
type Submission struct {
	UserState        evaluation.UserState `json:"user_state"`
	AttemptCount     int                  `json:"attempt_count"`
	HintsUsed        int                  `json:"hints_used"`
	TimeToCompleteMs int64                `json:"time_to_complete_ms"`
}

// Redact strips the correct state from an interaction served to learners
// (parity with how answer keys are hidden elsewhere). The pass threshold is
// kept so the UI can show the bar to clear.
func Redact(in evaluation.Interaction) evaluation.Interaction {
	in.CorrectState.ZoneContents = nil
	in.CorrectState.Sequence = nil
	in.CorrectState.Connections = nil
	return in
}
