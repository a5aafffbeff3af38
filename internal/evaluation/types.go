package evaluation

import "fmt"

// InteractionType selects the scoring strategy for an interaction.
type InteractionType string

const (
	TypeMatching     InteractionType = "matching"
	TypeFillInBlank  InteractionType = "fill_in_blank"
	TypeSequencing   InteractionType = "sequencing"
	TypeDiagramBuild InteractionType = "diagram_build"
	TypeBranching    InteractionType = "branching"
)

// Element is a draggable item or drop target inside an interaction.
type Element struct {
	ID        string `json:"id"`
	Label     string `json:"label,omitempty"`
	Draggable bool   `json:"draggable"`
	Capacity  int    `json:"capacity,omitempty"` // max items a zone holds; 0 = unlimited
}

// Connection is a directed edge between two elements (branching interactions).
type Connection struct {
	From string `json:"from"`
	To   string `json:"to"`
}

// CorrectState defines the target configuration for an interaction.
// Exactly one of ZoneContents, Sequence, Connections should be populated,
// matching the interaction type; the scorer reads only the field its
// strategy cares about and treats an empty one as trivially satisfied.
type CorrectState struct {
	ZoneContents map[string][]string `json:"zone_contents,omitempty"`
	Sequence     []string            `json:"sequence,omitempty"`
	Connections  []Connection        `json:"connections,omitempty"`

	// MinCorrectPercentage is the pass threshold applied to the score, in [0,1].
	MinCorrectPercentage float64 `json:"min_correct_percentage"`
}

// Interaction is a sandbox exercise definition, authored upstream.
type Interaction struct {
	ID            string          `json:"id"`
	ConceptID     string          `json:"concept_id"`
	Type          InteractionType `json:"type"`
	Elements      []Element       `json:"elements,omitempty"`
	CorrectState  CorrectState    `json:"correct_state"`
	Instructions  string          `json:"instructions,omitempty"`
	Hints         []string        `json:"hints,omitempty"`
	ScaffoldLevel string          `json:"scaffold_level,omitempty"` // worked|partial|faded; passed through, not evaluated
}

// UserState is the learner's final canvas state for one submission.
// Mirror shape of CorrectState, minus the threshold.
type UserState struct {
	ZoneContents map[string][]string `json:"zone_contents,omitempty"`
	Sequence     []string            `json:"sequence,omitempty"`
	Connections  []Connection        `json:"connections,omitempty"`
}

// ElementResult is a per-element verdict, used by the UI for highlighting.
type ElementResult struct {
	ElementID    string `json:"element_id"`
	Correct      bool   `json:"correct"`
	ExpectedZone string `json:"expected_zone,omitempty"`
	ActualZone   string `json:"actual_zone,omitempty"`
}

// Result is the outcome of evaluating a single submission.
type Result struct {
	InteractionID    string          `json:"interaction_id"`
	ConceptID        string          `json:"concept_id"`
	Score            float64         `json:"score"`
	Passed           bool            `json:"passed"`
	AttemptCount     int             `json:"attempt_count"`
	HintsUsed        int             `json:"hints_used"`
	TimeToCompleteMs int64           `json:"time_to_complete_ms"`
	Feedback         FeedbackBand    `json:"feedback"`
	ElementResults   []ElementResult `json:"element_results,omitempty"`
}

// Validate checks an interaction at the authoring boundary. Scoring itself
// never validates; malformed correct state degrades to auto-pass there.
func (in Interaction) Validate() error {
	if in.ID == "" {
		return fmt.Errorf("interaction id required")
	}
	switch in.Type {
	case TypeMatching, TypeFillInBlank, TypeSequencing, TypeDiagramBuild, TypeBranching:
	default:
		return fmt.Errorf("unknown interaction type %q", in.Type)
	}
	if p := in.CorrectState.MinCorrectPercentage; p < 0 || p > 1 {
		return fmt.Errorf("min_correct_percentage %v outside [0,1]", p)
	}
	// Reject correct-state fields that belong to a different type; a missing
	// own field is allowed (trivially-satisfied interaction).
	cs := in.CorrectState
	switch in.Type {
	case TypeSequencing:
		if len(cs.ZoneContents) > 0 || len(cs.Connections) > 0 {
			return fmt.Errorf("sequencing interaction with non-sequence correct state")
		}
	case TypeBranching:
		if len(cs.ZoneContents) > 0 || len(cs.Sequence) > 0 {
			return fmt.Errorf("branching interaction with non-connection correct state")
		}
	default:
		if len(cs.Sequence) > 0 || len(cs.Connections) > 0 {
			return fmt.Errorf("%s interaction with non-zone correct state", in.Type)
		}
	}
	return nil
}
