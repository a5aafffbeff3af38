package evaluation

import "time"

// Outcome is a raw score plus per-element breakdown, before pass/feedback
// composition.
type Outcome struct {
	Score          float64
	ElementResults []ElementResult
}

// Strategy scores one user state against one correct state.
type Strategy interface {
	Score(user UserState, correct CorrectState) Outcome
}

// Engine options

type Option func(*config)

type config struct {
	ElementTime    time.Duration // baseline cost per draggable element
	WordsPerSecond float64       // baseline reading speed
	MaxAttempts    int           // attempts beyond this signal retrieval failure
	MaxHints       int           // hints beyond this signal high friction
	HardTimeRatio  float64       // elapsed/baseline above this is Hard
	EasyTimeRatio  float64       // elapsed/baseline below this is Easy
	GoodTimeRatio  float64       // upper bound of the desirable-difficulty band
}

func WithElementTime(d time.Duration) Option { return func(c *config) { c.ElementTime = d } }
func WithWordsPerSecond(w float64) Option    { return func(c *config) { c.WordsPerSecond = w } }
func WithMaxAttempts(n int) Option           { return func(c *config) { c.MaxAttempts = n } }

// Evaluator routes by interaction type to the correct Strategy and applies
// the pass threshold, feedback classification, and friction rating on top.
// It is stateless after construction and safe for concurrent use.
type Evaluator struct {
	cfg        config
	strategies map[InteractionType]Strategy
}

// New installs the built-in strategies with default tuning.
func New(opts ...Option) *Evaluator {
	cfg := config{
		ElementTime:    3500 * time.Millisecond,
		WordsPerSecond: 3,
		MaxAttempts:    3,
		MaxHints:       1,
		HardTimeRatio:  2.0,
		EasyTimeRatio:  0.8,
		GoodTimeRatio:  1.5,
	}
	for _, o := range opts {
		o(&cfg)
	}
	return &Evaluator{
		cfg: cfg,
		strategies: map[InteractionType]Strategy{
			TypeMatching:     zoneStrategy{},
			TypeFillInBlank:  zoneStrategy{},
			TypeDiagramBuild: zoneStrategy{},
			TypeSequencing:   sequenceStrategy{},
			TypeBranching:    connectionStrategy{},
		},
	}
}

// ScoreState runs the matching strategy for the interaction type. An unknown
// type scores 1 with no element results, same as an empty correct state.
func (e *Evaluator) ScoreState(t InteractionType, user UserState, correct CorrectState) Outcome {
	s, ok := e.strategies[t]
	if !ok {
		return Outcome{Score: 1}
	}
	return s.Score(user, correct)
}

// Evaluate scores a submission and assembles the full result record.
// Telemetry (attempts, hints, elapsed) is measured by the caller; this
// function never fails for well-formed inputs.
func (e *Evaluator) Evaluate(in Interaction, user UserState, attemptCount, hintsUsed int, elapsed time.Duration) Result {
	out := e.ScoreState(in.Type, user, in.CorrectState)
	passed := out.Score >= in.CorrectState.MinCorrectPercentage
	return Result{
		InteractionID:    in.ID,
		ConceptID:        in.ConceptID,
		Score:            out.Score,
		Passed:           passed,
		AttemptCount:     attemptCount,
		HintsUsed:        hintsUsed,
		TimeToCompleteMs: elapsed.Milliseconds(),
		Feedback:         e.classifyFeedback(out.Score, passed, attemptCount, hintsUsed),
		ElementResults:   out.ElementResults,
	}
}
