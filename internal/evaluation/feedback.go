package evaluation

// FeedbackBand classifies an outcome for messaging. The scoring core returns
// only the band; mapping bands to copy is a presentation concern kept in
// FeedbackText so the pure path stays free of locale/wording.
type FeedbackBand string

const (
	FeedbackPerfectFirstTry  FeedbackBand = "perfect_first_try"
	FeedbackPerfect          FeedbackBand = "perfect"
	FeedbackStrong           FeedbackBand = "strong"            // >= 0.8, passed
	FeedbackPassed           FeedbackBand = "passed"            // >= 0.5, passed
	FeedbackCloseMiss        FeedbackBand = "close_miss"        // >= 0.5, failed
	FeedbackLow              FeedbackBand = "low"               // < 0.5
	FeedbackAttemptsExceeded FeedbackBand = "attempts_exceeded"
)

func (e *Evaluator) classifyFeedback(score float64, passed bool, attemptCount, hintsUsed int) FeedbackBand {
	switch {
	case attemptCount > e.cfg.MaxAttempts:
		return FeedbackAttemptsExceeded
	case score >= 1 && attemptCount == 1 && hintsUsed == 0:
		return FeedbackPerfectFirstTry
	case score >= 1:
		return FeedbackPerfect
	case score >= 0.8 && passed:
		return FeedbackStrong
	case score >= 0.5 && passed:
		return FeedbackPassed
	case score >= 0.5:
		return FeedbackCloseMiss
	default:
		return FeedbackLow
	}
}

// FeedbackText maps a band to user-facing copy.
func FeedbackText(b FeedbackBand) string {
	switch b {
	case FeedbackPerfectFirstTry:
		return "Perfect on the first try, no hints needed. Excellent recall."
	case FeedbackPerfect:
		return "Everything in its place. Well done."
	case FeedbackStrong:
		return "Nearly all correct. Review the highlighted items."
	case FeedbackPassed:
		return "Passed, but several items were out of place. Worth another look."
	case FeedbackCloseMiss:
		return "Close, but not quite over the bar. Check the highlighted items and try again."
	case FeedbackAttemptsExceeded:
		return "Out of attempts. Revisit this concept before retrying."
	default:
		return "Most items were misplaced. Review the concept and try again."
	}
}
