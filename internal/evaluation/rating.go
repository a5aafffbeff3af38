package evaluation

import "time"

// FSRSRating is the 1-4 difficulty signal consumed by the external
// spaced-repetition scheduler. This engine only derives the rating; it never
// computes a next-review date.
type FSRSRating int

const (
	// RatingAgain - failed outright, or needed too many attempts to pass.
	RatingAgain FSRSRating = iota + 1
	// RatingHard - passed, but at high cognitive cost (hints or time).
	RatingHard
	// RatingGood - passed inside the desirable-difficulty band.
	RatingGood
	// RatingEasy - passed fast with no assistance; too trivial at this interval.
	RatingEasy
)

func (r FSRSRating) String() string {
	switch r {
	case RatingAgain:
		return "again"
	case RatingHard:
		return "hard"
	case RatingGood:
		return "good"
	case RatingEasy:
		return "easy"
	default:
		return "unknown"
	}
}

// DeriveRating applies the friction rules to a scored result. The rules are
// ordered and the first match wins; the ranges overlap, so reordering would
// change outcomes for boundary cases (e.g. zero hints at ratio 1.9 must fall
// through to the Good default, not match the Hard rule).
func (e *Evaluator) DeriveRating(res Result, baseline time.Duration) FSRSRating {
	// A degenerate interaction has a zero baseline; there is no meaningful
	// time signal, so pin the ratio inside the Good band.
	ratio := 1.0
	if baseline > 0 {
		ratio = float64(res.TimeToCompleteMs) / float64(baseline.Milliseconds())
	}

	switch {
	case !res.Passed || res.AttemptCount > e.cfg.MaxAttempts:
		return RatingAgain
	case res.HintsUsed > e.cfg.MaxHints || ratio > e.cfg.HardTimeRatio:
		return RatingHard
	case res.HintsUsed == 0 && ratio < e.cfg.EasyTimeRatio:
		return RatingEasy
	case res.HintsUsed == 0 && ratio >= e.cfg.EasyTimeRatio && ratio <= e.cfg.GoodTimeRatio:
		return RatingGood
	default:
		// Anything left (a hint inside the band, or zero hints in the
		// 1.5-2.0 gap) still lands on Good.
		return RatingGood
	}
}
