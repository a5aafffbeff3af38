package evaluation

import (
	"testing"
	"time"
)

func passedResult(attempts, hints int, elapsed time.Duration) Result {
	return Result{
		Passed:           true,
		AttemptCount:     attempts,
		HintsUsed:        hints,
		TimeToCompleteMs: elapsed.Milliseconds(),
	}
}

func TestRatingFailureDominates(t *testing.T) {
	e := New()
	// otherwise Easy-looking: no hints, instant finish
	res := Result{Passed: false, AttemptCount: 1, HintsUsed: 0, TimeToCompleteMs: 0}
	if got := e.DeriveRating(res, time.Second); got != RatingAgain {
		t.Fatalf("rating = %v, want Again", got)
	}
}

func TestRatingAttemptsOverride(t *testing.T) {
	e := New()
	res := passedResult(4, 0, 500*time.Millisecond)
	if got := e.DeriveRating(res, time.Second); got != RatingAgain {
		t.Fatalf("rating = %v, want Again (attempt-count override)", got)
	}
}

func TestRatingHardByHints(t *testing.T) {
	e := New()
	res := passedResult(1, 2, time.Second)
	if got := e.DeriveRating(res, time.Second); got != RatingHard {
		t.Fatalf("rating = %v, want Hard", got)
	}
}

func TestRatingHardBySlowness(t *testing.T) {
	e := New()
	res := passedResult(1, 0, 2100*time.Millisecond)
	if got := e.DeriveRating(res, time.Second); got != RatingHard {
		t.Fatalf("rating = %v, want Hard (ratio 2.1)", got)
	}
}

func TestRatingEasy(t *testing.T) {
	e := New()
	res := passedResult(1, 0, 500*time.Millisecond)
	if got := e.DeriveRating(res, time.Second); got != RatingEasy {
		t.Fatalf("rating = %v, want Easy (ratio 0.5)", got)
	}
}

func TestRatingGoodBand(t *testing.T) {
	e := New()
	for _, ms := range []int64{800, 1000, 1500} {
		res := passedResult(1, 0, time.Duration(ms)*time.Millisecond)
		if got := e.DeriveRating(res, time.Second); got != RatingGood {
			t.Errorf("ratio %v: rating = %v, want Good", float64(ms)/1000, got)
		}
	}
}

func TestRatingGapFallsThroughToGood(t *testing.T) {
	// ratio 1.9 with zero hints: not slow enough for Hard, outside both the
	// Easy and Good bands, so the default must catch it.
	e := New()
	res := passedResult(1, 0, 1900*time.Millisecond)
	if got := e.DeriveRating(res, time.Second); got != RatingGood {
		t.Fatalf("rating = %v, want Good (gap fallthrough)", got)
	}
}

func TestRatingOneHintInBand(t *testing.T) {
	// one hint disqualifies the zero-hint rules but is not enough for Hard.
	e := New()
	res := passedResult(1, 1, time.Second)
	if got := e.DeriveRating(res, time.Second); got != RatingGood {
		t.Fatalf("rating = %v, want Good (default)", got)
	}
}

func TestRatingZeroBaseline(t *testing.T) {
	// No time signal from a degenerate interaction: passed attempts land on
	// Good regardless of elapsed time, failures still rate Again.
	e := New()
	if got := e.DeriveRating(passedResult(1, 0, 0), 0); got != RatingGood {
		t.Errorf("instant finish at zero baseline = %v, want Good", got)
	}
	if got := e.DeriveRating(passedResult(1, 0, time.Hour), 0); got != RatingGood {
		t.Errorf("slow finish at zero baseline = %v, want Good", got)
	}
	failed := Result{Passed: false, AttemptCount: 1}
	if got := e.DeriveRating(failed, 0); got != RatingAgain {
		t.Errorf("failure at zero baseline = %v, want Again", got)
	}
}

func TestRatingHardBeatsEasyTime(t *testing.T) {
	// two hints with a fast finish: the hint rule fires before the time rules.
	e := New()
	res := passedResult(1, 2, 100*time.Millisecond)
	if got := e.DeriveRating(res, time.Second); got != RatingHard {
		t.Fatalf("rating = %v, want Hard", got)
	}
}
