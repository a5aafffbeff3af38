package evaluation

import (
	"strings"
	"time"
)

// EstimateBaseline computes the expected completion time for an interaction
// from structural complexity: a fixed cost per draggable element plus reading
// time for the instructions and every hint. All hints count, not just
// requested ones; the estimate assumes a learner who reads everything
// available. Returns zero only for a degenerate interaction with no elements,
// no instructions and no hints.
func (e *Evaluator) EstimateBaseline(in Interaction) time.Duration {
	draggable := 0
	for _, el := range in.Elements {
		if el.Draggable {
			draggable++
		}
	}
	words := len(strings.Fields(in.Instructions))
	for _, h := range in.Hints {
		words += len(strings.Fields(h))
	}
	reading := time.Duration(float64(words) / e.cfg.WordsPerSecond * float64(time.Second))
	return time.Duration(draggable)*e.cfg.ElementTime + reading
}
