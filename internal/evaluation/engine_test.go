package evaluation

import (
	"reflect"
	"testing"
	"time"
)

func matchingInteraction() Interaction {
	return Interaction{
		ID:        "int-1",
		ConceptID: "concept-1",
		Type:      TypeMatching,
		Elements: []Element{
			{ID: "e1", Draggable: true},
			{ID: "e2", Draggable: true},
			{ID: "z1"},
			{ID: "z2"},
		},
		CorrectState: CorrectState{
			ZoneContents:         map[string][]string{"z1": {"e1"}, "z2": {"e2"}},
			MinCorrectPercentage: 1.0,
		},
	}
}

func TestMatchingPerfect(t *testing.T) {
	e := New()
	user := UserState{ZoneContents: map[string][]string{"z1": {"e1"}, "z2": {"e2"}}}
	res := e.Evaluate(matchingInteraction(), user, 1, 0, 10*time.Second)
	if res.Score != 1 {
		t.Fatalf("score = %v, want 1", res.Score)
	}
	if !res.Passed {
		t.Fatalf("expected passed")
	}
	if len(res.ElementResults) != 2 {
		t.Fatalf("element results = %d, want 2", len(res.ElementResults))
	}
	for _, er := range res.ElementResults {
		if !er.Correct || er.ExpectedZone != er.ActualZone {
			t.Errorf("element %s: correct=%v expected=%s actual=%s", er.ElementID, er.Correct, er.ExpectedZone, er.ActualZone)
		}
	}
}

func TestMatchingWrongZoneReported(t *testing.T) {
	e := New()
	user := UserState{ZoneContents: map[string][]string{"z1": {"e2"}, "z2": {"e1"}}}
	res := e.Evaluate(matchingInteraction(), user, 1, 0, 10*time.Second)
	if res.Score != 0 {
		t.Fatalf("score = %v, want 0", res.Score)
	}
	for _, er := range res.ElementResults {
		if er.Correct {
			t.Errorf("element %s unexpectedly correct", er.ElementID)
		}
		if er.ActualZone == "" || er.ActualZone == er.ExpectedZone {
			t.Errorf("element %s: actual zone %q should name the wrong zone", er.ElementID, er.ActualZone)
		}
	}
}

func TestMatchingMissingElement(t *testing.T) {
	e := New()
	user := UserState{ZoneContents: map[string][]string{"z1": {"e1"}}}
	res := e.Evaluate(matchingInteraction(), user, 1, 0, 10*time.Second)
	if res.Score != 0.5 {
		t.Fatalf("score = %v, want 0.5", res.Score)
	}
	if res.Passed {
		t.Fatalf("0.5 must not pass a 1.0 threshold")
	}
	for _, er := range res.ElementResults {
		if er.ElementID == "e2" && er.ActualZone != "" {
			t.Errorf("unplaced element reported in zone %q", er.ActualZone)
		}
	}
}

func TestDeterminism(t *testing.T) {
	e := New()
	in := matchingInteraction()
	user := UserState{ZoneContents: map[string][]string{"z1": {"e2"}, "z2": {"e1"}}}
	a := e.Evaluate(in, user, 2, 1, 8*time.Second)
	for i := 0; i < 10; i++ {
		b := e.Evaluate(in, user, 2, 1, 8*time.Second)
		if !reflect.DeepEqual(a, b) {
			t.Fatalf("evaluation not deterministic:\n%+v\n%+v", a, b)
		}
	}
}

func TestEmptyCorrectStateAutoPasses(t *testing.T) {
	e := New()
	for _, typ := range []InteractionType{TypeMatching, TypeFillInBlank, TypeSequencing, TypeDiagramBuild, TypeBranching} {
		in := Interaction{ID: "x", Type: typ, CorrectState: CorrectState{MinCorrectPercentage: 0.8}}
		res := e.Evaluate(in, UserState{}, 1, 0, time.Second)
		if res.Score != 1 || !res.Passed {
			t.Errorf("%s: score=%v passed=%v, want auto-pass", typ, res.Score, res.Passed)
		}
		if len(res.ElementResults) != 0 {
			t.Errorf("%s: expected no element results, got %d", typ, len(res.ElementResults))
		}
	}
}

func TestMismatchedCorrectStateDegrades(t *testing.T) {
	// A sequencing interaction whose correct state only has zone contents
	// must auto-pass, not blow up.
	e := New()
	in := Interaction{
		ID:   "x",
		Type: TypeSequencing,
		CorrectState: CorrectState{
			ZoneContents:         map[string][]string{"z1": {"e1"}},
			MinCorrectPercentage: 1,
		},
	}
	res := e.Evaluate(in, UserState{}, 1, 0, time.Second)
	if res.Score != 1 || !res.Passed {
		t.Fatalf("score=%v passed=%v, want auto-pass", res.Score, res.Passed)
	}
}

func TestScoreBounds(t *testing.T) {
	e := New()
	states := []UserState{
		{},
		{ZoneContents: map[string][]string{"z1": {"e2", "e1"}, "zX": {"e9"}}},
		{Sequence: []string{"a", "b", "c", "d", "e", "f"}},
		{Connections: []Connection{{From: "a", To: "b"}, {From: "x", To: "y"}}},
	}
	ints := []Interaction{
		matchingInteraction(),
		{ID: "s", Type: TypeSequencing, CorrectState: CorrectState{Sequence: []string{"a", "b"}}},
		{ID: "b", Type: TypeBranching, CorrectState: CorrectState{Connections: []Connection{{From: "a", To: "b"}}}},
	}
	for _, in := range ints {
		for _, us := range states {
			res := e.Evaluate(in, us, 1, 0, time.Second)
			if res.Score < 0 || res.Score > 1 {
				t.Errorf("%s: score %v out of [0,1]", in.Type, res.Score)
			}
		}
	}
}

func TestPassThresholdBoundary(t *testing.T) {
	e := New()
	in := matchingInteraction()
	in.CorrectState.MinCorrectPercentage = 0.5
	// exactly one of two expected elements placed: score == threshold
	user := UserState{ZoneContents: map[string][]string{"z1": {"e1"}}}
	res := e.Evaluate(in, user, 1, 0, time.Second)
	if res.Score != 0.5 {
		t.Fatalf("score = %v, want 0.5", res.Score)
	}
	if !res.Passed {
		t.Fatalf("score == threshold must pass")
	}
}

func TestBranchingPartialCredit(t *testing.T) {
	e := New()
	in := Interaction{
		ID:   "b1",
		Type: TypeBranching,
		CorrectState: CorrectState{
			Connections:          []Connection{{From: "n1", To: "n2"}, {From: "n1", To: "n3"}},
			MinCorrectPercentage: 0.5,
		},
	}
	user := UserState{Connections: []Connection{{From: "n1", To: "n2"}, {From: "n2", To: "n3"}}}
	res := e.Evaluate(in, user, 1, 0, time.Second)
	if res.Score != 0.5 {
		t.Fatalf("score = %v, want 0.5", res.Score)
	}
	if got := res.ElementResults[0].ElementID; got != "n1->n2" {
		t.Errorf("synthetic id = %q, want n1->n2", got)
	}
	if !res.ElementResults[0].Correct || res.ElementResults[1].Correct {
		t.Errorf("per-connection verdicts wrong: %+v", res.ElementResults)
	}
}

func TestValidate(t *testing.T) {
	good := matchingInteraction()
	if err := good.Validate(); err != nil {
		t.Fatalf("valid interaction rejected: %v", err)
	}
	bad := good
	bad.Type = "quiz"
	if err := bad.Validate(); err == nil {
		t.Errorf("unknown type accepted")
	}
	bad = good
	bad.CorrectState.MinCorrectPercentage = 1.5
	if err := bad.Validate(); err == nil {
		t.Errorf("out-of-range threshold accepted")
	}
	bad = good
	bad.CorrectState.Sequence = []string{"a"}
	if err := bad.Validate(); err == nil {
		t.Errorf("matching interaction with sequence state accepted")
	}
	// missing own field is fine (trivially satisfied)
	empty := Interaction{ID: "x", Type: TypeSequencing, CorrectState: CorrectState{MinCorrectPercentage: 1}}
	if err := empty.Validate(); err != nil {
		t.Errorf("empty correct state rejected: %v", err)
	}
}
