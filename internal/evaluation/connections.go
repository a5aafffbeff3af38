package evaluation

// connectionStrategy scores branching interactions by presence of each
// expected (from, to) edge in the user's connection set.
type connectionStrategy struct{}

func (connectionStrategy) Score(user UserState, correct CorrectState) Outcome {
	if len(correct.Connections) == 0 {
		return Outcome{Score: 1}
	}
	made := make(map[Connection]struct{}, len(user.Connections))
	for _, c := range user.Connections {
		made[c] = struct{}{}
	}
	matched := 0
	results := make([]ElementResult, 0, len(correct.Connections))
	for _, c := range correct.Connections {
		_, ok := made[c]
		if ok {
			matched++
		}
		results = append(results, ElementResult{
			ElementID: c.From + "->" + c.To,
			Correct:   ok,
		})
	}
	return Outcome{Score: float64(matched) / float64(len(correct.Connections)), ElementResults: results}
}
