package evaluation

// sequenceStrategy scores ordering interactions with normalized edit
// distance, so a single transposition near the end does not zero out the
// whole attempt the way exact match would.
type sequenceStrategy struct{}

func (sequenceStrategy) Score(user UserState, correct CorrectState) Outcome {
	if len(correct.Sequence) == 0 {
		return Outcome{Score: 1}
	}
	maxLen := len(correct.Sequence)
	if len(user.Sequence) > maxLen {
		maxLen = len(user.Sequence)
	}
	dist := levenshtein(user.Sequence, correct.Sequence)
	score := 1 - float64(dist)/float64(maxLen)

	// The breakdown is deliberately coarser than the score: position-wise
	// match for UI highlighting, while the score rewards overall similarity.
	results := make([]ElementResult, 0, len(user.Sequence))
	for i, id := range user.Sequence {
		results = append(results, ElementResult{
			ElementID: id,
			Correct:   i < len(correct.Sequence) && correct.Sequence[i] == id,
		})
	}
	return Outcome{Score: score, ElementResults: results}
}

// levenshtein computes edit distance over element-id tokens (insertion,
// deletion, substitution cost 1).
func levenshtein(a, b []string) int {
	n, m := len(a), len(b)
	if n == 0 {
		return m
	}
	if m == 0 {
		return n
	}
	dp := make([]int, m+1)
	for j := 0; j <= m; j++ {
		dp[j] = j
	}
	for i := 1; i <= n; i++ {
		prev := dp[0]
		dp[0] = i
		for j := 1; j <= m; j++ {
			tmp := dp[j]
			cost := 0
			if a[i-1] != b[j-1] {
				cost = 1
			}
			ins := dp[j] + 1
			del := dp[j-1] + 1
			sub := prev + cost
			dp[j] = min3(ins, del, sub)
			prev = tmp
		}
	}
	return dp[m]
}

func min3(a, b, c int) int {
	if a < b {
		if a < c {
			return a
		}
		return c
	}
	if b < c {
		return b
	}
	return c
}
