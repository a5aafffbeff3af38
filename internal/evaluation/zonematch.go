package evaluation

import "sort"

// zoneStrategy checks each expected element against the zone it should land
// in. Used by matching, fill_in_blank and diagram_build interactions.
type zoneStrategy struct{}

func (zoneStrategy) Score(user UserState, correct CorrectState) Outcome {
	// Sorted zone ids keep element results stable across calls; map order
	// would otherwise vary run to run.
	zones := make([]string, 0, len(correct.ZoneContents))
	for z := range correct.ZoneContents {
		zones = append(zones, z)
	}
	sort.Strings(zones)

	total := 0
	matched := 0
	var results []ElementResult
	for _, zone := range zones {
		for _, elemID := range correct.ZoneContents[zone] {
			total++
			ok := containsString(user.ZoneContents[zone], elemID)
			if ok {
				matched++
			}
			results = append(results, ElementResult{
				ElementID:    elemID,
				Correct:      ok,
				ExpectedZone: zone,
				ActualZone:   findZone(user.ZoneContents, elemID),
			})
		}
	}
	if total == 0 {
		// No expected placements: trivially satisfied.
		return Outcome{Score: 1}
	}
	return Outcome{Score: float64(matched) / float64(total), ElementResults: results}
}

// findZone scans all user zones for an element id. The element may sit in a
// different zone than expected, or nowhere at all (empty string).
func findZone(zones map[string][]string, elemID string) string {
	ids := make([]string, 0, len(zones))
	for z := range zones {
		ids = append(ids, z)
	}
	sort.Strings(ids)
	for _, z := range ids {
		if containsString(zones[z], elemID) {
			return z
		}
	}
	return ""
}

func containsString(arr []string, s string) bool {
	for _, v := range arr {
		if v == s {
			return true
		}
	}
	return false
}
