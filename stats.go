package proofdiff

import (
	"math"
	"unicode/utf8"
)

// ComputeStatistics reduces a DualView to change counts and an accuracy
// percentage. Insertions and Deletions count spans; Accuracy measures the
// surviving share of the original's rune length, floored at 0 and rounded
// to two decimals. An empty original scores 100.
func ComputeStatistics(dv DualView) DiffStatistics {
	var st DiffStatistics

	originalRunes := 0
	for _, s := range dv.OriginalView {
		originalRunes += utf8.RuneCountInString(s.Text)
		if s.Kind == Delete {
			st.Deletions++
		}
	}
	for _, s := range dv.CorrectedView {
		if s.Kind == Insert {
			st.Insertions++
		}
	}
	st.Changes = st.Insertions + st.Deletions

	if originalRunes == 0 {
		st.Accuracy = 100
		return st
	}

	accuracy := float64(originalRunes-st.Changes) / float64(originalRunes) * 100
	if accuracy < 0 {
		accuracy = 0
	}
	st.Accuracy = math.Round(accuracy*100) / 100
	return st
}
