package proofdiff

import (
	"strings"
	"unicode/utf8"
)

// maxAbsorbRunes is the longest equal run, in runes, that absorbShortEquals
// will dissolve into the surrounding changes. One rune is enough to remove
// the alternating single-character noise that minimal edit scripts produce
// on prose, without eating meaningful context.
const maxAbsorbRunes = 1

// cleanupEdits regroups edit boundaries for readability. It merges adjacent
// same-kind edits and dissolves short equal runs sandwiched between changes.
// It never changes what either side reconstructs to, only where the
// boundaries fall.
func cleanupEdits(edits []Edit) []Edit {
	return absorbShortEquals(mergeAdjacent(edits), maxAbsorbRunes)
}

// mergeAdjacent coalesces consecutive edits of the same kind and drops
// empty ones.
func mergeAdjacent(edits []Edit) []Edit {
	out := make([]Edit, 0, len(edits))
	for _, e := range edits {
		if e.Text == "" {
			continue
		}
		if n := len(out); n > 0 && out[n-1].Op == e.Op {
			out[n-1].Text += e.Text
			continue
		}
		out = append(out, e)
	}
	return out
}

// absorbShortEquals dissolves equal runs of at most maxRunes runes that sit
// between two changes. The equal text joins both sides of the surrounding
// change, which collapses noisy alternations like
//
//	Delete(a) Equal(x) Insert(b) Equal(y) Delete(c)
//
// into a single Delete/Insert pair. Within each collapsed block the deletion
// precedes the insertion.
func absorbShortEquals(edits []Edit, maxRunes int) []Edit {
	if maxRunes <= 0 || len(edits) < 3 {
		return edits
	}

	out := make([]Edit, 0, len(edits))
	i := 0
	for i < len(edits) {
		if edits[i].Op == Equal {
			out = append(out, edits[i])
			i++
			continue
		}

		// Start of a change block. Extend it across short equal runs that
		// are immediately followed by another change.
		var del, ins strings.Builder
		for i < len(edits) {
			e := edits[i]
			if e.Op == Equal {
				short := utf8.RuneCountInString(e.Text) <= maxRunes
				followed := i+1 < len(edits) && edits[i+1].Op != Equal
				if !short || !followed {
					break
				}
				del.WriteString(e.Text)
				ins.WriteString(e.Text)
				i++
				continue
			}
			if e.Op == Delete {
				del.WriteString(e.Text)
			} else {
				ins.WriteString(e.Text)
			}
			i++
		}

		if del.Len() > 0 {
			out = append(out, Edit{Op: Delete, Text: del.String()})
		}
		if ins.Len() > 0 {
			out = append(out, Edit{Op: Insert, Text: ins.String()})
		}
	}
	return out
}
