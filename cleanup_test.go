package proofdiff

import (
	"reflect"
	"strings"
	"testing"
)

func TestMergeAdjacent(t *testing.T) {
	tests := []struct {
		name     string
		edits    []Edit
		expected []Edit
	}{
		{
			name:     "empty",
			edits:    nil,
			expected: []Edit{},
		},
		{
			name: "merges same-kind neighbors",
			edits: []Edit{
				{Equal, "a"},
				{Equal, "b"},
				{Delete, "c"},
				{Delete, "d"},
				{Insert, "e"},
			},
			expected: []Edit{
				{Equal, "ab"},
				{Delete, "cd"},
				{Insert, "e"},
			},
		},
		{
			name: "drops empty edits",
			edits: []Edit{
				{Equal, "a"},
				{Delete, ""},
				{Equal, "b"},
			},
			expected: []Edit{
				{Equal, "ab"},
			},
		},
		{
			name: "leaves alternating kinds alone",
			edits: []Edit{
				{Equal, "aa"},
				{Delete, "bb"},
				{Insert, "cc"},
				{Equal, "dd"},
			},
			expected: []Edit{
				{Equal, "aa"},
				{Delete, "bb"},
				{Insert, "cc"},
				{Equal, "dd"},
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := mergeAdjacent(tt.edits)
			if !reflect.DeepEqual(got, tt.expected) {
				t.Errorf("mergeAdjacent(%v) = %v, want %v", tt.edits, got, tt.expected)
			}
		})
	}
}

func TestAbsorbShortEquals(t *testing.T) {
	tests := []struct {
		name     string
		edits    []Edit
		maxRunes int
		expected []Edit
	}{
		{
			name: "dissolves short sandwiched equal",
			edits: []Edit{
				{Delete, "a"},
				{Equal, "x"},
				{Insert, "b"},
			},
			maxRunes: 1,
			expected: []Edit{
				{Delete, "ax"},
				{Insert, "xb"},
			},
		},
		{
			name: "collapses noisy alternation into one pair",
			edits: []Edit{
				{Delete, "a"},
				{Equal, "x"},
				{Insert, "b"},
				{Equal, "y"},
				{Delete, "c"},
			},
			maxRunes: 1,
			expected: []Edit{
				{Delete, "axyc"},
				{Insert, "xby"},
			},
		},
		{
			name: "keeps long equal runs",
			edits: []Edit{
				{Delete, "a"},
				{Equal, "stays"},
				{Insert, "b"},
			},
			maxRunes: 1,
			expected: []Edit{
				{Delete, "a"},
				{Equal, "stays"},
				{Insert, "b"},
			},
		},
		{
			name: "leading and trailing equals are never absorbed",
			edits: []Edit{
				{Equal, "a"},
				{Delete, "b"},
				{Insert, "c"},
				{Equal, "d"},
			},
			maxRunes: 1,
			expected: []Edit{
				{Equal, "a"},
				{Delete, "b"},
				{Insert, "c"},
				{Equal, "d"},
			},
		},
		{
			name: "rune count not byte count decides shortness",
			edits: []Edit{
				{Delete, "个"},
				{Equal, "是"},
				{Insert, "個"},
			},
			maxRunes: 1,
			expected: []Edit{
				{Delete, "个是"},
				{Insert, "是個"},
			},
		},
		{
			name: "disabled with zero budget",
			edits: []Edit{
				{Delete, "a"},
				{Equal, "x"},
				{Insert, "b"},
			},
			maxRunes: 0,
			expected: []Edit{
				{Delete, "a"},
				{Equal, "x"},
				{Insert, "b"},
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := absorbShortEquals(tt.edits, tt.maxRunes)
			if !reflect.DeepEqual(got, tt.expected) {
				t.Errorf("absorbShortEquals(%v, %d) = %v, want %v", tt.edits, tt.maxRunes, got, tt.expected)
			}
		})
	}
}

// Cleanup only regroups boundaries; both sides must reconstruct unchanged.
func TestCleanupPreservesReconstruction(t *testing.T) {
	inputs := [][]Edit{
		{{Delete, "a"}, {Equal, "x"}, {Insert, "b"}, {Equal, "y"}, {Delete, "c"}},
		{{Equal, "start"}, {Delete, "d"}, {Equal, "m"}, {Insert, "i"}, {Equal, "end"}},
		{{Insert, "only"}},
		{{Delete, "gone"}, {Insert, "new"}},
	}

	reconstruct := func(edits []Edit) (string, string) {
		var orig, corr strings.Builder
		for _, e := range edits {
			switch e.Op {
			case Equal:
				orig.WriteString(e.Text)
				corr.WriteString(e.Text)
			case Delete:
				orig.WriteString(e.Text)
			case Insert:
				corr.WriteString(e.Text)
			}
		}
		return orig.String(), corr.String()
	}

	for _, edits := range inputs {
		wantOrig, wantCorr := reconstruct(edits)
		cleaned := cleanupEdits(edits)
		gotOrig, gotCorr := reconstruct(cleaned)
		if gotOrig != wantOrig || gotCorr != wantCorr {
			t.Errorf("cleanupEdits(%v) reconstructs to (%q, %q), want (%q, %q)",
				edits, gotOrig, gotCorr, wantOrig, wantCorr)
		}
	}
}
