package proofdiff

import (
	"math"
	"strings"
	"unicode/utf8"

	"github.com/dacharyc/diffx"
)

// Pairing selects how deleted and inserted paragraphs are matched up before
// the per-paragraph diff runs.
type Pairing int

const (
	// PairBySimilarity matches each deleted paragraph with the unmatched
	// inserted paragraph sharing the most text, subject to a threshold.
	PairBySimilarity Pairing = iota
	// PairByPosition matches deleted and inserted paragraphs in order:
	// the first delete with the first insert, and so on.
	PairByPosition
)

// ParagraphOptions configures DiffParagraphs.
type ParagraphOptions struct {
	// Granularity of the per-paragraph diff. Default Chars.
	Granularity Granularity

	// Align configures the per-paragraph alignment engine.
	Align AlignOptions

	// Pairing selects the delete/insert matching strategy.
	Pairing Pairing

	// SimilarityThreshold is the minimum similarity (0.0-1.0) for
	// PairBySimilarity to accept a match. Below it, the paragraphs are
	// reported as a separate deletion and insertion.
	SimilarityThreshold float64
}

// DefaultParagraphOptions returns ParagraphOptions with default settings.
func DefaultParagraphOptions() ParagraphOptions {
	return ParagraphOptions{
		Granularity:         Chars,
		Align:               DefaultAlignOptions(),
		Pairing:             PairBySimilarity,
		SimilarityThreshold: 0.1,
	}
}

// ParagraphResult holds the diff of one paragraph position.
// OriginalLine and CorrectedLine are 1-based; 0 means the paragraph has no
// counterpart on that side (a pure insertion or deletion).
type ParagraphResult struct {
	OriginalLine  int
	CorrectedLine int
	View          DualView
	Inline        InlineView
	HasChanges    bool
}

// ParagraphDiff is the result of a paragraph-by-paragraph comparison.
type ParagraphDiff struct {
	Paragraphs []ParagraphResult
	HasChanges bool
	Stats      DiffStatistics
}

// DiffParagraphs compares two texts paragraph by paragraph: both inputs are
// split on newlines, the paragraph sequences are aligned, replaced
// paragraphs are paired per opts.Pairing, and each pair is diffed at
// opts.Granularity. Long documents diff far faster this way than as one
// flat string, and the per-paragraph views map directly onto a
// paragraph-oriented review UI.
func DiffParagraphs(original, corrected string, opts ParagraphOptions) ParagraphDiff {
	lines1 := strings.Split(original, "\n")
	lines2 := strings.Split(corrected, "\n")

	ops := diffx.DiffHistogram(lines1, lines2)

	var out ParagraphDiff
	agg := statsAccumulator{}
	oldLine, newLine := 1, 1

	i := 0
	for i < len(ops) {
		op := ops[i]
		switch op.Type {
		case diffx.Equal:
			for j := op.AStart; j < op.AEnd; j++ {
				out.Paragraphs = append(out.Paragraphs, equalParagraph(lines1[j], oldLine, newLine))
				agg.addOriginal(lines1[j])
				oldLine++
				newLine++
			}
			i++

		default:
			// Collect the whole replaced block: consecutive delete and
			// insert ranges between two equal runs.
			var deletes, inserts []string
			for i < len(ops) && ops[i].Type == diffx.Delete {
				deletes = append(deletes, lines1[ops[i].AStart:ops[i].AEnd]...)
				i++
			}
			for i < len(ops) && ops[i].Type == diffx.Insert {
				inserts = append(inserts, lines2[ops[i].BStart:ops[i].BEnd]...)
				i++
			}
			out.HasChanges = true
			oldLine, newLine = emitReplacedBlock(&out, &agg, deletes, inserts, opts, oldLine, newLine)
		}
	}

	out.Stats = agg.statistics()
	return out
}

// emitReplacedBlock pairs a run of deleted paragraphs against a run of
// inserted ones and appends the per-paragraph results.
func emitReplacedBlock(out *ParagraphDiff, agg *statsAccumulator, deletes, inserts []string, opts ParagraphOptions, oldLine, newLine int) (int, int) {
	pairedDeletes := make(map[int]int)
	pairedInserts := make(map[int]int)

	switch opts.Pairing {
	case PairByPosition:
		n := len(deletes)
		if len(inserts) < n {
			n = len(inserts)
		}
		for i := 0; i < n; i++ {
			pairedDeletes[i] = i
			pairedInserts[i] = i
		}
	default:
		usedInserts := make([]bool, len(inserts))
		for i, del := range deletes {
			bestJ, bestSim := -1, opts.SimilarityThreshold
			for j, ins := range inserts {
				if usedInserts[j] {
					continue
				}
				if sim := textSimilarity(del, ins, opts.Align); sim > bestSim {
					bestJ, bestSim = j, sim
				}
			}
			if bestJ >= 0 {
				usedInserts[bestJ] = true
				pairedDeletes[i] = bestJ
				pairedInserts[bestJ] = i
			}
		}
	}

	emittedInserts := make([]bool, len(inserts))

	emitInsert := func(j int) {
		emittedInserts[j] = true
		edits := insertEdits(inserts[j])
		out.Paragraphs = append(out.Paragraphs, ParagraphResult{
			CorrectedLine: newLine,
			View:          buildDualView(edits),
			Inline:        buildInlineView(edits),
			HasChanges:    true,
		})
		agg.changes(0, 1)
		newLine++
	}

	for delIdx, del := range deletes {
		insIdx, paired := pairedDeletes[delIdx]
		if !paired {
			edits := deleteEdits(del)
			out.Paragraphs = append(out.Paragraphs, ParagraphResult{
				OriginalLine: oldLine,
				View:         buildDualView(edits),
				Inline:       buildInlineView(edits),
				HasChanges:   true,
			})
			agg.addOriginal(del)
			agg.changes(1, 0)
			oldLine++
			continue
		}

		// Unpaired inserts that precede this paired insert come out first,
		// keeping the corrected side in document order.
		for j := 0; j < insIdx; j++ {
			if !emittedInserts[j] {
				if _, p := pairedInserts[j]; !p {
					emitInsert(j)
				}
			}
		}

		edits, _ := Align(del, inserts[insIdx], opts.Granularity, opts.Align)
		view := buildDualView(edits)
		emittedInserts[insIdx] = true
		out.Paragraphs = append(out.Paragraphs, ParagraphResult{
			OriginalLine:  oldLine,
			CorrectedLine: newLine,
			View:          view,
			Inline:        buildInlineView(edits),
			HasChanges:    view.HasChanges,
		})
		agg.addOriginal(del)
		agg.addView(view)
		oldLine++
		newLine++
	}

	for j := range inserts {
		if !emittedInserts[j] {
			emitInsert(j)
		}
	}
	return oldLine, newLine
}

func equalParagraph(text string, oldLine, newLine int) ParagraphResult {
	pr := ParagraphResult{OriginalLine: oldLine, CorrectedLine: newLine}
	if text != "" {
		edits := []Edit{{Op: Equal, Text: text}}
		pr.View = buildDualView(edits)
		pr.Inline = buildInlineView(edits)
	}
	return pr
}

func deleteEdits(text string) []Edit {
	if text == "" {
		return nil
	}
	return []Edit{{Op: Delete, Text: text}}
}

func insertEdits(text string) []Edit {
	if text == "" {
		return nil
	}
	return []Edit{{Op: Insert, Text: text}}
}

// textSimilarity scores how much of two paragraphs survives a
// character-level alignment, as the shared rune fraction in [0.0, 1.0].
// Characters rather than words so that unsegmented CJK text still scores.
func textSimilarity(a, b string, opts AlignOptions) float64 {
	if a == b {
		return 1.0
	}
	if a == "" || b == "" {
		return 0.0
	}

	edits, _ := Align(a, b, Chars, opts)
	equal := 0
	for _, e := range edits {
		if e.Op == Equal {
			equal += utf8.RuneCountInString(e.Text)
		}
	}
	total := utf8.RuneCountInString(a) + utf8.RuneCountInString(b)
	return float64(2*equal) / float64(total)
}

// FilterChanged returns only the paragraphs that changed, plus up to context
// unchanged paragraphs around each change. A context of 0 or less returns
// the input unchanged.
func FilterChanged(paragraphs []ParagraphResult, context int) []ParagraphResult {
	if context <= 0 {
		return paragraphs
	}

	keep := make([]bool, len(paragraphs))
	for i, p := range paragraphs {
		if p.HasChanges {
			start := i - context
			if start < 0 {
				start = 0
			}
			end := i + context + 1
			if end > len(paragraphs) {
				end = len(paragraphs)
			}
			for j := start; j < end; j++ {
				keep[j] = true
			}
		}
	}

	var out []ParagraphResult
	for i, p := range paragraphs {
		if keep[i] {
			out = append(out, p)
		}
	}
	return out
}

// statsAccumulator aggregates per-paragraph statistics into document totals.
// The newline separators between paragraphs are not counted toward the
// original length.
type statsAccumulator struct {
	originalRunes int
	insertions    int
	deletions     int
}

func (a *statsAccumulator) addOriginal(text string) {
	a.originalRunes += utf8.RuneCountInString(text)
}

func (a *statsAccumulator) changes(deletions, insertions int) {
	a.deletions += deletions
	a.insertions += insertions
}

func (a *statsAccumulator) addView(dv DualView) {
	for _, s := range dv.OriginalView {
		if s.Kind == Delete {
			a.deletions++
		}
	}
	for _, s := range dv.CorrectedView {
		if s.Kind == Insert {
			a.insertions++
		}
	}
}

func (a *statsAccumulator) statistics() DiffStatistics {
	st := DiffStatistics{
		Insertions: a.insertions,
		Deletions:  a.deletions,
		Changes:    a.insertions + a.deletions,
	}
	if a.originalRunes == 0 {
		st.Accuracy = 100
		return st
	}
	accuracy := float64(a.originalRunes-st.Changes) / float64(a.originalRunes) * 100
	if accuracy < 0 {
		accuracy = 0
	}
	st.Accuracy = math.Round(accuracy*100) / 100
	return st
}
