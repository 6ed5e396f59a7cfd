// Package proofdiff compares an original text against its corrected revision
// and produces structured equal/insert/delete spans for review display.
//
// The typical consumer is a proofreading or correction-review UI: given the
// text a user wrote and the text a corrector (human or machine) produced,
// proofdiff computes an alignment between the two and projects it into
// span lists suitable for side-by-side panes or a single inline column,
// plus change statistics.
//
// Comparison runs at character or word granularity. Character granularity is
// rune-aware, so CJK text diffs one character at a time rather than one byte
// at a time. Word granularity splits on whitespace but keeps the whitespace
// runs, so both views always reconstruct their input exactly.
package proofdiff

// Operation identifies the kind of a diff span.
type Operation int

const (
	// Equal indicates text present in both the original and the correction.
	Equal Operation = iota
	// Insert indicates text present only in the correction.
	Insert
	// Delete indicates text present only in the original.
	Delete
)

// String returns a human-readable representation of the operation.
func (o Operation) String() string {
	switch o {
	case Equal:
		return "Equal"
	case Insert:
		return "Insert"
	case Delete:
		return "Delete"
	default:
		return "Unknown"
	}
}

// Span is an atomic labeled substring of one view of the diff.
// Offset is the running rune offset within the view the span belongs to:
// for spans in an original-side view it counts runes of the reconstructed
// original, for a corrected-side view runes of the reconstructed correction,
// and for an inline view it is a running index over the interleaved
// sequence, useful only as a stable key.
type Span struct {
	Kind   Operation
	Text   string
	Offset int
}

// Edit is a single alignment operation. The ordered edit sequence transforms
// the original text into the corrected text: concatenating Equal+Delete
// texts yields the original, Equal+Insert texts the correction.
type Edit struct {
	Op   Operation
	Text string
}

// DualView holds the two per-side span lists used for side-by-side display.
// OriginalView contains Equal and Delete spans, CorrectedView Equal and
// Insert spans. ChangeCount counts non-equal spans, not characters.
type DualView struct {
	OriginalView  []Span
	CorrectedView []Span
	HasChanges    bool
	ChangeCount   int
}

// InlineView holds a single interleaved span sequence in document order,
// used for single-column display. Callers rendering "corrected only" filter
// out the Delete spans.
type InlineView struct {
	Spans []Span
}

// DiffStatistics summarizes a DualView.
//
// Accuracy is max(0, (originalRunes-Changes)/originalRunes*100) rounded to
// two decimals, or 100 when the original is empty. Changes counts spans
// while the denominator counts runes; the mismatch is inherited behavior
// that downstream consumers depend on.
type DiffStatistics struct {
	Insertions int
	Deletions  int
	Changes    int
	Accuracy   float64
}

// DiffChars computes a character-granularity diff of original against
// corrected and returns the side-by-side projection.
func DiffChars(original, corrected string) DualView {
	return diffView(original, corrected, Chars)
}

// DiffWords computes a word-granularity diff of original against corrected
// and returns the side-by-side projection. Whitespace runs are preserved as
// units, so both views reconstruct their input exactly, including runs that
// differ only in whitespace.
func DiffWords(original, corrected string) DualView {
	return diffView(original, corrected, Words)
}

// DiffInline computes a character-granularity diff and returns the
// interleaved single-column projection.
func DiffInline(original, corrected string) InlineView {
	edits, _ := Align(original, corrected, Chars, DefaultAlignOptions())
	return buildInlineView(edits)
}

func diffView(original, corrected string, g Granularity) DualView {
	edits, _ := Align(original, corrected, g, DefaultAlignOptions())
	return buildDualView(edits)
}

// DiffWithOptions is the lower-level entry point for callers that need a
// specific granularity or their own time budget.
func DiffWithOptions(original, corrected string, g Granularity, opts AlignOptions) (DualView, error) {
	edits, err := Align(original, corrected, g, opts)
	if err != nil {
		return DualView{}, err
	}
	return buildDualView(edits), nil
}

// DiffInlineWithOptions is the lower-level inline entry point.
func DiffInlineWithOptions(original, corrected string, g Granularity, opts AlignOptions) (InlineView, error) {
	edits, err := Align(original, corrected, g, opts)
	if err != nil {
		return InlineView{}, err
	}
	return buildInlineView(edits), nil
}

// HasChanges returns true if the span slice contains any non-Equal spans.
func HasChanges(spans []Span) bool {
	for _, s := range spans {
		if s.Kind != Equal {
			return true
		}
	}
	return false
}
