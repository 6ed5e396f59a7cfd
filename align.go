package proofdiff

import (
	"fmt"
	"strings"
	"time"

	"github.com/sergi/go-diff/diffmatchpatch"
)

// Granularity selects the unit sequence the alignment operates over.
type Granularity int

const (
	// Chars aligns individual runes.
	Chars Granularity = iota
	// Words aligns whitespace-delimited words, with whitespace runs kept as
	// their own units.
	Words
)

// String returns a human-readable representation of the granularity.
func (g Granularity) String() string {
	switch g {
	case Chars:
		return "Chars"
	case Words:
		return "Words"
	default:
		return "Unknown"
	}
}

// AlignOptions configures the alignment engine.
type AlignOptions struct {
	// Timeout is the wall-clock budget for the shortest-edit-script search.
	// When the budget runs out, the engine returns a correct but possibly
	// non-minimal alignment instead of failing. Zero or negative means no
	// limit.
	Timeout time.Duration

	// EditCost biases the cleanup trade-off between edit-script minimality
	// and fewer, longer spans. Higher values fold more short equalities into
	// the surrounding changes.
	EditCost int
}

// DefaultAlignOptions returns AlignOptions with default settings: a one
// second budget and the standard edit cost.
func DefaultAlignOptions() AlignOptions {
	return AlignOptions{
		Timeout:  time.Second,
		EditCost: 4,
	}
}

// Align computes the edit sequence transforming original into corrected at
// the given granularity. The result covers every unit of both inputs exactly
// once: concatenating Equal+Delete texts reproduces original, Equal+Insert
// texts reproduce corrected. Identical inputs yield a single Equal edit; at
// each divergence point deletions precede insertions.
func Align(original, corrected string, g Granularity, opts AlignOptions) ([]Edit, error) {
	switch g {
	case Chars:
		return alignChars(original, corrected, opts), nil
	case Words:
		return alignWords(original, corrected, opts), nil
	default:
		return nil, fmt.Errorf("proofdiff: unknown granularity %d", int(g))
	}
}

// newMatcher builds a diffmatchpatch instance configured from opts.
func newMatcher(opts AlignOptions) *diffmatchpatch.DiffMatchPatch {
	dmp := diffmatchpatch.New()
	dmp.DiffTimeout = opts.Timeout
	if opts.EditCost > 0 {
		dmp.DiffEditCost = opts.EditCost
	}
	return dmp
}

func alignChars(original, corrected string, opts AlignOptions) []Edit {
	dmp := newMatcher(opts)
	diffs := dmp.DiffMain(original, corrected, false)
	diffs = dmp.DiffCleanupSemantic(diffs)
	diffs = dmp.DiffCleanupEfficiency(diffs)
	return cleanupEdits(toEdits(diffs))
}

func alignWords(original, corrected string, opts AlignOptions) []Edit {
	tokens1 := tokenizeWords(original)
	tokens2 := tokenizeWords(corrected)

	// Encode each distinct token as a rune so the rune-level engine aligns
	// whole tokens, then decode the result back to text.
	r1, r2, tokenArray := tokensToRunes(tokens1, tokens2)

	dmp := newMatcher(opts)
	diffs := dmp.DiffMainRunes(r1, r2, false)
	diffs = dmp.DiffCleanupMerge(diffs)

	edits := make([]Edit, 0, len(diffs))
	for _, d := range diffs {
		text := decodeTokens(d.Text, tokenArray)
		if text == "" {
			continue
		}
		edits = append(edits, Edit{Op: fromMatchOp(d.Type), Text: text})
	}
	return cleanupEdits(edits)
}

// toEdits converts diffmatchpatch output, dropping empty entries.
func toEdits(diffs []diffmatchpatch.Diff) []Edit {
	edits := make([]Edit, 0, len(diffs))
	for _, d := range diffs {
		if d.Text == "" {
			continue
		}
		edits = append(edits, Edit{Op: fromMatchOp(d.Type), Text: d.Text})
	}
	return edits
}

func fromMatchOp(op diffmatchpatch.Operation) Operation {
	switch op {
	case diffmatchpatch.DiffDelete:
		return Delete
	case diffmatchpatch.DiffInsert:
		return Insert
	default:
		return Equal
	}
}

// The rune encoding skips the UTF-16 surrogate range, which cannot survive
// a []rune to string conversion.
const (
	surrogateMin  = 0xD800
	surrogateSize = 0x800
)

// tokensToRunes maps every distinct token to a unique rune and encodes both
// token sequences. Index 0 of the returned array is a sentinel empty string
// so that rune 0 is never produced.
func tokensToRunes(tokens1, tokens2 []string) ([]rune, []rune, []string) {
	tokenArray := []string{""}
	tokenHash := make(map[string]int)

	encode := func(tokens []string) []rune {
		runes := make([]rune, len(tokens))
		for i, t := range tokens {
			idx, ok := tokenHash[t]
			if !ok {
				idx = len(tokenArray)
				tokenArray = append(tokenArray, t)
				tokenHash[t] = idx
			}
			runes[i] = indexRune(idx)
		}
		return runes
	}

	r1 := encode(tokens1)
	r2 := encode(tokens2)
	return r1, r2, tokenArray
}

func indexRune(idx int) rune {
	if idx >= surrogateMin {
		idx += surrogateSize
	}
	return rune(idx)
}

func runeIndex(r rune) int {
	idx := int(r)
	if idx >= surrogateMin+surrogateSize {
		idx -= surrogateSize
	}
	return idx
}

// decodeTokens maps an encoded rune string back to the token text it stands
// for.
func decodeTokens(encoded string, tokenArray []string) string {
	var sb strings.Builder
	for _, r := range encoded {
		idx := runeIndex(r)
		if idx > 0 && idx < len(tokenArray) {
			sb.WriteString(tokenArray[idx])
		}
	}
	return sb.String()
}
