package proofdiff

import "unicode/utf8"

// buildDualView projects an edit sequence into the two per-side span lists.
// Insert edits have no position in the original view and Delete edits none
// in the corrected view; each span's Offset is the running rune count of its
// own view's reconstructed text.
func buildDualView(edits []Edit) DualView {
	var dv DualView
	origOff, corrOff := 0, 0

	for _, e := range edits {
		n := utf8.RuneCountInString(e.Text)
		switch e.Op {
		case Equal:
			dv.OriginalView = append(dv.OriginalView, Span{Kind: Equal, Text: e.Text, Offset: origOff})
			dv.CorrectedView = append(dv.CorrectedView, Span{Kind: Equal, Text: e.Text, Offset: corrOff})
			origOff += n
			corrOff += n
		case Delete:
			dv.OriginalView = append(dv.OriginalView, Span{Kind: Delete, Text: e.Text, Offset: origOff})
			origOff += n
			dv.ChangeCount++
		case Insert:
			dv.CorrectedView = append(dv.CorrectedView, Span{Kind: Insert, Text: e.Text, Offset: corrOff})
			corrOff += n
			dv.ChangeCount++
		}
	}

	dv.HasChanges = dv.ChangeCount > 0
	return dv
}

// buildInlineView projects an edit sequence into a single interleaved span
// list. Offsets accumulate over the whole sequence regardless of kind; they
// serve as stable keys, not as text positions.
func buildInlineView(edits []Edit) InlineView {
	spans := make([]Span, 0, len(edits))
	off := 0
	for _, e := range edits {
		spans = append(spans, Span{Kind: e.Op, Text: e.Text, Offset: off})
		off += utf8.RuneCountInString(e.Text)
	}
	return InlineView{Spans: spans}
}
