package proofdiff

import (
	"strings"
	"unicode"
)

// tokenizeChars splits text into one token per rune. Multi-byte characters
// (CJK in particular) are single tokens.
func tokenizeChars(text string) []string {
	if text == "" {
		return nil
	}
	tokens := make([]string, 0, len(text))
	for _, r := range text {
		tokens = append(tokens, string(r))
	}
	return tokens
}

// tokenizeWords splits text into alternating word and whitespace-run tokens.
// Whitespace runs are kept as their own tokens so that concatenating the
// token sequence reproduces text exactly; "a  b" tokenizes to
// ["a", "  ", "b"], never to ["a", "b"].
func tokenizeWords(text string) []string {
	if text == "" {
		return nil
	}

	var tokens []string
	var current strings.Builder
	inSpace := false

	flush := func() {
		if current.Len() > 0 {
			tokens = append(tokens, current.String())
			current.Reset()
		}
	}

	for i, r := range text {
		ws := unicode.IsSpace(r)
		if i > 0 && ws != inSpace {
			flush()
		}
		inSpace = ws
		current.WriteRune(r)
	}
	flush()

	return tokens
}
