package proofdiff

import (
	"reflect"
	"strings"
	"testing"
)

func TestTokenizeChars(t *testing.T) {
	tests := []struct {
		name     string
		text     string
		expected []string
	}{
		{
			name:     "empty string",
			text:     "",
			expected: nil,
		},
		{
			name:     "ascii",
			text:     "abc",
			expected: []string{"a", "b", "c"},
		},
		{
			name:     "multi-byte characters count as one unit",
			text:     "這是一",
			expected: []string{"這", "是", "一"},
		},
		{
			name:     "mixed ascii and cjk",
			text:     "a這b",
			expected: []string{"a", "這", "b"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := tokenizeChars(tt.text)
			if !reflect.DeepEqual(got, tt.expected) {
				t.Errorf("tokenizeChars(%q) = %v, want %v", tt.text, got, tt.expected)
			}
		})
	}
}

func TestTokenizeWords(t *testing.T) {
	tests := []struct {
		name     string
		text     string
		expected []string
	}{
		{
			name:     "empty string",
			text:     "",
			expected: nil,
		},
		{
			name:     "single word",
			text:     "hello",
			expected: []string{"hello"},
		},
		{
			name:     "two words",
			text:     "hello world",
			expected: []string{"hello", " ", "world"},
		},
		{
			name:     "whitespace run kept as one unit",
			text:     "a  b",
			expected: []string{"a", "  ", "b"},
		},
		{
			name:     "leading and trailing whitespace",
			text:     " a ",
			expected: []string{" ", "a", " "},
		},
		{
			name:     "tabs and newlines",
			text:     "a\t\nb",
			expected: []string{"a", "\t\n", "b"},
		},
		{
			name:     "whitespace only",
			text:     "   ",
			expected: []string{"   "},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := tokenizeWords(tt.text)
			if !reflect.DeepEqual(got, tt.expected) {
				t.Errorf("tokenizeWords(%q) = %v, want %v", tt.text, got, tt.expected)
			}
		})
	}
}

// Tokenization must be lossless: concatenating the units reproduces the
// input exactly, for both modes.
func TestTokenizeRoundTrip(t *testing.T) {
	inputs := []string{
		"",
		"hello world",
		"a  b",
		" leading and trailing ",
		"這是一個測試文檔",
		"中文 與 english mixed\ttext\n",
	}

	for _, text := range inputs {
		if got := strings.Join(tokenizeChars(text), ""); got != text {
			t.Errorf("tokenizeChars round trip: got %q, want %q", got, text)
		}
		if got := strings.Join(tokenizeWords(text), ""); got != text {
			t.Errorf("tokenizeWords round trip: got %q, want %q", got, text)
		}
	}
}
