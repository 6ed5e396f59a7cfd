package main

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/linqiu/proofdiff"
)

func TestReadFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "draft.txt")
	content := "他每天吃苹果。\n"
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatal(err)
	}

	got, err := readFile(path)
	if err != nil {
		t.Fatalf("readFile() error = %v", err)
	}
	if got != content {
		t.Errorf("readFile() = %q, want %q", got, content)
	}

	if _, err := readFile(filepath.Join(dir, "missing.txt")); err == nil {
		t.Error("readFile(missing): expected error, got nil")
	}
}

// End-to-end through the library: the same flow main() runs for the
// default inline mode.
func TestInlineIntegration(t *testing.T) {
	original := "這是一个測試文檔"
	corrected := "這是一個測試文檔"

	iv, err := proofdiff.DiffInlineWithOptions(original, corrected, proofdiff.Chars, proofdiff.DefaultAlignOptions())
	if err != nil {
		t.Fatalf("DiffInlineWithOptions() error = %v", err)
	}
	got := proofdiff.FormatInline(iv, proofdiff.DefaultFormatOptions())
	want := "這是一[-个-]{+個+}測試文檔"
	if got != want {
		t.Errorf("formatted diff = %q, want %q", got, want)
	}

	dv, err := proofdiff.DiffWithOptions(original, corrected, proofdiff.Chars, proofdiff.DefaultAlignOptions())
	if err != nil {
		t.Fatalf("DiffWithOptions() error = %v", err)
	}
	st := proofdiff.ComputeStatistics(dv)
	if st.Changes != 2 {
		t.Errorf("Changes = %d, want 2", st.Changes)
	}
	if st.Accuracy != 75 {
		t.Errorf("Accuracy = %v, want 75", st.Accuracy)
	}
}

func TestParagraphIntegration(t *testing.T) {
	original := "第一段。\n第二段有错误。\n第三段。"
	corrected := "第一段。\n第二段有錯誤。\n第三段。"

	opts := proofdiff.DefaultParagraphOptions()
	pd := proofdiff.DiffParagraphs(original, corrected, opts)
	if !pd.HasChanges {
		t.Fatal("HasChanges = false, want true")
	}

	changed := proofdiff.FilterChanged(pd.Paragraphs, 0)
	if len(changed) != len(pd.Paragraphs) {
		t.Errorf("context 0 filtered %d of %d paragraphs", len(changed), len(pd.Paragraphs))
	}
}
