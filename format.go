package proofdiff

import "strings"

// ANSI escape sequences used by the default color formatting.
const (
	ANSIReset       = "\033[0m"
	ANSIDeleteColor = "\033[0;31;1m" // bold red
	ANSIInsertColor = "\033[0;32;1m" // bold green
)

// FormatOptions configures diff output formatting.
type FormatOptions struct {
	// StartDelete is the string to mark the beginning of deleted text.
	// Default: "[-"
	StartDelete string

	// StopDelete is the string to mark the end of deleted text.
	// Default: "-]"
	StopDelete string

	// StartInsert is the string to mark the beginning of inserted text.
	// Default: "{+"
	StartInsert string

	// StopInsert is the string to mark the end of inserted text.
	// Default: "+}"
	StopInsert string

	// NoDeleted, when true, suppresses deleted spans from output. This is
	// the "show corrected text only" mode.
	NoDeleted bool

	// NoInserted, when true, suppresses inserted spans from output,
	// rendering the original text.
	NoInserted bool

	// NoCommon, when true, suppresses unchanged spans from output.
	NoCommon bool

	// UseColor enables ANSI color output. When true the colors below are
	// used instead of the text markers.
	UseColor bool

	// DeleteColor is the ANSI escape sequence for deleted text.
	DeleteColor string

	// InsertColor is the ANSI escape sequence for inserted text.
	InsertColor string

	// ColorReset is the ANSI escape sequence to reset colors.
	ColorReset string
}

// DefaultFormatOptions returns FormatOptions with dwdiff-style markers.
func DefaultFormatOptions() FormatOptions {
	return FormatOptions{
		StartDelete: "[-",
		StopDelete:  "-]",
		StartInsert: "{+",
		StopInsert:  "+}",
		DeleteColor: ANSIDeleteColor,
		InsertColor: ANSIInsertColor,
		ColorReset:  ANSIReset,
	}
}

// FormatInline renders an inline view as marked-up text.
func FormatInline(iv InlineView, opts FormatOptions) string {
	var sb strings.Builder
	for _, s := range iv.Spans {
		writeSpan(&sb, s, opts)
	}
	return sb.String()
}

// FormatView renders one side of a DualView as marked-up text. Pass the
// OriginalView for the deletion pane or the CorrectedView for the insertion
// pane.
func FormatView(spans []Span, opts FormatOptions) string {
	var sb strings.Builder
	for _, s := range spans {
		writeSpan(&sb, s, opts)
	}
	return sb.String()
}

func writeSpan(sb *strings.Builder, s Span, opts FormatOptions) {
	switch s.Kind {
	case Equal:
		if !opts.NoCommon {
			sb.WriteString(s.Text)
		}
	case Delete:
		if opts.NoDeleted {
			return
		}
		if opts.UseColor {
			sb.WriteString(opts.DeleteColor)
			sb.WriteString(s.Text)
			sb.WriteString(opts.ColorReset)
			return
		}
		sb.WriteString(opts.StartDelete)
		sb.WriteString(s.Text)
		sb.WriteString(opts.StopDelete)
	case Insert:
		if opts.NoInserted {
			return
		}
		if opts.UseColor {
			sb.WriteString(opts.InsertColor)
			sb.WriteString(s.Text)
			sb.WriteString(opts.ColorReset)
			return
		}
		sb.WriteString(opts.StartInsert)
		sb.WriteString(s.Text)
		sb.WriteString(opts.StopInsert)
	}
}
