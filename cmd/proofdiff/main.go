// Command proofdiff compares an original text against its corrected
// revision and prints the changes.
//
// Usage:
//
//	proofdiff original.txt corrected.txt
//	proofdiff --words original.txt corrected.txt
//	cat draft.txt | proofdiff --stdin corrected.txt
package main

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"github.com/linqiu/proofdiff"
	flag "github.com/spf13/pflag"
)

// Version is set at build time via -ldflags
var Version = "dev"

// Color for the changed-paragraph marker in paragraph mode (bold yellow)
const changeMarkerColor = "\033[0;33;1m"

// Exit codes
const (
	exitIdentical = 0 // texts are identical
	exitDiffer    = 1 // texts differ
	exitError     = 2 // error occurred
)

// cliFlags holds all parsed command-line flags
type cliFlags struct {
	words      *bool
	paragraphs *bool
	context    *int
	sideBySide *bool
	stdinMode  *bool
	noColor    *bool
	noDeleted  *bool
	noInserted *bool
	noCommon   *bool
	statistics *bool
	timeout    *time.Duration
	positional *bool
	threshold  *float64
	startDel   *string
	stopDel    *string
	startIns   *string
	stopIns    *string
	help       *bool
	version    *bool
}

// defineFlags sets up all command-line flags
func defineFlags() cliFlags {
	f := cliFlags{
		words:      flag.Bool("words", false, "compare whitespace-delimited words instead of characters"),
		paragraphs: flag.Bool("paragraphs", false, "compare paragraph by paragraph"),
		context:    flag.IntP("context", "C", 0, "show N unchanged paragraphs around changes (implies --paragraphs)"),
		sideBySide: flag.BoolP("side-by-side", "S", false, "print the original and corrected panes separately"),
		stdinMode:  flag.Bool("stdin", false, "read original from stdin, corrected from argument"),
		noColor:    flag.Bool("no-color", false, "disable colored output"),
		noDeleted:  flag.BoolP("no-deleted", "1", false, "suppress deleted text (show corrected only)"),
		noInserted: flag.BoolP("no-inserted", "2", false, "suppress inserted text (show original only)"),
		noCommon:   flag.BoolP("no-common", "3", false, "suppress unchanged text"),
		statistics: flag.BoolP("statistics", "s", false, "print statistics"),
		timeout:    flag.Duration("timeout", time.Second, "alignment time budget (0 for unlimited)"),
		positional: flag.Bool("positional", false, "pair replaced paragraphs by position instead of similarity"),
		threshold:  flag.Float64("threshold", 0.1, "minimum similarity for paragraph pairing (0.0-1.0)"),
		startDel:   flag.StringP("start-delete", "w", "[-", "string to mark begin of deleted text"),
		stopDel:    flag.StringP("stop-delete", "x", "-]", "string to mark end of deleted text"),
		startIns:   flag.StringP("start-insert", "y", "{+", "string to mark begin of inserted text"),
		stopIns:    flag.StringP("stop-insert", "z", "+}", "string to mark end of inserted text"),
		help:       flag.BoolP("help", "h", false, "show help"),
		version:    flag.BoolP("version", "v", false, "show version"),
	}

	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: %s [options] original corrected\n", os.Args[0])
		fmt.Fprintf(os.Stderr, "       %s [options] -stdin corrected\n", os.Args[0])
		fmt.Fprintf(os.Stderr, "\nCompare an original text against its corrected revision.\n\n")
		fmt.Fprintf(os.Stderr, "Options:\n")
		flag.PrintDefaults()
		fmt.Fprintf(os.Stderr, "\nExamples:\n")
		fmt.Fprintf(os.Stderr, "  %s draft.txt corrected.txt\n", os.Args[0])
		fmt.Fprintf(os.Stderr, "  %s --paragraphs -C 2 draft.txt corrected.txt\n", os.Args[0])
		fmt.Fprintf(os.Stderr, "  %s -1 draft.txt corrected.txt   # corrected text only\n", os.Args[0])
		fmt.Fprintf(os.Stderr, "\nExit codes:\n")
		fmt.Fprintf(os.Stderr, "  0  texts are identical\n")
		fmt.Fprintf(os.Stderr, "  1  texts differ\n")
		fmt.Fprintf(os.Stderr, "  2  error occurred\n")
	}

	return f
}

// readInputTexts reads input from stdin or files
func readInputTexts(stdinMode bool) (original, corrected string) {
	var err error
	if stdinMode {
		if flag.NArg() < 1 {
			fmt.Fprintln(os.Stderr, "Error: -stdin mode requires one file argument")
			os.Exit(exitError)
		}
		original, err = readStdin()
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error reading stdin: %v\n", err)
			os.Exit(exitError)
		}
		corrected, err = readFile(flag.Arg(0))
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error reading %s: %v\n", flag.Arg(0), err)
			os.Exit(exitError)
		}
	} else {
		if flag.NArg() < 2 {
			fmt.Fprintln(os.Stderr, "Error: requires two file arguments")
			flag.Usage()
			os.Exit(exitError)
		}
		original, err = readFile(flag.Arg(0))
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error reading %s: %v\n", flag.Arg(0), err)
			os.Exit(exitError)
		}
		corrected, err = readFile(flag.Arg(1))
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error reading %s: %v\n", flag.Arg(1), err)
			os.Exit(exitError)
		}
	}
	return
}

func main() {
	f := defineFlags()
	flag.Parse()

	if *f.version {
		fmt.Printf("proofdiff version %s\n", Version)
		os.Exit(exitIdentical)
	}
	if *f.help {
		flag.Usage()
		os.Exit(exitIdentical)
	}

	if *f.threshold < 0 || *f.threshold > 1 {
		fmt.Fprintln(os.Stderr, "Error: threshold must be a number between 0.0 and 1.0")
		os.Exit(exitError)
	}

	granularity := proofdiff.Chars
	if *f.words {
		granularity = proofdiff.Words
	}

	alignOpts := proofdiff.DefaultAlignOptions()
	alignOpts.Timeout = *f.timeout

	useColor := !*f.noColor && os.Getenv("NO_COLOR") == "" && isTerminal(os.Stdout)
	fmtOpts := proofdiff.DefaultFormatOptions()
	fmtOpts.StartDelete = *f.startDel
	fmtOpts.StopDelete = *f.stopDel
	fmtOpts.StartInsert = *f.startIns
	fmtOpts.StopInsert = *f.stopIns
	fmtOpts.NoDeleted = *f.noDeleted
	fmtOpts.NoInserted = *f.noInserted
	fmtOpts.NoCommon = *f.noCommon
	fmtOpts.UseColor = useColor

	original, corrected := readInputTexts(*f.stdinMode)

	// Context implies paragraph mode
	paragraphMode := *f.paragraphs
	if *f.context > 0 {
		paragraphMode = true
	}

	var st proofdiff.DiffStatistics
	if paragraphMode {
		popts := proofdiff.DefaultParagraphOptions()
		popts.Granularity = granularity
		popts.Align = alignOpts
		popts.SimilarityThreshold = *f.threshold
		if *f.positional {
			popts.Pairing = proofdiff.PairByPosition
		}

		pd := proofdiff.DiffParagraphs(original, corrected, popts)
		st = pd.Stats
		printParagraphs(proofdiff.FilterChanged(pd.Paragraphs, *f.context), fmtOpts, useColor)
	} else {
		dv, err := proofdiff.DiffWithOptions(original, corrected, granularity, alignOpts)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(exitError)
		}
		st = proofdiff.ComputeStatistics(dv)

		if *f.sideBySide {
			fmt.Println(proofdiff.FormatView(dv.OriginalView, fmtOpts))
			fmt.Println("---")
			fmt.Println(proofdiff.FormatView(dv.CorrectedView, fmtOpts))
		} else {
			iv, err := proofdiff.DiffInlineWithOptions(original, corrected, granularity, alignOpts)
			if err != nil {
				fmt.Fprintf(os.Stderr, "Error: %v\n", err)
				os.Exit(exitError)
			}
			fmt.Println(proofdiff.FormatInline(iv, fmtOpts))
		}
	}

	if *f.statistics {
		printStatistics(st)
	}

	if st.Changes > 0 {
		os.Exit(exitDiffer)
	}
	os.Exit(exitIdentical)
}

// printParagraphs prints paragraph diff results, marking changed paragraphs
func printParagraphs(paragraphs []proofdiff.ParagraphResult, fmtOpts proofdiff.FormatOptions, useColor bool) {
	lastLine := 0
	for _, p := range paragraphs {
		line := p.CorrectedLine
		if line == 0 {
			line = p.OriginalLine
		}
		if lastLine > 0 && line > lastLine+1 {
			fmt.Println("---")
		}
		lastLine = line

		prefix := "  "
		if p.HasChanges {
			prefix = "| "
			if useColor {
				prefix = changeMarkerColor + "| " + proofdiff.ANSIReset
			}
		}
		fmt.Printf("%s%4d: %s\n", prefix, line, proofdiff.FormatInline(p.Inline, fmtOpts))
	}
}

// printStatistics prints diff statistics to stderr
func printStatistics(st proofdiff.DiffStatistics) {
	fmt.Fprintln(os.Stderr, "")
	fmt.Fprintf(os.Stderr, "insertions: %d  deletions: %d  changes: %d  accuracy: %.2f%%\n",
		st.Insertions, st.Deletions, st.Changes, st.Accuracy)
}

// readFile reads an entire file into a string
func readFile(path string) (string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return "", err
	}
	return string(data), nil
}

// readStdin reads all of stdin into a string
func readStdin() (string, error) {
	reader := bufio.NewReader(os.Stdin)
	var sb strings.Builder
	for {
		line, err := reader.ReadString('\n')
		sb.WriteString(line)
		if err == io.EOF {
			break
		}
		if err != nil {
			return "", err
		}
	}
	return sb.String(), nil
}

// isTerminal returns true if the file is a terminal
func isTerminal(f *os.File) bool {
	fi, err := f.Stat()
	if err != nil {
		return false
	}
	return (fi.Mode() & os.ModeCharDevice) != 0
}
