package cli

import (
	"errors"
	"fmt"
	"os"
	"runtime"
	"strings"

	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"github.com/korpuslab/docx2dict/internal/diag"
	"github.com/korpuslab/docx2dict/internal/docx"
	"github.com/korpuslab/docx2dict/internal/grammar"
	"github.com/korpuslab/docx2dict/internal/lexeme"
	"github.com/korpuslab/docx2dict/internal/normalize"
	"github.com/korpuslab/docx2dict/internal/output"
	"github.com/korpuslab/docx2dict/internal/parse"
)

var (
	parseOutput string
	parseJobs   int
)

var parseCmd = &cobra.Command{
	Use:   "parse <file.docx>",
	Short: "Parse a dictionary document into YAML records",
	Long: `Parse a dictionary document into YAML records.

Entries are segmented by paragraph boldness, parsed independently (and
concurrently, see --jobs), and written as a YAML sequence. An entry that
fails to parse is reported on stderr with a window around the failure
position, and the run continues with the remaining entries.`,
	Args: cobra.ExactArgs(1),
	RunE: runParse,
}

func init() {
	parseCmd.Flags().StringVarP(&parseOutput, "output", "o", "", "output file path (default: stdout)")
	parseCmd.Flags().IntVarP(&parseJobs, "jobs", "j", 0, "entries parsed concurrently (default: one per CPU)")

	rootCmd.AddCommand(parseCmd)
}

func runParse(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}
	logger := newLogger()

	entries, err := readEntries(args[0], cfg.Continuations)
	if err != nil {
		return err
	}
	logger.Debug("segmented document", "entries", len(entries))

	g, err := grammar.New()
	if err != nil {
		return fmt.Errorf("failed to compile grammar: %w", err)
	}

	jobs := parseJobs
	if jobs <= 0 {
		jobs = cfg.Jobs
	}
	if jobs <= 0 {
		jobs = runtime.NumCPU()
	}

	// One slot per entry: entries are independent, so results can be
	// collected in any order and reassembled by index.
	records := make([]*grammar.Entry, len(entries))
	errs := make([]error, len(entries))
	var group errgroup.Group
	group.SetLimit(jobs)
	for i, chars := range entries {
		i, chars := i, chars
		group.Go(func() error {
			sink := diag.ForEntry(diag.NewSlog(logger), entryLabel(i, chars))
			records[i], errs[i] = g.ParseEntry(chars, sink)
			return nil
		})
	}
	if err := group.Wait(); err != nil {
		return err
	}

	var parsed []*grammar.Entry
	var failures []output.EntryFailure
	failed := 0
	for i, err := range errs {
		if err == nil {
			parsed = append(parsed, records[i])
			continue
		}
		failed++
		label := entryLabel(i, entries[i])
		reportEntryError(cmd, label, err, cfg.WindowWidth)
		if cfg.Output.KeepFailures {
			failures = append(failures, output.EntryFailure{Label: label, Message: err.Error()})
		}
	}

	data, err := output.MarshalWithFailures(parsed, failures)
	if err != nil {
		return err
	}

	outPath := parseOutput
	if outPath == "" {
		outPath = cfg.Output.Path
	}
	if outPath == "" {
		fmt.Fprint(cmd.OutOrStdout(), string(data))
	} else if err := os.WriteFile(outPath, data, 0644); err != nil {
		return fmt.Errorf("failed to write output: %w", err)
	}

	if failed > 0 && !flagQuiet {
		fmt.Fprintf(cmd.ErrOrStderr(), "parsed %d of %d entries (%d failed)\n",
			len(parsed), len(entries), failed)
	}
	return nil
}

// readEntries extracts the document's paragraphs and groups them into
// entry buffers.
func readEntries(path, continuations string) ([][]lexeme.Character, error) {
	r, err := docx.Open(path)
	if err != nil {
		return nil, err
	}
	defer r.Close()

	paragraphs, err := r.Paragraphs()
	if err != nil {
		return nil, fmt.Errorf("failed to extract paragraphs: %w", err)
	}
	seg := lexeme.Segmenter{Continuations: continuations}
	return seg.Segment(paragraphs), nil
}

// entryLabel identifies an entry in diagnostics: its ordinal plus the
// first word of its raw text.
func entryLabel(i int, chars []lexeme.Character) string {
	text := lexeme.Text(chars)
	if cut := strings.IndexFunc(text, func(r rune) bool { return r == ' ' || r == '\n' }); cut > 0 {
		text = text[:cut]
	}
	if runes := []rune(text); len(runes) > 24 {
		text = string(runes[:24])
	}
	return fmt.Sprintf("entry %d %q", i+1, text)
}

func reportEntryError(cmd *cobra.Command, label string, err error, width int) {
	if flagQuiet {
		return
	}
	var failure *parse.Failure
	if errors.As(err, &failure) {
		window, caret := failure.Describe(width)
		fmt.Fprintf(cmd.ErrOrStderr(), "%s: %v\n  %s\n  %s^\n",
			label, failure, window, strings.Repeat(" ", caret))
		return
	}
	var glyph *normalize.GlyphError
	if errors.As(err, &glyph) {
		fmt.Fprintf(cmd.ErrOrStderr(), "%s: unreadable glyph: %v\n", label, glyph)
		return
	}
	fmt.Fprintf(cmd.ErrOrStderr(), "%s: %v\n", label, err)
}
