package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/korpuslab/docx2dict/internal/lexeme"
)

var entriesFull bool

var entriesCmd = &cobra.Command{
	Use:   "entries <file.docx>",
	Short: "List the segmented entries of a document",
	Long: `List the entries the segmenter finds in a document, without
parsing them. Useful for checking segmentation before a full parse.`,
	Args: cobra.ExactArgs(1),
	RunE: runEntries,
}

func init() {
	entriesCmd.Flags().BoolVar(&entriesFull, "full", false, "print full entry text instead of the first line")

	rootCmd.AddCommand(entriesCmd)
}

func runEntries(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	entries, err := readEntries(args[0], cfg.Continuations)
	if err != nil {
		return err
	}

	for i, chars := range entries {
		text := lexeme.Text(chars)
		if !entriesFull {
			if cut := strings.IndexByte(text, '\n'); cut >= 0 {
				text = text[:cut]
			}
		}
		fmt.Fprintf(cmd.OutOrStdout(), "%4d  %s\n", i+1, text)
	}
	return nil
}
