package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/korpuslab/docx2dict/internal/docx"
	"github.com/korpuslab/docx2dict/internal/normalize"
)

var detectCmd = &cobra.Command{
	Use:   "detect <file.docx>",
	Short: "Report the detected writing script of each entry",
	Long: `Report the container format of the file and the writing script
the detector guesses for each entry. The script drives which substitution
table fixes wrong-keyboard codepoints, so surprises here usually explain
surprising parse output.`,
	Args: cobra.ExactArgs(1),
	RunE: runDetect,
}

func init() {
	rootCmd.AddCommand(detectCmd)
}

func runDetect(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	format := docx.DetectFormat(args[0])
	fmt.Fprintf(cmd.OutOrStdout(), "format: %s\n", format)

	entries, err := readEntries(args[0], cfg.Continuations)
	if err != nil {
		return err
	}
	counts := map[normalize.Script]int{}
	for i, chars := range entries {
		script := normalize.DetectScript(chars)
		counts[script]++
		if flagVerbose {
			fmt.Fprintf(cmd.OutOrStdout(), "%4d  %-4s  %s\n", i+1, script, entryLabel(i, chars))
		}
	}
	for _, script := range []normalize.Script{normalize.ScriptLatin, normalize.ScriptCyrillic} {
		fmt.Fprintf(cmd.OutOrStdout(), "%s: %d entries\n", script, counts[script])
	}
	return nil
}
