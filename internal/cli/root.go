// Package cli implements the docx2dict command line interface.
package cli

import (
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/korpuslab/docx2dict/internal/config"
)

var (
	flagConfig  string
	flagVerbose bool
	flagQuiet   bool
)

var rootCmd = &cobra.Command{
	Use:   "docx2dict",
	Short: "Extract structured dictionary entries from styled Word documents",
	Long: `docx2dict parses a dictionary typeset as a Word document into
structured records: headwords, pronunciations, senses and examples.

The parser works on styled characters, so inline formatting (bold
headwords, italic examples, superscript homonym indices, phonetic fonts)
drives the extraction.`,
	SilenceUsage: true,
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "config file path (default ~/"+config.ConfigDirName+"/"+config.ConfigFileName+")")
	rootCmd.PersistentFlags().BoolVarP(&flagVerbose, "verbose", "v", false, "verbose output")
	rootCmd.PersistentFlags().BoolVarP(&flagQuiet, "quiet", "q", false, "suppress advisory output")
}

// loadConfig loads the effective configuration.
func loadConfig() (*config.Config, error) {
	if flagConfig != "" {
		return config.NewLoaderWithPath(flagConfig).Load()
	}
	loader, err := config.NewLoader()
	if err != nil {
		return nil, err
	}
	return loader.Load()
}

// newLogger builds the stderr logger honoring --verbose / --quiet.
func newLogger() *slog.Logger {
	level := slog.LevelInfo
	if flagVerbose {
		level = slog.LevelDebug
	}
	if flagQuiet {
		level = slog.LevelError
	}
	return slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))
}
