package main

import (
	"fmt"
	"os"
	"strconv"

	"github.com/cleitonmarx/docexplore/internal/app"
	"github.com/spf13/cobra"
)

// runApp runs the application once the command line has been exported to the environment.
var runApp = func() error {
	return app.NewDocExploreApp().
		Introspect(&app.ReportLoggerIntrospector{}).
		Run()
}

func main() {
	if err := newRootCommand().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func newRootCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "docexplore [path]",
		Short: "Match document paragraphs against a topic taxonomy by embedding similarity",
		Long: `docexplore reads the "docs" and "topics" sheets of a workbook, embeds every
paragraph and every "topic: subtopic" label, and writes a JSON report with every
pair whose cosine similarity is at least the cutoff. Embeddings are cached, so
unchanged texts are never sent to the provider twice.`,
		Args:          cobra.MaximumNArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := exportFlags(cmd, args); err != nil {
				return err
			}
			return runApp()
		},
	}

	cmd.Flags().Float64("cutoff", 0.75, "Minimum similarity cutoff")
	cmd.Flags().StringP("output", "o", "docexplore.json", "Output file")
	cmd.Flags().String("store", "file", "Embedding cache backend (file|postgres)")
	cmd.Flags().String("cache-dir", "~/.docexplore-embeddings", "Embedding cache directory for the file backend")
	cmd.Flags().String("model", "", "Embedding model identifier")
	return cmd
}

// flagEnv maps command line flags to the configuration keys they override.
var flagEnv = map[string]string{
	"output":    "OUTPUT_PATH",
	"store":     "EMBEDDING_STORE",
	"cache-dir": "EMBEDDING_CACHE_DIR",
	"model":     "LLM_EMBEDDING_MODEL",
}

// exportFlags sets the configuration keys of every flag given on the command
// line. Flags left at their default keep whatever the environment holds.
func exportFlags(cmd *cobra.Command, args []string) error {
	if len(args) == 1 {
		if err := os.Setenv("INPUT_PATH", args[0]); err != nil {
			return err
		}
	}

	if cmd.Flags().Changed("cutoff") {
		cutoff, err := cmd.Flags().GetFloat64("cutoff")
		if err != nil {
			return err
		}
		if err := os.Setenv("SIMILARITY_CUTOFF", strconv.FormatFloat(cutoff, 'g', -1, 64)); err != nil {
			return err
		}
	}

	for flag, key := range flagEnv {
		if !cmd.Flags().Changed(flag) {
			continue
		}
		value, err := cmd.Flags().GetString(flag)
		if err != nil {
			return err
		}
		if err := os.Setenv(key, value); err != nil {
			return err
		}
	}
	return nil
}
