package cmd

import (
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/openchem/molmap/internal/recordio"
	"github.com/openchem/molmap/pkg/logging"
	"github.com/openchem/molmap/pkg/summary"
)

var summarizeFlags struct {
	input  string
	output string
}

// summarizeCmd represents the summarize command.
var summarizeCmd = &cobra.Command{
	Use:   "summarize",
	Short: "Roll finalized records up into per-topology statistics",
	Long: `Summarize folds finalized conformer records into one statistical summary
per bond topology: how many conformers were attempted, kept, failed, or
collapsed as duplicates, and how many other topologies matched.

Every input record must already carry a fate; run finalize first.`,
	RunE: runSummarize,
}

func init() {
	rootCmd.AddCommand(summarizeCmd)

	summarizeCmd.Flags().StringVarP(&summarizeFlags.input, "input", "i", "", "JSON lines file of finalized records (required)")
	summarizeCmd.Flags().StringVarP(&summarizeFlags.output, "output", "o", "", "YAML file for topology summaries (default: stdout)")

	_ = summarizeCmd.MarkFlagRequired("input")
}

func runSummarize(_ *cobra.Command, _ []string) error {
	records, err := recordio.ReadFile(summarizeFlags.input)
	if err != nil {
		return err
	}

	acc := summary.NewAccumulator()
	skipped := 0
	for _, record := range records {
		if err := acc.AddConformer(record); err != nil {
			logging.Warn().
				Int64("conformer_id", record.ConformerID).
				Err(err).
				Msg("Skipping record")
			skipped++
		}
	}

	summaries := acc.Summaries()
	if summarizeFlags.output != "" {
		if err := writeYAML(summarizeFlags.output, summaries); err != nil {
			return err
		}
	} else {
		encoded, err := encodeYAML(summaries)
		if err != nil {
			return err
		}
		if _, err := os.Stdout.Write(encoded); err != nil {
			return err
		}
	}

	p := message.NewPrinter(language.English)
	p.Printf("Summarized %d records into %d topologies (%d skipped)\n",
		len(records)-skipped, acc.Len(), skipped)
	return nil
}
