package cmd

import (
	"fmt"
	"os"
	"sort"

	"github.com/goccy/go-yaml"
	"github.com/spf13/cobra"
	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/openchem/molmap"
	"github.com/openchem/molmap/internal/recordio"
	"github.com/openchem/molmap/pkg/constants"
	"github.com/openchem/molmap/pkg/pipeline"
)

var finalizeFlags struct {
	input     string
	output    string
	conflicts string
	anomalies string
	summaries string
	workers   int
	noZeros   bool
}

// finalizeCmd represents the finalize command.
var finalizeCmd = &cobra.Command{
	Use:   "finalize",
	Short: "Merge and fate partial conformer records",
	Long: `Finalize merges the partial records of each conformer into one canonical
record, normalizes its error codes, and assigns its fate.

The input is a JSON lines file of partial records. Records sharing a
conformer ID are merged; the finalized records are written out along with
optional conflict, anomaly, and per-topology summary reports.`,
	RunE: runFinalize,
}

func init() {
	rootCmd.AddCommand(finalizeCmd)

	finalizeCmd.Flags().StringVarP(&finalizeFlags.input, "input", "i", "", "JSON lines file of partial records (required)")
	finalizeCmd.Flags().StringVarP(&finalizeFlags.output, "output", "o", "", "JSON lines file for finalized records (required)")
	finalizeCmd.Flags().StringVar(&finalizeFlags.conflicts, "conflicts", "", "YAML file for merge conflict report")
	finalizeCmd.Flags().StringVar(&finalizeFlags.anomalies, "anomalies", "", "YAML file for advisory anomaly report")
	finalizeCmd.Flags().StringVar(&finalizeFlags.summaries, "summaries", "", "YAML file for per-topology statistics")
	finalizeCmd.Flags().IntVar(&finalizeFlags.workers, "workers", 0, "concurrent record groups (0 uses the built-in default)")
	finalizeCmd.Flags().BoolVar(&finalizeFlags.noZeros, "no-zero-scan", false, "skip the suspicious zero value scan")

	_ = finalizeCmd.MarkFlagRequired("input")
	_ = finalizeCmd.MarkFlagRequired("output")
}

func runFinalize(cmd *cobra.Command, _ []string) error {
	records, err := recordio.ReadFile(finalizeFlags.input)
	if err != nil {
		return err
	}

	opts := []molmap.Option{molmap.WithZeroValueScan(!finalizeFlags.noZeros)}
	if finalizeFlags.workers > 0 {
		opts = append(opts, molmap.WithWorkers(finalizeFlags.workers))
	}
	curator, err := molmap.New(opts...)
	if err != nil {
		return err
	}

	result, err := curator.Finalize(cmd.Context(), records)
	if err != nil {
		return err
	}

	if err := recordio.WriteFile(finalizeFlags.output, result.Conformers); err != nil {
		return err
	}
	if finalizeFlags.conflicts != "" {
		if err := writeYAML(finalizeFlags.conflicts, result.Conflicts); err != nil {
			return err
		}
	}
	if finalizeFlags.anomalies != "" {
		if err := writeYAML(finalizeFlags.anomalies, result.Anomalies); err != nil {
			return err
		}
	}
	if finalizeFlags.summaries != "" {
		if err := writeYAML(finalizeFlags.summaries, result.Summaries.Summaries()); err != nil {
			return err
		}
	}

	printRunStats(result)
	return nil
}

// printRunStats prints the human readable run roll-up.
func printRunStats(result *pipeline.Result) {
	p := message.NewPrinter(language.English)
	p.Printf("Finalized %d conformers (%d conflicts, %d anomalies, %d failures)\n",
		len(result.Conformers), len(result.Conflicts), len(result.Anomalies), len(result.Failures))

	fates := make([]string, 0, len(result.FateCounts))
	for fate := range result.FateCounts {
		fates = append(fates, fate)
	}
	sort.Strings(fates)
	for _, fate := range fates {
		p.Printf("  %s: %d\n", fate, result.FateCounts[fate])
	}
}

// writeYAML marshals v into a YAML file.
func writeYAML(path string, v any) error {
	encoded, err := encodeYAML(v)
	if err != nil {
		return fmt.Errorf("encoding %s: %w", path, err)
	}
	return os.WriteFile(path, encoded, constants.FilePermissions)
}

// encodeYAML marshals v as YAML.
func encodeYAML(v any) ([]byte, error) {
	return yaml.Marshal(v)
}
