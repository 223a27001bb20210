package cmd

import (
	"github.com/spf13/cobra"
	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/openchem/molmap"
	"github.com/openchem/molmap/internal/recordio"
)

var standardFlags struct {
	input  string
	output string
}

// standardCmd represents the standard command.
var standardCmd = &cobra.Command{
	Use:   "standard",
	Short: "Filter finalized records down to the standard release",
	Long: `Standard selects the finalized records that belong in the standard release
and strips each one down to the properties that release is allowed to ship.

Duplicates, complete-only records, and records whose calculation did not
come back clean are excluded.`,
	RunE: runStandard,
}

func init() {
	rootCmd.AddCommand(standardCmd)

	standardCmd.Flags().StringVarP(&standardFlags.input, "input", "i", "", "JSON lines file of finalized records (required)")
	standardCmd.Flags().StringVarP(&standardFlags.output, "output", "o", "", "JSON lines file for released records (required)")

	_ = standardCmd.MarkFlagRequired("input")
	_ = standardCmd.MarkFlagRequired("output")
}

func runStandard(_ *cobra.Command, _ []string) error {
	records, err := recordio.ReadFile(standardFlags.input)
	if err != nil {
		return err
	}

	curator, err := molmap.New()
	if err != nil {
		return err
	}
	released := curator.StandardRelease(records)

	if err := recordio.WriteFile(standardFlags.output, released); err != nil {
		return err
	}

	p := message.NewPrinter(language.English)
	p.Printf("Released %d of %d records to the standard database\n",
		len(released), len(records))
	return nil
}
