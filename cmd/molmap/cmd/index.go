package cmd

import (
	"github.com/spf13/cobra"
	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/openchem/molmap/internal/recordio"
	"github.com/openchem/molmap/internal/store"
	"github.com/openchem/molmap/pkg/constants"
)

var indexFlags struct {
	input     string
	database  string
	batchSize int
}

// indexCmd represents the index command.
var indexCmd = &cobra.Command{
	Use:   "index",
	Short: "Index finalized records into a SQLite database",
	Long: `Index loads finalized conformer records into a SQLite database supporting
lookups by conformer ID, bond topology ID, and SMILES string.`,
	RunE: runIndex,
}

func init() {
	rootCmd.AddCommand(indexCmd)

	indexCmd.Flags().StringVarP(&indexFlags.input, "input", "i", "", "JSON lines file of finalized records (required)")
	indexCmd.Flags().StringVar(&indexFlags.database, "db", constants.DefaultDatabaseFile, "SQLite database path")
	indexCmd.Flags().IntVar(&indexFlags.batchSize, "batch-size", store.DefaultBatchSize, "records per insert transaction")

	_ = indexCmd.MarkFlagRequired("input")
}

func runIndex(cmd *cobra.Command, _ []string) error {
	records, err := recordio.ReadFile(indexFlags.input)
	if err != nil {
		return err
	}

	s, err := store.Create(indexFlags.database)
	if err != nil {
		return err
	}
	defer func() { _ = s.Close() }()

	if err := s.BulkInsert(cmd.Context(), records, indexFlags.batchSize); err != nil {
		return err
	}

	count, err := s.Count(cmd.Context())
	if err != nil {
		return err
	}

	p := message.NewPrinter(language.English)
	p.Printf("Indexed %d records into %s (%d total)\n",
		len(records), indexFlags.database, count)
	return nil
}
