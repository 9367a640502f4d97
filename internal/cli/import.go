package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/roach88/catalog/internal/seed"
	"github.com/roach88/catalog/internal/store"
)

// ImportResult is the JSON payload of a successful import.
type ImportResult struct {
	File     string `json:"file"`
	Imported int    `json:"imported"`
}

// NewImportCommand creates the import command.
func NewImportCommand(rootOpts *RootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "import <file>",
		Short: "Import products from a YAML or CUE seed file",
		Long: `Add every product listed in a seed file.

The file is validated before anything is written, and all products are added
in a single transaction: either all of them are stored or none is.

Example:
  catalog import ./seed.yaml
  catalog import ./seed.cue --format json`,
		Args:          cobra.ExactArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runImport(rootOpts, args[0], cmd)
		},
	}
}

func runImport(opts *RootOptions, file string, cmd *cobra.Command) error {
	formatter := newFormatter(opts, cmd)
	log := opts.logger()

	products, err := seed.Load(file)
	if err != nil {
		return reportError(formatter, "failed to load seed file", err)
	}
	log.Debug("seed file loaded", "file", file, "products", len(products))

	st, err := store.Open(opts.Database)
	if err != nil {
		return reportError(formatter, "failed to open catalog", err)
	}
	defer func() {
		if closeErr := st.Close(); closeErr != nil {
			log.Error("error closing database", "error", closeErr)
		}
	}()

	added, err := st.AddProducts(commandContext(cmd), products)
	if err != nil {
		log.Error("import failed", "file", file, "error", err)
		return reportError(formatter, "failed to import products", err)
	}

	result := ImportResult{File: file, Imported: len(added)}
	if formatter.Format == "json" {
		return formatter.Success(result)
	}
	return formatter.Success(fmt.Sprintf("Imported %d product(s) from %s", result.Imported, file))
}
