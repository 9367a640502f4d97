package cli

import (
	"github.com/spf13/cobra"

	"github.com/roach88/catalog/internal/store"
)

// SelectOptions holds flags for the select command.
type SelectOptions struct {
	*RootOptions
	Shop string
}

// NewSelectCommand creates the select command.
func NewSelectCommand(rootOpts *RootOptions) *cobra.Command {
	opts := &SelectOptions{RootOptions: rootOpts}

	cmd := &cobra.Command{
		Use:   "select",
		Short: "Select the products of one shop",
		Long: `List the products whose shop title equals the given title exactly.

Matching is case-sensitive. An unknown shop yields an empty list.

Example:
  catalog select --select Store1`,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runSelect(opts, cmd)
		},
	}

	cmd.Flags().StringVarP(&opts.Shop, "select", "s", "", "the shop title to select by (required)")
	_ = cmd.MarkFlagRequired("select")

	return cmd
}

func runSelect(opts *SelectOptions, cmd *cobra.Command) error {
	formatter := newFormatter(opts.RootOptions, cmd)
	log := opts.logger()

	records, err := store.ListByShop(commandContext(cmd), opts.Database, opts.Shop)
	if err != nil {
		log.Error("select products failed", "shop", opts.Shop, "error", err)
		return reportError(formatter, "failed to select products", err)
	}
	log.Debug("selected products", "shop", opts.Shop, "count", len(records))

	return outputRecords(formatter, records)
}
