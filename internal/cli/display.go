package cli

import (
	"github.com/spf13/cobra"

	"github.com/roach88/catalog/internal/catalog"
	"github.com/roach88/catalog/internal/store"
)

// NewDisplayCommand creates the display command.
func NewDisplayCommand(rootOpts *RootOptions) *cobra.Command {
	return &cobra.Command{
		Use:           "display",
		Short:         "Display all products",
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			formatter := newFormatter(rootOpts, cmd)

			records, err := store.ListAll(commandContext(cmd), rootOpts.Database)
			if err != nil {
				rootOpts.logger().Error("list products failed", "error", err)
				return reportError(formatter, "failed to list products", err)
			}
			rootOpts.logger().Debug("listed products", "count", len(records))

			return outputRecords(formatter, records)
		},
	}
}

// outputRecords prints records as a table or a JSON document.
func outputRecords(formatter *OutputFormatter, records []catalog.Record) error {
	if formatter.Format == "json" {
		return formatter.Success(records)
	}
	RenderRecords(formatter.Writer, records)
	return nil
}
