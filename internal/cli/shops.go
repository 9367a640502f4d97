package cli

import (
	"github.com/spf13/cobra"

	"github.com/roach88/catalog/internal/store"
)

// NewShopsCommand creates the shops command.
func NewShopsCommand(rootOpts *RootOptions) *cobra.Command {
	return &cobra.Command{
		Use:           "shops",
		Short:         "List shops",
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			formatter := newFormatter(rootOpts, cmd)

			shops, err := store.ListShops(commandContext(cmd), rootOpts.Database)
			if err != nil {
				rootOpts.logger().Error("list shops failed", "error", err)
				return reportError(formatter, "failed to list shops", err)
			}

			if formatter.Format == "json" {
				return formatter.Success(shops)
			}
			RenderShops(formatter.Writer, shops)
			return nil
		},
	}
}
