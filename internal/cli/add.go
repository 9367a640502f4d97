package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/roach88/catalog/internal/catalog"
	"github.com/roach88/catalog/internal/store"
)

// AddOptions holds flags for the add command.
type AddOptions struct {
	*RootOptions
	Name  string
	Shop  string
	Price string
}

// NewAddCommand creates the add command.
func NewAddCommand(rootOpts *RootOptions) *cobra.Command {
	opts := &AddOptions{RootOptions: rootOpts}

	cmd := &cobra.Command{
		Use:   "add",
		Short: "Add a new product",
		Long: `Add a product to the catalog.

The product's shop is looked up by title and created if it does not exist yet.
The price is a single number or a comma-separated list of price points.

Example:
  catalog add --name Pen --shop Store1 --price 5
  catalog add -n Notebook -g Store1 -p "12,15"`,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runAdd(opts, cmd)
		},
	}

	cmd.Flags().StringVarP(&opts.Name, "name", "n", "", "the product's name (required)")
	cmd.Flags().StringVarP(&opts.Shop, "shop", "g", "", "the product's shop")
	cmd.Flags().StringVarP(&opts.Price, "price", "p", "", "the product's price, e.g. 5 or 12,15 (required)")
	_ = cmd.MarkFlagRequired("name")
	_ = cmd.MarkFlagRequired("price")

	return cmd
}

func runAdd(opts *AddOptions, cmd *cobra.Command) error {
	formatter := newFormatter(opts.RootOptions, cmd)
	log := opts.logger()

	price, err := catalog.ParsePriceList(opts.Price)
	if err != nil {
		return reportError(formatter, "invalid price", err)
	}

	log.Debug("adding product", "path", opts.Database, "name", opts.Name, "shop", opts.Shop, "price", price.String())
	product, err := store.AddProduct(commandContext(cmd), opts.Database, catalog.NewProduct{
		Name:  opts.Name,
		Shop:  opts.Shop,
		Price: price,
	})
	if err != nil {
		log.Error("add product failed", "error", err)
		return reportError(formatter, "failed to add product", err)
	}
	log.Debug("product added", "product_id", product.ID, "shop_id", product.ShopID)

	if formatter.Format == "json" {
		return formatter.Success(product)
	}
	return formatter.Success(fmt.Sprintf("Added product %q (id %d)", product.Name, product.ID))
}
