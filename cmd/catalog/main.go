// Command catalog records products and the shops they belong to in a local
// SQLite file.
package main

import (
	"context"
	"fmt"
	"os"

	"github.com/roach88/catalog/internal/cli"
)

func main() {
	cmd := cli.NewRootCommand()
	if err := cmd.ExecuteContext(context.Background()); err != nil {
		if !cli.IsReported(err) {
			fmt.Fprintln(os.Stderr, "Error:", err)
		}
		os.Exit(cli.GetExitCode(err))
	}
}
