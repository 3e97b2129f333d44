// Package cli: catalog.go implements the "bitwig-uuid-collector catalog"
// command, which prints the devices a collection run will ask for.
package cli

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/shinji-kodama/bitwig-uuid-collector/internal/model"
)

// NewCatalogCommand creates the "catalog" cobra command.
func NewCatalogCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "catalog",
		Short: "List the devices in collection order",
		Long: `List the devices a collection run prompts for, in prompt order.

Examples:
  bitwig-uuid-collector catalog
  bitwig-uuid-collector catalog --json`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return printCatalog(cmd.OutOrStdout(), model.DefaultCatalog())
		},
	}
}

// catalogJSON is the JSON output structure of the catalog command.
type catalogJSON struct {
	Devices []string `json:"devices"`
}

// printCatalog writes the catalog in text or JSON format, depending on
// the global --json flag.
func printCatalog(w io.Writer, catalog model.Catalog) error {
	if IsJSONOutput() {
		data, err := json.MarshalIndent(catalogJSON{Devices: catalog}, "", "  ")
		if err != nil {
			return err
		}
		fmt.Fprintln(w, string(data))
		return nil
	}

	for i, name := range catalog {
		fmt.Fprintf(w, "%2d. %s\n", i+1, name)
	}
	return nil
}
