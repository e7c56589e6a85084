// Package catalog handles the keyword catalog inspection commands
package catalog

import (
	"fmt"

	"fjacquet/expense-ml/cmd/root"
	"fjacquet/expense-ml/internal/catalog"
	"fjacquet/expense-ml/internal/logging"

	"github.com/spf13/cobra"
)

// Cmd represents the catalog command
var Cmd = &cobra.Command{
	Use:   "catalog",
	Short: "Inspect the keyword catalog",
	Long: `Inspect the keyword catalog used for exact and fuzzy matching, with
regional overrides applied in match order.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		return cmd.Help()
	},
}

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List the keyword catalog entries",
	Long:  `List the catalog entries in match order. The first matching entry wins.`,
	RunE:  listFunc,
}

func init() {
	Cmd.AddCommand(listCmd)
}

func listFunc(cmd *cobra.Command, args []string) error {
	root.Log.Info("Catalog list command called")

	cat := catalog.New(root.Cfg.Catalog.File, root.Cfg.Catalog.RegionalFile, logging.NewLogrusAdapterFromLogger(root.Log))
	for _, entry := range cat.Entries() {
		fmt.Printf("%-30s %s\n", entry.Keyword, entry.Category)
	}
	root.Log.WithField("count", cat.Len()).Debug("Catalog listed")
	return nil
}
