// Package learn handles the preference learning command
package learn

import (
	"fjacquet/expense-ml/cmd/root"

	"github.com/spf13/cobra"
)

// Cmd represents the learn command
var Cmd = &cobra.Command{
	Use:   "learn",
	Short: "Record a user category preference",
	Long: `Record a category preference for an expense description. Learned
preferences take priority over every other resolution stage.`,
	RunE: learnFunc,
}

func init() {
	Cmd.Flags().StringVarP(&root.Title, "title", "t", "", "Expense description")
	Cmd.Flags().StringVarP(&root.Category, "category", "c", "", "Category to associate with the description")
	_ = Cmd.MarkFlagRequired("title")
	_ = Cmd.MarkFlagRequired("category")
}

func learnFunc(cmd *cobra.Command, args []string) error {
	root.Log.Info("Learn command called")

	if err := root.Engine().LearnPreference(cmd.Context(), root.UserID, root.Title, root.Category); err != nil {
		return err
	}

	root.Log.Infof("Preference recorded: %s -> %s", root.Title, root.Category)
	return nil
}
