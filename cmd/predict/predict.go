// Package predict handles the category prediction command
package predict

import (
	"fmt"

	"fjacquet/expense-ml/cmd/root"

	"github.com/shopspring/decimal"
	"github.com/spf13/cobra"
)

// Cmd represents the predict command
var Cmd = &cobra.Command{
	Use:   "predict",
	Short: "Predict a category for an expense description",
	Long: `Predict a category for a free-text expense description using learned
preferences, keyword matching and the trained statistical model.`,
	RunE: predictFunc,
}

func init() {
	Cmd.Flags().StringVarP(&root.Title, "title", "t", "", "Expense description to categorize")
	Cmd.Flags().StringVarP(&root.Amount, "amount", "a", "", "Expense amount (optional)")
	_ = Cmd.MarkFlagRequired("title")
}

func predictFunc(cmd *cobra.Command, args []string) error {
	root.Log.Info("Predict command called")

	var amount *decimal.Decimal
	if root.Amount != "" {
		a, err := decimal.NewFromString(root.Amount)
		if err != nil {
			return fmt.Errorf("invalid amount %q: %w", root.Amount, err)
		}
		amount = &a
	}

	result, err := root.Engine().PredictCategory(cmd.Context(), root.UserID, root.Title, amount)
	if err != nil {
		return err
	}

	root.Log.Infof("Category: %s (confidence %.2f, source %s)", result.Category, result.Confidence, result.Source)
	fmt.Printf("category: %s\nconfidence: %.2f\nsource: %s\n", result.Category, result.Confidence, result.Source)
	return nil
}
