// Package train handles the model training command
package train

import (
	"fmt"
	"io"
	"os"
	"strings"

	"fjacquet/expense-ml/cmd/root"
	"fjacquet/expense-ml/internal/models"

	"github.com/gocarina/gocsv"
	"github.com/shopspring/decimal"
	"github.com/spf13/cobra"
)

// Cmd represents the train command
var Cmd = &cobra.Command{
	Use:   "train",
	Short: "Train the statistical model from labeled examples",
	Long: `Train the per-user statistical model from a CSV file of labeled examples.
The file needs title and category columns; an amount column is optional.`,
	RunE: trainFunc,
}

func init() {
	Cmd.Flags().StringVarP(&root.TrainingFile, "input", "i", "", "CSV file with labeled training examples")
	_ = Cmd.MarkFlagRequired("input")
}

// trainingRow is the CSV shape of one labeled example. The amount cell is
// read as text so an empty cell stays an absent amount instead of a decimal
// parse failure.
type trainingRow struct {
	Title    string `csv:"title"`
	Amount   string `csv:"amount"`
	Category string `csv:"category"`
}

// readExamples parses a training CSV. Rows with an empty amount cell yield
// examples without an amount; a malformed amount fails the whole file with
// the offending line in the error.
func readExamples(r io.Reader) ([]models.TrainingExample, error) {
	var rows []*trainingRow
	if err := gocsv.Unmarshal(r, &rows); err != nil {
		return nil, fmt.Errorf("cannot parse training file: %w", err)
	}

	examples := make([]models.TrainingExample, 0, len(rows))
	for i, row := range rows {
		ex := models.TrainingExample{
			Title:    row.Title,
			Category: row.Category,
		}
		if cell := strings.TrimSpace(row.Amount); cell != "" {
			a, err := decimal.NewFromString(cell)
			if err != nil {
				return nil, fmt.Errorf("invalid amount %q on line %d: %w", row.Amount, i+2, err)
			}
			ex.Amount = &a
		}
		examples = append(examples, ex)
	}
	return examples, nil
}

func trainFunc(cmd *cobra.Command, args []string) error {
	root.Log.Info("Train command called")

	f, err := os.Open(root.TrainingFile)
	if err != nil {
		return fmt.Errorf("cannot open training file: %w", err)
	}
	defer func() {
		if err := f.Close(); err != nil {
			root.Log.Warnf("Failed to close training file: %v", err)
		}
	}()

	examples, err := readExamples(f)
	if err != nil {
		return err
	}

	accuracy, err := root.Engine().TrainModel(cmd.Context(), root.UserID, examples)
	if err != nil {
		return err
	}

	root.Log.WithField("accuracy", accuracy).Info("Model trained")
	fmt.Printf("trained on %d examples, held-out accuracy %.2f\n", len(examples), accuracy)
	return nil
}
