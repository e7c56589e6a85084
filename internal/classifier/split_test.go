package classifier

import (
	"fmt"
	"testing"

	"fjacquet/expense-ml/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func makeExamples(perClass map[string]int) []models.TrainingExample {
	var out []models.TrainingExample
	for label, n := range perClass {
		for i := 0; i < n; i++ {
			out = append(out, models.TrainingExample{
				Title:    fmt.Sprintf("%s example %d", label, i),
				Category: label,
			})
		}
	}
	return out
}

func TestHeldOutFraction(t *testing.T) {
	assert.Equal(t, 0.1, heldOutFraction(10))
	assert.Equal(t, 0.1, heldOutFraction(49))
	assert.Equal(t, 0.2, heldOutFraction(50))
	assert.Equal(t, 0.2, heldOutFraction(500))
}

func TestSplitExamples_Deterministic(t *testing.T) {
	examples := makeExamples(map[string]int{"cab": 30, "dining": 30})

	train1, holdout1 := splitExamples(examples)
	train2, holdout2 := splitExamples(examples)

	assert.Equal(t, train1, train2)
	assert.Equal(t, holdout1, holdout2)
}

func TestSplitExamples_PartitionsWithoutLoss(t *testing.T) {
	examples := makeExamples(map[string]int{"cab": 25, "dining": 25})

	train, holdout := splitExamples(examples)

	assert.Equal(t, len(examples), len(train)+len(holdout))
	assert.NotEmpty(t, train)
	assert.NotEmpty(t, holdout)
}

func TestSplitExamples_StratifiedProportions(t *testing.T) {
	examples := makeExamples(map[string]int{"cab": 50, "dining": 50})

	_, holdout := splitExamples(examples)

	// 20% of each class: 10 + 10
	counts := make(map[string]int)
	for _, ex := range holdout {
		counts[ex.Category]++
	}
	assert.Equal(t, 10, counts["cab"])
	assert.Equal(t, 10, counts["dining"])
}

func TestSplitExamples_SingletonClassDisablesStratification(t *testing.T) {
	examples := makeExamples(map[string]int{"cab": 15, "dining": 1})

	train, holdout := splitExamples(examples)

	require.Equal(t, len(examples), len(train)+len(holdout))
	assert.GreaterOrEqual(t, len(holdout), 1)
}

func TestSplitExamples_SmallGroupsStillYieldHoldout(t *testing.T) {
	// 10% of every per-class group rounds to zero, forcing the fallback
	// that moves one example into the holdout.
	examples := makeExamples(map[string]int{"cab": 5, "dining": 5})

	train, holdout := splitExamples(examples)

	require.Len(t, holdout, 1)
	assert.Len(t, train, 9)
}
