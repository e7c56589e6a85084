package classifier

import (
	"math/rand"
	"sort"
	"strings"

	"fjacquet/expense-ml/internal/models"
)

// splitSeed fixes the train/validation shuffle so repeated trainings of the
// same example set produce identical splits.
const splitSeed = 42

// heldOutFraction returns the validation share: 10% for small example sets,
// 20% otherwise.
func heldOutFraction(n int) float64 {
	if n < 50 {
		return 0.1
	}
	return 0.2
}

// splitExamples partitions examples into train and validation subsets using
// a deterministic seeded shuffle. The split is stratified (class proportions
// preserved) only when every class has at least 2 examples; otherwise it is
// a plain shuffle. At least one example always lands in each subset.
func splitExamples(examples []models.TrainingExample) (train, holdout []models.TrainingExample) {
	frac := heldOutFraction(len(examples))
	rng := rand.New(rand.NewSource(splitSeed))

	byClass := make(map[string][]models.TrainingExample)
	for _, ex := range examples {
		label := strings.TrimSpace(ex.Category)
		byClass[label] = append(byClass[label], ex)
	}

	stratify := true
	for _, group := range byClass {
		if len(group) < 2 {
			stratify = false
			break
		}
	}

	if !stratify {
		shuffled := make([]models.TrainingExample, len(examples))
		copy(shuffled, examples)
		rng.Shuffle(len(shuffled), func(i, j int) {
			shuffled[i], shuffled[j] = shuffled[j], shuffled[i]
		})
		held := int(float64(len(shuffled)) * frac)
		if held < 1 {
			held = 1
		}
		return shuffled[held:], shuffled[:held]
	}

	// Deterministic order over classes; map iteration order is not stable.
	labels := make([]string, 0, len(byClass))
	for label := range byClass {
		labels = append(labels, label)
	}
	sort.Strings(labels)

	for _, label := range labels {
		group := byClass[label]
		rng.Shuffle(len(group), func(i, j int) {
			group[i], group[j] = group[j], group[i]
		})
		held := int(float64(len(group)) * frac)
		holdout = append(holdout, group[:held]...)
		train = append(train, group[held:]...)
	}

	// Small stratified groups can round every per-class holdout to zero.
	if len(holdout) == 0 {
		holdout = append(holdout, train[len(train)-1])
		train = train[:len(train)-1]
	}
	return train, holdout
}
