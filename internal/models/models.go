// Package models defines the domain types shared across the category
// resolution engine: keyword catalog entries, training examples, prediction
// results, and the error taxonomy.
package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// CategoryUncategorized is the terminal fallback label returned when no
// resolution stage produces a category.
const CategoryUncategorized = "uncategorized"

// Source identifies which resolution stage produced a prediction.
type Source string

const (
	// SourceUserPreference means the category came from a learned per-user override.
	SourceUserPreference Source = "userPreference"
	// SourceExactKeyword means a catalog keyword matched the title as a whole word.
	SourceExactKeyword Source = "exactKeyword"
	// SourceFuzzyKeyword means a catalog keyword matched approximately.
	SourceFuzzyKeyword Source = "fuzzyKeyword"
	// SourceStatisticalModel means the trained classifier produced the category.
	SourceStatisticalModel Source = "statisticalModel"
	// SourceAmountFallback means the amount-based rule of thumb was used.
	SourceAmountFallback Source = "amountFallback"
	// SourceDefault means every stage missed and the fixed default was returned.
	SourceDefault Source = "default"
)

// KeywordEntry maps a curated keyword to a category label. The catalog is an
// ordered sequence of these entries; position decides which of several
// matching keywords wins.
type KeywordEntry struct {
	Keyword  string `yaml:"keyword"`
	Category string `yaml:"category"`
}

// TrainingExample is a labeled expense used to train the statistical
// classifier. Examples are consumed during a training call and not retained.
type TrainingExample struct {
	Title    string           `csv:"title" yaml:"title"`
	Amount   *decimal.Decimal `csv:"amount" yaml:"amount,omitempty"`
	Category string           `csv:"category" yaml:"category"`
}

// PredictionResult is the outcome of a single category resolution.
type PredictionResult struct {
	Category   string  `json:"category" yaml:"category"`
	Confidence float64 `json:"confidence" yaml:"confidence"`
	Source     Source  `json:"source" yaml:"source"`
}

// ModelInfo describes a trained classifier artifact. It is persisted next to
// the model file so a loaded model keeps its provenance.
type ModelInfo struct {
	ID        string    `yaml:"id"`
	Labels    []string  `yaml:"labels"`
	Accuracy  float64   `yaml:"accuracy"`
	Examples  int       `yaml:"examples"`
	TrainedAt time.Time `yaml:"trained_at"`
}
