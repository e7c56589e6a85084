package engine

import (
	"context"

	"fjacquet/expense-ml/internal/catalog"
	"fjacquet/expense-ml/internal/classifier"
	"fjacquet/expense-ml/internal/logging"
	"fjacquet/expense-ml/internal/models"
	"fjacquet/expense-ml/internal/normalizer"
	"fjacquet/expense-ml/internal/prefstore"

	"github.com/shopspring/decimal"
)

// Stage-specific confidences. They express how much each resolution stage is
// trusted and are not calibrated against each other.
const (
	ConfidenceUserPreference = 0.95
	ConfidenceExactKeyword   = 0.85
	ConfidenceAmountFallback = 0.5
	ConfidenceDefault        = 0.3
)

// Predictor resolves categories for a single user. It orchestrates the
// resolution stages in strict priority order and returns the first result;
// stage results are never blended.
type Predictor struct {
	userID     string
	catalog    *catalog.Catalog
	prefs      *prefstore.Store
	classifier *classifier.Classifier
	normalizer *normalizer.Normalizer
	logger     logging.Logger
}

// Predict assigns a category to title, optionally aided by amount.
func (p *Predictor) Predict(ctx context.Context, title string, amount *decimal.Decimal) (models.PredictionResult, error) {
	local := normalizer.NormalizeLocal(title)
	if local == "" {
		return models.PredictionResult{}, models.NewValidationError("title must not be empty")
	}

	normalized, _ := p.normalizer.Normalize(ctx, title)

	// Stage 1: learned per-user override. The translated form is checked
	// first, then the plain local form, so preferences learned before
	// translation was enabled still resolve.
	if category, ok := p.prefs.Lookup(p.userID, normalized); ok {
		return p.resolved(category, ConfidenceUserPreference, models.SourceUserPreference), nil
	}
	if normalized != local {
		if category, ok := p.prefs.Lookup(p.userID, local); ok {
			return p.resolved(category, ConfidenceUserPreference, models.SourceUserPreference), nil
		}
	}

	entries := p.catalog.Entries()

	// Stage 2: exact whole-word keyword match, first listed wins.
	if entry, ok := matchExact(normalized, entries); ok {
		p.logger.WithFields(
			logging.Field{Key: logging.FieldKeyword, Value: entry.Keyword},
			logging.Field{Key: logging.FieldCategory, Value: entry.Category},
		).Debug("Title matched catalog keyword")
		return p.resolved(entry.Category, ConfidenceExactKeyword, models.SourceExactKeyword), nil
	}

	// Stage 3: approximate keyword match tolerating typos.
	if match, ok := matchFuzzy(normalized, entries); ok {
		p.logger.WithFields(
			logging.Field{Key: logging.FieldKeyword, Value: match.word},
			logging.Field{Key: logging.FieldCategory, Value: match.entry.Category},
			logging.Field{Key: "ratio", Value: match.ratio},
		).Debug("Title fuzzy-matched catalog keyword")
		return p.resolved(match.entry.Category, fuzzyConfidence(match.ratio), models.SourceFuzzyKeyword), nil
	}

	// Stage 4: trained statistical model, when one exists.
	if result, ok := p.classifier.Predict(normalized, amount); ok {
		return p.logResult(result), nil
	}

	// Stage 5: amount rule of thumb, only without a model result.
	if amount != nil {
		return p.resolved(models.AmountFallbackCategory(amount), ConfidenceAmountFallback, models.SourceAmountFallback), nil
	}

	return p.resolved(models.CategoryUncategorized, ConfidenceDefault, models.SourceDefault), nil
}

// Train rebuilds this user's statistical model from the full example set and
// returns the held-out accuracy.
func (p *Predictor) Train(examples []models.TrainingExample) (float64, error) {
	return p.classifier.Train(examples)
}

// Learn records a category override for this user.
func (p *Predictor) Learn(title, category string) error {
	return p.prefs.Learn(p.userID, title, category)
}

func (p *Predictor) resolved(category string, confidence float64, source models.Source) models.PredictionResult {
	return p.logResult(models.PredictionResult{
		Category:   category,
		Confidence: confidence,
		Source:     source,
	})
}

func (p *Predictor) logResult(result models.PredictionResult) models.PredictionResult {
	p.logger.WithFields(
		logging.Field{Key: logging.FieldUserID, Value: p.userID},
		logging.Field{Key: logging.FieldCategory, Value: result.Category},
		logging.Field{Key: logging.FieldConfidence, Value: result.Confidence},
		logging.Field{Key: logging.FieldSource, Value: result.Source},
	).Debug("Category resolved")
	return result
}
