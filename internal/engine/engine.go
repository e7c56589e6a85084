// Package engine composes the category resolution stages into the public
// surface of the system: predict, train, and learn, each scoped to a user.
// Stages run in strict priority order: learned preference, exact keyword
// match, fuzzy keyword match, statistical model, amount fallback.
package engine

import (
	"context"
	"time"

	"fjacquet/expense-ml/internal/catalog"
	"fjacquet/expense-ml/internal/classifier"
	"fjacquet/expense-ml/internal/config"
	"fjacquet/expense-ml/internal/logging"
	"fjacquet/expense-ml/internal/models"
	"fjacquet/expense-ml/internal/normalizer"
	"fjacquet/expense-ml/internal/prefstore"
	"fjacquet/expense-ml/internal/translate"

	"github.com/shopspring/decimal"
)

// Options configures an Engine. Zero-value fields fall back to defaults.
type Options struct {
	DataDir        string
	Catalog        *catalog.Catalog
	Prefs          *prefstore.Store
	Normalizer     *normalizer.Normalizer
	MinExamples    int
	AmountFeatures bool
	Logger         logging.Logger
}

// Engine is the entry point for the surrounding service layer. It owns the
// per-user predictor registry and the shared preference store.
type Engine struct {
	registry *Registry
	logger   logging.Logger
}

// New assembles an Engine from pre-built components.
func New(opts Options) *Engine {
	logger := opts.Logger
	if logger == nil {
		logger = logging.NewLogrusAdapterFromLogger(nil)
	}
	if opts.Catalog == nil {
		opts.Catalog = catalog.New("", "", logger)
	}
	if opts.Prefs == nil {
		opts.Prefs = prefstore.NewStore(opts.DataDir, logger)
	}
	if opts.Normalizer == nil {
		opts.Normalizer = normalizer.New(nil, "", 0, logger)
	}
	if opts.MinExamples <= 0 {
		opts.MinExamples = classifier.MinTrainingExamples
	}

	return &Engine{
		registry: newRegistry(deps{
			catalog:        opts.Catalog,
			prefs:          opts.Prefs,
			normalizer:     opts.Normalizer,
			dataDir:        opts.DataDir,
			minExamples:    opts.MinExamples,
			amountFeatures: opts.AmountFeatures,
			logger:         logger,
		}),
		logger: logger,
	}
}

// FromConfig builds an Engine from the application configuration, wiring the
// Gemini translator when translation is enabled.
func FromConfig(cfg *config.Config, logger logging.Logger) *Engine {
	var translator translate.Translator
	if cfg.Translation.Enabled {
		translator = translate.NewGeminiTranslator(
			cfg.Translation.APIKey,
			cfg.Translation.Model,
			cfg.Translation.TargetLanguage,
			logger,
		)
	}

	norm := normalizer.New(
		translator,
		cfg.Translation.TargetLanguage,
		time.Duration(cfg.Translation.TimeoutSeconds)*time.Second,
		logger,
	)

	return New(Options{
		DataDir:        cfg.Data.Directory,
		Catalog:        catalog.New(cfg.Catalog.File, cfg.Catalog.RegionalFile, logger),
		Prefs:          prefstore.NewStore(cfg.Data.Directory, logger),
		Normalizer:     norm,
		MinExamples:    cfg.Classifier.MinExamples,
		AmountFeatures: cfg.Classifier.AmountFeatures,
		Logger:         logger,
	})
}

// Registry exposes the per-user predictor registry.
func (e *Engine) Registry() *Registry {
	return e.registry
}

// PredictCategory assigns a category to title for userID, optionally aided
// by amount. Fails with a validation error when title is empty.
func (e *Engine) PredictCategory(ctx context.Context, userID, title string, amount *decimal.Decimal) (models.PredictionResult, error) {
	return e.registry.GetOrCreate(userID).Predict(ctx, title, amount)
}

// TrainModel rebuilds userID's classifier from examples and returns the
// held-out accuracy. Fails with a validation error when fewer than the
// configured minimum of usable examples are provided.
func (e *Engine) TrainModel(ctx context.Context, userID string, examples []models.TrainingExample) (float64, error) {
	_ = ctx // training is synchronous and CPU-bound; no cancellation support
	return e.registry.GetOrCreate(userID).Train(examples)
}

// LearnPreference records that userID's title belongs to category. Fails
// with a validation error when title or category is empty.
func (e *Engine) LearnPreference(ctx context.Context, userID, title, category string) error {
	_ = ctx
	return e.registry.GetOrCreate(userID).Learn(title, category)
}
