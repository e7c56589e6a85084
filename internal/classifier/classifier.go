// Package classifier implements the trainable statistical text classifier
// used when no catalog entry matches a title: a TF-IDF weighted naive Bayes
// model over word n-grams, with train/predict/persist/load lifecycle.
package classifier

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"sync"
	"time"

	"fjacquet/expense-ml/internal/fileutils"
	"fjacquet/expense-ml/internal/logging"
	"fjacquet/expense-ml/internal/models"

	"github.com/google/uuid"
	"github.com/jbrukh/bayesian"
	"github.com/shopspring/decimal"
	"gopkg.in/yaml.v3"
)

// MinTrainingExamples is the smallest usable example set accepted by Train.
const MinTrainingExamples = 10

// model bundles a fitted bayesian classifier with its provenance. A model is
// either absent or fully trained; there is no partially-trained state.
type model struct {
	cls  *bayesian.Classifier
	info models.ModelInfo
}

// Classifier owns at most one trained model for a single user. The model
// handle is swapped wholesale on each successful training, so in-flight
// predictions never observe a half-updated model.
type Classifier struct {
	path           string
	minExamples    int
	amountFeatures bool
	logger         logging.Logger

	trainMu sync.Mutex   // serializes train-and-persist sequences
	mu      sync.RWMutex // guards current
	current *model
}

// New creates a Classifier persisting its model at path and attempts to load
// an existing artifact. An unreadable artifact degrades to "no model".
func New(path string, minExamples int, amountFeatures bool, logger logging.Logger) *Classifier {
	if minExamples < MinTrainingExamples {
		minExamples = MinTrainingExamples
	}
	c := &Classifier{
		path:           path,
		minExamples:    minExamples,
		amountFeatures: amountFeatures,
		logger:         logger,
	}
	c.load()
	return c
}

// HasModel reports whether a trained model is currently loaded.
func (c *Classifier) HasModel() bool {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.current != nil
}

// Info returns the provenance of the loaded model, if any.
func (c *Classifier) Info() (models.ModelInfo, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	if c.current == nil {
		return models.ModelInfo{}, false
	}
	return c.current.info, true
}

// Train rebuilds the model from the full example set: filter, deterministic
// split, fit, score on the held-out subset, persist, swap in. Returns the
// held-out accuracy in [0,1].
func (c *Classifier) Train(examples []models.TrainingExample) (float64, error) {
	c.trainMu.Lock()
	defer c.trainMu.Unlock()

	if len(examples) < c.minExamples {
		return 0, models.NewValidationError("at least %d examples required to train, got %d", c.minExamples, len(examples))
	}

	// Examples without a title or category are dropped, never defaulted.
	usable := make([]models.TrainingExample, 0, len(examples))
	for _, ex := range examples {
		if strings.TrimSpace(ex.Title) == "" || strings.TrimSpace(ex.Category) == "" {
			continue
		}
		usable = append(usable, ex)
	}
	if len(usable) < c.minExamples {
		return 0, models.NewValidationError("at least %d usable examples required to train, got %d", c.minExamples, len(usable))
	}

	labelSet := make(map[string]struct{})
	for _, ex := range usable {
		labelSet[strings.TrimSpace(ex.Category)] = struct{}{}
	}
	if len(labelSet) < 2 {
		return 0, models.NewValidationError("training requires examples from at least 2 categories, got %d", len(labelSet))
	}
	labels := make([]string, 0, len(labelSet))
	for label := range labelSet {
		labels = append(labels, label)
	}
	sort.Strings(labels)

	trainSet, holdout := splitExamples(usable)

	classes := make([]bayesian.Class, len(labels))
	for i, label := range labels {
		classes[i] = bayesian.Class(label)
	}
	cls := bayesian.NewClassifierTfIdf(classes...)
	for _, ex := range trainSet {
		cls.Learn(tokenize(ex.Title, ex.Amount, c.amountFeatures), bayesian.Class(strings.TrimSpace(ex.Category)))
	}
	cls.ConvertTermsFreqToTfIdf()

	correct := 0
	for _, ex := range holdout {
		_, inx, _ := cls.LogScores(tokenize(ex.Title, ex.Amount, c.amountFeatures))
		if string(cls.Classes[inx]) == strings.TrimSpace(ex.Category) {
			correct++
		}
	}
	accuracy := float64(correct) / float64(len(holdout))

	m := &model{
		cls: cls,
		info: models.ModelInfo{
			ID:        uuid.NewString(),
			Labels:    labels,
			Accuracy:  accuracy,
			Examples:  len(usable),
			TrainedAt: time.Now().UTC(),
		},
	}

	// A save failure is a warning, not a training failure; the in-memory
	// model stays valid for the current process lifetime.
	if err := c.save(m); err != nil {
		c.logger.WithError(err).WithField(logging.FieldFile, c.path).
			Warn("Failed to persist trained model, keeping in-memory model")
	}

	c.mu.Lock()
	c.current = m
	c.mu.Unlock()

	c.logger.WithFields(
		logging.Field{Key: logging.FieldModelID, Value: m.info.ID},
		logging.Field{Key: logging.FieldAccuracy, Value: accuracy},
		logging.Field{Key: logging.FieldCount, Value: len(usable)},
	).Info("Trained statistical classifier")

	return accuracy, nil
}

// Predict classifies a normalized title with the loaded model. It returns
// found=false when no model is loaded or the model cannot score the title;
// the resolver then falls through to its remaining stages.
func (c *Classifier) Predict(normalizedTitle string, amount *decimal.Decimal) (models.PredictionResult, bool) {
	c.mu.RLock()
	m := c.current
	c.mu.RUnlock()

	if m == nil {
		return models.PredictionResult{}, false
	}

	tokens := tokenize(normalizedTitle, amount, c.amountFeatures)
	if len(tokens) == 0 {
		return models.PredictionResult{}, false
	}

	scores, inx, _, err := m.cls.SafeProbScores(tokens)
	if err != nil {
		c.logger.WithError(err).WithField(logging.FieldTitle, normalizedTitle).
			Debug("Model scoring failed, skipping statistical stage")
		return models.PredictionResult{}, false
	}

	return models.PredictionResult{
		Category:   string(m.cls.Classes[inx]),
		Confidence: scores[inx],
		Source:     models.SourceStatisticalModel,
	}, true
}

func (c *Classifier) metaPath() string {
	return c.path + ".meta.yaml"
}

func (c *Classifier) save(m *model) error {
	dir := filepath.Dir(c.path)
	if err := fileutils.EnsureDirectoryExists(dir); err != nil {
		return err
	}
	if err := m.cls.WriteToFile(c.path); err != nil {
		return fmt.Errorf("error writing model file: %w", err)
	}

	data, err := yaml.Marshal(m.info)
	if err != nil {
		return fmt.Errorf("error marshaling model info: %w", err)
	}
	return fileutils.WriteFileAtomic(c.metaPath(), data, 0644)
}

// load restores a persisted model. Any failure leaves the classifier without
// a model; prediction then falls back to the resolver's later stages.
func (c *Classifier) load() {
	if !fileutils.FileExists(c.path) {
		return
	}

	cls, err := bayesian.NewClassifierFromFile(c.path)
	if err != nil {
		c.logger.WithError(err).WithField(logging.FieldFile, c.path).
			Warn("Failed to load model artifact, continuing without model")
		return
	}

	info := models.ModelInfo{ID: "unknown"}
	if data, err := os.ReadFile(c.metaPath()); err == nil {
		if err := yaml.Unmarshal(data, &info); err != nil {
			c.logger.WithError(err).WithField(logging.FieldFile, c.metaPath()).
				Warn("Failed to parse model metadata")
		}
	}

	c.mu.Lock()
	c.current = &model{cls: cls, info: info}
	c.mu.Unlock()

	c.logger.WithFields(
		logging.Field{Key: logging.FieldModelID, Value: info.ID},
		logging.Field{Key: logging.FieldFile, Value: c.path},
	).Debug("Loaded statistical model")
}
