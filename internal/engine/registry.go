package engine

import (
	"path/filepath"
	"sync"

	"fjacquet/expense-ml/internal/catalog"
	"fjacquet/expense-ml/internal/classifier"
	"fjacquet/expense-ml/internal/logging"
	"fjacquet/expense-ml/internal/normalizer"
	"fjacquet/expense-ml/internal/prefstore"
)

// Registry hands out per-user Predictor instances. The map itself is
// guarded by an RWMutex held only for the lookup or slot insertion;
// predictor construction, which loads the user's persisted model from
// disk, runs under a per-user sync.Once so a slow first-access load for
// one user never blocks another user's operations.
type Registry struct {
	deps deps

	mu         sync.RWMutex
	predictors map[string]*predictorSlot
}

type predictorSlot struct {
	once      sync.Once
	predictor *Predictor
}

type deps struct {
	catalog        *catalog.Catalog
	prefs          *prefstore.Store
	normalizer     *normalizer.Normalizer
	dataDir        string
	minExamples    int
	amountFeatures bool
	logger         logging.Logger
}

func newRegistry(d deps) *Registry {
	return &Registry{
		deps:       d,
		predictors: make(map[string]*predictorSlot),
	}
}

// GetOrCreate returns the predictor for userID, constructing it (and loading
// any persisted model) on first access. Once created, a predictor is reused
// for the lifetime of the process.
func (r *Registry) GetOrCreate(userID string) *Predictor {
	r.mu.RLock()
	slot, ok := r.predictors[userID]
	r.mu.RUnlock()

	if !ok {
		r.mu.Lock()
		slot, ok = r.predictors[userID]
		if !ok {
			slot = &predictorSlot{}
			r.predictors[userID] = slot
		}
		r.mu.Unlock()
	}

	slot.once.Do(func() {
		slot.predictor = r.build(userID)
	})
	return slot.predictor
}

func (r *Registry) build(userID string) *Predictor {
	modelPath := filepath.Join(r.deps.dataDir, "model-"+prefstore.SanitizeID(userID)+".gob")
	return &Predictor{
		userID:  userID,
		catalog: r.deps.catalog,
		prefs:   r.deps.prefs,
		classifier: classifier.New(
			modelPath,
			r.deps.minExamples,
			r.deps.amountFeatures,
			r.deps.logger.WithField(logging.FieldUserID, userID),
		),
		normalizer: r.deps.normalizer,
		logger:     r.deps.logger,
	}
}
