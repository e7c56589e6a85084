// Package prefstore holds per-user learned category overrides: a mapping
// from normalized title to a user-chosen category, persisted as a whole
// YAML snapshot after each mutation.
package prefstore

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"fjacquet/expense-ml/internal/fileutils"
	"fjacquet/expense-ml/internal/logging"
	"fjacquet/expense-ml/internal/models"
	"fjacquet/expense-ml/internal/normalizer"

	"gopkg.in/yaml.v3"
)

// Store manages preference maps for all users. Operations for different
// users never contend; operations for the same user serialize on that
// user's lock.
type Store struct {
	dir    string
	logger logging.Logger

	mu    sync.Mutex // guards users
	users map[string]*userPrefs
}

type userPrefs struct {
	mu      sync.RWMutex
	entries map[string]string
}

// NewStore creates a Store rooted at dir. Snapshots are loaded lazily per
// user on first access.
func NewStore(dir string, logger logging.Logger) *Store {
	return &Store{
		dir:    dir,
		logger: logger,
		users:  make(map[string]*userPrefs),
	}
}

// Lookup returns the learned category for (userID, normalizedTitle), if any.
// Exact-key lookup only; no fuzziness.
func (s *Store) Lookup(userID, normalizedTitle string) (string, bool) {
	prefs := s.getUser(userID)
	prefs.mu.RLock()
	defer prefs.mu.RUnlock()
	category, ok := prefs.entries[normalizedTitle]
	return category, ok
}

// Learn records that userID's title belongs to category, overwriting any
// previous mapping, and persists the user's snapshot synchronously. The
// in-memory state stays authoritative if the save fails.
func (s *Store) Learn(userID, title, category string) error {
	normalized := normalizer.NormalizeLocal(title)
	category = strings.TrimSpace(category)
	if normalized == "" {
		return models.NewValidationError("title must not be empty")
	}
	if category == "" {
		return models.NewValidationError("category must not be empty")
	}

	prefs := s.getUser(userID)
	prefs.mu.Lock()
	defer prefs.mu.Unlock()

	prefs.entries[normalized] = category

	if err := s.save(userID, prefs.entries); err != nil {
		s.logger.WithError(err).WithField(logging.FieldUserID, userID).
			Warn("Failed to persist preference snapshot, keeping in-memory state")
	}

	s.logger.WithFields(
		logging.Field{Key: logging.FieldUserID, Value: userID},
		logging.Field{Key: logging.FieldTitle, Value: normalized},
		logging.Field{Key: logging.FieldCategory, Value: category},
	).Debug("Learned user preference")

	return nil
}

// Count returns the number of preferences stored for userID.
func (s *Store) Count(userID string) int {
	prefs := s.getUser(userID)
	prefs.mu.RLock()
	defer prefs.mu.RUnlock()
	return len(prefs.entries)
}

// getUser returns the user's preference map, loading the snapshot from disk
// on first access. An unreadable snapshot degrades to an empty map.
func (s *Store) getUser(userID string) *userPrefs {
	s.mu.Lock()
	defer s.mu.Unlock()

	if prefs, ok := s.users[userID]; ok {
		return prefs
	}

	prefs := &userPrefs{entries: s.load(userID)}
	s.users[userID] = prefs
	return prefs
}

func (s *Store) load(userID string) map[string]string {
	path := s.snapshotPath(userID)
	data, err := os.ReadFile(path)
	if err != nil {
		if !os.IsNotExist(err) {
			s.logger.WithError(err).WithField(logging.FieldFile, path).
				Warn("Failed to read preference snapshot, starting empty")
		}
		return make(map[string]string)
	}

	var entries map[string]string
	if err := yaml.Unmarshal(data, &entries); err != nil {
		s.logger.WithError(err).WithField(logging.FieldFile, path).
			Warn("Failed to parse preference snapshot, starting empty")
		return make(map[string]string)
	}
	if entries == nil {
		entries = make(map[string]string)
	}
	return entries
}

func (s *Store) save(userID string, entries map[string]string) error {
	data, err := yaml.Marshal(entries)
	if err != nil {
		return fmt.Errorf("error marshaling preferences: %w", err)
	}
	return fileutils.WriteFileAtomic(s.snapshotPath(userID), data, 0644)
}

func (s *Store) snapshotPath(userID string) string {
	return filepath.Join(s.dir, "prefs-"+SanitizeID(userID)+".yaml")
}

// SanitizeID maps an arbitrary user id to a filesystem-safe token.
func SanitizeID(id string) string {
	var b strings.Builder
	b.Grow(len(id))
	for _, r := range id {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9', r == '-', r == '_':
			b.WriteRune(r)
		default:
			b.WriteRune('_')
		}
	}
	if b.Len() == 0 {
		return "_"
	}
	return b.String()
}
