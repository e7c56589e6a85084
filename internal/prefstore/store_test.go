package prefstore_test

import (
	"os"
	"path/filepath"
	"testing"

	"fjacquet/expense-ml/internal/logging"
	"fjacquet/expense-ml/internal/models"
	"fjacquet/expense-ml/internal/prefstore"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLearnAndLookup(t *testing.T) {
	s := prefstore.NewStore(t.TempDir(), &logging.MockLogger{})

	require.NoError(t, s.Learn("alice", "Uber Trip", "cab"))

	category, ok := s.Lookup("alice", "uber trip")
	require.True(t, ok)
	assert.Equal(t, "cab", category)
}

func TestLearn_NormalizesTitle(t *testing.T) {
	s := prefstore.NewStore(t.TempDir(), &logging.MockLogger{})

	require.NoError(t, s.Learn("alice", "  COFFEE Shop  ", "dining"))

	_, ok := s.Lookup("alice", "coffee shop")
	assert.True(t, ok)

	// Lookup is exact-key only; the raw title does not resolve.
	_, ok = s.Lookup("alice", "  COFFEE Shop  ")
	assert.False(t, ok)
}

func TestLearn_OverwritesPreviousCategory(t *testing.T) {
	s := prefstore.NewStore(t.TempDir(), &logging.MockLogger{})

	require.NoError(t, s.Learn("alice", "uber trip", "cab"))
	require.NoError(t, s.Learn("alice", "uber trip", "travel"))

	category, ok := s.Lookup("alice", "uber trip")
	require.True(t, ok)
	assert.Equal(t, "travel", category)
	assert.Equal(t, 1, s.Count("alice"))
}

func TestLearn_Validation(t *testing.T) {
	s := prefstore.NewStore(t.TempDir(), &logging.MockLogger{})

	tests := []struct {
		name     string
		title    string
		category string
	}{
		{"empty title", "", "cab"},
		{"whitespace title", "   ", "cab"},
		{"empty category", "uber trip", ""},
		{"whitespace category", "uber trip", "   "},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := s.Learn("alice", tt.title, tt.category)
			require.Error(t, err)
			assert.True(t, models.IsValidationError(err))
		})
	}
	assert.Equal(t, 0, s.Count("alice"))
}

func TestUsersAreIsolated(t *testing.T) {
	s := prefstore.NewStore(t.TempDir(), &logging.MockLogger{})

	require.NoError(t, s.Learn("alice", "uber trip", "cab"))

	_, ok := s.Lookup("bob", "uber trip")
	assert.False(t, ok)
}

func TestPersistenceRoundTrip(t *testing.T) {
	dir := t.TempDir()

	s := prefstore.NewStore(dir, &logging.MockLogger{})
	require.NoError(t, s.Learn("alice", "uber trip", "cab"))
	require.NoError(t, s.Learn("alice", "swiggy order", "dining"))

	// A fresh store over the same directory sees the persisted snapshot.
	reopened := prefstore.NewStore(dir, &logging.MockLogger{})
	category, ok := reopened.Lookup("alice", "swiggy order")
	require.True(t, ok)
	assert.Equal(t, "dining", category)
	assert.Equal(t, 2, reopened.Count("alice"))
}

func TestCorruptSnapshotStartsEmpty(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "prefs-alice.yaml")
	require.NoError(t, os.WriteFile(path, []byte("{not valid yaml"), 0644))

	logger := &logging.MockLogger{}
	s := prefstore.NewStore(dir, logger)

	_, ok := s.Lookup("alice", "anything")
	assert.False(t, ok)
	assert.Equal(t, 0, s.Count("alice"))

	// The store stays usable after the degraded load.
	require.NoError(t, s.Learn("alice", "uber trip", "cab"))
	_, ok = s.Lookup("alice", "uber trip")
	assert.True(t, ok)
}

func TestSanitizeID(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{"plain id", "alice", "alice"},
		{"mixed case and digits", "User-42_x", "User-42_x"},
		{"path separators replaced", "../etc/passwd", "___etc_passwd"},
		{"spaces replaced", "a b", "a_b"},
		{"empty id", "", "_"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, prefstore.SanitizeID(tt.input))
		})
	}
}

func TestSnapshotFileIsWritten(t *testing.T) {
	dir := t.TempDir()
	s := prefstore.NewStore(dir, &logging.MockLogger{})

	require.NoError(t, s.Learn("alice", "uber trip", "cab"))

	_, err := os.Stat(filepath.Join(dir, "prefs-alice.yaml"))
	assert.NoError(t, err)
}
