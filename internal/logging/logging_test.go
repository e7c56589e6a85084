package logging_test

import (
	"errors"
	"testing"

	"fjacquet/expense-ml/internal/logging"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMockLogger_RecordsEntries(t *testing.T) {
	m := &logging.MockLogger{}

	m.Info("started", logging.Field{Key: logging.FieldUserID, Value: "alice"})
	m.Warn("degraded")

	require.Len(t, m.Entries, 2)
	assert.Equal(t, "INFO", m.Entries[0].Level)
	assert.Equal(t, "started", m.Entries[0].Message)
	assert.Equal(t, logging.FieldUserID, m.Entries[0].Fields[0].Key)
	assert.True(t, m.HasEntry("WARN", "degraded"))
	assert.False(t, m.HasEntry("ERROR", "degraded"))
}

func TestMockLogger_WithErrorAndFields(t *testing.T) {
	m := &logging.MockLogger{}
	err := errors.New("disk full")

	derived, ok := m.WithError(err).WithField("file", "x.yaml").(*logging.MockLogger)
	require.True(t, ok)
	derived.Error("save failed")

	require.Len(t, derived.Entries, 1)
	assert.Equal(t, err, derived.Entries[0].Error)
	assert.Equal(t, "file", derived.Entries[0].Fields[0].Key)
}

func TestNewLogrusAdapter(t *testing.T) {
	logger := logging.NewLogrusAdapter("debug", "json")
	require.NotNil(t, logger)

	// Exercise the full interface; nothing should panic.
	logger.Debug("debug msg")
	logger.Info("info msg", logging.Field{Key: "k", Value: "v"})
	logger.Warn("warn msg")
	logger.Error("error msg")
	logger.WithError(errors.New("x")).WithField("k", 1).WithFields(
		logging.Field{Key: "a", Value: "b"},
	).Info("chained")
}

func TestNewLogrusAdapter_InvalidLevel(t *testing.T) {
	logger := logging.NewLogrusAdapter("nope", "text")
	require.NotNil(t, logger)
	logger.Info("still works")
}

func TestNewLogrusAdapterFromLogger_NilLogger(t *testing.T) {
	logger := logging.NewLogrusAdapterFromLogger(nil)
	require.NotNil(t, logger)
	logger.Info("works with a fresh backing logger")
}
