// Package catalog manages the curated keyword catalog: an ordered list of
// (keyword, category) entries loaded from YAML, optionally overlaid with a
// regional file. Iteration order is fixed and reproducible, because it
// decides which of several matching keywords wins.
package catalog

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"fjacquet/expense-ml/internal/logging"
	"fjacquet/expense-ml/internal/models"

	"gopkg.in/yaml.v3"
)

// catalogFile is the preferred YAML structure: "keywords: [...]".
type catalogFile struct {
	Keywords []models.KeywordEntry `yaml:"keywords"`
}

// Catalog is an ordered keyword catalog. Reload replaces the entry list
// wholesale under the write lock; there is no partial mutation, so readers
// always observe a complete list.
type Catalog struct {
	baseFile     string
	regionalFile string
	logger       logging.Logger

	mu      sync.RWMutex
	entries []models.KeywordEntry
}

// New creates a Catalog, loading entries from baseFile and overlaying
// regionalFile if set. A missing or unreadable base file degrades to the
// built-in default catalog.
func New(baseFile, regionalFile string, logger logging.Logger) *Catalog {
	if logger == nil {
		logger = logging.NewLogrusAdapterFromLogger(nil)
	}
	c := &Catalog{
		baseFile:     baseFile,
		regionalFile: regionalFile,
		logger:       logger,
	}
	c.load()
	return c
}

// Entries returns the ordered catalog entries. Callers must not modify the
// returned slice.
func (c *Catalog) Entries() []models.KeywordEntry {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.entries
}

// Len returns the number of catalog entries.
func (c *Catalog) Len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.entries)
}

// Reload re-reads the catalog files. The entry list is replaced only on a
// successful load of the base file.
func (c *Catalog) Reload() {
	c.load()
}

func (c *Catalog) load() {
	entries, err := c.loadFile(c.baseFile)
	if err != nil {
		c.logger.WithError(err).WithField(logging.FieldFile, c.baseFile).
			Warn("Failed to load keyword catalog, using built-in defaults")
		entries = DefaultEntries()
	} else if len(entries) == 0 {
		c.logger.WithField(logging.FieldFile, c.baseFile).
			Debug("Keyword catalog file empty or absent, using built-in defaults")
		entries = DefaultEntries()
	}

	if c.regionalFile != "" {
		regional, err := c.loadFile(c.regionalFile)
		if err != nil {
			c.logger.WithError(err).WithField(logging.FieldFile, c.regionalFile).
				Warn("Failed to load regional keyword catalog, continuing without it")
		} else {
			entries = overlay(entries, regional)
		}
	}

	c.mu.Lock()
	c.entries = entries
	c.mu.Unlock()
	c.logger.WithField(logging.FieldCount, len(entries)).Debug("Keyword catalog loaded")
}

// loadFile reads one catalog YAML file. A missing file is not an error; it
// yields an empty list.
func (c *Catalog) loadFile(filename string) ([]models.KeywordEntry, error) {
	if filename == "" {
		return nil, nil
	}

	filePath, err := findConfigFile(filename)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("error resolving catalog file: %w", err)
	}

	data, err := os.ReadFile(filePath)
	if err != nil {
		return nil, fmt.Errorf("error reading catalog file: %w", err)
	}

	// Preferred structure: "keywords: [...]"
	var file catalogFile
	if err := yaml.Unmarshal(data, &file); err == nil && len(file.Keywords) > 0 {
		return normalizeEntries(file.Keywords), nil
	}

	// Fallback: a bare list of entries
	var entries []models.KeywordEntry
	if err := yaml.Unmarshal(data, &entries); err != nil {
		return nil, fmt.Errorf("error parsing catalog file: %w", err)
	}
	return normalizeEntries(entries), nil
}

// normalizeEntries lower-cases and trims keywords, dropping empty ones.
func normalizeEntries(entries []models.KeywordEntry) []models.KeywordEntry {
	out := make([]models.KeywordEntry, 0, len(entries))
	for _, e := range entries {
		keyword := strings.ToLower(strings.TrimSpace(e.Keyword))
		category := strings.TrimSpace(e.Category)
		if keyword == "" || category == "" {
			continue
		}
		out = append(out, models.KeywordEntry{Keyword: keyword, Category: category})
	}
	return out
}

// overlay merges regional entries into the base list. An entry for an
// already-listed keyword rewrites the category in place so the keyword keeps
// its original priority position; new keywords are appended in order.
func overlay(base, regional []models.KeywordEntry) []models.KeywordEntry {
	index := make(map[string]int, len(base))
	merged := make([]models.KeywordEntry, len(base))
	copy(merged, base)
	for i, e := range merged {
		index[e.Keyword] = i
	}

	for _, e := range regional {
		if i, ok := index[e.Keyword]; ok {
			merged[i].Category = e.Category
			continue
		}
		index[e.Keyword] = len(merged)
		merged = append(merged, e)
	}
	return merged
}

// findConfigFile looks for a configuration file in standard locations.
func findConfigFile(filename string) (string, error) {
	if filepath.IsAbs(filename) {
		if _, err := os.Stat(filename); err == nil {
			return filename, nil
		}
		return "", os.ErrNotExist
	}

	locations := []string{
		filename,                          // Current directory
		filepath.Join("config", filename), // ./config/ directory
	}
	for _, location := range locations {
		if _, err := os.Stat(location); err == nil {
			return location, nil
		}
	}

	if homeDir, err := os.UserHomeDir(); err == nil {
		configPath := filepath.Join(homeDir, ".config", "expense-ml", filename)
		if _, err := os.Stat(configPath); err == nil {
			return configPath, nil
		}
	}

	return "", os.ErrNotExist
}
