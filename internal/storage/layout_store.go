// Package storage persists what survives between runs: per-printer
// layout overrides in a JSON file and the item history in SQLite.
package storage

import (
	"encoding/json"
	"fmt"
	"os"
	"sync"

	"github.com/duncansachdeva/printlabel/internal/domain/models"
	"github.com/duncansachdeva/printlabel/internal/domain/ports"
	"github.com/duncansachdeva/printlabel/internal/label"
)

// LayoutStore keeps layout overrides keyed by printer, language and
// size. Printers drift: a worn LP2844 may need the barcode nudged down
// a few dots, and that adjustment should stick.
type LayoutStore struct {
	mu       sync.RWMutex
	filePath string
	layouts  map[string]models.LayoutSettings
	log      ports.Logger
}

// NewLayoutStore creates a store backed by the given JSON file.
func NewLayoutStore(path string, log ports.Logger) *LayoutStore {
	return &LayoutStore{
		filePath: path,
		layouts:  make(map[string]models.LayoutSettings),
		log:      log,
	}
}

func layoutKey(printer string, lang models.Language, size models.PaperSize) string {
	return fmt.Sprintf("%s|%s|%s", printer, lang, size)
}

// Load reads the overrides file. A missing file is not an error, the
// store just starts empty.
func (s *LayoutStore) Load() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	data, err := os.ReadFile(s.filePath)
	if err != nil {
		if os.IsNotExist(err) {
			s.log.Info("[LAYOUT] no overrides file at %s, using defaults", s.filePath)
			return nil
		}
		return fmt.Errorf("reading layout overrides: %w", err)
	}

	layouts := make(map[string]models.LayoutSettings)
	if err := json.Unmarshal(data, &layouts); err != nil {
		return fmt.Errorf("parsing layout overrides: %w", err)
	}
	s.layouts = layouts
	s.log.Info("[LAYOUT] loaded %d layout override(s)", len(layouts))
	return nil
}

// Get returns the stored override for the triple, or the built-in
// default when none was saved.
func (s *LayoutStore) Get(printer string, lang models.Language, size models.PaperSize) models.LayoutSettings {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if l, ok := s.layouts[layoutKey(printer, lang, size)]; ok {
		return l
	}
	return label.DefaultLayout(lang, size)
}

// Save stores an override and writes the file immediately.
func (s *LayoutStore) Save(printer string, lang models.Language, size models.PaperSize, l models.LayoutSettings) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.layouts[layoutKey(printer, lang, size)] = l
	return s.persistLocked()
}

// ResetToDefault drops the override for the triple and returns the
// built-in default.
func (s *LayoutStore) ResetToDefault(printer string, lang models.Language, size models.PaperSize) (models.LayoutSettings, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	delete(s.layouts, layoutKey(printer, lang, size))
	if err := s.persistLocked(); err != nil {
		return models.LayoutSettings{}, err
	}
	return label.DefaultLayout(lang, size), nil
}

// persistLocked writes the file; caller holds the write lock.
func (s *LayoutStore) persistLocked() error {
	data, err := json.MarshalIndent(s.layouts, "", "  ")
	if err != nil {
		return fmt.Errorf("serializing layout overrides: %w", err)
	}
	if err := os.WriteFile(s.filePath, data, 0o644); err != nil {
		s.log.Error("[LAYOUT] failed to write %s: %v", s.filePath, err)
		return fmt.Errorf("writing layout overrides: %w", err)
	}
	return nil
}
