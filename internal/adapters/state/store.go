// Package state persists provisioning reports in a flat JSON file.
package state

import (
	"encoding/json"
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strconv"
	"sync"

	"github.com/cespare/xxhash/v2"
	"go.trai.ch/pydep/internal/core/domain"
	"go.trai.ch/zerr"
)

// Store implements ports.ReportStore using a flat JSON file. Reports are
// keyed by interpreter and module so re-runs replace stale entries.
type Store struct {
	path  string
	mu    sync.RWMutex
	cache map[string]domain.Report
}

// NewStore creates a new ReportStore backed by the file at the given path.
func NewStore(path string) (*Store, error) {
	s := &Store{
		path:  filepath.Clean(path),
		cache: make(map[string]domain.Report),
	}
	if err := s.load(); err != nil {
		return nil, err
	}
	return s, nil
}

// Put records the report and writes the store to disk.
func (s *Store) Put(report domain.Report) error {
	s.mu.Lock()
	s.cache[key(report)] = report
	s.mu.Unlock()
	return s.save()
}

// List returns all recorded reports ordered by interpreter, then module.
func (s *Store) List() []domain.Report {
	s.mu.RLock()
	defer s.mu.RUnlock()

	reports := make([]domain.Report, 0, len(s.cache))
	for _, r := range s.cache {
		reports = append(reports, r)
	}
	sort.Slice(reports, func(i, j int) bool {
		if reports[i].Interpreter != reports[j].Interpreter {
			return reports[i].Interpreter < reports[j].Interpreter
		}
		return reports[i].Module < reports[j].Module
	})
	return reports
}

// key derives a stable store key from the interpreter path and module name.
func key(r domain.Report) string {
	return strconv.FormatUint(xxhash.Sum64String(r.Interpreter), 16) + "/" + r.Module
}

func (s *Store) load() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	//nolint:gosec // Path is cleaned and provided by trusted caller
	data, err := os.ReadFile(s.path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil
		}
		return zerr.Wrap(err, "failed to read state file")
	}

	if len(data) == 0 {
		return nil
	}

	if err := json.Unmarshal(data, &s.cache); err != nil {
		return zerr.Wrap(err, "failed to unmarshal state file")
	}

	return nil
}

func (s *Store) save() error {
	s.mu.RLock()
	data, err := json.MarshalIndent(s.cache, "", "  ")
	s.mu.RUnlock()
	if err != nil {
		return zerr.Wrap(err, "failed to marshal state file")
	}

	if err := os.WriteFile(s.path, data, 0o600); err != nil {
		return zerr.Wrap(err, "failed to write state file")
	}
	return nil
}
