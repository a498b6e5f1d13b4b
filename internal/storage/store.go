package storage

import (
	"encoding/json"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"slices"
	"strings"
	"sync"
)

// Storer is a read-only view of a set of validated records.
type Storer[T ValidatingSpec] interface {
	Get(string) T
	GetAll() map[string]T
	Keys() []string
}

// FileStore holds every json asset found under a directory tree. Records are read once, at
// construction.
type FileStore[T ValidatingSpec] struct {
	root    string
	records map[string]T
	sources map[string]string

	mu sync.RWMutex
}

func NewFileStore[T ValidatingSpec](root string) (*FileStore[T], error) {
	s := &FileStore[T]{root: root}

	err := s.load()
	if err != nil {
		return nil, err
	}

	return s, nil
}

func (s *FileStore[T]) load() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.records = map[string]T{}
	s.sources = map[string]string{}

	return filepath.WalkDir(s.root, func(path string, d fs.DirEntry, walkErr error) error {
		if walkErr != nil {
			return walkErr
		}
		if d.IsDir() || !strings.EqualFold(filepath.Ext(path), ".json") {
			return nil
		}

		name := s.relative(path)

		asset, err := readAsset[T](path)
		if err != nil {
			return fmt.Errorf("loading %s: %w", name, err)
		}

		err = asset.Validate()
		if err != nil {
			return fmt.Errorf("validating %s: %w", name, err)
		}

		if prev, ok := s.sources[asset.Id()]; ok {
			return fmt.Errorf("duplicate key detected: %s (%s and %s)", asset.Id(), prev, name)
		}

		s.records[asset.Id()] = asset.Spec
		s.sources[asset.Id()] = name
		return nil
	})
}

// relative names a file by its path below the store root.
func (s *FileStore[T]) relative(path string) string {
	rel, err := filepath.Rel(s.root, path)
	if err != nil {
		return filepath.Base(path)
	}
	return filepath.ToSlash(rel)
}

// Get returns the record stored under id, or the zero value.
func (s *FileStore[T]) Get(id string) T {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return s.records[id]
}

// GetAll returns a copy of every record keyed by id.
func (s *FileStore[T]) GetAll() map[string]T {
	s.mu.RLock()
	defer s.mu.RUnlock()

	vals := make(map[string]T, len(s.records))
	for id, v := range s.records {
		vals[id] = v
	}
	return vals
}

// Keys returns the stored ids in sorted order.
func (s *FileStore[T]) Keys() []string {
	s.mu.RLock()
	defer s.mu.RUnlock()

	keys := make([]string, 0, len(s.records))
	for id := range s.records {
		keys = append(keys, id)
	}
	slices.Sort(keys)
	return keys
}

func readAsset[T ValidatingSpec](path string) (*Asset[T], error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading file: %w", err)
	}

	asset := &Asset[T]{}
	err = json.Unmarshal(data, asset)
	if err != nil {
		return nil, fmt.Errorf("unmarshalling asset: %w", err)
	}

	return asset, nil
}
