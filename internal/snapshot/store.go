package snapshot

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"sync"
)

// snapshotFileExtension is the file extension used for snapshot files.
const snapshotFileExtension = ".json"

// Common store errors.
var (
	ErrSnapshotNotFound = errors.New("snapshot not found")
	ErrSnapshotExists   = errors.New("snapshot already exists")
	ErrInvalidID        = errors.New("snapshot id cannot be empty")
)

// Store is a file-based snapshot store. Each snapshot is one JSON file in
// the store directory, written atomically. Thread-safe for concurrent use.
type Store struct {
	directory string
	mu        sync.RWMutex
}

// NewStore creates a store rooted at directory, creating it if needed.
func NewStore(directory string) (*Store, error) {
	if directory == "" {
		return nil, errors.New("snapshot directory cannot be empty")
	}
	if err := os.MkdirAll(directory, 0700); err != nil {
		return nil, fmt.Errorf("creating snapshot directory: %w", err)
	}
	return &Store{directory: directory}, nil
}

// Directory returns the store's directory path.
func (s *Store) Directory() string {
	return s.directory
}

// Save writes a snapshot. Snapshots are immutable: saving under an id that
// already exists fails with ErrSnapshotExists. Serialization and IO errors
// are returned for the caller to surface as a soft "save failed" message.
func (s *Store) Save(sc *SavedCalculation) error {
	if sc == nil || sc.ID == "" {
		return ErrInvalidID
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	path := s.idToFilePath(sc.ID)
	if _, err := os.Stat(path); err == nil {
		return fmt.Errorf("%w: %s", ErrSnapshotExists, sc.ID)
	}

	data, err := json.MarshalIndent(sc, "", "  ")
	if err != nil {
		return fmt.Errorf("marshaling snapshot: %w", err)
	}

	// Write to a temporary file first, then rename for atomicity.
	tempPath := path + ".tmp"
	if err := os.WriteFile(tempPath, data, 0600); err != nil {
		return fmt.Errorf("writing snapshot file: %w", err)
	}
	if err := os.Rename(tempPath, path); err != nil {
		_ = os.Remove(tempPath)
		return fmt.Errorf("renaming snapshot file: %w", err)
	}

	return nil
}

// Load reads a snapshot by id. Returns ErrSnapshotNotFound if absent.
func (s *Store) Load(id string) (*SavedCalculation, error) {
	if id == "" {
		return nil, ErrInvalidID
	}

	s.mu.RLock()
	defer s.mu.RUnlock()

	data, err := os.ReadFile(s.idToFilePath(id))
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("%w: %s", ErrSnapshotNotFound, id)
		}
		return nil, fmt.Errorf("reading snapshot file: %w", err)
	}

	var sc SavedCalculation
	if err := json.Unmarshal(data, &sc); err != nil {
		return nil, fmt.Errorf("unmarshaling snapshot %s: %w", id, err)
	}
	return &sc, nil
}

// List returns all snapshots sorted by date, newest first. Unreadable or
// malformed files are skipped rather than failing the whole listing.
func (s *Store) List() ([]*SavedCalculation, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	dirEntries, err := os.ReadDir(s.directory)
	if err != nil {
		return nil, fmt.Errorf("reading snapshot directory: %w", err)
	}

	var snapshots []*SavedCalculation
	for _, de := range dirEntries {
		if de.IsDir() || filepath.Ext(de.Name()) != snapshotFileExtension {
			continue
		}
		data, readErr := os.ReadFile(filepath.Join(s.directory, de.Name()))
		if readErr != nil {
			continue
		}
		var sc SavedCalculation
		if json.Unmarshal(data, &sc) != nil || sc.ID == "" {
			continue
		}
		snapshots = append(snapshots, &sc)
	}

	sort.Slice(snapshots, func(i, j int) bool {
		return snapshots[i].Date.After(snapshots[j].Date)
	})
	return snapshots, nil
}

// Delete removes a snapshot by id. Deleting an absent snapshot is a no-op.
func (s *Store) Delete(id string) error {
	if id == "" {
		return ErrInvalidID
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	err := os.Remove(s.idToFilePath(id))
	if err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("deleting snapshot file: %w", err)
	}
	return nil
}

// idToFilePath converts a snapshot id to a file path, sanitized for
// filesystem safety.
func (s *Store) idToFilePath(id string) string {
	safe := strings.ReplaceAll(id, "/", "_")
	safe = strings.ReplaceAll(safe, "\\", "_")
	safe = strings.ReplaceAll(safe, ":", "_")
	return filepath.Join(s.directory, safe+snapshotFileExtension)
}
