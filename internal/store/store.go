// Package store persists a homogeneous record collection as a single
// pretty-printed JSON array file. Every mutation rewrites the whole file;
// there is no append log and no partial update.
package store

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"reflect"
	"strings"
)

// Record is the contract a stored entity must satisfy: a stable identifier
// and a normalization step that fills defaults for fields missing from
// older files.
type Record interface {
	RecordID() string
	Normalize()
}

// Store reads and writes one JSON array file of R records.
type Store[R Record] struct {
	path string
}

// New returns a Store backed by the given file path. The path is explicit;
// there is no process-wide default location.
func New[R Record](path string) *Store[R] {
	return &Store[R]{path: path}
}

// Path returns the backing file path.
func (s *Store[R]) Path() string { return s.path }

// BackupPath returns the sibling path a corrupted file is renamed to.
// The extension is replaced: tasks.json becomes tasks.bak.
func (s *Store[R]) BackupPath() string {
	return strings.TrimSuffix(s.path, filepath.Ext(s.path)) + ".bak"
}

// Load reads the full collection. A missing file yields an empty slice and
// no error. A file that does not hold a JSON array of records — whether it
// fails to parse, holds a bare null, or holds null array elements — is
// moved to the backup path and an empty slice is returned; corruption never
// propagates past this boundary. Other read errors do propagate.
func (s *Store[R]) Load() ([]R, error) {
	data, err := os.ReadFile(s.path)
	if err != nil {
		if os.IsNotExist(err) {
			return []R{}, nil
		}
		return nil, fmt.Errorf("reading %s: %w", s.path, err)
	}

	var records []R
	if err := json.Unmarshal(data, &records); err != nil {
		s.backupCorrupted()
		return []R{}, nil
	}
	// A bare "null" parses into a nil slice; it is corruption, not an
	// empty collection, and must be preserved like any other bad file.
	if records == nil {
		s.backupCorrupted()
		return []R{}, nil
	}
	for _, r := range records {
		if isNilRecord(r) {
			s.backupCorrupted()
			return []R{}, nil
		}
		r.Normalize()
	}
	return records, nil
}

// isNilRecord reports whether a decoded record is a nil pointer, which a
// JSON null array element produces.
func isNilRecord(r any) bool {
	v := reflect.ValueOf(r)
	return v.Kind() == reflect.Pointer && v.IsNil()
}

// Save rewrites the whole collection, creating the parent directory if
// needed. The write goes through a temp file and rename so a crash mid-save
// leaves the previous file intact. Write failures propagate; a failed save
// must be visible to the caller.
func (s *Store[R]) Save(records []R) error {
	if records == nil {
		records = []R{}
	}
	data, err := json.MarshalIndent(records, "", "  ")
	if err != nil {
		return fmt.Errorf("marshaling %s: %w", s.path, err)
	}
	data = append(data, '\n')

	dir := filepath.Dir(s.path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("creating %s: %w", dir, err)
	}

	tmp, err := os.CreateTemp(dir, ".json-*.tmp")
	if err != nil {
		return fmt.Errorf("creating temp file: %w", err)
	}
	tmpName := tmp.Name()

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		os.Remove(tmpName)
		return fmt.Errorf("writing records: %w", err)
	}
	if err := tmp.Sync(); err != nil {
		tmp.Close()
		os.Remove(tmpName)
		return fmt.Errorf("syncing temp file: %w", err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("closing temp file: %w", err)
	}
	if err := os.Rename(tmpName, s.path); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("renaming temp file: %w", err)
	}
	return nil
}

// backupCorrupted moves an unparsable file aside, best effort. If the
// rename fails the original is left in place and loading proceeds with an
// empty collection.
func (s *Store[R]) backupCorrupted() {
	backup := s.BackupPath()
	if err := os.Rename(s.path, backup); err != nil {
		fmt.Fprintf(os.Stderr, "warning: corrupted data file %s could not be backed up: %v\n", s.path, err)
		return
	}
	fmt.Fprintf(os.Stderr, "warning: corrupted data file moved to %s\n", backup)
}
