package store

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/mesh-intelligence/satchel/pkg/types"
)

func taskStore(t *testing.T) (*Store[*types.Task], string) {
	t.Helper()
	path := filepath.Join(t.TempDir(), "tasks.json")
	return New[*types.Task](path), path
}

func TestLoadMissingFileReturnsEmpty(t *testing.T) {
	s, _ := taskStore(t)

	records, err := s.Load()
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if len(records) != 0 {
		t.Errorf("expected empty collection, got %d records", len(records))
	}
}

func TestSaveLoadRoundTrip(t *testing.T) {
	s, _ := taskStore(t)

	tasks := []*types.Task{
		{ID: "aaaa1111", Title: "first", CreatedAt: types.Now(), Tags: []string{"home"}, Links: []string{}, Subtasks: []string{}},
		{ID: "bbbb2222", Title: "second", CreatedAt: types.Now(), Tags: []string{}, Links: []string{"aaaa1111"}, Subtasks: []string{}},
	}
	if err := s.Save(tasks); err != nil {
		t.Fatalf("Save failed: %v", err)
	}

	loaded, err := s.Load()
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if len(loaded) != 2 {
		t.Fatalf("expected 2 records, got %d", len(loaded))
	}
	if loaded[0].ID != "aaaa1111" || loaded[1].Title != "second" {
		t.Errorf("round trip lost data: %+v", loaded)
	}
	if loaded[1].Links[0] != "aaaa1111" {
		t.Errorf("links not preserved: %+v", loaded[1])
	}
}

func TestSaveLoadSaveIsByteIdentical(t *testing.T) {
	s, path := taskStore(t)

	tasks := []*types.Task{
		{ID: "aaaa1111", Title: "first", CreatedAt: "2025-01-01 00:00:00 UTC", Tags: []string{"x"}, Links: []string{}, Subtasks: []string{}},
	}
	if err := s.Save(tasks); err != nil {
		t.Fatalf("Save failed: %v", err)
	}
	first, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("reading file: %v", err)
	}

	loaded, err := s.Load()
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if err := s.Save(loaded); err != nil {
		t.Fatalf("second Save failed: %v", err)
	}
	second, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("reading file: %v", err)
	}

	if !bytes.Equal(first, second) {
		t.Errorf("save(load()) changed file content:\nfirst:\n%s\nsecond:\n%s", first, second)
	}
}

func TestLoadCorruptedFileBacksUpAndResets(t *testing.T) {
	s, path := taskStore(t)

	if err := os.WriteFile(path, []byte("this is not json {"), 0o644); err != nil {
		t.Fatalf("writing corrupt file: %v", err)
	}

	records, err := s.Load()
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if len(records) != 0 {
		t.Errorf("expected empty collection after corruption, got %d", len(records))
	}
	if _, err := os.Stat(path); !os.IsNotExist(err) {
		t.Errorf("expected original file to be moved away, stat err: %v", err)
	}
	backup := s.BackupPath()
	if _, err := os.Stat(backup); err != nil {
		t.Errorf("expected backup file at %s: %v", backup, err)
	}
}

func TestLoadNullElementBacksUpAndResets(t *testing.T) {
	s, path := taskStore(t)

	// Parses as a JSON array, but the null element decodes to a nil record.
	if err := os.WriteFile(path, []byte(`[null]`), 0o644); err != nil {
		t.Fatalf("writing corrupt file: %v", err)
	}

	records, err := s.Load()
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if len(records) != 0 {
		t.Errorf("expected empty collection after corruption, got %d", len(records))
	}
	if _, err := os.Stat(path); !os.IsNotExist(err) {
		t.Errorf("expected original file to be moved away, stat err: %v", err)
	}
	if _, err := os.Stat(s.BackupPath()); err != nil {
		t.Errorf("expected backup file at %s: %v", s.BackupPath(), err)
	}
}

func TestLoadMixedNullElementBacksUpAndResets(t *testing.T) {
	s, path := taskStore(t)

	raw := `[{"id": "aaaa1111", "title": "ok"}, null]`
	if err := os.WriteFile(path, []byte(raw), 0o644); err != nil {
		t.Fatalf("writing corrupt file: %v", err)
	}

	records, err := s.Load()
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if len(records) != 0 {
		t.Errorf("one null element corrupts the whole file, got %d records", len(records))
	}
	if _, err := os.Stat(s.BackupPath()); err != nil {
		t.Errorf("expected backup file at %s: %v", s.BackupPath(), err)
	}
}

func TestLoadBareNullBacksUpAndResets(t *testing.T) {
	s, path := taskStore(t)

	// "null" unmarshals cleanly into a nil slice; the file is still not a
	// record array and must be preserved as a backup.
	if err := os.WriteFile(path, []byte(`null`), 0o644); err != nil {
		t.Fatalf("writing corrupt file: %v", err)
	}

	records, err := s.Load()
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if len(records) != 0 {
		t.Errorf("expected empty collection after corruption, got %d", len(records))
	}
	if _, err := os.Stat(path); !os.IsNotExist(err) {
		t.Errorf("expected original file to be moved away, stat err: %v", err)
	}
	if _, err := os.Stat(s.BackupPath()); err != nil {
		t.Errorf("expected backup file at %s: %v", s.BackupPath(), err)
	}
}

func TestBackupPathReplacesExtension(t *testing.T) {
	s := New[*types.Task]("/data/tasks.json")
	if got := s.BackupPath(); got != "/data/tasks.bak" {
		t.Errorf("BackupPath = %q, want /data/tasks.bak", got)
	}
}

func TestLoadNormalizesMissingFields(t *testing.T) {
	s, path := taskStore(t)

	// Older files may omit array fields entirely.
	raw := `[{"id": "old00001", "title": "legacy", "created_at": "2024-01-01 00:00:00 UTC"}]`
	if err := os.WriteFile(path, []byte(raw), 0o644); err != nil {
		t.Fatalf("writing legacy file: %v", err)
	}

	records, err := s.Load()
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if len(records) != 1 {
		t.Fatalf("expected 1 record, got %d", len(records))
	}
	rec := records[0]
	if rec.Tags == nil || rec.Links == nil || rec.Subtasks == nil {
		t.Errorf("expected normalized arrays, got %+v", rec)
	}
	if rec.Important {
		t.Errorf("missing important field must default to false")
	}

	// After normalization the arrays serialize as [] rather than null.
	if err := s.Save(records); err != nil {
		t.Fatalf("Save failed: %v", err)
	}
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("reading file: %v", err)
	}
	if bytes.Contains(data, []byte("null")) {
		t.Errorf("normalized save must not contain null arrays:\n%s", data)
	}
}

func TestSaveCreatesParentDirectory(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "deep", "tasks.json")
	s := New[*types.Task](path)

	if err := s.Save([]*types.Task{}); err != nil {
		t.Fatalf("Save failed: %v", err)
	}
	if _, err := os.Stat(path); err != nil {
		t.Errorf("expected file at %s: %v", path, err)
	}
}

func TestSaveNilWritesEmptyArray(t *testing.T) {
	s, path := taskStore(t)

	if err := s.Save(nil); err != nil {
		t.Fatalf("Save failed: %v", err)
	}
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("reading file: %v", err)
	}
	if string(bytes.TrimSpace(data)) != "[]" {
		t.Errorf("expected empty JSON array, got %q", data)
	}
}
