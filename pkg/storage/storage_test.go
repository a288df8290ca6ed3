package storage

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"
)

func TestSaveFile_OverwritesAndLeavesNoTemp(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "qr_code_1.png")
	s := &Storage{}

	if err := s.SaveFile(path, []byte("first")); err != nil {
		t.Fatalf("SaveFile() error = %v", err)
	}
	if err := s.SaveFile(path, []byte("second")); err != nil {
		t.Fatalf("SaveFile() overwrite error = %v", err)
	}

	got, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("ReadFile() error = %v", err)
	}
	if !bytes.Equal(got, []byte("second")) {
		t.Errorf("ReadFile() = %q, want %q", got, "second")
	}

	entries, err := os.ReadDir(dir)
	if err != nil {
		t.Fatalf("ReadDir() error = %v", err)
	}
	if len(entries) != 1 {
		names := make([]string, 0, len(entries))
		for _, e := range entries {
			names = append(names, e.Name())
		}
		t.Errorf("directory has %v, want only qr_code_1.png", names)
	}

	stats, err := s.GetFileStats(path)
	if err != nil {
		t.Fatalf("GetFileStats() error = %v", err)
	}
	if stats.SizeBytes != int64(len("second")) {
		t.Errorf("SizeBytes = %d, want %d", stats.SizeBytes, len("second"))
	}
}

func TestSaveFile_MissingDirectory(t *testing.T) {
	s := &Storage{}
	path := filepath.Join(t.TempDir(), "missing", "qr_code_1.png")

	if err := s.SaveFile(path, []byte("x")); err == nil {
		t.Error("SaveFile() into a missing directory should fail")
	}
	if _, err := s.GetFileStats(path); err == nil {
		t.Error("GetFileStats() succeeded after failed save")
	}
}

func TestGetFileStats_RejectsDirectory(t *testing.T) {
	s := &Storage{}
	if _, err := s.GetFileStats(t.TempDir()); err == nil {
		t.Error("GetFileStats() on a directory should fail")
	}
}
