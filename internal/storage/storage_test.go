package storage

import (
	"errors"
	"path/filepath"
	"testing"
)

func newTestStore(t *testing.T) *Store {
	t.Helper()
	s, err := New(filepath.Join(t.TempDir(), "data", "test.db"))
	if err != nil {
		t.Fatalf("failed to create store: %v", err)
	}
	t.Cleanup(func() { s.Close() })
	return s
}

func TestPutGet(t *testing.T) {
	s := newTestStore(t)

	if err := s.Put("k", []byte("v1")); err != nil {
		t.Fatalf("put failed: %v", err)
	}
	got, err := s.Get("k")
	if err != nil {
		t.Fatalf("get failed: %v", err)
	}
	if string(got) != "v1" {
		t.Errorf("expected v1, got %s", got)
	}

	// Overwrite replaces the previous value.
	if err := s.Put("k", []byte("v2")); err != nil {
		t.Fatalf("put failed: %v", err)
	}
	got, _ = s.Get("k")
	if string(got) != "v2" {
		t.Errorf("expected v2, got %s", got)
	}
}

func TestGetMissingKey(t *testing.T) {
	s := newTestStore(t)
	if _, err := s.Get("missing"); !errors.Is(err, ErrKeyNotFound) {
		t.Errorf("expected ErrKeyNotFound, got %v", err)
	}
}

func TestDelete(t *testing.T) {
	s := newTestStore(t)

	if err := s.Put("k", []byte("v")); err != nil {
		t.Fatalf("put failed: %v", err)
	}
	if err := s.Delete("k"); err != nil {
		t.Fatalf("delete failed: %v", err)
	}
	if _, err := s.Get("k"); !errors.Is(err, ErrKeyNotFound) {
		t.Errorf("expected ErrKeyNotFound after delete, got %v", err)
	}

	// Deleting an absent key is a no-op.
	if err := s.Delete("k"); err != nil {
		t.Errorf("second delete failed: %v", err)
	}
}
