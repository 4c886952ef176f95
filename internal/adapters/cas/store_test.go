package cas_test

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"go.trai.ch/prov/internal/adapters/cas"
	"go.trai.ch/prov/internal/core/domain"
)

func TestStore_PutAndGet(t *testing.T) {
	store, err := cas.NewStoreAt(t.TempDir())
	if err != nil {
		t.Fatalf("NewStoreAt failed: %v", err)
	}

	data := []byte(`{"packages":[]}`)
	key := domain.ContentDigest(data)

	if err := store.Put(key, data); err != nil {
		t.Fatalf("Put failed: %v", err)
	}

	got, err := store.Get(key)
	if err != nil {
		t.Fatalf("Get failed: %v", err)
	}
	if string(got) != string(data) {
		t.Errorf("expected %q, got %q", data, got)
	}
}

func TestStore_Get_Miss(t *testing.T) {
	store, err := cas.NewStoreAt(t.TempDir())
	if err != nil {
		t.Fatalf("NewStoreAt failed: %v", err)
	}

	_, err = store.Get("absent")
	if !errors.Is(err, domain.ErrCacheMiss) {
		t.Fatalf("expected ErrCacheMiss, got %v", err)
	}
}

func TestStore_Put_IdempotentOverwrite(t *testing.T) {
	store, err := cas.NewStoreAt(t.TempDir())
	if err != nil {
		t.Fatalf("NewStoreAt failed: %v", err)
	}

	data := []byte("snapshot bytes")
	if err := store.Put("key", data); err != nil {
		t.Fatalf("first Put failed: %v", err)
	}
	if err := store.Put("key", data); err != nil {
		t.Fatalf("second Put failed: %v", err)
	}

	got, err := store.Get("key")
	if err != nil {
		t.Fatalf("Get failed: %v", err)
	}
	if string(got) != string(data) {
		t.Errorf("expected %q, got %q", data, got)
	}
}

func TestStore_Persistence(t *testing.T) {
	dir := t.TempDir()

	store1, err := cas.NewStoreAt(dir)
	if err != nil {
		t.Fatalf("NewStoreAt failed: %v", err)
	}
	if err := store1.Put("key", []byte("persisted")); err != nil {
		t.Fatalf("Put failed: %v", err)
	}

	store2, err := cas.NewStoreAt(dir)
	if err != nil {
		t.Fatalf("NewStoreAt failed: %v", err)
	}
	got, err := store2.Get("key")
	if err != nil {
		t.Fatalf("Get failed: %v", err)
	}
	if string(got) != "persisted" {
		t.Errorf("expected %q, got %q", "persisted", got)
	}
}

func TestStore_Clear(t *testing.T) {
	dir := t.TempDir()
	store, err := cas.NewStoreAt(dir)
	if err != nil {
		t.Fatalf("NewStoreAt failed: %v", err)
	}

	if err := store.Put("key", []byte("data")); err != nil {
		t.Fatalf("Put failed: %v", err)
	}
	if err := store.Clear(); err != nil {
		t.Fatalf("Clear failed: %v", err)
	}

	if _, err := store.Get("key"); !errors.Is(err, domain.ErrCacheMiss) {
		t.Fatalf("expected ErrCacheMiss after Clear, got %v", err)
	}
}

func TestStore_AtomicWrite_NoTempLeftovers(t *testing.T) {
	dir := t.TempDir()
	store, err := cas.NewStoreAt(dir)
	if err != nil {
		t.Fatalf("NewStoreAt failed: %v", err)
	}

	if err := store.Put("key", []byte("data")); err != nil {
		t.Fatalf("Put failed: %v", err)
	}

	matches, err := filepath.Glob(filepath.Join(dir, "*.tmp"))
	if err != nil {
		t.Fatalf("Glob failed: %v", err)
	}
	if len(matches) != 0 {
		t.Errorf("expected no temp files, found %v", matches)
	}
}

func TestStore_CreatesDirectory(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "nested", "cache")

	if _, err := cas.NewStoreAt(dir); err != nil {
		t.Fatalf("NewStoreAt failed: %v", err)
	}
	if _, err := os.Stat(dir); err != nil {
		t.Fatalf("expected cache directory to exist: %v", err)
	}
}
