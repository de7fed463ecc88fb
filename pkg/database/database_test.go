package database

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/aldebaro/hd-organizer/pkg/index"
)

func newTestDB(t *testing.T) *Database {
	t.Helper()
	dbPath := filepath.Join(t.TempDir(), "test.db")
	db, err := New(dbPath)
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}
	t.Cleanup(func() { db.Close() })

	if _, err := os.Stat(dbPath); os.IsNotExist(err) {
		t.Fatal("Expected database file to be created")
	}
	return db
}

func sampleIndex() *index.Index {
	ix := index.New()
	dup := index.KeyFor("photo.jpg", 100)
	ix.Add(dup, "/a/photo.jpg")
	ix.Add(dup, "/b/photo.jpg")
	ix.Add(index.KeyFor("doc.txt", 42), "/a/doc.txt")
	return ix
}

func TestDatabase_SaveAndLoadIndex(t *testing.T) {
	db := newTestDB(t)

	if err := db.SaveIndex(sampleIndex()); err != nil {
		t.Fatalf("SaveIndex() error = %v", err)
	}

	loaded, err := db.LoadIndex()
	if err != nil {
		t.Fatalf("LoadIndex() error = %v", err)
	}

	if loaded.TotalFiles() != 3 {
		t.Errorf("Loaded %d files, want 3", loaded.TotalFiles())
	}
	if loaded.Len() != 2 {
		t.Errorf("Loaded %d keys, want 2", loaded.Len())
	}

	paths := loaded.Paths(index.KeyFor("photo.jpg", 100))
	if len(paths) != 2 {
		t.Errorf("Expected 2 paths for photo.jpg, got %d", len(paths))
	}
}

func TestDatabase_SaveIndexReplacesOld(t *testing.T) {
	db := newTestDB(t)

	if err := db.SaveIndex(sampleIndex()); err != nil {
		t.Fatalf("SaveIndex() error = %v", err)
	}

	fresh := index.New()
	fresh.Add(index.KeyFor("only.bin", 7), "/x/only.bin")
	if err := db.SaveIndex(fresh); err != nil {
		t.Fatalf("SaveIndex() second call error = %v", err)
	}

	loaded, err := db.LoadIndex()
	if err != nil {
		t.Fatalf("LoadIndex() error = %v", err)
	}
	if loaded.TotalFiles() != 1 {
		t.Errorf("Old entries must be replaced, loaded %d files, want 1", loaded.TotalFiles())
	}
}

func TestDatabase_SaveEmptyIndex(t *testing.T) {
	db := newTestDB(t)

	if err := db.SaveIndex(index.New()); err != nil {
		t.Fatalf("SaveIndex() with empty index error = %v", err)
	}

	loaded, err := db.LoadIndex()
	if err != nil {
		t.Fatalf("LoadIndex() error = %v", err)
	}
	if loaded.TotalFiles() != 0 {
		t.Errorf("Expected empty index, got %d files", loaded.TotalFiles())
	}
}

func TestDatabase_Lookup(t *testing.T) {
	db := newTestDB(t)

	if err := db.SaveIndex(sampleIndex()); err != nil {
		t.Fatalf("SaveIndex() error = %v", err)
	}

	paths, err := db.Lookup(index.KeyFor("photo.jpg", 100))
	if err != nil {
		t.Fatalf("Lookup() error = %v", err)
	}
	if len(paths) != 2 {
		t.Errorf("Lookup returned %d paths, want 2", len(paths))
	}

	none, err := db.Lookup(index.KeyFor("missing.dat", 1))
	if err != nil {
		t.Fatalf("Lookup() error = %v", err)
	}
	if len(none) != 0 {
		t.Errorf("Lookup for unknown key returned %d paths, want 0", len(none))
	}
}

func TestKeyFingerprint_Deterministic(t *testing.T) {
	a := keyFingerprint(index.KeyFor("f.txt", 10))
	b := keyFingerprint(index.KeyFor("f.txt", 10))
	c := keyFingerprint(index.KeyFor("f.txt", 11))

	if a != b {
		t.Error("Fingerprint must be deterministic")
	}
	if a == c {
		t.Error("Different keys must yield different fingerprints")
	}
	if len(a) != 16 {
		t.Errorf("Fingerprint length = %d, want 16 hex chars", len(a))
	}
}
