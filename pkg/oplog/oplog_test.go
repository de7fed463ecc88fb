package oplog

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"
)

func TestLog_LinesStampedAndOrdered(t *testing.T) {
	l := New(filepath.Join(t.TempDir(), "op.log"), false)
	l.now = func() time.Time {
		return time.Date(2026, 8, 29, 12, 0, 0, 0, time.UTC)
	}

	l.Logf("first %d", 1)
	l.Logf("second")

	lines := l.Lines()
	if len(lines) != 3 {
		t.Fatalf("Expected 3 lines (run ID + 2), got %d", len(lines))
	}
	if !strings.HasPrefix(lines[0], "[") || !strings.Contains(lines[0], "Run ID: ") {
		t.Errorf("First line must carry the run ID, got %q", lines[0])
	}
	if !strings.HasPrefix(lines[1], "[2026-08-29 12:00:00] first 1") {
		t.Errorf("Line not stamped as expected: %q", lines[1])
	}
	if !strings.Contains(lines[2], "second") {
		t.Errorf("Lines out of order: %q", lines[2])
	}
}

func TestLog_Save(t *testing.T) {
	path := filepath.Join(t.TempDir(), "op.log")
	l := New(path, false)
	l.Logf("DELETED: /a/photo.jpg")
	l.Echof("SUMMARY:")

	if err := l.Save(); err != nil {
		t.Fatalf("Save() error = %v", err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("Failed to read saved log: %v", err)
	}
	content := string(data)
	if !strings.Contains(content, "DELETED: /a/photo.jpg") {
		t.Error("Saved log missing recorded line")
	}
	if !strings.Contains(content, "SUMMARY:") {
		t.Error("Saved log missing echoed line")
	}
	if !strings.HasSuffix(content, "\n") {
		t.Error("Saved log must end with a newline")
	}
}

func TestLog_SaveFailure(t *testing.T) {
	l := New(filepath.Join(t.TempDir(), "no", "such", "dir", "op.log"), false)
	if err := l.Save(); err == nil {
		t.Error("Expected error when log directory does not exist")
	}
}

func TestLog_UniqueRunIDs(t *testing.T) {
	dir := t.TempDir()
	a := New(filepath.Join(dir, "a.log"), false)
	b := New(filepath.Join(dir, "b.log"), false)
	if a.RunID() == b.RunID() {
		t.Error("Run IDs must be unique per run")
	}
	if a.RunID() == "" {
		t.Error("Run ID must not be empty")
	}
}

func TestDefaultPaths(t *testing.T) {
	if !strings.HasPrefix(DefaultDeletePath(), "hd_duplicates_to_be_deleted_") {
		t.Errorf("Unexpected delete log name: %s", DefaultDeletePath())
	}
	if !strings.HasPrefix(DefaultRecoverPath("", true), "hd_recovered_files_all_") {
		t.Errorf("Unexpected recover-all log name: %s", DefaultRecoverPath("", true))
	}
	if !strings.HasPrefix(DefaultRecoverPath("photos", false), "hd_recovered_files_photos_") {
		t.Errorf("Unexpected recover log name: %s", DefaultRecoverPath("photos", false))
	}
}
