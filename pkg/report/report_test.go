package report

import (
	"testing"
	"time"

	"github.com/spf13/afero"

	"github.com/aldebaro/hd-organizer/pkg/classifier"
	"github.com/aldebaro/hd-organizer/pkg/index"
)

func TestBuild_DuplicateRecord(t *testing.T) {
	fs := afero.NewMemMapFs()

	older := time.Date(2024, 3, 1, 10, 0, 0, 0, time.UTC)
	newer := time.Date(2025, 6, 15, 9, 30, 0, 0, time.UTC)

	if err := afero.WriteFile(fs, "/a/photo.jpg", make([]byte, 100), 0644); err != nil {
		t.Fatalf("Failed to create test file: %v", err)
	}
	if err := afero.WriteFile(fs, "/b/photo.jpg", make([]byte, 100), 0644); err != nil {
		t.Fatalf("Failed to create test file: %v", err)
	}
	if err := fs.Chtimes("/a/photo.jpg", older, older); err != nil {
		t.Fatalf("Failed to set mtime: %v", err)
	}
	if err := fs.Chtimes("/b/photo.jpg", newer, newer); err != nil {
		t.Fatalf("Failed to set mtime: %v", err)
	}

	key := index.KeyFor("photo.jpg", 100)
	res := &classifier.Result{
		Duplicates: map[index.Key][][]string{
			// 组内路径故意乱序，Build 必须排序
			key: {{"/b/photo.jpg", "/a/photo.jpg"}},
		},
		Differences: map[index.Key][][]string{},
	}

	dups, diffs := Build(fs, res, "hash")

	if dups.Method != "hash" {
		t.Errorf("Method = %q, want hash", dups.Method)
	}
	if dups.TotalGroups != 1 || len(dups.Duplicates) != 1 {
		t.Fatalf("Expected 1 duplicate record, got %d", len(dups.Duplicates))
	}
	if diffs.TotalGroups != 0 {
		t.Errorf("Expected no difference records, got %d", diffs.TotalGroups)
	}

	rec := dups.Duplicates[0]
	if rec.Paths[0] != "/a/photo.jpg" || rec.Paths[1] != "/b/photo.jpg" {
		t.Errorf("Paths not sorted: %v", rec.Paths)
	}
	if rec.FileCount != 2 {
		t.Errorf("FileCount = %d, want 2", rec.FileCount)
	}
	if rec.NewestIndex != 1 {
		t.Errorf("NewestIndex = %d, want 1 (the newer copy)", rec.NewestIndex)
	}
	if rec.WastedSpaceBytes != 100 {
		t.Errorf("WastedSpaceBytes = %d, want 100", rec.WastedSpaceBytes)
	}
	if dups.TotalWastedSpaceBytes != 100 {
		t.Errorf("TotalWastedSpaceBytes = %d, want 100", dups.TotalWastedSpaceBytes)
	}
	if rec.Extension != "jpg" {
		t.Errorf("Extension = %q, want jpg", rec.Extension)
	}
}

func TestBuild_StatFailureLeavesEmptyDate(t *testing.T) {
	fs := afero.NewMemMapFs()

	ts := time.Date(2025, 1, 2, 3, 4, 5, 0, time.UTC)
	if err := afero.WriteFile(fs, "/b/f.txt", []byte("1234"), 0644); err != nil {
		t.Fatalf("Failed to create test file: %v", err)
	}
	if err := fs.Chtimes("/b/f.txt", ts, ts); err != nil {
		t.Fatalf("Failed to set mtime: %v", err)
	}

	key := index.KeyFor("f.txt", 4)
	res := &classifier.Result{
		Duplicates: map[index.Key][][]string{
			// /a/f.txt 不存在，stat 失败只留下空日期
			key: {{"/a/f.txt", "/b/f.txt"}},
		},
		Differences: map[index.Key][][]string{},
	}

	dups, _ := Build(fs, res, "byte")
	rec := dups.Duplicates[0]

	if rec.Dates[0] != "" {
		t.Errorf("Missing file should yield empty date, got %q", rec.Dates[0])
	}
	if rec.Dates[1] == "" {
		t.Error("Existing file must have a date")
	}
	if rec.NewestIndex != 1 {
		t.Errorf("NewestIndex = %d, want 1 (only non-empty date)", rec.NewestIndex)
	}
}

func TestNewestIndex(t *testing.T) {
	tests := []struct {
		name  string
		dates []string
		want  int
	}{
		{"all empty falls back to 0", []string{"", "", ""}, 0},
		{"single newest", []string{"2024-01-01T00:00:00", "2025-01-01T00:00:00"}, 1},
		{"tie keeps first occurrence", []string{"2025-01-01T00:00:00", "2025-01-01T00:00:00"}, 0},
		{"empty entries ignored", []string{"", "2023-05-05T12:00:00", ""}, 1},
	}

	for _, tt := range tests {
		if got := newestIndex(tt.dates); got != tt.want {
			t.Errorf("%s: newestIndex(%v) = %d, want %d", tt.name, tt.dates, got, tt.want)
		}
	}
}

func TestSaveAndLoadRoundTrip(t *testing.T) {
	fs := afero.NewMemMapFs()

	doc := &DuplicatesDocument{
		Method:                "hash",
		TotalGroups:           1,
		TotalWastedSpaceBytes: 100,
		Note:                  recordNote,
		Duplicates: []DuplicateRecord{{
			Record: Record{
				Filename:    "photo.jpg",
				Extension:   "jpg",
				SizeBytes:   100,
				GroupID:     1,
				FileCount:   2,
				Paths:       []string{"/a/photo.jpg", "/b/photo.jpg"},
				Dates:       []string{"2024-03-01T10:00:00", "2025-06-15T09:30:00"},
				NewestIndex: 1,
			},
			WastedSpaceBytes: 100,
		}},
	}

	if err := doc.Save(fs, "/out.json"); err != nil {
		t.Fatalf("Save() error = %v", err)
	}

	loaded, err := LoadDuplicates(fs, "/out.json")
	if err != nil {
		t.Fatalf("LoadDuplicates() error = %v", err)
	}

	if loaded.TotalGroups != 1 || len(loaded.Duplicates) != 1 {
		t.Fatalf("Round trip lost records: %+v", loaded)
	}
	got := loaded.Duplicates[0]
	if got.Filename != "photo.jpg" || got.NewestIndex != 1 || got.WastedSpaceBytes != 100 {
		t.Errorf("Round trip altered record: %+v", got)
	}
}

func TestLoadDuplicates_RejectsBrokenInvariants(t *testing.T) {
	fs := afero.NewMemMapFs()

	cases := map[string]string{
		"length mismatch": `{"duplicates":[{"filename":"f","size_bytes":10,"group_id":1,
			"file_count":3,"paths":["/a/f","/b/f"],"dates":["",""],"newest_index":0,
			"wasted_space_bytes":20}]}`,
		"newest out of range": `{"duplicates":[{"filename":"f","size_bytes":10,"group_id":1,
			"file_count":2,"paths":["/a/f","/b/f"],"dates":["",""],"newest_index":5,
			"wasted_space_bytes":10}]}`,
		"wrong wasted space": `{"duplicates":[{"filename":"f","size_bytes":10,"group_id":1,
			"file_count":2,"paths":["/a/f","/b/f"],"dates":["",""],"newest_index":0,
			"wasted_space_bytes":999}]}`,
		"not json": `{{{`,
	}

	for name, payload := range cases {
		path := "/bad.json"
		if err := afero.WriteFile(fs, path, []byte(payload), 0644); err != nil {
			t.Fatalf("Failed to write test file: %v", err)
		}
		if _, err := LoadDuplicates(fs, path); err == nil {
			t.Errorf("%s: expected validation error", name)
		}
	}

	if _, err := LoadDuplicates(fs, "/absent.json"); err == nil {
		t.Error("Expected error for missing file")
	}
}

func TestFormatBytes(t *testing.T) {
	tests := []struct {
		in   int64
		want string
	}{
		{512, "512 B"},
		{2048, "2.00 KB"},
		{5 * 1024 * 1024, "5.00 MB"},
		{3 * 1024 * 1024 * 1024, "3.00 GB"},
	}

	for _, tt := range tests {
		if got := FormatBytes(tt.in); got != tt.want {
			t.Errorf("FormatBytes(%d) = %q, want %q", tt.in, got, tt.want)
		}
	}
}
