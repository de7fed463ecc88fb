package comparator

import (
	"strings"
	"testing"

	"github.com/spf13/afero"

	"github.com/aldebaro/hd-organizer/pkg/hasher"
)

func setupFs(t *testing.T, files map[string]string) afero.Fs {
	t.Helper()
	fs := afero.NewMemMapFs()
	for path, content := range files {
		if err := afero.WriteFile(fs, path, []byte(content), 0644); err != nil {
			t.Fatalf("Failed to create test file: %v", err)
		}
	}
	return fs
}

func comparators(fs afero.Fs, chunkSize int) map[string]Comparator {
	return map[string]Comparator{
		"byte": NewByteComparator(fs, chunkSize),
		"hash": NewHashComparator(hasher.NewCache(fs, chunkSize)),
	}
}

func TestCompare_EqualFiles(t *testing.T) {
	fs := setupFs(t, map[string]string{
		"/a.bin": "identical payload",
		"/b.bin": "identical payload",
	})

	for name, cmp := range comparators(fs, 4) {
		if got := cmp.Compare("/a.bin", "/b.bin"); got != Equal {
			t.Errorf("%s: Compare() = %v, want equal", name, got)
		}
	}
}

func TestCompare_DifferentContentSameLength(t *testing.T) {
	fs := setupFs(t, map[string]string{
		"/a.bin": "payload version A",
		"/b.bin": "payload version B",
	})

	for name, cmp := range comparators(fs, 4) {
		if got := cmp.Compare("/a.bin", "/b.bin"); got != NotEqual {
			t.Errorf("%s: Compare() = %v, want not-equal", name, got)
		}
	}
}

func TestCompare_DifferentLengths(t *testing.T) {
	fs := setupFs(t, map[string]string{
		"/short.bin": "abcd",
		"/long.bin":  "abcdabcdabcd",
	})

	for name, cmp := range comparators(fs, 4) {
		if got := cmp.Compare("/short.bin", "/long.bin"); got != NotEqual {
			t.Errorf("%s: Compare() = %v, want not-equal for prefix relation", name, got)
		}
	}
}

func TestCompare_EmptyFiles(t *testing.T) {
	fs := setupFs(t, map[string]string{
		"/empty1": "",
		"/empty2": "",
	})

	for name, cmp := range comparators(fs, 8) {
		if got := cmp.Compare("/empty1", "/empty2"); got != Equal {
			t.Errorf("%s: Compare() = %v, want equal for empty files", name, got)
		}
	}
}

func TestCompare_MissingFileFails(t *testing.T) {
	fs := setupFs(t, map[string]string{
		"/exists.bin": "content",
	})

	for name, cmp := range comparators(fs, 8) {
		if got := cmp.Compare("/exists.bin", "/gone.bin"); got != Failed {
			t.Errorf("%s: Compare() = %v, want failed for missing file", name, got)
		}
		if got := cmp.Compare("/gone.bin", "/exists.bin"); got != Failed {
			t.Errorf("%s: Compare() = %v, want failed when first file is missing", name, got)
		}
	}
}

func TestByteComparator_LargeFilesAcrossChunks(t *testing.T) {
	same := strings.Repeat("0123456789", 100)
	diff := same[:999] + "X"

	fs := setupFs(t, map[string]string{
		"/a": same,
		"/b": same,
		"/c": diff,
	})

	cmp := NewByteComparator(fs, 64)
	if got := cmp.Compare("/a", "/b"); got != Equal {
		t.Errorf("Compare(a, b) = %v, want equal", got)
	}
	if got := cmp.Compare("/a", "/c"); got != NotEqual {
		t.Errorf("Compare(a, c) = %v, want not-equal on final byte", got)
	}
}

func TestOutcome_String(t *testing.T) {
	if Equal.String() != "equal" || NotEqual.String() != "not-equal" || Failed.String() != "failed" {
		t.Error("Outcome string labels changed")
	}
}
