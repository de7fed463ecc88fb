package report

import (
	"testing"

	"github.com/spf13/afero"

	"github.com/aldebaro/hd-organizer/pkg/index"
)

func TestLargestGroups(t *testing.T) {
	ix := index.New()

	big := index.KeyFor("big.iso", 1 << 20)
	ix.Add(big, "/a/big.iso")
	ix.Add(big, "/b/big.iso")
	ix.Add(big, "/c/big.iso")

	small := index.KeyFor("small.txt", 100)
	ix.Add(small, "/a/small.txt")
	ix.Add(small, "/b/small.txt")

	solo := index.KeyFor("solo.txt", 999)
	ix.Add(solo, "/a/solo.txt")

	groups := LargestGroups(ix, 10)
	if len(groups) != 2 {
		t.Fatalf("Expected 2 groups, got %d", len(groups))
	}
	if groups[0].Key != big {
		t.Errorf("Largest group should come first, got %v", groups[0].Key)
	}
	if groups[0].WastedBytes != 2<<20 {
		t.Errorf("WastedBytes = %d, want %d", groups[0].WastedBytes, 2<<20)
	}

	top1 := LargestGroups(ix, 1)
	if len(top1) != 1 {
		t.Errorf("Top-N cut failed, got %d groups", len(top1))
	}
}

func TestFolderPairs(t *testing.T) {
	ix := index.New()

	k1 := index.KeyFor("x.bin", 1000)
	ix.Add(k1, "/backup/x.bin")
	ix.Add(k1, "/photos/x.bin")

	k2 := index.KeyFor("y.bin", 500)
	ix.Add(k2, "/backup/y.bin")
	ix.Add(k2, "/photos/y.bin")

	k3 := index.KeyFor("z.bin", 10)
	ix.Add(k3, "/backup/z.bin")
	ix.Add(k3, "/other/z.bin")

	pairs := FolderPairs(ix)
	if len(pairs) != 2 {
		t.Fatalf("Expected 2 folder pairs, got %d", len(pairs))
	}
	if pairs[0].FolderA != "/backup" || pairs[0].FolderB != "/photos" {
		t.Errorf("Heaviest pair should come first, got %s / %s", pairs[0].FolderA, pairs[0].FolderB)
	}
	if pairs[0].Bytes != 1500 {
		t.Errorf("Pair bytes = %d, want 1500", pairs[0].Bytes)
	}
}

func TestFolderPairs_SameFolderNotPaired(t *testing.T) {
	ix := index.New()
	k := index.KeyFor("d.txt", 10)
	ix.Add(k, "/only/d.txt")
	ix.Add(k, "/only/sub/../d2.txt")

	// 组内只有一个去重后的目录，没有可配对的组合
	if pairs := FolderPairs(ix); len(pairs) != 0 {
		t.Errorf("Duplicates within one folder must not produce a pair, got %d", len(pairs))
	}
}

func TestCategories(t *testing.T) {
	fs := afero.NewMemMapFs()

	pngHeader := []byte{0x89, 'P', 'N', 'G', '\r', '\n', 0x1a, '\n', 0, 0, 0, 0}
	if err := afero.WriteFile(fs, "/a/pic.png", pngHeader, 0644); err != nil {
		t.Fatalf("Failed to create test file: %v", err)
	}
	if err := afero.WriteFile(fs, "/b/pic.png", pngHeader, 0644); err != nil {
		t.Fatalf("Failed to create test file: %v", err)
	}
	if err := afero.WriteFile(fs, "/a/plain.xyz", []byte("just text"), 0644); err != nil {
		t.Fatalf("Failed to create test file: %v", err)
	}
	if err := afero.WriteFile(fs, "/b/plain.xyz", []byte("just text"), 0644); err != nil {
		t.Fatalf("Failed to create test file: %v", err)
	}

	ix := index.New()
	png := index.KeyFor("pic.png", int64(len(pngHeader)))
	ix.Add(png, "/a/pic.png")
	ix.Add(png, "/b/pic.png")
	plain := index.KeyFor("plain.xyz", 9)
	ix.Add(plain, "/a/plain.xyz")
	ix.Add(plain, "/b/plain.xyz")

	counts, err := Categories(fs, ix, 2)
	if err != nil {
		t.Fatalf("Categories() error = %v", err)
	}

	if counts["image"] != 1 {
		t.Errorf("counts[image] = %d, want 1", counts["image"])
	}
	if counts["unknown"] != 1 {
		t.Errorf("counts[unknown] = %d, want 1", counts["unknown"])
	}
}

func TestTruncatePath(t *testing.T) {
	if got := truncatePath("/short", 20); got != "/short" {
		t.Errorf("Short path must be unchanged, got %q", got)
	}
	long := "/very/long/path/that/exceeds/the/limit/for/sure"
	got := truncatePath(long, 20)
	if len(got) != 20 {
		t.Errorf("Truncated length = %d, want 20", len(got))
	}
	if got[:3] != "..." {
		t.Errorf("Truncated path should start with ellipsis, got %q", got)
	}
}
