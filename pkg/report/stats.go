package report

import (
	"fmt"
	"path/filepath"
	"sort"
	"strings"
	"sync"

	"github.com/h2non/filetype"
	"github.com/panjf2000/ants/v2"
	"github.com/spf13/afero"

	"github.com/aldebaro/hd-organizer/pkg/index"
	"github.com/aldebaro/hd-organizer/pkg/logger"
)

// 类型检测读取的文件头大小
const detectHeaderSize = 261

// GroupStat 一个候选组的统计视图
type GroupStat struct {
	Key         index.Key
	Paths       []string
	WastedBytes int64
}

// LargestGroups 返回浪费空间最大的前 n 个候选组
func LargestGroups(ix *index.Index, n int) []GroupStat {
	var groups []GroupStat
	for key, paths := range ix.Candidates(0) {
		groups = append(groups, GroupStat{
			Key:         key,
			Paths:       paths,
			WastedBytes: key.Size * int64(len(paths)-1),
		})
	}

	sort.Slice(groups, func(i, j int) bool {
		if groups[i].WastedBytes != groups[j].WastedBytes {
			return groups[i].WastedBytes > groups[j].WastedBytes
		}
		return groups[i].Key.Filename < groups[j].Key.Filename
	})

	if len(groups) > n {
		groups = groups[:n]
	}
	return groups
}

// FolderPair 一对包含重复文件的目录
type FolderPair struct {
	FolderA string
	FolderB string
	Bytes   int64
}

// FolderPairs 找出成对出现重复文件的目录，按重复数据量降序排列
func FolderPairs(ix *index.Index) []FolderPair {
	pairBytes := make(map[[2]string]int64)

	for key, paths := range ix.Candidates(0) {
		var folders []string
		seen := make(map[string]bool)
		for _, p := range paths {
			dir := filepath.Dir(p)
			if !seen[dir] {
				seen[dir] = true
				folders = append(folders, dir)
			}
		}

		for i := 0; i < len(folders); i++ {
			for j := i + 1; j < len(folders); j++ {
				a, b := folders[i], folders[j]
				if a > b {
					a, b = b, a
				}
				pairBytes[[2]string{a, b}] += key.Size
			}
		}
	}

	pairs := make([]FolderPair, 0, len(pairBytes))
	for pair, bytes := range pairBytes {
		pairs = append(pairs, FolderPair{FolderA: pair[0], FolderB: pair[1], Bytes: bytes})
	}
	sort.Slice(pairs, func(i, j int) bool {
		if pairs[i].Bytes != pairs[j].Bytes {
			return pairs[i].Bytes > pairs[j].Bytes
		}
		if pairs[i].FolderA != pairs[j].FolderA {
			return pairs[i].FolderA < pairs[j].FolderA
		}
		return pairs[i].FolderB < pairs[j].FolderB
	})
	return pairs
}

// Categories 按 MIME 大类统计候选组
// 对每组第一个路径嗅探文件头，检测通过 goroutine 池并行执行
// 这只是报告侧的分析，不参与分类和破坏性操作
func Categories(fs afero.Fs, ix *index.Index, workers int) (map[string]int, error) {
	if workers <= 0 {
		workers = 1
	}

	pool, err := ants.NewPool(workers)
	if err != nil {
		return nil, fmt.Errorf("创建检测线程池失败: %w", err)
	}
	defer pool.Release()

	counts := make(map[string]int)
	var mu sync.Mutex
	var wg sync.WaitGroup

	for _, paths := range ix.Candidates(0) {
		path := paths[0]
		wg.Add(1)
		if err := pool.Submit(func() {
			defer wg.Done()
			category := detectCategory(fs, path)
			mu.Lock()
			counts[category]++
			mu.Unlock()
		}); err != nil {
			wg.Done()
			logger.Get().Error().Err(err).Msgf("提交检测任务失败: %s", path)
		}
	}

	wg.Wait()
	return counts, nil
}

// detectCategory 嗅探文件头，返回 MIME 大类（image、video 等），未知为 unknown
func detectCategory(fs afero.Fs, path string) string {
	file, err := fs.Open(path)
	if err != nil {
		return "unreadable"
	}
	defer file.Close()

	head := make([]byte, detectHeaderSize)
	n, _ := file.Read(head)

	kind, err := filetype.Match(head[:n])
	if err != nil || kind == filetype.Unknown {
		return "unknown"
	}

	if i := strings.Index(kind.MIME.Value, "/"); i > 0 {
		return kind.MIME.Value[:i]
	}
	return kind.MIME.Value
}

// PrintLargestGroups 打印最大的重复候选组
func PrintLargestGroups(groups []GroupStat, n int) {
	line := strings.Repeat("=", 80)
	fmt.Printf("\n%s\n", line)
	fmt.Printf("TOP %d LARGEST DUPLICATE FILE GROUPS\n", n)
	fmt.Println(line)

	if len(groups) == 0 {
		fmt.Println("No duplicates found.")
		return
	}

	var totalWasted int64
	for i, g := range groups {
		totalWasted += g.WastedBytes
		fmt.Printf("\n%d. %s\n", i+1, g.Key.Filename)
		fmt.Printf("   File size: %s\n", FormatBytes(g.Key.Size))
		fmt.Printf("   Number of copies: %d\n", len(g.Paths))
		fmt.Printf("   Wasted space: %s\n", FormatBytes(g.WastedBytes))
		fmt.Println("   Locations:")
		sorted := make([]string, len(g.Paths))
		copy(sorted, g.Paths)
		sort.Strings(sorted)
		for _, p := range sorted {
			fmt.Printf("     - %s\n", p)
		}
	}

	fmt.Printf("\n%s\n", line)
	fmt.Printf("Total wasted space in top %d: %s\n", n, FormatBytes(totalWasted))
	fmt.Println(line)
}

// PrintFolderPairs 打印重复数据量最大的目录对
func PrintFolderPairs(pairs []FolderPair, topN int, fullPaths bool) {
	line := strings.Repeat("=", 90)
	fmt.Printf("\n%s\n", line)
	fmt.Printf("TOP %d FOLDER PAIRS WITH DUPLICATES\n", topN)
	fmt.Println(line)

	if len(pairs) == 0 {
		fmt.Println("No folder pairs with duplicates found.")
		return
	}

	var totalBytes int64
	for _, p := range pairs {
		totalBytes += p.Bytes
	}

	shown := pairs
	if len(shown) > topN {
		shown = shown[:topN]
	}

	for i, p := range shown {
		a, b := p.FolderA, p.FolderB
		if !fullPaths {
			a = truncatePath(a, 48)
			b = truncatePath(b, 48)
		}
		fmt.Printf("\n%d. Duplicated Data: %s\n", i+1, FormatBytes(p.Bytes))
		fmt.Printf("   Folder 1: %s\n", a)
		fmt.Printf("   Folder 2: %s\n", b)
	}

	fmt.Printf("\n%s\n", line)
	fmt.Printf("Total duplicated data across all folder pairs: %s\n", FormatBytes(totalBytes))
	fmt.Println(line)
}

// PrintCategories 打印 MIME 大类统计
func PrintCategories(counts map[string]int) {
	line := strings.Repeat("=", 60)
	fmt.Printf("\n%s\n", line)
	fmt.Println("DUPLICATE GROUPS BY FILE CATEGORY")
	fmt.Println(line)

	categories := make([]string, 0, len(counts))
	for c := range counts {
		categories = append(categories, c)
	}
	sort.Slice(categories, func(i, j int) bool {
		if counts[categories[i]] != counts[categories[j]] {
			return counts[categories[i]] > counts[categories[j]]
		}
		return categories[i] < categories[j]
	})

	for _, c := range categories {
		fmt.Printf("  %-12s %d groups\n", c, counts[c])
	}
	fmt.Println(line)
}

func truncatePath(p string, max int) string {
	if len(p) <= max {
		return p
	}
	return "..." + p[len(p)-max+3:]
}
