package index

import (
	"fmt"
	"sort"
	"strings"
)

// Key 候选键：文件名、扩展名和大小
// 键相同只能说明可能重复，真正的判定由内容比较完成
type Key struct {
	Filename  string
	Extension string
	Size      int64
}

// KeyFor 根据文件名和大小构造候选键
// 扩展名取最后一个点之后的部分，没有扩展名时为空字符串
func KeyFor(name string, size int64) Key {
	ext := ""
	if i := strings.LastIndex(name, "."); i > 0 && i < len(name)-1 {
		ext = name[i+1:]
	}
	return Key{
		Filename:  name,
		Extension: ext,
		Size:      size,
	}
}

func (k Key) String() string {
	ext := k.Extension
	if ext == "" {
		ext = "(no extension)"
	}
	return fmt.Sprintf("%s [%s] (%d bytes)", k.Filename, ext, k.Size)
}

// Index 候选索引，键到绝对路径列表的映射
// 每次扫描重新构建，构建完成后只读
type Index struct {
	entries map[Key][]string
}

func New() *Index {
	return &Index{
		entries: make(map[Key][]string),
	}
}

func (ix *Index) Add(key Key, path string) {
	ix.entries[key] = append(ix.entries[key], path)
}

func (ix *Index) Paths(key Key) []string {
	return ix.entries[key]
}

// Keys 返回排序后的全部候选键，保证遍历顺序确定
func (ix *Index) Keys() []Key {
	keys := make([]Key, 0, len(ix.entries))
	for k := range ix.entries {
		keys = append(keys, k)
	}
	sort.Slice(keys, func(i, j int) bool {
		if keys[i].Filename != keys[j].Filename {
			return keys[i].Filename < keys[j].Filename
		}
		if keys[i].Extension != keys[j].Extension {
			return keys[i].Extension < keys[j].Extension
		}
		return keys[i].Size < keys[j].Size
	})
	return keys
}

// Len 返回唯一候选键数量
func (ix *Index) Len() int {
	return len(ix.entries)
}

// TotalFiles 返回索引中的文件总数
func (ix *Index) TotalFiles() int {
	total := 0
	for _, paths := range ix.entries {
		total += len(paths)
	}
	return total
}

// Candidates 返回路径数不小于 2 且满足最小文件大小的候选组
func (ix *Index) Candidates(minSize int64) map[Key][]string {
	candidates := make(map[Key][]string)
	for key, paths := range ix.entries {
		if key.Size < minSize {
			continue
		}
		if len(paths) > 1 {
			candidates[key] = paths
		}
	}
	return candidates
}

// Summary 索引概要
type Summary struct {
	TotalFiles    int
	UniqueKeys    int
	CollisionKeys int
}

func (ix *Index) Summary() Summary {
	s := Summary{UniqueKeys: len(ix.entries)}
	for _, paths := range ix.entries {
		s.TotalFiles += len(paths)
		if len(paths) > 1 {
			s.CollisionKeys++
		}
	}
	return s
}
