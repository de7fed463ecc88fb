package classifier

import (
	"sort"
	"time"

	"github.com/aldebaro/hd-organizer/internal"
	"github.com/aldebaro/hd-organizer/pkg/comparator"
	"github.com/aldebaro/hd-organizer/pkg/index"
	"github.com/aldebaro/hd-organizer/pkg/logger"
)

// Method 比较策略
type Method string

const (
	MethodHash Method = "hash"
	MethodByte Method = "byte"
)

// Result 分类结果
// Duplicates: 候选键到真重复组的映射，每组内的文件内容两两相同，组大小不小于 2
// Differences: 键相同但内容不同的残余文件，每个作为单元素组记录，便于审计
type Result struct {
	Duplicates  map[index.Key][][]string
	Differences map[index.Key][][]string
	Stats       internal.ClassifyStats
}

// Classifier 把候选组划分为内容相同的最大子集
type Classifier struct {
	cmp     comparator.Comparator
	minSize int64
}

func New(cmp comparator.Comparator, minSize int64) *Classifier {
	return &Classifier{
		cmp:     cmp,
		minSize: minSize,
	}
}

// Classify 对索引中所有路径数不小于 2 的候选组执行内容比较
// 单个文件的读取错误只会让该文件与所有文件比较不相等，分类本身总会完成
func (c *Classifier) Classify(ix *index.Index) *Result {
	res := &Result{
		Duplicates:  make(map[index.Key][][]string),
		Differences: make(map[index.Key][][]string),
	}
	res.Stats.StartTime = time.Now()

	candidates := ix.Candidates(c.minSize)
	logger.Get().Info().Msgf("候选组: %d 个，最小文件大小: %d bytes", len(candidates), c.minSize)

	keys := make([]index.Key, 0, len(candidates))
	for k := range candidates {
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

	for _, key := range keys {
		paths := candidates[key]
		res.Stats.CandidateGroups++
		res.Stats.CandidateFiles += len(paths)

		groups, residuals := c.partition(paths)

		if len(groups) > 0 {
			res.Duplicates[key] = groups
			res.Stats.DuplicateGroups += len(groups)
			for _, g := range groups {
				res.Stats.DuplicateFiles += len(g)
				res.Stats.WastedSpace += key.Size * int64(len(g)-1)
			}
		}
		if len(residuals) > 0 {
			res.Differences[key] = residuals
			res.Stats.DifferenceGroups += len(residuals)
		}
	}

	res.Stats.EndTime = time.Now()
	logger.Get().Info().
		Int("duplicate_groups", res.Stats.DuplicateGroups).
		Int("difference_groups", res.Stats.DifferenceGroups).
		Int64("wasted_space", res.Stats.WastedSpace).
		Msg("分类完成")

	return res
}

// partition 把一个候选组划分为内容相等的等价类
// 取一个未处理的路径作为种子，与其余路径逐一比较，相等的收入同一组并移出候选，
// 重复直到没有剩余。每个路径恰好落入一个组，比较失败按不相等处理
func (c *Classifier) partition(paths []string) (groups [][]string, residuals [][]string) {
	remaining := make([]string, len(paths))
	copy(remaining, paths)
	sort.Strings(remaining)

	for len(remaining) > 0 {
		seed := remaining[0]
		group := []string{seed}
		rest := remaining[:0]

		for _, other := range remaining[1:] {
			if c.cmp.Compare(seed, other) == comparator.Equal {
				group = append(group, other)
			} else {
				rest = append(rest, other)
			}
		}
		remaining = rest

		if len(group) > 1 {
			groups = append(groups, group)
		} else {
			residuals = append(residuals, group)
		}
	}

	return groups, residuals
}
