package scanner

import (
	"path/filepath"
	"strings"
	"time"

	"github.com/spf13/afero"

	"github.com/aldebaro/hd-organizer/internal"
	"github.com/aldebaro/hd-organizer/pkg/index"
	"github.com/aldebaro/hd-organizer/pkg/logger"
)

// Walker 遍历目录树并构建候选索引
// 隐藏文件和目录（以点号开头）在任意深度都会被跳过，
// 无法读取的条目静默忽略，不会中断扫描
type Walker struct {
	fs       afero.Fs
	maxDepth int
}

func NewWalker(fs afero.Fs) *Walker {
	return &Walker{
		fs:       fs,
		maxDepth: internal.DefaultMaxDepth,
	}
}

func NewWalkerWithMaxDepth(fs afero.Fs, maxDepth int) *Walker {
	return &Walker{
		fs:       fs,
		maxDepth: maxDepth,
	}
}

// BuildIndex 递归扫描所有根目录，返回 (文件名, 扩展名, 大小) 到绝对路径的索引
func (w *Walker) BuildIndex(roots []string) (*index.Index, *internal.ScanStats) {
	logger.Get().Info().Msgf("开始扫描，共 %d 个目录", len(roots))

	stats := &internal.ScanStats{StartTime: time.Now()}
	ix := index.New()

	for _, root := range roots {
		abs, err := filepath.Abs(root)
		if err != nil {
			logger.Get().Error().Err(err).Msgf("解析目录失败: %s", root)
			stats.Skipped++
			continue
		}
		w.scanDir(abs, 0, ix, stats)
	}

	summary := ix.Summary()
	stats.TotalIndexed = summary.TotalFiles
	stats.UniqueKeys = summary.UniqueKeys
	stats.CollisionKeys = summary.CollisionKeys
	stats.EndTime = time.Now()

	logger.Get().Info().
		Int("files", stats.TotalIndexed).
		Int("keys", stats.UniqueKeys).
		Int("collisions", stats.CollisionKeys).
		Dur("elapsed", stats.EndTime.Sub(stats.StartTime)).
		Msg("扫描完成")

	return ix, stats
}

func (w *Walker) scanDir(dir string, depth int, ix *index.Index, stats *internal.ScanStats) {
	if depth > w.maxDepth {
		logger.Get().Warn().Msgf("超过最大递归深度 %d，跳过: %s", w.maxDepth, dir)
		stats.Skipped++
		return
	}

	entries, err := afero.ReadDir(w.fs, dir)
	if err != nil {
		// 权限不足或目录消失时跳过，不中断扫描
		logger.Get().Debug().Err(err).Msgf("无法读取目录: %s", dir)
		stats.Skipped++
		return
	}

	for _, entry := range entries {
		name := entry.Name()
		if strings.HasPrefix(name, ".") {
			continue
		}

		full := filepath.Join(dir, name)
		if entry.IsDir() {
			w.scanDir(full, depth+1, ix, stats)
			continue
		}
		if !entry.Mode().IsRegular() {
			continue
		}

		ix.Add(index.KeyFor(name, entry.Size()), full)
	}
}
