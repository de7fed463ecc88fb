package app

import (
	"fmt"

	"github.com/spf13/afero"

	"github.com/aldebaro/hd-organizer/internal"
	"github.com/aldebaro/hd-organizer/pkg/classifier"
	"github.com/aldebaro/hd-organizer/pkg/comparator"
	"github.com/aldebaro/hd-organizer/pkg/database"
	"github.com/aldebaro/hd-organizer/pkg/hasher"
	"github.com/aldebaro/hd-organizer/pkg/logger"
	"github.com/aldebaro/hd-organizer/pkg/report"
)

type DupsOptions struct {
	DBPath       string
	Method       string
	MinSize      int64
	ChunkSize    int
	OutputPrefix string
	Verbose      bool
	LogLevel     string
	LogFile      string
}

// RunDups 加载索引、按内容分类并输出重复/差异记录文件
func RunDups(opts *DupsOptions) (*internal.ClassifyStats, error) {
	logLevel := opts.LogLevel
	if opts.Verbose {
		logLevel = "debug"
	}
	if err := logger.Init(logLevel, opts.LogFile); err != nil {
		return nil, err
	}

	method := classifier.Method(opts.Method)
	if method != classifier.MethodHash && method != classifier.MethodByte {
		return nil, fmt.Errorf("未知的比较方式 %q，只支持 hash 或 byte", opts.Method)
	}

	db, err := database.New(opts.DBPath)
	if err != nil {
		return nil, err
	}
	defer db.Close()

	ix, err := db.LoadIndex()
	if err != nil {
		return nil, fmt.Errorf("加载索引失败: %w", err)
	}

	fs := afero.NewOsFs()

	var cmp comparator.Comparator
	switch method {
	case classifier.MethodByte:
		logger.Get().Info().Msg("使用逐字节比较")
		cmp = comparator.NewByteComparator(fs, opts.ChunkSize)
	default:
		logger.Get().Info().Msg("使用 SHA-256 哈希比较")
		// 摘要缓存与本次分类同生命周期，不跨运行复用
		cmp = comparator.NewHashComparator(hasher.NewCache(fs, opts.ChunkSize))
	}

	cls := classifier.New(cmp, opts.MinSize)
	res := cls.Classify(ix)

	dups, diffs := report.Build(fs, res, string(method))

	report.PrintDuplicates(dups)

	dupsPath := opts.OutputPrefix + "_duplicates.json"
	diffsPath := opts.OutputPrefix + "_differences.json"

	if err := dups.Save(fs, dupsPath); err != nil {
		return nil, err
	}
	fmt.Printf("Duplicate groups saved to: %s (%d groups)\n", dupsPath, dups.TotalGroups)

	if err := diffs.Save(fs, diffsPath); err != nil {
		return nil, err
	}
	fmt.Printf("Difference groups saved to: %s (%d groups)\n", diffsPath, diffs.TotalGroups)

	return &res.Stats, nil
}
