package app

import (
	"fmt"
	"sort"

	"github.com/spf13/afero"

	"github.com/aldebaro/hd-organizer/internal"
	"github.com/aldebaro/hd-organizer/pkg/database"
	"github.com/aldebaro/hd-organizer/pkg/index"
	"github.com/aldebaro/hd-organizer/pkg/logger"
	"github.com/aldebaro/hd-organizer/pkg/scanner"
)

type ScanOptions struct {
	SourceDirs []string
	DBPath     string
	MaxDepth   int
	Verbosity  int
	LogLevel   string
	LogFile    string
}

// RunScan 扫描目录并把候选索引持久化到数据库
func RunScan(opts *ScanOptions) (*internal.ScanStats, error) {
	logLevel := opts.LogLevel
	if opts.Verbosity > 0 {
		logLevel = "debug"
	}
	if err := logger.Init(logLevel, opts.LogFile); err != nil {
		return nil, err
	}

	logger.Get().Info().Msgf("扫描目录数: %d", len(opts.SourceDirs))
	for i, dir := range opts.SourceDirs {
		logger.Get().Info().Msgf("  [%d] %s", i+1, dir)
	}

	maxDepth := opts.MaxDepth
	if maxDepth <= 0 {
		maxDepth = internal.DefaultMaxDepth
	}
	walker := scanner.NewWalkerWithMaxDepth(afero.NewOsFs(), maxDepth)
	ix, stats := walker.BuildIndex(opts.SourceDirs)

	db, err := database.New(opts.DBPath)
	if err != nil {
		return nil, err
	}
	defer db.Close()

	if err := db.SaveIndex(ix); err != nil {
		return nil, fmt.Errorf("保存索引失败: %w", err)
	}

	printScanSummary(ix, opts.Verbosity)
	return stats, nil
}

// printScanSummary 打印索引概要
// verbosity: 0 只打总数，1 列出候选组，2 附带完整路径
func printScanSummary(ix *index.Index, verbosity int) {
	summary := ix.Summary()

	fmt.Println("\nFile Index Summary:")
	fmt.Printf("  Total files indexed: %d\n", summary.TotalFiles)
	fmt.Printf("  Unique (filename, extension, size) combinations: %d\n", summary.UniqueKeys)
	fmt.Printf("  Combinations with duplicates: %d\n", summary.CollisionKeys)

	if summary.CollisionKeys == 0 || verbosity == 0 {
		return
	}

	fmt.Println("\nDuplicate files (same name, extension, size):")
	for _, key := range ix.Keys() {
		paths := ix.Paths(key)
		if len(paths) < 2 {
			continue
		}
		fmt.Printf("  %s (%d bytes) - %d copies\n", key.Filename, key.Size, len(paths))
		if verbosity >= 2 {
			sorted := make([]string, len(paths))
			copy(sorted, paths)
			sort.Strings(sorted)
			for _, p := range sorted {
				fmt.Printf("    %s\n", p)
			}
		}
	}
}
