package app

import (
	"github.com/spf13/afero"

	"github.com/aldebaro/hd-organizer/pkg/database"
	"github.com/aldebaro/hd-organizer/pkg/logger"
	"github.com/aldebaro/hd-organizer/pkg/report"
)

type StatsOptions struct {
	DBPath     string
	TopN       int
	FullPaths  bool
	Categories bool
	Workers    int
	LogLevel   string
	LogFile    string
}

// RunStats 基于已存储的索引输出分析报告：
// 浪费空间最大的候选组、重复数据最多的目录对，以及可选的文件类型分布
func RunStats(opts *StatsOptions) error {
	if err := logger.Init(opts.LogLevel, opts.LogFile); err != nil {
		return err
	}

	db, err := database.New(opts.DBPath)
	if err != nil {
		return err
	}
	defer db.Close()

	ix, err := db.LoadIndex()
	if err != nil {
		return err
	}

	report.PrintLargestGroups(report.LargestGroups(ix, opts.TopN), opts.TopN)
	report.PrintFolderPairs(report.FolderPairs(ix), opts.TopN, opts.FullPaths)

	if opts.Categories {
		counts, err := report.Categories(afero.NewOsFs(), ix, opts.Workers)
		if err != nil {
			return err
		}
		report.PrintCategories(counts)
	}

	return nil
}
