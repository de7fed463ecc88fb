package cmd

import (
	"github.com/spf13/cobra"

	"github.com/aldebaro/hd-organizer/app"
	"github.com/aldebaro/hd-organizer/config"
	"github.com/aldebaro/hd-organizer/internal"
)

var statsCmd = &cobra.Command{
	Use:   "stats",
	Short: "分析已存储的索引，输出浪费空间与目录分布报告",
	Long: `基于 scan 命令生成的索引输出三类分析:
- 浪费空间最大的候选组（按 大小×(数量-1) 排序）
- 候选重复数据最多的目录对
- 可选的文件类型分布（--categories，按文件头探测 MIME 类型）`,
	RunE: runStats,
}

func runStats(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	dbPath, _ := cmd.Flags().GetString("db")
	if dbPath == "" {
		dbPath = cfg.Database.Path
	}
	topN, _ := cmd.Flags().GetInt("top")
	fullPaths, _ := cmd.Flags().GetBool("full-paths")
	categories, _ := cmd.Flags().GetBool("categories")

	opts := &app.StatsOptions{
		DBPath:     dbPath,
		TopN:       topN,
		FullPaths:  fullPaths,
		Categories: categories,
		Workers:    internal.DefaultDetectWorkers,
		LogLevel:   cfg.Logging.Level,
		LogFile:    cfg.Logging.File,
	}

	return app.RunStats(opts)
}

func init() {
	statsCmd.Flags().String("db", "", "数据库路径（默认取配置）")
	statsCmd.Flags().IntP("top", "t", internal.DefaultTopGroups, "每类报告显示的条目数")
	statsCmd.Flags().Bool("full-paths", false, "显示完整目录路径，不截断")
	statsCmd.Flags().Bool("categories", false, "统计文件类型分布（需要读取文件头，较慢）")

	rootCmd.AddCommand(statsCmd)
}
