package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/aldebaro/hd-organizer/app"
	"github.com/aldebaro/hd-organizer/config"
	"github.com/aldebaro/hd-organizer/internal"
)

var dupsCmd = &cobra.Command{
	Use:   "dups",
	Short: "对候选索引执行内容比较，找出真重复文件",
	Long: `加载 scan 命令生成的索引，对每个路径数不小于 2 的候选组执行内容比较。
支持两种比较方式:
- hash: 流式计算 SHA-256 摘要后比较，摘要在单次运行内缓存（默认，较快）
- byte: 逐字节同步比较，发现第一处差异立即停止（较慢但最彻底）

输出两个 JSON 文件: 真重复组和同名同大小但内容不同的差异组。`,
	RunE: runDups,
}

func runDups(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	dbPath, _ := cmd.Flags().GetString("db")
	if dbPath == "" {
		dbPath = cfg.Database.Path
	}
	method, _ := cmd.Flags().GetString("method")
	if !cmd.Flags().Changed("method") {
		method = cfg.Compare.Method
	}
	minSize, _ := cmd.Flags().GetInt64("min-size")
	if !cmd.Flags().Changed("min-size") {
		minSize = cfg.Compare.MinSize
	}
	outputPrefix, _ := cmd.Flags().GetString("output-prefix")
	verbose, _ := cmd.Flags().GetBool("verbose")

	opts := &app.DupsOptions{
		DBPath:       dbPath,
		Method:       method,
		MinSize:      minSize,
		ChunkSize:    cfg.Compare.ChunkSize,
		OutputPrefix: outputPrefix,
		Verbose:      verbose,
		LogLevel:     cfg.Logging.Level,
		LogFile:      cfg.Logging.File,
	}

	stats, err := app.RunDups(opts)
	if err != nil {
		return err
	}

	elapsed := stats.EndTime.Sub(stats.StartTime)
	fmt.Printf("\nCompared %d candidate groups (%d files) in %v\n",
		stats.CandidateGroups, stats.CandidateFiles, elapsed)

	return nil
}

func init() {
	dupsCmd.Flags().String("db", "", "数据库路径（默认取配置）")
	dupsCmd.Flags().StringP("method", "m", "hash", "比较方式: hash 或 byte")
	dupsCmd.Flags().Int64("min-size", 0, "参与比较的最小文件大小（字节）")
	dupsCmd.Flags().String("output-prefix", internal.DefaultOutputPrefix, "结果文件前缀")
	dupsCmd.Flags().BoolP("verbose", "v", false, "显示详细日志")

	rootCmd.AddCommand(dupsCmd)
}
