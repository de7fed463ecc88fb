package cmd

import (
	"github.com/spf13/cobra"

	"github.com/aldebaro/hd-organizer/app"
	"github.com/aldebaro/hd-organizer/config"
	"github.com/aldebaro/hd-organizer/pkg/logger"
)

var scanCmd = &cobra.Command{
	Use:   "scan <directories...>",
	Short: "扫描目录并建立候选索引",
	Long: `递归扫描指定目录中的所有文件，按 (文件名, 扩展名, 大小) 建立候选索引。
隐藏文件和目录（以点号开头）在任意深度都会被跳过，无法读取的条目静默忽略。
索引存入 SQLite 数据库，供 dups 和 stats 命令使用。`,
	Args: cobra.MinimumNArgs(1),
	RunE: runScan,
}

func runScan(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	dbPath, _ := cmd.Flags().GetString("db")
	if dbPath == "" {
		dbPath = cfg.Database.Path
	}
	verbosity, _ := cmd.Flags().GetCount("verbose")

	opts := &app.ScanOptions{
		SourceDirs: args,
		DBPath:     dbPath,
		MaxDepth:   cfg.Scanner.MaxDepth,
		Verbosity:  verbosity,
		LogLevel:   cfg.Logging.Level,
		LogFile:    cfg.Logging.File,
	}

	stats, err := app.RunScan(opts)
	if err != nil {
		return err
	}

	logger.Get().Info().
		Int("files", stats.TotalIndexed).
		Int("collisions", stats.CollisionKeys).
		Msg("索引已写入数据库")

	return nil
}

func init() {
	scanCmd.Flags().String("db", "", "数据库路径（默认取配置）")
	scanCmd.Flags().CountP("verbose", "v", "-v 列出候选组，-vv 附带完整路径")

	rootCmd.AddCommand(scanCmd)
}
