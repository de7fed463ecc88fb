package cmd

import (
	"github.com/spf13/cobra"

	"github.com/aldebaro/hd-organizer/app"
	"github.com/aldebaro/hd-organizer/config"
)

var recoverCmd = &cobra.Command{
	Use:   "recover <duplicates.json> [search]",
	Short: "从保留的最新副本恢复已删除的重复文件",
	Long: `读取 dups 命令生成的重复记录文件，把每组保留的最新副本拷贝回
命中搜索串的路径（不区分大小写的子串匹配）。缺失的父目录会自动创建。

不给搜索串时必须加 --recover-all 恢复全部。
默认是演练模式，加 --execute 才会真正写文件。`,
	Args: cobra.RangeArgs(1, 2),
	RunE: runRecover,
}

func runRecover(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	search := ""
	if len(args) > 1 {
		search = args[1]
	}

	execute, _ := cmd.Flags().GetBool("execute")
	yes, _ := cmd.Flags().GetBool("yes")
	verbose, _ := cmd.Flags().GetBool("verbose")
	recoverAll, _ := cmd.Flags().GetBool("recover-all")
	logFile, _ := cmd.Flags().GetString("log-file")

	opts := &app.RecoverOptions{
		JSONFile:   args[0],
		Search:     search,
		RecoverAll: recoverAll,
		Execute:    execute,
		Yes:        yes,
		Verbose:    verbose,
		LogFile:    logFile,
		LogLevel:   cfg.Logging.Level,
	}

	_, err = app.RunRecover(opts)
	return err
}

func init() {
	recoverCmd.Flags().Bool("recover-all", false, "恢复全部，无需搜索串")
	recoverCmd.Flags().Bool("execute", false, "真正执行恢复（默认只演练）")
	recoverCmd.Flags().BoolP("yes", "y", false, "跳过交互确认")
	recoverCmd.Flags().BoolP("verbose", "v", false, "把日志行同时回显到终端")
	recoverCmd.Flags().String("log-file", "", "操作日志路径（默认自动按时间戳生成）")

	rootCmd.AddCommand(recoverCmd)
}
