package cmd

import (
	"github.com/spf13/cobra"

	"github.com/aldebaro/hd-organizer/config"
	"github.com/aldebaro/hd-organizer/tui"
)

var browseCmd = &cobra.Command{
	Use:   "browse <duplicates.json>",
	Short: "交互式浏览重复文件组",
	Long: `在终端界面中浏览 dups 命令生成的重复记录文件。
支持按路径搜索过滤，详情页会标出每组最新的副本（删除时保留的那份）。`,
	Args: cobra.ExactArgs(1),
	RunE: runBrowse,
}

func runBrowse(cmd *cobra.Command, args []string) error {
	if _, err := config.Load(); err != nil {
		return err
	}

	// TUI 占用整个终端，不初始化控制台日志，Get() 会退回丢弃式 logger
	return tui.Run(&tui.Config{JSONFile: args[0]})
}

func init() {
	rootCmd.AddCommand(browseCmd)
}
