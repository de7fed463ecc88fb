package cmd

import (
	"os"

	"github.com/spf13/cobra"
)

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "hd-organizer",
	Short: "一个用于查找、安全删除和恢复重复文件的工具",
	Long: `HD Organizer 是一个命令行工具，用于在目录树中识别真正的重复文件，
并在此基础上提供可审计、可恢复的删除与恢复操作。

主要功能:
- 递归扫描目录，按 (文件名, 扩展名, 大小) 建立候选索引并存入 SQLite
- 对候选组执行逐字节或 SHA-256 比较，区分真重复与同名不同内容的文件
- 输出自包含的 JSON 记录，供后续删除和恢复使用
- 删除时保留每组最新的副本，默认 dry-run，执行前需要确认
- 依据记录把最新副本拷贝回已删除的路径，实现恢复
- 每次破坏性运行都写出完整的操作日志`,
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	err := rootCmd.Execute()
	if err != nil {
		os.Exit(1)
	}
}
