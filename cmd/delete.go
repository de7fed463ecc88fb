package cmd

import (
	"github.com/spf13/cobra"

	"github.com/aldebaro/hd-organizer/app"
	"github.com/aldebaro/hd-organizer/config"
)

var deleteCmd = &cobra.Command{
	Use:   "delete <duplicates.json>",
	Short: "按重复记录文件删除多余副本，保留每组最新的一份",
	Long: `读取 dups 命令生成的重复记录文件，删除每组中除最新副本之外的所有文件。

默认是演练模式，只预览将要删除的文件，不做任何改动。
加 --execute 才会真正删除。无论是否执行，操作日志都会写盘。`,
	Args: cobra.ExactArgs(1),
	RunE: runDelete,
}

func runDelete(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	execute, _ := cmd.Flags().GetBool("execute")
	yes, _ := cmd.Flags().GetBool("yes")
	verbose, _ := cmd.Flags().GetBool("verbose")
	logFile, _ := cmd.Flags().GetString("log-file")

	opts := &app.DeleteOptions{
		JSONFile: args[0],
		Execute:  execute,
		Yes:      yes,
		Verbose:  verbose,
		LogFile:  logFile,
		LogLevel: cfg.Logging.Level,
	}

	_, err = app.RunDelete(opts)
	return err
}

func init() {
	deleteCmd.Flags().Bool("execute", false, "真正执行删除（默认只演练）")
	deleteCmd.Flags().BoolP("yes", "y", false, "跳过交互确认")
	deleteCmd.Flags().BoolP("verbose", "v", false, "把日志行同时回显到终端")
	deleteCmd.Flags().String("log-file", "", "操作日志路径（默认自动按时间戳生成）")

	rootCmd.AddCommand(deleteCmd)
}
