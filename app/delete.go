package app

import (
	"fmt"

	"github.com/spf13/afero"

	"github.com/aldebaro/hd-organizer/pkg/logger"
	"github.com/aldebaro/hd-organizer/pkg/operator"
	"github.com/aldebaro/hd-organizer/pkg/oplog"
	"github.com/aldebaro/hd-organizer/pkg/report"
)

type DeleteOptions struct {
	JSONFile string
	Execute  bool
	Yes      bool
	Verbose  bool
	LogFile  string
	LogLevel string
}

// RunDelete 删除重复文件，保留每组最新的副本
// 默认 dry-run，--execute 才会真正删除，且需要交互确认（--yes 可跳过）
func RunDelete(opts *DeleteOptions) (*operator.Runner, error) {
	if err := logger.Init(opts.LogLevel, ""); err != nil {
		return nil, err
	}

	fs := afero.NewOsFs()

	// 记录文件缺失或校验失败是致命输入错误，在任何变更发生前退出
	doc, err := report.LoadDuplicates(fs, opts.JSONFile)
	if err != nil {
		return nil, err
	}

	logPath := opts.LogFile
	if logPath == "" {
		logPath = oplog.DefaultDeletePath()
	}

	l := oplog.New(logPath, opts.Verbose)
	l.Logf("Duplicate deleter initialized")
	l.Logf("Dry-run mode: %v", !opts.Execute)
	l.Logf("JSON file: %s", opts.JSONFile)

	var confirm operator.ConfirmFunc
	if !opts.Yes {
		confirm = operator.StdinConfirm
	}

	runner := operator.NewRunner(operator.NewDeletion(fs, doc), l, !opts.Execute, confirm)

	if !opts.Execute {
		fmt.Println("\nDRY-RUN MODE: No files will be deleted")
	}

	if err := runner.Run(); err != nil {
		return runner, err
	}

	if !opts.Execute && !opts.Verbose {
		fmt.Println("Use --verbose --execute to see details and delete files")
	}

	return runner, nil
}
