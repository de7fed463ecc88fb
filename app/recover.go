package app

import (
	"fmt"

	"github.com/spf13/afero"

	"github.com/aldebaro/hd-organizer/pkg/logger"
	"github.com/aldebaro/hd-organizer/pkg/operator"
	"github.com/aldebaro/hd-organizer/pkg/oplog"
	"github.com/aldebaro/hd-organizer/pkg/report"
)

type RecoverOptions struct {
	JSONFile   string
	Search     string
	RecoverAll bool
	Execute    bool
	Yes        bool
	Verbose    bool
	LogFile    string
	LogLevel   string
}

// RunRecover 把每组最新的副本拷贝回其余路径
// 不指定 --recover-all 时必须给出搜索串，只恢复命中的路径
func RunRecover(opts *RecoverOptions) (*operator.Runner, error) {
	if err := logger.Init(opts.LogLevel, ""); err != nil {
		return nil, err
	}

	if !opts.RecoverAll && opts.Search == "" {
		return nil, fmt.Errorf("必须提供搜索串，或使用 --recover-all 恢复全部")
	}

	fs := afero.NewOsFs()

	doc, err := report.LoadDuplicates(fs, opts.JSONFile)
	if err != nil {
		return nil, err
	}

	logPath := opts.LogFile
	if logPath == "" {
		logPath = oplog.DefaultRecoverPath(opts.Search, opts.RecoverAll)
	}

	l := oplog.New(logPath, opts.Verbose)
	l.Logf("Duplicate recoverer initialized")
	l.Logf("Dry-run mode: %v", !opts.Execute)
	l.Logf("JSON file: %s", opts.JSONFile)
	if opts.RecoverAll {
		l.Logf("Mode: Recover all files")
	} else {
		l.Logf("Search string: %s", opts.Search)
	}

	var confirm operator.ConfirmFunc
	if !opts.Yes {
		confirm = operator.StdinConfirm
	}

	runner := operator.NewRunner(
		operator.NewRecovery(fs, doc, opts.Search, opts.RecoverAll), l, !opts.Execute, confirm)

	if !opts.Execute {
		fmt.Println("\nDRY-RUN MODE: No files will be recovered")
	}

	if err := runner.Run(); err != nil {
		return runner, err
	}

	if !opts.Execute && !opts.Verbose {
		fmt.Println("Use --verbose --execute to see details and recover files")
	}

	return runner, nil
}
