package oplog

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/google/uuid"
)

// Log 破坏性操作的审计日志
// 运行期间在内存中累积带时间戳的文本行，结束时一次性落盘
// 日志是唯一的审计与回滚依据，任何一次调用结束都必须写出，包括预览和取消
type Log struct {
	path    string
	runID   string
	verbose bool
	lines   []string
	now     func() time.Time
}

// New 创建日志，verbose 只控制是否回显到控制台，不影响记录内容
func New(path string, verbose bool) *Log {
	l := &Log{
		path:    path,
		runID:   uuid.New().String(),
		verbose: verbose,
		now:     time.Now,
	}
	l.Logf("Run ID: %s", l.runID)
	return l
}

// Logf 记录一行，verbose 模式下同时打印到控制台
func (l *Log) Logf(format string, args ...any) {
	line := l.stamp(fmt.Sprintf(format, args...))
	l.lines = append(l.lines, line)
	if l.verbose {
		fmt.Println(line)
	}
}

// Echof 记录一行并总是打印到控制台，无论 verbose 设置
func (l *Log) Echof(format string, args ...any) {
	line := l.stamp(fmt.Sprintf(format, args...))
	l.lines = append(l.lines, line)
	fmt.Println(line)
}

func (l *Log) stamp(msg string) string {
	return fmt.Sprintf("[%s] %s", l.now().Format("2006-01-02 15:04:05"), msg)
}

// Save 把全部日志行写入文件
// 写入失败是唯一需要升级为硬错误的情况：破坏性运行不允许悄无声息地退出
func (l *Log) Save() error {
	if err := os.WriteFile(l.path, []byte(strings.Join(l.lines, "\n")+"\n"), 0644); err != nil {
		return fmt.Errorf("写入操作日志失败 %s: %w", l.path, err)
	}
	fmt.Printf("\nLog saved to: %s\n", l.path)
	return nil
}

// Path 返回日志文件路径
func (l *Log) Path() string {
	return l.path
}

// RunID 返回本次运行的标识
func (l *Log) RunID() string {
	return l.runID
}

// Lines 返回当前已累积的日志行
func (l *Log) Lines() []string {
	return l.lines
}

// DefaultDeletePath 删除日志的默认文件名
func DefaultDeletePath() string {
	return fmt.Sprintf("hd_duplicates_to_be_deleted_%s.log", time.Now().Format("20060102_150405"))
}

// DefaultRecoverPath 恢复日志的默认文件名
func DefaultRecoverPath(search string, all bool) string {
	ts := time.Now().Format("20060102_150405")
	if all {
		return fmt.Sprintf("hd_recovered_files_all_%s.log", ts)
	}
	return fmt.Sprintf("hd_recovered_files_%s_%s.log", search, ts)
}
