package operator

import (
	"fmt"
	"strings"

	"github.com/aldebaro/hd-organizer/pkg/oplog"
	"github.com/aldebaro/hd-organizer/pkg/report"
)

// State 破坏性操作的状态机
// Idle → Previewed → (Confirmed | Cancelled) → Executed
// 预览对文件系统无副作用且总会执行，确认只在非预览模式下可达
type State int

const (
	StateIdle State = iota
	StatePreviewed
	StateConfirmed
	StateCancelled
	StateExecuted
)

// ConfirmFunc 确认回调，返回 true 才允许执行
// 为 nil 时视为已确认（对应 --yes）
type ConfirmFunc func(prompt string) bool

// Failure 单个路径的硬失败，记录后继续处理余下路径
type Failure struct {
	Path   string
	Reason string
}

// Stats 执行阶段的累积计数
type Stats struct {
	Affected int
	Bytes    int64
	Failures []Failure
}

// Words 同一套协议下删除与恢复各自的日志用词
type Words struct {
	Noun         string // "deletion" / "recovery"
	Title        string // "Deletion" / "Recovery"
	PreviewTitle string
	KeeperLabel  string
	ActionLabel  string
	DateLabel    string
	SummaryVerb  string // "deleted" / "recovered"
	SpaceToBe    string // 预览时的空间描述
	SpaceDone    string // 执行后的空间描述
	ExecTitle    string
	FailLabel    string
}

// Operation 删除和恢复共享的操作契约
// Records 返回本次运行涉及的记录（恢复操作已按搜索串过滤），
// Affected 返回一条记录中除保留文件外的受影响下标，
// ExecuteRecord 对一条记录执行变更，单路径错误记入 Stats 且不中断
type Operation interface {
	Words() Words
	Records() []*report.DuplicateRecord
	Affected(rec *report.DuplicateRecord) []int
	ExecuteRecord(l *oplog.Log, groupNo int, rec *report.DuplicateRecord, st *Stats)
	Impact(l *oplog.Log)
}

const separator = "======================================================================"

// Runner 驱动 dry-run / 确认 / 执行 / 落日志 的完整协议
// 任何一条路径（预览、取消、执行）结束时都会写出操作日志
type Runner struct {
	op      Operation
	log     *oplog.Log
	dryRun  bool
	confirm ConfirmFunc
	state   State

	stats        Stats
	previewFiles int
	previewBytes int64
}

func NewRunner(op Operation, log *oplog.Log, dryRun bool, confirm ConfirmFunc) *Runner {
	return &Runner{
		op:      op,
		log:     log,
		dryRun:  dryRun,
		confirm: confirm,
		state:   StateIdle,
	}
}

func (r *Runner) State() State {
	return r.state
}

func (r *Runner) Stats() *Stats {
	return &r.stats
}

// PreviewCount 返回预览阶段统计出的受影响文件数和字节数
func (r *Runner) PreviewCount() (int, int64) {
	return r.previewFiles, r.previewBytes
}

// Run 执行完整协议，返回的错误只来自日志落盘失败
func (r *Runner) Run() error {
	w := r.op.Words()

	r.op.Impact(r.log)

	if r.dryRun {
		r.log.Logf("DRY-RUN MODE: No files will be %s", w.SummaryVerb)
		r.preview()
		r.state = StatePreviewed
		return r.log.Save()
	}

	r.preview()
	r.state = StatePreviewed

	if r.confirm != nil && !r.confirm(fmt.Sprintf("Proceed with %s? (yes/no): ", w.Noun)) {
		r.state = StateCancelled
		r.log.Logf("%s cancelled by user", w.Title)
		return r.log.Save()
	}
	r.state = StateConfirmed

	r.execute()
	r.state = StateExecuted

	return r.log.Save()
}

// preview 列出每条记录的保留文件与受影响文件并统计总量，不触碰文件系统
func (r *Runner) preview() {
	w := r.op.Words()

	r.log.Logf(separator)
	r.log.Logf("PREVIEW: %s", w.PreviewTitle)
	r.log.Logf(separator)

	records := r.op.Records()
	if len(records) == 0 {
		r.log.Logf("No matching duplicate groups found")
	}

	for i, rec := range records {
		r.log.Logf("Group %d: %s (%d bytes)", i+1, rec.DisplayName(), rec.SizeBytes)
		r.log.Logf("  %s: %s", w.KeeperLabel, rec.Paths[rec.NewestIndex])
		if rec.Dates[rec.NewestIndex] != "" {
			r.log.Logf("    Modified: %s", rec.Dates[rec.NewestIndex])
		}

		affected := r.op.Affected(rec)
		if len(affected) == 0 {
			continue
		}

		r.log.Logf("  %s (%d copies):", w.ActionLabel, len(affected))
		for _, idx := range affected {
			r.log.Logf("    - %s", rec.Paths[idx])
			if rec.Dates[idx] != "" {
				r.log.Logf("      %s: %s", w.DateLabel, rec.Dates[idx])
			}
			r.previewFiles++
			r.previewBytes += rec.SizeBytes
		}
	}

	r.log.Logf(separator)
	r.log.Logf("SUMMARY: %d files would be %s", r.previewFiles, w.SummaryVerb)
	r.log.Logf("%s: %d bytes (%s)", w.SpaceToBe, r.previewBytes, report.FormatBytes(r.previewBytes))
	r.log.Logf(separator)
}

func (r *Runner) execute() {
	w := r.op.Words()

	r.log.Logf(separator)
	r.log.Logf("EXECUTING: %s", w.ExecTitle)
	r.log.Logf(separator)

	for i, rec := range r.op.Records() {
		r.op.ExecuteRecord(r.log, i+1, rec, &r.stats)
	}

	r.log.Logf(separator)
	r.log.Logf("SUMMARY:")
	r.log.Logf("  Files %s: %d", w.SummaryVerb, r.stats.Affected)
	r.log.Logf("  %s: %d bytes (%s)", w.SpaceDone, r.stats.Bytes, report.FormatBytes(r.stats.Bytes))

	if len(r.stats.Failures) > 0 {
		r.log.Logf("  %s: %d", w.FailLabel, len(r.stats.Failures))
		for _, f := range r.stats.Failures {
			r.log.Logf("    - %s: %s", f.Path, f.Reason)
		}
	}
	r.log.Logf(separator)
}

// StdinConfirm 从标准输入读取一行，只有回答 yes 才算确认
func StdinConfirm(prompt string) bool {
	fmt.Printf("\n%s", prompt)
	var answer string
	if _, err := fmt.Scanln(&answer); err != nil {
		return false
	}
	return strings.TrimSpace(strings.ToLower(answer)) == "yes"
}
