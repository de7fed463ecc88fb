package operator

import (
	"fmt"
	"io"
	"path/filepath"
	"strings"

	"github.com/spf13/afero"

	"github.com/aldebaro/hd-organizer/pkg/oplog"
	"github.com/aldebaro/hd-organizer/pkg/report"
)

// Recovery 把每条记录中最新的副本拷贝回其余路径
// 搜索串对路径做大小写不敏感的子串匹配，只恢复命中的路径；
// recover-all 时忽略搜索串恢复全部
// 源文件（最新副本）不存在时整条记录跳过并记错误
type Recovery struct {
	fs     afero.Fs
	doc    *report.DuplicatesDocument
	search string
	all    bool
}

func NewRecovery(fs afero.Fs, doc *report.DuplicatesDocument, search string, all bool) *Recovery {
	return &Recovery{
		fs:     fs,
		doc:    doc,
		search: strings.ToLower(search),
		all:    all,
	}
}

func (r *Recovery) Words() Words {
	return Words{
		Noun:         "recovery",
		Title:        "Recovery",
		PreviewTitle: "Files that would be recovered",
		KeeperLabel:  "Source (newest)",
		ActionLabel:  "Recovering",
		DateLabel:    "Original date",
		SummaryVerb:  "recovered",
		SpaceToBe:    "Total space to restore",
		SpaceDone:    "Space restored",
		ExecTitle:    "Recovering duplicate files",
		FailLabel:    "Failed recoveries",
	}
}

// Records 返回至少有一个路径命中搜索串的记录，recover-all 时返回全部
func (r *Recovery) Records() []*report.DuplicateRecord {
	var records []*report.DuplicateRecord
	for i := range r.doc.Duplicates {
		rec := &r.doc.Duplicates[i]
		if r.all || r.matchesAny(rec) {
			records = append(records, rec)
		}
	}
	return records
}

func (r *Recovery) matchesAny(rec *report.DuplicateRecord) bool {
	for _, p := range rec.Paths {
		if strings.Contains(strings.ToLower(p), r.search) {
			return true
		}
	}
	return false
}

func (r *Recovery) Affected(rec *report.DuplicateRecord) []int {
	var affected []int
	for i, p := range rec.Paths {
		if i == rec.NewestIndex {
			continue
		}
		if r.all || strings.Contains(strings.ToLower(p), r.search) {
			affected = append(affected, i)
		}
	}
	return affected
}

func (r *Recovery) ExecuteRecord(l *oplog.Log, groupNo int, rec *report.DuplicateRecord, st *Stats) {
	source := rec.Paths[rec.NewestIndex]

	l.Logf("Group %d: %s", groupNo, rec.DisplayName())

	exists, statErr := afero.Exists(r.fs, source)
	if statErr != nil || !exists {
		// 没有源就无从恢复，跳过整条记录，其余记录继续
		l.Logf("  ERROR: Source file not found: %s", source)
		return
	}

	l.Logf("  Source: %s", source)

	for _, i := range r.Affected(rec) {
		path := rec.Paths[i]

		parent := filepath.Dir(path)
		if parent != "" && parent != "." {
			if ok, _ := afero.DirExists(r.fs, parent); !ok {
				if err := r.fs.MkdirAll(parent, 0755); err != nil {
					st.Failures = append(st.Failures, Failure{Path: path, Reason: err.Error()})
					l.Logf("  ERROR (%v): %s", err, path)
					continue
				}
				l.Logf("  MKDIR: %s", parent)
			}
		}

		if err := r.copyFile(source, path); err != nil {
			st.Failures = append(st.Failures, Failure{Path: path, Reason: err.Error()})
			l.Logf("  ERROR (%v): %s", err, path)
			continue
		}

		st.Affected++
		st.Bytes += rec.SizeBytes
		l.Logf("  RECOVERED: %s", path)
	}
}

// copyFile 覆盖式拷贝字节并尽量保留元数据（权限与修改时间）
func (r *Recovery) copyFile(src, dst string) error {
	in, err := r.fs.Open(src)
	if err != nil {
		return fmt.Errorf("打开源文件失败: %w", err)
	}
	defer in.Close()

	out, err := r.fs.Create(dst)
	if err != nil {
		return fmt.Errorf("创建目标文件失败: %w", err)
	}

	if _, err := io.Copy(out, in); err != nil {
		out.Close()
		return fmt.Errorf("拷贝内容失败: %w", err)
	}
	if err := out.Close(); err != nil {
		return err
	}

	info, err := r.fs.Stat(src)
	if err != nil {
		return nil
	}
	if err := r.fs.Chmod(dst, info.Mode()); err != nil {
		return nil
	}
	_ = r.fs.Chtimes(dst, info.ModTime(), info.ModTime())
	return nil
}

// Impact 恢复前的影响分析，总是回显到控制台
func (r *Recovery) Impact(l *oplog.Log) {
	records := r.Records()

	l.Echof(separator)
	l.Echof("RECOVERY IMPACT ANALYSIS")
	l.Echof(separator)

	if len(records) == 0 {
		if r.all {
			l.Echof("No duplicate groups found")
		} else {
			l.Echof("No duplicate groups match search string: %q", r.search)
		}
		l.Echof(separator)
		return
	}

	totalFiles := 0
	var totalBytes int64
	for _, rec := range records {
		n := len(r.Affected(rec))
		totalFiles += n
		totalBytes += int64(n) * rec.SizeBytes
	}

	if r.all {
		l.Echof("Mode: Recover all files")
	} else {
		l.Echof("Search string: %q", r.search)
	}
	l.Echof("Matching duplicate groups: %d", len(records))
	l.Echof("Total files to recover: %d", totalFiles)
	l.Echof("Total space to restore: %d bytes (%s)", totalBytes, report.FormatBytes(totalBytes))
	l.Echof(separator)
}
