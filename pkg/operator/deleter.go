package operator

import (
	"github.com/spf13/afero"

	"github.com/aldebaro/hd-organizer/pkg/oplog"
	"github.com/aldebaro/hd-organizer/pkg/report"
)

// Deletion 删除每条记录中除最新副本外的全部路径
// 目标不存在时记 SKIP 后继续，删除因此是幂等的
type Deletion struct {
	fs  afero.Fs
	doc *report.DuplicatesDocument
}

func NewDeletion(fs afero.Fs, doc *report.DuplicatesDocument) *Deletion {
	return &Deletion{
		fs:  fs,
		doc: doc,
	}
}

func (d *Deletion) Words() Words {
	return Words{
		Noun:         "deletion",
		Title:        "Deletion",
		PreviewTitle: "Files that would be deleted",
		KeeperLabel:  "Keeping (newest)",
		ActionLabel:  "Deleting",
		DateLabel:    "Modified",
		SummaryVerb:  "deleted",
		SpaceToBe:    "Space to be freed",
		SpaceDone:    "Space freed",
		ExecTitle:    "Deleting duplicate files",
		FailLabel:    "Failed deletions",
	}
}

func (d *Deletion) Records() []*report.DuplicateRecord {
	records := make([]*report.DuplicateRecord, len(d.doc.Duplicates))
	for i := range d.doc.Duplicates {
		records[i] = &d.doc.Duplicates[i]
	}
	return records
}

// Affected 返回除 newest_index 外的全部下标
func (d *Deletion) Affected(rec *report.DuplicateRecord) []int {
	affected := make([]int, 0, rec.FileCount-1)
	for i := range rec.Paths {
		if i != rec.NewestIndex {
			affected = append(affected, i)
		}
	}
	return affected
}

func (d *Deletion) ExecuteRecord(l *oplog.Log, groupNo int, rec *report.DuplicateRecord, st *Stats) {
	l.Logf("Processing group %d: %s", groupNo, rec.DisplayName())
	l.Logf("  Keeping: %s", rec.Paths[rec.NewestIndex])

	for _, i := range d.Affected(rec) {
		path := rec.Paths[i]

		exists, statErr := afero.Exists(d.fs, path)
		if statErr == nil && !exists {
			// 已经不存在不是错误，重复执行同一份记录是无害的
			l.Logf("  SKIP (not found): %s", path)
			continue
		}

		if err := d.fs.Remove(path); err != nil {
			st.Failures = append(st.Failures, Failure{Path: path, Reason: err.Error()})
			l.Logf("  ERROR (%v): %s", err, path)
			continue
		}

		st.Affected++
		st.Bytes += rec.SizeBytes
		l.Logf("  DELETED: %s", path)
	}
}

// Impact 删除前的空间影响分析，总是回显到控制台
func (d *Deletion) Impact(l *oplog.Log) {
	totalFiles := 0
	for i := range d.doc.Duplicates {
		totalFiles += d.doc.Duplicates[i].FileCount
	}

	l.Echof(separator)
	l.Echof("STORAGE IMPACT ANALYSIS")
	l.Echof(separator)
	l.Echof("Total duplicate groups: %d", d.doc.TotalGroups)
	l.Echof("Total files involved in duplicates: %d", totalFiles)
	l.Echof("Total wasted space: %d bytes (%s)",
		d.doc.TotalWastedSpaceBytes, report.FormatBytes(d.doc.TotalWastedSpaceBytes))
	l.Echof("Space to be freed by keeping newest: %d bytes (%s)",
		d.doc.TotalWastedSpaceBytes, report.FormatBytes(d.doc.TotalWastedSpaceBytes))
	l.Echof(separator)
}
