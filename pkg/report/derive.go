package report

import (
	"sort"

	"github.com/spf13/afero"

	"github.com/aldebaro/hd-organizer/pkg/classifier"
	"github.com/aldebaro/hd-organizer/pkg/index"
	"github.com/aldebaro/hd-organizer/pkg/logger"
)

// 修改时间的记录格式，按字典序比较即按时间先后比较
const dateFormat = "2006-01-02T15:04:05.999999"

// Build 从分类结果派生持久化文档
// 组内路径按字典序排序，逐个解析修改时间（stat 失败记为空字符串，不会中断），
// newest_index 取最大非空时间戳的位置，全部为空时取 0
func Build(fs afero.Fs, res *classifier.Result, method string) (*DuplicatesDocument, *DifferencesDocument) {
	dups := &DuplicatesDocument{
		Method: method,
		Note:   recordNote,
	}
	diffs := &DifferencesDocument{
		Method:      method,
		Description: "Files with same name/extension/size but different content",
		Note:        recordNote,
	}

	for _, key := range sortedKeys(res.Duplicates) {
		for groupID, group := range res.Duplicates[key] {
			rec := buildRecord(fs, key, group, groupID+1)
			dup := DuplicateRecord{
				Record:           rec,
				WastedSpaceBytes: key.Size * int64(len(group)-1),
			}
			dups.Duplicates = append(dups.Duplicates, dup)
			dups.TotalWastedSpaceBytes += dup.WastedSpaceBytes
		}
	}
	dups.TotalGroups = len(dups.Duplicates)

	for _, key := range sortedKeys(res.Differences) {
		for groupID, group := range res.Differences[key] {
			diffs.Differences = append(diffs.Differences, buildRecord(fs, key, group, groupID+1))
		}
	}
	diffs.TotalGroups = len(diffs.Differences)

	logger.Get().Info().
		Int("duplicates", dups.TotalGroups).
		Int("differences", diffs.TotalGroups).
		Msg("记录派生完成")

	return dups, diffs
}

func buildRecord(fs afero.Fs, key index.Key, group []string, groupID int) Record {
	paths := make([]string, len(group))
	copy(paths, group)
	sort.Strings(paths)

	dates := make([]string, len(paths))
	for i, p := range paths {
		dates[i] = fileDate(fs, p)
	}

	return Record{
		Filename:    key.Filename,
		Extension:   key.Extension,
		SizeBytes:   key.Size,
		GroupID:     groupID,
		FileCount:   len(paths),
		Paths:       paths,
		Dates:       dates,
		NewestIndex: newestIndex(dates),
	}
}

func sortedKeys(m map[index.Key][][]string) []index.Key {
	keys := make([]index.Key, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Slice(keys, func(i, j int) bool {
		if keys[i].Filename != keys[j].Filename {
			return keys[i].Filename < keys[j].Filename
		}
		if keys[i].Extension != keys[j].Extension {
			return keys[i].Extension < keys[j].Extension
		}
		return keys[i].Size < keys[j].Size
	})
	return keys
}

// fileDate 返回文件修改时间，失败时返回空字符串
func fileDate(fs afero.Fs, path string) string {
	info, err := fs.Stat(path)
	if err != nil {
		return ""
	}
	return info.ModTime().Format(dateFormat)
}

// newestIndex 返回字典序最大的非空时间戳的位置
// 并列时取排序后路径列表中的第一个出现位置，全空时取 0 作为确定性兜底
func newestIndex(dates []string) int {
	newest := 0
	max := ""
	for i, d := range dates {
		if d != "" && d > max {
			max = d
			newest = i
		}
	}
	return newest
}
