package report

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/afero"

	"github.com/aldebaro/hd-organizer/pkg/logger"
)

// Record 一个组的持久化记录
// paths 按字典序排列，dates 与 paths 等长同序（读取失败为空字符串），
// newest_index 指向两个列表中修改时间最新的位置
// 记录是自包含的：后续的删除和恢复只依赖记录本身，不需要重新分类
type Record struct {
	Filename    string   `json:"filename"`
	Extension   string   `json:"extension"`
	SizeBytes   int64    `json:"size_bytes"`
	GroupID     int      `json:"group_id"`
	FileCount   int      `json:"file_count"`
	Paths       []string `json:"paths"`
	Dates       []string `json:"dates"`
	NewestIndex int      `json:"newest_index"`
}

// DuplicateRecord 真重复组的记录，额外携带浪费空间
type DuplicateRecord struct {
	Record
	WastedSpaceBytes int64 `json:"wasted_space_bytes"`
}

// DuplicatesDocument 重复组结果文件
type DuplicatesDocument struct {
	Method                string            `json:"method"`
	TotalGroups           int               `json:"total_groups"`
	TotalWastedSpaceBytes int64             `json:"total_wasted_space_bytes"`
	Note                  string            `json:"note,omitempty"`
	Duplicates            []DuplicateRecord `json:"duplicates"`
}

// DifferencesDocument 同名同大小但内容不同的结果文件
type DifferencesDocument struct {
	Method      string   `json:"method"`
	TotalGroups int      `json:"total_groups"`
	Description string   `json:"description,omitempty"`
	Note        string   `json:"note,omitempty"`
	Differences []Record `json:"differences"`
}

const recordNote = "dates list corresponds to paths list (same order and length). newest_index indicates which file is most recent."

// DisplayName 展示用的文件名，filename 本身已含扩展名
func (r *Record) DisplayName() string {
	return r.Filename
}

func (r *Record) validate() error {
	if len(r.Paths) != r.FileCount || len(r.Dates) != r.FileCount {
		return fmt.Errorf("记录 %q: paths/dates 长度 (%d/%d) 与 file_count (%d) 不一致",
			r.Filename, len(r.Paths), len(r.Dates), r.FileCount)
	}
	if r.NewestIndex < 0 || r.NewestIndex >= r.FileCount {
		return fmt.Errorf("记录 %q: newest_index %d 超出范围 [0, %d)",
			r.Filename, r.NewestIndex, r.FileCount)
	}
	return nil
}

func (r *DuplicateRecord) validate() error {
	if err := r.Record.validate(); err != nil {
		return err
	}
	if want := r.SizeBytes * int64(r.FileCount-1); r.WastedSpaceBytes != want {
		return fmt.Errorf("记录 %q: wasted_space_bytes %d 应为 %d",
			r.Filename, r.WastedSpaceBytes, want)
	}
	return nil
}

// Save 序列化为带缩进的 JSON 文件
func (d *DuplicatesDocument) Save(fs afero.Fs, path string) error {
	return saveJSON(fs, path, d)
}

func (d *DifferencesDocument) Save(fs afero.Fs, path string) error {
	return saveJSON(fs, path, d)
}

func saveJSON(fs afero.Fs, path string, v any) error {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("序列化结果失败: %w", err)
	}
	if err := afero.WriteFile(fs, path, data, 0644); err != nil {
		return fmt.Errorf("写入结果文件失败: %w", err)
	}
	return nil
}

// LoadDuplicates 读取并校验重复记录文件
// 结构缺损或不变量被破坏的文档会被整体拒绝：
// 破坏性操作不能建立在可疑的记录上
func LoadDuplicates(fs afero.Fs, path string) (*DuplicatesDocument, error) {
	data, err := afero.ReadFile(fs, path)
	if err != nil {
		return nil, fmt.Errorf("读取记录文件失败: %w", err)
	}

	var doc DuplicatesDocument
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("解析记录文件失败: %w", err)
	}

	for i := range doc.Duplicates {
		if err := doc.Duplicates[i].validate(); err != nil {
			return nil, fmt.Errorf("记录文件校验失败: %w", err)
		}
	}

	logger.Get().Debug().Msgf("已加载 %d 个重复组: %s", len(doc.Duplicates), path)
	return &doc, nil
}

// LoadDifferences 读取并校验差异记录文件
func LoadDifferences(fs afero.Fs, path string) (*DifferencesDocument, error) {
	data, err := afero.ReadFile(fs, path)
	if err != nil {
		return nil, fmt.Errorf("读取记录文件失败: %w", err)
	}

	var doc DifferencesDocument
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("解析记录文件失败: %w", err)
	}

	for i := range doc.Differences {
		if err := doc.Differences[i].validate(); err != nil {
			return nil, fmt.Errorf("记录文件校验失败: %w", err)
		}
	}

	return &doc, nil
}
