package internal

import "time"

// 扫描统计
type ScanStats struct {
	TotalIndexed  int
	UniqueKeys    int
	CollisionKeys int
	Skipped       int
	StartTime     time.Time
	EndTime       time.Time
}

// 分类统计
type ClassifyStats struct {
	CandidateGroups  int
	CandidateFiles   int
	DuplicateGroups  int
	DuplicateFiles   int
	DifferenceGroups int
	WastedSpace      int64
	StartTime        time.Time
	EndTime          time.Time
}

// 进度更新
type ProgressUpdate struct {
	Indexed     int
	CurrentFile string
}
