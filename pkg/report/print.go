package report

import (
	"fmt"
	"strings"
)

// PrintDuplicates 打印重复组报告
// 报告是给操作者看的输出，直接写标准输出，不走日志
func PrintDuplicates(doc *DuplicatesDocument) {
	if len(doc.Duplicates) == 0 {
		fmt.Printf("\nNo true duplicates found using %s method.\n", doc.Method)
		return
	}

	line := strings.Repeat("=", 70)
	fmt.Printf("\n%s\n", line)
	fmt.Printf("True Duplicates Found Using %s Comparison\n", strings.ToUpper(doc.Method))
	fmt.Printf("%s\n\n", line)

	totalFiles := 0
	for _, rec := range doc.Duplicates {
		ext := rec.Extension
		if ext == "" {
			ext = "(no extension)"
		}
		fmt.Printf("File: %s [%s] (%d bytes)\n", rec.Filename, ext, rec.SizeBytes)
		fmt.Printf("  Group %d - %d copies:\n", rec.GroupID, rec.FileCount)
		for _, p := range rec.Paths {
			fmt.Printf("    %s\n", p)
		}
		fmt.Printf("    Wasted space: %s\n\n", FormatBytes(rec.WastedSpaceBytes))
		totalFiles += rec.FileCount
	}

	fmt.Println(line)
	fmt.Println("Summary:")
	fmt.Printf("  Total duplicate groups: %d\n", doc.TotalGroups)
	fmt.Printf("  Total duplicate files: %d\n", totalFiles)
	fmt.Printf("  Total wasted space: %d bytes (%s)\n",
		doc.TotalWastedSpaceBytes, FormatBytes(doc.TotalWastedSpaceBytes))
	fmt.Printf("%s\n\n", line)
}

// FormatBytes 人类可读的字节数
func FormatBytes(bytes int64) string {
	const unit = 1024
	if bytes < unit {
		return fmt.Sprintf("%d B", bytes)
	}
	div, exp := int64(unit), 0
	for n := bytes / unit; n >= unit; n /= unit {
		div *= unit
		exp++
	}
	return fmt.Sprintf("%.2f %cB", float64(bytes)/float64(div), "KMGTPE"[exp])
}
