package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/aldebaro/hd-organizer/pkg/report"
)

func (m *model) View() string {
	if m.err != nil {
		return m.errorView()
	}

	switch m.state {
	case StateLoading:
		return m.loadingView()
	case StateBrowse:
		return m.browseView()
	case StateDetail:
		return m.detailView()
	default:
		return "未知状态"
	}
}

func (m *model) loadingView() string {
	var b strings.Builder

	b.WriteString(titleStyle.Render("📂 正在加载重复记录文件...") + "\n\n")
	b.WriteString(m.spinner.View() + " " + filePathStyle.Render(m.jsonFile) + "\n")

	return lipgloss.NewStyle().Padding(1).Render(b.String())
}

func (m *model) browseView() string {
	var b strings.Builder

	title := fmt.Sprintf("📂 重复文件浏览 — %d 组，共浪费 %s",
		m.doc.TotalGroups, report.FormatBytes(m.doc.TotalWastedSpaceBytes))
	b.WriteString(titleStyle.Render(title) + "\n")

	if m.focus == FocusSearch {
		b.WriteString(focusedStyle.Render(m.searchInput.View()) + "\n")
	} else {
		b.WriteString(normalStyle.Render(m.searchInput.View()) + "\n")
	}

	b.WriteString(m.groupList.View() + "\n")

	b.WriteString(separatorStyle.Render(strings.Repeat("─", 60)) + "\n")
	b.WriteString(hintStyle.Render("/ 搜索  Tab 切换焦点  Enter 查看详情  q 退出") + "\n")

	return lipgloss.NewStyle().Padding(1).Render(b.String())
}

func (m *model) detailView() string {
	rec := m.selected
	if rec == nil {
		return ""
	}

	var b strings.Builder

	b.WriteString(titleStyle.Render(fmt.Sprintf("📄 组 #%d: %s", rec.GroupID, rec.DisplayName())) + "\n\n")

	b.WriteString(labelStyle.Render("大小: ") + report.FormatBytes(rec.SizeBytes) + "\n")
	b.WriteString(labelStyle.Render("副本数: ") + fmt.Sprintf("%d", rec.FileCount) + "\n")
	b.WriteString(labelStyle.Render("浪费空间: ") + report.FormatBytes(rec.WastedSpaceBytes) + "\n\n")

	b.WriteString(labelStyle.Render("路径:") + "\n")
	for i, p := range rec.Paths {
		date := rec.Dates[i]
		if date == "" {
			date = "(无日期)"
		}
		line := fmt.Sprintf("  %s  %s", date, p)
		if i == rec.NewestIndex {
			b.WriteString(keeperStyle.Render(line+"  ← 最新，删除时保留") + "\n")
		} else {
			b.WriteString(filePathStyle.Render(line) + "\n")
		}
	}

	b.WriteString("\n" + separatorStyle.Render(strings.Repeat("─", 60)) + "\n")
	b.WriteString(hintStyle.Render("Esc 返回列表  q 退出") + "\n")

	return lipgloss.NewStyle().Padding(1).Render(b.String())
}

func (m *model) errorView() string {
	var b strings.Builder

	b.WriteString(errorStyle.Render("加载失败") + "\n\n")
	b.WriteString(m.err.Error() + "\n\n")
	b.WriteString(hintStyle.Render("Ctrl+C 退出") + "\n")

	return lipgloss.NewStyle().Padding(1).Render(b.String())
}
