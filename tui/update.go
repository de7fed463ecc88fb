package tui

import (
	"strings"

	"github.com/charmbracelet/bubbles/list"
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
)

func (m *model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		if msg.String() == "ctrl+c" {
			return m, tea.Quit
		}
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.groupList.SetSize(msg.Width-4, msg.Height-10)
		return m, nil

	case docLoadedMsg:
		m.doc = msg.doc
		m.state = StateBrowse
		m.applyFilter()
		return m, nil

	case errMsg:
		m.err = msg
		return m, nil

	case spinner.TickMsg:
		if m.state == StateLoading {
			var cmd tea.Cmd
			m.spinner, cmd = m.spinner.Update(msg)
			return m, cmd
		}
		return m, nil
	}

	return m.updateChildren(msg)
}

func (m *model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch m.state {
	case StateBrowse:
		switch msg.String() {
		case "q":
			if m.focus != FocusSearch {
				return m, tea.Quit
			}
		case "tab", "/":
			if m.focus == FocusList {
				m.focus = FocusSearch
				m.searchInput.Focus()
				if msg.String() == "/" {
					return m, nil
				}
			} else {
				m.focus = FocusList
				m.searchInput.Blur()
			}
			return m, nil
		case "esc":
			if m.focus == FocusSearch {
				m.focus = FocusList
				m.searchInput.Blur()
				return m, nil
			}
			return m, tea.Quit
		case "enter":
			if m.focus == FocusSearch {
				m.focus = FocusList
				m.searchInput.Blur()
				m.applyFilter()
				return m, nil
			}
			if it, ok := m.groupList.SelectedItem().(groupItem); ok {
				m.selected = it.rec
				m.state = StateDetail
			}
			return m, nil
		}

	case StateDetail:
		switch msg.String() {
		case "esc", "enter", "backspace":
			m.state = StateBrowse
			m.selected = nil
			return m, nil
		case "q":
			return m, tea.Quit
		}
	}

	return m.updateChildren(msg)
}

func (m *model) updateChildren(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmds []tea.Cmd
	var cmd tea.Cmd

	if m.state == StateBrowse {
		if m.focus == FocusSearch {
			m.searchInput, cmd = m.searchInput.Update(msg)
			cmds = append(cmds, cmd)
			m.applyFilter()
		} else {
			m.groupList, cmd = m.groupList.Update(msg)
			cmds = append(cmds, cmd)
		}
	}

	return m, tea.Batch(cmds...)
}

// applyFilter 按搜索串重建组列表，匹配规则与 recover 命令一致：
// 不区分大小写的子串匹配，任意一条路径命中即保留该组
func (m *model) applyFilter() {
	if m.doc == nil {
		return
	}

	search := strings.ToLower(m.searchInput.Value())

	items := []list.Item{}
	for i := range m.doc.Duplicates {
		rec := &m.doc.Duplicates[i]
		if search == "" || matchesSearch(rec.Paths, search) {
			items = append(items, groupItem{rec: rec})
		}
	}

	m.groupList.SetItems(items)
}

func matchesSearch(paths []string, search string) bool {
	for _, p := range paths {
		if strings.Contains(strings.ToLower(p), search) {
			return true
		}
	}
	return false
}
