package tui

import (
	"fmt"
	"time"

	"github.com/charmbracelet/bubbles/list"
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/afero"

	"github.com/aldebaro/hd-organizer/pkg/report"
)

type State int

const (
	StateLoading State = iota
	StateBrowse
	StateDetail
)

type Focus int

const (
	FocusList Focus = iota
	FocusSearch
)

type model struct {
	state       State
	focus       Focus
	jsonFile    string
	doc         *report.DuplicatesDocument
	groupList   list.Model
	searchInput textinput.Model
	spinner     spinner.Model
	selected    *report.DuplicateRecord
	width       int
	height      int
	err         error
}

func initialModel(jsonFile string) model {
	groupList := list.New([]list.Item{}, list.NewDefaultDelegate(), 0, 20)
	groupList.Title = "重复文件组"
	groupList.SetShowStatusBar(false)
	groupList.SetFilteringEnabled(false)
	groupList.Styles.Title = titleStyle

	searchInput := textinput.New()
	searchInput.Placeholder = "输入搜索串过滤路径（不区分大小写）"
	searchInput.Prompt = "/ "
	searchInput.PromptStyle = focusedPromptStyle
	searchInput.TextStyle = textStyle

	s := spinner.New()
	s.Spinner = spinner.Spinner{
		Frames: []string{"⠋", "⠙", "⠹", "⠸", "⠼", "⠴", "⠦", "⠧", "⠇", "⠏"},
		FPS:    time.Second / 10,
	}
	s.Style = lipgloss.NewStyle().Foreground(lipgloss.Color("205"))

	return model{
		state:       StateLoading,
		focus:       FocusList,
		jsonFile:    jsonFile,
		groupList:   groupList,
		searchInput: searchInput,
		spinner:     s,
	}
}

func (m *model) Init() tea.Cmd {
	return tea.Batch(loadDocument(m.jsonFile), m.spinner.Tick)
}

// 文档解析和校验放在 tea.Cmd 里异步执行，加载期间界面显示 spinner
func loadDocument(path string) tea.Cmd {
	return func() tea.Msg {
		doc, err := report.LoadDuplicates(afero.NewOsFs(), path)
		if err != nil {
			return errMsg(err)
		}
		return docLoadedMsg{doc: doc}
	}
}

type groupItem struct {
	rec *report.DuplicateRecord
}

func (g groupItem) Title() string {
	return fmt.Sprintf("#%d %s", g.rec.GroupID, g.rec.DisplayName())
}

func (g groupItem) Description() string {
	return fmt.Sprintf("%d 份副本，浪费 %s", g.rec.FileCount,
		report.FormatBytes(g.rec.WastedSpaceBytes))
}

func (g groupItem) FilterValue() string { return g.rec.Filename }
