package tui

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/aldebaro/hd-organizer/pkg/logger"
)

type Config struct {
	JSONFile string
}

var cfg *Config

type teaModel struct {
	m *model
}

func (tm teaModel) Init() tea.Cmd {
	return tm.m.Init()
}

func (tm teaModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	return tm.m.Update(msg)
}

func (tm teaModel) View() string {
	return tm.m.View()
}

func Run(config *Config) error {
	cfg = config

	logger.Get().Info().Str("file", cfg.JSONFile).Msg("启动重复文件浏览界面")

	m := initialModel(cfg.JSONFile)
	p := tea.NewProgram(teaModel{m: &m}, tea.WithAltScreen())

	_, err := p.Run()
	if err != nil {
		logger.Get().Error().Err(err).Msg("TUI 运行错误")
	} else {
		logger.Get().Info().Msg("TUI 正常退出")
	}

	return err
}
