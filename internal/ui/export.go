package ui

import (
	"context"
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"go.uber.org/zap"

	"github.com/atomicstack/weather-popup/internal/export"
	"github.com/atomicstack/weather-popup/internal/logging"
	"github.com/atomicstack/weather-popup/internal/logging/events"
	"github.com/atomicstack/weather-popup/internal/ui/command"
)

type exportResultMsg struct {
	path string
	err  error
}

func (m *Model) exportCmd() tea.Cmd {
	data := m.session.Data
	if data == nil {
		return nil
	}
	dir := m.opts.ExportDir
	now := m.now()
	return m.bus.Execute(command.Request{
		ID:    "export",
		Label: data.Location.Name,
		Handler: func(context.Context) tea.Msg {
			path, err := export.WriteFile(dir, data, now)
			return exportResultMsg{path: path, err: err}
		},
	})
}

func (m *Model) handleExportResultMsg(msg tea.Msg) tea.Cmd {
	result, ok := msg.(exportResultMsg)
	if !ok {
		return nil
	}
	if result.err != nil {
		logging.Error(fmt.Errorf("export: %w", result.err))
		m.errMsg = "Export failed: " + result.err.Error()
		return nil
	}
	events.App.Export(result.path)
	logging.Info("forecast exported", zap.String("path", result.path))
	m.setInfo("Exported " + result.path)
	return nil
}
