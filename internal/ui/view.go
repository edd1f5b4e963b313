package ui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
	"github.com/muesli/reflow/truncate"
)

const (
	titleRow           = 0
	promptRow          = 1
	suggestionFirstRow = 2
)

type styledLine struct {
	text  string
	style *lipgloss.Style
	raw   bool // text already carries ANSI styling; use ANSI-aware truncation
}

// View implements tea.Model.
func (m *Model) View() string {
	st := m.styles
	lines := make([]styledLine, 0, 32)
	lines = append(lines, styledLine{text: m.titleLine(), style: st.Title})
	lines = append(lines, styledLine{text: m.searchPrompt(), raw: true})
	if m.suggestions.Visible {
		lines = append(lines, m.suggestionLines()...)
	}
	lines = append(lines, styledLine{})
	lines = append(lines, m.dashboardLines()...)

	bottom := make([]styledLine, 0, 3)
	if m.errMsg != "" {
		bottom = append(bottom, styledLine{text: "Error: " + m.errMsg, style: st.Error})
	} else if info := m.currentInfo(); info != "" {
		bottom = append(bottom, styledLine{text: info, style: st.Status})
	}
	if m.showFooter {
		bottom = append(bottom, styledLine{}, styledLine{text: m.footerText(), style: st.Footer})
	}

	height := m.height
	if height > 0 {
		height -= len(bottom)
	}
	lines = limitHeight(lines, height, m.width)
	lines = append(lines, bottom...)
	lines = applyWidth(lines, m.width)
	return renderLines(lines)
}

func (m *Model) titleLine() string {
	title := "Weather Dashboard"
	if m.dark {
		title += "  ☾"
	} else {
		title += "  ☀"
	}
	if m.fahrenheit {
		title += "  °F"
	} else {
		title += "  °C"
	}
	return title
}

func (m *Model) footerText() string {
	parts := []string{"space refresh", "t theme", "h hourly", "u °C/°F"}
	if m.session.Data != nil {
		parts = append(parts, "e export")
	}
	if m.locationAvailable() {
		parts = append(parts, "g my location")
	}
	if m.focus == FocusSearch {
		parts = append(parts, "esc clear search", "↑↓ navigate suggestions")
	} else {
		parts = append(parts, "/ search", "←/→ day", "q quit")
	}
	return strings.Join(parts, " • ")
}

func limitHeight(lines []styledLine, height, width int) []styledLine {
	if height <= 0 || len(lines) <= height {
		return lines
	}
	if height == 1 {
		return []styledLine{{text: truncateText("…", width)}}
	}
	trimmed := make([]styledLine, 0, height)
	trimmed = append(trimmed, lines[:height-1]...)
	trimmed = append(trimmed, styledLine{text: truncateText("…", width)})
	return trimmed
}

func applyWidth(lines []styledLine, width int) []styledLine {
	if width <= 0 {
		return lines
	}
	result := make([]styledLine, len(lines))
	for i, line := range lines {
		text := line.text
		if line.raw {
			if lipgloss.Width(text) > width {
				text = truncate.StringWithTail(text, uint(width-1), "…")
			}
		} else {
			text = truncateText(text, width)
		}
		result[i] = styledLine{text: text, style: line.style, raw: line.raw}
	}
	return result
}

func renderLines(lines []styledLine) string {
	out := make([]string, len(lines))
	for i, line := range lines {
		text := line.text
		if !line.raw && line.style != nil && text != "" {
			text = line.style.Render(text)
		}
		out[i] = text
	}
	return strings.Join(out, "\n")
}

func truncateText(text string, width int) string {
	if width <= 0 || ansi.StringWidth(text) <= width {
		return text
	}
	return ansi.Truncate(text, width, "…")
}
