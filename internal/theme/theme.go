package theme

import "github.com/charmbracelet/lipgloss"

// Styles describes reusable Lip Gloss styles shared across the UI.
type Styles struct {
	Title              *lipgloss.Style
	Subtitle           *lipgloss.Style
	Loading            *lipgloss.Style
	Error              *lipgloss.Style
	Info               *lipgloss.Style
	Status             *lipgloss.Style
	Header             *lipgloss.Style
	Footer             *lipgloss.Style
	Prompt             *lipgloss.Style
	PromptBlurred      *lipgloss.Style
	Input              *lipgloss.Style
	Placeholder        *lipgloss.Style
	Cursor             *lipgloss.Style
	Suggestion         *lipgloss.Style
	SuggestionDetail   *lipgloss.Style
	SelectedSuggestion *lipgloss.Style
	Match              *lipgloss.Style
	Label              *lipgloss.Style
	Value              *lipgloss.Style
	BigTemp            *lipgloss.Style
	Muted              *lipgloss.Style
	Alert              *lipgloss.Style
	AlertBody          *lipgloss.Style
	TabActive          *lipgloss.Style
	TabInactive        *lipgloss.Style
	Section            *lipgloss.Style
}

var darkStyles = Styles{
	Title: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("255")).Bold(true),
	),
	Subtitle: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("245")),
	),
	Loading: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("33")).Italic(true),
	),
	Error: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("196")).Bold(true),
	),
	Info: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("249")),
	),
	Status: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("34")),
	),
	Header: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("245")).Bold(true),
	),
	Footer: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("241")),
	),
	Prompt: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("34")).Bold(true),
	),
	PromptBlurred: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("241")),
	),
	Input: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("252")),
	),
	Placeholder: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("241")),
	),
	Cursor: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("0")).Background(lipgloss.Color("33")),
	),
	Suggestion: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("249")),
	),
	SuggestionDetail: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("243")),
	),
	SelectedSuggestion: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("255")).Background(lipgloss.Color("238")).Bold(true),
	),
	Match: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("214")).Bold(true),
	),
	Label: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("245")),
	),
	Value: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("255")).Bold(true),
	),
	BigTemp: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("255")).Bold(true),
	),
	Muted: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("243")),
	),
	Alert: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("255")).Background(lipgloss.Color("160")).Bold(true),
	),
	AlertBody: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("210")),
	),
	TabActive: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("0")).Background(lipgloss.Color("33")).Bold(true),
	),
	TabInactive: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("245")),
	),
	Section: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("33")).Bold(true),
	),
}

var lightStyles = Styles{
	Title: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("16")).Bold(true),
	),
	Subtitle: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("240")),
	),
	Loading: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("25")).Italic(true),
	),
	Error: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("160")).Bold(true),
	),
	Info: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("238")),
	),
	Status: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("28")),
	),
	Header: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("240")).Bold(true),
	),
	Footer: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("244")),
	),
	Prompt: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("28")).Bold(true),
	),
	PromptBlurred: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("247")),
	),
	Input: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("235")),
	),
	Placeholder: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("247")),
	),
	Cursor: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("255")).Background(lipgloss.Color("25")),
	),
	Suggestion: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("238")),
	),
	SuggestionDetail: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("244")),
	),
	SelectedSuggestion: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("16")).Background(lipgloss.Color("153")).Bold(true),
	),
	Match: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("130")).Bold(true),
	),
	Label: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("240")),
	),
	Value: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("16")).Bold(true),
	),
	BigTemp: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("16")).Bold(true),
	),
	Muted: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("244")),
	),
	Alert: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("255")).Background(lipgloss.Color("124")).Bold(true),
	),
	AlertBody: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("124")),
	),
	TabActive: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("255")).Background(lipgloss.Color("25")).Bold(true),
	),
	TabInactive: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("240")),
	),
	Section: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("25")).Bold(true),
	),
}

// Dark exposes the style set used when dark mode is on.
func Dark() *Styles {
	return &darkStyles
}

// Light exposes the style set used when dark mode is off.
func Light() *Styles {
	return &lightStyles
}

// For picks the style set matching the dark-mode preference.
func For(dark bool) *Styles {
	if dark {
		return Dark()
	}
	return Light()
}

// Colored renders text in an arbitrary hex colour, used for level badges and
// condition glyphs whose colour comes from data.
func Colored(hex, text string) string {
	return lipgloss.NewStyle().Foreground(lipgloss.Color(hex)).Render(text)
}

func ptr(style lipgloss.Style) *lipgloss.Style {
	return &style
}
