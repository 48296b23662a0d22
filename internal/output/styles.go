package output

import (
	"github.com/charmbracelet/lipgloss"
)

// Styles holds the lipgloss styles for text output.
var Styles = struct {
	Match  lipgloss.Style
	Header lipgloss.Style
	Label  lipgloss.Style
	Value  lipgloss.Style
}{
	Match:  lipgloss.NewStyle().Foreground(lipgloss.Color("252")),           // White
	Header: lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("39")), // Cyan bold
	Label:  lipgloss.NewStyle().Foreground(lipgloss.Color("244")),           // Gray
	Value:  lipgloss.NewStyle().Bold(true),
}
