package views

import (
	"github.com/charmbracelet/lipgloss"
)

// Styles contains all the style definitions for the UI
type Styles struct {
	Header      lipgloss.Style
	DeckTitle   lipgloss.Style
	Status      lipgloss.Style
	Dim         lipgloss.Style
	Scroll      lipgloss.Style
	Highlight   lipgloss.Style
	IndexNumber lipgloss.Style
	HelpKey     lipgloss.Style
	HelpDesc    lipgloss.Style
	HelpSection lipgloss.Style
	Placeholder lipgloss.Style
}

// NewStyles creates a new Styles instance with default values
func NewStyles() *Styles {
	return &Styles{
		Header:      lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("99")),
		DeckTitle:   lipgloss.NewStyle().Faint(true),
		Status:      lipgloss.NewStyle().Reverse(true),
		Dim:         lipgloss.NewStyle().Faint(true),
		Scroll:      lipgloss.NewStyle().Foreground(lipgloss.Color("241")).Italic(true),
		Highlight:   lipgloss.NewStyle().Reverse(true),
		IndexNumber: lipgloss.NewStyle().Foreground(lipgloss.Color("220")),
		HelpKey:     lipgloss.NewStyle().Foreground(lipgloss.Color("220")),
		HelpDesc:    lipgloss.NewStyle().Foreground(lipgloss.Color("252")),
		HelpSection: lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("39")),
		Placeholder: lipgloss.NewStyle().Faint(true).Italic(true),
	}
}
