package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// Theme contains the styles of the level selector and the footer.
type Theme struct {
	MenuTitle       lipgloss.Style
	MenuItemNormal  lipgloss.Style
	MenuItemActive  lipgloss.Style
	MenuItemSolved  lipgloss.Style
	MenuDescription lipgloss.Style
	Controls        lipgloss.Style
	Status          lipgloss.Style
}

// DefaultTheme returns the default visual theme.
func DefaultTheme() Theme {
	return Theme{
		MenuTitle:       lipgloss.NewStyle().Foreground(lipgloss.Color("214")).Bold(true),
		MenuItemNormal:  lipgloss.NewStyle().Foreground(lipgloss.Color("250")),
		MenuItemActive:  lipgloss.NewStyle().Foreground(lipgloss.Color("226")).Bold(true),
		MenuItemSolved:  lipgloss.NewStyle().Foreground(lipgloss.Color("46")),
		MenuDescription: lipgloss.NewStyle().Foreground(lipgloss.Color("245")),
		Controls:        lipgloss.NewStyle().Foreground(lipgloss.Color("245")),
		Status:          lipgloss.NewStyle().Foreground(lipgloss.Color("51")),
	}
}

var statusStyle = DefaultTheme().Status

// centerText pads text on the left so it sits in the middle of width columns.
// Width is measured in cells, ignoring ANSI styling.
func centerText(text string, width int) string {
	w := lipgloss.Width(text)
	if w >= width {
		return text
	}
	return strings.Repeat(" ", (width-w)/2) + text
}
