// Package ui renders the console: the navigation shell, the per-entity CRUD
// pages and the read-only monitoring grids. Page state machines live in
// internal/view; this package only wires them to bubbletea.
package ui

import (
	"github.com/charmbracelet/lipgloss"
)

// Palette lifted from the web dashboard's theme
var (
	colorPrimary = lipgloss.Color("#4c5f9e")
	colorSidebar = lipgloss.Color("#1f2a48")
	colorText    = lipgloss.Color("#f2f2f2")
	colorMuted   = lipgloss.Color("#8a93a8")
	colorError   = lipgloss.Color("#e53935")
	colorActive  = lipgloss.Color("#8BC34A")
	colorBorder  = lipgloss.Color("#566bb8")
)

// Styles holds the shared lipgloss styles
type Styles struct {
	TopBar       lipgloss.Style
	Sidebar      lipgloss.Style
	SidebarItem  lipgloss.Style
	SidebarGroup lipgloss.Style
	SidebarSel   lipgloss.Style
	PageTitle    lipgloss.Style
	StatusLine   lipgloss.Style
	ErrorLine    lipgloss.Style
	Help         lipgloss.Style
	Modal        lipgloss.Style
	ModalTitle   lipgloss.Style
	FieldLabel   lipgloss.Style
	FieldError   lipgloss.Style
	Alert        lipgloss.Style
	StatusActive lipgloss.Style
	StatusInact  lipgloss.Style
}

// DefaultStyles returns the standard console styles
func DefaultStyles() Styles {
	return Styles{
		TopBar: lipgloss.NewStyle().
			Background(colorPrimary).
			Foreground(colorText).
			Padding(0, 1).
			Bold(true),
		Sidebar: lipgloss.NewStyle().
			Background(colorSidebar).
			Foreground(colorText).
			Padding(1, 1),
		SidebarItem: lipgloss.NewStyle().
			Foreground(colorText).
			PaddingLeft(2),
		SidebarGroup: lipgloss.NewStyle().
			Foreground(colorMuted).
			Bold(true),
		SidebarSel: lipgloss.NewStyle().
			Foreground(colorActive).
			Bold(true).
			PaddingLeft(2),
		PageTitle: lipgloss.NewStyle().
			Foreground(colorText).
			Background(colorPrimary).
			Bold(true).
			Padding(0, 1),
		StatusLine: lipgloss.NewStyle().
			Foreground(colorMuted),
		ErrorLine: lipgloss.NewStyle().
			Foreground(colorError),
		Help: lipgloss.NewStyle().
			Foreground(colorMuted),
		Modal: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(colorBorder).
			Padding(1, 2),
		ModalTitle: lipgloss.NewStyle().
			Bold(true),
		FieldLabel: lipgloss.NewStyle().
			Foreground(colorMuted),
		FieldError: lipgloss.NewStyle().
			Foreground(colorError),
		Alert: lipgloss.NewStyle().
			Border(lipgloss.ThickBorder()).
			BorderForeground(colorError).
			Padding(1, 2),
		StatusActive: lipgloss.NewStyle().
			Foreground(colorActive),
		StatusInact: lipgloss.NewStyle().
			Foreground(colorError),
	}
}
