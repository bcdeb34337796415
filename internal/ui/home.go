package ui

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/grh-water/water-console/internal/model"
)

// companySummary is one dashboard card. The figures are the static snapshot
// the dashboard ships with until the reporting backend exists.
type companySummary struct {
	name        string
	tomas       int
	alerts      int
	consumption string
}

// HomePage is the static landing dashboard.
type HomePage struct {
	session   model.SessionUser
	companies []companySummary
	alerts    []string
	history   []string

	width  int
	height int
	styles Styles
}

// NewHomePage builds the landing page for the session user.
func NewHomePage(session model.SessionUser) *HomePage {
	return &HomePage{
		session: session,
		companies: []companySummary{
			{name: "Empresa A", tomas: 1250, alerts: 3, consumption: "45,230 m³"},
			{name: "Empresa B", tomas: 890, alerts: 1, consumption: "32,150 m³"},
			{name: "Empresa C", tomas: 2100, alerts: 7, consumption: "78,940 m³"},
		},
		alerts: []string{
			"MTR002 battery low (3.31 V)",
			"MTR004 battery critical (3.12 V)",
			"MTR003 valve closed, no flow",
		},
		history: []string{
			"2024-12-16 14:25  MTR001 reading received",
			"2024-12-16 13:45  MTR002 reading received",
			"2024-12-16 12:30  MTR003 valve closed",
		},
		styles: DefaultStyles(),
	}
}

// Init satisfies the page contract.
func (p *HomePage) Init() tea.Cmd {
	return nil
}

// SetSize adjusts the page to the terminal size.
func (p *HomePage) SetSize(width, height int) {
	p.width = width
	p.height = height
}

// Update ignores input; the landing page has no interactions of its own.
func (p *HomePage) Update(tea.Msg) tea.Cmd {
	return nil
}

// InputActive is always false; the landing page captures nothing.
func (p *HomePage) InputActive() bool {
	return false
}

// View renders the dashboard cards.
func (p *HomePage) View() string {
	card := p.styles.Modal

	cards := make([]string, 0, len(p.companies))
	for _, c := range p.companies {
		body := lipgloss.JoinVertical(lipgloss.Left,
			p.styles.ModalTitle.Render(c.name),
			fmt.Sprintf("tomas: %d", c.tomas),
			fmt.Sprintf("alerts: %d", c.alerts),
			"consumption: "+c.consumption,
		)
		cards = append(cards, card.Render(body))
	}

	alertLines := []string{p.styles.ModalTitle.Render("Recent Alerts")}
	for _, a := range p.alerts {
		alertLines = append(alertLines, p.styles.ErrorLine.Render("! ")+a)
	}

	historyLines := []string{p.styles.ModalTitle.Render("History")}
	for _, h := range p.history {
		historyLines = append(historyLines, p.styles.StatusLine.Render(h))
	}

	return lipgloss.JoinVertical(lipgloss.Left,
		p.styles.PageTitle.Render("Dashboard")+
			p.styles.StatusLine.Render("  "+p.session.Name+" · "+p.session.Project),
		"",
		lipgloss.JoinHorizontal(lipgloss.Top, cards...),
		"",
		card.Render(lipgloss.JoinVertical(lipgloss.Left, alertLines...)),
		card.Render(lipgloss.JoinVertical(lipgloss.Left, historyLines...)),
	)
}
