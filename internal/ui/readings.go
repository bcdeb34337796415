package ui

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/bubbles/table"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/grh-water/water-console/internal/telemetry"
)

// ReadingsPage is a read-only telemetry grid. The monitoring page shows the
// full column set including the modem diagnostics; the query page shows the
// reduced billing view. Both share this model with different projections.
type ReadingsPage struct {
	title   string
	repo    *telemetry.Repository
	columns []table.Column
	row     func(telemetry.Reading) table.Row
	match   func(telemetry.Reading) []string

	table         table.Model
	searchInput   textinput.Model
	searchFocused bool
	readings      []telemetry.Reading

	width  int
	height int
	styles Styles
}

// NewMonitoringPage builds the full-width data monitoring grid.
func NewMonitoringPage(repo *telemetry.Repository) *ReadingsPage {
	return newReadingsPage("Data Monitoring", repo,
		[]table.Column{
			{Title: "Sort", Width: 5},
			{Title: "Area", Width: 14},
			{Title: "Meter S/N", Width: 10},
			{Title: "Communication", Width: 19},
			{Title: "Comm", Width: 6},
			{Title: "Total Flow", Width: 10},
			{Title: "Voltage", Width: 8},
			{Title: "Battery", Width: 9},
			{Title: "EM Dist.", Width: 9},
			{Title: "Valve", Width: 7},
			{Title: "Flow Rate", Width: 11},
			{Title: "Device ID", Width: 9},
			{Title: "IMEI", Width: 16},
			{Title: "PCI", Width: 5},
			{Title: "SNR", Width: 5},
			{Title: "IMSI", Width: 16},
		},
		func(r telemetry.Reading) table.Row {
			return table.Row{
				strconv.Itoa(r.Sort), r.AreaName, r.MeterSN, r.CommunicationTime,
				commLabel(r), fmt.Sprintf("%.1f", r.PositiveTotalFlow),
				fmt.Sprintf("%.2f", r.Voltage),
				r.BatteryStatus, r.EMDisturbance, r.ValveStatus, r.PositiveFlowRate,
				strconv.Itoa(r.DeviceID), r.IMEI, r.PCI, r.SNR, r.IMSI,
			}
		},
	)
}

// NewQueryPage builds the reduced data query grid.
func NewQueryPage(repo *telemetry.Repository) *ReadingsPage {
	return newReadingsPage("Data Query", repo,
		[]table.Column{
			{Title: "Sort", Width: 5},
			{Title: "Area", Width: 16},
			{Title: "Meter S/N", Width: 12},
			{Title: "Communication", Width: 19},
			{Title: "Total Flow", Width: 12},
			{Title: "Battery", Width: 10},
		},
		func(r telemetry.Reading) table.Row {
			return table.Row{
				strconv.Itoa(r.Sort), r.AreaName, r.MeterSN, r.CommunicationTime,
				fmt.Sprintf("%.1f", r.PositiveTotalFlow), r.BatteryStatus,
			}
		},
	)
}

func commLabel(r telemetry.Reading) string {
	if r.Stale {
		return "Stale"
	}
	return "OK"
}

func newReadingsPage(title string, repo *telemetry.Repository, cols []table.Column, row func(telemetry.Reading) table.Row) *ReadingsPage {
	si := textinput.New()
	si.Placeholder = "Search..."
	si.CharLimit = 64
	si.Width = 40

	p := &ReadingsPage{
		title:   title,
		repo:    repo,
		columns: cols,
		row:     row,
		match: func(r telemetry.Reading) []string {
			return []string{r.MeterSN, r.AreaName}
		},
		table: table.New(
			table.WithColumns(cols),
			table.WithFocused(true),
			table.WithHeight(15),
		),
		searchInput: si,
		styles:      DefaultStyles(),
	}
	return p
}

// Init loads the snapshot.
func (p *ReadingsPage) Init() tea.Cmd {
	p.reload()
	return nil
}

// SetSize adjusts the page to the terminal size.
func (p *ReadingsPage) SetSize(width, height int) {
	p.width = width
	p.height = height
	if h := height - 8; h > 3 {
		p.table.SetHeight(h)
	}
}

func (p *ReadingsPage) reload() {
	p.repo.Refresh()
	p.readings = p.repo.List()
	p.syncTable()
}

// InputActive reports whether the search box is capturing keystrokes.
func (p *ReadingsPage) InputActive() bool {
	return p.searchFocused
}

func containsFold(s, sub string) bool {
	return strings.Contains(strings.ToLower(s), strings.ToLower(sub))
}

func (p *ReadingsPage) filtered() []telemetry.Reading {
	query := p.searchInput.Value()
	if query == "" {
		return p.readings
	}
	out := make([]telemetry.Reading, 0, len(p.readings))
	for _, r := range p.readings {
		for _, f := range p.match(r) {
			if containsFold(f, query) {
				out = append(out, r)
				break
			}
		}
	}
	return out
}

func (p *ReadingsPage) syncTable() {
	filtered := p.filtered()
	rows := make([]table.Row, len(filtered))
	for i, r := range filtered {
		rows[i] = p.row(r)
	}
	p.table.SetRows(rows)
	if p.table.Cursor() >= len(rows) {
		p.table.SetCursor(0)
	}
}

// Update handles messages.
func (p *ReadingsPage) Update(msg tea.Msg) tea.Cmd {
	key, ok := msg.(tea.KeyMsg)
	if !ok {
		return nil
	}

	if p.searchFocused {
		switch key.String() {
		case "esc", "enter":
			p.searchFocused = false
			p.searchInput.Blur()
			return nil
		default:
			var cmd tea.Cmd
			p.searchInput, cmd = p.searchInput.Update(key)
			p.syncTable()
			return cmd
		}
	}

	switch key.String() {
	case "/":
		p.searchFocused = true
		p.searchInput.Focus()
		return nil
	case "r":
		p.reload()
		return nil
	}

	var cmd tea.Cmd
	p.table, cmd = p.table.Update(key)
	return cmd
}

// View renders the grid.
func (p *ReadingsPage) View() string {
	title := p.styles.PageTitle.Render(p.title)
	count := p.styles.StatusLine.Render(fmt.Sprintf(" %d readings", len(p.readings)))
	search := "search: " + p.searchInput.View()
	help := p.styles.Help.Render("r refresh · / search · q back")

	return lipgloss.JoinVertical(lipgloss.Left,
		title+count,
		search,
		p.table.View(),
		help,
	)
}
