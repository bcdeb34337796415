package ui

import (
	"context"

	"github.com/charmbracelet/bubbles/table"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/grh-water/water-console/internal/model"
	"github.com/grh-water/water-console/internal/resource"
	"github.com/grh-water/water-console/internal/validator"
	"github.com/grh-water/water-console/internal/view"
	"go.uber.org/zap"
)

// Projects the deployment knows about. Visibility is filtered through the
// mock session until real authentication lands.
var allProjects = []string{"GRH (PADRE)", "CESPT", "Proyecto A", "Proyecto B"}

// ConcentratorsPage is the concentrator CRUD page plus the two quirks the
// generic page doesn't have: a project-visibility selector driven by the
// session user, and the LoRa gateway sub-form.
type ConcentratorsPage struct {
	*CrudPage[model.Concentrator]

	session    model.SessionUser
	projects   []string
	projectIdx int

	gateway     *view.Form[model.Gateway]
	gwFields    []field[model.Gateway]
	gwInputs    []textinput.Model
	gwFocus     int
	gwConfirmed string

	logger *zap.Logger
}

// NewConcentratorsPage builds the concentrator page.
func NewConcentratorsPage(client *resource.Client[model.Concentrator], session model.SessionUser, logger *zap.Logger) *ConcentratorsPage {
	page := &ConcentratorsPage{
		session: session,
		logger:  logger,
	}

	visible := session.VisibleProjects(allProjects)
	if session.Role == model.RoleSuperAdmin {
		page.projects = append([]string{"All"}, visible...)
	} else {
		page.projects = visible
	}

	page.gwFields = []field[model.Gateway]{
		{label: "Gateway ID",
			get: func(g model.Gateway) string { return g.GatewayID },
			set: func(g model.Gateway, v string) model.Gateway { g.GatewayID = v; return g }},
		{label: "EUI", required: true,
			get: func(g model.Gateway) string { return g.EUI },
			set: func(g model.Gateway, v string) model.Gateway { g.EUI = v; return g }},
		{label: "Name", required: true,
			get: func(g model.Gateway) string { return g.Name },
			set: func(g model.Gateway, v string) model.Gateway { g.Name = v; return g }},
		{label: "Description",
			get: func(g model.Gateway) string { return g.Description },
			set: func(g model.Gateway, v string) model.Gateway { g.Description = v; return g }},
		{label: "Antenna Placement",
			get: func(g model.Gateway) string { return g.AntennaPlacement },
			set: func(g model.Gateway, v string) model.Gateway { g.AntennaPlacement = v; return g }},
	}
	page.gateway = view.NewForm(
		validator.NewValidator("EUI", "Name"),
		func(g model.Gateway) map[string]string {
			vals := make(map[string]string, len(page.gwFields))
			for _, f := range page.gwFields {
				vals[f.label] = f.get(g)
			}
			return vals
		},
	)

	page.CrudPage = NewCrudPage(crudConfig[model.Concentrator]{
		title: "Concentrators",
		columns: []column{
			{"Area", 14}, {"Device S/N", 12}, {"Device Name", 16}, {"Device Time", 18},
			{"Status", 10}, {"Operator", 14}, {"Installed", 18}, {"Communication", 18},
		},
		row: func(c model.Concentrator) table.Row {
			return table.Row{
				c.AreaName, c.DeviceSN, c.DeviceName, c.DeviceTime,
				string(c.DeviceStatus), c.Operator, c.InstalledTime, c.CommunicationTime,
			}
		},
		id: func(c model.Concentrator) string { return c.ID },
		searchFields: func(c model.Concentrator) []string {
			return []string{c.DeviceName, c.DeviceSN, c.AreaName}
		},
		fields: []field[model.Concentrator]{
			{label: "Area Name", required: true,
				get: func(c model.Concentrator) string { return c.AreaName },
				set: func(c model.Concentrator, v string) model.Concentrator { c.AreaName = v; return c }},
			{label: "Device S/N", required: true,
				get: func(c model.Concentrator) string { return c.DeviceSN },
				set: func(c model.Concentrator, v string) model.Concentrator { c.DeviceSN = v; return c }},
			{label: "Device Name", required: true,
				get: func(c model.Concentrator) string { return c.DeviceName },
				set: func(c model.Concentrator, v string) model.Concentrator { c.DeviceName = v; return c }},
			{label: "Device Time",
				get: func(c model.Concentrator) string { return c.DeviceTime },
				set: func(c model.Concentrator, v string) model.Concentrator { c.DeviceTime = v; return c }},
			{label: "Device Status", options: statusOptions,
				get: func(c model.Concentrator) string { return string(c.DeviceStatus) },
				set: func(c model.Concentrator, v string) model.Concentrator { c.DeviceStatus = model.Status(v); return c }},
			{label: "Operator",
				get: func(c model.Concentrator) string { return c.Operator },
				set: func(c model.Concentrator, v string) model.Concentrator { c.Operator = v; return c }},
			{label: "Installed Time",
				get: func(c model.Concentrator) string { return c.InstalledTime },
				set: func(c model.Concentrator, v string) model.Concentrator { c.InstalledTime = v; return c }},
			{label: "Communication Time",
				get: func(c model.Concentrator) string { return c.CommunicationTime },
				set: func(c model.Concentrator, v string) model.Concentrator { c.CommunicationTime = v; return c }},
			{label: "Instruction Manual",
				get: func(c model.Concentrator) string { return c.InstructionManual },
				set: func(c model.Concentrator, v string) model.Concentrator { c.InstructionManual = v; return c }},
		},
		template: func() model.Concentrator {
			c := model.Concentrator{DeviceStatus: model.StatusActive}
			if p := page.selectedProject(); p != "" {
				c.AreaName = p
			}
			return c
		},
		toggle: func(c model.Concentrator) model.Concentrator {
			c.DeviceStatus = c.DeviceStatus.Toggle()
			return c
		},
		ops: ops[model.Concentrator]{
			load: func(ctx context.Context) ([]model.Concentrator, error) {
				items, err := client.List(ctx)
				if err != nil {
					return nil, err
				}
				project := page.selectedProject()
				if project == "" {
					return items, nil
				}
				filtered := make([]model.Concentrator, 0, len(items))
				for _, c := range items {
					if c.AreaName == project {
						filtered = append(filtered, c)
					}
				}
				return filtered, nil
			},
			create: client.Create,
			update: client.Update,
			delete: client.Delete,
		},
	})

	return page
}

func (p *ConcentratorsPage) selectedProject() string {
	if len(p.projects) == 0 {
		return ""
	}
	name := p.projects[p.projectIdx]
	if name == "All" {
		return ""
	}
	return name
}

// Update handles messages, intercepting the gateway form and the project
// selector before the generic page sees the keys.
func (p *ConcentratorsPage) Update(msg tea.Msg) tea.Cmd {
	if key, ok := msg.(tea.KeyMsg); ok {
		if p.gateway.Open() {
			return p.updateGateway(key)
		}
		if !p.FormOpen() && !p.searchFocused && p.alert == "" {
			switch key.String() {
			case "g":
				p.openGateway()
				return nil
			case "p":
				if len(p.projects) > 1 {
					p.projectIdx = (p.projectIdx + 1) % len(p.projects)
					p.loading = true
					return p.loadCmd()
				}
				return nil
			}
		}
	}
	return p.CrudPage.Update(msg)
}

// InputActive extends the generic check with the gateway modal.
func (p *ConcentratorsPage) InputActive() bool {
	return p.gateway.Open() || p.CrudPage.InputActive()
}

func (p *ConcentratorsPage) openGateway() {
	p.gwConfirmed = ""
	p.gateway.OpenCreate(model.Gateway{})
	p.gwInputs = make([]textinput.Model, len(p.gwFields))
	for i := range p.gwFields {
		ti := textinput.New()
		ti.CharLimit = 128
		ti.Width = 36
		p.gwInputs[i] = ti
	}
	p.gwFocus = 0
	p.gwInputs[0].Focus()
}

func (p *ConcentratorsPage) updateGateway(msg tea.KeyMsg) tea.Cmd {
	switch msg.String() {
	case "esc":
		p.gateway.Cancel()
		return nil
	case "tab", "down":
		p.gwInputs[p.gwFocus].Blur()
		p.gwFocus = (p.gwFocus + 1) % len(p.gwInputs)
		p.gwInputs[p.gwFocus].Focus()
		return nil
	case "shift+tab", "up":
		p.gwInputs[p.gwFocus].Blur()
		p.gwFocus = (p.gwFocus - 1 + len(p.gwInputs)) % len(p.gwInputs)
		p.gwInputs[p.gwFocus].Focus()
		return nil
	case "enter", "ctrl+s":
		if msg.String() == "enter" && p.gwFocus < len(p.gwInputs)-1 {
			p.gwInputs[p.gwFocus].Blur()
			p.gwFocus++
			p.gwInputs[p.gwFocus].Focus()
			return nil
		}
		return p.saveGateway()
	}
	var cmd tea.Cmd
	p.gwInputs[p.gwFocus], cmd = p.gwInputs[p.gwFocus].Update(msg)
	return cmd
}

// saveGateway validates the sub-record and then only logs it: the backend
// has no gateway table yet, so there is nothing to persist. The warning
// makes the gap visible instead of silently dropping the data.
func (p *ConcentratorsPage) saveGateway() tea.Cmd {
	draft := p.gateway.Draft()
	for i, f := range p.gwFields {
		draft = f.set(draft, p.gwInputs[i].Value())
	}
	p.gateway.SetDraft(draft)
	if !p.gateway.Validate() {
		return nil
	}

	p.logger.Warn("gateway configuration collected but not persisted: no backend table",
		zap.String("gateway_id", draft.GatewayID),
		zap.String("eui", draft.EUI),
		zap.String("name", draft.Name),
	)
	p.gwConfirmed = "gateway configuration recorded in log only (not persisted)"
	p.gateway.Close()
	return nil
}

// View renders the page with the project selector line and, when open, the
// gateway modal.
func (p *ConcentratorsPage) View() string {
	if p.gateway.Open() {
		return p.gatewayView()
	}

	projectLine := ""
	if len(p.projects) > 0 {
		projectLine = p.styles.StatusLine.Render(
			"project: " + p.projects[p.projectIdx] + "  (p to switch, g gateway setup)",
		)
	}
	confirm := ""
	if p.gwConfirmed != "" {
		confirm = p.styles.StatusLine.Render(p.gwConfirmed)
	}

	return lipgloss.JoinVertical(lipgloss.Left,
		p.CrudPage.View(),
		projectLine,
		confirm,
	)
}

func (p *ConcentratorsPage) gatewayView() string {
	lines := []string{p.styles.ModalTitle.Render("Gateway Setup"), ""}
	for i, f := range p.gwFields {
		label := f.label
		if f.required {
			label += " *"
		}
		rendered := p.styles.FieldLabel.Render(label)
		if p.gateway.FieldError(f.label) {
			rendered = p.styles.FieldError.Render(label + " (required)")
		}
		lines = append(lines, rendered, p.gwInputs[i].View())
	}
	lines = append(lines, "", p.styles.Help.Render("enter next · ctrl+s save · esc cancel"))
	return p.styles.Modal.Render(lipgloss.JoinVertical(lipgloss.Left, lines...))
}
