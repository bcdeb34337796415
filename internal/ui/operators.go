package ui

import (
	"strconv"
	"strings"

	"github.com/charmbracelet/bubbles/table"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/grh-water/water-console/internal/model"
	"github.com/grh-water/water-console/internal/repository"
	"github.com/grh-water/water-console/internal/validator"
	"github.com/grh-water/water-console/internal/view"
)

var yesNoOptions = []string{"no", "yes"}

func boolLabel(b bool) string {
	if b {
		return "yes"
	}
	return "no"
}

// treeNode is one row of the flattened area tree with its nesting depth.
type treeNode struct {
	area  *model.OperatorArea
	depth int
}

// OperatorsPage is the two-pane operator management page: the area tree on
// the left, the operators of the selected area on the right. It does not fit
// the generic CRUD page because the operator list is keyed by the tree
// selection.
type OperatorsPage struct {
	repo *repository.OperatorRepository

	nodes     []treeNode
	treeIdx   int
	focusTree bool

	table  table.Model
	form   *view.Form[model.Operator]
	fields []field[model.Operator]
	inputs []textinput.Model
	focus  int

	width  int
	height int
	styles Styles
}

// NewOperatorsPage builds the operator page over the operator repository.
func NewOperatorsPage(repo *repository.OperatorRepository) *OperatorsPage {
	p := &OperatorsPage{
		repo:      repo,
		focusTree: true,
		styles:    DefaultStyles(),
	}

	p.fields = []field[model.Operator]{
		{label: "Login Name", required: true,
			get: func(o model.Operator) string { return o.LoginName },
			set: func(o model.Operator, v string) model.Operator { o.LoginName = v; return o }},
		{label: "User Name",
			get: func(o model.Operator) string { return o.UserName },
			set: func(o model.Operator, v string) model.Operator { o.UserName = v; return o }},
		{label: "Cell Phone",
			get: func(o model.Operator) string { return o.CellPhone },
			set: func(o model.Operator, v string) model.Operator { o.CellPhone = v; return o }},
		{label: "Super Admin", options: yesNoOptions,
			get: func(o model.Operator) string { return boolLabel(o.IsSuperAdmin) },
			set: func(o model.Operator, v string) model.Operator { o.IsSuperAdmin = v == "yes"; return o }},
		{label: "Disabled", options: yesNoOptions,
			get: func(o model.Operator) string { return boolLabel(o.IsDisabled) },
			set: func(o model.Operator, v string) model.Operator { o.IsDisabled = v == "yes"; return o }},
		{label: "Created",
			get: func(o model.Operator) string { return o.CreatedAt },
			set: func(o model.Operator, v string) model.Operator { o.CreatedAt = v; return o }},
	}
	p.form = view.NewForm(
		validator.NewValidator("Login Name"),
		func(o model.Operator) map[string]string {
			vals := make(map[string]string, len(p.fields))
			for _, f := range p.fields {
				vals[f.label] = f.get(o)
			}
			return vals
		},
	)

	p.table = table.New(
		table.WithColumns([]table.Column{
			{Title: "ID", Width: 5},
			{Title: "Login", Width: 14},
			{Title: "User Name", Width: 18},
			{Title: "Cell Phone", Width: 14},
			{Title: "Super Admin", Width: 12},
			{Title: "Disabled", Width: 10},
			{Title: "Created", Width: 12},
		}),
		table.WithHeight(15),
	)

	p.rebuild()
	return p
}

// Init satisfies the page contract; all data is local.
func (p *OperatorsPage) Init() tea.Cmd {
	p.rebuild()
	return nil
}

// SetSize adjusts the page to the terminal size.
func (p *OperatorsPage) SetSize(width, height int) {
	p.width = width
	p.height = height
	if h := height - 8; h > 3 {
		p.table.SetHeight(h)
	}
}

// InputActive reports whether the operator form is capturing keystrokes.
func (p *OperatorsPage) InputActive() bool {
	return p.form.Open()
}

func (p *OperatorsPage) rebuild() {
	p.nodes = p.nodes[:0]
	var walk func(list []*model.OperatorArea, depth int)
	walk = func(list []*model.OperatorArea, depth int) {
		for _, area := range list {
			p.nodes = append(p.nodes, treeNode{area: area, depth: depth})
			walk(area.Children, depth+1)
		}
	}
	walk(p.repo.Areas(), 0)
	if p.treeIdx >= len(p.nodes) {
		p.treeIdx = 0
	}
	p.syncTable()
}

func (p *OperatorsPage) selectedArea() *model.OperatorArea {
	if p.treeIdx < 0 || p.treeIdx >= len(p.nodes) {
		return nil
	}
	return p.nodes[p.treeIdx].area
}

func (p *OperatorsPage) syncTable() {
	area := p.selectedArea()
	if area == nil {
		p.table.SetRows(nil)
		return
	}
	rows := make([]table.Row, len(area.Operators))
	for i, op := range area.Operators {
		rows[i] = table.Row{
			strconv.Itoa(op.ID), op.LoginName, op.UserName, op.CellPhone,
			boolLabel(op.IsSuperAdmin), boolLabel(op.IsDisabled), op.CreatedAt,
		}
	}
	p.table.SetRows(rows)
	if p.table.Cursor() >= len(rows) {
		p.table.SetCursor(0)
	}
}

func (p *OperatorsPage) activeOperator() (model.Operator, bool) {
	area := p.selectedArea()
	if area == nil {
		return model.Operator{}, false
	}
	cursor := p.table.Cursor()
	if cursor < 0 || cursor >= len(area.Operators) {
		return model.Operator{}, false
	}
	return area.Operators[cursor], true
}

// Update handles messages.
func (p *OperatorsPage) Update(msg tea.Msg) tea.Cmd {
	key, ok := msg.(tea.KeyMsg)
	if !ok {
		return nil
	}
	if p.form.Open() {
		return p.handleFormKey(key)
	}

	switch key.String() {
	case "tab":
		p.focusTree = !p.focusTree
		if p.focusTree {
			p.table.Blur()
		} else {
			p.table.Focus()
		}
		return nil
	case "a":
		area := p.selectedArea()
		if area == nil {
			return nil
		}
		seed := model.Operator{}
		p.form.OpenCreate(seed)
		p.buildInputs(seed)
		return nil
	case "e":
		active, ok := p.activeOperator()
		if !ok {
			return nil
		}
		p.form.OpenEdit(strconv.Itoa(active.ID), active)
		p.buildInputs(active)
		return nil
	case "d":
		area := p.selectedArea()
		active, ok := p.activeOperator()
		if !ok {
			return nil
		}
		p.repo.Delete(area.ID, active.ID)
		p.syncTable()
		return nil
	}

	if p.focusTree {
		switch key.String() {
		case "up", "k":
			if p.treeIdx > 0 {
				p.treeIdx--
				p.table.SetCursor(0)
				p.syncTable()
			}
		case "down", "j":
			if p.treeIdx < len(p.nodes)-1 {
				p.treeIdx++
				p.table.SetCursor(0)
				p.syncTable()
			}
		}
		return nil
	}

	var cmd tea.Cmd
	p.table, cmd = p.table.Update(msg)
	return cmd
}

func (p *OperatorsPage) handleFormKey(msg tea.KeyMsg) tea.Cmd {
	f := p.fields[p.focus]
	isOption := len(f.options) > 0

	switch msg.String() {
	case "esc":
		p.form.Cancel()
		return nil
	case "ctrl+s":
		p.save()
		return nil
	case "tab", "down":
		p.focusField((p.focus + 1) % len(p.fields))
		return nil
	case "shift+tab", "up":
		p.focusField((p.focus - 1 + len(p.fields)) % len(p.fields))
		return nil
	case "enter":
		if p.focus == len(p.fields)-1 {
			p.save()
			return nil
		}
		p.focusField(p.focus + 1)
		return nil
	case " ", "left", "right":
		if isOption {
			current := p.inputs[p.focus].Value()
			next := "yes"
			if current == "yes" {
				next = "no"
			}
			p.inputs[p.focus].SetValue(next)
			return nil
		}
	}

	if isOption {
		return nil
	}
	var cmd tea.Cmd
	p.inputs[p.focus], cmd = p.inputs[p.focus].Update(msg)
	return cmd
}

func (p *OperatorsPage) save() {
	draft := p.form.Draft()
	for i, f := range p.fields {
		draft = f.set(draft, p.inputs[i].Value())
	}
	p.form.SetDraft(draft)
	if !p.form.Validate() {
		return
	}

	area := p.selectedArea()
	if area == nil {
		p.form.Close()
		return
	}
	if p.form.Editing() {
		id, err := strconv.Atoi(p.form.EditingID())
		if err == nil {
			p.repo.Update(area.ID, id, draft)
		}
	} else {
		p.repo.Create(area.ID, draft)
	}
	p.form.Close()
	p.syncTable()
}

func (p *OperatorsPage) buildInputs(seed model.Operator) {
	p.inputs = make([]textinput.Model, len(p.fields))
	for i, f := range p.fields {
		ti := textinput.New()
		ti.CharLimit = 64
		ti.Width = 32
		ti.SetValue(f.get(seed))
		p.inputs[i] = ti
	}
	p.focus = 0
	p.inputs[0].Focus()
}

func (p *OperatorsPage) focusField(idx int) {
	p.inputs[p.focus].Blur()
	p.focus = idx
	p.inputs[p.focus].Focus()
}

// View renders both panes, or the form modal when it is open.
func (p *OperatorsPage) View() string {
	if p.form.Open() {
		return p.formView()
	}

	treeLines := make([]string, 0, len(p.nodes)+1)
	treeLines = append(treeLines, p.styles.SidebarGroup.Render("Areas"))
	for i, node := range p.nodes {
		line := strings.Repeat("  ", node.depth) + node.area.Name
		if i == p.treeIdx {
			line = p.styles.SidebarSel.Render("> " + line)
		} else {
			line = p.styles.SidebarItem.Render(line)
		}
		treeLines = append(treeLines, line)
	}
	tree := p.styles.Sidebar.Render(lipgloss.JoinVertical(lipgloss.Left, treeLines...))

	pane := "tree"
	if !p.focusTree {
		pane = "operators"
	}
	title := p.styles.PageTitle.Render("Operators")
	help := p.styles.Help.Render("tab switch pane (" + pane + ") · a add · e edit · d delete · q back")

	right := lipgloss.JoinVertical(lipgloss.Left, p.table.View(), help)
	return lipgloss.JoinVertical(lipgloss.Left,
		title,
		lipgloss.JoinHorizontal(lipgloss.Top, tree, "  ", right),
	)
}

func (p *OperatorsPage) formView() string {
	title := "Add Operator"
	if p.form.Editing() {
		title = "Edit Operator"
	}
	lines := []string{p.styles.ModalTitle.Render(title), ""}
	for i, f := range p.fields {
		label := f.label
		if f.required {
			label += " *"
		}
		rendered := p.styles.FieldLabel.Render(label)
		if p.form.FieldError(f.label) {
			rendered = p.styles.FieldError.Render(label + " (required)")
		}
		var value string
		if len(f.options) > 0 {
			value = "< " + p.inputs[i].Value() + " >"
			if i == p.focus {
				value = p.styles.StatusActive.Render(value)
			}
		} else {
			value = p.inputs[i].View()
		}
		lines = append(lines, rendered, value)
	}
	lines = append(lines, "", p.styles.Help.Render("enter next · ctrl+s save · esc cancel"))
	return p.styles.Modal.Render(lipgloss.JoinVertical(lipgloss.Left, lines...))
}
