package ui

import (
	"context"
	"fmt"

	"github.com/charmbracelet/bubbles/table"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/grh-water/water-console/internal/validator"
	"github.com/grh-water/water-console/internal/view"
)

// column describes one table column
type column struct {
	title string
	width int
}

// field describes one form field. When options is non-empty the field
// cycles through the options instead of accepting free text.
type field[E any] struct {
	label    string
	required bool
	options  []string
	get      func(E) string
	set      func(E, string) E
}

// ops are the CRUD operations backing a page. Local-repository pages plug
// in closures over their repository; remote pages plug in the resource
// client.
type ops[E any] struct {
	load   func(ctx context.Context) ([]E, error)
	create func(ctx context.Context, draft E) (E, error)
	update func(ctx context.Context, id string, draft E) (E, error)
	delete func(ctx context.Context, id string) error
}

// crudConfig parameterizes a CRUD page over its entity. toggle, when set,
// enables the quick status flip on the active record without opening the
// form.
type crudConfig[E any] struct {
	title        string
	columns      []column
	row          func(E) table.Row
	id           func(E) string
	searchFields func(E) []string
	fields       []field[E]
	template     func() E
	toggle       func(E) E
	ops          ops[E]
}

// Messages. Result types are generic so a stale response from a previous
// page of a different entity cannot be mistaken for this page's.
type loadedMsg[E any] struct{ items []E }
type loadErrMsg struct{ err error }
type savedMsg[E any] struct{}
type saveErrMsg struct{ err error }
type deletedMsg[E any] struct{}
type deleteErrMsg struct{ err error }

// CrudPage is the generic list-plus-modal page every entity uses.
type CrudPage[E any] struct {
	cfg  crudConfig[E]
	list *view.List[E]
	form *view.Form[E]

	table       table.Model
	searchInput textinput.Model
	inputs      []textinput.Model
	focusIndex  int

	searchFocused bool
	loading       bool
	status        string
	alert         string

	width  int
	height int
	styles Styles
}

// NewCrudPage creates a page from its config.
func NewCrudPage[E any](cfg crudConfig[E]) *CrudPage[E] {
	cols := make([]table.Column, len(cfg.columns))
	for i, c := range cfg.columns {
		cols[i] = table.Column{Title: c.title, Width: c.width}
	}
	t := table.New(
		table.WithColumns(cols),
		table.WithFocused(true),
		table.WithHeight(15),
	)

	si := textinput.New()
	si.Placeholder = "Search..."
	si.CharLimit = 64
	si.Width = 40

	required := make([]string, 0)
	for _, f := range cfg.fields {
		if f.required {
			required = append(required, f.label)
		}
	}
	values := func(e E) map[string]string {
		vals := make(map[string]string, len(cfg.fields))
		for _, f := range cfg.fields {
			vals[f.label] = f.get(e)
		}
		return vals
	}

	return &CrudPage[E]{
		cfg:         cfg,
		list:        view.NewList(cfg.id, cfg.searchFields),
		form:        view.NewForm(validator.NewValidator(required...), values),
		table:       t,
		searchInput: si,
		styles:      DefaultStyles(),
	}
}

// Init triggers the initial load.
func (m *CrudPage[E]) Init() tea.Cmd {
	m.loading = true
	return m.loadCmd()
}

func (m *CrudPage[E]) loadCmd() tea.Cmd {
	load := m.cfg.ops.load
	return func() tea.Msg {
		items, err := load(context.Background())
		if err != nil {
			return loadErrMsg{err: err}
		}
		return loadedMsg[E]{items: items}
	}
}

func (m *CrudPage[E]) saveCmd(draft E) tea.Cmd {
	editing := m.form.Editing()
	id := m.form.EditingID()
	create, update := m.cfg.ops.create, m.cfg.ops.update
	return func() tea.Msg {
		var err error
		if editing {
			_, err = update(context.Background(), id, draft)
		} else {
			_, err = create(context.Background(), draft)
		}
		if err != nil {
			return saveErrMsg{err: err}
		}
		return savedMsg[E]{}
	}
}

// toggleCmd saves a quick edit of the active record. The form is not
// involved; the result flows through the usual saved/save-error messages.
func (m *CrudPage[E]) toggleCmd(id string, draft E) tea.Cmd {
	update := m.cfg.ops.update
	return func() tea.Msg {
		if _, err := update(context.Background(), id, draft); err != nil {
			return saveErrMsg{err: err}
		}
		return savedMsg[E]{}
	}
}

func (m *CrudPage[E]) deleteCmd(id string) tea.Cmd {
	del := m.cfg.ops.delete
	return func() tea.Msg {
		if err := del(context.Background(), id); err != nil {
			return deleteErrMsg{err: err}
		}
		return deletedMsg[E]{}
	}
}

// SetSize adjusts the page to the terminal size.
func (m *CrudPage[E]) SetSize(width, height int) {
	m.width = width
	m.height = height
	if h := height - 8; h > 3 {
		m.table.SetHeight(h)
	}
}

// Update handles messages.
func (m *CrudPage[E]) Update(msg tea.Msg) tea.Cmd {
	switch msg := msg.(type) {
	case loadedMsg[E]:
		m.loading = false
		m.status = ""
		m.list.SetItems(msg.items)
		m.syncTable()
		return nil
	case loadErrMsg:
		// Degrade to an empty list; the status line carries the failure.
		m.loading = false
		m.list.SetItems(nil)
		m.syncTable()
		m.status = "load failed: " + msg.err.Error()
		return nil
	case savedMsg[E]:
		m.form.Close()
		m.loading = true
		return m.loadCmd()
	case saveErrMsg:
		m.alert = msg.err.Error()
		return nil
	case deletedMsg[E]:
		m.loading = true
		return m.loadCmd()
	case deleteErrMsg:
		m.alert = msg.err.Error()
		return nil
	case tea.KeyMsg:
		return m.handleKey(msg)
	}
	return nil
}

func (m *CrudPage[E]) handleKey(msg tea.KeyMsg) tea.Cmd {
	if m.alert != "" {
		switch msg.String() {
		case "enter", "esc":
			m.alert = ""
		}
		return nil
	}

	if m.form.Open() {
		return m.handleFormKey(msg)
	}

	if m.searchFocused {
		switch msg.String() {
		case "esc", "enter":
			m.searchFocused = false
			m.searchInput.Blur()
			return nil
		default:
			var cmd tea.Cmd
			m.searchInput, cmd = m.searchInput.Update(msg)
			m.list.SetSearch(m.searchInput.Value())
			m.syncTable()
			return cmd
		}
	}

	switch msg.String() {
	case "/":
		m.searchFocused = true
		m.searchInput.Focus()
		return nil
	case "a":
		m.openCreate()
		return nil
	case "e":
		active, ok := m.list.Active()
		if !ok {
			// No active record: Edit is a no-op.
			return nil
		}
		m.openEdit(active)
		return nil
	case "d":
		active, ok := m.list.Active()
		if !ok {
			return nil
		}
		return m.deleteCmd(m.cfg.id(active))
	case "t":
		if m.cfg.toggle == nil {
			return nil
		}
		active, ok := m.list.Active()
		if !ok {
			return nil
		}
		return m.toggleCmd(m.cfg.id(active), m.cfg.toggle(active))
	case "r":
		m.loading = true
		return m.loadCmd()
	}

	var cmd tea.Cmd
	m.table, cmd = m.table.Update(msg)
	m.selectCursorRow()
	return cmd
}

func (m *CrudPage[E]) handleFormKey(msg tea.KeyMsg) tea.Cmd {
	f := m.cfg.fields[m.focusIndex]
	isOption := len(f.options) > 0

	switch msg.String() {
	case "esc":
		m.form.Cancel()
		return nil
	case "ctrl+s":
		return m.save()
	case "tab", "down":
		m.focusField((m.focusIndex + 1) % len(m.cfg.fields))
		return nil
	case "shift+tab", "up":
		m.focusField((m.focusIndex - 1 + len(m.cfg.fields)) % len(m.cfg.fields))
		return nil
	case "enter":
		if m.focusIndex == len(m.cfg.fields)-1 {
			return m.save()
		}
		m.focusField(m.focusIndex + 1)
		return nil
	case " ", "left", "right":
		if isOption {
			m.cycleOption(msg.String() == "left")
			return nil
		}
	}

	if isOption {
		return nil
	}
	var cmd tea.Cmd
	m.inputs[m.focusIndex], cmd = m.inputs[m.focusIndex].Update(msg)
	return cmd
}

func (m *CrudPage[E]) cycleOption(backwards bool) {
	f := m.cfg.fields[m.focusIndex]
	current := m.inputs[m.focusIndex].Value()
	idx := 0
	for i, opt := range f.options {
		if opt == current {
			idx = i
			break
		}
	}
	if backwards {
		idx = (idx - 1 + len(f.options)) % len(f.options)
	} else {
		idx = (idx + 1) % len(f.options)
	}
	m.inputs[m.focusIndex].SetValue(f.options[idx])
}

func (m *CrudPage[E]) save() tea.Cmd {
	m.form.SetDraft(m.draftFromInputs())
	if !m.form.Validate() {
		return nil
	}
	return m.saveCmd(m.form.Draft())
}

func (m *CrudPage[E]) draftFromInputs() E {
	draft := m.form.Draft()
	for i, f := range m.cfg.fields {
		draft = f.set(draft, m.inputs[i].Value())
	}
	return draft
}

func (m *CrudPage[E]) openCreate() {
	seed := m.cfg.template()
	m.form.OpenCreate(seed)
	m.buildInputs(seed)
}

func (m *CrudPage[E]) openEdit(active E) {
	m.form.OpenEdit(m.cfg.id(active), active)
	m.buildInputs(active)
}

func (m *CrudPage[E]) buildInputs(seed E) {
	m.inputs = make([]textinput.Model, len(m.cfg.fields))
	for i, f := range m.cfg.fields {
		ti := textinput.New()
		ti.CharLimit = 128
		ti.Width = 36
		ti.SetValue(f.get(seed))
		m.inputs[i] = ti
	}
	m.focusIndex = 0
	if len(m.inputs) > 0 {
		m.inputs[0].Focus()
	}
}

func (m *CrudPage[E]) focusField(idx int) {
	m.inputs[m.focusIndex].Blur()
	m.focusIndex = idx
	m.inputs[m.focusIndex].Focus()
}

func (m *CrudPage[E]) selectCursorRow() {
	filtered := m.list.Filtered()
	cursor := m.table.Cursor()
	if cursor >= 0 && cursor < len(filtered) {
		m.list.Select(m.cfg.id(filtered[cursor]))
	} else {
		m.list.ClearSelection()
	}
}

func (m *CrudPage[E]) syncTable() {
	filtered := m.list.Filtered()
	rows := make([]table.Row, len(filtered))
	for i, item := range filtered {
		rows[i] = m.cfg.row(item)
	}
	m.table.SetRows(rows)
	if m.table.Cursor() >= len(rows) {
		m.table.SetCursor(0)
	}
	m.selectCursorRow()
}

// View renders the page.
func (m *CrudPage[E]) View() string {
	if m.alert != "" {
		return m.styles.Alert.Render(
			"Save failed\n\n" + m.alert + "\n\npress enter to continue",
		)
	}
	if m.form.Open() {
		return m.formView()
	}

	title := m.styles.PageTitle.Render(m.cfg.title)
	count := m.styles.StatusLine.Render(fmt.Sprintf(" %d records", len(m.list.Items())))
	search := "search: " + m.searchInput.View()

	status := ""
	if m.loading {
		status = m.styles.StatusLine.Render("loading...")
	} else if m.status != "" {
		status = m.styles.ErrorLine.Render(m.status)
	}

	helpText := "a add · e edit · d delete · r refresh · / search · q back"
	if m.cfg.toggle != nil {
		helpText = "a add · e edit · d delete · t toggle status · r refresh · / search · q back"
	}
	help := m.styles.Help.Render(helpText)

	return lipgloss.JoinVertical(lipgloss.Left,
		title+count,
		search,
		m.table.View(),
		status,
		help,
	)
}

func (m *CrudPage[E]) formView() string {
	title := "Add " + m.cfg.title
	if m.form.Editing() {
		title = "Edit " + m.cfg.title
	}

	lines := []string{m.styles.ModalTitle.Render(title), ""}
	for i, f := range m.cfg.fields {
		label := f.label
		if f.required {
			label += " *"
		}
		rendered := m.styles.FieldLabel.Render(label)
		if m.form.FieldError(f.label) {
			rendered = m.styles.FieldError.Render(label + " (required)")
		}

		var value string
		if len(f.options) > 0 {
			value = "< " + m.inputs[i].Value() + " >"
			if i == m.focusIndex {
				value = m.styles.StatusActive.Render(value)
			}
		} else {
			value = m.inputs[i].View()
		}
		lines = append(lines, rendered, value)
	}
	lines = append(lines, "", m.styles.Help.Render("enter next · ctrl+s save · esc cancel"))

	return m.styles.Modal.Render(lipgloss.JoinVertical(lipgloss.Left, lines...))
}

// ActiveID exposes the current selection (for tests and the shell).
func (m *CrudPage[E]) ActiveID() string {
	return m.list.ActiveID()
}

// FormOpen reports whether the modal is open.
func (m *CrudPage[E]) FormOpen() bool {
	return m.form.Open()
}

// InputActive reports whether the page is capturing text: a focused search
// box, an open form or a pending alert all consume keystrokes.
func (m *CrudPage[E]) InputActive() bool {
	return m.searchFocused || m.form.Open() || m.alert != ""
}
