package ui

import (
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/grh-water/water-console/internal/config"
	"github.com/grh-water/water-console/internal/model"
	"github.com/grh-water/water-console/internal/repository"
	"github.com/grh-water/water-console/internal/resource"
	"github.com/grh-water/water-console/internal/telemetry"
	"go.uber.org/zap"
)

// Page identifies a console screen.
type Page int

const (
	PageHome Page = iota
	PageAreas
	PageOperators
	PageMeters
	PageConcentrators
	PageProjects
	PageMonitoring
	PageQuery
	PageUsers
	PageRoles
)

// pageModel is the contract every screen satisfies. Pages mutate themselves
// and hand commands back so the shell can treat them uniformly. InputActive
// reports whether the page is capturing text (search box, modal form), in
// which case the shell must not steal printable keys from it.
type pageModel interface {
	Init() tea.Cmd
	Update(tea.Msg) tea.Cmd
	View() string
	SetSize(width, height int)
	InputActive() bool
}

// navEntry is one sidebar row. Entries with an empty page label a group.
type navEntry struct {
	group string
	label string
	page  Page
}

var navEntries = []navEntry{
	{group: "Dashboard"},
	{label: "Home", page: PageHome},
	{group: "System Settings"},
	{label: "Area Management", page: PageAreas},
	{label: "Operator Management", page: PageOperators},
	{group: "Water Meter System"},
	{label: "Meter Management", page: PageMeters},
	{label: "Concentrator Management", page: PageConcentrators},
	{label: "Project Management", page: PageProjects},
	{label: "Data Monitoring", page: PageMonitoring},
	{label: "Data Query", page: PageQuery},
	{group: "Access"},
	{label: "User Management", page: PageUsers},
	{label: "Role Management", page: PageRoles},
}

// Deps carries everything the shell needs to mount pages.
type Deps struct {
	Config  *config.Config
	Logger  *zap.Logger
	Session model.SessionUser

	Projects      *resource.Client[model.Project]
	Concentrators *resource.Client[model.Concentrator]
	Meters        *resource.Client[model.Meter]

	Roles     *repository.RoleRepository
	Users     *repository.UserRepository
	Areas     *repository.AreaRepository
	Operators *repository.OperatorRepository
	Telemetry *telemetry.Repository
}

// App is the root bubbletea model: top bar, sidebar and the active page.
type App struct {
	deps Deps

	navIdx     int
	navFocused bool
	current    Page
	page       pageModel

	width  int
	height int
	styles Styles
}

// NewApp creates the shell, starting on the sidebar with the home page
// mounted.
func NewApp(deps Deps) *App {
	app := &App{
		deps:       deps,
		navFocused: true,
		styles:     DefaultStyles(),
	}
	app.navIdx = app.firstSelectable()
	app.current = PageHome
	app.page = app.mount(PageHome)
	return app
}

func (a *App) firstSelectable() int {
	for i, e := range navEntries {
		if e.group == "" {
			return i
		}
	}
	return 0
}

// mount builds a fresh page model. Switching pages always discards the old
// page state so every screen opens the way it first loads.
func (a *App) mount(page Page) pageModel {
	switch page {
	case PageAreas:
		return NewAreasPage(a.deps.Areas)
	case PageOperators:
		return NewOperatorsPage(a.deps.Operators)
	case PageMeters:
		return NewMetersPage(a.deps.Meters)
	case PageConcentrators:
		return NewConcentratorsPage(a.deps.Concentrators, a.deps.Session, a.deps.Logger)
	case PageProjects:
		return NewProjectsPage(a.deps.Projects)
	case PageMonitoring:
		return NewMonitoringPage(a.deps.Telemetry)
	case PageQuery:
		return NewQueryPage(a.deps.Telemetry)
	case PageUsers:
		return NewUsersPage(a.deps.Users, a.deps.Roles)
	case PageRoles:
		return NewRolesPage(a.deps.Roles)
	default:
		return NewHomePage(a.deps.Session)
	}
}

// Init starts the initial page.
func (a *App) Init() tea.Cmd {
	return a.page.Init()
}

// Update routes messages to the sidebar or the active page.
func (a *App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		a.width = msg.Width
		a.height = msg.Height
		a.page.SetSize(a.pageWidth(), msg.Height-2)
		return a, nil
	case tea.KeyMsg:
		if msg.String() == "ctrl+c" {
			return a, tea.Quit
		}
		if a.navFocused {
			return a, a.handleNavKey(msg)
		}
		// q is "back to sidebar" only while the page is idle; a focused
		// search box or open form gets the rune like any other.
		if msg.String() == "q" && !a.page.InputActive() {
			a.navFocused = true
			return a, nil
		}
	}
	return a, a.page.Update(msg)
}

func (a *App) handleNavKey(msg tea.KeyMsg) tea.Cmd {
	switch msg.String() {
	case "up", "k":
		for i := a.navIdx - 1; i >= 0; i-- {
			if navEntries[i].group == "" {
				a.navIdx = i
				break
			}
		}
	case "down", "j":
		for i := a.navIdx + 1; i < len(navEntries); i++ {
			if navEntries[i].group == "" {
				a.navIdx = i
				break
			}
		}
	case "enter":
		a.current = navEntries[a.navIdx].page
		a.page = a.mount(a.current)
		a.page.SetSize(a.pageWidth(), a.height-2)
		a.navFocused = false
		return a.page.Init()
	case "q", "ctrl+c":
		return tea.Quit
	}
	return nil
}

func (a *App) pageWidth() int {
	w := a.width - 30
	if w < 40 {
		w = a.width
	}
	return w
}

// View renders the top bar, the sidebar and the active page.
func (a *App) View() string {
	crumb := "Home"
	for _, e := range navEntries {
		if e.group == "" && e.page == a.current {
			crumb = e.label
			break
		}
	}
	top := a.styles.TopBar.Render("GRH Water Console · " + crumb + " · " + a.deps.Session.Name)

	lines := make([]string, 0, len(navEntries))
	for i, e := range navEntries {
		if e.group != "" {
			lines = append(lines, a.styles.SidebarGroup.Render(e.group))
			continue
		}
		if i == a.navIdx && a.navFocused {
			lines = append(lines, a.styles.SidebarSel.Render("> "+e.label))
		} else if e.page == a.current && !a.navFocused {
			lines = append(lines, a.styles.SidebarSel.Render(e.label))
		} else {
			lines = append(lines, a.styles.SidebarItem.Render(e.label))
		}
	}
	sidebar := a.styles.Sidebar.Render(lipgloss.JoinVertical(lipgloss.Left, lines...))

	body := a.page.View()
	if a.navFocused {
		body = lipgloss.JoinVertical(lipgloss.Left,
			body,
			a.styles.Help.Render("up/down select · enter open · ctrl+c quit"),
		)
	}

	return lipgloss.JoinVertical(lipgloss.Left,
		top,
		lipgloss.JoinHorizontal(lipgloss.Top, sidebar, " ", body),
	)
}
