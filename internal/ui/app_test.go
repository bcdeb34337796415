package ui

import (
	"testing"

	"github.com/grh-water/water-console/internal/config"
	"github.com/grh-water/water-console/internal/model"
	"github.com/grh-water/water-console/internal/repository"
	"github.com/grh-water/water-console/internal/resource"
	"github.com/grh-water/water-console/internal/tableapi"
	"github.com/grh-water/water-console/internal/telemetry"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func testApp() *App {
	cfg := &config.Config{}
	api := tableapi.NewClient(cfg, zap.NewNop())

	roles := repository.NewRoleRepository()
	return NewApp(Deps{
		Config:        cfg,
		Logger:        zap.NewNop(),
		Session:       model.DefaultSession(),
		Projects:      resource.NewClient[model.Project](api, model.ProjectMapper{}, "p", "project", 0, zap.NewNop()),
		Concentrators: resource.NewClient[model.Concentrator](api, model.ConcentratorMapper{}, "c", "concentrator", 0, zap.NewNop()),
		Meters:        resource.NewClient[model.Meter](api, model.MeterMapper{}, "m", "meter", 0, zap.NewNop()),
		Roles:         roles,
		Users:         repository.NewUserRepository(roles),
		Areas:         repository.NewAreaRepository(),
		Operators:     repository.NewOperatorRepository(),
		Telemetry:     telemetry.NewRepository(telemetry.NewClassifier(3.4, 3.2, 1440)),
	})
}

// openPage puts the shell on a page the way a nav enter would, without
// running the load command.
func openPage(app *App, page Page) {
	app.current = page
	app.page = app.mount(page)
	app.navFocused = false
}

func TestIdleQReturnsToSidebar(t *testing.T) {
	app := testApp()
	openPage(app, PageRoles)

	app.Update(keyMsg("q"))
	assert.True(t, app.navFocused)
}

func TestQReachesFocusedSearch(t *testing.T) {
	app := testApp()
	openPage(app, PageRoles)

	app.Update(keyMsg("/"))
	app.Update(keyMsg("q"))

	assert.False(t, app.navFocused, "a focused search box keeps the q rune")
	roles := app.page.(*CrudPage[model.Role])
	assert.Equal(t, "q", roles.searchInput.Value())

	// Leaving the search box restores q as back.
	app.Update(keyMsg("esc"))
	app.Update(keyMsg("q"))
	assert.True(t, app.navFocused)
}

func TestQReachesOpenForm(t *testing.T) {
	app := testApp()
	openPage(app, PageRoles)

	app.Update(keyMsg("a"))
	roles := app.page.(*CrudPage[model.Role])
	require.True(t, roles.FormOpen())

	app.Update(keyMsg("q"))
	assert.False(t, app.navFocused, "an open form keeps the q rune")
	assert.True(t, roles.FormOpen(), "the draft is not abandoned")
	assert.Equal(t, "q", roles.inputs[0].Value())
}

func TestQReachesGatewayForm(t *testing.T) {
	app := testApp()
	openPage(app, PageConcentrators)

	app.Update(keyMsg("g"))
	page := app.page.(*ConcentratorsPage)
	require.True(t, page.gateway.Open())

	app.Update(keyMsg("q"))
	assert.False(t, app.navFocused)
	assert.True(t, page.gateway.Open())
	assert.Equal(t, "q", page.gwInputs[0].Value())
}
