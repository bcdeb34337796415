package main

import (
	"context"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/grh-water/water-console/internal/config"
	"github.com/grh-water/water-console/internal/model"
	"github.com/grh-water/water-console/internal/repository"
	"github.com/grh-water/water-console/internal/resource"
	"github.com/grh-water/water-console/internal/tableapi"
	"github.com/grh-water/water-console/internal/telemetry"
	"github.com/grh-water/water-console/internal/ui"
	"go.uber.org/fx"
	"go.uber.org/zap"
)

func startConsole(
	lc fx.Lifecycle,
	shutdowner fx.Shutdowner,
	cfg *config.Config,
	logger *zap.Logger,
	app *ui.App,
) {
	program := tea.NewProgram(app, tea.WithAltScreen())

	lc.Append(fx.Hook{
		OnStart: func(context.Context) error {
			if cfg.API.Token == "" {
				logger.Warn("no API token configured; backend requests will be rejected")
			}
			logger.Info("starting console",
				zap.String("base_url", cfg.API.BaseURL),
				zap.String("base_id", cfg.Tables.BaseID))

			go func() {
				if _, err := program.Run(); err != nil {
					logger.Error("console exited with error", zap.Error(err))
				}
				_ = shutdowner.Shutdown()
			}()
			return nil
		},
		OnStop: func(context.Context) error {
			program.Quit()
			logger.Info("console stopped")
			_ = logger.Sync()
			return nil
		},
	})
}

// ProvideSession returns the hard-coded console session
func ProvideSession() model.SessionUser {
	return model.DefaultSession()
}

// ProvideAPIClient creates the table backend client
func ProvideAPIClient(cfg *config.Config, logger *zap.Logger) *tableapi.Client {
	return tableapi.NewClient(cfg, logger)
}

// ProvideProjectClient creates the project resource client
func ProvideProjectClient(api *tableapi.Client, cfg *config.Config, logger *zap.Logger) *resource.Client[model.Project] {
	return resource.NewClient[model.Project](api, model.ProjectMapper{}, cfg.Tables.Projects, "project", 0, logger)
}

// ProvideConcentratorClient creates the concentrator resource client
func ProvideConcentratorClient(api *tableapi.Client, cfg *config.Config, logger *zap.Logger) *resource.Client[model.Concentrator] {
	return resource.NewClient[model.Concentrator](api, model.ConcentratorMapper{}, cfg.Tables.Concentrators, "concentrator", 0, logger)
}

// ProvideMeterClient creates the meter resource client. Meters are the only
// table large enough to need the oversized page request.
func ProvideMeterClient(api *tableapi.Client, cfg *config.Config, logger *zap.Logger) *resource.Client[model.Meter] {
	return resource.NewClient[model.Meter](api, model.MeterMapper{}, cfg.Tables.Meters, "meter", cfg.API.PageSize, logger)
}

// ProvideRoleRepository creates the in-memory role store
func ProvideRoleRepository() *repository.RoleRepository {
	return repository.NewRoleRepository()
}

// ProvideUserRepository creates the in-memory user store
func ProvideUserRepository(roles *repository.RoleRepository) *repository.UserRepository {
	return repository.NewUserRepository(roles)
}

// ProvideAreaRepository creates the in-memory area store
func ProvideAreaRepository() *repository.AreaRepository {
	return repository.NewAreaRepository()
}

// ProvideOperatorRepository creates the in-memory operator tree
func ProvideOperatorRepository() *repository.OperatorRepository {
	return repository.NewOperatorRepository()
}

// ProvideClassifier creates the telemetry status classifier
func ProvideClassifier(cfg *config.Config) *telemetry.Classifier {
	return telemetry.NewClassifier(cfg.Telemetry.LowVoltage, cfg.Telemetry.CriticalVoltage, cfg.Telemetry.StaleMinutes)
}

// ProvideTelemetryRepository creates the telemetry snapshot store
func ProvideTelemetryRepository(classifier *telemetry.Classifier) *telemetry.Repository {
	return telemetry.NewRepository(classifier)
}

// ProvideApp assembles the console shell
func ProvideApp(
	cfg *config.Config,
	logger *zap.Logger,
	session model.SessionUser,
	projects *resource.Client[model.Project],
	concentrators *resource.Client[model.Concentrator],
	meters *resource.Client[model.Meter],
	roles *repository.RoleRepository,
	users *repository.UserRepository,
	areas *repository.AreaRepository,
	operators *repository.OperatorRepository,
	readings *telemetry.Repository,
) *ui.App {
	return ui.NewApp(ui.Deps{
		Config:        cfg,
		Logger:        logger,
		Session:       session,
		Projects:      projects,
		Concentrators: concentrators,
		Meters:        meters,
		Roles:         roles,
		Users:         users,
		Areas:         areas,
		Operators:     operators,
		Telemetry:     readings,
	})
}
