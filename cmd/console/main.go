package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/grh-water/water-console/internal/config"
	"github.com/joho/godotenv"
	"go.uber.org/fx"
)

func main() {
	// Load .env file - flexible path for running from the repo root or from
	// a bin/ subdirectory
	envPaths := []string{
		".env",
		"../../.env",
		filepath.Join(".", ".env"),
	}

	// Try to find .env file starting from current directory and moving up
	if workDir, err := os.Getwd(); err == nil {
		parentDir := filepath.Dir(workDir)
		grandParentDir := filepath.Dir(parentDir)

		envPaths = append(envPaths,
			filepath.Join(workDir, ".env"),
			filepath.Join(parentDir, ".env"),
			filepath.Join(grandParentDir, ".env"),
		)
	}

	envLoaded := false
	for _, envPath := range envPaths {
		if _, err := os.Stat(envPath); err == nil {
			if err := godotenv.Load(envPath); err == nil {
				envLoaded = true
				break
			}
		}
	}

	if !envLoaded {
		fmt.Println("No .env file found, using system environment variables")
	}

	app := fx.New(
		fx.Provide(
			config.Load,
			newLogger,
			ProvideSession,
			ProvideAPIClient,
			ProvideProjectClient,
			ProvideConcentratorClient,
			ProvideMeterClient,
			ProvideRoleRepository,
			ProvideUserRepository,
			ProvideAreaRepository,
			ProvideOperatorRepository,
			ProvideClassifier,
			ProvideTelemetryRepository,
			ProvideApp,
		),
		fx.Invoke(startConsole),
		fx.NopLogger,
	)

	app.Run()
}
