package config

import (
	"os"
	"strconv"
)

// Config holds all application configuration
type Config struct {
	ServiceName string
	LogPath     string
	API         APIConfig
	Tables      TableConfig
	Telemetry   TelemetryConfig
}

// APIConfig holds table backend connection settings
type APIConfig struct {
	BaseURL  string
	Token    string
	PageSize int
}

// TableConfig holds the base and per-entity table identifiers on the
// record backend
type TableConfig struct {
	BaseID        string
	Projects      string
	Concentrators string
	Meters        string
}

// TelemetryConfig holds the thresholds for the derived monitoring columns
type TelemetryConfig struct {
	LowVoltage      float64
	CriticalVoltage float64
	StaleMinutes    int
}

// Load loads configuration from environment variables.
//
// A missing API token is deliberately not a startup error: requests go out
// with an empty token, the backend rejects them and the failure surfaces in
// the UI instead.
func Load() (*Config, error) {
	cfg := &Config{
		ServiceName: getEnv("SERVICE_NAME", "water-console"),
		LogPath:     getEnv("LOG_PATH", "water-console.log"),
		API: APIConfig{
			BaseURL:  getEnv("API_BASE_URL", ""),
			Token:    getEnv("API_TOKEN", ""),
			PageSize: getEnvAsInt("API_PAGE_SIZE", 9999),
		},
		Tables: TableConfig{
			BaseID:        getEnv("TABLES_BASE_ID", "ppfu31vhv5gf6i0"),
			Projects:      getEnv("TABLES_PROJECTS_ID", "m05u6wpquvdbv3c"),
			Concentrators: getEnv("TABLES_CONCENTRATORS_ID", "mqqvi3woqdw5ziq"),
			Meters:        getEnv("TABLES_METERS_ID", "mp1izvcpok5rk6s"),
		},
		Telemetry: TelemetryConfig{
			LowVoltage:      getEnvAsFloat("TELEMETRY_LOW_VOLTAGE", 3.4),
			CriticalVoltage: getEnvAsFloat("TELEMETRY_CRITICAL_VOLTAGE", 3.2),
			StaleMinutes:    getEnvAsInt("TELEMETRY_STALE_MINUTES", 1440),
		},
	}

	return cfg, nil
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvAsInt(key string, defaultValue int) int {
	valueStr := os.Getenv(key)
	if valueStr == "" {
		return defaultValue
	}
	value, err := strconv.Atoi(valueStr)
	if err != nil {
		return defaultValue
	}
	return value
}

func getEnvAsFloat(key string, defaultValue float64) float64 {
	valueStr := os.Getenv(key)
	if valueStr == "" {
		return defaultValue
	}
	value, err := strconv.ParseFloat(valueStr, 64)
	if err != nil {
		return defaultValue
	}
	return value
}
