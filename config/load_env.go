package config

import (
	"log/slog"

	"github.com/subosito/gotenv"
)

// LoadEnv layers an optional env file over the OS environment. Used for
// deployment-specific settings (Valkey address, APP_ENV) that do not
// belong in config.yaml.
func LoadEnv(env string) {
	envFile := ".env." + env
	if err := gotenv.Load(envFile); err != nil {
		slog.Warn("No .env file found, using OS environment")
	}
}
