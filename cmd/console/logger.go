package main

import (
	"github.com/grh-water/water-console/internal/config"
	"github.com/grh-water/water-console/internal/logging"
	"go.uber.org/zap"
)

func newLogger(cfg *config.Config) (*zap.Logger, error) {
	return logging.NewLogger(cfg.ServiceName, cfg.LogPath)
}
