package http

import (
	"time"

	"github.com/fintrack/fintrack/internal/config"
	"github.com/fintrack/fintrack/internal/logger"
	"github.com/fintrack/fintrack/internal/service"
)

const defaultRequestTimeout = 30 * time.Second

type Handler struct {
	services       *service.Services
	requestTimeout time.Duration

	logger *logger.Logger
}

func NewHandler(services *service.Services, cfg config.Server, logger *logger.Logger) *Handler {
	timeout := cfg.RequestTimeout
	if timeout <= 0 {
		timeout = defaultRequestTimeout
	}

	logger.Info().Msg("http handler created")
	return &Handler{
		services:       services,
		requestTimeout: timeout,
		logger:         logger,
	}
}
