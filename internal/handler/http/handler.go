package http

import (
	"github.com/rizzmaster/rizznova/internal/config"
	"github.com/rizzmaster/rizznova/internal/logger"
	"github.com/rizzmaster/rizznova/internal/service"
	"github.com/rizzmaster/rizznova/internal/utils"
)

type Handler struct {
	services *service.Services

	// cookieSigner signs session cookie values so that a tampered or
	// fabricated cookie is rejected before any database lookup.
	cookieSigner *utils.Hasher

	// secureCookies toggles the Secure attribute on issued session cookies.
	secureCookies bool

	logger *logger.Logger
}

func NewHandler(services *service.Services, cfg *config.StructuredConfig, logger *logger.Logger) *Handler {
	logger.Info().Msg("http handler created")
	return &Handler{
		services:      services,
		cookieSigner:  utils.NewHasher(cfg.App.SessionSecret),
		secureCookies: cfg.Server.SecureCookies,
		logger:        logger,
	}
}
