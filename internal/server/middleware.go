package server

import (
	"log/slog"

	"github.com/alkime/wavegen/internal/config"
	"github.com/gin-contrib/secure"
	"github.com/gin-gonic/gin"
)

// setupSecurityMiddleware configures and applies security middleware to the router
func setupSecurityMiddleware(router *gin.Engine, cfg *config.Config, logger *slog.Logger) {
	// HSTS for production only
	stsSeconds := int64(0)
	if cfg.Env == config.EnvProduction {
		stsSeconds = int64(cfg.HSTSMaxAge)
	}

	router.Use(secure.New(secure.Config{
		STSSeconds:            stsSeconds,
		STSIncludeSubdomains:  true,
		FrameDeny:             true,
		ContentTypeNosniff:    true,
		ReferrerPolicy:        "no-referrer",
		ContentSecurityPolicy: config.BuildCSP(cfg.CSPMode),
	}))

	logger.Debug("Configured security middleware",
		"hsts_enabled", cfg.Env == config.EnvProduction,
		"csp_mode", cfg.CSPMode,
	)
}
