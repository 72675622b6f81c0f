package middleware

import (
	"log/slog"
	"slices"

	"room-booking/internal/pkg/config"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

// NewCORSMiddleware always exposes the request ID header so browser clients can
// quote it when reporting a failed booking.
func NewCORSMiddleware(cfg config.CORSConfig) gin.HandlerFunc {
	exposed := slices.Clone(cfg.ExposeHeaders)
	if !slices.Contains(exposed, requestIDHeader) {
		exposed = append(exposed, requestIDHeader)
	}

	slog.Debug("cors configured",
		"allow_origins", cfg.AllowOrigins,
		"allow_methods", cfg.AllowMethods,
		"expose_headers", exposed)

	return cors.New(cors.Config{
		AllowOrigins:     cfg.AllowOrigins,
		AllowMethods:     cfg.AllowMethods,
		AllowHeaders:     cfg.AllowHeaders,
		ExposeHeaders:    exposed,
		AllowCredentials: cfg.AllowCredentials,
		MaxAge:           cfg.MaxAge,
	})
}
