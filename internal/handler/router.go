package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"room-booking/internal/handler/api"
	"room-booking/internal/handler/httperr"
	"room-booking/internal/handler/middleware"
	"room-booking/internal/pkg/config"
)

type route struct {
	Method  string
	Path    string
	Handler gin.HandlerFunc
	Mw      []gin.HandlerFunc
}

func NewRouter(engine *gin.Engine, cfg config.Config, logger *middleware.Logger, reservationHandler *api.ReservationHandler) {
	setupMiddleware(engine, cfg, logger)
	setupRoutes(engine, reservationHandler)
}

func setupMiddleware(engine *gin.Engine, cfg config.Config, logger *middleware.Logger) {
	// Recovery must be first (outermost) to catch panics from all other middleware
	engine.Use(middleware.CustomRecovery())
	engine.Use(middleware.NewCORSMiddleware(cfg.CORS))
	engine.Use(logger.LoggingMiddleware())
	engine.Use(middleware.ErrorHandler())
}

func setupRoutes(engine *gin.Engine, reservationHandler *api.ReservationHandler) {
	engine.GET("/health", healthCheck)

	if gin.Mode() == gin.DebugMode {
		engine.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	}

	apiGroup := engine.Group("/api")
	{
		jsonBody := []gin.HandlerFunc{middleware.RequireJSON()}

		reservations := apiGroup.Group("/reservations")
		addRoutes(reservations, []route{
			{Method: http.MethodPost, Path: "", Handler: reservationHandler.Create, Mw: jsonBody},
			{Method: http.MethodGet, Path: "", Handler: reservationHandler.List},
			{Method: http.MethodGet, Path: "/search", Handler: reservationHandler.Search},
			{Method: http.MethodPost, Path: "/cancel", Handler: reservationHandler.Cancel, Mw: jsonBody},
		})
	}

	engine.HandleMethodNotAllowed = true
	engine.NoMethod(func(c *gin.Context) {
		httperr.Respond(c, http.StatusMethodNotAllowed, "Method not allowed")
	})
	engine.NoRoute(func(c *gin.Context) {
		httperr.Respond(c, http.StatusNotFound, "Route not found")
	})
}

// @Summary Health check
// @Description Check if the service is healthy
// @Tags health
// @Produce json
// @Success 200 {object} map[string]string
// @Router /health [get]
func healthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":  "ok",
		"message": "Service is healthy",
	})
}

func addRoutes(g *gin.RouterGroup, rs []route) {
	for _, r := range rs {
		handlers := append(append([]gin.HandlerFunc{}, r.Mw...), r.Handler)
		g.Handle(r.Method, r.Path, handlers...)
	}
}
