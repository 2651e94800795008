package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"healthsched/internal/handler/api"
	"healthsched/internal/handler/middleware"
	"healthsched/internal/pkg/config"
	"healthsched/internal/pkg/jwt"
)

type route struct {
	Method  string
	Path    string
	Handler gin.HandlerFunc
	Mw      []gin.HandlerFunc
}

func NewRouter(
	engine *gin.Engine,
	cfg config.Config,
	authHandler *api.AuthHandler,
	availabilityHandler *api.AvailabilityHandler,
	appointmentHandler *api.AppointmentHandler,
	authMiddleware *middleware.AuthMiddleware,
) {
	setupMiddleware(engine, cfg)
	setupRoutes(engine, authHandler, availabilityHandler, appointmentHandler, authMiddleware)
}

func setupMiddleware(engine *gin.Engine, cfg config.Config) {
	// Recovery must be first (outermost) to catch panics from all other middleware
	engine.Use(middleware.CustomRecovery())
	engine.Use(middleware.NewCORSMiddleware(cfg.CORS))
	engine.Use(middleware.LoggingMiddleware(cfg.Log))
	engine.Use(middleware.ErrorHandler())
}

func setupRoutes(
	engine *gin.Engine,
	authHandler *api.AuthHandler,
	availabilityHandler *api.AvailabilityHandler,
	appointmentHandler *api.AppointmentHandler,
	authMiddleware *middleware.AuthMiddleware,
) {
	engine.GET("/health", healthCheck)
	engine.GET("/metrics", gin.WrapH(promhttp.Handler()))

	if gin.Mode() == gin.DebugMode {
		engine.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	}

	apiGroup := engine.Group("/api")
	{
		auth := apiGroup.Group("/auth")
		{
			addRoutes(auth, []route{
				{Method: http.MethodPost, Path: "/providers/register", Handler: authHandler.RegisterProvider},
				{Method: http.MethodPost, Path: "/providers/login", Handler: authHandler.LoginProvider},
				{Method: http.MethodPost, Path: "/patients/register", Handler: authHandler.RegisterPatient},
				{Method: http.MethodPost, Path: "/patients/login", Handler: authHandler.LoginPatient},
			})
		}

		availability := apiGroup.Group("/availability")
		availability.Use(authMiddleware.RequireAuth(), authMiddleware.RequireRole(jwt.RoleProvider))
		{
			addRoutes(availability, []route{
				{Method: http.MethodPost, Path: "", Handler: availabilityHandler.CreateAvailability},
				{Method: http.MethodGet, Path: "/calendar", Handler: availabilityHandler.Calendar},
				{Method: http.MethodGet, Path: "/booked", Handler: availabilityHandler.BookedAppointments},
				{Method: http.MethodDelete, Path: "/slots/:id", Handler: availabilityHandler.DeleteSlot},
				{Method: http.MethodPatch, Path: "/slots/:id/status", Handler: availabilityHandler.UpdateSlotStatus},
			})
		}

		appointments := apiGroup.Group("/appointments")
		appointments.Use(authMiddleware.RequireAuth())
		{
			addRoutes(appointments, []route{
				{Method: http.MethodGet, Path: "/search", Handler: appointmentHandler.Search},
				{Method: http.MethodGet, Path: "/slots/:id", Handler: appointmentHandler.GetSlot},
				{Method: http.MethodGet, Path: "/booked", Handler: appointmentHandler.BookedAppointments},
				{
					Method:  http.MethodPost,
					Path:    "/slots/:id/book",
					Handler: appointmentHandler.BookSlot,
					Mw:      []gin.HandlerFunc{authMiddleware.RequireRole(jwt.RolePatient)},
				},
			})
		}
	}
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
		h := r.Handler
		if len(r.Mw) > 0 {
			h = chainHandlers(append(r.Mw, r.Handler)...)
		}
		switch r.Method {
		case http.MethodGet:
			g.GET(r.Path, h)
		case http.MethodPost:
			g.POST(r.Path, h)
		case http.MethodPut:
			g.PUT(r.Path, h)
		case http.MethodPatch:
			g.PATCH(r.Path, h)
		case http.MethodDelete:
			g.DELETE(r.Path, h)
		default:
			g.Any(r.Path, h)
		}
	}
}

func chainHandlers(hs ...gin.HandlerFunc) gin.HandlerFunc {
	return func(c *gin.Context) {
		for _, h := range hs {
			h(c)
			if c.IsAborted() {
				return
			}
		}
	}
}
