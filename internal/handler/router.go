package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"github.com/aljonb/sched/internal/domain/user"
	"github.com/aljonb/sched/internal/handler/api"
	"github.com/aljonb/sched/internal/handler/middleware"
	"github.com/aljonb/sched/internal/pkg/config"
)

type route struct {
	Method  string
	Path    string
	Handler gin.HandlerFunc
	Mw      []gin.HandlerFunc
}

// Handlers groups every HTTP handler for the router.
type Handlers struct {
	Auth             *api.AuthHandler
	Business         *api.BusinessHandler
	Schedule         *api.ScheduleHandler
	Availability     *api.AvailabilityHandler
	Booking          *api.BookingHandler
	OwnerAppointment *api.OwnerAppointmentHandler
	BlockedSlot      *api.BlockedSlotHandler
	Health           *api.HealthHandler
}

func NewRouter(engine *gin.Engine, cfg config.Config, h Handlers, authMiddleware *middleware.AuthMiddleware, limiter middleware.RateLimiter) {
	setupMiddleware(engine, cfg)
	setupRoutes(engine, h, authMiddleware, middleware.RateLimit(limiter, cfg.RateLimit.FailOpen))
}

func setupMiddleware(engine *gin.Engine, cfg config.Config) {
	// Recovery must be first (outermost) to catch panics from all other middleware
	engine.Use(middleware.CustomRecovery())
	engine.Use(middleware.NewCORSMiddleware(cfg.CORS))
	engine.Use(middleware.LoggingMiddleware(nil, cfg.Log))
	engine.Use(middleware.ErrorHandler())
}

func setupRoutes(engine *gin.Engine, h Handlers, authMiddleware *middleware.AuthMiddleware, rateLimit gin.HandlerFunc) {
	engine.GET("/health", h.Health.Health)
	engine.GET("/ready", h.Health.Ready)

	if gin.Mode() == gin.DebugMode {
		engine.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	}

	apiGroup := engine.Group("/api")
	{
		auth := apiGroup.Group("/auth")
		{
			addRoutes(auth, []route{
				{Method: http.MethodPost, Path: "/login", Handler: h.Auth.Login, Mw: []gin.HandlerFunc{rateLimit}},
				{Method: http.MethodPost, Path: "/register", Handler: h.Auth.Register, Mw: []gin.HandlerFunc{rateLimit}},
				{Method: http.MethodPost, Path: "/refresh", Handler: h.Auth.Refresh},
			})

			authRequired := auth.Group("")
			authRequired.Use(authMiddleware.RequireAuth())
			addRoutes(authRequired, []route{
				{Method: http.MethodPost, Path: "/logout", Handler: h.Auth.Logout},
				{Method: http.MethodGet, Path: "/me", Handler: h.Auth.Me},
			})
		}

		businesses := apiGroup.Group("/businesses")
		{
			addRoutes(businesses, []route{
				{Method: http.MethodGet, Path: "/:id", Handler: h.Business.Get},
				{Method: http.MethodGet, Path: "/:id/schedule", Handler: h.Schedule.Get},
				{Method: http.MethodGet, Path: "/:id/slots", Handler: h.Availability.List},
				{Method: http.MethodPost, Path: "/:id/appointments", Handler: h.Booking.Create, Mw: []gin.HandlerFunc{rateLimit}},
			})
		}

		appointments := apiGroup.Group("/appointments")
		{
			addRoutes(appointments, []route{
				{Method: http.MethodGet, Path: "/:token", Handler: h.Booking.GetByToken},
				{Method: http.MethodPost, Path: "/:token/cancel", Handler: h.Booking.Cancel, Mw: []gin.HandlerFunc{rateLimit}},
				{Method: http.MethodGet, Path: "/:token/calendar.ics", Handler: h.Booking.Calendar},
			})
		}

		owner := apiGroup.Group("/owner/businesses")
		owner.Use(authMiddleware.RequireAuth(), authMiddleware.RequireRole(user.RoleOwner, user.RoleAdmin))
		{
			addRoutes(owner, []route{
				{Method: http.MethodPost, Path: "", Handler: h.Business.Create},
				{Method: http.MethodGet, Path: "", Handler: h.Business.ListOwned},
				{Method: http.MethodPut, Path: "/:id/schedule", Handler: h.Schedule.Upsert},
				{Method: http.MethodGet, Path: "/:id/appointments", Handler: h.OwnerAppointment.List},
				{Method: http.MethodGet, Path: "/:id/appointments/export", Handler: h.OwnerAppointment.Export},
				{Method: http.MethodPatch, Path: "/:id/appointments/:appointmentId/status", Handler: h.OwnerAppointment.ChangeStatus},
				{Method: http.MethodGet, Path: "/:id/blocked-slots", Handler: h.BlockedSlot.List},
				{Method: http.MethodPost, Path: "/:id/blocked-slots", Handler: h.BlockedSlot.Create},
				{Method: http.MethodDelete, Path: "/:id/blocked-slots/:blockId", Handler: h.BlockedSlot.Delete},
			})
		}
	}
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
