package http

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"beyazmasa/internal/application/identity"
	"beyazmasa/internal/infrastructure/auth"
	"beyazmasa/internal/infrastructure/permission"
	"beyazmasa/internal/infrastructure/ratelimit"
	"beyazmasa/internal/interfaces/http/middleware"
)

func (c *Container) buildRouter(
	jwtService *auth.JWTService,
	resolver *identity.Resolver,
	enforcer *permission.Enforcer,
	limiter ratelimit.RateLimiter,
) *gin.Engine {
	if c.cfg.Server.Mode == "release" {
		gin.SetMode(gin.ReleaseMode)
	}

	engine := gin.New()
	engine.Use(middleware.Recovery())
	engine.Use(middleware.Logger(c.log))
	engine.Use(middleware.CORS(c.cfg.Server.AllowedOrigins))
	engine.Use(middleware.SecurityHeaders())

	engine.GET("/health", func(ctx *gin.Context) {
		ctx.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	authMW := middleware.NewAuthMiddleware(jwtService, c.log)
	permMW := middleware.NewPermissionMiddleware(enforcer, c.log)

	v1 := engine.Group("/api/v1")

	// Citizen endpoints: no session, throttled per IP.
	public := v1.Group("/public")
	public.Use(middleware.PublicRateLimit(
		limiter,
		c.cfg.Public.RateLimit,
		time.Duration(c.cfg.Public.RateWindowSeconds)*time.Second,
		c.log,
	))
	{
		public.POST("/tickets", c.publicHandler.SubmitTicket)
		public.GET("/tickets/:id", c.publicHandler.TrackTicket)
	}

	authGroup := v1.Group("/auth")
	{
		authGroup.POST("/login", c.authHandler.Login)
		authGroup.POST("/refresh", c.authHandler.Refresh)
		authGroup.POST("/logout", c.authHandler.Logout)
		authGroup.GET("/me", authMW.RequireAuth(), middleware.ResolveActor(resolver), c.authHandler.Me)
	}

	// Everything below requires a session and a staff profile.
	api := v1.Group("")
	api.Use(authMW.RequireAuth(), middleware.ResolveActor(resolver))

	tickets := api.Group("/tickets")
	{
		tickets.GET("", permMW.RequirePermission("tickets", "read"), c.ticketHandler.ListTickets)
		tickets.GET("/assigned", permMW.RequirePermission("tickets", "read"), c.ticketHandler.ListAssigned)
		tickets.GET("/:id", permMW.RequirePermission("tickets", "read"), c.ticketHandler.GetTicket)
		tickets.POST("", permMW.RequirePermission("tickets", "create"), c.ticketHandler.CreateTicket)
		tickets.POST("/:id/start", permMW.RequirePermission("tickets", "update"), c.ticketHandler.StartTicket)
		tickets.POST("/:id/resolve", permMW.RequirePermission("tickets", "update"), c.ticketHandler.ResolveTicket)
		tickets.POST("/:id/evidence", permMW.RequirePermission("tickets", "update"), c.ticketHandler.AttachEvidence)
		tickets.POST("/:id/evidence/upload", permMW.RequirePermission("tickets", "update"), c.evidenceHandler.Upload)
		tickets.POST("/:id/assign", permMW.RequirePermission("tickets", "assign"), c.ticketHandler.AssignTicket)
		tickets.POST("/:id/cancel", permMW.RequirePermission("tickets", "cancel"), c.ticketHandler.CancelTicket)
		tickets.DELETE("/:id", permMW.RequirePermission("tickets", "delete"), c.ticketHandler.DeleteTicket)
	}

	staffGroup := api.Group("/staff")
	{
		staffGroup.GET("", permMW.RequirePermission("staff", "read"), c.staffHandler.ListStaff)
		staffGroup.GET("/me/stats", permMW.RequirePermission("staff", "read"), c.staffHandler.ProfileStats)
		staffGroup.POST("", permMW.RequirePermission("staff", "create"), c.staffHandler.CreateStaff)
		staffGroup.DELETE("/:id", permMW.RequirePermission("staff", "delete"), c.staffHandler.DeleteStaff)
	}

	events := api.Group("/events")
	{
		events.GET("", permMW.RequirePermission("events", "read"), c.eventHandler.ListEvents)
		events.POST("", permMW.RequirePermission("events", "manage"), c.eventHandler.AddEvent)
		events.PUT("/:id", permMW.RequirePermission("events", "manage"), c.eventHandler.UpdateEvent)
		events.POST("/:id/toggle", permMW.RequirePermission("events", "manage"), c.eventHandler.ToggleEvent)
	}

	notes := api.Group("/notes")
	{
		notes.GET("", permMW.RequirePermission("notes", "read"), c.noteHandler.ListNotes)
		notes.POST("", permMW.RequirePermission("notes", "create"), c.noteHandler.AddNote)
		notes.DELETE("/:id", permMW.RequirePermission("notes", "read"), c.noteHandler.DeleteNote)
	}

	api.GET("/dashboard", permMW.RequirePermission("dashboard", "read"), c.dashboardHandler.GetDashboard)
	api.GET("/reports", permMW.RequirePermission("reports", "read"), c.reportsHandler.GetReports)
	api.GET("/reports/heatmap", permMW.RequirePermission("reports", "read"), c.reportsHandler.GetHeatmap)

	api.GET("/feed", c.feedHandler.Feed)

	return engine
}
