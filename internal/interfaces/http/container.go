// Package http wires the application together and serves the REST API.
package http

import (
	"context"
	"fmt"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"

	dashboardUsecases "beyazmasa/internal/application/dashboard/usecases"
	eventUsecases "beyazmasa/internal/application/event/usecases"
	"beyazmasa/internal/application/identity"
	noteUsecases "beyazmasa/internal/application/note/usecases"
	reportsUsecases "beyazmasa/internal/application/reports/usecases"
	staffUsecases "beyazmasa/internal/application/staff/usecases"
	ticketUsecases "beyazmasa/internal/application/ticket/usecases"
	"beyazmasa/internal/domain/ticket"
	"beyazmasa/internal/infrastructure/auth"
	"beyazmasa/internal/infrastructure/config"
	"beyazmasa/internal/infrastructure/email"
	infraidentity "beyazmasa/internal/infrastructure/identity"
	"beyazmasa/internal/infrastructure/permission"
	"beyazmasa/internal/infrastructure/ratelimit"
	"beyazmasa/internal/infrastructure/realtime"
	"beyazmasa/internal/infrastructure/repository"
	"beyazmasa/internal/infrastructure/sanitize"
	"beyazmasa/internal/infrastructure/scheduler"
	"beyazmasa/internal/infrastructure/storage"
	"beyazmasa/internal/infrastructure/webhook"
	"beyazmasa/internal/interfaces/http/handlers"
	publicHandlers "beyazmasa/internal/interfaces/http/handlers/public"
	ticketHandlers "beyazmasa/internal/interfaces/http/handlers/ticket"
	"beyazmasa/internal/shared/logger"
)

// Container wires repositories, use cases, handlers and background services
// and owns their lifecycle.
type Container struct {
	engine *gin.Engine
	cfg    *config.Config
	db     *gorm.DB
	redis  *redis.Client
	log    logger.Interface

	hub            *realtime.TicketHub
	eventScheduler *scheduler.EventArchiveScheduler

	ticketHandler    *ticketHandlers.TicketHandler
	publicHandler    *publicHandlers.PublicHandler
	authHandler      *handlers.AuthHandler
	staffHandler     *handlers.StaffHandler
	eventHandler     *handlers.EventHandler
	noteHandler      *handlers.NoteHandler
	dashboardHandler *handlers.DashboardHandler
	reportsHandler   *handlers.ReportsHandler
	feedHandler      *handlers.FeedHandler
	evidenceHandler  *handlers.EvidenceHandler
}

func NewContainer(cfg *config.Config, db *gorm.DB, log logger.Interface) (*Container, error) {
	c := &Container{
		cfg: cfg,
		db:  db,
		log: log,
	}

	c.redis = redis.NewClient(&redis.Options{
		Addr:     cfg.Redis.GetAddr(),
		Password: cfg.Redis.Password,
		DB:       cfg.Redis.DB,
	})

	// Repositories.
	ticketRepo := repository.NewTicketRepository(db)
	staffRepo := repository.NewStaffRepository(db)
	auditRepo := repository.NewAuditLogRepository(db)
	eventRepo := repository.NewEventRepository(db)
	noteRepo := repository.NewNoteRepository(db)

	// Infrastructure services.
	policy := ticket.NewAccessPolicy()
	hasher := auth.NewBcryptPasswordHasher(cfg.Auth.Password.BcryptCost)
	jwtService := auth.NewJWTService(cfg.Auth.JWT.Secret, cfg.Auth.JWT.AccessExpMinutes, cfg.Auth.JWT.RefreshExpDays)
	provider := infraidentity.NewProvider(db, hasher)
	resolver := identity.NewResolver(staffRepo, log)
	sanitizer := sanitize.NewStrictSanitizer()
	c.hub = realtime.NewTicketHub(log)

	// Both the notifier and the mailer degrade to disabled when not
	// configured; the use cases treat a nil port as a no-op.
	var notifier ticketUsecases.CitizenNotifier
	if n := webhook.NewNotifier(cfg.Webhook, log); n != nil {
		notifier = n
	} else {
		notifier = noopNotifier{log: log}
	}

	var mailer staffUsecases.CredentialMailer
	if m := email.NewSMTPCredentialMailer(cfg.Mail); m != nil {
		mailer = m
	} else {
		mailer = noopMailer{log: log}
	}

	// Keep the interface nil when storage is disabled; a typed nil pointer
	// would defeat the handler's nil check.
	var evidenceStore storage.EvidenceStore
	if minioStore, err := storage.NewMinioEvidenceStore(cfg.Storage); err != nil {
		return nil, fmt.Errorf("failed to init evidence storage: %w", err)
	} else if minioStore != nil {
		evidenceStore = minioStore
	}

	enforcer, err := permission.NewEnforcer(db, cfg.Auth.CasbinModelPath, log)
	if err != nil {
		return nil, fmt.Errorf("failed to init permission enforcer: %w", err)
	}
	if err := permission.SeedDefaultPolicies(enforcer.Raw(), log); err != nil {
		return nil, fmt.Errorf("failed to seed permission policies: %w", err)
	}

	limiter := ratelimit.NewRedisRateLimiter(c.redis)

	// Ticket use cases.
	listTicketsUC := ticketUsecases.NewListTicketsUseCase(ticketRepo, policy, log)
	getTicketUC := ticketUsecases.NewGetTicketUseCase(ticketRepo, auditRepo, staffRepo, policy, log)
	createTicketUC := ticketUsecases.NewCreateTicketUseCase(ticketRepo, auditRepo, policy, c.hub, log)
	startTicketUC := ticketUsecases.NewStartTicketUseCase(ticketRepo, auditRepo, policy, notifier, log)
	resolveTicketUC := ticketUsecases.NewResolveTicketUseCase(ticketRepo, auditRepo, policy, notifier, log)
	attachEvidenceUC := ticketUsecases.NewAttachEvidenceUseCase(ticketRepo, auditRepo, policy, log)
	assignTicketUC := ticketUsecases.NewAssignTicketUseCase(ticketRepo, auditRepo, staffRepo, policy, log)
	cancelTicketUC := ticketUsecases.NewCancelTicketUseCase(ticketRepo, auditRepo, policy, log)
	deleteTicketUC := ticketUsecases.NewDeleteTicketUseCase(ticketRepo, auditRepo, policy, log)
	listAssignedUC := ticketUsecases.NewListAssignedUseCase(ticketRepo, log)
	submitPublicUC := ticketUsecases.NewSubmitPublicTicketUseCase(ticketRepo, sanitizer, c.hub, log)
	trackPublicUC := ticketUsecases.NewTrackPublicTicketUseCase(ticketRepo, log)

	// Staff use cases.
	createStaffUC := staffUsecases.NewCreateStaffUseCase(provider, staffRepo, auditRepo, mailer, log)
	deleteStaffUC := staffUsecases.NewDeleteStaffUseCase(provider, staffRepo, auditRepo, log)
	listStaffUC := staffUsecases.NewListStaffUseCase(staffRepo, log)
	profileStatsUC := staffUsecases.NewProfileStatsUseCase(ticketRepo, log)

	// Event, note, dashboard and reports use cases.
	listEventsUC := eventUsecases.NewListEventsUseCase(eventRepo, log)
	addEventUC := eventUsecases.NewAddEventUseCase(eventRepo, log)
	updateEventUC := eventUsecases.NewUpdateEventUseCase(eventRepo, log)
	toggleEventUC := eventUsecases.NewToggleEventUseCase(eventRepo, log)
	listNotesUC := noteUsecases.NewListNotesUseCase(noteRepo, log)
	addNoteUC := noteUsecases.NewAddNoteUseCase(noteRepo, log)
	deleteNoteUC := noteUsecases.NewDeleteNoteUseCase(noteRepo, log)
	getDashboardUC := dashboardUsecases.NewGetDashboardUseCase(ticketRepo, auditRepo, eventRepo, staffRepo, policy, log)
	getReportsUC := reportsUsecases.NewGetReportsUseCase(ticketRepo, log)
	getHeatmapUC := reportsUsecases.NewGetHeatmapUseCase(ticketRepo, log)

	// Handlers.
	c.ticketHandler = ticketHandlers.NewTicketHandler(
		listTicketsUC, getTicketUC, createTicketUC, startTicketUC, resolveTicketUC,
		attachEvidenceUC, assignTicketUC, cancelTicketUC, deleteTicketUC, listAssignedUC, log)
	c.publicHandler = publicHandlers.NewPublicHandler(submitPublicUC, trackPublicUC, log)
	c.authHandler = handlers.NewAuthHandler(provider, jwtService, resolver, log)
	c.staffHandler = handlers.NewStaffHandler(createStaffUC, deleteStaffUC, listStaffUC, profileStatsUC, log)
	c.eventHandler = handlers.NewEventHandler(listEventsUC, addEventUC, updateEventUC, toggleEventUC, log)
	c.noteHandler = handlers.NewNoteHandler(listNotesUC, addNoteUC, deleteNoteUC, log)
	c.dashboardHandler = handlers.NewDashboardHandler(getDashboardUC, log)
	c.reportsHandler = handlers.NewReportsHandler(getReportsUC, getHeatmapUC, log)
	c.feedHandler = handlers.NewFeedHandler(c.hub, cfg.Server.AllowedOrigins, log)
	c.evidenceHandler = handlers.NewEvidenceHandler(evidenceStore, log)

	// Background services.
	c.eventScheduler = scheduler.NewEventArchiveScheduler(eventRepo, log)

	c.engine = c.buildRouter(jwtService, resolver, enforcer, limiter)
	return c, nil
}

// Engine returns the configured gin engine.
func (c *Container) Engine() *gin.Engine {
	return c.engine
}

// Start launches the background services.
func (c *Container) Start(ctx context.Context) {
	c.eventScheduler.Start(ctx)
}

// Shutdown stops background services and closes shared clients.
func (c *Container) Shutdown() {
	c.eventScheduler.Stop()
	if err := c.redis.Close(); err != nil {
		c.log.Warnw("failed to close redis client", "error", err)
	}
}
