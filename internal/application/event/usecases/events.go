// Package usecases implements the event operations: list with lazy archiving,
// create, update and activation toggle. Writes are gated to admins and the
// culture department.
package usecases

import (
	"context"
	"fmt"
	"time"

	"beyazmasa/internal/application/event/dto"
	"beyazmasa/internal/domain/event"
	"beyazmasa/internal/domain/staff"
	"beyazmasa/internal/shared/errors"
	"beyazmasa/internal/shared/logger"
)

// ListEventsQuery represents the input for the event listing.
type ListEventsQuery struct {
	Actor  staff.Actor
	Search string
}

// AddEventCommand represents the input for creating an event.
type AddEventCommand struct {
	Actor       staff.Actor
	Title       string
	Description string
	Location    string
	StartTime   time.Time
	EndTime     *time.Time
}

// UpdateEventCommand represents the input for editing an event.
type UpdateEventCommand struct {
	Actor       staff.Actor
	EventID     uint
	Title       string
	Description string
	Location    string
	StartTime   time.Time
	EndTime     *time.Time
}

// ToggleEventCommand represents the input for flipping an event's active flag.
type ToggleEventCommand struct {
	Actor   staff.Actor
	EventID uint
}

type ListEventsExecutor interface {
	Execute(ctx context.Context, query ListEventsQuery) ([]*dto.EventDTO, error)
}

type AddEventExecutor interface {
	Execute(ctx context.Context, cmd AddEventCommand) (*dto.EventDTO, error)
}

type UpdateEventExecutor interface {
	Execute(ctx context.Context, cmd UpdateEventCommand) (*dto.EventDTO, error)
}

type ToggleEventExecutor interface {
	Execute(ctx context.Context, cmd ToggleEventCommand) (*dto.EventDTO, error)
}

// ListEventsUseCase lists events, archiving ended ones first so the listing
// never shows a past event as active.
type ListEventsUseCase struct {
	eventRepo event.Repository
	now       func() time.Time
	logger    logger.Interface
}

func NewListEventsUseCase(eventRepo event.Repository, logger logger.Interface) *ListEventsUseCase {
	return &ListEventsUseCase{eventRepo: eventRepo, now: time.Now, logger: logger}
}

func (uc *ListEventsUseCase) Execute(ctx context.Context, query ListEventsQuery) ([]*dto.EventDTO, error) {
	if err := uc.eventRepo.ArchivePast(ctx, uc.now()); err != nil {
		// Archiving is housekeeping; a failed sweep should not block reads.
		uc.logger.Warnw("failed to archive past events", "error", err)
	}

	events, err := uc.eventRepo.List(ctx, query.Search)
	if err != nil {
		uc.logger.Errorw("failed to list events", "error", err)
		return nil, fmt.Errorf("failed to list events: %w", err)
	}
	return dto.FromEvents(events), nil
}

type AddEventUseCase struct {
	eventRepo event.Repository
	logger    logger.Interface
}

func NewAddEventUseCase(eventRepo event.Repository, logger logger.Interface) *AddEventUseCase {
	return &AddEventUseCase{eventRepo: eventRepo, logger: logger}
}

func (uc *AddEventUseCase) Execute(ctx context.Context, cmd AddEventCommand) (*dto.EventDTO, error) {
	if !cmd.Actor.CanManageEvents() {
		return nil, errors.NewForbiddenError("etkinlik yönetimi yetkiniz yok")
	}

	e, err := event.NewEvent(cmd.Title, cmd.Description, cmd.Location, cmd.StartTime, cmd.EndTime)
	if err != nil {
		return nil, errors.NewValidationError(err.Error())
	}

	if err := uc.eventRepo.Save(ctx, e); err != nil {
		uc.logger.Errorw("failed to save event", "error", err)
		return nil, fmt.Errorf("failed to save event: %w", err)
	}

	uc.logger.Infow("event created", "event_id", e.ID(), "user_id", cmd.Actor.UserID)
	return dto.FromEvent(e), nil
}

type UpdateEventUseCase struct {
	eventRepo event.Repository
	logger    logger.Interface
}

func NewUpdateEventUseCase(eventRepo event.Repository, logger logger.Interface) *UpdateEventUseCase {
	return &UpdateEventUseCase{eventRepo: eventRepo, logger: logger}
}

func (uc *UpdateEventUseCase) Execute(ctx context.Context, cmd UpdateEventCommand) (*dto.EventDTO, error) {
	if !cmd.Actor.CanManageEvents() {
		return nil, errors.NewForbiddenError("etkinlik yönetimi yetkiniz yok")
	}
	if cmd.EventID == 0 {
		return nil, errors.NewValidationError("event ID is required")
	}

	e, err := uc.eventRepo.GetByID(ctx, cmd.EventID)
	if err != nil {
		if errors.IsNotFoundError(err) {
			return nil, err
		}
		uc.logger.Errorw("failed to get event", "error", err, "event_id", cmd.EventID)
		return nil, fmt.Errorf("failed to get event: %w", err)
	}

	if err := e.Update(cmd.Title, cmd.Description, cmd.Location, cmd.StartTime, cmd.EndTime); err != nil {
		return nil, errors.NewValidationError(err.Error())
	}

	if err := uc.eventRepo.Update(ctx, e); err != nil {
		uc.logger.Errorw("failed to update event", "error", err, "event_id", cmd.EventID)
		return nil, fmt.Errorf("failed to update event: %w", err)
	}

	uc.logger.Infow("event updated", "event_id", e.ID(), "user_id", cmd.Actor.UserID)
	return dto.FromEvent(e), nil
}

type ToggleEventUseCase struct {
	eventRepo event.Repository
	logger    logger.Interface
}

func NewToggleEventUseCase(eventRepo event.Repository, logger logger.Interface) *ToggleEventUseCase {
	return &ToggleEventUseCase{eventRepo: eventRepo, logger: logger}
}

func (uc *ToggleEventUseCase) Execute(ctx context.Context, cmd ToggleEventCommand) (*dto.EventDTO, error) {
	if !cmd.Actor.CanManageEvents() {
		return nil, errors.NewForbiddenError("etkinlik yönetimi yetkiniz yok")
	}
	if cmd.EventID == 0 {
		return nil, errors.NewValidationError("event ID is required")
	}

	e, err := uc.eventRepo.GetByID(ctx, cmd.EventID)
	if err != nil {
		if errors.IsNotFoundError(err) {
			return nil, err
		}
		uc.logger.Errorw("failed to get event", "error", err, "event_id", cmd.EventID)
		return nil, fmt.Errorf("failed to get event: %w", err)
	}

	e.Toggle()
	if err := uc.eventRepo.Update(ctx, e); err != nil {
		uc.logger.Errorw("failed to update event", "error", err, "event_id", cmd.EventID)
		return nil, fmt.Errorf("failed to update event: %w", err)
	}

	uc.logger.Infow("event toggled", "event_id", e.ID(), "is_active", e.IsActive(), "user_id", cmd.Actor.UserID)
	return dto.FromEvent(e), nil
}
