package repository

import (
	"context"
	"fmt"
	"strings"
	"time"

	"gorm.io/gorm"

	"beyazmasa/internal/domain/event"
	"beyazmasa/internal/infrastructure/persistence/mappers"
	"beyazmasa/internal/infrastructure/persistence/models"
	db "beyazmasa/internal/shared/db"
	"beyazmasa/internal/shared/errors"
)

type EventRepository struct {
	db     *gorm.DB
	mapper mappers.EventMapper
}

func NewEventRepository(db *gorm.DB) *EventRepository {
	return &EventRepository{
		db:     db,
		mapper: mappers.NewEventMapper(),
	}
}

func (r *EventRepository) Save(ctx context.Context, e *event.Event) error {
	model := r.mapper.ToModel(e)
	tx := db.GetTxFromContext(ctx, r.db)

	if err := tx.Create(model).Error; err != nil {
		return fmt.Errorf("failed to save event: %w", err)
	}

	if e.ID() == 0 {
		if err := e.SetID(model.ID); err != nil {
			return err
		}
	}
	return nil
}

func (r *EventRepository) Update(ctx context.Context, e *event.Event) error {
	model := r.mapper.ToModel(e)
	tx := db.GetTxFromContext(ctx, r.db)

	result := tx.
		Model(&models.EventModel{}).
		Where("id = ?", model.ID).
		Select("Title", "Description", "Location", "StartTime", "EndTime", "IsActive").
		Updates(model)
	if result.Error != nil {
		return fmt.Errorf("failed to update event: %w", result.Error)
	}
	return nil
}

func (r *EventRepository) GetByID(ctx context.Context, id uint) (*event.Event, error) {
	var model models.EventModel
	tx := db.GetTxFromContext(ctx, r.db)

	if err := tx.First(&model, id).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, errors.NewNotFoundError("event not found")
		}
		return nil, fmt.Errorf("failed to find event: %w", err)
	}
	return r.mapper.ToDomain(&model)
}

func (r *EventRepository) List(ctx context.Context, search string) ([]*event.Event, error) {
	tx := db.GetTxFromContext(ctx, r.db)

	query := tx.Order("start_time DESC")
	if search != "" {
		query = query.Where("LOWER(title) LIKE ?", "%"+strings.ToLower(search)+"%")
	}

	var modelList []models.EventModel
	if err := query.Find(&modelList).Error; err != nil {
		return nil, fmt.Errorf("failed to list events: %w", err)
	}
	return r.toDomainList(modelList)
}

func (r *EventRepository) ArchivePast(ctx context.Context, now time.Time) error {
	tx := db.GetTxFromContext(ctx, r.db)

	if err := tx.
		Model(&models.EventModel{}).
		Where("is_active = ? AND end_time IS NOT NULL AND end_time < ?", true, now).
		Update("is_active", false).Error; err != nil {
		return fmt.Errorf("failed to archive past events: %w", err)
	}
	return nil
}

func (r *EventRepository) Count(ctx context.Context) (int64, error) {
	return r.count(ctx, func(q *gorm.DB) *gorm.DB { return q })
}

func (r *EventRepository) CountActive(ctx context.Context) (int64, error) {
	return r.count(ctx, func(q *gorm.DB) *gorm.DB {
		return q.Where("is_active = ?", true)
	})
}

func (r *EventRepository) CountPast(ctx context.Context, now time.Time) (int64, error) {
	return r.count(ctx, func(q *gorm.DB) *gorm.DB {
		return q.Where("end_time IS NOT NULL AND end_time < ?", now)
	})
}

func (r *EventRepository) count(ctx context.Context, scope func(*gorm.DB) *gorm.DB) (int64, error) {
	tx := db.GetTxFromContext(ctx, r.db)

	var count int64
	if err := scope(tx.Model(&models.EventModel{})).Count(&count).Error; err != nil {
		return 0, fmt.Errorf("failed to count events: %w", err)
	}
	return count, nil
}

func (r *EventRepository) ListUpcoming(ctx context.Context, now time.Time, limit int) ([]*event.Event, error) {
	tx := db.GetTxFromContext(ctx, r.db)

	query := tx.
		Where("is_active = ? AND start_time > ?", true, now).
		Order("start_time ASC")
	if limit > 0 {
		query = query.Limit(limit)
	}

	var modelList []models.EventModel
	if err := query.Find(&modelList).Error; err != nil {
		return nil, fmt.Errorf("failed to list upcoming events: %w", err)
	}
	return r.toDomainList(modelList)
}

func (r *EventRepository) toDomainList(modelList []models.EventModel) ([]*event.Event, error) {
	events := make([]*event.Event, 0, len(modelList))
	for i := range modelList {
		e, err := r.mapper.ToDomain(&modelList[i])
		if err != nil {
			return nil, err
		}
		events = append(events, e)
	}
	return events, nil
}
