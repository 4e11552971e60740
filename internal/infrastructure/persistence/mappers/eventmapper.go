package mappers

import (
	"beyazmasa/internal/domain/event"
	"beyazmasa/internal/infrastructure/persistence/models"
)

// EventMapper handles the conversion between Event domain entities and persistence models.
type EventMapper interface {
	ToModel(e *event.Event) *models.EventModel
	ToDomain(model *models.EventModel) (*event.Event, error)
}

type EventMapperImpl struct{}

func NewEventMapper() EventMapper {
	return &EventMapperImpl{}
}

func (m *EventMapperImpl) ToModel(e *event.Event) *models.EventModel {
	return &models.EventModel{
		ID:          e.ID(),
		Title:       e.Title(),
		Description: e.Description(),
		Location:    e.Location(),
		StartTime:   e.StartTime(),
		EndTime:     e.EndTime(),
		IsActive:    e.IsActive(),
		CreatedAt:   e.CreatedAt(),
	}
}

func (m *EventMapperImpl) ToDomain(model *models.EventModel) (*event.Event, error) {
	return event.ReconstructEvent(
		model.ID,
		model.Title,
		model.Description,
		model.Location,
		model.StartTime,
		model.EndTime,
		model.IsActive,
		model.CreatedAt,
	)
}
