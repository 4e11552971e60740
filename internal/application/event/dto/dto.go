package dto

import (
	"time"

	"beyazmasa/internal/domain/event"
)

type EventDTO struct {
	ID          uint    `json:"id"`
	Title       string  `json:"title"`
	Description string  `json:"description"`
	Location    string  `json:"location"`
	StartTime   string  `json:"start_time"`
	EndTime     *string `json:"end_time,omitempty"`
	IsActive    bool    `json:"is_active"`
	CreatedAt   string  `json:"created_at"`
}

func FromEvent(e *event.Event) *EventDTO {
	d := &EventDTO{
		ID:          e.ID(),
		Title:       e.Title(),
		Description: e.Description(),
		Location:    e.Location(),
		StartTime:   e.StartTime().Format(time.RFC3339),
		IsActive:    e.IsActive(),
		CreatedAt:   e.CreatedAt().Format(time.RFC3339),
	}
	if e.EndTime() != nil {
		s := e.EndTime().Format(time.RFC3339)
		d.EndTime = &s
	}
	return d
}

func FromEvents(events []*event.Event) []*EventDTO {
	dtos := make([]*EventDTO, len(events))
	for i, e := range events {
		dtos[i] = FromEvent(e)
	}
	return dtos
}
