// Package event models municipal events with time-based activation.
package event

import (
	"fmt"
	"time"
)

type Event struct {
	id          uint
	title       string
	description string
	location    string
	startTime   time.Time
	endTime     *time.Time
	isActive    bool
	createdAt   time.Time
}

func NewEvent(title, description, location string, startTime time.Time, endTime *time.Time) (*Event, error) {
	if len(title) == 0 {
		return nil, fmt.Errorf("title is required")
	}
	if startTime.IsZero() {
		return nil, fmt.Errorf("start time is required")
	}
	if endTime != nil && endTime.Before(startTime) {
		return nil, fmt.Errorf("end time cannot be before start time")
	}

	return &Event{
		title:       title,
		description: description,
		location:    location,
		startTime:   startTime,
		endTime:     endTime,
		isActive:    true,
		createdAt:   time.Now(),
	}, nil
}

func ReconstructEvent(id uint, title, description, location string, startTime time.Time, endTime *time.Time, isActive bool, createdAt time.Time) (*Event, error) {
	if id == 0 {
		return nil, fmt.Errorf("event ID cannot be zero")
	}
	return &Event{
		id:          id,
		title:       title,
		description: description,
		location:    location,
		startTime:   startTime,
		endTime:     endTime,
		isActive:    isActive,
		createdAt:   createdAt,
	}, nil
}

func (e *Event) ID() uint             { return e.id }
func (e *Event) Title() string        { return e.title }
func (e *Event) Description() string  { return e.description }
func (e *Event) Location() string     { return e.location }
func (e *Event) StartTime() time.Time { return e.startTime }
func (e *Event) EndTime() *time.Time  { return e.endTime }
func (e *Event) IsActive() bool       { return e.isActive }
func (e *Event) CreatedAt() time.Time { return e.createdAt }

func (e *Event) SetID(id uint) error {
	if e.id != 0 {
		return fmt.Errorf("event ID is already set")
	}
	if id == 0 {
		return fmt.Errorf("event ID cannot be zero")
	}
	e.id = id
	return nil
}

func (e *Event) Update(title, description, location string, startTime time.Time, endTime *time.Time) error {
	if len(title) == 0 {
		return fmt.Errorf("title is required")
	}
	if endTime != nil && endTime.Before(startTime) {
		return fmt.Errorf("end time cannot be before start time")
	}
	e.title = title
	e.description = description
	e.location = location
	e.startTime = startTime
	e.endTime = endTime
	return nil
}

func (e *Event) Toggle() {
	e.isActive = !e.isActive
}

// IsPast reports whether the event has ended relative to now.
func (e *Event) IsPast(now time.Time) bool {
	return e.endTime != nil && e.endTime.Before(now)
}
