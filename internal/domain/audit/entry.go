// Package audit models the append-only trail of state-changing actions.
package audit

import (
	"fmt"
	"time"

	"github.com/google/uuid"
)

type ActionType string

const (
	ActionTicketCreate  ActionType = "TICKET_CREATE"
	ActionTicketUpdate  ActionType = "TICKET_UPDATE"
	ActionTicketResolve ActionType = "TICKET_RESOLVE"
	ActionTicketAssign  ActionType = "TICKET_ASSIGN"
	ActionUserCreate    ActionType = "USER_CREATE"
	ActionUserDelete    ActionType = "USER_DELETE"
)

func (a ActionType) String() string {
	return string(a)
}

// Entry is one immutable audit record. TicketID is the structured correlation
// to the ticket; the description still embeds "#<id>" so existing log text
// stays greppable.
type Entry struct {
	id          uint
	userID      uuid.UUID
	actionType  ActionType
	ticketID    *uint
	description string
	metadata    map[string]any
	createdAt   time.Time
}

func NewEntry(userID uuid.UUID, actionType ActionType, description string) (*Entry, error) {
	if userID == uuid.Nil {
		return nil, fmt.Errorf("actor user ID is required")
	}
	if len(actionType) == 0 {
		return nil, fmt.Errorf("action type is required")
	}
	if len(description) == 0 {
		return nil, fmt.Errorf("description is required")
	}

	return &Entry{
		userID:      userID,
		actionType:  actionType,
		description: description,
		metadata:    map[string]any{},
		createdAt:   time.Now(),
	}, nil
}

// NewTicketEntry creates an entry correlated to a ticket.
func NewTicketEntry(userID uuid.UUID, actionType ActionType, ticketID uint, description string) (*Entry, error) {
	e, err := NewEntry(userID, actionType, description)
	if err != nil {
		return nil, err
	}
	if ticketID == 0 {
		return nil, fmt.Errorf("ticket ID cannot be zero")
	}
	e.ticketID = &ticketID
	return e, nil
}

// ReconstructEntry rebuilds an entry from persistence.
func ReconstructEntry(
	id uint,
	userID uuid.UUID,
	actionType ActionType,
	ticketID *uint,
	description string,
	metadata map[string]any,
	createdAt time.Time,
) *Entry {
	if metadata == nil {
		metadata = map[string]any{}
	}
	return &Entry{
		id:          id,
		userID:      userID,
		actionType:  actionType,
		ticketID:    ticketID,
		description: description,
		metadata:    metadata,
		createdAt:   createdAt,
	}
}

func (e *Entry) ID() uint               { return e.id }
func (e *Entry) UserID() uuid.UUID      { return e.userID }
func (e *Entry) ActionType() ActionType { return e.actionType }
func (e *Entry) TicketID() *uint        { return e.ticketID }
func (e *Entry) Description() string    { return e.description }
func (e *Entry) CreatedAt() time.Time   { return e.createdAt }

func (e *Entry) Metadata() map[string]any {
	metaCopy := make(map[string]any, len(e.metadata))
	for k, v := range e.metadata {
		metaCopy[k] = v
	}
	return metaCopy
}

// WithMetadata attaches a structured detail to the entry before it is appended.
func (e *Entry) WithMetadata(key string, value any) *Entry {
	e.metadata[key] = value
	return e
}

func (e *Entry) SetID(id uint) error {
	if e.id != 0 {
		return fmt.Errorf("entry ID is already set")
	}
	if id == 0 {
		return fmt.Errorf("entry ID cannot be zero")
	}
	e.id = id
	return nil
}
