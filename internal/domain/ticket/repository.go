package ticket

import (
	"context"
	"time"

	"github.com/google/uuid"
)

// Filter carries list-query parameters. Scope is mandatory: the repository
// applies it before search and status filters so unauthorized rows never
// enter the result set or the count.
type Filter struct {
	Scope     ViewScope
	Search    string
	Status    *Status
	SortBy    string
	SortOrder string
	Page      int
	PageSize  int
}

type Repository interface {
	Save(ctx context.Context, t *Ticket) error
	Update(ctx context.Context, t *Ticket) error
	Delete(ctx context.Context, id uint) error
	GetByID(ctx context.Context, id uint) (*Ticket, error)
	// GetByIDAndPhone backs the public status lookup. Both values must match
	// exactly; a mismatch on either is indistinguishable from absence.
	GetByIDAndPhone(ctx context.Context, id uint, phone string) (*Ticket, error)
	List(ctx context.Context, filter Filter) ([]*Ticket, int64, error)
	// ListAssigned returns the actor's active task list, urgent first then oldest first.
	ListAssigned(ctx context.Context, assigneeID uuid.UUID) ([]*Ticket, error)
	CountAssigned(ctx context.Context, assigneeID uuid.UUID, statuses []Status) (int64, error)
	CountScoped(ctx context.Context, scope ViewScope, statuses []Status) (int64, error)
	// ListCreatedSince feeds dashboard series and reports; scoped like List.
	ListCreatedSince(ctx context.Context, scope ViewScope, since time.Time) ([]*Ticket, error)
	ListResolvedSince(ctx context.Context, since time.Time) ([]*Ticket, error)
	// ListGeolocated returns the most recent tickets that carry coordinates.
	ListGeolocated(ctx context.Context, limit int) ([]*Ticket, error)
}
