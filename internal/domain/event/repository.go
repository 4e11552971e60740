package event

import (
	"context"
	"time"
)

type Repository interface {
	Save(ctx context.Context, e *Event) error
	Update(ctx context.Context, e *Event) error
	GetByID(ctx context.Context, id uint) (*Event, error)
	List(ctx context.Context, search string) ([]*Event, error)
	// ArchivePast deactivates every active event whose end time is before now.
	ArchivePast(ctx context.Context, now time.Time) error
	Count(ctx context.Context) (int64, error)
	CountActive(ctx context.Context) (int64, error)
	CountPast(ctx context.Context, now time.Time) (int64, error)
	// ListUpcoming returns active events starting after now, soonest first.
	ListUpcoming(ctx context.Context, now time.Time, limit int) ([]*Event, error)
}
