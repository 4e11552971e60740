package audit

import "context"

type Repository interface {
	// Append inserts the entry. Entries are never updated or deleted.
	Append(ctx context.Context, entry *Entry) error
	ListByTicket(ctx context.Context, ticketID uint) ([]*Entry, error)
	ListRecent(ctx context.Context, limit int) ([]*Entry, error)
}
