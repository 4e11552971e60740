package usecases

import (
	"context"

	"beyazmasa/internal/application/ticket/dto"
)

// CitizenNotifier delivers the outward status message to the citizen's phone.
// Implementations are expected to be safe for concurrent use; callers invoke
// Notify from a detached goroutine and only log failures.
type CitizenNotifier interface {
	Notify(ctx context.Context, phone, message string) error
}

// Sanitizer strips markup from citizen-supplied free text before it is stored.
type Sanitizer interface {
	Sanitize(s string) string
}

// TicketFeed pushes newly created tickets to connected staff dashboards.
// Implementations must not block; a nil feed disables the push.
type TicketFeed interface {
	TicketCreated(t *dto.TicketDTO)
}

type ListTicketsExecutor interface {
	Execute(ctx context.Context, query ListTicketsQuery) (*ListTicketsResult, error)
}

type GetTicketExecutor interface {
	Execute(ctx context.Context, query GetTicketQuery) (*dto.TicketDetailDTO, error)
}

type CreateTicketExecutor interface {
	Execute(ctx context.Context, cmd CreateTicketCommand) (*CreateTicketResult, error)
}

type StartTicketExecutor interface {
	Execute(ctx context.Context, cmd StartTicketCommand) (*StartTicketResult, error)
}

type ResolveTicketExecutor interface {
	Execute(ctx context.Context, cmd ResolveTicketCommand) (*ResolveTicketResult, error)
}

type AttachEvidenceExecutor interface {
	Execute(ctx context.Context, cmd AttachEvidenceCommand) (*AttachEvidenceResult, error)
}

type AssignTicketExecutor interface {
	Execute(ctx context.Context, cmd AssignTicketCommand) (*AssignTicketResult, error)
}

type CancelTicketExecutor interface {
	Execute(ctx context.Context, cmd CancelTicketCommand) (*CancelTicketResult, error)
}

type DeleteTicketExecutor interface {
	Execute(ctx context.Context, cmd DeleteTicketCommand) error
}

type ListAssignedExecutor interface {
	Execute(ctx context.Context, query ListAssignedQuery) ([]*dto.TicketDTO, error)
}

type SubmitPublicTicketExecutor interface {
	Execute(ctx context.Context, cmd SubmitPublicTicketCommand) (*SubmitPublicTicketResult, error)
}

type TrackPublicTicketExecutor interface {
	Execute(ctx context.Context, query TrackPublicTicketQuery) (*dto.PublicStatusDTO, error)
}
