package staff

import (
	"context"

	"github.com/google/uuid"
)

type Repository interface {
	Save(ctx context.Context, profile *Profile) error
	Delete(ctx context.Context, id uuid.UUID) error
	GetByID(ctx context.Context, id uuid.UUID) (*Profile, error)
	List(ctx context.Context) ([]*Profile, error)
	// NamesByIDs resolves display names for audit trail rendering.
	NamesByIDs(ctx context.Context, ids []uuid.UUID) (map[uuid.UUID]string, error)
}
