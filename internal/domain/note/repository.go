package note

import "context"

type Repository interface {
	Save(ctx context.Context, n *Note) error
	GetByID(ctx context.Context, id uint) (*Note, error)
	List(ctx context.Context) ([]*Note, error)
	Delete(ctx context.Context, id uint) error
}
