package location

import "context"

type Repository interface {
	Create(ctx context.Context, l *Location) error
	GetByID(ctx context.Context, id uint64) (*Location, error)
	List(ctx context.Context) ([]Location, error)
	Update(ctx context.Context, l *Location) error
	Delete(ctx context.Context, id uint64) error
}
