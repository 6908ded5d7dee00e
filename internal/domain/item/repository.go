package item

import "context"

// Details are the fields an item edit may change.
type Details struct {
	Name        string
	Description string
	Category    string
	LocationID  uint64
}

type Repository interface {
	Create(ctx context.Context, it *Item) error
	GetByID(ctx context.Context, id uint64) (*Item, error)
	// GetByIDForUpdate takes a row lock for the rest of the transaction.
	GetByIDForUpdate(ctx context.Context, id uint64) (*Item, error)
	// List returns items ordered by id; an empty status means all.
	List(ctx context.Context, status Status) ([]Item, error)
	// UpdateStatus and MarkClaimed return ErrClaimed if the item is already claimed.
	UpdateStatus(ctx context.Context, id uint64, status Status) error
	// MarkClaimed sets status=claimed and stores the annotated description.
	MarkClaimed(ctx context.Context, id uint64, description string) error
	// UpdateDetails rewrites the descriptive fields; status and reporter stay.
	UpdateDetails(ctx context.Context, id uint64, d Details) error
	CountByReporter(ctx context.Context, userID uint64) (int64, error)
	CountByLocation(ctx context.Context, locationID uint64) (int64, error)
}
