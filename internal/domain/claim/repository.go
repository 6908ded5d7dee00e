package claim

import "context"

type Repository interface {
	Create(ctx context.Context, c *Claim) error
	GetByID(ctx context.Context, id uint64) (*Claim, error)
	// GetByIDForUpdate takes a row lock for the rest of the transaction.
	GetByIDForUpdate(ctx context.Context, id uint64) (*Claim, error)
	// List returns claims ordered by id; itemID 0 means all items.
	List(ctx context.Context, itemID uint64) ([]Claim, error)

	// Transition moves a claim from -> to and overwrites its remarks. It is a
	// compare-and-set: false means the claim was no longer in `from`.
	Transition(ctx context.Context, id uint64, from, to Status, remarks string) (bool, error)
	// RejectPending rejects every pending claim on itemID except exceptID.
	RejectPending(ctx context.Context, itemID, exceptID uint64, remarks string) (int64, error)

	CountByItemAndStatus(ctx context.Context, itemID uint64, status Status) (int64, error)
	CountByClaimer(ctx context.Context, userID uint64) (int64, error)
}
