package uow

import (
	"context"

	"lostfound/internal/domain/claim"
	"lostfound/internal/domain/item"
	"lostfound/internal/domain/location"
	"lostfound/internal/domain/user"
)

// Repos are bound to a single transaction for the lifetime of the callback.
type Repos struct {
	Users     user.Repository
	Locations location.Repository
	Items     item.Repository
	Claims    claim.Repository
}

type UnitOfWork interface {
	// plain tx
	WithinTx(ctx context.Context, fn func(r Repos) error) error
	// lock the item row first, then pass it in
	WithinItemTx(ctx context.Context, itemID uint64, fn func(r Repos, it *item.Item) error) error
	// lock the claim's item, then the claim itself, then pass both in.
	// Every resolution on one item serializes on the item row.
	WithinClaimTx(ctx context.Context, claimID uint64, fn func(r Repos, c *claim.Claim, it *item.Item) error) error
}
