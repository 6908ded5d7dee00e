package sqlstore

import (
	"context"
	"errors"

	"lostfound/internal/domain/claim"
	"lostfound/internal/domain/item"
	"lostfound/internal/domain/uow"

	"gorm.io/gorm"
)

type GormUoW struct{ db *gorm.DB }

func NewGormUoW(db *gorm.DB) *GormUoW { return &GormUoW{db: db} }

func reposFor(tx *gorm.DB) uow.Repos {
	return uow.Repos{
		Users:     &UserRepository{db: tx},
		Locations: &LocationRepository{db: tx},
		Items:     &ItemRepository{db: tx},
		Claims:    &ClaimRepository{db: tx},
	}
}

func (u *GormUoW) WithinTx(ctx context.Context, fn func(r uow.Repos) error) error {
	return u.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return fn(reposFor(tx))
	})
}

func (u *GormUoW) WithinItemTx(ctx context.Context, itemID uint64, fn func(r uow.Repos, it *item.Item) error) error {
	return u.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		r := reposFor(tx)
		it, err := r.Items.GetByIDForUpdate(ctx, itemID)
		if err != nil {
			return notFoundAs(err, item.ErrNotFound)
		}
		return fn(r, it)
	})
}

func (u *GormUoW) WithinClaimTx(ctx context.Context, claimID uint64, fn func(r uow.Repos, c *claim.Claim, it *item.Item) error) error {
	return u.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		r := reposFor(tx)
		// unlocked read, only to learn which item to lock
		peek, err := r.Claims.GetByID(ctx, claimID)
		if err != nil {
			return notFoundAs(err, claim.ErrNotFound)
		}
		it, err := r.Items.GetByIDForUpdate(ctx, peek.ItemID)
		if err != nil {
			return notFoundAs(err, item.ErrNotFound)
		}
		// re-read under lock: a competing resolution may have committed meanwhile
		c, err := r.Claims.GetByIDForUpdate(ctx, claimID)
		if err != nil {
			return notFoundAs(err, claim.ErrNotFound)
		}
		return fn(r, c, it)
	})
}

func notFoundAs(err, sentinel error) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return sentinel
	}
	return err
}
