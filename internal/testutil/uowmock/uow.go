package uowmock

import (
	"context"
	"errors"

	"lostfound/internal/domain/claim"
	"lostfound/internal/domain/item"
	"lostfound/internal/domain/uow"
)

// Ensure compile-time compliance
var _ uow.UnitOfWork = (*UoW)(nil)

var errUnimplemented = errors.New("uowmock: method not implemented")

// UoW is a function-backed mock that satisfies uow.UnitOfWork.
// Fill in the function fields you need in a test; unfilled ones return errUnimplemented.
type UoW struct {
	WithinTxFn      func(ctx context.Context, fn func(r uow.Repos) error) error
	WithinItemTxFn  func(ctx context.Context, itemID uint64, fn func(r uow.Repos, it *item.Item) error) error
	WithinClaimTxFn func(ctx context.Context, claimID uint64, fn func(r uow.Repos, c *claim.Claim, it *item.Item) error) error
}

func New() *UoW { return &UoW{} }

// Passthrough runs every callback against repos with the given rows,
// as if each lock had been taken.
func Passthrough(repos uow.Repos, it *item.Item, c *claim.Claim) *UoW {
	return &UoW{
		WithinTxFn: func(_ context.Context, fn func(uow.Repos) error) error {
			return fn(repos)
		},
		WithinItemTxFn: func(_ context.Context, _ uint64, fn func(uow.Repos, *item.Item) error) error {
			if it == nil {
				return item.ErrNotFound
			}
			return fn(repos, it)
		},
		WithinClaimTxFn: func(_ context.Context, _ uint64, fn func(uow.Repos, *claim.Claim, *item.Item) error) error {
			if c == nil {
				return claim.ErrNotFound
			}
			return fn(repos, c, it)
		},
	}
}

func (m *UoW) WithWithinTx(fn func(context.Context, func(uow.Repos) error) error) *UoW {
	m.WithinTxFn = fn
	return m
}
func (m *UoW) WithWithinItemTx(fn func(context.Context, uint64, func(uow.Repos, *item.Item) error) error) *UoW {
	m.WithinItemTxFn = fn
	return m
}
func (m *UoW) WithWithinClaimTx(fn func(context.Context, uint64, func(uow.Repos, *claim.Claim, *item.Item) error) error) *UoW {
	m.WithinClaimTxFn = fn
	return m
}
func (m *UoW) Reset() { *m = UoW{} }

func (m *UoW) WithinTx(ctx context.Context, fn func(r uow.Repos) error) error {
	if m.WithinTxFn != nil {
		return m.WithinTxFn(ctx, fn)
	}
	return errUnimplemented
}

func (m *UoW) WithinItemTx(ctx context.Context, itemID uint64, fn func(r uow.Repos, it *item.Item) error) error {
	if m.WithinItemTxFn != nil {
		return m.WithinItemTxFn(ctx, itemID, fn)
	}
	return errUnimplemented
}

func (m *UoW) WithinClaimTx(ctx context.Context, claimID uint64, fn func(r uow.Repos, c *claim.Claim, it *item.Item) error) error {
	if m.WithinClaimTxFn != nil {
		return m.WithinClaimTxFn(ctx, claimID, fn)
	}
	return errUnimplemented
}
