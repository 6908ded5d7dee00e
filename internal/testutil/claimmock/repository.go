package claimmock

import (
	"context"

	domain "lostfound/internal/domain/claim"
)

var _ domain.Repository = (*Repo)(nil)

// Repo is a function-backed mock that satisfies domain.Repository.
// Unset lookups return context.Canceled; unset writes succeed.
type Repo struct {
	CreateFn               func(ctx context.Context, c *domain.Claim) error
	GetByIDFn              func(ctx context.Context, id uint64) (*domain.Claim, error)
	GetByIDForUpdateFn     func(ctx context.Context, id uint64) (*domain.Claim, error)
	ListFn                 func(ctx context.Context, itemID uint64) ([]domain.Claim, error)
	TransitionFn           func(ctx context.Context, id uint64, from, to domain.Status, remarks string) (bool, error)
	RejectPendingFn        func(ctx context.Context, itemID, exceptID uint64, remarks string) (int64, error)
	CountByItemAndStatusFn func(ctx context.Context, itemID uint64, status domain.Status) (int64, error)
	CountByClaimerFn       func(ctx context.Context, userID uint64) (int64, error)
}

func (m *Repo) Create(ctx context.Context, c *domain.Claim) error {
	if m.CreateFn != nil {
		return m.CreateFn(ctx, c)
	}
	return nil
}

func (m *Repo) GetByID(ctx context.Context, id uint64) (*domain.Claim, error) {
	if m.GetByIDFn != nil {
		return m.GetByIDFn(ctx, id)
	}
	return nil, context.Canceled
}

func (m *Repo) GetByIDForUpdate(ctx context.Context, id uint64) (*domain.Claim, error) {
	if m.GetByIDForUpdateFn != nil {
		return m.GetByIDForUpdateFn(ctx, id)
	}
	return nil, context.Canceled
}

func (m *Repo) List(ctx context.Context, itemID uint64) ([]domain.Claim, error) {
	if m.ListFn != nil {
		return m.ListFn(ctx, itemID)
	}
	return nil, nil
}

func (m *Repo) Transition(ctx context.Context, id uint64, from, to domain.Status, remarks string) (bool, error) {
	if m.TransitionFn != nil {
		return m.TransitionFn(ctx, id, from, to, remarks)
	}
	return true, nil
}

func (m *Repo) RejectPending(ctx context.Context, itemID, exceptID uint64, remarks string) (int64, error) {
	if m.RejectPendingFn != nil {
		return m.RejectPendingFn(ctx, itemID, exceptID, remarks)
	}
	return 0, nil
}

func (m *Repo) CountByItemAndStatus(ctx context.Context, itemID uint64, status domain.Status) (int64, error) {
	if m.CountByItemAndStatusFn != nil {
		return m.CountByItemAndStatusFn(ctx, itemID, status)
	}
	return 0, nil
}

func (m *Repo) CountByClaimer(ctx context.Context, userID uint64) (int64, error) {
	if m.CountByClaimerFn != nil {
		return m.CountByClaimerFn(ctx, userID)
	}
	return 0, nil
}
