package itemmock

import (
	"context"

	domain "lostfound/internal/domain/item"
)

var _ domain.Repository = (*Repo)(nil)

// Repo is a function-backed mock that satisfies domain.Repository.
// Unset lookups return context.Canceled; unset writes succeed.
type Repo struct {
	CreateFn           func(ctx context.Context, it *domain.Item) error
	GetByIDFn          func(ctx context.Context, id uint64) (*domain.Item, error)
	GetByIDForUpdateFn func(ctx context.Context, id uint64) (*domain.Item, error)
	ListFn             func(ctx context.Context, status domain.Status) ([]domain.Item, error)
	UpdateStatusFn     func(ctx context.Context, id uint64, status domain.Status) error
	MarkClaimedFn      func(ctx context.Context, id uint64, description string) error
	UpdateDetailsFn    func(ctx context.Context, id uint64, d domain.Details) error
	CountByReporterFn  func(ctx context.Context, userID uint64) (int64, error)
	CountByLocationFn  func(ctx context.Context, locationID uint64) (int64, error)
}

func (m *Repo) Create(ctx context.Context, it *domain.Item) error {
	if m.CreateFn != nil {
		return m.CreateFn(ctx, it)
	}
	return nil
}

func (m *Repo) GetByID(ctx context.Context, id uint64) (*domain.Item, error) {
	if m.GetByIDFn != nil {
		return m.GetByIDFn(ctx, id)
	}
	return nil, context.Canceled
}

func (m *Repo) GetByIDForUpdate(ctx context.Context, id uint64) (*domain.Item, error) {
	if m.GetByIDForUpdateFn != nil {
		return m.GetByIDForUpdateFn(ctx, id)
	}
	return nil, context.Canceled
}

func (m *Repo) List(ctx context.Context, status domain.Status) ([]domain.Item, error) {
	if m.ListFn != nil {
		return m.ListFn(ctx, status)
	}
	return nil, nil
}

func (m *Repo) UpdateStatus(ctx context.Context, id uint64, status domain.Status) error {
	if m.UpdateStatusFn != nil {
		return m.UpdateStatusFn(ctx, id, status)
	}
	return nil
}

func (m *Repo) MarkClaimed(ctx context.Context, id uint64, description string) error {
	if m.MarkClaimedFn != nil {
		return m.MarkClaimedFn(ctx, id, description)
	}
	return nil
}

func (m *Repo) UpdateDetails(ctx context.Context, id uint64, d domain.Details) error {
	if m.UpdateDetailsFn != nil {
		return m.UpdateDetailsFn(ctx, id, d)
	}
	return nil
}

func (m *Repo) CountByReporter(ctx context.Context, userID uint64) (int64, error) {
	if m.CountByReporterFn != nil {
		return m.CountByReporterFn(ctx, userID)
	}
	return 0, nil
}

func (m *Repo) CountByLocation(ctx context.Context, locationID uint64) (int64, error) {
	if m.CountByLocationFn != nil {
		return m.CountByLocationFn(ctx, locationID)
	}
	return 0, nil
}
