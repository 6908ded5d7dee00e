package reportmock

import (
	"context"

	domain "lostfound/internal/domain/report"
)

var _ domain.Repository = (*Repo)(nil)

type Repo struct {
	CategoryCountsFn        func(ctx context.Context) ([]domain.CategoryCount, error)
	ClaimOverviewFn         func(ctx context.Context) ([]domain.ClaimRow, error)
	AboveAverageReportersFn func(ctx context.Context) ([]domain.Reporter, error)
	CountItemsByUserFn      func(ctx context.Context, userID uint64) (int64, error)
	UserExistsFn            func(ctx context.Context, userID uint64) (bool, error)
}

func (m *Repo) CategoryCounts(ctx context.Context) ([]domain.CategoryCount, error) {
	if m.CategoryCountsFn != nil {
		return m.CategoryCountsFn(ctx)
	}
	return nil, nil
}

func (m *Repo) ClaimOverview(ctx context.Context) ([]domain.ClaimRow, error) {
	if m.ClaimOverviewFn != nil {
		return m.ClaimOverviewFn(ctx)
	}
	return nil, nil
}

func (m *Repo) AboveAverageReporters(ctx context.Context) ([]domain.Reporter, error) {
	if m.AboveAverageReportersFn != nil {
		return m.AboveAverageReportersFn(ctx)
	}
	return nil, nil
}

func (m *Repo) CountItemsByUser(ctx context.Context, userID uint64) (int64, error) {
	if m.CountItemsByUserFn != nil {
		return m.CountItemsByUserFn(ctx, userID)
	}
	return 0, nil
}

func (m *Repo) UserExists(ctx context.Context, userID uint64) (bool, error) {
	if m.UserExistsFn != nil {
		return m.UserExistsFn(ctx, userID)
	}
	return false, nil
}
