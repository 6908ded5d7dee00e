// Package report is the read-only reporting facade over the catalog.
package report

import (
	"context"
	"fmt"

	"lostfound/internal/domain/apperr"
	domain "lostfound/internal/domain/report"
)

type Usecase struct{ repo domain.Repository }

func NewUsecase(r domain.Repository) *Usecase { return &Usecase{repo: r} }

// CategoryCounts: item totals per category, largest first.
func (u *Usecase) CategoryCounts(ctx context.Context) ([]domain.CategoryCount, error) {
	rows, err := u.repo.CategoryCounts(ctx)
	if err != nil {
		return nil, fmt.Errorf("category counts: %w", err)
	}
	return nonNil(rows), nil
}

// ClaimOverview lists every claim next to its item and claimer.
func (u *Usecase) ClaimOverview(ctx context.Context) ([]domain.ClaimRow, error) {
	rows, err := u.repo.ClaimOverview(ctx)
	if err != nil {
		return nil, fmt.Errorf("claim overview: %w", err)
	}
	return nonNil(rows), nil
}

func (u *Usecase) AboveAverageReporters(ctx context.Context) ([]domain.Reporter, error) {
	rows, err := u.repo.AboveAverageReporters(ctx)
	if err != nil {
		return nil, fmt.Errorf("above-average reporters: %w", err)
	}
	return nonNil(rows), nil
}

// CountItemsByUser is 0 for a known user without items; an unknown user is a
// reference error.
func (u *Usecase) CountItemsByUser(ctx context.Context, userID uint64) (int64, error) {
	ok, err := u.repo.UserExists(ctx, userID)
	if err != nil {
		return 0, fmt.Errorf("lookup user: %w", err)
	}
	if !ok {
		return 0, apperr.Reference("user %d does not exist", userID)
	}
	n, err := u.repo.CountItemsByUser(ctx, userID)
	if err != nil {
		return 0, fmt.Errorf("count items: %w", err)
	}
	return n, nil
}

func nonNil[T any](rows []T) []T {
	if rows == nil {
		return []T{}
	}
	return rows
}
