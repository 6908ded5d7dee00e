package report

import "context"

// Repository is read-only; none of its methods write.
type Repository interface {
	CategoryCounts(ctx context.Context) ([]CategoryCount, error)
	ClaimOverview(ctx context.Context) ([]ClaimRow, error)
	AboveAverageReporters(ctx context.Context) ([]Reporter, error)
	// CountItemsByUser returns the number of items reported by userID.
	CountItemsByUser(ctx context.Context, userID uint64) (int64, error)
	UserExists(ctx context.Context, userID uint64) (bool, error)
}
