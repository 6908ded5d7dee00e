package sqlstore

import (
	"context"

	itemDomain "lostfound/internal/domain/item"
	reportDomain "lostfound/internal/domain/report"
	userDomain "lostfound/internal/domain/user"

	"gorm.io/gorm"
)

// ReportRepository only reads. It runs outside any transaction.
type ReportRepository struct{ db *gorm.DB }

func NewReportRepository(db *gorm.DB) *ReportRepository { return &ReportRepository{db: db} }

const categoryCountsSQL = `
SELECT category, COUNT(id) AS total_items
FROM items
GROUP BY category
ORDER BY total_items DESC, category ASC`

func (r *ReportRepository) CategoryCounts(ctx context.Context) ([]reportDomain.CategoryCount, error) {
	var out []reportDomain.CategoryCount
	res := r.db.WithContext(ctx).Raw(categoryCountsSQL).Scan(&out)
	return out, res.Error
}

const claimOverviewSQL = `
SELECT c.id AS claim_id,
       i.item_name AS item_name,
       u.name AS claimer_name,
       c.status AS claim_status,
       i.status AS item_status
FROM claims c
JOIN items i ON c.item_id = i.id
JOIN users u ON c.claimer_id = u.id
ORDER BY c.id`

func (r *ReportRepository) ClaimOverview(ctx context.Context) ([]reportDomain.ClaimRow, error) {
	var out []reportDomain.ClaimRow
	res := r.db.WithContext(ctx).Raw(claimOverviewSQL).Scan(&out)
	return out, res.Error
}

// The average is taken over users that reported at least one item.
const aboveAverageReportersSQL = `
SELECT u.id AS user_id, u.name AS name, COUNT(i.id) AS item_count
FROM users u
JOIN items i ON i.reported_by = u.id
GROUP BY u.id, u.name
HAVING COUNT(i.id) > (
    SELECT AVG(sub.item_count)
    FROM (
        SELECT COUNT(id) AS item_count
        FROM items
        GROUP BY reported_by
    ) sub
)
ORDER BY u.id`

func (r *ReportRepository) AboveAverageReporters(ctx context.Context) ([]reportDomain.Reporter, error) {
	var out []reportDomain.Reporter
	res := r.db.WithContext(ctx).Raw(aboveAverageReportersSQL).Scan(&out)
	return out, res.Error
}

func (r *ReportRepository) CountItemsByUser(ctx context.Context, userID uint64) (int64, error) {
	var n int64
	res := r.db.WithContext(ctx).Model(&itemDomain.Item{}).Where("reported_by = ?", userID).Count(&n)
	return n, res.Error
}

func (r *ReportRepository) UserExists(ctx context.Context, userID uint64) (bool, error) {
	var n int64
	res := r.db.WithContext(ctx).Model(&userDomain.User{}).Where("id = ?", userID).Count(&n)
	return n > 0, res.Error
}
