package sqlstore

import (
	"context"

	claimDomain "lostfound/internal/domain/claim"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type ClaimRepository struct{ db *gorm.DB }

func NewClaimRepository(db *gorm.DB) *ClaimRepository { return &ClaimRepository{db: db} }

func (r *ClaimRepository) Create(ctx context.Context, c *claimDomain.Claim) error {
	return r.db.WithContext(ctx).Create(c).Error
}

func (r *ClaimRepository) GetByID(ctx context.Context, id uint64) (*claimDomain.Claim, error) {
	var out claimDomain.Claim
	res := r.db.WithContext(ctx).Where("id = ?", id).First(&out)
	return &out, res.Error
}

func (r *ClaimRepository) GetByIDForUpdate(ctx context.Context, id uint64) (*claimDomain.Claim, error) {
	var out claimDomain.Claim
	res := r.db.WithContext(ctx).
		Clauses(clause.Locking{Strength: "UPDATE"}).
		Where("id = ?", id).
		First(&out)
	return &out, res.Error
}

func (r *ClaimRepository) List(ctx context.Context, itemID uint64) ([]claimDomain.Claim, error) {
	var out []claimDomain.Claim
	q := r.db.WithContext(ctx).Order("id")
	if itemID != 0 {
		q = q.Where("item_id = ?", itemID)
	}
	res := q.Find(&out)
	return out, res.Error
}

func (r *ClaimRepository) Transition(ctx context.Context, id uint64, from, to claimDomain.Status, remarks string) (bool, error) {
	res := r.db.WithContext(ctx).
		Model(&claimDomain.Claim{}).
		Where("id = ? AND status = ?", id, from).
		Updates(map[string]any{"status": to, "remarks": remarks})
	if res.Error != nil {
		return false, res.Error
	}
	return res.RowsAffected == 1, nil
}

func (r *ClaimRepository) RejectPending(ctx context.Context, itemID, exceptID uint64, remarks string) (int64, error) {
	res := r.db.WithContext(ctx).
		Model(&claimDomain.Claim{}).
		Where("item_id = ? AND status = ? AND id <> ?", itemID, claimDomain.StatusPending, exceptID).
		Updates(map[string]any{"status": claimDomain.StatusRejected, "remarks": remarks})
	return res.RowsAffected, res.Error
}

func (r *ClaimRepository) CountByItemAndStatus(ctx context.Context, itemID uint64, status claimDomain.Status) (int64, error) {
	var n int64
	res := r.db.WithContext(ctx).
		Model(&claimDomain.Claim{}).
		Where("item_id = ? AND status = ?", itemID, status).
		Count(&n)
	return n, res.Error
}

func (r *ClaimRepository) CountByClaimer(ctx context.Context, userID uint64) (int64, error) {
	var n int64
	res := r.db.WithContext(ctx).Model(&claimDomain.Claim{}).Where("claimer_id = ?", userID).Count(&n)
	return n, res.Error
}
