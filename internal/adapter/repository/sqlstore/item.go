package sqlstore

import (
	"context"

	itemDomain "lostfound/internal/domain/item"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type ItemRepository struct{ db *gorm.DB }

func NewItemRepository(db *gorm.DB) *ItemRepository { return &ItemRepository{db: db} }

func (r *ItemRepository) Create(ctx context.Context, it *itemDomain.Item) error {
	return r.db.WithContext(ctx).Create(it).Error
}

func (r *ItemRepository) GetByID(ctx context.Context, id uint64) (*itemDomain.Item, error) {
	var out itemDomain.Item
	res := r.db.WithContext(ctx).Where("id = ?", id).First(&out)
	return &out, res.Error
}

// GetByIDForUpdate issues SELECT ... FOR UPDATE. The sqlite dialector drops
// the locking clause; there the database write lock serializes writers.
func (r *ItemRepository) GetByIDForUpdate(ctx context.Context, id uint64) (*itemDomain.Item, error) {
	var out itemDomain.Item
	res := r.db.WithContext(ctx).
		Clauses(clause.Locking{Strength: "UPDATE"}).
		Where("id = ?", id).
		First(&out)
	return &out, res.Error
}

func (r *ItemRepository) List(ctx context.Context, status itemDomain.Status) ([]itemDomain.Item, error) {
	var out []itemDomain.Item
	q := r.db.WithContext(ctx).Order("id")
	if status != "" {
		q = q.Where("status = ?", status)
	}
	res := q.Find(&out)
	return out, res.Error
}

func (r *ItemRepository) UpdateStatus(ctx context.Context, id uint64, status itemDomain.Status) error {
	return r.updateUnclaimed(ctx, id, map[string]any{"status": status})
}

func (r *ItemRepository) MarkClaimed(ctx context.Context, id uint64, description string) error {
	return r.updateUnclaimed(ctx, id, map[string]any{
		"status":      itemDomain.StatusClaimed,
		"description": description,
	})
}

// UpdateDetails never touches status, so it is allowed on claimed items too.
func (r *ItemRepository) UpdateDetails(ctx context.Context, id uint64, d itemDomain.Details) error {
	res := r.db.WithContext(ctx).
		Model(&itemDomain.Item{}).
		Where("id = ?", id).
		Updates(map[string]any{
			"item_name":   d.Name,
			"description": d.Description,
			"category":    d.Category,
			"location_id": d.LocationID,
		})
	return res.Error
}

// updateUnclaimed applies fields only while the item is not yet claimed.
func (r *ItemRepository) updateUnclaimed(ctx context.Context, id uint64, fields map[string]any) error {
	res := r.db.WithContext(ctx).
		Model(&itemDomain.Item{}).
		Where("id = ? AND status <> ?", id, itemDomain.StatusClaimed).
		Updates(fields)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		var n int64
		if err := r.db.WithContext(ctx).Model(&itemDomain.Item{}).Where("id = ?", id).Count(&n).Error; err != nil {
			return err
		}
		if n == 0 {
			return gorm.ErrRecordNotFound
		}
		return itemDomain.ErrClaimed
	}
	return nil
}

func (r *ItemRepository) CountByReporter(ctx context.Context, userID uint64) (int64, error) {
	var n int64
	res := r.db.WithContext(ctx).Model(&itemDomain.Item{}).Where("reported_by = ?", userID).Count(&n)
	return n, res.Error
}

func (r *ItemRepository) CountByLocation(ctx context.Context, locationID uint64) (int64, error) {
	var n int64
	res := r.db.WithContext(ctx).Model(&itemDomain.Item{}).Where("location_id = ?", locationID).Count(&n)
	return n, res.Error
}
