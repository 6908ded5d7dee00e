package sqlstore

import (
	"context"

	locationDomain "lostfound/internal/domain/location"

	"gorm.io/gorm"
)

type LocationRepository struct{ db *gorm.DB }

func NewLocationRepository(db *gorm.DB) *LocationRepository { return &LocationRepository{db: db} }

func (r *LocationRepository) Create(ctx context.Context, l *locationDomain.Location) error {
	return r.db.WithContext(ctx).Create(l).Error
}

func (r *LocationRepository) GetByID(ctx context.Context, id uint64) (*locationDomain.Location, error) {
	var out locationDomain.Location
	res := r.db.WithContext(ctx).Where("id = ?", id).First(&out)
	return &out, res.Error
}

func (r *LocationRepository) List(ctx context.Context) ([]locationDomain.Location, error) {
	var out []locationDomain.Location
	res := r.db.WithContext(ctx).Order("id").Find(&out)
	return out, res.Error
}

// Update writes a nil floor as NULL.
func (r *LocationRepository) Update(ctx context.Context, l *locationDomain.Location) error {
	return r.db.WithContext(ctx).
		Model(&locationDomain.Location{}).
		Where("id = ?", l.ID).
		Updates(map[string]any{"name": l.Name, "building": l.Building, "floor_no": l.FloorNo}).Error
}

func (r *LocationRepository) Delete(ctx context.Context, id uint64) error {
	res := r.db.WithContext(ctx).Where("id = ?", id).Delete(&locationDomain.Location{})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}
