package item

import (
	"time"

	domain "lostfound/internal/domain/item"
)

type CreateItemInput struct {
	Name        string
	Description string
	Category    string
	Status      string
	ReportedBy  uint64
	LocationID  uint64
}

// UpdateItemInput replaces the descriptive fields of an item. Description is
// the free text only; annotations already on the item are kept.
type UpdateItemInput struct {
	Name        string
	Description string
	Category    string
	LocationID  uint64
}

type ItemDTO struct {
	ItemID      uint64    `json:"item_id"`
	Name        string    `json:"item_name"`
	Description string    `json:"description"`
	Category    string    `json:"category"`
	Status      string    `json:"status"`
	ReportDate  time.Time `json:"report_date"`
	ReportedBy  uint64    `json:"reported_by"`
	LocationID  uint64    `json:"location_id"`
}

func toDTO(it *domain.Item) *ItemDTO {
	return &ItemDTO{
		ItemID:      it.ID,
		Name:        it.Name,
		Description: it.Description,
		Category:    it.Category,
		Status:      string(it.Status),
		ReportDate:  it.ReportDate,
		ReportedBy:  it.ReportedBy,
		LocationID:  it.LocationID,
	}
}
