package report

// CategoryCount is one row of the per-category aggregate.
type CategoryCount struct {
	Category   string `gorm:"column:category" json:"category"`
	TotalItems int64  `gorm:"column:total_items" json:"total_items"`
}

// ClaimRow puts a claim's status next to the status of the item it targets.
type ClaimRow struct {
	ClaimID     uint64 `gorm:"column:claim_id" json:"claim_id"`
	ItemName    string `gorm:"column:item_name" json:"item_name"`
	ClaimerName string `gorm:"column:claimer_name" json:"claimer_name"`
	ClaimStatus string `gorm:"column:claim_status" json:"claim_status"`
	ItemStatus  string `gorm:"column:item_status" json:"item_status"`
}

// Reporter is a user together with the number of items they reported.
type Reporter struct {
	UserID    uint64 `gorm:"column:user_id" json:"user_id"`
	Name      string `gorm:"column:name" json:"name"`
	ItemCount int64  `gorm:"column:item_count" json:"item_count"`
}
