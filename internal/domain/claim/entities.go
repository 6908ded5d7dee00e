package claim

import (
	"errors"
	"fmt"
	"time"

	"lostfound/internal/domain/item"
	"lostfound/internal/domain/user"
)

var ErrNotFound = errors.New("claim not found")

type Status string

const (
	StatusPending  Status = "pending"
	StatusApproved Status = "approved"
	StatusRejected Status = "rejected"
)

func (s Status) Valid() bool {
	switch s {
	case StatusPending, StatusApproved, StatusRejected:
		return true
	}
	return false
}

// Terminal reports whether no further transition out of s exists.
func (s Status) Terminal() bool { return s == StatusApproved || s == StatusRejected }

// IsDecision reports whether s is an allowed outcome of a resolution.
func (s Status) IsDecision() bool { return s.Terminal() }

// Table: claims
type Claim struct {
	ID        uint64 `gorm:"column:id;primaryKey;autoIncrement" json:"claim_id"`
	ItemID    uint64 `gorm:"column:item_id;not null;index:idx_claims_item_status,priority:1" json:"item_id"`
	ClaimerID uint64 `gorm:"column:claimer_id;not null;index" json:"claimer_id"`
	// claim_date is written once on insert and never updated.
	ClaimDate time.Time `gorm:"column:claim_date;not null;<-:create" json:"claim_date"`
	Status    Status    `gorm:"column:status;size:16;not null;default:'pending';index:idx_claims_item_status,priority:2" json:"status"`
	Remarks   string    `gorm:"column:remarks;type:text" json:"remarks"`

	Item    *item.Item `gorm:"foreignKey:ItemID;references:ID;constraint:OnUpdate:CASCADE,OnDelete:RESTRICT" json:"-"`
	Claimer *user.User `gorm:"foreignKey:ClaimerID;references:ID;constraint:OnUpdate:CASCADE,OnDelete:RESTRICT" json:"-"`
}

func (Claim) TableName() string { return "claims" }

// SupersededRemark is written on every pending sibling of an approved claim.
func SupersededRemark(winnerID uint64) string {
	return fmt.Sprintf("Superseded: claim #%d was approved for this item", winnerID)
}
