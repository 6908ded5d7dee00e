package claim

import (
	"time"

	domain "lostfound/internal/domain/claim"
)

type FileClaimInput struct {
	ItemID    uint64
	ClaimerID uint64
	Remarks   string
}

type ResolveClaimInput struct {
	ClaimID  uint64
	Decision string // approved | rejected
	Remark   string // overwrites the claim's remarks
}

type ClaimDTO struct {
	ClaimID   uint64    `json:"claim_id"`
	ItemID    uint64    `json:"item_id"`
	ClaimerID uint64    `json:"claimer_id"`
	ClaimDate time.Time `json:"claim_date"`
	Status    string    `json:"status"`
	Remarks   string    `json:"remarks"`
}

func toDTO(c *domain.Claim) *ClaimDTO {
	return &ClaimDTO{
		ClaimID:   c.ID,
		ItemID:    c.ItemID,
		ClaimerID: c.ClaimerID,
		ClaimDate: c.ClaimDate,
		Status:    string(c.Status),
		Remarks:   c.Remarks,
	}
}
