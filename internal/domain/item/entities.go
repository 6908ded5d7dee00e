package item

import (
	"errors"
	"time"

	"lostfound/internal/domain/location"
	"lostfound/internal/domain/user"
)

var (
	ErrNotFound = errors.New("item not found")
	// ErrClaimed is returned by conditional writes that found the item already claimed.
	ErrClaimed = errors.New("item already claimed")
)

type Status string

const (
	StatusLost    Status = "lost"
	StatusFound   Status = "found"
	StatusClaimed Status = "claimed"
)

func (s Status) Valid() bool {
	switch s {
	case StatusLost, StatusFound, StatusClaimed:
		return true
	}
	return false
}

// Reportable reports whether an item may be created in, or toggled into, s.
// Only claim approval moves an item to claimed.
func (s Status) Reportable() bool { return s == StatusLost || s == StatusFound }

// Table: items
type Item struct {
	ID          uint64 `gorm:"column:id;primaryKey;autoIncrement" json:"item_id"`
	Name        string `gorm:"column:item_name;size:100;not null" json:"item_name"`
	Description string `gorm:"column:description;type:text" json:"description"`
	Category    string `gorm:"column:category;size:50;index" json:"category"`
	Status      Status `gorm:"column:status;size:16;not null;default:'lost';index" json:"status"`
	// report_date is written once on insert and never updated.
	ReportDate time.Time `gorm:"column:report_date;not null;<-:create" json:"report_date"`
	ReportedBy uint64    `gorm:"column:reported_by;not null;index" json:"reported_by"`
	LocationID uint64    `gorm:"column:location_id;not null;index" json:"location_id"`

	Reporter *user.User         `gorm:"foreignKey:ReportedBy;references:ID;constraint:OnUpdate:CASCADE,OnDelete:RESTRICT" json:"-"`
	Location *location.Location `gorm:"foreignKey:LocationID;references:ID;constraint:OnUpdate:CASCADE,OnDelete:RESTRICT" json:"-"`
}

func (Item) TableName() string { return "items" }
