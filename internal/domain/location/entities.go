package location

import "errors"

var ErrNotFound = errors.New("location not found")

// Table: locations
type Location struct {
	ID       uint64 `gorm:"column:id;primaryKey;autoIncrement" json:"location_id"`
	Name     string `gorm:"column:name;size:100;not null" json:"location_name"`
	Building string `gorm:"column:building;size:100" json:"building,omitempty"`
	FloorNo  *int   `gorm:"column:floor_no" json:"floor_no,omitempty"`
}

func (Location) TableName() string { return "locations" }
