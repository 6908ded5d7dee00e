package db

import (
	"fmt"

	"lostfound/internal/domain/claim"
	"lostfound/internal/domain/item"
	"lostfound/internal/domain/location"
	"lostfound/internal/domain/user"

	"gorm.io/gorm"
)

// Models lists the catalog tables in dependency order.
func Models() []any {
	return []any{&user.User{}, &location.Location{}, &item.Item{}, &claim.Claim{}}
}

// Migrate creates or updates the four catalog tables and their foreign keys.
func Migrate(db *gorm.DB) error {
	if err := db.AutoMigrate(Models()...); err != nil {
		return fmt.Errorf("auto-migrate: %w", err)
	}
	return nil
}
