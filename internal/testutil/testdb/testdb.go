// Package testdb opens migrated in-memory SQLite catalogs and seeds them.
package testdb

import (
	"context"
	"testing"
	"time"

	"lostfound/internal/domain/claim"
	"lostfound/internal/domain/item"
	"lostfound/internal/domain/location"
	"lostfound/internal/domain/user"
	infradb "lostfound/internal/infrastructure/db"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// Open returns a fresh catalog on a single in-memory connection.
func Open(t testing.TB) *gorm.DB {
	t.Helper()
	db, err := infradb.OpenGormWithDialector(sqlite.Open(":memory:"), logger.Silent)
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}
	if err := infradb.Migrate(db); err != nil {
		t.Fatalf("migrate: %v", err)
	}
	t.Cleanup(func() {
		if sqlDB, err := db.DB(); err == nil {
			_ = sqlDB.Close()
		}
	})
	return db
}

func SeedUser(t testing.TB, db *gorm.DB, name string) *user.User {
	t.Helper()
	u := &user.User{Name: name, Email: name + "@campus.test", Role: user.RoleStudent}
	if err := db.WithContext(context.Background()).Create(u).Error; err != nil {
		t.Fatalf("seed user: %v", err)
	}
	return u
}

func SeedLocation(t testing.TB, db *gorm.DB, name string) *location.Location {
	t.Helper()
	l := &location.Location{Name: name, Building: "Main"}
	if err := db.Create(l).Error; err != nil {
		t.Fatalf("seed location: %v", err)
	}
	return l
}

func SeedItem(t testing.TB, db *gorm.DB, name, category string, status item.Status, reporter, loc uint64) *item.Item {
	t.Helper()
	it := &item.Item{
		Name:       name,
		Category:   category,
		Status:     status,
		ReportDate: time.Now().UTC(),
		ReportedBy: reporter,
		LocationID: loc,
	}
	if err := db.Create(it).Error; err != nil {
		t.Fatalf("seed item: %v", err)
	}
	return it
}

func SeedClaim(t testing.TB, db *gorm.DB, itemID, claimerID uint64, status claim.Status) *claim.Claim {
	t.Helper()
	c := &claim.Claim{
		ItemID:    itemID,
		ClaimerID: claimerID,
		ClaimDate: time.Now().UTC(),
		Status:    status,
	}
	if err := db.Create(c).Error; err != nil {
		t.Fatalf("seed claim: %v", err)
	}
	return c
}

func ReloadItem(t testing.TB, db *gorm.DB, id uint64) item.Item {
	t.Helper()
	var it item.Item
	if err := db.First(&it, "id = ?", id).Error; err != nil {
		t.Fatalf("reload item %d: %v", id, err)
	}
	return it
}

func ReloadClaim(t testing.TB, db *gorm.DB, id uint64) claim.Claim {
	t.Helper()
	var c claim.Claim
	if err := db.First(&c, "id = ?", id).Error; err != nil {
		t.Fatalf("reload claim %d: %v", id, err)
	}
	return c
}
