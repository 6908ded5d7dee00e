package sqlstore

import (
	"context"
	"testing"

	claimDomain "lostfound/internal/domain/claim"
	itemDomain "lostfound/internal/domain/item"
	"lostfound/internal/testutil/testdb"
)

func TestReportRepository(t *testing.T) {
	db := testdb.Open(t)
	repo := NewReportRepository(db)
	ctx := context.Background()

	asha := testdb.SeedUser(t, db, "asha")
	ben := testdb.SeedUser(t, db, "ben")
	cara := testdb.SeedUser(t, db, "cara")
	idle := testdb.SeedUser(t, db, "idle")
	l := testdb.SeedLocation(t, db, "Library")

	// asha 4, ben 1, cara 1 -> average 2, only asha is above it
	wallet := testdb.SeedItem(t, db, "Wallet", "wallets", itemDomain.StatusLost, asha.ID, l.ID)
	testdb.SeedItem(t, db, "Purse", "wallets", itemDomain.StatusLost, asha.ID, l.ID)
	testdb.SeedItem(t, db, "Card", "wallets", itemDomain.StatusFound, asha.ID, l.ID)
	testdb.SeedItem(t, db, "Phone", "electronics", itemDomain.StatusFound, asha.ID, l.ID)
	testdb.SeedItem(t, db, "Laptop", "electronics", itemDomain.StatusLost, ben.ID, l.ID)
	testdb.SeedItem(t, db, "Keys", "keys", itemDomain.StatusLost, cara.ID, l.ID)

	testdb.SeedClaim(t, db, wallet.ID, ben.ID, claimDomain.StatusPending)
	testdb.SeedClaim(t, db, wallet.ID, cara.ID, claimDomain.StatusRejected)

	t.Run("category counts descending", func(t *testing.T) {
		rows, err := repo.CategoryCounts(ctx)
		if err != nil {
			t.Fatalf("CategoryCounts: %v", err)
		}
		if len(rows) != 3 {
			t.Fatalf("want 3 categories, got %+v", rows)
		}
		if rows[0].Category != "wallets" || rows[0].TotalItems != 3 {
			t.Fatalf("first row = %+v", rows[0])
		}
		if rows[1].Category != "electronics" || rows[1].TotalItems != 2 {
			t.Fatalf("second row = %+v", rows[1])
		}
		if rows[2].Category != "keys" || rows[2].TotalItems != 1 {
			t.Fatalf("third row = %+v", rows[2])
		}
	})

	t.Run("claim overview joins item and claimer", func(t *testing.T) {
		rows, err := repo.ClaimOverview(ctx)
		if err != nil {
			t.Fatalf("ClaimOverview: %v", err)
		}
		if len(rows) != 2 {
			t.Fatalf("want 2 rows, got %+v", rows)
		}
		first := rows[0]
		if first.ItemName != "Wallet" || first.ClaimerName != "ben" || first.ClaimStatus != "pending" || first.ItemStatus != "lost" {
			t.Fatalf("unexpected first row: %+v", first)
		}
		if rows[1].ClaimerName != "cara" || rows[1].ClaimStatus != "rejected" {
			t.Fatalf("unexpected second row: %+v", rows[1])
		}
	})

	t.Run("above average reporters", func(t *testing.T) {
		rows, err := repo.AboveAverageReporters(ctx)
		if err != nil {
			t.Fatalf("AboveAverageReporters: %v", err)
		}
		if len(rows) != 1 || rows[0].UserID != asha.ID || rows[0].ItemCount != 4 {
			t.Fatalf("unexpected reporters: %+v", rows)
		}
	})

	t.Run("count items by user", func(t *testing.T) {
		if n, err := repo.CountItemsByUser(ctx, asha.ID); err != nil || n != 4 {
			t.Fatalf("CountItemsByUser(asha) = %d, %v", n, err)
		}
		if n, err := repo.CountItemsByUser(ctx, idle.ID); err != nil || n != 0 {
			t.Fatalf("CountItemsByUser(idle) = %d, %v", n, err)
		}
		if ok, err := repo.UserExists(ctx, idle.ID); err != nil || !ok {
			t.Fatalf("UserExists(idle) = %v, %v", ok, err)
		}
		if ok, err := repo.UserExists(ctx, 999); err != nil || ok {
			t.Fatalf("UserExists(999) = %v, %v", ok, err)
		}
	})
}

func TestReportRepository_EmptyCatalog(t *testing.T) {
	repo := NewReportRepository(testdb.Open(t))
	ctx := context.Background()

	if rows, err := repo.CategoryCounts(ctx); err != nil || len(rows) != 0 {
		t.Fatalf("CategoryCounts on empty = %+v, %v", rows, err)
	}
	if rows, err := repo.AboveAverageReporters(ctx); err != nil || len(rows) != 0 {
		t.Fatalf("AboveAverageReporters on empty = %+v, %v", rows, err)
	}
}
