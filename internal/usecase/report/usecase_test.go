package report

import (
	"context"
	"errors"
	"testing"

	"lostfound/internal/adapter/repository/sqlstore"
	"lostfound/internal/domain/apperr"
	"lostfound/internal/domain/claim"
	"lostfound/internal/domain/item"
	domain "lostfound/internal/domain/report"
	"lostfound/internal/testutil/reportmock"
	"lostfound/internal/testutil/testdb"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUsecase_CountItemsByUser(t *testing.T) {
	tests := []struct {
		name    string
		exists  bool
		count   int64
		want    int64
		wantErr error
	}{
		{name: "user with items", exists: true, count: 3, want: 3},
		{name: "user without items", exists: true, count: 0, want: 0},
		{name: "unknown user", exists: false, wantErr: apperr.ErrReference},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			counted := false
			repo := &reportmock.Repo{
				UserExistsFn: func(context.Context, uint64) (bool, error) { return tc.exists, nil },
				CountItemsByUserFn: func(context.Context, uint64) (int64, error) {
					counted = true
					return tc.count, nil
				},
			}
			got, err := NewUsecase(repo).CountItemsByUser(context.Background(), 9)
			if !errors.Is(err, tc.wantErr) {
				t.Fatalf("want err %v, got %v", tc.wantErr, err)
			}
			if got != tc.want {
				t.Fatalf("got %d, want %d", got, tc.want)
			}
			if counted != tc.exists {
				t.Fatalf("count ran=%v for exists=%v", counted, tc.exists)
			}
		})
	}
}

func TestUsecase_EmptyReportsAreNotNil(t *testing.T) {
	uc := NewUsecase(&reportmock.Repo{})
	ctx := context.Background()

	cats, err := uc.CategoryCounts(ctx)
	if err != nil || cats == nil {
		t.Fatalf("CategoryCounts = %#v, %v", cats, err)
	}
	rows, err := uc.ClaimOverview(ctx)
	if err != nil || rows == nil {
		t.Fatalf("ClaimOverview = %#v, %v", rows, err)
	}
	reps, err := uc.AboveAverageReporters(ctx)
	if err != nil || reps == nil {
		t.Fatalf("AboveAverageReporters = %#v, %v", reps, err)
	}
}

func TestUsecase_StoreErrorsAreWrapped(t *testing.T) {
	boom := errors.New("connection reset")
	uc := NewUsecase(&reportmock.Repo{
		CategoryCountsFn: func(context.Context) ([]domain.CategoryCount, error) { return nil, boom },
		UserExistsFn:     func(context.Context, uint64) (bool, error) { return false, boom },
	})
	if _, err := uc.CategoryCounts(context.Background()); !errors.Is(err, boom) {
		t.Fatalf("CategoryCounts: want %v, got %v", boom, err)
	}
	if _, err := uc.CountItemsByUser(context.Background(), 1); !errors.Is(err, boom) || errors.Is(err, apperr.ErrReference) {
		t.Fatalf("CountItemsByUser: want wrapped %v, got %v", boom, err)
	}
}

func TestReports_AgainstSQLite(t *testing.T) {
	db := testdb.Open(t)
	ctx := context.Background()
	asha := testdb.SeedUser(t, db, "asha")
	ben := testdb.SeedUser(t, db, "ben")
	idle := testdb.SeedUser(t, db, "idle")
	loc := testdb.SeedLocation(t, db, "Lab")

	wallet := testdb.SeedItem(t, db, "Wallet", "wallets", item.StatusLost, asha.ID, loc.ID)
	testdb.SeedItem(t, db, "Purse", "wallets", item.StatusFound, asha.ID, loc.ID)
	testdb.SeedItem(t, db, "Charger", "electronics", item.StatusFound, asha.ID, loc.ID)
	testdb.SeedItem(t, db, "Cap", "clothing", item.StatusLost, ben.ID, loc.ID)
	testdb.SeedClaim(t, db, wallet.ID, ben.ID, claim.StatusPending)

	uc := NewUsecase(sqlstore.NewReportRepository(db))

	cats, err := uc.CategoryCounts(ctx)
	require.NoError(t, err)
	require.Len(t, cats, 3)
	assert.Equal(t, domain.CategoryCount{Category: "wallets", TotalItems: 2}, cats[0])
	assert.Equal(t, "clothing", cats[1].Category)

	rows, err := uc.ClaimOverview(ctx)
	require.NoError(t, err)
	require.Len(t, rows, 1)
	assert.Equal(t, "Wallet", rows[0].ItemName)
	assert.Equal(t, "ben", rows[0].ClaimerName)
	assert.Equal(t, "pending", rows[0].ClaimStatus)
	assert.Equal(t, "lost", rows[0].ItemStatus)

	reps, err := uc.AboveAverageReporters(ctx)
	require.NoError(t, err)
	require.Len(t, reps, 1)
	assert.Equal(t, asha.ID, reps[0].UserID)
	assert.EqualValues(t, 3, reps[0].ItemCount)

	n, err := uc.CountItemsByUser(ctx, idle.ID)
	require.NoError(t, err)
	assert.Zero(t, n)

	_, err = uc.CountItemsByUser(ctx, 777)
	assert.ErrorIs(t, err, apperr.ErrReference)
}
