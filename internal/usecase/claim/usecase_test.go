package claim

import (
	"context"
	"errors"
	"testing"
	"time"

	"lostfound/internal/domain/apperr"
	domain "lostfound/internal/domain/claim"
	"lostfound/internal/domain/item"
	"lostfound/internal/domain/uow"
	"lostfound/internal/domain/user"
	"lostfound/internal/testutil/claimmock"
	"lostfound/internal/testutil/directorymock"
	"lostfound/internal/testutil/itemmock"
	"lostfound/internal/testutil/uowmock"

	"gorm.io/gorm"
)

var fixedNow = time.Date(2025, 9, 6, 10, 0, 0, 0, time.UTC)

type recorderSpy struct {
	filed      int
	decisions  []string
	superseded int64
	conflicts  int
}

func (r *recorderSpy) ClaimFiled() { r.filed++ }
func (r *recorderSpy) ClaimResolved(d string, n int64) {
	r.decisions = append(r.decisions, d)
	r.superseded += n
}
func (r *recorderSpy) ResolveConflict() { r.conflicts++ }

func claimerDirectory() *directorymock.Users {
	return &directorymock.Users{
		GetByIDFn: func(_ context.Context, id uint64) (*user.User, error) {
			if id == 7 {
				return &user.User{ID: 7, Name: "ben"}, nil
			}
			return nil, gorm.ErrRecordNotFound
		},
	}
}

func TestUsecase_FileClaim(t *testing.T) {
	tests := []struct {
		name    string
		in      FileClaimInput
		item    *item.Item
		wantErr error
		inserts int
	}{
		{
			name:    "happy path",
			in:      FileClaimInput{ItemID: 3, ClaimerID: 7, Remarks: "has my initials"},
			item:    &item.Item{ID: 3, Status: item.StatusLost},
			inserts: 1,
		},
		{name: "zero item id", in: FileClaimInput{ClaimerID: 7}, wantErr: apperr.ErrValidation},
		{name: "zero claimer id", in: FileClaimInput{ItemID: 3}, wantErr: apperr.ErrValidation},
		{name: "unknown item", in: FileClaimInput{ItemID: 3, ClaimerID: 7}, wantErr: apperr.ErrReference},
		{
			name:    "unknown claimer",
			in:      FileClaimInput{ItemID: 3, ClaimerID: 8},
			item:    &item.Item{ID: 3, Status: item.StatusFound},
			wantErr: apperr.ErrReference,
		},
		{
			name:    "item already claimed",
			in:      FileClaimInput{ItemID: 3, ClaimerID: 7},
			item:    &item.Item{ID: 3, Status: item.StatusClaimed},
			wantErr: apperr.ErrInvalidState,
		},
		{
			name:    "unknown claimer wins over claimed item",
			in:      FileClaimInput{ItemID: 3, ClaimerID: 8},
			item:    &item.Item{ID: 3, Status: item.StatusClaimed},
			wantErr: apperr.ErrReference,
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			inserts := 0
			claims := &claimmock.Repo{
				CreateFn: func(_ context.Context, c *domain.Claim) error {
					inserts++
					if c.Status != domain.StatusPending || c.ItemID != 3 || c.ClaimerID != 7 {
						t.Fatalf("unexpected insert: %+v", c)
					}
					c.ID = 11
					return nil
				},
			}
			items := &itemmock.Repo{
				UpdateStatusFn: func(context.Context, uint64, item.Status) error {
					t.Fatalf("filing a claim must not touch the item status")
					return nil
				},
			}
			repos := uow.Repos{Users: claimerDirectory(), Items: items, Claims: claims}
			spy := &recorderSpy{}
			uc := NewUsecase(claims, uowmock.Passthrough(repos, tc.item, nil),
				WithClock(func() time.Time { return fixedNow }), WithRecorder(spy))

			dto, err := uc.FileClaim(context.Background(), tc.in)
			if !errors.Is(err, tc.wantErr) {
				t.Fatalf("want err %v, got %v", tc.wantErr, err)
			}
			if inserts != tc.inserts || spy.filed != tc.inserts {
				t.Fatalf("inserts=%d filed=%d, want %d", inserts, spy.filed, tc.inserts)
			}
			if tc.wantErr == nil {
				if dto.ClaimID != 11 || dto.Status != "pending" || dto.Remarks != "has my initials" || !dto.ClaimDate.Equal(fixedNow) {
					t.Fatalf("unexpected dto: %+v", dto)
				}
			}
		})
	}
}

func TestUsecase_FileClaim_ClaimerDeletedBeforeInsert(t *testing.T) {
	claims := &claimmock.Repo{
		CreateFn: func(context.Context, *domain.Claim) error { return gorm.ErrForeignKeyViolated },
	}
	repos := uow.Repos{Users: claimerDirectory(), Items: &itemmock.Repo{}, Claims: claims}
	uc := NewUsecase(claims, uowmock.Passthrough(repos, &item.Item{ID: 3, Status: item.StatusLost}, nil))

	_, err := uc.FileClaim(context.Background(), FileClaimInput{ItemID: 3, ClaimerID: 7})
	if !errors.Is(err, apperr.ErrReference) {
		t.Fatalf("want ErrReference, got %v", err)
	}
}

func TestUsecase_ResolveClaim(t *testing.T) {
	type writes struct {
		transitions int
		marked      string
		superseded  string
	}

	newPending := func() *domain.Claim {
		return &domain.Claim{ID: 21, ItemID: 3, ClaimerID: 7, Status: domain.StatusPending}
	}
	newItem := func() *item.Item {
		return &item.Item{ID: 3, Status: item.StatusLost, Description: "red bottle"}
	}

	tests := []struct {
		name          string
		in            ResolveClaimInput
		claim         *domain.Claim
		item          *item.Item
		approvedCount int64
		casLost       bool
		wantErr       error
		wantStatus    string
		want          writes
	}{
		{
			name:       "approve cascades",
			in:         ResolveClaimInput{ClaimID: 21, Decision: "approved", Remark: "verified id card"},
			claim:      newPending(),
			item:       newItem(),
			wantStatus: "approved",
			want: writes{
				transitions: 1,
				marked:      "red bottle [Claimed by ben (user #7) via claim #21 on 2025-09-06 10:00:00 UTC]",
				superseded:  "Superseded: claim #21 was approved for this item",
			},
		},
		{
			name:       "reject leaves item alone",
			in:         ResolveClaimInput{ClaimID: 21, Decision: "rejected", Remark: "wrong colour"},
			claim:      newPending(),
			item:       newItem(),
			wantStatus: "rejected",
			want:       writes{transitions: 1},
		},
		{name: "zero claim id", in: ResolveClaimInput{Decision: "approved"}, wantErr: apperr.ErrValidation},
		{name: "pending is not a decision", in: ResolveClaimInput{ClaimID: 21, Decision: "pending"}, wantErr: apperr.ErrValidation},
		{name: "unknown decision", in: ResolveClaimInput{ClaimID: 21, Decision: "maybe"}, wantErr: apperr.ErrValidation},
		{name: "claim not found", in: ResolveClaimInput{ClaimID: 999, Decision: "approved"}, wantErr: apperr.ErrNotFound},
		{
			name:    "already resolved",
			in:      ResolveClaimInput{ClaimID: 21, Decision: "rejected"},
			claim:   &domain.Claim{ID: 21, ItemID: 3, ClaimerID: 7, Status: domain.StatusApproved},
			item:    newItem(),
			wantErr: apperr.ErrInvalidState,
		},
		{
			name:    "item already claimed",
			in:      ResolveClaimInput{ClaimID: 21, Decision: "approved"},
			claim:   newPending(),
			item:    &item.Item{ID: 3, Status: item.StatusClaimed},
			wantErr: apperr.ErrInvalidState,
		},
		{
			name:          "sibling already approved",
			in:            ResolveClaimInput{ClaimID: 21, Decision: "approved"},
			claim:         newPending(),
			item:          newItem(),
			approvedCount: 1,
			wantErr:       apperr.ErrInvalidState,
		},
		{
			name:    "compare-and-set lost",
			in:      ResolveClaimInput{ClaimID: 21, Decision: "approved"},
			claim:   newPending(),
			item:    newItem(),
			casLost: true,
			wantErr: apperr.ErrInvalidState,
			want:    writes{transitions: 1},
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			var got writes
			claims := &claimmock.Repo{
				CountByItemAndStatusFn: func(_ context.Context, itemID uint64, s domain.Status) (int64, error) {
					if s != domain.StatusApproved {
						t.Fatalf("counted %q claims", s)
					}
					return tc.approvedCount, nil
				},
				TransitionFn: func(_ context.Context, id uint64, from, to domain.Status, remarks string) (bool, error) {
					got.transitions++
					if from != domain.StatusPending || string(to) != tc.in.Decision || remarks != tc.in.Remark {
						t.Fatalf("unexpected transition %s->%s %q", from, to, remarks)
					}
					return !tc.casLost, nil
				},
				RejectPendingFn: func(_ context.Context, itemID, exceptID uint64, remarks string) (int64, error) {
					if itemID != 3 || exceptID != 21 {
						t.Fatalf("RejectPending(%d, %d)", itemID, exceptID)
					}
					got.superseded = remarks
					return 2, nil
				},
			}
			items := &itemmock.Repo{
				MarkClaimedFn: func(_ context.Context, id uint64, desc string) error {
					got.marked = desc
					return nil
				},
			}
			repos := uow.Repos{Users: claimerDirectory(), Items: items, Claims: claims}
			spy := &recorderSpy{}
			uc := NewUsecase(claims, uowmock.Passthrough(repos, tc.item, tc.claim),
				WithClock(func() time.Time { return fixedNow }), WithRecorder(spy))

			dto, err := uc.ResolveClaim(context.Background(), tc.in)
			if !errors.Is(err, tc.wantErr) {
				t.Fatalf("want err %v, got %v", tc.wantErr, err)
			}
			if got != tc.want {
				t.Fatalf("writes = %+v, want %+v", got, tc.want)
			}
			if tc.wantErr != nil {
				if len(spy.decisions) != 0 {
					t.Fatalf("resolution recorded on failure")
				}
				if errors.Is(tc.wantErr, apperr.ErrInvalidState) && spy.conflicts != 1 {
					t.Fatalf("conflict not recorded")
				}
				return
			}
			if dto.Status != tc.wantStatus || dto.Remarks != tc.in.Remark {
				t.Fatalf("unexpected dto: %+v", dto)
			}
			if len(spy.decisions) != 1 || spy.decisions[0] != tc.wantStatus {
				t.Fatalf("recorded decisions %v", spy.decisions)
			}
		})
	}
}

func TestUsecase_ResolveClaim_SupersedeFailureAborts(t *testing.T) {
	boom := errors.New("lock wait timeout")
	claims := &claimmock.Repo{
		RejectPendingFn: func(context.Context, uint64, uint64, string) (int64, error) { return 0, boom },
	}
	repos := uow.Repos{Users: claimerDirectory(), Items: &itemmock.Repo{}, Claims: claims}
	c := &domain.Claim{ID: 21, ItemID: 3, ClaimerID: 7, Status: domain.StatusPending}
	uc := NewUsecase(claims, uowmock.Passthrough(repos, &item.Item{ID: 3, Status: item.StatusFound}, c))

	if _, err := uc.ResolveClaim(context.Background(), ResolveClaimInput{ClaimID: 21, Decision: "approved"}); !errors.Is(err, boom) {
		t.Fatalf("want %v surfaced for rollback, got %v", boom, err)
	}
}

func TestUsecase_GetAndListClaims(t *testing.T) {
	claims := &claimmock.Repo{
		GetByIDFn: func(_ context.Context, id uint64) (*domain.Claim, error) {
			if id == 4 {
				return &domain.Claim{ID: 4, Status: domain.StatusRejected}, nil
			}
			return &domain.Claim{}, gorm.ErrRecordNotFound
		},
		ListFn: func(_ context.Context, itemID uint64) ([]domain.Claim, error) {
			if itemID != 3 {
				t.Fatalf("List(%d)", itemID)
			}
			return []domain.Claim{{ID: 1}, {ID: 2}}, nil
		},
	}
	uc := NewUsecase(claims, uowmock.New())
	ctx := context.Background()

	if dto, err := uc.GetClaim(ctx, 4); err != nil || dto.Status != "rejected" {
		t.Fatalf("GetClaim(4) = %+v, %v", dto, err)
	}
	if _, err := uc.GetClaim(ctx, 5); !errors.Is(err, apperr.ErrNotFound) {
		t.Fatalf("GetClaim(5): want ErrNotFound, got %v", err)
	}
	out, err := uc.ListClaims(ctx, 3)
	if err != nil || len(out) != 2 {
		t.Fatalf("ListClaims = %+v, %v", out, err)
	}
}
