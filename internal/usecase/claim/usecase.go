package claim

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"lostfound/internal/domain/apperr"
	domain "lostfound/internal/domain/claim"
	"lostfound/internal/domain/item"
	"lostfound/internal/domain/uow"

	"gorm.io/gorm"
)

// Recorder receives claim workflow events.
type Recorder interface {
	ClaimFiled()
	ClaimResolved(decision string, superseded int64)
	ResolveConflict()
}

type nopRecorder struct{}

func (nopRecorder) ClaimFiled()                 {}
func (nopRecorder) ClaimResolved(string, int64) {}
func (nopRecorder) ResolveConflict()            {}

type Usecase struct {
	claims domain.Repository
	uow    uow.UnitOfWork
	now    func() time.Time
	rec    Recorder
}

type Option func(*Usecase)

func WithClock(now func() time.Time) Option { return func(u *Usecase) { u.now = now } }
func WithRecorder(r Recorder) Option        { return func(u *Usecase) { u.rec = r } }

// NewUsecase: claims serves the unlocked reads; every state change goes
// through tx.
func NewUsecase(claims domain.Repository, tx uow.UnitOfWork, opts ...Option) *Usecase {
	u := &Usecase{
		claims: claims,
		uow:    tx,
		now:    func() time.Time { return time.Now().UTC() },
		rec:    nopRecorder{},
	}
	for _, o := range opts {
		o(u)
	}
	return u
}

// FileClaim records a pending claim. The item row is locked so a claim
// cannot slip in while an approval on the same item is committing.
func (u *Usecase) FileClaim(ctx context.Context, in FileClaimInput) (*ClaimDTO, error) {
	if in.ItemID == 0 {
		return nil, apperr.Validation("item_id is required")
	}
	if in.ClaimerID == 0 {
		return nil, apperr.Validation("claimer_id is required")
	}

	var created *domain.Claim
	err := u.uow.WithinItemTx(ctx, in.ItemID, func(r uow.Repos, it *item.Item) error {
		// dangling references are reported before the item's state
		if _, err := r.Users.GetByID(ctx, in.ClaimerID); err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return apperr.Reference("claimer %d does not exist", in.ClaimerID)
			}
			return fmt.Errorf("load claimer: %w", err)
		}
		if it.Status == item.StatusClaimed {
			return apperr.InvalidState("item %d is already claimed", it.ID)
		}

		c := &domain.Claim{
			ItemID:    it.ID,
			ClaimerID: in.ClaimerID,
			ClaimDate: u.now().UTC(),
			Status:    domain.StatusPending,
			Remarks:   in.Remarks,
		}
		if err := r.Claims.Create(ctx, c); err != nil {
			return fmt.Errorf("insert claim: %w", err)
		}
		created = c
		return nil
	})
	if err != nil {
		switch {
		case errors.Is(err, item.ErrNotFound):
			return nil, apperr.Reference("item %d does not exist", in.ItemID)
		case errors.Is(err, gorm.ErrForeignKeyViolated):
			// claimer deleted between the check and the insert
			return nil, apperr.Reference("claimer %d no longer exists", in.ClaimerID)
		}
		return nil, err
	}

	u.rec.ClaimFiled()
	slog.InfoContext(ctx, "claim filed", "claim_id", created.ID, "item_id", created.ItemID, "claimer_id", created.ClaimerID)
	return toDTO(created), nil
}

// ResolveClaim approves or rejects a pending claim. Approval also claims the
// item, annotates its description and supersedes every other pending claim
// on it, all in the same transaction.
func (u *Usecase) ResolveClaim(ctx context.Context, in ResolveClaimInput) (*ClaimDTO, error) {
	if in.ClaimID == 0 {
		return nil, apperr.Validation("claim_id is required")
	}
	decision := domain.Status(in.Decision)
	if !decision.IsDecision() {
		return nil, apperr.Validation("decision %q must be %q or %q", in.Decision, domain.StatusApproved, domain.StatusRejected)
	}

	var (
		resolved   *domain.Claim
		superseded int64
	)
	err := u.uow.WithinClaimTx(ctx, in.ClaimID, func(r uow.Repos, c *domain.Claim, it *item.Item) error {
		if c.Status != domain.StatusPending {
			return apperr.InvalidState("claim %d is already %s", c.ID, c.Status)
		}
		if decision == domain.StatusApproved {
			if it.Status == item.StatusClaimed {
				return apperr.InvalidState("item %d is already claimed", it.ID)
			}
			n, err := r.Claims.CountByItemAndStatus(ctx, it.ID, domain.StatusApproved)
			if err != nil {
				return fmt.Errorf("count approved claims: %w", err)
			}
			if n > 0 {
				return apperr.InvalidState("item %d already has an approved claim", it.ID)
			}
		}

		// compare-and-set on the pending status
		ok, err := r.Claims.Transition(ctx, c.ID, domain.StatusPending, decision, in.Remark)
		if err != nil {
			return fmt.Errorf("transition claim: %w", err)
		}
		if !ok {
			return apperr.InvalidState("claim %d is no longer pending", c.ID)
		}
		c.Status = decision
		c.Remarks = in.Remark
		resolved = c

		if decision != domain.StatusApproved {
			return nil
		}

		claimer, err := r.Users.GetByID(ctx, c.ClaimerID)
		if err != nil {
			return fmt.Errorf("load claimer %d: %w", c.ClaimerID, err)
		}
		note := item.ClaimedNote(claimer.Name, claimer.ID, c.ID, u.now())
		if err := r.Items.MarkClaimed(ctx, it.ID, item.AppendNote(it.Description, note)); err != nil {
			if errors.Is(err, item.ErrClaimed) {
				return apperr.InvalidState("item %d is already claimed", it.ID)
			}
			return fmt.Errorf("mark item claimed: %w", err)
		}

		superseded, err = r.Claims.RejectPending(ctx, it.ID, c.ID, domain.SupersededRemark(c.ID))
		if err != nil {
			return fmt.Errorf("supersede pending claims: %w", err)
		}
		return nil
	})
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrNotFound):
			return nil, apperr.NotFound("claim %d not found", in.ClaimID)
		case errors.Is(err, item.ErrNotFound):
			return nil, apperr.Reference("claim %d references a missing item", in.ClaimID)
		case errors.Is(err, apperr.ErrInvalidState):
			u.rec.ResolveConflict()
		}
		return nil, err
	}

	u.rec.ClaimResolved(string(decision), superseded)
	slog.InfoContext(ctx, "claim resolved",
		"claim_id", resolved.ID, "item_id", resolved.ItemID, "decision", decision, "superseded", superseded)
	return toDTO(resolved), nil
}

func (u *Usecase) GetClaim(ctx context.Context, id uint64) (*ClaimDTO, error) {
	c, err := u.claims.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperr.NotFound("claim %d not found", id)
		}
		return nil, fmt.Errorf("load claim: %w", err)
	}
	return toDTO(c), nil
}

// ListClaims returns claims ordered by id; itemID 0 lists every claim.
func (u *Usecase) ListClaims(ctx context.Context, itemID uint64) ([]ClaimDTO, error) {
	cs, err := u.claims.List(ctx, itemID)
	if err != nil {
		return nil, fmt.Errorf("list claims: %w", err)
	}
	out := make([]ClaimDTO, 0, len(cs))
	for i := range cs {
		out = append(out, *toDTO(&cs[i]))
	}
	return out, nil
}
