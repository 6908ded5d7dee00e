package item

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"lostfound/internal/domain/apperr"
	domain "lostfound/internal/domain/item"
	"lostfound/internal/domain/uow"

	"gorm.io/gorm"
)

// Recorder receives item workflow events.
type Recorder interface {
	ItemRegistered()
	ItemStatusChanged(status string)
}

type nopRecorder struct{}

func (nopRecorder) ItemRegistered()          {}
func (nopRecorder) ItemStatusChanged(string) {}

type Usecase struct {
	items domain.Repository
	uow   uow.UnitOfWork
	now   func() time.Time
	rec   Recorder
}

type Option func(*Usecase)

func WithClock(now func() time.Time) Option { return func(u *Usecase) { u.now = now } }
func WithRecorder(r Recorder) Option        { return func(u *Usecase) { u.rec = r } }

// NewUsecase: items serves the unlocked reads, tx every write.
func NewUsecase(items domain.Repository, tx uow.UnitOfWork, opts ...Option) *Usecase {
	u := &Usecase{
		items: items,
		uow:   tx,
		now:   func() time.Time { return time.Now().UTC() },
		rec:   nopRecorder{},
	}
	for _, o := range opts {
		o(u)
	}
	return u
}

// CreateItem registers a lost or found item. The provenance note is part of
// the inserted description.
func (u *Usecase) CreateItem(ctx context.Context, in CreateItemInput) (*ItemDTO, error) {
	name := strings.TrimSpace(in.Name)
	if name == "" {
		return nil, apperr.Validation("item name is required")
	}
	status := domain.Status(strings.TrimSpace(in.Status))
	if status == "" {
		return nil, apperr.Validation("item status is required")
	}
	if !status.Reportable() {
		return nil, apperr.Validation("item status %q must be %q or %q", status, domain.StatusLost, domain.StatusFound)
	}

	var created *domain.Item
	err := u.uow.WithinTx(ctx, func(r uow.Repos) error {
		if _, err := r.Users.GetByID(ctx, in.ReportedBy); err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return apperr.Reference("reporting user %d does not exist", in.ReportedBy)
			}
			return fmt.Errorf("load reporter: %w", err)
		}
		if _, err := r.Locations.GetByID(ctx, in.LocationID); err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return apperr.Reference("location %d does not exist", in.LocationID)
			}
			return fmt.Errorf("load location: %w", err)
		}

		now := u.now().UTC()
		it := &domain.Item{
			Name:        name,
			Description: domain.AppendNote(in.Description, domain.ProvenanceNote(now)),
			Category:    strings.TrimSpace(in.Category),
			Status:      status,
			ReportDate:  now,
			ReportedBy:  in.ReportedBy,
			LocationID:  in.LocationID,
		}
		if err := r.Items.Create(ctx, it); err != nil {
			return fmt.Errorf("insert item: %w", err)
		}
		created = it
		return nil
	})
	if err != nil {
		if errors.Is(err, gorm.ErrForeignKeyViolated) {
			// reporter or location removed between the check and the insert
			return nil, apperr.Reference("reporter %d or location %d no longer exists", in.ReportedBy, in.LocationID)
		}
		return nil, err
	}
	u.rec.ItemRegistered()
	return toDTO(created), nil
}

func (u *Usecase) GetItem(ctx context.Context, id uint64) (*ItemDTO, error) {
	it, err := u.items.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperr.NotFound("item %d not found", id)
		}
		return nil, fmt.Errorf("load item: %w", err)
	}
	return toDTO(it), nil
}

// ListItems returns items ordered by id; an empty status lists all of them.
func (u *Usecase) ListItems(ctx context.Context, status string) ([]ItemDTO, error) {
	s := domain.Status(strings.TrimSpace(status))
	if s != "" && !s.Valid() {
		return nil, apperr.Validation("unknown item status %q", status)
	}
	items, err := u.items.List(ctx, s)
	if err != nil {
		return nil, fmt.Errorf("list items: %w", err)
	}
	out := make([]ItemDTO, 0, len(items))
	for i := range items {
		out = append(out, *toDTO(&items[i]))
	}
	return out, nil
}

// SetItemStatus toggles an unclaimed item between lost and found.
func (u *Usecase) SetItemStatus(ctx context.Context, id uint64, status string) (*ItemDTO, error) {
	target := domain.Status(strings.TrimSpace(status))
	if !target.Reportable() {
		return nil, apperr.Validation("item status %q must be %q or %q", status, domain.StatusLost, domain.StatusFound)
	}

	var (
		out     *domain.Item
		changed bool
	)
	err := u.uow.WithinItemTx(ctx, id, func(r uow.Repos, it *domain.Item) error {
		if it.Status == domain.StatusClaimed {
			return apperr.InvalidState("item %d is already claimed", id)
		}
		if it.Status != target {
			if err := r.Items.UpdateStatus(ctx, id, target); err != nil {
				if errors.Is(err, domain.ErrClaimed) {
					return apperr.InvalidState("item %d is already claimed", id)
				}
				return fmt.Errorf("update item status: %w", err)
			}
			it.Status = target
			changed = true
		}
		out = it
		return nil
	})
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, apperr.NotFound("item %d not found", id)
		}
		return nil, err
	}
	if changed {
		u.rec.ItemStatusChanged(string(target))
	}
	return toDTO(out), nil
}

// UpdateItemDetails edits name, description, category and location. Status is
// left to SetItemStatus and claim resolution; the annotations already in the
// description are kept behind the new text.
func (u *Usecase) UpdateItemDetails(ctx context.Context, id uint64, in UpdateItemInput) (*ItemDTO, error) {
	name := strings.TrimSpace(in.Name)
	if name == "" {
		return nil, apperr.Validation("item name is required")
	}
	if domain.HasNotes(in.Description) {
		return nil, apperr.Validation("description must not contain report or claim annotations")
	}

	var out *domain.Item
	err := u.uow.WithinItemTx(ctx, id, func(r uow.Repos, it *domain.Item) error {
		if _, err := r.Locations.GetByID(ctx, in.LocationID); err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return apperr.Reference("location %d does not exist", in.LocationID)
			}
			return fmt.Errorf("load location: %w", err)
		}

		d := domain.Details{
			Name:        name,
			Description: domain.ReplaceText(it.Description, in.Description),
			Category:    strings.TrimSpace(in.Category),
			LocationID:  in.LocationID,
		}
		if err := r.Items.UpdateDetails(ctx, id, d); err != nil {
			return fmt.Errorf("update item: %w", err)
		}
		it.Name, it.Description, it.Category, it.LocationID = d.Name, d.Description, d.Category, d.LocationID
		out = it
		return nil
	})
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrNotFound):
			return nil, apperr.NotFound("item %d not found", id)
		case errors.Is(err, gorm.ErrForeignKeyViolated):
			return nil, apperr.Reference("location %d no longer exists", in.LocationID)
		}
		return nil, err
	}
	slog.InfoContext(ctx, "item updated", "item_id", id, "location_id", in.LocationID)
	return toDTO(out), nil
}
