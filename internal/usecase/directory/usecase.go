// Package directory manages the users and locations the catalog refers to.
package directory

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"lostfound/internal/domain/apperr"
	"lostfound/internal/domain/location"
	"lostfound/internal/domain/uow"
	"lostfound/internal/domain/user"

	"github.com/go-playground/validator/v10"
	"gorm.io/gorm"
)

const (
	usersKey     = "users"
	locationsKey = "locations"
)

// ListCache is a read-through store for lookup lists.
type ListCache interface {
	Get(ctx context.Context, key string, dst any) (bool, error)
	Set(ctx context.Context, key string, v any) error
	Invalidate(ctx context.Context, keys ...string) error
}

type Usecase struct {
	users     user.Repository
	locations location.Repository
	uow       uow.UnitOfWork
	cache     ListCache // nil disables caching
	validate  *validator.Validate
}

type Option func(*Usecase)

func WithCache(c ListCache) Option { return func(u *Usecase) { u.cache = c } }

func NewUsecase(users user.Repository, locations location.Repository, tx uow.UnitOfWork, opts ...Option) *Usecase {
	u := &Usecase{users: users, locations: locations, uow: tx, validate: validator.New()}
	for _, o := range opts {
		o(u)
	}
	return u
}

// userFrom validates in and returns the row to write.
func (u *Usecase) userFrom(in CreateUserInput) (*user.User, error) {
	name := strings.TrimSpace(in.Name)
	if name == "" {
		return nil, apperr.Validation("user name is required")
	}
	email := strings.TrimSpace(in.Email)
	if err := u.validate.Var(email, "required,email"); err != nil {
		return nil, apperr.Validation("a valid email is required")
	}
	role := user.Role(strings.TrimSpace(in.Role))
	if role == "" {
		role = user.RoleStudent
	}
	if !role.Valid() {
		return nil, apperr.Validation("unknown role %q", in.Role)
	}
	return &user.User{Name: name, Email: email, Phone: strings.TrimSpace(in.Phone), Role: role}, nil
}

func (u *Usecase) CreateUser(ctx context.Context, in CreateUserInput) (*user.User, error) {
	usr, err := u.userFrom(in)
	if err != nil {
		return nil, err
	}
	if err := u.users.Create(ctx, usr); err != nil {
		return nil, fmt.Errorf("insert user: %w", err)
	}
	u.invalidate(ctx, usersKey)
	return usr, nil
}

func (u *Usecase) GetUser(ctx context.Context, id uint64) (*user.User, error) {
	usr, err := u.users.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperr.NotFound("user %d not found", id)
		}
		return nil, fmt.Errorf("load user: %w", err)
	}
	return usr, nil
}

func (u *Usecase) ListUsers(ctx context.Context) ([]user.User, error) {
	return readThrough(ctx, u, usersKey, u.users.List)
}

func (u *Usecase) UpdateUser(ctx context.Context, id uint64, in UpdateUserInput) (*user.User, error) {
	usr, err := u.userFrom(CreateUserInput(in))
	if err != nil {
		return nil, err
	}
	usr.ID = id
	err = u.uow.WithinTx(ctx, func(r uow.Repos) error {
		if _, err := r.Users.GetByID(ctx, id); err != nil {
			return err
		}
		return r.Users.Update(ctx, usr)
	})
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperr.NotFound("user %d not found", id)
		}
		return nil, fmt.Errorf("update user: %w", err)
	}
	u.invalidate(ctx, usersKey)
	return usr, nil
}

// DeleteUser refuses while any item or claim still points at the user.
func (u *Usecase) DeleteUser(ctx context.Context, id uint64) error {
	err := u.uow.WithinTx(ctx, func(r uow.Repos) error {
		if _, err := r.Users.GetByID(ctx, id); err != nil {
			return err
		}
		items, err := r.Items.CountByReporter(ctx, id)
		if err != nil {
			return fmt.Errorf("count reported items: %w", err)
		}
		claims, err := r.Claims.CountByClaimer(ctx, id)
		if err != nil {
			return fmt.Errorf("count claims: %w", err)
		}
		if items > 0 || claims > 0 {
			return apperr.Reference("user %d is referenced by %d item(s) and %d claim(s)", id, items, claims)
		}
		return r.Users.Delete(ctx, id)
	})
	if err != nil {
		switch {
		case errors.Is(err, gorm.ErrRecordNotFound):
			return apperr.NotFound("user %d not found", id)
		case errors.Is(err, gorm.ErrForeignKeyViolated):
			// an item or claim referencing the user committed after the counts
			return apperr.Reference("user %d is still referenced", id)
		}
		return err
	}
	u.invalidate(ctx, usersKey)
	return nil
}

func locationFrom(in CreateLocationInput) (*location.Location, error) {
	name := strings.TrimSpace(in.Name)
	if name == "" {
		return nil, apperr.Validation("location name is required")
	}
	return &location.Location{Name: name, Building: strings.TrimSpace(in.Building), FloorNo: in.FloorNo}, nil
}

func (u *Usecase) CreateLocation(ctx context.Context, in CreateLocationInput) (*location.Location, error) {
	loc, err := locationFrom(in)
	if err != nil {
		return nil, err
	}
	if err := u.locations.Create(ctx, loc); err != nil {
		return nil, fmt.Errorf("insert location: %w", err)
	}
	u.invalidate(ctx, locationsKey)
	return loc, nil
}

func (u *Usecase) GetLocation(ctx context.Context, id uint64) (*location.Location, error) {
	loc, err := u.locations.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperr.NotFound("location %d not found", id)
		}
		return nil, fmt.Errorf("load location: %w", err)
	}
	return loc, nil
}

func (u *Usecase) ListLocations(ctx context.Context) ([]location.Location, error) {
	return readThrough(ctx, u, locationsKey, u.locations.List)
}

func (u *Usecase) UpdateLocation(ctx context.Context, id uint64, in UpdateLocationInput) (*location.Location, error) {
	loc, err := locationFrom(CreateLocationInput(in))
	if err != nil {
		return nil, err
	}
	loc.ID = id
	err = u.uow.WithinTx(ctx, func(r uow.Repos) error {
		if _, err := r.Locations.GetByID(ctx, id); err != nil {
			return err
		}
		return r.Locations.Update(ctx, loc)
	})
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperr.NotFound("location %d not found", id)
		}
		return nil, fmt.Errorf("update location: %w", err)
	}
	u.invalidate(ctx, locationsKey)
	return loc, nil
}

func (u *Usecase) DeleteLocation(ctx context.Context, id uint64) error {
	err := u.uow.WithinTx(ctx, func(r uow.Repos) error {
		if _, err := r.Locations.GetByID(ctx, id); err != nil {
			return err
		}
		n, err := r.Items.CountByLocation(ctx, id)
		if err != nil {
			return fmt.Errorf("count items at location: %w", err)
		}
		if n > 0 {
			return apperr.Reference("location %d is referenced by %d item(s)", id, n)
		}
		return r.Locations.Delete(ctx, id)
	})
	if err != nil {
		switch {
		case errors.Is(err, gorm.ErrRecordNotFound):
			return apperr.NotFound("location %d not found", id)
		case errors.Is(err, gorm.ErrForeignKeyViolated):
			return apperr.Reference("location %d is still referenced", id)
		}
		return err
	}
	u.invalidate(ctx, locationsKey)
	return nil
}

// readThrough serves key from the cache when it can and falls back to load
// on a miss or any cache failure.
func readThrough[T any](ctx context.Context, u *Usecase, key string, load func(context.Context) ([]T, error)) ([]T, error) {
	if u.cache != nil {
		var cached []T
		hit, err := u.cache.Get(ctx, key, &cached)
		if err != nil {
			slog.WarnContext(ctx, "lookup cache read failed", "key", key, "err", err)
		} else if hit {
			return cached, nil
		}
	}

	rows, err := load(ctx)
	if err != nil {
		return nil, fmt.Errorf("list %s: %w", key, err)
	}
	if rows == nil {
		rows = []T{}
	}
	if u.cache != nil {
		if err := u.cache.Set(ctx, key, rows); err != nil {
			slog.WarnContext(ctx, "lookup cache write failed", "key", key, "err", err)
		}
	}
	return rows, nil
}

func (u *Usecase) invalidate(ctx context.Context, key string) {
	if u.cache == nil {
		return
	}
	if err := u.cache.Invalidate(ctx, key); err != nil {
		slog.WarnContext(ctx, "lookup cache invalidation failed", "key", key, "err", err)
	}
}
