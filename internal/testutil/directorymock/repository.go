// Package directorymock holds function-backed mocks for the user and
// location repositories.
package directorymock

import (
	"context"

	"lostfound/internal/domain/location"
	"lostfound/internal/domain/user"
)

var (
	_ user.Repository     = (*Users)(nil)
	_ location.Repository = (*Locations)(nil)
)

type Users struct {
	CreateFn  func(ctx context.Context, u *user.User) error
	GetByIDFn func(ctx context.Context, id uint64) (*user.User, error)
	ListFn    func(ctx context.Context) ([]user.User, error)
	UpdateFn  func(ctx context.Context, u *user.User) error
	DeleteFn  func(ctx context.Context, id uint64) error
}

func (m *Users) Create(ctx context.Context, u *user.User) error {
	if m.CreateFn != nil {
		return m.CreateFn(ctx, u)
	}
	return nil
}

func (m *Users) GetByID(ctx context.Context, id uint64) (*user.User, error) {
	if m.GetByIDFn != nil {
		return m.GetByIDFn(ctx, id)
	}
	return nil, context.Canceled
}

func (m *Users) List(ctx context.Context) ([]user.User, error) {
	if m.ListFn != nil {
		return m.ListFn(ctx)
	}
	return nil, nil
}

func (m *Users) Update(ctx context.Context, u *user.User) error {
	if m.UpdateFn != nil {
		return m.UpdateFn(ctx, u)
	}
	return nil
}

func (m *Users) Delete(ctx context.Context, id uint64) error {
	if m.DeleteFn != nil {
		return m.DeleteFn(ctx, id)
	}
	return nil
}

type Locations struct {
	CreateFn  func(ctx context.Context, l *location.Location) error
	GetByIDFn func(ctx context.Context, id uint64) (*location.Location, error)
	ListFn    func(ctx context.Context) ([]location.Location, error)
	UpdateFn  func(ctx context.Context, l *location.Location) error
	DeleteFn  func(ctx context.Context, id uint64) error
}

func (m *Locations) Create(ctx context.Context, l *location.Location) error {
	if m.CreateFn != nil {
		return m.CreateFn(ctx, l)
	}
	return nil
}

func (m *Locations) GetByID(ctx context.Context, id uint64) (*location.Location, error) {
	if m.GetByIDFn != nil {
		return m.GetByIDFn(ctx, id)
	}
	return nil, context.Canceled
}

func (m *Locations) List(ctx context.Context) ([]location.Location, error) {
	if m.ListFn != nil {
		return m.ListFn(ctx)
	}
	return nil, nil
}

func (m *Locations) Update(ctx context.Context, l *location.Location) error {
	if m.UpdateFn != nil {
		return m.UpdateFn(ctx, l)
	}
	return nil
}

func (m *Locations) Delete(ctx context.Context, id uint64) error {
	if m.DeleteFn != nil {
		return m.DeleteFn(ctx, id)
	}
	return nil
}
