package user

import "context"

type Repository interface {
	Create(ctx context.Context, u *User) error
	GetByID(ctx context.Context, id uint64) (*User, error)
	List(ctx context.Context) ([]User, error)
	// Update overwrites every column but the id.
	Update(ctx context.Context, u *User) error
	Delete(ctx context.Context, id uint64) error
}
