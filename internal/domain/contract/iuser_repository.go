package contract

import (
	"context"

	"github.com/danielmek/hotelhub/internal/domain/entity"
)

type IUserRepository interface {
	CreateUser(ctx context.Context, user *entity.User) error
	GetUserByID(ctx context.Context, id string) (*entity.User, error)
	// GetUserByUsername retrieves a user by username.
	GetUserByUsername(ctx context.Context, username string) (*entity.User, error)
	// UpdateUser updates an existing user and returns the updated user.
	UpdateUser(ctx context.Context, user *entity.User) (*entity.User, error)
	// UpdateUserPassword updates user's password by ID with the provided hashed password.
	UpdateUserPassword(ctx context.Context, id string, hashedPassword string) error
	// GetUsersByRoles retrieves users whose role is in the given set, newest first.
	GetUsersByRoles(ctx context.Context, roles []entity.UserRole) ([]*entity.User, error)
	// UpdateUserStatus sets the account status (active/suspended) by ID.
	UpdateUserStatus(ctx context.Context, id string, status entity.UserStatus) error
}
