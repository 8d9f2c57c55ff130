package contract

import (
	"context"

	"github.com/danielmek/hotelhub/internal/domain/entity"
)

// IUserUseCase is the account and authorization service: identity, roles,
// account status, credential verification, and token resolution.
type IUserUseCase interface {
	// Register creates a new account and returns it with an issued bearer
	// token. Role defaults to merchant when empty.
	Register(ctx context.Context, username, password string, role entity.UserRole) (*entity.User, string, error)
	// Login verifies credentials and issues a bearer token. Unknown username
	// and wrong password return the same generic error.
	Login(ctx context.Context, username, password string) (*entity.User, string, error)
	// Authenticate resolves a bearer token to the user it was issued to.
	Authenticate(ctx context.Context, accessToken string) (*entity.User, error)
	GetUserByID(ctx context.Context, userID string) (*entity.User, error)
	// UpdateProfile changes the username, checking uniqueness excluding self.
	UpdateProfile(ctx context.Context, userID, username string) (*entity.User, error)
	// ChangePassword re-verifies the old password before setting the new one.
	ChangePassword(ctx context.Context, userID, oldPassword, newPassword string) error

	// Admin account management, super_admin only.
	CreateAdmin(ctx context.Context, username, password string) (*entity.User, error)
	ListAdmins(ctx context.Context) ([]*entity.User, error)
	// UpdateAdminStatus toggles an account between active and suspended.
	// Super_admin accounts cannot be suspended through this path.
	UpdateAdminStatus(ctx context.Context, userID string, status entity.UserStatus) (*entity.User, error)
}
