package mocks

import (
	"context"
	"time"

	"github.com/danielmek/hotelhub/internal/domain/apperr"
	"github.com/danielmek/hotelhub/internal/domain/entity"
	usecasecontract "github.com/danielmek/hotelhub/internal/usecase/contract"
)

// MockUserUsecase is a mock implementation of the IUserUseCase interface
type MockUserUsecase struct {
	// Control mock behavior
	ShouldFailRegister          bool
	ShouldFailLogin             bool
	ShouldFailAuthenticate      bool
	ShouldFailGetByID           bool
	ShouldFailUpdateProfile     bool
	ShouldFailChangePassword    bool
	ShouldFailCreateAdmin       bool
	ShouldFailListAdmins        bool
	ShouldFailUpdateAdminStatus bool

	// Return values
	MockUser        entity.User
	MockAdmins      []*entity.User
	MockAccessToken string
}

// Ensure MockUserUsecase implements the interface the handlers depend on
var _ usecasecontract.IUserUseCase = (*MockUserUsecase)(nil)

func NewMockUserUsecase() *MockUserUsecase {
	return &MockUserUsecase{
		MockUser: entity.User{
			ID:        "mock-user-id",
			Username:  "testmerchant",
			Role:      entity.UserRoleMerchant,
			Status:    entity.UserStatusActive,
			CreatedAt: time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC),
		},
		MockAccessToken: "mock_access_token",
	}
}

func (m *MockUserUsecase) Register(ctx context.Context, username, password string, role entity.UserRole) (*entity.User, string, error) {
	if m.ShouldFailRegister {
		return nil, "", apperr.Conflict("username already taken")
	}
	return &m.MockUser, m.MockAccessToken, nil
}

func (m *MockUserUsecase) Login(ctx context.Context, username, password string) (*entity.User, string, error) {
	if m.ShouldFailLogin {
		return nil, "", apperr.Authentication("invalid username or password")
	}
	return &m.MockUser, m.MockAccessToken, nil
}

func (m *MockUserUsecase) Authenticate(ctx context.Context, accessToken string) (*entity.User, error) {
	if m.ShouldFailAuthenticate {
		return nil, apperr.Authentication("invalid or expired token")
	}
	return &m.MockUser, nil
}

func (m *MockUserUsecase) GetUserByID(ctx context.Context, userID string) (*entity.User, error) {
	if m.ShouldFailGetByID {
		return nil, apperr.NotFound("user not found")
	}
	return &m.MockUser, nil
}

func (m *MockUserUsecase) UpdateProfile(ctx context.Context, userID, username string) (*entity.User, error) {
	if m.ShouldFailUpdateProfile {
		return nil, apperr.Conflict("username already taken")
	}
	user := m.MockUser
	user.Username = username
	return &user, nil
}

func (m *MockUserUsecase) ChangePassword(ctx context.Context, userID, oldPassword, newPassword string) error {
	if m.ShouldFailChangePassword {
		return apperr.Validation("old password is incorrect")
	}
	return nil
}

func (m *MockUserUsecase) CreateAdmin(ctx context.Context, username, password string) (*entity.User, error) {
	if m.ShouldFailCreateAdmin {
		return nil, apperr.Conflict("username already taken")
	}
	admin := m.MockUser
	admin.Username = username
	admin.Role = entity.UserRoleAdmin
	return &admin, nil
}

func (m *MockUserUsecase) ListAdmins(ctx context.Context) ([]*entity.User, error) {
	if m.ShouldFailListAdmins {
		return nil, apperr.New(apperr.KindUnexpected, "list admins failed")
	}
	return m.MockAdmins, nil
}

func (m *MockUserUsecase) UpdateAdminStatus(ctx context.Context, userID string, status entity.UserStatus) (*entity.User, error) {
	if m.ShouldFailUpdateAdminStatus {
		return nil, apperr.InvalidState("super admin accounts cannot be suspended")
	}
	user := m.MockUser
	user.ID = userID
	user.Role = entity.UserRoleAdmin
	user.Status = status
	return &user, nil
}
