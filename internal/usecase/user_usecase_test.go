package usecase_test

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/danielmek/hotelhub/internal/domain/apperr"
	"github.com/danielmek/hotelhub/internal/domain/contract"
	"github.com/danielmek/hotelhub/internal/domain/entity"
	"github.com/danielmek/hotelhub/internal/usecase"
)

// fakeUserRepo is an in-memory IUserRepository for usecase tests.
type fakeUserRepo struct {
	users map[string]*entity.User
}

var _ contract.IUserRepository = (*fakeUserRepo)(nil)

func newFakeUserRepo() *fakeUserRepo {
	return &fakeUserRepo{users: make(map[string]*entity.User)}
}

func (r *fakeUserRepo) CreateUser(ctx context.Context, user *entity.User) error {
	for _, u := range r.users {
		if u.Username == user.Username {
			return apperr.Conflict("username already exists")
		}
	}
	copied := *user
	r.users[user.ID] = &copied
	return nil
}

func (r *fakeUserRepo) GetUserByID(ctx context.Context, id string) (*entity.User, error) {
	u, ok := r.users[id]
	if !ok {
		return nil, apperr.NotFound("user not found")
	}
	copied := *u
	return &copied, nil
}

func (r *fakeUserRepo) GetUserByUsername(ctx context.Context, username string) (*entity.User, error) {
	for _, u := range r.users {
		if u.Username == username {
			copied := *u
			return &copied, nil
		}
	}
	return nil, apperr.NotFound("user not found")
}

func (r *fakeUserRepo) UpdateUser(ctx context.Context, user *entity.User) (*entity.User, error) {
	if _, ok := r.users[user.ID]; !ok {
		return nil, apperr.NotFound("user not found")
	}
	copied := *user
	r.users[user.ID] = &copied
	return user, nil
}

func (r *fakeUserRepo) UpdateUserPassword(ctx context.Context, id string, hashedPassword string) error {
	u, ok := r.users[id]
	if !ok {
		return apperr.NotFound("user not found")
	}
	u.PasswordHash = hashedPassword
	return nil
}

func (r *fakeUserRepo) GetUsersByRoles(ctx context.Context, roles []entity.UserRole) ([]*entity.User, error) {
	var out []*entity.User
	for _, u := range r.users {
		for _, role := range roles {
			if u.Role == role {
				copied := *u
				out = append(out, &copied)
				break
			}
		}
	}
	return out, nil
}

func (r *fakeUserRepo) UpdateUserStatus(ctx context.Context, id string, status entity.UserStatus) error {
	u, ok := r.users[id]
	if !ok {
		return apperr.NotFound("user not found")
	}
	u.Status = status
	return nil
}

// fakeHasher makes hashes reversible for assertions.
type fakeHasher struct{}

func (fakeHasher) HashPassword(password string) (string, error) {
	return "hashed:" + password, nil
}

func (fakeHasher) ComparePasswordHash(password, hashedPassword string) error {
	if "hashed:"+password != hashedPassword {
		return errors.New("hash mismatch")
	}
	return nil
}

// fakeJWT issues decodable tokens of the form "token:<userID>".
type fakeJWT struct{}

func (fakeJWT) GenerateAccessToken(userID string, role entity.UserRole) (string, error) {
	return "token:" + userID, nil
}

func (fakeJWT) ParseAccessToken(token string) (*entity.Claims, error) {
	var userID string
	if _, err := fmt.Sscanf(token, "token:%s", &userID); err != nil {
		return nil, errors.New("malformed token")
	}
	return &entity.Claims{UserID: userID}, nil
}

// fakeCredentialValidator applies the same bounds as the real validator.
type fakeCredentialValidator struct{}

func (fakeCredentialValidator) ValidateUsername(username string) error {
	if len(username) < 2 || len(username) > 20 {
		return errors.New("username must be 2-20 characters")
	}
	return nil
}

func (fakeCredentialValidator) ValidatePassword(password string) error {
	if len(password) < 6 {
		return errors.New("password must be at least 6 characters")
	}
	return nil
}

func newUserUsecase() (*usecase.UserUsecase, *fakeUserRepo) {
	repo := newFakeUserRepo()
	uc := usecase.NewUserUsecase(repo, fakeHasher{}, fakeJWT{}, nopLogger{}, fakeCredentialValidator{}, &fakeUUIDGen{})
	return uc, repo
}

func TestRegister_DefaultsToMerchant(t *testing.T) {
	uc, _ := newUserUsecase()

	user, token, err := uc.Register(context.Background(), "alice", "secret123", "")

	assert.NoError(t, err)
	assert.Equal(t, entity.UserRoleMerchant, user.Role)
	assert.Equal(t, entity.UserStatusActive, user.Status)
	assert.Equal(t, "token:"+user.ID, token)
	assert.Equal(t, "hashed:secret123", user.PasswordHash)
}

func TestRegister_SuperAdminRefused(t *testing.T) {
	uc, _ := newUserUsecase()

	_, _, err := uc.Register(context.Background(), "mallory", "secret123", entity.UserRoleSuperAdmin)

	assert.True(t, apperr.IsKind(err, apperr.KindValidation))
}

func TestRegister_DuplicateUsername(t *testing.T) {
	uc, _ := newUserUsecase()
	_, _, err := uc.Register(context.Background(), "alice", "secret123", "")
	assert.NoError(t, err)

	_, _, err = uc.Register(context.Background(), "alice", "othersecret", "")
	assert.True(t, apperr.IsKind(err, apperr.KindConflict))
}

func TestRegister_CredentialBounds(t *testing.T) {
	uc, _ := newUserUsecase()

	_, _, err := uc.Register(context.Background(), "a", "secret123", "")
	assert.True(t, apperr.IsKind(err, apperr.KindValidation))

	_, _, err = uc.Register(context.Background(), "alice", "short", "")
	assert.True(t, apperr.IsKind(err, apperr.KindValidation))
}

func TestLogin(t *testing.T) {
	uc, _ := newUserUsecase()
	registered, _, _ := uc.Register(context.Background(), "alice", "secret123", "")

	user, token, err := uc.Login(context.Background(), "alice", "secret123")

	assert.NoError(t, err)
	assert.Equal(t, registered.ID, user.ID)
	assert.Equal(t, "token:"+user.ID, token)
}

func TestLogin_GenericErrorForBothFailures(t *testing.T) {
	uc, _ := newUserUsecase()
	_, _, _ = uc.Register(context.Background(), "alice", "secret123", "")

	// Wrong password and unknown username must be indistinguishable.
	_, _, errWrongPassword := uc.Login(context.Background(), "alice", "wrong")
	_, _, errUnknownUser := uc.Login(context.Background(), "nobody", "secret123")

	assert.True(t, apperr.IsKind(errWrongPassword, apperr.KindAuthentication))
	assert.True(t, apperr.IsKind(errUnknownUser, apperr.KindAuthentication))
	assert.Equal(t, errWrongPassword.Error(), errUnknownUser.Error())
}

func TestAuthenticate(t *testing.T) {
	uc, _ := newUserUsecase()
	registered, token, _ := uc.Register(context.Background(), "alice", "secret123", "")

	user, err := uc.Authenticate(context.Background(), token)

	assert.NoError(t, err)
	assert.Equal(t, registered.ID, user.ID)
}

func TestAuthenticate_SuspendedStillResolves(t *testing.T) {
	uc, repo := newUserUsecase()
	registered, token, _ := uc.Register(context.Background(), "alice", "secret123", "")
	_ = repo.UpdateUserStatus(context.Background(), registered.ID, entity.UserStatusSuspended)

	// Token resolution succeeds; the middleware decides what suspended means.
	user, err := uc.Authenticate(context.Background(), token)

	assert.NoError(t, err)
	assert.Equal(t, entity.UserStatusSuspended, user.Status)
}

func TestAuthenticate_BadToken(t *testing.T) {
	uc, _ := newUserUsecase()

	_, err := uc.Authenticate(context.Background(), "garbage")

	assert.True(t, apperr.IsKind(err, apperr.KindAuthentication))
}

func TestUpdateProfile(t *testing.T) {
	uc, _ := newUserUsecase()
	registered, _, _ := uc.Register(context.Background(), "alice", "secret123", "")

	// Renaming to your own current name is fine.
	_, err := uc.UpdateProfile(context.Background(), registered.ID, "alice")
	assert.NoError(t, err)

	updated, err := uc.UpdateProfile(context.Background(), registered.ID, "alice2")
	assert.NoError(t, err)
	assert.Equal(t, "alice2", updated.Username)
}

func TestUpdateProfile_TakenUsername(t *testing.T) {
	uc, _ := newUserUsecase()
	_, _, _ = uc.Register(context.Background(), "alice", "secret123", "")
	bob, _, _ := uc.Register(context.Background(), "bob", "secret123", "")

	_, err := uc.UpdateProfile(context.Background(), bob.ID, "alice")
	assert.True(t, apperr.IsKind(err, apperr.KindConflict))
}

func TestChangePassword(t *testing.T) {
	uc, _ := newUserUsecase()
	registered, _, _ := uc.Register(context.Background(), "alice", "secret123", "")

	err := uc.ChangePassword(context.Background(), registered.ID, "secret123", "newsecret")
	assert.NoError(t, err)

	_, _, err = uc.Login(context.Background(), "alice", "newsecret")
	assert.NoError(t, err)
	_, _, err = uc.Login(context.Background(), "alice", "secret123")
	assert.True(t, apperr.IsKind(err, apperr.KindAuthentication))
}

func TestChangePassword_WrongOldPassword(t *testing.T) {
	uc, _ := newUserUsecase()
	registered, _, _ := uc.Register(context.Background(), "alice", "secret123", "")

	err := uc.ChangePassword(context.Background(), registered.ID, "wrong", "newsecret")
	assert.True(t, apperr.IsKind(err, apperr.KindValidation))
}

func TestCreateAdmin(t *testing.T) {
	uc, _ := newUserUsecase()

	admin, err := uc.CreateAdmin(context.Background(), "staff1", "secret123")

	assert.NoError(t, err)
	assert.Equal(t, entity.UserRoleAdmin, admin.Role)
	assert.Equal(t, entity.UserStatusActive, admin.Status)
}

func TestListAdmins_IncludesSuperAdmins(t *testing.T) {
	uc, repo := newUserUsecase()
	_, _ = uc.CreateAdmin(context.Background(), "staff1", "secret123")
	_, _, _ = uc.Register(context.Background(), "alice", "secret123", "")
	_ = repo.CreateUser(context.Background(), &entity.User{
		ID:       "root-id",
		Username: "root",
		Role:     entity.UserRoleSuperAdmin,
		Status:   entity.UserStatusActive,
	})

	admins, err := uc.ListAdmins(context.Background())

	assert.NoError(t, err)
	assert.Len(t, admins, 2)
	for _, a := range admins {
		assert.True(t, a.Role.IsAdmin())
	}
}

func TestUpdateAdminStatus(t *testing.T) {
	uc, repo := newUserUsecase()
	admin, _ := uc.CreateAdmin(context.Background(), "staff1", "secret123")

	updated, err := uc.UpdateAdminStatus(context.Background(), admin.ID, entity.UserStatusSuspended)

	assert.NoError(t, err)
	assert.Equal(t, entity.UserStatusSuspended, updated.Status)

	stored, _ := repo.GetUserByID(context.Background(), admin.ID)
	assert.Equal(t, entity.UserStatusSuspended, stored.Status)

	// Suspended accounts can be reactivated.
	updated, err = uc.UpdateAdminStatus(context.Background(), admin.ID, entity.UserStatusActive)
	assert.NoError(t, err)
	assert.Equal(t, entity.UserStatusActive, updated.Status)
}

func TestUpdateAdminStatus_SuperAdminProtected(t *testing.T) {
	uc, repo := newUserUsecase()
	_ = repo.CreateUser(context.Background(), &entity.User{
		ID:       "root-id",
		Username: "root",
		Role:     entity.UserRoleSuperAdmin,
		Status:   entity.UserStatusActive,
	})

	_, err := uc.UpdateAdminStatus(context.Background(), "root-id", entity.UserStatusSuspended)

	assert.True(t, apperr.IsKind(err, apperr.KindInvalidState))
}

func TestUpdateAdminStatus_InvalidValue(t *testing.T) {
	uc, _ := newUserUsecase()

	_, err := uc.UpdateAdminStatus(context.Background(), "any", "banned")

	assert.True(t, apperr.IsKind(err, apperr.KindValidation))
}
