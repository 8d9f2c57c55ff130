package usecase

import (
	"context"
	"time"

	"github.com/danielmek/hotelhub/internal/domain/apperr"
	"github.com/danielmek/hotelhub/internal/domain/contract"
	"github.com/danielmek/hotelhub/internal/domain/entity"
	usecasecontract "github.com/danielmek/hotelhub/internal/usecase/contract"
)

// UserUsecase implements the account and authorization service.
type UserUsecase struct {
	userRepo      contract.IUserRepository
	hasher        contract.IHasher
	jwtService    JWTService
	logger        usecasecontract.IAppLogger
	validator     usecasecontract.IValidator
	uuidGenerator contract.IUUIDGenerator
}

// NewUserUsecase creates a new UserUsecase instance.
func NewUserUsecase(
	userRepo contract.IUserRepository,
	hasher contract.IHasher,
	jwtService JWTService,
	logger usecasecontract.IAppLogger,
	validator usecasecontract.IValidator,
	uuidGenerator contract.IUUIDGenerator,
) *UserUsecase {
	return &UserUsecase{
		userRepo:      userRepo,
		hasher:        hasher,
		jwtService:    jwtService,
		logger:        logger,
		validator:     validator,
		uuidGenerator: uuidGenerator,
	}
}

// check if UserUsecase implements the IUserUseCase
var _ usecasecontract.IUserUseCase = (*UserUsecase)(nil)

// Register handles account creation.
func (uc *UserUsecase) Register(ctx context.Context, username, password string, role entity.UserRole) (*entity.User, string, error) {
	if err := uc.validator.ValidateUsername(username); err != nil {
		return nil, "", apperr.Wrap(apperr.KindValidation, "invalid username", err)
	}
	if err := uc.validator.ValidatePassword(password); err != nil {
		return nil, "", apperr.Wrap(apperr.KindValidation, "invalid password", err)
	}
	if role == "" {
		role = entity.DefaultRole()
	}
	if role != entity.UserRoleMerchant && role != entity.UserRoleAdmin {
		return nil, "", apperr.Validation("role must be merchant or admin")
	}

	existing, err := uc.userRepo.GetUserByUsername(ctx, username)
	if err != nil && !apperr.IsKind(err, apperr.KindNotFound) {
		uc.logger.Errorf("failed to check for existing user by username: %v", err)
		return nil, "", err
	}
	if existing != nil {
		return nil, "", apperr.Conflict("username already exists")
	}

	hashedPassword, err := uc.hasher.HashPassword(password)
	if err != nil {
		uc.logger.Errorf("failed to hash password: %v", err)
		return nil, "", apperr.Wrap(apperr.KindUnexpected, "failed to process password", err)
	}

	now := time.Now()
	user := &entity.User{
		ID:           uc.uuidGenerator.NewUUID(),
		Username:     username,
		PasswordHash: hashedPassword,
		Role:         role,
		Status:       entity.UserStatusActive,
		CreatedAt:    now,
		UpdatedAt:    now,
	}

	if err := uc.userRepo.CreateUser(ctx, user); err != nil {
		uc.logger.Errorf("failed to create user: %v", err)
		return nil, "", err
	}

	token, err := uc.jwtService.GenerateAccessToken(user.ID, user.Role)
	if err != nil {
		uc.logger.Errorf("failed to generate token after registration: %v", err)
		return nil, "", apperr.Wrap(apperr.KindUnexpected, "failed to generate token", err)
	}

	return user, token, nil
}

// Login verifies credentials and issues a bearer token. Unknown usernames and
// wrong passwords are indistinguishable to the caller.
func (uc *UserUsecase) Login(ctx context.Context, username, password string) (*entity.User, string, error) {
	user, err := uc.userRepo.GetUserByUsername(ctx, username)
	if err != nil {
		if apperr.IsKind(err, apperr.KindNotFound) {
			return nil, "", apperr.Authentication("invalid username or password")
		}
		uc.logger.Errorf("failed to retrieve user for login: %v", err)
		return nil, "", err
	}

	if err := uc.hasher.ComparePasswordHash(password, user.PasswordHash); err != nil {
		return nil, "", apperr.Authentication("invalid username or password")
	}

	token, err := uc.jwtService.GenerateAccessToken(user.ID, user.Role)
	if err != nil {
		uc.logger.Errorf("failed to generate access token: %v", err)
		return nil, "", apperr.Wrap(apperr.KindUnexpected, "failed to generate token", err)
	}

	return user, token, nil
}

// Authenticate resolves a bearer token to its user. Token resolution succeeds
// for suspended accounts; rejecting suspended callers is the boundary's job.
func (uc *UserUsecase) Authenticate(ctx context.Context, accessToken string) (*entity.User, error) {
	claims, err := uc.jwtService.ParseAccessToken(accessToken)
	if err != nil {
		return nil, apperr.Wrap(apperr.KindAuthentication, "invalid or expired token", err)
	}

	user, err := uc.userRepo.GetUserByID(ctx, claims.UserID)
	if err != nil {
		if apperr.IsKind(err, apperr.KindNotFound) {
			return nil, apperr.Authentication("user no longer exists")
		}
		uc.logger.Errorf("failed to retrieve user during authentication: %v", err)
		return nil, err
	}

	return user, nil
}

// GetUserByID retrieves a user by ID.
func (uc *UserUsecase) GetUserByID(ctx context.Context, userID string) (*entity.User, error) {
	return uc.userRepo.GetUserByID(ctx, userID)
}

// UpdateProfile changes the caller's username, checking uniqueness against
// everyone but the caller.
func (uc *UserUsecase) UpdateProfile(ctx context.Context, userID, username string) (*entity.User, error) {
	if err := uc.validator.ValidateUsername(username); err != nil {
		return nil, apperr.Wrap(apperr.KindValidation, "invalid username", err)
	}

	existing, err := uc.userRepo.GetUserByUsername(ctx, username)
	if err != nil && !apperr.IsKind(err, apperr.KindNotFound) {
		uc.logger.Errorf("failed to check username uniqueness: %v", err)
		return nil, err
	}
	if existing != nil && existing.ID != userID {
		return nil, apperr.Conflict("username already exists")
	}

	user, err := uc.userRepo.GetUserByID(ctx, userID)
	if err != nil {
		return nil, err
	}
	user.Username = username
	user.UpdatedAt = time.Now()

	return uc.userRepo.UpdateUser(ctx, user)
}

// ChangePassword re-verifies the old password before storing the new hash.
func (uc *UserUsecase) ChangePassword(ctx context.Context, userID, oldPassword, newPassword string) error {
	if err := uc.validator.ValidatePassword(newPassword); err != nil {
		return apperr.Wrap(apperr.KindValidation, "invalid new password", err)
	}

	user, err := uc.userRepo.GetUserByID(ctx, userID)
	if err != nil {
		return err
	}

	if err := uc.hasher.ComparePasswordHash(oldPassword, user.PasswordHash); err != nil {
		return apperr.Validation("old password is incorrect")
	}

	hashedPassword, err := uc.hasher.HashPassword(newPassword)
	if err != nil {
		uc.logger.Errorf("failed to hash new password: %v", err)
		return apperr.Wrap(apperr.KindUnexpected, "failed to process password", err)
	}

	return uc.userRepo.UpdateUserPassword(ctx, userID, hashedPassword)
}

// CreateAdmin creates an admin account. Route-level authorization restricts
// this to super_admin callers.
func (uc *UserUsecase) CreateAdmin(ctx context.Context, username, password string) (*entity.User, error) {
	if err := uc.validator.ValidateUsername(username); err != nil {
		return nil, apperr.Wrap(apperr.KindValidation, "invalid username", err)
	}
	if err := uc.validator.ValidatePassword(password); err != nil {
		return nil, apperr.Wrap(apperr.KindValidation, "invalid password", err)
	}

	existing, err := uc.userRepo.GetUserByUsername(ctx, username)
	if err != nil && !apperr.IsKind(err, apperr.KindNotFound) {
		uc.logger.Errorf("failed to check for existing user by username: %v", err)
		return nil, err
	}
	if existing != nil {
		return nil, apperr.Conflict("username already exists")
	}

	hashedPassword, err := uc.hasher.HashPassword(password)
	if err != nil {
		uc.logger.Errorf("failed to hash password: %v", err)
		return nil, apperr.Wrap(apperr.KindUnexpected, "failed to process password", err)
	}

	now := time.Now()
	user := &entity.User{
		ID:           uc.uuidGenerator.NewUUID(),
		Username:     username,
		PasswordHash: hashedPassword,
		Role:         entity.UserRoleAdmin,
		Status:       entity.UserStatusActive,
		CreatedAt:    now,
		UpdatedAt:    now,
	}

	if err := uc.userRepo.CreateUser(ctx, user); err != nil {
		uc.logger.Errorf("failed to create admin: %v", err)
		return nil, err
	}

	return user, nil
}

// ListAdmins returns all admin and super_admin accounts, newest first.
func (uc *UserUsecase) ListAdmins(ctx context.Context) ([]*entity.User, error) {
	return uc.userRepo.GetUsersByRoles(ctx, []entity.UserRole{entity.UserRoleAdmin, entity.UserRoleSuperAdmin})
}

// UpdateAdminStatus toggles an account between active and suspended.
// Super_admin accounts are protected from suspension through this path.
func (uc *UserUsecase) UpdateAdminStatus(ctx context.Context, userID string, status entity.UserStatus) (*entity.User, error) {
	if !status.IsValid() {
		return nil, apperr.Validation("status must be active or suspended")
	}

	user, err := uc.userRepo.GetUserByID(ctx, userID)
	if err != nil {
		return nil, err
	}

	if user.Role == entity.UserRoleSuperAdmin && status == entity.UserStatusSuspended {
		return nil, apperr.InvalidState("super admin accounts cannot be suspended")
	}

	if err := uc.userRepo.UpdateUserStatus(ctx, userID, status); err != nil {
		uc.logger.Errorf("failed to update status for user %s: %v", userID, err)
		return nil, err
	}

	user.Status = status
	return user, nil
}
