package dto

// Request DTOs for Auth and Admin Handlers

// RegisterRequest defines the structure for account registration.
type RegisterRequest struct {
	Username string `json:"username" binding:"required,min=2,max=20"`
	Password string `json:"password" binding:"required,min=6"`
	Role     string `json:"role" binding:"omitempty,oneof=merchant admin"`
}

// LoginRequest defines the structure for credential verification.
type LoginRequest struct {
	Username string `json:"username" binding:"required"`
	Password string `json:"password" binding:"required"`
}

// UpdateProfileRequest defines the structure for profile updates.
type UpdateProfileRequest struct {
	Username string `json:"username" binding:"required,min=2,max=20"`
}

// ChangePasswordRequest defines the structure for password changes.
type ChangePasswordRequest struct {
	OldPassword string `json:"oldPassword" binding:"required"`
	NewPassword string `json:"newPassword" binding:"required,min=6"`
}

// CreateAdminRequest defines the structure for creating admin accounts.
type CreateAdminRequest struct {
	Username string `json:"username" binding:"required,min=2,max=20"`
	Password string `json:"password" binding:"required,min=6"`
}

// UpdateAdminStatusRequest defines the structure for toggling account status.
type UpdateAdminStatusRequest struct {
	Status string `json:"status" binding:"required,oneof=active suspended"`
}
