package http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/danielmek/hotelhub/internal/domain/entity"
	"github.com/danielmek/hotelhub/internal/handler/http/dto"
	usecasecontract "github.com/danielmek/hotelhub/internal/usecase/contract"
)

// AuthHandlerInterface defines the methods for the auth handler to allow
// interface-based dependency injection (for testing/mocking)
type AuthHandlerInterface interface {
	Register(*gin.Context)
	Login(*gin.Context)
	GetProfile(*gin.Context)
	UpdateProfile(*gin.Context)
	ChangePassword(*gin.Context)
}

// Ensure AuthHandler implements AuthHandlerInterface
var _ AuthHandlerInterface = (*AuthHandler)(nil)

type AuthHandler struct {
	userUsecase usecasecontract.IUserUseCase
}

func NewAuthHandler(userUsecase usecasecontract.IUserUseCase) *AuthHandler {
	return &AuthHandler{
		userUsecase: userUsecase,
	}
}

// Register handles account creation (signup)
func (h *AuthHandler) Register(c *gin.Context) {
	var req dto.RegisterRequest
	if err := BindAndValidate(c, &req); err != nil {
		return
	}

	user, token, err := h.userUsecase.Register(c.Request.Context(), req.Username, req.Password, entity.UserRole(req.Role))
	if err != nil {
		RespondError(c, err)
		return
	}

	response := dto.LoginResponse{
		User:  dto.ToUserResponse(*user),
		Token: token,
	}
	MessageHandler(c, http.StatusOK, response, "registered successfully")
}

// Login handles credential verification and token issuance
func (h *AuthHandler) Login(c *gin.Context) {
	var req dto.LoginRequest
	if err := BindAndValidate(c, &req); err != nil {
		return
	}

	user, token, err := h.userUsecase.Login(c.Request.Context(), req.Username, req.Password)
	if err != nil {
		RespondError(c, err)
		return
	}

	response := dto.LoginResponse{
		User:  dto.ToUserResponse(*user),
		Token: token,
	}
	SuccessHandler(c, http.StatusOK, response)
}

// GetProfile handles retrieving the current authenticated user
func (h *AuthHandler) GetProfile(c *gin.Context) {
	user, ok := CurrentUser(c)
	if !ok {
		ErrorHandler(c, http.StatusUnauthorized, "authentication required")
		return
	}
	SuccessHandler(c, http.StatusOK, dto.ToUserResponse(*user))
}

// UpdateProfile handles username changes
func (h *AuthHandler) UpdateProfile(c *gin.Context) {
	user, ok := CurrentUser(c)
	if !ok {
		ErrorHandler(c, http.StatusUnauthorized, "authentication required")
		return
	}

	var req dto.UpdateProfileRequest
	if err := BindAndValidate(c, &req); err != nil {
		return
	}

	updated, err := h.userUsecase.UpdateProfile(c.Request.Context(), user.ID, req.Username)
	if err != nil {
		RespondError(c, err)
		return
	}
	MessageHandler(c, http.StatusOK, dto.ToUserResponse(*updated), "profile updated")
}

// ChangePassword handles password changes with old-password re-verification
func (h *AuthHandler) ChangePassword(c *gin.Context) {
	user, ok := CurrentUser(c)
	if !ok {
		ErrorHandler(c, http.StatusUnauthorized, "authentication required")
		return
	}

	var req dto.ChangePasswordRequest
	if err := BindAndValidate(c, &req); err != nil {
		return
	}

	if err := h.userUsecase.ChangePassword(c.Request.Context(), user.ID, req.OldPassword, req.NewPassword); err != nil {
		RespondError(c, err)
		return
	}
	MessageHandler(c, http.StatusOK, nil, "password changed")
}
