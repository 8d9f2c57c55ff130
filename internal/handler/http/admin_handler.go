package http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/danielmek/hotelhub/internal/domain/entity"
	"github.com/danielmek/hotelhub/internal/handler/http/dto"
	usecasecontract "github.com/danielmek/hotelhub/internal/usecase/contract"
)

// AdminHandler manages admin accounts. Every route is gated to super_admin
// by the router.
type AdminHandler struct {
	userUsecase usecasecontract.IUserUseCase
}

func NewAdminHandler(userUsecase usecasecontract.IUserUseCase) *AdminHandler {
	return &AdminHandler{
		userUsecase: userUsecase,
	}
}

// CreateAdmin creates a new admin account.
func (h *AdminHandler) CreateAdmin(c *gin.Context) {
	var req dto.CreateAdminRequest
	if err := BindAndValidate(c, &req); err != nil {
		return
	}

	user, err := h.userUsecase.CreateAdmin(c.Request.Context(), req.Username, req.Password)
	if err != nil {
		RespondError(c, err)
		return
	}
	MessageHandler(c, http.StatusOK, dto.ToUserResponse(*user), "admin created")
}

// ListAdmins returns all admin and super_admin accounts.
func (h *AdminHandler) ListAdmins(c *gin.Context) {
	admins, err := h.userUsecase.ListAdmins(c.Request.Context())
	if err != nil {
		RespondError(c, err)
		return
	}
	SuccessHandler(c, http.StatusOK, dto.ToUserResponses(admins))
}

// UpdateAdminStatus toggles an account between active and suspended.
func (h *AdminHandler) UpdateAdminStatus(c *gin.Context) {
	var req dto.UpdateAdminStatusRequest
	if err := BindAndValidate(c, &req); err != nil {
		return
	}

	user, err := h.userUsecase.UpdateAdminStatus(c.Request.Context(), c.Param("id"), entity.UserStatus(req.Status))
	if err != nil {
		RespondError(c, err)
		return
	}
	MessageHandler(c, http.StatusOK, dto.ToUserResponse(*user), "status updated")
}
