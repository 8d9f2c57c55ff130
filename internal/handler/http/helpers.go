package http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/danielmek/hotelhub/internal/domain/apperr"
	"github.com/danielmek/hotelhub/internal/domain/entity"
	"github.com/danielmek/hotelhub/internal/handler/http/dto"
)

// SuccessHandler writes a success envelope with data.
func SuccessHandler(c *gin.Context, statusCode int, data interface{}) {
	c.JSON(statusCode, dto.Response{Success: true, Data: data})
}

// MessageHandler writes a success envelope with data and a message.
func MessageHandler(c *gin.Context, statusCode int, data interface{}, message string) {
	c.JSON(statusCode, dto.Response{Success: true, Message: message, Data: data})
}

// PaginatedHandler writes a success envelope with pagination fields.
func PaginatedHandler(c *gin.Context, data interface{}, total int64, page, pageSize int) {
	c.JSON(http.StatusOK, dto.Response{
		Success:  true,
		Data:     data,
		Total:    &total,
		Page:     &page,
		PageSize: &pageSize,
	})
}

// ErrorHandler writes an error envelope with an explicit status code.
func ErrorHandler(c *gin.Context, statusCode int, message string) {
	c.JSON(statusCode, dto.Response{Success: false, Message: message})
}

// RespondError maps an application error to its HTTP status. Unexpected
// errors get a generic message so storage internals never leak to callers.
func RespondError(c *gin.Context, err error) {
	status := apperr.HTTPStatus(err)
	message := err.Error()
	if status == http.StatusInternalServerError {
		message = "internal server error"
	}
	ErrorHandler(c, status, message)
}

// BindAndValidate binds JSON request and validates it
func BindAndValidate(c *gin.Context, req interface{}) error {
	if err := c.ShouldBindJSON(req); err != nil {
		ErrorHandler(c, http.StatusBadRequest, err.Error())
		return err
	}
	return nil
}

// CurrentUser returns the identity resolved by the auth middleware.
func CurrentUser(c *gin.Context) (*entity.User, bool) {
	v, exists := c.Get("currentUser")
	if !exists {
		return nil, false
	}
	user, ok := v.(*entity.User)
	return user, ok
}
