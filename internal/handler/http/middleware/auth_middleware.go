package middleware

import (
	"net/http"
	"strings"

	"github.com/didip/tollbooth/v7/limiter"
	tollbooth_gin "github.com/didip/tollbooth_gin"
	"github.com/gin-gonic/gin"

	"github.com/danielmek/hotelhub/internal/domain/entity"
	"github.com/danielmek/hotelhub/internal/handler/http/dto"
	usecasecontract "github.com/danielmek/hotelhub/internal/usecase/contract"
)

// AuthMiddleWare resolves the bearer token to a user and stores the identity
// in the request context. Suspended accounts resolve but are rejected here,
// before any operation runs.
func AuthMiddleWare(userUsecase usecasecontract.IUserUseCase) gin.HandlerFunc {
	return func(c *gin.Context) {
		header := c.GetHeader("Authorization")
		if header == "" || !strings.HasPrefix(header, "Bearer ") {
			abort(c, http.StatusUnauthorized, "authentication required")
			return
		}
		token := strings.TrimPrefix(header, "Bearer ")

		user, err := userUsecase.Authenticate(c.Request.Context(), token)
		if err != nil {
			abort(c, http.StatusUnauthorized, "invalid or expired token")
			return
		}
		if user.Status == entity.UserStatusSuspended {
			abort(c, http.StatusForbidden, "account is suspended")
			return
		}

		c.Set("currentUser", user)
		c.Set("userID", user.ID)
		c.Next()
	}
}

// RequireRoles rejects callers whose role is not in the allowed set.
// Wherever admin is allowed, super_admin is allowed too; pass both
// explicitly so the allowed set stays readable at the route.
func RequireRoles(roles ...entity.UserRole) gin.HandlerFunc {
	allowed := make(map[entity.UserRole]struct{}, len(roles))
	for _, r := range roles {
		allowed[r] = struct{}{}
	}
	return func(c *gin.Context) {
		v, exists := c.Get("currentUser")
		if !exists {
			abort(c, http.StatusUnauthorized, "authentication required")
			return
		}
		user := v.(*entity.User)
		if _, ok := allowed[user.Role]; !ok {
			abort(c, http.StatusForbidden, "you do not have permission to perform this action")
			return
		}
		c.Next()
	}
}

// RateLimiter wraps the tollbooth gin adapter.
func RateLimiter(lmt *limiter.Limiter) gin.HandlerFunc {
	return tollbooth_gin.LimitHandler(lmt)
}

func abort(c *gin.Context, status int, message string) {
	c.AbortWithStatusJSON(status, dto.Response{Success: false, Message: message})
}
