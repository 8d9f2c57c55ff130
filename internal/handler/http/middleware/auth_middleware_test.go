package middleware_test

import (
	"net/http"
	"net/http/httptest"
	"os"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"

	"github.com/danielmek/hotelhub/internal/domain/entity"
	"github.com/danielmek/hotelhub/internal/handler/http/middleware"
	mocks "github.com/danielmek/hotelhub/internal/handler/http/mocks"
)

func TestMain(m *testing.M) {
	gin.SetMode(gin.TestMode)
	os.Exit(m.Run())
}

func setupProtectedRouter(mockUsecase *mocks.MockUserUsecase, roles ...entity.UserRole) *gin.Engine {
	r := gin.New()
	g := r.Group("/")
	g.Use(middleware.AuthMiddleWare(mockUsecase))
	if len(roles) > 0 {
		g.Use(middleware.RequireRoles(roles...))
	}
	g.GET("/protected", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"ok": true})
	})
	return r
}

func doRequest(r *gin.Engine, authorization string) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	req, _ := http.NewRequest("GET", "/protected", nil)
	if authorization != "" {
		req.Header.Set("Authorization", authorization)
	}
	r.ServeHTTP(w, req)
	return w
}

func TestAuthMiddleware_ValidToken(t *testing.T) {
	mockUsecase := mocks.NewMockUserUsecase()
	r := setupProtectedRouter(mockUsecase)

	w := doRequest(r, "Bearer mock_access_token")

	assert.Equal(t, http.StatusOK, w.Code)
}

func TestAuthMiddleware_MissingHeader(t *testing.T) {
	mockUsecase := mocks.NewMockUserUsecase()
	r := setupProtectedRouter(mockUsecase)

	w := doRequest(r, "")

	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Contains(t, w.Body.String(), "authentication required")
}

func TestAuthMiddleware_MalformedHeader(t *testing.T) {
	mockUsecase := mocks.NewMockUserUsecase()
	r := setupProtectedRouter(mockUsecase)

	w := doRequest(r, "Token abc")

	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestAuthMiddleware_InvalidToken(t *testing.T) {
	mockUsecase := mocks.NewMockUserUsecase()
	mockUsecase.ShouldFailAuthenticate = true
	r := setupProtectedRouter(mockUsecase)

	w := doRequest(r, "Bearer garbage")

	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Contains(t, w.Body.String(), "invalid or expired token")
}

func TestAuthMiddleware_SuspendedAccount(t *testing.T) {
	mockUsecase := mocks.NewMockUserUsecase()
	mockUsecase.MockUser.Status = entity.UserStatusSuspended
	r := setupProtectedRouter(mockUsecase)

	w := doRequest(r, "Bearer mock_access_token")

	assert.Equal(t, http.StatusForbidden, w.Code)
	assert.Contains(t, w.Body.String(), "account is suspended")
}

func TestRequireRoles_MerchantRejected(t *testing.T) {
	mockUsecase := mocks.NewMockUserUsecase()
	r := setupProtectedRouter(mockUsecase, entity.UserRoleAdmin, entity.UserRoleSuperAdmin)

	w := doRequest(r, "Bearer mock_access_token")

	assert.Equal(t, http.StatusForbidden, w.Code)
}

func TestRequireRoles_AdminAllowed(t *testing.T) {
	mockUsecase := mocks.NewMockUserUsecase()
	mockUsecase.MockUser.Role = entity.UserRoleAdmin
	r := setupProtectedRouter(mockUsecase, entity.UserRoleAdmin, entity.UserRoleSuperAdmin)

	w := doRequest(r, "Bearer mock_access_token")

	assert.Equal(t, http.StatusOK, w.Code)
}

func TestRequireRoles_SuperAdminAllowedWhereAdminIs(t *testing.T) {
	mockUsecase := mocks.NewMockUserUsecase()
	mockUsecase.MockUser.Role = entity.UserRoleSuperAdmin
	r := setupProtectedRouter(mockUsecase, entity.UserRoleAdmin, entity.UserRoleSuperAdmin)

	w := doRequest(r, "Bearer mock_access_token")

	assert.Equal(t, http.StatusOK, w.Code)
}
