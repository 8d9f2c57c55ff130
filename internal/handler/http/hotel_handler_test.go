package http_test

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/gin-gonic/gin"

	"github.com/danielmek/hotelhub/internal/domain/entity"
	handler "github.com/danielmek/hotelhub/internal/handler/http"
	dto "github.com/danielmek/hotelhub/internal/handler/http/dto"
	mocks "github.com/danielmek/hotelhub/internal/handler/http/mocks"
)

func setupHotelRouter(h handler.HotelHandlerInterface, user *entity.User) *gin.Engine {
	r := gin.New()
	g := r.Group("/")
	if user != nil {
		g.Use(injectUser(user))
	}
	g.POST("/hotels", h.CreateHotelHandler)
	g.GET("/hotels", h.GetHotelsHandler)
	g.GET("/hotels/stats", h.GetHotelStatsHandler)
	g.GET("/hotels/:id", h.GetHotelHandler)
	g.PUT("/hotels/:id", h.UpdateHotelHandler)
	g.DELETE("/hotels/:id", h.DeleteHotelHandler)
	g.PUT("/hotels/:id/submit", h.SubmitHotelHandler)
	g.PUT("/hotels/:id/audit", h.AuditHotelHandler)
	g.PUT("/hotels/:id/toggle", h.ToggleHotelHandler)
	return r
}

func merchantUser() *entity.User {
	return &entity.User{
		ID:       "mock-user-id",
		Username: "testmerchant",
		Role:     entity.UserRoleMerchant,
		Status:   entity.UserStatusActive,
	}
}

func validHotelRequest() dto.HotelRequest {
	return dto.HotelRequest{
		Name:        "Grand Plaza",
		Address:     "1 Main Street",
		StarRating:  4,
		Phone:       "555-0100",
		Description: "A comfortable city hotel.",
	}
}

func TestCreateHotel(t *testing.T) {
	mockUsecase := mocks.NewMockHotelUsecase()
	h := handler.NewHotelHandler(mockUsecase)
	r := setupHotelRouter(h, merchantUser())

	w := jsonRequest(t, r, "POST", "/hotels", validHotelRequest())

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "hotel created")
	assert.Contains(t, w.Body.String(), "Grand Plaza")
}

func TestCreateHotel_MissingName(t *testing.T) {
	mockUsecase := mocks.NewMockHotelUsecase()
	h := handler.NewHotelHandler(mockUsecase)
	r := setupHotelRouter(h, merchantUser())

	req := validHotelRequest()
	req.Name = ""
	w := jsonRequest(t, r, "POST", "/hotels", req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestCreateHotel_Unauthenticated(t *testing.T) {
	mockUsecase := mocks.NewMockHotelUsecase()
	h := handler.NewHotelHandler(mockUsecase)
	r := setupHotelRouter(h, nil)

	w := jsonRequest(t, r, "POST", "/hotels", validHotelRequest())

	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestGetHotels(t *testing.T) {
	mockUsecase := mocks.NewMockHotelUsecase()
	mockUsecase.MockTotal = 1
	h := handler.NewHotelHandler(mockUsecase)
	r := setupHotelRouter(h, merchantUser())

	w := jsonRequest(t, r, "GET", "/hotels?page=1&pageSize=20&status=draft&starRating=4&keyword=plaza", nil)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"total":1`)
	assert.Contains(t, w.Body.String(), `"page":1`)
	assert.Contains(t, w.Body.String(), `"pageSize":20`)
	if assert.NotNil(t, mockUsecase.LastListOptions) {
		assert.Equal(t, "plaza", mockUsecase.LastListOptions.Keyword)
		if assert.NotNil(t, mockUsecase.LastListOptions.Status) {
			assert.Equal(t, entity.HotelStatusDraft, *mockUsecase.LastListOptions.Status)
		}
		if assert.NotNil(t, mockUsecase.LastListOptions.StarRating) {
			assert.Equal(t, 4, *mockUsecase.LastListOptions.StarRating)
		}
	}
}

func TestGetHotels_AllFilters(t *testing.T) {
	mockUsecase := mocks.NewMockHotelUsecase()
	h := handler.NewHotelHandler(mockUsecase)
	r := setupHotelRouter(h, merchantUser())

	w := jsonRequest(t, r, "GET", "/hotels?status=all&starRating=all", nil)

	assert.Equal(t, http.StatusOK, w.Code)
	if assert.NotNil(t, mockUsecase.LastListOptions) {
		assert.Nil(t, mockUsecase.LastListOptions.Status)
		assert.Nil(t, mockUsecase.LastListOptions.StarRating)
	}
}

func TestGetHotels_InvalidStatus(t *testing.T) {
	mockUsecase := mocks.NewMockHotelUsecase()
	h := handler.NewHotelHandler(mockUsecase)
	r := setupHotelRouter(h, merchantUser())

	w := jsonRequest(t, r, "GET", "/hotels?status=archived", nil)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "invalid status filter")
}

func TestGetHotels_InvalidPagination(t *testing.T) {
	mockUsecase := mocks.NewMockHotelUsecase()
	h := handler.NewHotelHandler(mockUsecase)
	r := setupHotelRouter(h, merchantUser())

	w := jsonRequest(t, r, "GET", "/hotels?page=0", nil)
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w = jsonRequest(t, r, "GET", "/hotels?pageSize=500", nil)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestGetHotel(t *testing.T) {
	mockUsecase := mocks.NewMockHotelUsecase()
	h := handler.NewHotelHandler(mockUsecase)
	r := setupHotelRouter(h, merchantUser())

	w := jsonRequest(t, r, "GET", "/hotels/mock-hotel-id", nil)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "Grand Plaza")
}

func TestGetHotel_NotFound(t *testing.T) {
	mockUsecase := mocks.NewMockHotelUsecase()
	mockUsecase.ShouldFailGet = true
	h := handler.NewHotelHandler(mockUsecase)
	r := setupHotelRouter(h, merchantUser())

	w := jsonRequest(t, r, "GET", "/hotels/missing", nil)

	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Contains(t, w.Body.String(), "hotel not found")
}

func TestGetHotel_AccessDenied(t *testing.T) {
	mockUsecase := mocks.NewMockHotelUsecase()
	mockUsecase.ShouldDenyAccess = true
	h := handler.NewHotelHandler(mockUsecase)
	r := setupHotelRouter(h, merchantUser())

	w := jsonRequest(t, r, "GET", "/hotels/other-merchants-hotel", nil)

	assert.Equal(t, http.StatusForbidden, w.Code)
	assert.Contains(t, w.Body.String(), "access denied")
}

func TestUpdateHotel(t *testing.T) {
	mockUsecase := mocks.NewMockHotelUsecase()
	h := handler.NewHotelHandler(mockUsecase)
	r := setupHotelRouter(h, merchantUser())

	w := jsonRequest(t, r, "PUT", "/hotels/mock-hotel-id", validHotelRequest())

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "hotel updated")
}

func TestDeleteHotel(t *testing.T) {
	mockUsecase := mocks.NewMockHotelUsecase()
	h := handler.NewHotelHandler(mockUsecase)
	r := setupHotelRouter(h, merchantUser())

	w := jsonRequest(t, r, "DELETE", "/hotels/mock-hotel-id", nil)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "hotel deleted")
}

func TestSubmitHotel(t *testing.T) {
	mockUsecase := mocks.NewMockHotelUsecase()
	h := handler.NewHotelHandler(mockUsecase)
	r := setupHotelRouter(h, merchantUser())

	w := jsonRequest(t, r, "PUT", "/hotels/mock-hotel-id/submit", nil)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "submitted for audit")
	assert.Contains(t, w.Body.String(), string(entity.HotelStatusPending))
}

func TestSubmitHotel_WrongState(t *testing.T) {
	mockUsecase := mocks.NewMockHotelUsecase()
	mockUsecase.ShouldFailSubmit = true
	h := handler.NewHotelHandler(mockUsecase)
	r := setupHotelRouter(h, merchantUser())

	w := jsonRequest(t, r, "PUT", "/hotels/mock-hotel-id/submit", nil)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestAuditHotel_Pass(t *testing.T) {
	mockUsecase := mocks.NewMockHotelUsecase()
	h := handler.NewHotelHandler(mockUsecase)
	admin := merchantUser()
	admin.Role = entity.UserRoleAdmin
	r := setupHotelRouter(h, admin)

	passed := true
	w := jsonRequest(t, r, "PUT", "/hotels/mock-hotel-id/audit", dto.AuditRequest{Passed: &passed})

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "audit passed")
	assert.True(t, mockUsecase.LastAuditPassed)
}

func TestAuditHotel_Reject(t *testing.T) {
	mockUsecase := mocks.NewMockHotelUsecase()
	h := handler.NewHotelHandler(mockUsecase)
	admin := merchantUser()
	admin.Role = entity.UserRoleAdmin
	r := setupHotelRouter(h, admin)

	passed := false
	w := jsonRequest(t, r, "PUT", "/hotels/mock-hotel-id/audit", dto.AuditRequest{
		Passed: &passed,
		Reason: "photos do not match the listing",
	})

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "audit rejected")
	assert.Contains(t, w.Body.String(), "photos do not match the listing")
	assert.False(t, mockUsecase.LastAuditPassed)
	assert.Equal(t, "photos do not match the listing", mockUsecase.LastAuditReason)
}

func TestAuditHotel_MissingOutcome(t *testing.T) {
	mockUsecase := mocks.NewMockHotelUsecase()
	h := handler.NewHotelHandler(mockUsecase)
	admin := merchantUser()
	admin.Role = entity.UserRoleAdmin
	r := setupHotelRouter(h, admin)

	w := jsonRequest(t, r, "PUT", "/hotels/mock-hotel-id/audit", map[string]string{"reason": "no outcome"})

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestToggleHotel(t *testing.T) {
	mockUsecase := mocks.NewMockHotelUsecase()
	h := handler.NewHotelHandler(mockUsecase)
	r := setupHotelRouter(h, merchantUser())

	w := jsonRequest(t, r, "PUT", "/hotels/mock-hotel-id/toggle", nil)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "hotel is online")
}

func TestToggleHotel_WrongState(t *testing.T) {
	mockUsecase := mocks.NewMockHotelUsecase()
	mockUsecase.ShouldFailToggle = true
	h := handler.NewHotelHandler(mockUsecase)
	r := setupHotelRouter(h, merchantUser())

	w := jsonRequest(t, r, "PUT", "/hotels/mock-hotel-id/toggle", nil)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "cannot be toggled")
}

func TestGetHotelStats(t *testing.T) {
	mockUsecase := mocks.NewMockHotelUsecase()
	h := handler.NewHotelHandler(mockUsecase)
	r := setupHotelRouter(h, merchantUser())

	w := jsonRequest(t, r, "GET", "/hotels/stats", nil)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"total":1`)
}
