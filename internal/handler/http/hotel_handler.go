package http

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	domaincontract "github.com/danielmek/hotelhub/internal/domain/contract"
	"github.com/danielmek/hotelhub/internal/domain/entity"
	"github.com/danielmek/hotelhub/internal/handler/http/dto"
	usecasecontract "github.com/danielmek/hotelhub/internal/usecase/contract"
)

// HotelHandlerInterface defines the methods for the hotel handler to allow
// interface-based dependency injection (for testing/mocking)
type HotelHandlerInterface interface {
	CreateHotelHandler(*gin.Context)
	GetHotelsHandler(*gin.Context)
	GetHotelHandler(*gin.Context)
	UpdateHotelHandler(*gin.Context)
	DeleteHotelHandler(*gin.Context)
	SubmitHotelHandler(*gin.Context)
	AuditHotelHandler(*gin.Context)
	ToggleHotelHandler(*gin.Context)
	GetHotelStatsHandler(*gin.Context)
}

// Ensure HotelHandler implements HotelHandlerInterface
var _ HotelHandlerInterface = (*HotelHandler)(nil)

type HotelHandler struct {
	hotelUsecase usecasecontract.IHotelUseCase
}

func NewHotelHandler(hotelUsecase usecasecontract.IHotelUseCase) *HotelHandler {
	return &HotelHandler{
		hotelUsecase: hotelUsecase,
	}
}

// CreateHotelHandler creates a new draft listing owned by the caller.
func (h *HotelHandler) CreateHotelHandler(c *gin.Context) {
	caller, ok := CurrentUser(c)
	if !ok {
		ErrorHandler(c, http.StatusUnauthorized, "authentication required")
		return
	}

	var req dto.HotelRequest
	if err := BindAndValidate(c, &req); err != nil {
		return
	}

	hotel, err := h.hotelUsecase.CreateHotel(c.Request.Context(), caller, req.ToHotelInput())
	if err != nil {
		RespondError(c, err)
		return
	}
	MessageHandler(c, http.StatusOK, hotel, "hotel created")
}

// GetHotelsHandler returns a filtered, ownership-scoped page of listings.
func (h *HotelHandler) GetHotelsHandler(c *gin.Context) {
	caller, ok := CurrentUser(c)
	if !ok {
		ErrorHandler(c, http.StatusUnauthorized, "authentication required")
		return
	}

	page, err := strconv.Atoi(c.DefaultQuery("page", "1"))
	if err != nil || page < 1 {
		ErrorHandler(c, http.StatusBadRequest, "invalid page number")
		return
	}
	pageSize, err := strconv.Atoi(c.DefaultQuery("pageSize", "10"))
	if err != nil || pageSize < 1 || pageSize > 100 {
		ErrorHandler(c, http.StatusBadRequest, "pageSize must be between 1 and 100")
		return
	}

	opts := &domaincontract.HotelFilterOptions{
		Page:     page,
		PageSize: pageSize,
		Keyword:  c.Query("keyword"),
	}

	if statusStr := c.DefaultQuery("status", "all"); statusStr != "all" {
		status := entity.HotelStatus(statusStr)
		if !status.IsValid() {
			ErrorHandler(c, http.StatusBadRequest, "invalid status filter")
			return
		}
		opts.Status = &status
	}

	if starStr := c.DefaultQuery("starRating", "all"); starStr != "all" {
		star, err := strconv.Atoi(starStr)
		if err != nil || star < 1 || star > 5 {
			ErrorHandler(c, http.StatusBadRequest, "starRating must be between 1 and 5")
			return
		}
		opts.StarRating = &star
	}

	hotels, total, err := h.hotelUsecase.ListHotels(c.Request.Context(), caller, opts)
	if err != nil {
		RespondError(c, err)
		return
	}
	PaginatedHandler(c, hotels, total, page, pageSize)
}

// GetHotelHandler returns a single listing, ownership-checked.
func (h *HotelHandler) GetHotelHandler(c *gin.Context) {
	caller, ok := CurrentUser(c)
	if !ok {
		ErrorHandler(c, http.StatusUnauthorized, "authentication required")
		return
	}

	hotel, err := h.hotelUsecase.GetHotel(c.Request.Context(), caller, c.Param("id"))
	if err != nil {
		RespondError(c, err)
		return
	}
	SuccessHandler(c, http.StatusOK, hotel)
}

// UpdateHotelHandler mutates listing fields; lifecycle fields are untouched.
func (h *HotelHandler) UpdateHotelHandler(c *gin.Context) {
	caller, ok := CurrentUser(c)
	if !ok {
		ErrorHandler(c, http.StatusUnauthorized, "authentication required")
		return
	}

	var req dto.HotelRequest
	if err := BindAndValidate(c, &req); err != nil {
		return
	}

	hotel, err := h.hotelUsecase.UpdateHotel(c.Request.Context(), caller, c.Param("id"), req.ToHotelInput())
	if err != nil {
		RespondError(c, err)
		return
	}
	MessageHandler(c, http.StatusOK, hotel, "hotel updated")
}

// DeleteHotelHandler permanently removes a listing.
func (h *HotelHandler) DeleteHotelHandler(c *gin.Context) {
	caller, ok := CurrentUser(c)
	if !ok {
		ErrorHandler(c, http.StatusUnauthorized, "authentication required")
		return
	}

	if err := h.hotelUsecase.DeleteHotel(c.Request.Context(), caller, c.Param("id")); err != nil {
		RespondError(c, err)
		return
	}
	MessageHandler(c, http.StatusOK, nil, "hotel deleted")
}

// SubmitHotelHandler moves a listing into the review queue.
func (h *HotelHandler) SubmitHotelHandler(c *gin.Context) {
	caller, ok := CurrentUser(c)
	if !ok {
		ErrorHandler(c, http.StatusUnauthorized, "authentication required")
		return
	}

	hotel, err := h.hotelUsecase.SubmitForAudit(c.Request.Context(), caller, c.Param("id"))
	if err != nil {
		RespondError(c, err)
		return
	}
	MessageHandler(c, http.StatusOK, hotel, "submitted for audit")
}

// AuditHotelHandler records an admin review outcome.
func (h *HotelHandler) AuditHotelHandler(c *gin.Context) {
	caller, ok := CurrentUser(c)
	if !ok {
		ErrorHandler(c, http.StatusUnauthorized, "authentication required")
		return
	}

	var req dto.AuditRequest
	if err := BindAndValidate(c, &req); err != nil {
		return
	}

	hotel, err := h.hotelUsecase.AuditHotel(c.Request.Context(), caller, c.Param("id"), *req.Passed, req.Reason)
	if err != nil {
		RespondError(c, err)
		return
	}

	message := "audit passed, hotel is online"
	if !*req.Passed {
		message = "audit rejected"
	}
	MessageHandler(c, http.StatusOK, hotel, message)
}

// ToggleHotelHandler flips a listing between online and offline.
func (h *HotelHandler) ToggleHotelHandler(c *gin.Context) {
	caller, ok := CurrentUser(c)
	if !ok {
		ErrorHandler(c, http.StatusUnauthorized, "authentication required")
		return
	}

	hotel, err := h.hotelUsecase.ToggleOnline(c.Request.Context(), caller, c.Param("id"))
	if err != nil {
		RespondError(c, err)
		return
	}

	message := "hotel is offline"
	if hotel.Status == entity.HotelStatusOnline {
		message = "hotel is online"
	}
	MessageHandler(c, http.StatusOK, hotel, message)
}

// GetHotelStatsHandler returns ownership-scoped counts by status.
func (h *HotelHandler) GetHotelStatsHandler(c *gin.Context) {
	caller, ok := CurrentUser(c)
	if !ok {
		ErrorHandler(c, http.StatusUnauthorized, "authentication required")
		return
	}

	stats, err := h.hotelUsecase.GetStats(c.Request.Context(), caller)
	if err != nil {
		RespondError(c, err)
		return
	}
	SuccessHandler(c, http.StatusOK, stats)
}
