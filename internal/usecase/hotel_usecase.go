package usecase

import (
	"context"
	"time"

	"github.com/danielmek/hotelhub/internal/domain/apperr"
	"github.com/danielmek/hotelhub/internal/domain/contract"
	"github.com/danielmek/hotelhub/internal/domain/entity"
	usecasecontract "github.com/danielmek/hotelhub/internal/usecase/contract"
)

// HotelAction names an operation on a hotel for access checks.
type HotelAction string

const (
	ActionRead   HotelAction = "read"
	ActionUpdate HotelAction = "update"
	ActionDelete HotelAction = "delete"
	ActionSubmit HotelAction = "submit"
	ActionToggle HotelAction = "toggle"
)

// HotelUsecase implements the listing lifecycle manager.
type HotelUsecase struct {
	hotelRepo     contract.IHotelRepository
	uuidGenerator contract.IUUIDGenerator
	logger        usecasecontract.IAppLogger
	cache         contract.IHotelCache
}

// NewHotelUsecase creates a new HotelUsecase instance.
func NewHotelUsecase(hotelRepo contract.IHotelRepository, uuidGenerator contract.IUUIDGenerator, logger usecasecontract.IAppLogger) *HotelUsecase {
	return &HotelUsecase{
		hotelRepo:     hotelRepo,
		uuidGenerator: uuidGenerator,
		logger:        logger,
	}
}

// check if HotelUsecase implements the IHotelUseCase
var _ usecasecontract.IHotelUseCase = (*HotelUsecase)(nil)

// SetHotelCache wires an optional stats cache.
func (uc *HotelUsecase) SetHotelCache(cache contract.IHotelCache) {
	uc.cache = cache
}

// canAccess is the single authorization predicate for per-hotel operations.
// Admins (and super admins) may do anything; owners may read, submit, and
// toggle their own hotels in any status, and update or delete them only while
// the status permits edits.
func canAccess(caller *entity.User, hotel *entity.Hotel, action HotelAction) error {
	if caller.Role.IsAdmin() {
		return nil
	}
	if hotel.CreatorID != caller.ID {
		return apperr.Authorization("you do not have access to this hotel")
	}
	if (action == ActionUpdate || action == ActionDelete) && !hotel.Editable() {
		return apperr.InvalidState("hotel cannot be modified in its current status")
	}
	return nil
}

// CreateHotel creates a new listing in draft status owned by the caller.
func (uc *HotelUsecase) CreateHotel(ctx context.Context, caller *entity.User, input *usecasecontract.HotelInput) (*entity.Hotel, error) {
	if err := validateHotelInput(input); err != nil {
		return nil, err
	}

	now := time.Now()
	hotel := &entity.Hotel{
		ID:          uc.uuidGenerator.NewUUID(),
		Status:      entity.HotelStatusDraft,
		AuditStatus: entity.AuditStatusNone,
		CreatorID:   caller.ID,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	applyHotelInput(hotel, input)

	if err := uc.hotelRepo.CreateHotel(ctx, hotel); err != nil {
		uc.logger.Errorf("failed to create hotel: %v", err)
		return nil, err
	}

	uc.invalidateStats(ctx, hotel.CreatorID)
	return hotel, nil
}

// GetHotel retrieves a single listing, re-checking ownership for non-admins.
func (uc *HotelUsecase) GetHotel(ctx context.Context, caller *entity.User, hotelID string) (*entity.Hotel, error) {
	hotel, err := uc.hotelRepo.GetHotelByID(ctx, hotelID)
	if err != nil {
		return nil, err
	}
	if err := canAccess(caller, hotel, ActionRead); err != nil {
		return nil, err
	}
	return hotel, nil
}

// ListHotels returns a filtered page of listings. The ownership scope is
// decided here from the caller's role, never taken from the filter options.
func (uc *HotelUsecase) ListHotels(ctx context.Context, caller *entity.User, opts *contract.HotelFilterOptions) ([]*entity.Hotel, int64, error) {
	if opts == nil {
		opts = &contract.HotelFilterOptions{}
	}
	if opts.Page < 1 {
		opts.Page = 1
	}
	if opts.PageSize < 1 {
		opts.PageSize = 10
	}
	if opts.PageSize > 100 {
		return nil, 0, apperr.Validation("pageSize must be between 1 and 100")
	}

	if caller.Role.IsAdmin() {
		opts.CreatorID = nil
	} else {
		creatorID := caller.ID
		opts.CreatorID = &creatorID
	}

	return uc.hotelRepo.GetHotels(ctx, opts)
}

// UpdateHotel mutates listing fields only; status and audit fields are
// untouchable through this path.
func (uc *HotelUsecase) UpdateHotel(ctx context.Context, caller *entity.User, hotelID string, input *usecasecontract.HotelInput) (*entity.Hotel, error) {
	if err := validateHotelInput(input); err != nil {
		return nil, err
	}

	hotel, err := uc.hotelRepo.GetHotelByID(ctx, hotelID)
	if err != nil {
		return nil, err
	}
	if err := canAccess(caller, hotel, ActionUpdate); err != nil {
		return nil, err
	}

	applyHotelInput(hotel, input)
	hotel.UpdatedAt = time.Now()

	updates := map[string]interface{}{
		"name":               hotel.Name,
		"name_en":            hotel.NameEn,
		"address":            hotel.Address,
		"star_rating":        hotel.StarRating,
		"phone":              hotel.Phone,
		"description":        hotel.Description,
		"images":             hotel.Images,
		"room_types":         hotel.RoomTypes,
		"opening_date":       hotel.OpeningDate,
		"nearby_attractions": hotel.NearbyAttractions,
		"transportations":    hotel.Transportations,
		"shopping_malls":     hotel.ShoppingMalls,
		"discounts":          hotel.Discounts,
		"facilities":         hotel.Facilities,
		"policies":           hotel.Policies,
		"updated_at":         hotel.UpdatedAt,
	}
	if err := uc.hotelRepo.UpdateHotel(ctx, hotelID, updates); err != nil {
		uc.logger.Errorf("failed to update hotel %s: %v", hotelID, err)
		return nil, err
	}

	return hotel, nil
}

// DeleteHotel permanently removes a listing.
func (uc *HotelUsecase) DeleteHotel(ctx context.Context, caller *entity.User, hotelID string) error {
	hotel, err := uc.hotelRepo.GetHotelByID(ctx, hotelID)
	if err != nil {
		return err
	}
	if err := canAccess(caller, hotel, ActionDelete); err != nil {
		return err
	}

	if err := uc.hotelRepo.DeleteHotel(ctx, hotelID); err != nil {
		uc.logger.Errorf("failed to delete hotel %s: %v", hotelID, err)
		return err
	}

	uc.invalidateStats(ctx, hotel.CreatorID)
	return nil
}

// SubmitForAudit moves a listing into the review queue.
func (uc *HotelUsecase) SubmitForAudit(ctx context.Context, caller *entity.User, hotelID string) (*entity.Hotel, error) {
	return uc.transition(ctx, caller, hotelID, ActionSubmit, func(h *entity.Hotel) error {
		return h.SubmitForAudit()
	})
}

// AuditHotel records an admin review outcome. Admin only, regardless of what
// the route layer checked.
func (uc *HotelUsecase) AuditHotel(ctx context.Context, caller *entity.User, hotelID string, passed bool, reason string) (*entity.Hotel, error) {
	if !caller.Role.IsAdmin() {
		return nil, apperr.Authorization("only admins can audit hotels")
	}
	return uc.transition(ctx, caller, hotelID, ActionRead, func(h *entity.Hotel) error {
		return h.Audit(passed, reason)
	})
}

// ToggleOnline flips a listing between online and offline.
func (uc *HotelUsecase) ToggleOnline(ctx context.Context, caller *entity.User, hotelID string) (*entity.Hotel, error) {
	return uc.transition(ctx, caller, hotelID, ActionToggle, func(h *entity.Hotel) error {
		return h.Toggle()
	})
}

// transition loads a hotel, authorizes the caller, applies a state change,
// and persists the status fields.
func (uc *HotelUsecase) transition(ctx context.Context, caller *entity.User, hotelID string, action HotelAction, apply func(*entity.Hotel) error) (*entity.Hotel, error) {
	hotel, err := uc.hotelRepo.GetHotelByID(ctx, hotelID)
	if err != nil {
		return nil, err
	}
	if err := canAccess(caller, hotel, action); err != nil {
		return nil, err
	}
	if err := apply(hotel); err != nil {
		return nil, err
	}
	hotel.UpdatedAt = time.Now()

	updates := map[string]interface{}{
		"status":       hotel.Status,
		"audit_status": hotel.AuditStatus,
		"audit_reason": hotel.AuditReason,
		"updated_at":   hotel.UpdatedAt,
	}
	if err := uc.hotelRepo.UpdateHotel(ctx, hotelID, updates); err != nil {
		uc.logger.Errorf("failed to persist transition for hotel %s: %v", hotelID, err)
		return nil, err
	}

	uc.invalidateStats(ctx, hotel.CreatorID)
	return hotel, nil
}

// GetStats returns per-status counts under the caller's ownership scope.
func (uc *HotelUsecase) GetStats(ctx context.Context, caller *entity.User) (*contract.HotelStats, error) {
	var creatorID *string
	scope := "all"
	if !caller.Role.IsAdmin() {
		id := caller.ID
		creatorID = &id
		scope = caller.ID
	}

	if uc.cache != nil {
		if stats, ok, err := uc.cache.GetStats(ctx, scope); err == nil && ok {
			return stats, nil
		}
	}

	stats, err := uc.hotelRepo.CountByStatus(ctx, creatorID)
	if err != nil {
		uc.logger.Errorf("failed to aggregate hotel stats: %v", err)
		return nil, err
	}

	if uc.cache != nil {
		if err := uc.cache.SetStats(ctx, scope, stats); err != nil {
			uc.logger.Warnf("failed to cache hotel stats: %v", err)
		}
	}
	return stats, nil
}

func (uc *HotelUsecase) invalidateStats(ctx context.Context, creatorID string) {
	if uc.cache == nil {
		return
	}
	if err := uc.cache.InvalidateStats(ctx, creatorID); err != nil {
		uc.logger.Warnf("failed to invalidate hotel stats cache: %v", err)
	}
}

// validateHotelInput enforces the required-field and bounds constraints on
// the editable listing fields.
func validateHotelInput(input *usecasecontract.HotelInput) error {
	if input == nil {
		return apperr.Validation("hotel data is required")
	}
	if input.Name == "" {
		return apperr.Validation("hotel name is required")
	}
	if len([]rune(input.Name)) > 100 {
		return apperr.Validation("hotel name must be at most 100 characters")
	}
	if input.Address == "" {
		return apperr.Validation("hotel address is required")
	}
	if input.StarRating < 1 || input.StarRating > 5 {
		return apperr.Validation("star rating must be between 1 and 5")
	}
	if len([]rune(input.Description)) > 1000 {
		return apperr.Validation("hotel description must be at most 1000 characters")
	}
	for _, t := range input.Transportations {
		switch t.Type {
		case entity.TransportSubway, entity.TransportBus, entity.TransportAirport, entity.TransportTrain, entity.TransportOther:
		default:
			return apperr.Validation("unknown transportation type")
		}
	}
	for _, d := range input.Discounts {
		switch d.Type {
		case entity.DiscountPercentage, entity.DiscountFixed, entity.DiscountSpecial:
		default:
			return apperr.Validation("unknown discount type")
		}
	}
	return nil
}

// applyHotelInput copies editable fields onto the hotel. Status, audit
// fields, and creator are never written here.
func applyHotelInput(hotel *entity.Hotel, input *usecasecontract.HotelInput) {
	hotel.Name = input.Name
	hotel.NameEn = input.NameEn
	hotel.Address = input.Address
	hotel.StarRating = input.StarRating
	hotel.Phone = input.Phone
	hotel.Description = input.Description
	hotel.Images = input.Images
	hotel.RoomTypes = input.RoomTypes
	hotel.OpeningDate = input.OpeningDate
	hotel.NearbyAttractions = input.NearbyAttractions
	hotel.Transportations = input.Transportations
	hotel.ShoppingMalls = input.ShoppingMalls
	hotel.Discounts = input.Discounts
	hotel.Facilities = input.Facilities
	hotel.Policies = input.Policies
	if hotel.Images == nil {
		hotel.Images = []string{}
	}
	if hotel.RoomTypes == nil {
		hotel.RoomTypes = []entity.RoomType{}
	}
	if hotel.NearbyAttractions == nil {
		hotel.NearbyAttractions = []entity.NearbyAttraction{}
	}
	if hotel.Transportations == nil {
		hotel.Transportations = []entity.Transportation{}
	}
	if hotel.ShoppingMalls == nil {
		hotel.ShoppingMalls = []entity.ShoppingMall{}
	}
	if hotel.Discounts == nil {
		hotel.Discounts = []entity.Discount{}
	}
	if hotel.Facilities == nil {
		hotel.Facilities = []string{}
	}
}
