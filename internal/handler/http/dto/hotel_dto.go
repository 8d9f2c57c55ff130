package dto

import (
	"github.com/danielmek/hotelhub/internal/domain/entity"
	usecasecontract "github.com/danielmek/hotelhub/internal/usecase/contract"
)

// Request DTOs for Hotel Handlers

// HotelRequest defines the structure for creating or updating a hotel.
// Status and audit fields are not accepted here; they change only through
// the lifecycle endpoints.
type HotelRequest struct {
	Name              string                    `json:"name" binding:"required,max=100"`
	NameEn            string                    `json:"nameEn" binding:"omitempty,max=100"`
	Address           string                    `json:"address" binding:"required"`
	StarRating        int                       `json:"starRating" binding:"required,min=1,max=5"`
	Phone             string                    `json:"phone" binding:"required"`
	Description       string                    `json:"description" binding:"required,max=1000"`
	Images            []string                  `json:"images"`
	RoomTypes         []entity.RoomType         `json:"roomTypes"`
	OpeningDate       string                    `json:"openingDate"`
	NearbyAttractions []entity.NearbyAttraction `json:"nearbyAttractions"`
	Transportations   []entity.Transportation   `json:"transportations"`
	ShoppingMalls     []entity.ShoppingMall     `json:"shoppingMalls"`
	Discounts         []entity.Discount         `json:"discounts"`
	Facilities        []string                  `json:"facilities"`
	Policies          entity.Policies           `json:"policies"`
}

// ToHotelInput converts the request into the usecase input type.
func (r *HotelRequest) ToHotelInput() *usecasecontract.HotelInput {
	return &usecasecontract.HotelInput{
		Name:              r.Name,
		NameEn:            r.NameEn,
		Address:           r.Address,
		StarRating:        r.StarRating,
		Phone:             r.Phone,
		Description:       r.Description,
		Images:            r.Images,
		RoomTypes:         r.RoomTypes,
		OpeningDate:       r.OpeningDate,
		NearbyAttractions: r.NearbyAttractions,
		Transportations:   r.Transportations,
		ShoppingMalls:     r.ShoppingMalls,
		Discounts:         r.Discounts,
		Facilities:        r.Facilities,
		Policies:          r.Policies,
	}
}

// AuditRequest defines the structure for recording an audit outcome.
type AuditRequest struct {
	Passed *bool  `json:"passed" binding:"required"`
	Reason string `json:"reason"`
}

// UploadedFileResponse is the DTO for a stored upload.
type UploadedFileResponse struct {
	URL      string `json:"url"`
	Filename string `json:"filename"`
}
