package contract

import (
	"context"

	"github.com/danielmek/hotelhub/internal/domain/entity"
)

// IHotelRepository provides methods for managing hotel listings in the database.
type IHotelRepository interface {
	CreateHotel(ctx context.Context, hotel *entity.Hotel) error
	GetHotelByID(ctx context.Context, hotelID string) (*entity.Hotel, error)
	GetHotels(ctx context.Context, filterOptions *HotelFilterOptions) ([]*entity.Hotel, int64, error)
	UpdateHotel(ctx context.Context, hotelID string, updates map[string]interface{}) error
	DeleteHotel(ctx context.Context, hotelID string) error
	// CountByStatus groups hotels by lifecycle status, optionally scoped to a
	// single creator.
	CountByStatus(ctx context.Context, creatorID *string) (*HotelStats, error)
}

// HotelFilterOptions encapsulates filtering and pagination parameters for
// hotel retrieval. A nil CreatorID means no ownership scoping (admin view).
type HotelFilterOptions struct {
	Page       int
	PageSize   int
	Status     *entity.HotelStatus
	StarRating *int
	// Keyword matches name, English name, or address as a case-insensitive
	// substring.
	Keyword   string
	CreatorID *string
}

// HotelStats holds per-status listing counts.
type HotelStats struct {
	Total   int64 `json:"total"`
	Draft   int64 `json:"draft"`
	Pending int64 `json:"pending"`
	Online  int64 `json:"online"`
	Offline int64 `json:"offline"`
}
