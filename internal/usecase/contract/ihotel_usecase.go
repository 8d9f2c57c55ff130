package contract

import (
	"context"

	domaincontract "github.com/danielmek/hotelhub/internal/domain/contract"
	"github.com/danielmek/hotelhub/internal/domain/entity"
)

// HotelInput carries the editable listing fields. Status and audit fields are
// deliberately absent: they change only through lifecycle operations.
type HotelInput struct {
	Name              string
	NameEn            string
	Address           string
	StarRating        int
	Phone             string
	Description       string
	Images            []string
	RoomTypes         []entity.RoomType
	OpeningDate       string
	NearbyAttractions []entity.NearbyAttraction
	Transportations   []entity.Transportation
	ShoppingMalls     []entity.ShoppingMall
	Discounts         []entity.Discount
	Facilities        []string
	Policies          entity.Policies
}

// IHotelUseCase is the listing lifecycle manager: every operation takes the
// resolved caller identity and enforces ownership and role rules itself.
type IHotelUseCase interface {
	CreateHotel(ctx context.Context, caller *entity.User, input *HotelInput) (*entity.Hotel, error)
	GetHotel(ctx context.Context, caller *entity.User, hotelID string) (*entity.Hotel, error)
	// ListHotels scopes results to the caller's own hotels unless the caller
	// is an admin; the CreatorID filter option is set by the usecase, never
	// trusted from the caller.
	ListHotels(ctx context.Context, caller *entity.User, opts *domaincontract.HotelFilterOptions) ([]*entity.Hotel, int64, error)
	UpdateHotel(ctx context.Context, caller *entity.User, hotelID string, input *HotelInput) (*entity.Hotel, error)
	DeleteHotel(ctx context.Context, caller *entity.User, hotelID string) error
	SubmitForAudit(ctx context.Context, caller *entity.User, hotelID string) (*entity.Hotel, error)
	AuditHotel(ctx context.Context, caller *entity.User, hotelID string, passed bool, reason string) (*entity.Hotel, error)
	ToggleOnline(ctx context.Context, caller *entity.User, hotelID string) (*entity.Hotel, error)
	GetStats(ctx context.Context, caller *entity.User) (*domaincontract.HotelStats, error)
}
