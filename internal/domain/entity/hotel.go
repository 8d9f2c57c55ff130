package entity

import (
	"time"

	"github.com/danielmek/hotelhub/internal/domain/apperr"
)

// HotelStatus represents the lifecycle status of a hotel listing.
type HotelStatus string

const (
	HotelStatusDraft   HotelStatus = "draft"
	HotelStatusPending HotelStatus = "pending"
	HotelStatusOnline  HotelStatus = "online"
	HotelStatusOffline HotelStatus = "offline"
)

// IsValid reports whether the status is one of the known lifecycle statuses.
func (s HotelStatus) IsValid() bool {
	switch s {
	case HotelStatusDraft, HotelStatusPending, HotelStatusOnline, HotelStatusOffline:
		return true
	}
	return false
}

// AuditStatus records the outcome of the last admin review. A rejected
// listing is represented as status=offline with AuditStatus=rejected; there
// is no separate top-level "rejected" status.
type AuditStatus string

const (
	AuditStatusNone     AuditStatus = ""
	AuditStatusPassed   AuditStatus = "passed"
	AuditStatusRejected AuditStatus = "rejected"
)

// RoomType is a bookable room category embedded in a hotel.
type RoomType struct {
	ID            string  `bson:"_id,omitempty" json:"id,omitempty"`
	Name          string  `bson:"name" json:"name"`
	NameEn        string  `bson:"name_en,omitempty" json:"nameEn,omitempty"`
	Price         float64 `bson:"price" json:"price"`
	OriginalPrice float64 `bson:"original_price,omitempty" json:"originalPrice,omitempty"`
	Area          float64 `bson:"area,omitempty" json:"area,omitempty"`
	BedType       string  `bson:"bed_type,omitempty" json:"bedType,omitempty"`
	MaxOccupancy  int     `bson:"max_occupancy,omitempty" json:"maxOccupancy,omitempty"`
	Breakfast     bool    `bson:"breakfast,omitempty" json:"breakfast,omitempty"`
}

// NearbyAttraction is a point of interest embedded in a hotel.
type NearbyAttraction struct {
	Name        string `bson:"name" json:"name"`
	Distance    string `bson:"distance,omitempty" json:"distance,omitempty"`
	Description string `bson:"description,omitempty" json:"description,omitempty"`
}

// TransportType classifies a transportation option.
type TransportType string

const (
	TransportSubway  TransportType = "subway"
	TransportBus     TransportType = "bus"
	TransportAirport TransportType = "airport"
	TransportTrain   TransportType = "train"
	TransportOther   TransportType = "other"
)

// Transportation is a transit option embedded in a hotel.
type Transportation struct {
	Type        TransportType `bson:"type" json:"type"`
	Name        string        `bson:"name" json:"name"`
	Distance    string        `bson:"distance,omitempty" json:"distance,omitempty"`
	Description string        `bson:"description,omitempty" json:"description,omitempty"`
}

// ShoppingMall is a nearby shopping venue embedded in a hotel.
type ShoppingMall struct {
	Name        string `bson:"name" json:"name"`
	Distance    string `bson:"distance,omitempty" json:"distance,omitempty"`
	Description string `bson:"description,omitempty" json:"description,omitempty"`
}

// DiscountType classifies a promotional discount.
type DiscountType string

const (
	DiscountPercentage DiscountType = "percentage"
	DiscountFixed      DiscountType = "fixed"
	DiscountSpecial    DiscountType = "special"
)

// Discount is a promotion embedded in a hotel.
type Discount struct {
	ID          string       `bson:"_id,omitempty" json:"id,omitempty"`
	Name        string       `bson:"name" json:"name"`
	Type        DiscountType `bson:"type" json:"type"`
	Value       float64      `bson:"value" json:"value"`
	Conditions  string       `bson:"conditions,omitempty" json:"conditions,omitempty"`
	Description string       `bson:"description,omitempty" json:"description,omitempty"`
	StartDate   string       `bson:"start_date,omitempty" json:"startDate,omitempty"`
	EndDate     string       `bson:"end_date,omitempty" json:"endDate,omitempty"`
}

// Policies holds the house rules of a hotel.
type Policies struct {
	CheckIn      string `bson:"check_in,omitempty" json:"checkIn,omitempty"`
	CheckOut     string `bson:"check_out,omitempty" json:"checkOut,omitempty"`
	Cancellation string `bson:"cancellation,omitempty" json:"cancellation,omitempty"`
	ExtraBed     string `bson:"extra_bed,omitempty" json:"extraBed,omitempty"`
	Pets         string `bson:"pets,omitempty" json:"pets,omitempty"`
}

// Hotel represents a listing owned by exactly one merchant.
type Hotel struct {
	ID                string             `bson:"_id,omitempty" json:"id"`
	Name              string             `bson:"name" json:"name"`
	NameEn            string             `bson:"name_en,omitempty" json:"nameEn,omitempty"`
	Address           string             `bson:"address" json:"address"`
	StarRating        int                `bson:"star_rating" json:"starRating"`
	Phone             string             `bson:"phone" json:"phone"`
	Description       string             `bson:"description" json:"description"`
	Images            []string           `bson:"images" json:"images"`
	Status            HotelStatus        `bson:"status" json:"status"`
	AuditStatus       AuditStatus        `bson:"audit_status,omitempty" json:"auditStatus,omitempty"`
	AuditReason       string             `bson:"audit_reason,omitempty" json:"auditReason,omitempty"`
	RoomTypes         []RoomType         `bson:"room_types" json:"roomTypes"`
	OpeningDate       string             `bson:"opening_date,omitempty" json:"openingDate,omitempty"`
	NearbyAttractions []NearbyAttraction `bson:"nearby_attractions" json:"nearbyAttractions"`
	Transportations   []Transportation   `bson:"transportations" json:"transportations"`
	ShoppingMalls     []ShoppingMall     `bson:"shopping_malls" json:"shoppingMalls"`
	Discounts         []Discount         `bson:"discounts" json:"discounts"`
	Facilities        []string           `bson:"facilities" json:"facilities"`
	Policies          Policies           `bson:"policies" json:"policies"`
	CreatorID         string             `bson:"creator_id" json:"creator"`
	CreatedAt         time.Time          `bson:"created_at" json:"createdAt"`
	UpdatedAt         time.Time          `bson:"updated_at" json:"updatedAt"`
}

// The methods below are the only place status and audit fields are mutated.
// Callers load a hotel, apply a transition, and persist the result.

// SubmitForAudit moves a draft or offline listing into the review queue and
// clears any previous audit outcome.
func (h *Hotel) SubmitForAudit() error {
	if h.Status != HotelStatusDraft && h.Status != HotelStatusOffline {
		return apperr.InvalidState("only draft or offline hotels can be submitted for audit")
	}
	h.Status = HotelStatusPending
	h.AuditStatus = AuditStatusNone
	h.AuditReason = ""
	return nil
}

// Audit records an admin review outcome on a pending listing. A passed audit
// brings the hotel online; a rejected one takes it offline with the given
// reason.
func (h *Hotel) Audit(passed bool, reason string) error {
	if h.Status != HotelStatusPending {
		return apperr.InvalidState("only pending hotels can be audited")
	}
	if passed {
		h.Status = HotelStatusOnline
		h.AuditStatus = AuditStatusPassed
		h.AuditReason = ""
	} else {
		h.Status = HotelStatusOffline
		h.AuditStatus = AuditStatusRejected
		h.AuditReason = reason
	}
	return nil
}

// Toggle flips an online listing offline, or an offline listing that already
// passed audit back online. Any other state is an error; a rejected listing
// must go through submit and audit again.
func (h *Hotel) Toggle() error {
	switch {
	case h.Status == HotelStatusOnline:
		h.Status = HotelStatusOffline
	case h.Status == HotelStatusOffline && h.AuditStatus == AuditStatusPassed:
		h.Status = HotelStatusOnline
	default:
		return apperr.InvalidState("hotel cannot be toggled in its current status")
	}
	return nil
}

// Editable reports whether owners may edit or delete the listing in its
// current status. Admins are not bound by this.
func (h *Hotel) Editable() bool {
	return h.Status == HotelStatusDraft || h.Status == HotelStatusOffline
}
