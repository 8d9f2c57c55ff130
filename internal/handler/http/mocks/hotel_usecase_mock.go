package mocks

import (
	"context"
	"time"

	"github.com/danielmek/hotelhub/internal/domain/apperr"
	domaincontract "github.com/danielmek/hotelhub/internal/domain/contract"
	"github.com/danielmek/hotelhub/internal/domain/entity"
	usecasecontract "github.com/danielmek/hotelhub/internal/usecase/contract"
)

// MockHotelUsecase is a mock implementation of the IHotelUseCase interface
type MockHotelUsecase struct {
	// Control mock behavior
	ShouldFailCreate    bool
	ShouldFailGet       bool
	ShouldFailList      bool
	ShouldFailUpdate    bool
	ShouldFailDelete    bool
	ShouldFailSubmit    bool
	ShouldFailAudit     bool
	ShouldFailToggle    bool
	ShouldFailGetStats  bool
	ShouldDenyAccess    bool
	ShouldRejectInvalid bool

	// Return values
	MockHotel  entity.Hotel
	MockHotels []*entity.Hotel
	MockTotal  int64
	MockStats  domaincontract.HotelStats

	// Captured arguments for assertions
	LastListOptions *domaincontract.HotelFilterOptions
	LastAuditPassed bool
	LastAuditReason string
}

// Ensure MockHotelUsecase implements the interface the handlers depend on
var _ usecasecontract.IHotelUseCase = (*MockHotelUsecase)(nil)

func NewMockHotelUsecase() *MockHotelUsecase {
	return &MockHotelUsecase{
		MockHotel: entity.Hotel{
			ID:         "mock-hotel-id",
			Name:       "Grand Plaza",
			Address:    "1 Main Street",
			StarRating: 4,
			Status:     entity.HotelStatusDraft,
			CreatorID:  "mock-user-id",
			CreatedAt:  time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC),
		},
		MockTotal: 1,
		MockStats: domaincontract.HotelStats{Total: 1, Draft: 1},
	}
}

func (m *MockHotelUsecase) check(fail bool, failErr error) error {
	if m.ShouldDenyAccess {
		return apperr.Authorization("access denied")
	}
	if fail {
		return failErr
	}
	return nil
}

func (m *MockHotelUsecase) CreateHotel(ctx context.Context, caller *entity.User, input *usecasecontract.HotelInput) (*entity.Hotel, error) {
	if m.ShouldRejectInvalid {
		return nil, apperr.Validation("hotel name is required")
	}
	if err := m.check(m.ShouldFailCreate, apperr.New(apperr.KindUnexpected, "create hotel failed")); err != nil {
		return nil, err
	}
	return &m.MockHotel, nil
}

func (m *MockHotelUsecase) GetHotel(ctx context.Context, caller *entity.User, hotelID string) (*entity.Hotel, error) {
	if err := m.check(m.ShouldFailGet, apperr.NotFound("hotel not found")); err != nil {
		return nil, err
	}
	return &m.MockHotel, nil
}

func (m *MockHotelUsecase) ListHotels(ctx context.Context, caller *entity.User, opts *domaincontract.HotelFilterOptions) ([]*entity.Hotel, int64, error) {
	m.LastListOptions = opts
	if err := m.check(m.ShouldFailList, apperr.New(apperr.KindUnexpected, "list hotels failed")); err != nil {
		return nil, 0, err
	}
	hotels := m.MockHotels
	if hotels == nil {
		hotels = []*entity.Hotel{&m.MockHotel}
	}
	return hotels, m.MockTotal, nil
}

func (m *MockHotelUsecase) UpdateHotel(ctx context.Context, caller *entity.User, hotelID string, input *usecasecontract.HotelInput) (*entity.Hotel, error) {
	if m.ShouldRejectInvalid {
		return nil, apperr.Validation("hotel name is required")
	}
	if err := m.check(m.ShouldFailUpdate, apperr.NotFound("hotel not found")); err != nil {
		return nil, err
	}
	return &m.MockHotel, nil
}

func (m *MockHotelUsecase) DeleteHotel(ctx context.Context, caller *entity.User, hotelID string) error {
	return m.check(m.ShouldFailDelete, apperr.NotFound("hotel not found"))
}

func (m *MockHotelUsecase) SubmitForAudit(ctx context.Context, caller *entity.User, hotelID string) (*entity.Hotel, error) {
	if err := m.check(m.ShouldFailSubmit, apperr.InvalidState("hotel cannot be submitted in its current status")); err != nil {
		return nil, err
	}
	hotel := m.MockHotel
	hotel.Status = entity.HotelStatusPending
	return &hotel, nil
}

func (m *MockHotelUsecase) AuditHotel(ctx context.Context, caller *entity.User, hotelID string, passed bool, reason string) (*entity.Hotel, error) {
	m.LastAuditPassed = passed
	m.LastAuditReason = reason
	if err := m.check(m.ShouldFailAudit, apperr.InvalidState("hotel is not pending audit")); err != nil {
		return nil, err
	}
	hotel := m.MockHotel
	if passed {
		hotel.Status = entity.HotelStatusOnline
		hotel.AuditStatus = entity.AuditStatusPassed
	} else {
		hotel.Status = entity.HotelStatusOffline
		hotel.AuditStatus = entity.AuditStatusRejected
		hotel.AuditReason = reason
	}
	return &hotel, nil
}

func (m *MockHotelUsecase) ToggleOnline(ctx context.Context, caller *entity.User, hotelID string) (*entity.Hotel, error) {
	if err := m.check(m.ShouldFailToggle, apperr.InvalidState("hotel cannot be toggled in its current status")); err != nil {
		return nil, err
	}
	hotel := m.MockHotel
	hotel.Status = entity.HotelStatusOnline
	return &hotel, nil
}

func (m *MockHotelUsecase) GetStats(ctx context.Context, caller *entity.User) (*domaincontract.HotelStats, error) {
	if err := m.check(m.ShouldFailGetStats, apperr.New(apperr.KindUnexpected, "stats failed")); err != nil {
		return nil, err
	}
	stats := m.MockStats
	return &stats, nil
}
