package contract

import (
	"context"
)

// IHotelCache defines caching operations for hotel statistics. The scope key
// is "all" for admin-wide stats or a creator ID for merchant-scoped stats.
type IHotelCache interface {
	GetStats(ctx context.Context, scope string) (*HotelStats, bool, error)
	SetStats(ctx context.Context, scope string, stats *HotelStats) error
	// InvalidateStats drops cached stats for the given creator scope and for
	// the admin-wide scope, called after every hotel write.
	InvalidateStats(ctx context.Context, creatorID string) error
}
