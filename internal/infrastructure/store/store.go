package store

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/danielmek/hotelhub/internal/domain/contract"
	"github.com/danielmek/hotelhub/internal/infrastructure/metrics"
)

const cacheName = "hotel_stats"

// HotelCacheStore is the redis-backed implementation of the hotel stats
// cache.
type HotelCacheStore struct {
	rdb      *redis.Client
	statsTTL time.Duration
}

func NewHotelCacheStore(rdb *redis.Client) *HotelCacheStore {
	return &HotelCacheStore{
		rdb:      rdb,
		statsTTL: 5 * time.Minute,
	}
}

var _ contract.IHotelCache = (*HotelCacheStore)(nil)

func statsKey(scope string) string { return fmt.Sprintf("hotel:stats:%s", scope) }

func (c *HotelCacheStore) GetStats(ctx context.Context, scope string) (*contract.HotelStats, bool, error) {
	b, err := c.rdb.Get(ctx, statsKey(scope)).Bytes()
	if err != nil {
		if err == redis.Nil {
			metrics.CacheEvents.WithLabelValues(cacheName, "miss").Inc()
			return nil, false, nil
		}
		return nil, false, err
	}
	var stats contract.HotelStats
	if err := json.Unmarshal(b, &stats); err != nil {
		return nil, false, nil
	}
	metrics.CacheEvents.WithLabelValues(cacheName, "hit").Inc()
	return &stats, true, nil
}

func (c *HotelCacheStore) SetStats(ctx context.Context, scope string, stats *contract.HotelStats) error {
	data, err := json.Marshal(stats)
	if err != nil {
		return err
	}
	metrics.CacheEvents.WithLabelValues(cacheName, "set").Inc()
	return c.rdb.Set(ctx, statsKey(scope), data, c.statsTTL).Err()
}

// InvalidateStats drops both the creator-scoped and the admin-wide entries;
// any hotel write changes both views.
func (c *HotelCacheStore) InvalidateStats(ctx context.Context, creatorID string) error {
	metrics.CacheEvents.WithLabelValues(cacheName, "del").Inc()
	return c.rdb.Del(ctx, statsKey(creatorID), statsKey("all")).Err()
}
