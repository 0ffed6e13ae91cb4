package store

import (
	"context"
	"encoding/json"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/peiwenliu/sharecircle/internal/domain/contract"
	"github.com/peiwenliu/sharecircle/internal/domain/entity"
)

type cachedLandmarks struct {
	Landmarks []entity.Landmark `json:"landmarks"`
	Total     int64             `json:"total"`
}

// LandmarkCacheStore caches landmark listings in Redis. The landmark list is
// unpaginated and read by every map view, which makes it the one listing
// worth caching; any write to landmarks invalidates the whole set.
type LandmarkCacheStore struct {
	rdb *redis.Client
	ttl time.Duration
}

var _ contract.ILandmarkCache = (*LandmarkCacheStore)(nil)

func NewLandmarkCacheStore(rdb *redis.Client, ttl time.Duration) *LandmarkCacheStore {
	return &LandmarkCacheStore{rdb: rdb, ttl: ttl}
}

func listKey(key string) string { return "landmarks:list:" + key }

func (c *LandmarkCacheStore) Get(ctx context.Context, key string) ([]entity.Landmark, int64, bool) {
	b, err := c.rdb.Get(ctx, listKey(key)).Bytes()
	if err != nil {
		return nil, 0, false
	}
	var page cachedLandmarks
	if err := json.Unmarshal(b, &page); err != nil {
		return nil, 0, false
	}
	return page.Landmarks, page.Total, true
}

func (c *LandmarkCacheStore) Set(ctx context.Context, key string, landmarks []entity.Landmark, total int64) {
	data, err := json.Marshal(cachedLandmarks{Landmarks: landmarks, Total: total})
	if err != nil {
		return
	}
	_ = c.rdb.Set(ctx, listKey(key), data, c.ttl).Err()
}

func (c *LandmarkCacheStore) Invalidate(ctx context.Context) {
	iter := c.rdb.Scan(ctx, 0, "landmarks:list:*", 1000).Iterator()
	pipe := c.rdb.Pipeline()
	n := 0
	for iter.Next(ctx) {
		pipe.Del(ctx, iter.Val())
		n++
		if n%200 == 0 {
			if _, err := pipe.Exec(ctx); err != nil {
				return
			}
		}
	}
	if err := iter.Err(); err != nil {
		return
	}
	_, _ = pipe.Exec(ctx)
}
