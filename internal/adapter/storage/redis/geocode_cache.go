package redis

import (
	"context"
	"encoding/json"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/myrp-alexandre/ubsvoce/internal/core/domain"
)

// GeocodeCache keeps resolved addresses in redis so repeated searches for
// the same address skip the geocoding provider.
type GeocodeCache struct {
	client *redis.Client
	ttl    time.Duration
}

func NewGeocodeCache(client *redis.Client, ttl time.Duration) *GeocodeCache {
	return &GeocodeCache{client: client, ttl: ttl}
}

func (c *GeocodeCache) Get(ctx context.Context, address string) (domain.Point, bool, error) {
	val, err := c.client.Get(ctx, cacheKey(address)).Bytes()
	if err == redis.Nil {
		return domain.Point{}, false, nil
	}
	if err != nil {
		return domain.Point{}, false, err
	}

	var location domain.Point
	if err := json.Unmarshal(val, &location); err != nil {
		return domain.Point{}, false, err
	}
	return location, true, nil
}

func (c *GeocodeCache) Set(ctx context.Context, address string, location domain.Point) error {
	val, err := json.Marshal(location)
	if err != nil {
		return err
	}
	return c.client.Set(ctx, cacheKey(address), val, c.ttl).Err()
}

func cacheKey(address string) string {
	return "geocode:" + address
}
