package cache

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"
	"truck-loading-service/internal/domain"
	"truck-loading-service/internal/platform/obs"
	"truck-loading-service/internal/ports"

	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog/log"
)

const defaultCoordinateKey = "truckload:city_coordinates"

// RedisCoordinateCache is a read-through cache in front of another
// CoordinateSource. Entries live in a single Redis hash keyed by city name.
//
// Cache write failures are logged and ignored; the backing source stays
// authoritative.
type RedisCoordinateCache struct {
	Client *redis.Client
	Next   ports.CoordinateSource
	Key    string
	TTL    time.Duration
}

func NewRedisCoordinateCache(client *redis.Client, next ports.CoordinateSource, ttl time.Duration) *RedisCoordinateCache {
	return &RedisCoordinateCache{Client: client, Next: next, Key: defaultCoordinateKey, TTL: ttl}
}

// NewRedisClient builds a client from a redis:// URL.
func NewRedisClient(url string) (*redis.Client, error) {
	opt, err := redis.ParseURL(url)
	if err != nil {
		return nil, fmt.Errorf("redis: parse url: %w", err)
	}
	return redis.NewClient(opt), nil
}

func (c *RedisCoordinateCache) GetMany(
	ctx context.Context,
	cities []string,
) (_ map[string]domain.Coordinates, err error) {
	defer obs.Time(ctx, "coordinates.redis.GetMany")(&err)

	if c.Client == nil || c.Next == nil {
		return nil, errors.New("redis coordinate cache: client and next source are required")
	}

	uniq := uniqueNames(cities)
	if len(uniq) == 0 {
		return map[string]domain.Coordinates{}, nil
	}

	hits := make(map[string]domain.Coordinates, len(uniq))
	vals, err := c.Client.HMGet(ctx, c.Key, uniq...).Result()
	if err != nil {
		// Treat an unavailable cache as a full miss.
		log.Warn().Err(err).Str("key", c.Key).Msg("coordinate cache read failed")
		vals = make([]any, len(uniq))
	}

	misses := make([]string, 0, len(uniq))
	for i, city := range uniq {
		raw, ok := vals[i].(string)
		if !ok {
			misses = append(misses, city)
			continue
		}
		var xy []float64
		if err := json.Unmarshal([]byte(raw), &xy); err != nil || len(xy) != 2 {
			misses = append(misses, city)
			continue
		}
		hits[city] = domain.Coordinates{X: xy[0], Y: xy[1]}
	}

	if len(misses) == 0 {
		return hits, nil
	}

	fresh, err := c.Next.GetMany(ctx, misses)
	if err != nil {
		return nil, fmt.Errorf("redis coordinate cache: load misses: %w", err)
	}

	if len(fresh) > 0 {
		if err := c.put(ctx, fresh); err != nil {
			log.Warn().Err(err).Str("key", c.Key).Msg("coordinate cache write failed")
		}
	}

	for k, v := range fresh {
		hits[k] = v
	}
	return hits, nil
}

func (c *RedisCoordinateCache) put(ctx context.Context, coords map[string]domain.Coordinates) error {
	fields := make(map[string]any, len(coords))
	for city, xy := range coords {
		b, err := json.Marshal(xy.CoordsToList())
		if err != nil {
			return fmt.Errorf("encode %q: %w", city, err)
		}
		fields[city] = string(b)
	}

	pipe := c.Client.TxPipeline()
	pipe.HSet(ctx, c.Key, fields)
	if c.TTL > 0 {
		pipe.Expire(ctx, c.Key, c.TTL)
	}
	if _, err := pipe.Exec(ctx); err != nil {
		return fmt.Errorf("store coordinates: %w", err)
	}
	return nil
}
