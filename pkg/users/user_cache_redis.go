package users

import (
	"context"
	"time"

	"github.com/go-redis/cache/v8"
	"github.com/go-redis/redis/v8"
)

// UserCacheRedis caches users in redis so all instances share invalidations
type UserCacheRedis struct {
	Cache *cache.Cache
	TTL   time.Duration
}

// NewUserCacheRedis initializes a new UserCacheRedis
func NewUserCacheRedis(redisClient *redis.Client) *UserCacheRedis {
	redisCache := cache.New(&cache.Options{
		Redis: redisClient,
	})

	return &UserCacheRedis{
		Cache: redisCache,
		TTL:   time.Minute * 10,
	}
}

// Add adds a user
func (c *UserCacheRedis) Add(ctx context.Context, user *User) error {
	return c.Cache.Set(&cache.Item{
		Ctx:   ctx,
		Key:   cacheKey(user.ID.Hex()),
		Value: user,
		TTL:   c.TTL,
	})
}

// Invalidate invalidates an entry
func (c *UserCacheRedis) Invalidate(ctx context.Context, id string) error {
	err := c.Cache.Delete(ctx, cacheKey(id))
	if err == cache.ErrCacheMiss {
		return nil
	}
	return err
}

// Get retrieves a user
func (c *UserCacheRedis) Get(ctx context.Context, id string) (*User, error) {
	result := User{}
	err := c.Cache.Get(ctx, cacheKey(id), &result)
	if err == cache.ErrCacheMiss {
		return nil, ErrCacheMiss
	}
	if err != nil {
		return nil, err
	}

	return &result, nil
}
