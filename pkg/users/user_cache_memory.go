package users

import (
	"context"
	"fmt"

	lru "github.com/hashicorp/golang-lru"
)

// UserCacheMemory caches users in process
type UserCacheMemory struct {
	Cache *lru.Cache
}

// NewUserCacheMemory initializes a UserCacheMemory holding up to size users
func NewUserCacheMemory(size int) (*UserCacheMemory, error) {
	cache, err := lru.New(size)
	if err != nil {
		return nil, err
	}

	return &UserCacheMemory{
		Cache: cache,
	}, nil
}

// Add stores a copy of user
func (c *UserCacheMemory) Add(_ context.Context, user *User) error {
	copied := *user
	_ = c.Cache.Add(cacheKey(user.ID.Hex()), &copied)
	return nil
}

// Invalidate removes a user from the cache
func (c *UserCacheMemory) Invalidate(_ context.Context, id string) error {
	c.Cache.Remove(cacheKey(id))
	return nil
}

// Get retrieves a copy of a cached user
func (c *UserCacheMemory) Get(_ context.Context, id string) (*User, error) {
	result, ok := c.Cache.Get(cacheKey(id))
	if !ok {
		return nil, ErrCacheMiss
	}

	user, ok := result.(*User)
	if !ok {
		return nil, fmt.Errorf("cache entry was not a user")
	}

	copied := *user
	return &copied, nil
}
