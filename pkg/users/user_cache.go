package users

import (
	"context"
	"errors"
)

// ErrCacheMiss is returned by a cache that holds no entry for a key
var ErrCacheMiss = errors.New("user cache miss")

// UserCacheInterface caches identities read on every profile request
type UserCacheInterface interface {
	Add(ctx context.Context, user *User) error
	Invalidate(ctx context.Context, id string) error
	Get(ctx context.Context, id string) (*User, error)
}

func cacheKey(id string) string {
	return "user:" + id
}

// CachedFinder reads users through a cache, falling back to the repository on a miss
type CachedFinder struct {
	Repository UserRepositoryInterface
	Cache      UserCacheInterface
}

// FindByID returns the cached user or loads and caches it
func (f *CachedFinder) FindByID(ctx context.Context, id string) (*User, error) {
	if f.Cache != nil {
		user, err := f.Cache.Get(ctx, id)
		if err == nil {
			return user, nil
		}
	}

	user, err := f.Repository.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if f.Cache != nil {
		// a failed cache write only costs the next read a lookup
		_ = f.Cache.Add(ctx, user)
	}

	return user, nil
}

// Invalidate drops a cached user after it was written
func (f *CachedFinder) Invalidate(ctx context.Context, id string) error {
	if f.Cache == nil {
		return nil
	}
	return f.Cache.Invalidate(ctx, id)
}
