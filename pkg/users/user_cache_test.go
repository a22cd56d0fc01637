package users

import (
	"context"
	"testing"
)

func TestCachedFinder(t *testing.T) {
	ctx := context.Background()
	repository := &MockUserRepository{}
	user := &User{Name: "Nimal Perera", Email: "nimal@example.com", Phone: "0771111111"}
	if err := repository.Add(ctx, user); err != nil {
		t.Fatal(err)
	}

	cache, err := NewUserCacheMemory(10)
	if err != nil {
		t.Fatal(err)
	}
	finder := CachedFinder{Repository: repository, Cache: cache}

	found, err := finder.FindByID(ctx, user.ID.Hex())
	if err != nil {
		t.Fatal(err)
	}
	if found.Phone != "0771111111" {
		t.Errorf("phone = %q", found.Phone)
	}

	// a write behind the cache's back is hidden until invalidation
	user.Phone = "0772222222"
	if err := repository.UpdateContact(ctx, user); err != nil {
		t.Fatal(err)
	}

	found, _ = finder.FindByID(ctx, user.ID.Hex())
	if found.Phone != "0771111111" {
		t.Errorf("expected cached phone, got %q", found.Phone)
	}

	if err := finder.Invalidate(ctx, user.ID.Hex()); err != nil {
		t.Fatal(err)
	}

	found, _ = finder.FindByID(ctx, user.ID.Hex())
	if found.Phone != "0772222222" {
		t.Errorf("expected fresh phone, got %q", found.Phone)
	}
}

func TestCachedFinder_NotFound(t *testing.T) {
	finder := CachedFinder{Repository: &MockUserRepository{}}

	_, err := finder.FindByID(context.Background(), "5fa8158a47b7ff4422a5a407")
	if err != ErrUserNotFound {
		t.Errorf("err = %v, want ErrUserNotFound", err)
	}
}

func TestUserCacheMemory_ReturnsCopies(t *testing.T) {
	ctx := context.Background()
	cache, err := NewUserCacheMemory(1)
	if err != nil {
		t.Fatal(err)
	}

	user := &User{Name: "A"}
	_ = cache.Add(ctx, user)
	user.Name = "B"

	cached, err := cache.Get(ctx, user.ID.Hex())
	if err != nil {
		t.Fatal(err)
	}
	if cached.Name != "A" {
		t.Errorf("cache entry was mutated: %q", cached.Name)
	}

	_, err = cache.Get(ctx, "missing")
	if err != ErrCacheMiss {
		t.Errorf("err = %v, want ErrCacheMiss", err)
	}
}
