package locking

import (
	"context"
	"sync"
	"testing"
	"time"
)

func TestLockerMemory_SerializesSameKey(t *testing.T) {
	locker := NewLockerMemory()
	ctx := context.Background()

	counter := 0
	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			lock, err := locker.Acquire(ctx, StaffKey("user-1"), time.Minute)
			if err != nil {
				t.Error(err)
				return
			}
			current := counter
			time.Sleep(time.Microsecond)
			counter = current + 1
			_ = lock.Release(ctx)
		}()
	}
	wg.Wait()

	if counter != 50 {
		t.Errorf("counter = %d, increments were lost", counter)
	}
}

func TestLockerMemory_ContextCancel(t *testing.T) {
	locker := NewLockerMemory()

	lock, err := locker.Acquire(context.Background(), "key", time.Minute)
	if err != nil {
		t.Fatal(err)
	}
	defer lock.Release(context.Background())

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Millisecond)
	defer cancel()

	_, err = locker.Acquire(ctx, "key", time.Minute)
	if err == nil {
		t.Fatal("expected acquire to fail while the key is held")
	}

	other, err := locker.Acquire(context.Background(), "other", time.Minute)
	if err != nil {
		t.Fatalf("different key should not block: %v", err)
	}
	if other.Key() != "other" {
		t.Errorf("key = %q", other.Key())
	}
	_ = other.Release(context.Background())
}

func TestLockMemory_DoubleRelease(t *testing.T) {
	locker := NewLockerMemory()
	ctx := context.Background()

	lock, err := locker.Acquire(ctx, "key", time.Minute)
	if err != nil {
		t.Fatal(err)
	}
	_ = lock.Release(ctx)
	_ = lock.Release(ctx)

	again, err := locker.Acquire(ctx, "key", time.Minute)
	if err != nil {
		t.Fatal(err)
	}
	_ = again.Release(ctx)
}
