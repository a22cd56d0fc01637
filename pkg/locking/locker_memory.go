package locking

import (
	"context"
	"sync"
	"time"
)

// LockerMemory is a type of LockerInterface for a single process
type LockerMemory struct {
	pool  sync.Pool
	locks sync.Map
}

// NewLockerMemory builds a new LockerMemory instance
func NewLockerMemory() *LockerMemory {
	locker := LockerMemory{}
	locker.pool = sync.Pool{
		New: func() interface{} {
			return make(chan struct{}, 1)
		},
	}

	return &locker
}

// Acquire blocks until key is free or ctx is done. The ttl is not enforced in memory.
func (l *LockerMemory) Acquire(ctx context.Context, key string, _ time.Duration) (LockInterface, error) {
	lock := l.getLock(key)

	select {
	case lock <- struct{}{}:
	case <-ctx.Done():
		return nil, ctx.Err()
	}

	var once sync.Once
	return &LockMemory{
		key: key,
		release: func() {
			once.Do(func() { <-lock })
		},
	}, nil
}

func (l *LockerMemory) getLock(key string) chan struct{} {
	newLock := l.pool.Get()
	lock, loaded := l.locks.LoadOrStore(key, newLock)
	if loaded {
		l.pool.Put(newLock)
	}
	return lock.(chan struct{})
}

// LockMemory is a memory implementation of a LockInterface
type LockMemory struct {
	key     string
	release func()
}

// Key returns a key
func (l *LockMemory) Key() string {
	return l.key
}

// Release releases a LockMemory
func (l *LockMemory) Release(_ context.Context) error {
	l.release()
	return nil
}
