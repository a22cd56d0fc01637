package locking

import (
	"context"
	"time"
)

// LockerInterface represents a Locker
type LockerInterface interface {
	Acquire(ctx context.Context, key string, ttl time.Duration) (LockInterface, error)
}

// LockInterface represents a Lock
type LockInterface interface {
	Key() string
	Release(ctx context.Context) error
}

// StaffKey is the lock key serializing all mutations of one employee's staff record
func StaffKey(userID string) string {
	return "staff:" + userID
}
