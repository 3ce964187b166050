package redis

import (
	"context"
	"fmt"
	"time"

	"multichain-custody/internal/core/domain"

	"github.com/google/uuid"
	goredis "github.com/redis/go-redis/v9"
)

// ReconcileLock implements ports.ReconcileLock using Redis SET NX.
// One lease exists per (account, network) pair so concurrent deposit
// checks for the same wallet cannot race each other across instances.
type ReconcileLock struct {
	client *goredis.Client
	prefix string
}

// NewReconcileLock creates a new Redis-backed reconcile lease.
func NewReconcileLock(client *goredis.Client) *ReconcileLock {
	return &ReconcileLock{
		client: client,
		prefix: "reconcile:",
	}
}

// Acquire atomically takes the lease if nobody holds it.
// Returns true if the lease was taken, false if another check holds it.
func (l *ReconcileLock) Acquire(ctx context.Context, accountID uuid.UUID, network domain.Network, ttl time.Duration) (bool, error) {
	key := l.prefix + accountID.String() + ":" + string(network)
	result, err := l.client.SetArgs(ctx, key, 1, goredis.SetArgs{
		Mode: "NX",
		TTL:  ttl,
	}).Result()
	if err != nil {
		if err == goredis.Nil {
			// Key already exists, another check is in flight
			return false, nil
		}
		return false, fmt.Errorf("redis reconcile lease: %w", err)
	}
	return result == "OK", nil
}

// Release drops the lease. The TTL bounds how long a crashed holder
// can block others, so a failed delete is not fatal.
func (l *ReconcileLock) Release(ctx context.Context, accountID uuid.UUID, network domain.Network) error {
	key := l.prefix + accountID.String() + ":" + string(network)
	if err := l.client.Del(ctx, key).Err(); err != nil {
		return fmt.Errorf("redis reconcile release: %w", err)
	}
	return nil
}
