package redis

import (
	"context"
	"errors"
	"fmt"
	"time"

	goredis "github.com/redis/go-redis/v9"
)

// quotaTTL keeps spent buckets around for two days so a bucket created just
// before midnight UTC survives until nobody can reserve against it anymore.
const quotaTTL = 48 * time.Hour

// QuotaStore implements per-payer daily gasless spend tracking backed by
// Redis. Buckets are scoped by UTC calendar day, so the quota resets at
// midnight UTC rather than on a rolling window.
type QuotaStore struct {
	client *goredis.Client
	prefix string
}

// NewQuotaStore creates a new Redis-backed quota store.
func NewQuotaStore(client *goredis.Client) *QuotaStore {
	return &QuotaStore{
		client: client,
		prefix: "quota:",
	}
}

func (s *QuotaStore) key(payer, day string) string {
	return fmt.Sprintf("%s%s:%s", s.prefix, payer, day)
}

func (s *QuotaStore) today() string {
	return time.Now().UTC().Format("2006-01-02")
}

// Reserve commits amount against the payer's bucket for today and returns
// the bucket's day, which the caller hands back to Release. Returns false
// when the reservation would push spend past quota; the over-reservation is
// rolled back before returning so a rejected payment never consumes budget.
func (s *QuotaStore) Reserve(ctx context.Context, payer string, amount, quota int64) (bool, string, error) {
	day := s.today()
	redisKey := s.key(payer, day)

	spent, err := s.client.IncrBy(ctx, redisKey, amount).Result()
	if err != nil {
		return false, day, fmt.Errorf("redis quota incrby: %w", err)
	}

	// Set expiry only when this reservation created the bucket
	if spent == amount {
		s.client.Expire(ctx, redisKey, quotaTTL)
	}

	if spent > quota {
		if err := s.client.DecrBy(ctx, redisKey, amount).Err(); err != nil {
			return false, day, fmt.Errorf("redis quota rollback: %w", err)
		}
		return false, day, nil
	}
	return true, day, nil
}

// Release returns a previously reserved amount to the bucket it was reserved
// from, called when settlement fails after the reservation succeeded. The day
// comes from Reserve so a failure straddling midnight UTC does not decrement
// the new day's bucket.
func (s *QuotaStore) Release(ctx context.Context, payer, day string, amount int64) error {
	if err := s.client.DecrBy(ctx, s.key(payer, day), amount).Err(); err != nil {
		return fmt.Errorf("redis quota release: %w", err)
	}
	return nil
}

// SpentToday returns the payer's reserved spend in today's bucket.
func (s *QuotaStore) SpentToday(ctx context.Context, payer string) (int64, error) {
	spent, err := s.client.Get(ctx, s.key(payer, s.today())).Int64()
	if err != nil {
		if errors.Is(err, goredis.Nil) {
			return 0, nil
		}
		return 0, fmt.Errorf("redis quota get: %w", err)
	}
	return spent, nil
}
