package cache

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

// ErrCacheMiss is returned when a key does not exist
var ErrCacheMiss = errors.New("cache miss")

// Cache TTLs
const (
	TTLUpcoming = 30 * time.Second // upcoming-schedule dashboard projection
	TTLSession  = 30 * time.Minute
	TTLDefault  = 5 * time.Minute
)

// Cache key prefixes
const (
	PrefixUpcoming = "upcoming:"
	PrefixSession  = "session:"
)

// Service is a Redis-backed JSON cache
type Service interface {
	Get(ctx context.Context, key string, dest interface{}) error
	Set(ctx context.Context, key string, value interface{}, ttl time.Duration) error
	Delete(ctx context.Context, keys ...string) error
	Exists(ctx context.Context, key string) (bool, error)

	// Upcoming-schedule projection cache, keyed by organization
	GetUpcoming(ctx context.Context, orgID uint64, limit int, dest interface{}) error
	SetUpcoming(ctx context.Context, orgID uint64, limit int, data interface{}) error
	InvalidateUpcoming(ctx context.Context, orgID uint64) error
}

type service struct {
	client *redis.Client
}

// NewService creates a Redis cache service
func NewService(client *redis.Client) Service {
	return &service{client: client}
}

func (s *service) Get(ctx context.Context, key string, dest interface{}) error {
	data, err := s.client.Get(ctx, key).Bytes()
	if errors.Is(err, redis.Nil) {
		return ErrCacheMiss
	}
	if err != nil {
		return err
	}
	return json.Unmarshal(data, dest)
}

func (s *service) Set(ctx context.Context, key string, value interface{}, ttl time.Duration) error {
	data, err := json.Marshal(value)
	if err != nil {
		return err
	}
	return s.client.Set(ctx, key, data, ttl).Err()
}

func (s *service) Delete(ctx context.Context, keys ...string) error {
	if len(keys) == 0 {
		return nil
	}
	return s.client.Del(ctx, keys...).Err()
}

func (s *service) Exists(ctx context.Context, key string) (bool, error) {
	n, err := s.client.Exists(ctx, key).Result()
	return n > 0, err
}

func upcomingKey(orgID uint64, limit int) string {
	return fmt.Sprintf("%s%d:%d", PrefixUpcoming, orgID, limit)
}

func (s *service) GetUpcoming(ctx context.Context, orgID uint64, limit int, dest interface{}) error {
	return s.Get(ctx, upcomingKey(orgID, limit), dest)
}

func (s *service) SetUpcoming(ctx context.Context, orgID uint64, limit int, data interface{}) error {
	return s.Set(ctx, upcomingKey(orgID, limit), data, TTLUpcoming)
}

// InvalidateUpcoming drops every cached limit variant for the organization
func (s *service) InvalidateUpcoming(ctx context.Context, orgID uint64) error {
	pattern := fmt.Sprintf("%s%d:*", PrefixUpcoming, orgID)
	iter := s.client.Scan(ctx, 0, pattern, 100).Iterator()
	var keys []string
	for iter.Next(ctx) {
		keys = append(keys, iter.Val())
	}
	if err := iter.Err(); err != nil {
		return err
	}
	return s.Delete(ctx, keys...)
}
