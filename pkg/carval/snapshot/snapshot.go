// Package snapshot keeps an audit trail of valuations in Redis. Each stored
// valuation is addressable by a random id until its TTL runs out.
package snapshot

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"

	"github.com/nekruzvatanshoev/carval/pkg/carval/config"
	"github.com/nekruzvatanshoev/carval/pkg/carval/dal"
)

// ErrNotFound is returned for unknown, malformed or expired ids.
var ErrNotFound = errors.New("snapshot not found")

// Snapshot is a stored valuation together with its input.
type Snapshot struct {
	ID        string              `json:"id"`
	CreatedAt time.Time           `json:"createdAt"`
	Vehicle   dal.Vehicle         `json:"vehicle"`
	Result    dal.ValuationResult `json:"result"`
}

// Store saves and loads snapshots.
type Store struct {
	rdb    redis.UniversalClient
	ttl    time.Duration
	prefix string
	now    func() time.Time
	logger *zap.Logger
}

// Option configures a Store.
type Option func(*Store)

// WithTTL sets how long snapshots live. Zero keeps them forever.
func WithTTL(ttl time.Duration) Option {
	return func(s *Store) { s.ttl = ttl }
}

// WithPrefix sets the key prefix.
func WithPrefix(prefix string) Option {
	return func(s *Store) { s.prefix = prefix }
}

// WithLogger sets the logger.
func WithLogger(l *zap.Logger) Option {
	return func(s *Store) {
		if l != nil {
			s.logger = l
		}
	}
}

// WithClock overrides the creation timestamp source.
func WithClock(now func() time.Time) Option {
	return func(s *Store) { s.now = now }
}

// New wraps an existing client.
func New(rdb redis.UniversalClient, opts ...Option) *Store {
	s := &Store{
		rdb:    rdb,
		ttl:    config.DefaultRedisTTL,
		prefix: config.DefaultRedisKeyPrefix,
		now:    func() time.Time { return time.Now().UTC() },
		logger: zap.NewNop(),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Dial connects to the configured Redis and checks it answers.
func Dial(ctx context.Context, cfg config.RedisConfig, logger *zap.Logger) (*Store, error) {
	rdb := redis.NewClient(&redis.Options{
		Addr:     cfg.Addr,
		Password: cfg.Password,
		DB:       cfg.DB,
	})
	s := New(rdb, WithTTL(cfg.TTL), WithPrefix(cfg.KeyPrefix), WithLogger(logger))
	if err := s.Ping(ctx); err != nil {
		_ = rdb.Close()
		return nil, err
	}
	return s, nil
}

func (s *Store) key(id string) string { return s.prefix + id }

// Save stores a valuation and returns the snapshot with its new id.
func (s *Store) Save(ctx context.Context, v dal.Vehicle, res dal.ValuationResult) (Snapshot, error) {
	snap := Snapshot{
		ID:        uuid.NewString(),
		CreatedAt: s.now(),
		Vehicle:   v,
		Result:    res,
	}
	data, err := json.Marshal(snap)
	if err != nil {
		return Snapshot{}, fmt.Errorf("snapshot: marshal: %w", err)
	}
	if err := s.rdb.Set(ctx, s.key(snap.ID), data, s.ttl).Err(); err != nil {
		return Snapshot{}, fmt.Errorf("snapshot: save %s: %w", snap.ID, err)
	}
	s.logger.Debug("valuation snapshot saved", zap.String("id", snap.ID), zap.Duration("ttl", s.ttl))
	return snap, nil
}

// Get loads the snapshot stored under id.
func (s *Store) Get(ctx context.Context, id string) (Snapshot, error) {
	if _, err := uuid.Parse(id); err != nil {
		return Snapshot{}, fmt.Errorf("%w: %q", ErrNotFound, id)
	}
	data, err := s.rdb.Get(ctx, s.key(id)).Bytes()
	if errors.Is(err, redis.Nil) {
		return Snapshot{}, fmt.Errorf("%w: %s", ErrNotFound, id)
	}
	if err != nil {
		return Snapshot{}, fmt.Errorf("snapshot: get %s: %w", id, err)
	}
	var snap Snapshot
	if err := json.Unmarshal(data, &snap); err != nil {
		return Snapshot{}, fmt.Errorf("snapshot: decode %s: %w", id, err)
	}
	return snap, nil
}

// Ping checks the connection.
func (s *Store) Ping(ctx context.Context) error {
	if err := s.rdb.Ping(ctx).Err(); err != nil {
		return fmt.Errorf("snapshot: ping redis: %w", err)
	}
	return nil
}

// Close releases the client.
func (s *Store) Close() error {
	return s.rdb.Close()
}
