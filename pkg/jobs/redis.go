package jobs

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

// keyPrefix namespaces job keys in a shared Redis instance.
const keyPrefix = "flowboard:job:"

// RedisStore keeps job state in Redis so multiple API instances can
// serve status polls for jobs submitted elsewhere. Entries expire after
// the configured TTL.
type RedisStore struct {
	client *redis.Client
	ttl    time.Duration
}

// RedisConfig configures the Redis job store.
type RedisConfig struct {
	Addr     string
	Password string
	DB       int
	TTL      time.Duration // defaults to DefaultTTL
}

// NewRedisStore connects to Redis and verifies the connection.
func NewRedisStore(ctx context.Context, cfg RedisConfig) (*RedisStore, error) {
	if cfg.TTL == 0 {
		cfg.TTL = DefaultTTL
	}
	client := redis.NewClient(&redis.Options{
		Addr:     cfg.Addr,
		Password: cfg.Password,
		DB:       cfg.DB,
	})
	if err := client.Ping(ctx).Err(); err != nil {
		return nil, fmt.Errorf("ping redis: %w", err)
	}
	return &RedisStore{client: client, ttl: cfg.TTL}, nil
}

// Create stores a new job.
func (s *RedisStore) Create(ctx context.Context, job *Job) error {
	return s.set(ctx, job)
}

// Get retrieves a job by ID.
func (s *RedisStore) Get(ctx context.Context, id string) (*Job, error) {
	data, err := s.client.Get(ctx, keyPrefix+id).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("get job %s: %w", id, err)
	}
	var job Job
	if err := json.Unmarshal(data, &job); err != nil {
		return nil, fmt.Errorf("decode job %s: %w", id, err)
	}
	return &job, nil
}

// Update overwrites a job's state.
func (s *RedisStore) Update(ctx context.Context, job *Job) error {
	return s.set(ctx, job)
}

// Close closes the Redis client.
func (s *RedisStore) Close() error {
	return s.client.Close()
}

func (s *RedisStore) set(ctx context.Context, job *Job) error {
	data, err := json.Marshal(job)
	if err != nil {
		return fmt.Errorf("encode job %s: %w", job.ID, err)
	}
	if err := s.client.Set(ctx, keyPrefix+job.ID, data, s.ttl).Err(); err != nil {
		return fmt.Errorf("store job %s: %w", job.ID, err)
	}
	return nil
}

// Ensure RedisStore implements Store.
var _ Store = (*RedisStore)(nil)
