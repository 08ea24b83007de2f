package storage

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/redis/go-redis/v9"

	"meetscribe/internal/meeting"
)

// keyPrefix namespaces Job Record keys in a shared Redis instance.
const keyPrefix = "meetscribe:job:"

// RedisStore backs the Job Record store with Redis. Records are stored as
// JSON values with the retention window as native key TTL, refreshed on
// every write.
type RedisStore struct {
	client *redis.Client
}

// NewRedisStore connects to the given Redis address and verifies it is
// reachable.
func NewRedisStore(ctx context.Context, addr, password string, db int) (*RedisStore, error) {
	client := redis.NewClient(&redis.Options{
		Addr:     addr,
		Password: password,
		DB:       db,
	})
	if err := client.Ping(ctx).Err(); err != nil {
		client.Close()
		return nil, fmt.Errorf("pinging redis at %s: %w", addr, err)
	}
	return &RedisStore{client: client}, nil
}

func (s *RedisStore) Get(ctx context.Context, id string) (meeting.Job, error) {
	data, err := s.client.Get(ctx, keyPrefix+id).Bytes()
	if errors.Is(err, redis.Nil) {
		return meeting.Job{}, ErrNotFound
	}
	if err != nil {
		return meeting.Job{}, fmt.Errorf("reading job %s: %w", id, err)
	}
	var job meeting.Job
	if err := json.Unmarshal(data, &job); err != nil {
		return meeting.Job{}, fmt.Errorf("decoding job %s: %w", id, err)
	}
	return job, nil
}

func (s *RedisStore) Set(ctx context.Context, job meeting.Job) error {
	data, err := json.Marshal(job)
	if err != nil {
		return fmt.Errorf("encoding job %s: %w", job.ID, err)
	}
	if err := s.client.Set(ctx, keyPrefix+job.ID, data, RetentionTTL).Err(); err != nil {
		return fmt.Errorf("writing job %s: %w", job.ID, err)
	}
	return nil
}

func (s *RedisStore) Close() error {
	return s.client.Close()
}
