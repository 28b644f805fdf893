package source

import (
	"context"
	"errors"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/vnykmshr/seqflow/pkg/common/validation"
)

// RedisListConfig holds configuration for a Redis list source.
type RedisListConfig struct {
	// Client is the Redis client used to read the list.
	Client redis.UniversalClient

	// Key is the Redis key holding the list.
	Key string

	// Block enables blocking reads: instead of reporting end-of-input when
	// the list is empty, Next waits up to BlockTimeout for a value.
	Block bool

	// BlockTimeout bounds each blocking read. Zero means wait indefinitely.
	BlockTimeout time.Duration

	// DeleteOnClose removes the key when the source is closed.
	DeleteOnClose bool
}

// Validate checks the configuration for missing required fields.
func (c RedisListConfig) Validate() error {
	if err := validation.ValidateNotNil("source", "client", c.Client); err != nil {
		return err
	}
	if err := validation.ValidateNotEmpty("source", "key", c.Key); err != nil {
		return err
	}
	return validation.ValidateNonNegative("source", "block_timeout", int64(c.BlockTimeout))
}

// redisListSource implements Source by popping values from a Redis list.
type redisListSource struct {
	config RedisListConfig
}

// RedisList creates a Source that consumes string values from the head of a
// Redis list with LPOP. An empty list reports end-of-input unless blocking
// reads are configured.
func RedisList(client redis.UniversalClient, key string) (Source[string], error) {
	return RedisListWithConfig(RedisListConfig{Client: client, Key: key})
}

// RedisListWithConfig creates a Redis list Source with custom configuration.
func RedisListWithConfig(config RedisListConfig) (Source[string], error) {
	if err := config.Validate(); err != nil {
		return nil, err
	}
	return &redisListSource{config: config}, nil
}

func (s *redisListSource) Next(ctx context.Context) (string, bool, error) {
	if s.config.Block {
		res, err := s.config.Client.BLPop(ctx, s.config.BlockTimeout, s.config.Key).Result()
		if err != nil {
			if errors.Is(err, redis.Nil) {
				return "", false, nil
			}
			return "", false, err
		}
		// BLPOP returns [key, value].
		if len(res) < 2 {
			return "", false, nil
		}
		return res[1], true, nil
	}

	value, err := s.config.Client.LPop(ctx, s.config.Key).Result()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return "", false, nil
		}
		return "", false, err
	}
	return value, true, nil
}

func (s *redisListSource) Close() error {
	if s.config.DeleteOnClose {
		return s.config.Client.Del(context.Background(), s.config.Key).Err()
	}
	return nil
}
