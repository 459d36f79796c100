package battles

import (
	"context"
	"encoding/json"
	"time"

	"github.com/KirkDiggler/rpg-arena/internal/errors"
	redisclient "github.com/KirkDiggler/rpg-arena/internal/redis"
)

const (
	// Key pattern: battle_record:{id}
	recordKeyPrefix = "battle_record:"
	recentKey       = "battle_records:recent"
)

// RedisConfig holds the configuration for the Redis repository
type RedisConfig struct {
	Client redisclient.Client
	// TTL defaults to DefaultTTL
	TTL time.Duration
}

// Validate ensures all required dependencies are provided
func (c *RedisConfig) Validate() error {
	if c == nil {
		return errors.InvalidArgument("config is required")
	}

	vb := errors.NewValidationBuilder()
	if c.Client == nil {
		vb.RequiredField("Client")
	}
	if c.TTL < 0 {
		vb.Field("TTL", "must not be negative")
	}
	return vb.Build()
}

type redisRepository struct {
	client redisclient.Client
	ttl    time.Duration
}

// NewRedisRepository creates a Redis-backed record store
func NewRedisRepository(cfg *RedisConfig) (Repository, error) {
	if err := cfg.Validate(); err != nil {
		return nil, errors.Wrap(err, "invalid config")
	}

	ttl := cfg.TTL
	if ttl == 0 {
		ttl = DefaultTTL
	}

	return &redisRepository{
		client: cfg.Client,
		ttl:    ttl,
	}, nil
}

// Ensure redisRepository implements Repository
var _ Repository = (*redisRepository)(nil)

func (r *redisRepository) Save(ctx context.Context, input SaveInput) (*SaveOutput, error) {
	if input.Record == nil {
		return nil, errors.InvalidArgument(errRecordNil)
	}
	if input.Record.ID == "" {
		return nil, errors.InvalidArgument(errIDEmpty)
	}

	ttl := r.ttl
	if input.TTL > 0 {
		ttl = input.TTL
	}

	data, err := json.Marshal(input.Record)
	if err != nil {
		return nil, errors.Wrap(err, "failed to marshal record")
	}

	pipe := r.client.TxPipeline()
	pipe.Set(ctx, recordKey(input.Record.ID), data, ttl)
	pipe.LRem(ctx, recentKey, 0, input.Record.ID)
	pipe.LPush(ctx, recentKey, input.Record.ID)
	pipe.LTrim(ctx, recentKey, 0, maxRecent-1)
	if _, err := pipe.Exec(ctx); err != nil {
		return nil, errors.Wrap(err, "failed to store record in Redis")
	}

	return &SaveOutput{}, nil
}

func (r *redisRepository) Get(ctx context.Context, input GetInput) (*GetOutput, error) {
	if input.ID == "" {
		return nil, errors.InvalidArgument(errIDEmpty)
	}

	data, err := r.client.Get(ctx, recordKey(input.ID)).Bytes()
	if err != nil {
		if err == redisclient.Nil {
			return nil, errors.NotFoundf("battle record %s not found", input.ID)
		}
		return nil, errors.Wrap(err, "failed to get record from Redis")
	}

	var record Record
	if err := json.Unmarshal(data, &record); err != nil {
		return nil, errors.Wrap(err, "failed to unmarshal record")
	}

	return &GetOutput{Record: &record}, nil
}

func (r *redisRepository) ListRecent(ctx context.Context, input ListRecentInput) (*ListRecentOutput, error) {
	if input.Limit < 0 {
		return nil, errors.InvalidArgument(errBadLimit)
	}

	ids, err := r.client.LRange(ctx, recentKey, 0, int64(listLimit(input.Limit)-1)).Result()
	if err != nil {
		return nil, errors.Wrap(err, "failed to read recent records")
	}
	if len(ids) == 0 {
		return &ListRecentOutput{Records: []*Record{}}, nil
	}

	keys := make([]string, len(ids))
	for i, id := range ids {
		keys[i] = recordKey(id)
	}

	values, err := r.client.MGet(ctx, keys...).Result()
	if err != nil {
		return nil, errors.Wrap(err, "failed to load recent records")
	}

	records := make([]*Record, 0, len(values))
	for i, v := range values {
		// expired records stay in the index until trimmed
		raw, ok := v.(string)
		if !ok {
			continue
		}

		var record Record
		if err := json.Unmarshal([]byte(raw), &record); err != nil {
			return nil, errors.Wrapf(err, "failed to unmarshal record %s", ids[i])
		}
		records = append(records, &record)
	}

	return &ListRecentOutput{Records: records}, nil
}

func recordKey(id string) string {
	return recordKeyPrefix + id
}
