package combatlog

import (
	"context"
	"encoding/json"
	"time"

	"github.com/KirkDiggler/rpg-arena/internal/errors"
	redisclient "github.com/KirkDiggler/rpg-arena/internal/redis"
)

// Key pattern: combat_log:{character_id}
const logKeyPrefix = "combat_log:"

// RedisConfig holds the configuration for the Redis repository
type RedisConfig struct {
	Client redisclient.Client
	// TTL expires a log after it stops receiving entries; zero keeps it forever
	TTL time.Duration
	// Limit is the number of entries kept per character
	Limit int
}

// Validate ensures all required dependencies are provided
func (c *RedisConfig) Validate() error {
	if c == nil {
		return errors.InvalidArgument("config cannot be nil")
	}
	if c.Client == nil {
		return errors.InvalidArgument("redis client is required")
	}
	if c.TTL < 0 {
		return errors.InvalidArgument("ttl cannot be negative")
	}
	if c.Limit < 0 {
		return errors.InvalidArgument("limit cannot be negative")
	}
	return nil
}

type redisRepository struct {
	client redisclient.Client
	ttl    time.Duration
	limit  int
}

// Ensure redisRepository implements Repository
var _ Repository = (*redisRepository)(nil)

// NewRedis creates a combat log kept in Redis lists, newest entry at the
// head.
func NewRedis(cfg *RedisConfig) (Repository, error) {
	if err := cfg.Validate(); err != nil {
		return nil, errors.Wrap(err, "invalid config")
	}

	limit := cfg.Limit
	if limit == 0 {
		limit = DefaultLimit
	}

	return &redisRepository{
		client: cfg.Client,
		ttl:    cfg.TTL,
		limit:  limit,
	}, nil
}

func (r *redisRepository) buildKey(characterID string) string {
	return logKeyPrefix + characterID
}

func (r *redisRepository) Append(ctx context.Context, input AppendInput) (*AppendOutput, error) {
	if err := validateEntries(input.Entries); err != nil {
		return nil, err
	}
	if len(input.Entries) == 0 {
		return &AppendOutput{}, nil
	}

	touched := make(map[string]struct{})
	pipe := r.client.TxPipeline()
	for _, entry := range input.Entries {
		data, err := json.Marshal(entry)
		if err != nil {
			return nil, errors.Wrapf(err, "failed to marshal entry %s", entry.ID)
		}
		key := r.buildKey(entry.CharacterID)
		pipe.LPush(ctx, key, data)
		touched[key] = struct{}{}
	}
	for key := range touched {
		pipe.LTrim(ctx, key, 0, int64(r.limit-1))
		if r.ttl > 0 {
			pipe.Expire(ctx, key, r.ttl)
		}
	}

	if _, err := pipe.Exec(ctx); err != nil {
		return nil, errors.Wrapf(err, "failed to append combat log entries")
	}

	return &AppendOutput{Appended: len(input.Entries)}, nil
}

func (r *redisRepository) List(ctx context.Context, input ListInput) (*ListOutput, error) {
	if input.CharacterID == "" {
		return nil, errors.InvalidArgument(errCharacterIDEmpty)
	}

	limit := listLimit(input.Limit, r.limit)
	raw, err := r.client.LRange(ctx, r.buildKey(input.CharacterID), 0, int64(limit-1)).Result()
	if err != nil {
		return nil, errors.Wrapf(err, "failed to read combat log")
	}

	entries := make([]*Entry, 0, len(raw))
	for _, item := range raw {
		var entry Entry
		if err := json.Unmarshal([]byte(item), &entry); err != nil {
			return nil, errors.Wrapf(err, "failed to unmarshal combat log entry")
		}
		entries = append(entries, &entry)
	}

	return &ListOutput{Entries: entries}, nil
}

func (r *redisRepository) Clear(ctx context.Context, input ClearInput) (*ClearOutput, error) {
	if input.CharacterID == "" {
		return nil, errors.InvalidArgument(errCharacterIDEmpty)
	}

	if err := r.client.Del(ctx, r.buildKey(input.CharacterID)).Err(); err != nil {
		return nil, errors.Wrapf(err, "failed to clear combat log")
	}

	return &ClearOutput{}, nil
}
