package character

import (
	"context"
	"encoding/json"
	"log/slog"

	redis "github.com/redis/go-redis/v9"

	"github.com/KirkDiggler/rpg-arena/internal/errors"
	"github.com/KirkDiggler/rpg-arena/internal/pkg/clock"
	redisclient "github.com/KirkDiggler/rpg-arena/internal/redis"
)

const (
	characterKeyPrefix = "character:"
	allIndexKey        = "character:index"
	playerIndexPrefix  = "character:player:"
)

type redisRepository struct {
	client redisclient.Client
	clock  clock.Clock
}

var _ Repository = (*redisRepository)(nil)

// RedisConfig contains configuration for the Redis character repository.
type RedisConfig struct {
	Client redisclient.Client
	Clock  clock.Clock
}

// Validate validates the RedisConfig.
func (cfg *RedisConfig) Validate() error {
	if cfg == nil {
		return errors.InvalidArgument("config cannot be nil")
	}
	if cfg.Client == nil {
		return errors.InvalidArgument("client cannot be nil")
	}
	return nil
}

// NewRedis creates a Redis-backed character repository. Records live as
// JSON under character:{id} and are indexed by creation time in sorted
// sets, globally and per player.
func NewRedis(cfg *RedisConfig) (Repository, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	c := cfg.Clock
	if c == nil {
		c = clock.New()
	}

	return &redisRepository{
		client: cfg.Client,
		clock:  c,
	}, nil
}

func characterKey(id string) string {
	return characterKeyPrefix + id
}

func playerIndexKey(playerID string) string {
	return playerIndexPrefix + playerID
}

func (r *redisRepository) Create(ctx context.Context, input CreateInput) (*CreateOutput, error) {
	if err := validateRecord(input.Record); err != nil {
		return nil, err
	}

	key := characterKey(input.Record.ID)

	exists, err := r.client.Exists(ctx, key).Result()
	if err != nil {
		return nil, errors.Wrapf(err, "failed to check existence")
	}
	if exists > 0 {
		return nil, errors.AlreadyExistsf("character with ID %s already exists", input.Record.ID)
	}

	now := stamp(r.clock.Now())
	record := &Record{
		ID:        input.Record.ID,
		PlayerID:  input.Record.PlayerID,
		Character: input.Record.Character.Clone(),
		CreatedAt: now,
		UpdatedAt: now,
	}

	data, err := json.Marshal(record)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to marshal character record")
	}

	member := redis.Z{Score: float64(record.CreatedAt.UnixMilli()), Member: record.ID}

	pipe := r.client.TxPipeline()
	pipe.Set(ctx, key, data, 0)
	pipe.ZAdd(ctx, allIndexKey, member)
	if record.PlayerID != "" {
		pipe.ZAdd(ctx, playerIndexKey(record.PlayerID), member)
	}

	if _, err := pipe.Exec(ctx); err != nil {
		return nil, errors.Wrapf(err, "failed to create character")
	}

	return &CreateOutput{Record: record}, nil
}

func (r *redisRepository) Get(ctx context.Context, input GetInput) (*GetOutput, error) {
	if input.ID == "" {
		return nil, errors.InvalidArgument(errCharacterIDEmpty)
	}

	result, err := r.client.Get(ctx, characterKey(input.ID)).Result()
	if err != nil {
		if err == redis.Nil {
			return nil, errors.NotFoundf("character with ID %s not found", input.ID)
		}
		return nil, errors.Wrapf(err, "failed to get character")
	}

	record, err := decodeRecord(result)
	if err != nil {
		return nil, err
	}

	return &GetOutput{Record: record}, nil
}

func (r *redisRepository) Update(ctx context.Context, input UpdateInput) (*UpdateOutput, error) {
	out, err := r.UpdateMany(ctx, UpdateManyInput{Records: []*Record{input.Record}})
	if err != nil {
		return nil, err
	}
	return &UpdateOutput{Record: out.Records[0]}, nil
}

func (r *redisRepository) UpdateMany(ctx context.Context, input UpdateManyInput) (*UpdateManyOutput, error) {
	if err := validateRecords(input.Records); err != nil {
		return nil, err
	}
	if len(input.Records) == 0 {
		return &UpdateManyOutput{}, nil
	}

	keys := make([]string, len(input.Records))
	for i, record := range input.Records {
		keys[i] = characterKey(record.ID)
	}

	values, err := r.client.MGet(ctx, keys...).Result()
	if err != nil {
		return nil, errors.Wrapf(err, "failed to load characters")
	}

	now := stamp(r.clock.Now())
	updated := make([]*Record, len(input.Records))
	payloads := make([][]byte, len(input.Records))
	for i, value := range values {
		raw, ok := value.(string)
		if !ok {
			return nil, errors.NotFoundf("character with ID %s not found", input.Records[i].ID)
		}

		existing, err := decodeRecord(raw)
		if err != nil {
			return nil, err
		}

		updated[i] = merged(existing, input.Records[i], now)
		payloads[i], err = json.Marshal(updated[i])
		if err != nil {
			return nil, errors.Wrapf(err, "failed to marshal character record")
		}
	}

	pipe := r.client.TxPipeline()
	for i := range updated {
		pipe.Set(ctx, keys[i], payloads[i], 0)
	}
	if _, err := pipe.Exec(ctx); err != nil {
		return nil, errors.Wrapf(err, "failed to update characters")
	}

	return &UpdateManyOutput{Records: updated}, nil
}

func (r *redisRepository) Delete(ctx context.Context, input DeleteInput) (*DeleteOutput, error) {
	getOutput, err := r.Get(ctx, GetInput(input))
	if err != nil {
		return nil, err
	}
	record := getOutput.Record

	pipe := r.client.TxPipeline()
	pipe.Del(ctx, characterKey(record.ID))
	pipe.ZRem(ctx, allIndexKey, record.ID)
	if record.PlayerID != "" {
		pipe.ZRem(ctx, playerIndexKey(record.PlayerID), record.ID)
	}

	if _, err := pipe.Exec(ctx); err != nil {
		return nil, errors.Wrapf(err, "failed to delete character")
	}

	return &DeleteOutput{}, nil
}

func (r *redisRepository) List(ctx context.Context, input ListInput) (*ListOutput, error) {
	offset, err := parsePageToken(input.PageToken)
	if err != nil {
		return nil, err
	}
	size := pageSize(input.PageSize)

	indexKey := allIndexKey
	if input.PlayerID != "" {
		indexKey = playerIndexKey(input.PlayerID)
	}

	// One extra ID tells us whether another page exists.
	ids, err := r.client.ZRange(ctx, indexKey, int64(offset), int64(offset+size)).Result()
	if err != nil {
		return nil, errors.Wrapf(err, "failed to read index %s", indexKey)
	}

	hasMore := len(ids) > size
	if hasMore {
		ids = ids[:size]
	}
	if len(ids) == 0 {
		return &ListOutput{}, nil
	}

	keys := make([]string, len(ids))
	for i, id := range ids {
		keys[i] = characterKey(id)
	}

	values, err := r.client.MGet(ctx, keys...).Result()
	if err != nil {
		return nil, errors.Wrapf(err, "failed to load characters")
	}

	records := make([]*Record, 0, len(ids))
	var stale []any
	for i, value := range values {
		raw, ok := value.(string)
		if !ok {
			stale = append(stale, ids[i])
			continue
		}
		record, err := decodeRecord(raw)
		if err != nil {
			return nil, err
		}
		records = append(records, record)
	}

	if len(stale) > 0 {
		slog.WarnContext(ctx, "removing stale character index entries",
			"index_key", indexKey,
			"count", len(stale))
		if err := r.client.ZRem(ctx, indexKey, stale...).Err(); err != nil {
			return nil, errors.Wrapf(err, "failed to clean index %s", indexKey)
		}
	}

	output := &ListOutput{Records: records}
	if hasMore {
		// Removed stale entries shift later members down.
		output.NextPageToken = encodePageToken(offset + len(ids) - len(stale))
	}

	return output, nil
}

func decodeRecord(raw string) (*Record, error) {
	var record Record
	if err := json.Unmarshal([]byte(raw), &record); err != nil {
		return nil, errors.Wrapf(err, "failed to unmarshal character record")
	}
	return &record, nil
}
