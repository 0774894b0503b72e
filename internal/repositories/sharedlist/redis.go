package sharedlist

import (
	"context"
	"encoding/json"
	"time"

	redis "github.com/redis/go-redis/v9"

	"github.com/KirkDiggler/opr-tts-api/internal/entities"
	"github.com/KirkDiggler/opr-tts-api/internal/errors"
	"github.com/KirkDiggler/opr-tts-api/internal/pkg/clock"
	"github.com/KirkDiggler/opr-tts-api/internal/pkg/idgen"
	redisclient "github.com/KirkDiggler/opr-tts-api/internal/redis"
)

const (
	// Key pattern: list:{list_id}
	listKeyPrefix = "list:"

	errListNil     = "list cannot be nil"
	errListIDEmpty = "list ID cannot be empty"
)

// Config holds the configuration for the Redis repository
type Config struct {
	Client      redisclient.Client
	IDGenerator idgen.Generator
	Clock       clock.Clock
	// DefaultTTL applies when CreateInput.TTL is zero. Zero keeps lists forever.
	DefaultTTL time.Duration
}

// Validate ensures all required dependencies are provided
func (c *Config) Validate() error {
	vb := errors.NewValidationBuilder()
	if c.Client == nil {
		vb.RequiredField("Client")
	}
	if c.IDGenerator == nil {
		vb.RequiredField("IDGenerator")
	}
	if c.Clock == nil {
		vb.RequiredField("Clock")
	}
	errors.ValidateNonNegative("DefaultTTL", c.DefaultTTL, vb)
	return vb.Build()
}

type redisRepository struct {
	client     redisclient.Client
	ids        idgen.Generator
	clock      clock.Clock
	defaultTTL time.Duration
}

// NewRedisRepository creates a new Redis repository for shared lists
func NewRedisRepository(cfg *Config) (Repository, error) {
	if cfg == nil {
		return nil, errors.InvalidArgument("config is required")
	}
	if err := cfg.Validate(); err != nil {
		return nil, errors.Wrap(err, "invalid config")
	}

	return &redisRepository{
		client:     cfg.Client,
		ids:        cfg.IDGenerator,
		clock:      cfg.Clock,
		defaultTTL: cfg.DefaultTTL,
	}, nil
}

// Ensure redisRepository implements Repository
var _ Repository = (*redisRepository)(nil)

func (r *redisRepository) Create(ctx context.Context, input CreateInput) (*CreateOutput, error) {
	if input.List == nil {
		return nil, errors.InvalidArgument(errListNil)
	}
	if input.TTL < 0 {
		return nil, errors.InvalidArgument("ttl cannot be negative")
	}

	ttl := input.TTL
	if ttl == 0 {
		ttl = r.defaultTTL
	}

	shared := &entities.SharedList{
		ID:        r.ids.Generate(),
		List:      input.List,
		CreatedAt: r.clock.Now().Unix(),
	}

	data, err := json.Marshal(shared)
	if err != nil {
		return nil, errors.Wrap(err, "failed to marshal shared list")
	}

	// SetNX so a generator collision never overwrites another player's list
	ok, err := r.client.SetNX(ctx, r.buildKey(shared.ID), data, ttl).Result()
	if err != nil {
		return nil, errors.WrapWithCode(err, errors.CodeUnavailable, "failed to store shared list in Redis")
	}
	if !ok {
		return nil, errors.New(errors.CodeAlreadyExists, "shared list id already in use").
			WithMeta("list_id", shared.ID)
	}

	return &CreateOutput{SharedList: shared}, nil
}

func (r *redisRepository) Get(ctx context.Context, input GetInput) (*GetOutput, error) {
	if input.ID == "" {
		return nil, errors.InvalidArgument(errListIDEmpty)
	}

	data, err := r.client.Get(ctx, r.buildKey(input.ID)).Bytes()
	if err != nil {
		if err == redis.Nil {
			return nil, errors.NotFound("list not found").WithMeta("list_id", input.ID)
		}
		return nil, errors.WrapWithCode(err, errors.CodeUnavailable, "failed to get shared list from Redis")
	}

	var shared entities.SharedList
	if err := json.Unmarshal(data, &shared); err != nil {
		return nil, errors.Wrap(err, "failed to unmarshal shared list")
	}

	return &GetOutput{SharedList: &shared}, nil
}

func (r *redisRepository) Delete(ctx context.Context, input DeleteInput) (*DeleteOutput, error) {
	if input.ID == "" {
		return nil, errors.InvalidArgument(errListIDEmpty)
	}

	deleted, err := r.client.Del(ctx, r.buildKey(input.ID)).Result()
	if err != nil {
		return nil, errors.WrapWithCode(err, errors.CodeUnavailable, "failed to delete shared list from Redis")
	}
	if deleted == 0 {
		return nil, errors.NotFound("list not found").WithMeta("list_id", input.ID)
	}

	return &DeleteOutput{}, nil
}

func (r *redisRepository) buildKey(id string) string {
	return listKeyPrefix + id
}
