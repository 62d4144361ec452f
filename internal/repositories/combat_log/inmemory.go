package combatlog

import (
	"context"
	"sync"
	"time"

	"github.com/KirkDiggler/rpg-arena/internal/errors"
	"github.com/KirkDiggler/rpg-arena/internal/pkg/clock"
)

// InMemoryConfig holds the configuration for the in-memory repository
type InMemoryConfig struct {
	Clock clock.Clock
	// TTL hides entries older than this; zero keeps them forever
	TTL time.Duration
	// Limit is the number of entries kept per character
	Limit int
}

// InMemoryRepository implements Repository in process memory. It backs the
// SQL deployments, where the log does not need to survive restarts.
type InMemoryRepository struct {
	mu    sync.RWMutex
	logs  map[string][]*Entry
	clock clock.Clock
	ttl   time.Duration
	limit int
}

var _ Repository = (*InMemoryRepository)(nil)

// NewInMemory creates a new in-memory repository
func NewInMemory(cfg *InMemoryConfig) *InMemoryRepository {
	if cfg == nil {
		cfg = &InMemoryConfig{}
	}

	c := cfg.Clock
	if c == nil {
		c = clock.New()
	}
	limit := cfg.Limit
	if limit <= 0 {
		limit = DefaultLimit
	}

	return &InMemoryRepository{
		logs:  make(map[string][]*Entry),
		clock: c,
		ttl:   cfg.TTL,
		limit: limit,
	}
}

// Append adds entries newest first and trims each log
func (r *InMemoryRepository) Append(_ context.Context, input AppendInput) (*AppendOutput, error) {
	if err := validateEntries(input.Entries); err != nil {
		return nil, err
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	for _, entry := range input.Entries {
		stored := copyEntry(entry)
		log := append([]*Entry{stored}, r.logs[entry.CharacterID]...)
		if len(log) > r.limit {
			log = log[:r.limit]
		}
		r.logs[entry.CharacterID] = log
	}

	return &AppendOutput{Appended: len(input.Entries)}, nil
}

// List returns copies of a character's entries, newest first
func (r *InMemoryRepository) List(_ context.Context, input ListInput) (*ListOutput, error) {
	if input.CharacterID == "" {
		return nil, errors.InvalidArgument(errCharacterIDEmpty)
	}

	r.mu.RLock()
	defer r.mu.RUnlock()

	limit := listLimit(input.Limit, r.limit)
	var cutoff time.Time
	if r.ttl > 0 {
		cutoff = r.clock.Now().Add(-r.ttl)
	}

	entries := make([]*Entry, 0, limit)
	for _, entry := range r.logs[input.CharacterID] {
		if len(entries) == limit {
			break
		}
		if !cutoff.IsZero() && entry.OccurredAt.Before(cutoff) {
			continue
		}
		entries = append(entries, copyEntry(entry))
	}

	return &ListOutput{Entries: entries}, nil
}

// Clear drops a character's log
func (r *InMemoryRepository) Clear(_ context.Context, input ClearInput) (*ClearOutput, error) {
	if input.CharacterID == "" {
		return nil, errors.InvalidArgument(errCharacterIDEmpty)
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	delete(r.logs, input.CharacterID)
	return &ClearOutput{}, nil
}

func copyEntry(entry *Entry) *Entry {
	clone := *entry
	clone.ActorIDs = append([]string(nil), entry.ActorIDs...)
	clone.TargetIDs = append([]string(nil), entry.TargetIDs...)
	clone.Outcomes = append(clone.Outcomes[:0:0], entry.Outcomes...)
	clone.Messages = append([]string(nil), entry.Messages...)
	return &clone
}
