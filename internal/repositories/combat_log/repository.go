// Package combatlog stores the per-character history of combat actions.
package combatlog

import (
	"context"
	"time"

	"github.com/KirkDiggler/rpg-arena/internal/entities"
	"github.com/KirkDiggler/rpg-arena/internal/errors"
)

//go:generate mockgen -destination=mock/mock_repository.go -package=combatlogmock github.com/KirkDiggler/rpg-arena/internal/repositories/combat_log Repository

// Action names the operation an entry records.
type Action string

// Recorded actions.
const (
	ActionCastSpell   Action = "cast_spell"
	ActionLevelUp     Action = "level_up"
	ActionGroupAttack Action = "group_attack"
)

// DefaultLimit caps the entries kept per character when no limit is set.
const DefaultLimit = 100

// Entry is one action as seen from CharacterID's log. The same action is
// usually written to the log of every character it touched.
type Entry struct {
	ID          string            `json:"id"`
	CharacterID string            `json:"character_id"`
	Action      Action            `json:"action"`
	ActorIDs    []string          `json:"actor_ids"`
	TargetIDs   []string          `json:"target_ids,omitempty"`
	Outcomes    entities.Outcomes `json:"outcomes,omitempty"`
	Messages    []string          `json:"messages,omitempty"`
	OccurredAt  time.Time         `json:"occurred_at"`
}

// Repository defines combat log persistence.
type Repository interface {
	// Append adds entries to their characters' logs, trimming each log to
	// the configured limit.
	// Returns errors.InvalidArgument for entries missing ID, CharacterID or Action
	Append(ctx context.Context, input AppendInput) (*AppendOutput, error)

	// List returns a character's entries, newest first
	// Returns errors.InvalidArgument for an empty character ID
	List(ctx context.Context, input ListInput) (*ListOutput, error)

	// Clear drops a character's whole log. Clearing an empty log succeeds.
	Clear(ctx context.Context, input ClearInput) (*ClearOutput, error)
}

// AppendInput defines the input for appending entries
type AppendInput struct {
	Entries []*Entry
}

// AppendOutput defines the output for appending entries
type AppendOutput struct {
	Appended int
}

// ListInput defines the input for listing a character's log
type ListInput struct {
	CharacterID string
	// Limit bounds the result; zero or above the store limit means the store limit
	Limit int
}

// ListOutput defines the output for listing a character's log
type ListOutput struct {
	Entries []*Entry
}

// ClearInput defines the input for clearing a character's log
type ClearInput struct {
	CharacterID string
}

// ClearOutput defines the output for clearing a character's log
type ClearOutput struct{}

const errCharacterIDEmpty = "character ID cannot be empty"

func validateEntries(entries []*Entry) error {
	for i, entry := range entries {
		vb := errors.NewValidationBuilder()
		if entry == nil {
			return errors.InvalidArgumentf("entry %d is nil", i)
		}
		errors.ValidateRequired("id", entry.ID, vb)
		errors.ValidateRequired("character_id", entry.CharacterID, vb)
		errors.ValidateEnum("action", string(entry.Action),
			[]string{string(ActionCastSpell), string(ActionLevelUp), string(ActionGroupAttack)}, vb)
		if err := vb.Build(); err != nil {
			return err
		}
	}
	return nil
}

func listLimit(requested, storeLimit int) int {
	if requested <= 0 || requested > storeLimit {
		return storeLimit
	}
	return requested
}
