package combat

import (
	"context"

	"github.com/KirkDiggler/rpg-arena/internal/entities"
	"github.com/KirkDiggler/rpg-arena/internal/repositories/character"
	combatlog "github.com/KirkDiggler/rpg-arena/internal/repositories/combat_log"
)

//go:generate mockgen -destination=mock/mock_service.go -package=combatmock github.com/KirkDiggler/rpg-arena/internal/orchestrators/combat Service

// Service defines the combat orchestrator interface
type Service interface {
	// Roster
	CreateCharacter(ctx context.Context, input *CreateCharacterInput) (*CreateCharacterOutput, error)
	RollCharacter(ctx context.Context, input *RollCharacterInput) (*RollCharacterOutput, error)
	GetCharacter(ctx context.Context, input *GetCharacterInput) (*GetCharacterOutput, error)
	ListCharacters(ctx context.Context, input *ListCharactersInput) (*ListCharactersOutput, error)
	DeleteCharacter(ctx context.Context, input *DeleteCharacterInput) (*DeleteCharacterOutput, error)

	// Combat
	CastSpell(ctx context.Context, input *CastSpellInput) (*CastSpellOutput, error)
	LevelUp(ctx context.Context, input *LevelUpInput) (*LevelUpOutput, error)
	GroupAttack(ctx context.Context, input *GroupAttackInput) (*GroupAttackOutput, error)

	// History
	GetCombatLog(ctx context.Context, input *GetCombatLogInput) (*GetCombatLogOutput, error)
}

// CreateCharacterInput defines the request for creating a character
type CreateCharacterInput struct {
	PlayerID string // Optional
	Name     string
	Strength int32
	MaxHP    int32
	MaxMP    int32
}

// CreateCharacterOutput defines the response for creating a character
type CreateCharacterOutput struct {
	Record *character.Record
	Sheet  string
}

// RollCharacterInput defines the request for creating a character with
// rolled stats
type RollCharacterInput struct {
	PlayerID string // Optional
	Name     string
}

// RolledStats holds the dice totals used for a rolled character
type RolledStats struct {
	Strength int32
	MaxHP    int32
	MaxMP    int32
}

// RollCharacterOutput defines the response for rolling a character
type RollCharacterOutput struct {
	Record *character.Record
	Sheet  string
	Rolls  RolledStats
}

// GetCharacterInput defines the request for loading a character
type GetCharacterInput struct {
	CharacterID string
}

// GetCharacterOutput defines the response for loading a character
type GetCharacterOutput struct {
	Record *character.Record
	Sheet  string
}

// ListCharactersInput defines the request for listing characters
type ListCharactersInput struct {
	PlayerID  string // Optional filter
	PageSize  int32
	PageToken string
}

// ListCharactersOutput defines the response for listing characters
type ListCharactersOutput struct {
	Records       []*character.Record
	NextPageToken string
}

// DeleteCharacterInput defines the request for deleting a character
type DeleteCharacterInput struct {
	CharacterID string
}

// DeleteCharacterOutput defines the response for deleting a character
type DeleteCharacterOutput struct{}

// CastSpellInput defines the request for casting a spell
type CastSpellInput struct {
	CasterID string
	TargetID string
	Cost     int32
	Damage   int32
}

// CastSpellOutput defines the response for casting a spell
type CastSpellOutput struct {
	Caster   *character.Record
	Target   *character.Record
	Cast     bool
	Outcomes entities.Outcomes
	Messages []string
}

// LevelUpInput defines the request for levelling a character
type LevelUpInput struct {
	CharacterID string
}

// LevelUpOutput defines the response for levelling a character
type LevelUpOutput struct {
	Record *character.Record
	Growth entities.Growth
}

// GroupAttackInput defines the request for a group attack
type GroupAttackInput struct {
	AttackerIDs []string
	TargetID    string
}

// GroupAttackOutput defines the response for a group attack
type GroupAttackOutput struct {
	Attackers   []*character.Record
	Target      *character.Record
	TotalDamage int32
	Defeated    bool
	// Growth lines up with Attackers and is empty unless Defeated
	Growth []entities.Growth
}

// GetCombatLogInput defines the request for reading a combat log
type GetCombatLogInput struct {
	CharacterID string
	Limit       int32
}

// GetCombatLogOutput defines the response for reading a combat log
type GetCombatLogOutput struct {
	Entries []*combatlog.Entry
}
