// Package v1alpha1 defines the arena combat API: its messages, the gRPC
// service description, and a client. Messages travel as JSON over gRPC.
package v1alpha1

import "time"

// Character is the combat sheet of a character.
type Character struct {
	Name     string `json:"name"`
	Strength int32  `json:"strength"`
	HP       int32  `json:"hp"`
	MaxHP    int32  `json:"max_hp"`
	MP       int32  `json:"mp"`
	MaxMP    int32  `json:"max_mp"`
	Level    int32  `json:"level"`
}

// CharacterRecord is a stored character.
type CharacterRecord struct {
	ID        string     `json:"id"`
	PlayerID  string     `json:"player_id,omitempty"`
	Character *Character `json:"character"`
	// Sheet is the character rendered for display
	Sheet     string    `json:"sheet"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// StatGrowth is what a level-up added.
type StatGrowth struct {
	Strength int32 `json:"strength"`
	HP       int32 `json:"hp"`
	MP       int32 `json:"mp"`
}

// RolledStats are the dice totals behind a rolled character.
type RolledStats struct {
	Strength int32 `json:"strength"`
	MaxHP    int32 `json:"max_hp"`
	MaxMP    int32 `json:"max_mp"`
}

// CombatLogEntry is one action in a character's history.
type CombatLogEntry struct {
	ID          string    `json:"id"`
	CharacterID string    `json:"character_id"`
	Action      string    `json:"action"`
	ActorIDs    []string  `json:"actor_ids"`
	TargetIDs   []string  `json:"target_ids,omitempty"`
	Outcomes    []string  `json:"outcomes,omitempty"`
	Messages    []string  `json:"messages,omitempty"`
	OccurredAt  time.Time `json:"occurred_at"`
}

// CreateCharacterRequest creates a character from explicit stats.
type CreateCharacterRequest struct {
	PlayerID string `json:"player_id,omitempty"`
	Name     string `json:"name"`
	Strength int32  `json:"strength"`
	MaxHP    int32  `json:"max_hp"`
	MaxMP    int32  `json:"max_mp"`
}

// CreateCharacterResponse returns the new character.
type CreateCharacterResponse struct {
	Character *CharacterRecord `json:"character"`
}

// RollCharacterRequest creates a character with dice-rolled stats.
type RollCharacterRequest struct {
	PlayerID string `json:"player_id,omitempty"`
	Name     string `json:"name"`
}

// RollCharacterResponse returns the new character and its rolls.
type RollCharacterResponse struct {
	Character *CharacterRecord `json:"character"`
	Rolls     *RolledStats     `json:"rolls"`
}

// GetCharacterRequest loads one character.
type GetCharacterRequest struct {
	CharacterID string `json:"character_id"`
}

// GetCharacterResponse returns the character.
type GetCharacterResponse struct {
	Character *CharacterRecord `json:"character"`
}

// ListCharactersRequest pages through characters.
type ListCharactersRequest struct {
	PlayerID  string `json:"player_id,omitempty"`
	PageSize  int32  `json:"page_size,omitempty"`
	PageToken string `json:"page_token,omitempty"`
}

// ListCharactersResponse returns one page.
type ListCharactersResponse struct {
	Characters    []*CharacterRecord `json:"characters"`
	NextPageToken string             `json:"next_page_token,omitempty"`
}

// DeleteCharacterRequest removes a character.
type DeleteCharacterRequest struct {
	CharacterID string `json:"character_id"`
}

// DeleteCharacterResponse is empty.
type DeleteCharacterResponse struct{}

// CastSpellRequest spends Cost MP of the caster to deal Damage.
type CastSpellRequest struct {
	CasterID string `json:"caster_id"`
	TargetID string `json:"target_id"`
	Cost     int32  `json:"cost"`
	Damage   int32  `json:"damage"`
}

// CastSpellResponse reports the spell's effects.
type CastSpellResponse struct {
	Caster *CharacterRecord `json:"caster"`
	Target *CharacterRecord `json:"target"`
	// Cast is false when the spell fizzled
	Cast     bool     `json:"cast"`
	Outcomes []string `json:"outcomes,omitempty"`
	Messages []string `json:"messages,omitempty"`
}

// LevelUpRequest advances a character one level.
type LevelUpRequest struct {
	CharacterID string `json:"character_id"`
}

// LevelUpResponse returns the levelled character.
type LevelUpResponse struct {
	Character *CharacterRecord `json:"character"`
	Growth    *StatGrowth      `json:"growth"`
}

// GroupAttackRequest has every attacker punch the target.
type GroupAttackRequest struct {
	AttackerIDs []string `json:"attacker_ids"`
	TargetID    string   `json:"target_id"`
}

// GroupAttackResponse reports the attack's effects.
type GroupAttackResponse struct {
	Attackers   []*CharacterRecord `json:"attackers"`
	Target      *CharacterRecord   `json:"target"`
	TotalDamage int32              `json:"total_damage"`
	Defeated    bool               `json:"defeated"`
	Growth      []*StatGrowth      `json:"growth,omitempty"`
}

// GetCombatLogRequest reads a character's recent history.
type GetCombatLogRequest struct {
	CharacterID string `json:"character_id"`
	Limit       int32  `json:"limit,omitempty"`
}

// GetCombatLogResponse lists entries, newest first.
type GetCombatLogResponse struct {
	Entries []*CombatLogEntry `json:"entries"`
}
