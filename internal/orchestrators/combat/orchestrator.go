// Package combat coordinates characters, their persistence and the combat
// log.
package combat

import (
	"context"
	"log/slog"
	"strings"
	"sync"

	"github.com/KirkDiggler/rpg-arena/internal/entities"
	"github.com/KirkDiggler/rpg-arena/internal/errors"
	"github.com/KirkDiggler/rpg-arena/internal/pkg/clock"
	"github.com/KirkDiggler/rpg-arena/internal/pkg/idgen"
	"github.com/KirkDiggler/rpg-arena/internal/repositories/character"
	combatlog "github.com/KirkDiggler/rpg-arena/internal/repositories/combat_log"
)

// Config holds the dependencies for the combat orchestrator
type Config struct {
	CharacterRepo character.Repository
	CombatLogRepo combatlog.Repository
	// IDGenerator names new characters, e.g. idgen.NewUUID("char")
	IDGenerator idgen.Generator
	// EntryIDGenerator names combat log entries; defaults to idgen.NewUUID("log")
	EntryIDGenerator idgen.Generator
	// Clock stamps combat log entries; defaults to the system clock
	Clock clock.Clock
	// StatRoller rolls stats for RollCharacter; defaults to rpg-toolkit dice
	StatRoller StatRoller
}

// Validate ensures all required dependencies are provided
func (c *Config) Validate() error {
	if c == nil {
		return errors.InvalidArgument("config cannot be nil")
	}

	vb := errors.NewValidationBuilder()

	if c.CharacterRepo == nil {
		vb.RequiredField("CharacterRepo")
	}
	if c.CombatLogRepo == nil {
		vb.RequiredField("CombatLogRepo")
	}
	if c.IDGenerator == nil {
		vb.RequiredField("IDGenerator")
	}

	return vb.Build()
}

// orchestrator serializes every read-modify-write through mu. Characters
// are not safe for concurrent use, and two RPCs touching the same
// character must not interleave their load and store.
type orchestrator struct {
	mu            sync.Mutex
	characterRepo character.Repository
	combatLogRepo combatlog.Repository
	idGen         idgen.Generator
	entryIDGen    idgen.Generator
	clock         clock.Clock
	roller        StatRoller
}

var _ Service = (*orchestrator)(nil)

// NewOrchestrator creates a new combat orchestrator with the provided dependencies
func NewOrchestrator(cfg *Config) (Service, error) {
	if err := cfg.Validate(); err != nil {
		return nil, errors.Wrap(err, "invalid config")
	}

	o := &orchestrator{
		characterRepo: cfg.CharacterRepo,
		combatLogRepo: cfg.CombatLogRepo,
		idGen:         cfg.IDGenerator,
		entryIDGen:    cfg.EntryIDGenerator,
		clock:         cfg.Clock,
		roller:        cfg.StatRoller,
	}
	if o.entryIDGen == nil {
		o.entryIDGen = idgen.NewUUID("log")
	}
	if o.clock == nil {
		o.clock = clock.New()
	}
	if o.roller == nil {
		o.roller = NewToolkitRoller()
	}

	return o, nil
}

// CreateCharacter builds a level 1 character at full health and stores it
func (o *orchestrator) CreateCharacter(
	ctx context.Context,
	input *CreateCharacterInput,
) (*CreateCharacterOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}

	record, err := o.create(ctx, input.PlayerID, input.Name, input.Strength, input.MaxHP, input.MaxMP)
	if err != nil {
		return nil, err
	}

	return &CreateCharacterOutput{Record: record, Sheet: record.Character.String()}, nil
}

// RollCharacter rolls strength 3d6, max HP 4d10 and max MP 2d10, then
// creates the character
func (o *orchestrator) RollCharacter(
	ctx context.Context,
	input *RollCharacterInput,
) (*RollCharacterOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}
	if strings.TrimSpace(input.Name) == "" {
		return nil, errors.InvalidArgument("name is required")
	}

	stats, err := rollStats(o.roller)
	if err != nil {
		return nil, errors.Wrap(err, "failed to roll stats")
	}

	slog.DebugContext(ctx, "rolled character stats",
		"name", input.Name,
		"strength", stats.Strength,
		"max_hp", stats.MaxHP,
		"max_mp", stats.MaxMP)

	record, err := o.create(ctx, input.PlayerID, input.Name, stats.Strength, stats.MaxHP, stats.MaxMP)
	if err != nil {
		return nil, err
	}

	return &RollCharacterOutput{Record: record, Sheet: record.Character.String(), Rolls: stats}, nil
}

func (o *orchestrator) create(
	ctx context.Context,
	playerID, name string,
	strength, maxHP, maxMP int32,
) (*character.Record, error) {
	vb := errors.NewValidationBuilder()
	errors.ValidateRequired("name", name, vb)
	errors.ValidateNonNegative("strength", strength, vb)
	errors.ValidateNonNegative("max_hp", maxHP, vb)
	errors.ValidateNonNegative("max_mp", maxMP, vb)
	if err := vb.Build(); err != nil {
		return nil, err
	}

	c, err := entities.NewCharacter(name, strength, maxHP, maxMP)
	if err != nil {
		return nil, err
	}

	out, err := o.characterRepo.Create(ctx, character.CreateInput{
		Record: &character.Record{
			ID:        o.idGen.Generate(),
			PlayerID:  playerID,
			Character: c,
		},
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to create character")
	}

	slog.InfoContext(ctx, "character created",
		"character_id", out.Record.ID,
		"player_id", playerID,
		"name", name)

	return out.Record, nil
}

// GetCharacter loads a character and renders its sheet
func (o *orchestrator) GetCharacter(ctx context.Context, input *GetCharacterInput) (*GetCharacterOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}
	if input.CharacterID == "" {
		return nil, errors.InvalidArgument("character ID is required")
	}

	record, err := o.load(ctx, input.CharacterID)
	if err != nil {
		return nil, err
	}

	return &GetCharacterOutput{Record: record, Sheet: record.Character.String()}, nil
}

// ListCharacters pages through characters, optionally for one player
func (o *orchestrator) ListCharacters(
	ctx context.Context,
	input *ListCharactersInput,
) (*ListCharactersOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}
	if input.PageSize < 0 {
		return nil, errors.InvalidArgument("page size cannot be negative")
	}

	out, err := o.characterRepo.List(ctx, character.ListInput{
		PlayerID:  input.PlayerID,
		PageSize:  int(input.PageSize),
		PageToken: input.PageToken,
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to list characters")
	}

	return &ListCharactersOutput{Records: out.Records, NextPageToken: out.NextPageToken}, nil
}

// DeleteCharacter removes a character and its combat log
func (o *orchestrator) DeleteCharacter(
	ctx context.Context,
	input *DeleteCharacterInput,
) (*DeleteCharacterOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}
	if input.CharacterID == "" {
		return nil, errors.InvalidArgument("character ID is required")
	}

	o.mu.Lock()
	defer o.mu.Unlock()

	if _, err := o.characterRepo.Delete(ctx, character.DeleteInput{ID: input.CharacterID}); err != nil {
		return nil, errors.Wrap(err, "failed to delete character")
	}

	if _, err := o.combatLogRepo.Clear(ctx, combatlog.ClearInput{CharacterID: input.CharacterID}); err != nil {
		slog.WarnContext(ctx, "failed to clear combat log",
			"character_id", input.CharacterID,
			"error", err.Error())
	}

	slog.InfoContext(ctx, "character deleted", "character_id", input.CharacterID)

	return &DeleteCharacterOutput{}, nil
}

// CastSpell has the caster spend MP to damage the target. Both records
// are stored together, and only when the spell actually went off.
func (o *orchestrator) CastSpell(ctx context.Context, input *CastSpellInput) (*CastSpellOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}

	vb := errors.NewValidationBuilder()
	errors.ValidateRequired("caster_id", input.CasterID, vb)
	errors.ValidateRequired("target_id", input.TargetID, vb)
	errors.ValidateNonNegative("cost", input.Cost, vb)
	errors.ValidateNonNegative("damage", input.Damage, vb)
	if err := vb.Build(); err != nil {
		return nil, err
	}
	if input.CasterID == input.TargetID {
		return nil, errors.InvalidArgument("caster cannot target itself").
			WithMeta("character_id", input.CasterID)
	}

	o.mu.Lock()
	defer o.mu.Unlock()

	caster, err := o.load(ctx, input.CasterID)
	if err != nil {
		return nil, err
	}
	target, err := o.load(ctx, input.TargetID)
	if err != nil {
		return nil, err
	}

	result, err := caster.Character.CastSpell(input.Cost, input.Damage, target.Character)
	if err != nil {
		return nil, err
	}

	if result.Cast {
		out, err := o.characterRepo.UpdateMany(ctx, character.UpdateManyInput{
			Records: []*character.Record{caster, target},
		})
		if err != nil {
			return nil, errors.Wrap(err, "failed to store spell result")
		}
		caster, target = out.Records[0], out.Records[1]
	}

	messages := result.Outcomes.Messages()
	slog.InfoContext(ctx, "spell cast",
		"caster_id", caster.ID,
		"target_id", target.ID,
		"cost", input.Cost,
		"damage", input.Damage,
		"cast", result.Cast,
		"messages", messages)

	o.record(ctx, combatlog.ActionCastSpell, []string{caster.ID}, []string{target.ID}, result.Outcomes, caster.ID, target.ID)

	return &CastSpellOutput{
		Caster:   caster,
		Target:   target,
		Cast:     result.Cast,
		Outcomes: result.Outcomes,
		Messages: messages,
	}, nil
}

// LevelUp advances a character one level
func (o *orchestrator) LevelUp(ctx context.Context, input *LevelUpInput) (*LevelUpOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}
	if input.CharacterID == "" {
		return nil, errors.InvalidArgument("character ID is required")
	}

	o.mu.Lock()
	defer o.mu.Unlock()

	record, err := o.load(ctx, input.CharacterID)
	if err != nil {
		return nil, err
	}

	growth := record.Character.LevelUp()

	out, err := o.characterRepo.Update(ctx, character.UpdateInput{Record: record})
	if err != nil {
		return nil, errors.Wrap(err, "failed to store level up")
	}

	slog.InfoContext(ctx, "character levelled up",
		"character_id", record.ID,
		"level", out.Record.Character.Level)

	o.record(ctx, combatlog.ActionLevelUp, []string{record.ID}, nil, nil, record.ID)

	return &LevelUpOutput{Record: out.Record, Growth: growth}, nil
}

// GroupAttack has every attacker punch the target, levelling them all up
// when the target falls
func (o *orchestrator) GroupAttack(ctx context.Context, input *GroupAttackInput) (*GroupAttackOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}
	if err := validateGroupAttack(input); err != nil {
		return nil, err
	}

	o.mu.Lock()
	defer o.mu.Unlock()

	target, err := o.load(ctx, input.TargetID)
	if err != nil {
		return nil, err
	}

	if len(input.AttackerIDs) == 0 {
		return &GroupAttackOutput{Target: target}, nil
	}

	attackers := make([]*character.Record, 0, len(input.AttackerIDs))
	chars := make([]*entities.Character, 0, len(input.AttackerIDs))
	for _, id := range input.AttackerIDs {
		attacker, err := o.load(ctx, id)
		if err != nil {
			return nil, err
		}
		attackers = append(attackers, attacker)
		chars = append(chars, attacker.Character)
	}

	result, err := entities.GroupAttack(chars, target.Character)
	if err != nil {
		return nil, err
	}

	out, err := o.characterRepo.UpdateMany(ctx, character.UpdateManyInput{
		Records: append(append([]*character.Record{}, attackers...), target),
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to store group attack")
	}
	stored := out.Records
	attackers, target = stored[:len(attackers)], stored[len(attackers)]

	slog.InfoContext(ctx, "group attack resolved",
		"target_id", target.ID,
		"attackers", len(attackers),
		"total_damage", result.TotalDamage,
		"defeated", result.Defeated)

	var outcomes entities.Outcomes
	if result.Defeated {
		outcomes = entities.Outcomes{entities.OutcomeNewlyDefeated}
	}
	participants := append(append([]string{}, input.AttackerIDs...), target.ID)
	o.record(ctx, combatlog.ActionGroupAttack, input.AttackerIDs, []string{target.ID}, outcomes, participants...)

	return &GroupAttackOutput{
		Attackers:   attackers,
		Target:      target,
		TotalDamage: result.TotalDamage,
		Defeated:    result.Defeated,
		Growth:      result.Growth,
	}, nil
}

func validateGroupAttack(input *GroupAttackInput) error {
	if input.TargetID == "" {
		return errors.InvalidArgument("target ID is required")
	}

	seen := make(map[string]struct{}, len(input.AttackerIDs))
	for i, id := range input.AttackerIDs {
		if id == "" {
			return errors.InvalidArgumentf("attacker %d has no ID", i)
		}
		if id == input.TargetID {
			return errors.InvalidArgument("target cannot also be an attacker").
				WithMeta("character_id", id)
		}
		if _, dup := seen[id]; dup {
			return errors.InvalidArgumentf("attacker %s listed more than once", id).
				WithMeta("character_id", id)
		}
		seen[id] = struct{}{}
	}

	return nil
}

// GetCombatLog returns a character's recent actions, newest first
func (o *orchestrator) GetCombatLog(ctx context.Context, input *GetCombatLogInput) (*GetCombatLogOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}
	if input.CharacterID == "" {
		return nil, errors.InvalidArgument("character ID is required")
	}
	if input.Limit < 0 {
		return nil, errors.InvalidArgument("limit cannot be negative")
	}

	if _, err := o.load(ctx, input.CharacterID); err != nil {
		return nil, err
	}

	out, err := o.combatLogRepo.List(ctx, combatlog.ListInput{
		CharacterID: input.CharacterID,
		Limit:       int(input.Limit),
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to read combat log")
	}

	return &GetCombatLogOutput{Entries: out.Entries}, nil
}

func (o *orchestrator) load(ctx context.Context, id string) (*character.Record, error) {
	out, err := o.characterRepo.Get(ctx, character.GetInput{ID: id})
	if err != nil {
		return nil, errors.Wrapf(err, "failed to load character %s", id)
	}
	return out.Record, nil
}

// record writes one entry per participant. The action already happened, so
// a logging failure is reported but not returned.
func (o *orchestrator) record(
	ctx context.Context,
	action combatlog.Action,
	actorIDs []string,
	targetIDs []string,
	outcomes entities.Outcomes,
	participants ...string,
) {
	now := o.clock.Now()
	messages := outcomes.Messages()

	entries := make([]*combatlog.Entry, 0, len(participants))
	for _, id := range participants {
		entries = append(entries, &combatlog.Entry{
			ID:          o.entryIDGen.Generate(),
			CharacterID: id,
			Action:      action,
			ActorIDs:    actorIDs,
			TargetIDs:   targetIDs,
			Outcomes:    outcomes,
			Messages:    messages,
			OccurredAt:  now,
		})
	}

	if _, err := o.combatLogRepo.Append(ctx, combatlog.AppendInput{Entries: entries}); err != nil {
		slog.WarnContext(ctx, "failed to append combat log",
			"action", string(action),
			"actor_ids", actorIDs,
			"error", err.Error())
	}
}
