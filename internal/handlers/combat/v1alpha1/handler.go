// Package v1alpha1 serves the combat gRPC API
package v1alpha1

import (
	"context"

	apiv1alpha1 "github.com/KirkDiggler/rpg-arena/api/combat/v1alpha1"
	"github.com/KirkDiggler/rpg-arena/internal/errors"
	"github.com/KirkDiggler/rpg-arena/internal/orchestrators/combat"
)

// HandlerConfig holds dependencies for the combat handler
type HandlerConfig struct {
	CombatService combat.Service
}

// Validate ensures all required dependencies are present
func (c *HandlerConfig) Validate() error {
	if c.CombatService == nil {
		return errors.InvalidArgument("combat service is required")
	}
	return nil
}

// Handler implements the combat gRPC service
type Handler struct {
	apiv1alpha1.UnimplementedCombatServiceServer
	combatService combat.Service
}

var _ apiv1alpha1.CombatServiceServer = (*Handler)(nil)

// NewHandler creates a new combat handler with the given configuration
func NewHandler(cfg *HandlerConfig) (*Handler, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return &Handler{
		combatService: cfg.CombatService,
	}, nil
}

// CreateCharacter creates a character from explicit stats
func (h *Handler) CreateCharacter(
	ctx context.Context,
	req *apiv1alpha1.CreateCharacterRequest,
) (*apiv1alpha1.CreateCharacterResponse, error) {
	if req.Name == "" {
		return nil, errors.ToGRPCError(errors.InvalidArgument("name is required"))
	}

	output, err := h.combatService.CreateCharacter(ctx, &combat.CreateCharacterInput{
		PlayerID: req.PlayerID,
		Name:     req.Name,
		Strength: req.Strength,
		MaxHP:    req.MaxHP,
		MaxMP:    req.MaxMP,
	})
	if err != nil {
		return nil, errors.ToGRPCError(err)
	}

	return &apiv1alpha1.CreateCharacterResponse{
		Character: convertRecordToProto(output.Record),
	}, nil
}

// RollCharacter creates a character with dice-rolled stats
func (h *Handler) RollCharacter(
	ctx context.Context,
	req *apiv1alpha1.RollCharacterRequest,
) (*apiv1alpha1.RollCharacterResponse, error) {
	if req.Name == "" {
		return nil, errors.ToGRPCError(errors.InvalidArgument("name is required"))
	}

	output, err := h.combatService.RollCharacter(ctx, &combat.RollCharacterInput{
		PlayerID: req.PlayerID,
		Name:     req.Name,
	})
	if err != nil {
		return nil, errors.ToGRPCError(err)
	}

	return &apiv1alpha1.RollCharacterResponse{
		Character: convertRecordToProto(output.Record),
		Rolls: &apiv1alpha1.RolledStats{
			Strength: output.Rolls.Strength,
			MaxHP:    output.Rolls.MaxHP,
			MaxMP:    output.Rolls.MaxMP,
		},
	}, nil
}

// GetCharacter loads one character
func (h *Handler) GetCharacter(
	ctx context.Context,
	req *apiv1alpha1.GetCharacterRequest,
) (*apiv1alpha1.GetCharacterResponse, error) {
	if req.CharacterID == "" {
		return nil, errors.ToGRPCError(errors.InvalidArgument("character_id is required"))
	}

	output, err := h.combatService.GetCharacter(ctx, &combat.GetCharacterInput{
		CharacterID: req.CharacterID,
	})
	if err != nil {
		return nil, errors.ToGRPCError(err)
	}

	return &apiv1alpha1.GetCharacterResponse{
		Character: convertRecordToProto(output.Record),
	}, nil
}

// ListCharacters pages through characters
func (h *Handler) ListCharacters(
	ctx context.Context,
	req *apiv1alpha1.ListCharactersRequest,
) (*apiv1alpha1.ListCharactersResponse, error) {
	if req.PageSize < 0 {
		return nil, errors.ToGRPCError(errors.InvalidArgument("page_size must not be negative"))
	}

	output, err := h.combatService.ListCharacters(ctx, &combat.ListCharactersInput{
		PlayerID:  req.PlayerID,
		PageSize:  req.PageSize,
		PageToken: req.PageToken,
	})
	if err != nil {
		return nil, errors.ToGRPCError(err)
	}

	return &apiv1alpha1.ListCharactersResponse{
		Characters:    convertRecordsToProto(output.Records),
		NextPageToken: output.NextPageToken,
	}, nil
}

// DeleteCharacter removes a character and its combat log
func (h *Handler) DeleteCharacter(
	ctx context.Context,
	req *apiv1alpha1.DeleteCharacterRequest,
) (*apiv1alpha1.DeleteCharacterResponse, error) {
	if req.CharacterID == "" {
		return nil, errors.ToGRPCError(errors.InvalidArgument("character_id is required"))
	}

	_, err := h.combatService.DeleteCharacter(ctx, &combat.DeleteCharacterInput{
		CharacterID: req.CharacterID,
	})
	if err != nil {
		return nil, errors.ToGRPCError(err)
	}

	return &apiv1alpha1.DeleteCharacterResponse{}, nil
}

// CastSpell has the caster spend MP to damage the target
func (h *Handler) CastSpell(
	ctx context.Context,
	req *apiv1alpha1.CastSpellRequest,
) (*apiv1alpha1.CastSpellResponse, error) {
	vb := errors.NewValidationBuilder()
	errors.ValidateRequired("caster_id", req.CasterID, vb)
	errors.ValidateRequired("target_id", req.TargetID, vb)
	errors.ValidateNonNegative("cost", req.Cost, vb)
	errors.ValidateNonNegative("damage", req.Damage, vb)
	if err := vb.Build(); err != nil {
		return nil, errors.ToGRPCError(err)
	}

	output, err := h.combatService.CastSpell(ctx, &combat.CastSpellInput{
		CasterID: req.CasterID,
		TargetID: req.TargetID,
		Cost:     req.Cost,
		Damage:   req.Damage,
	})
	if err != nil {
		return nil, errors.ToGRPCError(err)
	}

	return &apiv1alpha1.CastSpellResponse{
		Caster:   convertRecordToProto(output.Caster),
		Target:   convertRecordToProto(output.Target),
		Cast:     output.Cast,
		Outcomes: convertOutcomes(output.Outcomes),
		Messages: output.Messages,
	}, nil
}

// LevelUp advances a character one level
func (h *Handler) LevelUp(
	ctx context.Context,
	req *apiv1alpha1.LevelUpRequest,
) (*apiv1alpha1.LevelUpResponse, error) {
	if req.CharacterID == "" {
		return nil, errors.ToGRPCError(errors.InvalidArgument("character_id is required"))
	}

	output, err := h.combatService.LevelUp(ctx, &combat.LevelUpInput{
		CharacterID: req.CharacterID,
	})
	if err != nil {
		return nil, errors.ToGRPCError(err)
	}

	growth := convertGrowthToProto(output.Growth)
	return &apiv1alpha1.LevelUpResponse{
		Character: convertRecordToProto(output.Record),
		Growth:    growth,
	}, nil
}

// GroupAttack has every attacker punch the target
func (h *Handler) GroupAttack(
	ctx context.Context,
	req *apiv1alpha1.GroupAttackRequest,
) (*apiv1alpha1.GroupAttackResponse, error) {
	if req.TargetID == "" {
		return nil, errors.ToGRPCError(errors.InvalidArgument("target_id is required"))
	}

	output, err := h.combatService.GroupAttack(ctx, &combat.GroupAttackInput{
		AttackerIDs: req.AttackerIDs,
		TargetID:    req.TargetID,
	})
	if err != nil {
		return nil, errors.ToGRPCError(err)
	}

	resp := &apiv1alpha1.GroupAttackResponse{
		Attackers:   convertRecordsToProto(output.Attackers),
		Target:      convertRecordToProto(output.Target),
		TotalDamage: output.TotalDamage,
		Defeated:    output.Defeated,
	}
	for _, growth := range output.Growth {
		resp.Growth = append(resp.Growth, convertGrowthToProto(growth))
	}

	return resp, nil
}

// GetCombatLog returns a character's recent history
func (h *Handler) GetCombatLog(
	ctx context.Context,
	req *apiv1alpha1.GetCombatLogRequest,
) (*apiv1alpha1.GetCombatLogResponse, error) {
	if req.CharacterID == "" {
		return nil, errors.ToGRPCError(errors.InvalidArgument("character_id is required"))
	}
	if req.Limit < 0 {
		return nil, errors.ToGRPCError(errors.InvalidArgument("limit must not be negative"))
	}

	output, err := h.combatService.GetCombatLog(ctx, &combat.GetCombatLogInput{
		CharacterID: req.CharacterID,
		Limit:       req.Limit,
	})
	if err != nil {
		return nil, errors.ToGRPCError(err)
	}

	entries := make([]*apiv1alpha1.CombatLogEntry, 0, len(output.Entries))
	for _, entry := range output.Entries {
		entries = append(entries, convertEntryToProto(entry))
	}

	return &apiv1alpha1.GetCombatLogResponse{
		Entries: entries,
	}, nil
}
