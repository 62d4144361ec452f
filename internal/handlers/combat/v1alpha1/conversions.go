package v1alpha1

import (
	apiv1alpha1 "github.com/KirkDiggler/rpg-arena/api/combat/v1alpha1"
	"github.com/KirkDiggler/rpg-arena/internal/entities"
	"github.com/KirkDiggler/rpg-arena/internal/repositories/character"
	combatlog "github.com/KirkDiggler/rpg-arena/internal/repositories/combat_log"
)

func convertCharacterToProto(c *entities.Character) *apiv1alpha1.Character {
	if c == nil {
		return nil
	}

	return &apiv1alpha1.Character{
		Name:     c.Name,
		Strength: c.Strength,
		HP:       c.HP,
		MaxHP:    c.MaxHP,
		MP:       c.MP,
		MaxMP:    c.MaxMP,
		Level:    c.Level,
	}
}

func convertRecordToProto(record *character.Record) *apiv1alpha1.CharacterRecord {
	if record == nil {
		return nil
	}

	pb := &apiv1alpha1.CharacterRecord{
		ID:        record.ID,
		PlayerID:  record.PlayerID,
		Character: convertCharacterToProto(record.Character),
		CreatedAt: record.CreatedAt,
		UpdatedAt: record.UpdatedAt,
	}
	if record.Character != nil {
		pb.Sheet = record.Character.String()
	}

	return pb
}

func convertRecordsToProto(records []*character.Record) []*apiv1alpha1.CharacterRecord {
	result := make([]*apiv1alpha1.CharacterRecord, 0, len(records))
	for _, record := range records {
		result = append(result, convertRecordToProto(record))
	}
	return result
}

func convertGrowthToProto(growth entities.Growth) *apiv1alpha1.StatGrowth {
	return &apiv1alpha1.StatGrowth{
		Strength: growth.Strength,
		HP:       growth.HP,
		MP:       growth.MP,
	}
}

func convertOutcomes(outcomes entities.Outcomes) []string {
	if len(outcomes) == 0 {
		return nil
	}

	result := make([]string, 0, len(outcomes))
	for _, outcome := range outcomes {
		result = append(result, string(outcome))
	}
	return result
}

func convertEntryToProto(entry *combatlog.Entry) *apiv1alpha1.CombatLogEntry {
	return &apiv1alpha1.CombatLogEntry{
		ID:          entry.ID,
		CharacterID: entry.CharacterID,
		Action:      string(entry.Action),
		ActorIDs:    entry.ActorIDs,
		TargetIDs:   entry.TargetIDs,
		Outcomes:    convertOutcomes(entry.Outcomes),
		Messages:    entry.Messages,
		OccurredAt:  entry.OccurredAt,
	}
}
