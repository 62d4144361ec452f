package entities

// Notification text shown to players. Exact wording is part of the
// external contract.
const (
	MessageNotEnoughMP   = "Not enough MP"
	MessageEnemyDefeated = "Enemy defeated"
)

// Outcome tags something notable that happened while resolving an action.
type Outcome string

// Outcomes produced by CastSpell, in the order they can be recorded.
const (
	OutcomeInsufficientMP  Outcome = "insufficient_mp"
	OutcomeAlreadyDefeated Outcome = "already_defeated"
	OutcomeNewlyDefeated   Outcome = "newly_defeated"
)

// Message returns the player-facing notification for the outcome.
func (o Outcome) Message() string {
	switch o {
	case OutcomeInsufficientMP:
		return MessageNotEnoughMP
	case OutcomeAlreadyDefeated, OutcomeNewlyDefeated:
		return MessageEnemyDefeated
	default:
		return string(o)
	}
}

// Outcomes is an ordered list of outcomes. Each tag appears at most once,
// and a single cast records at most one defeat tag.
type Outcomes []Outcome

// Messages returns one notification per outcome, preserving order.
func (o Outcomes) Messages() []string {
	messages := make([]string, 0, len(o))
	for _, outcome := range o {
		messages = append(messages, outcome.Message())
	}
	return messages
}

// Has reports whether outcome was recorded.
func (o Outcomes) Has(outcome Outcome) bool {
	for _, recorded := range o {
		if recorded == outcome {
			return true
		}
	}
	return false
}
