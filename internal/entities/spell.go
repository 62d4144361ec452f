package entities

import "github.com/KirkDiggler/rpg-arena/internal/errors"

// SpellResult describes what a CastSpell call did.
type SpellResult struct {
	// Cast is true when mana was spent and damage applied.
	Cast     bool
	Outcomes Outcomes
}

// CastSpell spends cost MP to deal damage to target.
//
// The three checks are independent and evaluated in order:
//  1. not enough MP records OutcomeInsufficientMP and blocks the cast;
//  2. a target already at zero HP records OutcomeAlreadyDefeated;
//  3. otherwise MP and HP are reduced, and a target that drops to zero or
//     below is clamped to zero with OutcomeNewlyDefeated.
//
// Check 3 needs a standing target, so checks 2 and 3 never both fire.
//
// Negative cost or damage, a nil target, and targeting oneself are
// rejected before anything changes.
func (c *Character) CastSpell(cost, damage int32, target *Character) (*SpellResult, error) {
	if target == nil {
		return nil, errors.InvalidArgument("target is required")
	}
	if target == c {
		return nil, errors.InvalidArgument("caster cannot target itself")
	}

	vb := errors.NewValidationBuilder()
	errors.ValidateNonNegative("cost", cost, vb)
	errors.ValidateNonNegative("damage", damage, vb)
	if err := vb.Build(); err != nil {
		return nil, err
	}

	result := &SpellResult{}
	canAfford := c.MP >= cost
	targetStanding := target.HP > 0

	if !canAfford {
		result.Outcomes = append(result.Outcomes, OutcomeInsufficientMP)
	}
	if !targetStanding {
		result.Outcomes = append(result.Outcomes, OutcomeAlreadyDefeated)
	}
	if canAfford && targetStanding {
		result.Cast = true
		c.MP -= cost
		target.HP -= damage
		if target.HP <= 0 {
			target.HP = 0
			result.Outcomes = append(result.Outcomes, OutcomeNewlyDefeated)
		}
	}

	return result, nil
}
