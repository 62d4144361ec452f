package entities

import (
	"math"

	"github.com/KirkDiggler/rpg-arena/internal/errors"
)

// PunchFactor multiplies an attacker's strength into group attack damage.
const PunchFactor = 2

// GroupAttackResult describes a resolved group attack.
type GroupAttackResult struct {
	// TotalDamage stops at math.MaxInt32.
	TotalDamage int32
	Defeated    bool
	// Growth holds one entry per attacker, in attacker order, when the
	// target was defeated.
	Growth []Growth
}

// GroupAttack has every attacker punch target for twice their strength.
// All attackers hit even after target HP reaches zero. If the target ends
// at zero HP or below it is clamped to zero and every attacker levels up in
// order; otherwise nobody levels. No attackers means no change.
//
// A nil attacker, a nil target, or a target that is also an attacker is
// rejected before anything changes.
func GroupAttack(attackers []*Character, target *Character) (*GroupAttackResult, error) {
	if target == nil {
		return nil, errors.InvalidArgument("target is required")
	}
	for i, attacker := range attackers {
		if attacker == nil {
			return nil, errors.InvalidArgumentf("attacker %d is nil", i)
		}
		if attacker == target {
			return nil, errors.InvalidArgumentf("target cannot also be attacker %d", i)
		}
	}

	result := &GroupAttackResult{}
	if len(attackers) == 0 {
		return result, nil
	}

	var damage int64
	for _, attacker := range attackers {
		damage += int64(attacker.Strength) * PunchFactor
	}
	result.TotalDamage = int32(min(damage, math.MaxInt32))

	if remaining := int64(target.HP) - damage; remaining > 0 {
		target.HP = int32(remaining)
		return result, nil
	}

	target.HP = 0
	result.Defeated = true
	result.Growth = make([]Growth, 0, len(attackers))
	for _, attacker := range attackers {
		result.Growth = append(result.Growth, attacker.LevelUp())
	}

	return result, nil
}
