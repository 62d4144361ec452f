package entities

import "math"

// growthDivisor makes each level grant 10% of the current value plus one.
const growthDivisor = 10

// Growth is the amount each stat rose by during a level-up.
type Growth struct {
	Strength int32 `json:"strength"`
	HP       int32 `json:"hp"`
	MP       int32 `json:"mp"`
}

// LevelUp raises the level by one and grows strength, max HP and max MP by
// floor(10%) + 1 of their current values. Current HP and MP rise by the
// same amount as their maximums, so any deficit is kept.
//
// Stats stop at math.MaxInt32. Growth reports what was actually added, so
// a maxed stat reports zero.
func (c *Character) LevelUp() Growth {
	growth := Growth{
		Strength: grow(c.Strength),
		HP:       grow(c.MaxHP),
		MP:       grow(c.MaxMP),
	}

	c.Level = addCapped(c.Level, 1)
	c.Strength += growth.Strength
	c.MaxHP += growth.HP
	c.HP = addCapped(c.HP, growth.HP)
	c.MaxMP += growth.MP
	c.MP = addCapped(c.MP, growth.MP)

	return growth
}

// grow returns the increase for value, limited to the headroom left below
// math.MaxInt32.
func grow(value int32) int32 {
	return min(value/growthDivisor+1, math.MaxInt32-value)
}

// addCapped adds two non-negative values, stopping at math.MaxInt32.
func addCapped(a, b int32) int32 {
	return int32(min(int64(a)+int64(b), math.MaxInt32))
}
