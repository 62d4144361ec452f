// Package entities holds the combat model: characters and the rules that
// mutate them. Nothing in this package performs I/O; callers own
// persistence and serialization of access.
package entities

import (
	"fmt"

	"github.com/KirkDiggler/rpg-arena/internal/errors"
)

// Character is a combat participant. It is not safe for concurrent use.
//
// Name never changes after construction. HP is never reported below zero.
// Two characters are equal when all seven fields match.
type Character struct {
	Name     string `json:"name"`
	Strength int32  `json:"strength"`
	HP       int32  `json:"hp"`
	MaxHP    int32  `json:"max_hp"`
	MP       int32  `json:"mp"`
	MaxMP    int32  `json:"max_mp"`
	Level    int32  `json:"level"`
}

// NewCharacter creates a character at full health and mana on level 1.
// Negative stats are rejected; zero is allowed.
func NewCharacter(name string, strength, maxHP, maxMP int32) (*Character, error) {
	vb := errors.NewValidationBuilder()
	errors.ValidateNonNegative("strength", strength, vb)
	errors.ValidateNonNegative("max_hp", maxHP, vb)
	errors.ValidateNonNegative("max_mp", maxMP, vb)
	if err := vb.Build(); err != nil {
		return nil, err
	}

	return &Character{
		Name:     name,
		Strength: strength,
		HP:       maxHP,
		MaxHP:    maxHP,
		MP:       maxMP,
		MaxMP:    maxMP,
		Level:    1,
	}, nil
}

// Equal reports whether other holds the same seven field values.
// A nil character only equals nil.
func (c *Character) Equal(other *Character) bool {
	if c == nil || other == nil {
		return c == other
	}
	return *c == *other
}

// String renders the character sheet:
//
//	<name>
//	Level: <level>
//	Strength: <strength>
//	HP: <hp>/<max_hp>
//	MP: <mp>/<max_mp>
func (c *Character) String() string {
	return fmt.Sprintf("%s\nLevel: %d\nStrength: %d\nHP: %d/%d\nMP: %d/%d",
		c.Name, c.Level, c.Strength, c.HP, c.MaxHP, c.MP, c.MaxMP)
}

// Defeated reports whether the character has no health left.
func (c *Character) Defeated() bool {
	return c.HP <= 0
}

// Clone returns an independent copy.
func (c *Character) Clone() *Character {
	if c == nil {
		return nil
	}
	clone := *c
	return &clone
}
