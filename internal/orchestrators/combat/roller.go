package combat

import (
	"github.com/KirkDiggler/rpg-toolkit/dice"

	"github.com/KirkDiggler/rpg-arena/internal/errors"
)

// Dice used for rolled characters.
const (
	StrengthDice = 3
	StrengthDie  = 6
	HPDice       = 4
	HPDie        = 10
	MPDice       = 2
	MPDie        = 10
)

// StatRoller rolls count dice of the given size and returns the total.
type StatRoller interface {
	Roll(count, size int) (int32, error)
}

// ToolkitRoller rolls with rpg-toolkit dice.
type ToolkitRoller struct{}

// NewToolkitRoller returns a roller backed by rpg-toolkit.
func NewToolkitRoller() *ToolkitRoller {
	return &ToolkitRoller{}
}

// Roll implements StatRoller.
func (r *ToolkitRoller) Roll(count, size int) (int32, error) {
	roll, err := dice.NewRoll(count, size)
	if err != nil {
		return 0, errors.Wrapf(err, "failed to create %dd%d roll", count, size)
	}

	// nolint:gosec // dice totals are small
	return int32(roll.GetValue()), nil
}

func rollStats(roller StatRoller) (RolledStats, error) {
	var stats RolledStats
	var err error

	if stats.Strength, err = roller.Roll(StrengthDice, StrengthDie); err != nil {
		return RolledStats{}, err
	}
	if stats.MaxHP, err = roller.Roll(HPDice, HPDie); err != nil {
		return RolledStats{}, err
	}
	if stats.MaxMP, err = roller.Roll(MPDice, MPDie); err != nil {
		return RolledStats{}, err
	}

	return stats, nil
}
