package entities_test

import (
	"math"
	"slices"
	"testing"

	"github.com/stretchr/testify/suite"

	"github.com/KirkDiggler/rpg-arena/internal/entities"
	"github.com/KirkDiggler/rpg-arena/internal/errors"
)

type SpellTestSuite struct {
	suite.Suite
}

func TestSpellSuite(t *testing.T) {
	suite.Run(t, new(SpellTestSuite))
}

func (s *SpellTestSuite) TestCastSpellDefeatsTarget() {
	caster := mustCharacter(&s.Suite, "C4", 1, 12, 5)
	target := mustCharacter(&s.Suite, "E1", 2, 4, 10)

	result, err := caster.CastSpell(5, 5, target)
	s.Require().NoError(err)

	s.True(result.Cast)
	s.Equal(int32(0), caster.MP)
	s.Equal(int32(0), target.HP)
	s.Equal(entities.Outcomes{entities.OutcomeNewlyDefeated}, result.Outcomes)
	s.Equal([]string{entities.MessageEnemyDefeated}, result.Outcomes.Messages())
}

func (s *SpellTestSuite) TestCastSpellDamagesWithoutDefeat() {
	caster := mustCharacter(&s.Suite, "Fay", 12, 10, 11)
	target := mustCharacter(&s.Suite, "Jay", 11, 99, 97)

	result, err := caster.CastSpell(3, 20, target)
	s.Require().NoError(err)

	s.True(result.Cast)
	s.Empty(result.Outcomes)
	s.Equal(int32(8), caster.MP)
	s.Equal(int32(79), target.HP)
}

func (s *SpellTestSuite) TestCastSpellNotEnoughMP() {
	caster := mustCharacter(&s.Suite, "C2", 1, 10, 0)
	target := mustCharacter(&s.Suite, "E3", 20, 30, 10)

	result, err := caster.CastSpell(13, 5, target)
	s.Require().NoError(err)

	s.False(result.Cast)
	s.Equal([]string{entities.MessageNotEnoughMP}, result.Outcomes.Messages())
	s.Equal(int32(0), caster.MP)
	s.Equal(int32(30), target.HP)
}

func (s *SpellTestSuite) TestCastSpellZeroCostWithNoMP() {
	caster := mustCharacter(&s.Suite, "C2", 1, 10, 0)
	target := mustCharacter(&s.Suite, "E1", 2, 6, 10)

	result, err := caster.CastSpell(0, 1, target)
	s.Require().NoError(err)

	s.True(result.Cast)
	s.Empty(result.Outcomes)
	s.Equal(int32(0), caster.MP)
	s.Equal(int32(5), target.HP)
}

func (s *SpellTestSuite) TestCastSpellOnDefeatedTarget() {
	caster := mustCharacter(&s.Suite, "Fay", 12, 10, 11)
	target := mustCharacter(&s.Suite, "E1", 2, 5, 10)
	target.HP = 0

	result, err := caster.CastSpell(4, 9, target)
	s.Require().NoError(err)

	s.False(result.Cast)
	s.Equal(entities.Outcomes{entities.OutcomeAlreadyDefeated}, result.Outcomes)
	s.Equal(int32(11), caster.MP)
	s.Equal(int32(0), target.HP)
}

func (s *SpellTestSuite) TestCastSpellNotEnoughMPOnDefeatedTarget() {
	caster := mustCharacter(&s.Suite, "Fay", 12, 10, 1)
	target := mustCharacter(&s.Suite, "E1", 2, 5, 10)
	target.HP = 0

	result, err := caster.CastSpell(4, 9, target)
	s.Require().NoError(err)

	s.False(result.Cast)
	s.Equal(
		entities.Outcomes{entities.OutcomeInsufficientMP, entities.OutcomeAlreadyDefeated},
		result.Outcomes,
	)
	s.Equal(
		[]string{entities.MessageNotEnoughMP, entities.MessageEnemyDefeated},
		result.Outcomes.Messages(),
	)
}

func (s *SpellTestSuite) TestCastSpellZeroDamage() {
	caster := mustCharacter(&s.Suite, "Fay", 12, 10, 11)
	target := mustCharacter(&s.Suite, "Jay", 11, 99, 97)

	result, err := caster.CastSpell(2, 0, target)
	s.Require().NoError(err)

	s.True(result.Cast)
	s.Equal(int32(9), caster.MP)
	s.Equal(int32(99), target.HP)
}

func (s *SpellTestSuite) TestCastSpellRejectsInvalidInput() {
	caster := mustCharacter(&s.Suite, "Fay", 12, 10, 11)
	target := mustCharacter(&s.Suite, "Jay", 11, 99, 97)

	testCases := []struct {
		name   string
		cost   int32
		damage int32
		target *entities.Character
	}{
		{name: "negative cost", cost: -1, damage: 3, target: target},
		{name: "negative damage", cost: 1, damage: -3, target: target},
		{name: "nil target", cost: 1, damage: 3, target: nil},
		{name: "self target", cost: 1, damage: 3, target: caster},
	}

	for _, tc := range testCases {
		s.Run(tc.name, func() {
			result, err := caster.CastSpell(tc.cost, tc.damage, tc.target)
			s.Nil(result)
			s.True(errors.IsInvalidArgument(err))
			s.Equal(int32(11), caster.MP)
			s.Equal(int32(99), target.HP)
		})
	}
}

func (s *SpellTestSuite) TestOutcomesHas() {
	outcomes := entities.Outcomes{entities.OutcomeInsufficientMP}
	s.True(outcomes.Has(entities.OutcomeInsufficientMP))
	s.False(outcomes.Has(entities.OutcomeNewlyDefeated))
}

func (s *SpellTestSuite) TestCastSpellReportsDefeatAtMostOnce() {
	for _, startHP := range []int32{0, 1, 4, 10} {
		for _, damage := range []int32{0, 3, 4, 50, math.MaxInt32} {
			caster := mustCharacter(&s.Suite, "Test", 1, 4, 5)
			target := mustCharacter(&s.Suite, "Target", 1, 10, 5)
			target.HP = startHP

			result, err := caster.CastSpell(3, damage, target)
			s.Require().NoError(err)

			defeats := 0
			for _, message := range result.Outcomes.Messages() {
				if message == entities.MessageEnemyDefeated {
					defeats++
				}
			}
			s.LessOrEqual(defeats, 1, "hp %d damage %d", startHP, damage)
			s.False(slices.Contains(result.Outcomes, entities.OutcomeAlreadyDefeated) &&
				slices.Contains(result.Outcomes, entities.OutcomeNewlyDefeated))
			s.GreaterOrEqual(target.HP, int32(0))
		}
	}
}
