package entities_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/suite"

	"github.com/KirkDiggler/rpg-arena/internal/entities"
	"github.com/KirkDiggler/rpg-arena/internal/errors"
)

type GroupAttackTestSuite struct {
	suite.Suite
}

func TestGroupAttackSuite(t *testing.T) {
	suite.Run(t, new(GroupAttackTestSuite))
}

func (s *GroupAttackTestSuite) TestGroupAttackDefeatsTarget() {
	d1 := mustCharacter(&s.Suite, "C1", 10, 10, 10)
	d2 := mustCharacter(&s.Suite, "C2", 1, 10, 10)
	d3 := mustCharacter(&s.Suite, "C3", 20, 20, 10)
	e2 := mustCharacter(&s.Suite, "E2", 20, 20, 10)

	result, err := entities.GroupAttack([]*entities.Character{d1, d2, d3}, e2)
	s.Require().NoError(err)

	s.True(result.Defeated)
	s.Equal(int32(62), result.TotalDamage)
	s.Len(result.Growth, 3)
	s.Equal(int32(0), e2.HP)

	s.Equal("C1\nLevel: 2\nStrength: 12\nHP: 12/12\nMP: 12/12", d1.String())
	s.Equal("C2\nLevel: 2\nStrength: 2\nHP: 12/12\nMP: 12/12", d2.String())
	s.Equal("C3\nLevel: 2\nStrength: 23\nHP: 23/23\nMP: 12/12", d3.String())
}

func (s *GroupAttackTestSuite) TestGroupAttackTargetSurvives() {
	d2 := mustCharacter(&s.Suite, "C2", 1, 10, 10)
	d4 := mustCharacter(&s.Suite, "C4", 1, 12, 13)
	e6 := mustCharacter(&s.Suite, "E6", 100, 100, 20)

	result, err := entities.GroupAttack([]*entities.Character{d2, d4}, e6)
	s.Require().NoError(err)

	s.False(result.Defeated)
	s.Empty(result.Growth)
	s.Equal(int32(96), e6.HP)
	s.Equal(int32(1), d2.Level)
	s.Equal(int32(1), d4.Level)
}

func (s *GroupAttackTestSuite) TestGroupAttackExactKill() {
	d3 := mustCharacter(&s.Suite, "C3", 20, 20, 10)
	e3 := mustCharacter(&s.Suite, "E3", 20, 40, 10)

	result, err := entities.GroupAttack([]*entities.Character{d3}, e3)
	s.Require().NoError(err)

	s.True(result.Defeated)
	s.Equal(int32(0), e3.HP)
	s.Equal(int32(2), d3.Level)
}

func (s *GroupAttackTestSuite) TestGroupAttackAlreadyDefeatedTarget() {
	d2 := mustCharacter(&s.Suite, "C2", 1, 10, 10)
	e1 := mustCharacter(&s.Suite, "E1", 2, 5, 10)
	e1.HP = 0

	result, err := entities.GroupAttack([]*entities.Character{d2}, e1)
	s.Require().NoError(err)

	s.True(result.Defeated)
	s.Equal(int32(0), e1.HP)
	s.Equal(int32(2), d2.Level)
}

func (s *GroupAttackTestSuite) TestGroupAttackNoAttackers() {
	e1 := mustCharacter(&s.Suite, "E1", 2, 5, 10)
	e1.HP = 0

	result, err := entities.GroupAttack(nil, e1)
	s.Require().NoError(err)

	s.False(result.Defeated)
	s.Zero(result.TotalDamage)
	s.Equal(int32(0), e1.HP)
}

func (s *GroupAttackTestSuite) TestGroupAttackZeroStrength() {
	weak := mustCharacter(&s.Suite, "Weak", 0, 10, 10)
	e1 := mustCharacter(&s.Suite, "E1", 2, 5, 10)

	result, err := entities.GroupAttack([]*entities.Character{weak}, e1)
	s.Require().NoError(err)

	s.False(result.Defeated)
	s.Equal(int32(5), e1.HP)
}

func (s *GroupAttackTestSuite) TestGroupAttackRejectsInvalidParticipants() {
	d1 := mustCharacter(&s.Suite, "C1", 10, 10, 10)
	e2 := mustCharacter(&s.Suite, "E2", 20, 20, 10)

	testCases := []struct {
		name      string
		attackers []*entities.Character
		target    *entities.Character
	}{
		{name: "nil target", attackers: []*entities.Character{d1}, target: nil},
		{name: "nil attacker", attackers: []*entities.Character{d1, nil}, target: e2},
		{name: "target among attackers", attackers: []*entities.Character{d1, e2}, target: e2},
	}

	for _, tc := range testCases {
		s.Run(tc.name, func() {
			result, err := entities.GroupAttack(tc.attackers, tc.target)
			s.Nil(result)
			s.True(errors.IsInvalidArgument(err))
			s.Equal(int32(20), e2.HP)
			s.Equal(int32(1), d1.Level)
		})
	}
}

func (s *GroupAttackTestSuite) TestGroupAttackMaxStrengthDefeatsTarget() {
	brute := mustCharacter(&s.Suite, "Brute", math.MaxInt32, 50, 10)
	dummy := mustCharacter(&s.Suite, "Dummy", 1, 100, 10)

	result, err := entities.GroupAttack([]*entities.Character{brute}, dummy)
	s.Require().NoError(err)

	s.True(result.Defeated)
	s.Equal(int32(math.MaxInt32), result.TotalDamage)
	s.Equal(int32(0), dummy.HP)
	s.Equal(int32(100), dummy.MaxHP)
	s.Require().Len(result.Growth, 1)
	s.Equal(int32(0), result.Growth[0].Strength)
	s.Equal(int32(2), brute.Level)
	s.Equal(int32(math.MaxInt32), brute.Strength)
}

func (s *GroupAttackTestSuite) TestGroupAttackDamageSumsPastInt32() {
	a := mustCharacter(&s.Suite, "A", math.MaxInt32/2, 10, 10)
	b := mustCharacter(&s.Suite, "B", math.MaxInt32/2, 10, 10)
	tank := mustCharacter(&s.Suite, "Tank", 1, math.MaxInt32, 10)

	result, err := entities.GroupAttack([]*entities.Character{a, b}, tank)
	s.Require().NoError(err)

	s.True(result.Defeated)
	s.Equal(int32(math.MaxInt32), result.TotalDamage)
	s.Equal(int32(0), tank.HP)
}

func (s *GroupAttackTestSuite) TestGroupAttackLargeNonLethalHit() {
	a := mustCharacter(&s.Suite, "A", 1<<29, 10, 10)
	tank := mustCharacter(&s.Suite, "Tank", 1, math.MaxInt32, 10)

	result, err := entities.GroupAttack([]*entities.Character{a}, tank)
	s.Require().NoError(err)

	s.False(result.Defeated)
	s.Equal(int32(1<<30), result.TotalDamage)
	s.Equal(int32(math.MaxInt32-1<<30), tank.HP)
	s.Equal(int32(1), a.Level)
}
