package entities_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/suite"

	"github.com/KirkDiggler/rpg-arena/internal/entities"
)

type LevelingTestSuite struct {
	suite.Suite
}

func TestLevelingSuite(t *testing.T) {
	suite.Run(t, new(LevelingTestSuite))
}

func (s *LevelingTestSuite) TestLevelUp() {
	c := mustCharacter(&s.Suite, "Fay", 12, 10, 11)

	growth := c.LevelUp()

	s.Equal(entities.Growth{Strength: 2, HP: 2, MP: 2}, growth)
	s.Equal(int32(2), c.Level)
	s.Equal(int32(14), c.Strength)
	s.Equal(int32(12), c.HP)
	s.Equal(int32(12), c.MaxHP)
	s.Equal(int32(13), c.MP)
	s.Equal(int32(13), c.MaxMP)
}

func (s *LevelingTestSuite) TestLevelUpTwice() {
	c := mustCharacter(&s.Suite, "Fay", 12, 10, 11)

	c.LevelUp()
	c.LevelUp()

	s.Equal(int32(3), c.Level)
	s.Equal(int32(16), c.Strength)
	s.Equal(int32(14), c.MaxHP)
	s.Equal(int32(15), c.MaxMP)
}

func (s *LevelingTestSuite) TestLevelUpSmallStats() {
	c := mustCharacter(&s.Suite, "Test", 1, 4, 5)

	c.LevelUp()

	s.Equal("Test\nLevel: 2\nStrength: 2\nHP: 5/5\nMP: 6/6", c.String())
}

func (s *LevelingTestSuite) TestLevelUpFromZero() {
	c := mustCharacter(&s.Suite, "Nobody", 0, 0, 0)

	c.LevelUp()

	s.Equal(int32(2), c.Level)
	s.Equal(int32(1), c.Strength)
	s.Equal(int32(1), c.HP)
	s.Equal(int32(1), c.MaxHP)
	s.Equal(int32(1), c.MP)
	s.Equal(int32(1), c.MaxMP)
}

func (s *LevelingTestSuite) TestLevelUpPreservesDeficit() {
	c := mustCharacter(&s.Suite, "Jay", 11, 99, 97)
	c.HP = 40
	c.MP = 3

	c.LevelUp()

	s.Equal(int32(109), c.MaxHP)
	s.Equal(int32(50), c.HP)
	s.Equal(int32(107), c.MaxMP)
	s.Equal(int32(13), c.MP)
}

func (s *LevelingTestSuite) TestLevelUpKeepsResourcesWithinMaximum() {
	for strength := int32(0); strength < 30; strength += 7 {
		for maxHP := int32(0); maxHP < 250; maxHP += 13 {
			for hp := int32(0); hp <= maxHP; hp += 11 {
				c := mustCharacter(&s.Suite, "Prop", strength, maxHP, maxHP/2)
				c.HP = hp

				for i := 0; i < 5; i++ {
					c.LevelUp()
					s.LessOrEqual(c.HP, c.MaxHP)
					s.LessOrEqual(c.MP, c.MaxMP)
					s.GreaterOrEqual(c.HP, int32(0))
				}
			}
		}
	}
}

func (s *LevelingTestSuite) TestLevelUpStopsAtMaxInt32() {
	c := mustCharacter(&s.Suite, "Capped", math.MaxInt32, math.MaxInt32, math.MaxInt32-5)
	c.HP = math.MaxInt32 - 100

	growth := c.LevelUp()

	s.Equal(entities.Growth{Strength: 0, HP: 0, MP: 5}, growth)
	s.Equal(int32(2), c.Level)
	s.Equal(int32(math.MaxInt32), c.Strength)
	s.Equal(int32(math.MaxInt32), c.MaxHP)
	s.Equal(int32(math.MaxInt32-100), c.HP)
	s.Equal(int32(math.MaxInt32), c.MaxMP)
	s.Equal(int32(math.MaxInt32), c.MP)
}

func (s *LevelingTestSuite) TestRepeatedLevelUpNeverWraps() {
	c := mustCharacter(&s.Suite, "Grinder", 1, 1, 1)

	for i := 0; i < 400; i++ {
		c.LevelUp()
		s.Require().Positive(c.Strength)
		s.Require().Positive(c.HP)
		s.Require().LessOrEqual(c.HP, c.MaxHP)
		s.Require().LessOrEqual(c.MP, c.MaxMP)
	}

	s.Equal(int32(401), c.Level)
	s.Equal(int32(math.MaxInt32), c.Strength)
	s.Equal(int32(math.MaxInt32), c.MaxHP)
	s.Equal(int32(math.MaxInt32), c.HP)
	s.Equal(int32(math.MaxInt32), c.MaxMP)
}
